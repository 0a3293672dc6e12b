package usecase

import (
	"context"
	"testing"
	"time"

	"simitra-backend/internal/apperror"
	"simitra-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedTask(t *testing.T, db *gorm.DB, sub *model.Subkegiatan, pengawas *model.User, mitra *model.Mitra, kode string) {
	t.Helper()
	p := &model.Penugasan{IDSubkegiatan: sub.ID, IDPengawas: pengawas.ID, JumlahMaxMitra: 10}
	require.NoError(t, db.Create(p).Error)
	require.NoError(t, db.Create(&model.KelompokPenugasan{IDPenugasan: p.ID, IDMitra: mitra.ID, KodeJabatan: kode}).Error)
}

func TestSpkBuildTotalHonor(t *testing.T) {
	db := newTestDB(t)
	uc := NewSpkUsecase(db)
	pengawas := seedUser(t, db, "pml", model.RoleUser)
	k := seedKegiatan(t, db, "Survei Harga")
	mitra := seedMitra(t, db, "3201", "Budi")

	rates := []struct {
		tarif int64
		basis int
	}{{50000, 1}, {30000, 2}, {20000, 3}}
	for i, r := range rates {
		sub := seedSub(t, db, k, "Tugas", "2025-03", date(2025, time.March, i+1))
		seedHonor(t, db, sub, "", r.tarif, r.basis)
		seedTask(t, db, sub, pengawas, mitra, "")
	}
	other := seedSub(t, db, k, "Bulan lain", "2025-04", date(2025, time.April, 1))
	seedHonor(t, db, other, "", 999999, 1)
	seedTask(t, db, other, pengawas, mitra, "")

	doc, err := uc.Build(context.Background(), "2025-03", mitra.ID)
	require.NoError(t, err)
	require.Len(t, doc.Tugas, 3)
	assert.Equal(t, int64(170000), doc.TotalHonor)
	assert.Equal(t, "seratus tujuh puluh ribu rupiah", doc.Terbilang)
	assert.Equal(t, int64(60000), doc.Tugas[1].Honor)
	assert.Equal(t, "001/SPK/III/2025", doc.NomorSurat)
	assert.Equal(t, "Maret 2025", doc.BulanTeks)
	assert.Nil(t, doc.Setting)
}

func TestSpkBuildUsesJabatanRateAndSetting(t *testing.T) {
	db := newTestDB(t)
	uc := NewSpkUsecase(db)
	ctx := context.Background()
	pengawas := seedUser(t, db, "pml", model.RoleUser)
	k := seedKegiatan(t, db, "Sensus")
	ani := seedMitra(t, db, "1", "Ani")
	budi := seedMitra(t, db, "2", "Budi")

	sub := seedSub(t, db, k, "Pencacahan", "2025-06", date(2025, time.June, 1))
	seedHonor(t, db, sub, "", 10000, 1)
	seedHonor(t, db, sub, "PML", 25000, 2)
	seedTask(t, db, sub, pengawas, ani, "PCL")
	seedTask(t, db, sub, pengawas, budi, "PML")

	tpl := &model.MasterTemplateSpk{NamaTemplate: "Standar", Pasal: []model.MasterTemplateSpkPasal{
		{NomorPasal: 2, Judul: "Hak", Isi: "Menerima honor"},
		{NomorPasal: 1, Judul: "Lingkup", Isi: "Melaksanakan tugas"},
	}}
	require.NoError(t, db.Create(tpl).Error)
	_, err := uc.SaveSetting(ctx, &model.SpkSetting{
		Periode: "2025-06", NamaPpk: "Kepala", NomorSuratFormat: "B-{no}/{bulan}/{tahun}", IDTemplate: &tpl.ID,
	})
	require.NoError(t, err)

	// upsert kedua memperbarui baris yang sama
	saved, err := uc.SaveSetting(ctx, &model.SpkSetting{
		Periode: "2025-06", NamaPpk: "Kepala Baru", NomorSuratFormat: "B-{no}/{bulan}/{tahun}", IDTemplate: &tpl.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Kepala Baru", saved.NamaPpk)
	var settings int64
	db.Model(&model.SpkSetting{}).Count(&settings)
	assert.Equal(t, int64(1), settings)

	doc, err := uc.Build(ctx, "2025-06", budi.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(50000), doc.TotalHonor)
	assert.Equal(t, "B-002/06/2025", doc.NomorSurat)
	require.NotNil(t, doc.Template)
	require.Len(t, doc.Template.Pasal, 2)
	assert.Equal(t, 1, doc.Template.Pasal[0].NomorPasal)

	doc, err = uc.Build(ctx, "2025-06", ani.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10000), doc.TotalHonor)
}

func TestSpkBuildErrors(t *testing.T) {
	db := newTestDB(t)
	uc := NewSpkUsecase(db)
	ctx := context.Background()

	_, err := uc.Build(ctx, "2025-13", 1)
	assert.True(t, apperror.Is(err, apperror.KindValidation))

	_, err = uc.Build(ctx, "2025-01", 42)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))

	m := seedMitra(t, db, "1", "Tanpa Tugas")
	doc, err := uc.Build(ctx, "2025-01", m.ID)
	require.NoError(t, err)
	assert.Zero(t, doc.TotalHonor)
	assert.Equal(t, "nol rupiah", doc.Terbilang)
	assert.Empty(t, doc.Tugas)
}

func TestFormatNomorSurat(t *testing.T) {
	bulan := time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "007/SPK/XI/2025", FormatNomorSurat(DefaultNomorSuratFormat, 7, bulan))
	assert.Equal(t, "012-11-2025", FormatNomorSurat("{no}-{bulan}-{tahun}", 12, bulan))
}

func TestFormatTanggal(t *testing.T) {
	assert.Equal(t, "3 Maret 2025", FormatTanggal(model.NewDate(2025, time.March, 3)))
	assert.Equal(t, "", FormatTanggal(model.Date{}))
}
