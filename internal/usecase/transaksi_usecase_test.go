package usecase

import (
	"context"
	"testing"
	"time"

	"simitra-backend/internal/apperror"
	"simitra-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransaksiBulananFlagsMonthlyLimit(t *testing.T) {
	db := newTestDB(t)
	uc := NewTransaksiUsecase(db)
	pengawas := seedUser(t, db, "pml", model.RoleUser)
	k := seedKegiatan(t, db, "Susenas")

	ani := seedMitra(t, db, "1", "Ani")
	require.NoError(t, db.Model(ani).Update("batas_honor_bulanan", 100000).Error)
	budi := seedMitra(t, db, "2", "Budi")

	sub := seedSub(t, db, k, "Pencacahan", "2025-03", date(2025, time.March, 3))
	seedHonor(t, db, sub, "", 60000, 1)
	seedHonor(t, db, sub, "PML", 40000, 2)
	sub2 := seedSub(t, db, k, "Pemeriksaan", "2025-03", date(2025, time.March, 20))
	seedHonor(t, db, sub2, "", 50000, 1)

	seedTask(t, db, sub, pengawas, ani, "")
	seedTask(t, db, sub2, pengawas, ani, "")
	seedTask(t, db, sub, pengawas, budi, "PML")

	rows, err := uc.Bulanan(context.Background(), "2025-03")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Ani", rows[0].NamaLengkap)
	assert.Equal(t, int64(2), rows[0].JumlahTugas)
	assert.Equal(t, int64(110000), rows[0].TotalHonor)
	assert.True(t, rows[0].MelebihiBatas)

	assert.Equal(t, int64(80000), rows[1].TotalHonor)
	assert.False(t, rows[1].MelebihiBatas, "batas 0 berarti tidak dibatasi")

	_, err = uc.Bulanan(context.Background(), "maret")
	assert.True(t, apperror.Is(err, apperror.KindValidation))
}

func TestTransaksiTahunan(t *testing.T) {
	db := newTestDB(t)
	uc := NewTransaksiUsecase(db)
	ctx := context.Background()
	pengawas := seedUser(t, db, "pml", model.RoleUser)
	k := seedKegiatan(t, db, "Sakernas")
	ani := seedMitra(t, db, "1", "Ani")
	budi := seedMitra(t, db, "2", "Budi")

	sub := seedSub(t, db, k, "Feb", "2025-02", date(2025, time.February, 1))
	seedHonor(t, db, sub, "", 1000, 1)
	old := seedSub(t, db, k, "Tahun lalu", "2024-12", date(2024, time.December, 1))
	seedHonor(t, db, old, "", 1000, 1)

	plan := NewPerencanaanUsecase(db)
	p := &model.Perencanaan{IDSubkegiatan: sub.ID, IDPengawas: pengawas.ID, JumlahMaxMitra: 10}
	require.NoError(t, db.Create(p).Error)
	pOld := &model.Perencanaan{IDSubkegiatan: old.ID, IDPengawas: pengawas.ID, JumlahMaxMitra: 10}
	require.NoError(t, db.Create(pOld).Error)

	seedAturan(t, db, "2024", 100000)
	seedAturan(t, db, "2025", 5000)
	_, err := plan.AddAnggota(ctx, PerencanaanAnggotaInput{IDPerencanaan: p.ID, IDMitra: ani.ID, VolumeTugas: 5})
	require.NoError(t, err)
	_, err = plan.AddAnggota(ctx, PerencanaanAnggotaInput{IDPerencanaan: p.ID, IDMitra: budi.ID, VolumeTugas: 2})
	require.NoError(t, err)
	_, err = plan.AddAnggota(ctx, PerencanaanAnggotaInput{IDPerencanaan: pOld.ID, IDMitra: budi.ID, VolumeTugas: 50})
	require.NoError(t, err)

	out, err := uc.Tahunan(ctx, "2025")
	require.NoError(t, err)
	assert.True(t, out.AturanDiatur)
	assert.Equal(t, int64(5000), out.BatasHonor)
	require.Len(t, out.Mitra, 2)
	assert.Equal(t, int64(5000), out.Mitra[0].TotalHonor)
	assert.Equal(t, int64(0), out.Mitra[0].SisaBatas)
	assert.False(t, out.Mitra[0].MelebihiBatas)
	assert.Equal(t, int64(2000), out.Mitra[1].TotalHonor)
	assert.Equal(t, 1, out.Mitra[1].JumlahTugas)

	out, err = uc.Tahunan(ctx, "2030")
	require.NoError(t, err)
	assert.False(t, out.AturanDiatur)
	assert.Empty(t, out.Mitra)

	_, err = uc.Tahunan(ctx, "abc")
	assert.True(t, apperror.Is(err, apperror.KindValidation))
}
