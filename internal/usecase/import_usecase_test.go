package usecase

import (
	"context"
	"testing"
	"time"

	"simitra-backend/internal/importer"
	"simitra-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(n int, kv ...string) importer.Row {
	r := importer.Row{Number: n, Values: map[string]string{}}
	for i := 0; i+1 < len(kv); i += 2 {
		r.Values[kv[i]] = kv[i+1]
	}
	return r
}

func TestImportMitraCounts(t *testing.T) {
	db := newTestDB(t)
	uc := NewImportUsecase(db)
	seedMitra(t, db, "9999", "Sudah Ada")

	rows := []importer.Row{
		row(2, "nik", "1001", "nama_lengkap", "Ani", "batas_honor_bulanan", "Rp 3.000.000"),
		row(3, "nik", "", "nama_lengkap", "Tanpa NIK"),
		row(4, "nik", "1002", "nama", "Budi", "tanggal_lahir", "17/08/1990"),
		row(5, "nik", "1003", "nama_lengkap", ""),
		row(6, "nik", "9999", "nama_lengkap", "Duplikat"),
	}
	summary := uc.Mitra(context.Background(), rows)

	assert.Equal(t, 5, summary.TotalRows)
	assert.Equal(t, 2, summary.SuccessCount)
	assert.Equal(t, 2, summary.FailCount)
	assert.Equal(t, 1, summary.SkipCount)
	require.Len(t, summary.Errors, 2)
	assert.Contains(t, summary.Errors[0], "Baris 3")
	assert.Contains(t, summary.Errors[1], "Baris 5")

	var total int64
	db.Model(&model.Mitra{}).Count(&total)
	assert.Equal(t, int64(3), total)

	var ani model.Mitra
	require.NoError(t, db.Where("nik = ?", "1001").First(&ani).Error)
	assert.Equal(t, int64(3_000_000), ani.BatasHonorBulanan)

	var budi model.Mitra
	require.NoError(t, db.Where("nik = ?", "1002").First(&budi).Error)
	assert.Equal(t, "1990-08-17", budi.TanggalLahir.String())
}

func TestImportSubkegiatan(t *testing.T) {
	db := newTestDB(t)
	uc := NewImportUsecase(db)
	k := seedKegiatan(t, db, "Sakernas")
	idKegiatan := "1"
	require.Equal(t, uint(1), k.ID)

	rows := []importer.Row{
		row(2, "id_kegiatan", idKegiatan, "nama_sub_kegiatan", "Listing", "tanggal_mulai", "2025-02-01", "periode", "2025-02"),
		row(3, "id_kegiatan", idKegiatan, "nama_sub_kegiatan", "Listing", "periode", "2025-02"),
		row(4, "id_kegiatan", "77", "nama_sub_kegiatan", "Pencacahan"),
		row(5, "id_kegiatan", idKegiatan, "nama_sub_kegiatan", "Tanggal Rusak", "tanggal_mulai", "kemarin"),
		row(6, "id_kegiatan", idKegiatan, "nama_sub_kegiatan", "Pencacahan", "tanggal_mulai", "45717"),
	}
	summary := uc.Subkegiatan(context.Background(), rows)

	assert.Equal(t, 2, summary.SuccessCount)
	assert.Equal(t, 1, summary.SkipCount)
	assert.Equal(t, 2, summary.FailCount)

	var sub model.Subkegiatan
	require.NoError(t, db.Where("nama_sub_kegiatan = ?", "Pencacahan").First(&sub).Error)
	assert.Equal(t, "2025-03", sub.Periode)
	assert.Equal(t, "sub2", sub.ID)
}

func TestImportPenugasanCreatesTeamAndSkipsMembers(t *testing.T) {
	db := newTestDB(t)
	uc := NewImportUsecase(db)
	seedUser(t, db, "pml01", model.RoleUser)
	sub := seedSub(t, db, seedKegiatan(t, db, "Susenas"), "Pencacahan", "2025-03", model.Date{})
	seedMitra(t, db, "1", "Ani")
	seedMitra(t, db, "2", "Budi")
	seedMitra(t, db, "3", "Citra")

	rows := []importer.Row{
		row(2, "id_subkegiatan", sub.ID, "nik", "1", "pengawas", "pml01", "jumlah_max_mitra", "2"),
		row(3, "id_subkegiatan", sub.ID, "nik", "1", "pengawas", "pml01"),
		row(4, "id_subkegiatan", sub.ID, "nik", "404", "pengawas", "pml01"),
		row(5, "id_subkegiatan", sub.ID, "nik", "2", "pengawas", "tidakada"),
		row(6, "id_subkegiatan", sub.ID, "nik", "2", "pengawas", "pml01"),
		row(7, "id_subkegiatan", sub.ID, "nik", "3", "pengawas", "pml01"),
	}
	summary := uc.Penugasan(context.Background(), rows)

	assert.Equal(t, 2, summary.SuccessCount)
	assert.Equal(t, 1, summary.SkipCount)
	assert.Equal(t, 3, summary.FailCount)
	require.Len(t, summary.Errors, 3)
	assert.Contains(t, summary.Errors[0], "NIK 404")
	assert.Contains(t, summary.Errors[2], "Baris 7")

	var teams []model.Penugasan
	require.NoError(t, db.Find(&teams).Error)
	require.Len(t, teams, 1)
	assert.Equal(t, 2, teams[0].JumlahMaxMitra)
}

func TestImportPerencanaanAppliesHonorCap(t *testing.T) {
	db := newTestDB(t)
	uc := NewImportUsecase(db)
	seedUser(t, db, "pml01", model.RoleUser)
	seedAturan(t, db, "2025", 1000)
	sub := seedSub(t, db, seedKegiatan(t, db, "Ubinan"), "Pencacahan", "2025-03", date(2025, time.March, 1))
	seedHonor(t, db, sub, "PCL", 100, 1)
	seedMitra(t, db, "1", "Ani")
	seedMitra(t, db, "2", "Budi")

	rows := []importer.Row{
		row(2, "id_subkegiatan", sub.ID, "nik", "1", "pengawas", "pml01", "kode_jabatan", "PCL", "volume_tugas", "10"),
		row(3, "id_subkegiatan", sub.ID, "nik", "2", "pengawas", "pml01", "kode_jabatan", "PCL", "volume_tugas", "11"),
		row(4, "id_subkegiatan", sub.ID, "nik", "2", "pengawas", "pml01", "kode_jabatan", "PCL"),
	}
	summary := uc.Perencanaan(context.Background(), rows)

	assert.Equal(t, 1, summary.SuccessCount)
	assert.Equal(t, 2, summary.FailCount)
	assert.Contains(t, summary.Errors[0], "melebihi batas")
}

func TestImportUsers(t *testing.T) {
	db := newTestDB(t)
	uc := NewImportUsecase(db)
	seedUser(t, db, "lama", model.RoleUser)

	rows := []importer.Row{
		row(2, "username", "baru", "email", "Baru@Mail.com", "password", "rahasia1", "role", "admin"),
		row(3, "username", "lama", "email", "lain@mail.com", "password", "rahasia1"),
		row(4, "username", "kurang", "email", "", "password", "rahasia1"),
		row(5, "username", "pendek", "email", "p@mail.com", "password", "123"),
	}
	summary := uc.Users(context.Background(), rows)

	assert.Equal(t, 1, summary.SuccessCount)
	assert.Equal(t, 1, summary.SkipCount)
	assert.Equal(t, 2, summary.FailCount)

	var u model.User
	require.NoError(t, db.Where("username = ?", "baru").First(&u).Error)
	assert.Equal(t, "baru@mail.com", u.Email)
	assert.Equal(t, model.RoleAdmin, u.Role)
	assert.NotEqual(t, "rahasia1", u.Password)
}
