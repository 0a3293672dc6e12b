package usecase

import (
	"path/filepath"
	"testing"
	"time"

	"simitra-backend/internal/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(model.All()...))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username, role string) *model.User {
	t.Helper()
	u := &model.User{Username: username, Email: username + "@bps.go.id", Password: "x", Role: role}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedKegiatan(t *testing.T, db *gorm.DB, nama string) *model.Kegiatan {
	t.Helper()
	k := &model.Kegiatan{NamaKegiatan: nama, TahunAnggaran: "2025"}
	require.NoError(t, db.Create(k).Error)
	return k
}

func seedSub(t *testing.T, db *gorm.DB, k *model.Kegiatan, nama, periode string, mulai model.Date) *model.Subkegiatan {
	t.Helper()
	s := &model.Subkegiatan{IDKegiatan: k.ID, NamaSubKegiatan: nama, Periode: periode, TanggalMulai: mulai}
	require.NoError(t, db.Create(s).Error)
	return s
}

func seedMitra(t *testing.T, db *gorm.DB, nik, nama string) *model.Mitra {
	t.Helper()
	m := &model.Mitra{NIK: nik, NamaLengkap: nama}
	require.NoError(t, db.Create(m).Error)
	return m
}

func seedHonor(t *testing.T, db *gorm.DB, sub *model.Subkegiatan, kode string, tarif int64, basis int) {
	t.Helper()
	require.NoError(t, db.Create(&model.Honorarium{
		IDSubkegiatan: sub.ID, KodeJabatan: kode, Tarif: tarif, IDSatuan: 1, BasisVolume: basis,
	}).Error)
}

func seedAturan(t *testing.T, db *gorm.DB, periode string, batas int64) {
	t.Helper()
	require.NoError(t, db.Create(&model.AturanPeriode{Periode: periode, BatasHonor: batas}).Error)
}

func date(y int, m time.Month, d int) model.Date {
	return model.NewDate(y, m, d)
}
