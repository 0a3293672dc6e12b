package database

import (
	"path/filepath"
	"testing"
	"time"

	"simitra-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestSeedAllIsIdempotent(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "seed.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.All()...))

	cfg := SeedConfig{AdminUsername: "admin", AdminEmail: "admin@bps.go.id", AdminPassword: "admin123", BatasHonor: 36000000}
	now := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, SeedAll(db, cfg, now))

	cfg.AdminPassword = "berbeda"
	cfg.BatasHonor = 1
	require.NoError(t, SeedAll(db, cfg, now))

	var users []model.User
	require.NoError(t, db.Find(&users).Error)
	require.Len(t, users, 1)
	assert.Equal(t, model.RoleAdmin, users[0].Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(users[0].Password), []byte("admin123")))

	var satuan int64
	db.Model(&model.SatuanKegiatan{}).Count(&satuan)
	assert.Equal(t, int64(len(defaultSatuan)), satuan)

	var aturan model.AturanPeriode
	require.NoError(t, db.Where("periode = ?", "2025").First(&aturan).Error)
	assert.Equal(t, int64(36000000), aturan.BatasHonor)
}
