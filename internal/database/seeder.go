package database

import (
	"fmt"
	"strconv"
	"time"

	"simitra-backend/internal/model"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedConfig berisi nilai awal yang bisa diatur lewat environment.
type SeedConfig struct {
	AdminUsername string
	AdminEmail    string
	AdminPassword string
	BatasHonor    int64
}

var defaultSatuan = []model.SatuanKegiatan{
	{NamaSatuan: "Dokumen", Alias: "dok"},
	{NamaSatuan: "Rumah Tangga", Alias: "ruta"},
	{NamaSatuan: "Responden", Alias: "resp"},
	{NamaSatuan: "Blok Sensus", Alias: "BS"},
	{NamaSatuan: "Kegiatan", Alias: "keg"},
	{NamaSatuan: "Orang Bulan", Alias: "OB"},
}

// SeedAll aman dijalankan berulang kali: data yang sudah ada tidak diubah.
func SeedAll(db *gorm.DB, cfg SeedConfig, now time.Time) error {
	return db.Transaction(func(tx *gorm.DB) error {
		// 1. Seed Akun Admin Pertama
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin := model.User{
			Username:    cfg.AdminUsername,
			Email:       cfg.AdminEmail,
			Password:    string(hashedPassword),
			NamaLengkap: "Administrator",
			Role:        model.RoleAdmin,
		}
		if err := tx.Where(model.User{Username: admin.Username}).FirstOrCreate(&admin).Error; err != nil {
			return fmt.Errorf("seed admin: %w", err)
		}

		// 2. Seed Satuan Kegiatan
		for _, s := range defaultSatuan {
			satuan := s
			if err := tx.Where(model.SatuanKegiatan{NamaSatuan: satuan.NamaSatuan}).FirstOrCreate(&satuan).Error; err != nil {
				return fmt.Errorf("seed satuan %s: %w", satuan.NamaSatuan, err)
			}
		}

		// 3. Seed Aturan batas honor tahun berjalan
		tahun := strconv.Itoa(now.Year())
		aturan := model.AturanPeriode{
			Periode:    tahun,
			BatasHonor: cfg.BatasHonor,
			Keterangan: "Batas honor tahunan " + tahun,
		}
		if err := tx.Where(model.AturanPeriode{Periode: tahun}).FirstOrCreate(&aturan).Error; err != nil {
			return fmt.Errorf("seed aturan periode: %w", err)
		}

		zap.L().Info("seeding selesai",
			zap.String("admin", admin.Username),
			zap.Int("satuan", len(defaultSatuan)),
			zap.String("aturan_periode", tahun))
		return nil
	})
}
