package main

import (
	"fmt"
	"log"
	"time"

	"simitra-backend/config"
	"simitra-backend/internal/database"
	"simitra-backend/internal/logging"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	fmt.Println("🌱 Memulai Database Seeding...")

	// Load .env manual karena ini script terpisah
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: File .env tidak ditemukan, menggunakan environment variables sistem.")
	}
	cfg := config.Load()

	logger, err := logging.New(cfg.Env)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	db, err := config.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("koneksi database gagal", zap.Error(err))
	}

	fmt.Println("🚀 Menjalankan SeedAll...")
	seed := database.SeedConfig{
		AdminUsername: config.GetEnv("SEED_ADMIN_USERNAME", "admin"),
		AdminEmail:    config.GetEnv("SEED_ADMIN_EMAIL", "admin@example.com"),
		AdminPassword: config.GetEnv("SEED_ADMIN_PASSWORD", "admin123"),
		BatasHonor:    int64(config.GetEnvAsInt("SEED_BATAS_HONOR_TAHUNAN", 0)),
	}
	if err := database.SeedAll(db, seed, time.Now()); err != nil {
		logger.Fatal("seeding gagal", zap.Error(err))
	}

	fmt.Println("✅ Seeding Selesai!")
}
