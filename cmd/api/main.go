package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"simitra-backend/config"
	"simitra-backend/internal/authz"
	"simitra-backend/internal/logging"
	"simitra-backend/internal/mailer"
	"simitra-backend/internal/routes"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	fmt.Println("1. Memulai aplikasi... Mencoba load .env...")
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: File .env tidak ditemukan, menggunakan environment variables sistem.")
	}
	cfg := config.Load()

	logger, err := logging.New(cfg.Env)
	if err != nil {
		fmt.Println("Gagal membuat logger:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	if cfg.JWTSecret == "" {
		logger.Fatal("JWT_SECRET wajib diisi")
	}

	fmt.Println("2. Mencoba koneksi ke Database...")
	db, err := config.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("koneksi database gagal", zap.Error(err))
	}
	fmt.Println("3. Database berhasil terhubung! Menyiapkan routes...")

	authorizer, err := authz.NewDefaultAuthorizer()
	if err != nil {
		logger.Fatal("gagal memuat policy akses", zap.Error(err))
	}

	app := routes.NewApp(&routes.Deps{
		DB:         db,
		Config:     cfg,
		Authorizer: authorizer,
		Notifier:   mailer.New(cfg.Email.Host, cfg.Email.Port, cfg.Email.User, cfg.Email.Password),
	})

	// Graceful shutdown saat SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		fmt.Println("Mematikan server...")
		if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
			logger.Error("shutdown gagal", zap.Error(err))
		}
	}()

	fmt.Printf("4. Server siap! Menunggu request di port :%s\n", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatal("server berhenti", zap.Error(err))
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	fmt.Println("Server berhenti.")
}
