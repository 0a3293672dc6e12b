package config

import (
	"fmt"
	"time"

	"simitra-backend/internal/model"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func DSN(c DatabaseConfig) string {
	// Format: user:password@tcp(127.0.0.1:3306)/dbname?charset=utf8mb4&parseTime=True&loc=Local
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.User, c.Password, c.Host, c.Port, c.Name)
}

func ConnectDB(cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(DSN(cfg.DB)), &gorm.Config{
		Logger:         NewGormLogger(zap.L(), 200*time.Millisecond),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("koneksi database gagal: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DB.MaxOpenConns)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)

	// Auto Migration: Membuat tabel otomatis berdasarkan struct di folder model
	if err := db.AutoMigrate(model.All()...); err != nil {
		return nil, fmt.Errorf("auto migrate gagal: %w", err)
	}

	zap.L().Info("database terhubung", zap.String("host", cfg.DB.Host), zap.String("name", cfg.DB.Name))

	DB = db
	return db, nil
}
