package config

import (
	"os"
	"strconv"
	"strings"
)

// Helper function to get environment variable with fallback default value
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get environment variable as integer with fallback
func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

type DatabaseConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	MaxOpenConns int
}

type EmailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

type UploadConfig struct {
	Dir      string
	MaxBytes int64
}

type Config struct {
	Env         string
	Port        string
	JWTSecret   string
	JWTTTLHours int
	CORSOrigins string
	DB          DatabaseConfig
	Email       EmailConfig
	Upload      UploadConfig
}

func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load membaca seluruh konfigurasi dari environment. Panggil setelah godotenv.Load().
func Load() Config {
	return Config{
		Env:         strings.ToLower(GetEnv("APP_ENV", "development")),
		Port:        GetEnv("APP_PORT", "3000"),
		JWTSecret:   GetEnv("JWT_SECRET", ""),
		JWTTTLHours: GetEnvAsInt("JWT_TTL_HOURS", 24),
		CORSOrigins: GetEnv("CORS_ORIGINS", "*"),
		DB: DatabaseConfig{
			Host:         GetEnv("DB_HOST", "127.0.0.1"),
			Port:         GetEnv("DB_PORT", "3306"),
			User:         GetEnv("DB_USER", "root"),
			Password:     GetEnv("DB_PASSWORD", ""),
			Name:         GetEnv("DB_NAME", "simitra"),
			MaxOpenConns: GetEnvAsInt("DB_MAX_OPEN_CONNS", 10),
		},
		Email: EmailConfig{
			Host:     GetEnv("EMAIL_HOST", "smtp.gmail.com"),
			Port:     GetEnvAsInt("EMAIL_PORT", 587),
			User:     GetEnv("EMAIL_USER", ""),
			Password: GetEnv("EMAIL_PASS", ""),
		},
		Upload: UploadConfig{
			Dir:      GetEnv("UPLOAD_DIR", "uploads"),
			MaxBytes: int64(GetEnvAsInt("UPLOAD_MAX_BYTES", 5*1024*1024)),
		},
	}
}
