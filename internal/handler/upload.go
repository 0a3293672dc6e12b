package handler

import (
	"os"
	"path/filepath"
	"strings"

	"simitra-backend/config"
	"simitra-backend/internal/apperror"
	"simitra-backend/internal/importer"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// readUpload menyimpan file "file" (xlsx/csv) ke folder upload, membacanya
// menjadi baris import, lalu menghapus file sementara tersebut.
func readUpload(c *fiber.Ctx, cfg config.UploadConfig) ([]importer.Row, error) {
	file, err := c.FormFile("file")
	if err != nil {
		return nil, apperror.Validation("File wajib diunggah pada field 'file'")
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".xlsx" && ext != ".csv" {
		return nil, apperror.Validation("Format file harus .xlsx atau .csv")
	}
	if cfg.MaxBytes > 0 && file.Size > cfg.MaxBytes {
		return nil, apperror.Validation("Ukuran file melebihi batas %d byte", cfg.MaxBytes)
	}

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, apperror.Internal(err)
	}
	path := filepath.Join(cfg.Dir, uuid.NewString()+ext)
	if err := c.SaveFile(file, path); err != nil {
		return nil, apperror.Internal(err)
	}
	defer func() {
		if err := os.Remove(path); err != nil {
			zap.L().Warn("gagal menghapus file upload", zap.String("path", path), zap.Error(err))
		}
	}()

	rows, err := importer.ReadFile(path)
	if err != nil {
		return nil, apperror.Validation("File tidak dapat dibaca: %s", err.Error())
	}
	return rows, nil
}
