package middleware

import (
	"errors"
	"strings"

	"simitra-backend/internal/apperror"
	"simitra-backend/internal/model"
	"simitra-backend/internal/repository"
	"simitra-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const localUser = "user"

// Auth memvalidasi bearer token lalu memuat ulang user dari database,
// sehingga perubahan role atau penghapusan user langsung berlaku.
func Auth(auth *usecase.AuthUsecase, users repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1. Ambil token dari Header Authorization
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return apperror.Unauthorized("Token tidak ditemukan")
		}
		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || strings.TrimSpace(tokenString) == "" {
			return apperror.Unauthorized("Format token harus Bearer <token>")
		}

		// 2. Parse dan Validasi Token
		claims, err := auth.ParseToken(strings.TrimSpace(tokenString))
		if err != nil {
			return err
		}

		// 3. Ambil user terbaru
		user, err := users.FindByID(claims.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.Unauthorized("User tidak ditemukan")
			}
			return err
		}

		// 4. Simpan data user ke Context agar bisa dipakai di Handler
		c.Locals(localUser, user)
		c.Locals("user_id", user.ID)
		c.Locals("role", user.Role)
		return c.Next()
	}
}

// CurrentUser mengembalikan user yang diset oleh Auth.
func CurrentUser(c *fiber.Ctx) *model.User {
	user, _ := c.Locals(localUser).(*model.User)
	return user
}
