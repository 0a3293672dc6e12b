package middleware

import (
	"simitra-backend/internal/apperror"
	"simitra-backend/internal/authz"

	"github.com/gofiber/fiber/v2"
)

// Can memeriksa izin role user (diset di Auth middleware) terhadap policy casbin.
func Can(a *authz.Authorizer, object, action string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userRole, ok := c.Locals("role").(string)
		if !ok {
			return apperror.Forbidden("Akses ditolak: Role tidak valid")
		}

		allowed, err := a.Authorize(userRole, object, action)
		if err != nil {
			return apperror.Internal(err)
		}
		if !allowed {
			return apperror.Forbidden("Akses ditolak: Anda tidak memiliki izin " + action + " " + object)
		}
		return c.Next()
	}
}
