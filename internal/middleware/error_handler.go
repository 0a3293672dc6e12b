package middleware

import (
	"simitra-backend/internal/apperror"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"
)

// ErrorHandler adalah satu-satunya jalur error menuju klien.
func ErrorHandler(c *fiber.Ctx, err error) error {
	appErr := apperror.From(err)
	status := appErr.Kind.Status()

	if appErr.Kind == apperror.KindInternal {
		zap.L().Error("request gagal",
			zap.String("request_id", RequestIDOf(c)),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}
	return writeError(c, status, string(appErr.Kind), appErr.Message, appErr.Details)
}

func writeError(c *fiber.Ctx, status int, kind, message string, details map[string]interface{}) error {
	body := fiber.Map{
		"status":  "error",
		"code":    status,
		"kind":    kind,
		"message": message,
	}
	if len(details) > 0 {
		body["details"] = details
	}
	return c.Status(status).JSON(body)
}

// RequestIDOf membaca request id yang diset middleware requestid.
func RequestIDOf(c *fiber.Ctx) string {
	id, _ := c.Locals(requestid.ConfigDefault.ContextKey).(string)
	return id
}
