package routes

import (
	"time"

	"simitra-backend/config"
	"simitra-backend/internal/authz"
	"simitra-backend/internal/mailer"
	"simitra-backend/internal/middleware"
	"simitra-backend/internal/repository"
	"simitra-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

// Deps berisi dependensi bersama untuk seluruh route.
type Deps struct {
	DB         *gorm.DB
	Config     config.Config
	Authorizer *authz.Authorizer
	Notifier   mailer.Notifier

	authUC  *usecase.AuthUsecase
	auth    fiber.Handler
	imports *usecase.ImportUsecase
}

func (d *Deps) can(object, action string) fiber.Handler {
	return middleware.Can(d.Authorizer, object, action)
}

// Setup memasang seluruh route di bawah /api.
func Setup(app *fiber.App, d *Deps) {
	userRepo := repository.NewUserRepository(d.DB)
	d.authUC = usecase.NewAuthUsecase(userRepo, d.Config.JWTSecret, time.Duration(d.Config.JWTTTLHours)*time.Hour)
	d.auth = middleware.Auth(d.authUC, userRepo)
	d.imports = usecase.NewImportUsecase(d.DB)

	api := app.Group("/api")
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	SetupUserRoutes(api, d)
	SetupKegiatanRoutes(api, d)
	SetupMitraRoutes(api, d)
	SetupPengajuanRoutes(api, d)
	SetupPenugasanRoutes(api, d)
	SetupPerencanaanRoutes(api, d)
	SetupMasterRoutes(api, d)
	SetupLaporanRoutes(api, d)
	SetupTransaksiRoutes(api, d)
	SetupSpkRoutes(api, d)
	SetupDashboardRoutes(api, d)
}

// NewApp membuat aplikasi Fiber lengkap dengan middleware global dan seluruh route.
func NewApp(d *Deps) *fiber.App {
	bodyLimit := 4 * 1024 * 1024
	if limit := int(d.Config.Upload.MaxBytes) + 1024*1024; limit > bodyLimit {
		bodyLimit = limit
	}
	app := fiber.New(fiber.Config{
		AppName:      "SIMITRA Backend",
		ErrorHandler: middleware.ErrorHandler,
		BodyLimit:    bodyLimit,
	})

	// Middleware Global
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(cors.New(cors.Config{AllowOrigins: d.Config.CORSOrigins})) // Agar API bisa diakses dari domain/port lain
	app.Use(middleware.RequestLogger())

	Setup(app, d)
	return app
}
