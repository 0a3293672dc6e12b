package routes

import (
	"simitra-backend/internal/authz"
	"simitra-backend/internal/handler"
	"simitra-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(api fiber.Router, d *Deps) {
	repo := repository.NewDashboardRepository(d.DB)
	hdl := handler.NewDashboardHandler(repo)

	api.Get("/dashboard", d.auth, d.can(authz.ObjDashboard, authz.ActRead), hdl.GetStats)
}
