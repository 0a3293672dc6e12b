package routes

import (
	"simitra-backend/internal/authz"
	"simitra-backend/internal/handler"
	"simitra-backend/internal/middleware"
	"simitra-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(api fiber.Router, d *Deps) {
	repo := repository.NewUserRepository(d.DB)
	hdl := handler.NewUserHandler(repo, d.authUC, d.imports, d.Config.Upload)

	users := api.Group("/users")

	// Auth Routes (Public)
	limiter := middleware.LoginRateLimiter()
	users.Post("/register", limiter, hdl.Register)
	users.Post("/login", limiter, hdl.Login)

	// Profile Routes (Protected)
	users.Get("/me", d.auth, hdl.GetProfile)
	users.Put("/me", d.auth, hdl.UpdateProfile)
	users.Put("/me/password", d.auth, hdl.ChangePassword)

	// Admin Routes (Kelola User)
	read := []fiber.Handler{d.auth, d.can(authz.ObjUsers, authz.ActRead)}
	write := []fiber.Handler{d.auth, d.can(authz.ObjUsers, authz.ActWrite)}
	users.Get("/", append(read, hdl.GetAll)...)
	users.Post("/import", append(write, hdl.Import)...)
	users.Get("/:id", append(read, hdl.GetByID)...)
	users.Post("/", append(write, hdl.Create)...)
	users.Put("/:id", append(write, hdl.Update)...)
	users.Delete("/:id", append(write, hdl.Delete)...)
}
