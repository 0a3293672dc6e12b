package routes

import (
	"simitra-backend/internal/authz"
	"simitra-backend/internal/handler"
	"simitra-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

func SetupMitraRoutes(api fiber.Router, d *Deps) {
	hdl := handler.NewMitraHandler(repository.NewMitraRepository(d.DB), d.imports, d.Config.Upload)

	mitra := api.Group("/mitra", d.auth)
	mitra.Get("/", d.can(authz.ObjMitra, authz.ActRead), hdl.GetAll) // ?search=
	mitra.Post("/import", d.can(authz.ObjMitra, authz.ActWrite), hdl.Import)
	mitra.Get("/:id", d.can(authz.ObjMitra, authz.ActRead), hdl.GetByID)
	mitra.Post("/", d.can(authz.ObjMitra, authz.ActWrite), hdl.Create)
	mitra.Put("/:id", d.can(authz.ObjMitra, authz.ActWrite), hdl.Update)
	mitra.Delete("/:id", d.can(authz.ObjMitra, authz.ActWrite), hdl.Delete)
}
