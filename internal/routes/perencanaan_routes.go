package routes

import (
	"simitra-backend/internal/authz"
	"simitra-backend/internal/handler"
	"simitra-backend/internal/repository"
	"simitra-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func SetupPerencanaanRoutes(api fiber.Router, d *Deps) {
	hdl := handler.NewPerencanaanHandler(
		repository.NewPerencanaanRepository(d.DB),
		usecase.NewPerencanaanUsecase(d.DB),
		d.imports,
		d.Config.Upload,
	)

	rencana := api.Group("/perencanaan", d.auth)
	rencana.Get("/", d.can(authz.ObjPerencanaan, authz.ActRead), hdl.GetAll)
	rencana.Post("/import", d.can(authz.ObjPerencanaan, authz.ActWrite), hdl.Import)
	rencana.Get("/:id", d.can(authz.ObjPerencanaan, authz.ActRead), hdl.GetByID)
	rencana.Post("/", d.can(authz.ObjPerencanaan, authz.ActWrite), hdl.Create)
	rencana.Put("/:id", d.can(authz.ObjPerencanaan, authz.ActWrite), hdl.Update)
	rencana.Delete("/:id", d.can(authz.ObjPerencanaan, authz.ActWrite), hdl.Delete)

	anggota := api.Group("/kelompok-perencanaan", d.auth, d.can(authz.ObjPerencanaan, authz.ActWrite))
	anggota.Post("/", hdl.AddAnggota)
	anggota.Put("/:id", hdl.UpdateAnggota)
	anggota.Delete("/:id", hdl.DeleteAnggota)
}
