package routes

import (
	"simitra-backend/internal/authz"
	"simitra-backend/internal/handler"
	"simitra-backend/internal/repository"
	"simitra-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func SetupPenugasanRoutes(api fiber.Router, d *Deps) {
	hdl := handler.NewPenugasanHandler(
		repository.NewPenugasanRepository(d.DB),
		usecase.NewPenugasanUsecase(d.DB),
		d.imports,
		d.Config.Upload,
	)

	tim := api.Group("/penugasan", d.auth)
	tim.Get("/", d.can(authz.ObjPenugasan, authz.ActRead), hdl.GetAll) // ?id_subkegiatan=
	tim.Post("/import", d.can(authz.ObjPenugasan, authz.ActWrite), hdl.Import)
	tim.Get("/:id", d.can(authz.ObjPenugasan, authz.ActRead), hdl.GetByID)
	tim.Post("/", d.can(authz.ObjPenugasan, authz.ActWrite), hdl.Create)
	tim.Put("/:id", d.can(authz.ObjPenugasan, authz.ActWrite), hdl.Update)
	tim.Delete("/:id", d.can(authz.ObjPenugasan, authz.ActWrite), hdl.Delete)

	anggota := api.Group("/kelompok-penugasan", d.auth, d.can(authz.ObjPenugasan, authz.ActWrite))
	anggota.Post("/", hdl.AddAnggota)
	anggota.Delete("/:id", hdl.DeleteAnggota)
}
