package routes

import (
	"simitra-backend/internal/authz"
	"simitra-backend/internal/handler"
	"simitra-backend/internal/repository"
	"simitra-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func SetupLaporanRoutes(api fiber.Router, d *Deps) {
	hdl := handler.NewLaporanHandler(repository.NewLaporanRepository(d.DB), usecase.NewLaporanUsecase(d.DB))

	form := api.Group("/laporan-form", d.auth)
	form.Get("/", d.can(authz.ObjLaporan, authz.ActRead), hdl.GetAll)
	form.Get("/resolve", d.can(authz.ObjLaporan, authz.ActRead), hdl.Resolve) // ?id_subkegiatan=
	form.Get("/:id", d.can(authz.ObjLaporan, authz.ActRead), hdl.GetByID)
	form.Post("/", d.can(authz.ObjLaporan, authz.ActWrite), hdl.Create)
	form.Put("/:id", d.can(authz.ObjLaporan, authz.ActWrite), hdl.Update)
	form.Delete("/:id", d.can(authz.ObjLaporan, authz.ActWrite), hdl.Delete)
}
