package routes

import (
	"simitra-backend/internal/authz"
	"simitra-backend/internal/handler"
	"simitra-backend/internal/repository"
	"simitra-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func SetupKegiatanRoutes(api fiber.Router, d *Deps) {
	hdl := handler.NewKegiatanHandler(
		repository.NewKegiatanRepository(d.DB),
		repository.NewSubkegiatanRepository(d.DB),
		usecase.NewKegiatanUsecase(d.DB),
		d.imports,
		d.Config.Upload,
	)

	kegiatan := api.Group("/kegiatan", d.auth)
	kegiatan.Get("/", d.can(authz.ObjKegiatan, authz.ActRead), hdl.GetAll)
	kegiatan.Get("/:id", d.can(authz.ObjKegiatan, authz.ActRead), hdl.GetByID)
	kegiatan.Post("/", d.can(authz.ObjKegiatan, authz.ActWrite), hdl.Create) // Kegiatan + subkegiatan dalam satu transaksi
	kegiatan.Put("/:id", d.can(authz.ObjKegiatan, authz.ActWrite), hdl.Update)
	kegiatan.Delete("/:id", d.can(authz.ObjKegiatan, authz.ActWrite), hdl.Delete)

	sub := api.Group("/subkegiatan", d.auth)
	sub.Get("/", d.can(authz.ObjSubkegiatan, authz.ActRead), hdl.GetAllSubkegiatan) // ?id_kegiatan=&periode=
	sub.Post("/import", d.can(authz.ObjSubkegiatan, authz.ActWrite), hdl.ImportSubkegiatan)
	sub.Get("/:id", d.can(authz.ObjSubkegiatan, authz.ActRead), hdl.GetSubkegiatan)
	sub.Post("/", d.can(authz.ObjSubkegiatan, authz.ActWrite), hdl.CreateSubkegiatan)
	sub.Put("/:id", d.can(authz.ObjSubkegiatan, authz.ActWrite), hdl.UpdateSubkegiatan)
	sub.Patch("/:id/status", d.can(authz.ObjSubkegiatan, authz.ActWrite), hdl.UpdateStatusSubkegiatan)
	sub.Delete("/:id", d.can(authz.ObjSubkegiatan, authz.ActWrite), hdl.DeleteSubkegiatan)
}
