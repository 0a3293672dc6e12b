package routes

import (
	"simitra-backend/internal/authz"
	"simitra-backend/internal/handler"
	"simitra-backend/internal/middleware"
	"simitra-backend/internal/model"
	"simitra-backend/internal/repository"
	"simitra-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func SetupPengajuanRoutes(api fiber.Router, d *Deps) {
	hdl := handler.NewPengajuanHandler(
		repository.NewPengajuanRepository(d.DB),
		usecase.NewPengajuanUsecase(d.DB, d.Notifier),
	)

	mm := api.Group("/manajemen-mitra", d.auth)

	// User mengajukan diri menjadi mitra
	mm.Post("/pengajuan", middleware.Role(model.RoleUser), d.can(authz.ObjPengajuan, authz.ActSubmit), hdl.Submit)
	mm.Get("/pengajuan/saya", d.can(authz.ObjPengajuan, authz.ActSubmit), hdl.GetMine)

	// Review oleh admin
	mm.Get("/", d.can(authz.ObjPengajuan, authz.ActRead), hdl.GetAll) // ?status=
	mm.Get("/:id", d.can(authz.ObjPengajuan, authz.ActRead), hdl.GetByID)
	mm.Put("/:id/approve", d.can(authz.ObjPengajuan, authz.ActWrite), hdl.Approve)
	mm.Put("/:id/reject", d.can(authz.ObjPengajuan, authz.ActWrite), hdl.Reject)
}
