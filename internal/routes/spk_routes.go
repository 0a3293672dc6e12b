package routes

import (
	"simitra-backend/internal/authz"
	"simitra-backend/internal/handler"
	"simitra-backend/internal/repository"
	"simitra-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func SetupSpkRoutes(api fiber.Router, d *Deps) {
	hdl := handler.NewSpkHandler(repository.NewSpkRepository(d.DB), usecase.NewSpkUsecase(d.DB))

	spk := api.Group("/spk", d.auth)
	spk.Get("/setting/:periode", d.can(authz.ObjSpk, authz.ActRead), hdl.GetSetting)
	spk.Put("/setting/:periode", d.can(authz.ObjSpk, authz.ActWrite), hdl.SaveSetting)
	spk.Get("/mitra", d.can(authz.ObjSpk, authz.ActRead), hdl.GetMitra) // ?periode=
	spk.Get("/print/:periode/:id_mitra", d.can(authz.ObjSpk, authz.ActRead), hdl.Print)
	spk.Get("/print/:periode/:id_mitra/html", d.can(authz.ObjSpk, authz.ActRead), hdl.PrintHTML)

	tpl := api.Group("/spk-templates", d.auth)
	tpl.Get("/", d.can(authz.ObjSpk, authz.ActRead), hdl.GetTemplates)
	tpl.Get("/:id", d.can(authz.ObjSpk, authz.ActRead), hdl.GetTemplate)
	tpl.Post("/", d.can(authz.ObjSpk, authz.ActWrite), hdl.CreateTemplate)
	tpl.Put("/:id", d.can(authz.ObjSpk, authz.ActWrite), hdl.UpdateTemplate)
	tpl.Delete("/:id", d.can(authz.ObjSpk, authz.ActWrite), hdl.DeleteTemplate)
}
