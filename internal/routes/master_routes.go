package routes

import (
	"simitra-backend/internal/authz"
	"simitra-backend/internal/handler"

	"github.com/gofiber/fiber/v2"
)

func SetupMasterRoutes(api fiber.Router, d *Deps) {
	hdl := handler.NewMasterHandler(d.DB)

	honor := api.Group("/honorarium", d.auth)
	honor.Get("/", d.can(authz.ObjHonorarium, authz.ActRead), hdl.GetAllHonorarium)
	honor.Get("/:id", d.can(authz.ObjHonorarium, authz.ActRead), hdl.GetHonorarium)
	honor.Post("/", d.can(authz.ObjHonorarium, authz.ActWrite), hdl.CreateHonorarium)
	honor.Put("/:id", d.can(authz.ObjHonorarium, authz.ActWrite), hdl.UpdateHonorarium)
	honor.Delete("/:id", d.can(authz.ObjHonorarium, authz.ActWrite), hdl.DeleteHonorarium)

	jabatan := api.Group("/jabatan-mitra", d.auth)
	jabatan.Get("/", d.can(authz.ObjJabatan, authz.ActRead), hdl.GetAllJabatan)
	jabatan.Get("/:kode", d.can(authz.ObjJabatan, authz.ActRead), hdl.GetJabatan)
	jabatan.Post("/", d.can(authz.ObjJabatan, authz.ActWrite), hdl.CreateJabatan)
	jabatan.Put("/:kode", d.can(authz.ObjJabatan, authz.ActWrite), hdl.UpdateJabatan)
	jabatan.Delete("/:kode", d.can(authz.ObjJabatan, authz.ActWrite), hdl.DeleteJabatan)

	satuan := api.Group("/satuan", d.auth)
	satuan.Get("/", d.can(authz.ObjSatuan, authz.ActRead), hdl.GetAllSatuan)
	satuan.Get("/:id", d.can(authz.ObjSatuan, authz.ActRead), hdl.GetSatuan)
	satuan.Post("/", d.can(authz.ObjSatuan, authz.ActWrite), hdl.CreateSatuan)
	satuan.Put("/:id", d.can(authz.ObjSatuan, authz.ActWrite), hdl.UpdateSatuan)
	satuan.Delete("/:id", d.can(authz.ObjSatuan, authz.ActWrite), hdl.DeleteSatuan)

	aturan := api.Group("/aturan-periode", d.auth)
	aturan.Get("/", d.can(authz.ObjAturan, authz.ActRead), hdl.GetAllAturan)
	aturan.Get("/:id", d.can(authz.ObjAturan, authz.ActRead), hdl.GetAturan)
	aturan.Post("/", d.can(authz.ObjAturan, authz.ActWrite), hdl.CreateAturan)
	aturan.Put("/:id", d.can(authz.ObjAturan, authz.ActWrite), hdl.UpdateAturan)
	aturan.Delete("/:id", d.can(authz.ObjAturan, authz.ActWrite), hdl.DeleteAturan)
}
