package routes

import (
	"simitra-backend/internal/authz"
	"simitra-backend/internal/handler"
	"simitra-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func SetupTransaksiRoutes(api fiber.Router, d *Deps) {
	hdl := handler.NewTransaksiHandler(usecase.NewTransaksiUsecase(d.DB))

	transaksi := api.Group("/transaksi", d.auth, d.can(authz.ObjTransaksi, authz.ActRead))
	transaksi.Get("/", hdl.GetBulanan)        // ?periode=YYYY-MM
	transaksi.Get("/tahunan", hdl.GetTahunan) // ?tahun=YYYY
}
