package handler

import (
	"strconv"
	"strings"
	"time"

	"simitra-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type TransaksiHandler struct {
	uc *usecase.TransaksiUsecase
}

func NewTransaksiHandler(uc *usecase.TransaksiUsecase) *TransaksiHandler {
	return &TransaksiHandler{uc: uc}
}

// GetBulanan menyediakan rekap honor penugasan per mitra untuk satu bulan.
func (h *TransaksiHandler) GetBulanan(c *fiber.Ctx) error {
	periode := strings.TrimSpace(c.Query("periode"))
	if periode == "" {
		periode = time.Now().Format("2006-01")
	}
	rows, err := h.uc.Bulanan(c.UserContext(), periode)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil rekap transaksi",
		"periode": periode,
		"data":    rows,
	})
}

// GetTahunan membandingkan rencana honor mitra dengan batas honor tahunan.
func (h *TransaksiHandler) GetTahunan(c *fiber.Ctx) error {
	tahun := strings.TrimSpace(c.Query("tahun"))
	if tahun == "" {
		tahun = strconv.Itoa(time.Now().Year())
	}
	out, err := h.uc.Tahunan(c.UserContext(), tahun)
	if err != nil {
		return err
	}
	return respond(c, "Berhasil mengambil rekap transaksi tahunan", out)
}
