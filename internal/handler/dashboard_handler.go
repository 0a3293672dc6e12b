package handler

import (
	"time"

	"simitra-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	repo repository.DashboardRepository
}

func NewDashboardHandler(repo repository.DashboardRepository) *DashboardHandler {
	return &DashboardHandler{repo: repo}
}

func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.repo.GetDashboardStats(time.Now())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil statistik",
		"data":    stats,
	})
}
