package handler

import (
	"simitra-backend/internal/apperror"
	"simitra-backend/internal/model"
	"simitra-backend/internal/repository"
	"simitra-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

// PengajuanHandler melayani manajemen mitra: pengajuan oleh user dan review oleh admin.
type PengajuanHandler struct {
	repo repository.PengajuanRepository
	uc   *usecase.PengajuanUsecase
}

func NewPengajuanHandler(repo repository.PengajuanRepository, uc *usecase.PengajuanUsecase) *PengajuanHandler {
	return &PengajuanHandler{repo: repo, uc: uc}
}

func (h *PengajuanHandler) Submit(c *fiber.Ctx) error {
	var req PengajuanRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	p := req.toModel(currentUserID(c))
	if err := h.uc.Submit(c.UserContext(), &p); err != nil {
		return err
	}
	return respondCreated(c, "Pengajuan berhasil dikirim", p)
}

func (h *PengajuanHandler) GetMine(c *fiber.Ctx) error {
	list, err := h.repo.FindByUser(currentUserID(c))
	if err != nil {
		return err
	}
	return respond(c, "Berhasil mengambil pengajuan", list)
}

func (h *PengajuanHandler) GetAll(c *fiber.Ctx) error {
	status := c.Query("status")
	switch status {
	case "", model.PengajuanPending, model.PengajuanApproved, model.PengajuanRejected:
	default:
		return apperror.Validation("Status harus pending, approved, atau rejected")
	}
	list, err := h.repo.GetAll(status)
	if err != nil {
		return err
	}
	return respond(c, "Berhasil mengambil data pengajuan", list)
}

func (h *PengajuanHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return err
	}
	p, err := h.repo.FindByID(id)
	if err != nil {
		return err
	}
	return respond(c, "Berhasil mengambil data pengajuan", p)
}

func (h *PengajuanHandler) Approve(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return err
	}
	var req ApprovePengajuanRequest
	if len(c.Body()) > 0 {
		if err := parseBody(c, &req); err != nil {
			return err
		}
	}
	m, err := h.uc.Approve(c.UserContext(), id, currentUserID(c), req.BatasHonorBulanan)
	if err != nil {
		return err
	}
	return respond(c, "Pengajuan disetujui, mitra berhasil dibuat", m)
}

func (h *PengajuanHandler) Reject(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return err
	}
	var req RejectPengajuanRequest
	if len(c.Body()) > 0 {
		if err := parseBody(c, &req); err != nil {
			return err
		}
	}
	p, err := h.uc.Reject(c.UserContext(), id, currentUserID(c), req.Catatan)
	if err != nil {
		return err
	}
	return respond(c, "Pengajuan ditolak", p)
}
