package handler

import (
	"strings"

	"simitra-backend/internal/apperror"
	"simitra-backend/internal/repository"
	"simitra-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type LaporanHandler struct {
	repo repository.LaporanRepository
	uc   *usecase.LaporanUsecase
}

func NewLaporanHandler(repo repository.LaporanRepository, uc *usecase.LaporanUsecase) *LaporanHandler {
	return &LaporanHandler{repo: repo, uc: uc}
}

func (h *LaporanHandler) GetAll(c *fiber.Ctx) error {
	idKegiatan, err := queryUint(c, "id_kegiatan")
	if err != nil {
		return err
	}
	list, err := h.repo.GetAll(idKegiatan)
	if err != nil {
		return err
	}
	return respond(c, "Berhasil mengambil form laporan", list)
}

func (h *LaporanHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return err
	}
	form, err := h.repo.FindByID(id)
	if err != nil {
		return err
	}
	return respond(c, "Berhasil mengambil form laporan", form)
}

// Resolve mengembalikan form yang berlaku untuk satu subkegiatan.
func (h *LaporanHandler) Resolve(c *fiber.Ctx) error {
	idSub := strings.TrimSpace(c.Query("id_subkegiatan"))
	if idSub == "" {
		return apperror.Validation("Parameter id_subkegiatan wajib diisi")
	}
	form, err := h.uc.Resolve(c.UserContext(), idSub)
	if err != nil {
		return err
	}
	return respond(c, "Berhasil mengambil form laporan", form)
}

func (h *LaporanHandler) Create(c *fiber.Ctx) error {
	var req LaporanFormRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	form := req.toModel()
	if err := h.uc.Create(c.UserContext(), &form); err != nil {
		return err
	}
	return respondCreated(c, "Form laporan berhasil dibuat", form)
}

func (h *LaporanHandler) Update(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return err
	}
	var req LaporanFormRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	form := req.toModel()
	if err := h.uc.Update(c.UserContext(), id, &form); err != nil {
		return err
	}
	return respond(c, "Form laporan berhasil diperbarui", form)
}

func (h *LaporanHandler) Delete(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return respond(c, "Form laporan berhasil dihapus", nil)
}
