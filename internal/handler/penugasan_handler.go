package handler

import (
	"strings"

	"simitra-backend/config"
	"simitra-backend/internal/model"
	"simitra-backend/internal/repository"
	"simitra-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type PenugasanHandler struct {
	repo    repository.PenugasanRepository
	uc      *usecase.PenugasanUsecase
	imports *usecase.ImportUsecase
	upload  config.UploadConfig
}

func NewPenugasanHandler(repo repository.PenugasanRepository, uc *usecase.PenugasanUsecase, imports *usecase.ImportUsecase, upload config.UploadConfig) *PenugasanHandler {
	return &PenugasanHandler{repo: repo, uc: uc, imports: imports, upload: upload}
}

func (h *PenugasanHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.repo.GetAll(c.Query("id_subkegiatan"))
	if err != nil {
		return err
	}
	return respond(c, "Berhasil mengambil data penugasan", list)
}

// GetByID mengembalikan tim beserta anggotanya.
func (h *PenugasanHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return err
	}
	p, err := h.repo.FindByID(id)
	if err != nil {
		return err
	}
	return respond(c, "Berhasil mengambil data penugasan", p)
}

func (h *PenugasanHandler) Create(c *fiber.Ctx) error {
	var req TimRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	p := &model.Penugasan{
		IDSubkegiatan:  strings.TrimSpace(req.IDSubkegiatan),
		IDPengawas:     req.IDPengawas,
		JumlahMaxMitra: req.JumlahMaxMitra,
	}
	if err := h.uc.Create(c.UserContext(), p); err != nil {
		return err
	}
	return respondCreated(c, "Penugasan berhasil dibuat", p)
}

func (h *PenugasanHandler) Update(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return err
	}
	var req UpdateTimRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	p, err := h.uc.Update(c.UserContext(), id, req.IDPengawas, req.JumlahMaxMitra)
	if err != nil {
		return err
	}
	return respond(c, "Penugasan berhasil diperbarui", p)
}

func (h *PenugasanHandler) Delete(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return respond(c, "Penugasan berhasil dihapus", nil)
}

func (h *PenugasanHandler) Import(c *fiber.Ctx) error {
	rows, err := readUpload(c, h.upload)
	if err != nil {
		return err
	}
	return respond(c, "Import penugasan selesai", h.imports.Penugasan(c.UserContext(), rows))
}

// ===== Kelompok Penugasan =====

func (h *PenugasanHandler) AddAnggota(c *fiber.Ctx) error {
	var req KelompokPenugasanRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	k, err := h.uc.AddAnggota(c.UserContext(), usecase.AddAnggotaInput{
		IDPenugasan: req.IDPenugasan,
		IDMitra:     req.IDMitra,
		KodeJabatan: strings.TrimSpace(req.KodeJabatan),
	})
	if err != nil {
		return err
	}
	return respondCreated(c, "Mitra berhasil ditambahkan ke tim", k)
}

func (h *PenugasanHandler) DeleteAnggota(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return err
	}
	if err := h.repo.DeleteAnggota(id); err != nil {
		return err
	}
	return respond(c, "Mitra berhasil dikeluarkan dari tim", nil)
}
