package handler

import (
	"simitra-backend/config"
	"simitra-backend/internal/apperror"
	"simitra-backend/internal/repository"
	"simitra-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type MitraHandler struct {
	repo    repository.MitraRepository
	imports *usecase.ImportUsecase
	upload  config.UploadConfig
}

func NewMitraHandler(repo repository.MitraRepository, imports *usecase.ImportUsecase, upload config.UploadConfig) *MitraHandler {
	return &MitraHandler{repo: repo, imports: imports, upload: upload}
}

func (h *MitraHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.repo.GetAll(c.Query("search"))
	if err != nil {
		return err
	}
	return respond(c, "Berhasil mengambil data mitra", list)
}

func (h *MitraHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return err
	}
	m, err := h.repo.FindByID(id)
	if err != nil {
		return err
	}
	return respond(c, "Berhasil mengambil data mitra", m)
}

func (h *MitraHandler) Create(c *fiber.Ctx) error {
	var req MitraRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	m := req.toModel()

	exists, err := h.repo.ExistsNIKOrSobatID(m.NIK, m.SobatID, 0)
	if err != nil {
		return err
	}
	if exists {
		return apperror.Conflict("NIK atau Sobat ID sudah terdaftar")
	}
	if err := h.repo.Create(&m); err != nil {
		return err
	}
	return respondCreated(c, "Mitra berhasil ditambahkan", m)
}

func (h *MitraHandler) Update(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return err
	}
	var req MitraRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	existing, err := h.repo.FindByID(id)
	if err != nil {
		return err
	}

	m := req.toModel()
	exists, err := h.repo.ExistsNIKOrSobatID(m.NIK, m.SobatID, id)
	if err != nil {
		return err
	}
	if exists {
		return apperror.Conflict("NIK atau Sobat ID sudah dipakai mitra lain")
	}

	m.ID = existing.ID
	m.IDUser = existing.IDUser
	m.CreatedAt = existing.CreatedAt
	if err := h.repo.Update(&m); err != nil {
		return err
	}
	return respond(c, "Mitra berhasil diperbarui", m)
}

func (h *MitraHandler) Delete(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return err
	}
	if err := h.repo.Delete(id); err != nil {
		return err
	}
	return respond(c, "Mitra berhasil dihapus", nil)
}

func (h *MitraHandler) Import(c *fiber.Ctx) error {
	rows, err := readUpload(c, h.upload)
	if err != nil {
		return err
	}
	return respond(c, "Import mitra selesai", h.imports.Mitra(c.UserContext(), rows))
}
