package handler

import (
	"strings"

	"simitra-backend/config"
	"simitra-backend/internal/model"
	"simitra-backend/internal/repository"
	"simitra-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type PerencanaanHandler struct {
	repo    repository.PerencanaanRepository
	uc      *usecase.PerencanaanUsecase
	imports *usecase.ImportUsecase
	upload  config.UploadConfig
}

func NewPerencanaanHandler(repo repository.PerencanaanRepository, uc *usecase.PerencanaanUsecase, imports *usecase.ImportUsecase, upload config.UploadConfig) *PerencanaanHandler {
	return &PerencanaanHandler{repo: repo, uc: uc, imports: imports, upload: upload}
}

func (h *PerencanaanHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.repo.GetAll(c.Query("id_subkegiatan"))
	if err != nil {
		return err
	}
	return respond(c, "Berhasil mengambil data perencanaan", list)
}

func (h *PerencanaanHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return err
	}
	p, err := h.repo.FindByID(id)
	if err != nil {
		return err
	}
	return respond(c, "Berhasil mengambil data perencanaan", p)
}

func (h *PerencanaanHandler) Create(c *fiber.Ctx) error {
	var req TimRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	p := &model.Perencanaan{
		IDSubkegiatan:  strings.TrimSpace(req.IDSubkegiatan),
		IDPengawas:     req.IDPengawas,
		JumlahMaxMitra: req.JumlahMaxMitra,
	}
	if err := h.uc.Create(c.UserContext(), p); err != nil {
		return err
	}
	return respondCreated(c, "Perencanaan berhasil dibuat", p)
}

func (h *PerencanaanHandler) Update(c *fiber.Ctx) error {
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
	return respond(c, "Perencanaan berhasil diperbarui", p)
}

func (h *PerencanaanHandler) Delete(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return respond(c, "Perencanaan berhasil dihapus", nil)
}

func (h *PerencanaanHandler) Import(c *fiber.Ctx) error {
	rows, err := readUpload(c, h.upload)
	if err != nil {
		return err
	}
	return respond(c, "Import perencanaan selesai", h.imports.Perencanaan(c.UserContext(), rows))
}

// ===== Kelompok Perencanaan =====

func (h *PerencanaanHandler) AddAnggota(c *fiber.Ctx) error {
	var req KelompokPerencanaanRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	k, err := h.uc.AddAnggota(c.UserContext(), usecase.PerencanaanAnggotaInput{
		IDPerencanaan: req.IDPerencanaan,
		IDMitra:       req.IDMitra,
		KodeJabatan:   strings.TrimSpace(req.KodeJabatan),
		VolumeTugas:   req.VolumeTugas,
	})
	if err != nil {
		return err
	}
	return respondCreated(c, "Mitra berhasil ditambahkan ke perencanaan", k)
}

func (h *PerencanaanHandler) UpdateAnggota(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return err
	}
	var req UpdateKelompokPerencanaanRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	k, err := h.uc.UpdateAnggota(c.UserContext(), id, strings.TrimSpace(req.KodeJabatan), req.VolumeTugas)
	if err != nil {
		return err
	}
	return respond(c, "Anggota perencanaan berhasil diperbarui", k)
}

func (h *PerencanaanHandler) DeleteAnggota(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.DeleteAnggota(c.UserContext(), id); err != nil {
		return err
	}
	return respond(c, "Mitra berhasil dikeluarkan dari perencanaan", nil)
}
