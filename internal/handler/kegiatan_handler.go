package handler

import (
	"strings"

	"simitra-backend/config"
	"simitra-backend/internal/apperror"
	"simitra-backend/internal/model"
	"simitra-backend/internal/repository"
	"simitra-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type KegiatanHandler struct {
	repo    repository.KegiatanRepository
	subRepo repository.SubkegiatanRepository
	uc      *usecase.KegiatanUsecase
	imports *usecase.ImportUsecase
	upload  config.UploadConfig
}

func NewKegiatanHandler(repo repository.KegiatanRepository, subRepo repository.SubkegiatanRepository, uc *usecase.KegiatanUsecase, imports *usecase.ImportUsecase, upload config.UploadConfig) *KegiatanHandler {
	return &KegiatanHandler{repo: repo, subRepo: subRepo, uc: uc, imports: imports, upload: upload}
}

func (h *KegiatanHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.repo.GetAll(c.Query("search"), c.Query("tahun"))
	if err != nil {
		return err
	}
	return respond(c, "Berhasil mengambil data kegiatan", list)
}

func (h *KegiatanHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return err
	}
	k, err := h.repo.FindByID(id)
	if err != nil {
		return err
	}
	return respond(c, "Berhasil mengambil data kegiatan", k)
}

// Create membuat kegiatan beserta subkegiatan (opsional) dalam satu transaksi.
func (h *KegiatanHandler) Create(c *fiber.Ctx) error {
	var req KegiatanRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := checkKegiatanDates(req); err != nil {
		return err
	}

	k := &model.Kegiatan{
		NamaKegiatan:   strings.TrimSpace(req.NamaKegiatan),
		Deskripsi:      req.Deskripsi,
		TahunAnggaran:  req.TahunAnggaran,
		TanggalMulai:   req.TanggalMulai,
		TanggalSelesai: req.TanggalSelesai,
	}
	subs := make([]model.Subkegiatan, 0, len(req.Subkegiatan))
	for _, s := range req.Subkegiatan {
		subs = append(subs, s.toModel(0))
	}

	created, err := h.uc.Create(c.UserContext(), k, subs)
	if err != nil {
		return err
	}
	return respondCreated(c, "Kegiatan berhasil dibuat", created)
}

func (h *KegiatanHandler) Update(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return err
	}
	var req KegiatanRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if len(req.Subkegiatan) > 0 {
		return apperror.Validation("Subkegiatan diubah melalui endpoint /api/subkegiatan")
	}
	if err := checkKegiatanDates(req); err != nil {
		return err
	}

	k, err := h.repo.FindByID(id)
	if err != nil {
		return err
	}
	k.NamaKegiatan = strings.TrimSpace(req.NamaKegiatan)
	k.Deskripsi = req.Deskripsi
	k.TahunAnggaran = req.TahunAnggaran
	k.TanggalMulai = req.TanggalMulai
	k.TanggalSelesai = req.TanggalSelesai
	if err := h.repo.Update(k); err != nil {
		return err
	}
	return respond(c, "Kegiatan berhasil diperbarui", k)
}

func (h *KegiatanHandler) Delete(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return respond(c, "Kegiatan berhasil dihapus", nil)
}

func checkKegiatanDates(req KegiatanRequest) error {
	if !req.TanggalMulai.IsZero() && !req.TanggalSelesai.IsZero() && req.TanggalSelesai.Before(req.TanggalMulai.Time) {
		return apperror.Validation("Tanggal selesai kegiatan sebelum tanggal mulai")
	}
	return nil
}

// ===== Subkegiatan =====

func (h *KegiatanHandler) GetAllSubkegiatan(c *fiber.Ctx) error {
	idKegiatan, err := queryUint(c, "id_kegiatan")
	if err != nil {
		return err
	}
	list, err := h.subRepo.GetAll(repository.SubkegiatanFilter{
		IDKegiatan: idKegiatan,
		Periode:    c.Query("periode"),
		Search:     c.Query("search"),
	})
	if err != nil {
		return err
	}
	return respond(c, "Berhasil mengambil data subkegiatan", list)
}

func (h *KegiatanHandler) GetSubkegiatan(c *fiber.Ctx) error {
	sub, err := h.subRepo.FindByID(c.Params("id"))
	if err != nil {
		return err
	}
	return respond(c, "Berhasil mengambil data subkegiatan", sub)
}

func (h *KegiatanHandler) CreateSubkegiatan(c *fiber.Ctx) error {
	var req CreateSubkegiatanRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	sub := req.toModel(req.IDKegiatan)
	if err := h.uc.CreateSubkegiatan(c.UserContext(), &sub); err != nil {
		return err
	}
	return respondCreated(c, "Subkegiatan berhasil dibuat", sub)
}

func (h *KegiatanHandler) UpdateSubkegiatan(c *fiber.Ctx) error {
	var req SubkegiatanRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	sub, err := h.uc.UpdateSubkegiatan(c.UserContext(), c.Params("id"), req.toModel(0))
	if err != nil {
		return err
	}
	return respond(c, "Subkegiatan berhasil diperbarui", sub)
}

func (h *KegiatanHandler) UpdateStatusSubkegiatan(c *fiber.Ctx) error {
	var req StatusSubkegiatanRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	id := c.Params("id")
	if _, err := h.subRepo.FindByID(id); err != nil {
		return err
	}
	if err := h.subRepo.UpdateStatus(id, req.Status); err != nil {
		return err
	}
	return respond(c, "Status subkegiatan berhasil diperbarui", fiber.Map{"id": id, "status": req.Status})
}

func (h *KegiatanHandler) DeleteSubkegiatan(c *fiber.Ctx) error {
	if err := h.subRepo.Delete(c.Params("id")); err != nil {
		return err
	}
	return respond(c, "Subkegiatan berhasil dihapus", nil)
}

func (h *KegiatanHandler) ImportSubkegiatan(c *fiber.Ctx) error {
	rows, err := readUpload(c, h.upload)
	if err != nil {
		return err
	}
	return respond(c, "Import subkegiatan selesai", h.imports.Subkegiatan(c.UserContext(), rows))
}
