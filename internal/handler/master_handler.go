package handler

import (
	"errors"
	"strings"

	"simitra-backend/internal/apperror"
	"simitra-backend/internal/model"
	"simitra-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// MasterHandler mengelola data referensi: honorarium, jabatan mitra, satuan, dan aturan periode.
type MasterHandler struct {
	honorRepo   repository.HonorariumRepository
	subRepo     repository.SubkegiatanRepository
	jabatanRepo repository.CrudRepository[model.JabatanMitra]
	satuanRepo  repository.CrudRepository[model.SatuanKegiatan]
	aturanRepo  repository.AturanPeriodeRepository
}

func NewMasterHandler(db *gorm.DB) *MasterHandler {
	return &MasterHandler{
		honorRepo:   repository.NewHonorariumRepository(db),
		subRepo:     repository.NewSubkegiatanRepository(db),
		jabatanRepo: repository.NewCrudRepository[model.JabatanMitra](db, "kode_jabatan"),
		satuanRepo:  repository.NewCrudRepository[model.SatuanKegiatan](db, "id"),
		aturanRepo:  repository.NewAturanPeriodeRepository(db),
	}
}

// ===== Honorarium =====

func (h *MasterHandler) GetAllHonorarium(c *fiber.Ctx) error {
	list, err := h.honorRepo.GetAll(c.Query("id_subkegiatan"))
	if err != nil {
		return err
	}
	return respond(c, "Berhasil mengambil data honorarium", list)
}

func (h *MasterHandler) GetHonorarium(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return err
	}
	item, err := h.honorRepo.FindByID(id)
	if err != nil {
		return err
	}
	return respond(c, "Berhasil mengambil data honorarium", item)
}

func (h *MasterHandler) CreateHonorarium(c *fiber.Ctx) error {
	var req HonorariumRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	item := &model.Honorarium{}
	if err := h.fillHonorarium(item, req); err != nil {
		return err
	}
	if err := h.honorRepo.Create(item); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperror.Conflict("Tarif untuk subkegiatan dan jabatan ini sudah ada")
		}
		return err
	}
	return respondCreated(c, "Honorarium berhasil ditambahkan", item)
}

func (h *MasterHandler) UpdateHonorarium(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return err
	}
	var req HonorariumRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	item, err := h.honorRepo.FindByID(id)
	if err != nil {
		return err
	}
	if err := h.fillHonorarium(item, req); err != nil {
		return err
	}
	item.Satuan = nil
	if err := h.honorRepo.Update(item); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperror.Conflict("Tarif untuk subkegiatan dan jabatan ini sudah ada")
		}
		return err
	}
	return respond(c, "Honorarium berhasil diperbarui", item)
}

func (h *MasterHandler) fillHonorarium(item *model.Honorarium, req HonorariumRequest) error {
	if _, err := h.subRepo.FindByID(req.IDSubkegiatan); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("Subkegiatan %s tidak ditemukan", req.IDSubkegiatan)
		}
		return err
	}
	if _, err := h.satuanRepo.FindByID(req.IDSatuan); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("Satuan %d tidak ditemukan", req.IDSatuan)
		}
		return err
	}
	item.IDSubkegiatan = req.IDSubkegiatan
	item.KodeJabatan = strings.TrimSpace(req.KodeJabatan)
	item.Tarif = req.Tarif
	item.IDSatuan = req.IDSatuan
	item.BasisVolume = req.BasisVolume
	if item.BasisVolume == 0 {
		item.BasisVolume = 1
	}
	return nil
}

func (h *MasterHandler) DeleteHonorarium(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return err
	}
	if err := h.honorRepo.Delete(id); err != nil {
		return err
	}
	return respond(c, "Honorarium berhasil dihapus", nil)
}

// ===== Jabatan Mitra =====

func (h *MasterHandler) GetAllJabatan(c *fiber.Ctx) error {
	list, err := h.jabatanRepo.FindAll("kode_jabatan ASC")
	if err != nil {
		return err
	}
	return respond(c, "Berhasil mengambil data jabatan", list)
}

func (h *MasterHandler) GetJabatan(c *fiber.Ctx) error {
	item, err := h.jabatanRepo.FindByID(c.Params("kode"))
	if err != nil {
		return err
	}
	return respond(c, "Berhasil mengambil data jabatan", item)
}

func (h *MasterHandler) CreateJabatan(c *fiber.Ctx) error {
	var req JabatanMitraRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	kode := strings.TrimSpace(req.KodeJabatan)
	if _, err := h.jabatanRepo.FindByID(kode); err == nil {
		return apperror.Conflict("Kode jabatan %s sudah ada", kode)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	item := &model.JabatanMitra{
		KodeJabatan:   kode,
		NamaJabatan:   strings.TrimSpace(req.NamaJabatan),
		IDSubkegiatan: trimOptional(req.IDSubkegiatan),
	}
	if err := h.jabatanRepo.Create(item); err != nil {
		return err
	}
	return respondCreated(c, "Jabatan berhasil ditambahkan", item)
}

// UpdateJabatan tidak mengubah kode jabatan karena kode dipakai sebagai referensi tarif dan anggota tim.
func (h *MasterHandler) UpdateJabatan(c *fiber.Ctx) error {
	var req JabatanMitraRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	item, err := h.jabatanRepo.FindByID(c.Params("kode"))
	if err != nil {
		return err
	}
	item.NamaJabatan = strings.TrimSpace(req.NamaJabatan)
	item.IDSubkegiatan = trimOptional(req.IDSubkegiatan)
	if err := h.jabatanRepo.Update(item); err != nil {
		return err
	}
	return respond(c, "Jabatan berhasil diperbarui", item)
}

func (h *MasterHandler) DeleteJabatan(c *fiber.Ctx) error {
	if err := h.jabatanRepo.Delete(c.Params("kode")); err != nil {
		return err
	}
	return respond(c, "Jabatan berhasil dihapus", nil)
}

// ===== Satuan Kegiatan =====

func (h *MasterHandler) GetAllSatuan(c *fiber.Ctx) error {
	list, err := h.satuanRepo.FindAll("nama_satuan ASC")
	if err != nil {
		return err
	}
	return respond(c, "Berhasil mengambil data satuan", list)
}

func (h *MasterHandler) GetSatuan(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return err
	}
	item, err := h.satuanRepo.FindByID(id)
	if err != nil {
		return err
	}
	return respond(c, "Berhasil mengambil data satuan", item)
}

func (h *MasterHandler) CreateSatuan(c *fiber.Ctx) error {
	var req SatuanRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	item := &model.SatuanKegiatan{NamaSatuan: strings.TrimSpace(req.NamaSatuan), Alias: req.Alias}
	if err := h.satuanRepo.Create(item); err != nil {
		return err
	}
	return respondCreated(c, "Satuan berhasil ditambahkan", item)
}

func (h *MasterHandler) UpdateSatuan(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return err
	}
	var req SatuanRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	item, err := h.satuanRepo.FindByID(id)
	if err != nil {
		return err
	}
	item.NamaSatuan = strings.TrimSpace(req.NamaSatuan)
	item.Alias = req.Alias
	if err := h.satuanRepo.Update(item); err != nil {
		return err
	}
	return respond(c, "Satuan berhasil diperbarui", item)
}

func (h *MasterHandler) DeleteSatuan(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return err
	}
	if err := h.satuanRepo.Delete(id); err != nil {
		return err
	}
	return respond(c, "Satuan berhasil dihapus", nil)
}

// ===== Aturan Periode =====

func (h *MasterHandler) GetAllAturan(c *fiber.Ctx) error {
	list, err := h.aturanRepo.FindAll("periode DESC")
	if err != nil {
		return err
	}
	return respond(c, "Berhasil mengambil aturan periode", list)
}

func (h *MasterHandler) GetAturan(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return err
	}
	item, err := h.aturanRepo.FindByID(id)
	if err != nil {
		return err
	}
	return respond(c, "Berhasil mengambil aturan periode", item)
}

func (h *MasterHandler) CreateAturan(c *fiber.Ctx) error {
	var req AturanPeriodeRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	existing, err := h.aturanRepo.FindByPeriode(req.Periode)
	if err != nil {
		return err
	}
	if existing != nil {
		return apperror.Conflict("Aturan untuk periode %s sudah ada", req.Periode)
	}
	item := &model.AturanPeriode{Periode: req.Periode, BatasHonor: req.BatasHonor, Keterangan: req.Keterangan}
	if err := h.aturanRepo.Create(item); err != nil {
		return err
	}
	return respondCreated(c, "Aturan periode berhasil ditambahkan", item)
}

func (h *MasterHandler) UpdateAturan(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return err
	}
	var req AturanPeriodeRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	item, err := h.aturanRepo.FindByID(id)
	if err != nil {
		return err
	}
	other, err := h.aturanRepo.FindByPeriode(req.Periode)
	if err != nil {
		return err
	}
	if other != nil && other.ID != item.ID {
		return apperror.Conflict("Aturan untuk periode %s sudah ada", req.Periode)
	}
	item.Periode = req.Periode
	item.BatasHonor = req.BatasHonor
	item.Keterangan = req.Keterangan
	if err := h.aturanRepo.Update(item); err != nil {
		return err
	}
	return respond(c, "Aturan periode berhasil diperbarui", item)
}

func (h *MasterHandler) DeleteAturan(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return err
	}
	if err := h.aturanRepo.Delete(id); err != nil {
		return err
	}
	return respond(c, "Aturan periode berhasil dihapus", nil)
}
