package repository

import (
	"errors"

	"simitra-backend/internal/model"

	"gorm.io/gorm"
)

type HonorariumRepository interface {
	GetAll(idSubkegiatan string) ([]model.Honorarium, error)
	FindByID(id uint) (*model.Honorarium, error)
	FindRate(idSubkegiatan, kodeJabatan string) (*model.Honorarium, error)
	Create(h *model.Honorarium) error
	Update(h *model.Honorarium) error
	Delete(id uint) error
}

type honorariumRepository struct {
	db *gorm.DB
}

func NewHonorariumRepository(db *gorm.DB) HonorariumRepository {
	return &honorariumRepository{db}
}

func (r *honorariumRepository) GetAll(idSubkegiatan string) ([]model.Honorarium, error) {
	var list []model.Honorarium
	query := r.db.Preload("Satuan").Order("id_subkegiatan ASC, kode_jabatan ASC")
	if idSubkegiatan != "" {
		query = query.Where("id_subkegiatan = ?", idSubkegiatan)
	}
	err := query.Find(&list).Error
	return list, err
}

func (r *honorariumRepository) FindByID(id uint) (*model.Honorarium, error) {
	var h model.Honorarium
	err := r.db.Preload("Satuan").First(&h, id).Error
	return &h, err
}

// FindRate mencari tarif persis untuk (subkegiatan, kode_jabatan). Mengembalikan
// nil tanpa error jika tidak ada.
func (r *honorariumRepository) FindRate(idSubkegiatan, kodeJabatan string) (*model.Honorarium, error) {
	var h model.Honorarium
	err := r.db.Preload("Satuan").Where("id_subkegiatan = ? AND kode_jabatan = ?", idSubkegiatan, kodeJabatan).First(&h).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *honorariumRepository) Create(h *model.Honorarium) error {
	return r.db.Omit("Satuan").Create(h).Error
}

func (r *honorariumRepository) Update(h *model.Honorarium) error {
	return r.db.Omit("Satuan").Save(h).Error
}

func (r *honorariumRepository) Delete(id uint) error {
	return deleteResult(r.db.Delete(&model.Honorarium{}, id))
}
