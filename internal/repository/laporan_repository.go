package repository

import (
	"errors"

	"simitra-backend/internal/model"

	"gorm.io/gorm"
)

type LaporanRepository interface {
	GetAll(idKegiatan uint) ([]model.LaporanForm, error)
	FindByID(id uint) (*model.LaporanForm, error)
	FindForSubkegiatan(idKegiatan uint, idSubkegiatan string) (*model.LaporanForm, error)
	Create(form *model.LaporanForm) error
	Update(form *model.LaporanForm) error
	Delete(id uint) error
}

type laporanRepository struct {
	db *gorm.DB
}

func NewLaporanRepository(db *gorm.DB) LaporanRepository {
	return &laporanRepository{db}
}

func orderedItems(db *gorm.DB) *gorm.DB {
	return db.Order("urutan ASC, id ASC")
}

func (r *laporanRepository) GetAll(idKegiatan uint) ([]model.LaporanForm, error) {
	var list []model.LaporanForm
	query := r.db.Preload("Items", orderedItems).Order("id DESC")
	if idKegiatan != 0 {
		query = query.Where("id_kegiatan = ?", idKegiatan)
	}
	err := query.Find(&list).Error
	return list, err
}

func (r *laporanRepository) FindByID(id uint) (*model.LaporanForm, error) {
	var form model.LaporanForm
	err := r.db.Preload("Items", orderedItems).First(&form, id).Error
	return &form, err
}

// FindForSubkegiatan: form khusus subkegiatan lebih dulu, lalu form ALL_SUB milik kegiatannya.
func (r *laporanRepository) FindForSubkegiatan(idKegiatan uint, idSubkegiatan string) (*model.LaporanForm, error) {
	var form model.LaporanForm
	err := r.db.Preload("Items", orderedItems).
		Where("id_subkegiatan = ?", idSubkegiatan).
		Order("id DESC").First(&form).Error
	if err == nil {
		return &form, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	err = r.db.Preload("Items", orderedItems).
		Where("id_kegiatan = ? AND id_subkegiatan = ?", idKegiatan, model.AllSub).
		Order("id DESC").First(&form).Error
	return &form, err
}

func (r *laporanRepository) Create(form *model.LaporanForm) error {
	return r.db.Create(form).Error
}

// Update mengganti seluruh item form. Jalankan di dalam transaksi.
func (r *laporanRepository) Update(form *model.LaporanForm) error {
	if err := r.db.Omit("Items").Save(form).Error; err != nil {
		return err
	}
	if err := r.db.Where("id_laporan_form = ?", form.ID).Delete(&model.LaporanFormItem{}).Error; err != nil {
		return err
	}
	for i := range form.Items {
		form.Items[i].ID = 0
		form.Items[i].IDLaporanForm = form.ID
	}
	if len(form.Items) == 0 {
		return nil
	}
	return r.db.Create(&form.Items).Error
}

func (r *laporanRepository) Delete(id uint) error {
	if err := r.db.Where("id_laporan_form = ?", id).Delete(&model.LaporanFormItem{}).Error; err != nil {
		return err
	}
	return deleteResult(r.db.Delete(&model.LaporanForm{}, id))
}
