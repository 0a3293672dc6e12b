package repository

import (
	"simitra-backend/internal/model"

	"gorm.io/gorm"
)

type SubkegiatanFilter struct {
	IDKegiatan uint
	Periode    string
	Search     string
}

type SubkegiatanRepository interface {
	GetAll(filter SubkegiatanFilter) ([]model.Subkegiatan, error)
	FindByID(id string) (*model.Subkegiatan, error)
	ExistsByName(idKegiatan uint, nama, periode string) (bool, error)
	Create(sub *model.Subkegiatan) error
	Update(sub *model.Subkegiatan) error
	UpdateStatus(id, status string) error
	Delete(id string) error
	Count() (int64, error)
}

type subkegiatanRepository struct {
	db *gorm.DB
}

func NewSubkegiatanRepository(db *gorm.DB) SubkegiatanRepository {
	return &subkegiatanRepository{db}
}

func (r *subkegiatanRepository) GetAll(filter SubkegiatanFilter) ([]model.Subkegiatan, error) {
	var list []model.Subkegiatan
	query := r.db.Preload("Kegiatan").Order("periode DESC, id ASC")
	if filter.IDKegiatan != 0 {
		query = query.Where("id_kegiatan = ?", filter.IDKegiatan)
	}
	if filter.Periode != "" {
		query = query.Where("periode = ?", filter.Periode)
	}
	if filter.Search != "" {
		query = query.Where("nama_sub_kegiatan LIKE ?", "%"+filter.Search+"%")
	}
	err := query.Find(&list).Error
	return list, err
}

func (r *subkegiatanRepository) FindByID(id string) (*model.Subkegiatan, error) {
	var sub model.Subkegiatan
	err := r.db.Preload("Kegiatan").Where("id = ?", id).First(&sub).Error
	return &sub, err
}

func (r *subkegiatanRepository) ExistsByName(idKegiatan uint, nama, periode string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Subkegiatan{}).
		Where("id_kegiatan = ? AND nama_sub_kegiatan = ? AND periode = ?", idKegiatan, nama, periode).
		Count(&count).Error
	return count > 0, err
}

func (r *subkegiatanRepository) Create(sub *model.Subkegiatan) error {
	return r.db.Omit("Kegiatan").Create(sub).Error
}

func (r *subkegiatanRepository) Update(sub *model.Subkegiatan) error {
	return r.db.Omit("Kegiatan").Save(sub).Error
}

func (r *subkegiatanRepository) UpdateStatus(id, status string) error {
	return r.db.Model(&model.Subkegiatan{}).Where("id = ?", id).Update("status", status).Error
}

func (r *subkegiatanRepository) Delete(id string) error {
	return deleteResult(r.db.Where("id = ?", id).Delete(&model.Subkegiatan{}))
}

func (r *subkegiatanRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Subkegiatan{}).Count(&count).Error
	return count, err
}
