package repository

import (
	"simitra-backend/internal/model"

	"gorm.io/gorm"
)

type MitraRepository interface {
	FindByID(id uint) (*model.Mitra, error)
	FindByIDForUpdate(id uint) (*model.Mitra, error)
	FindByNIK(nik string) (*model.Mitra, error)
	ExistsNIKOrSobatID(nik string, sobatID *string, excludeID uint) (bool, error)
	GetAll(search string) ([]model.Mitra, error)
	Create(mitra *model.Mitra) error
	Update(mitra *model.Mitra) error
	Delete(id uint) error
	Count() (int64, error)
}

type mitraRepository struct {
	db *gorm.DB
}

func NewMitraRepository(db *gorm.DB) MitraRepository {
	return &mitraRepository{db}
}

func (r *mitraRepository) FindByID(id uint) (*model.Mitra, error) {
	var mitra model.Mitra
	err := r.db.First(&mitra, id).Error
	return &mitra, err
}

// FindByIDForUpdate mengunci baris mitra, dipakai untuk menserialkan validasi batas honor.
func (r *mitraRepository) FindByIDForUpdate(id uint) (*model.Mitra, error) {
	var mitra model.Mitra
	err := forUpdate(r.db).First(&mitra, id).Error
	return &mitra, err
}

func (r *mitraRepository) FindByNIK(nik string) (*model.Mitra, error) {
	var mitra model.Mitra
	err := r.db.Where("nik = ?", nik).First(&mitra).Error
	return &mitra, err
}

func (r *mitraRepository) ExistsNIKOrSobatID(nik string, sobatID *string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.Model(&model.Mitra{})
	if sobatID != nil && *sobatID != "" {
		query = query.Where("(nik = ? OR sobat_id = ?)", nik, *sobatID)
	} else {
		query = query.Where("nik = ?", nik)
	}
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *mitraRepository) GetAll(search string) ([]model.Mitra, error) {
	var mitras []model.Mitra
	query := r.db.Order("nama_lengkap ASC")

	if search != "" {
		searchPattern := "%" + search + "%"
		query = query.Where("nama_lengkap LIKE ? OR nik LIKE ? OR sobat_id LIKE ?", searchPattern, searchPattern, searchPattern)
	}

	err := query.Find(&mitras).Error
	return mitras, err
}

func (r *mitraRepository) Create(mitra *model.Mitra) error {
	return r.db.Create(mitra).Error
}

func (r *mitraRepository) Update(mitra *model.Mitra) error {
	return r.db.Save(mitra).Error
}

func (r *mitraRepository) Delete(id uint) error {
	return deleteResult(r.db.Delete(&model.Mitra{}, id))
}

func (r *mitraRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Mitra{}).Count(&count).Error
	return count, err
}
