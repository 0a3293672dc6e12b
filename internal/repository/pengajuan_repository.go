package repository

import (
	"simitra-backend/internal/model"

	"gorm.io/gorm"
)

type PengajuanRepository interface {
	GetAll(status string) ([]model.PengajuanMitra, error)
	FindByID(id uint) (*model.PengajuanMitra, error)
	FindByIDForUpdate(id uint) (*model.PengajuanMitra, error)
	FindByUser(userID uint) ([]model.PengajuanMitra, error)
	HasPending(userID uint) (bool, error)
	Create(p *model.PengajuanMitra) error
	Update(p *model.PengajuanMitra) error
	CountByStatus(status string) (int64, error)
}

type pengajuanRepository struct {
	db *gorm.DB
}

func NewPengajuanRepository(db *gorm.DB) PengajuanRepository {
	return &pengajuanRepository{db}
}

func (r *pengajuanRepository) GetAll(status string) ([]model.PengajuanMitra, error) {
	var list []model.PengajuanMitra
	query := r.db.Preload("User").Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Find(&list).Error
	return list, err
}

func (r *pengajuanRepository) FindByID(id uint) (*model.PengajuanMitra, error) {
	var p model.PengajuanMitra
	err := r.db.Preload("User").First(&p, id).Error
	return &p, err
}

func (r *pengajuanRepository) FindByIDForUpdate(id uint) (*model.PengajuanMitra, error) {
	var p model.PengajuanMitra
	err := forUpdate(r.db).First(&p, id).Error
	return &p, err
}

func (r *pengajuanRepository) FindByUser(userID uint) ([]model.PengajuanMitra, error) {
	var list []model.PengajuanMitra
	err := r.db.Where("id_user = ?", userID).Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *pengajuanRepository) HasPending(userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.PengajuanMitra{}).
		Where("id_user = ? AND status = ?", userID, model.PengajuanPending).
		Count(&count).Error
	return count > 0, err
}

func (r *pengajuanRepository) Create(p *model.PengajuanMitra) error {
	return r.db.Omit("User").Create(p).Error
}

func (r *pengajuanRepository) Update(p *model.PengajuanMitra) error {
	return r.db.Omit("User").Save(p).Error
}

func (r *pengajuanRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&model.PengajuanMitra{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
