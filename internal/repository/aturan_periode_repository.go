package repository

import (
	"errors"

	"simitra-backend/internal/model"

	"gorm.io/gorm"
)

type AturanPeriodeRepository interface {
	CrudRepository[model.AturanPeriode]
	FindByPeriode(periode string) (*model.AturanPeriode, error)
}

type aturanPeriodeRepository struct {
	CrudRepository[model.AturanPeriode]
	db *gorm.DB
}

func NewAturanPeriodeRepository(db *gorm.DB) AturanPeriodeRepository {
	return &aturanPeriodeRepository{
		CrudRepository: NewCrudRepository[model.AturanPeriode](db, "id"),
		db:             db,
	}
}

// FindByPeriode mengembalikan nil tanpa error jika aturan untuk periode itu belum ada.
func (r *aturanPeriodeRepository) FindByPeriode(periode string) (*model.AturanPeriode, error) {
	var a model.AturanPeriode
	err := r.db.Where("periode = ?", periode).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}
