package usecase

import (
	"context"
	"errors"

	"simitra-backend/internal/apperror"
	"simitra-backend/internal/model"
	"simitra-backend/internal/repository"

	"gorm.io/gorm"
)

type LaporanUsecase struct {
	db *gorm.DB
}

func NewLaporanUsecase(db *gorm.DB) *LaporanUsecase {
	return &LaporanUsecase{db: db}
}

func (u *LaporanUsecase) Create(ctx context.Context, form *model.LaporanForm) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkLaporanTarget(tx, form); err != nil {
			return err
		}
		form.ID = 0
		return repository.NewLaporanRepository(tx).Create(form)
	})
}

// Update mengganti isi form beserta seluruh item-nya.
func (u *LaporanUsecase) Update(ctx context.Context, id uint, form *model.LaporanForm) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := repository.NewLaporanRepository(tx)
		existing, err := repo.FindByID(id)
		if err != nil {
			return err
		}
		if err := checkLaporanTarget(tx, form); err != nil {
			return err
		}
		form.ID = existing.ID
		form.CreatedAt = existing.CreatedAt
		return repo.Update(form)
	})
}

func (u *LaporanUsecase) Delete(ctx context.Context, id uint) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return repository.NewLaporanRepository(tx).Delete(id)
	})
}

// Resolve mencari form untuk subkegiatan: form khusus, lalu form ALL_SUB milik kegiatannya.
func (u *LaporanUsecase) Resolve(ctx context.Context, idSubkegiatan string) (*model.LaporanForm, error) {
	db := u.db.WithContext(ctx)
	sub, err := repository.NewSubkegiatanRepository(db).FindByID(idSubkegiatan)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("Subkegiatan %s tidak ditemukan", idSubkegiatan)
	}
	if err != nil {
		return nil, err
	}
	form, err := repository.NewLaporanRepository(db).FindForSubkegiatan(sub.IDKegiatan, sub.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("Form laporan untuk subkegiatan %s belum dibuat", idSubkegiatan)
	}
	return form, err
}

// checkLaporanTarget memastikan kegiatan ada dan subkegiatan (selain ALL_SUB) milik kegiatan tersebut.
func checkLaporanTarget(tx *gorm.DB, form *model.LaporanForm) error {
	if _, err := repository.NewKegiatanRepository(tx).FindByID(form.IDKegiatan); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("Kegiatan %d tidak ditemukan", form.IDKegiatan)
		}
		return err
	}
	if form.IDSubkegiatan == model.AllSub {
		return nil
	}
	sub, err := repository.NewSubkegiatanRepository(tx).FindByID(form.IDSubkegiatan)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound("Subkegiatan %s tidak ditemukan", form.IDSubkegiatan)
	}
	if err != nil {
		return err
	}
	if sub.IDKegiatan != form.IDKegiatan {
		return apperror.Validation("Subkegiatan %s bukan bagian dari kegiatan %d", sub.ID, form.IDKegiatan)
	}
	return nil
}
