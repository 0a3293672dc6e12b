package usecase

import (
	"context"
	"errors"
	"time"

	"simitra-backend/internal/apperror"
	"simitra-backend/internal/model"
	"simitra-backend/internal/repository"

	"gorm.io/gorm"
)

type KegiatanUsecase struct {
	db *gorm.DB
}

func NewKegiatanUsecase(db *gorm.DB) *KegiatanUsecase {
	return &KegiatanUsecase{db: db}
}

// Create menyimpan kegiatan dan subkegiatannya dalam satu transaksi.
func (u *KegiatanUsecase) Create(ctx context.Context, k *model.Kegiatan, subs []model.Subkegiatan) (*model.Kegiatan, error) {
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := repository.NewKegiatanRepository(tx).Create(k); err != nil {
			return err
		}
		subRepo := repository.NewSubkegiatanRepository(tx)
		k.Subkegiatan = make([]model.Subkegiatan, 0, len(subs))
		for i := range subs {
			sub := subs[i]
			sub.ID = ""
			sub.IDKegiatan = k.ID
			if err := validateSubkegiatanDates(&sub); err != nil {
				return err
			}
			if err := subRepo.Create(&sub); err != nil {
				return err
			}
			k.Subkegiatan = append(k.Subkegiatan, sub)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return k, nil
}

func (u *KegiatanUsecase) Delete(ctx context.Context, id uint) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return repository.NewKegiatanRepository(tx).Delete(id)
	})
}

// CreateSubkegiatan menambahkan satu subkegiatan pada kegiatan yang sudah ada.
func (u *KegiatanUsecase) CreateSubkegiatan(ctx context.Context, sub *model.Subkegiatan) error {
	db := u.db.WithContext(ctx)
	if _, err := repository.NewKegiatanRepository(db).FindByID(sub.IDKegiatan); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("Kegiatan %d tidak ditemukan", sub.IDKegiatan)
		}
		return err
	}
	if err := validateSubkegiatanDates(sub); err != nil {
		return err
	}
	sub.ID = ""
	return repository.NewSubkegiatanRepository(db).Create(sub)
}

func validateSubkegiatanDates(sub *model.Subkegiatan) error {
	if !sub.TanggalMulai.IsZero() && !sub.TanggalSelesai.IsZero() && sub.TanggalSelesai.Before(sub.TanggalMulai.Time) {
		return apperror.Validation("Tanggal selesai subkegiatan %q sebelum tanggal mulai", sub.NamaSubKegiatan)
	}
	if !sub.OpenReq.IsZero() && !sub.CloseReq.IsZero() && sub.CloseReq.Before(sub.OpenReq.Time) {
		return apperror.Validation("Tanggal tutup rekrutmen subkegiatan %q sebelum tanggal buka", sub.NamaSubKegiatan)
	}
	if sub.Periode == "" && !sub.TanggalMulai.IsZero() {
		sub.Periode = sub.TanggalMulai.Format("2006-01")
	}
	return nil
}

// UpdateSubkegiatan memperbarui data subkegiatan tanpa mengubah ID, kegiatan induk, maupun status.
func (u *KegiatanUsecase) UpdateSubkegiatan(ctx context.Context, id string, in model.Subkegiatan) (*model.Subkegiatan, error) {
	repo := repository.NewSubkegiatanRepository(u.db.WithContext(ctx))
	sub, err := repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	sub.NamaSubKegiatan = in.NamaSubKegiatan
	sub.Deskripsi = in.Deskripsi
	sub.Periode = in.Periode
	sub.TanggalMulai = in.TanggalMulai
	sub.TanggalSelesai = in.TanggalSelesai
	sub.OpenReq = in.OpenReq
	sub.CloseReq = in.CloseReq
	if err := validateSubkegiatanDates(sub); err != nil {
		return nil, err
	}
	sub.Kegiatan = nil
	if err := repo.Update(sub); err != nil {
		return nil, err
	}
	sub.StatusRekrutmen = model.RecruitmentStatusAt(sub.OpenReq, sub.CloseReq, time.Now())
	return sub, nil
}
