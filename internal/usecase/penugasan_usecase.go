package usecase

import (
	"context"
	"errors"

	"simitra-backend/internal/apperror"
	"simitra-backend/internal/model"
	"simitra-backend/internal/repository"

	"gorm.io/gorm"
)

type AddAnggotaInput struct {
	IDPenugasan uint
	IDMitra     uint
	KodeJabatan string
}

type PenugasanUsecase struct {
	db *gorm.DB
}

func NewPenugasanUsecase(db *gorm.DB) *PenugasanUsecase {
	return &PenugasanUsecase{db: db}
}

// AddAnggota menambahkan mitra ke tim. Baris penugasan dikunci selama hitung-lalu-insert
// sehingga jumlah anggota tidak pernah melewati jumlah_max_mitra.
func (u *PenugasanUsecase) AddAnggota(ctx context.Context, in AddAnggotaInput) (*model.KelompokPenugasan, error) {
	var created *model.KelompokPenugasan
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		k, err := addPenugasanAnggota(tx, in)
		created = k
		return err
	})
	return created, err
}

func addPenugasanAnggota(tx *gorm.DB, in AddAnggotaInput) (*model.KelompokPenugasan, error) {
	repo := repository.NewPenugasanRepository(tx)

	p, err := repo.FindByIDForUpdate(in.IDPenugasan)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("Penugasan %d tidak ditemukan", in.IDPenugasan)
	}
	if err != nil {
		return nil, err
	}

	if _, err := repository.NewMitraRepository(tx).FindByID(in.IDMitra); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Mitra %d tidak ditemukan", in.IDMitra)
		}
		return nil, err
	}

	member, err := repo.IsAnggota(p.ID, in.IDMitra)
	if err != nil {
		return nil, err
	}
	if member {
		return nil, apperror.Conflict("Mitra sudah terdaftar di tim ini")
	}

	count, err := repo.CountAnggota(p.ID)
	if err != nil {
		return nil, err
	}
	if count >= int64(p.JumlahMaxMitra) {
		return nil, apperror.CapacityExceeded("Kuota tim sudah penuh (%d/%d mitra)", count, p.JumlahMaxMitra).
			WithDetails(map[string]interface{}{"jumlah_anggota": count, "jumlah_max_mitra": p.JumlahMaxMitra})
	}

	k := &model.KelompokPenugasan{IDPenugasan: p.ID, IDMitra: in.IDMitra, KodeJabatan: in.KodeJabatan}
	if err := repo.AddAnggota(k); err != nil {
		return nil, err
	}
	return k, nil
}

// Update tidak boleh menurunkan kuota di bawah jumlah anggota saat ini.
func (u *PenugasanUsecase) Update(ctx context.Context, id uint, idPengawas uint, jumlahMax int) (*model.Penugasan, error) {
	var updated *model.Penugasan
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := repository.NewPenugasanRepository(tx)
		p, err := repo.FindByIDForUpdate(id)
		if err != nil {
			return err
		}
		count, err := repo.CountAnggota(id)
		if err != nil {
			return err
		}
		if int64(jumlahMax) < count {
			return apperror.Validation("Jumlah maksimal mitra (%d) lebih kecil dari anggota saat ini (%d)", jumlahMax, count)
		}
		if err := checkTimRefs(tx, p.IDSubkegiatan, idPengawas); err != nil {
			return err
		}
		p.IDPengawas = idPengawas
		p.JumlahMaxMitra = jumlahMax
		if err := repo.Update(p); err != nil {
			return err
		}
		updated = p
		return nil
	})
	return updated, err
}

func (u *PenugasanUsecase) Delete(ctx context.Context, id uint) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return repository.NewPenugasanRepository(tx).Delete(id)
	})
}

// Create membuat tim baru. Satu pengawas hanya punya satu tim per subkegiatan.
func (u *PenugasanUsecase) Create(ctx context.Context, p *model.Penugasan) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkTimRefs(tx, p.IDSubkegiatan, p.IDPengawas); err != nil {
			return err
		}
		repo := repository.NewPenugasanRepository(tx)
		_, err := repo.FindBySubkegiatanPengawas(p.IDSubkegiatan, p.IDPengawas)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err == nil {
			return apperror.Conflict("Pengawas sudah memiliki tim penugasan pada subkegiatan %s", p.IDSubkegiatan)
		}
		p.ID = 0
		return repo.Create(p)
	})
}

// checkTimRefs memastikan subkegiatan dan pengawas tim ada.
func checkTimRefs(tx *gorm.DB, idSubkegiatan string, idPengawas uint) error {
	if _, err := repository.NewSubkegiatanRepository(tx).FindByID(idSubkegiatan); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("Subkegiatan %s tidak ditemukan", idSubkegiatan)
		}
		return err
	}
	if _, err := repository.NewUserRepository(tx).FindByID(idPengawas); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("Pengawas %d tidak ditemukan", idPengawas)
		}
		return err
	}
	return nil
}
