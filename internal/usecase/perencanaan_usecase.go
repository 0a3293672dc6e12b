package usecase

import (
	"context"
	"errors"
	"strconv"

	"simitra-backend/internal/apperror"
	"simitra-backend/internal/model"
	"simitra-backend/internal/repository"
	"simitra-backend/internal/rupiah"

	"gorm.io/gorm"
)

type PerencanaanAnggotaInput struct {
	IDPerencanaan uint
	IDMitra       uint
	KodeJabatan   string
	VolumeTugas   int
}

type PerencanaanUsecase struct {
	db *gorm.DB
}

func NewPerencanaanUsecase(db *gorm.DB) *PerencanaanUsecase {
	return &PerencanaanUsecase{db: db}
}

// AddAnggota menambahkan mitra ke rencana setelah lolos cek kuota tim dan batas honor tahunan.
func (u *PerencanaanUsecase) AddAnggota(ctx context.Context, in PerencanaanAnggotaInput) (*model.KelompokPerencanaan, error) {
	var created *model.KelompokPerencanaan
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		k, err := addPerencanaanAnggota(tx, in)
		created = k
		return err
	})
	return created, err
}

func addPerencanaanAnggota(tx *gorm.DB, in PerencanaanAnggotaInput) (*model.KelompokPerencanaan, error) {
	repo := repository.NewPerencanaanRepository(tx)

	p, err := repo.FindByIDForUpdate(in.IDPerencanaan)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("Perencanaan %d tidak ditemukan", in.IDPerencanaan)
	}
	if err != nil {
		return nil, err
	}

	if err := lockMitra(tx, in.IDMitra); err != nil {
		return nil, err
	}

	member, err := repo.IsAnggota(p.ID, in.IDMitra)
	if err != nil {
		return nil, err
	}
	if member {
		return nil, apperror.Conflict("Mitra sudah terdaftar di perencanaan ini")
	}

	count, err := repo.CountAnggota(p.ID)
	if err != nil {
		return nil, err
	}
	if count >= int64(p.JumlahMaxMitra) {
		return nil, apperror.CapacityExceeded("Kuota tim sudah penuh (%d/%d mitra)", count, p.JumlahMaxMitra)
	}

	if err := checkHonorCap(tx, in.IDMitra, p.IDSubkegiatan, in.KodeJabatan, in.VolumeTugas, 0); err != nil {
		return nil, err
	}

	k := &model.KelompokPerencanaan{
		IDPerencanaan: p.ID,
		IDMitra:       in.IDMitra,
		KodeJabatan:   in.KodeJabatan,
		VolumeTugas:   in.VolumeTugas,
	}
	if err := repo.AddAnggota(k); err != nil {
		return nil, err
	}
	return k, nil
}

// UpdateAnggota mengubah jabatan/volume. Honor lama baris ini dikeluarkan dari total
// sebelum honor baru ditambahkan.
func (u *PerencanaanUsecase) UpdateAnggota(ctx context.Context, id uint, kodeJabatan string, volume int) (*model.KelompokPerencanaan, error) {
	var updated *model.KelompokPerencanaan
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := repository.NewPerencanaanRepository(tx)

		k, err := repo.FindAnggotaForUpdate(id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("Anggota perencanaan %d tidak ditemukan", id)
		}
		if err != nil {
			return err
		}
		p, err := repo.FindByIDForUpdate(k.IDPerencanaan)
		if err != nil {
			return err
		}
		if err := lockMitra(tx, k.IDMitra); err != nil {
			return err
		}
		if err := checkHonorCap(tx, k.IDMitra, p.IDSubkegiatan, kodeJabatan, volume, k.ID); err != nil {
			return err
		}

		k.KodeJabatan = kodeJabatan
		k.VolumeTugas = volume
		if err := repo.UpdateAnggota(k); err != nil {
			return err
		}
		updated = k
		return nil
	})
	return updated, err
}

func (u *PerencanaanUsecase) DeleteAnggota(ctx context.Context, id uint) error {
	return repository.NewPerencanaanRepository(u.db.WithContext(ctx)).DeleteAnggota(id)
}

func (u *PerencanaanUsecase) Delete(ctx context.Context, id uint) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return repository.NewPerencanaanRepository(tx).Delete(id)
	})
}

// lockMitra mengunci baris mitra sehingga validasi batas honor untuk mitra yang
// sama berjalan berurutan.
func lockMitra(tx *gorm.DB, idMitra uint) error {
	_, err := repository.NewMitraRepository(tx).FindByIDForUpdate(idMitra)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound("Mitra %d tidak ditemukan", idMitra)
	}
	return err
}

// checkHonorCap memastikan total honor mitra pada tahun mulai subkegiatan tidak
// melebihi batas aturan periode tahun tersebut. excludeID adalah baris yang sedang diubah.
func checkHonorCap(tx *gorm.DB, idMitra uint, idSubkegiatan, kodeJabatan string, volume int, excludeID uint) error {
	sub, err := repository.NewSubkegiatanRepository(tx).FindByID(idSubkegiatan)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound("Subkegiatan %s tidak ditemukan", idSubkegiatan)
	}
	if err != nil {
		return err
	}
	if sub.TanggalMulai.IsZero() {
		return apperror.Validation("Subkegiatan %s belum memiliki tanggal mulai", sub.ID)
	}
	tahun := sub.TanggalMulai.Year()

	aturan, err := repository.NewAturanPeriodeRepository(tx).FindByPeriode(strconv.Itoa(tahun))
	if err != nil {
		return err
	}
	if aturan == nil {
		return apperror.Validation("Aturan batas honor untuk tahun %d belum diatur", tahun)
	}

	var tarif int64
	rate, err := repository.NewHonorariumRepository(tx).FindRate(sub.ID, kodeJabatan)
	if err != nil {
		return err
	}
	if rate != nil {
		tarif = rate.Tarif
	}
	baru, err := rupiah.Kali(tarif, volume)
	if err != nil {
		return honorOverflow(err)
	}

	rows, err := repository.NewPerencanaanRepository(tx).HonorRowsByMitra(idMitra)
	if err != nil {
		return err
	}
	current, projected, err := projectHonor(rows, tahun, excludeID, baru)
	if err != nil {
		return honorOverflow(err)
	}

	if projected > aturan.BatasHonor {
		return apperror.BudgetExceeded(
			"Total honor mitra tahun %d melebihi batas: saat ini %s, setelah perubahan %s, batas %s",
			tahun, rupiah.Format(current), rupiah.Format(projected), rupiah.Format(aturan.BatasHonor),
		).WithDetails(map[string]interface{}{
			"tahun":            tahun,
			"current":          current,
			"projected":        projected,
			"limit":            aturan.BatasHonor,
			"current_format":   rupiah.Format(current),
			"projected_format": rupiah.Format(projected),
			"limit_format":     rupiah.Format(aturan.BatasHonor),
		})
	}
	return nil
}

// projectHonor menjumlahkan honor baris pada tahun yang sama, lalu menghitung total
// setelah baris excludeID (jika ada) diganti dengan honor baru.
func projectHonor(rows []repository.HonorRow, tahun int, excludeID uint, baru int64) (current, projected int64, err error) {
	var lama int64
	for _, r := range rows {
		if r.TanggalMulai.IsZero() || r.TanggalMulai.Year() != tahun {
			continue
		}
		honor, err := r.Honor()
		if err != nil {
			return 0, 0, err
		}
		if current, err = rupiah.Tambah(current, honor); err != nil {
			return 0, 0, err
		}
		if excludeID != 0 && r.ID == excludeID {
			lama = honor
		}
	}
	projected, err = rupiah.Tambah(current-lama, baru)
	return current, projected, err
}

func honorOverflow(err error) error {
	return apperror.Validation("Perhitungan honor tidak valid: %s", err.Error())
}

// Create membuat rencana tim baru. Satu pengawas hanya punya satu rencana per subkegiatan.
func (u *PerencanaanUsecase) Create(ctx context.Context, p *model.Perencanaan) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkTimRefs(tx, p.IDSubkegiatan, p.IDPengawas); err != nil {
			return err
		}
		repo := repository.NewPerencanaanRepository(tx)
		_, err := repo.FindBySubkegiatanPengawas(p.IDSubkegiatan, p.IDPengawas)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err == nil {
			return apperror.Conflict("Pengawas sudah memiliki perencanaan pada subkegiatan %s", p.IDSubkegiatan)
		}
		p.ID = 0
		return repo.Create(p)
	})
}

// Update tidak boleh menurunkan kuota di bawah jumlah anggota saat ini.
func (u *PerencanaanUsecase) Update(ctx context.Context, id uint, idPengawas uint, jumlahMax int) (*model.Perencanaan, error) {
	var updated *model.Perencanaan
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := repository.NewPerencanaanRepository(tx)
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
