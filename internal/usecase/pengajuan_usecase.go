package usecase

import (
	"context"
	"errors"
	"time"

	"simitra-backend/internal/apperror"
	"simitra-backend/internal/mailer"
	"simitra-backend/internal/model"
	"simitra-backend/internal/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type PengajuanUsecase struct {
	db       *gorm.DB
	notifier mailer.Notifier
}

func NewPengajuanUsecase(db *gorm.DB, notifier mailer.Notifier) *PengajuanUsecase {
	return &PengajuanUsecase{db: db, notifier: notifier}
}

// Submit menyimpan pengajuan baru milik user. Satu user hanya boleh punya satu pengajuan pending.
func (u *PengajuanUsecase) Submit(ctx context.Context, p *model.PengajuanMitra) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := repository.NewPengajuanRepository(tx)
		pending, err := repo.HasPending(p.IDUser)
		if err != nil {
			return err
		}
		if pending {
			return apperror.Conflict("Anda masih memiliki pengajuan yang menunggu persetujuan")
		}
		exists, err := repository.NewMitraRepository(tx).ExistsNIKOrSobatID(p.NIK, p.SobatID, 0)
		if err != nil {
			return err
		}
		if exists {
			return apperror.Conflict("NIK atau Sobat ID sudah terdaftar sebagai mitra")
		}
		p.ID = 0
		p.Status = model.PengajuanPending
		return repo.Create(p)
	})
}

// Approve memindahkan pengajuan menjadi mitra dalam satu transaksi. Email dikirim
// setelah commit dan kegagalannya hanya dicatat.
func (u *PengajuanUsecase) Approve(ctx context.Context, id, reviewerID uint, batasHonorBulanan int64) (*model.Mitra, error) {
	var (
		mitra     *model.Mitra
		pengajuan *model.PengajuanMitra
	)
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := repository.NewPengajuanRepository(tx)
		p, err := repo.FindByIDForUpdate(id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("Pengajuan %d tidak ditemukan", id)
		}
		if err != nil {
			return err
		}
		switch p.Status {
		case model.PengajuanApproved:
			return apperror.Conflict("Pengajuan sudah disetujui")
		case model.PengajuanRejected:
			return apperror.Conflict("Pengajuan sudah ditolak")
		}

		mitraRepo := repository.NewMitraRepository(tx)
		exists, err := mitraRepo.ExistsNIKOrSobatID(p.NIK, p.SobatID, 0)
		if err != nil {
			return err
		}
		if exists {
			return apperror.Conflict("NIK atau Sobat ID sudah terdaftar sebagai mitra")
		}

		userID := p.IDUser
		m := &model.Mitra{
			IDUser:            &userID,
			NIK:               p.NIK,
			SobatID:           p.SobatID,
			NamaLengkap:       p.NamaLengkap,
			Alamat:            p.Alamat,
			JenisKelamin:      p.JenisKelamin,
			TanggalLahir:      p.TanggalLahir,
			Pendidikan:        p.Pendidikan,
			Pekerjaan:         p.Pekerjaan,
			NoHP:              p.NoHP,
			Email:             p.Email,
			NamaBank:          p.NamaBank,
			NoRekening:        p.NoRekening,
			AtasNamaRekening:  p.AtasNamaRekening,
			BatasHonorBulanan: batasHonorBulanan,
		}
		if err := mitraRepo.Create(m); err != nil {
			return err
		}

		now := time.Now()
		p.Status = model.PengajuanApproved
		p.DireviewOleh = &reviewerID
		p.DireviewPada = &now
		if err := repo.Update(p); err != nil {
			return err
		}
		mitra, pengajuan = m, p
		return nil
	})
	if err != nil {
		return nil, err
	}

	go u.notify(*pengajuan, u.notifier.PengajuanApproved)
	return mitra, nil
}

func (u *PengajuanUsecase) Reject(ctx context.Context, id, reviewerID uint, catatan string) (*model.PengajuanMitra, error) {
	var pengajuan *model.PengajuanMitra
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := repository.NewPengajuanRepository(tx)
		p, err := repo.FindByIDForUpdate(id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("Pengajuan %d tidak ditemukan", id)
		}
		if err != nil {
			return err
		}
		if p.Status != model.PengajuanPending {
			return apperror.Conflict("Pengajuan sudah diproses dengan status %s", p.Status)
		}
		now := time.Now()
		p.Status = model.PengajuanRejected
		p.Catatan = catatan
		p.DireviewOleh = &reviewerID
		p.DireviewPada = &now
		if err := repo.Update(p); err != nil {
			return err
		}
		pengajuan = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	go u.notify(*pengajuan, u.notifier.PengajuanRejected)
	return pengajuan, nil
}

func (u *PengajuanUsecase) notify(p model.PengajuanMitra, send func(model.PengajuanMitra) error) {
	if err := send(p); err != nil {
		zap.L().Warn("gagal mengirim email pengajuan",
			zap.Uint("pengajuan_id", p.ID), zap.String("email", p.Email), zap.Error(err))
	}
}
