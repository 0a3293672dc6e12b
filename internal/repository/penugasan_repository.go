package repository

import (
	"simitra-backend/internal/model"

	"gorm.io/gorm"
)

type PenugasanRepository interface {
	GetAll(idSubkegiatan string) ([]model.Penugasan, error)
	FindByID(id uint) (*model.Penugasan, error)
	FindByIDForUpdate(id uint) (*model.Penugasan, error)
	FindBySubkegiatanPengawas(idSubkegiatan string, idPengawas uint) (*model.Penugasan, error)
	Create(p *model.Penugasan) error
	Update(p *model.Penugasan) error
	Delete(id uint) error

	CountAnggota(idPenugasan uint) (int64, error)
	IsAnggota(idPenugasan, idMitra uint) (bool, error)
	AddAnggota(k *model.KelompokPenugasan) error
	FindAnggota(id uint) (*model.KelompokPenugasan, error)
	DeleteAnggota(id uint) error
}

type penugasanRepository struct {
	db *gorm.DB
}

func NewPenugasanRepository(db *gorm.DB) PenugasanRepository {
	return &penugasanRepository{db}
}

func (r *penugasanRepository) GetAll(idSubkegiatan string) ([]model.Penugasan, error) {
	var list []model.Penugasan
	query := r.db.Preload("Subkegiatan").Preload("Pengawas").Preload("Anggota").Order("id DESC")
	if idSubkegiatan != "" {
		query = query.Where("id_subkegiatan = ?", idSubkegiatan)
	}
	err := query.Find(&list).Error
	return list, err
}

func (r *penugasanRepository) FindByID(id uint) (*model.Penugasan, error) {
	var p model.Penugasan
	err := r.db.Preload("Subkegiatan.Kegiatan").Preload("Pengawas").Preload("Anggota.Mitra").First(&p, id).Error
	return &p, err
}

// FindByIDForUpdate mengunci baris penugasan agar hitung-lalu-insert anggota tidak balapan.
func (r *penugasanRepository) FindByIDForUpdate(id uint) (*model.Penugasan, error) {
	var p model.Penugasan
	err := forUpdate(r.db).First(&p, id).Error
	return &p, err
}

func (r *penugasanRepository) FindBySubkegiatanPengawas(idSubkegiatan string, idPengawas uint) (*model.Penugasan, error) {
	var p model.Penugasan
	err := r.db.Where("id_subkegiatan = ? AND id_pengawas = ?", idSubkegiatan, idPengawas).First(&p).Error
	return &p, err
}

func (r *penugasanRepository) Create(p *model.Penugasan) error {
	return r.db.Omit("Subkegiatan", "Pengawas", "Anggota").Create(p).Error
}

func (r *penugasanRepository) Update(p *model.Penugasan) error {
	return r.db.Omit("Subkegiatan", "Pengawas", "Anggota").Save(p).Error
}

// Delete menghapus penugasan dan seluruh anggotanya. Jalankan di dalam transaksi.
func (r *penugasanRepository) Delete(id uint) error {
	if err := r.db.Where("id_penugasan = ?", id).Delete(&model.KelompokPenugasan{}).Error; err != nil {
		return err
	}
	return deleteResult(r.db.Delete(&model.Penugasan{}, id))
}

func (r *penugasanRepository) CountAnggota(idPenugasan uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.KelompokPenugasan{}).Where("id_penugasan = ?", idPenugasan).Count(&count).Error
	return count, err
}

func (r *penugasanRepository) IsAnggota(idPenugasan, idMitra uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.KelompokPenugasan{}).
		Where("id_penugasan = ? AND id_mitra = ?", idPenugasan, idMitra).Count(&count).Error
	return count > 0, err
}

func (r *penugasanRepository) AddAnggota(k *model.KelompokPenugasan) error {
	return r.db.Omit("Mitra").Create(k).Error
}

func (r *penugasanRepository) FindAnggota(id uint) (*model.KelompokPenugasan, error) {
	var k model.KelompokPenugasan
	err := r.db.Preload("Mitra").First(&k, id).Error
	return &k, err
}

func (r *penugasanRepository) DeleteAnggota(id uint) error {
	return deleteResult(r.db.Delete(&model.KelompokPenugasan{}, id))
}
