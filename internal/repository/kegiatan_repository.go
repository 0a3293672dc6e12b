package repository

import (
	"simitra-backend/internal/model"

	"gorm.io/gorm"
)

type KegiatanRepository interface {
	GetAll(search, tahun string) ([]model.Kegiatan, error)
	FindByID(id uint) (*model.Kegiatan, error)
	Create(kegiatan *model.Kegiatan) error
	Update(kegiatan *model.Kegiatan) error
	Delete(id uint) error
	Count() (int64, error)
}

type kegiatanRepository struct {
	db *gorm.DB
}

func NewKegiatanRepository(db *gorm.DB) KegiatanRepository {
	return &kegiatanRepository{db}
}

func (r *kegiatanRepository) GetAll(search, tahun string) ([]model.Kegiatan, error) {
	var list []model.Kegiatan
	query := r.db.Order("id DESC")
	if search != "" {
		query = query.Where("nama_kegiatan LIKE ?", "%"+search+"%")
	}
	if tahun != "" {
		query = query.Where("tahun_anggaran = ?", tahun)
	}
	err := query.Find(&list).Error
	return list, err
}

func (r *kegiatanRepository) FindByID(id uint) (*model.Kegiatan, error) {
	var kegiatan model.Kegiatan
	err := r.db.Preload("Subkegiatan", func(db *gorm.DB) *gorm.DB {
		return db.Order("periode ASC, id ASC")
	}).First(&kegiatan, id).Error
	return &kegiatan, err
}

// Create menyimpan kegiatan saja. Subkegiatan dibuat satu per satu oleh pemanggil
// supaya ID "subN" terbentuk berurutan.
func (r *kegiatanRepository) Create(kegiatan *model.Kegiatan) error {
	return r.db.Omit("Subkegiatan").Create(kegiatan).Error
}

func (r *kegiatanRepository) Update(kegiatan *model.Kegiatan) error {
	return r.db.Omit("Subkegiatan").Save(kegiatan).Error
}

// Delete menghapus kegiatan beserta subkegiatannya. Jalankan di dalam transaksi.
func (r *kegiatanRepository) Delete(id uint) error {
	if err := r.db.Where("id_kegiatan = ?", id).Delete(&model.Subkegiatan{}).Error; err != nil {
		return err
	}
	return deleteResult(r.db.Delete(&model.Kegiatan{}, id))
}

func (r *kegiatanRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Kegiatan{}).Count(&count).Error
	return count, err
}
