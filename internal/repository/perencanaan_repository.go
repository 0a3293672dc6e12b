package repository

import (
	"simitra-backend/internal/model"
	"simitra-backend/internal/rupiah"

	"gorm.io/gorm"
)

// HonorRow adalah satu baris rencana honor mitra beserta tarif dan tanggal mulai subkegiatannya.
type HonorRow struct {
	ID           uint
	VolumeTugas  int
	Tarif        int64
	TanggalMulai model.Date
}

func (h HonorRow) Honor() (int64, error) {
	return rupiah.Kali(h.Tarif, h.VolumeTugas)
}

type PerencanaanRepository interface {
	GetAll(idSubkegiatan string) ([]model.Perencanaan, error)
	FindByID(id uint) (*model.Perencanaan, error)
	FindByIDForUpdate(id uint) (*model.Perencanaan, error)
	FindBySubkegiatanPengawas(idSubkegiatan string, idPengawas uint) (*model.Perencanaan, error)
	Create(p *model.Perencanaan) error
	Update(p *model.Perencanaan) error
	Delete(id uint) error

	CountAnggota(idPerencanaan uint) (int64, error)
	IsAnggota(idPerencanaan, idMitra uint) (bool, error)
	AddAnggota(k *model.KelompokPerencanaan) error
	FindAnggota(id uint) (*model.KelompokPerencanaan, error)
	FindAnggotaForUpdate(id uint) (*model.KelompokPerencanaan, error)
	UpdateAnggota(k *model.KelompokPerencanaan) error
	DeleteAnggota(id uint) error

	HonorRowsByMitra(idMitra uint) ([]HonorRow, error)
}

type perencanaanRepository struct {
	db *gorm.DB
}

func NewPerencanaanRepository(db *gorm.DB) PerencanaanRepository {
	return &perencanaanRepository{db}
}

func (r *perencanaanRepository) GetAll(idSubkegiatan string) ([]model.Perencanaan, error) {
	var list []model.Perencanaan
	query := r.db.Preload("Subkegiatan").Preload("Pengawas").Preload("Anggota").Order("id DESC")
	if idSubkegiatan != "" {
		query = query.Where("id_subkegiatan = ?", idSubkegiatan)
	}
	err := query.Find(&list).Error
	return list, err
}

func (r *perencanaanRepository) FindByID(id uint) (*model.Perencanaan, error) {
	var p model.Perencanaan
	err := r.db.Preload("Subkegiatan.Kegiatan").Preload("Pengawas").Preload("Anggota.Mitra").First(&p, id).Error
	return &p, err
}

func (r *perencanaanRepository) FindByIDForUpdate(id uint) (*model.Perencanaan, error) {
	var p model.Perencanaan
	err := forUpdate(r.db).First(&p, id).Error
	return &p, err
}

func (r *perencanaanRepository) FindBySubkegiatanPengawas(idSubkegiatan string, idPengawas uint) (*model.Perencanaan, error) {
	var p model.Perencanaan
	err := r.db.Where("id_subkegiatan = ? AND id_pengawas = ?", idSubkegiatan, idPengawas).First(&p).Error
	return &p, err
}

func (r *perencanaanRepository) Create(p *model.Perencanaan) error {
	return r.db.Omit("Subkegiatan", "Pengawas", "Anggota").Create(p).Error
}

func (r *perencanaanRepository) Update(p *model.Perencanaan) error {
	return r.db.Omit("Subkegiatan", "Pengawas", "Anggota").Save(p).Error
}

func (r *perencanaanRepository) Delete(id uint) error {
	if err := r.db.Where("id_perencanaan = ?", id).Delete(&model.KelompokPerencanaan{}).Error; err != nil {
		return err
	}
	return deleteResult(r.db.Delete(&model.Perencanaan{}, id))
}

func (r *perencanaanRepository) CountAnggota(idPerencanaan uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.KelompokPerencanaan{}).Where("id_perencanaan = ?", idPerencanaan).Count(&count).Error
	return count, err
}

func (r *perencanaanRepository) IsAnggota(idPerencanaan, idMitra uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.KelompokPerencanaan{}).
		Where("id_perencanaan = ? AND id_mitra = ?", idPerencanaan, idMitra).Count(&count).Error
	return count > 0, err
}

func (r *perencanaanRepository) AddAnggota(k *model.KelompokPerencanaan) error {
	return r.db.Omit("Mitra").Create(k).Error
}

func (r *perencanaanRepository) FindAnggota(id uint) (*model.KelompokPerencanaan, error) {
	var k model.KelompokPerencanaan
	err := r.db.Preload("Mitra").First(&k, id).Error
	return &k, err
}

func (r *perencanaanRepository) FindAnggotaForUpdate(id uint) (*model.KelompokPerencanaan, error) {
	var k model.KelompokPerencanaan
	err := forUpdate(r.db).First(&k, id).Error
	return &k, err
}

func (r *perencanaanRepository) UpdateAnggota(k *model.KelompokPerencanaan) error {
	return r.db.Omit("Mitra").Save(k).Error
}

func (r *perencanaanRepository) DeleteAnggota(id uint) error {
	return deleteResult(r.db.Delete(&model.KelompokPerencanaan{}, id))
}

// HonorRowsByMitra mengambil semua rencana honor mitra. Tarif diambil dari honorarium
// yang cocok dengan (subkegiatan, kode_jabatan), nol jika tidak ada.
func (r *perencanaanRepository) HonorRowsByMitra(idMitra uint) ([]HonorRow, error) {
	var rows []HonorRow
	err := r.db.Table("kelompok_perencanaan AS kp").
		Select("kp.id, kp.volume_tugas, COALESCE(h.tarif, 0) AS tarif, s.tanggal_mulai").
		Joins("JOIN perencanaan pr ON pr.id = kp.id_perencanaan").
		Joins("JOIN subkegiatan s ON s.id = pr.id_subkegiatan").
		Joins("LEFT JOIN honorarium h ON h.id_subkegiatan = pr.id_subkegiatan AND h.kode_jabatan = kp.kode_jabatan").
		Where("kp.id_mitra = ?", idMitra).
		Scan(&rows).Error
	return rows, err
}
