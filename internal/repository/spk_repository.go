package repository

import (
	"errors"

	"simitra-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SpkTask adalah satu tugas mitra (baris kelompok_penugasan) pada periode SPK.
type SpkTask struct {
	IDKelompok      uint       `json:"id_kelompok"`
	IDPenugasan     uint       `json:"id_penugasan"`
	IDSubkegiatan   string     `json:"id_subkegiatan"`
	NamaSubKegiatan string     `json:"nama_sub_kegiatan"`
	NamaKegiatan    string     `json:"nama_kegiatan"`
	KodeJabatan     string     `json:"kode_jabatan"`
	NamaJabatan     string     `json:"nama_jabatan"`
	TanggalMulai    model.Date `json:"tanggal_mulai"`
	TanggalSelesai  model.Date `json:"tanggal_selesai"`
}

type SpkMitra struct {
	IDMitra     uint   `json:"id_mitra"`
	NIK         string `json:"nik"`
	NamaLengkap string `json:"nama_lengkap"`
	JumlahTugas int64  `json:"jumlah_tugas"`
}

type SpkRepository interface {
	FindSetting(periode string) (*model.SpkSetting, error)
	UpsertSetting(s *model.SpkSetting) error
	TasksForMitra(periode string, idMitra uint) ([]SpkTask, error)
	MitraForPeriode(periode string) ([]SpkMitra, error)

	GetTemplates() ([]model.MasterTemplateSpk, error)
	FindTemplate(id uint) (*model.MasterTemplateSpk, error)
	CreateTemplate(t *model.MasterTemplateSpk) error
	UpdateTemplate(t *model.MasterTemplateSpk) error
	DeleteTemplate(id uint) error
}

type spkRepository struct {
	db *gorm.DB
}

func NewSpkRepository(db *gorm.DB) SpkRepository {
	return &spkRepository{db}
}

func orderedPasal(db *gorm.DB) *gorm.DB {
	return db.Order("nomor_pasal ASC, id ASC")
}

// FindSetting mengembalikan nil tanpa error jika periode belum diatur.
func (r *spkRepository) FindSetting(periode string) (*model.SpkSetting, error) {
	var s model.SpkSetting
	err := r.db.Preload("Template.Pasal", orderedPasal).Where("periode = ?", periode).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *spkRepository) UpsertSetting(s *model.SpkSetting) error {
	return r.db.Omit("Template").Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "periode"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"nama_ppk", "nip_ppk", "jabatan_ppk", "tanggal_surat",
			"nomor_surat_format", "komponen_honor", "id_template", "updated_at",
		}),
	}).Create(s).Error
}

func (r *spkRepository) TasksForMitra(periode string, idMitra uint) ([]SpkTask, error) {
	var tasks []SpkTask
	err := r.db.Table("kelompok_penugasan AS kp").
		Select(`kp.id AS id_kelompok, p.id AS id_penugasan, s.id AS id_subkegiatan,
			s.nama_sub_kegiatan, k.nama_kegiatan, kp.kode_jabatan,
			COALESCE(j.nama_jabatan, '') AS nama_jabatan, s.tanggal_mulai, s.tanggal_selesai`).
		Joins("JOIN penugasan p ON p.id = kp.id_penugasan").
		Joins("JOIN subkegiatan s ON s.id = p.id_subkegiatan").
		Joins("JOIN kegiatan k ON k.id = s.id_kegiatan").
		Joins("LEFT JOIN jabatan_mitra j ON j.kode_jabatan = kp.kode_jabatan").
		Where("kp.id_mitra = ? AND s.periode = ?", idMitra, periode).
		Order("s.tanggal_mulai ASC, kp.id ASC").
		Scan(&tasks).Error
	return tasks, err
}

func (r *spkRepository) MitraForPeriode(periode string) ([]SpkMitra, error) {
	var list []SpkMitra
	err := r.db.Table("kelompok_penugasan AS kp").
		Select("m.id AS id_mitra, m.nik, m.nama_lengkap, COUNT(kp.id) AS jumlah_tugas").
		Joins("JOIN penugasan p ON p.id = kp.id_penugasan").
		Joins("JOIN subkegiatan s ON s.id = p.id_subkegiatan").
		Joins("JOIN mitra m ON m.id = kp.id_mitra").
		Where("s.periode = ?", periode).
		Group("m.id, m.nik, m.nama_lengkap").
		Order("m.nama_lengkap ASC").
		Scan(&list).Error
	return list, err
}

func (r *spkRepository) GetTemplates() ([]model.MasterTemplateSpk, error) {
	var list []model.MasterTemplateSpk
	err := r.db.Preload("Pasal", orderedPasal).Order("id ASC").Find(&list).Error
	return list, err
}

func (r *spkRepository) FindTemplate(id uint) (*model.MasterTemplateSpk, error) {
	var t model.MasterTemplateSpk
	err := r.db.Preload("Pasal", orderedPasal).First(&t, id).Error
	return &t, err
}

func (r *spkRepository) CreateTemplate(t *model.MasterTemplateSpk) error {
	return r.db.Create(t).Error
}

// UpdateTemplate mengganti seluruh pasal template. Jalankan di dalam transaksi.
func (r *spkRepository) UpdateTemplate(t *model.MasterTemplateSpk) error {
	if err := r.db.Omit("Pasal").Save(t).Error; err != nil {
		return err
	}
	if err := r.db.Where("id_template = ?", t.ID).Delete(&model.MasterTemplateSpkPasal{}).Error; err != nil {
		return err
	}
	if len(t.Pasal) == 0 {
		return nil
	}
	for i := range t.Pasal {
		t.Pasal[i].ID = 0
		t.Pasal[i].IDTemplate = t.ID
	}
	return r.db.Create(&t.Pasal).Error
}

func (r *spkRepository) DeleteTemplate(id uint) error {
	if err := r.db.Model(&model.SpkSetting{}).Where("id_template = ?", id).Update("id_template", nil).Error; err != nil {
		return err
	}
	if err := r.db.Where("id_template = ?", id).Delete(&model.MasterTemplateSpkPasal{}).Error; err != nil {
		return err
	}
	return deleteResult(r.db.Delete(&model.MasterTemplateSpk{}, id))
}
