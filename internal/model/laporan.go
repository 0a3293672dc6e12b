package model

import "time"

// AllSub menandai form yang berlaku untuk semua subkegiatan dalam satu kegiatan.
const AllSub = "ALL_SUB"

type LaporanForm struct {
	ID            uint              `json:"id" gorm:"primaryKey"`
	IDKegiatan    uint              `json:"id_kegiatan" gorm:"not null;index"`
	IDSubkegiatan string            `json:"id_subkegiatan" gorm:"size:20;not null;index"`
	NamaForm      string            `json:"nama_form" gorm:"size:200;not null"`
	Deskripsi     string            `json:"deskripsi" gorm:"type:text"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
	Items         []LaporanFormItem `json:"items" gorm:"foreignKey:IDLaporanForm;constraint:OnDelete:CASCADE"`
}

func (LaporanForm) TableName() string { return "laporan_form" }

type LaporanFormItem struct {
	ID            uint   `json:"id" gorm:"primaryKey"`
	IDLaporanForm uint   `json:"id_laporan_form" gorm:"not null;index"`
	Label         string `json:"label" gorm:"size:200;not null"`
	TipeInput     string `json:"tipe_input" gorm:"size:20;not null;default:text"`
	Opsi          string `json:"opsi" gorm:"type:text"`
	Wajib         bool   `json:"wajib"`
	Urutan        int    `json:"urutan"`
}

func (LaporanFormItem) TableName() string { return "laporan_form_items" }
