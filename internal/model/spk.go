package model

import "time"

type SpkSetting struct {
	ID               uint               `json:"id" gorm:"primaryKey"`
	Periode          string             `json:"periode" gorm:"size:7;uniqueIndex;not null"`
	NamaPpk          string             `json:"nama_ppk" gorm:"size:150"`
	NipPpk           string             `json:"nip_ppk" gorm:"size:30"`
	JabatanPpk       string             `json:"jabatan_ppk" gorm:"size:150"`
	TanggalSurat     Date               `json:"tanggal_surat"`
	NomorSuratFormat string             `json:"nomor_surat_format" gorm:"size:150"`
	KomponenHonor    string             `json:"komponen_honor" gorm:"type:text"`
	IDTemplate       *uint              `json:"id_template"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
	Template         *MasterTemplateSpk `json:"template,omitempty" gorm:"foreignKey:IDTemplate"`
}

func (SpkSetting) TableName() string { return "spk_setting" }

type MasterTemplateSpk struct {
	ID           uint                     `json:"id" gorm:"primaryKey"`
	NamaTemplate string                   `json:"nama_template" gorm:"size:150;not null"`
	Pembuka      string                   `json:"pembuka" gorm:"type:text"`
	Penutup      string                   `json:"penutup" gorm:"type:text"`
	CreatedAt    time.Time                `json:"created_at"`
	UpdatedAt    time.Time                `json:"updated_at"`
	Pasal        []MasterTemplateSpkPasal `json:"pasal" gorm:"foreignKey:IDTemplate;constraint:OnDelete:CASCADE"`
}

func (MasterTemplateSpk) TableName() string { return "master_template_spk" }

type MasterTemplateSpkPasal struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	IDTemplate uint   `json:"id_template" gorm:"not null;index"`
	NomorPasal int    `json:"nomor_pasal" gorm:"not null"`
	Judul      string `json:"judul" gorm:"size:200"`
	Isi        string `json:"isi" gorm:"type:text"`
}

func (MasterTemplateSpkPasal) TableName() string { return "master_template_spk_pasal" }
