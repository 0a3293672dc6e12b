package model

import "time"

const (
	PengajuanPending  = "pending"
	PengajuanApproved = "approved"
	PengajuanRejected = "rejected"
)

type Mitra struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	IDUser            *uint     `json:"id_user" gorm:"index"`
	NIK               string    `json:"nik" gorm:"column:nik;size:16;uniqueIndex;not null"`
	SobatID           *string   `json:"sobat_id" gorm:"size:50;uniqueIndex"`
	NamaLengkap       string    `json:"nama_lengkap" gorm:"size:150;not null"`
	Alamat            string    `json:"alamat" gorm:"type:text"`
	JenisKelamin      string    `json:"jenis_kelamin" gorm:"size:1"`
	TanggalLahir      Date      `json:"tanggal_lahir"`
	Pendidikan        string    `json:"pendidikan" gorm:"size:50"`
	Pekerjaan         string    `json:"pekerjaan" gorm:"size:100"`
	NoHP              string    `json:"no_hp" gorm:"column:no_hp;size:20"`
	Email             string    `json:"email" gorm:"size:100"`
	NamaBank          string    `json:"nama_bank" gorm:"size:50"`
	NoRekening        string    `json:"no_rekening" gorm:"size:50"`
	AtasNamaRekening  string    `json:"atas_nama_rekening" gorm:"size:150"`
	BatasHonorBulanan int64     `json:"batas_honor_bulanan" gorm:"not null;default:0"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (Mitra) TableName() string { return "mitra" }

type PengajuanMitra struct {
	ID               uint       `json:"id" gorm:"primaryKey"`
	IDUser           uint       `json:"id_user" gorm:"not null;index"`
	NIK              string     `json:"nik" gorm:"column:nik;size:16;not null"`
	SobatID          *string    `json:"sobat_id" gorm:"size:50"`
	NamaLengkap      string     `json:"nama_lengkap" gorm:"size:150;not null"`
	Alamat           string     `json:"alamat" gorm:"type:text"`
	JenisKelamin     string     `json:"jenis_kelamin" gorm:"size:1"`
	TanggalLahir     Date       `json:"tanggal_lahir"`
	Pendidikan       string     `json:"pendidikan" gorm:"size:50"`
	Pekerjaan        string     `json:"pekerjaan" gorm:"size:100"`
	NoHP             string     `json:"no_hp" gorm:"column:no_hp;size:20"`
	Email            string     `json:"email" gorm:"size:100"`
	NamaBank         string     `json:"nama_bank" gorm:"size:50"`
	NoRekening       string     `json:"no_rekening" gorm:"size:50"`
	AtasNamaRekening string     `json:"atas_nama_rekening" gorm:"size:150"`
	Status           string     `json:"status" gorm:"size:10;not null;default:pending;index"`
	Catatan          string     `json:"catatan" gorm:"type:text"`
	DireviewOleh     *uint      `json:"direview_oleh"`
	DireviewPada     *time.Time `json:"direview_pada"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`

	User *User `json:"user,omitempty" gorm:"foreignKey:IDUser"`
}

func (PengajuanMitra) TableName() string { return "pengajuan_mitra" }
