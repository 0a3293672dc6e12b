package model

import "time"

// DefaultJumlahMaxMitra dipakai saat tim dibuat otomatis lewat import.
const DefaultJumlahMaxMitra = 10

// MaxVolumeTugas sama dengan batas validasi volume_tugas dan basis_volume di request.
const MaxVolumeTugas = 100000

type Penugasan struct {
	ID             uint                `json:"id" gorm:"primaryKey"`
	IDSubkegiatan  string              `json:"id_subkegiatan" gorm:"size:20;not null;index"`
	IDPengawas     uint                `json:"id_pengawas" gorm:"not null;index"`
	JumlahMaxMitra int                 `json:"jumlah_max_mitra" gorm:"not null"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
	Subkegiatan    *Subkegiatan        `json:"subkegiatan,omitempty" gorm:"foreignKey:IDSubkegiatan"`
	Pengawas       *User               `json:"pengawas,omitempty" gorm:"foreignKey:IDPengawas"`
	Anggota        []KelompokPenugasan `json:"anggota,omitempty" gorm:"foreignKey:IDPenugasan;constraint:OnDelete:CASCADE"`
}

func (Penugasan) TableName() string { return "penugasan" }

type KelompokPenugasan struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	IDPenugasan uint      `json:"id_penugasan" gorm:"not null;uniqueIndex:uq_kelompok_penugasan"`
	IDMitra     uint      `json:"id_mitra" gorm:"not null;uniqueIndex:uq_kelompok_penugasan"`
	KodeJabatan string    `json:"kode_jabatan" gorm:"size:50;not null;default:''"`
	CreatedAt   time.Time `json:"created_at"`
	Mitra       *Mitra    `json:"mitra,omitempty" gorm:"foreignKey:IDMitra"`
}

func (KelompokPenugasan) TableName() string { return "kelompok_penugasan" }

type Perencanaan struct {
	ID             uint                  `json:"id" gorm:"primaryKey"`
	IDSubkegiatan  string                `json:"id_subkegiatan" gorm:"size:20;not null;index"`
	IDPengawas     uint                  `json:"id_pengawas" gorm:"not null;index"`
	JumlahMaxMitra int                   `json:"jumlah_max_mitra" gorm:"not null"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
	Subkegiatan    *Subkegiatan          `json:"subkegiatan,omitempty" gorm:"foreignKey:IDSubkegiatan"`
	Pengawas       *User                 `json:"pengawas,omitempty" gorm:"foreignKey:IDPengawas"`
	Anggota        []KelompokPerencanaan `json:"anggota,omitempty" gorm:"foreignKey:IDPerencanaan;constraint:OnDelete:CASCADE"`
}

func (Perencanaan) TableName() string { return "perencanaan" }

type KelompokPerencanaan struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	IDPerencanaan uint      `json:"id_perencanaan" gorm:"not null;uniqueIndex:uq_kelompok_perencanaan"`
	IDMitra       uint      `json:"id_mitra" gorm:"not null;uniqueIndex:uq_kelompok_perencanaan"`
	KodeJabatan   string    `json:"kode_jabatan" gorm:"size:50;not null;default:''"`
	VolumeTugas   int       `json:"volume_tugas" gorm:"not null;default:0"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Mitra         *Mitra    `json:"mitra,omitempty" gorm:"foreignKey:IDMitra"`
}

func (KelompokPerencanaan) TableName() string { return "kelompok_perencanaan" }
