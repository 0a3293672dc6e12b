package model

import "time"

type SatuanKegiatan struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	NamaSatuan string `json:"nama_satuan" gorm:"size:50;uniqueIndex;not null"`
	Alias      string `json:"alias" gorm:"size:20"`
}

func (SatuanKegiatan) TableName() string { return "satuan_kegiatan" }

type JabatanMitra struct {
	KodeJabatan   string  `json:"kode_jabatan" gorm:"primaryKey;size:50"`
	NamaJabatan   string  `json:"nama_jabatan" gorm:"size:100;not null"`
	IDSubkegiatan *string `json:"id_subkegiatan" gorm:"size:20;index"`
}

func (JabatanMitra) TableName() string { return "jabatan_mitra" }

// Honorarium adalah tarif per subkegiatan, opsional per jabatan.
// KodeJabatan kosong berarti tarif umum subkegiatan tersebut.
type Honorarium struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	IDSubkegiatan string          `json:"id_subkegiatan" gorm:"size:20;not null;uniqueIndex:uq_honorarium_sub_jabatan"`
	KodeJabatan   string          `json:"kode_jabatan" gorm:"size:50;not null;default:'';uniqueIndex:uq_honorarium_sub_jabatan"`
	IDKegiatan    *uint           `json:"id_kegiatan"` // jalur lama, tidak dipakai dalam perhitungan
	Tarif         int64           `json:"tarif" gorm:"not null"`
	IDSatuan      uint            `json:"id_satuan" gorm:"not null"`
	BasisVolume   int             `json:"basis_volume" gorm:"not null;default:1"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	Satuan        *SatuanKegiatan `json:"satuan,omitempty" gorm:"foreignKey:IDSatuan"`
}

func (Honorarium) TableName() string { return "honorarium" }

// AturanPeriode membatasi total honor mitra dalam satu periode (YYYY atau YYYY-MM).
type AturanPeriode struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Periode    string    `json:"periode" gorm:"size:7;uniqueIndex;not null"`
	BatasHonor int64     `json:"batas_honor" gorm:"not null"`
	Keterangan string    `json:"keterangan" gorm:"size:255"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (AturanPeriode) TableName() string { return "aturan_periode" }
