package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
)

const (
	SubStatusPending = "pending"
	SubStatusDone    = "done"

	RekrutmenPending = "pending"
	RekrutmenOpen    = "open"
	RekrutmenClosed  = "closed"
)

type Kegiatan struct {
	ID             uint          `json:"id" gorm:"primaryKey"`
	NamaKegiatan   string        `json:"nama_kegiatan" gorm:"size:200;not null"`
	Deskripsi      string        `json:"deskripsi" gorm:"type:text"`
	TahunAnggaran  string        `json:"tahun_anggaran" gorm:"size:4"`
	TanggalMulai   Date          `json:"tanggal_mulai"`
	TanggalSelesai Date          `json:"tanggal_selesai"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
	Subkegiatan    []Subkegiatan `json:"subkegiatan,omitempty" gorm:"foreignKey:IDKegiatan;constraint:OnDelete:CASCADE"`
}

func (Kegiatan) TableName() string { return "kegiatan" }

// Subkegiatan memakai ID string berurutan "sub1", "sub2", ... yang dibuat saat insert.
type Subkegiatan struct {
	ID              string    `json:"id" gorm:"primaryKey;size:20"`
	IDKegiatan      uint      `json:"id_kegiatan" gorm:"not null;index"`
	NamaSubKegiatan string    `json:"nama_sub_kegiatan" gorm:"size:200;not null"`
	Deskripsi       string    `json:"deskripsi" gorm:"type:text"`
	Periode         string    `json:"periode" gorm:"size:7;index"` // YYYY-MM
	TanggalMulai    Date      `json:"tanggal_mulai"`
	TanggalSelesai  Date      `json:"tanggal_selesai"`
	OpenReq         Date      `json:"open_req"`
	CloseReq        Date      `json:"close_req"`
	Status          string    `json:"status" gorm:"size:10;not null;default:pending"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	StatusRekrutmen string    `json:"status_rekrutmen,omitempty" gorm:"-"`
	Kegiatan        *Kegiatan `json:"kegiatan,omitempty" gorm:"foreignKey:IDKegiatan"`
}

func (Subkegiatan) TableName() string { return "subkegiatan" }

// BeforeCreate mengambil nomor dari counter "subkegiatan" yang dikunci selama
// transaksi insert. Tabel hanya dipindai sekali, saat counter belum ada.
func (s *Subkegiatan) BeforeCreate(tx *gorm.DB) error {
	if s.Status == "" {
		s.Status = SubStatusPending
	}
	if s.ID != "" {
		return nil
	}
	n, err := nextSequence(tx, "subkegiatan", func(db *gorm.DB) (int, error) {
		var ids []string
		if err := db.Model(&Subkegiatan{}).Where("id LIKE ?", "sub%").Pluck("id", &ids).Error; err != nil {
			return 0, err
		}
		return nextSubNumber(ids) - 1, nil
	})
	if err != nil {
		return err
	}
	s.ID = fmt.Sprintf("sub%d", n)
	return nil
}

func (s *Subkegiatan) AfterFind(tx *gorm.DB) error {
	s.StatusRekrutmen = RecruitmentStatusAt(s.OpenReq, s.CloseReq, time.Now())
	return nil
}

// nextSubNumber mengembalikan angka akhiran terbesar + 1 dari daftar ID.
func nextSubNumber(ids []string) int {
	highest := 0
	for _, id := range ids {
		n, err := strconv.Atoi(strings.TrimPrefix(id, "sub"))
		if err == nil && n > highest {
			highest = n
		}
	}
	return highest + 1
}

// RecruitmentStatusAt menghitung status rekrutmen dari jendela open_req/close_req.
// Perbandingan hanya pada tanggal. Hasil kosong berarti salah satu tanggal belum diisi.
func RecruitmentStatusAt(open, close Date, now time.Time) string {
	if open.IsZero() || close.IsZero() {
		return ""
	}
	today := DateOf(now.In(time.Local))
	switch {
	case today.Before(open.Time):
		return RekrutmenPending
	case today.After(close.Time):
		return RekrutmenClosed
	default:
		return RekrutmenOpen
	}
}
