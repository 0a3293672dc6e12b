package model

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// IDSequence menyimpan nomor terakhir untuk ID berurutan (mis. "sub12").
type IDSequence struct {
	Nama     string `json:"nama" gorm:"primaryKey;size:50"`
	Terakhir int    `json:"terakhir" gorm:"not null"`
}

func (IDSequence) TableName() string { return "id_sequence" }

// nextSequence mengunci baris counter (SELECT ... FOR UPDATE) lalu menaikkannya
// di transaksi yang sama, sehingga insert paralel tidak mendapat nomor yang sama.
// Baris yang belum ada diisi dari nilai awal seed().
func nextSequence(tx *gorm.DB, nama string, seed func(db *gorm.DB) (int, error)) (int, error) {
	db := tx.Session(&gorm.Session{NewDB: true})

	var seq IDSequence
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).Where("nama = ?", nama).First(&seq).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		awal, err := seed(db)
		if err != nil {
			return 0, err
		}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&IDSequence{Nama: nama, Terakhir: awal}).Error; err != nil {
			return 0, err
		}
		err = db.Clauses(clause.Locking{Strength: "UPDATE"}).Where("nama = ?", nama).First(&seq).Error
		if err != nil {
			return 0, err
		}
	} else if err != nil {
		return 0, err
	}

	seq.Terakhir++
	if err := db.Model(&IDSequence{}).Where("nama = ?", nama).Update("terakhir", seq.Terakhir).Error; err != nil {
		return 0, err
	}
	return seq.Terakhir, nil
}
