package repository

import (
	"simitra-backend/internal/model"

	"gorm.io/gorm"
)

type TransaksiBulanan struct {
	IDMitra           uint   `json:"id_mitra"`
	NIK               string `json:"nik"`
	NamaLengkap       string `json:"nama_lengkap"`
	BatasHonorBulanan int64  `json:"batas_honor_bulanan"`
	JumlahTugas       int64  `json:"jumlah_tugas"`
	TotalHonor        int64  `json:"total_honor"`
}

// RencanaHonor adalah satu baris kelompok_perencanaan dengan tarif dan tanggal mulai subkegiatan.
type RencanaHonor struct {
	IDMitra      uint
	NIK          string
	NamaLengkap  string
	VolumeTugas  int
	Tarif        int64
	TanggalMulai model.Date
}

type TransaksiRepository interface {
	Bulanan(periode string) ([]TransaksiBulanan, error)
	RencanaHonor() ([]RencanaHonor, error)
}

type transaksiRepository struct {
	db *gorm.DB
}

func NewTransaksiRepository(db *gorm.DB) TransaksiRepository {
	return &transaksiRepository{db}
}

// Bulanan merangkum honor penugasan per mitra untuk satu periode YYYY-MM.
// Tarif jabatan dipakai jika ada, selain itu tarif umum subkegiatan.
func (r *transaksiRepository) Bulanan(periode string) ([]TransaksiBulanan, error) {
	var rows []TransaksiBulanan
	err := r.db.Table("kelompok_penugasan AS kp").
		Select(`m.id AS id_mitra, m.nik, m.nama_lengkap, m.batas_honor_bulanan,
			COUNT(kp.id) AS jumlah_tugas,
			COALESCE(SUM(COALESCE(h1.tarif, h0.tarif, 0) * COALESCE(h1.basis_volume, h0.basis_volume, 1)), 0) AS total_honor`).
		Joins("JOIN penugasan p ON p.id = kp.id_penugasan").
		Joins("JOIN subkegiatan s ON s.id = p.id_subkegiatan").
		Joins("JOIN mitra m ON m.id = kp.id_mitra").
		Joins("LEFT JOIN honorarium h1 ON h1.id_subkegiatan = s.id AND h1.kode_jabatan = kp.kode_jabatan AND kp.kode_jabatan <> ''").
		Joins("LEFT JOIN honorarium h0 ON h0.id_subkegiatan = s.id AND h0.kode_jabatan = ''").
		Where("s.periode = ?", periode).
		Group("m.id, m.nik, m.nama_lengkap, m.batas_honor_bulanan").
		Order("m.nama_lengkap ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *transaksiRepository) RencanaHonor() ([]RencanaHonor, error) {
	var rows []RencanaHonor
	err := r.db.Table("kelompok_perencanaan AS kp").
		Select("m.id AS id_mitra, m.nik, m.nama_lengkap, kp.volume_tugas, COALESCE(h.tarif, 0) AS tarif, s.tanggal_mulai").
		Joins("JOIN perencanaan pr ON pr.id = kp.id_perencanaan").
		Joins("JOIN subkegiatan s ON s.id = pr.id_subkegiatan").
		Joins("JOIN mitra m ON m.id = kp.id_mitra").
		Joins("LEFT JOIN honorarium h ON h.id_subkegiatan = pr.id_subkegiatan AND h.kode_jabatan = kp.kode_jabatan").
		Order("m.nama_lengkap ASC").
		Scan(&rows).Error
	return rows, err
}
