package usecase

import (
	"context"
	"sort"
	"strconv"

	"simitra-backend/internal/apperror"
	"simitra-backend/internal/repository"
	"simitra-backend/internal/rupiah"

	"gorm.io/gorm"
)

type TransaksiBulananRow struct {
	repository.TransaksiBulanan
	MelebihiBatas bool `json:"melebihi_batas"`
}

type TransaksiTahunanRow struct {
	IDMitra       uint   `json:"id_mitra"`
	NIK           string `json:"nik"`
	NamaLengkap   string `json:"nama_lengkap"`
	JumlahTugas   int    `json:"jumlah_tugas"`
	TotalHonor    int64  `json:"total_honor"`
	BatasHonor    int64  `json:"batas_honor"`
	SisaBatas     int64  `json:"sisa_batas"`
	MelebihiBatas bool   `json:"melebihi_batas"`
}

type TransaksiTahunan struct {
	Tahun        int                   `json:"tahun"`
	BatasHonor   int64                 `json:"batas_honor"`
	AturanDiatur bool                  `json:"aturan_diatur"`
	Mitra        []TransaksiTahunanRow `json:"mitra"`
}

type TransaksiUsecase struct {
	db *gorm.DB
}

func NewTransaksiUsecase(db *gorm.DB) *TransaksiUsecase {
	return &TransaksiUsecase{db: db}
}

// Bulanan merangkum honor penugasan per mitra pada periode YYYY-MM dan
// menandai mitra yang melewati batas honor bulanannya.
func (u *TransaksiUsecase) Bulanan(ctx context.Context, periode string) ([]TransaksiBulananRow, error) {
	if _, err := ParsePeriode(periode); err != nil {
		return nil, err
	}
	rows, err := repository.NewTransaksiRepository(u.db.WithContext(ctx)).Bulanan(periode)
	if err != nil {
		return nil, err
	}
	result := make([]TransaksiBulananRow, 0, len(rows))
	for _, r := range rows {
		result = append(result, TransaksiBulananRow{
			TransaksiBulanan: r,
			MelebihiBatas:    r.BatasHonorBulanan > 0 && r.TotalHonor > r.BatasHonorBulanan,
		})
	}
	return result, nil
}

// Tahunan membandingkan rencana honor setiap mitra dengan aturan batas honor tahun tersebut.
func (u *TransaksiUsecase) Tahunan(ctx context.Context, tahunStr string) (*TransaksiTahunan, error) {
	tahun, err := strconv.Atoi(tahunStr)
	if err != nil || tahun < 2000 || tahun > 9999 {
		return nil, apperror.Validation("Tahun tidak valid")
	}
	db := u.db.WithContext(ctx)

	out := &TransaksiTahunan{Tahun: tahun, Mitra: []TransaksiTahunanRow{}}
	aturan, err := repository.NewAturanPeriodeRepository(db).FindByPeriode(tahunStr)
	if err != nil {
		return nil, err
	}
	if aturan != nil {
		out.AturanDiatur = true
		out.BatasHonor = aturan.BatasHonor
	}

	rows, err := repository.NewTransaksiRepository(db).RencanaHonor()
	if err != nil {
		return nil, err
	}
	byMitra := make(map[uint]*TransaksiTahunanRow)
	for _, r := range rows {
		if r.TanggalMulai.IsZero() || r.TanggalMulai.Year() != tahun {
			continue
		}
		row, ok := byMitra[r.IDMitra]
		if !ok {
			row = &TransaksiTahunanRow{IDMitra: r.IDMitra, NIK: r.NIK, NamaLengkap: r.NamaLengkap}
			byMitra[r.IDMitra] = row
		}
		row.JumlahTugas++
		honor, err := rupiah.Kali(r.Tarif, r.VolumeTugas)
		if err == nil {
			row.TotalHonor, err = rupiah.Tambah(row.TotalHonor, honor)
		}
		if err != nil {
			return nil, honorOverflow(err)
		}
	}
	for _, row := range byMitra {
		row.BatasHonor = out.BatasHonor
		if out.AturanDiatur {
			row.SisaBatas = out.BatasHonor - row.TotalHonor
			row.MelebihiBatas = row.TotalHonor > out.BatasHonor
		}
		out.Mitra = append(out.Mitra, *row)
	}
	sort.Slice(out.Mitra, func(i, j int) bool { return out.Mitra[i].NamaLengkap < out.Mitra[j].NamaLengkap })
	return out, nil
}
