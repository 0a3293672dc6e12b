package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"simitra-backend/internal/apperror"
	"simitra-backend/internal/model"
	"simitra-backend/internal/repository"
	"simitra-backend/internal/rupiah"

	"gorm.io/gorm"
)

const DefaultNomorSuratFormat = "{no}/SPK/{bulan_romawi}/{tahun}"

var namaBulan = []string{"", "Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember"}

var bulanRomawi = []string{"", "I", "II", "III", "IV", "V", "VI",
	"VII", "VIII", "IX", "X", "XI", "XII"}

type SpkTugas struct {
	repository.SpkTask
	Tarif       int64  `json:"tarif"`
	BasisVolume int    `json:"basis_volume"`
	NamaSatuan  string `json:"nama_satuan"`
	Honor       int64  `json:"honor"`
	HonorFormat string `json:"honor_format"`
}

// SpkDocument berisi seluruh data cetak surat perjanjian kerja satu mitra untuk satu periode.
type SpkDocument struct {
	Periode          string                   `json:"periode"`
	BulanTeks        string                   `json:"bulan_teks"`
	NomorSurat       string                   `json:"nomor_surat"`
	TanggalSurat     model.Date               `json:"tanggal_surat"`
	Mitra            model.Mitra              `json:"mitra"`
	Setting          *model.SpkSetting        `json:"setting"`
	Template         *model.MasterTemplateSpk `json:"template"`
	Tugas            []SpkTugas               `json:"tugas"`
	TotalHonor       int64                    `json:"total_honor"`
	TotalHonorFormat string                   `json:"total_honor_format"`
	Terbilang        string                   `json:"terbilang"`
}

type SpkUsecase struct {
	db *gorm.DB
}

func NewSpkUsecase(db *gorm.DB) *SpkUsecase {
	return &SpkUsecase{db: db}
}

// ParsePeriode memvalidasi periode bulanan YYYY-MM.
func ParsePeriode(periode string) (time.Time, error) {
	t, err := time.Parse("2006-01", periode)
	if err != nil {
		return time.Time{}, apperror.Validation("Periode harus berformat YYYY-MM")
	}
	return t, nil
}

func (u *SpkUsecase) Build(ctx context.Context, periode string, idMitra uint) (*SpkDocument, error) {
	bulan, err := ParsePeriode(periode)
	if err != nil {
		return nil, err
	}
	db := u.db.WithContext(ctx)

	mitra, err := repository.NewMitraRepository(db).FindByID(idMitra)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("Mitra %d tidak ditemukan", idMitra)
	}
	if err != nil {
		return nil, err
	}

	spkRepo := repository.NewSpkRepository(db)
	setting, err := spkRepo.FindSetting(periode)
	if err != nil {
		return nil, err
	}
	tasks, err := spkRepo.TasksForMitra(periode, idMitra)
	if err != nil {
		return nil, err
	}

	honorRepo := repository.NewHonorariumRepository(db)
	doc := &SpkDocument{
		Periode:   periode,
		BulanTeks: fmt.Sprintf("%s %d", namaBulan[bulan.Month()], bulan.Year()),
		Mitra:     *mitra,
		Setting:   setting,
		Tugas:     make([]SpkTugas, 0, len(tasks)),
	}
	for _, t := range tasks {
		line := SpkTugas{SpkTask: t}
		rate, err := resolveRate(honorRepo, t.IDSubkegiatan, t.KodeJabatan)
		if err != nil {
			return nil, err
		}
		if rate != nil {
			line.Tarif = rate.Tarif
			line.BasisVolume = rate.BasisVolume
			if rate.Satuan != nil {
				line.NamaSatuan = rate.Satuan.NamaSatuan
			}
		}
		line.Honor, err = rupiah.Kali(line.Tarif, line.BasisVolume)
		if err == nil {
			doc.TotalHonor, err = rupiah.Tambah(doc.TotalHonor, line.Honor)
		}
		if err != nil {
			return nil, honorOverflow(err)
		}
		line.HonorFormat = rupiah.Format(line.Honor)
		doc.Tugas = append(doc.Tugas, line)
	}
	doc.TotalHonorFormat = rupiah.Format(doc.TotalHonor)
	doc.Terbilang = rupiah.TerbilangRupiah(doc.TotalHonor)

	format := DefaultNomorSuratFormat
	if setting != nil {
		doc.TanggalSurat = setting.TanggalSurat
		doc.Template = setting.Template
		if setting.NomorSuratFormat != "" {
			format = setting.NomorSuratFormat
		}
	}
	urutan, err := u.urutanMitra(spkRepo, periode, idMitra)
	if err != nil {
		return nil, err
	}
	doc.NomorSurat = FormatNomorSurat(format, urutan, bulan)
	return doc, nil
}

// resolveRate: tarif jabatan lebih dulu, lalu tarif umum subkegiatan.
func resolveRate(repo repository.HonorariumRepository, idSubkegiatan, kodeJabatan string) (*model.Honorarium, error) {
	if kodeJabatan != "" {
		rate, err := repo.FindRate(idSubkegiatan, kodeJabatan)
		if err != nil || rate != nil {
			return rate, err
		}
	}
	return repo.FindRate(idSubkegiatan, "")
}

// urutanMitra adalah nomor urut mitra (berdasarkan nama) di antara mitra yang bertugas pada periode.
func (u *SpkUsecase) urutanMitra(repo repository.SpkRepository, periode string, idMitra uint) (int, error) {
	list, err := repo.MitraForPeriode(periode)
	if err != nil {
		return 0, err
	}
	for i, m := range list {
		if m.IDMitra == idMitra {
			return i + 1, nil
		}
	}
	return len(list) + 1, nil
}

// FormatNomorSurat mengisi placeholder {no}, {bulan}, {bulan_romawi} dan {tahun}.
func FormatNomorSurat(format string, no int, bulan time.Time) string {
	return strings.NewReplacer(
		"{no}", fmt.Sprintf("%03d", no),
		"{bulan}", fmt.Sprintf("%02d", int(bulan.Month())),
		"{bulan_romawi}", bulanRomawi[bulan.Month()],
		"{tahun}", strconv.Itoa(bulan.Year()),
	).Replace(format)
}

func (u *SpkUsecase) MitraForPeriode(ctx context.Context, periode string) ([]repository.SpkMitra, error) {
	if _, err := ParsePeriode(periode); err != nil {
		return nil, err
	}
	return repository.NewSpkRepository(u.db.WithContext(ctx)).MitraForPeriode(periode)
}

func (u *SpkUsecase) GetSetting(ctx context.Context, periode string) (*model.SpkSetting, error) {
	if _, err := ParsePeriode(periode); err != nil {
		return nil, err
	}
	s, err := repository.NewSpkRepository(u.db.WithContext(ctx)).FindSetting(periode)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, apperror.NotFound("Pengaturan SPK periode %s belum dibuat", periode)
	}
	return s, nil
}

func (u *SpkUsecase) SaveSetting(ctx context.Context, s *model.SpkSetting) (*model.SpkSetting, error) {
	if _, err := ParsePeriode(s.Periode); err != nil {
		return nil, err
	}
	db := u.db.WithContext(ctx)
	repo := repository.NewSpkRepository(db)
	if s.IDTemplate != nil {
		if _, err := repo.FindTemplate(*s.IDTemplate); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperror.NotFound("Template SPK %d tidak ditemukan", *s.IDTemplate)
			}
			return nil, err
		}
	}
	s.ID = 0
	if err := repo.UpsertSetting(s); err != nil {
		return nil, err
	}
	return repo.FindSetting(s.Periode)
}

func (u *SpkUsecase) UpdateTemplate(ctx context.Context, t *model.MasterTemplateSpk) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := repository.NewSpkRepository(tx)
		existing, err := repo.FindTemplate(t.ID)
		if err != nil {
			return err
		}
		t.CreatedAt = existing.CreatedAt
		return repo.UpdateTemplate(t)
	})
}

func (u *SpkUsecase) DeleteTemplate(ctx context.Context, id uint) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return repository.NewSpkRepository(tx).DeleteTemplate(id)
	})
}

// FormatTanggal menulis tanggal dalam format surat, mis. "3 Maret 2025".
func FormatTanggal(d model.Date) string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%d %s %d", d.Day(), namaBulan[d.Month()], d.Year())
}
