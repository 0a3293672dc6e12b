package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"simitra-backend/internal/apperror"
	"simitra-backend/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var (
	periodeBulanan = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)
	periodeTahunan = regexp.MustCompile(`^\d{4}$`)
	validate       = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Nama field di detail error mengikuti nama JSON
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("periode", func(fl validator.FieldLevel) bool {
		return periodeBulanan.MatchString(fl.Field().String())
	})
	// periode aturan boleh tahunan (YYYY) atau bulanan (YYYY-MM)
	_ = v.RegisterValidation("periode_aturan", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return periodeTahunan.MatchString(s) || periodeBulanan.MatchString(s)
	})
	return v
}

// parseBody membaca JSON secara ketat (field asing ditolak) lalu memvalidasinya.
func parseBody(c *fiber.Ctx, out interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(c.Body()))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return apperror.Validation("Format data salah: %s", err.Error())
	}
	return validateStruct(out)
}

func validateStruct(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperror.Internal(err)
	}
	details := make(map[string]interface{}, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		// field di dalam slice memakai path lengkap, mis. items[0].label
		if ns := strings.SplitN(fe.Namespace(), ".", 2); len(ns) == 2 && strings.Contains(ns[1], "[") {
			field = ns[1]
		}
		if fe.Param() != "" {
			details[field] = fe.Tag() + "=" + fe.Param()
		} else {
			details[field] = fe.Tag()
		}
	}
	return apperror.Validation("Data tidak valid").WithDetails(details)
}

func paramUint(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil || id == 0 {
		return 0, apperror.Validation("Parameter %s tidak valid", name)
	}
	return uint(id), nil
}

func queryUint(c *fiber.Ctx, name string) (uint, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, apperror.Validation("Parameter %s tidak valid", name)
	}
	return uint(id), nil
}

func currentUserID(c *fiber.Ctx) uint {
	id, _ := c.Locals("user_id").(uint)
	return id
}

func respond(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(fiber.Map{
		"message": message,
		"data":    data,
	})
}

func respondCreated(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": message,
		"data":    data,
	})
}

// ===== Auth & User =====

type RegisterRequest struct {
	Username    string `json:"username" validate:"required,min=3,max=50"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	NamaLengkap string `json:"nama_lengkap" validate:"max=150"`
}

// LoginRequest menerima username atau email pada field username.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileRequest struct {
	Email       string `json:"email" validate:"omitempty,email"`
	NamaLengkap string `json:"nama_lengkap" validate:"max=150"`
}

type ChangePasswordRequest struct {
	PasswordLama string `json:"password_lama" validate:"required"`
	PasswordBaru string `json:"password_baru" validate:"required,min=6"`
}

type UserRequest struct {
	Username    string `json:"username" validate:"required,min=3,max=50"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"omitempty,min=6"`
	NamaLengkap string `json:"nama_lengkap" validate:"max=150"`
	Role        string `json:"role" validate:"required,oneof=admin user"`
}

// ===== Kegiatan =====

type SubkegiatanRequest struct {
	NamaSubKegiatan string     `json:"nama_sub_kegiatan" validate:"required,max=200"`
	Deskripsi       string     `json:"deskripsi"`
	Periode         string     `json:"periode" validate:"omitempty,periode"`
	TanggalMulai    model.Date `json:"tanggal_mulai"`
	TanggalSelesai  model.Date `json:"tanggal_selesai"`
	OpenReq         model.Date `json:"open_req"`
	CloseReq        model.Date `json:"close_req"`
}

func (r SubkegiatanRequest) toModel(idKegiatan uint) model.Subkegiatan {
	return model.Subkegiatan{
		IDKegiatan:      idKegiatan,
		NamaSubKegiatan: strings.TrimSpace(r.NamaSubKegiatan),
		Deskripsi:       r.Deskripsi,
		Periode:         r.Periode,
		TanggalMulai:    r.TanggalMulai,
		TanggalSelesai:  r.TanggalSelesai,
		OpenReq:         r.OpenReq,
		CloseReq:        r.CloseReq,
	}
}

type CreateSubkegiatanRequest struct {
	IDKegiatan uint `json:"id_kegiatan" validate:"required"`
	SubkegiatanRequest
}

type StatusSubkegiatanRequest struct {
	Status string `json:"status" validate:"required,oneof=pending done"`
}

type KegiatanRequest struct {
	NamaKegiatan   string               `json:"nama_kegiatan" validate:"required,max=200"`
	Deskripsi      string               `json:"deskripsi"`
	TahunAnggaran  string               `json:"tahun_anggaran" validate:"omitempty,len=4,numeric"`
	TanggalMulai   model.Date           `json:"tanggal_mulai"`
	TanggalSelesai model.Date           `json:"tanggal_selesai"`
	Subkegiatan    []SubkegiatanRequest `json:"subkegiatan" validate:"dive"`
}

// ===== Mitra & Pengajuan =====

type DataDiriRequest struct {
	NIK              string     `json:"nik" validate:"required,numeric,max=16"`
	SobatID          *string    `json:"sobat_id" validate:"omitempty,max=50"`
	NamaLengkap      string     `json:"nama_lengkap" validate:"required,max=150"`
	Alamat           string     `json:"alamat"`
	JenisKelamin     string     `json:"jenis_kelamin" validate:"omitempty,oneof=L P"`
	TanggalLahir     model.Date `json:"tanggal_lahir"`
	Pendidikan       string     `json:"pendidikan" validate:"max=50"`
	Pekerjaan        string     `json:"pekerjaan" validate:"max=100"`
	NoHP             string     `json:"no_hp" validate:"max=20"`
	Email            string     `json:"email" validate:"omitempty,email"`
	NamaBank         string     `json:"nama_bank" validate:"max=50"`
	NoRekening       string     `json:"no_rekening" validate:"max=50"`
	AtasNamaRekening string     `json:"atas_nama_rekening" validate:"max=150"`
}

type MitraRequest struct {
	DataDiriRequest
	BatasHonorBulanan int64 `json:"batas_honor_bulanan" validate:"gte=0,lte=1000000000000000"`
}

func (r MitraRequest) toModel() model.Mitra {
	d := r.DataDiriRequest
	return model.Mitra{
		NIK:               strings.TrimSpace(d.NIK),
		SobatID:           trimOptional(d.SobatID),
		NamaLengkap:       strings.TrimSpace(d.NamaLengkap),
		Alamat:            d.Alamat,
		JenisKelamin:      d.JenisKelamin,
		TanggalLahir:      d.TanggalLahir,
		Pendidikan:        d.Pendidikan,
		Pekerjaan:         d.Pekerjaan,
		NoHP:              d.NoHP,
		Email:             d.Email,
		NamaBank:          d.NamaBank,
		NoRekening:        d.NoRekening,
		AtasNamaRekening:  d.AtasNamaRekening,
		BatasHonorBulanan: r.BatasHonorBulanan,
	}
}

type PengajuanRequest struct {
	DataDiriRequest
}

func (r PengajuanRequest) toModel(userID uint) model.PengajuanMitra {
	d := r.DataDiriRequest
	return model.PengajuanMitra{
		IDUser:           userID,
		NIK:              strings.TrimSpace(d.NIK),
		SobatID:          trimOptional(d.SobatID),
		NamaLengkap:      strings.TrimSpace(d.NamaLengkap),
		Alamat:           d.Alamat,
		JenisKelamin:     d.JenisKelamin,
		TanggalLahir:     d.TanggalLahir,
		Pendidikan:       d.Pendidikan,
		Pekerjaan:        d.Pekerjaan,
		NoHP:             d.NoHP,
		Email:            d.Email,
		NamaBank:         d.NamaBank,
		NoRekening:       d.NoRekening,
		AtasNamaRekening: d.AtasNamaRekening,
	}
}

type ApprovePengajuanRequest struct {
	BatasHonorBulanan int64 `json:"batas_honor_bulanan" validate:"gte=0,lte=1000000000000000"`
}

type RejectPengajuanRequest struct {
	Catatan string `json:"catatan"`
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// ===== Penugasan & Perencanaan =====

type TimRequest struct {
	IDSubkegiatan  string `json:"id_subkegiatan" validate:"required"`
	IDPengawas     uint   `json:"id_pengawas" validate:"required"`
	JumlahMaxMitra int    `json:"jumlah_max_mitra" validate:"required,min=1"`
}

type UpdateTimRequest struct {
	IDPengawas     uint `json:"id_pengawas" validate:"required"`
	JumlahMaxMitra int  `json:"jumlah_max_mitra" validate:"required,min=1"`
}

type KelompokPenugasanRequest struct {
	IDPenugasan uint   `json:"id_penugasan" validate:"required"`
	IDMitra     uint   `json:"id_mitra" validate:"required"`
	KodeJabatan string `json:"kode_jabatan" validate:"max=50"`
}

type KelompokPerencanaanRequest struct {
	IDPerencanaan uint   `json:"id_perencanaan" validate:"required"`
	IDMitra       uint   `json:"id_mitra" validate:"required"`
	KodeJabatan   string `json:"kode_jabatan" validate:"max=50"`
	VolumeTugas   int    `json:"volume_tugas" validate:"required,min=1,max=100000"`
}

type UpdateKelompokPerencanaanRequest struct {
	KodeJabatan string `json:"kode_jabatan" validate:"max=50"`
	VolumeTugas int    `json:"volume_tugas" validate:"required,min=1,max=100000"`
}

// ===== Master data =====

type HonorariumRequest struct {
	IDSubkegiatan string `json:"id_subkegiatan" validate:"required"`
	KodeJabatan   string `json:"kode_jabatan" validate:"max=50"`
	Tarif         int64  `json:"tarif" validate:"gte=0,lte=1000000000000"`
	IDSatuan      uint   `json:"id_satuan" validate:"required"`
	BasisVolume   int    `json:"basis_volume" validate:"omitempty,min=1,max=100000"`
}

type JabatanMitraRequest struct {
	KodeJabatan   string  `json:"kode_jabatan" validate:"required,max=50"`
	NamaJabatan   string  `json:"nama_jabatan" validate:"required,max=100"`
	IDSubkegiatan *string `json:"id_subkegiatan"`
}

type SatuanRequest struct {
	NamaSatuan string `json:"nama_satuan" validate:"required,max=50"`
	Alias      string `json:"alias" validate:"max=20"`
}

type AturanPeriodeRequest struct {
	Periode    string `json:"periode" validate:"required,periode_aturan"`
	BatasHonor int64  `json:"batas_honor" validate:"gte=0,lte=1000000000000000"`
	Keterangan string `json:"keterangan" validate:"max=255"`
}

// ===== Laporan =====

type LaporanItemRequest struct {
	Label     string `json:"label" validate:"required,max=200"`
	TipeInput string `json:"tipe_input" validate:"omitempty,oneof=text textarea number date select checkbox file"`
	Opsi      string `json:"opsi"`
	Wajib     bool   `json:"wajib"`
	Urutan    int    `json:"urutan"`
}

type LaporanFormRequest struct {
	IDKegiatan    uint                 `json:"id_kegiatan" validate:"required"`
	IDSubkegiatan string               `json:"id_subkegiatan" validate:"required"`
	NamaForm      string               `json:"nama_form" validate:"required,max=200"`
	Deskripsi     string               `json:"deskripsi"`
	Items         []LaporanItemRequest `json:"items" validate:"dive"`
}

func (r LaporanFormRequest) toModel() model.LaporanForm {
	form := model.LaporanForm{
		IDKegiatan:    r.IDKegiatan,
		IDSubkegiatan: r.IDSubkegiatan,
		NamaForm:      r.NamaForm,
		Deskripsi:     r.Deskripsi,
		Items:         make([]model.LaporanFormItem, 0, len(r.Items)),
	}
	for i, it := range r.Items {
		tipe := it.TipeInput
		if tipe == "" {
			tipe = "text"
		}
		urutan := it.Urutan
		if urutan == 0 {
			urutan = i + 1
		}
		form.Items = append(form.Items, model.LaporanFormItem{
			Label: it.Label, TipeInput: tipe, Opsi: it.Opsi, Wajib: it.Wajib, Urutan: urutan,
		})
	}
	return form
}

// ===== SPK =====

type SpkSettingRequest struct {
	NamaPpk          string     `json:"nama_ppk" validate:"max=150"`
	NipPpk           string     `json:"nip_ppk" validate:"max=30"`
	JabatanPpk       string     `json:"jabatan_ppk" validate:"max=150"`
	TanggalSurat     model.Date `json:"tanggal_surat"`
	NomorSuratFormat string     `json:"nomor_surat_format" validate:"max=150"`
	KomponenHonor    string     `json:"komponen_honor"`
	IDTemplate       *uint      `json:"id_template"`
}

func (r SpkSettingRequest) toModel(periode string) model.SpkSetting {
	return model.SpkSetting{
		Periode:          periode,
		NamaPpk:          r.NamaPpk,
		NipPpk:           r.NipPpk,
		JabatanPpk:       r.JabatanPpk,
		TanggalSurat:     r.TanggalSurat,
		NomorSuratFormat: strings.TrimSpace(r.NomorSuratFormat),
		KomponenHonor:    r.KomponenHonor,
		IDTemplate:       r.IDTemplate,
	}
}

type PasalRequest struct {
	NomorPasal int    `json:"nomor_pasal" validate:"required,min=1"`
	Judul      string `json:"judul" validate:"max=200"`
	Isi        string `json:"isi"`
}

type SpkTemplateRequest struct {
	NamaTemplate string         `json:"nama_template" validate:"required,max=150"`
	Pembuka      string         `json:"pembuka"`
	Penutup      string         `json:"penutup"`
	Pasal        []PasalRequest `json:"pasal" validate:"dive"`
}

func (r SpkTemplateRequest) toModel() model.MasterTemplateSpk {
	t := model.MasterTemplateSpk{
		NamaTemplate: r.NamaTemplate,
		Pembuka:      r.Pembuka,
		Penutup:      r.Penutup,
		Pasal:        make([]model.MasterTemplateSpkPasal, 0, len(r.Pasal)),
	}
	for _, p := range r.Pasal {
		t.Pasal = append(t.Pasal, model.MasterTemplateSpkPasal{NomorPasal: p.NomorPasal, Judul: p.Judul, Isi: p.Isi})
	}
	return t
}
