package usecase

import (
	"context"
	"errors"
	"strings"

	"simitra-backend/internal/apperror"
	"simitra-backend/internal/importer"
	"simitra-backend/internal/model"
	"simitra-backend/internal/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// errSkip menandai baris duplikat yang dilewati tanpa dianggap gagal.
var errSkip = errors.New("baris dilewati")

// ImportUsecase memproses baris spreadsheet satu per satu. Setiap baris punya
// transaksi sendiri sehingga satu baris gagal tidak membatalkan baris lain.
type ImportUsecase struct {
	db *gorm.DB
}

func NewImportUsecase(db *gorm.DB) *ImportUsecase {
	return &ImportUsecase{db: db}
}

func (u *ImportUsecase) run(ctx context.Context, entity string, rows []importer.Row, fn func(tx *gorm.DB, row importer.Row) error) *importer.Summary {
	summary := importer.NewSummary(len(rows))
	for _, row := range rows {
		if ctx.Err() != nil {
			summary.Fail(row.Number, "import dibatalkan")
			continue
		}
		err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return fn(tx, row)
		})
		switch {
		case err == nil:
			summary.Success()
		case errors.Is(err, errSkip):
			summary.Skip()
		default:
			summary.Fail(row.Number, "%s", rowMessage(entity, row.Number, err))
		}
	}
	zap.L().Info("import selesai",
		zap.String("entity", entity),
		zap.Int("total", summary.TotalRows),
		zap.Int("success", summary.SuccessCount),
		zap.Int("fail", summary.FailCount),
		zap.Int("skip", summary.SkipCount),
	)
	return summary
}

func rowMessage(entity string, rowNumber int, err error) string {
	appErr := apperror.From(err)
	if appErr.Kind == apperror.KindInternal {
		zap.L().Warn("import baris gagal", zap.String("entity", entity), zap.Int("baris", rowNumber), zap.Error(err))
		return "gagal menyimpan data"
	}
	return appErr.Message
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (u *ImportUsecase) Mitra(ctx context.Context, rows []importer.Row) *importer.Summary {
	return u.run(ctx, "mitra", rows, func(tx *gorm.DB, row importer.Row) error {
		nik := importer.DigitText(row.Get("nik"))
		nama := row.First("nama_lengkap", "nama")
		if nik == "" || nama == "" {
			return apperror.Validation("NIK dan nama lengkap wajib diisi")
		}
		sobatID := optionalString(importer.DigitText(row.First("sobat_id", "id_sobat")))

		repo := repository.NewMitraRepository(tx)
		exists, err := repo.ExistsNIKOrSobatID(nik, sobatID, 0)
		if err != nil {
			return err
		}
		if exists {
			return errSkip
		}

		tglLahir, err := importer.ParseDate(row.Get("tanggal_lahir"))
		if err != nil {
			return apperror.Validation("%s", err.Error())
		}
		batas, err := importer.ParseAmount(row.Get("batas_honor_bulanan"))
		if err != nil {
			return apperror.Validation("%s", err.Error())
		}
		return repo.Create(&model.Mitra{
			NIK:               nik,
			SobatID:           sobatID,
			NamaLengkap:       nama,
			Alamat:            row.Get("alamat"),
			JenisKelamin:      strings.ToUpper(firstRune(row.First("jenis_kelamin", "jk"))),
			TanggalLahir:      tglLahir,
			Pendidikan:        row.Get("pendidikan"),
			Pekerjaan:         row.Get("pekerjaan"),
			NoHP:              importer.DigitText(row.First("no_hp", "nomor_hp", "telepon")),
			Email:             strings.ToLower(row.Get("email")),
			NamaBank:          row.Get("nama_bank"),
			NoRekening:        importer.DigitText(row.First("no_rekening", "nomor_rekening")),
			AtasNamaRekening:  row.Get("atas_nama_rekening"),
			BatasHonorBulanan: batas,
		})
	})
}

func firstRune(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}

func (u *ImportUsecase) Subkegiatan(ctx context.Context, rows []importer.Row) *importer.Summary {
	return u.run(ctx, "subkegiatan", rows, func(tx *gorm.DB, row importer.Row) error {
		idKegiatan, err := importer.ParseAmount(row.Get("id_kegiatan"))
		nama := row.First("nama_sub_kegiatan", "nama_subkegiatan")
		if err != nil || idKegiatan <= 0 || nama == "" {
			return apperror.Validation("id_kegiatan dan nama_sub_kegiatan wajib diisi")
		}

		if _, err := repository.NewKegiatanRepository(tx).FindByID(uint(idKegiatan)); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("Kegiatan %d tidak ditemukan", idKegiatan)
			}
			return err
		}

		sub := model.Subkegiatan{
			IDKegiatan:      uint(idKegiatan),
			NamaSubKegiatan: nama,
			Deskripsi:       row.Get("deskripsi"),
			Periode:         row.Get("periode"),
			Status:          model.SubStatusPending,
		}
		dates := []struct {
			col string
			dst *model.Date
		}{
			{"tanggal_mulai", &sub.TanggalMulai},
			{"tanggal_selesai", &sub.TanggalSelesai},
			{"open_req", &sub.OpenReq},
			{"close_req", &sub.CloseReq},
		}
		for _, d := range dates {
			parsed, err := importer.ParseDate(row.Get(d.col))
			if err != nil {
				return apperror.Validation("%s: %s", d.col, err.Error())
			}
			*d.dst = parsed
		}
		if err := validateSubkegiatanDates(&sub); err != nil {
			return err
		}
		if sub.Periode != "" {
			if _, err := ParsePeriode(sub.Periode); err != nil {
				return err
			}
		}

		repo := repository.NewSubkegiatanRepository(tx)
		exists, err := repo.ExistsByName(sub.IDKegiatan, sub.NamaSubKegiatan, sub.Periode)
		if err != nil {
			return err
		}
		if exists {
			return errSkip
		}
		return repo.Create(&sub)
	})
}

// assignmentRefs adalah hasil lookup kolom referensi baris penugasan/perencanaan.
type assignmentRefs struct {
	sub      *model.Subkegiatan
	mitra    *model.Mitra
	pengawas *model.User
	maxMitra int
}

func lookupAssignmentRefs(tx *gorm.DB, row importer.Row) (*assignmentRefs, error) {
	idSub := row.Get("id_subkegiatan")
	nik := importer.DigitText(row.Get("nik"))
	pengawas := row.First("pengawas", "username_pengawas")
	if idSub == "" || nik == "" || pengawas == "" {
		return nil, apperror.Validation("id_subkegiatan, nik dan pengawas wajib diisi")
	}

	refs := &assignmentRefs{maxMitra: model.DefaultJumlahMaxMitra}
	var err error
	if refs.sub, err = repository.NewSubkegiatanRepository(tx).FindByID(idSub); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Subkegiatan %s tidak ditemukan", idSub)
		}
		return nil, err
	}
	if refs.mitra, err = repository.NewMitraRepository(tx).FindByNIK(nik); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Mitra dengan NIK %s tidak ditemukan", nik)
		}
		return nil, err
	}
	if refs.pengawas, err = repository.NewUserRepository(tx).FindByUsername(pengawas); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Pengawas %s tidak ditemukan", pengawas)
		}
		return nil, err
	}
	if v := row.Get("jumlah_max_mitra"); v != "" {
		n, err := importer.ParseAmount(v)
		if err != nil || n < 1 {
			return nil, apperror.Validation("jumlah_max_mitra tidak valid")
		}
		refs.maxMitra = int(n)
	}
	return refs, nil
}

func (u *ImportUsecase) Penugasan(ctx context.Context, rows []importer.Row) *importer.Summary {
	return u.run(ctx, "penugasan", rows, func(tx *gorm.DB, row importer.Row) error {
		refs, err := lookupAssignmentRefs(tx, row)
		if err != nil {
			return err
		}

		repo := repository.NewPenugasanRepository(tx)
		p, err := repo.FindBySubkegiatanPengawas(refs.sub.ID, refs.pengawas.ID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			p = &model.Penugasan{IDSubkegiatan: refs.sub.ID, IDPengawas: refs.pengawas.ID, JumlahMaxMitra: refs.maxMitra}
			err = repo.Create(p)
		}
		if err != nil {
			return err
		}

		_, err = addPenugasanAnggota(tx, AddAnggotaInput{
			IDPenugasan: p.ID,
			IDMitra:     refs.mitra.ID,
			KodeJabatan: row.Get("kode_jabatan"),
		})
		if apperror.Is(err, apperror.KindConflict) {
			return errSkip
		}
		return err
	})
}

func (u *ImportUsecase) Perencanaan(ctx context.Context, rows []importer.Row) *importer.Summary {
	return u.run(ctx, "perencanaan", rows, func(tx *gorm.DB, row importer.Row) error {
		refs, err := lookupAssignmentRefs(tx, row)
		if err != nil {
			return err
		}
		volume, err := importer.ParseAmount(row.Get("volume_tugas"))
		if err != nil || volume <= 0 {
			return apperror.Validation("volume_tugas wajib diisi dengan angka lebih dari 0")
		}
		if volume > model.MaxVolumeTugas {
			return apperror.Validation("volume_tugas maksimal %d", model.MaxVolumeTugas)
		}

		repo := repository.NewPerencanaanRepository(tx)
		p, err := repo.FindBySubkegiatanPengawas(refs.sub.ID, refs.pengawas.ID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			p = &model.Perencanaan{IDSubkegiatan: refs.sub.ID, IDPengawas: refs.pengawas.ID, JumlahMaxMitra: refs.maxMitra}
			err = repo.Create(p)
		}
		if err != nil {
			return err
		}

		_, err = addPerencanaanAnggota(tx, PerencanaanAnggotaInput{
			IDPerencanaan: p.ID,
			IDMitra:       refs.mitra.ID,
			KodeJabatan:   row.Get("kode_jabatan"),
			VolumeTugas:   int(volume),
		})
		if apperror.Is(err, apperror.KindConflict) {
			return errSkip
		}
		return err
	})
}

func (u *ImportUsecase) Users(ctx context.Context, rows []importer.Row) *importer.Summary {
	return u.run(ctx, "users", rows, func(tx *gorm.DB, row importer.Row) error {
		username := row.Get("username")
		email := strings.ToLower(row.Get("email"))
		password := row.Get("password")
		if username == "" || email == "" || password == "" {
			return apperror.Validation("username, email dan password wajib diisi")
		}
		if len(password) < 6 {
			return apperror.Validation("password minimal 6 karakter")
		}

		repo := repository.NewUserRepository(tx)
		exists, err := repo.ExistsUsernameOrEmail(username, email, 0)
		if err != nil {
			return err
		}
		if exists {
			return errSkip
		}

		role := strings.ToLower(row.Get("role"))
		if role != model.RoleAdmin {
			role = model.RoleUser
		}
		hashed, err := HashPassword(password)
		if err != nil {
			return err
		}
		return repo.Create(&model.User{
			Username:    username,
			Email:       email,
			Password:    hashed,
			NamaLengkap: row.First("nama_lengkap", "nama"),
			Role:        role,
		})
	})
}
