package usecase

import (
	"context"
	"testing"
	"time"

	"simitra-backend/internal/apperror"
	"simitra-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestKegiatanCreateWithSubkegiatan(t *testing.T) {
	db := newTestDB(t)
	uc := NewKegiatanUsecase(db)

	k, err := uc.Create(context.Background(), &model.Kegiatan{NamaKegiatan: "Sensus Pertanian"}, []model.Subkegiatan{
		{NamaSubKegiatan: "Pencacahan", TanggalMulai: date(2025, time.March, 1)},
		{NamaSubKegiatan: "Pengolahan", Periode: "2025-04"},
	})
	require.NoError(t, err)
	require.Len(t, k.Subkegiatan, 2)
	assert.Equal(t, "sub1", k.Subkegiatan[0].ID)
	assert.Equal(t, "sub2", k.Subkegiatan[1].ID)
	assert.Equal(t, "2025-03", k.Subkegiatan[0].Periode)
	assert.Equal(t, model.SubStatusPending, k.Subkegiatan[1].Status)
}

func TestKegiatanCreateRollsBackOnInvalidSub(t *testing.T) {
	db := newTestDB(t)
	uc := NewKegiatanUsecase(db)

	_, err := uc.Create(context.Background(), &model.Kegiatan{NamaKegiatan: "Survei Upah"}, []model.Subkegiatan{
		{NamaSubKegiatan: "Valid"},
		{NamaSubKegiatan: "Terbalik", TanggalMulai: date(2025, 5, 10), TanggalSelesai: date(2025, 5, 1)},
	})
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindValidation))

	var kegiatan, subs int64
	db.Model(&model.Kegiatan{}).Count(&kegiatan)
	db.Model(&model.Subkegiatan{}).Count(&subs)
	assert.Zero(t, kegiatan)
	assert.Zero(t, subs)
}

func TestKegiatanDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	uc := NewKegiatanUsecase(db)
	k := seedKegiatan(t, db, "Susenas")
	seedSub(t, db, k, "Listing", "2025-01", model.Date{})

	require.NoError(t, uc.Delete(context.Background(), k.ID))

	var subs int64
	db.Model(&model.Subkegiatan{}).Count(&subs)
	assert.Zero(t, subs)
	assert.True(t, apperror.Is(apperror.From(uc.Delete(context.Background(), k.ID)), apperror.KindNotFound))
}

func TestSubkegiatanReadHasRecruitmentStatus(t *testing.T) {
	db := newTestDB(t)
	k := seedKegiatan(t, db, "Sakernas")
	today := model.DateOf(time.Now())
	s := &model.Subkegiatan{
		IDKegiatan: k.ID, NamaSubKegiatan: "Rekrutmen",
		OpenReq:  model.DateOf(today.AddDate(0, 0, -1)),
		CloseReq: model.DateOf(today.AddDate(0, 0, 1)),
	}
	require.NoError(t, NewKegiatanUsecase(db).CreateSubkegiatan(context.Background(), s))

	var got model.Subkegiatan
	require.NoError(t, db.First(&got, "id = ?", s.ID).Error)
	assert.Equal(t, model.RekrutmenOpen, got.StatusRekrutmen)
}

func TestUpdateSubkegiatanKeepsIdentity(t *testing.T) {
	db := newTestDB(t)
	uc := NewKegiatanUsecase(db)
	ctx := context.Background()
	k := seedKegiatan(t, db, "Sensus")
	sub := seedSub(t, db, k, "Lama", "2025-01", date(2025, time.January, 5))

	updated, err := uc.UpdateSubkegiatan(ctx, sub.ID, model.Subkegiatan{
		NamaSubKegiatan: "Baru",
		TanggalMulai:    date(2025, time.April, 1),
		TanggalSelesai:  date(2025, time.April, 30),
	})
	require.NoError(t, err)
	assert.Equal(t, sub.ID, updated.ID)
	assert.Equal(t, k.ID, updated.IDKegiatan)
	assert.Equal(t, "2025-04", updated.Periode)

	_, err = uc.UpdateSubkegiatan(ctx, sub.ID, model.Subkegiatan{
		NamaSubKegiatan: "Salah",
		TanggalMulai:    date(2025, time.April, 30),
		TanggalSelesai:  date(2025, time.April, 1),
	})
	assert.True(t, apperror.Is(err, apperror.KindValidation))

	_, err = uc.UpdateSubkegiatan(ctx, "sub404", model.Subkegiatan{NamaSubKegiatan: "X"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
