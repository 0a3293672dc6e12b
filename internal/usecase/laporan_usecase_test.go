package usecase

import (
	"context"
	"testing"

	"simitra-backend/internal/apperror"
	"simitra-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLaporanResolvePrefersSpecificForm(t *testing.T) {
	db := newTestDB(t)
	uc := NewLaporanUsecase(db)
	ctx := context.Background()
	k := seedKegiatan(t, db, "Susenas")
	sub1 := seedSub(t, db, k, "Pencacahan", "2025-03", model.Date{})
	sub2 := seedSub(t, db, k, "Pemeriksaan", "2025-03", model.Date{})

	_, err := uc.Resolve(ctx, sub1.ID)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))

	umum := &model.LaporanForm{IDKegiatan: k.ID, IDSubkegiatan: model.AllSub, NamaForm: "Umum",
		Items: []model.LaporanFormItem{{Label: "Catatan", TipeInput: "text", Urutan: 1}}}
	require.NoError(t, uc.Create(ctx, umum))
	khusus := &model.LaporanForm{IDKegiatan: k.ID, IDSubkegiatan: sub2.ID, NamaForm: "Khusus"}
	require.NoError(t, uc.Create(ctx, khusus))

	form, err := uc.Resolve(ctx, sub1.ID)
	require.NoError(t, err)
	assert.Equal(t, "Umum", form.NamaForm)
	require.Len(t, form.Items, 1)

	form, err = uc.Resolve(ctx, sub2.ID)
	require.NoError(t, err)
	assert.Equal(t, "Khusus", form.NamaForm)

	_, err = uc.Resolve(ctx, "sub404")
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
}

func TestLaporanCreateChecksOwnership(t *testing.T) {
	db := newTestDB(t)
	uc := NewLaporanUsecase(db)
	ctx := context.Background()
	k1 := seedKegiatan(t, db, "A")
	k2 := seedKegiatan(t, db, "B")
	sub := seedSub(t, db, k2, "Milik B", "2025-01", model.Date{})

	err := uc.Create(ctx, &model.LaporanForm{IDKegiatan: k1.ID, IDSubkegiatan: sub.ID, NamaForm: "Salah"})
	assert.True(t, apperror.Is(err, apperror.KindValidation))

	err = uc.Create(ctx, &model.LaporanForm{IDKegiatan: 99, IDSubkegiatan: model.AllSub, NamaForm: "X"})
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
}

func TestLaporanUpdateReplacesItems(t *testing.T) {
	db := newTestDB(t)
	uc := NewLaporanUsecase(db)
	ctx := context.Background()
	k := seedKegiatan(t, db, "A")
	form := &model.LaporanForm{IDKegiatan: k.ID, IDSubkegiatan: model.AllSub, NamaForm: "Awal",
		Items: []model.LaporanFormItem{{Label: "a"}, {Label: "b"}}}
	require.NoError(t, uc.Create(ctx, form))

	require.NoError(t, uc.Update(ctx, form.ID, &model.LaporanForm{IDKegiatan: k.ID, IDSubkegiatan: model.AllSub,
		NamaForm: "Baru", Items: []model.LaporanFormItem{{Label: "c", Urutan: 1}}}))

	var items int64
	db.Model(&model.LaporanFormItem{}).Count(&items)
	assert.Equal(t, int64(1), items)

	require.NoError(t, uc.Delete(ctx, form.ID))
	db.Model(&model.LaporanFormItem{}).Count(&items)
	assert.Zero(t, items)
}
