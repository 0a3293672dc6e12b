package handler

import (
	"testing"

	"simitra-backend/internal/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodeValidators(t *testing.T) {
	type bulanan struct {
		Periode string `json:"periode" validate:"required,periode"`
	}
	for _, ok := range []string{"2025-01", "2025-12"} {
		assert.NoError(t, validateStruct(bulanan{Periode: ok}), ok)
	}
	for _, bad := range []string{"2025", "2025-13", "2025-00", "25-01", "maret"} {
		assert.Error(t, validateStruct(bulanan{Periode: bad}), bad)
	}

	assert.NoError(t, validateStruct(AturanPeriodeRequest{Periode: "2025", BatasHonor: 1}))
	assert.NoError(t, validateStruct(AturanPeriodeRequest{Periode: "2025-03", BatasHonor: 1}))
	assert.Error(t, validateStruct(AturanPeriodeRequest{Periode: "20250", BatasHonor: 1}))
}

func TestValidationDetailsUseJSONNames(t *testing.T) {
	err := validateStruct(LaporanFormRequest{
		IDSubkegiatan: "sub1",
		NamaForm:      "Form",
		Items:         []LaporanItemRequest{{Label: "Jumlah"}, {TipeInput: "video"}},
	})
	require.Error(t, err)
	appErr := apperror.From(err)
	assert.Equal(t, apperror.KindValidation, appErr.Kind)
	assert.Equal(t, "required", appErr.Details["id_kegiatan"])
	assert.Equal(t, "required", appErr.Details["items[1].label"])
	assert.Contains(t, appErr.Details["items[1].tipe_input"], "oneof=")
}

func TestLaporanFormToModelDefaults(t *testing.T) {
	form := LaporanFormRequest{
		IDKegiatan:    1,
		IDSubkegiatan: "ALL_SUB",
		NamaForm:      "Laporan Harian",
		Items: []LaporanItemRequest{
			{Label: "Catatan"},
			{Label: "Jumlah", TipeInput: "number", Urutan: 5},
		},
	}.toModel()

	require.Len(t, form.Items, 2)
	assert.Equal(t, "text", form.Items[0].TipeInput)
	assert.Equal(t, 1, form.Items[0].Urutan)
	assert.Equal(t, "number", form.Items[1].TipeInput)
	assert.Equal(t, 5, form.Items[1].Urutan)
}

func TestHonorInputsAreBounded(t *testing.T) {
	ok := HonorariumRequest{IDSubkegiatan: "sub1", Tarif: 1_000_000_000_000, IDSatuan: 1, BasisVolume: 100000}
	assert.NoError(t, validateStruct(ok))

	tooBig := ok
	tooBig.Tarif = 1 << 62
	err := validateStruct(tooBig)
	require.Error(t, err)
	assert.Equal(t, "lte=1000000000000", apperror.From(err).Details["tarif"])

	err = validateStruct(KelompokPerencanaanRequest{IDPerencanaan: 1, IDMitra: 1, VolumeTugas: 100001})
	require.Error(t, err)
	assert.Equal(t, "max=100000", apperror.From(err).Details["volume_tugas"])
}
