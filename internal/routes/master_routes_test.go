package routes

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"simitra-backend/internal/model"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type masterFixture struct {
	env   *testEnv
	token string
	sub   *model.Subkegiatan
	satID uint
}

func newMasterFixture(t *testing.T) *masterFixture {
	env := newTestEnv(t)
	env.createUser(t, "admin", model.RoleAdmin)
	keg := &model.Kegiatan{NamaKegiatan: "Susenas", TahunAnggaran: "2025"}
	require.NoError(t, env.db.Create(keg).Error)
	sub := &model.Subkegiatan{
		IDKegiatan: keg.ID, NamaSubKegiatan: "Pencacahan", Periode: "2025-03",
		TanggalMulai: model.NewDate(2025, 3, 3), TanggalSelesai: model.NewDate(2025, 3, 28),
	}
	require.NoError(t, env.db.Create(sub).Error)
	sat := &model.SatuanKegiatan{NamaSatuan: "Dokumen", Alias: "dok"}
	require.NoError(t, env.db.Create(sat).Error)
	return &masterFixture{env: env, token: env.login(t, "admin"), sub: sub, satID: sat.ID}
}

func TestHonorariumCRUD(t *testing.T) {
	f := newMasterFixture(t)
	env, token := f.env, f.token

	status, body := env.do(t, http.MethodPost, "/api/honorarium", token, fiber.Map{
		"id_subkegiatan": f.sub.ID, "kode_jabatan": "PCL", "tarif": 50000, "id_satuan": f.satID,
	})
	require.Equal(t, http.StatusCreated, status, body)
	created := body["data"].(map[string]interface{})
	assert.EqualValues(t, 1, created["basis_volume"])
	id := created["id"]

	status, body = env.do(t, http.MethodPost, "/api/honorarium", token, fiber.Map{
		"id_subkegiatan": f.sub.ID, "kode_jabatan": "PCL", "tarif": 60000, "id_satuan": f.satID,
	})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "conflict", body["kind"])

	status, body = env.do(t, http.MethodPost, "/api/honorarium", token, fiber.Map{
		"id_subkegiatan": f.sub.ID, "kode_jabatan": "PML", "tarif": 80000, "id_satuan": f.satID,
	})
	require.Equal(t, http.StatusCreated, status, body)
	pmlID := body["data"].(map[string]interface{})["id"]

	// mengubah baris PML menjadi PCL bentrok dengan baris yang sudah ada
	status, body = env.do(t, http.MethodPut, fmt.Sprintf("/api/honorarium/%v", pmlID), token, fiber.Map{
		"id_subkegiatan": f.sub.ID, "kode_jabatan": "PCL", "tarif": 80000, "id_satuan": f.satID,
	})
	assert.Equal(t, http.StatusConflict, status, body)

	status, body = env.do(t, http.MethodPost, "/api/honorarium", token, fiber.Map{
		"id_subkegiatan": "sub999", "tarif": 1000, "id_satuan": f.satID,
	})
	assert.Equal(t, http.StatusNotFound, status, body)

	status, body = env.do(t, http.MethodPut, fmt.Sprintf("/api/honorarium/%v", id), token, fiber.Map{
		"id_subkegiatan": f.sub.ID, "kode_jabatan": "PCL", "tarif": 55000, "id_satuan": f.satID, "basis_volume": 2,
	})
	require.Equal(t, http.StatusOK, status, body)
	assert.EqualValues(t, 55000, body["data"].(map[string]interface{})["tarif"])

	status, body = env.do(t, http.MethodGet, "/api/honorarium", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["data"], 2)

	status, _ = env.do(t, http.MethodDelete, fmt.Sprintf("/api/honorarium/%v", id), token, nil)
	assert.Equal(t, http.StatusOK, status)
	status, body = env.do(t, http.MethodGet, fmt.Sprintf("/api/honorarium/%v", id), token, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "not_found", body["kind"])
}

func TestJabatanCRUDKeepsKode(t *testing.T) {
	f := newMasterFixture(t)
	env, token := f.env, f.token

	status, body := env.do(t, http.MethodPost, "/api/jabatan-mitra", token, fiber.Map{
		"kode_jabatan": "PCL", "nama_jabatan": "Petugas Cacah Lapangan",
	})
	require.Equal(t, http.StatusCreated, status, body)

	status, body = env.do(t, http.MethodPost, "/api/jabatan-mitra", token, fiber.Map{
		"kode_jabatan": "PCL", "nama_jabatan": "Lain",
	})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "conflict", body["kind"])

	status, body = env.do(t, http.MethodPut, "/api/jabatan-mitra/PCL", token, fiber.Map{
		"kode_jabatan": "XYZ", "nama_jabatan": "Pencacah",
	})
	require.Equal(t, http.StatusOK, status, body)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "PCL", data["kode_jabatan"])
	assert.Equal(t, "Pencacah", data["nama_jabatan"])

	status, _ = env.do(t, http.MethodDelete, "/api/jabatan-mitra/PCL", token, nil)
	assert.Equal(t, http.StatusOK, status)
	status, _ = env.do(t, http.MethodGet, "/api/jabatan-mitra/PCL", token, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestSatuanAndAturanRoutes(t *testing.T) {
	f := newMasterFixture(t)
	env, token := f.env, f.token

	status, body := env.do(t, http.MethodPost, "/api/satuan", token, fiber.Map{"nama_satuan": "Rumah Tangga", "alias": "ruta"})
	require.Equal(t, http.StatusCreated, status, body)
	status, body = env.do(t, http.MethodGet, "/api/satuan", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["data"], 2)

	status, body = env.do(t, http.MethodPost, "/api/aturan-periode", token, fiber.Map{"periode": "2025", "batas_honor": 36000000})
	require.Equal(t, http.StatusCreated, status, body)
	status, body = env.do(t, http.MethodPost, "/api/aturan-periode", token, fiber.Map{"periode": "2025", "batas_honor": 1})
	assert.Equal(t, http.StatusConflict, status, body)
	status, body = env.do(t, http.MethodPost, "/api/aturan-periode", token, fiber.Map{"periode": "25", "batas_honor": 1})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "periode_aturan", body["details"].(map[string]interface{})["periode"])
}

func TestSpkPrintHTML(t *testing.T) {
	f := newMasterFixture(t)
	env, token := f.env, f.token
	pengawas := env.createUser(t, "pml", model.RoleUser)

	mitra := &model.Mitra{NIK: "3301000000000001", NamaLengkap: "Ani & Budi"}
	require.NoError(t, env.db.Create(mitra).Error)
	require.NoError(t, env.db.Create(&model.Honorarium{IDSubkegiatan: f.sub.ID, Tarif: 50000, IDSatuan: f.satID, BasisVolume: 1}).Error)
	p := &model.Penugasan{IDSubkegiatan: f.sub.ID, IDPengawas: pengawas.ID, JumlahMaxMitra: 5}
	require.NoError(t, env.db.Create(p).Error)
	require.NoError(t, env.db.Create(&model.KelompokPenugasan{IDPenugasan: p.ID, IDMitra: mitra.ID}).Error)

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/spk/print/2025-03/%d/html", mitra.ID), nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	page := string(raw)

	require.Equal(t, http.StatusOK, resp.StatusCode, page)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/html")
	assert.Contains(t, page, "lima puluh ribu rupiah")
	assert.Contains(t, page, "Ani &amp; Budi")
	assert.NotContains(t, page, "Ani & Budi")
	assert.Contains(t, page, "Pencacahan")
}
