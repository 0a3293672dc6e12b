package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"simitra-backend/config"
	"simitra-backend/internal/authz"
	"simitra-backend/internal/mailer"
	"simitra-backend/internal/model"
	"simitra-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	app *fiber.App
	db  *gorm.DB
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "api.db")), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(model.All()...))

	authorizer, err := authz.NewDefaultAuthorizer()
	require.NoError(t, err)

	cfg := config.Config{
		Env:         "test",
		JWTSecret:   "rahasia-test",
		JWTTTLHours: 1,
		CORSOrigins: "*",
		Upload:      config.UploadConfig{Dir: t.TempDir(), MaxBytes: 1 << 20},
	}
	app := NewApp(&Deps{
		DB:         db,
		Config:     cfg,
		Authorizer: authorizer,
		Notifier:   mailer.New("", 0, "", ""),
	})
	return &testEnv{app: app, db: db}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, ok := body.(string)
		if !ok {
			b, err := json.Marshal(body)
			require.NoError(t, err)
			raw = string(b)
		}
		reader = bytes.NewBufferString(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	out := map[string]interface{}{}
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(data) > 0 {
		require.NoError(t, json.Unmarshal(data, &out), string(data))
	}
	return resp.StatusCode, out
}

func (e *testEnv) createUser(t *testing.T, username, role string) *model.User {
	t.Helper()
	hash, err := usecase.HashPassword("rahasia123")
	require.NoError(t, err)
	u := &model.User{Username: username, Email: username + "@bps.go.id", Password: hash, Role: role}
	require.NoError(t, e.db.Create(u).Error)
	return u
}

func (e *testEnv) login(t *testing.T, username string) string {
	t.Helper()
	status, body := e.do(t, http.MethodPost, "/api/users/login", "", fiber.Map{
		"username": username,
		"password": "rahasia123",
	})
	require.Equal(t, http.StatusOK, status, body)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)
	status, body := env.do(t, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
}

func TestProtectedRouteWithoutToken(t *testing.T) {
	env := newTestEnv(t)
	status, body := env.do(t, http.MethodGet, "/api/mitra", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "unauthorized", body["kind"])
	assert.EqualValues(t, http.StatusUnauthorized, body["code"])

	status, body = env.do(t, http.MethodGet, "/api/mitra", "bukan-token", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "unauthorized", body["kind"])
}

func TestRegisterLoginAndProfile(t *testing.T) {
	env := newTestEnv(t)

	status, body := env.do(t, http.MethodPost, "/api/users/register", "", fiber.Map{
		"username": "budi",
		"email":    "budi@bps.go.id",
		"password": "rahasia123",
	})
	require.Equal(t, http.StatusCreated, status, body)

	status, body = env.do(t, http.MethodPost, "/api/users/register", "", fiber.Map{
		"username": "budi",
		"email":    "lain@bps.go.id",
		"password": "rahasia123",
	})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "conflict", body["kind"])

	token := env.login(t, "budi@bps.go.id")
	status, body = env.do(t, http.MethodGet, "/api/users/me", token, nil)
	require.Equal(t, http.StatusOK, status)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "budi", data["username"])
	assert.Equal(t, model.RoleUser, data["role"])
	assert.NotContains(t, data, "password")

	status, body = env.do(t, http.MethodPost, "/api/users/login", "", fiber.Map{
		"username": "budi",
		"password": "salah",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "unauthorized", body["kind"])
}

func TestUserRoleForbiddenOnAdminResources(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "petugas", model.RoleUser)
	token := env.login(t, "petugas")

	status, body := env.do(t, http.MethodGet, "/api/mitra", token, nil)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "forbidden", body["kind"])

	status, _ = env.do(t, http.MethodPost, "/api/kegiatan", token, fiber.Map{"nama_kegiatan": "Susenas"})
	assert.Equal(t, http.StatusForbidden, status)

	// baca kegiatan diizinkan untuk user
	status, _ = env.do(t, http.MethodGet, "/api/kegiatan", token, nil)
	assert.Equal(t, http.StatusOK, status)
}

func TestValidationEnvelope(t *testing.T) {
	env := newTestEnv(t)

	status, body := env.do(t, http.MethodPost, "/api/users/register", "", `{"username":"ab","email":"bukan-email","password":"123456","hobi":"x"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "validation", body["kind"])
	assert.Contains(t, body["message"], "hobi")

	status, body = env.do(t, http.MethodPost, "/api/users/register", "", fiber.Map{
		"username": "ab",
		"email":    "bukan-email",
		"password": "123456",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	details, ok := body["details"].(map[string]interface{})
	require.True(t, ok, body)
	assert.Equal(t, "min=3", details["username"])
	assert.Equal(t, "email", details["email"])
}

func TestAddAnggotaCapacityEnvelope(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "admin", model.RoleAdmin)
	pengawas := env.createUser(t, "pml", model.RoleUser)
	token := env.login(t, "admin")

	keg := &model.Kegiatan{NamaKegiatan: "Susenas", TahunAnggaran: "2025"}
	require.NoError(t, env.db.Create(keg).Error)
	sub := &model.Subkegiatan{IDKegiatan: keg.ID, NamaSubKegiatan: "Pencacahan", Periode: "2025-03"}
	require.NoError(t, env.db.Create(sub).Error)

	status, body := env.do(t, http.MethodPost, "/api/penugasan", token, fiber.Map{
		"id_subkegiatan":   sub.ID,
		"id_pengawas":      pengawas.ID,
		"jumlah_max_mitra": 1,
	})
	require.Equal(t, http.StatusCreated, status, body)
	penugasanID := body["data"].(map[string]interface{})["id"]

	var mitraIDs []uint
	for i := 1; i <= 2; i++ {
		m := &model.Mitra{NIK: fmt.Sprintf("330100000000000%d", i), NamaLengkap: fmt.Sprintf("Mitra %d", i)}
		require.NoError(t, env.db.Create(m).Error)
		mitraIDs = append(mitraIDs, m.ID)
	}

	status, body = env.do(t, http.MethodPost, "/api/kelompok-penugasan", token, fiber.Map{
		"id_penugasan": penugasanID,
		"id_mitra":     mitraIDs[0],
	})
	require.Equal(t, http.StatusCreated, status, body)

	status, body = env.do(t, http.MethodPost, "/api/kelompok-penugasan", token, fiber.Map{
		"id_penugasan": penugasanID,
		"id_mitra":     mitraIDs[1],
	})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "capacity_exceeded", body["kind"])
	details := body["details"].(map[string]interface{})
	assert.EqualValues(t, 1, details["jumlah_anggota"])
	assert.EqualValues(t, 1, details["jumlah_max_mitra"])
}

func TestUnknownRouteUsesEnvelope(t *testing.T) {
	env := newTestEnv(t)
	status, body := env.do(t, http.MethodGet, "/api/tidak-ada", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "not_found", body["kind"])
}
