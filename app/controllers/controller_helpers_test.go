package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"death-registry/app/controllers"
	jwtutil "death-registry/app/jwt"
	"death-registry/app/middleware"
	"death-registry/app/models"
	"death-registry/app/repo"
	"death-registry/app/services"
	"death-registry/router"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type envelope struct {
	OK      bool            `json:"ok"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&models.User{}, &models.Death{}, &models.AuthToken{}, &models.DeathEvent{}))

	userRepo := repo.NewUserRepository(gdb)
	signer := &jwtutil.Signer{Secret: []byte("test-secret"), Issuer: "test", ExpMin: 60}
	userSvc := services.NewUserService(userRepo)
	tokenSvc := services.NewTokenService(repo.NewTokenRepository(gdb), userRepo, signer, nil)
	deathSvc := services.NewDeathService(repo.NewDeathRepository(gdb), userRepo)

	authCtrl := controllers.NewAuthController(userSvc, tokenSvc)
	deathCtrl := controllers.NewDeathController(deathSvc)
	mw := &middleware.Auth{Tokens: tokenSvc}
	return router.New(authCtrl, deathCtrl, mw)
}

func doJSON(t *testing.T, h http.Handler, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

// registerAs creates an account through the API and returns its token.
func registerAs(t *testing.T, h http.Handler, name, email, role string) string {
	t.Helper()
	rec, env := doJSON(t, h, http.MethodPost, "/register", "", map[string]string{
		"name":                  name,
		"email":                 email,
		"password":              "secret123",
		"password_confirmation": "secret123",
		"role":                  role,
	})
	require.Equal(t, http.StatusCreated, rec.Code, env.Message)

	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.Token)
	return data.Token
}

func submitDeath(t *testing.T, h http.Handler, token, name string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	return doJSON(t, h, http.MethodPost, "/deaths", token, map[string]string{
		"name":       name,
		"start_date": "2024-01-01",
		"end_date":   "2024-01-02",
		"profession": "pilot",
	})
}
