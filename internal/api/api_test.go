package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"rentdesk/server/config"
	"rentdesk/server/internal/models"
	"rentdesk/server/internal/storage"
	"rentdesk/server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testServer struct {
	router *gin.Engine
	store  *store.Store
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Server.AllowedOrigins = []string{"http://localhost:3000"}
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.TokenTTL = 1
	cfg.Storage.Dir = t.TempDir()
	cfg.Storage.PublicBaseURL = "http://localhost/uploads"
	cfg.Storage.MaxUploadMB = 1
	cfg.Payments.WebhookSecret = ""

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Property{},
		&models.Tenant{},
		&models.Payment{},
		&models.MaintenanceRequest{},
		&models.Document{},
		&models.DashboardChart{},
	))

	log := logrus.New()
	log.SetOutput(io.Discard)

	files, err := storage.NewStore(cfg, log)
	require.NoError(t, err)

	s := store.NewStore(db)
	handler := NewHandler(s, cfg, files, log)

	router := gin.New()
	SetupRoutes(router, handler, cfg)

	return &testServer{router: router, store: s}
}

func (ts *testServer) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

// registerManager creates an account, promotes its profile to manager,
// and signs in again so the token carries the manager user type.
func (ts *testServer) registerManager(t *testing.T, email string) string {
	t.Helper()

	rec := ts.request(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"email": email, "password": "supersecret",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var session struct {
		Profile models.Profile `json:"profile"`
	}
	decode(t, rec, &session)

	_, err := ts.store.UpdateProfile(session.Profile.ID, map[string]interface{}{
		"user_type": models.UserTypeManager,
	})
	require.NoError(t, err)

	return ts.login(t, email, "supersecret")
}

func (ts *testServer) login(t *testing.T, email, password string) string {
	t.Helper()

	rec := ts.request(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": email, "password": password,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var session struct {
		Token string `json:"token"`
	}
	decode(t, rec, &session)
	require.NotEmpty(t, session.Token)
	return session.Token
}
