package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/inventario-app/inventario/internal/hash"
	"github.com/inventario-app/inventario/internal/httperr"
	authmw "github.com/inventario-app/inventario/internal/middleware/auth"
	"github.com/inventario-app/inventario/internal/middleware/sanitize"
	"github.com/inventario-app/inventario/internal/models"
	"github.com/inventario-app/inventario/internal/repo"
	"github.com/inventario-app/inventario/internal/service"
	"github.com/inventario-app/inventario/internal/session"
)

type testEnv struct {
	T  *testing.T
	E  *echo.Echo
	DB *gorm.DB
}

func InitTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
		return nil
	}

	// One connection only: every pooled connection would otherwise get its
	// own empty in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.User{}, &models.Product{}); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	return db
}

func newTestEnv(t *testing.T) *testEnv {
	db := InitTestDB(t)
	r := repo.New(db)
	sessions := session.NewMemoryStore(time.Hour)

	e := echo.New()
	e.HTTPErrorHandler = httperr.Handler
	e.Use(sanitize.Middleware())

	Register(e, &Deps{
		ProductHandler: &ProductHandler{
			Svc: &service.ProductService{Repo: r},
		},
		AuthHandler: &AuthHandler{
			Svc:        &service.AuthService{Repo: r, Sessions: sessions},
			Sessions:   sessions,
			SessionTTL: time.Hour,
		},
		AuthMW: authmw.NewMiddleware(sessions),
	})

	return &testEnv{T: t, E: e, DB: db}
}

func (env *testEnv) createUser(username, password, role string) {
	env.T.Helper()

	passwordHash, err := hash.HashPassword(password)
	require.NoError(env.T, err)
	require.NoError(env.T, env.DB.Create(&models.User{
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
	}).Error)
}

// doJSONRequest drives the full router so every route middleware runs.
func (env *testEnv) doJSONRequest(method, path string, body interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	env.T.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}

	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) login(username, password string) *http.Cookie {
	env.T.Helper()

	rec := env.doJSONRequest(http.MethodPost, "/auth/login", map[string]string{
		"username": username,
		"password": password,
	})
	require.Equal(env.T, http.StatusOK, rec.Code)

	for _, ck := range rec.Result().Cookies() {
		if ck.Name == session.CookieName {
			return ck
		}
	}
	env.T.Fatal("login response carried no session cookie")
	return nil
}

func loginAdmin(t *testing.T, env *testEnv) *http.Cookie {
	env.createUser("admin", "admin123", "admin")
	return env.login("admin", "admin123")
}

func loginViewer(t *testing.T, env *testEnv) *http.Cookie {
	env.createUser("viewer", "viewer123", "viewer")
	return env.login("viewer", "viewer123")
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}
