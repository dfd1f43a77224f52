package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) *gorm.DB {
	t.Helper()
	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)
	return db
}

// TestRouteTable pins the public surface: every documented method/path pair
// must be registered. Protected routes answer 401 without a session; the
// point here is that none of them fall through to gin's 404 handler.
func TestRouteTable(t *testing.T) {
	r := SetupRouter(newMockDB(t))

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/"},

		{http.MethodPost, "/api/auth/session"},
		{http.MethodGet, "/api/auth/me"},
		{http.MethodPost, "/api/auth/logout"},

		{http.MethodGet, "/api/preferences"},
		{http.MethodPut, "/api/preferences"},

		{http.MethodGet, "/api/drinks"},
		{http.MethodGet, "/api/drinks/categories"},
		{http.MethodGet, "/api/spending/categories"},
		{http.MethodGet, "/api/exercise/types"},

		{http.MethodPost, "/api/alcohol"},
		{http.MethodGet, "/api/alcohol"},
		{http.MethodDelete, "/api/alcohol/some-id"},

		{http.MethodPost, "/api/sleep"},
		{http.MethodGet, "/api/sleep"},
		{http.MethodDelete, "/api/sleep/some-id"},
		{http.MethodGet, "/api/sleep/debt"},

		{http.MethodPost, "/api/nutrition"},
		{http.MethodGet, "/api/nutrition"},
		{http.MethodDelete, "/api/nutrition/some-id"},
		{http.MethodGet, "/api/nutrition/summary"},

		{http.MethodPost, "/api/spending"},
		{http.MethodGet, "/api/spending"},
		{http.MethodDelete, "/api/spending/some-id"},
		{http.MethodGet, "/api/spending/summary"},

		{http.MethodPost, "/api/exercise"},
		{http.MethodGet, "/api/exercise"},
		{http.MethodDelete, "/api/exercise/some-id"},
		{http.MethodGet, "/api/exercise/summary"},

		{http.MethodGet, "/api/dashboard/completion"},
		{http.MethodGet, "/api/dashboard/weekly"},
	}

	for _, tt := range routes {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.path, nil)
			r.ServeHTTP(w, req)

			assert.NotEqual(t, http.StatusNotFound, w.Code, "route not registered")
			assert.NotEqual(t, http.StatusMethodNotAllowed, w.Code, "wrong method registered")
		})
	}
}

func TestRootAndAuthGate(t *testing.T) {
	r := SetupRouter(newMockDB(t))

	t.Run("api root greets", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message": "MyWellness Sync API"}`, w.Body.String())
	})

	t.Run("log routes demand a session", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/alcohol", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"detail": "Not authenticated"}`, w.Body.String())
	})

	t.Run("reference data needs none", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/drinks/categories", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
