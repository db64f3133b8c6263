package auth

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/loganlanou/dealerpost/internal/session"
	"github.com/loganlanou/dealerpost/storage/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUsers map[string]db.User

func (f fakeUsers) GetUser(_ context.Context, id string) (db.User, error) {
	u, ok := f[id]
	if !ok {
		return db.User{}, sql.ErrNoRows
	}
	return u, nil
}

func TestBearerAuth(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)
	users := fakeUsers{
		"u1": {ID: "u1", Email: "a@b.c", IsActive: true},
		"u2": {ID: "u2", Email: "off@b.c", IsActive: false},
	}
	good, err := m.GenerateToken("u1", "a@b.c")
	require.NoError(t, err)
	inactive, err := m.GenerateToken("u2", "off@b.c")
	require.NoError(t, err)
	ghost, err := m.GenerateToken("u9", "ghost@b.c")
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"valid token", "Bearer " + good, http.StatusOK},
		{"lowercase scheme", "bearer " + good, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"bad token", "Bearer nope", http.StatusUnauthorized},
		{"unknown user", "Bearer " + ghost, http.StatusUnauthorized},
		{"inactive user", "Bearer " + inactive, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			h := BearerAuth(m, users)(func(c echo.Context) error {
				u, ok := GetDBUser(c)
				require.True(t, ok)
				return c.String(http.StatusOK, u.ID)
			})

			err := h(c)
			if tt.wantStatus == http.StatusOK {
				require.NoError(t, err)
				assert.Equal(t, "u1", rec.Body.String())
				return
			}
			he, ok := err.(*echo.HTTPError)
			require.True(t, ok)
			assert.Equal(t, tt.wantStatus, he.Code)
		})
	}
}

func TestRequireLogin(t *testing.T) {
	e := echo.New()
	next := func(c echo.Context) error { return c.String(http.StatusOK, "ok") }

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/products", nil), rec)
	require.NoError(t, RequireLogin()(next)(c))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/products", nil), rec)
	c.Set(IsAuthenticatedKey, true)
	c.Set(SessionUserKey, &session.UserData{ID: "u1"})
	require.NoError(t, RequireLogin()(next)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
