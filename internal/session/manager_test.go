package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// roundTrip runs fn on a fresh request carrying cookies and returns the
// cookies set by the response.
func roundTrip(t *testing.T, e *echo.Echo, cookies []*http.Cookie, fn func(c echo.Context)) []*http.Cookie {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	fn(e.NewContext(req, rec))
	if set := rec.Result().Cookies(); len(set) > 0 {
		return set
	}
	return cookies
}

func TestManager_SessionLifecycle(t *testing.T) {
	e := echo.New()
	m := NewManager("test-secret-32-bytes-long-000000", false)

	cookies := roundTrip(t, e, nil, func(c echo.Context) {
		require.NoError(t, m.CreateSession(c, &UserData{ID: "u1", Email: "a@b.c", FullName: "Ayşe", Token: "jwt"}))
	})

	roundTrip(t, e, cookies, func(c echo.Context) {
		u, err := m.GetSession(c)
		require.NoError(t, err)
		assert.Equal(t, "u1", u.ID)
		assert.Equal(t, "jwt", u.Token)
	})

	cookies = roundTrip(t, e, cookies, func(c echo.Context) {
		require.NoError(t, m.DestroySession(c))
	})

	roundTrip(t, e, cookies, func(c echo.Context) {
		_, err := m.GetSession(c)
		assert.Error(t, err)
	})
}

func TestManager_FlashesAreOneShot(t *testing.T) {
	e := echo.New()
	m := NewManager("test-secret-32-bytes-long-000000", false)

	cookies := roundTrip(t, e, nil, func(c echo.Context) {
		require.NoError(t, m.AddFlash(c, Success("5 ürün senkronize edildi")))
		require.NoError(t, m.AddFlash(c, Error("Silme hatası: Silme başarısız")))
	})

	cookies = roundTrip(t, e, cookies, func(c echo.Context) {
		got, err := m.Flashes(c)
		require.NoError(t, err)
		assert.Equal(t, []Notification{
			{Kind: NotificationSuccess, Message: "5 ürün senkronize edildi"},
			{Kind: NotificationError, Message: "Silme hatası: Silme başarısız"},
		}, got)
	})

	roundTrip(t, e, cookies, func(c echo.Context) {
		got, err := m.Flashes(c)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestManager_ForeignCookieStartsFresh(t *testing.T) {
	e := echo.New()
	a := NewManager("secret-a-secret-a-secret-a-00000", false)
	b := NewManager("secret-b-secret-b-secret-b-00000", false)

	cookies := roundTrip(t, e, nil, func(c echo.Context) {
		require.NoError(t, a.CreateSession(c, &UserData{ID: "u1"}))
	})

	roundTrip(t, e, cookies, func(c echo.Context) {
		_, err := b.GetSession(c)
		assert.Error(t, err)
		assert.NoError(t, b.CreateSession(c, &UserData{ID: "u2"}))
	})
}
