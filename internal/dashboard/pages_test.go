package dashboard

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loganlanou/dealerpost/views/layout"
)

func postForm(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestPages_RequireLogin(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/", "/products", "/posts", "/analytics", "/analytics/report.pdf"} {
		t.Run(path, func(t *testing.T) {
			rec := env.serve(httptest.NewRequest(http.MethodGet, path, nil), nil)
			assert.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, "/login", rec.Header().Get("Location"))
		})
	}
	assert.Zero(t, env.api.total())
}

func TestPages_Register(t *testing.T) {
	form := url.Values{
		"full_name":        {"Ayşe Yılmaz"},
		"email":            {"ayse@example.com"},
		"password":         {"secret123"},
		"confirm_password": {"secret123"},
		"terms":            {"on"},
	}

	t.Run("password mismatch sends nothing", func(t *testing.T) {
		env := newTestEnv(t)
		bad := url.Values{}
		for k, v := range form {
			bad[k] = v
		}
		bad.Set("confirm_password", "secret999")

		rec := env.serve(postForm("/register", bad), nil)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "Şifreler eşleşmiyor")
		assert.Zero(t, env.api.total())
	})

	t.Run("api detail is shown", func(t *testing.T) {
		env := newTestEnv(t)
		env.api.registerDetail = "Bu email adresi zaten kayıtlı"

		rec := env.serve(postForm("/register", form), nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Bu email adresi zaten kayıtlı")
	})

	t.Run("success redirects to login", func(t *testing.T) {
		env := newTestEnv(t)

		rec := env.serve(postForm("/register", form), nil)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get("Location"))
		assert.Equal(t, 1, env.api.count("POST /api/auth/register"))

		// The flash shows up on the login page.
		page := env.serve(httptest.NewRequest(http.MethodGet, "/login", nil), rec.Result().Cookies())
		assert.Contains(t, page.Body.String(), "Hesabınız başarıyla oluşturuldu!")
	})
}

func TestPages_Login(t *testing.T) {
	t.Run("success creates a session", func(t *testing.T) {
		env := newTestEnv(t)

		rec := env.serve(postForm("/login", url.Values{"email": {"ayse@example.com"}, "password": {"secret123"}}), nil)
		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))

		page := env.serve(httptest.NewRequest(http.MethodGet, "/", nil), rec.Result().Cookies())
		assert.Equal(t, http.StatusOK, page.Code)
		assert.Contains(t, page.Body.String(), "Ayşe Yılmaz")
	})

	t.Run("wrong password", func(t *testing.T) {
		env := newTestEnv(t)

		rec := env.serve(postForm("/login", url.Values{"email": {"ayse@example.com"}, "password": {"nope"}}), nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Giriş başarısız: Incorrect email or password")
	})

	t.Run("missing fields", func(t *testing.T) {
		env := newTestEnv(t)

		rec := env.serve(postForm("/login", url.Values{}), nil)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Zero(t, env.api.total())
	})
}

func TestPages_Products(t *testing.T) {
	env := newTestEnv(t)
	cookies := env.loginCookies(t)

	rec := env.serve(httptest.NewRequest(http.MethodGet, "/products?q=TELEFON", nil), cookies)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Akıllı Telefon")
	assert.NotContains(t, body, "Koşu Ayakkabısı")
	assert.Contains(t, body, "Ürünlerim")
}

func TestPages_ProductsBlankCategoryShowsAll(t *testing.T) {
	env := newTestEnv(t)
	cookies := env.loginCookies(t)

	rec := env.serve(httptest.NewRequest(http.MethodGet, "/products?q=&category=", nil), cookies)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Akıllı Telefon")
	assert.Contains(t, body, "Koşu Ayakkabısı")
}

func TestPages_ProductsEmptyFilter(t *testing.T) {
	env := newTestEnv(t)
	cookies := env.loginCookies(t)

	rec := env.serve(httptest.NewRequest(http.MethodGet, "/products?category=Kitap", nil), cookies)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "Akıllı Telefon")
}

func TestPages_Posts(t *testing.T) {
	env := newTestEnv(t)
	cookies := env.loginCookies(t)

	rec := env.serve(httptest.NewRequest(http.MethodGet, "/posts", nil), cookies)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "/posts/p1/publish")
	assert.NotContains(t, body, "/posts/p2/publish")
	assert.Contains(t, body, "/posts/p1/delete")
	assert.Contains(t, body, "/posts/p2/delete")
}

func TestPages_PublishRedirectsWithFlash(t *testing.T) {
	env := newTestEnv(t)
	cookies := env.loginCookies(t)

	rec := env.serve(httptest.NewRequest(http.MethodPost, "/posts/p1/publish", nil), cookies)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/posts", rec.Header().Get("Location"))

	page := env.serve(httptest.NewRequest(http.MethodGet, "/posts", nil), rec.Result().Cookies())
	assert.Contains(t, page.Body.String(), "Tweet başarıyla yayınlandı")
	assert.NotContains(t, page.Body.String(), "/posts/p1/publish")
}

func TestPages_Delete(t *testing.T) {
	env := newTestEnv(t)
	cookies := env.loginCookies(t)

	t.Run("without confirmation goes to the confirm page", func(t *testing.T) {
		rec := env.serve(httptest.NewRequest(http.MethodPost, "/posts/p1/delete", nil), cookies)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/posts/p1/delete", rec.Header().Get("Location"))
		assert.Zero(t, env.api.count("DELETE /api/posts/p1"))
	})

	t.Run("confirm page", func(t *testing.T) {
		rec := env.serve(httptest.NewRequest(http.MethodGet, "/posts/p1/delete", nil), cookies)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Yeni telefon geldi!")
	})

	t.Run("confirmed", func(t *testing.T) {
		rec := env.serve(postForm("/posts/p1/delete", url.Values{"confirm": {"yes"}}), cookies)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, 1, env.api.count("DELETE /api/posts/p1"))
	})
}

func TestPages_AnalyticsAndReport(t *testing.T) {
	env := newTestEnv(t)
	cookies := env.loginCookies(t)

	rec := env.serve(httptest.NewRequest(http.MethodGet, "/analytics?range=7d", nil), cookies)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "#teknoloji")
	assert.Contains(t, rec.Body.String(), "/analytics/report.pdf?platform=all&amp;range=7d")

	pdf := env.serve(httptest.NewRequest(http.MethodGet, "/analytics/report.pdf?range=7d", nil), cookies)
	require.Equal(t, http.StatusOK, pdf.Code)
	assert.Equal(t, "application/pdf", pdf.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(pdf.Body.String(), "%PDF-"))
	// Same filter, served from cache.
	assert.Equal(t, 1, env.api.count("GET /api/analytics/dashboard"))
}

func TestPages_NavigationHighlightsActive(t *testing.T) {
	env := newTestEnv(t)
	cookies := env.loginCookies(t)

	rec := env.serve(httptest.NewRequest(http.MethodGet, "/posts", nil), cookies)

	body := rec.Body.String()
	for _, item := range Navigation {
		assert.Contains(t, body, item.Label)
	}
	assert.Contains(t, body, `href="/posts" class="`+layout.NavLinkClass(true))
}
