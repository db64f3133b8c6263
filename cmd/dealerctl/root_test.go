package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loganlanou/dealerpost/internal/types"
)

type fakeServer struct {
	deletes atomic.Int32
	url     string
}

func newFakeServer(t *testing.T) *fakeServer {
	t.Helper()
	f := &fakeServer{}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/products/{$}", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]types.Product{
			{ASIN: "B001", Title: "Akıllı Telefon", Category: "Elektronik", Price: 8999.99, Currency: "TRY"},
			{ASIN: "B002", Title: "Koşu Ayakkabısı", Category: "Spor", Price: 1299, Currency: "TRY"},
		})
	})
	mux.HandleFunc("POST /api/products/sync", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_ = json.NewEncoder(w).Encode(types.ErrorResponse{Detail: "down"})
	})
	mux.HandleFunc("GET /api/posts/{$}", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]types.Post{{ID: "p1", Content: "Merhaba", Platform: "twitter"}})
	})
	mux.HandleFunc("DELETE /api/posts/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.deletes.Add(1)
		_ = json.NewEncoder(w).Encode(types.Message{Message: "Gönderi başarıyla silindi"})
	})
	mux.HandleFunc("POST /api/auth/token", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(types.Token{AccessToken: "tok", TokenType: "bearer"})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	f.url = srv.URL
	return f
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestProductsList_Filters(t *testing.T) {
	f := newFakeServer(t)

	out, err := run(t, "", "--api-url", f.url, "--token", "tok", "products", "list", "-q", "telefon")
	require.NoError(t, err)

	assert.Contains(t, out, "Akıllı Telefon")
	assert.NotContains(t, out, "Koşu Ayakkabısı")
	assert.Contains(t, out, "1 / 2")
}

func TestProductsSync_FailureIsAnError(t *testing.T) {
	f := newFakeServer(t)

	_, err := run(t, "", "--api-url", f.url, "--token", "tok", "products", "sync")
	require.Error(t, err)
	assert.Equal(t, "Senkronizasyon hatası: Senkronizasyon başarısız", err.Error())
}

func TestPostsDelete(t *testing.T) {
	t.Run("declined prompt sends nothing", func(t *testing.T) {
		f := newFakeServer(t)

		out, err := run(t, "h\n", "--api-url", f.url, "--token", "tok", "posts", "delete", "p1")
		require.NoError(t, err)
		assert.Contains(t, out, "Vazgeçildi")
		assert.Zero(t, f.deletes.Load())
	})

	t.Run("confirmed prompt", func(t *testing.T) {
		f := newFakeServer(t)

		out, err := run(t, "e\n", "--api-url", f.url, "--token", "tok", "posts", "delete", "p1")
		require.NoError(t, err)
		assert.Contains(t, out, "Gönderi silindi")
		assert.EqualValues(t, 1, f.deletes.Load())
	})

	t.Run("yes flag skips the prompt", func(t *testing.T) {
		f := newFakeServer(t)

		out, err := run(t, "", "--api-url", f.url, "--token", "tok", "posts", "delete", "p1", "--yes")
		require.NoError(t, err)
		assert.NotContains(t, out, "silinsin mi")
		assert.EqualValues(t, 1, f.deletes.Load())
	})
}

func TestLogin(t *testing.T) {
	f := newFakeServer(t)

	out, err := run(t, "", "--api-url", f.url, "login", "--email", "a@b.c", "--password", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "export DEALERPOST_TOKEN=tok\n", out)

	_, err = run(t, "", "--api-url", f.url, "login")
	require.Error(t, err)
}

func TestMissingToken(t *testing.T) {
	t.Setenv("DEALERPOST_TOKEN", "")
	_, err := run(t, "", "--api-url", "http://127.0.0.1:1", "posts", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DEALERPOST_TOKEN")
}
