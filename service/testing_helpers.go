package service

import (
	"context"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/loganlanou/dealerpost/internal/auth"
	"github.com/loganlanou/dealerpost/storage"
	"github.com/loganlanou/dealerpost/storage/db"
)

func testConfig() *Config {
	cfg := &Config{
		Environment: "test",
		Port:        "8080",
		BaseURL:     "http://localhost:8080",
		APIBaseURL:  "http://127.0.0.1:1",
	}
	cfg.JWT.Secret = "service-test-secret"
	cfg.JWT.Expiration = 30 * time.Minute
	cfg.Session.Secret = "service-test-session-secret-0000"
	cfg.CatalogSource = "sample"
	return cfg
}

// setupTestEcho creates an Echo instance backed by an in-memory database
// with every route registered.
func setupTestEcho(t *testing.T) (*echo.Echo, *Service) {
	t.Helper()

	database, _, cleanup, err := storage.NewTestDB()
	require.NoError(t, err)
	t.Cleanup(cleanup)

	svc := New(storage.NewFromDB(database), testConfig())

	e := echo.New()
	svc.RegisterRoutes(e)
	return e, svc
}

// bearerFor registers a user and returns an access token for it.
func bearerFor(t *testing.T, svc *Service, id, email string) string {
	t.Helper()

	hash, err := auth.HashPassword("secret123")
	require.NoError(t, err)
	err = svc.storage.Queries.CreateUser(context.Background(), db.CreateUserParams{
		ID:             id,
		Email:          email,
		FullName:       "Test User",
		HashedPassword: hash,
	})
	require.NoError(t, err)

	token, err := svc.jwt.GenerateToken(id, email)
	require.NoError(t, err)
	return token
}
