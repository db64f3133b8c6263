package handlers

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/labstack/echo/v4"
	"github.com/oklog/ulid/v2"

	"github.com/loganlanou/dealerpost/internal/auth"
	"github.com/loganlanou/dealerpost/storage"
	"github.com/loganlanou/dealerpost/storage/db"
)

// NewTestContext creates a new Echo context for testing
func NewTestContext(method, path string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()

	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	return c, rec
}

// SetTestUser sets a user in the Echo context for authenticated tests
func SetTestUser(c echo.Context, user *db.User) {
	c.Set(auth.DBUserKey, user)
}

// CreateTestUser creates a test user in the database
func CreateTestUser(queries *db.Queries) (*db.User, error) {
	return CreateTestUserWithEmail(queries, "test@example.com")
}

// CreateTestUserWithEmail creates a test user with a specific email and the
// password "secret123".
func CreateTestUserWithEmail(queries *db.Queries, email string) (*db.User, error) {
	hashed, err := auth.HashPassword("secret123")
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	err = queries.CreateUser(ctx, db.CreateUserParams{
		ID:             ulid.Make().String(),
		Email:          email,
		FullName:       "Test User",
		HashedPassword: hashed,
	})
	if err != nil {
		return nil, err
	}

	user, err := queries.GetUserByEmail(ctx, email)
	return &user, err
}

// CreateTestProduct stores a product for userID.
func CreateTestProduct(queries *db.Queries, userID, asin, title, category string) error {
	return queries.CreateProduct(context.Background(), db.CreateProductParams{
		ID:          ulid.Make().String(),
		UserID:      userID,
		Asin:        asin,
		Title:       title,
		Description: title + " açıklaması",
		PriceCents:  29999,
		Currency:    "TRY",
		ImageUrls:   `["https://example.com/` + asin + `.jpg"]`,
		Category:    category,
		Brand:       "Marka",
	})
}

// CreateTestPost stores a draft post for userID.
func CreateTestPost(queries *db.Queries, userID, id, asin, platform, content string) error {
	return queries.CreateSocialMediaPost(context.Background(), db.CreateSocialMediaPostParams{
		ID:          id,
		UserID:      userID,
		ProductAsin: asin,
		Platform:    platform,
		Content:     content,
		AiGenerated: true,
	})
}

// NewTestDB creates a test database with migrations applied
func NewTestDB() (*sql.DB, *db.Queries, func()) {
	database, queries, cleanup, err := storage.NewTestDB()
	if err != nil {
		panic("failed to create test database: " + err.Error())
	}
	return database, queries, cleanup
}

// AssertJSONResponse checks if the response is valid JSON and returns the parsed body
func AssertJSONResponse(rec *httptest.ResponseRecorder) (map[string]interface{}, error) {
	var body map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		return nil, err
	}
	return body, nil
}
