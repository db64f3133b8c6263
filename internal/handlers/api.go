package handlers

import (
	"encoding/json"
	"log/slog"
	"math"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/loganlanou/dealerpost/internal/auth"
	"github.com/loganlanou/dealerpost/internal/types"
	"github.com/loganlanou/dealerpost/storage/db"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// currentUserID returns the id set by the bearer middleware.
func currentUserID(c echo.Context) (string, error) {
	id, ok := auth.GetUserID(c)
	if !ok {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "Could not validate credentials")
	}
	return id, nil
}

// pagination reads skip and limit. Limits above maxPageLimit are capped.
func pagination(c echo.Context) (offset, limit int64, err error) {
	limit = defaultPageLimit
	if err := echo.QueryParamsBinder(c).
		Int64("skip", &offset).
		Int64("limit", &limit).
		BindError(); err != nil {
		return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "Geçersiz sayfalama parametreleri")
	}
	if offset < 0 || limit < 1 {
		return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "Geçersiz sayfalama parametreleri")
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return offset, limit, nil
}

func toProduct(p db.Product) types.Product {
	images := []string{}
	if p.ImageUrls != "" {
		if err := json.Unmarshal([]byte(p.ImageUrls), &images); err != nil {
			slog.Error("failed to decode product image urls", "error", err, "asin", p.Asin)
			images = []string{}
		}
	}
	return types.Product{
		ASIN:        p.Asin,
		Title:       p.Title,
		Description: p.Description,
		Price:       float64(p.PriceCents) / 100,
		Currency:    p.Currency,
		ImageURLs:   images,
		Category:    p.Category,
		Brand:       p.Brand,
	}
}

func toPost(p db.SocialMediaPost) types.Post {
	createdAt := p.CreatedAt
	post := types.Post{
		ID:          p.ID,
		Content:     p.Content,
		Platform:    p.Platform,
		AIGenerated: p.AiGenerated,
		Posted:      p.Posted,
		ProductID:   p.ProductAsin,
		PostURL:     p.PostUrl.String,
		ExternalID:  p.ExternalID.String,
		CreatedAt:   &createdAt,
	}
	if p.PostedAt.Valid {
		postedAt := p.PostedAt.Time
		post.PostedAt = &postedAt
	}
	return post
}

// rate returns part/whole as a percentage with one decimal, or 0 when whole
// is zero.
func rate(part, whole int64) float64 {
	if whole <= 0 {
		return 0
	}
	return math.Round(float64(part)/float64(whole)*1000) / 10
}

// average returns total/n with one decimal, or 0 when n is zero.
func average(total, n int64) float64 {
	if n <= 0 {
		return 0
	}
	return math.Round(float64(total)/float64(n)*10) / 10
}

// HealthCheck is the liveness probe.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}
