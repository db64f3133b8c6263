package handlers

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/loganlanou/dealerpost/internal/catalog"
	"github.com/loganlanou/dealerpost/internal/metrics"
	"github.com/loganlanou/dealerpost/internal/types"
	"github.com/loganlanou/dealerpost/storage"
	"github.com/loganlanou/dealerpost/storage/db"
)

type ProductsHandler struct {
	store  *storage.Storage
	syncer *catalog.Syncer
}

func NewProductsHandler(store *storage.Storage, syncer *catalog.Syncer) *ProductsHandler {
	return &ProductsHandler{store: store, syncer: syncer}
}

func (h *ProductsHandler) ListProducts(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	offset, limit, err := pagination(c)
	if err != nil {
		return err
	}

	products, err := h.store.Queries.ListProductsByUser(c.Request().Context(), db.ListProductsByUserParams{
		UserID: userID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		slog.Error("failed to list products", "error", err, "user_id", userID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Ürünler alınamadı")
	}

	response := make([]types.Product, len(products))
	for i, p := range products {
		response[i] = toProduct(p)
	}
	return c.JSON(http.StatusOK, response)
}

func (h *ProductsHandler) GetProduct(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	asin := c.Param("asin")
	product, err := h.store.Queries.GetProductByASIN(c.Request().Context(), db.GetProductByASINParams{
		UserID: userID,
		Asin:   asin,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return echo.NewHTTPError(http.StatusNotFound, "Ürün bulunamadı")
		}
		slog.Error("failed to get product", "error", err, "asin", asin)
		return echo.NewHTTPError(http.StatusInternalServerError, "Ürün detayı alınamadı")
	}

	return c.JSON(http.StatusOK, toProduct(product))
}

// Categories lists the default categories followed by any other category
// the user's products carry.
func (h *ProductsHandler) Categories(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	stored, err := h.store.Queries.ListProductCategories(c.Request().Context(), userID)
	if err != nil {
		slog.Error("failed to list product categories", "error", err, "user_id", userID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Kategoriler alınamadı")
	}

	categories := make([]string, 0, len(catalog.DefaultCategories)+len(stored))
	seen := make(map[string]bool, cap(categories))
	for _, list := range [][]string{catalog.DefaultCategories, stored} {
		for _, name := range list {
			if !seen[name] {
				seen[name] = true
				categories = append(categories, name)
			}
		}
	}

	return c.JSON(http.StatusOK, types.CategoriesResponse{Categories: categories})
}

func (h *ProductsHandler) SyncProducts(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	creds, err := amazonCredentials(c, h.store.Queries, userID)
	if err != nil {
		return err
	}

	result, err := h.syncer.Sync(ctx, userID, creds)
	metrics.SyncsTotal.WithLabelValues(metrics.Result(err)).Inc()
	if err != nil {
		slog.Error("failed to sync products", "error", err, "user_id", userID)
		return echo.NewHTTPError(http.StatusBadGateway, "Senkronizasyon hatası: "+err.Error())
	}
	metrics.ProductsSynced.WithLabelValues("created").Add(float64(result.Created))
	metrics.ProductsSynced.WithLabelValues("updated").Add(float64(result.Updated))

	return c.JSON(http.StatusOK, types.SyncResponse{
		Message: fmt.Sprintf("%d yeni ürün senkronize edildi", result.Created),
		Created: result.Created,
		Updated: result.Updated,
	})
}

func amazonCredentials(c echo.Context, q *db.Queries, userID string) (catalog.Credentials, error) {
	ac, err := q.GetAmazonCredentials(c.Request().Context(), userID)
	if errors.Is(err, sql.ErrNoRows) {
		return catalog.Credentials{}, nil
	}
	if err != nil {
		slog.Error("failed to load amazon credentials", "error", err, "user_id", userID)
		return catalog.Credentials{}, echo.NewHTTPError(http.StatusInternalServerError, "Amazon bilgileri alınamadı")
	}
	return catalog.Credentials{
		ClientID:     ac.ClientID,
		ClientSecret: ac.ClientSecret,
		RefreshToken: ac.RefreshToken,
		SellerID:     ac.SellerID,
	}, nil
}
