package handlers

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/loganlanou/dealerpost/internal/metrics"
	"github.com/loganlanou/dealerpost/internal/postcard"
	"github.com/loganlanou/dealerpost/internal/publisher"
	"github.com/loganlanou/dealerpost/internal/social"
	"github.com/loganlanou/dealerpost/internal/types"
	"github.com/loganlanou/dealerpost/storage"
	"github.com/loganlanou/dealerpost/storage/db"
)

const defaultContent = "Varsayılan içerik"

// Drafter writes post copy for a product. The ollama client implements it.
type Drafter interface {
	GeneratePost(ctx context.Context, product social.ProductData, platform social.Platform, style social.Style) (string, error)
}

type PostsHandler struct {
	store      *storage.Storage
	drafter    Drafter
	publishers publisher.Set
	// publishing collapses concurrent publishes of the same post.
	publishing singleflight.Group
}

// NewPostsHandler builds the posts API. A nil drafter means every draft
// comes from the template generator.
func NewPostsHandler(store *storage.Storage, drafter Drafter, publishers publisher.Set) *PostsHandler {
	return &PostsHandler{store: store, drafter: drafter, publishers: publishers}
}

func (h *PostsHandler) ListPosts(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	offset, limit, err := pagination(c)
	if err != nil {
		return err
	}

	posts, err := h.store.Queries.ListSocialMediaPosts(c.Request().Context(), db.ListSocialMediaPostsParams{
		UserID: userID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		slog.Error("failed to list posts", "error", err, "user_id", userID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Gönderiler alınamadı")
	}

	response := make([]types.Post, len(posts))
	for i, p := range posts {
		response[i] = toPost(p)
	}
	return c.JSON(http.StatusOK, response)
}

func (h *PostsHandler) GeneratePost(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	var req types.GeneratePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Geçersiz istek")
	}
	if req.ProductID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "product_id gerekli")
	}
	if req.Platform == "" {
		req.Platform = string(social.PlatformTwitter)
	}
	platform, ok := social.ParsePlatform(req.Platform)
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Geçersiz platform: %s", req.Platform))
	}
	generateAI := req.GenerateAI == nil || *req.GenerateAI

	product, err := h.lookupProduct(c, userID, req.ProductID)
	if err != nil {
		return err
	}

	var content, source string
	if generateAI {
		content, source = h.draft(ctx, productData(product), platform, social.StyleEngaging)
	} else {
		content, source = req.CustomContent, "custom"
		if content == "" {
			content = defaultContent
		}
	}
	content = social.Truncate(content, social.Limit(platform))

	id := uuid.New().String()
	err = h.store.Queries.CreateSocialMediaPost(ctx, db.CreateSocialMediaPostParams{
		ID:          id,
		UserID:      userID,
		ProductAsin: product.Asin,
		Platform:    string(platform),
		Content:     content,
		AiGenerated: generateAI,
	})
	if err != nil {
		slog.Error("failed to create post", "error", err, "user_id", userID, "asin", product.Asin)
		return echo.NewHTTPError(http.StatusInternalServerError, "Gönderi oluşturulamadı")
	}
	metrics.PostsGenerated.WithLabelValues(string(platform), source).Inc()

	post, err := h.store.Queries.GetSocialMediaPost(ctx, db.GetSocialMediaPostParams{ID: id, UserID: userID})
	if err != nil {
		slog.Error("failed to reload post", "error", err, "post_id", id)
		return echo.NewHTTPError(http.StatusInternalServerError, "Gönderi oluşturulamadı")
	}
	return c.JSON(http.StatusOK, toPost(post))
}

// draft asks the AI drafter and falls back to the template generator.
func (h *PostsHandler) draft(ctx context.Context, p social.ProductData, platform social.Platform, style social.Style) (content, source string) {
	if h.drafter != nil {
		text, err := h.drafter.GeneratePost(ctx, p, platform, style)
		if err == nil {
			return text, "ai"
		}
		slog.Warn("AI draft failed, using template", "error", err, "asin", p.ASIN, "platform", platform)
	}
	return social.Draft(p, platform, style), "template"
}

// Variations drafts up to three styles concurrently. Styles whose AI draft
// fails are left out; the order of the remaining ones is kept.
func (h *PostsHandler) Variations(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	platformParam := c.QueryParam("platform")
	if platformParam == "" {
		platformParam = string(social.PlatformTwitter)
	}
	platform, ok := social.ParsePlatform(platformParam)
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Geçersiz platform: %s", platformParam))
	}

	count := len(social.AllStyles)
	if err := echo.QueryParamsBinder(c).Int("count", &count).BindError(); err != nil || count < 1 {
		return echo.NewHTTPError(http.StatusBadRequest, "Geçersiz varyasyon sayısı")
	}
	if count > len(social.AllStyles) {
		count = len(social.AllStyles)
	}

	productID := c.Param("product_id")
	product, err := h.lookupProduct(c, userID, productID)
	if err != nil {
		return err
	}
	data := productData(product)

	drafts := make([]string, count)
	g, ctx := errgroup.WithContext(c.Request().Context())
	for i, style := range social.AllStyles[:count] {
		i, style := i, style
		g.Go(func() error {
			if h.drafter == nil {
				drafts[i] = social.Draft(data, platform, style)
				return nil
			}
			text, err := h.drafter.GeneratePost(ctx, data, platform, style)
			if err != nil {
				slog.Warn("variation draft failed", "error", err, "style", style)
				return nil
			}
			drafts[i] = text
			return nil
		})
	}
	_ = g.Wait()

	variations := make([]string, 0, count)
	for _, d := range drafts {
		if d != "" {
			variations = append(variations, d)
		}
	}

	return c.JSON(http.StatusOK, types.VariationsResponse{
		ProductID:  productID,
		Platform:   string(platform),
		Variations: variations,
	})
}

func (h *PostsHandler) PublishPost(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id := c.Param("id")

	res, err, _ := h.publishing.Do(userID+":"+id, func() (any, error) {
		return h.publish(c.Request().Context(), userID, id)
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

func (h *PostsHandler) publish(ctx context.Context, userID, id string) (*types.PublishResponse, error) {
	post, err := h.store.Queries.GetSocialMediaPost(ctx, db.GetSocialMediaPostParams{ID: id, UserID: userID})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, echo.NewHTTPError(http.StatusNotFound, "Gönderi bulunamadı")
		}
		slog.Error("failed to get post", "error", err, "post_id", id)
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "Gönderi alınamadı")
	}
	if post.Posted {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Gönderi zaten yayınlanmış")
	}

	pub, err := h.publishers.For(social.Platform(post.Platform))
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Platform '%s' henüz desteklenmiyor", post.Platform))
	}

	creds, err := twitterCredentials(ctx, h.store.Queries, userID)
	if err != nil {
		slog.Error("failed to load twitter credentials", "error", err, "user_id", userID)
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "Twitter bilgileri alınamadı")
	}

	result, err := pub.Publish(ctx, creds, post.Content)
	metrics.PublishesTotal.WithLabelValues(post.Platform, metrics.Result(err)).Inc()
	if err != nil {
		slog.Error("failed to publish post", "error", err, "post_id", id, "platform", post.Platform)
		return nil, echo.NewHTTPError(http.StatusBadGateway, "Tweet yayınlanamadı: "+err.Error())
	}

	n, err := h.store.Queries.MarkSocialMediaPostPublished(ctx, db.MarkSocialMediaPostPublishedParams{
		ExternalID: sql.NullString{String: result.ExternalID, Valid: result.ExternalID != ""},
		PostUrl:    sql.NullString{String: result.URL, Valid: result.URL != ""},
		ID:         id,
	})
	if err != nil {
		slog.Error("failed to mark post published", "error", err, "post_id", id, "external_id", result.ExternalID)
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "Gönderi güncellenemedi")
	}
	if n == 0 {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Gönderi zaten yayınlanmış")
	}

	slog.Info("post published", "post_id", id, "platform", post.Platform, "external_id", result.ExternalID, "simulated", result.Simulated)
	return &types.PublishResponse{
		Success:  true,
		Platform: post.Platform,
		PostURL:  result.URL,
		Message:  "Tweet başarıyla yayınlandı",
	}, nil
}

func (h *PostsHandler) DeletePost(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id := c.Param("id")

	n, err := h.store.Queries.DeleteSocialMediaPost(c.Request().Context(), db.DeleteSocialMediaPostParams{ID: id, UserID: userID})
	if err != nil {
		slog.Error("failed to delete post", "error", err, "post_id", id)
		return echo.NewHTTPError(http.StatusInternalServerError, "Gönderi silinemedi")
	}
	if n == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "Gönderi bulunamadı")
	}
	metrics.PostsDeleted.Inc()

	return c.JSON(http.StatusOK, types.Message{Message: "Gönderi başarıyla silindi"})
}

// Card renders the post as a PNG share card.
func (h *PostsHandler) Card(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	id := c.Param("id")

	post, err := h.store.Queries.GetSocialMediaPost(ctx, db.GetSocialMediaPostParams{ID: id, UserID: userID})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return echo.NewHTTPError(http.StatusNotFound, "Gönderi bulunamadı")
		}
		slog.Error("failed to get post", "error", err, "post_id", id)
		return echo.NewHTTPError(http.StatusInternalServerError, "Gönderi alınamadı")
	}

	card := postcard.Card{
		Content:  post.Content,
		Platform: social.Platform(post.Platform),
		Posted:   post.Posted,
		Link:     post.PostUrl.String,
	}
	if card.Link == "" {
		card.Link = social.ShareURL(card.Platform, post.Content)
	}
	if product, err := h.store.Queries.GetProductByASIN(ctx, db.GetProductByASINParams{UserID: userID, Asin: post.ProductAsin}); err == nil {
		card.ProductTitle = product.Title
	}

	var buf bytes.Buffer
	if err := postcard.Render(&buf, card); err != nil {
		slog.Error("failed to render post card", "error", err, "post_id", id)
		return echo.NewHTTPError(http.StatusInternalServerError, "Kart oluşturulamadı")
	}
	return c.Blob(http.StatusOK, "image/png", buf.Bytes())
}

func (h *PostsHandler) lookupProduct(c echo.Context, userID, asin string) (db.Product, error) {
	product, err := h.store.Queries.GetProductByASIN(c.Request().Context(), db.GetProductByASINParams{UserID: userID, Asin: asin})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return db.Product{}, echo.NewHTTPError(http.StatusNotFound, "Ürün bulunamadı")
		}
		slog.Error("failed to get product", "error", err, "asin", asin)
		return db.Product{}, echo.NewHTTPError(http.StatusInternalServerError, "Ürün alınamadı")
	}
	return product, nil
}

func productData(p db.Product) social.ProductData {
	return social.ProductData{
		ASIN:        p.Asin,
		Title:       p.Title,
		Description: p.Description,
		Price:       float64(p.PriceCents) / 100,
		Currency:    p.Currency,
		Category:    p.Category,
		Brand:       p.Brand,
	}
}

func twitterCredentials(ctx context.Context, q *db.Queries, userID string) (publisher.Credentials, error) {
	tc, err := q.GetTwitterCredentials(ctx, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return publisher.Credentials{}, nil
	}
	if err != nil {
		return publisher.Credentials{}, err
	}
	return publisher.Credentials{AccessToken: tc.AccessToken}, nil
}
