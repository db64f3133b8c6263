package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/loganlanou/dealerpost/internal/apiclient"
	"github.com/loganlanou/dealerpost/internal/auth"
	"github.com/loganlanou/dealerpost/internal/catalog"
	"github.com/loganlanou/dealerpost/internal/dashboard"
	"github.com/loganlanou/dealerpost/internal/handlers"
	"github.com/loganlanou/dealerpost/internal/jobs"
	"github.com/loganlanou/dealerpost/internal/metrics"
	"github.com/loganlanou/dealerpost/internal/middleware"
	"github.com/loganlanou/dealerpost/internal/ollama"
	"github.com/loganlanou/dealerpost/internal/publisher"
	"github.com/loganlanou/dealerpost/internal/querycache"
	"github.com/loganlanou/dealerpost/internal/session"
	"github.com/loganlanou/dealerpost/internal/social"
	"github.com/loganlanou/dealerpost/internal/types"
	"github.com/loganlanou/dealerpost/storage"
	"github.com/loganlanou/dealerpost/views/layout"
	"github.com/loganlanou/dealerpost/views/pages"
)

type Service struct {
	storage          *storage.Storage
	config           *Config
	jwt              *auth.JWTManager
	productsHandler  *handlers.ProductsHandler
	postsHandler     *handlers.PostsHandler
	analyticsHandler *handlers.AnalyticsHandler
	authHandler      *handlers.AuthHandler
	dashboard        *dashboard.Handler
	collector        *jobs.AnalyticsCollector
}

func New(storage *storage.Storage, config *Config) *Service {
	jwtManager := auth.NewJWTManager(config.JWT.Secret, config.JWT.Expiration)

	publishers := publisher.Set{
		social.PlatformTwitter: publisher.NewTwitter(config.Twitter.APIURL, config.Twitter.AccessToken),
	}

	drafter := aiDrafter(context.Background(), config)

	syncer := catalog.NewSyncer(
		storage.DB(),
		catalog.NewSPAPISource(config.Amazon.TokenURL, config.Amazon.Endpoint),
		catalog.SampleSource{},
		config.CatalogSource == "sample",
	)

	api := apiclient.New(config.APIBaseURL, nil)
	sessions := session.NewManager(config.Session.Secret, config.IsProduction())
	queries := dashboard.NewQueries(api, querycache.New(config.CacheStaleTime))

	return &Service{
		storage:          storage,
		config:           config,
		jwt:              jwtManager,
		productsHandler:  handlers.NewProductsHandler(storage, syncer),
		postsHandler:     handlers.NewPostsHandler(storage, drafter, publishers),
		analyticsHandler: handlers.NewAnalyticsHandler(storage, publishers),
		authHandler:      handlers.NewAuthHandler(storage, jwtManager),
		dashboard:        dashboard.NewHandler(api, queries, sessions),
		collector:        jobs.NewAnalyticsCollector(storage.Queries, publishers, config.AnalyticsInterval),
	}
}

const ollamaProbeTimeout = 3 * time.Second

// aiDrafter returns the Ollama drafter when it is enabled and serves the
// configured model. A nil drafter makes posts use the template generator.
func aiDrafter(ctx context.Context, config *Config) handlers.Drafter {
	if !config.Ollama.Enabled {
		return nil
	}

	client := ollama.NewClient(config.Ollama.URL, config.Ollama.Model)
	ctx, cancel := context.WithTimeout(ctx, ollamaProbeTimeout)
	defer cancel()
	if !client.IsAvailable(ctx) {
		slog.Warn("ollama model unavailable, drafting from templates", "url", config.Ollama.URL, "model", config.Ollama.Model)
		return nil
	}
	slog.Info("ollama drafter enabled", "model", config.Ollama.Model)
	return client
}

// Start runs the background jobs until Stop is called.
func (s *Service) Start(ctx context.Context) {
	s.collector.Start(ctx)
}

func (s *Service) Stop() {
	s.collector.Stop()
}

// Middleware installs the shared request middleware on e.
func (s *Service) Middleware(e *echo.Echo) {
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     s.config.AllowedOrigins,
		AllowCredentials: true,
	}))
	e.Use(middleware.RequestLogger())
	e.Use(middleware.SecurityHeaders())
}

func (s *Service) RegisterRoutes(e *echo.Echo) {
	e.HTTPErrorHandler = s.HTTPErrorHandler

	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	api := e.Group("/api")
	api.GET("/health", handlers.HealthCheck)
	api.POST("/auth/register", s.authHandler.Register)
	api.POST("/auth/token", s.authHandler.Token)

	secured := api.Group("")
	secured.Use(auth.BearerAuth(s.jwt, s.storage.Queries))

	secured.GET("/auth/me", s.authHandler.Me)
	secured.POST("/auth/connect-amazon", s.authHandler.ConnectAmazon)
	secured.POST("/auth/connect-twitter", s.authHandler.ConnectTwitter)
	secured.GET("/auth/status", s.authHandler.Status)

	// Products
	secured.GET("/products/", s.productsHandler.ListProducts)
	secured.GET("/products/categories/", s.productsHandler.Categories)
	secured.POST("/products/sync", s.productsHandler.SyncProducts)
	secured.GET("/products/:asin", s.productsHandler.GetProduct)

	// Posts
	secured.GET("/posts/", s.postsHandler.ListPosts)
	secured.POST("/posts/generate", s.postsHandler.GeneratePost)
	secured.GET("/posts/variations/:product_id", s.postsHandler.Variations)
	secured.POST("/posts/:id/publish", s.postsHandler.PublishPost)
	secured.DELETE("/posts/:id", s.postsHandler.DeletePost)
	secured.GET("/posts/:id/card.png", s.postsHandler.Card)

	// Analytics
	secured.GET("/analytics/dashboard", s.analyticsHandler.Dashboard)
	secured.GET("/analytics/post/:id", s.analyticsHandler.Post)
	secured.GET("/analytics/trends", s.analyticsHandler.Trends)
	secured.GET("/analytics/performance/comparison", s.analyticsHandler.PerformanceComparison)

	s.dashboard.RegisterRoutes(e)
}

// HTTPErrorHandler answers /api requests with {"detail": ...} and renders
// an error page for everything else.
func (s *Service) HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := "Sunucu hatası"
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		msg = fmt.Sprint(he.Message)
	} else {
		slog.Error("unhandled request error", "error", err, "path", c.Request().URL.Path)
	}

	if strings.HasPrefix(c.Request().URL.Path, "/api") {
		if err := c.JSON(code, types.ErrorResponse{Detail: msg}); err != nil {
			slog.Error("failed to write error response", "error", err)
		}
		return
	}

	if code == http.StatusNotFound && msg == http.StatusText(http.StatusNotFound) {
		msg = "Sayfa bulunamadı"
	}
	meta := layout.NewPageMeta(c, "Hata")
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	if err := layout.Base(meta, dashboard.Navigation, pages.Error(code, msg)).Render(c.Request().Context(), c.Response().Writer); err != nil {
		slog.Error("failed to render error page", "error", err)
	}
}
