package dashboard

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"github.com/loganlanou/dealerpost/internal/apiclient"
	"github.com/loganlanou/dealerpost/internal/auth"
	"github.com/loganlanou/dealerpost/internal/filter"
	"github.com/loganlanou/dealerpost/internal/report"
	"github.com/loganlanou/dealerpost/internal/session"
	"github.com/loganlanou/dealerpost/internal/types"
	"github.com/loganlanou/dealerpost/views/layout"
	"github.com/loganlanou/dealerpost/views/pages"
)

const loadFailed = "Veriler yüklenemedi, lütfen tekrar deneyin."

// Handler serves the dashboard pages.
type Handler struct {
	api      *apiclient.Client
	queries  *Queries
	actions  *Actions
	sessions *session.Manager
}

func NewHandler(api *apiclient.Client, queries *Queries, sessions *session.Manager) *Handler {
	return &Handler{
		api:      api,
		queries:  queries,
		actions:  NewActions(queries),
		sessions: sessions,
	}
}

func viewer(c echo.Context) Viewer {
	u, ok := auth.GetSessionUser(c)
	if !ok {
		return Viewer{}
	}
	return Viewer{UserID: u.ID, Token: u.Token}
}

// render writes body inside the layout, along with any pending flashes and
// the extra toasts given.
func (h *Handler) render(c echo.Context, status int, title string, body templ.Component, extra ...session.Notification) error {
	toasts, err := h.sessions.Flashes(c)
	if err != nil {
		slog.Debug("failed to read flashes", "error", err)
	}
	toasts = append(toasts, extra...)

	meta := layout.NewPageMeta(c, title).WithToasts(toasts)
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)
	return layout.Base(meta, Navigation, body).Render(c.Request().Context(), c.Response().Writer)
}

// redirect queues n and sends the browser to path.
func (h *Handler) redirect(c echo.Context, path string, n session.Notification) error {
	if err := h.sessions.AddFlash(c, n); err != nil {
		slog.Error("failed to add flash", "error", err)
	}
	return c.Redirect(http.StatusSeeOther, path)
}

func (h *Handler) Dashboard(c echo.Context) error {
	ctx := c.Request().Context()
	v := viewer(c)

	var (
		products  []types.Product
		analytics *types.DashboardAnalytics
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = h.queries.Products(gctx, v)
		return err
	})
	g.Go(func() error {
		var err error
		analytics, err = h.queries.Analytics(gctx, v, apiclient.AnalyticsFilter{})
		return err
	})

	data := pages.DashboardData{}
	if err := g.Wait(); err != nil {
		slog.Error("failed to load dashboard", "error", err, "user_id", v.UserID)
		data.Err = loadFailed
	} else {
		data.ProductCount = len(products)
		data.Analytics = analytics
	}
	return h.render(c, http.StatusOK, "Ana Sayfa", pages.Dashboard(data))
}

func (h *Handler) Products(c echo.Context) error {
	ctx := c.Request().Context()
	v := viewer(c)
	data := pages.ProductsData{
		Criteria: criteria(c, "category"),
	}

	products, err := h.queries.Products(ctx, v)
	if err != nil {
		slog.Error("failed to load products", "error", err, "user_id", v.UserID)
		data.Err = loadFailed
		return h.render(c, http.StatusOK, "Ürünlerim", pages.Products(data))
	}
	categories, err := h.queries.Categories(ctx, v)
	if err != nil {
		slog.Error("failed to load categories", "error", err, "user_id", v.UserID)
	}

	data.Total = len(products)
	data.Categories = categories
	data.Products = filter.Products(products, data.Criteria)
	return h.render(c, http.StatusOK, "Ürünlerim", pages.Products(data))
}

// criteria reads the search term and the selector named by param. A
// missing selector means every category.
func criteria(c echo.Context, param string) filter.Criteria {
	f := filter.Criteria{Term: c.QueryParam("q"), Category: c.QueryParam(param)}
	if f.Category == "" {
		f.Category = filter.All
	}
	return f
}

func postStats(posts []types.Post) pages.PostStats {
	stats := pages.PostStats{Total: len(posts)}
	for _, p := range posts {
		if p.Posted {
			stats.Published++
		} else {
			stats.Draft++
		}
		if p.AIGenerated {
			stats.AIGenerated++
		}
	}
	return stats
}

func (h *Handler) Posts(c echo.Context) error {
	ctx := c.Request().Context()
	v := viewer(c)
	data := pages.PostsData{
		Criteria: criteria(c, "platform"),
	}

	posts, err := h.queries.Posts(ctx, v)
	if err != nil {
		slog.Error("failed to load posts", "error", err, "user_id", v.UserID)
		data.Err = loadFailed
		return h.render(c, http.StatusOK, "Gönderilerim", pages.Posts(data))
	}
	products, err := h.queries.Products(ctx, v)
	if err != nil {
		slog.Error("failed to load products", "error", err, "user_id", v.UserID)
	}

	data.Stats = postStats(posts)
	data.Products = products
	data.Posts = filter.Posts(posts, data.Criteria)
	return h.render(c, http.StatusOK, "Gönderilerim", pages.Posts(data))
}

func analyticsFilter(c echo.Context) apiclient.AnalyticsFilter {
	f := apiclient.AnalyticsFilter{Range: c.QueryParam("range"), Platform: c.QueryParam("platform")}
	if f.Range == "" {
		f.Range = "30d"
	}
	if f.Platform == "" {
		f.Platform = filter.All
	}
	return f
}

func (h *Handler) Analytics(c echo.Context) error {
	ctx := c.Request().Context()
	v := viewer(c)
	f := analyticsFilter(c)
	data := pages.AnalyticsData{Range: f.Range, Platform: f.Platform}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		data.Analytics, err = h.queries.Analytics(gctx, v, f)
		return err
	})
	g.Go(func() error {
		var err error
		data.Trends, err = h.queries.Trends(gctx, v)
		return err
	})
	if err := g.Wait(); err != nil {
		slog.Error("failed to load analytics", "error", err, "user_id", v.UserID)
		data.Err = loadFailed
	}
	return h.render(c, http.StatusOK, "Analitik", pages.Analytics(data))
}

func (h *Handler) Report(c echo.Context) error {
	ctx := c.Request().Context()
	v := viewer(c)
	f := analyticsFilter(c)

	analytics, err := h.queries.Analytics(ctx, v, f)
	if err != nil {
		slog.Error("failed to load analytics", "error", err, "user_id", v.UserID)
		return echo.NewHTTPError(http.StatusBadGateway, "Analitik verileri alınamadı")
	}
	trends, err := h.queries.Trends(ctx, v)
	if err != nil {
		slog.Warn("report without trends", "error", err, "user_id", v.UserID)
	}

	email := ""
	if u, ok := auth.GetSessionUser(c); ok {
		email = u.Email
	}

	c.Response().Header().Set(echo.HeaderContentType, "application/pdf")
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=\"analitik-%s.pdf\"", f.Range))
	c.Response().WriteHeader(http.StatusOK)
	return report.Write(c.Response(), report.Analytics{
		Email:       email,
		GeneratedAt: time.Now(),
		Dashboard:   *analytics,
		Trends:      trends,
	})
}

func (h *Handler) SyncProducts(c echo.Context) error {
	n := h.actions.SyncProducts(c.Request().Context(), viewer(c))
	return h.redirect(c, "/products", n)
}

func (h *Handler) GeneratePost(c echo.Context) error {
	productID := c.FormValue("product_id")
	if productID == "" {
		return h.redirect(c, "/posts", session.Error("Ürün seçilmedi"))
	}
	n := h.actions.GeneratePost(c.Request().Context(), viewer(c), productID, c.FormValue("platform"))
	return h.redirect(c, "/posts", n)
}

func (h *Handler) PublishPost(c echo.Context) error {
	n := h.actions.PublishPost(c.Request().Context(), viewer(c), c.Param("id"))
	return h.redirect(c, "/posts", n)
}

func (h *Handler) DeleteConfirm(c echo.Context) error {
	ctx := c.Request().Context()
	v := viewer(c)
	id := c.Param("id")

	posts, err := h.queries.Posts(ctx, v)
	if err != nil {
		slog.Error("failed to load posts", "error", err, "user_id", v.UserID)
		return echo.NewHTTPError(http.StatusBadGateway, loadFailed)
	}
	for _, p := range posts {
		if p.ID == id {
			return h.render(c, http.StatusOK, "Gönderiyi Sil", pages.DeleteConfirm(p))
		}
	}
	return echo.NewHTTPError(http.StatusNotFound, "Gönderi bulunamadı")
}

func (h *Handler) DeletePost(c echo.Context) error {
	id := c.Param("id")
	confirmed := c.FormValue("confirm") == "yes"

	n, err := h.actions.DeletePost(c.Request().Context(), viewer(c), id, confirmed)
	if errors.Is(err, ErrConfirmationRequired) {
		return c.Redirect(http.StatusSeeOther, "/posts/"+id+"/delete")
	}
	return h.redirect(c, "/posts", n)
}

func (h *Handler) LoginPage(c echo.Context) error {
	if _, ok := auth.GetSessionUser(c); ok {
		return c.Redirect(http.StatusFound, "/")
	}
	return h.render(c, http.StatusOK, "Giriş Yap", pages.Login(pages.LoginData{}))
}

func (h *Handler) Login(c echo.Context) error {
	ctx := c.Request().Context()
	form := LoginForm{
		Email:    strings.TrimSpace(c.FormValue("email")),
		Password: c.FormValue("password"),
	}
	if errs := form.Validate(); len(errs) > 0 {
		return h.render(c, http.StatusUnprocessableEntity, "Giriş Yap", pages.Login(pages.LoginData{Email: form.Email, Errors: errs}))
	}

	token, err := h.api.Login(ctx, form.Email, form.Password)
	if err != nil {
		slog.Warn("login failed", "error", err, "email", form.Email)
		n := session.Error("Giriş başarısız: " + failureDetail(err))
		return h.render(c, http.StatusUnauthorized, "Giriş Yap", pages.Login(pages.LoginData{Email: form.Email}), n)
	}

	user, err := h.api.WithToken(token.AccessToken).Me(ctx)
	if err != nil {
		slog.Error("failed to load user after login", "error", err, "email", form.Email)
		n := session.Error("Giriş başarısız: " + failureDetail(err))
		return h.render(c, http.StatusBadGateway, "Giriş Yap", pages.Login(pages.LoginData{Email: form.Email}), n)
	}

	err = h.sessions.CreateSession(c, &session.UserData{
		ID:       user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		Token:    token.AccessToken,
	})
	if err != nil {
		slog.Error("failed to create session", "error", err, "user_id", user.ID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Oturum oluşturulamadı")
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

// failureDetail is the API detail of err, or the error text when the
// request never got an answer.
func failureDetail(err error) string {
	if detail := apiclient.DetailOf(err); detail != "" {
		return detail
	}
	return err.Error()
}

func (h *Handler) RegisterPage(c echo.Context) error {
	return h.render(c, http.StatusOK, "Kayıt Ol", pages.Register(pages.RegisterData{}))
}

func (h *Handler) Register(c echo.Context) error {
	form := RegisterForm{
		FullName:        strings.TrimSpace(c.FormValue("full_name")),
		Email:           strings.TrimSpace(c.FormValue("email")),
		Password:        c.FormValue("password"),
		ConfirmPassword: c.FormValue("confirm_password"),
		Terms:           c.FormValue("terms") != "",
	}
	data := pages.RegisterData{FullName: form.FullName, Email: form.Email, Terms: form.Terms}

	if errs := form.Validate(); len(errs) > 0 {
		data.Errors = errs
		var toasts []session.Notification
		if errs["confirm_password"] == passwordMismatch {
			toasts = append(toasts, session.Error(passwordMismatch))
		}
		return h.render(c, http.StatusUnprocessableEntity, "Kayıt Ol", pages.Register(data), toasts...)
	}

	_, err := h.api.Register(c.Request().Context(), types.RegisterRequest{
		Email:    form.Email,
		FullName: form.FullName,
		Password: form.Password,
	})
	if err != nil {
		slog.Warn("registration failed", "error", err, "email", form.Email)
		msg := apiclient.DetailOf(err)
		if msg == "" {
			msg = "Kayıt başarısız"
		}
		return h.render(c, http.StatusBadRequest, "Kayıt Ol", pages.Register(data), session.Error(msg))
	}

	return h.redirect(c, "/login", session.Success("Hesabınız başarıyla oluşturuldu!"))
}

func (h *Handler) Logout(c echo.Context) error {
	if err := h.sessions.DestroySession(c); err != nil {
		slog.Error("failed to destroy session", "error", err)
	}
	return c.Redirect(http.StatusSeeOther, "/login")
}
