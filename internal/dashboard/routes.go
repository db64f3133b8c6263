package dashboard

import (
	"github.com/labstack/echo/v4"

	"github.com/loganlanou/dealerpost/internal/auth"
	"github.com/loganlanou/dealerpost/internal/middleware"
	"github.com/loganlanou/dealerpost/views/layout"
)

// Navigation is the fixed nav bar of every signed-in page.
var Navigation = []layout.NavItem{
	{Label: "Ana Sayfa", Href: "/"},
	{Label: "Ürünlerim", Href: "/products"},
	{Label: "Gönderilerim", Href: "/posts"},
	{Label: "Analitik", Href: "/analytics"},
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	site := e.Group("")
	site.Use(middleware.LoadSession(h.sessions))

	site.GET("/login", h.LoginPage)
	site.POST("/login", h.Login)
	site.GET("/register", h.RegisterPage)
	site.POST("/register", h.Register)
	site.POST("/logout", h.Logout)

	loggedIn := auth.RequireLogin()
	site.GET("/", h.Dashboard, loggedIn)
	site.GET("/products", h.Products, loggedIn)
	site.POST("/products/sync", h.SyncProducts, loggedIn)
	site.GET("/posts", h.Posts, loggedIn)
	site.POST("/posts/generate", h.GeneratePost, loggedIn)
	site.POST("/posts/:id/publish", h.PublishPost, loggedIn)
	site.GET("/posts/:id/delete", h.DeleteConfirm, loggedIn)
	site.POST("/posts/:id/delete", h.DeletePost, loggedIn)
	site.GET("/analytics", h.Analytics, loggedIn)
	site.GET("/analytics/report.pdf", h.Report, loggedIn)
}
