package layout

import (
	"github.com/labstack/echo/v4"

	"github.com/loganlanou/dealerpost/internal/auth"
	"github.com/loganlanou/dealerpost/internal/session"
)

const siteName = "Dealer Post"

// PageMeta contains the per-request data the layout needs.
type PageMeta struct {
	Title       string
	Description string
	// ActivePath is the nav entry to highlight.
	ActivePath string
	Auth       *auth.Context
	Toasts     []session.Notification
}

// NewPageMeta creates a PageMeta with site-wide defaults for the request.
func NewPageMeta(c echo.Context, title string) PageMeta {
	return PageMeta{
		Title:       title,
		Description: "Amazon satıcıları için yapay zeka destekli sosyal medya paneli",
		ActivePath:  c.Path(),
		Auth:        auth.GetAuthContext(c),
	}
}

// WithToasts attaches one-shot notifications to the page.
func (m PageMeta) WithToasts(toasts []session.Notification) PageMeta {
	m.Toasts = toasts
	return m
}

// FullTitle is the document title.
func (m PageMeta) FullTitle() string {
	if m.Title == "" {
		return siteName
	}
	return m.Title + " | " + siteName
}
