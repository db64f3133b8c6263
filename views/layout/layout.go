package layout

import (
	"context"
	"io"

	twmerge "github.com/Oudwins/tailwind-merge-go"
	"github.com/a-h/templ"

	"github.com/loganlanou/dealerpost/internal/session"
	"github.com/loganlanou/dealerpost/views/helpers"
)

// NavItem is one entry of the navigation bar.
type NavItem struct {
	Label string
	Href  string
}

const (
	navLinkClass   = "px-3 py-2 rounded-md text-sm font-medium text-gray-600 hover:text-gray-900 hover:bg-gray-100"
	navActiveClass = "text-blue-700 bg-blue-50 hover:bg-blue-50 hover:text-blue-700"
	toastClass     = "rounded-md px-4 py-3 text-sm shadow"
)

// NavLinkClass returns the classes for a nav link.
func NavLinkClass(active bool) string {
	if active {
		return twmerge.Merge(navLinkClass, navActiveClass)
	}
	return navLinkClass
}

// ToastClass returns the classes for a notification toast.
func ToastClass(kind session.NotificationKind) string {
	if kind == session.NotificationError {
		return twmerge.Merge(toastClass, "bg-red-50 text-red-800")
	}
	return twmerge.Merge(toastClass, "bg-green-50 text-green-800")
}

// IsActive reports whether href is the highlighted entry for path.
func IsActive(href, path string) bool {
	if href == "/" {
		return path == "/"
	}
	return path == href || len(path) > len(href) && path[:len(href)+1] == href+"/"
}

// Base wraps body in the document shell: head, nav bar and toasts.
func Base(meta PageMeta, nav []NavItem, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := helpers.NewWriter(w)
		hw.Raw("<!DOCTYPE html>\n<html lang=\"tr\"><head><meta charset=\"utf-8\">")
		hw.Raw("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">")
		hw.Rawf("<title>%s</title>", meta.FullTitle())
		hw.Rawf("<meta name=\"description\" content=\"%s\">", meta.Description)
		hw.Raw("<script src=\"https://cdn.tailwindcss.com\"></script></head>")
		hw.Raw("<body class=\"bg-gray-50 min-h-screen\">")

		hw.Raw("<nav class=\"bg-white border-b border-gray-200\"><div class=\"max-w-7xl mx-auto px-4 flex h-16 items-center justify-between\">")
		hw.Rawf("<a href=\"/\" class=\"text-lg font-bold text-gray-900\">%s</a>", siteName)
		if meta.Auth != nil && meta.Auth.IsAuthenticated {
			hw.Raw("<div class=\"flex space-x-2\">")
			for _, item := range nav {
				hw.Rawf("<a href=\"%s\" class=\"%s\">%s</a>", item.Href, NavLinkClass(IsActive(item.Href, meta.ActivePath)), item.Label)
			}
			hw.Raw("</div><div class=\"flex items-center space-x-3\">")
			hw.Rawf("<span class=\"text-sm text-gray-600\">%s</span>", meta.Auth.User.FullName)
			hw.Raw("<form method=\"post\" action=\"/logout\"><button type=\"submit\" class=\"text-sm text-gray-500 hover:text-gray-900\">Çıkış</button></form></div>")
		} else {
			hw.Raw("<div class=\"flex space-x-2\"><a href=\"/login\" class=\"" + navLinkClass + "\">Giriş</a>")
			hw.Raw("<a href=\"/register\" class=\"" + navLinkClass + "\">Kayıt Ol</a></div>")
		}
		hw.Raw("</div></nav>")

		if len(meta.Toasts) > 0 {
			hw.Raw("<div id=\"toasts\" class=\"fixed top-20 right-4 space-y-2 z-50\">")
			for _, t := range meta.Toasts {
				hw.Rawf("<div role=\"status\" class=\"%s\">%s</div>", ToastClass(t.Kind), t.Message)
			}
			hw.Raw("</div>")
		}

		hw.Raw("<main class=\"max-w-7xl mx-auto px-4 py-8\">")
		hw.Component(ctx, body)
		hw.Raw("</main></body></html>")
		return hw.Err()
	})
}
