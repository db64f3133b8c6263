package pages

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/loganlanou/dealerpost/views/helpers"
)

// Error renders a full-width error message for the given status code.
func Error(code int, msg string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := helpers.NewWriter(w)
		hw.Rawf("<div class=\"%s max-w-xl mx-auto text-center\">", cardClass)
		hw.Rawf("<p class=\"text-5xl font-bold text-gray-300\">%s</p>", strconv.Itoa(code))
		hw.Rawf("<p class=\"mt-4 text-gray-700\">%s</p>", msg)
		hw.Rawf("<a href=\"/\" class=\"%s mt-6 inline-block\">Ana sayfaya dön</a>", linkClass)
		hw.Raw("</div>")
		return hw.Err()
	})
}
