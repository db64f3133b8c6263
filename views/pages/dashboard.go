package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/loganlanou/dealerpost/views/helpers"
)

func Dashboard(data DashboardData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := helpers.NewWriter(w)
		header(hw, "Ana Sayfa", "Ürünlerinizin ve gönderilerinizin özeti.")
		if data.Err != "" {
			alert(hw, data.Err)
			return hw.Err()
		}

		hw.Raw("<div class=\"grid grid-cols-1 md:grid-cols-4 gap-4 mb-8\">")
		stat(hw, "Ürünler", helpers.FormatInt(data.ProductCount))
		if a := data.Analytics; a != nil {
			stat(hw, "Toplam Gönderi", helpers.FormatInt(a.TotalPosts))
			stat(hw, "Yayınlanan", helpers.FormatInt(a.PublishedPosts))
			stat(hw, "Etkileşim Oranı", helpers.FormatPercentage(a.EngagementRate))
		}
		hw.Raw("</div>")

		hw.Rawf("<div class=\"%s\"><h2 class=\"text-lg font-semibold mb-4\">Son Aktivite</h2>", cardClass)
		if data.Analytics == nil || len(data.Analytics.RecentActivity) == 0 {
			hw.Raw("<p class=\"text-gray-500 text-sm\">Son 30 günde gönderi yok.</p>")
		} else {
			hw.Raw("<ul class=\"divide-y divide-gray-100\">")
			for _, day := range data.Analytics.RecentActivity {
				hw.Rawf("<li class=\"py-2 flex justify-between text-sm\"><span>%s</span><span class=\"font-medium\">%s gönderi</span></li>", day.Date, helpers.FormatInt(day.Count))
			}
			hw.Raw("</ul>")
		}
		hw.Raw("</div>")

		hw.Raw("<div class=\"mt-6 flex space-x-3\">")
		hw.Rawf("<form method=\"post\" action=\"/products/sync\"><button type=\"submit\" class=\"%s\">Ürünleri Senkronize Et</button></form>", buttonClass)
		hw.Rawf("<a href=\"/posts\" class=\"%s self-center\">Gönderileri yönet</a>", linkClass)
		hw.Raw("</div>")
		return hw.Err()
	})
}
