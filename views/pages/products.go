package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/loganlanou/dealerpost/internal/filter"
	"github.com/loganlanou/dealerpost/views/helpers"
)

func Products(data ProductsData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := helpers.NewWriter(w)
		hw.Raw("<div class=\"flex flex-col md:flex-row md:items-center md:justify-between\">")
		header(hw, "Ürünlerim", "Amazon mağazanızdaki ürünleri görüntüleyin.")
		hw.Rawf("<form method=\"post\" action=\"/products/sync\"><button type=\"submit\" class=\"%s\">Senkronize Et</button></form>", buttonClass)
		hw.Raw("</div>")

		if data.Err != "" {
			alert(hw, data.Err)
		}

		hw.Raw("<div class=\"grid grid-cols-1 md:grid-cols-2 gap-4 mb-6\">")
		stat(hw, "Toplam Ürün", helpers.FormatInt(data.Total))
		stat(hw, "Gösterilen", helpers.FormatInt(len(data.Products)))
		hw.Raw("</div>")

		hw.Rawf("<form method=\"get\" action=\"/products\" class=\"%s mb-6 flex flex-col md:flex-row gap-3\">", cardClass)
		hw.Rawf("<input type=\"search\" name=\"q\" value=\"%s\" placeholder=\"Ürün ara...\" class=\"%s\">", data.Criteria.Term, inputClass)
		hw.Rawf("<select name=\"category\" class=\"%s md:w-56\">", inputClass)
		option(hw, filter.All, "Tüm Kategoriler", data.Criteria.Category == filter.All)
		for _, cat := range data.Categories {
			option(hw, cat, cat, data.Criteria.Category == cat)
		}
		hw.Rawf("</select><button type=\"submit\" class=\"%s\">Filtrele</button></form>", buttonClass)

		if len(data.Products) == 0 {
			if data.Criteria.Active() {
				empty(hw, "Arama kriterlerinize uygun ürün bulunamadı.")
			} else {
				empty(hw, "Henüz ürün yok. Amazon mağazanızı senkronize ederek başlayın.")
			}
			return hw.Err()
		}

		hw.Raw("<div class=\"grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-6\">")
		for _, p := range data.Products {
			hw.Rawf("<div class=\"%s\" data-asin=\"%s\">", cardClass, p.ASIN)
			if len(p.ImageURLs) > 0 {
				hw.Rawf("<img src=\"%s\" alt=\"%s\" class=\"w-full h-48 object-cover rounded mb-4\">", p.ImageURLs[0], p.Title)
			}
			hw.Rawf("<h3 class=\"font-semibold text-gray-900\">%s</h3>", p.Title)
			hw.Rawf("<p class=\"text-sm text-gray-600 mt-1\">%s</p>", helpers.Truncate(p.Description, 120))
			hw.Rawf("<div class=\"mt-4 flex items-center justify-between\"><span class=\"text-lg font-bold\">%s</span><span class=\"text-xs rounded bg-gray-100 px-2 py-1\">%s</span></div>",
				helpers.FormatPrice(p.Price, p.Currency), p.Category)
			hw.Raw("<form method=\"post\" action=\"/posts/generate\" class=\"mt-4 flex gap-2\">")
			hw.Rawf("<input type=\"hidden\" name=\"product_id\" value=\"%s\">", p.ASIN)
			hw.Rawf("<select name=\"platform\" class=\"%s\">", inputClass)
			for _, platform := range Platforms[1:] {
				option(hw, platform, helpers.PlatformLabel(platform), platform == "twitter")
			}
			hw.Rawf("</select><button type=\"submit\" class=\"%s whitespace-nowrap\">Gönderi Oluştur</button></form>", buttonClass)
			hw.Raw("</div>")
		}
		hw.Raw("</div>")
		return hw.Err()
	})
}
