package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/loganlanou/dealerpost/internal/types"
	"github.com/loganlanou/dealerpost/views/helpers"
)

func Posts(data PostsData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := helpers.NewWriter(w)
		header(hw, "Sosyal Medya Gönderilerim", "AI ile oluşturduğunuz gönderileri yönetin ve paylaşın.")

		if data.Err != "" {
			alert(hw, data.Err)
		}

		hw.Raw("<div class=\"grid grid-cols-1 md:grid-cols-4 gap-4 mb-6\">")
		stat(hw, "Toplam Gönderi", helpers.FormatInt(data.Stats.Total))
		stat(hw, "Yayınlanan", helpers.FormatInt(data.Stats.Published))
		stat(hw, "Taslak", helpers.FormatInt(data.Stats.Draft))
		stat(hw, "AI Üretimi", helpers.FormatInt(data.Stats.AIGenerated))
		hw.Raw("</div>")

		if len(data.Products) > 0 {
			hw.Rawf("<form method=\"post\" action=\"/posts/generate\" class=\"%s mb-6 flex flex-col md:flex-row gap-3\">", cardClass)
			hw.Rawf("<select name=\"product_id\" class=\"%s\">", inputClass)
			for _, p := range data.Products {
				option(hw, p.ASIN, p.Title, false)
			}
			hw.Rawf("</select><select name=\"platform\" class=\"%s md:w-48\">", inputClass)
			for _, platform := range Platforms[1:] {
				option(hw, platform, helpers.PlatformLabel(platform), platform == "twitter")
			}
			hw.Rawf("</select><button type=\"submit\" class=\"%s whitespace-nowrap\">Yeni Gönderi Oluştur</button></form>", buttonClass)
		}

		hw.Rawf("<form method=\"get\" action=\"/posts\" class=\"%s mb-6 flex flex-col md:flex-row gap-3\">", cardClass)
		hw.Rawf("<input type=\"search\" name=\"q\" value=\"%s\" placeholder=\"Gönderi ara...\" class=\"%s\">", data.Criteria.Term, inputClass)
		hw.Rawf("<select name=\"platform\" class=\"%s md:w-48\">", inputClass)
		for _, platform := range Platforms {
			option(hw, platform, helpers.PlatformLabel(platform), platform == data.Criteria.Category)
		}
		hw.Rawf("</select><button type=\"submit\" class=\"%s\">Filtrele</button></form>", buttonClass)

		if len(data.Posts) == 0 {
			if data.Criteria.Active() {
				empty(hw, "Arama kriterlerinize uygun gönderi bulunamadı.")
			} else {
				empty(hw, "Henüz gönderi yok. Ürünleriniz için AI destekli gönderiler oluşturun.")
			}
			return hw.Err()
		}

		hw.Raw("<div class=\"space-y-4\">")
		for _, p := range data.Posts {
			postCard(hw, p)
		}
		hw.Raw("</div>")
		return hw.Err()
	})
}

func postCard(hw *helpers.Writer, p types.Post) {
	hw.Rawf("<div class=\"%s\" data-post-id=\"%s\">", cardClass, p.ID)
	hw.Raw("<div class=\"flex items-center justify-between mb-3\"><div class=\"flex items-center gap-2\">")
	hw.Rawf("<span class=\"text-xs font-semibold rounded bg-gray-100 px-2 py-1\">%s</span>", helpers.PlatformLabel(p.Platform))
	if p.Posted {
		hw.Raw("<span class=\"text-xs rounded bg-green-100 text-green-800 px-2 py-1\">Yayınlandı</span>")
	} else {
		hw.Raw("<span class=\"text-xs rounded bg-orange-100 text-orange-800 px-2 py-1\">Taslak</span>")
	}
	if p.AIGenerated {
		hw.Raw("<span class=\"text-xs rounded bg-purple-100 text-purple-800 px-2 py-1\">AI</span>")
	}
	hw.Raw("</div>")
	if p.CreatedAt != nil {
		hw.Rawf("<span class=\"text-xs text-gray-500\">%s</span>", helpers.FormatDateTime(*p.CreatedAt))
	}
	hw.Raw("</div>")

	hw.Rawf("<p class=\"text-gray-800 whitespace-pre-line\">%s</p>", p.Content)

	hw.Raw("<div class=\"mt-4 flex items-center gap-4\">")
	if !p.Posted {
		hw.Rawf("<form method=\"post\" action=\"/posts/%s/publish\"><button type=\"submit\" class=\"%s\">Yayınla</button></form>", p.ID, buttonClass)
	}
	if p.PostURL != "" {
		hw.Rawf("<a href=\"%s\" target=\"_blank\" rel=\"noopener\" class=\"%s\">Gönderiyi görüntüle</a>", p.PostURL, linkClass)
	}
	hw.Rawf("<a href=\"/api/posts/%s/card.png\" class=\"%s\">Kart</a>", p.ID, linkClass)
	hw.Rawf("<a href=\"/posts/%s/delete\" class=\"text-sm text-red-600 hover:underline\">Sil</a>", p.ID)
	hw.Raw("</div></div>")
}

// DeleteConfirm asks before a post is deleted.
func DeleteConfirm(post types.Post) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := helpers.NewWriter(w)
		header(hw, "Gönderiyi Sil", "")
		hw.Rawf("<div class=\"%s max-w-xl\">", cardClass)
		hw.Raw("<p class=\"mb-4\">Bu gönderiyi silmek istediğinizden emin misiniz?</p>")
		hw.Rawf("<blockquote class=\"border-l-4 border-gray-200 pl-4 text-gray-600 mb-6\">%s</blockquote>", helpers.Truncate(post.Content, 280))
		hw.Rawf("<form method=\"post\" action=\"/posts/%s/delete\" class=\"flex gap-3\">", post.ID)
		hw.Raw("<input type=\"hidden\" name=\"confirm\" value=\"yes\">")
		hw.Raw("<button type=\"submit\" class=\"inline-flex items-center rounded-md bg-red-600 px-4 py-2 text-sm font-medium text-white hover:bg-red-700\">Sil</button>")
		hw.Rawf("<a href=\"/posts\" class=\"%s self-center\">Vazgeç</a>", linkClass)
		hw.Raw("</form></div>")
		return hw.Err()
	})
}
