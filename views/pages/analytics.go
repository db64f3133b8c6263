package pages

import (
	"context"
	"io"
	"net/url"
	"sort"

	"github.com/a-h/templ"

	"github.com/loganlanou/dealerpost/views/helpers"
)

func Analytics(data AnalyticsData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := helpers.NewWriter(w)
		header(hw, "Analitik", "Gönderilerinizin performansını takip edin.")

		hw.Rawf("<form method=\"get\" action=\"/analytics\" class=\"%s mb-6 flex flex-col md:flex-row gap-3\">", cardClass)
		hw.Rawf("<select name=\"range\" class=\"%s md:w-48\">", inputClass)
		for _, r := range Ranges {
			option(hw, r, helpers.RangeLabel(r), r == data.Range)
		}
		hw.Rawf("</select><select name=\"platform\" class=\"%s md:w-48\">", inputClass)
		for _, p := range Platforms {
			option(hw, p, helpers.PlatformLabel(p), p == data.Platform)
		}
		hw.Rawf("</select><button type=\"submit\" class=\"%s\">Uygula</button>", buttonClass)
		report := "/analytics/report.pdf?" + url.Values{"range": {data.Range}, "platform": {data.Platform}}.Encode()
		hw.Rawf("<a href=\"%s\" class=\"%s self-center\">PDF raporu indir</a></form>", report, linkClass)

		if data.Err != "" {
			alert(hw, data.Err)
		}

		if a := data.Analytics; a != nil {
			hw.Raw("<div class=\"grid grid-cols-1 md:grid-cols-4 gap-4 mb-6\">")
			stat(hw, "Toplam Gönderi", helpers.FormatInt(a.TotalPosts))
			stat(hw, "Toplam Gösterim", helpers.FormatInt(a.TotalImpressions))
			stat(hw, "Toplam Etkileşim", helpers.FormatInt(a.TotalEngagement))
			stat(hw, "Etkileşim Oranı", helpers.FormatPercentage(a.EngagementRate))
			hw.Raw("</div>")

			hw.Raw("<div class=\"grid grid-cols-1 lg:grid-cols-2 gap-6 mb-6\">")
			hw.Rawf("<div class=\"%s\"><h2 class=\"text-lg font-semibold mb-4\">Platform Dağılımı</h2>", cardClass)
			if len(a.PlatformDistribution) == 0 {
				hw.Raw("<p class=\"text-sm text-gray-500\">Henüz gönderi yok.</p>")
			}
			for _, p := range a.PlatformDistribution {
				hw.Rawf("<div class=\"flex justify-between py-1 text-sm\"><span>%s</span><span class=\"font-medium\">%s</span></div>", helpers.PlatformLabel(p.Platform), helpers.FormatInt(p.Count))
			}
			hw.Raw("</div>")

			hw.Rawf("<div class=\"%s\"><h2 class=\"text-lg font-semibold mb-4\">En İyi Gönderiler</h2>", cardClass)
			if len(a.TopPerformingPosts) == 0 {
				hw.Raw("<p class=\"text-sm text-gray-500\">Henüz etkileşim verisi yok.</p>")
			}
			for _, p := range a.TopPerformingPosts {
				hw.Raw("<div class=\"py-2 border-b border-gray-100 last:border-0\">")
				hw.Rawf("<p class=\"text-sm text-gray-800\">%s</p>", helpers.Truncate(p.Content, 100))
				hw.Rawf("<p class=\"text-xs text-gray-500 mt-1\">%s · %s beğeni · %s paylaşım · %s</p>",
					helpers.PlatformLabel(p.Platform), helpers.FormatInt(p.Likes), helpers.FormatInt(p.Shares), helpers.FormatPercentage(p.EngagementRate))
				hw.Raw("</div>")
			}
			hw.Raw("</div></div>")
		}

		if t := data.Trends; t != nil {
			hw.Raw("<div class=\"grid grid-cols-1 lg:grid-cols-2 gap-6\">")
			hw.Rawf("<div class=\"%s\"><h2 class=\"text-lg font-semibold mb-4\">Trend Hashtagler</h2>", cardClass)
			for _, h := range t.TrendingHashtags {
				hw.Rawf("<div class=\"flex justify-between py-1 text-sm\"><span class=\"text-blue-600\">%s</span><span>%s tweet</span></div>", h.Hashtag, helpers.FormatInt(h.TweetCount))
			}
			hw.Raw("</div>")

			hw.Rawf("<div class=\"%s\"><h2 class=\"text-lg font-semibold mb-4\">Kategori Önerileri</h2>", cardClass)
			categories := make([]string, 0, len(t.CategorySuggestions))
			for c := range t.CategorySuggestions {
				categories = append(categories, c)
			}
			sort.Strings(categories)
			for _, c := range categories {
				hw.Rawf("<div class=\"py-1 text-sm\"><span class=\"font-medium\">%s:</span> ", c)
				for _, tag := range t.CategorySuggestions[c] {
					hw.Rawf("<span class=\"text-blue-600 mr-1\">%s</span>", tag)
				}
				hw.Raw("</div>")
			}
			hw.Raw("</div></div>")
		}
		return hw.Err()
	})
}
