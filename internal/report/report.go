package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/loganlanou/dealerpost/internal/social"
	"github.com/loganlanou/dealerpost/internal/types"
)

const fontFamily = "goregular"

// Analytics is the content of an analytics PDF report.
type Analytics struct {
	Email       string
	GeneratedAt time.Time
	Dashboard   types.DashboardAnalytics
	// Trends is optional.
	Trends *types.Trends
}

// Write renders the report as PDF to w.
func Write(w io.Writer, a Analytics) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Analitik Raporu", true)
	pdf.SetAuthor(a.Email, true)
	pdf.AddUTF8FontFromBytes(fontFamily, "", goregular.TTF)
	pdf.AddUTF8FontFromBytes(fontFamily, "B", gobold.TTF)
	pdf.SetMargins(18, 18, 18)
	pdf.AddPage()

	d := a.Dashboard

	pdf.SetFont(fontFamily, "B", 20)
	pdf.CellFormat(0, 12, "Analitik Raporu", "", 1, "L", false, 0, "")
	pdf.SetFont(fontFamily, "", 10)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 6, fmt.Sprintf("%s  |  Dönem: %s  |  Platform: %s", a.Email, rangeLabel(d.Range), platformLabel(d.Platform)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Oluşturulma: "+a.GeneratedAt.Format("02.01.2006 15:04"), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(6)

	section(pdf, "Özet")
	keyValues(pdf, [][2]string{
		{"Toplam gönderi", strconv.FormatInt(d.TotalPosts, 10)},
		{"Yayınlanan gönderi", strconv.FormatInt(d.PublishedPosts, 10)},
		{"Toplam gösterim", strconv.FormatInt(d.TotalImpressions, 10)},
		{"Toplam etkileşim", strconv.FormatInt(d.TotalEngagement, 10)},
		{"Etkileşim oranı", fmt.Sprintf("%%%.1f", d.EngagementRate)},
	})

	section(pdf, "Platform dağılımı")
	if len(d.PlatformDistribution) == 0 {
		note(pdf, "Henüz gönderi yok")
	} else {
		rows := make([][]string, 0, len(d.PlatformDistribution))
		for _, p := range d.PlatformDistribution {
			rows = append(rows, []string{platformLabel(p.Platform), strconv.FormatInt(p.Count, 10)})
		}
		table(pdf, []string{"Platform", "Gönderi"}, []float64{120, 54}, rows)
	}

	section(pdf, "En iyi gönderiler")
	if len(d.TopPerformingPosts) == 0 {
		note(pdf, "Henüz etkileşim verisi yok")
	} else {
		rows := make([][]string, 0, len(d.TopPerformingPosts))
		for _, p := range d.TopPerformingPosts {
			rows = append(rows, []string{
				social.Truncate(p.Content, 60),
				platformLabel(p.Platform),
				strconv.FormatInt(p.Likes, 10),
				strconv.FormatInt(p.Shares, 10),
				fmt.Sprintf("%%%.1f", p.EngagementRate),
			})
		}
		table(pdf, []string{"İçerik", "Platform", "Beğeni", "Paylaşım", "Oran"}, []float64{94, 26, 18, 18, 18}, rows)
	}

	section(pdf, "Son aktivite")
	if len(d.RecentActivity) == 0 {
		note(pdf, "Bu dönemde aktivite yok")
	} else {
		rows := make([][]string, 0, len(d.RecentActivity))
		for _, day := range d.RecentActivity {
			rows = append(rows, []string{day.Date, strconv.FormatInt(day.Count, 10)})
		}
		table(pdf, []string{"Tarih", "Gönderi"}, []float64{120, 54}, rows)
	}

	if a.Trends != nil && len(a.Trends.TrendingHashtags) > 0 {
		section(pdf, "Trend hashtagler")
		rows := make([][]string, 0, len(a.Trends.TrendingHashtags))
		for _, h := range a.Trends.TrendingHashtags {
			rows = append(rows, []string{h.Hashtag, strconv.FormatInt(h.TweetCount, 10), strconv.Itoa(h.TrendScore)})
		}
		table(pdf, []string{"Hashtag", "Tweet", "Skor"}, []float64{100, 37, 37}, rows)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write PDF: %w", err)
	}
	return nil
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.Ln(4)
	pdf.SetFont(fontFamily, "B", 14)
	pdf.CellFormat(0, 9, title, "B", 1, "L", false, 0, "")
	pdf.Ln(2)
}

func note(pdf *gofpdf.Fpdf, text string) {
	pdf.SetFont(fontFamily, "", 10)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 7, text, "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

func keyValues(pdf *gofpdf.Fpdf, kv [][2]string) {
	for _, pair := range kv {
		pdf.SetFont(fontFamily, "", 11)
		pdf.CellFormat(70, 7, pair[0], "", 0, "L", false, 0, "")
		pdf.SetFont(fontFamily, "B", 11)
		pdf.CellFormat(0, 7, pair[1], "", 1, "L", false, 0, "")
	}
}

func table(pdf *gofpdf.Fpdf, header []string, widths []float64, rows [][]string) {
	pdf.SetFont(fontFamily, "B", 10)
	pdf.SetFillColor(235, 238, 245)
	for i, h := range header {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont(fontFamily, "", 10)
	for _, row := range rows {
		for i, cell := range row {
			pdf.CellFormat(widths[i], 7, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
}

func rangeLabel(r string) string {
	switch r {
	case "7d":
		return "Son 7 gün"
	case "30d", "":
		return "Son 30 gün"
	case "90d":
		return "Son 90 gün"
	case "1y":
		return "Son 1 yıl"
	default:
		return r
	}
}

func platformLabel(p string) string {
	switch p {
	case "", "all":
		return "Tümü"
	case string(social.PlatformTwitter):
		return "Twitter"
	case string(social.PlatformInstagram):
		return "Instagram"
	case string(social.PlatformTikTok):
		return "TikTok"
	default:
		return p
	}
}
