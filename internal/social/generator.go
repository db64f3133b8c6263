package social

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

type Platform string

const (
	PlatformTwitter   Platform = "twitter"
	PlatformInstagram Platform = "instagram"
	PlatformTikTok    Platform = "tiktok"
)

var AllPlatforms = []Platform{
	PlatformTwitter,
	PlatformInstagram,
	PlatformTikTok,
}

// ParsePlatform accepts only the closed platform set.
func ParsePlatform(s string) (Platform, bool) {
	for _, p := range AllPlatforms {
		if string(p) == s {
			return p, true
		}
	}
	return "", false
}

// Style selects the tone of a draft.
type Style string

const (
	StyleEngaging    Style = "engaging"
	StyleInformative Style = "informative"
	StylePromotional Style = "promotional"
)

var AllStyles = []Style{StyleEngaging, StyleInformative, StylePromotional}

type ProductData struct {
	ASIN        string
	Title       string
	Description string
	Price       float64
	Currency    string
	Category    string
	Brand       string
}

type platformConfig struct {
	maxChars int
	tone     string
}

var platformConfigs = map[Platform]platformConfig{
	PlatformTwitter:   {maxChars: 280, tone: "kısa ve çarpıcı"},
	PlatformInstagram: {maxChars: 2200, tone: "görsel odaklı"},
	PlatformTikTok:    {maxChars: 150, tone: "trend ve eğlenceli"},
}

// Limit is the character limit of a platform. Unknown platforms get the
// twitter limit.
func Limit(p Platform) int {
	if cfg, ok := platformConfigs[p]; ok {
		return cfg.maxChars
	}
	return platformConfigs[PlatformTwitter].maxChars
}

// Tone is the Turkish phrase describing how posts on p should read.
func Tone(p Platform) string {
	if cfg, ok := platformConfigs[p]; ok {
		return cfg.tone
	}
	return platformConfigs[PlatformTwitter].tone
}

// CategoryHashtags maps a category to its suggested hashtags.
var CategoryHashtags = map[string][]string{
	"Elektronik": {"#teknoloji", "#gadget", "#elektronik", "#innovation"},
	"Giyim":      {"#moda", "#stil", "#trend", "#fashion"},
	"Ev & Yaşam": {"#ev", "#dekorasyon", "#yaşam", "#home"},
	"Kitap":      {"#kitap", "#okuma", "#edebiyat", "#book"},
}

// Draft builds a template post for a product. The result never exceeds
// the platform limit.
func Draft(product ProductData, platform Platform, style Style) string {
	var body string
	switch platform {
	case PlatformInstagram:
		body = instagramDraft(product, style)
	case PlatformTikTok:
		body = tiktokDraft(product, style)
	default:
		body = twitterDraft(product, style)
	}
	return Truncate(body, Limit(platform))
}

// Fallback is the single line used when nothing better can be produced.
func Fallback(product ProductData) string {
	title := product.Title
	if title == "" {
		title = "Harika ürün"
	}
	return fmt.Sprintf("🛍️ %s - Amazon'da şimdi %s! #Amazon #Alışveriş #İndirim", title, FormatPrice(product.Price, product.Currency))
}

func hook(style Style) string {
	switch style {
	case StyleInformative:
		return "📋 Ürün bilgisi:"
	case StylePromotional:
		return "🔥 Kaçırılmayacak fırsat!"
	default:
		return "✨ Bunu görmelisiniz!"
	}
}

func cta(style Style) string {
	switch style {
	case StyleInformative:
		return "Detaylar Amazon'da 👉"
	case StylePromotional:
		return "Stoklar tükenmeden hemen al! 🛒"
	default:
		return "Sen de dene, Amazon'da seni bekliyor! 🛒"
	}
}

func twitterDraft(product ProductData, style Style) string {
	return fmt.Sprintf("%s %s\n%s\n\n%s\n%s",
		hook(style),
		product.Title,
		FormatPrice(product.Price, product.Currency),
		cta(style),
		strings.Join(Hashtags(product, 3), " "),
	)
}

func instagramDraft(product ProductData, style Style) string {
	brand := ""
	if product.Brand != "" {
		brand = fmt.Sprintf("\n🏷️ Marka: %s", product.Brand)
	}

	description := product.Description
	if description == "" {
		description = product.Title
	}

	return fmt.Sprintf(`%s %s
💵 %s%s

%s

📦 Amazon'da satışta
%s

%s`,
		hook(style),
		product.Title,
		FormatPrice(product.Price, product.Currency),
		brand,
		Truncate(description, 400),
		cta(style),
		strings.Join(Hashtags(product, 10), " "),
	)
}

func tiktokDraft(product ProductData, style Style) string {
	return fmt.Sprintf("%s %s %s %s",
		hook(style),
		product.Title,
		FormatPrice(product.Price, product.Currency),
		strings.Join(Hashtags(product, 2), " "),
	)
}

// Hashtags returns up to max tags: the category suggestions first, then the
// generic marketplace tags.
func Hashtags(product ProductData, max int) []string {
	tags := make([]string, 0, max)
	seen := make(map[string]bool)
	add := func(tag string) {
		if len(tags) >= max || seen[tag] {
			return
		}
		seen[tag] = true
		tags = append(tags, tag)
	}

	for _, tag := range CategoryHashtags[product.Category] {
		add(tag)
	}
	if product.Category != "" {
		add("#" + strings.NewReplacer(" ", "", "&", "").Replace(product.Category))
	}
	for _, tag := range []string{"#Amazon", "#Alışveriş", "#İndirim", "#Fırsat"} {
		add(tag)
	}
	return tags
}

// ShareURL returns a web intent link for platforms that have one.
func ShareURL(platform Platform, text string) string {
	if platform == PlatformTwitter {
		return "https://twitter.com/intent/tweet?text=" + url.QueryEscape(text)
	}
	return ""
}

func FormatPrice(price float64, currency string) string {
	if currency == "" {
		currency = "TRY"
	}
	return fmt.Sprintf("%.2f %s", price, currency)
}

// Truncate cuts text to at most max runes, ending cut text with "...".
func Truncate(text string, max int) string {
	if utf8.RuneCountInString(text) <= max {
		return text
	}
	if max <= 3 {
		return string([]rune(text)[:max])
	}
	runes := []rune(text)
	return string(runes[:max-3]) + "..."
}
