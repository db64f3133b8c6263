package social

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func phone() ProductData {
	return ProductData{
		ASIN:        "B0PHONE01",
		Title:       "Akıllı Telefon X",
		Description: "6.1 inç OLED ekran, 128 GB depolama",
		Price:       12999.9,
		Currency:    "TRY",
		Category:    "Elektronik",
		Brand:       "Acme",
	}
}

func TestLimit(t *testing.T) {
	assert.Equal(t, 280, Limit(PlatformTwitter))
	assert.Equal(t, 2200, Limit(PlatformInstagram))
	assert.Equal(t, 150, Limit(PlatformTikTok))
	assert.Equal(t, 280, Limit(Platform("myspace")))
}

func TestParsePlatform(t *testing.T) {
	p, ok := ParsePlatform("tiktok")
	assert.True(t, ok)
	assert.Equal(t, PlatformTikTok, p)

	_, ok = ParsePlatform("facebook")
	assert.False(t, ok)
	_, ok = ParsePlatform("Twitter")
	assert.False(t, ok)
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		text string
		max  int
		want string
	}{
		{"short text untouched", "merhaba", 10, "merhaba"},
		{"exact length untouched", "çğıöşü", 6, "çğıöşü"},
		{"cut by runes", "ğğğğğğğğğğ", 6, "ğğğ..."},
		{"tiny max", "abcdef", 2, "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.text, tt.max))
		})
	}
}

func TestDraft_RespectsPlatformLimits(t *testing.T) {
	p := phone()
	p.Title = strings.Repeat("Çok uzun başlık ", 40)
	p.Description = strings.Repeat("açıklama ", 500)

	for _, platform := range AllPlatforms {
		for _, style := range AllStyles {
			t.Run(string(platform)+"/"+string(style), func(t *testing.T) {
				got := Draft(p, platform, style)
				assert.LessOrEqual(t, utf8.RuneCountInString(got), Limit(platform))
				assert.NotEmpty(t, got)
			})
		}
	}
}

func TestDraft_IsDeterministicAndStyled(t *testing.T) {
	p := phone()

	a := Draft(p, PlatformTwitter, StylePromotional)
	b := Draft(p, PlatformTwitter, StylePromotional)
	assert.Equal(t, a, b)

	assert.Contains(t, a, "Akıllı Telefon X")
	assert.Contains(t, a, "12999.90 TRY")
	assert.Contains(t, a, "#teknoloji")
	assert.NotEqual(t, a, Draft(p, PlatformTwitter, StyleInformative))
}

func TestFallback(t *testing.T) {
	assert.Equal(t,
		"🛍️ Akıllı Telefon X - Amazon'da şimdi 12999.90 TRY! #Amazon #Alışveriş #İndirim",
		Fallback(phone()),
	)
	assert.True(t, strings.HasPrefix(Fallback(ProductData{}), "🛍️ Harika ürün"))
}

func TestHashtags(t *testing.T) {
	got := Hashtags(phone(), 6)
	assert.Equal(t, []string{"#teknoloji", "#gadget", "#elektronik", "#innovation", "#Elektronik", "#Amazon"}, got)

	got = Hashtags(ProductData{Category: "Ev & Yaşam"}, 20)
	assert.Contains(t, got, "#EvYaşam")
	assert.Contains(t, got, "#Fırsat")
}

func TestShareURL(t *testing.T) {
	assert.Equal(t, "https://twitter.com/intent/tweet?text=merhaba+d%C3%BCnya", ShareURL(PlatformTwitter, "merhaba dünya"))
	assert.Empty(t, ShareURL(PlatformInstagram, "x"))
}
