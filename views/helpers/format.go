package helpers

import (
	"fmt"
	"strconv"
	"time"

	"github.com/loganlanou/dealerpost/internal/social"
)

// FormatInt formats an integer as a string
func FormatInt[T ~int | ~int64](n T) string {
	return strconv.FormatInt(int64(n), 10)
}

// FormatPrice formats a decimal amount with its currency (e.g. "299.99 TRY")
func FormatPrice(price float64, currency string) string {
	return social.FormatPrice(price, currency)
}

// FormatPercentage formats a rate with one decimal (e.g. 4.5 -> "%4.5")
func FormatPercentage(rate float64) string {
	return fmt.Sprintf("%%%.1f", rate)
}

// FormatDate formats a time.Time as "02.01.2006"
func FormatDate(t time.Time) string {
	return t.Format("02.01.2006")
}

// FormatDateTime formats a time.Time as "02.01.2006 15:04"
func FormatDateTime(t time.Time) string {
	return t.Format("02.01.2006 15:04")
}

// PlatformLabel is the display name of a platform value.
func PlatformLabel(p string) string {
	switch p {
	case "all", "":
		return "Tüm Platformlar"
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

// RangeLabel is the display name of an analytics range value.
func RangeLabel(r string) string {
	switch r {
	case "7d":
		return "Son 7 gün"
	case "90d":
		return "Son 90 gün"
	case "1y":
		return "Son 1 yıl"
	default:
		return "Son 30 gün"
	}
}

// Truncate shortens text to max runes, ending with "...".
func Truncate(text string, max int) string {
	return social.Truncate(text, max)
}
