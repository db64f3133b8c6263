package postcard

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	qrcode "github.com/skip2/go-qrcode"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/loganlanou/dealerpost/internal/social"
)

const (
	Width  = 1200
	Height = 630

	padding  = 60
	qrSize   = 180
	maxLines = 6
)

// Card is the data printed on a post share card.
type Card struct {
	Content      string
	Platform     social.Platform
	ProductTitle string
	// Link is encoded as a QR code. Empty means no QR code.
	Link   string
	Posted bool
}

var platformColors = map[social.Platform][3]float64{
	social.PlatformTwitter:   {0.11, 0.63, 0.95},
	social.PlatformInstagram: {0.76, 0.21, 0.52},
	social.PlatformTikTok:    {0.0, 0.0, 0.0},
}

// Render draws the card and writes it to w as PNG
func Render(w io.Writer, card Card) error {
	img, err := Draw(card)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode PNG: %w", err)
	}
	return nil
}

// Draw builds the card image.
func Draw(card Card) (image.Image, error) {
	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse bold font: %w", err)
	}

	dc := gg.NewContext(Width, Height)
	dc.SetRGB(0.97, 0.97, 0.98)
	dc.Clear()

	// Platform stripe
	rgb, ok := platformColors[card.Platform]
	if !ok {
		rgb = [3]float64{0.3, 0.3, 0.3}
	}
	dc.SetRGB(rgb[0], rgb[1], rgb[2])
	dc.DrawRectangle(0, 0, Width, 90)
	dc.Fill()

	dc.SetRGB(1, 1, 1)
	dc.SetFontFace(newFace(bold, 40))
	dc.DrawStringAnchored(platformLabel(card.Platform), padding, 45, 0, 0.5)

	status := "Taslak"
	if card.Posted {
		status = "Yayınlandı"
	}
	dc.SetFontFace(newFace(regular, 28))
	dc.DrawStringAnchored(status, Width-padding, 45, 1, 0.5)

	textWidth := float64(Width - 2*padding)
	if card.Link != "" {
		textWidth -= qrSize + padding
	}

	y := 150.0
	if card.ProductTitle != "" {
		dc.SetRGB(0.15, 0.15, 0.2)
		dc.SetFontFace(newFace(bold, 34))
		dc.DrawString(social.Truncate(card.ProductTitle, 50), padding, y)
		y += 60
	}

	dc.SetRGB(0.2, 0.2, 0.25)
	dc.SetFontFace(newFace(regular, 30))
	for _, line := range wrap(dc, card.Content, textWidth) {
		dc.DrawString(line, padding, y)
		y += 42
	}

	if card.Link != "" {
		qr, err := qrcode.New(card.Link, qrcode.Medium)
		if err != nil {
			return nil, fmt.Errorf("generate QR code: %w", err)
		}
		qrX := Width - padding - qrSize
		qrY := Height - padding - qrSize
		dc.SetRGB(1, 1, 1)
		dc.DrawRectangle(float64(qrX-10), float64(qrY-10), qrSize+20, qrSize+20)
		dc.Fill()
		dc.DrawImage(qr.Image(qrSize), qrX, qrY)
	}

	slog.Debug("rendered post card", "platform", card.Platform, "posted", card.Posted)
	return dc.Image(), nil
}

func newFace(f *truetype.Font, size float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{Size: size, Hinting: font.HintingFull})
}

// wrap splits text into at most maxLines lines that fit width. Overflow is
// marked with "..." on the last line.
func wrap(dc *gg.Context, text string, width float64) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		if strings.TrimSpace(para) == "" {
			continue
		}
		lines = append(lines, dc.WordWrap(para, width)...)
	}
	if len(lines) > maxLines {
		lines = lines[:maxLines]
		lines[maxLines-1] = strings.TrimRight(lines[maxLines-1], " ") + "..."
	}
	return lines
}

func platformLabel(p social.Platform) string {
	switch p {
	case social.PlatformTwitter:
		return "Twitter / X"
	case social.PlatformInstagram:
		return "Instagram"
	case social.PlatformTikTok:
		return "TikTok"
	default:
		return string(p)
	}
}
