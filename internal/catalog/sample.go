package catalog

import "context"

// SampleSource serves a fixed catalog. It stands in for the marketplace when
// the seller has not connected an account.
type SampleSource struct{}

func (SampleSource) Products(ctx context.Context, _ Credentials) ([]Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	items := make([]Item, len(sampleItems))
	for i, it := range sampleItems {
		it.ImageURLs = append([]string(nil), it.ImageURLs...)
		items[i] = it
	}
	return items, nil
}

var sampleItems = []Item{
	{
		ASIN:        "B08N5WRWNW",
		Title:       "Örnek Ürün 1",
		Description: "Bu bir örnek ürün açıklamasıdır.",
		Price:       299.99,
		Currency:    "TRY",
		ImageURLs:   []string{"https://example.com/image1.jpg"},
		Category:    "Elektronik",
		Brand:       "Örnek Marka",
	},
	{
		ASIN:        "B09G9FPHY6",
		Title:       "Kablosuz Kulaklık Pro",
		Description: "Aktif gürültü engelleme, 30 saat pil ömrü.",
		Price:       1499.90,
		Currency:    "TRY",
		ImageURLs:   []string{"https://example.com/kulaklik.jpg"},
		Category:    "Elektronik",
		Brand:       "Sesli",
	},
	{
		ASIN:        "B07XJ8C8F5",
		Title:       "Pamuklu Basic Tişört",
		Description: "Yüzde yüz pamuk, rahat kesim.",
		Price:       189.50,
		Currency:    "TRY",
		ImageURLs:   []string{"https://example.com/tisort.jpg"},
		Category:    "Giyim",
		Brand:       "Moda Evi",
	},
	{
		ASIN:        "B0B7BP6CJN",
		Title:       "Seramik Kahve Kupası Seti",
		Description: "Dört parça, bulaşık makinesinde yıkanabilir.",
		Price:       349.00,
		Currency:    "TRY",
		ImageURLs:   []string{"https://example.com/kupa.jpg"},
		Category:    "Ev & Yaşam",
		Brand:       "Atölye",
	},
	{
		ASIN:        "B0C1234XYZ",
		Title:       "Kürk Mantolu Madonna",
		Description: "Sabahattin Ali'nin klasik romanı.",
		Price:       79.90,
		Currency:    "TRY",
		ImageURLs:   []string{"https://example.com/kitap.jpg"},
		Category:    "Kitap",
		Brand:       "YKY",
	},
}
