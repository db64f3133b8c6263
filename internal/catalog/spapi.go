package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultLWATokenURL = "https://api.amazon.com/auth/o2/token"
	// Europe region endpoint, which serves the Turkish marketplace.
	DefaultSPAPIEndpoint = "https://sellingpartnerapi-eu.amazon.com"
	TurkeyMarketplaceID  = "A33AVAJ2PDY3EV"

	pageSize = 20
	maxPages = 50
)

// SPAPISource reads the seller's listings through the Selling Partner API.
type SPAPISource struct {
	tokenURL      string
	endpoint      string
	marketplaceID string
	httpClient    *http.Client
}

func NewSPAPISource(tokenURL, endpoint string) *SPAPISource {
	if tokenURL == "" {
		tokenURL = DefaultLWATokenURL
	}
	if endpoint == "" {
		endpoint = DefaultSPAPIEndpoint
	}
	return &SPAPISource{
		tokenURL:      tokenURL,
		endpoint:      strings.TrimSuffix(endpoint, "/"),
		marketplaceID: TurkeyMarketplaceID,
		httpClient:    &http.Client{Timeout: 60 * time.Second},
	}
}

type lwaTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type listingsResponse struct {
	NumberOfResults int `json:"numberOfResults"`
	Pagination      struct {
		NextToken string `json:"nextToken"`
	} `json:"pagination"`
	Items []listingItem `json:"items"`
}

type listingItem struct {
	SKU       string           `json:"sku"`
	Summaries []listingSummary `json:"summaries"`
	Offers    []listingOffer   `json:"offers"`
}

type listingSummary struct {
	MarketplaceID string `json:"marketplaceId"`
	ASIN          string `json:"asin"`
	ProductType   string `json:"productType"`
	ItemName      string `json:"itemName"`
	MainImage     *struct {
		Link string `json:"link"`
	} `json:"mainImage"`
}

type listingOffer struct {
	MarketplaceID string `json:"marketplaceId"`
	OfferType     string `json:"offerType"`
	Price         struct {
		CurrencyCode string  `json:"currencyCode"`
		Amount       decimal `json:"amount"`
	} `json:"price"`
}

// decimal accepts both JSON numbers and numeric strings.
type decimal float64

func (d *decimal) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*d = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("parse amount %q: %w", s, err)
	}
	*d = decimal(f)
	return nil
}

func (s *SPAPISource) Products(ctx context.Context, creds Credentials) ([]Item, error) {
	if !creds.Connected() {
		return nil, ErrNotConnected
	}

	token, err := s.accessToken(ctx, creds)
	if err != nil {
		return nil, fmt.Errorf("exchange refresh token: %w", err)
	}

	var items []Item
	pageToken := ""
	for page := 0; page < maxPages; page++ {
		resp, err := s.searchListings(ctx, token, creds.SellerID, pageToken)
		if err != nil {
			return nil, fmt.Errorf("search listings: %w", err)
		}
		for _, li := range resp.Items {
			if it, ok := s.toItem(li); ok {
				items = append(items, it)
			}
		}
		pageToken = resp.Pagination.NextToken
		if pageToken == "" {
			break
		}
	}

	slog.Debug("fetched listings from sp-api", "seller_id", creds.SellerID, "count", len(items))
	return items, nil
}

func (s *SPAPISource) accessToken(ctx context.Context, creds Credentials) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", creds.RefreshToken)
	form.Set("client_id", creds.ClientID)
	form.Set("client_secret", creds.ClientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.tokenURL, bytes.NewBufferString(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("API error %d: %s", resp.StatusCode, string(body))
	}

	var tok lwaTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("empty access token")
	}
	return tok.AccessToken, nil
}

func (s *SPAPISource) searchListings(ctx context.Context, token, sellerID, pageToken string) (*listingsResponse, error) {
	q := url.Values{}
	q.Set("marketplaceIds", s.marketplaceID)
	q.Set("includedData", "summaries,offers")
	q.Set("pageSize", strconv.Itoa(pageSize))
	if pageToken != "" {
		q.Set("pageToken", pageToken)
	}
	u := s.endpoint + "/listings/2021-08-01/items/" + url.PathEscape(sellerID) + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("x-amz-access-token", token)
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API error %d: %s", resp.StatusCode, string(body))
	}

	var out listingsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &out, nil
}

func (s *SPAPISource) toItem(li listingItem) (Item, bool) {
	var summary *listingSummary
	for i := range li.Summaries {
		if li.Summaries[i].MarketplaceID == s.marketplaceID {
			summary = &li.Summaries[i]
			break
		}
	}
	if summary == nil && len(li.Summaries) > 0 {
		summary = &li.Summaries[0]
	}
	if summary == nil || summary.ASIN == "" {
		slog.Debug("skipping listing without asin", "sku", li.SKU)
		return Item{}, false
	}

	it := Item{
		ASIN:     summary.ASIN,
		Title:    summary.ItemName,
		Currency: "TRY",
		Category: categoryFor(summary.ProductType),
	}
	if summary.MainImage != nil && summary.MainImage.Link != "" {
		it.ImageURLs = []string{summary.MainImage.Link}
	}
	for _, o := range li.Offers {
		if o.OfferType != "" && o.OfferType != "B2C" {
			continue
		}
		it.Price = float64(o.Price.Amount)
		if o.Price.CurrencyCode != "" {
			it.Currency = o.Price.CurrencyCode
		}
		break
	}
	return it, true
}

var productTypeCategories = map[string]string{
	"CELLULAR_PHONE":    "Elektronik",
	"HEADPHONES":        "Elektronik",
	"PERSONAL_COMPUTER": "Elektronik",
	"SHIRT":             "Giyim",
	"PANTS":             "Giyim",
	"SHOES":             "Giyim",
	"KITCHEN":           "Ev & Yaşam",
	"HOME":              "Ev & Yaşam",
	"ABIS_BOOK":         "Kitap",
	"TOY_FIGURE":        "Oyuncak",
	"SPORTING_GOODS":    "Spor & Outdoor",
	"BEAUTY":            "Güzellik & Kişisel Bakım",
	"AUTO_ACCESSORY":    "Otomotiv",
	"OUTDOOR_LIVING":    "Bahçe",
	"PET_SUPPLIES":      "Pet Shop",
}

func categoryFor(productType string) string {
	if c, ok := productTypeCategories[productType]; ok {
		return c
	}
	return ""
}
