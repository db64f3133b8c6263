package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/loganlanou/dealerpost/internal/social"
)

const (
	DefaultURL     = "http://localhost:11434"
	DefaultModel   = "mistral:7b"
	defaultTimeout = 120 * time.Second
)

type Client struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

type GenerateRequest struct {
	Model   string         `json:"model"`
	Prompt  string         `json:"prompt"`
	System  string         `json:"system,omitempty"`
	Stream  bool           `json:"stream"`
	Options map[string]any `json:"options,omitempty"`
}

type GenerateResponse struct {
	Model     string `json:"model"`
	Response  string `json:"response"`
	Done      bool   `json:"done"`
	EvalCount int    `json:"eval_count"`
}

type TagsResponse struct {
	Models []ModelInfo `json:"models"`
}

type ModelInfo struct {
	Name string `json:"name"`
}

// NewClient returns a client for an Ollama server. Empty arguments fall back
// to the local defaults.
func NewClient(baseURL, model string) *Client {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	if model == "" {
		model = DefaultModel
	}

	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		model:   model,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

func (c *Client) IsAvailable(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/tags", nil)
	if err != nil {
		return false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Debug("ollama not available", "error", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false
	}

	var tags TagsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil {
		return false
	}

	for _, m := range tags.Models {
		if m.Name == c.model || strings.HasPrefix(m.Name, c.model+":") {
			return true
		}
	}

	slog.Warn("ollama available but model not found", "model", c.model, "available_models", len(tags.Models))
	return false
}

const systemPrompt = "Sen Amazon satıcıları için sosyal medya içeriği oluşturan bir AI asistanısın. Türkçe, çekici ve satış odaklı içerikler üretiyorsun."

// GeneratePost drafts a post for the product. The result is cut to the
// platform limit.
func (c *Client) GeneratePost(ctx context.Context, product social.ProductData, platform social.Platform, style social.Style) (string, error) {
	req := GenerateRequest{
		Model:   c.model,
		Prompt:  buildPostPrompt(product, platform, style),
		System:  systemPrompt,
		Stream:  false,
		Options: map[string]any{"temperature": 0.7, "num_predict": 300},
	}

	jsonBody, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	slog.Debug("calling ollama for post generation",
		"model", c.model,
		"asin", product.ASIN,
		"platform", platform,
		"style", style,
	)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	var genResp GenerateResponse
	if err := json.Unmarshal(body, &genResp); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	generated := strings.TrimSpace(genResp.Response)
	if generated == "" {
		return "", fmt.Errorf("empty response from model")
	}

	slog.Debug("ollama post generated",
		"model", genResp.Model,
		"asin", product.ASIN,
		"generated_length", len(generated),
		"eval_count", genResp.EvalCount,
	)

	return social.Truncate(generated, social.Limit(platform)), nil
}

var styleHints = map[social.Style]string{
	social.StyleEngaging:    "merak uyandıran ve etkileşim isteyen",
	social.StyleInformative: "bilgilendirici ve özellik odaklı",
	social.StylePromotional: "indirim ve aciliyet vurgulayan",
}

func buildPostPrompt(p social.ProductData, platform social.Platform, style social.Style) string {
	hint := styleHints[style]
	if hint == "" {
		hint = styleHints[social.StyleEngaging]
	}

	return fmt.Sprintf(`Türkçe bir %s gönderisi oluştur. Aşağıdaki ürün için %s, %s bir içerik yaz:

Ürün Adı: %s
Açıklama: %s
Fiyat: %s
Kategori: %s
Marka: %s

Gereksinimler:
- Maksimum %d karakter
- Türkçe dilinde
- Satış odaklı ve çekici
- Ürünün öne çıkan özelliklerini vurgula
- Amazon'da satıldığını belirt
- Uygun hashtag'ler ekle
- Emoji kullan ama abartma
- Call-to-action ekle

Sadece gönderi içeriğini döndür, başka açıklama ekleme.`,
		platform,
		social.Tone(platform),
		hint,
		p.Title,
		p.Description,
		social.FormatPrice(p.Price, p.Currency),
		p.Category,
		p.Brand,
		social.Limit(platform),
	)
}
