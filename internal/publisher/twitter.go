package publisher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultTwitterURL = "https://api.twitter.com"

	simulatedTweetID = "simulated_tweet_id_123"
)

// Twitter publishes through the X API v2 with an OAuth 2.0 user token.
// Without any token it runs simulated and never leaves the process.
type Twitter struct {
	baseURL      string
	defaultToken string
	httpClient   *http.Client
	now          func() time.Time
}

func NewTwitter(baseURL, defaultToken string) *Twitter {
	if baseURL == "" {
		baseURL = DefaultTwitterURL
	}
	return &Twitter{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		defaultToken: defaultToken,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		now:          time.Now,
	}
}

func TweetURL(id string) string {
	return "https://twitter.com/user/status/" + id
}

func (t *Twitter) token(creds Credentials) string {
	if creds.AccessToken != "" {
		return creds.AccessToken
	}
	return t.defaultToken
}

type createTweetResponse struct {
	Data struct {
		ID   string `json:"id"`
		Text string `json:"text"`
	} `json:"data"`
}

type tweetLookupResponse struct {
	Data struct {
		ID            string `json:"id"`
		PublicMetrics struct {
			RetweetCount    int64 `json:"retweet_count"`
			ReplyCount      int64 `json:"reply_count"`
			LikeCount       int64 `json:"like_count"`
			QuoteCount      int64 `json:"quote_count"`
			ImpressionCount int64 `json:"impression_count"`
		} `json:"public_metrics"`
	} `json:"data"`
}

func (t *Twitter) doRequest(ctx context.Context, method, path, token string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, t.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return t.httpClient.Do(req)
}

func (t *Twitter) Publish(ctx context.Context, creds Credentials, content string) (Result, error) {
	token := t.token(creds)
	if token == "" {
		slog.Info("twitter not configured, simulating tweet")
		return Result{ExternalID: simulatedTweetID, URL: TweetURL(simulatedTweetID), Simulated: true}, nil
	}

	payload, err := json.Marshal(map[string]string{"text": content})
	if err != nil {
		return Result{}, fmt.Errorf("marshal request: %w", err)
	}

	resp, err := t.doRequest(ctx, http.MethodPost, "/2/tweets", token, bytes.NewReader(payload))
	if err != nil {
		return Result{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return Result{}, fmt.Errorf("API error %d: %s", resp.StatusCode, string(body))
	}

	var created createTweetResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return Result{}, fmt.Errorf("decode response: %w", err)
	}
	if created.Data.ID == "" {
		return Result{}, fmt.Errorf("tweet id missing from response")
	}

	return Result{ExternalID: created.Data.ID, URL: TweetURL(created.Data.ID)}, nil
}

func (t *Twitter) Metrics(ctx context.Context, creds Credentials, externalID string) (Metrics, error) {
	token := t.token(creds)
	if token == "" {
		return Metrics{
			ExternalID:  externalID,
			Retweets:    5,
			Likes:       23,
			Replies:     2,
			Quotes:      1,
			Impressions: 150,
			CollectedAt: t.now().UTC(),
		}, nil
	}

	path := "/2/tweets/" + url.PathEscape(externalID) + "?tweet.fields=public_metrics"
	resp, err := t.doRequest(ctx, http.MethodGet, path, token, nil)
	if err != nil {
		return Metrics{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return Metrics{}, fmt.Errorf("API error %d: %s", resp.StatusCode, string(body))
	}

	var lookup tweetLookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&lookup); err != nil {
		return Metrics{}, fmt.Errorf("decode response: %w", err)
	}

	pm := lookup.Data.PublicMetrics
	return Metrics{
		ExternalID:  externalID,
		Retweets:    pm.RetweetCount,
		Likes:       pm.LikeCount,
		Replies:     pm.ReplyCount,
		Quotes:      pm.QuoteCount,
		Impressions: pm.ImpressionCount,
		CollectedAt: t.now().UTC(),
	}, nil
}
