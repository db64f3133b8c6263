// Package publisher sends drafted posts to social platforms and reads back
// their public metrics.
package publisher

import (
	"context"
	"errors"
	"time"

	"github.com/loganlanou/dealerpost/internal/social"
)

var ErrUnsupportedPlatform = errors.New("platform not supported")

// Credentials authorise calls on behalf of a seller.
type Credentials struct {
	AccessToken string
}

type Result struct {
	ExternalID string
	URL        string
	Simulated  bool
}

type Metrics struct {
	ExternalID  string
	Retweets    int64
	Likes       int64
	Replies     int64
	Quotes      int64
	Impressions int64
	CollectedAt time.Time
}

// Engagement is the sum of all interactions.
func (m Metrics) Engagement() int64 {
	return m.Likes + m.Retweets + m.Replies + m.Quotes
}

type Publisher interface {
	Publish(ctx context.Context, creds Credentials, content string) (Result, error)
	Metrics(ctx context.Context, creds Credentials, externalID string) (Metrics, error)
}

// Set routes a platform to its publisher.
type Set map[social.Platform]Publisher

func (s Set) For(p social.Platform) (Publisher, error) {
	pub, ok := s[p]
	if !ok || pub == nil {
		return nil, ErrUnsupportedPlatform
	}
	return pub, nil
}
