package jobs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/loganlanou/dealerpost/internal/metrics"
	"github.com/loganlanou/dealerpost/internal/publisher"
	"github.com/loganlanou/dealerpost/internal/social"
	"github.com/loganlanou/dealerpost/storage/db"
)

// DefaultCollectionInterval is how often engagement is polled.
const DefaultCollectionInterval = time.Hour

// AnalyticsCollector stores an engagement snapshot for every published post
// on each tick.
type AnalyticsCollector struct {
	queries    *db.Queries
	publishers publisher.Set
	interval   time.Duration
	ticker     *time.Ticker
	done       chan bool
}

func NewAnalyticsCollector(queries *db.Queries, publishers publisher.Set, interval time.Duration) *AnalyticsCollector {
	if interval <= 0 {
		interval = DefaultCollectionInterval
	}
	return &AnalyticsCollector{
		queries:    queries,
		publishers: publishers,
		interval:   interval,
		done:       make(chan bool),
	}
}

// Start begins the collection background job
func (a *AnalyticsCollector) Start(ctx context.Context) {
	slog.Info("starting analytics collector", "interval", a.interval)

	// Run immediately on start
	if _, err := a.RunOnce(ctx); err != nil {
		slog.Error("failed to collect analytics", "error", err)
	}

	a.ticker = time.NewTicker(a.interval)

	go func() {
		for {
			select {
			case <-a.ticker.C:
				if _, err := a.RunOnce(ctx); err != nil {
					slog.Error("failed to collect analytics", "error", err)
				}
			case <-a.done:
				slog.Info("analytics collector stopped")
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop stops the background job
func (a *AnalyticsCollector) Stop() {
	if a.ticker != nil {
		a.ticker.Stop()
	}
	close(a.done)
}

// RunOnce collects one snapshot per published post and returns how many
// were stored. A failing post is logged and skipped.
func (a *AnalyticsCollector) RunOnce(ctx context.Context) (int, error) {
	posts, err := a.queries.ListPublishedPostsWithExternalID(ctx)
	if err != nil {
		return 0, fmt.Errorf("list published posts: %w", err)
	}

	stored := 0
	for _, p := range posts {
		pub, err := a.publishers.For(social.Platform(p.Platform))
		if errors.Is(err, publisher.ErrUnsupportedPlatform) {
			continue
		}

		creds, err := a.credentials(ctx, p.UserID)
		if err != nil {
			slog.Error("failed to load twitter credentials", "error", err, "user_id", p.UserID)
			metrics.MetricSnapshots.WithLabelValues("error").Inc()
			continue
		}

		m, err := pub.Metrics(ctx, creds, p.ExternalID.String)
		if err != nil {
			slog.Error("failed to fetch post metrics", "error", err, "post_id", p.ID)
			metrics.MetricSnapshots.WithLabelValues("error").Inc()
			continue
		}

		err = a.queries.CreatePostMetric(ctx, db.CreatePostMetricParams{
			PostID:      p.ID,
			Platform:    p.Platform,
			Likes:       m.Likes,
			Shares:      m.Retweets,
			Replies:     m.Replies,
			Quotes:      m.Quotes,
			Impressions: m.Impressions,
		})
		if err != nil {
			slog.Error("failed to store post metrics", "error", err, "post_id", p.ID)
			metrics.MetricSnapshots.WithLabelValues("error").Inc()
			continue
		}
		metrics.MetricSnapshots.WithLabelValues("success").Inc()
		stored++
	}

	slog.Debug("analytics collected", "posts", len(posts), "stored", stored)
	return stored, nil
}

func (a *AnalyticsCollector) credentials(ctx context.Context, userID string) (publisher.Credentials, error) {
	tc, err := a.queries.GetTwitterCredentials(ctx, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return publisher.Credentials{}, nil
	}
	if err != nil {
		return publisher.Credentials{}, err
	}
	return publisher.Credentials{AccessToken: tc.AccessToken}, nil
}
