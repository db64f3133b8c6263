package jobs

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/loganlanou/dealerpost/internal/publisher"
	"github.com/loganlanou/dealerpost/internal/social"
	"github.com/loganlanou/dealerpost/storage"
	"github.com/loganlanou/dealerpost/storage/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublisher struct {
	metrics map[string]publisher.Metrics
	tokens  []string
}

func (f *fakePublisher) Publish(context.Context, publisher.Credentials, string) (publisher.Result, error) {
	return publisher.Result{}, errors.New("not used")
}

func (f *fakePublisher) Metrics(_ context.Context, creds publisher.Credentials, id string) (publisher.Metrics, error) {
	f.tokens = append(f.tokens, creds.AccessToken)
	m, ok := f.metrics[id]
	if !ok {
		return publisher.Metrics{}, errors.New("tweet not found")
	}
	return m, nil
}

func seedPublished(t *testing.T, q *db.Queries, id, platform, externalID string) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, q.CreateSocialMediaPost(ctx, db.CreateSocialMediaPostParams{
		ID: id, UserID: "u1", ProductAsin: "B001", Platform: platform, Content: "x",
	}))
	if externalID == "" {
		return
	}
	_, err := q.MarkSocialMediaPostPublished(ctx, db.MarkSocialMediaPostPublishedParams{
		ExternalID: sql.NullString{String: externalID, Valid: true},
		PostUrl:    sql.NullString{String: publisher.TweetURL(externalID), Valid: true},
		ID:         id,
	})
	require.NoError(t, err)
}

func TestAnalyticsCollector_RunOnce(t *testing.T) {
	_, q, cleanup, err := storage.NewTestDB()
	require.NoError(t, err)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, q.CreateUser(ctx, db.CreateUserParams{ID: "u1", Email: "u1@example.com", FullName: "U", HashedPassword: "x"}))
	require.NoError(t, q.UpsertTwitterCredentials(ctx, db.UpsertTwitterCredentialsParams{
		UserID: "u1", ConsumerKey: "ck", ConsumerSecret: "cs", AccessToken: "user-token", AccessTokenSecret: "ats",
	}))

	seedPublished(t, q, "p-ok", "twitter", "100")
	seedPublished(t, q, "p-missing", "twitter", "404")
	seedPublished(t, q, "p-draft", "twitter", "")
	seedPublished(t, q, "p-insta", "instagram", "ig-1")

	fake := &fakePublisher{metrics: map[string]publisher.Metrics{
		"100": {Likes: 9, Retweets: 2, Replies: 1, Quotes: 0, Impressions: 300},
	}}
	c := NewAnalyticsCollector(q, publisher.Set{social.PlatformTwitter: fake}, 0)

	stored, err := c.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stored)
	assert.Equal(t, []string{"user-token", "user-token"}, fake.tokens)

	history, err := q.ListPostMetrics(ctx, db.ListPostMetricsParams{PostID: "p-ok", Limit: 10})
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.EqualValues(t, 9, history[0].Likes)
	assert.EqualValues(t, 2, history[0].Shares)
	assert.EqualValues(t, 300, history[0].Impressions)
}

func TestAnalyticsCollector_StartStop(t *testing.T) {
	_, q, cleanup, err := storage.NewTestDB()
	require.NoError(t, err)
	defer cleanup()

	c := NewAnalyticsCollector(q, publisher.Set{}, 0)
	assert.Equal(t, DefaultCollectionInterval, c.interval)

	c.Start(context.Background())
	c.Stop()
}
