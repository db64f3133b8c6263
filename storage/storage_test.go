package storage

import (
	"context"
	"database/sql"
	"testing"

	"github.com/loganlanou/dealerpost/storage/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, q *db.Queries, id string) {
	t.Helper()
	require.NoError(t, q.CreateUser(context.Background(), db.CreateUserParams{
		ID:             id,
		Email:          id + "@example.com",
		FullName:       "Test User",
		HashedPassword: "x",
	}))
}

func TestNewTestDB_Migrates(t *testing.T) {
	database, q, cleanup, err := NewTestDB()
	require.NoError(t, err)
	defer cleanup()

	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'social_media_posts'`).Scan(&n))
	assert.Equal(t, 1, n)

	seedUser(t, q, "u1")
	u, err := q.GetUserByEmail(context.Background(), "u1@example.com")
	require.NoError(t, err)
	assert.True(t, u.IsActive)
	assert.False(t, u.CreatedAt.IsZero())
}

func TestProducts_UniquePerUser(t *testing.T) {
	_, q, cleanup, err := NewTestDB()
	require.NoError(t, err)
	defer cleanup()
	ctx := context.Background()

	seedUser(t, q, "u1")
	seedUser(t, q, "u2")

	p := db.CreateProductParams{ID: "p1", UserID: "u1", Asin: "B0TEST", Title: "Telefon", Currency: "TRY", ImageUrls: "[]"}
	require.NoError(t, q.CreateProduct(ctx, p))

	p.ID = "p2"
	assert.Error(t, q.CreateProduct(ctx, p), "same asin for the same user must be rejected")

	p.ID, p.UserID = "p3", "u2"
	assert.NoError(t, q.CreateProduct(ctx, p))

	n, err := q.CountProductsByUser(ctx, "u1")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestPosts_PublishOnlyOnce(t *testing.T) {
	_, q, cleanup, err := NewTestDB()
	require.NoError(t, err)
	defer cleanup()
	ctx := context.Background()

	seedUser(t, q, "u1")
	require.NoError(t, q.CreateSocialMediaPost(ctx, db.CreateSocialMediaPostParams{
		ID: "post-1", UserID: "u1", ProductAsin: "B0TEST", Platform: "twitter", Content: "hello", AiGenerated: true,
	}))

	mark := db.MarkSocialMediaPostPublishedParams{
		ExternalID: sql.NullString{String: "123", Valid: true},
		PostUrl:    sql.NullString{String: "https://twitter.com/i/web/status/123", Valid: true},
		ID:         "post-1",
	}
	rows, err := q.MarkSocialMediaPostPublished(ctx, mark)
	require.NoError(t, err)
	assert.EqualValues(t, 1, rows)

	rows, err = q.MarkSocialMediaPostPublished(ctx, mark)
	require.NoError(t, err)
	assert.EqualValues(t, 0, rows)

	post, err := q.GetSocialMediaPost(ctx, db.GetSocialMediaPostParams{ID: "post-1", UserID: "u1"})
	require.NoError(t, err)
	assert.True(t, post.Posted)
	assert.True(t, post.PostedAt.Valid)
	assert.Equal(t, "123", post.ExternalID.String)
}

func TestPostMetrics_CascadeOnDelete(t *testing.T) {
	database, q, cleanup, err := NewTestDB()
	require.NoError(t, err)
	defer cleanup()
	ctx := context.Background()

	seedUser(t, q, "u1")
	require.NoError(t, q.CreateSocialMediaPost(ctx, db.CreateSocialMediaPostParams{
		ID: "post-1", UserID: "u1", ProductAsin: "B0TEST", Platform: "twitter", Content: "hello",
	}))
	require.NoError(t, q.CreatePostMetric(ctx, db.CreatePostMetricParams{PostID: "post-1", Platform: "twitter", Likes: 3, Impressions: 10}))

	rows, err := q.DeleteSocialMediaPost(ctx, db.DeleteSocialMediaPostParams{ID: "post-1", UserID: "u1"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, rows)

	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM post_metrics`).Scan(&n))
	assert.Zero(t, n)
}

func TestEngagementTotals_UsesLatestSnapshot(t *testing.T) {
	_, q, cleanup, err := NewTestDB()
	require.NoError(t, err)
	defer cleanup()
	ctx := context.Background()

	seedUser(t, q, "u1")
	require.NoError(t, q.CreateSocialMediaPost(ctx, db.CreateSocialMediaPostParams{
		ID: "post-1", UserID: "u1", ProductAsin: "B0TEST", Platform: "twitter", Content: "hello",
	}))
	require.NoError(t, q.CreatePostMetric(ctx, db.CreatePostMetricParams{PostID: "post-1", Platform: "twitter", Likes: 1, Impressions: 10}))
	require.NoError(t, q.CreatePostMetric(ctx, db.CreatePostMetricParams{PostID: "post-1", Platform: "twitter", Likes: 4, Shares: 1, Impressions: 50}))

	totals, err := q.EngagementTotals(ctx, db.EngagementTotalsParams{UserID: "u1", Platform: "all", Since: "-30 days"})
	require.NoError(t, err)
	assert.EqualValues(t, 50, totals.Impressions)
	assert.EqualValues(t, 5, totals.Engagement)
}

func TestWithTransaction_RollsBack(t *testing.T) {
	database, q, cleanup, err := NewTestDB()
	require.NoError(t, err)
	defer cleanup()

	err = WithTransaction(database, func(tx *sql.Tx) error {
		return q.WithTx(tx).CreateUser(context.Background(), db.CreateUserParams{
			ID: "u9", Email: "u9@example.com", FullName: "Rolled Back", HashedPassword: "x",
		})
	})
	require.NoError(t, err)

	_, err = q.GetUser(context.Background(), "u9")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
