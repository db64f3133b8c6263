package dashboard

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loganlanou/dealerpost/internal/apiclient"
	"github.com/loganlanou/dealerpost/internal/querycache"
	"github.com/loganlanou/dealerpost/internal/session"
)

func TestActions_SyncProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("success refetches products once", func(t *testing.T) {
		env := newTestEnv(t)

		n := env.actions.SyncProducts(ctx, testViewer)

		assert.Equal(t, session.Success("5 ürün senkronize edildi"), n)
		assert.Equal(t, 1, env.api.count("POST /api/products/sync"))
		assert.Equal(t, 1, env.api.count("GET /api/products/"))

		// The refetched list is now cached.
		products, err := env.queries.Products(ctx, testViewer)
		require.NoError(t, err)
		assert.Len(t, products, 2)
		assert.Equal(t, 1, env.api.count("GET /api/products/"))
	})

	t.Run("failure keeps the cached list", func(t *testing.T) {
		env := newTestEnv(t)
		env.api.syncStatus = http.StatusBadGateway

		_, err := env.queries.Products(ctx, testViewer)
		require.NoError(t, err)

		n := env.actions.SyncProducts(ctx, testViewer)

		assert.Equal(t, session.Error("Senkronizasyon hatası: Senkronizasyon başarısız"), n)
		_, err = env.queries.Products(ctx, testViewer)
		require.NoError(t, err)
		assert.Equal(t, 1, env.api.count("GET /api/products/"))
	})

	t.Run("transport failure shows the error text", func(t *testing.T) {
		env := newTestEnv(t)
		env.server.Close()

		n := env.actions.SyncProducts(ctx, testViewer)

		assert.Equal(t, session.NotificationError, n.Kind)
		assert.True(t, strings.HasPrefix(n.Message, "Senkronizasyon hatası: "))
		assert.NotEqual(t, "Senkronizasyon hatası: Senkronizasyon başarısız", n.Message)
	})
}

func TestActions_PublishPost(t *testing.T) {
	ctx := context.Background()

	t.Run("success shows the post as published", func(t *testing.T) {
		env := newTestEnv(t)
		posts, err := env.queries.Posts(ctx, testViewer)
		require.NoError(t, err)
		require.False(t, posts[0].Posted)

		n := env.actions.PublishPost(ctx, testViewer, "p1")

		assert.Equal(t, session.Success("Tweet başarıyla yayınlandı"), n)
		posts, err = env.queries.Posts(ctx, testViewer)
		require.NoError(t, err)
		assert.True(t, posts[0].Posted)
		assert.Equal(t, 2, env.api.count("GET /api/posts/"))
	})

	t.Run("server error leaves the post a draft", func(t *testing.T) {
		env := newTestEnv(t)
		env.api.publishStatus = http.StatusInternalServerError
		_, err := env.queries.Posts(ctx, testViewer)
		require.NoError(t, err)

		n := env.actions.PublishPost(ctx, testViewer, "p1")

		assert.Equal(t, session.Error("Yayınlama hatası: Yayınlama başarısız"), n)
		posts, err := env.queries.Posts(ctx, testViewer)
		require.NoError(t, err)
		assert.False(t, posts[0].Posted)
		assert.Equal(t, 1, env.api.count("GET /api/posts/"))
	})
}

func TestActions_DeletePost(t *testing.T) {
	ctx := context.Background()

	t.Run("unconfirmed sends nothing", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.actions.DeletePost(ctx, testViewer, "p1", false)

		assert.ErrorIs(t, err, ErrConfirmationRequired)
		assert.Zero(t, env.api.total())
	})

	t.Run("confirmed removes the post", func(t *testing.T) {
		env := newTestEnv(t)

		n, err := env.actions.DeletePost(ctx, testViewer, "p1", true)
		require.NoError(t, err)

		assert.Equal(t, session.Success("Gönderi silindi"), n)
		posts, err := env.queries.Posts(ctx, testViewer)
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, "p2", posts[0].ID)
	})

	t.Run("failure", func(t *testing.T) {
		env := newTestEnv(t)
		env.api.deleteStatus = http.StatusNotFound

		n, err := env.actions.DeletePost(ctx, testViewer, "missing", true)
		require.NoError(t, err)

		assert.Equal(t, session.Error("Silme hatası: Silme başarısız"), n)
		assert.Zero(t, env.api.count("GET /api/posts/"))
	})
}

func TestActions_GeneratePost(t *testing.T) {
	env := newTestEnv(t)

	n := env.actions.GeneratePost(context.Background(), testViewer, "B001", "twitter")

	assert.Equal(t, session.Success("Gönderi oluşturuldu"), n)
	posts, err := env.queries.Posts(context.Background(), testViewer)
	require.NoError(t, err)
	assert.Len(t, posts, 3)
}

func TestQueries_KeyedPerUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.queries.Products(ctx, Viewer{UserID: "u1", Token: "a"})
	require.NoError(t, err)
	_, err = env.queries.Products(ctx, Viewer{UserID: "u2", Token: "b"})
	require.NoError(t, err)
	_, err = env.queries.Products(ctx, Viewer{UserID: "u1", Token: "a"})
	require.NoError(t, err)

	assert.Equal(t, 2, env.api.count("GET /api/products/"))
}

func TestQueries_ErrorsAreNotCached(t *testing.T) {
	env := newTestEnv(t)
	broken := NewQueries(apiclient.New("http://127.0.0.1:1", nil), querycache.New(0))

	_, err := broken.Posts(context.Background(), testViewer)
	require.Error(t, err)

	// Same cache key, working backend.
	broken.api = apiclient.New(env.server.URL, env.server.Client())
	posts, err := broken.Posts(context.Background(), testViewer)
	require.NoError(t, err)
	assert.Len(t, posts, 2)
}
