// Package dashboard holds the server-rendered seller dashboard: the cached
// read queries, the sync/publish/delete actions and the page handlers. It
// reaches the backend only through apiclient.
package dashboard

import (
	"context"

	"github.com/loganlanou/dealerpost/internal/apiclient"
	"github.com/loganlanou/dealerpost/internal/querycache"
	"github.com/loganlanou/dealerpost/internal/types"
)

// listLimit is the largest page the /api list endpoints serve.
const listLimit = 100

// Viewer identifies the signed-in user a query runs for.
type Viewer struct {
	UserID string
	Token  string
}

// Queries are the read side of the dashboard. Every result is cached per
// user for the cache's stale time.
type Queries struct {
	api   *apiclient.Client
	cache *querycache.Cache
}

func NewQueries(api *apiclient.Client, cache *querycache.Cache) *Queries {
	return &Queries{api: api, cache: cache}
}

func (q *Queries) client(v Viewer) *apiclient.Client {
	return q.api.WithToken(v.Token)
}

func (q *Queries) listProducts(v Viewer) func(ctx context.Context) ([]types.Product, error) {
	return func(ctx context.Context) ([]types.Product, error) {
		return q.client(v).ListProducts(ctx, apiclient.Page{Limit: listLimit})
	}
}

func (q *Queries) listPosts(v Viewer) func(ctx context.Context) ([]types.Post, error) {
	return func(ctx context.Context) ([]types.Post, error) {
		return q.client(v).ListPosts(ctx, apiclient.Page{Limit: listLimit})
	}
}

func (q *Queries) Products(ctx context.Context, v Viewer) ([]types.Product, error) {
	return querycache.Typed(ctx, q.cache, querycache.Key(v.UserID, "products"), q.listProducts(v))
}

// RefetchProducts drops the cached products and loads them again.
func (q *Queries) RefetchProducts(ctx context.Context, v Viewer) ([]types.Product, error) {
	return querycache.RefetchTyped(ctx, q.cache, querycache.Key(v.UserID, "products"), q.listProducts(v))
}

func (q *Queries) Posts(ctx context.Context, v Viewer) ([]types.Post, error) {
	return querycache.Typed(ctx, q.cache, querycache.Key(v.UserID, "posts"), q.listPosts(v))
}

// RefetchPosts drops the cached posts and loads them again.
func (q *Queries) RefetchPosts(ctx context.Context, v Viewer) ([]types.Post, error) {
	return querycache.RefetchTyped(ctx, q.cache, querycache.Key(v.UserID, "posts"), q.listPosts(v))
}

func (q *Queries) Categories(ctx context.Context, v Viewer) ([]string, error) {
	return querycache.Typed(ctx, q.cache, querycache.Key(v.UserID, "categories"), func(ctx context.Context) ([]string, error) {
		return q.client(v).Categories(ctx)
	})
}

func (q *Queries) Analytics(ctx context.Context, v Viewer, f apiclient.AnalyticsFilter) (*types.DashboardAnalytics, error) {
	key := querycache.Key(v.UserID, "analytics:"+f.Range+":"+f.Platform)
	return querycache.Typed(ctx, q.cache, key, func(ctx context.Context) (*types.DashboardAnalytics, error) {
		return q.client(v).DashboardAnalytics(ctx, f)
	})
}

func (q *Queries) Trends(ctx context.Context, v Viewer) (*types.Trends, error) {
	return querycache.Typed(ctx, q.cache, querycache.Key(v.UserID, "trends"), func(ctx context.Context) (*types.Trends, error) {
		return q.client(v).Trends(ctx)
	})
}
