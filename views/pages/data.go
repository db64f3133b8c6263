package pages

import (
	"github.com/loganlanou/dealerpost/internal/filter"
	"github.com/loganlanou/dealerpost/internal/types"
)

type DashboardData struct {
	ProductCount int
	Analytics    *types.DashboardAnalytics
	// Err is shown instead of the numbers when loading failed.
	Err string
}

type ProductsData struct {
	Products   []types.Product
	Total      int
	Categories []string
	Criteria   filter.Criteria
	Err        string
}

type PostStats struct {
	Total       int
	Published   int
	Draft       int
	AIGenerated int
}

type PostsData struct {
	Posts    []types.Post
	Stats    PostStats
	Criteria filter.Criteria
	// Products feeds the "new post" form.
	Products []types.Product
	Err      string
}

type AnalyticsData struct {
	Analytics *types.DashboardAnalytics
	Trends    *types.Trends
	Range     string
	Platform  string
	Err       string
}

type LoginData struct {
	Email  string
	Errors map[string]string
}

type RegisterData struct {
	FullName string
	Email    string
	Terms    bool
	Errors   map[string]string
}

// Ranges lists the analytics range options in display order.
var Ranges = []string{"7d", "30d", "90d", "1y"}

// Platforms lists the post platform filter options in display order.
var Platforms = []string{filter.All, "twitter", "instagram", "tiktok"}
