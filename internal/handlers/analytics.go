package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/loganlanou/dealerpost/internal/filter"
	"github.com/loganlanou/dealerpost/internal/publisher"
	"github.com/loganlanou/dealerpost/internal/social"
	"github.com/loganlanou/dealerpost/internal/types"
	"github.com/loganlanou/dealerpost/storage"
	"github.com/loganlanou/dealerpost/storage/db"
)

const (
	defaultRange   = "30d"
	topPostsLimit  = 5
	historyLimit   = 30
	comparisonSpan = "-30 days"
)

// ranges maps the range query value to a SQLite datetime modifier.
var ranges = map[string]string{
	"7d":  "-7 days",
	"30d": "-30 days",
	"90d": "-90 days",
	"1y":  "-1 year",
}

var trendingHashtags = []types.TrendingHashtag{
	{Hashtag: "#BlackFriday", TweetCount: 1500000, TrendScore: 95},
	{Hashtag: "#Amazon", TweetCount: 890000, TrendScore: 85},
	{Hashtag: "#İndirim", TweetCount: 45000, TrendScore: 78},
	{Hashtag: "#TeknolojiHaber", TweetCount: 23000, TrendScore: 72},
	{Hashtag: "#AlışverişFırsatı", TweetCount: 12000, TrendScore: 65},
}

var platformContentTypes = map[social.Platform]string{
	social.PlatformTwitter:   "Ürün tanıtımı",
	social.PlatformInstagram: "Görsel odaklı",
	social.PlatformTikTok:    "Video içerik",
}

var platformTips = map[social.Platform]string{
	social.PlatformTwitter:   "Twitter'da etkileşim zamanlarını optimize edin",
	social.PlatformInstagram: "Instagram'da görsel kalitesini artırın",
	social.PlatformTikTok:    "TikTok'ta video içerik stratejinizi geliştirin",
}

type AnalyticsHandler struct {
	store      *storage.Storage
	publishers publisher.Set
}

func NewAnalyticsHandler(store *storage.Storage, publishers publisher.Set) *AnalyticsHandler {
	return &AnalyticsHandler{store: store, publishers: publishers}
}

// Dashboard aggregates the user's posts and their latest engagement
// snapshots over the requested range.
func (h *AnalyticsHandler) Dashboard(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	rangeParam := c.QueryParam("range")
	if rangeParam == "" {
		rangeParam = defaultRange
	}
	since, ok := ranges[rangeParam]
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "Geçersiz zaman aralığı: "+rangeParam)
	}

	platform := c.QueryParam("platform")
	if platform == "" {
		platform = filter.All
	}
	if _, ok := social.ParsePlatform(platform); !ok && platform != filter.All {
		return echo.NewHTTPError(http.StatusBadRequest, "Geçersiz platform: "+platform)
	}

	q := h.store.Queries
	fail := func(what string, err error) error {
		slog.Error("failed to load dashboard analytics", "error", err, "query", what, "user_id", userID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Analitik verileri alınamadı")
	}

	total, err := q.CountPosts(ctx, db.CountPostsParams{UserID: userID, Platform: platform, Since: since})
	if err != nil {
		return fail("count posts", err)
	}
	published, err := q.CountPublishedPosts(ctx, db.CountPublishedPostsParams{UserID: userID, Platform: platform, Since: since})
	if err != nil {
		return fail("count published posts", err)
	}
	totals, err := q.EngagementTotals(ctx, db.EngagementTotalsParams{UserID: userID, Platform: platform, Since: since})
	if err != nil {
		return fail("engagement totals", err)
	}
	distribution, err := q.PlatformDistribution(ctx, db.PlatformDistributionParams{UserID: userID, Platform: platform, Since: since})
	if err != nil {
		return fail("platform distribution", err)
	}
	activity, err := q.RecentActivity(ctx, db.RecentActivityParams{UserID: userID, Platform: platform, Since: since})
	if err != nil {
		return fail("recent activity", err)
	}
	top, err := q.TopPerformingPosts(ctx, db.TopPerformingPostsParams{UserID: userID, Platform: platform, Since: since, Limit: topPostsLimit})
	if err != nil {
		return fail("top posts", err)
	}

	resp := types.DashboardAnalytics{
		TotalPosts:           total,
		PublishedPosts:       published,
		TotalImpressions:     totals.Impressions,
		TotalEngagement:      totals.Engagement,
		EngagementRate:       rate(totals.Engagement, totals.Impressions),
		PlatformDistribution: make([]types.PlatformCount, len(distribution)),
		RecentActivity:       make([]types.DayCount, len(activity)),
		TopPerformingPosts:   make([]types.TopPost, len(top)),
		Range:                rangeParam,
		Platform:             platform,
	}
	for i, d := range distribution {
		resp.PlatformDistribution[i] = types.PlatformCount{Platform: d.Platform, Count: d.Count}
	}
	for i, a := range activity {
		resp.RecentActivity[i] = types.DayCount{Date: a.Day, Count: a.Count}
	}
	for i, p := range top {
		resp.TopPerformingPosts[i] = types.TopPost{
			ID:             p.ID,
			Content:        p.Content,
			Platform:       p.Platform,
			Likes:          p.Likes,
			Shares:         p.Shares,
			EngagementRate: rate(p.Likes+p.Shares+p.Replies+p.Quotes, p.Impressions),
		}
	}

	return c.JSON(http.StatusOK, resp)
}

// Post returns live metrics, stored history and a summary for one post.
func (h *AnalyticsHandler) Post(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	id := c.Param("id")

	post, err := h.store.Queries.GetSocialMediaPost(ctx, db.GetSocialMediaPostParams{ID: id, UserID: userID})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return echo.NewHTTPError(http.StatusNotFound, "Gönderi bulunamadı")
		}
		slog.Error("failed to get post", "error", err, "post_id", id)
		return echo.NewHTTPError(http.StatusInternalServerError, "Gönderi analitiği alınamadı")
	}

	if !post.Posted {
		return c.JSON(http.StatusOK, types.PostAnalytics{
			PostID:  id,
			Status:  "not_published",
			Message: "Gönderi henüz yayınlanmamış",
		})
	}

	resp := types.PostAnalytics{
		PostID:         id,
		Platform:       post.Platform,
		Content:        post.Content,
		HistoricalData: []types.PostMetrics{},
	}
	if post.PostedAt.Valid {
		postedAt := post.PostedAt.Time
		resp.PostedAt = &postedAt
	}

	if post.ExternalID.Valid {
		if pub, err := h.publishers.For(social.Platform(post.Platform)); err == nil {
			creds, err := twitterCredentials(ctx, h.store.Queries, userID)
			if err != nil {
				slog.Error("failed to load twitter credentials", "error", err, "user_id", userID)
			} else if m, err := pub.Metrics(ctx, creds, post.ExternalID.String); err != nil {
				slog.Error("failed to fetch post metrics", "error", err, "post_id", id)
			} else {
				resp.CurrentMetrics = &types.PostMetrics{
					ExternalID:      m.ExternalID,
					RetweetCount:    m.Retweets,
					LikeCount:       m.Likes,
					ReplyCount:      m.Replies,
					QuoteCount:      m.Quotes,
					ImpressionCount: m.Impressions,
					CollectedAt:     m.CollectedAt,
				}
			}
		}
	}

	history, err := h.store.Queries.ListPostMetrics(ctx, db.ListPostMetricsParams{PostID: id, Limit: historyLimit})
	if err != nil {
		slog.Error("failed to list post metrics", "error", err, "post_id", id)
		return echo.NewHTTPError(http.StatusInternalServerError, "Gönderi analitiği alınamadı")
	}
	for _, m := range history {
		resp.HistoricalData = append(resp.HistoricalData, types.PostMetrics{
			ExternalID:      post.ExternalID.String,
			RetweetCount:    m.Shares,
			LikeCount:       m.Likes,
			ReplyCount:      m.Replies,
			QuoteCount:      m.Quotes,
			ImpressionCount: m.Impressions,
			CollectedAt:     m.CollectedAt,
		})
	}

	// Live metrics win; otherwise the latest snapshot is the current value.
	latest := resp.CurrentMetrics
	if latest == nil && len(resp.HistoricalData) > 0 {
		latest = &resp.HistoricalData[0]
	}
	summary := &types.PerformanceSummary{}
	if latest != nil {
		engagement := latest.LikeCount + latest.RetweetCount + latest.ReplyCount + latest.QuoteCount
		summary.TotalEngagement = engagement
		summary.EngagementRate = rate(engagement, latest.ImpressionCount)
		summary.Reach = latest.ImpressionCount
	}
	resp.PerformanceSummary = summary

	return c.JSON(http.StatusOK, resp)
}

func (h *AnalyticsHandler) Trends(c echo.Context) error {
	suggestions := make(map[string][]string, len(social.CategoryHashtags))
	for category, tags := range social.CategoryHashtags {
		suggestions[category] = append([]string(nil), tags...)
	}

	return c.JSON(http.StatusOK, types.Trends{
		TrendingHashtags:    append([]types.TrendingHashtag(nil), trendingHashtags...),
		CategorySuggestions: suggestions,
		UpdatedAt:           time.Now().UTC(),
		Location:            "Turkey",
	})
}

// PerformanceComparison reports per-platform averages over the last 30 days.
func (h *AnalyticsHandler) PerformanceComparison(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	rows, err := h.store.Queries.PlatformPerformance(c.Request().Context(), db.PlatformPerformanceParams{
		UserID: userID,
		Since:  comparisonSpan,
	})
	if err != nil {
		slog.Error("failed to load platform performance", "error", err, "user_id", userID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Performans karşılaştırması alınamadı")
	}

	byPlatform := make(map[string]db.PlatformPerformanceRow, len(rows))
	for _, r := range rows {
		byPlatform[r.Platform] = r
	}

	resp := types.PerformanceComparison{
		PlatformPerformance: make(map[string]types.PlatformPerformance, len(social.AllPlatforms)),
		Recommendations:     []string{},
		AnalysisPeriod:      "Son 30 gün",
		UpdatedAt:           time.Now().UTC(),
	}

	var best social.Platform
	var bestAvg float64
	for _, p := range social.AllPlatforms {
		r := byPlatform[string(p)]
		perf := types.PlatformPerformance{
			TotalPosts:     r.TotalPosts,
			TopContentType: platformContentTypes[p],
		}
		if r.TotalPosts > 0 {
			perf.AvgEngagement = average(r.Engagement, r.TotalPosts)
			perf.AvgReach = average(r.Impressions, r.TotalPosts)
			resp.Recommendations = append(resp.Recommendations, platformTips[p])
			if perf.AvgEngagement > bestAvg {
				best, bestAvg = p, perf.AvgEngagement
			}
		} else {
			resp.Recommendations = append(resp.Recommendations, string(p)+" için henüz gönderi yok, ilk gönderinizi oluşturun")
		}
		resp.PlatformPerformance[string(p)] = perf
	}
	if best != "" {
		resp.Recommendations = append([]string{"En yüksek etkileşim " + string(best) + " platformunda, içeriklerinize burada öncelik verin"}, resp.Recommendations...)
	}

	return c.JSON(http.StatusOK, resp)
}
