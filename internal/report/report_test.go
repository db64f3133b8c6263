package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loganlanou/dealerpost/internal/types"
)

func TestWrite(t *testing.T) {
	tests := []struct {
		name string
		in   Analytics
	}{
		{
			name: "empty dashboard",
			in: Analytics{
				Email:       "satici@example.com",
				GeneratedAt: time.Date(2026, 1, 2, 15, 4, 0, 0, time.UTC),
				Dashboard:   types.DashboardAnalytics{Range: "30d", Platform: "all"},
			},
		},
		{
			name: "full dashboard with trends",
			in: Analytics{
				Email:       "satici@example.com",
				GeneratedAt: time.Now(),
				Dashboard: types.DashboardAnalytics{
					TotalPosts:           4,
					PublishedPosts:       2,
					EngagementRate:       3.4,
					TotalImpressions:     1000,
					TotalEngagement:      34,
					PlatformDistribution: []types.PlatformCount{{Platform: "twitter", Count: 3}, {Platform: "instagram", Count: 1}},
					RecentActivity:       []types.DayCount{{Date: "2026-01-01", Count: 2}},
					TopPerformingPosts: []types.TopPost{
						{ID: "p1", Content: "Şık ve güçlü kulaklık, şimdi indirimde! #Amazon", Platform: "twitter", Likes: 20, Shares: 4, EngagementRate: 2.4},
					},
					Range:    "7d",
					Platform: "twitter",
				},
				Trends: &types.Trends{TrendingHashtags: []types.TrendingHashtag{{Hashtag: "#Teknoloji", TweetCount: 15420, TrendScore: 95}}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, tt.in))
			assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
		})
	}
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Son 7 gün", rangeLabel("7d"))
	assert.Equal(t, "Son 30 gün", rangeLabel(""))
	assert.Equal(t, "Tümü", platformLabel("all"))
	assert.Equal(t, "TikTok", platformLabel("tiktok"))
}
