// Package types holds the JSON shapes exchanged between the /api handlers
// and their clients.
package types

import "time"

type Product struct {
	ASIN        string   `json:"asin"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Currency    string   `json:"currency"`
	ImageURLs   []string `json:"image_urls"`
	Category    string   `json:"category"`
	Brand       string   `json:"brand"`
}

type Post struct {
	ID          string     `json:"id"`
	Content     string     `json:"content"`
	Platform    string     `json:"platform"`
	AIGenerated bool       `json:"ai_generated"`
	Posted      bool       `json:"posted"`
	ProductID   string     `json:"product_id,omitempty"`
	PostURL     string     `json:"post_url,omitempty"`
	ExternalID  string     `json:"external_id,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	PostedAt    *time.Time `json:"posted_at,omitempty"`
}

type Message struct {
	Message string `json:"message"`
}

type SyncResponse struct {
	Message string `json:"message"`
	Created int    `json:"created"`
	Updated int    `json:"updated"`
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// GeneratePostRequest asks for a new draft. GenerateAI defaults to true
// when omitted.
type GeneratePostRequest struct {
	ProductID     string `json:"product_id"`
	Platform      string `json:"platform,omitempty"`
	CustomContent string `json:"custom_content,omitempty"`
	GenerateAI    *bool  `json:"generate_ai,omitempty"`
}

type VariationsResponse struct {
	ProductID  string   `json:"product_id"`
	Platform   string   `json:"platform"`
	Variations []string `json:"variations"`
}

type PublishResponse struct {
	Success  bool   `json:"success"`
	Platform string `json:"platform"`
	PostURL  string `json:"post_url"`
	Message  string `json:"message"`
}

type PlatformCount struct {
	Platform string `json:"platform"`
	Count    int64  `json:"count"`
}

type DayCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type TopPost struct {
	ID             string  `json:"id"`
	Content        string  `json:"content"`
	Platform       string  `json:"platform"`
	Likes          int64   `json:"likes"`
	Shares         int64   `json:"shares"`
	EngagementRate float64 `json:"engagement_rate"`
}

type DashboardAnalytics struct {
	TotalPosts           int64           `json:"total_posts"`
	PublishedPosts       int64           `json:"published_posts"`
	EngagementRate       float64         `json:"engagement_rate"`
	PlatformDistribution []PlatformCount `json:"platform_distribution"`
	RecentActivity       []DayCount      `json:"recent_activity"`
	TopPerformingPosts   []TopPost       `json:"top_performing_posts"`
	TotalImpressions     int64           `json:"total_impressions"`
	TotalEngagement      int64           `json:"total_engagement"`
	Range                string          `json:"range"`
	Platform             string          `json:"platform"`
}

type PostMetrics struct {
	ExternalID      string    `json:"tweet_id"`
	RetweetCount    int64     `json:"retweet_count"`
	LikeCount       int64     `json:"like_count"`
	ReplyCount      int64     `json:"reply_count"`
	QuoteCount      int64     `json:"quote_count"`
	ImpressionCount int64     `json:"impression_count"`
	CollectedAt     time.Time `json:"collected_at"`
}

type PerformanceSummary struct {
	TotalEngagement int64   `json:"total_engagement"`
	EngagementRate  float64 `json:"engagement_rate"`
	Reach           int64   `json:"reach"`
}

// PostAnalytics is returned for a post; only PostID, Status and Message
// are set while the post is still a draft.
type PostAnalytics struct {
	PostID             string              `json:"post_id"`
	Status             string              `json:"status,omitempty"`
	Message            string              `json:"message,omitempty"`
	Platform           string              `json:"platform,omitempty"`
	Content            string              `json:"content,omitempty"`
	PostedAt           *time.Time          `json:"posted_at,omitempty"`
	CurrentMetrics     *PostMetrics        `json:"current_metrics,omitempty"`
	HistoricalData     []PostMetrics       `json:"historical_data,omitempty"`
	PerformanceSummary *PerformanceSummary `json:"performance_summary,omitempty"`
}

type TrendingHashtag struct {
	Hashtag    string `json:"hashtag"`
	TweetCount int64  `json:"tweet_count"`
	TrendScore int    `json:"trend_score"`
}

type Trends struct {
	TrendingHashtags    []TrendingHashtag   `json:"trending_hashtags"`
	CategorySuggestions map[string][]string `json:"category_suggestions"`
	UpdatedAt           time.Time           `json:"updated_at"`
	Location            string              `json:"location"`
}

type PlatformPerformance struct {
	TotalPosts     int64   `json:"total_posts"`
	AvgEngagement  float64 `json:"avg_engagement"`
	AvgReach       float64 `json:"avg_reach"`
	TopContentType string  `json:"top_content_type"`
}

type PerformanceComparison struct {
	PlatformPerformance map[string]PlatformPerformance `json:"platform_performance"`
	Recommendations     []string                       `json:"recommendations"`
	AnalysisPeriod      string                         `json:"analysis_period"`
	UpdatedAt           time.Time                      `json:"updated_at"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
}

type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	IsActive bool   `json:"is_active"`
}

type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type AmazonConnection struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	RefreshToken string `json:"refresh_token"`
	SellerID     string `json:"seller_id,omitempty"`
}

type TwitterConnection struct {
	ConsumerKey       string `json:"consumer_key"`
	ConsumerSecret    string `json:"consumer_secret"`
	AccessToken       string `json:"access_token"`
	AccessTokenSecret string `json:"access_token_secret"`
}

type ConnectionStatus struct {
	AmazonConnected  bool   `json:"amazon_connected"`
	TwitterConnected bool   `json:"twitter_connected"`
	UserID           string `json:"user_id"`
	Email            string `json:"email"`
}

// ErrorResponse is the body of every non-2xx /api response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
