package apiclient

import (
	"context"
	"net/url"
)

// AnalyticsFilter narrows the dashboard snapshot. Empty fields use the
// server defaults.
type AnalyticsFilter struct {
	Range    string
	Platform string
}

func (c *Client) DashboardAnalytics(ctx context.Context, f AnalyticsFilter) (*DashboardAnalytics, error) {
	v := url.Values{}
	if f.Range != "" {
		v.Set("range", f.Range)
	}
	if f.Platform != "" {
		v.Set("platform", f.Platform)
	}
	path := "/api/analytics/dashboard"
	if len(v) > 0 {
		path += "?" + v.Encode()
	}

	var resp DashboardAnalytics
	if err := c.getJSON(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) PostAnalytics(ctx context.Context, id string) (*PostAnalytics, error) {
	var resp PostAnalytics
	if err := c.getJSON(ctx, "/api/analytics/post/"+url.PathEscape(id), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Trends(ctx context.Context) (*Trends, error) {
	var resp Trends
	if err := c.getJSON(ctx, "/api/analytics/trends", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) PerformanceComparison(ctx context.Context) (*PerformanceComparison, error) {
	var resp PerformanceComparison
	if err := c.getJSON(ctx, "/api/analytics/performance/comparison", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
