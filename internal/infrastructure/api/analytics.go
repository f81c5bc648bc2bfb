package api

import (
	"context"
	"net/http"
	"net/url"
)

// RangeParams is the {from,to,tag} filter shared by the analytics-flavored
// endpoints. Empty strings mean unbounded / unfiltered.
type RangeParams struct {
	From string
	To   string
	Tag  string
}

func (p RangeParams) Query() url.Values {
	q := url.Values{}
	if p.From != "" {
		q.Set("from", p.From)
	}
	if p.To != "" {
		q.Set("to", p.To)
	}
	if p.Tag != "" {
		q.Set("tag", p.Tag)
	}
	return q
}

// Dashboard returns grouped totals by record type.
func (c *Client) Dashboard(ctx context.Context, params RangeParams) (*DashboardResponse, error) {
	var resp DashboardResponse
	if err := c.do(ctx, http.MethodGet, "/records/dashboard", params.Query(), nil, &resp, true); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DashboardData returns pre-aggregated totals plus the monthly breakdown.
func (c *Client) DashboardData(ctx context.Context, tag string) (*DashboardDataResponse, error) {
	q := url.Values{}
	if tag != "" {
		q.Set("tag", tag)
	}
	var resp DashboardDataResponse
	if err := c.do(ctx, http.MethodGet, "/records/dashboard-data", q, nil, &resp, true); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Analytics returns the server-computed aggregation for a date range.
func (c *Client) Analytics(ctx context.Context, params RangeParams) (*AnalyticsResponse, error) {
	var resp AnalyticsResponse
	if err := c.do(ctx, http.MethodGet, "/records/analytics", params.Query(), nil, &resp, true); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Insights returns server-computed trends, peaks, patterns and
// recommendations.
func (c *Client) Insights(ctx context.Context, params RangeParams) (*InsightsResponse, error) {
	var resp InsightsResponse
	if err := c.do(ctx, http.MethodGet, "/records/insights", params.Query(), nil, &resp, true); err != nil {
		return nil, err
	}
	return &resp, nil
}
