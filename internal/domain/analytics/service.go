package analytics

import (
	"context"

	"managesalary/internal/infrastructure/api"
	"managesalary/internal/shared/swr"
)

// API is the slice of the remote client this service needs.
type API interface {
	Dashboard(ctx context.Context, params api.RangeParams) (*api.DashboardResponse, error)
	DashboardData(ctx context.Context, tag string) (*api.DashboardDataResponse, error)
	Analytics(ctx context.Context, params api.RangeParams) (*api.AnalyticsResponse, error)
	Insights(ctx context.Context, params api.RangeParams) (*api.InsightsResponse, error)
}

// Service fetches the server-computed aggregations, cached per parameter set
// under the /records prefix so record mutations invalidate them.
type Service struct {
	api   API
	cache *swr.Store
}

func NewService(apiClient API, cache *swr.Store) *Service {
	return &Service{api: apiClient, cache: cache}
}

func (s *Service) Dashboard(ctx context.Context, params api.RangeParams) (*DashboardSummary, error) {
	key := swr.Key("/records/dashboard", params.Query())
	return swr.Get(ctx, s.cache, key, func(ctx context.Context) (*DashboardSummary, error) {
		resp, err := s.api.Dashboard(ctx, params)
		if err != nil {
			return nil, err
		}
		return reshapeDashboard(resp)
	})
}

func (s *Service) DashboardData(ctx context.Context, tag string) (*DashboardData, error) {
	key := swr.Key("/records/dashboard-data", api.RangeParams{Tag: tag}.Query())
	return swr.Get(ctx, s.cache, key, func(ctx context.Context) (*DashboardData, error) {
		resp, err := s.api.DashboardData(ctx, tag)
		if err != nil {
			return nil, err
		}
		return reshapeDashboardData(resp)
	})
}

// Analytics returns the server's aggregation for the range, reshaped to the
// local Summary form.
func (s *Service) Analytics(ctx context.Context, params api.RangeParams) (*Summary, error) {
	key := swr.Key("/records/analytics", params.Query())
	return swr.Get(ctx, s.cache, key, func(ctx context.Context) (*Summary, error) {
		resp, err := s.api.Analytics(ctx, params)
		if err != nil {
			return nil, err
		}
		return FromServer(resp)
	})
}

func (s *Service) Insights(ctx context.Context, params api.RangeParams) (*Insights, error) {
	key := swr.Key("/records/insights", params.Query())
	return swr.Get(ctx, s.cache, key, func(ctx context.Context) (*Insights, error) {
		resp, err := s.api.Insights(ctx, params)
		if err != nil {
			return nil, err
		}
		return reshapeInsights(resp)
	})
}
