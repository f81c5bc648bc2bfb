package analytics

import (
	"context"
	"testing"
	"time"

	"managesalary/internal/infrastructure/api"
	"managesalary/internal/infrastructure/cache"
	"managesalary/internal/shared/swr"
)

// MockAPI is a mock implementation of the API interface.
type MockAPI struct {
	DashboardFunc     func(ctx context.Context, params api.RangeParams) (*api.DashboardResponse, error)
	DashboardDataFunc func(ctx context.Context, tag string) (*api.DashboardDataResponse, error)
	AnalyticsFunc     func(ctx context.Context, params api.RangeParams) (*api.AnalyticsResponse, error)
	InsightsFunc      func(ctx context.Context, params api.RangeParams) (*api.InsightsResponse, error)
}

func (m *MockAPI) Dashboard(ctx context.Context, params api.RangeParams) (*api.DashboardResponse, error) {
	return m.DashboardFunc(ctx, params)
}

func (m *MockAPI) DashboardData(ctx context.Context, tag string) (*api.DashboardDataResponse, error) {
	return m.DashboardDataFunc(ctx, tag)
}

func (m *MockAPI) Analytics(ctx context.Context, params api.RangeParams) (*api.AnalyticsResponse, error) {
	return m.AnalyticsFunc(ctx, params)
}

func (m *MockAPI) Insights(ctx context.Context, params api.RangeParams) (*api.InsightsResponse, error) {
	return m.InsightsFunc(ctx, params)
}

func TestFromServer_ConvertsMinorUnits(t *testing.T) {
	resp := &api.AnalyticsResponse{
		TotalSpending: "20000",
		TotalIncome:   "100000",
		DailyAverage:  "667",
		SavingsRate:   80,
		SpendingTrend: api.TrendShape{ChangePercent: 12.5, Direction: "up"},
		TopCategory:   api.CategoryShape{Name: "Food", Amount: "20000"},
		PeakSpendingDay: api.DayShape{
			Date:   "2024-01-02",
			Amount: "15000",
		},
		BusiestDay:       api.WeekdayShape{Day: 2, Amount: "15000"},
		TransactionCount: 2,
	}

	got, err := FromServer(resp)
	if err != nil {
		t.Fatalf("FromServer() failed: %v", err)
	}
	if got.TotalSpending != 200 {
		t.Errorf("TotalSpending = %v, want 200", got.TotalSpending)
	}
	if got.TotalIncome != 1000 {
		t.Errorf("TotalIncome = %v, want 1000", got.TotalIncome)
	}
	if got.TopCategory != (Category{Name: "Food", Amount: 200}) {
		t.Errorf("TopCategory = %+v", got.TopCategory)
	}
	if got.SpendingTrend.Direction != DirectionUp {
		t.Errorf("Direction = %q", got.SpendingTrend.Direction)
	}
}

func TestFromServer_RejectsMalformedAmount(t *testing.T) {
	resp := &api.AnalyticsResponse{TotalSpending: "banana"}
	if _, err := FromServer(resp); err == nil {
		t.Error("FromServer() accepted a non-numeric amount")
	}
}

func TestDashboard_ReshapesGroupedTotals(t *testing.T) {
	mock := &MockAPI{
		DashboardFunc: func(ctx context.Context, params api.RangeParams) (*api.DashboardResponse, error) {
			return &api.DashboardResponse{
				Total: "80000",
				Records: []struct {
					ID    string `json:"_id"`
					Total string `json:"total"`
				}{
					{ID: "in", Total: "100000"},
					{ID: "out", Total: "20000"},
				},
			}, nil
		},
	}
	svc := NewService(mock, swr.New(cache.NewMemory(), time.Minute))

	got, err := svc.Dashboard(context.Background(), api.RangeParams{From: "2024-01-01", To: "2024-01-31"})
	if err != nil {
		t.Fatalf("Dashboard() failed: %v", err)
	}
	if got.Total != 800 || got.Income != 1000 || got.Expenses != 200 {
		t.Errorf("Dashboard() = %+v, want 800/1000/200", got)
	}
}

func TestAnalytics_CachedPerRange(t *testing.T) {
	calls := 0
	mock := &MockAPI{
		AnalyticsFunc: func(ctx context.Context, params api.RangeParams) (*api.AnalyticsResponse, error) {
			calls++
			return &api.AnalyticsResponse{
				TotalSpending: "100",
				TotalIncome:   "0",
				DailyAverage:  "100",
			}, nil
		},
	}
	svc := NewService(mock, swr.New(cache.NewMemory(), time.Minute))
	ctx := context.Background()

	jan := api.RangeParams{From: "2024-01-01", To: "2024-01-31"}
	svc.Analytics(ctx, jan)
	svc.Analytics(ctx, jan) // cached
	svc.Analytics(ctx, api.RangeParams{From: "2024-02-01", To: "2024-02-29"})

	if calls != 2 {
		t.Errorf("Analytics called %d times, want 2", calls)
	}
}

func TestInsights_ConvertsPeakAmounts(t *testing.T) {
	mock := &MockAPI{
		InsightsFunc: func(ctx context.Context, params api.RangeParams) (*api.InsightsResponse, error) {
			return &api.InsightsResponse{
				Peaks: []api.InsightPeak{{Period: "daily", Date: "2024-01-02", Amount: "15000"}},
				Recommendations: []api.InsightRecommendation{
					{Type: "budget", Message: "Food is trending over budget"},
				},
			}, nil
		},
	}
	svc := NewService(mock, swr.New(cache.NewMemory(), time.Minute))

	got, err := svc.Insights(context.Background(), api.RangeParams{})
	if err != nil {
		t.Fatalf("Insights() failed: %v", err)
	}
	if len(got.Peaks) != 1 || got.Peaks[0].Amount != 150 {
		t.Errorf("Peaks = %+v, want one peak of 150", got.Peaks)
	}
	if len(got.Recommendations) != 1 {
		t.Errorf("Recommendations = %+v", got.Recommendations)
	}
}
