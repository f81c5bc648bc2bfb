package analytics

import (
	"fmt"

	"managesalary/internal/domain/money"
	"managesalary/internal/infrastructure/api"
)

// DashboardSummary is the grouped-totals view: overall total plus per-type
// subtotals, in major units.
type DashboardSummary struct {
	Total    float64
	Income   float64
	Expenses float64
}

// MonthBreakdown is one month's totals in major units.
type MonthBreakdown struct {
	Month    string
	Income   float64
	Expenses float64
	Balance  float64
}

// DashboardData is the pre-aggregated totals plus monthly breakdown.
type DashboardData struct {
	Income      float64
	Expenses    float64
	SavingsRate float64
	Balance     float64
	Monthly     []MonthBreakdown
}

// Peak is a spending spike the server flagged.
type Peak struct {
	Period string
	Date   string
	Amount float64
}

// Insights is the server-computed trends/peaks/patterns/recommendations
// bundle. Trends, patterns and recommendations carry no amounts and pass
// through unchanged.
type Insights struct {
	Peaks           []Peak
	Trends          []api.InsightTrend
	Patterns        []api.InsightPattern
	Recommendations []api.InsightRecommendation
}

// FromServer reshapes the server-computed aggregation into the same Summary
// the local pipeline produces. Malformed amounts are rejected rather than
// coerced to zero.
func FromServer(resp *api.AnalyticsResponse) (*Summary, error) {
	totalSpending, err := majorOf(resp.TotalSpending, "totalSpending")
	if err != nil {
		return nil, err
	}
	totalIncome, err := majorOf(resp.TotalIncome, "totalIncome")
	if err != nil {
		return nil, err
	}
	dailyAverage, err := majorOf(resp.DailyAverage, "dailyAverage")
	if err != nil {
		return nil, err
	}
	categoryAmount, err := majorOf(resp.TopCategory.Amount, "topCategory.amount")
	if err != nil {
		return nil, err
	}
	peakAmount, err := majorOf(resp.PeakSpendingDay.Amount, "peakSpendingDay.amount")
	if err != nil {
		return nil, err
	}
	weekdayAmount, err := majorOf(resp.BusiestDay.Amount, "busiestDay.amount")
	if err != nil {
		return nil, err
	}
	if resp.BusiestDay.Day < 0 || resp.BusiestDay.Day > 6 {
		return nil, fmt.Errorf("busiestDay.day %d out of range", resp.BusiestDay.Day)
	}

	return &Summary{
		TotalSpending: totalSpending,
		TotalIncome:   totalIncome,
		DailyAverage:  dailyAverage,
		SavingsRate:   resp.SavingsRate,
		SpendingTrend: Trend{
			ChangePercent: resp.SpendingTrend.ChangePercent,
			Direction:     Direction(resp.SpendingTrend.Direction),
		},
		TopCategory:      Category{Name: resp.TopCategory.Name, Amount: categoryAmount},
		PeakSpendingDay:  DayTotal{Date: resp.PeakSpendingDay.Date, Amount: peakAmount},
		BusiestDay:       WeekdayTotal{Day: resp.BusiestDay.Day, Amount: weekdayAmount},
		TransactionCount: resp.TransactionCount,
	}, nil
}

func reshapeDashboard(resp *api.DashboardResponse) (*DashboardSummary, error) {
	total, err := majorOf(resp.Total, "total")
	if err != nil {
		return nil, err
	}
	s := &DashboardSummary{Total: total}
	for _, g := range resp.Records {
		amount, err := majorOf(g.Total, g.ID)
		if err != nil {
			return nil, err
		}
		switch g.ID {
		case "in":
			s.Income = amount
		case "out":
			s.Expenses = amount
		}
	}
	return s, nil
}

func reshapeDashboardData(resp *api.DashboardDataResponse) (*DashboardData, error) {
	income, err := majorOf(resp.Totals.Income, "totals.income")
	if err != nil {
		return nil, err
	}
	expenses, err := majorOf(resp.Totals.Expenses, "totals.expenses")
	if err != nil {
		return nil, err
	}
	balance, err := majorOf(resp.Totals.Balance, "totals.balance")
	if err != nil {
		return nil, err
	}

	data := &DashboardData{
		Income:      income,
		Expenses:    expenses,
		SavingsRate: resp.Totals.SavingsRate,
		Balance:     balance,
		Monthly:     make([]MonthBreakdown, 0, len(resp.Monthly)),
	}
	for _, m := range resp.Monthly {
		mIncome, err := majorOf(m.Income, "monthly.income")
		if err != nil {
			return nil, err
		}
		mExpenses, err := majorOf(m.Expenses, "monthly.expenses")
		if err != nil {
			return nil, err
		}
		mBalance, err := majorOf(m.Balance, "monthly.balance")
		if err != nil {
			return nil, err
		}
		data.Monthly = append(data.Monthly, MonthBreakdown{
			Month:    m.Month,
			Income:   mIncome,
			Expenses: mExpenses,
			Balance:  mBalance,
		})
	}
	return data, nil
}

func reshapeInsights(resp *api.InsightsResponse) (*Insights, error) {
	out := &Insights{
		Trends:          resp.Trends,
		Patterns:        resp.Patterns,
		Recommendations: resp.Recommendations,
	}
	for _, p := range resp.Peaks {
		amount, err := majorOf(p.Amount, "peaks.amount")
		if err != nil {
			return nil, err
		}
		out.Peaks = append(out.Peaks, Peak{Period: p.Period, Date: p.Date, Amount: amount})
	}
	return out, nil
}

func majorOf(s, field string) (float64, error) {
	minor, err := money.ParseMinorString(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}
	return money.ToMajorUnits(minor), nil
}
