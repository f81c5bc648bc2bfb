package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"managesalary/internal/domain/analytics"
	"managesalary/internal/domain/record"
	"managesalary/internal/infrastructure/api"
)

func (a *app) runDashboard(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("dashboard", flag.ExitOnError)
	from := fs.String("from", "", "Range start (YYYY-MM-DD)")
	to := fs.String("to", "", "Range end (YYYY-MM-DD)")
	tagID := fs.String("tag", "", "Filter by tag id")
	monthly := fs.Bool("monthly", false, "Include the monthly breakdown")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *monthly {
		data, err := a.analytics.DashboardData(ctx, *tagID)
		if err != nil {
			return err
		}
		fmt.Printf("Income:       %.2f\n", data.Income)
		fmt.Printf("Expenses:     %.2f\n", data.Expenses)
		fmt.Printf("Balance:      %.2f\n", data.Balance)
		fmt.Printf("Savings rate: %.1f%%\n\n", data.SavingsRate)

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "MONTH\tINCOME\tEXPENSES\tBALANCE")
		for _, m := range data.Monthly {
			fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.2f\n", m.Month, m.Income, m.Expenses, m.Balance)
		}
		return w.Flush()
	}

	summary, err := a.analytics.Dashboard(ctx, api.RangeParams{From: *from, To: *to, Tag: *tagID})
	if err != nil {
		return err
	}
	fmt.Printf("Income:   %.2f\n", summary.Income)
	fmt.Printf("Expenses: %.2f\n", summary.Expenses)
	fmt.Printf("Balance:  %.2f\n", summary.Total)
	return nil
}

func (a *app) runAnalytics(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("analytics", flag.ExitOnError)
	from := fs.String("from", "", "Range start (YYYY-MM-DD)")
	to := fs.String("to", "", "Range end (YYYY-MM-DD)")
	tagID := fs.String("tag", "", "Filter by tag id")
	local := fs.Bool("local", false, "Aggregate locally over fetched records instead of asking the server")
	if err := fs.Parse(args); err != nil {
		return err
	}

	rng := record.DateRange{From: *from, To: *to}
	if err := rng.Validate(); err != nil {
		return err
	}

	var summary *analytics.Summary
	if *local {
		records, err := a.fetchAllRecords(ctx, record.ListParams{
			Limit: 100,
			Type:  "all",
			Tag:   *tagID,
			Range: rng,
		})
		if err != nil {
			return err
		}
		summary = analytics.Aggregate(records, rng, time.Now().UTC())
	} else {
		var err error
		summary, err = a.analytics.Analytics(ctx, api.RangeParams{From: *from, To: *to, Tag: *tagID})
		if err != nil {
			return err
		}
	}

	if summary == nil {
		fmt.Println("No spending data for this range.")
		return nil
	}
	renderSummary(summary)
	return nil
}

func (a *app) fetchAllRecords(ctx context.Context, params record.ListParams) ([]record.Record, error) {
	pager := a.records.NewPager(params)
	for {
		_, more, err := pager.FetchNextPage(ctx)
		if err != nil {
			return nil, err
		}
		if !more {
			return pager.Records(), nil
		}
	}
}

func renderSummary(s *analytics.Summary) {
	fmt.Printf("Total spending:   %.2f (%d transactions)\n", s.TotalSpending, s.TransactionCount)
	fmt.Printf("Total income:     %.2f\n", s.TotalIncome)
	fmt.Printf("Daily average:    %.2f\n", s.DailyAverage)
	fmt.Printf("Savings rate:     %.1f%%\n", s.SavingsRate)

	switch s.SpendingTrend.Direction {
	case analytics.DirectionNeutral:
		fmt.Println("Spending trend:   stable")
	default:
		fmt.Printf("Spending trend:   %.0f%% %s vs previous period\n",
			abs(s.SpendingTrend.ChangePercent), s.SpendingTrend.Direction)
	}

	fmt.Printf("Top category:     %s (%.2f)\n", s.TopCategory.Name, s.TopCategory.Amount)
	fmt.Printf("Peak day:         %s (%.2f)\n", s.PeakSpendingDay.Date, s.PeakSpendingDay.Amount)
	fmt.Printf("Busiest weekday:  %s (%.2f)\n", analytics.WeekdayName(s.BusiestDay.Day), s.BusiestDay.Amount)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func (a *app) runInsights(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("insights", flag.ExitOnError)
	from := fs.String("from", "", "Range start (YYYY-MM-DD)")
	to := fs.String("to", "", "Range end (YYYY-MM-DD)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	insights, err := a.analytics.Insights(ctx, api.RangeParams{From: *from, To: *to})
	if err != nil {
		return err
	}

	if len(insights.Peaks) > 0 {
		fmt.Println("Peaks:")
		for _, p := range insights.Peaks {
			fmt.Printf("  %s\t%s\t%.2f\n", p.Period, p.Date, p.Amount)
		}
	}
	if len(insights.Trends) > 0 {
		fmt.Println("Trends:")
		for _, t := range insights.Trends {
			fmt.Printf("  %s\t%+.1f%%\t%s\n", t.Period, t.Change, t.Direction)
		}
	}
	if len(insights.Patterns) > 0 {
		fmt.Println("Patterns:")
		for _, p := range insights.Patterns {
			fmt.Printf("  %s\t%s\n", p.Type, p.Description)
		}
	}
	if len(insights.Recommendations) > 0 {
		fmt.Println("Recommendations:")
		for _, r := range insights.Recommendations {
			fmt.Printf("  [%s] %s\n", r.Type, r.Message)
		}
	}
	if len(insights.Peaks)+len(insights.Trends)+len(insights.Patterns)+len(insights.Recommendations) == 0 {
		fmt.Println("No insights for this range.")
	}
	return nil
}
