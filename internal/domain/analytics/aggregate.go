package analytics

import (
	"time"

	"managesalary/internal/domain/record"
	"managesalary/internal/domain/tag"
)

const dateLayout = "2006-01-02"

// Aggregate computes a Summary over records scoped to rng. The recent/older
// trend split is anchored at now, not at the range end. Returns nil when the
// set has no outflow.
//
// Pure function: no I/O, deterministic for a fixed input order and now. Ties
// in the grouping steps go to the first-encountered key.
func Aggregate(records []record.Record, rng record.DateRange, now time.Time) *Summary {
	var outflow, inflow []record.Record
	for _, r := range records {
		switch r.Type {
		case record.TypeOut:
			outflow = append(outflow, r)
		case record.TypeIn:
			inflow = append(inflow, r)
		}
	}
	if len(outflow) == 0 {
		return nil
	}

	var totalSpending, totalIncome float64
	for _, r := range outflow {
		totalSpending += r.Amount
	}
	for _, r := range inflow {
		totalIncome += r.Amount
	}

	days := rng.Days(now)

	savingsRate := 0.0
	if totalIncome > 0 {
		savingsRate = (totalIncome - totalSpending) / totalIncome * 100
	}

	return &Summary{
		TotalSpending:    totalSpending,
		TotalIncome:      totalIncome,
		DailyAverage:     totalSpending / float64(days),
		SavingsRate:      savingsRate,
		SpendingTrend:    trend(outflow, now),
		TopCategory:      topCategory(outflow),
		PeakSpendingDay:  peakDay(outflow),
		BusiestDay:       busiestWeekday(outflow),
		TransactionCount: len(outflow),
	}
}

// trend splits outflow at now minus 30 days and compares per-day averages.
// The count/30 divisor is deliberately coarse: it estimates window length
// from transaction density rather than counting actual days. Keep it; the
// displayed numbers depend on it.
func trend(outflow []record.Record, now time.Time) Trend {
	cutoff := now.AddDate(0, 0, -30)

	var recentTotal, olderTotal float64
	var recentCount, olderCount int
	for _, r := range outflow {
		if !r.Date.Before(cutoff) {
			recentTotal += r.Amount
			recentCount++
		} else {
			olderTotal += r.Amount
			olderCount++
		}
	}

	recentAvg := windowAverage(recentTotal, recentCount)
	olderAvg := windowAverage(olderTotal, olderCount)

	t := Trend{Direction: DirectionNeutral}
	if olderAvg > 0 {
		t.ChangePercent = (recentAvg - olderAvg) / olderAvg * 100
	}
	switch {
	case t.ChangePercent > 5:
		t.Direction = DirectionUp
	case t.ChangePercent < -5:
		t.Direction = DirectionDown
	}
	return t
}

func windowAverage(total float64, count int) float64 {
	if count == 0 {
		return 0
	}
	divisor := float64(count) / 30
	if divisor < 1 {
		divisor = 1
	}
	return total / divisor
}

// grouped sums outflow amounts per key while preserving first-encounter
// order, so the max scan below never depends on map iteration order.
type grouped struct {
	keys   []string
	totals map[string]float64
}

func groupBy(outflow []record.Record, keyOf func(record.Record) string) grouped {
	g := grouped{totals: make(map[string]float64)}
	for _, r := range outflow {
		key := keyOf(r)
		if _, seen := g.totals[key]; !seen {
			g.keys = append(g.keys, key)
		}
		g.totals[key] += r.Amount
	}
	return g
}

// max returns the first-seen key with the strictly largest total.
func (g grouped) max() (string, float64) {
	var bestKey string
	var bestAmount float64
	for _, key := range g.keys {
		if g.totals[key] > bestAmount {
			bestKey, bestAmount = key, g.totals[key]
		}
	}
	return bestKey, bestAmount
}

func topCategory(outflow []record.Record) Category {
	g := groupBy(outflow, func(r record.Record) string {
		if r.Tag.Name == "" {
			return tag.Untagged.Name
		}
		return r.Tag.Name
	})
	name, amount := g.max()
	return Category{Name: name, Amount: amount}
}

func peakDay(outflow []record.Record) DayTotal {
	g := groupBy(outflow, func(r record.Record) string {
		return r.Date.Format(dateLayout)
	})
	day, amount := g.max()
	return DayTotal{Date: day, Amount: amount}
}

func busiestWeekday(outflow []record.Record) WeekdayTotal {
	g := groupBy(outflow, func(r record.Record) string {
		return r.Date.Weekday().String()
	})
	name, amount := g.max()
	for day, candidate := range weekdayNames {
		if candidate == name {
			return WeekdayTotal{Day: day, Amount: amount}
		}
	}
	return WeekdayTotal{}
}
