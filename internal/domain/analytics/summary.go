// Package analytics derives spending summaries from records. The canonical
// form computes everything locally over an in-memory record list; the server
// endpoints return the same shape pre-computed and are reshaped at the
// boundary.
package analytics

// Direction classifies a spending trend. The plus/minus five percent
// dead-band keeps small fluctuations from flapping between up and down.
type Direction string

const (
	DirectionUp      Direction = "up"
	DirectionDown    Direction = "down"
	DirectionNeutral Direction = "neutral"
)

// Trend compares the recent 30-day spending window against the older
// remainder.
type Trend struct {
	ChangePercent float64
	Direction     Direction
}

// Category is a per-tag spending total.
type Category struct {
	Name   string
	Amount float64
}

// DayTotal is spending summed over one calendar day.
type DayTotal struct {
	Date   string // YYYY-MM-DD
	Amount float64
}

// WeekdayTotal is spending summed over one day of the week.
type WeekdayTotal struct {
	Day    int // 0=Sunday .. 6=Saturday
	Amount float64
}

// Summary is the aggregation result, all amounts in major units. A nil
// *Summary means "no outflow data", which callers render as a distinct empty
// state rather than zeros.
type Summary struct {
	TotalSpending    float64
	TotalIncome      float64
	DailyAverage     float64
	SavingsRate      float64
	SpendingTrend    Trend
	TopCategory      Category
	PeakSpendingDay  DayTotal
	BusiestDay       WeekdayTotal
	TransactionCount int
}

var weekdayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// WeekdayName spells out a 0-based day-of-week index.
func WeekdayName(day int) string {
	if day < 0 || day > 6 {
		return ""
	}
	return weekdayNames[day]
}
