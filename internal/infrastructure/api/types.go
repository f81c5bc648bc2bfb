package api

// Wire shapes, mirrored field-for-field from the API responses. Amounts are
// stringified integers of minor units throughout.

type TokenResponse struct {
	Token string `json:"token"`
}

type Tag struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
}

type TagsResponse struct {
	Tags []Tag `json:"tags"`
}

type Record struct {
	ID          string `json:"_id"`
	Type        string `json:"type"` // "in" or "out"
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Tag         *Tag   `json:"tag"`
	Currency    string `json:"currency"`
	Date        string `json:"date"`
	CreatedAt   string `json:"createdAt"`
}

type RecordsResponse struct {
	Records []Record `json:"records"`
}

type CreateRecordRequest struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Amount      string `json:"amount"` // minor units
	Tag         string `json:"tag"`    // tag id
	Currency    string `json:"currency"`
	Date        string `json:"date"` // UTC instant, RFC 3339
}

// UpdateRecordRequest carries only the fields present in the partial update.
type UpdateRecordRequest map[string]any

type RecordGroup struct {
	ID      string   `json:"_id"` // "in" or "out"
	Total   string   `json:"total"`
	Records []Record `json:"records"`
}

type TagInfoResponse struct {
	Tag            Tag           `json:"tag"`
	RecordsGrouped []RecordGroup `json:"recordsGrouped"`
	Records        []Record      `json:"records"`
}

type DashboardResponse struct {
	Total   string `json:"total"`
	Records []struct {
		ID    string `json:"_id"` // "in" or "out"
		Total string `json:"total"`
	} `json:"records"`
}

type DashboardTotals struct {
	Income      string  `json:"income"`
	Expenses    string  `json:"expenses"`
	SavingsRate float64 `json:"savingsRate"`
	Balance     string  `json:"balance"`
}

type MonthlyBreakdown struct {
	Month    string `json:"month"`
	Income   string `json:"income"`
	Expenses string `json:"expenses"`
	Balance  string `json:"balance"`
}

type DashboardDataResponse struct {
	Totals  DashboardTotals    `json:"totals"`
	Monthly []MonthlyBreakdown `json:"monthly"`
}

type TrendShape struct {
	ChangePercent float64 `json:"changePercent"`
	Direction     string  `json:"direction"`
}

type CategoryShape struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

type DayShape struct {
	Date   string `json:"date"`
	Amount string `json:"amount"`
}

type WeekdayShape struct {
	Day    int    `json:"day"` // 0=Sunday .. 6=Saturday
	Amount string `json:"amount"`
}

// AnalyticsResponse is the server-computed form of the aggregation the client
// can also derive locally.
type AnalyticsResponse struct {
	TotalSpending    string        `json:"totalSpending"`
	TotalIncome      string        `json:"totalIncome"`
	DailyAverage     string        `json:"dailyAverage"`
	SavingsRate      float64       `json:"savingsRate"`
	SpendingTrend    TrendShape    `json:"spendingTrend"`
	TopCategory      CategoryShape `json:"topCategory"`
	PeakSpendingDay  DayShape      `json:"peakSpendingDay"`
	BusiestDay       WeekdayShape  `json:"busiestDay"`
	TransactionCount int           `json:"transactionCount"`
}

type InsightPeak struct {
	Period string `json:"period"` // daily, weekly, monthly, yearly
	Date   string `json:"date"`
	Amount string `json:"amount"`
}

type InsightTrend struct {
	Period    string  `json:"period"` // mom, yoy, wow
	Change    float64 `json:"change"`
	Direction string  `json:"direction"`
}

type InsightPattern struct {
	Type        string    `json:"type"` // cycle, seasonal, anomaly
	Description string    `json:"description"`
	Data        []float64 `json:"data"`
}

type InsightRecommendation struct {
	Type    string `json:"type"` // budget, saving, alert
	Message string `json:"message"`
}

type InsightsResponse struct {
	Peaks           []InsightPeak           `json:"peaks"`
	Trends          []InsightTrend          `json:"trends"`
	Patterns        []InsightPattern        `json:"patterns"`
	Recommendations []InsightRecommendation `json:"recommendations"`
}

type APIKey struct {
	ID          string   `json:"_id"`
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
	ExpiresAt   string   `json:"expiresAt"`
	CreatedAt   string   `json:"createdAt"`
	Active      bool     `json:"active"`
}

type APIKeysResponse struct {
	Keys []APIKey `json:"keys"`
}

type CreateAPIKeyRequest struct {
	Name        string   `json:"name"`
	Permissions []string `json:"permissions,omitempty"`
	ExpiresAt   string   `json:"expiresAt,omitempty"`
}

// CreateAPIKeyResponse carries the secret; it is shown once and never
// returned by the list endpoint.
type CreateAPIKeyResponse struct {
	APIKey      string   `json:"apiKey"`
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
	ExpiresAt   string   `json:"expiresAt"`
	CreatedAt   string   `json:"createdAt"`
}

type UpdateAPIKeyRequest struct {
	Permissions []string `json:"permissions,omitempty"`
	ExpiresAt   string   `json:"expiresAt,omitempty"`
	Active      *bool    `json:"active,omitempty"`
}

type UpdateAPIKeyResponse struct {
	Updated bool `json:"updated"`
}

type DeleteAPIKeyResponse struct {
	Message string `json:"message"`
}
