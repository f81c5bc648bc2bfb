package record

import (
	"fmt"
	"time"

	"managesalary/internal/domain/money"
	"managesalary/internal/domain/tag"
	"managesalary/internal/infrastructure/api"
)

type Type string

const (
	TypeIn  Type = "in"
	TypeOut Type = "out"
)

func (t Type) Valid() bool {
	return t == TypeIn || t == TypeOut
}

// Record is a single income or expense transaction. Amount is in major units
// (dollars); sign is implied by Type, never by the value.
type Record struct {
	ID          string    `json:"id"`
	Type        Type      `json:"type"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"` // date-only semantics
	Tag         tag.Tag   `json:"tag"`
	Currency    string    `json:"currency"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ValidationError is a pre-submit failure. It is produced before any network
// call, so callers can tell bad input apart from a server problem.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// DateRange scopes a query to [From, To] calendar dates (ISO YYYY-MM-DD). An
// empty bound is unbounded on that side.
type DateRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

const dateLayout = "2006-01-02"

func (r DateRange) Validate() error {
	from, to, err := r.parse()
	if err != nil {
		return err
	}
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return &ValidationError{Field: "dateRange", Reason: "from must not be after to"}
	}
	return nil
}

func (r DateRange) parse() (from, to time.Time, err error) {
	if r.From != "" {
		from, err = time.Parse(dateLayout, r.From)
		if err != nil {
			return from, to, &ValidationError{Field: "from", Reason: fmt.Sprintf("%q is not a date", r.From)}
		}
	}
	if r.To != "" {
		to, err = time.Parse(dateLayout, r.To)
		if err != nil {
			return from, to, &ValidationError{Field: "to", Reason: fmt.Sprintf("%q is not a date", r.To)}
		}
	}
	return from, to, nil
}

// Days returns the number of days the range covers, at least 1. Absent bounds
// default to the current calendar year of now.
func (r DateRange) Days(now time.Time) int {
	from, to, err := r.parse()
	if err != nil {
		return 1
	}
	if from.IsZero() {
		from = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	if to.IsZero() {
		to = time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)
	}

	days := int(to.Sub(from).Hours() / 24)
	if days < 1 {
		return 1
	}
	return days
}

// CreateParams is form-style input for a new record. Amount is a major-unit
// string as typed by the user.
type CreateParams struct {
	Type        string
	Amount      string
	Description string
	Tag         string // tag id
	Date        string // YYYY-MM-DD
}

// Validate checks every field and builds the wire request: amount converted
// to minor units, date widened to a UTC instant, currency pinned to USD.
func (p CreateParams) Validate() (api.CreateRecordRequest, error) {
	var req api.CreateRecordRequest

	amount, err := money.ParseMajor(p.Amount)
	if err != nil {
		return req, &ValidationError{Field: "amount", Reason: err.Error()}
	}
	if !Type(p.Type).Valid() {
		return req, &ValidationError{Field: "type", Reason: fmt.Sprintf("%q is not \"in\" or \"out\"", p.Type)}
	}
	if p.Tag == "" {
		return req, &ValidationError{Field: "tag", Reason: "tag is required"}
	}
	if p.Description == "" {
		return req, &ValidationError{Field: "description", Reason: "description is required"}
	}
	date, err := time.Parse(dateLayout, p.Date)
	if err != nil {
		return req, &ValidationError{Field: "date", Reason: fmt.Sprintf("%q is not a date", p.Date)}
	}

	return api.CreateRecordRequest{
		Type:        p.Type,
		Description: p.Description,
		Amount:      fmt.Sprintf("%d", money.ToMinorUnits(amount)),
		Tag:         p.Tag,
		Currency:    "USD",
		Date:        date.UTC().Format(time.RFC3339),
	}, nil
}

// UpdateParams is a partial update; only non-nil fields are validated and
// sent.
type UpdateParams struct {
	Type        *string
	Amount      *string
	Description *string
	Tag         *string
	Date        *string
}

// Validate applies the per-field checks to the fields present and builds the
// partial wire body.
func (p UpdateParams) Validate() (api.UpdateRecordRequest, error) {
	req := api.UpdateRecordRequest{}

	if p.Amount != nil {
		amount, err := money.ParseMajor(*p.Amount)
		if err != nil {
			return nil, &ValidationError{Field: "amount", Reason: err.Error()}
		}
		req["amount"] = fmt.Sprintf("%d", money.ToMinorUnits(amount))
	}
	if p.Type != nil {
		if !Type(*p.Type).Valid() {
			return nil, &ValidationError{Field: "type", Reason: fmt.Sprintf("%q is not \"in\" or \"out\"", *p.Type)}
		}
		req["type"] = *p.Type
	}
	if p.Description != nil {
		if *p.Description == "" {
			return nil, &ValidationError{Field: "description", Reason: "description is required"}
		}
		req["description"] = *p.Description
	}
	if p.Tag != nil {
		if *p.Tag == "" {
			return nil, &ValidationError{Field: "tag", Reason: "tag is required"}
		}
		req["tag"] = *p.Tag
	}
	if p.Date != nil {
		date, err := time.Parse(dateLayout, *p.Date)
		if err != nil {
			return nil, &ValidationError{Field: "date", Reason: fmt.Sprintf("%q is not a date", *p.Date)}
		}
		req["date"] = date.UTC().Format(time.RFC3339)
	}
	if len(req) == 0 {
		return nil, &ValidationError{Field: "update", Reason: "no fields to update"}
	}
	return req, nil
}
