package tag

import (
	"errors"
	"time"
)

// Tag is a user-defined category for classifying records.
type Tag struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// Untagged is the placeholder shown when a record's tag cannot be resolved,
// typically after the category was deleted. It never round-trips to the API.
var Untagged = Tag{ID: "", Name: "Untagged"}

type CreateTagParams struct {
	Name string
}

// Validate is the soft pre-submit check; uniqueness stays server-side.
func (p *CreateTagParams) Validate() error {
	if p.Name == "" {
		return errors.New("name is required")
	}
	if len(p.Name) > 128 {
		return errors.New("name must be 128 characters or less")
	}
	return nil
}

// RecordSummary is one record inside a tag's grouped detail, amount already in
// major units.
type RecordSummary struct {
	ID          string
	Type        string
	Description string
	Amount      float64
	Date        string
}

// GroupedRecords is one direction (in or out) of a tag's records with its
// total, amounts in major units.
type GroupedRecords struct {
	Total   float64
	Records []RecordSummary
}

// Info is a tag plus its records grouped by direction.
type Info struct {
	Tag        Tag
	InRecords  GroupedRecords
	OutRecords GroupedRecords
}
