package record

import (
	"errors"
	"testing"
	"time"
)

func TestCreateParams_Validate(t *testing.T) {
	valid := CreateParams{
		Type:        "out",
		Amount:      "19.99",
		Description: "groceries",
		Tag:         "t1",
		Date:        "2024-01-15",
	}

	t.Run("valid", func(t *testing.T) {
		req, err := valid.Validate()
		if err != nil {
			t.Fatalf("Validate() failed: %v", err)
		}
		if req.Amount != "1999" {
			t.Errorf("Amount = %q, want minor units %q", req.Amount, "1999")
		}
		if req.Date != "2024-01-15T00:00:00Z" {
			t.Errorf("Date = %q, want UTC instant", req.Date)
		}
		if req.Currency != "USD" {
			t.Errorf("Currency = %q, want USD", req.Currency)
		}
	})

	tests := []struct {
		name    string
		mutate  func(*CreateParams)
		field   string
	}{
		{name: "zero amount", mutate: func(p *CreateParams) { p.Amount = "0" }, field: "amount"},
		{name: "negative amount", mutate: func(p *CreateParams) { p.Amount = "-10" }, field: "amount"},
		{name: "non-numeric amount", mutate: func(p *CreateParams) { p.Amount = "ten" }, field: "amount"},
		{name: "bad type", mutate: func(p *CreateParams) { p.Type = "transfer" }, field: "type"},
		{name: "missing tag", mutate: func(p *CreateParams) { p.Tag = "" }, field: "tag"},
		{name: "missing description", mutate: func(p *CreateParams) { p.Description = "" }, field: "description"},
		{name: "bad date", mutate: func(p *CreateParams) { p.Date = "15/01/2024" }, field: "date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := valid
			tt.mutate(&params)

			_, err := params.Validate()
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("Validate() error = %v, want *ValidationError", err)
			}
			if vErr.Field != tt.field {
				t.Errorf("Field = %q, want %q", vErr.Field, tt.field)
			}
		})
	}
}

func TestUpdateParams_Validate(t *testing.T) {
	str := func(s string) *string { return &s }

	t.Run("partial only sends present fields", func(t *testing.T) {
		req, err := UpdateParams{Amount: str("50")}.Validate()
		if err != nil {
			t.Fatalf("Validate() failed: %v", err)
		}
		if len(req) != 1 || req["amount"] != "5000" {
			t.Errorf("req = %v", req)
		}
	})

	t.Run("present field still validated", func(t *testing.T) {
		_, err := UpdateParams{Type: str("sideways")}.Validate()
		var vErr *ValidationError
		if !errors.As(err, &vErr) || vErr.Field != "type" {
			t.Errorf("Validate() error = %v", err)
		}
	})

	t.Run("empty update rejected", func(t *testing.T) {
		if _, err := UpdateParams{}.Validate(); err == nil {
			t.Error("empty UpdateParams expected error")
		}
	})

	t.Run("date widened to UTC instant", func(t *testing.T) {
		req, err := UpdateParams{Date: str("2024-03-01")}.Validate()
		if err != nil {
			t.Fatalf("Validate() failed: %v", err)
		}
		if req["date"] != "2024-03-01T00:00:00Z" {
			t.Errorf("date = %v", req["date"])
		}
	})
}

func TestDateRange_Days(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		rng  DateRange
		want int
	}{
		{name: "january", rng: DateRange{From: "2024-01-01", To: "2024-01-31"}, want: 30},
		{name: "single day floors to one", rng: DateRange{From: "2024-01-01", To: "2024-01-01"}, want: 1},
		{name: "unbounded defaults to calendar year", rng: DateRange{}, want: 365},
		{name: "inverted floors to one", rng: DateRange{From: "2024-02-01", To: "2024-01-01"}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rng.Days(now); got != tt.want {
				t.Errorf("Days() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDateRange_Validate(t *testing.T) {
	if err := (DateRange{From: "2024-01-01", To: "2024-01-31"}).Validate(); err != nil {
		t.Errorf("valid range failed: %v", err)
	}
	if err := (DateRange{From: "2024-02-01", To: "2024-01-01"}).Validate(); err == nil {
		t.Error("inverted range expected error")
	}
	if err := (DateRange{From: "", To: "2024-01-31"}).Validate(); err != nil {
		t.Errorf("half-open range failed: %v", err)
	}
	if err := (DateRange{From: "jan 1st"}).Validate(); err == nil {
		t.Error("unparseable date expected error")
	}
}
