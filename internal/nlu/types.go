package nlu

import (
	"encoding/json"
	"fmt"
	"time"
)

type Intent string

const (
	IntentPlanTrip    Intent = "plan_trip"
	IntentAskVisaFree Intent = "ask_visa_free"
	IntentBudgetFocus Intent = "budget_focus"
)

const DateLayout = "2006-01-02"

// Money is an amount with an ISO-4217-like currency code.
type Money struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// Date is a calendar day at UTC midnight, serialised as YYYY-MM-DD.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{t}, nil
}

func (d Date) AddDays(n int) Date {
	return Date{d.Time.AddDate(0, 0, n)}
}

// DaysUntil returns the number of whole days from d to other.
func (d Date) DaysUntil(other Date) int {
	return int(other.Time.Sub(d.Time).Hours() / 24)
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// EntitySet holds the facts extracted from one utterance. Every field is
// optional: the zero value (empty string, nil, 0, false) means "not found".
type EntitySet struct {
	Destination  string   `json:"destination,omitempty"`
	Origin       string   `json:"origin,omitempty"`
	Budget       *Money   `json:"budget,omitempty"`
	StartDate    *Date    `json:"start_date,omitempty"`
	EndDate      *Date    `json:"end_date,omitempty"`
	NDays        int      `json:"n_days,omitempty"`
	Interests    []string `json:"interests,omitempty"`
	VisaFreeHint bool     `json:"visa_free_hint,omitempty"`
}

type Result struct {
	Intent   Intent    `json:"intent"`
	Entities EntitySet `json:"entities"`
}
