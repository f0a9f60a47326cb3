// Package nlu extracts an intent and structured trip entities from free text
// using ordered regular-expression tables. Every function here is pure: no
// I/O, no shared mutable state, and absence of a fact is never an error.
package nlu

import (
	"regexp"
	"time"
)

var visaFreePattern = regexp.MustCompile(`(?i)visa[- ]?free|without visa|no visa`)

// DetectVisaFree reports whether the text asks about visa-free travel. It is
// independent of the classified intent.
func DetectVisaFree(text string) bool {
	return visaFreePattern.MatchString(text)
}

// Parser runs the classifier and all extractors over one text. The clock
// only supplies the year used for month-day dates.
type Parser struct {
	now func() time.Time
}

func NewParser(now func() time.Time) *Parser {
	if now == nil {
		now = time.Now
	}
	return &Parser{now: now}
}

func (p *Parser) Parse(text string) Result {
	places := ExtractPlaces(text)
	dates := ExtractDates(text, p.now().Year())

	entities := EntitySet{
		Destination:  places.Destination,
		Origin:       places.Origin,
		Budget:       ExtractBudget(text),
		StartDate:    dates.StartDate,
		EndDate:      dates.EndDate,
		NDays:        dates.NDays,
		Interests:    ExtractInterests(text),
		VisaFreeHint: DetectVisaFree(text),
	}

	return Result{
		Intent:   ClassifyIntent(text),
		Entities: entities,
	}
}

var defaultParser = NewParser(nil)

// Parse uses the wall clock for the current year.
func Parse(text string) Result {
	return defaultParser.Parse(text)
}
