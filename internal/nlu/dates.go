package nlu

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

const monthPattern = `(?:january|february|march|april|june|july|august|september|october|november|december|` +
	`jan|feb|mar|apr|may|jun|jul|aug|sept|sep|oct|nov|dec)`

const weekendDays = 2

var (
	rangeJoiner = regexp.MustCompile(`(?i)(\d{1,2})\s*(?:to|-)\s*(\d{1,2})`)

	// datePatterns are tried in order: a day range then a single day.
	datePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(\d{1,2})-(\d{1,2})\s*(` + monthPattern + `)\b`),
		regexp.MustCompile(`(?i)\b(\d{1,2})()\s*(` + monthPattern + `)\b`),
	}

	durationPattern = regexp.MustCompile(`(?i)\b(\d+)[\s-]*(?:days?|nights?)\b`)
	weekPattern     = regexp.MustCompile(`(?i)week(?:end)?`)
)

// DateEntities is the output of ExtractDates; unset fields are nil / zero.
type DateEntities struct {
	StartDate *Date
	EndDate   *Date
	NDays     int
}

// ExtractDates finds a day or day range with a month name, and separately a
// trip duration. The year is always the given one. Unparseable dates are
// dropped without error.
func ExtractDates(text string, year int) DateEntities {
	t := rangeJoiner.ReplaceAllString(text, "${1}-${2}")

	var out DateEntities
	for _, re := range datePatterns {
		m := re.FindStringSubmatch(t)
		if m == nil {
			continue
		}
		month, ok := monthFromName(m[3])
		if !ok {
			break
		}
		if start, ok := calendarDate(year, month, m[1]); ok {
			out.StartDate = &start
			if m[2] != "" {
				if end, ok := calendarDate(year, month, m[2]); ok {
					out.EndDate = &end
				}
			}
		}
		break
	}

	if m := durationPattern.FindStringSubmatch(t); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			out.NDays = n
		}
	} else if weekPattern.MatchString(t) {
		out.NDays = weekendDays
	}

	return out
}

func monthFromName(name string) (time.Month, bool) {
	name = strings.ToLower(name)
	if len(name) < 3 {
		return 0, false
	}
	for m := time.January; m <= time.December; m++ {
		if strings.HasPrefix(strings.ToLower(m.String()), name[:3]) {
			return m, true
		}
	}
	return 0, false
}

func calendarDate(year int, month time.Month, day string) (Date, bool) {
	d, err := strconv.Atoi(day)
	if err != nil || d < 1 {
		return Date{}, false
	}
	date := NewDate(year, month, d)
	if date.Day() != d || date.Month() != month {
		return Date{}, false
	}
	return date, true
}
