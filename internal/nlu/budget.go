package nlu

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

const DefaultCurrency = "INR"

var currencyAliases = map[string]string{
	"₹":   "INR",
	"rs":  "INR",
	"rs.": "INR",
	"inr": "INR",
	"$":   "USD",
	"usd": "USD",
	"€":   "EUR",
	"eur": "EUR",
}

var magnitudes = map[string]float64{
	"k":        1e3,
	"thousand": 1e3,
	"lakh":     1e5,
	"lac":      1e5,
	"crore":    1e7,
	"m":        1e6,
}

// amountPattern groups: 1 leading marker, 2 number, 3 magnitude, 4 trailing code.
var amountPattern = regexp.MustCompile(
	`(₹|\$|€|\brs\b\.?|\binr\b|\busd\b|\beur\b)?\s*` +
		`(\d+(?:\.\d+)?)` +
		`(?:\s*(k|thousand|lakh|lac|crore|m)\b)?` +
		`(?:\s*\b(inr|usd|eur|rs)\b)?`)

// durationTail recognises numbers that belong to a duration ("3-day",
// "5 nights"); dayOfMonthTail a day of month ("12 oct", "12 to 15 oct").
var (
	durationTail   = regexp.MustCompile(`^(?:\s*(?:-|to)\s*\d{1,2})?[\s-]*(?:days?|nights?|weeks?)\b`)
	dayOfMonthTail = regexp.MustCompile(`^(?:\s*(?:-|to)\s*\d{1,2})?[\s-]*` + monthPattern + `\b`)
)

// notMoney reports whether the bare number num, followed by tail, is a
// duration or a day of month. Only 1-31 can be a day, so "5000 may be ok"
// stays a budget.
func notMoney(num, tail string) bool {
	if durationTail.MatchString(tail) {
		return true
	}
	day, err := strconv.Atoi(num)
	return err == nil && day >= 1 && day <= 31 && dayOfMonthTail.MatchString(tail)
}

// ExtractBudget returns the first money amount in text, or nil. A match with
// an explicit currency marker is preferred over a bare number.
func ExtractBudget(text string) *Money {
	t := strings.ReplaceAll(strings.ToLower(text), ",", "")

	var bare *Money
	for _, m := range amountPattern.FindAllStringSubmatchIndex(t, -1) {
		pre := group(t, m, 1)
		scale := group(t, m, 3)
		post := group(t, m, 4)

		marker := pre
		if marker == "" {
			marker = post
		}
		if marker == "" && scale == "" && notMoney(group(t, m, 2), t[m[5]:]) {
			continue
		}

		num, err := strconv.ParseFloat(group(t, m, 2), 64)
		if err != nil {
			continue
		}
		if factor, ok := magnitudes[scale]; ok {
			num *= factor
		}

		money := &Money{
			Amount:   math.Round(num*100) / 100,
			Currency: normalizeCurrency(marker),
		}
		if marker != "" {
			return money
		}
		if bare == nil {
			bare = money
		}
	}
	return bare
}

func normalizeCurrency(marker string) string {
	marker = strings.TrimSpace(marker)
	if marker == "" {
		return DefaultCurrency
	}
	if code, ok := currencyAliases[marker]; ok {
		return code
	}
	return strings.ToUpper(strings.ReplaceAll(marker, ".", ""))
}

func group(s string, idx []int, n int) string {
	if idx[2*n] < 0 {
		return ""
	}
	return s[idx[2*n]:idx[2*n+1]]
}
