package nlu

import (
	"regexp"
	"strings"
)

type intentRule struct {
	intent   Intent
	patterns []*regexp.Regexp
}

// intentRules is evaluated in declared order; the first intent with any
// matching pattern wins.
var intentRules = []intentRule{
	{
		intent: IntentPlanTrip,
		patterns: compileAll(
			`plan.*trip`,
			`itinerary`,
			`travel plan`,
			`3[- ]?day`,
			`week(end)?`,
		),
	},
	{
		intent: IntentAskVisaFree,
		patterns: compileAll(
			`visa[- ]?free`,
			`no visa needed`,
			`without visa`,
		),
	},
	{
		intent: IntentBudgetFocus,
		patterns: compileAll(
			`under\s*\d+`,
			`budget`,
			`cost`,
			`cheapest`,
			`low cost`,
		),
	},
}

func compileAll(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile(p))
	}
	return out
}

// ClassifyIntent maps raw text to an intent, defaulting to plan_trip.
func ClassifyIntent(text string) Intent {
	lower := strings.ToLower(text)
	for _, rule := range intentRules {
		for _, re := range rule.patterns {
			if re.MatchString(lower) {
				return rule.intent
			}
		}
	}
	return IntentPlanTrip
}
