package nlu

import (
	"regexp"
	"strings"

	"voyager/pkg/utils"
)

// knownDestinations is scanned case-insensitively after the preposition
// heuristic; a hit overrides it and later entries override earlier ones.
var knownDestinations = []string{
	"goa", "manali", "lonavala", "jaipur", "kerala", "ladakh", "mumbai",
	"delhi", "bangkok", "bali", "sri lanka", "maldives", "singapore",
	"dubai", "paris", "london", "tokyo", "new york",
}

var (
	destinationPattern = regexp.MustCompile(`\b(?:to|in|for|at)\s+([A-Z][a-zA-Z]+(?:\s+[A-Z][a-zA-Z]+)?)`)
	originPattern      = regexp.MustCompile(`\bfrom\s+([A-Z][a-zA-Z]+)`)
)

type Places struct {
	Destination string
	Origin      string
}

// ExtractPlaces guesses destination and origin. A gazetteer name equal to
// the detected origin is not taken as the destination.
//
// Known limitation: gazetteer names are matched as substrings, so a hit
// inside a longer word still overrides the preposition guess.
func ExtractPlaces(text string) Places {
	var out Places

	if m := destinationPattern.FindStringSubmatch(text); m != nil {
		out.Destination = m[1]
	}
	if m := originPattern.FindStringSubmatch(text); m != nil {
		out.Origin = m[1]
	}

	lower := strings.ToLower(text)
	for _, name := range knownDestinations {
		if !strings.Contains(lower, name) {
			continue
		}
		if out.Origin != "" && strings.EqualFold(name, out.Origin) {
			continue
		}
		out.Destination = utils.TitleCase(name)
	}

	return out
}
