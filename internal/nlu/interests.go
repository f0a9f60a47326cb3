package nlu

import (
	"sort"
	"strings"
)

var interestVocabulary = []string{
	"beach", "museums", "food", "nightlife", "hiking", "history", "nature",
	"shopping", "adventure", "romantic", "family", "wildlife", "architecture",
	"waterfalls", "temples", "cafes", "photography",
}

var interestSynonyms = []struct {
	words    []string
	interest string
}{
	{words: []string{"party", "club"}, interest: "nightlife"},
	{words: []string{"heritage", "fort"}, interest: "history"},
	{words: []string{"trek"}, interest: "hiking"},
}

// Vocabulary returns a copy of the recognised interest names.
func Vocabulary() []string {
	out := make([]string, len(interestVocabulary))
	copy(out, interestVocabulary)
	return out
}

// ExtractInterests returns the sorted, de-duplicated interests mentioned in
// text, or nil when there are none.
func ExtractInterests(text string) []string {
	lower := strings.ToLower(text)
	found := make(map[string]struct{})

	for _, interest := range interestVocabulary {
		if strings.Contains(lower, interest) {
			found[interest] = struct{}{}
		}
	}
	for _, syn := range interestSynonyms {
		for _, w := range syn.words {
			if strings.Contains(lower, w) {
				found[syn.interest] = struct{}{}
				break
			}
		}
	}

	if len(found) == 0 {
		return nil
	}
	out := make([]string, 0, len(found))
	for interest := range found {
		out = append(out, interest)
	}
	sort.Strings(out)
	return out
}
