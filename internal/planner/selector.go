package planner

import (
	"sort"
	"strings"

	"voyager/internal/catalog"
)

type rankedPOI struct {
	poi   catalog.POI
	score int
}

// SelectPOIs ranks a city's POIs by interest overlap then popularity, or by
// popularity alone when no interests are given. Ties keep catalog order.
func SelectPOIs(src catalog.Lookup, city string, interests []string) []catalog.POI {
	if src == nil || city == "" {
		return []catalog.POI{}
	}
	pois := src.Lookup(city)

	wanted := make(map[string]struct{}, len(interests))
	for _, in := range interests {
		wanted[strings.ToLower(in)] = struct{}{}
	}

	ranked := make([]rankedPOI, len(pois))
	for i, p := range pois {
		ranked[i] = rankedPOI{poi: p, score: tagOverlap(p.Tags, wanted)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].poi.Popularity > ranked[j].poi.Popularity
	})

	out := make([]catalog.POI, len(ranked))
	for i, r := range ranked {
		out[i] = r.poi
	}
	return out
}

// tagOverlap counts distinct tags present in wanted.
func tagOverlap(tags []string, wanted map[string]struct{}) int {
	if len(wanted) == 0 {
		return 0
	}
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(tag)
		if _, ok := wanted[tag]; ok {
			seen[tag] = struct{}{}
		}
	}
	return len(seen)
}
