package planner

import "voyager/internal/catalog"

// PackDays deals ranked POIs round-robin into nDays buckets of at most
// capacity each. The day cursor advances only when a POI is placed, and
// packing stops as soon as every bucket is full.
func PackDays(pois []catalog.POI, nDays, capacity int) [][]catalog.POI {
	nDays = max(nDays, 1)
	days := make([][]catalog.POI, nDays)
	for i := range days {
		days[i] = []catalog.POI{}
	}
	if capacity < 1 {
		return days
	}

	cursor := 0
	placed := 0
	for _, p := range pois {
		d := cursor % nDays
		if len(days[d]) < capacity {
			days[d] = append(days[d], p)
			cursor++
			placed++
		}
		if placed == nDays*capacity {
			break
		}
	}
	return days
}
