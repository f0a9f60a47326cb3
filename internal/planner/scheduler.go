package planner

import (
	"fmt"
	"strings"
	"time"

	"voyager/internal/catalog"
)

const (
	clockLayout   = "15:04"
	transitName   = "Transit"
	transitLabel  = "travel"
	rangeSeparate = " - "
)

type BlockKind string

const (
	BlockVisit   BlockKind = "visit"
	BlockTransit BlockKind = "transit"
)

type ScheduleBlock struct {
	Time     string    `json:"time"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
	Notes    string    `json:"notes"`
	Kind     BlockKind `json:"kind"`

	start, end time.Time
}

// Start and End are offsets from midnight of the scheduled day.
func (b ScheduleBlock) Start() time.Time { return b.start }
func (b ScheduleBlock) End() time.Time   { return b.end }

func parseClock(s string) (time.Time, error) {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	return t, nil
}

func newBlock(kind BlockKind, start, end time.Time, name, category, notes string) ScheduleBlock {
	return ScheduleBlock{
		Time:     start.Format(clockLayout) + rangeSeparate + end.Format(clockLayout),
		Name:     name,
		Category: category,
		Notes:    notes,
		Kind:     kind,
		start:    start,
		end:      end,
	}
}

// ScheduleDay lays the bucket out from start, one visit per POI with a
// transit block strictly between consecutive visits.
func ScheduleDay(bucket []catalog.POI, travelMinutes int, start time.Time, visit time.Duration) []ScheduleBlock {
	blocks := make([]ScheduleBlock, 0, max(2*len(bucket)-1, 0))
	travel := time.Duration(travelMinutes) * time.Minute
	t := start
	for i, p := range bucket {
		endVisit := t.Add(visit)
		blocks = append(blocks, newBlock(BlockVisit, t, endVisit, p.Name, strings.Join(p.Tags, ", "), p.Notes))
		t = endVisit
		if i == len(bucket)-1 {
			break
		}
		arrive := t.Add(travel)
		blocks = append(blocks, newBlock(BlockTransit, t, arrive, transitName, transitLabel,
			fmt.Sprintf("In-city travel approx %d min", travelMinutes)))
		t = arrive
	}
	return blocks
}
