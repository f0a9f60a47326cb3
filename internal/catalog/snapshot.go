// Package catalog holds the read-only point-of-interest catalog shared by all
// requests. A Snapshot is never mutated after construction; reloading builds
// a new Snapshot and swaps it into a Store.
package catalog

import (
	"sort"
	"sync/atomic"

	"voyager/pkg/utils"
)

type POI struct {
	Name       string   `json:"name" yaml:"name"`
	Tags       []string `json:"tags" yaml:"tags"`
	Popularity int      `json:"popularity" yaml:"popularity"`
	Notes      string   `json:"notes" yaml:"notes"`
}

// Lookup is the read side shared by Snapshot and Store.
type Lookup interface {
	Lookup(city string) []POI
}

type Snapshot struct {
	cities map[string][]POI
}

// NewSnapshot deep-copies the given data and normalises city keys to title
// case. POIs of cities that collide after normalisation are concatenated in
// key order.
func NewSnapshot(data map[string][]POI) *Snapshot {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	cities := make(map[string][]POI, len(data))
	for _, k := range keys {
		city := utils.TitleCase(k)
		for _, p := range data[k] {
			cities[city] = append(cities[city], clonePOI(p))
		}
	}
	return &Snapshot{cities: cities}
}

// Lookup returns a copy of the city's POIs in catalog order. Unknown cities
// yield an empty slice.
func (s *Snapshot) Lookup(city string) []POI {
	if s == nil {
		return []POI{}
	}
	src := s.cities[utils.TitleCase(city)]
	out := make([]POI, len(src))
	for i, p := range src {
		out[i] = clonePOI(p)
	}
	return out
}

func (s *Snapshot) Cities() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.cities))
	for c := range s.cities {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

func (s *Snapshot) Size() int {
	if s == nil {
		return 0
	}
	n := 0
	for _, pois := range s.cities {
		n += len(pois)
	}
	return n
}

func clonePOI(p POI) POI {
	tags := make([]string, len(p.Tags))
	copy(tags, p.Tags)
	p.Tags = tags
	return p
}

// Store publishes the current Snapshot to concurrent readers.
type Store struct {
	current atomic.Pointer[Snapshot]
}

func NewStore(initial *Snapshot) *Store {
	s := &Store{}
	s.Swap(initial)
	return s
}

func (s *Store) Snapshot() *Snapshot {
	return s.current.Load()
}

// Swap installs next and returns the previous snapshot.
func (s *Store) Swap(next *Snapshot) *Snapshot {
	if next == nil {
		next = NewSnapshot(nil)
	}
	return s.current.Swap(next)
}

func (s *Store) Lookup(city string) []POI {
	return s.Snapshot().Lookup(city)
}
