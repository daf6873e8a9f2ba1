package assessment

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// ScoreMap holds the cumulative score per category. A category is present only once an answer in it
// has been recorded, even when that answer scored zero.
type ScoreMap map[Category]int

// Clone returns an independent copy. Cloning a nil map yields an empty map.
func (s ScoreMap) Clone() ScoreMap {
	if s == nil {
		return ScoreMap{}
	}
	return maps.Clone(s)
}

// Get returns the score of category and whether it has been recorded.
func (s ScoreMap) Get(category Category) (int, bool) {
	v, ok := s[category]
	return v, ok
}

// String renders the scores sorted by category name, e.g. "anxiety=2 crisis=1".
func (s ScoreMap) String() string {
	keys := slices.Sorted(maps.Keys(s))
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%d", k, s[k])
	}
	return strings.Join(parts, " ")
}
