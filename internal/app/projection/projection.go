package projection

import (
	"slices"
	"strings"

	"logdeck/internal/app/entry"
)

// Stats summarises a projected list
type Stats struct {
	Total    int
	Errors   int
	Warnings int
}

// Project filters and orders a newest-first snapshot; the input is never modified
func Project(entries []entry.Entry, criteria Criteria) []entry.Entry {
	needle := strings.ToLower(criteria.Search)
	result := make([]entry.Entry, 0, len(entries))

	for _, e := range entries {
		if needle != "" && !matchesSearch(e, needle) {
			continue
		}

		if !criteria.Level.Matches(e.Level) {
			continue
		}

		if !criteria.Category.Matches(e.Category) {
			continue
		}

		result = append(result, e)
	}

	slices.SortStableFunc(result, comparator(criteria.SortBy))

	return result
}

// matchesSearch checks message and source; an absent source never matches
func matchesSearch(e entry.Entry, needle string) bool {
	if strings.Contains(strings.ToLower(e.Message), needle) {
		return true
	}

	return e.HasSource() && strings.Contains(strings.ToLower(e.Source), needle)
}

func comparator(key SortKey) func(a, b entry.Entry) int {
	switch key {
	case SortByLevel:
		return func(a, b entry.Entry) int {
			return a.Level.Rank() - b.Level.Rank()
		}
	case SortByCategory:
		return func(a, b entry.Entry) int {
			return strings.Compare(string(a.Category), string(b.Category))
		}
	case SortByTimestamp:
		return func(a, b entry.Entry) int {
			return b.Timestamp.Compare(a.Timestamp)
		}
	default:
		return func(a, b entry.Entry) int {
			return 0
		}
	}
}

// Summarize counts the total, error and warning entries of a projected list
func Summarize(entries []entry.Entry) Stats {
	stats := Stats{Total: len(entries)}

	for _, e := range entries {
		switch e.Level {
		case entry.LevelError:
			stats.Errors++
		case entry.LevelWarning:
			stats.Warnings++
		}
	}

	return stats
}
