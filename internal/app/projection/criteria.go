package projection

import (
	"fmt"
	"strings"

	"logdeck/internal/app/entry"
	"logdeck/internal/app/errors"
)

// All matches every level or category
const All = "all"

// LevelFilter is either All or a single level
type LevelFilter string

// LevelAll matches every level
const LevelAll LevelFilter = All

// CategoryFilter is either All or a single category
type CategoryFilter string

// CategoryAll matches every category
const CategoryAll CategoryFilter = All

// SortKey selects the ordering of the projection
type SortKey string

// Sort keys
const (
	SortByTimestamp SortKey = "timestamp"
	SortByLevel     SortKey = "level"
	SortByCategory  SortKey = "category"
)

// SortKeys lists the sort keys in cycling order
var SortKeys = []SortKey{SortByTimestamp, SortByLevel, SortByCategory}

// Criteria bundles the user-controlled projection inputs; treat as a value
type Criteria struct {
	Search   string
	Level    LevelFilter
	Category CategoryFilter
	SortBy   SortKey
}

// DefaultCriteria matches everything, newest first
func DefaultCriteria() Criteria {
	return Criteria{
		Search:   "",
		Level:    LevelAll,
		Category: CategoryAll,
		SortBy:   SortByTimestamp,
	}
}

// WithSearch returns a copy with the search text replaced
func (c Criteria) WithSearch(search string) Criteria {
	c.Search = search
	return c
}

// WithLevel returns a copy with the level filter replaced
func (c Criteria) WithLevel(level LevelFilter) Criteria {
	c.Level = level
	return c
}

// WithCategory returns a copy with the category filter replaced
func (c Criteria) WithCategory(category CategoryFilter) Criteria {
	c.Category = category
	return c
}

// WithSort returns a copy with the sort key replaced
func (c Criteria) WithSort(key SortKey) Criteria {
	c.SortBy = key
	return c
}

// NextLevel cycles all -> error -> warning -> info -> success -> all
func (c Criteria) NextLevel() Criteria {
	options := make([]LevelFilter, 0, len(entry.Levels)+1)
	options = append(options, LevelAll)

	for _, level := range entry.Levels {
		options = append(options, LevelOnly(level))
	}

	c.Level = next(options, c.Level)

	return c
}

// NextCategory cycles all -> each category -> all
func (c Criteria) NextCategory() Criteria {
	options := make([]CategoryFilter, 0, len(entry.Categories)+1)
	options = append(options, CategoryAll)

	for _, category := range entry.Categories {
		options = append(options, CategoryOnly(category))
	}

	c.Category = next(options, c.Category)

	return c
}

// NextSort cycles timestamp -> level -> category -> timestamp
func (c Criteria) NextSort() Criteria {
	c.SortBy = next(SortKeys, c.SortBy)
	return c
}

// IsDefault reports whether the criteria filter nothing and use the default order
func (c Criteria) IsDefault() bool {
	return c == DefaultCriteria()
}

func next[T comparable](options []T, current T) T {
	for i, option := range options {
		if option == current {
			return options[(i+1)%len(options)]
		}
	}

	return options[0]
}

// LevelOnly builds a filter for a single level
func LevelOnly(level entry.Level) LevelFilter {
	return LevelFilter(level)
}

// ParseLevelFilter accepts "all" or a level name
func ParseLevelFilter(s string) (LevelFilter, error) {
	if strings.EqualFold(strings.TrimSpace(s), All) || s == "" {
		return LevelAll, nil
	}

	level, err := entry.ParseLevel(s)
	if err != nil {
		return "", err
	}

	return LevelOnly(level), nil
}

// Matches reports whether a level passes the filter
func (f LevelFilter) Matches(level entry.Level) bool {
	return f == LevelAll || f == "" || entry.Level(f) == level
}

// Label returns the display name
func (f LevelFilter) Label() string {
	if f == LevelAll || f == "" {
		return "All Levels"
	}

	return entry.Level(f).Title()
}

// CategoryOnly builds a filter for a single category
func CategoryOnly(category entry.Category) CategoryFilter {
	return CategoryFilter(category)
}

// ParseCategoryFilter accepts "all" or a category name
func ParseCategoryFilter(s string) (CategoryFilter, error) {
	if strings.EqualFold(strings.TrimSpace(s), All) || s == "" {
		return CategoryAll, nil
	}

	category, err := entry.ParseCategory(s)
	if err != nil {
		return "", err
	}

	return CategoryOnly(category), nil
}

// Matches reports whether a category passes the filter
func (f CategoryFilter) Matches(category entry.Category) bool {
	return f == CategoryAll || f == "" || entry.Category(f) == category
}

// Label returns the display name
func (f CategoryFilter) Label() string {
	if f == CategoryAll || f == "" {
		return "All Categories"
	}

	return entry.Category(f).Label()
}

// ParseSortKey converts a name into a SortKey
func ParseSortKey(s string) (SortKey, error) {
	key := SortKey(strings.ToLower(strings.TrimSpace(s)))

	switch key {
	case SortByTimestamp, SortByLevel, SortByCategory:
		return key, nil
	case "severity":
		return SortByLevel, nil
	default:
		return "", fmt.Errorf("%w: '%s'", errors.ErrUnknownSortKey, s)
	}
}

// Label returns the display name
func (k SortKey) Label() string {
	switch k {
	case SortByLevel:
		return "Severity"
	case SortByCategory:
		return "Category"
	default:
		return "Timestamp"
	}
}
