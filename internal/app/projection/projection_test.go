package projection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"logdeck/internal/app/entry"
	"logdeck/internal/app/errors"
)

var base = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

func makeEntry(id string, offset time.Duration, level entry.Level, category entry.Category, message, source string) entry.Entry {
	return entry.Entry{
		ID:        id,
		Timestamp: base.Add(offset),
		Level:     level,
		Category:  category,
		Message:   message,
		Source:    source,
	}
}

// fixture is newest-first like a store snapshot
func fixture() []entry.Entry {
	return []entry.Entry{
		makeEntry("5", 5*time.Second, entry.LevelInfo, entry.CategoryStorage, "Database connection established", ""),
		makeEntry("4", 4*time.Second, entry.LevelError, entry.CategoryStorage, "Storage cleanup process started", "storage-monitor"),
		makeEntry("3", 3*time.Second, entry.LevelWarning, entry.CategoryWorkflow, "API rate limit warning", "workflow-engine"),
		makeEntry("2", 2*time.Second, entry.LevelError, entry.CategoryWorkflow, "Workflow execution failed at step 3", "workflow-engine"),
		makeEntry("1", 1*time.Second, entry.LevelInfo, entry.CategoryStorage, "Token limit check completed", "token-service"),
	}
}

func ids(entries []entry.Entry) []string {
	result := make([]string, len(entries))
	for i, e := range entries {
		result[i] = e.ID
	}

	return result
}

func Test_Project(t *testing.T) {
	tests := []struct {
		name     string
		criteria Criteria
		expected []string
	}{
		{
			name:     "default criteria keeps everything newest first",
			criteria: DefaultCriteria(),
			expected: []string{"5", "4", "3", "2", "1"},
		},
		{
			name:     "search is case-insensitive on message",
			criteria: DefaultCriteria().WithSearch("database"),
			expected: []string{"5"},
		},
		{
			name:     "search matches source",
			criteria: DefaultCriteria().WithSearch("WORKFLOW-ENGINE"),
			expected: []string{"3", "2"},
		},
		{
			name:     "search on absent source does not match",
			criteria: DefaultCriteria().WithSearch("monitor"),
			expected: []string{"4"},
		},
		{
			name:     "level filter",
			criteria: DefaultCriteria().WithLevel(LevelOnly(entry.LevelError)),
			expected: []string{"4", "2"},
		},
		{
			name:     "category filter",
			criteria: DefaultCriteria().WithCategory(CategoryOnly(entry.CategoryWorkflow)),
			expected: []string{"3", "2"},
		},
		{
			name: "level and category compose",
			criteria: DefaultCriteria().
				WithLevel(LevelOnly(entry.LevelError)).
				WithCategory(CategoryOnly(entry.CategoryStorage)),
			expected: []string{"4"},
		},
		{
			name:     "no matches yields empty",
			criteria: DefaultCriteria().WithLevel(LevelOnly(entry.LevelSuccess)),
			expected: []string{},
		},
		{
			name:     "sort by level is stable within a rank",
			criteria: DefaultCriteria().WithSort(SortByLevel),
			expected: []string{"4", "2", "3", "5", "1"},
		},
		{
			name:     "sort by category is stable within a category",
			criteria: DefaultCriteria().WithSort(SortByCategory),
			expected: []string{"5", "4", "1", "3", "2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Project(fixture(), tt.criteria)

			assert.NotNil(t, result)
			assert.Equal(t, tt.expected, ids(result))
		})
	}
}

func Test_Project_TimestampOrderOverridesArrival(t *testing.T) {
	entries := []entry.Entry{
		makeEntry("a", 1*time.Second, entry.LevelInfo, entry.CategorySystem, "older", ""),
		makeEntry("b", 9*time.Second, entry.LevelInfo, entry.CategorySystem, "newer", ""),
		makeEntry("c", 1*time.Second, entry.LevelInfo, entry.CategorySystem, "older twin", ""),
	}

	assert.Equal(t, []string{"b", "a", "c"}, ids(Project(entries, DefaultCriteria())))
}

func Test_Project_DoesNotModifyInput(t *testing.T) {
	entries := fixture()
	before := ids(entries)

	Project(entries, DefaultCriteria().WithSort(SortByLevel))

	assert.Equal(t, before, ids(entries))
}

func Test_Project_Idempotent(t *testing.T) {
	criteria := DefaultCriteria().WithSearch("a").WithSort(SortByCategory)

	first := Project(fixture(), criteria)
	second := Project(fixture(), criteria)

	assert.Equal(t, first, second)
}

func Test_Project_EmptyInput(t *testing.T) {
	assert.Empty(t, Project(nil, DefaultCriteria()))
}

func Test_Summarize(t *testing.T) {
	stats := Summarize(fixture())

	assert.Equal(t, Stats{Total: 5, Errors: 2, Warnings: 1}, stats)
	assert.Equal(t, Stats{}, Summarize(nil))
}

func Test_Criteria_Cycling(t *testing.T) {
	c := DefaultCriteria()

	levels := []LevelFilter{}
	for i := 0; i < 5; i++ {
		c = c.NextLevel()
		levels = append(levels, c.Level)
	}

	assert.Equal(t, []LevelFilter{"error", "warning", "info", "success", LevelAll}, levels)

	categories := []CategoryFilter{}
	for i := 0; i < 5; i++ {
		c = c.NextCategory()
		categories = append(categories, c.Category)
	}

	assert.Equal(t, []CategoryFilter{"storage", "system", "token_usage", "workflow", CategoryAll}, categories)

	assert.Equal(t, SortByLevel, c.NextSort().SortBy)
	assert.Equal(t, SortByCategory, c.NextSort().NextSort().SortBy)
	assert.Equal(t, SortByTimestamp, c.NextSort().NextSort().NextSort().SortBy)
}

func Test_Criteria_ValueSemantics(t *testing.T) {
	original := DefaultCriteria()
	modified := original.WithSearch("x").WithLevel(LevelOnly(entry.LevelError))

	assert.True(t, original.IsDefault())
	assert.False(t, modified.IsDefault())
	assert.Equal(t, "", original.Search)
}

func Test_ParseLevelFilter(t *testing.T) {
	filter, err := ParseLevelFilter("ALL")
	assert.NoError(t, err)
	assert.Equal(t, LevelAll, filter)

	filter, err = ParseLevelFilter("warning")
	assert.NoError(t, err)
	assert.Equal(t, LevelOnly(entry.LevelWarning), filter)

	_, err = ParseLevelFilter("verbose")
	assert.ErrorIs(t, err, errors.ErrUnknownLevel)
}

func Test_ParseCategoryFilter(t *testing.T) {
	filter, err := ParseCategoryFilter("")
	assert.NoError(t, err)
	assert.Equal(t, CategoryAll, filter)

	filter, err = ParseCategoryFilter("token_usage")
	assert.NoError(t, err)
	assert.Equal(t, CategoryOnly(entry.CategoryTokenUsage), filter)

	_, err = ParseCategoryFilter("billing")
	assert.ErrorIs(t, err, errors.ErrUnknownCategory)
}

func Test_ParseSortKey(t *testing.T) {
	tests := []struct {
		input    string
		expected SortKey
		error    error
	}{
		{input: "timestamp", expected: SortByTimestamp},
		{input: "Level", expected: SortByLevel},
		{input: "severity", expected: SortByLevel},
		{input: "category", expected: SortByCategory},
		{input: "message", error: errors.ErrUnknownSortKey},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			key, err := ParseSortKey(tt.input)

			if tt.error != nil {
				assert.ErrorIs(t, err, tt.error)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, key)
		})
	}
}

func Test_Labels(t *testing.T) {
	assert.Equal(t, "All Levels", LevelAll.Label())
	assert.Equal(t, "Warning", LevelOnly(entry.LevelWarning).Label())
	assert.Equal(t, "All Categories", CategoryAll.Label())
	assert.Equal(t, "token usage", CategoryOnly(entry.CategoryTokenUsage).Label())
	assert.Equal(t, "Severity", SortByLevel.Label())
}
