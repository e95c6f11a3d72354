package entry

import (
	"fmt"
	"strings"
	"time"

	"logdeck/internal/app/errors"
)

// Level is the severity of an entry
type Level string

// Level values
const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
	LevelSuccess Level = "success"
)

// Levels lists every level in severity order
var Levels = []Level{LevelError, LevelWarning, LevelInfo, LevelSuccess}

// Category is the subsystem an entry belongs to
type Category string

// Category values
const (
	CategoryTokenUsage Category = "token_usage"
	CategoryStorage    Category = "storage"
	CategoryWorkflow   Category = "workflow"
	CategorySystem     Category = "system"
)

// Categories lists every category in lexicographic order
var Categories = []Category{CategoryStorage, CategorySystem, CategoryTokenUsage, CategoryWorkflow}

// Tokens holds token consumption counts
type Tokens struct {
	Input  int `json:"input" yaml:"input"`
	Output int `json:"output" yaml:"output"`
	Total  int `json:"total" yaml:"total"`
}

// Storage holds storage usage figures
type Storage struct {
	Used       string `json:"used" yaml:"used"`
	Limit      string `json:"limit" yaml:"limit"`
	Percentage int    `json:"percentage" yaml:"percentage"`
}

// Workflow holds workflow step information, Duration is in milliseconds
type Workflow struct {
	ID       string `json:"id" yaml:"id"`
	Step     string `json:"step" yaml:"step"`
	Duration int64  `json:"duration" yaml:"duration"`
}

// Failure holds an error code and its stack trace
type Failure struct {
	Code  string `json:"code" yaml:"code"`
	Stack string `json:"stack" yaml:"stack"`
}

// Details carries optional structured payloads; any combination may be set
type Details struct {
	Tokens   *Tokens   `json:"tokens,omitempty" yaml:"tokens,omitempty"`
	Storage  *Storage  `json:"storage,omitempty" yaml:"storage,omitempty"`
	Workflow *Workflow `json:"workflow,omitempty" yaml:"workflow,omitempty"`
	Error    *Failure  `json:"error,omitempty" yaml:"error,omitempty"`
}

// Entry is a single immutable log record
type Entry struct {
	ID        string    `json:"id" yaml:"id"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Level     Level     `json:"level" yaml:"level"`
	Category  Category  `json:"category" yaml:"category"`
	Message   string    `json:"message" yaml:"message"`
	Details   *Details  `json:"details,omitempty" yaml:"details,omitempty"`
	Source    string    `json:"source,omitempty" yaml:"source,omitempty"`
}

// HasSource reports whether the entry carries an origin label
func (e Entry) HasSource() bool {
	return e.Source != ""
}

// HasDetails reports whether at least one detail variant is populated
func (e Entry) HasDetails() bool {
	return !e.Details.IsEmpty()
}

// IsEmpty reports whether no variant is set; safe on a nil receiver
func (d *Details) IsEmpty() bool {
	return d == nil || (d.Tokens == nil && d.Storage == nil && d.Workflow == nil && d.Error == nil)
}

// ParseLevel converts a wire name into a Level
func ParseLevel(s string) (Level, error) {
	level := Level(strings.ToLower(strings.TrimSpace(s)))
	if !level.Valid() {
		return "", fmt.Errorf("%w: '%s'", errors.ErrUnknownLevel, s)
	}

	return level, nil
}

// Valid reports whether the level is one of the known values
func (l Level) Valid() bool {
	switch l {
	case LevelInfo, LevelWarning, LevelError, LevelSuccess:
		return true
	default:
		return false
	}
}

// Rank returns the severity rank: error 0, warning 1, info 2, success 3
func (l Level) Rank() int {
	switch l {
	case LevelError:
		return 0
	case LevelWarning:
		return 1
	case LevelInfo:
		return 2
	case LevelSuccess:
		return 3
	default:
		return len(Levels)
	}
}

// String returns the wire name
func (l Level) String() string {
	return string(l)
}

// Title returns the display name
func (l Level) Title() string {
	switch l {
	case LevelError:
		return "Error"
	case LevelWarning:
		return "Warning"
	case LevelInfo:
		return "Info"
	case LevelSuccess:
		return "Success"
	default:
		return string(l)
	}
}

// ParseCategory converts a wire name into a Category
func ParseCategory(s string) (Category, error) {
	category := Category(strings.ToLower(strings.TrimSpace(s)))
	if !category.Valid() {
		return "", fmt.Errorf("%w: '%s'", errors.ErrUnknownCategory, s)
	}

	return category, nil
}

// Valid reports whether the category is one of the known values
func (c Category) Valid() bool {
	switch c {
	case CategoryTokenUsage, CategoryStorage, CategoryWorkflow, CategorySystem:
		return true
	default:
		return false
	}
}

// String returns the wire name
func (c Category) String() string {
	return string(c)
}

// Label returns the wire name with underscores replaced by spaces
func (c Category) Label() string {
	return strings.ReplaceAll(string(c), "_", " ")
}
