package stream

import (
	"time"

	"logdeck/internal/app/entry"
	"logdeck/internal/app/store"
)

// SampleEntries returns the four startup entries, newest first, stamped relative to now
func SampleEntries(now time.Time) []entry.Entry {
	return []entry.Entry{
		{
			ID:        "1",
			Timestamp: now.Add(-1 * time.Second),
			Level:     entry.LevelInfo,
			Category:  entry.CategoryTokenUsage,
			Message:   "Token consumption recorded for workflow execution",
			Details: &entry.Details{
				Tokens: &entry.Tokens{Input: 1250, Output: 890, Total: 2140},
			},
			Source: "workflow-engine",
		},
		{
			ID:        "2",
			Timestamp: now.Add(-5 * time.Second),
			Level:     entry.LevelWarning,
			Category:  entry.CategoryStorage,
			Message:   "Storage usage approaching limit",
			Details: &entry.Details{
				Storage: &entry.Storage{Used: "8.7 GB", Limit: "10 GB", Percentage: 87},
			},
			Source: "storage-monitor",
		},
		{
			ID:        "3",
			Timestamp: now.Add(-10 * time.Second),
			Level:     entry.LevelError,
			Category:  entry.CategoryWorkflow,
			Message:   "Workflow execution failed at step 3",
			Details: &entry.Details{
				Workflow: &entry.Workflow{ID: "wf-12345", Step: "data-processing", Duration: 45000},
				Error: &entry.Failure{
					Code:  "TIMEOUT_ERROR",
					Stack: "Error: Request timeout after 45s\n  at WorkflowEngine.execute\n  at async processStep",
				},
			},
			Source: "workflow-engine",
		},
		{
			ID:        "4",
			Timestamp: now.Add(-15 * time.Second),
			Level:     entry.LevelSuccess,
			Category:  entry.CategoryWorkflow,
			Message:   "Workflow completed successfully",
			Details: &entry.Details{
				Workflow: &entry.Workflow{ID: "wf-12344", Step: "completion", Duration: 12000},
			},
			Source: "workflow-engine",
		},
	}
}

// Seed appends the sample entries oldest first so the store ends up newest first
func Seed(a store.Appender, now time.Time) {
	samples := SampleEntries(now)

	for i := len(samples) - 1; i >= 0; i-- {
		a.Append(samples[i])
	}
}
