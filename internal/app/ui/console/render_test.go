package console

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"logdeck/internal/app/entry"
)

func Test_DetailLines(t *testing.T) {
	tests := []struct {
		name     string
		details  *entry.Details
		expected []detailLine
	}{
		{name: "nil details", details: nil, expected: nil},
		{name: "empty details", details: &entry.Details{}, expected: nil},
		{
			name:    "tokens",
			details: &entry.Details{Tokens: &entry.Tokens{Input: 1250, Output: 890, Total: 2140}},
			expected: []detailLine{
				{Label: "Tokens", Text: "Input: 1250  Output: 890  Total: 2140"},
			},
		},
		{
			name:    "storage",
			details: &entry.Details{Storage: &entry.Storage{Used: "8.7 GB", Limit: "10 GB", Percentage: 87}},
			expected: []detailLine{
				{Label: "Storage", Text: "Used: 8.7 GB / 10 GB  Usage: 87%"},
			},
		},
		{
			name: "workflow with error",
			details: &entry.Details{
				Workflow: &entry.Workflow{ID: "wf-12345", Step: "data-processing", Duration: 45000},
				Error:    &entry.Failure{Code: "TIMEOUT_ERROR", Stack: "Error: Request timeout after 45s\n  at WorkflowEngine.execute\n"},
			},
			expected: []detailLine{
				{Label: "Workflow", Text: "ID: wf-12345  Step: data-processing  Duration: 45000ms"},
				{Label: "Error", Text: "Code: TIMEOUT_ERROR"},
				{Text: "Error: Request timeout after 45s", Stack: true},
				{Text: "  at WorkflowEngine.execute", Stack: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, detailLines(tt.details))
		})
	}
}
