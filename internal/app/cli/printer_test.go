package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"logdeck/internal/app/entry"
	"logdeck/internal/config"
)

func Test_Printer_Print(t *testing.T) {
	var buf bytes.Buffer

	p := newPrinter(&buf, config.ThemeDark)
	p.Print(entry.Entry{
		ID:        "1",
		Timestamp: time.Date(2026, 10, 15, 12, 30, 45, 123000000, time.UTC),
		Level:     entry.LevelWarning,
		Category:  entry.CategoryTokenUsage,
		Message:   "Token usage approaching limit",
		Source:    "llm-gateway",
	})

	assert.Equal(t, "12:30:45.123 WARNING token usage Token usage approaching limit (llm-gateway)\n", buf.String())
}

func Test_Printer_PrintWithoutSource(t *testing.T) {
	var buf bytes.Buffer

	p := newPrinter(&buf, config.ThemeLight)
	p.Print(entry.Entry{
		ID:        "2",
		Timestamp: time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC),
		Level:     entry.LevelInfo,
		Category:  entry.CategorySystem,
		Message:   "System health check passed",
	})

	assert.Equal(t, "08:00:00.000 INFO    system      System health check passed\n", buf.String())
}
