package components

import "time"

// UI timing constants
const (
	// UITickInterval is the base tick rate for animations
	UITickInterval = 100 * time.Millisecond

	// UITicksPerSecond is the animation frame rate derived from UITickInterval
	UITicksPerSecond = int(time.Second / UITickInterval)

	// StatsInterval is how often the status bar resamples process stats
	StatsInterval = 2 * time.Second
)

// Layout constants
const (
	HeaderSeparatorMinWidth = 4
	HeaderFixedChars        = 10
	FooterSeparatorMinWidth = 4
	FooterFixedChars        = 5

	// ChromeHeight is the number of lines taken by header, toolbar, stats and footer
	ChromeHeight         = 7
	MinListHeight        = 3
	DefaultViewportWidth = 80
)

// Row layout constants
const (
	TimestampFormat  = "15:04:05.000"
	LevelColumnWidth = 7
	CategoryWidth    = 11
	DetailIndent     = 4
)

// Indicators
const (
	IndicatorSelected = "▸ "
	IndicatorEmpty    = "  "
	IndicatorExpanded = "▾"
	IndicatorFolded   = "▸"
	IndicatorNone     = " "
)
