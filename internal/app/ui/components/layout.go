package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"logdeck/internal/config"
)

// RenderLine renders a horizontal line of the specified width
func RenderLine(s Styles, width int) string {
	if width < 0 {
		width = 0
	}

	return s.Separator.Render(strings.Repeat("─", width))
}

// RenderHeader renders the header with format: ─── <title> ─────── <info> ───
func RenderHeader(s Styles, width int, title, info string) string {
	titleWidth := lipgloss.Width(title)
	infoWidth := lipgloss.Width(info)

	maxTitleWidth := width - infoWidth - HeaderSeparatorMinWidth - HeaderFixedChars
	if titleWidth > maxTitleWidth && maxTitleWidth > 0 {
		title = Truncate(title, maxTitleWidth)
		titleWidth = lipgloss.Width(title)
	}

	separatorWidth := width - titleWidth - infoWidth - HeaderFixedChars
	if separatorWidth < HeaderSeparatorMinWidth {
		separatorWidth = HeaderSeparatorMinWidth
	}

	return RenderLine(s, 3) + " " + title + " " + RenderLine(s, separatorWidth) + " " + info + " " + RenderLine(s, 3)
}

// RenderFooter renders the version line followed by help text
func RenderFooter(s Styles, width int, helpText string) string {
	version := fmt.Sprintf("v%s", config.Version)
	versionWidth := lipgloss.Width(version)

	separatorWidth := width - versionWidth - FooterFixedChars
	if separatorWidth < FooterSeparatorMinWidth {
		separatorWidth = FooterSeparatorMinWidth
	}

	versionLine := RenderLine(s, separatorWidth) + " " + s.Muted.Render(version) + " " + RenderLine(s, 3)

	return lipgloss.JoinVertical(lipgloss.Left, versionLine, s.Help.Render(helpText))
}

// Truncate shortens s to maxWidth cells, ending with an ellipsis when cut
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}

	if lipgloss.Width(s) <= maxWidth {
		return s
	}

	if maxWidth == 1 {
		return "…"
	}

	runes := []rune(s)
	for i := len(runes) - 1; i >= 0; i-- {
		truncated := string(runes[:i]) + "…"
		if lipgloss.Width(truncated) <= maxWidth {
			return truncated
		}
	}

	return "…"
}

// PadRight pads s with spaces to width cells
func PadRight(s string, width int) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}

	return s + strings.Repeat(" ", gap)
}

// TruncateAndPad fits s into exactly width cells
func TruncateAndPad(s string, width int) string {
	return PadRight(Truncate(s, width), width)
}
