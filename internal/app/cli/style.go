package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"logdeck/internal/config"
)

var (
	sectionHeader   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")).MarginTop(1)
	commandName     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#04B575"))
	exampleCode     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFA726"))
	bodyText        = lipgloss.NewStyle().Foreground(lipgloss.Color("#E0E0E0"))
	mutedText       = lipgloss.NewStyle().Foreground(lipgloss.Color("#9E9E9E")).Italic(true)
	errorText       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444"))
	appNameStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	appVersionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#BDBDBD"))
	titleWrapper    = lipgloss.NewStyle().MarginTop(1)
)

type usageLine struct {
	name string
	desc string
}

var commandLines = []usageLine{
	{"run", "Open the log console (default)"},
	{"init", "Generate " + config.ConfigFile + " template"},
	{"version", "Show version information"},
	{"help", "Show help information"},
}

var flagLines = []usageLine{
	{"-s, --stream", "Start the synthetic feed immediately"},
	{"--no-ui", "Print entries to stdout instead of opening the console"},
	{"-f, --force", "Overwrite an existing file (init)"},
	{"--dry-run", "Print the template instead of writing it (init)"},
	{"-v, --version", "Show version information"},
}

var exampleLines = []usageLine{
	{config.AppName, "Open the console with the sample entries"},
	{config.AppName + " run --stream", "Open the console and start streaming"},
	{config.AppName + " --no-ui --stream", "Stream entries to stdout"},
	{config.AppName + " init --dry-run", "Preview the config template"},
}

// RenderTitle renders the app title block with name, version, and description
func RenderTitle() string {
	title := titleWrapper.Render(
		appNameStyle.Render(config.AppName) + appVersionStyle.Render(" v"+config.Version),
	)

	return lipgloss.JoinVertical(lipgloss.Left, title, bodyText.Render(config.AppDescription))
}

// RenderUsage renders the help screen
func RenderUsage() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		RenderTitle(),
		sectionHeader.Render("Usage:"),
		bodyText.Render("  "+config.AppName+" [command] [flags]"),
		sectionHeader.Render("Commands:"),
		renderLines(commandName, commandLines),
		sectionHeader.Render("Flags:"),
		renderLines(commandName, flagLines),
		sectionHeader.Render("Examples:"),
		renderLines(exampleCode, exampleLines),
	) + "\n"
}

// RenderError renders an error line with a hint to the help command
func RenderError(err error) string {
	return errorText.Render("Error:") + " " + err.Error() + "\n" +
		mutedText.Render("Run '"+config.AppName+" help' for usage.") + "\n"
}

func renderLines(style lipgloss.Style, lines []usageLine) string {
	width := 0
	for _, l := range lines {
		width = max(width, lipgloss.Width(l.name))
	}

	rendered := make([]string, 0, len(lines))
	for _, l := range lines {
		name := style.Render(l.name) + strings.Repeat(" ", width-lipgloss.Width(l.name))
		rendered = append(rendered, "  "+name+"   "+mutedText.Render(l.desc))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}
