package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Palette
// =============================================================================

var (
	colorAccent = lipgloss.Color("36")  // teal
	colorOK     = lipgloss.Color("35")  // green
	colorWarn   = lipgloss.Color("220") // amber
	colorFail   = lipgloss.Color("167") // soft red
	colorLink   = lipgloss.Color("75")  // light blue
	colorValue  = lipgloss.Color("255") // bright white
	colorLabel  = lipgloss.Color("245") // gray
	colorMuted  = lipgloss.Color("240") // dim gray
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleTitle renders chart titles.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)

	// StyleLink renders server addresses.
	StyleLink = lipgloss.NewStyle().Foreground(colorLink).Underline(true)

	// StyleDim renders secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorMuted)

	// StyleValue renders file paths and field values.
	StyleValue = lipgloss.NewStyle().Foreground(colorValue)
)

var (
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorAccent)
	styleLabel       = lipgloss.NewStyle().Foreground(colorLabel).Width(12)
	styleCommand     = lipgloss.NewStyle().Foreground(colorLink)

	// element table
	styleTableBorder = lipgloss.NewStyle().Foreground(colorMuted)
	styleTableHeader = lipgloss.NewStyle().Foreground(colorLabel).Bold(true)
)

// statusIcons maps a status line kind to its glyph and style.
var statusIcons = map[string]struct {
	glyph string
	style lipgloss.Style
}{
	"ok":   {"✓", lipgloss.NewStyle().Foreground(colorOK)},
	"fail": {"✗", lipgloss.NewStyle().Foreground(colorFail)},
	"warn": {"!", lipgloss.NewStyle().Foreground(colorWarn)},
	"info": {"›", lipgloss.NewStyle().Foreground(colorLabel)},
}

// =============================================================================
// Status lines
// =============================================================================

func printStatus(kind, msg string) {
	icon := statusIcons[kind]
	fmt.Println(icon.style.Render(icon.glyph) + " " + msg)
}

func printSuccess(format string, args ...any) { printStatus("ok", fmt.Sprintf(format, args...)) }

func printError(format string, args ...any) { printStatus("fail", fmt.Sprintf(format, args...)) }

func printWarning(format string, args ...any) {
	printStatus("warn", lipgloss.NewStyle().Foreground(colorWarn).Render(fmt.Sprintf(format, args...)))
}

func printInfo(format string, args ...any) { printStatus("info", fmt.Sprintf(format, args...)) }

// printDetail prints an indented secondary line.
func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints a written output file.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render("→") + " " + StyleValue.Render(path))
}

// printKeyValue prints a labeled value in a fixed-width column.
func printKeyValue(key, value string) {
	fmt.Println(styleLabel.Render(key) + " " + StyleValue.Render(value))
}

// =============================================================================
// Chart output
// =============================================================================

// swatch renders a small block in a hex fill color. Other values render as
// plain text.
func swatch(color string) string {
	if !strings.HasPrefix(color, "#") {
		return color
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("■") + " " + color
}

// printStats prints record and shape counts and whether the artifacts came
// from the cache.
func printStats(records, shapes int, cached bool) {
	origin := lipgloss.NewStyle().Foreground(colorLabel).Render("fresh")
	if cached {
		origin = lipgloss.NewStyle().Foreground(colorOK).Render("cached")
	}
	sep := StyleDim.Render(" · ")
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf("%d records", records)) +
		sep + StyleDim.Render(fmt.Sprintf("%d shapes", shapes)) +
		sep + origin)
}

// printNextStep suggests a follow-up command.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

func printNewline() { fmt.Println() }
