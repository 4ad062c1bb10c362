// Package ui prints styled status lines for the CLI.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette shared by all CLI output.
const (
	ColorPrimary = lipgloss.Color("#7C3AED")
	ColorMuted   = lipgloss.Color("#6B7280")
	ColorSuccess = lipgloss.Color("#10B981")
	ColorError   = lipgloss.Color("#EF4444")
	ColorWarning = lipgloss.Color("#F59E0B")
)

var (
	HeaderStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	SuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	ErrorStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorError)
	WarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	MutedStyle   = lipgloss.NewStyle().Foreground(ColorMuted)

	// labelStyle pads labels so details line up.
	labelStyle = lipgloss.NewStyle().Width(15)
)

// Output is where status lines are written.
var Output io.Writer = os.Stdout

func PrintHeader(msg string) {
	fmt.Fprintf(Output, "\n%s\n", HeaderStyle.Render(msg))
}

func PrintSuccess(label, detail string) {
	printLine(SuccessStyle.Render("✔"), label, SuccessStyle.Render(detail))
}

func PrintError(label, detail string) {
	printLine(ErrorStyle.Render("✘"), label, ErrorStyle.Render(detail))
}

func PrintWarning(label, detail string) {
	printLine(WarningStyle.Render("!"), label, WarningStyle.Render(detail))
}

// PrintDiff prints a line diff, coloring added and removed lines.
func PrintDiff(diff string) {
	for _, line := range strings.SplitAfter(diff, "\n") {
		if line == "" {
			continue
		}
		text := strings.TrimSuffix(line, "\n")
		switch {
		case strings.HasPrefix(text, "+"):
			text = SuccessStyle.Render(text)
		case strings.HasPrefix(text, "-"):
			text = ErrorStyle.Render(text)
		default:
			text = MutedStyle.Render(text)
		}
		fmt.Fprintln(Output, text)
	}
}

func printLine(icon, label, detail string) {
	fmt.Fprintf(Output, "  %s %s %s\n", icon, labelStyle.Render(label), detail)
}
