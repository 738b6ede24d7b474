package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Formatter applies semantic formatting to text.
type Formatter struct {
	color  *color.Color
	prefix string
	suffix string
}

// Sprint formats the arguments and returns the resulting string.
func (f Formatter) Sprint(a ...interface{}) string {
	return f.render(fmt.Sprint(a...))
}

// Sprintf formats according to a format specifier and returns the resulting string.
func (f Formatter) Sprintf(format string, a ...interface{}) string {
	return f.render(fmt.Sprintf(format, a...))
}

func (f Formatter) render(text string) string {
	if noColor() {
		return f.prefix + text + f.suffix
	}
	return f.color.Sprint(text)
}

// EnsureNewline ensures the string ends with a newline character.
func EnsureNewline(s string) string {
	if len(s) == 0 || s[len(s)-1] != '\n' {
		return s + "\n"
	}
	return s
}

// noColor returns true if color output should be disabled.
func noColor() bool {
	// https://no-color.org/
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return true
	}
	return color.NoColor
}

// Semantic formatters for CLI output.
var (
	// Code formats runnable commands. `backticks` without color.
	Code = Formatter{color.New(color.FgYellow), "`", "`"}

	// Path formats journal and note paths.
	Path = Formatter{color.New(color.FgYellow), "", ""}

	// Date formats a journal day. [brackets] without color.
	Date = Formatter{color.New(color.FgMagenta), "[", "]"}

	Success = Formatter{color.New(color.FgGreen), "", ""}

	Error = Formatter{color.New(color.FgRed), "", ""}

	Warning = Formatter{color.New(color.FgYellow), "", ""}

	// Info formats hints and directional arrows.
	Info = Formatter{color.New(color.FgCyan), "", ""}

	// Highlight formats user values. 'single quotes' without color.
	Highlight = Formatter{color.New(color.FgCyan), "'", "'"}

	// Muted formats secondary text. (parentheses) without color.
	Muted = Formatter{color.New(color.FgHiBlack), "(", ")"}
)

// Status markers used at the start of final messages.
func Check() string { return Success.Sprint("✓") }
func Cross() string { return Error.Sprint("✗") }
func Arrow() string { return Info.Sprint("→") }
func Lock() string  { return Warning.Sprint("🔒") }
