package ui

import (
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestFormatterWithColor(t *testing.T) {
	os.Unsetenv("NO_COLOR")
	originalNoColor := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = originalNoColor }()

	result := Code.Sprint("echo write")
	if strings.Contains(result, "`") {
		t.Errorf("Code.Sprint should not contain backticks when color is enabled, got: %s", result)
	}
	if !strings.Contains(result, "\x1b[") {
		t.Errorf("Code.Sprint should contain ANSI escape codes when color is enabled, got: %s", result)
	}
}

func TestFormatterWithNoColor(t *testing.T) {
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	tests := []struct {
		name      string
		formatter Formatter
		input     string
		want      string
	}{
		{"Code adds backticks", Code, "echo seal", "`echo seal`"},
		{"Path has no decoration", Path, "2026/Oct/19/journal.txt", "2026/Oct/19/journal.txt"},
		{"Date adds brackets", Date, "2026-10-19", "[2026-10-19]"},
		{"Success has no decoration", Success, "✓", "✓"},
		{"Error has no decoration", Error, "✗", "✗"},
		{"Warning has no decoration", Warning, "locked", "locked"},
		{"Info has no decoration", Info, "→", "→"},
		{"Highlight adds quotes", Highlight, "journal.txt", "'journal.txt'"},
		{"Muted adds parentheses", Muted, "read-only", "(read-only)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.formatter.Sprint(tt.input)
			if got != tt.want {
				t.Errorf("%s.Sprint(%q) = %q, want %q", tt.name, tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatterSprintf(t *testing.T) {
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	result := Date.Sprintf("%d-%02d-%02d", 2026, 10, 19)
	if result != "[2026-10-19]" {
		t.Errorf("Date.Sprintf() = %q, want %q", result, "[2026-10-19]")
	}
}

func TestMarkersWithNoColor(t *testing.T) {
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	if Check() != "✓" || Cross() != "✗" || Arrow() != "→" {
		t.Errorf("Unexpected markers: %q %q %q", Check(), Cross(), Arrow())
	}
}

func TestNoColorFunction(t *testing.T) {
	os.Setenv("NO_COLOR", "1")
	if !noColor() {
		t.Error("noColor() should return true when NO_COLOR is set")
	}
	os.Unsetenv("NO_COLOR")

	originalNoColor := color.NoColor
	color.NoColor = true
	if !noColor() {
		t.Error("noColor() should return true when color.NoColor is true")
	}
	color.NoColor = originalNoColor
}

func TestEnsureNewline(t *testing.T) {
	if EnsureNewline("") != "\n" {
		t.Error("Expected newline for empty string")
	}
	if EnsureNewline("saved") != "saved\n" {
		t.Error("Expected newline appended")
	}
	if EnsureNewline("saved\n") != "saved\n" {
		t.Error("Expected existing newline kept")
	}
}
