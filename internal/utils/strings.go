package utils

import (
	"path/filepath"
	"strings"

	"github.com/PolarWolf314/echo-journal/internal/ui"
)

// FormatPaths formats a slice of paths into a readable string.
func FormatPaths(paths []string) string {
	var b strings.Builder
	b.WriteString("\n")
	for _, path := range paths {
		b.WriteString("    - ")
		b.WriteString(ui.Path.Sprint(path))
		b.WriteString("\n")
	}
	return b.String()
}

// RelativePaths rewrites paths relative to root. Paths that cannot be made
// relative are returned unchanged.
func RelativePaths(root string, paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		rel, err := filepath.Rel(root, p)
		if err != nil || strings.HasPrefix(rel, "..") {
			out = append(out, p)
			continue
		}
		out = append(out, rel)
	}
	return out
}
