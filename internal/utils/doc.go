// Package utils provides shared helpers for Echo.
//
// # Filesystem Utilities
//   - ExpandHome: resolves "~" in configured paths
//   - IsWithin: guards note paths against escaping the journal root
//   - FileExists: regular-file check
//
// # Terminal Utilities
//   - ReadPin: hidden pin prompt on stdin or /dev/tty, abandoned on cancellation
//   - IsTerminal, StdinIsPiped: decide where the pin and the entry come from
//
// # I/O and String Utilities
//   - ReadEntry: reads a journal entry until EOF or cancellation
//   - FormatPaths, RelativePaths: human-readable path lists
package utils
