// Package logger provides leveled, colored logging for Echo commands.
//
// # Verbosity Levels
//
//   - --verbose: info and warning messages
//   - --debug: everything, including per-file codec results
//
// Without flags only WarnfAlways output reaches the terminal.
//
// # Usage
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Debugf("skipped %s: %s", path, reason)
//
// The root command builds the logger in its PersistentPreRun and hands it to
// workflows and the journal session.
package logger
