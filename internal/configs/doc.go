// Package configs manages Echo's configuration and well-known paths.
//
// Configuration lives in <UserConfigDir>/echo/config.toml:
//
//	[journal]
//	root = "~/Echo"
//	note_file = "journal.txt"
//	pin_file = "~/.echo_pin"
//
//	[install]
//	install_uuid = "..."
//	created_at = 2026-10-19T08:00:00Z
//
// Every value is optional. A missing file means the defaults above, and the
// file is written the first time a pin is created.
//
// # Settings
//
// UserEchoSettings is resolved once at startup (home, config and data
// directories, OS user name). Tests replace it to point at temp directories.
package configs
