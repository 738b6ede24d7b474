package configs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// withTempSettings points every user path at a temporary home directory.
func withTempSettings(t *testing.T) string {
	t.Helper()
	home := t.TempDir()

	original := UserEchoSettings
	UserEchoSettings = &UserSettings{
		HomeDir:         home,
		UserConfigsPath: filepath.Join(home, "config"),
		UserDataPath:    filepath.Join(home, "data"),
		Username:        "tester",
	}
	t.Cleanup(func() {
		UserEchoSettings = original
	})

	return home
}

func writeConfig(t *testing.T, content string) {
	t.Helper()
	if err := os.MkdirAll(UserEchoSettings.UserConfigsPath, 0700); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(ConfigFilePath(), []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
}

func TestGenerateUUID(t *testing.T) {
	a, b := GenerateUUID(), GenerateUUID()
	if len(a) != 36 {
		t.Fatalf("Expected UUID length 36, got %d", len(a))
	}
	if a == b {
		t.Error("Expected distinct UUIDs")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	home := withTempSettings(t)

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if config.Journal.Root != filepath.Join(home, "Echo") {
		t.Errorf("Unexpected root %s", config.Journal.Root)
	}
	if config.Journal.NoteFile != "journal.txt" {
		t.Errorf("Unexpected note file %s", config.Journal.NoteFile)
	}
	if config.Journal.PinFile != filepath.Join(home, ".echo_pin") {
		t.Errorf("Unexpected pin file %s", config.Journal.PinFile)
	}
	if config.Install.UUID != "" {
		t.Errorf("Expected no install UUID, got %s", config.Install.UUID)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	home := withTempSettings(t)
	writeConfig(t, `
[journal]
root = "~/Documents/diary"
note_file = "entry.md"
`)

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if config.Journal.Root != filepath.Join(home, "Documents", "diary") {
		t.Errorf("Expected ~ to expand, got %s", config.Journal.Root)
	}
	if config.Journal.NoteFile != "entry.md" {
		t.Errorf("Unexpected note file %s", config.Journal.NoteFile)
	}
	if config.Journal.PinFile != filepath.Join(home, ".echo_pin") {
		t.Errorf("Expected default pin file, got %s", config.Journal.PinFile)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"NestedNoteFile", "[journal]\nnote_file = \"a/b.txt\"\n", "bare file name"},
		{"Malformed", "[journal\nroot = 1\n", "failed to load config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withTempSettings(t)
			writeConfig(t, tt.content)

			_, err := LoadConfig()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestEnsureConfig(t *testing.T) {
	withTempSettings(t)

	first, err := EnsureConfig()
	if err != nil {
		t.Fatalf("EnsureConfig failed: %v", err)
	}
	if first.Install.UUID == "" || first.Install.CreatedAt.IsZero() {
		t.Fatalf("Expected install fields to be set, got %+v", first.Install)
	}
	if _, err := os.Stat(ConfigFilePath()); err != nil {
		t.Fatalf("Expected config file to be written: %v", err)
	}

	second, err := EnsureConfig()
	if err != nil {
		t.Fatalf("EnsureConfig failed: %v", err)
	}
	if second.Install.UUID != first.Install.UUID {
		t.Errorf("Expected install UUID to persist, got %s then %s", first.Install.UUID, second.Install.UUID)
	}
}

func TestPaths(t *testing.T) {
	home := withTempSettings(t)

	if ConfigFilePath() != filepath.Join(home, "config", "config.toml") {
		t.Errorf("Unexpected config path %s", ConfigFilePath())
	}
	if AuditLogPath() != filepath.Join(home, "data", "audit.jsonl") {
		t.Errorf("Unexpected audit log path %s", AuditLogPath())
	}
}
