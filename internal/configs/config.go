package configs

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/PolarWolf314/echo-journal/internal/utils"
	"github.com/google/uuid"
)

const (
	DefaultJournalDirName = "Echo"
	DefaultNoteFileName   = "journal.txt"
	DefaultPinFileName    = ".echo_pin"
)

type Config struct {
	Journal JournalConfig `toml:"journal"`
	Install Install       `toml:"install"`
}

type JournalConfig struct {
	Root     string `toml:"root"`
	NoteFile string `toml:"note_file"`
	PinFile  string `toml:"pin_file"`
}

type Install struct {
	UUID      string    `toml:"install_uuid"`
	CreatedAt time.Time `toml:"created_at"`
}

// DefaultConfig returns the layout used when no config file exists:
// ~/Echo for notes and ~/.echo_pin for the pin record.
func DefaultConfig() *Config {
	home := UserEchoSettings.HomeDir
	return &Config{
		Journal: JournalConfig{
			Root:     filepath.Join(home, DefaultJournalDirName),
			NoteFile: DefaultNoteFileName,
			PinFile:  filepath.Join(home, DefaultPinFileName),
		},
	}
}

// LoadConfig loads config.toml, filling any missing value with its default.
// A missing file is not an error.
func LoadConfig() (*Config, error) {
	config := DefaultConfig()
	configPath := ConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	loaded := &Config{}
	if err := LoadTOML(configPath, loaded); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if loaded.Journal.Root != "" {
		config.Journal.Root = utils.ExpandHome(loaded.Journal.Root, UserEchoSettings.HomeDir)
	}
	if loaded.Journal.NoteFile != "" {
		if filepath.Base(loaded.Journal.NoteFile) != loaded.Journal.NoteFile {
			return nil, fmt.Errorf("note_file %q must be a bare file name", loaded.Journal.NoteFile)
		}
		config.Journal.NoteFile = loaded.Journal.NoteFile
	}
	if loaded.Journal.PinFile != "" {
		config.Journal.PinFile = utils.ExpandHome(loaded.Journal.PinFile, UserEchoSettings.HomeDir)
	}
	config.Install = loaded.Install

	return config, nil
}

// SaveConfig writes the config to config.toml.
func SaveConfig(config *Config) error {
	if err := SaveTOML(ConfigFilePath(), config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

// EnsureConfig makes sure config.toml exists and carries an install UUID.
func EnsureConfig() (*Config, error) {
	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	if config.Install.UUID == "" {
		config.Install.UUID = GenerateUUID()
		config.Install.CreatedAt = time.Now().UTC()
		if err := SaveConfig(config); err != nil {
			return nil, err
		}
	}

	return config, nil
}

// GenerateUUID generates a new random UUID, used for installs and sessions.
func GenerateUUID() string {
	return uuid.New().String()
}
