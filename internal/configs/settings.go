package configs

import (
	"log"
	"os"
	"path/filepath"

	"github.com/PolarWolf314/echo-journal/internal/utils"
)

type UserSettings struct {
	HomeDir         string
	UserConfigsPath string
	UserDataPath    string
	Username        string
}

var UserEchoSettings *UserSettings

func init() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("error getting home directory: %s", err)
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Fatalf("error getting config directory: %s", err)
	}

	dataDir := os.Getenv("XDG_DATA_HOME")

	if dataDir == "" {
		dataDir = filepath.Join(homeDir, ".local", "share")
	}

	username, err := utils.GetUsername()
	if err != nil {
		username = "unknown"
	}

	// Nothing here depends on the journal itself, so it is ok to init here
	UserEchoSettings = &UserSettings{
		HomeDir:         homeDir,
		UserConfigsPath: filepath.Join(configDir, "echo"),
		UserDataPath:    filepath.Join(dataDir, "echo"),
		Username:        username,
	}
}

// ConfigFilePath returns the location of config.toml.
func ConfigFilePath() string {
	return filepath.Join(UserEchoSettings.UserConfigsPath, "config.toml")
}

// AuditLogPath returns the location of the audit log. It lives outside the
// journal root so the bulk codec never encrypts it.
func AuditLogPath() string {
	return filepath.Join(UserEchoSettings.UserDataPath, "audit.jsonl")
}
