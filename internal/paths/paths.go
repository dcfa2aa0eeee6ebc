// Package paths centralizes the on-disk locations the app touches.
package paths

import (
	"os"
	"path/filepath"
)

const appDir = "imsg"

// ConfigDir returns the app's configuration directory.
func ConfigDir() string {
	base, _ := os.UserConfigDir()
	return filepath.Join(base, appDir)
}

// ConfigFile returns the contact directory file path.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// LogDir returns the log directory.
func LogDir() string {
	return filepath.Join(ConfigDir(), "logs")
}

// LogFile returns the log file path.
func LogFile() string {
	return filepath.Join(LogDir(), "imsg.log")
}

// MessagesDB returns the Apple Messages history database path.
func MessagesDB() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, "Library", "Messages", "chat.db")
}
