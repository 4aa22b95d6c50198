package config

import (
	"os"
	"path/filepath"
)

// HistoryPath returns the readline history file used by --prompt.
func HistoryPath() string {
	return filepath.Join(os.TempDir(), "winvol-prompt.history")
}
