package output

import (
	"os"
	"path/filepath"
)

// GetLogFilePath returns the path to the log file.
// If HULLO_LOG_FILE is set, uses that path. Otherwise an explicitly
// configured path wins over the default ~/.hullo/logs/hullo.log.
func GetLogFilePath(configured string) string {
	if customPath := os.Getenv("HULLO_LOG_FILE"); customPath != "" {
		return customPath
	}
	if configured != "" {
		return configured
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if we can't get home dir
		return "hullo.log"
	}

	return filepath.Join(homeDir, ".hullo", "logs", "hullo.log")
}
