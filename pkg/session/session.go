package session

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DefaultBaseDir is where session directories are created when no
// --output-dir is given.
const DefaultBaseDir = "theme-results"

// GenerateSessionID creates a timestamp-first session ID for one analysis run.
// Format: YYYY-MM-DDTHH-MM-{hash}
// Hash is derived from the input path and the ordered theme names.
func GenerateSessionID(inputPath string, themeNames []string, now time.Time) string {
	h := sha256.New()
	h.Write([]byte(inputPath))
	h.Write([]byte("\n"))
	for _, name := range themeNames {
		h.Write([]byte(name))
		h.Write([]byte("\n"))
	}
	hashBytes := h.Sum(nil)
	shortHash := hex.EncodeToString(hashBytes[:6]) // 12 char hex

	// Generate timestamp (minute precision)
	timestamp := now.Format("2006-01-02T15-04")

	return fmt.Sprintf("%s-%s", timestamp, shortHash)
}

// GetSessionDir returns the full path to a session directory.
func GetSessionDir(baseDir, sessionID string) string {
	if baseDir == "" {
		baseDir = DefaultBaseDir
	}
	return filepath.Join(baseDir, "sessions", sessionID)
}

// EnsureSessionDir creates the session directory structure if it doesn't
// exist and returns its path.
func EnsureSessionDir(baseDir, sessionID string) (string, error) {
	sessionDir := GetSessionDir(baseDir, sessionID)

	if err := os.MkdirAll(sessionDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create session directory: %w", err)
	}

	return sessionDir, nil
}
