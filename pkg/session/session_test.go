package session

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"
)

func TestGenerateSessionID(t *testing.T) {
	now := time.Date(2024, 9, 7, 14, 30, 59, 0, time.UTC)

	id := GenerateSessionID("posts.csv", []string{"AMAZONIA", "Diplomacia"}, now)
	if !regexp.MustCompile(`^2024-09-07T14-30-[0-9a-f]{12}$`).MatchString(id) {
		t.Errorf("GenerateSessionID() = %q, unexpected format", id)
	}

	if again := GenerateSessionID("posts.csv", []string{"AMAZONIA", "Diplomacia"}, now); again != id {
		t.Errorf("same inputs gave %q and %q", id, again)
	}
	if other := GenerateSessionID("posts.csv", []string{"Diplomacia", "AMAZONIA"}, now); other == id {
		t.Error("theme order should change the session ID")
	}
}

func TestEnsureSessionDir(t *testing.T) {
	base := t.TempDir()

	dir, err := EnsureSessionDir(base, "2024-09-07T14-30-abcdef012345")
	if err != nil {
		t.Fatalf("EnsureSessionDir() error = %v", err)
	}
	if want := filepath.Join(base, "sessions", "2024-09-07T14-30-abcdef012345"); dir != want {
		t.Errorf("dir = %q, want %q", dir, want)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Errorf("session dir not created: %v", err)
	}

	if _, err := EnsureSessionDir(base, "2024-09-07T14-30-abcdef012345"); err != nil {
		t.Errorf("EnsureSessionDir() second call error = %v", err)
	}
}

func TestGetSessionDir_DefaultBase(t *testing.T) {
	if got, want := GetSessionDir("", "x"), filepath.Join(DefaultBaseDir, "sessions", "x"); got != want {
		t.Errorf("GetSessionDir() = %q, want %q", got, want)
	}
}
