// Package storage provides persistence for the chameleon game: the canonical
// single-integer high-score file and a SQLite history of finished runs.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// HighScoreFile persists the best score as one decimal integer in a text
// file. A missing or unparseable file reads as zero rather than failing:
// losing the record is recoverable, refusing to start is not.
type HighScoreFile struct {
	path string
}

// NewHighScoreFile creates a high-score file handle at the given path.
// A leading ~ is expanded to the user's home directory.
func NewHighScoreFile(path string) (*HighScoreFile, error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	return &HighScoreFile{path: path}, nil
}

// Path returns the resolved file path.
func (h *HighScoreFile) Path() string {
	return h.path
}

// Load reads the stored high score. A missing or corrupt file yields
// (0, error); callers log the error and continue with zero.
func (h *HighScoreFile) Load() (int, error) {
	data, err := os.ReadFile(h.path)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read high score: %w", err)
	}

	score, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("storage: corrupt high score file %s: %w", h.path, err)
	}
	if score < 0 {
		return 0, fmt.Errorf("storage: negative high score in %s", h.path)
	}
	return score, nil
}

// Save writes the high score atomically: the value is written to a
// temporary file in the same directory and renamed over the target, so a
// crash mid-write never leaves a truncated record.
func (h *HighScoreFile) Save(score int) error {
	dir := filepath.Dir(h.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".highscore-*")
	if err != nil {
		return fmt.Errorf("storage: cannot create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := fmt.Fprintf(tmp, "%d\n", score); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("storage: cannot write high score: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("storage: cannot close temp file: %w", err)
	}

	if err := os.Rename(tmpName, h.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("storage: cannot replace high score file: %w", err)
	}
	return nil
}
