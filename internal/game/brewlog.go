package game

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// BrewRecord is one evaluated potion, stored as a line of brews.jsonl.
type BrewRecord struct {
	Timestamp   time.Time      `json:"timestamp"`
	Player      string         `json:"player,omitempty"`
	Level       int            `json:"level"` // 1-indexed
	Ingredients []string       `json:"ingredients"`
	Composition map[string]int `json:"composition"`
	Outcome     string         `json:"outcome"`
	Element     string         `json:"element,omitempty"`
}

// saveBrewRecord appends rec as a single JSON line to brews.jsonl.
// Failures are logged and never reach the player.
func saveBrewRecord(rec BrewRecord, logger *slog.Logger) {
	dir, err := DataDir()
	if err != nil {
		logger.Warn("brew log: cannot determine data dir", "error", err)
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warn("brew log: cannot create data dir", "error", err)
		return
	}
	f, err := os.OpenFile(filepath.Join(dir, "brews.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		logger.Warn("brew log: cannot open file", "error", err)
		return
	}
	defer f.Close()
	data, err := json.Marshal(rec)
	if err != nil {
		logger.Warn("brew log: cannot marshal JSON", "error", err)
		return
	}
	data = append(data, '\n')
	if _, err := f.Write(data); err != nil {
		logger.Warn("brew log: write failed", "error", err)
	}
}

// DataDir returns the directory for brew logs and the local debug log.
// Follows the XDG Base Directory layout: $XDG_DATA_HOME/potion-brewer,
// defaulting to ~/.local/share/potion-brewer.
func DataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "potion-brewer"), nil
}
