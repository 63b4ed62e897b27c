package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/swaykit/sway-session/internal/model"
)

// stateFile is the default snapshot name under the user cache dir.
const stateFile = "sway-session.json"

// historyDirName is the default archive directory, next to the state
// file.
const historyDirName = "sway-session.d"

// historyPrefix names archived snapshots: session-<unix-ts>.json.
const historyPrefix = "session-"

// DefaultPath returns the default snapshot location. Resolved per call
// so tests and callers that change XDG_CACHE_HOME see the new value.
func DefaultPath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("resolve cache dir: %w", err)
	}
	return filepath.Join(dir, stateFile), nil
}

// DefaultHistoryDir returns the default archive directory.
func DefaultHistoryDir() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("resolve cache dir: %w", err)
	}
	return filepath.Join(dir, historyDirName), nil
}

// Read loads a snapshot from path. A missing file is reported as a
// distinct "state file not found" error so commands can exit with a
// message instead of a stack of wrapping.
func Read(path string) (*model.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("state file not found: %s", path)
		}
		return nil, fmt.Errorf("read state file: %w", err)
	}
	var snap model.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parse state file %s: %w", path, err)
	}
	return &snap, nil
}

// Write persists a snapshot as two-space-indented JSON, creating parent
// directories as needed.
func Write(path string, snap *model.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	return nil
}

// WriteHistory archives an immutable timestamped copy of snap under dir
// and returns its path.
func WriteHistory(dir string, snap *model.Snapshot) (string, error) {
	path := filepath.Join(dir, fmt.Sprintf("%s%d.json", historyPrefix, int64(snap.SavedAt)))
	if err := Write(path, snap); err != nil {
		return "", err
	}
	return path, nil
}

// HistoryEntry describes one archived snapshot.
type HistoryEntry struct {
	Path       string  `yaml:"path"        json:"path"`
	SavedAt    float64 `yaml:"saved_at"    json:"saved_at"`
	Workspaces int     `yaml:"workspaces"  json:"workspaces"`
	Windows    int     `yaml:"windows"     json:"windows"`
}

// ListHistory returns every archived snapshot under dir, newest first.
// A missing directory is an empty history; unreadable entries are
// skipped.
func ListHistory(dir string) ([]HistoryEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []HistoryEntry{}, nil
		}
		return nil, fmt.Errorf("read history dir: %w", err)
	}
	history := []HistoryEntry{}
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, historyPrefix) || !strings.HasSuffix(name, ".json") {
			continue
		}
		path := filepath.Join(dir, name)
		snap, err := Read(path)
		if err != nil {
			continue
		}
		history = append(history, HistoryEntry{
			Path:       path,
			SavedAt:    snap.SavedAt,
			Workspaces: len(snap.Workspaces),
			Windows:    len(snap.Windows),
		})
	}
	sort.Slice(history, func(i, j int) bool {
		return history[i].SavedAt > history[j].SavedAt
	})
	return history, nil
}

// CleanHistory removes archived snapshots older than maxAge by mod time
// and reports how many were removed. Maintenance is best effort: read
// and remove faults are ignored.
func CleanHistory(dir string, maxAge time.Duration) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}
	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, historyPrefix) || !strings.HasSuffix(name, ".json") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if os.Remove(filepath.Join(dir, name)) == nil {
				removed++
			}
		}
	}
	return removed
}
