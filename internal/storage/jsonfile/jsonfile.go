// Package jsonfile stores BMI history as a single JSON array on disk.
//
// This is the reference backend: the whole file is rewritten on every append,
// which is fine at the scale of a personal history. The file layout is the
// interchange format other backends export to and import from.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hahmed/bmitrack/internal/models"
	"github.com/hahmed/bmitrack/internal/storage"
)

// Ensure FileStore implements storage.Store
var _ storage.Store = (*FileStore)(nil)

// FileStore implements storage.Store over one JSON-array file.
type FileStore struct {
	path    string
	history []models.Record
}

// New opens the store at path, loading any existing history.
// The parent directory is created if it doesn't exist.
func New(path string) (*FileStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create history directory: %w", err)
		}
	}
	s := &FileStore{path: path}
	s.history = s.read()
	return s, nil
}

// read treats "file missing" and "file corrupt" the same way: the user
// starts with an empty history. Corruption is only visible at debug level.
func (s *FileStore) read() []models.Record {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}
	var recs []models.Record
	if err := json.Unmarshal(data, &recs); err != nil {
		slog.Debug("history file unreadable, starting empty", "path", s.path, "error", err)
		return nil
	}
	return recs
}

// Load returns a copy of the in-memory history.
func (s *FileStore) Load(ctx context.Context) ([]models.Record, error) {
	out := make([]models.Record, len(s.history))
	copy(out, s.history)
	return out, nil
}

// Append adds rec to the history and rewrites the whole file. On a write
// failure the in-memory history is left unchanged and the error propagates.
func (s *FileStore) Append(ctx context.Context, rec models.Record) error {
	history := append(s.history[:len(s.history):len(s.history)], rec)
	data, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write history: %w", err)
	}
	s.history = history
	return nil
}

// Clear drops all records and removes the file if present.
func (s *FileStore) Clear(ctx context.Context) error {
	s.history = nil
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove history: %w", err)
	}
	return nil
}

// Close is a no-op; the store holds no open handles between operations.
func (s *FileStore) Close() error {
	return nil
}
