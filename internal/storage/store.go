// Package storage provides abstractions for persistent history storage.
package storage

import (
	"context"

	"github.com/hahmed/bmitrack/internal/models"
)

// Store defines the interface for BMI history storage.
// This abstraction allows swapping storage backends (JSON file, SQLite)
// without changing the service layer.
type Store interface {
	// Load returns the full history in insertion order.
	// A missing or unreadable history reads as empty, not as an error.
	Load(ctx context.Context) ([]models.Record, error)

	// Append persists one record at the end of the history.
	Append(ctx context.Context, rec models.Record) error

	// Clear removes all records, in memory and on disk.
	// Clearing an already empty history is a no-op.
	Clear(ctx context.Context) error

	// Close releases any resources held by the store.
	Close() error
}
