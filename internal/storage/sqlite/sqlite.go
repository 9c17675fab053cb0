// Package sqlite provides a SQLite-backed implementation of the storage.Store
// interface, for histories large enough that rewriting a JSON file on every
// append becomes wasteful. The JSON-array document written by the jsonfile
// backend remains the interchange format via ImportJSON.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/hahmed/bmitrack/internal/models"
	"github.com/hahmed/bmitrack/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Load returns all records in insertion order.
func (s *SQLiteStore) Load(ctx context.Context) ([]models.Record, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT date, weight, height, bmi, category FROM records ORDER BY seq",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	var history []models.Record
	for rows.Next() {
		var rec models.Record
		if err := rows.Scan(&rec.Date, &rec.Weight, &rec.Height, &rec.BMI, &rec.Category); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		history = append(history, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate records: %w", err)
	}

	return history, nil
}

// Append persists one record at the end of the history.
func (s *SQLiteStore) Append(ctx context.Context, rec models.Record) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO records (id, date, weight, height, bmi, category) VALUES (?, ?, ?, ?, ?, ?)",
		uuid.New().String(), rec.Date, rec.Weight, rec.Height, rec.BMI, rec.Category,
	)
	if err != nil {
		return fmt.Errorf("failed to insert record: %w", err)
	}
	return nil
}

// Clear removes all records.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM records"); err != nil {
		return fmt.Errorf("failed to clear records: %w", err)
	}
	return nil
}

// ImportJSON appends every record from a JSON-array history document,
// e.g. one written by the jsonfile backend. The whole import is one
// transaction: either every record lands or none do.
func (s *SQLiteStore) ImportJSON(ctx context.Context, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var recs []models.Record
	if err := json.Unmarshal(data, &recs); err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, rec := range recs {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO records (id, date, weight, height, bmi, category) VALUES (?, ?, ?, ?, ?, ?)",
			uuid.New().String(), rec.Date, rec.Weight, rec.Height, rec.BMI, rec.Category,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to insert imported record: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit import: %w", err)
	}

	return len(recs), nil
}
