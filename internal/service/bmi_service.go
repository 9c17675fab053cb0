// Package service orchestrates the calculate, classify, persist flow.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/hahmed/bmitrack/internal/bmi"
	"github.com/hahmed/bmitrack/internal/export"
	"github.com/hahmed/bmitrack/internal/metrics"
	"github.com/hahmed/bmitrack/internal/models"
	"github.com/hahmed/bmitrack/internal/stats"
	"github.com/hahmed/bmitrack/internal/storage"
)

// ErrInvalidInput marks user input that cannot be turned into a measurement.
// When it is returned nothing has been persisted and the history is unchanged.
var ErrInvalidInput = errors.New("invalid input")

// Input carries the raw values collected from the user.
type Input struct {
	Weight     string
	Height     string
	WeightUnit string
	HeightUnit string
}

// Result is the outcome of one calculation.
type Result struct {
	BMI      float64
	Category bmi.Category
	Record   models.Record
}

// BMIService wires the calculator and classifier to a history store.
type BMIService struct {
	store   storage.Store
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewBMIService creates a BMIService backed by the given store.
func NewBMIService(store storage.Store, m *metrics.Metrics) *BMIService {
	return &BMIService{store: store, metrics: m, now: time.Now}
}

// Calculate parses in, computes and classifies the BMI, and appends a record
// to the history. Parse failures return errors wrapping ErrInvalidInput and
// leave the history untouched; storage failures propagate to the caller.
//
// The record keeps weight and height in the unit they were entered in; only
// the BMI itself is computed from the metric conversion.
func (s *BMIService) Calculate(ctx context.Context, in Input) (*Result, error) {
	weight, err := parsePositive(in.Weight, "weight")
	if err != nil {
		return nil, err
	}
	height, err := parsePositive(in.Height, "height")
	if err != nil {
		return nil, err
	}
	wu, err := bmi.ParseWeightUnit(in.WeightUnit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	hu, err := bmi.ParseHeightUnit(in.HeightUnit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	value := bmi.Calculate(weight, height, wu, hu)
	category := bmi.Classify(value)

	rec := models.NewRecord(weight, height, value, category.Label, s.now())
	if err := s.store.Append(ctx, rec); err != nil {
		s.metrics.StoreErrors.Inc()
		return nil, fmt.Errorf("failed to persist record: %w", err)
	}
	s.metrics.Calculations.WithLabelValues(category.Label).Inc()
	slog.Info("calculated BMI", "bmi", rec.BMI, "category", rec.Category)

	return &Result{BMI: value, Category: category, Record: rec}, nil
}

// History returns all persisted records in calculation order.
func (s *BMIService) History(ctx context.Context) ([]models.Record, error) {
	return s.store.Load(ctx)
}

// Statistics summarizes the persisted history and returns its trend series.
func (s *BMIService) Statistics(ctx context.Context) (stats.Summary, []stats.Point, error) {
	history, err := s.store.Load(ctx)
	if err != nil {
		return stats.Summary{}, nil, err
	}
	return stats.Summarize(history), stats.Trend(history), nil
}

// Clear wipes the history, in memory and on disk.
func (s *BMIService) Clear(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		s.metrics.StoreErrors.Inc()
		return err
	}
	slog.Info("history cleared")
	return nil
}

// ExportXLSX writes the history, its summary, and a trend chart to an Excel
// workbook at path.
func (s *BMIService) ExportXLSX(ctx context.Context, path string) error {
	history, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	return export.WriteXLSX(path, history, stats.Summarize(history))
}

// ExportJSON writes the history as the interchange JSON-array document,
// regardless of which backend is active.
func (s *BMIService) ExportJSON(ctx context.Context, path string) error {
	history, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	if history == nil {
		history = []models.Record{}
	}
	data, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func parsePositive(raw, field string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a number", ErrInvalidInput, field, raw)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%w: %s must be positive", ErrInvalidInput, field)
	}
	return v, nil
}
