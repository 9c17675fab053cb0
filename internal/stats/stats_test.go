package stats

import (
	"math"
	"testing"

	"github.com/hahmed/bmitrack/internal/models"
)

func TestSummarize(t *testing.T) {
	history := []models.Record{
		{Date: "2026-08-01 09:00", BMI: 22.9},
		{Date: "2026-08-08 09:00", BMI: 21.5},
		{Date: "2026-08-15 09:00", BMI: 24.1},
	}

	sum := Summarize(history)
	if sum.Count != 3 {
		t.Errorf("Count = %d, want 3", sum.Count)
	}
	if sum.Min != 21.5 {
		t.Errorf("Min = %v, want 21.5", sum.Min)
	}
	if sum.Max != 24.1 {
		t.Errorf("Max = %v, want 24.1", sum.Max)
	}
	if math.Abs(sum.Mean-22.833333) > 1e-5 {
		t.Errorf("Mean = %v, want ~22.83", sum.Mean)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	sum := Summarize(nil)
	if sum != (Summary{}) {
		t.Errorf("Summarize(nil) = %+v, want zero Summary", sum)
	}
}

func TestSummarizeSingleRecord(t *testing.T) {
	sum := Summarize([]models.Record{{BMI: 22.9}})
	if sum.Count != 1 || sum.Min != 22.9 || sum.Max != 22.9 || sum.Mean != 22.9 {
		t.Errorf("Summarize single = %+v", sum)
	}
}

func TestTrend(t *testing.T) {
	history := []models.Record{
		{Date: "2026-08-01 09:00", BMI: 22.9},
		{Date: "garbage", BMI: 50.0},
		{Date: "2026-08-15 09:00", BMI: 24.1},
	}

	points := Trend(history)
	if len(points) != 2 {
		t.Fatalf("Trend returned %d points, want 2 (bad date skipped)", len(points))
	}
	if points[0].BMI != 22.9 || points[1].BMI != 24.1 {
		t.Errorf("Trend values = %+v", points)
	}
	if !points[0].Time.Before(points[1].Time) {
		t.Errorf("Trend not chronological: %v >= %v", points[0].Time, points[1].Time)
	}
}

func TestTrendEmpty(t *testing.T) {
	if points := Trend(nil); len(points) != 0 {
		t.Errorf("Trend(nil) = %v, want empty", points)
	}
}
