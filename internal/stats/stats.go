// Package stats computes summary statistics and trend series over BMI history.
package stats

import (
	"time"

	"github.com/hahmed/bmitrack/internal/models"
)

// Summary aggregates the bmi field of a history.
type Summary struct {
	Count int
	Min   float64
	Max   float64
	Mean  float64
}

// Summarize computes min, max, and mean BMI over history.
// An empty history yields a zero Summary.
func Summarize(history []models.Record) Summary {
	if len(history) == 0 {
		return Summary{}
	}

	sum := Summary{
		Count: len(history),
		Min:   history[0].BMI,
		Max:   history[0].BMI,
	}
	total := 0.0
	for _, rec := range history {
		if rec.BMI < sum.Min {
			sum.Min = rec.BMI
		}
		if rec.BMI > sum.Max {
			sum.Max = rec.BMI
		}
		total += rec.BMI
	}
	sum.Mean = total / float64(len(history))
	return sum
}

// Point is one sample of the BMI trend.
type Point struct {
	Time time.Time
	BMI  float64
}

// Trend converts history into a chronological series for charting.
// Records are already in calculation order; records whose date fails to
// parse are skipped.
func Trend(history []models.Record) []Point {
	var points []Point
	for _, rec := range history {
		t, ok := rec.Time()
		if !ok {
			continue
		}
		points = append(points, Point{Time: t, BMI: rec.BMI})
	}
	return points
}
