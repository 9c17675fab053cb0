package models

import (
	"math"
	"time"
)

// DateLayout is the timestamp format used in persisted records: local time
// at minute precision.
const DateLayout = "2006-01-02 15:04"

// Record is one persisted BMI computation.
//
// Weight and Height are stored in the unit the user entered them in, while
// BMI is always computed from the metric-converted values. All numeric fields
// carry at most one decimal so the in-memory history and the file on disk
// never disagree.
type Record struct {
	Date     string  `json:"date"`
	Weight   float64 `json:"weight"`
	Height   float64 `json:"height"`
	BMI      float64 `json:"bmi"`
	Category string  `json:"category"`
}

// NewRecord builds a record stamped with now, rounding every numeric field
// to one decimal.
func NewRecord(weight, height, bmi float64, category string, now time.Time) Record {
	return Record{
		Date:     now.Format(DateLayout),
		Weight:   Round1(weight),
		Height:   Round1(height),
		BMI:      Round1(bmi),
		Category: category,
	}
}

// Time parses the record's date. ok is false when the date is malformed,
// e.g. hand-edited history files.
func (r Record) Time() (time.Time, bool) {
	t, err := time.ParseInLocation(DateLayout, r.Date, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Round1 rounds v to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
