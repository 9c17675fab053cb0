package bmi

import (
	"math"
	"testing"
)

func TestClassifyBoundaries(t *testing.T) {
	tests := []struct {
		bmi  float64
		want string
	}{
		{-5, "Severe Underweight"},
		{math.Inf(-1), "Severe Underweight"},
		{15.9, "Severe Underweight"},
		{16, "Underweight"},
		{18.49999, "Underweight"},
		{18.5, "Normal Weight"},
		{22.9, "Normal Weight"},
		{24.99999, "Normal Weight"},
		{25.0, "Overweight"},
		{29.9, "Overweight"},
		{30, "Obese Class I"},
		{34.999, "Obese Class I"},
		{35.0, "Obese Class II"},
		{50, "Obese Class II"},
		{math.Inf(1), "Obese Class II"},
	}

	for _, tt := range tests {
		got := Classify(tt.bmi)
		if got.Label != tt.want {
			t.Errorf("Classify(%v) = %q, want %q", tt.bmi, got.Label, tt.want)
		}
	}
}

func TestClassifyColors(t *testing.T) {
	tests := []struct {
		bmi  float64
		want string
	}{
		{10, "#ff0000"},
		{17, "#ff9900"},
		{22, "#00cc00"},
		{27, "#ff9900"},
		{32, "#ff3300"},
		{40, "#ff0000"},
	}

	for _, tt := range tests {
		if got := Classify(tt.bmi).Color; got != tt.want {
			t.Errorf("Classify(%v).Color = %q, want %q", tt.bmi, got, tt.want)
		}
	}
}

func TestClassifyRecommendations(t *testing.T) {
	// Every band carries static advice text.
	for _, b := range bands {
		if n := len(b.Recommendations); n < 4 || n > 5 {
			t.Errorf("band %q has %d recommendations, want 4-5", b.Label, n)
		}
	}

	got := Classify(22).Recommendations[0]
	if got != "Maintain a balanced diet" {
		t.Errorf("Normal Weight first recommendation = %q", got)
	}
	got = Classify(15).Recommendations[0]
	if got != "Urgent medical attention required" {
		t.Errorf("Severe Underweight first recommendation = %q", got)
	}
}

func TestClassifyIsTotal(t *testing.T) {
	// NaN compares false against every bound; the scan falls through to the
	// last band instead of panicking.
	if got := Classify(math.NaN()); got.Label == "" {
		t.Error("Classify(NaN) returned empty category")
	}
}
