// Package bmi implements the BMI formula, its unit conversions, and the
// category band table with per-band recommendations.
package bmi

import "fmt"

// WeightUnit is the unit a weight was entered in.
type WeightUnit string

// HeightUnit is the unit a height was entered in.
type HeightUnit string

const (
	Kilograms WeightUnit = "kg"
	Pounds    WeightUnit = "lbs"

	Centimeters HeightUnit = "cm"
	Inches      HeightUnit = "in"
)

const (
	kgPerPound = 0.453592
	cmPerInch  = 2.54
)

// ParseWeightUnit maps a user-supplied unit string to a WeightUnit.
func ParseWeightUnit(s string) (WeightUnit, error) {
	switch s {
	case "kg":
		return Kilograms, nil
	case "lbs", "lb":
		return Pounds, nil
	}
	return "", fmt.Errorf("unknown weight unit %q (want kg or lbs)", s)
}

// ParseHeightUnit maps a user-supplied unit string to a HeightUnit.
func ParseHeightUnit(s string) (HeightUnit, error) {
	switch s {
	case "cm":
		return Centimeters, nil
	case "in", "inches":
		return Inches, nil
	}
	return "", fmt.Errorf("unknown height unit %q (want cm or in)", s)
}

// Calculate returns the BMI for the given weight and height, converting
// imperial inputs to metric first.
//
// The function performs no validation: callers must have rejected
// non-positive values already, and a zero height yields +Inf.
func Calculate(weight, height float64, wu WeightUnit, hu HeightUnit) float64 {
	if wu == Pounds {
		weight *= kgPerPound
	}
	if hu == Inches {
		height *= cmPerInch
	}
	m := height / 100
	return weight / (m * m)
}
