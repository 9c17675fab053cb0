package bmi

import "math"

// Category describes one band of the BMI scale.
type Category struct {
	// Label is the persisted category name.
	Label string

	// Color is the display color for this band, as a hex string.
	Color string

	// Recommendations is the static advice shown for this band,
	// in display order.
	Recommendations []string

	// upper is the exclusive upper bound of the band.
	upper float64
}

// bands is ordered by ascending upper bound. Classify returns the first band
// whose upper bound exceeds the value, so boundaries are closed-open and the
// last band is unbounded.
var bands = []Category{
	{
		Label: "Severe Underweight",
		Color: "#ff0000",
		Recommendations: []string{
			"Urgent medical attention required",
			"Consult with healthcare provider immediately",
			"Work with a registered dietitian",
			"Regular health monitoring needed",
		},
		upper: 16,
	},
	{
		Label: "Underweight",
		Color: "#ff9900",
		Recommendations: []string{
			"Increase caloric intake with nutrient-rich foods",
			"Consider consulting a nutritionist",
			"Add strength training exercises",
			"Monitor your progress regularly",
			"Focus on protein-rich foods",
		},
		upper: 18.5,
	},
	{
		Label: "Normal Weight",
		Color: "#00cc00",
		Recommendations: []string{
			"Maintain a balanced diet",
			"Regular exercise (150 minutes/week)",
			"Stay hydrated",
			"Get adequate sleep (7-9 hours)",
			"Regular health check-ups",
		},
		upper: 25,
	},
	{
		Label: "Overweight",
		Color: "#ff9900",
		Recommendations: []string{
			"Monitor portion sizes",
			"Increase physical activity",
			"Reduce processed food intake",
			"Consider keeping a food diary",
			"Aim for gradual weight loss",
		},
		upper: 30,
	},
	{
		Label: "Obese Class I",
		Color: "#ff3300",
		Recommendations: []string{
			"Consult a healthcare provider",
			"Create a sustainable exercise routine",
			"Focus on whole foods",
			"Set realistic weight loss goals",
			"Consider working with a fitness trainer",
		},
		upper: 35,
	},
	{
		Label: "Obese Class II",
		Color: "#ff0000",
		Recommendations: []string{
			"Immediate medical consultation required",
			"Supervised weight loss program recommended",
			"Regular health monitoring",
			"Consider professional support",
			"Focus on sustainable lifestyle changes",
		},
		upper: math.Inf(1),
	},
}

// Classify maps a BMI value to its category band. It is total over all
// float64 inputs: negative values land in the lowest band, and anything the
// scan cannot place (NaN) falls through to the last.
func Classify(v float64) Category {
	for _, b := range bands {
		if v < b.upper {
			return b
		}
	}
	return bands[len(bands)-1]
}
