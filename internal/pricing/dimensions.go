package pricing

import (
	"math"
	"strconv"
	"strings"
)

// Dimension is one measured side of an opening.
type Dimension struct {
	// TotalInches is the measured length, kept for display and re-editing.
	TotalInches float64 `json:"totalInches"`
	// PricingSize is the length rounded to the nearest foot.
	PricingSize int `json:"pricingSize"`
	// Display is feet and inches rounded to the nearest 1/8".
	Display string `json:"display"`
}

// ParseFraction parses an "n/d" string. Anything malformed yields 0.
func ParseFraction(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}

	num, den, ok := strings.Cut(raw, "/")
	if !ok || strings.Contains(den, "/") {
		return 0
	}

	n, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil {
		return 0
	}
	d, err := strconv.ParseFloat(strings.TrimSpace(den), 64)
	if err != nil || d == 0 {
		return 0
	}
	if math.IsNaN(n/d) || math.IsInf(n/d, 0) {
		return 0
	}

	return n / d
}

// NewDimension normalizes whole inches plus an optional fraction.
func NewDimension(wholeInches float64, fraction string) Dimension {
	total := wholeInches + ParseFraction(fraction)
	return Dimension{
		TotalInches: total,
		PricingSize: RoundToFeet(total),
		Display:     FormatFeetInches(total),
	}
}

// RoundToFeet rounds inches to the nearest foot, halves rounding up.
func RoundToFeet(inches float64) int {
	return int(math.Floor(inches/12 + 0.5))
}

// FormatFeetInches renders inches as `F' I"` with I rounded to 1/8".
func FormatFeetInches(totalInches float64) string {
	feet := math.Floor(totalInches / 12)
	inches := math.Round((totalInches-feet*12)*8) / 8

	if inches >= 12 {
		feet++
		inches = 0
	}

	return strconv.Itoa(int(feet)) + "' " + strconv.FormatFloat(inches, 'f', -1, 64) + `"`
}
