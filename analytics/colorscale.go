package analytics

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ghribi31/GeneSmart-Dashboard/models"
)

// The ratio channel is clamped to [0, 2] so the national average (ratio 1)
// always sits at the middle of the ramp. Values above twice the average
// saturate to the green endpoint; the -1 missing-data sentinel clamps below
// the first stop and lands on grey.
const (
	RatioMin = 0.0
	RatioMax = 2.0
)

// MissingRatio marks a boundary region with no data row. Never a legitimate
// ratio, since ratios are non-negative.
const MissingRatio = -1.0

// Ramp colors, matching the dashboard legend.
const (
	ColorMissing = "#e2e8f0"
	ColorLow     = "#e74c3c"
	ColorAverage = "#f1c40f"
	ColorHigh    = "#2ecc71"
)

// Colorscale returns the fixed four-stop ramp as Plotly colorscale entries.
// Positions are fractions of the [RatioMin, RatioMax] domain: grey at the
// very bottom for missing data, red just above it for low values, yellow at
// the average, green at the top.
func Colorscale() []models.ColorStop {
	return []models.ColorStop{
		{Position: 0.0, Color: ColorMissing},
		{Position: 0.0001, Color: ColorLow},
		{Position: 0.5, Color: ColorAverage},
		{Position: 1.0, Color: ColorHigh},
	}
}

// RatioColor maps a ratio-to-average onto the ramp, interpolating between
// stops in RGB space the way Plotly does client side.
func RatioColor(ratio float64) string {
	frac := (ratio - RatioMin) / (RatioMax - RatioMin)
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}

	stops := Colorscale()
	for i := 0; i < len(stops)-1; i++ {
		lo, hi := stops[i], stops[i+1]
		if frac > hi.Position {
			continue
		}
		t := (frac - lo.Position) / (hi.Position - lo.Position)
		cLo, _ := colorful.Hex(lo.Color)
		cHi, _ := colorful.Hex(hi.Color)
		return cLo.BlendRgb(cHi, t).Hex()
	}
	return stops[len(stops)-1].Color
}
