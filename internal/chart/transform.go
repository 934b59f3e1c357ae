package chart

import (
	"math"

	"github.com/AJBcoding/hearing-test-tracker/internal/detection"
	"github.com/AJBcoding/hearing-test-tracker/pkg/models"
)

// ToMeasurements maps detected marker centroids through the calibration
// into (frequency, threshold) pairs. The output preserves input order and
// length: one measurement per marker, no filtering.
//
// Frequencies are interpolated on the logarithmic x axis and snapped to
// the nearest grid frequency. Thresholds are linear along y, rounded to
// one decimal. Values are deliberately not clamped: a marker outside the
// graph bounds extrapolates to a semantically invalid value, and flagging
// that is the confidence scorer's job, not this stage's.
func (c *Calibration) ToMeasurements(markers []detection.Point) []models.Measurement {
	out := make([]models.Measurement, 0, len(markers))
	for _, m := range markers {
		logFreq := c.FreqMin + float64(m.X-c.Bounds.X1)*c.FreqScale
		freq := math.Pow(10, logFreq)

		threshold := c.dbMin + float64(m.Y-c.Bounds.Y1)*c.DBScale

		out = append(out, models.Measurement{
			FrequencyHz: SnapFrequency(freq, c.frequencies),
			ThresholdDB: math.Round(threshold*10) / 10,
		})
	}
	return out
}

// SnapFrequency rounds a computed frequency to the nearest grid value by
// absolute difference. When two grid frequencies are equally distant the
// first one in grid order wins; this matches the established behavior of
// the extraction and is relied on by stored historical results.
func SnapFrequency(freq float64, grid []int) int {
	best := grid[0]
	bestDiff := math.Abs(freq - float64(grid[0]))
	for _, f := range grid[1:] {
		diff := math.Abs(freq - float64(f))
		if diff < bestDiff {
			best = f
			bestDiff = diff
		}
	}
	return best
}
