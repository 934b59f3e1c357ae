// Package chart converts chart pixel geometry into audiometric values.
//
// A Calibration is derived once per image from the detected graph bounds
// and the fixed axis ranges: the x axis spans the standard frequency grid
// logarithmically, the y axis spans the threshold range linearly with
// pixel-row 0 of the graph mapping to the minimum (best) threshold.
// Calibrations are immutable after construction.
package chart

import (
	"errors"
	"fmt"
	"math"

	"github.com/AJBcoding/hearing-test-tracker/internal/detection"
)

// ErrDegenerateBounds reports a graph region with zero width or height.
// Such bounds cannot calibrate either axis; the extraction for that image
// is aborted rather than dividing silently.
var ErrDegenerateBounds = errors.New("degenerate graph bounds")

// Calibration maps pixel offsets within the graph bounds to audiometric
// units. FreqMin and FreqScale work in log10(Hz) along x; DBScale is
// linear dB per pixel along y.
type Calibration struct {
	Bounds    detection.Bounds
	FreqMin   float64 // log10 of the lowest grid frequency
	FreqScale float64 // log10-Hz per pixel along x
	DBScale   float64 // dB per pixel along y

	frequencies []int
	dbMin       float64
}

// NewCalibration derives a Calibration from detected graph bounds and a
// frequency grid. The grid must be ascending and non-empty; the bounds
// must have positive width and height or ErrDegenerateBounds is returned.
//
// The threshold axis is fixed at [dbMin, dbMax] (conventionally 0-120 dB),
// inverted so that the top edge of the graph maps to dbMin.
func NewCalibration(b detection.Bounds, frequencies []int, dbMin, dbMax float64) (*Calibration, error) {
	if len(frequencies) == 0 {
		return nil, errors.New("empty frequency grid")
	}
	if b.Width() <= 0 || b.Height() <= 0 {
		return nil, fmt.Errorf("%w: %dx%d region at (%d,%d)",
			ErrDegenerateBounds, b.Width(), b.Height(), b.X1, b.Y1)
	}

	freqMin := math.Log10(float64(frequencies[0]))
	freqMax := math.Log10(float64(frequencies[len(frequencies)-1]))

	return &Calibration{
		Bounds:      b,
		FreqMin:     freqMin,
		FreqScale:   (freqMax - freqMin) / float64(b.Width()),
		DBScale:     (dbMax - dbMin) / float64(b.Height()),
		frequencies: frequencies,
		dbMin:       dbMin,
	}, nil
}

// Frequencies returns the grid the calibration snaps to.
func (c *Calibration) Frequencies() []int { return c.frequencies }
