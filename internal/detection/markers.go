package detection

import (
	"image"

	"github.com/lucasb-eyer/go-colorful"
)

// MarkerClass selects one of the two marker populations plotted on a
// home-test chart. Each class carries its own hue-window predicate, so
// there is no stringly-typed color dispatch anywhere in the pipeline.
type MarkerClass int

const (
	// RightEarMarker matches the red circular markers of the right ear.
	// Red wraps around the color wheel, so its hue window is the union
	// of two disjoint ranges.
	RightEarMarker MarkerClass = iota

	// LeftEarMarker matches the blue X markers of the left ear.
	LeftEarMarker
)

func (m MarkerClass) String() string {
	switch m {
	case RightEarMarker:
		return "right-ear"
	case LeftEarMarker:
		return "left-ear"
	}
	return "unknown"
}

// minChroma is the saturation/value floor for a pixel to count as marker
// ink rather than grid line or anti-aliasing halo (100/255 in 8-bit terms).
const minChroma = 100.0 / 255.0

// matches reports whether an HSV pixel falls inside the class's hue
// window. Hue is in degrees [0, 360), saturation and value in [0, 1].
func (m MarkerClass) matches(h, s, v float64) bool {
	if s < minChroma || v < minChroma {
		return false
	}
	switch m {
	case RightEarMarker:
		return h <= 20 || h >= 340
	case LeftEarMarker:
		return h >= 200 && h <= 260
	}
	return false
}

// DetectMarkers isolates the markers of one ear in the original color
// image and returns their pixel centroids.
//
// The image is scanned in HSV space; pixels inside the class's hue window
// form a binary mask whose connected components are the individual
// markers. Each component yields exactly one point, its first-order moment
// centroid (M10/M00, M01/M00) -- adjacent markers are never merged or
// deduplicated, since charts render markers as isolated shapes.
//
// DetectMarkers never fails: an image with no matching color yields an
// empty slice, which shows up downstream as a low confidence score.
func DetectMarkers(img image.Image, class MarkerClass) []Point {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	mask := make([][]bool, height)
	for y := 0; y < height; y++ {
		mask[y] = make([]bool, width)
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			c := colorful.Color{
				R: float64(r>>8) / 255.0,
				G: float64(g>>8) / 255.0,
				B: float64(b>>8) / 255.0,
			}
			h, s, v := c.Hsv()
			mask[y][x] = class.matches(h, s, v)
		}
	}

	markers := make([]Point, 0)
	for _, contour := range findContours(mask, width, height) {
		// Degenerate zero-area contours carry no centroid.
		if len(contour) == 0 {
			continue
		}
		var sumX, sumY int
		for _, p := range contour {
			sumX += p.X
			sumY += p.Y
		}
		markers = append(markers, Point{
			X: sumX/len(contour) + bounds.Min.X,
			Y: sumY/len(contour) + bounds.Min.Y,
		})
	}
	return markers
}
