package imaging

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"sort"

	"github.com/anthonynsimon/bild/transform"
)

var grayWhite = color.Gray{Y: 255}

// PreprocessOptions control the geometry-detection preprocessing stage.
// Zero values select the defaults noted on each field.
type PreprocessOptions struct {
	// Window is the adaptive threshold neighborhood in pixels (default 11).
	Window int

	// Bias is the constant subtracted from the local mean before
	// comparison (default 2).
	Bias float64

	// DeskewThreshold is the minimum absolute skew angle in degrees that
	// triggers rotation correction (default 0.5). Smaller angles are at
	// the noise level of line detection and are left alone to avoid
	// amplifying detection error.
	DeskewThreshold float64
}

func (o PreprocessOptions) withDefaults() PreprocessOptions {
	if o.Window <= 0 {
		o.Window = 11
	}
	if o.Bias == 0 {
		o.Bias = 2
	}
	if o.DeskewThreshold == 0 {
		o.DeskewThreshold = 0.5
	}
	return o
}

// Preprocess converts a chart image into the grayscale buffer used for
// geometry detection: grayscale conversion, locally adaptive thresholding,
// and a best-effort rotation correction.
//
// The output has the same dimensions as the source. Marker detection does
// not use this buffer; it operates on the original color image.
//
// # Algorithm
//
//  1. Grayscale conversion (ITU-R BT.601 luminance)
//  2. Adaptive mean threshold over a Window x Window neighborhood with a
//     small bias, producing a binarized buffer suitable for contour
//     analysis
//  3. Skew estimation: gradient edge map, Hough line accumulator, median
//     angle of the detected dominant lines
//  4. Rotation about the image center, applied only when the median angle
//     exceeds DeskewThreshold
func Preprocess(src image.Image, opts PreprocessOptions) *image.Gray {
	opts = opts.withDefaults()

	gray := ToGray(src)
	bin := AdaptiveThreshold(gray, opts.Window, opts.Bias)

	angle := estimateSkewAngle(bin)
	if math.Abs(angle) < opts.DeskewThreshold {
		return bin
	}

	rotated := transform.Rotate(bin, angle, &transform.RotationOptions{ResizeBounds: false})
	return ToGray(rotated)
}

// ToGray converts any image to an 8-bit grayscale buffer using the
// standard library's luminance color model.
func ToGray(src image.Image) *image.Gray {
	if g, ok := src.(*image.Gray); ok {
		return g
	}
	bounds := src.Bounds()
	gray := image.NewGray(bounds)
	draw.Draw(gray, bounds, src, bounds.Min, draw.Src)
	return gray
}

// AdaptiveThreshold binarizes a grayscale image against the local mean of
// a window x window neighborhood: pixels brighter than (mean - bias)
// become white (255), all others black (0).
//
// The local mean is computed with a summed-area table, so the cost is
// independent of the window size. Windows are clamped at the image border.
func AdaptiveThreshold(gray *image.Gray, window int, bias float64) *image.Gray {
	bounds := gray.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	half := window / 2

	// Summed-area table with a one-pixel zero border.
	integral := make([][]float64, height+1)
	integral[0] = make([]float64, width+1)
	for y := 0; y < height; y++ {
		integral[y+1] = make([]float64, width+1)
		rowSum := 0.0
		for x := 0; x < width; x++ {
			rowSum += float64(gray.GrayAt(x+bounds.Min.X, y+bounds.Min.Y).Y)
			integral[y+1][x+1] = integral[y][x+1] + rowSum
		}
	}

	out := image.NewGray(bounds)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			x1 := clamp(x-half, 0, width-1)
			y1 := clamp(y-half, 0, height-1)
			x2 := clamp(x+half, 0, width-1)
			y2 := clamp(y+half, 0, height-1)

			count := float64((x2 - x1 + 1) * (y2 - y1 + 1))
			sum := integral[y2+1][x2+1] - integral[y1][x2+1] - integral[y2+1][x1] + integral[y1][x1]
			mean := sum / count

			v := float64(gray.GrayAt(x+bounds.Min.X, y+bounds.Min.Y).Y)
			if v > mean-bias {
				out.SetGray(x+bounds.Min.X, y+bounds.Min.Y, grayWhite)
			}
		}
	}
	return out
}

// houghMinVotes is the accumulator threshold for a cell to count as a
// detected line during skew estimation. Matches a line roughly 200 px
// long, long enough to be a chart grid line rather than glyph strokes.
const houghMinVotes = 200

// estimateSkewAngle detects the dominant line angle of a binarized chart
// via a Hough accumulator and returns the median deviation from the
// horizontal/vertical grid in degrees. Returns 0 when no line clears the
// vote threshold.
func estimateSkewAngle(bin *image.Gray) float64 {
	bounds := bin.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	edges := edgeMap(bin)

	maxDist := int(math.Sqrt(float64(width*width + height*height)))
	const numAngles = 180
	accumulator := make([][]int, maxDist*2)
	for i := range accumulator {
		accumulator[i] = make([]int, numAngles)
	}

	sinTab := make([]float64, numAngles)
	cosTab := make([]float64, numAngles)
	for theta := 0; theta < numAngles; theta++ {
		rad := float64(theta) * math.Pi / 180.0
		sinTab[theta] = math.Sin(rad)
		cosTab[theta] = math.Cos(rad)
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !edges[y][x] {
				continue
			}
			for theta := 0; theta < numAngles; theta++ {
				rho := float64(x)*cosTab[theta] + float64(y)*sinTab[theta]
				rhoIdx := int(rho) + maxDist
				if rhoIdx >= 0 && rhoIdx < maxDist*2 {
					accumulator[rhoIdx][theta]++
				}
			}
		}
	}

	angles := make([]float64, 0)
	for rhoIdx := 0; rhoIdx < maxDist*2; rhoIdx++ {
		for theta := 0; theta < numAngles; theta++ {
			if accumulator[rhoIdx][theta] >= houghMinVotes {
				angles = append(angles, float64(theta)-90)
			}
		}
	}
	if len(angles) == 0 {
		return 0
	}

	sort.Float64s(angles)
	mid := len(angles) / 2
	if len(angles)%2 == 1 {
		return angles[mid]
	}
	return (angles[mid-1] + angles[mid]) / 2
}

// edgeMap performs simple gradient-based edge detection: pixels whose
// horizontal or vertical intensity step exceeds 30 are marked as edges.
// Border pixels are never edges.
func edgeMap(gray *image.Gray) [][]bool {
	bounds := gray.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	const threshold = 30.0

	edges := make([][]bool, height)
	for y := 0; y < height; y++ {
		edges[y] = make([]bool, width)
		if y == 0 || y == height-1 {
			continue
		}
		for x := 1; x < width-1; x++ {
			c := float64(gray.GrayAt(x+bounds.Min.X, y+bounds.Min.Y).Y)
			cx := float64(gray.GrayAt(x+1+bounds.Min.X, y+bounds.Min.Y).Y)
			cy := float64(gray.GrayAt(x+bounds.Min.X, y+1+bounds.Min.Y).Y)
			if math.Abs(c-cx) > threshold || math.Abs(c-cy) > threshold {
				edges[y][x] = true
			}
		}
	}
	return edges
}

// clamp constrains an integer value to the range [min, max].
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
