package detection

import "image"

// LocateGraphRegion finds the pixel bounding box of the plotted chart area
// within a preprocessed (binarized grayscale) image.
//
// The plotted grid is assumed to be the single largest bright region in
// the buffer, which holds for the chart exports this pipeline targets.
// Bright pixels (>= 128) are grouped into connected components and the
// bounding rectangle of the largest component is returned.
//
// If the buffer contains no bright pixels at all (blank or fully dark
// image), the full image extent is returned. This lossy default keeps the
// downstream calibrator supplied with valid bounds; the poor fit shows up
// as implausible measurements and a low confidence score rather than as
// an error here.
func LocateGraphRegion(bin *image.Gray) Bounds {
	bounds := bin.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	mask := make([][]bool, height)
	for y := 0; y < height; y++ {
		mask[y] = make([]bool, width)
		for x := 0; x < width; x++ {
			mask[y][x] = bin.GrayAt(x+bounds.Min.X, y+bounds.Min.Y).Y >= 128
		}
	}

	contours := findContours(mask, width, height)
	if len(contours) == 0 {
		return Bounds{X1: 0, Y1: 0, X2: width, Y2: height}
	}

	largest := contours[0]
	for _, c := range contours[1:] {
		if len(c) > len(largest) {
			largest = c
		}
	}
	return boundingBox(largest)
}
