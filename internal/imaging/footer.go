package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"
)

// CropBottomBand returns the bottom fraction of the image as a new image,
// e.g. fraction 0.1 yields the bottom 10% where chart exports place their
// caption footer.
func CropBottomBand(img image.Image, fraction float64) image.Image {
	bounds := img.Bounds()
	bandHeight := int(float64(bounds.Dy()) * fraction)
	return imaging.Crop(img, image.Rect(
		bounds.Min.X, bounds.Max.Y-bandHeight,
		bounds.Max.X, bounds.Max.Y,
	))
}

// CropTopBand returns the top fraction of the image as a new image; the
// chart title lives in the top band.
func CropTopBand(img image.Image, fraction float64) image.Image {
	bounds := img.Bounds()
	bandHeight := int(float64(bounds.Dy()) * fraction)
	return imaging.Crop(img, image.Rect(
		bounds.Min.X, bounds.Min.Y,
		bounds.Max.X, bounds.Min.Y+bandHeight,
	))
}

// PrepareTextRegion preprocesses a cropped text band for recognition:
// grayscale, light Gaussian blur to knock down sensor noise, adaptive
// threshold for contrast, and a polarity inversion when the band is
// light-on-dark so the engine always sees dark text on light background.
//
// This path is tuned for text legibility, independent of the geometry
// preprocessing in Preprocess.
func PrepareTextRegion(region image.Image) image.Image {
	blurred := blur.Gaussian(region, 1.0)
	thresh := AdaptiveThreshold(ToGray(blurred), 11, 2)

	if meanIntensity(thresh) < 127 {
		return effect.Invert(thresh)
	}
	return thresh
}

// meanIntensity returns the average pixel value of a grayscale buffer.
func meanIntensity(gray *image.Gray) float64 {
	bounds := gray.Bounds()
	total := 0.0
	count := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			total += float64(gray.GrayAt(x, y).Y)
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}
