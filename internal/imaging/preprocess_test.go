package imaging

import (
	"image"
	"image/color"
	"testing"
)

// createTestImage creates a solid color test image
func createTestImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestToGray(t *testing.T) {
	tests := []struct {
		name  string
		src   color.Color
		wantY uint8
	}{
		{"white", color.White, 255},
		{"black", color.Black, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gray := ToGray(createTestImage(10, 10, tt.src))
			if got := gray.GrayAt(5, 5).Y; got != tt.wantY {
				t.Errorf("GrayAt(5,5): got %d, want %d", got, tt.wantY)
			}
		})
	}
}

func TestToGray_PreservesDimensions(t *testing.T) {
	gray := ToGray(createTestImage(37, 19, color.White))
	b := gray.Bounds()
	if b.Dx() != 37 || b.Dy() != 19 {
		t.Errorf("Bounds: got %dx%d, want 37x19", b.Dx(), b.Dy())
	}
}

func TestAdaptiveThreshold_UniformBecomesWhite(t *testing.T) {
	// Every pixel equals its local mean, so bias keeps all of them above
	// the cutoff regardless of the input level.
	for _, level := range []uint8{0, 128, 255} {
		gray := image.NewGray(image.Rect(0, 0, 30, 30))
		for i := range gray.Pix {
			gray.Pix[i] = level
		}
		out := AdaptiveThreshold(gray, 11, 2)
		if got := out.GrayAt(15, 15).Y; got != 255 {
			t.Errorf("Uniform level %d: center pixel got %d, want 255", level, got)
		}
	}
}

func TestAdaptiveThreshold_DarkSpotOnWhite(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 50, 50))
	for i := range gray.Pix {
		gray.Pix[i] = 255
	}
	// 3x3 dark spot
	for y := 24; y <= 26; y++ {
		for x := 24; x <= 26; x++ {
			gray.Pix[gray.PixOffset(x, y)] = 0
		}
	}

	out := AdaptiveThreshold(gray, 11, 2)
	if got := out.GrayAt(25, 25).Y; got != 0 {
		t.Errorf("Spot center: got %d, want 0", got)
	}
	if got := out.GrayAt(5, 5).Y; got != 255 {
		t.Errorf("Background: got %d, want 255", got)
	}
}

func TestPreprocess_WhiteImageStaysWhite(t *testing.T) {
	out := Preprocess(createTestImage(60, 60, color.White), PreprocessOptions{})
	if got := out.GrayAt(30, 30).Y; got != 255 {
		t.Errorf("Center pixel: got %d, want 255", got)
	}
}

func TestPreprocess_OutputIsBinary(t *testing.T) {
	img := createTestImage(60, 60, color.White)
	// A mid-gray stroke that the threshold must resolve one way or the other
	for x := 10; x < 50; x++ {
		img.Set(x, 30, color.Gray{Y: 90})
	}

	out := Preprocess(img, PreprocessOptions{})
	b := out.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			v := out.GrayAt(x, y).Y
			if v != 0 && v != 255 {
				t.Fatalf("Pixel (%d,%d) is %d, expected binary output", x, y, v)
			}
		}
	}
}
