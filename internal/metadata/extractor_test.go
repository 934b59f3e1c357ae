package metadata

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeReader returns canned text without touching a real OCR engine.
type fakeReader struct {
	text string
	err  error

	// dimensions of the last image passed in, for band-size assertions
	lastWidth  int
	lastHeight int
}

func (f *fakeReader) ReadText(img image.Image) (string, error) {
	b := img.Bounds()
	f.lastWidth = b.Dx()
	f.lastHeight = b.Dy()
	return f.text, f.err
}

func whiteImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.White)
		}
	}
	return img
}

func TestExtractFooter(t *testing.T) {
	reader := &fakeReader{text: "  Made with Jacoti Hearing Center - 2024-12-17 12:24  "}
	e := &Extractor{OCR: reader}

	got := e.ExtractFooter(whiteImage(400, 600))

	assert.Equal(t, "2024-12-17", got.Date)
	assert.Equal(t, "12:24", got.Time)
	assert.Equal(t, "Jacoti Hearing Center", got.Device)
	assert.Equal(t, 400, reader.lastWidth)
	assert.Equal(t, 60, reader.lastHeight, "footer band should be a tenth of the image height")
}

func TestExtractFooter_CustomBandFraction(t *testing.T) {
	reader := &fakeReader{text: ""}
	e := &Extractor{OCR: reader, BandFraction: 0.25}

	e.ExtractFooter(whiteImage(400, 600))

	assert.Equal(t, 150, reader.lastHeight)
}

func TestExtractFooter_EngineError(t *testing.T) {
	e := &Extractor{OCR: &fakeReader{err: errors.New("tesseract not installed")}}

	got := e.ExtractFooter(whiteImage(200, 200))

	assert.Empty(t, got.Date)
	assert.Empty(t, got.Device)
	assert.Empty(t, got.RawFooterText)
}

func TestExtractFooter_UnparsableText(t *testing.T) {
	e := &Extractor{OCR: &fakeReader{text: "garbled glyphs"}}

	got := e.ExtractFooter(whiteImage(200, 200))

	assert.Empty(t, got.Date)
	assert.Equal(t, "garbled glyphs", got.RawFooterText)
}

func TestExtractHeader(t *testing.T) {
	e := &Extractor{OCR: &fakeReader{text: "  Audiogram  "}}

	assert.Equal(t, "Audiogram", e.ExtractHeader(whiteImage(200, 200)))
}

func TestExtractHeader_EngineError(t *testing.T) {
	e := &Extractor{OCR: &fakeReader{err: errors.New("boom")}}

	assert.Empty(t, e.ExtractHeader(whiteImage(200, 200)))
}
