package metadata

import (
	"image"
	"strings"

	"github.com/AJBcoding/hearing-test-tracker/internal/imaging"
)

// TextReader recognizes the text in an image. Satisfied by ocr.Client;
// tests substitute a canned implementation.
type TextReader interface {
	ReadText(img image.Image) (string, error)
}

// Extractor crops the footer band of a chart, preprocesses it for text
// legibility and parses the recognized caption.
type Extractor struct {
	OCR TextReader

	// BandFraction is the share of image height treated as the footer
	// (and header) band. Zero selects the default of 0.1.
	BandFraction float64
}

func (e *Extractor) fraction() float64 {
	if e.BandFraction <= 0 {
		return 0.1
	}
	return e.BandFraction
}

// ExtractFooter recovers footer metadata from the original color image.
//
// The bottom band is cropped and preprocessed independently of the
// geometry pipeline, then run through text recognition and the parser
// chain. Extraction never fails: an engine error yields a result with
// empty fields, the same as an unparsable caption.
func (e *Extractor) ExtractFooter(img image.Image) FooterMetadata {
	band := imaging.CropBottomBand(img, e.fraction())
	prepared := imaging.PrepareTextRegion(band)

	text, err := e.OCR.ReadText(prepared)
	if err != nil {
		return FooterMetadata{}
	}
	return ParseFooter(strings.TrimSpace(text))
}

// ExtractHeader recognizes the chart title in the top band. The text is
// returned raw as a diagnostic; nothing downstream parses it.
func (e *Extractor) ExtractHeader(img image.Image) string {
	band := imaging.CropTopBand(img, e.fraction())
	prepared := imaging.PrepareTextRegion(band)

	text, err := e.OCR.ReadText(prepared)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(text)
}
