// Package clinical imports hearing tests from clinical audiology reports:
// tabular PDFs whose layout varies too much per clinic for the geometric
// chart pipeline. Pages are rendered to images and handed to a vision
// model for structured extraction, then validated before conversion to
// the boundary types.
package clinical

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/gen2brain/go-fitz"
)

// RenderPages rasterizes every page of a PDF to PNG. go-fitz renders at
// 300 DPI, enough for the small threshold digits in audiology tables.
func RenderPages(path string) ([][]byte, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}
	defer doc.Close()

	pages := make([][]byte, 0, doc.NumPage())
	for n := 0; n < doc.NumPage(); n++ {
		img, err := doc.Image(n)
		if err != nil {
			return nil, fmt.Errorf("rendering PDF page %d: %w", n+1, err)
		}

		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("encoding page %d: %w", n+1, err)
		}
		pages = append(pages, buf.Bytes())
	}
	return pages, nil
}
