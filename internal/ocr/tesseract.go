// Package ocr wraps the Tesseract engine (via gosseract/v2) behind the
// small text-recognition surface the pipeline needs.
//
// Tesseract must be installed on the system together with the language
// data for the configured language (tesseract-ocr and tesseract-ocr-eng
// on Debian/Ubuntu). The engine is treated as a black box returning raw
// strings; any interpretation of its output happens in the metadata
// package.
package ocr

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/otiai10/gosseract/v2"
)

// Client performs text recognition with a fixed language. The zero value
// is not usable; construct with NewClient.
//
// Client carries no open engine handle -- a gosseract client is created
// and closed per call -- so it is safe for concurrent use.
type Client struct {
	language string
}

// NewClient returns a Client recognizing the given Tesseract language
// code (e.g. "eng"). An empty code defaults to English.
func NewClient(language string) *Client {
	if language == "" {
		language = "eng"
	}
	return &Client{language: language}
}

// ReadText recognizes the text in an in-memory image and returns it as a
// single raw string with Tesseract's original spacing.
//
// Tesseract consumes files, so the image is written to a temporary PNG
// that is removed before returning. Recognition runs in single-block page
// segmentation mode, which suits the short caption bands this pipeline
// feeds it.
func (c *Client) ReadText(img image.Image) (string, error) {
	tmpFile, err := os.CreateTemp("", "ocr-region-*.png")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	if err := png.Encode(tmpFile, img); err != nil {
		tmpFile.Close()
		return "", fmt.Errorf("failed to encode temp image: %w", err)
	}
	tmpFile.Close()

	return c.ReadFile(tmpPath)
}

// ReadFile recognizes the text in an image file on disk.
func (c *Client) ReadFile(path string) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(c.language); err != nil {
		return "", fmt.Errorf("failed to set language: %w", err)
	}
	if err := client.SetPageSegMode(gosseract.PSM_SINGLE_BLOCK); err != nil {
		return "", fmt.Errorf("failed to set page segmentation mode: %w", err)
	}
	if err := client.SetImage(path); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}
	return text, nil
}
