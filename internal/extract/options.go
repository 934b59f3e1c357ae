// Package extract assembles the stage packages into the audiogram
// extraction pipeline and scores the reliability of each result.
package extract

import (
	"github.com/AJBcoding/hearing-test-tracker/internal/metadata"
	"github.com/AJBcoding/hearing-test-tracker/pkg/models"
)

// ConfidenceWeights are the shares of the three confidence sub-scores.
// They should sum to 1; the defaults split 50/25/25 between marker-count
// completeness (half per ear), frequency coverage and value validity.
type ConfidenceWeights struct {
	CountPerEar float64
	Coverage    float64
	Validity    float64
}

// Options configure an Extractor. They are fixed at construction so that
// concurrent extractions share nothing mutable, and so tests can run the
// pipeline against alternate frequency grids without touching globals.
type Options struct {
	// Frequencies is the chart's frequency grid, ascending. Defaults to
	// models.StandardFrequencies.
	Frequencies []int

	// DBMin/DBMax bound the threshold axis. Defaults 0 and 120.
	DBMin, DBMax float64

	// ExpectedCount is the nominal number of measurements per ear used
	// by the confidence scorer. Defaults to len(Frequencies).
	ExpectedCount int

	// Weights are the confidence sub-score weights.
	Weights ConfidenceWeights

	// DeskewThreshold is the minimum skew angle in degrees worth
	// correcting. Default 0.5.
	DeskewThreshold float64

	// FooterFraction is the share of image height cropped as the footer
	// band. Default 0.1.
	FooterFraction float64

	// Language is the Tesseract language code for footer recognition.
	// Default "eng".
	Language string

	// IncludeHeader also runs text recognition on the top band and
	// surfaces the raw title text on the result.
	IncludeHeader bool

	// TextReader overrides the Tesseract-backed recognizer. Nil selects
	// the real engine; tests inject canned text here.
	TextReader metadata.TextReader
}

// DefaultOptions returns the production configuration of the pipeline.
func DefaultOptions() Options {
	return Options{
		Frequencies:     models.StandardFrequencies,
		DBMin:           0,
		DBMax:           120,
		ExpectedCount:   len(models.StandardFrequencies),
		Weights:         ConfidenceWeights{CountPerEar: 0.25, Coverage: 0.25, Validity: 0.25},
		DeskewThreshold: 0.5,
		FooterFraction:  0.1,
		Language:        "eng",
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if len(o.Frequencies) == 0 {
		o.Frequencies = def.Frequencies
	}
	if o.DBMax == 0 {
		o.DBMax = def.DBMax
	}
	if o.ExpectedCount == 0 {
		o.ExpectedCount = len(o.Frequencies)
	}
	if o.Weights == (ConfidenceWeights{}) {
		o.Weights = def.Weights
	}
	if o.DeskewThreshold == 0 {
		o.DeskewThreshold = def.DeskewThreshold
	}
	if o.FooterFraction == 0 {
		o.FooterFraction = def.FooterFraction
	}
	if o.Language == "" {
		o.Language = def.Language
	}
	return o
}
