package extract

import (
	"github.com/AJBcoding/hearing-test-tracker/internal/chart"
	"github.com/AJBcoding/hearing-test-tracker/internal/detection"
	"github.com/AJBcoding/hearing-test-tracker/internal/imaging"
	"github.com/AJBcoding/hearing-test-tracker/internal/metadata"
	"github.com/AJBcoding/hearing-test-tracker/internal/ocr"
	"github.com/AJBcoding/hearing-test-tracker/pkg/models"
)

// Extractor runs the full chart-image extraction pipeline. It is
// immutable after construction and safe for concurrent use on distinct
// files; each Extract call owns its buffers exclusively and shares no
// state with other calls.
type Extractor struct {
	opts Options
	meta *metadata.Extractor
}

// New constructs an Extractor from the given options; zero-valued fields
// fall back to DefaultOptions.
func New(opts Options) *Extractor {
	opts = opts.withDefaults()
	reader := opts.TextReader
	if reader == nil {
		reader = ocr.NewClient(opts.Language)
	}
	return &Extractor{
		opts: opts,
		meta: &metadata.Extractor{OCR: reader, BandFraction: opts.FooterFraction},
	}
}

// Extract runs the pipeline on one chart image file and returns the
// structured result.
//
// The stages run strictly in sequence, each consuming the previous
// stage's output: load, preprocess, graph-region location, per-ear marker
// detection, axis calibration, coordinate transformation, confidence
// scoring and footer metadata recovery.
//
// Only two conditions are fatal: an unreadable file (*imaging.InputError)
// and a degenerate graph region (chart.ErrDegenerateBounds). Everything
// else -- missing markers, unparsable footer, implausible thresholds --
// degrades into a low confidence score or empty metadata fields on an
// otherwise complete result. Extract never returns a partial result: it
// yields either a full AudiogramResult or an error and nothing.
func (e *Extractor) Extract(path string) (*models.AudiogramResult, error) {
	img, err := imaging.Load(path)
	if err != nil {
		return nil, err
	}

	processed := imaging.Preprocess(img, imaging.PreprocessOptions{
		DeskewThreshold: e.opts.DeskewThreshold,
	})
	bounds := detection.LocateGraphRegion(processed)

	cal, err := chart.NewCalibration(bounds, e.opts.Frequencies, e.opts.DBMin, e.opts.DBMax)
	if err != nil {
		return nil, err
	}

	rightMarkers := detection.DetectMarkers(img, detection.RightEarMarker)
	leftMarkers := detection.DetectMarkers(img, detection.LeftEarMarker)

	rightEar := cal.ToMeasurements(rightMarkers)
	leftEar := cal.ToMeasurements(leftMarkers)

	footer := e.meta.ExtractFooter(img)

	result := &models.AudiogramResult{
		LeftEar:  leftEar,
		RightEar: rightEar,
		Metadata: models.Metadata{
			Location:      footer.Location,
			Device:        footer.Device,
			Time:          footer.Time,
			RawFooterText: footer.RawFooterText,
		},
		Confidence: Confidence(leftEar, rightEar, e.opts.ExpectedCount, e.opts.Weights),
	}
	if footer.Date != "" {
		date := footer.Date
		result.TestDate = &date
	}
	if e.opts.IncludeHeader {
		result.HeaderText = e.meta.ExtractHeader(img)
	}
	return result, nil
}
