// Package models defines the data types exchanged between the audiogram
// extraction core and its callers.
//
// All types are plain records: they carry no behavior beyond formatting and
// are never mutated by the pipeline after construction. Ownership of a
// result transfers fully to the caller; the core holds no reference to it
// once an extraction returns.
package models

// Measurement is a single audiometric data point: the hearing threshold
// measured at one frequency for one ear.
//
// FrequencyHz is always one of the standard audiometric frequencies (see
// frequency.go). ThresholdDB is expected in [0, 120] but is not clamped;
// out-of-range values are surfaced as-is and lower the result confidence.
type Measurement struct {
	FrequencyHz int     `json:"frequency_hz"` // Snapped standard frequency in Hz
	ThresholdDB float64 `json:"threshold_db"` // Hearing threshold in dB, 1 decimal
}

// Metadata holds the auxiliary information recovered from the chart footer.
//
// Location, Device and Time are empty when the footer caption could not be
// parsed. RawFooterText always carries the raw text recognized in the
// footer band so that failed parses can be diagnosed.
type Metadata struct {
	Location      string `json:"location"`
	Device        string `json:"device"`
	Time          string `json:"time"`
	RawFooterText string `json:"raw_footer_text"`
}

// AudiogramResult is the terminal output of the extraction pipeline for a
// single chart image.
//
// TestDate is nil when no date could be recovered from the footer. The ear
// sequences preserve marker detection order and may be empty; emptiness is
// reflected in Confidence rather than reported as an error.
type AudiogramResult struct {
	TestDate   *string       `json:"test_date"`
	LeftEar    []Measurement `json:"left_ear"`
	RightEar   []Measurement `json:"right_ear"`
	Metadata   Metadata      `json:"metadata"`
	Confidence float64       `json:"confidence"` // Extraction reliability in [0,1]

	// HeaderText is the text recognized in the top band of the chart
	// (e.g. "My audiogram"). Only populated when header extraction is
	// enabled; diagnostic, never parsed.
	HeaderText string `json:"header_text,omitempty"`
}

// ClinicalTest is one hearing test extracted from a clinical audiology
// report (the tabular PDF import path). Clinical reports distinguish air
// and bone conduction measurements and use a denser frequency grid than
// the home-test chart.
type ClinicalTest struct {
	TestDate   string        `json:"test_date"` // ISO date, YYYY-MM-DD
	Location   string        `json:"location,omitempty"`
	Technician string        `json:"technician_name,omitempty"`
	Device     string        `json:"device_name,omitempty"`
	Notes      string        `json:"notes,omitempty"`
	RightAir   []Measurement `json:"right_air"`
	LeftAir    []Measurement `json:"left_air"`
	RightBone  []Measurement `json:"right_bone,omitempty"`
	LeftBone   []Measurement `json:"left_bone,omitempty"`
}
