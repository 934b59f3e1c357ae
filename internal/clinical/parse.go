package clinical

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/AJBcoding/hearing-test-tracker/pkg/models"
)

// rawTest mirrors the JSON shape the model is asked to produce. Threshold
// maps use string frequency keys and nullable values so that frequencies
// the report does not mention can be skipped rather than zeroed.
type rawTest struct {
	TestDate   string              `json:"test_date"`
	Location   string              `json:"location"`
	Technician string              `json:"technician_name"`
	Device     string              `json:"device_name"`
	Notes      string              `json:"notes"`
	Right      map[string]*float64 `json:"right"`
	Left       map[string]*float64 `json:"left"`
	RightBC    map[string]*float64 `json:"right_bc"`
	LeftBC     map[string]*float64 `json:"left_bc"`
}

// ParseTests extracts a list of clinical tests from a model response.
// The response may wrap the JSON array in markdown fences or surround it
// with prose, so the array boundaries are located before unmarshaling.
func ParseTests(text string) ([]models.ClinicalTest, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	startIdx := strings.Index(text, "[")
	if startIdx == -1 {
		return nil, fmt.Errorf("no JSON array found in response")
	}
	endIdx := strings.LastIndex(text, "]")
	if endIdx == -1 || endIdx < startIdx {
		return nil, fmt.Errorf("invalid JSON array in response")
	}
	text = text[startIdx : endIdx+1]

	if err := validateTestsJSON([]byte(text)); err != nil {
		return nil, err
	}

	var raw []rawTest
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("unmarshaling json: %w", err)
	}

	tests := make([]models.ClinicalTest, 0, len(raw))
	for _, r := range raw {
		tests = append(tests, models.ClinicalTest{
			TestDate:   normalizeTestDate(r.TestDate),
			Location:   strings.TrimSpace(r.Location),
			Technician: strings.TrimSpace(r.Technician),
			Device:     strings.TrimSpace(r.Device),
			Notes:      strings.TrimSpace(r.Notes),
			RightAir:   thresholdsToMeasurements(r.Right),
			LeftAir:    thresholdsToMeasurements(r.Left),
			RightBone:  thresholdsToMeasurements(r.RightBC),
			LeftBone:   thresholdsToMeasurements(r.LeftBC),
		})
	}
	return tests, nil
}

// thresholdsToMeasurements converts a frequency-keyed threshold map into a
// slice sorted by frequency. Null thresholds and unparsable keys are skipped.
func thresholdsToMeasurements(m map[string]*float64) []models.Measurement {
	if len(m) == 0 {
		return nil
	}
	out := make([]models.Measurement, 0, len(m))
	for key, val := range m {
		if val == nil {
			continue
		}
		freq, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil {
			continue
		}
		out = append(out, models.Measurement{FrequencyHz: freq, ThresholdDB: *val})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FrequencyHz < out[j].FrequencyHz })
	if len(out) == 0 {
		return nil
	}
	return out
}

var dateFormats = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"02-01-2006",
	"January 2, 2006",
	"Jan 2, 2006",
}

// normalizeTestDate converts recognized date formats to YYYY-MM-DD. A value
// that matches no known format is kept as written rather than invented.
func normalizeTestDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	for _, format := range dateFormats {
		if d, err := time.Parse(format, s); err == nil {
			return d.Format("2006-01-02")
		}
	}
	return s
}
