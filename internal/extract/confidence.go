package extract

import (
	"math"

	"github.com/AJBcoding/hearing-test-tracker/pkg/models"
)

// Confidence scores the reliability of an extraction in [0, 1], rounded
// to two decimals. It is a heuristic, not a statistical estimator, and is
// deliberately conservative: a high score on bad data costs more than an
// unnecessary manual review.
//
// Three independent sub-scores are combined:
//
//   - Count completeness (weight w.CountPerEar per ear): the fraction of
//     the expected measurement count actually detected for each ear.
//   - Frequency coverage (weight w.Coverage): unique frequencies seen
//     across both ears relative to the expected count.
//   - Value validity (weight w.Validity): all-or-nothing; full weight iff
//     at least one measurement exists and every threshold lies in
//     [0, 120]. A single out-of-range value zeroes this component, and an
//     extraction with no measurements at all scores 0 outright -- "no
//     data" must never read as trustworthy.
func Confidence(left, right []models.Measurement, expected int, w ConfidenceWeights) float64 {
	if expected <= 0 {
		return 0
	}

	score := completeness(left, expected)*w.CountPerEar +
		completeness(right, expected)*w.CountPerEar

	unique := make(map[int]struct{})
	for _, m := range left {
		unique[m.FrequencyHz] = struct{}{}
	}
	for _, m := range right {
		unique[m.FrequencyHz] = struct{}{}
	}
	score += math.Min(float64(len(unique))/float64(expected), 1.0) * w.Coverage

	if len(left)+len(right) > 0 && allInRange(left) && allInRange(right) {
		score += w.Validity
	}

	return math.Round(score*100) / 100
}

func completeness(ear []models.Measurement, expected int) float64 {
	n := len(ear)
	if n > expected {
		n = expected
	}
	return float64(n) / float64(expected)
}

func allInRange(ear []models.Measurement) bool {
	for _, m := range ear {
		if m.ThresholdDB < 0 || m.ThresholdDB > 120 {
			return false
		}
	}
	return true
}
