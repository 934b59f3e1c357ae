package chart

import (
	"errors"
	"math"
	"testing"

	"github.com/AJBcoding/hearing-test-tracker/internal/detection"
	"github.com/AJBcoding/hearing-test-tracker/pkg/models"
)

func testBounds() detection.Bounds {
	return detection.Bounds{X1: 100, Y1: 50, X2: 900, Y2: 950}
}

func mustCalibration(t *testing.T) *Calibration {
	t.Helper()
	c, err := NewCalibration(testBounds(), models.StandardFrequencies, 0, 120)
	if err != nil {
		t.Fatalf("NewCalibration failed: %v", err)
	}
	return c
}

func TestNewCalibration_Scales(t *testing.T) {
	c := mustCalibration(t)

	wantFreqScale := (math.Log10(16000) - math.Log10(64)) / 800.0
	if math.Abs(c.FreqScale-wantFreqScale) > 1e-9 {
		t.Errorf("FreqScale: got %v, want %v", c.FreqScale, wantFreqScale)
	}
	wantDBScale := 120.0 / 900.0
	if math.Abs(c.DBScale-wantDBScale) > 1e-9 {
		t.Errorf("DBScale: got %v, want %v", c.DBScale, wantDBScale)
	}
}

func TestNewCalibration_DegenerateBounds(t *testing.T) {
	tests := []struct {
		name   string
		bounds detection.Bounds
	}{
		{"zero width", detection.Bounds{X1: 100, Y1: 0, X2: 100, Y2: 500}},
		{"zero height", detection.Bounds{X1: 0, Y1: 200, X2: 500, Y2: 200}},
		{"inverted", detection.Bounds{X1: 500, Y1: 500, X2: 100, Y2: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCalibration(tt.bounds, models.StandardFrequencies, 0, 120)
			if err == nil {
				t.Fatal("Expected error for degenerate bounds")
			}
			if !errors.Is(err, ErrDegenerateBounds) {
				t.Errorf("Expected ErrDegenerateBounds, got %v", err)
			}
		})
	}
}

func TestNewCalibration_EmptyGrid(t *testing.T) {
	if _, err := NewCalibration(testBounds(), nil, 0, 120); err == nil {
		t.Fatal("Expected error for empty frequency grid")
	}
}

func TestToMeasurements_Corners(t *testing.T) {
	c := mustCalibration(t)

	tests := []struct {
		name     string
		marker   detection.Point
		wantFreq int
		wantDB   float64
	}{
		{"top-left", detection.Point{X: 100, Y: 50}, 64, 0},
		{"top-right", detection.Point{X: 900, Y: 50}, 16000, 0},
		{"bottom-left", detection.Point{X: 100, Y: 950}, 64, 120},
		{"bottom-right", detection.Point{X: 900, Y: 950}, 16000, 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.ToMeasurements([]detection.Point{tt.marker})
			if len(got) != 1 {
				t.Fatalf("Expected 1 measurement, got %d", len(got))
			}
			if got[0].FrequencyHz != tt.wantFreq {
				t.Errorf("Frequency: got %d, want %d", got[0].FrequencyHz, tt.wantFreq)
			}
			if math.Abs(got[0].ThresholdDB-tt.wantDB) > 1e-9 {
				t.Errorf("Threshold: got %v, want %v", got[0].ThresholdDB, tt.wantDB)
			}
		})
	}
}

func TestToMeasurements_InteriorPoints(t *testing.T) {
	c := mustCalibration(t)

	markers := []detection.Point{
		{X: 100, Y: 100},
		{X: 200, Y: 200},
		{X: 300, Y: 300},
	}
	got := c.ToMeasurements(markers)
	if len(got) != 3 {
		t.Fatalf("Expected 3 measurements, got %d", len(got))
	}

	want := []models.Measurement{
		{FrequencyHz: 64, ThresholdDB: 6.7},
		{FrequencyHz: 125, ThresholdDB: 20.0},
		{FrequencyHz: 250, ThresholdDB: 33.3},
	}
	for i := range want {
		if got[i].FrequencyHz != want[i].FrequencyHz {
			t.Errorf("Measurement %d frequency: got %d, want %d", i, got[i].FrequencyHz, want[i].FrequencyHz)
		}
		if math.Abs(got[i].ThresholdDB-want[i].ThresholdDB) > 1e-9 {
			t.Errorf("Measurement %d threshold: got %v, want %v", i, got[i].ThresholdDB, want[i].ThresholdDB)
		}
	}
}

func TestToMeasurements_ThresholdMonotonic(t *testing.T) {
	c := mustCalibration(t)

	markers := make([]detection.Point, 0, 10)
	for y := 50; y <= 950; y += 100 {
		markers = append(markers, detection.Point{X: 500, Y: y})
	}
	got := c.ToMeasurements(markers)
	for i := 1; i < len(got); i++ {
		if got[i].ThresholdDB <= got[i-1].ThresholdDB {
			t.Errorf("Threshold not increasing at index %d: %v then %v", i, got[i-1].ThresholdDB, got[i].ThresholdDB)
		}
	}
}

func TestToMeasurements_NoClamping(t *testing.T) {
	c := mustCalibration(t)

	// A marker below the graph extrapolates past the axis maximum.
	got := c.ToMeasurements([]detection.Point{{X: 500, Y: 1100}})
	if got[0].ThresholdDB <= 120 {
		t.Errorf("Expected extrapolated threshold above 120, got %v", got[0].ThresholdDB)
	}
}

func TestToMeasurements_Empty(t *testing.T) {
	c := mustCalibration(t)
	if got := c.ToMeasurements(nil); len(got) != 0 {
		t.Errorf("Expected no measurements, got %d", len(got))
	}
}

func TestSnapFrequency(t *testing.T) {
	grid := models.StandardFrequencies

	tests := []struct {
		name string
		freq float64
		want int
	}{
		{"exact", 1000, 1000},
		{"near low edge", 60, 64},
		{"near high edge", 17000, 16000},
		{"rounds down", 1400, 1000},
		{"rounds up", 1600, 2000},
		{"tie goes to first", 1500, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SnapFrequency(tt.freq, grid); got != tt.want {
				t.Errorf("SnapFrequency(%v): got %d, want %d", tt.freq, got, tt.want)
			}
		})
	}
}

func TestSnapFrequency_Idempotent(t *testing.T) {
	for _, f := range models.StandardFrequencies {
		if got := SnapFrequency(float64(f), models.StandardFrequencies); got != f {
			t.Errorf("SnapFrequency(%d): got %d, want %d", f, got, f)
		}
	}
}
