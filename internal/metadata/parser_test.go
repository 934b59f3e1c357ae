package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFooter_FullCaption(t *testing.T) {
	got := ParseFooter("Made with Jacoti Hearing Center - 2024-12-17 12:24")

	assert.Equal(t, "2024-12-17", got.Date)
	assert.Equal(t, "12:24", got.Time)
	assert.Equal(t, "Jacoti Hearing Center", got.Device)
	assert.Equal(t, "Jacoti Hearing Center", got.Location)
	assert.Equal(t, "Made with Jacoti Hearing Center - 2024-12-17 12:24", got.RawFooterText)
}

func TestParseFooter_CaptionVariants(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantDate   string
		wantTime   string
		wantDevice string
	}{
		{
			"case insensitive prefix",
			"made with hearTest - 2023-01-05 9:07",
			"2023-01-05", "9:07", "hearTest",
		},
		{
			"en dash separator",
			"Made with Mimi – 2024-06-30 14:45",
			"2024-06-30", "14:45", "Mimi",
		},
		{
			"slash date normalized",
			"Made with Jacoti - 2024/12/17 12:24",
			"2024-12-17", "12:24", "Jacoti",
		},
		{
			"surrounding OCR noise",
			"|. Made with Jacoti Hearing Center - 2024-12-17 12:24 .|",
			"2024-12-17", "12:24", "Jacoti Hearing Center",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseFooter(tt.text)
			assert.Equal(t, tt.wantDate, got.Date)
			assert.Equal(t, tt.wantTime, got.Time)
			assert.Equal(t, tt.wantDevice, got.Device)
			assert.Equal(t, tt.text, got.RawFooterText)
		})
	}
}

func TestParseFooter_DateOnlyFallback(t *testing.T) {
	got := ParseFooter("Some other text 2024-12-17 more text")

	assert.Equal(t, "2024-12-17", got.Date)
	assert.Empty(t, got.Time)
	assert.Equal(t, "Unknown", got.Device)
	assert.Equal(t, "Unknown", got.Location)
	assert.Equal(t, "Some other text 2024-12-17 more text", got.RawFooterText)
}

func TestParseFooter_NoMatch(t *testing.T) {
	got := ParseFooter("Invalid footer text with no date")

	assert.Empty(t, got.Date)
	assert.Empty(t, got.Time)
	assert.Empty(t, got.Device)
	assert.Empty(t, got.Location)
	assert.Equal(t, "Invalid footer text with no date", got.RawFooterText)
}

func TestParseFooter_EmptyInput(t *testing.T) {
	got := ParseFooter("")

	assert.Empty(t, got.Date)
	assert.Empty(t, got.RawFooterText)
}

func TestParseFooter_CaptionWinsOverBareDate(t *testing.T) {
	// The caption strategy runs before the date-only fallback.
	got := ParseFooter("2023-01-01 Made with Device - 2024-12-17 12:24")

	assert.Equal(t, "2024-12-17", got.Date)
	assert.Equal(t, "Device", got.Device)
}
