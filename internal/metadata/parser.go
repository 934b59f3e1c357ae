// Package metadata recovers test date, time and device information from
// the caption footer of a chart image.
//
// Parsing is best-effort by contract: the extractor never returns an
// error. A footer that matches no known pattern yields a result whose
// structured fields are empty but whose RawFooterText is always retained
// for diagnostics.
package metadata

import (
	"regexp"
	"strings"
)

// FooterMetadata is the parsed content of a chart footer. Every field
// except RawFooterText may be empty.
type FooterMetadata struct {
	Date          string `json:"date,omitempty"` // YYYY-MM-DD
	Time          string `json:"time,omitempty"` // H:MM or HH:MM
	Device        string `json:"device,omitempty"`
	Location      string `json:"location,omitempty"`
	RawFooterText string `json:"raw_footer_text"`
}

// parserStrategy attempts to recover structured fields from raw footer
// text. It reports false when the text does not match its pattern, in
// which case the next strategy in order is tried.
type parserStrategy func(text string) (FooterMetadata, bool)

// footerStrategies is the ordered fallback chain: the full caption
// template first, then a looser date-only scan. The first match wins.
var footerStrategies = []parserStrategy{
	parseCaption,
	parseDateOnly,
}

// captionPattern matches the caption template
// "Made with <device> - <YYYY-MM-DD> <H:MM>". It tolerates the usual OCR
// noise: hyphen vs. en-dash for the separator, '/' vs. '-' inside the
// date, and a missing leading zero in the hour.
var captionPattern = regexp.MustCompile(
	`(?i)Made with\s+(.+?)\s*[-\x{2013}]\s*(\d{4}[-/]\d{2}[-/]\d{2})\s+(\d{1,2}:\d{2})`)

// datePattern matches any ISO-shaped date substring.
var datePattern = regexp.MustCompile(`(\d{4}[-/]\d{2}[-/]\d{2})`)

// ParseFooter runs the raw footer text through the strategy chain and
// returns the first successful parse. When nothing matches, the result
// carries only the raw text. ParseFooter never fails.
func ParseFooter(text string) FooterMetadata {
	for _, parse := range footerStrategies {
		if meta, ok := parse(text); ok {
			meta.RawFooterText = text
			return meta
		}
	}
	return FooterMetadata{RawFooterText: text}
}

// parseCaption matches the full caption template. The device name doubles
// as the location: home-test exports carry no separate location field.
func parseCaption(text string) (FooterMetadata, bool) {
	m := captionPattern.FindStringSubmatch(text)
	if m == nil {
		return FooterMetadata{}, false
	}
	device := strings.TrimSpace(m[1])
	return FooterMetadata{
		Date:     normalizeDate(m[2]),
		Time:     m[3],
		Device:   device,
		Location: device,
	}, true
}

// parseDateOnly salvages a date from a footer whose caption did not match
// the template; the device is unknown but the date alone is still worth
// keeping.
func parseDateOnly(text string) (FooterMetadata, bool) {
	m := datePattern.FindStringSubmatch(text)
	if m == nil {
		return FooterMetadata{}, false
	}
	return FooterMetadata{
		Date:     normalizeDate(m[1]),
		Device:   "Unknown",
		Location: "Unknown",
	}, true
}

func normalizeDate(date string) string {
	return strings.ReplaceAll(date, "/", "-")
}
