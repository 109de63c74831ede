package scraper

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// publishedLayouts are the date formats observed across the monitored
// portals, tried in order.
var publishedLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006",
}

// indonesianMonths maps Indonesian month names to their numbers.
var indonesianMonths = map[string]time.Month{
	"januari":   time.January,
	"februari":  time.February,
	"maret":     time.March,
	"april":     time.April,
	"mei":       time.May,
	"juni":      time.June,
	"juli":      time.July,
	"agustus":   time.August,
	"september": time.September,
	"oktober":   time.October,
	"november":  time.November,
	"desember":  time.December,
}

// indonesianDateRe matches dates like "25 Agustus 2025".
var indonesianDateRe = regexp.MustCompile(
	`(\d{1,2})\s+(Januari|Februari|Maret|April|Mei|Juni|Juli|Agustus|September|Oktober|November|Desember)\s+(\d{4})`)

// ParsePublished parses a publish date in any of the formats the portals
// use, including Indonesian long dates. It reports false when the text
// holds no recognizable date; callers then fall back to the crawl time.
func ParsePublished(text string) (time.Time, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, false
	}

	for _, layout := range publishedLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t, true
		}
	}

	return parseIndonesianDate(text)
}

// parseIndonesianDate extracts a "25 Agustus 2025" style date from text.
func parseIndonesianDate(text string) (time.Time, bool) {
	m := indonesianDateRe.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}

	day, err := strconv.Atoi(m[1])
	if err != nil {
		return time.Time{}, false
	}
	month, ok := indonesianMonths[strings.ToLower(m[2])]
	if !ok {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(m[3])
	if err != nil {
		return time.Time{}, false
	}

	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day {
		// Date rolled over, e.g. "31 Februari 2025".
		return time.Time{}, false
	}
	return t, true
}
