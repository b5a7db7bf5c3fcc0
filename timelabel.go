package sparkline

import (
	"fmt"
	"time"
)

// Granularity selects which component of a timestamp becomes an x label.
type Granularity string

const (
	Year   Granularity = "year"
	Month  Granularity = "month"
	Day    Granularity = "day"
	Hour   Granularity = "hour"
	Minute Granularity = "minute"
	Second Granularity = "second"
)

// timestampLayouts are tried in order by ParseTimestamp.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses an ISO 8601 timestamp, with or without a zone
// offset or time part.
func ParseTimestamp(s string) (time.Time, error) {
	var err error
	for _, layout := range timestampLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("parsing timestamp %q: %w", s, err)
}

// FormatComponent renders one component of t. Day yields the two-character
// weekday abbreviation; the other granularities yield zero-padded numbers.
// Unrecognized granularities yield "".
func FormatComponent(t time.Time, g Granularity) string {
	switch g {
	case Year:
		return fmt.Sprintf("%04d", t.Year())
	case Month:
		return fmt.Sprintf("%02d", int(t.Month()))
	case Day:
		return t.Weekday().String()[:2]
	case Hour:
		return fmt.Sprintf("%02d", t.Hour())
	case Minute:
		return fmt.Sprintf("%02d", t.Minute())
	case Second:
		return fmt.Sprintf("%02d", t.Second())
	default:
		return ""
	}
}

// TimeLabel parses timestamp and formats the component selected by g.
// Unparseable timestamps, like unrecognized granularities, yield "".
func TimeLabel(timestamp string, g Granularity) string {
	t, err := ParseTimestamp(timestamp)
	if err != nil {
		return ""
	}
	return FormatComponent(t, g)
}
