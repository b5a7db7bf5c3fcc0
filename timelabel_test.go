package sparkline

import (
	"testing"
	"time"
)

func TestTimeLabel(t *testing.T) {
	// 2015-03-15 was a Sunday.
	const ts = "2015-03-15T09:05:04Z"

	t.Run("formats each granularity", func(t *testing.T) {
		cases := []struct {
			g    Granularity
			want string
		}{
			{Year, "2015"},
			{Month, "03"},
			{Day, "Su"},
			{Hour, "09"},
			{Minute, "05"},
			{Second, "04"},
		}
		for _, c := range cases {
			if got := TimeLabel(ts, c.g); got != c.want {
				t.Errorf("TimeLabel(%q, %q) = %q, want %q", ts, c.g, got, c.want)
			}
		}
	})

	t.Run("unrecognized granularity yields empty string", func(t *testing.T) {
		if got := TimeLabel(ts, Granularity("fortnight")); got != "" {
			t.Errorf("TimeLabel() = %q, want empty", got)
		}
	})

	t.Run("unparseable timestamp yields empty string", func(t *testing.T) {
		if got := TimeLabel("not a timestamp", Hour); got != "" {
			t.Errorf("TimeLabel() = %q, want empty", got)
		}
	})

	t.Run("date-only timestamps parse", func(t *testing.T) {
		if got := TimeLabel("2015-03-16", Day); got != "Mo" {
			t.Errorf("TimeLabel() = %q, want %q", got, "Mo")
		}
	})
}

func TestParseTimestamp(t *testing.T) {
	t.Run("accepts RFC3339 with offset", func(t *testing.T) {
		got, err := ParseTimestamp("2015-03-15T09:05:04+02:00")
		if err != nil {
			t.Fatalf("ParseTimestamp() returned error: %v", err)
		}
		if got.UTC().Hour() != 7 {
			t.Errorf("hour = %d, want 7", got.UTC().Hour())
		}
	})

	t.Run("accepts timestamps without a zone", func(t *testing.T) {
		got, err := ParseTimestamp("2015-03-15 09:05:04")
		if err != nil {
			t.Fatalf("ParseTimestamp() returned error: %v", err)
		}
		if got.Minute() != 5 {
			t.Errorf("minute = %d, want 5", got.Minute())
		}
	})

	t.Run("rejects garbage", func(t *testing.T) {
		if _, err := ParseTimestamp("yesterday"); err == nil {
			t.Error("ParseTimestamp() returned nil error, want error")
		}
	})
}

func TestFormatComponentWeekdays(t *testing.T) {
	// Walk one week and check every two-letter abbreviation appears.
	start := time.Date(2015, 3, 15, 0, 0, 0, 0, time.UTC)
	want := []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}
	for i, w := range want {
		got := FormatComponent(start.AddDate(0, 0, i), Day)
		if got != w {
			t.Errorf("FormatComponent(day %d) = %q, want %q", i, got, w)
		}
	}
}
