package sparkline

import (
	"strings"
	"testing"
)

func TestBarColor(t *testing.T) {
	t.Run("returns palette colors in order", func(t *testing.T) {
		for i, want := range BarPalette {
			if got := BarColor(i); string(got) != want {
				t.Errorf("BarColor(%d) = %s, want %s", i, got, want)
			}
		}
	})

	t.Run("wraps around the palette", func(t *testing.T) {
		n := len(BarPalette)
		for i, want := range BarPalette {
			if got := BarColor(i + n); string(got) != want {
				t.Errorf("BarColor(%d) = %s, want %s", i+n, got, want)
			}
		}
	})

	t.Run("no color is black", func(t *testing.T) {
		for i, color := range BarPalette {
			switch strings.ToLower(color) {
			case "#000000", "#000", "0", "black":
				t.Errorf("BarPalette[%d] = %s, invisible on dark backgrounds", i, color)
			}
		}
	})
}

func TestStyled(t *testing.T) {
	t.Run("fills all three style slots", func(t *testing.T) {
		opts := ChartOptions{}.Styled(0)

		if opts.BarStyle == nil || opts.LabelStyle == nil || opts.AxisStyle == nil {
			t.Fatal("Styled() left a style slot nil")
		}
		if got := opts.BarStyle.GetForeground(); got != BarColor(0) {
			t.Errorf("BarStyle foreground = %v, want %v", got, BarColor(0))
		}
		if got := opts.LabelStyle.GetForeground(); got != LabelColor {
			t.Errorf("LabelStyle foreground = %v, want %v", got, LabelColor)
		}
		if got := opts.AxisStyle.GetForeground(); got != AxisColor {
			t.Errorf("AxisStyle foreground = %v, want %v", got, AxisColor)
		}
	})

	t.Run("bar color follows the chart index", func(t *testing.T) {
		opts := ChartOptions{}.Styled(3)
		if got := opts.BarStyle.GetForeground(); got != BarColor(3) {
			t.Errorf("BarStyle foreground = %v, want %v", got, BarColor(3))
		}
	})

	t.Run("leaves the other options untouched", func(t *testing.T) {
		opts := ChartOptions{Height: 4, BarWidth: 1, StartAtZero: true}.Styled(0)
		if opts.Height != 4 || opts.BarWidth != 1 || !opts.StartAtZero {
			t.Errorf("Styled() changed non-style fields: %+v", opts)
		}
	})
}
