package sparkline

import (
	"fmt"
	"strings"
)

// DefaultPalette is the 8-level block glyph ladder, lowest to highest.
var DefaultPalette = []string{"▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"}

// SparklineOptions configures Sparkline. The zero value selects all
// defaults.
type SparklineOptions struct {
	// Palette is an ordered low-to-high set of glyphs, one per intensity
	// level. It must have at least two entries. Nil selects DefaultPalette.
	Palette []string
}

func (o SparklineOptions) palette() ([]string, error) {
	if o.Palette == nil {
		return DefaultPalette, nil
	}
	if len(o.Palette) < 2 {
		return nil, fmt.Errorf("%d entries: %w", len(o.Palette), ErrPalette)
	}
	return o.Palette, nil
}

// Sparkline renders a numeric series as a single line of glyphs, one per
// element, in input order. Values are quantized linearly between the series
// minimum and maximum; a constant series renders entirely at the lowest
// level.
func Sparkline[N Number](series []N, opts SparklineOptions) (string, error) {
	return renderSparkline(promote(series), opts)
}

// SparklineSeries is Sparkline for arbitrary element types, with value
// extracting the number to plot from each element.
func SparklineSeries[T any](series []T, value func(T) float64, opts SparklineOptions) (string, error) {
	return renderSparkline(Values(series, value), opts)
}

func renderSparkline(values []float64, opts SparklineOptions) (string, error) {
	palette, err := opts.palette()
	if err != nil {
		return "", err
	}
	if len(values) == 0 {
		return "", fmt.Errorf("sparkline: %w", ErrEmptySeries)
	}

	lo, hi := minMax(values)
	bs := boundaries(lo, hi, len(palette))

	var b strings.Builder
	for _, v := range values {
		b.WriteString(palette[level(v, bs)])
	}
	return b.String(), nil
}
