package sparkline

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MeltwaterArchive/sparkline/internal/text"
)

const (
	// DefaultHeight is the soft upper bound on chart rows when
	// ChartOptions.Height is zero.
	DefaultHeight = 10

	// DefaultBarWidth is the number of character columns per data point
	// when ChartOptions.BarWidth is zero.
	DefaultBarWidth = 2

	// DefaultBarGlyph fills chart cells when ChartOptions.BarGlyph is empty.
	DefaultBarGlyph = "█"
)

// ChartOptions configures Chart. The zero value selects all defaults.
type ChartOptions struct {
	// Height is the soft upper bound on the number of data rows. A series
	// whose value range is narrower than Height produces fewer rows, one
	// per whole unit of range. Zero means DefaultHeight.
	Height int

	// BarGlyph is the character drawn in filled cells. Empty means
	// DefaultBarGlyph.
	BarGlyph string

	// BarWidth is the number of character columns per data point. Zero
	// means DefaultBarWidth.
	BarWidth int

	// StartAtZero anchors the y axis at zero instead of the series minimum,
	// provided no value is negative.
	StartAtZero bool

	// XLabels holds one label per data point; each is padded or truncated
	// to BarWidth*2 columns. Nil means zero-based column indices. Missing
	// trailing labels render blank.
	XLabels []string

	// YLabel formats a row threshold for the y axis. Nil rounds to two
	// decimal places and renders decimal text with trailing zeros trimmed.
	YLabel func(float64) string

	// BarStyle, LabelStyle and AxisStyle optionally color the filled
	// cells, the axis labels, and the separators and rule. Layout is
	// computed before styling, so styled output keeps its alignment.
	// Nil styles emit plain text.
	BarStyle   *lipgloss.Style
	LabelStyle *lipgloss.Style
	AxisStyle  *lipgloss.Style
}

func defaultYLabel(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

// Chart renders a numeric series as a labeled grid: one column per data
// point, one row per y threshold (highest first), then a horizontal rule
// and two interleaved rows of x labels. With height H (and a value range at
// least H wide) the output is exactly H+3 lines.
func Chart[N Number](series []N, opts ChartOptions) (string, error) {
	return renderChart(promote(series), opts)
}

// ChartSeries is Chart for arbitrary element types, with value extracting
// the number to plot from each element.
func ChartSeries[T any](series []T, value func(T) float64, opts ChartOptions) (string, error) {
	return renderChart(Values(series, value), opts)
}

func renderChart(values []float64, opts ChartOptions) (string, error) {
	if opts.Height < 0 {
		return "", fmt.Errorf("%d: %w", opts.Height, ErrHeight)
	}
	if opts.BarWidth < 0 {
		return "", fmt.Errorf("%d: %w", opts.BarWidth, ErrBarWidth)
	}
	if len(values) == 0 {
		return "", fmt.Errorf("chart: %w", ErrEmptySeries)
	}

	height := opts.Height
	if height == 0 {
		height = DefaultHeight
	}
	barWidth := opts.BarWidth
	if barWidth == 0 {
		barWidth = DefaultBarWidth
	}
	barGlyph := opts.BarGlyph
	if barGlyph == "" {
		barGlyph = DefaultBarGlyph
	}
	yLabel := opts.YLabel
	if yLabel == nil {
		yLabel = defaultYLabel
	}

	thresholds := rowThresholds(values, height, opts.StartAtZero)

	labels := make([]string, len(thresholds))
	labelWidth := 0
	for i, t := range thresholds {
		labels[i] = yLabel(t)
		if w := text.Width(labels[i]); w > labelWidth {
			labelWidth = w
		}
	}

	xLabels := make([]string, len(values))
	for i := range values {
		l := strconv.Itoa(i)
		if opts.XLabels != nil {
			l = ""
			if i < len(opts.XLabels) {
				l = opts.XLabels[i]
			}
		}
		xLabels[i] = text.Fit(l, barWidth*2)
	}

	filled := text.Fit(barGlyph, barWidth)
	if opts.BarStyle != nil {
		filled = opts.BarStyle.Render(filled)
	}
	blank := strings.Repeat(" ", barWidth)
	sep := "|"
	if opts.AxisStyle != nil {
		sep = opts.AxisStyle.Render(sep)
	}

	lines := make([]string, 0, len(thresholds)+3)

	// Data rows, highest threshold first.
	for i := len(thresholds) - 1; i >= 0; i-- {
		label := text.LeftPad(labels[i], labelWidth, ' ')
		if opts.LabelStyle != nil {
			label = opts.LabelStyle.Render(label)
		}
		var row strings.Builder
		row.WriteString(label)
		row.WriteString(sep)
		for _, v := range values {
			if v >= thresholds[i] {
				row.WriteString(filled)
			} else {
				row.WriteString(blank)
			}
		}
		lines = append(lines, row.String())
	}

	margin := strings.Repeat(" ", labelWidth+1)

	rule := strings.Repeat("-", barWidth*len(values)+1)
	if opts.AxisStyle != nil {
		rule = opts.AxisStyle.Render(rule)
	}
	lines = append(lines, margin+rule)

	// Even-index labels sit flush under their columns; odd-index labels are
	// shifted right by one bar width so adjacent labels interleave instead
	// of colliding.
	var even, odd strings.Builder
	even.WriteString(margin)
	odd.WriteString(margin + strings.Repeat(" ", barWidth))
	for i, l := range xLabels {
		if opts.LabelStyle != nil {
			l = opts.LabelStyle.Render(l)
		}
		if i%2 == 0 {
			even.WriteString(l)
		} else {
			odd.WriteString(l)
		}
	}
	lines = append(lines, even.String(), odd.String())

	return strings.Join(lines, "\n"), nil
}
