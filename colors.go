package sparkline

import "github.com/charmbracelet/lipgloss"

// BarPalette holds the suggested bar colors, cycled by chart index when
// several charts render side by side. It is Paul Tol's qualitative palette
// (https://personal.sron.nl/~pault/), chosen for colorblind accessibility
// and for staying visible on dark backgrounds.
var BarPalette = []string{
	"#4477AA", // blue
	"#EE6677", // rose
	"#228833", // green
	"#CCBB44", // olive
	"#66CCEE", // cyan
	"#AA3377", // purple
	"#BBBBBB", // grey
	"#EE8866", // orange
	"#44BB99", // teal
	"#FFAABB", // pink
}

// AxisColor is the suggested color for the rule and the label/grid
// separators; LabelColor for the axis labels.
var (
	AxisColor  = lipgloss.Color("#CCBB44")
	LabelColor = lipgloss.Color("#66CCEE")
)

// BarColor returns the suggested bar color for a chart index, wrapping
// around the palette.
func BarColor(index int) lipgloss.Color {
	return lipgloss.Color(BarPalette[index%len(BarPalette)])
}

// Styled returns a copy of o with the suggested styles filled in: bars in
// BarColor(index), axis labels in LabelColor, rule and separators in
// AxisColor. Fields other than the three styles are left untouched.
func (o ChartOptions) Styled(index int) ChartOptions {
	bar := lipgloss.NewStyle().Foreground(BarColor(index))
	label := lipgloss.NewStyle().Foreground(LabelColor)
	axis := lipgloss.NewStyle().Foreground(AxisColor)
	o.BarStyle = &bar
	o.LabelStyle = &label
	o.AxisStyle = &axis
	return o
}
