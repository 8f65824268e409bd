package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/contribcalc/internal/output"
	"github.com/rgehrsitz/contribcalc/internal/tui/tuistyles"
	"github.com/shopspring/decimal"
)

const (
	minChartWidth  = 10
	minChartHeight = 3
	yAxisWidth     = 9
)

// Markers used for successive series
var seriesMarkers = []rune{'●', '■', '▲', '♦'}

// DataSeries is one line of the chart
type DataSeries struct {
	Name   string
	Points []float64
	Color  lipgloss.Color
}

// ASCIIChart plots balance series on a character grid.
// Labels are placed under the columns of the points they name.
type ASCIIChart struct {
	Title      string
	Series     []*DataSeries
	Labels     []string
	Width      int
	Height     int
	XAxisLabel string
	YAxisLabel string
}

// NewASCIIChart creates a 60x15 chart
func NewASCIIChart(title string) *ASCIIChart {
	return &ASCIIChart{Title: title, Width: 60, Height: 15}
}

// AddSeries appends a series; it is drawn with the next free marker
func (c *ASCIIChart) AddSeries(name string, points []float64, color lipgloss.Color) *ASCIIChart {
	c.Series = append(c.Series, &DataSeries{Name: name, Points: points, Color: color})
	return c
}

// DecimalPoints converts money amounts to chart points
func DecimalPoints(values []decimal.Decimal) []float64 {
	points := make([]float64, len(values))
	for i, v := range values {
		points[i] = v.InexactFloat64()
	}
	return points
}

func (c *ASCIIChart) WithLabels(labels []string) *ASCIIChart {
	c.Labels = labels
	return c
}

func (c *ASCIIChart) WithSize(width, height int) *ASCIIChart {
	c.Width = width
	c.Height = height
	return c
}

func (c *ASCIIChart) WithAxisLabels(xLabel, yLabel string) *ASCIIChart {
	c.XAxisLabel = xLabel
	c.YAxisLabel = yLabel
	return c
}

// plotArea returns the grid size, clamped to the minimum
func (c *ASCIIChart) plotArea() (int, int) {
	return max(minChartWidth, c.Width-yAxisWidth-2), max(minChartHeight, c.Height)
}

// Render returns the styled chart
func (c *ASCIIChart) Render() string {
	if len(c.Series) == 0 {
		return tuistyles.InfoStyle.Render("No data to display")
	}

	muted := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	var parts []string
	if c.Title != "" {
		parts = append(parts, lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorPrimary).Render(c.Title)+"\n")
	}
	if c.YAxisLabel != "" {
		parts = append(parts, muted.Render(c.YAxisLabel))
	}

	lo, hi := c.bounds()
	parts = append(parts, c.plot(lo, hi))
	if len(c.Labels) > 0 {
		parts = append(parts, c.xLabels())
	}
	if c.XAxisLabel != "" {
		parts = append(parts, strings.Repeat(" ", yAxisWidth+2)+muted.Italic(true).Render(c.XAxisLabel))
	}
	if len(c.Series) > 1 {
		parts = append(parts, "\n"+c.legend())
	}
	return strings.Join(parts, "\n")
}

// bounds returns the value range to plot. Balances are anchored at zero
// and the top gets a little headroom.
func (c *ASCIIChart) bounds() (float64, float64) {
	lo, hi := 0.0, math.Inf(-1)
	for _, s := range c.Series {
		for _, p := range s.Points {
			lo = math.Min(lo, p)
			hi = math.Max(hi, p)
		}
	}
	if math.IsInf(hi, -1) || hi <= lo {
		return lo, lo + 1
	}
	return lo, hi + (hi-lo)*0.05
}

// valueAt linearly interpolates a series at column x of a width-column plot
func valueAt(points []float64, x, width int) float64 {
	if len(points) == 1 || width < 2 {
		return points[0]
	}
	pos := float64(x) * float64(len(points)-1) / float64(width-1)
	i := int(pos)
	if i >= len(points)-1 {
		return points[len(points)-1]
	}
	frac := pos - float64(i)
	return points[i] + (points[i+1]-points[i])*frac
}

// plot draws every series column by column, filling the vertical gap
// between neighbouring columns so steep segments stay connected
func (c *ASCIIChart) plot(lo, hi float64) string {
	width, height := c.plotArea()
	grid := make([][]rune, height)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", width))
	}
	row := func(v float64) int {
		r := int(math.Round((hi - v) / (hi - lo) * float64(height-1)))
		return min(height-1, max(0, r))
	}

	for idx, s := range c.Series {
		if len(s.Points) == 0 {
			continue
		}
		marker := seriesMarkers[idx%len(seriesMarkers)]
		columns := width
		if len(s.Points) == 1 {
			columns = 1
		}
		prev := -1
		for x := 0; x < columns; x++ {
			r := row(valueAt(s.Points, x, width))
			from, to := r, r
			if prev >= 0 {
				from, to = min(prev, r), max(prev, r)
			}
			for y := from; y <= to; y++ {
				if grid[y][x] == ' ' || y == r {
					grid[y][x] = marker
				}
			}
			prev = r
		}
	}

	axis := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Width(yAxisWidth).Align(lipgloss.Right)
	var b strings.Builder
	for r, line := range grid {
		tick := ""
		if r == 0 || r == height-1 || r == (height-1)/2 {
			tick = formatChartValue(hi - float64(r)/float64(height-1)*(hi-lo))
		}
		b.WriteString(axis.Render(tick))
		b.WriteString(" ┤")
		b.WriteString(string(line))
		b.WriteString("\n")
	}
	b.WriteString(strings.Repeat(" ", yAxisWidth+1))
	b.WriteString("└")
	b.WriteString(strings.Repeat("─", width))
	return b.String()
}

// xLabels spreads at most five labels under their columns without overlap
func (c *ASCIIChart) xLabels() string {
	width, _ := c.plotArea()
	line := []rune(strings.Repeat(" ", width))
	step := max(1, (len(c.Labels)+4)/5)
	next := 0
	for i := 0; i < len(c.Labels); i += step {
		label := []rune(c.Labels[i])
		pos := 0
		if len(c.Labels) > 1 {
			pos = i * (width - 1) / (len(c.Labels) - 1)
		}
		pos = min(pos, width-len(label))
		if pos < next || pos < 0 {
			continue
		}
		copy(line[pos:], label)
		next = pos + len(label) + 1
	}
	return strings.Repeat(" ", yAxisWidth+2) +
		lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Render(strings.TrimRight(string(line), " "))
}

func (c *ASCIIChart) legend() string {
	items := make([]string, 0, len(c.Series))
	for i, s := range c.Series {
		marker := lipgloss.NewStyle().Foreground(s.Color).Render(string(seriesMarkers[i%len(seriesMarkers)]))
		items = append(items, marker+" "+lipgloss.NewStyle().Foreground(tuistyles.ColorForeground).Render(s.Name))
	}
	return lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Render("Legend: " + strings.Join(items, "   "))
}

// formatChartValue abbreviates an axis value the same way the headline does
func formatChartValue(value float64) string {
	return output.FormatAbbreviated(decimal.NewFromFloat(value).Round(0))
}
