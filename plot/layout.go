package plot

import (
	"fmt"
	"math"
	"strconv"
)

const (
	marginTop    = 50
	marginBottom = 64
	marginRight  = 30
	labelGap     = 12
	barFill      = 0.8 // share of a row taken by its bar
	labelOffset  = 0.5 // gap between a bar end and its value label, in data units
	tickTarget   = 6
)

// Rect is a pixel rectangle.
type Rect struct {
	Left, Top, Right, Bottom int
}

// Width returns the width of r.
func (r Rect) Width() int { return r.Right - r.Left }

// Height returns the height of r.
func (r Rect) Height() int { return r.Bottom - r.Top }

// Tick is a labelled position on the x axis.
type Tick struct {
	Value float64
	X     int
	Label string
}

// BarGeometry is where one bar and its value label go.
type BarGeometry struct {
	Bar
	Rect    Rect
	Drawn   bool // false for NaN, which has no length
	Clipped bool // true for +Inf, drawn up to the end of the axis
	Text    string
	TextX   int
	CenterY int
}

// LineGeometry is where one reference line goes.
type LineGeometry struct {
	ReferenceLine
	X int
}

// Geometry is the pixel layout of a BarChart.
type Geometry struct {
	Width, Height int
	Plot          Rect
	XMax          float64
	Ticks         []Tick
	Bars          []BarGeometry
	Lines         []LineGeometry
}

// MeasureFunc returns the pixel width of a text.
type MeasureFunc func(text string) int

// Layout computes the geometry of c on a width x height canvas.
// measure is used to leave room for the bar labels on the left.
func Layout(c *BarChart, width, height int, measure MeasureFunc) Geometry {
	labelWidth := 0
	for _, b := range c.Bars {
		if w := measure(b.Label); w > labelWidth {
			labelWidth = w
		}
	}

	g := Geometry{
		Width:  width,
		Height: height,
		Plot: Rect{
			Left:   labelWidth + 2*labelGap,
			Top:    marginTop,
			Right:  width - marginRight,
			Bottom: height - marginBottom,
		},
	}

	var step float64
	g.XMax, step = axisMax(c)
	for i := 0; float64(i)*step <= g.XMax+step/2; i++ {
		v := float64(i) * step
		g.Ticks = append(g.Ticks, Tick{Value: v, X: g.x(v), Label: formatTick(v, step)})
	}

	format := c.ValueFormat
	if format == "" {
		format = "%.2f"
	}

	if n := len(c.Bars); n > 0 {
		band := float64(g.Plot.Height()) / float64(n)
		pad := band * (1 - barFill) / 2
		for i, b := range c.Bars {
			top := float64(g.Plot.Top) + float64(i)*band
			bg := BarGeometry{
				Bar:     b,
				CenterY: int(math.Round(top + band/2)),
			}

			value := b.Value
			switch {
			case math.IsNaN(value):
				bg.Text = "nan"
				value = 0
			case math.IsInf(value, 1):
				bg.Text = "inf"
				bg.Drawn, bg.Clipped = true, true
				value = g.XMax
			default:
				bg.Text = fmt.Sprintf(format, value)
				bg.Drawn = true
				value = math.Max(0, math.Min(value, g.XMax))
			}

			bg.Rect = Rect{
				Left:   g.Plot.Left,
				Top:    int(math.Round(top + pad)),
				Right:  g.x(value),
				Bottom: int(math.Round(top + band - pad)),
			}
			bg.TextX = g.x(math.Min(value+labelOffset, g.XMax))
			g.Bars = append(g.Bars, bg)
		}
	}

	for _, l := range c.ReferenceLines {
		g.Lines = append(g.Lines, LineGeometry{ReferenceLine: l, X: g.x(l.Value)})
	}

	return g
}

// x maps a data value to a pixel column.
func (g Geometry) x(v float64) int {
	return g.Plot.Left + int(math.Round(v/g.XMax*float64(g.Plot.Width())))
}

// axisMax returns the end of the x axis and the tick step. The axis covers
// every finite bar with room for its label, and every reference line.
func axisMax(c *BarChart) (float64, float64) {
	limit := 0.0
	for _, b := range c.Bars {
		if !math.IsNaN(b.Value) && !math.IsInf(b.Value, 0) {
			limit = math.Max(limit, b.Value+labelOffset)
		}
	}
	for _, l := range c.ReferenceLines {
		limit = math.Max(limit, l.Value)
	}
	if limit <= 0 {
		limit = 1
	}
	limit *= 1.1

	step := niceStep(limit / tickTarget)
	return math.Ceil(limit/step) * step, step
}

// niceStep rounds raw up to 1, 2 or 5 times a power of ten.
func niceStep(raw float64) float64 {
	exp := math.Pow(10, math.Floor(math.Log10(raw)))
	switch f := raw / exp; {
	case f <= 1:
		return exp
	case f <= 2:
		return 2 * exp
	case f <= 5:
		return 5 * exp
	default:
		return 10 * exp
	}
}

// formatTick prints v with as many decimals as the step needs.
func formatTick(v, step float64) string {
	decimals := int(math.Max(0, -math.Floor(math.Log10(step))))
	return strconv.FormatFloat(v, 'f', decimals, 64)
}
