// Package plot draws horizontal bar charts onto pluggable surfaces.
package plot

import (
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Default canvas size in pixels.
const (
	DefaultWidth  = 1000
	DefaultHeight = 600
)

// Bar is one horizontal bar.
type Bar struct {
	Label string
	Value float64
}

// ReferenceLine is a vertical line across the plot area at X = Value.
type ReferenceLine struct {
	Value  float64
	Label  string
	Color  drawing.Color
	Dashed bool
}

// BarChart describes a horizontal bar chart. Bars are drawn top to bottom in slice order.
type BarChart struct {
	Title          string
	XLabel         string
	Bars           []Bar
	BarColor       drawing.Color
	ValueFormat    string // e.g. "%.2f", used for the label at the end of each bar
	ReferenceLines []ReferenceLine
}

// Surface is where a chart ends up.
// Implementations are not required to be safe for concurrent use.
type Surface interface {
	Draw(c *BarChart) error
}

// Nop is a headless Surface that draws nothing.
type Nop struct{}

// Draw implements Surface.
func (Nop) Draw(*BarChart) error { return nil }

// SurfaceFunc adapts a function to a Surface.
type SurfaceFunc func(c *BarChart) error

// Draw implements Surface.
func (f SurfaceFunc) Draw(c *BarChart) error { return f(c) }
