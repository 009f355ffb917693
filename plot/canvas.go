package plot

import (
	"fmt"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Format is the image format a Canvas writes.
type Format string

// Supported formats.
const (
	PNG Format = "png"
	SVG Format = "svg"
)

var (
	axisColor = drawing.ColorFromHex("333333")
	gridColor = drawing.ColorFromHex("DDDDDD")
	textColor = drawing.ColorFromHex("222222")
)

const (
	titleFontSize = 14
	labelFontSize = 10
	tickFontSize  = 9
	legendLength  = 28
)

// Canvas is a Surface that renders a chart with go-chart and writes the image to w.
type Canvas struct {
	w      io.Writer
	format Format
	Width  int
	Height int
}

// NewCanvas creates a Canvas writing images of the given format to w.
func NewCanvas(w io.Writer, format Format) *Canvas {
	return &Canvas{w: w, format: format, Width: DefaultWidth, Height: DefaultHeight}
}

// Draw implements Surface. Nothing is written to the underlying writer unless the whole chart rendered.
func (cv *Canvas) Draw(c *BarChart) error {
	var provider chart.RendererProvider
	switch cv.format {
	case PNG, "":
		provider = chart.PNG
	case SVG:
		provider = chart.SVG
	default:
		return fmt.Errorf("unsupported image format %q", cv.format)
	}

	r, err := provider(cv.Width, cv.Height)
	if err != nil {
		return fmt.Errorf("cannot create renderer: %w", err)
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return fmt.Errorf("cannot load font: %w", err)
	}
	r.SetFont(font)

	r.SetFontSize(labelFontSize)
	g := Layout(c, cv.Width, cv.Height, func(text string) int {
		return r.MeasureText(text).Width()
	})

	fillRect(r, Rect{Left: 0, Top: 0, Right: cv.Width, Bottom: cv.Height}, drawing.ColorWhite)
	drawAxes(r, g)
	drawBars(r, g, c.BarColor)
	drawLines(r, g)
	drawTitles(r, g, c)
	if len(g.Lines) > 0 {
		drawLegend(r, g)
	}

	return r.Save(cv.w)
}

func drawAxes(r chart.Renderer, g Geometry) {
	r.SetFontSize(tickFontSize)
	r.SetFontColor(textColor)
	for _, t := range g.Ticks {
		strokeLine(r, t.X, g.Plot.Top, t.X, g.Plot.Bottom, gridColor, 1, nil)
		box := r.MeasureText(t.Label)
		r.Text(t.Label, t.X-box.Width()/2, g.Plot.Bottom+box.Height()+6)
	}
	strokeLine(r, g.Plot.Left, g.Plot.Bottom, g.Plot.Right, g.Plot.Bottom, axisColor, 1, nil)
	strokeLine(r, g.Plot.Left, g.Plot.Top, g.Plot.Left, g.Plot.Bottom, axisColor, 1, nil)
}

func drawBars(r chart.Renderer, g Geometry, color drawing.Color) {
	r.SetFontSize(labelFontSize)
	r.SetFontColor(textColor)
	for _, b := range g.Bars {
		if b.Drawn && b.Rect.Right > b.Rect.Left {
			fillRect(r, b.Rect, color)
		}

		// 縦方向は棒の中央に揃える
		label := r.MeasureText(b.Label)
		r.Text(b.Label, g.Plot.Left-labelGap-label.Width(), b.CenterY+label.Height()/2)
		value := r.MeasureText(b.Text)
		r.Text(b.Text, b.TextX, b.CenterY+value.Height()/2)
	}
}

func drawLines(r chart.Renderer, g Geometry) {
	for _, l := range g.Lines {
		strokeLine(r, l.X, g.Plot.Top, l.X, g.Plot.Bottom, l.Color, 1.5, dashArray(l.Dashed))
	}
}

func drawTitles(r chart.Renderer, g Geometry, c *BarChart) {
	r.SetFontColor(textColor)

	r.SetFontSize(titleFontSize)
	title := r.MeasureText(c.Title)
	r.Text(c.Title, (g.Width-title.Width())/2, g.Plot.Top/2+title.Height()/2)

	r.SetFontSize(labelFontSize)
	xLabel := r.MeasureText(c.XLabel)
	r.Text(c.XLabel, g.Plot.Left+(g.Plot.Width()-xLabel.Width())/2, g.Height-xLabel.Height())
}

func drawLegend(r chart.Renderer, g Geometry) {
	r.SetFontSize(labelFontSize)
	r.SetFontColor(textColor)

	width, lineHeight := 0, 0
	for _, l := range g.Lines {
		box := r.MeasureText(l.Label)
		if box.Width() > width {
			width = box.Width()
		}
		if box.Height() > lineHeight {
			lineHeight = box.Height()
		}
	}
	lineHeight += 8

	frame := Rect{
		Right: g.Plot.Right - 8,
		Top:   g.Plot.Top + 8,
	}
	frame.Left = frame.Right - width - legendLength - 24
	frame.Bottom = frame.Top + lineHeight*len(g.Lines) + 8
	fillRect(r, frame, drawing.ColorWhite)
	strokeRect(r, frame, gridColor)

	for i, l := range g.Lines {
		y := frame.Top + 4 + lineHeight*i + lineHeight/2
		strokeLine(r, frame.Left+8, y, frame.Left+8+legendLength, y, l.Color, 1.5, dashArray(l.Dashed))
		box := r.MeasureText(l.Label)
		r.Text(l.Label, frame.Left+16+legendLength, y+box.Height()/2)
	}
}

func dashArray(dashed bool) []float64 {
	if !dashed {
		return nil
	}
	return []float64{6, 4}
}

func fillRect(r chart.Renderer, rect Rect, color drawing.Color) {
	r.SetFillColor(color)
	r.SetStrokeColor(color)
	r.SetStrokeWidth(1)
	r.SetStrokeDashArray(nil)
	r.MoveTo(rect.Left, rect.Top)
	r.LineTo(rect.Right, rect.Top)
	r.LineTo(rect.Right, rect.Bottom)
	r.LineTo(rect.Left, rect.Bottom)
	r.Close()
	r.FillStroke()
}

func strokeRect(r chart.Renderer, rect Rect, color drawing.Color) {
	r.SetStrokeColor(color)
	r.SetStrokeWidth(1)
	r.SetStrokeDashArray(nil)
	r.MoveTo(rect.Left, rect.Top)
	r.LineTo(rect.Right, rect.Top)
	r.LineTo(rect.Right, rect.Bottom)
	r.LineTo(rect.Left, rect.Bottom)
	r.Close()
	r.Stroke()
}

func strokeLine(r chart.Renderer, x0, y0, x1, y1 int, color drawing.Color, width float64, dash []float64) {
	r.SetStrokeColor(color)
	r.SetStrokeWidth(width)
	r.SetStrokeDashArray(dash)
	r.MoveTo(x0, y0)
	r.LineTo(x1, y1)
	r.Stroke()
}
