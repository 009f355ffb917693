package plot

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

func fixedWidth(text string) int { return 7 * len(text) }

func sampleChart() *BarChart {
	return &BarChart{
		Title:  "title",
		XLabel: "x",
		Bars: []Bar{
			{Label: "a", Value: 12},
			{Label: "b", Value: 3},
			{Label: "c", Value: math.NaN()},
			{Label: "d", Value: math.Inf(1)},
		},
		ValueFormat: "%.2f",
		ReferenceLines: []ReferenceLine{
			{Value: 5, Label: "five", Color: drawing.ColorRed, Dashed: true},
			{Value: 10, Label: "ten", Color: drawing.ColorBlue, Dashed: true},
		},
	}
}

func TestLayout_Axis(t *testing.T) {
	g := Layout(sampleChart(), 1000, 600, fixedWidth)

	assert.Equal(t, Rect{Left: 31, Top: 50, Right: 970, Bottom: 536}, g.Plot)
	assert.Equal(t, 15.0, g.XMax)

	labels := make([]string, len(g.Ticks))
	for i, tick := range g.Ticks {
		labels[i] = tick.Label
	}
	assert.Equal(t, []string{"0", "5", "10", "15"}, labels)
	assert.Equal(t, g.Plot.Left, g.Ticks[0].X)
	assert.Equal(t, g.Plot.Right, g.Ticks[3].X)
}

func TestLayout_Bars(t *testing.T) {
	g := Layout(sampleChart(), 1000, 600, fixedWidth)
	require.Len(t, g.Bars, 4)

	a, b, c, d := g.Bars[0], g.Bars[1], g.Bars[2], g.Bars[3]

	// first row on top
	assert.Less(t, a.Rect.Top, b.Rect.Top)
	assert.Less(t, b.Rect.Top, c.Rect.Top)
	assert.Less(t, c.Rect.Top, d.Rect.Top)
	assert.Greater(t, a.CenterY, a.Rect.Top)
	assert.Less(t, a.CenterY, a.Rect.Bottom)

	assert.True(t, a.Drawn)
	assert.Equal(t, 782, a.Rect.Right)
	assert.Equal(t, "12.00", a.Text)
	assert.Greater(t, a.TextX, a.Rect.Right)
	assert.Greater(t, a.Rect.Right, b.Rect.Right)
	assert.Equal(t, "3.00", b.Text)

	assert.False(t, c.Drawn)
	assert.Equal(t, "nan", c.Text)

	assert.True(t, d.Drawn)
	assert.True(t, d.Clipped)
	assert.Equal(t, g.Plot.Right, d.Rect.Right)
	assert.Equal(t, "inf", d.Text)
}

func TestLayout_ReferenceLines(t *testing.T) {
	g := Layout(sampleChart(), 1000, 600, fixedWidth)
	require.Len(t, g.Lines, 2)
	assert.Equal(t, 344, g.Lines[0].X)
	assert.Equal(t, 657, g.Lines[1].X)
	assert.Equal(t, "five", g.Lines[0].Label)
}

func TestLayout_Empty(t *testing.T) {
	g := Layout(&BarChart{}, 1000, 600, fixedWidth)

	assert.Empty(t, g.Bars)
	assert.Empty(t, g.Lines)
	require.Len(t, g.Ticks, 7)
	assert.Equal(t, "0.0", g.Ticks[0].Label)
	assert.Equal(t, "1.2", g.Ticks[6].Label)
}

func TestLayout_DefaultValueFormat(t *testing.T) {
	g := Layout(&BarChart{Bars: []Bar{{Label: "a", Value: 1.234}}}, 1000, 600, fixedWidth)
	require.Len(t, g.Bars, 1)
	assert.Equal(t, "1.23", g.Bars[0].Text)
}

func TestNiceStep(t *testing.T) {
	tests := map[float64]float64{
		0.7:  1,
		1:    1,
		1.5:  2,
		3:    5,
		7:    10,
		23:   50,
		0.18: 0.2,
	}
	for raw, want := range tests {
		assert.InDelta(t, want, niceStep(raw), 1e-12, "%v", raw)
	}
}
