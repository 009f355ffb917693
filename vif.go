// Package vif computes Variance Inflation Factors for the columns of a table
// and draws them as a horizontal bar chart, to spot multicollinearity
// between candidate features of a regression model.
package vif

import (
	"fmt"

	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/anyappinc/vif/logger"
	"github.com/anyappinc/vif/plot"
)

// Chart texts.
const (
	ChartTitle  = "Variance Inflation Factor (VIF) per Feature"
	ChartXLabel = "VIF Value"
)

var (
	barColor      = drawing.ColorFromHex("FFA500")
	moderateColor = drawing.ColorFromHex("FF0000")
	severeColor   = drawing.ColorFromHex("FFA500")
)

// Options controls a VIF computation and its chart.
type Options struct {
	// Features selects and orders the columns to use; nil means every column.
	Features *Selection
	// Sort orders the result by VIF, largest first.
	Sort bool
	// ShowThresholdLines draws reference lines at ModerateThreshold and SevereThreshold.
	ShowThresholdLines bool
	// AddConstant prepends an intercept column named ConstantLabel to the design matrix.
	AddConstant bool
	// DropConstantRow removes the intercept's own row from the result.
	DropConstantRow bool
	// Fitter computes R²; nil means NewOLS().
	Fitter Fitter
}

// DefaultOptions returns options with every switch on.
func DefaultOptions() Options {
	return Options{
		Sort:               true,
		ShowThresholdLines: true,
		AddConstant:        true,
		DropConstantRow:    true,
	}
}

// Compute builds the design matrix of t and returns one VIF per column, without drawing anything.
// A missing column fails before any computation. Degenerate data does not fail:
// perfectly collinear columns get +Inf and columns without variation get NaN.
func Compute(t *Table, opts Options) (*Result, error) {
	d, err := NewDesign(t, opts.Features, opts.AddConstant)
	if err != nil {
		return nil, err
	}

	fitter := opts.Fitter
	if fitter == nil {
		fitter = NewOLS()
	}

	vifs, err := Factors(d, fitter)
	if err != nil {
		return nil, err
	}

	res := &Result{Rows: make([]Row, len(vifs))}
	for i, v := range vifs {
		res.Rows[i] = Row{Feature: d.labels[i], VIF: v}
	}

	if opts.DropConstantRow {
		res.drop(ConstantLabel)
	}
	if opts.Sort {
		res.sortDescending()
	}

	logger.Debug().
		Int("observations", d.NumRows()).
		Int("columns", d.NumCols()).
		Bool("intercept", d.HasIntercept()).
		Msg("computed variance inflation factors")

	return res, nil
}

// Factors returns VIF(i) = 1/(1-R²ᵢ) for every column i of d, in column order.
func Factors(d *Design, f Fitter) ([]float64, error) {
	vifs := make([]float64, d.NumCols())
	for i := range vifs {
		r2, err := f.RSquared(d, i)
		if err != nil {
			return nil, fmt.Errorf("cannot regress %q on the other columns: %w", d.labels[i], err)
		}
		vifs[i] = 1 / (1 - r2)
	}
	return vifs, nil
}

// NewChart describes the bar chart of res.
func NewChart(res *Result, showThresholdLines bool) *plot.BarChart {
	c := &plot.BarChart{
		Title:       ChartTitle,
		XLabel:      ChartXLabel,
		Bars:        make([]plot.Bar, len(res.Rows)),
		BarColor:    barColor,
		ValueFormat: "%.2f",
	}
	for i, r := range res.Rows {
		c.Bars[i] = plot.Bar{Label: r.Feature, Value: r.VIF}
	}
	if showThresholdLines {
		c.ReferenceLines = []plot.ReferenceLine{
			{Value: ModerateThreshold, Label: "VIF=5 Threshold", Color: moderateColor, Dashed: true},
			{Value: SevereThreshold, Label: "VIF=10 Threshold", Color: severeColor, Dashed: true},
		}
	}
	return c
}

// Reporter computes VIFs and draws them on its own surface.
// A Reporter must not be used by concurrent calls unless its surface allows it.
type Reporter struct {
	surface plot.Surface
}

// NewReporter creates a Reporter drawing on surface. A nil surface draws nothing.
func NewReporter(surface plot.Surface) *Reporter {
	if surface == nil {
		surface = plot.Nop{}
	}
	return &Reporter{surface: surface}
}

// Report computes the VIF table of t and draws its chart.
// When drawing fails the table is still returned, along with a *RenderError.
func (r *Reporter) Report(t *Table, opts Options) (*Result, error) {
	res, err := Compute(t, opts)
	if err != nil {
		return nil, err
	}

	if err := r.surface.Draw(NewChart(res, opts.ShowThresholdLines)); err != nil {
		logger.Err().Err(err).Msg("cannot draw the VIF chart")
		return res, &RenderError{Err: err}
	}

	logger.Info().Int("features", res.Len()).Msg("completed")
	return res, nil
}
