package vif

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/anyappinc/vif/logger"
)

// ConstantLabel is the name of the intercept column added to a design matrix.
const ConstantLabel = "const"

// Design is the matrix the VIF computation runs on: the selected columns
// of a table, optionally with an intercept column in front.
type Design struct {
	labels    []string
	columns   [][]float64
	numRows   int
	intercept bool
}

// NewDesign projects t onto sel and, if addConstant is set, prepends an intercept column.
// No intercept is added when one of the selected columns already is a non-zero constant.
func NewDesign(t *Table, sel *Selection, addConstant bool) (*Design, error) {
	idxs, err := sel.resolve(t)
	if err != nil {
		return nil, err
	}

	d := &Design{
		labels:  make([]string, 0, len(idxs)+1),
		columns: make([][]float64, 0, len(idxs)+1),
		numRows: t.numRows,
	}
	for _, idx := range idxs {
		d.labels = append(d.labels, t.names[idx])
		d.columns = append(d.columns, t.columns[idx])
	}

	if !addConstant {
		return d, nil
	}

	for i, col := range d.columns {
		if isNonzeroConstant(col) {
			logger.Warn().Str("column", d.labels[i]).Msg("design already has a constant column, intercept not added")
			return d, nil
		}
	}
	for _, label := range d.labels {
		if label == ConstantLabel {
			return nil, &DuplicateColumnError{Column: ConstantLabel}
		}
	}

	ones := make([]float64, d.numRows)
	floats.AddConst(1, ones)
	d.labels = append([]string{ConstantLabel}, d.labels...)
	d.columns = append([][]float64{ones}, d.columns...)
	d.intercept = true

	return d, nil
}

// Labels returns the column labels in matrix order.
func (d *Design) Labels() []string {
	return append([]string(nil), d.labels...)
}

// NumRows returns the number of observations.
func (d *Design) NumRows() int { return d.numRows }

// NumCols returns the number of columns, intercept included.
func (d *Design) NumCols() int { return len(d.labels) }

// HasIntercept reports whether an intercept column was added.
func (d *Design) HasIntercept() bool { return d.intercept }

// Column returns a copy of the i-th column.
func (d *Design) Column(i int) []float64 {
	return append([]float64(nil), d.columns[i]...)
}

// Dense returns the design as a rows x columns matrix, or nil when it has no rows or no columns.
func (d *Design) Dense() *mat.Dense {
	return d.denseExcept(-1)
}

// denseExcept builds the matrix of every column but skip.
func (d *Design) denseExcept(skip int) *mat.Dense {
	numCols := len(d.columns)
	if skip >= 0 && skip < numCols {
		numCols--
	}
	if d.numRows == 0 || numCols == 0 {
		return nil
	}

	m := mat.NewDense(d.numRows, numCols, nil)
	col := 0
	for i, c := range d.columns {
		if i == skip {
			continue
		}
		m.SetCol(col, c)
		col++
	}
	return m
}

// isNonzeroConstant reports whether all observations of col are the same non-zero value.
func isNonzeroConstant(col []float64) bool {
	if len(col) == 0 || col[0] == 0 {
		return false
	}
	for _, v := range col[1:] {
		if v != col[0] {
			return false
		}
	}
	return true
}
