package vif

import (
	"math"
)

// Table is a read-only set of named numeric columns.
// Rows are observations, columns are features.
type Table struct {
	names   []string
	columns [][]float64 // 各要素が1列、列ごとの観測値
	index   map[string]int
	numRows int
}

// NewTable builds a table from column names and column-major values.
// The values are copied so later changes by the caller do not leak in.
func NewTable(names []string, columns [][]float64) (*Table, error) {
	if len(names) != len(columns) {
		return nil, ErrRaggedColumns
	}

	t := &Table{
		names:   make([]string, len(names)),
		columns: make([][]float64, len(columns)),
		index:   make(map[string]int, len(names)),
	}
	copy(t.names, names)

	for i, name := range names {
		if _, ok := t.index[name]; ok {
			return nil, &DuplicateColumnError{Column: name}
		}
		t.index[name] = i

		if i == 0 {
			t.numRows = len(columns[0])
		} else if len(columns[i]) != t.numRows {
			return nil, ErrRaggedColumns
		}

		for row, v := range columns[i] {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, &NonFiniteValueError{Column: name, Row: row, Value: v}
			}
		}
		t.columns[i] = append([]float64(nil), columns[i]...)
	}

	return t, nil
}

// Names returns the column names in table order.
func (t *Table) Names() []string {
	return append([]string(nil), t.names...)
}

// NumRows returns the number of observations.
func (t *Table) NumRows() int {
	return t.numRows
}

// NumCols returns the number of columns.
func (t *Table) NumCols() int {
	return len(t.names)
}

// Column returns a copy of the named column.
func (t *Table) Column(name string) ([]float64, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return append([]float64(nil), t.columns[i]...), true
}

// Has reports whether the table has a column with the given name.
func (t *Table) Has(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Selection is an ordered request for columns of a table.
// A nil *Selection stands for every column in table order.
type Selection struct {
	Columns []string
}

// Columns creates a selection of the given column names, in the given order.
func Columns(names ...string) *Selection {
	if names == nil {
		names = []string{}
	}
	return &Selection{Columns: names}
}

// resolve validates the selection against the table and returns the column indexes it refers to.
func (s *Selection) resolve(t *Table) ([]int, error) {
	if s == nil {
		idxs := make([]int, len(t.names))
		for i := range idxs {
			idxs[i] = i
		}
		return idxs, nil
	}

	idxs := make([]int, 0, len(s.Columns))
	for _, name := range s.Columns {
		i, ok := t.index[name]
		if !ok {
			return nil, &ColumnNotFoundError{Column: name, Available: t.Names()}
		}
		idxs = append(idxs, i)
	}
	return idxs, nil
}
