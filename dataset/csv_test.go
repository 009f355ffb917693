package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anyappinc/vif"
)

func TestReadCSV(t *testing.T) {
	in := "a, b ,c\n1,2,3\n4, 5,6.5\n-1,0,1e3\n"

	tbl, err := ReadCSV(strings.NewReader(in), Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, tbl.Names())
	assert.Equal(t, 3, tbl.NumRows())
	c, ok := tbl.Column("c")
	require.True(t, ok)
	assert.Equal(t, []float64{3, 6.5, 1000}, c)
}

func TestReadCSV_Semicolon(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader("x;y\n1;2\n"), Options{Comma: ';'})
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, tbl.Names())
}

func TestReadCSV_HeaderOnly(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader("a,b\n"), Options{})
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.NumRows())
	assert.Equal(t, 2, tbl.NumCols())
}

func TestReadCSV_Errors(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""), Options{})
	assert.ErrorIs(t, err, ErrNoHeader)

	_, err = ReadCSV(strings.NewReader("a,b\n1,2\n3,x\n"), Options{})
	var pErr *ParseError
	require.True(t, errors.As(err, &pErr))
	assert.Equal(t, 3, pErr.Line)
	assert.Equal(t, "b", pErr.Column)
	assert.Equal(t, "x", pErr.Value)

	_, err = ReadCSV(strings.NewReader("a,b\n1,2\n3\n"), Options{})
	assert.Error(t, err)

	_, err = ReadCSV(strings.NewReader("a,a\n1,2\n"), Options{})
	assert.ErrorIs(t, err, &vif.DuplicateColumnError{})

	_, err = ReadCSV(strings.NewReader("a\nNaN\n"), Options{})
	assert.ErrorIs(t, err, &vif.NonFiniteValueError{})
}

func TestLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n1,2\n3,4\n"), 0o644))

	tbl, err := LoadCSV(path, Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.NumRows())

	_, err = LoadCSV(filepath.Join(t.TempDir(), "missing.csv"), Options{})
	assert.ErrorIs(t, err, os.ErrNotExist)
}
