// Package dataset loads tables from delimited text files.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/anyappinc/vif"
)

// ErrNoHeader signals that the input has no header record.
var ErrNoHeader = errors.New("missing header record")

// ParseError locates a cell that is not a number.
type ParseError struct {
	Line   int // 1-based, header included
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d, column %q: cannot parse %q as a number", e.Line, e.Column, e.Value)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Options controls ReadCSV.
type Options struct {
	// Comma is the field delimiter; 0 means ','.
	Comma rune
}

// ReadCSV reads a table whose first record names the columns and whose other records are numbers.
func ReadCSV(r io.Reader, opts Options) (*vif.Table, error) {
	cr := csv.NewReader(r)
	if opts.Comma != 0 {
		cr.Comma = opts.Comma
	}
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	} else if err != nil {
		return nil, err
	}
	names := make([]string, len(header))
	for i, h := range header {
		names[i] = strings.TrimSpace(h)
	}

	columns := make([][]float64, len(names))
	line := 1
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, err
		}
		line++

		for i, cell := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, &ParseError{Line: line, Column: names[i], Value: cell, Err: err}
			}
			columns[i] = append(columns[i], v)
		}
	}

	return vif.NewTable(names, columns)
}

// LoadCSV reads the file at path with ReadCSV.
func LoadCSV(path string, opts Options) (*vif.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := ReadCSV(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
