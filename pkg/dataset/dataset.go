// Package dataset loads a numeric series column from CSV and writes result
// columns back out. It is the data-loading collaborator of the smoothing
// core, which itself performs no I/O.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Options controls CSV parsing.
type Options struct {
	Column    string // header name of the value column; first column when headerless
	Delimiter rune   // field delimiter, ',' when zero
	HasHeader bool   // first row holds column names
}

// DefaultOptions returns the options for a comma-separated file with a
// header row and a "value" column.
func DefaultOptions() *Options {
	return &Options{
		Column:    "value",
		Delimiter: ',',
		HasHeader: true,
	}
}

// Load reads one numeric column from the CSV file at path.
func Load(path string, opts *Options) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadReader(f, opts)
}

// LoadReader reads one numeric column from r. Blank and NA cells are
// skipped; any other unparseable cell is an error.
func LoadReader(r io.Reader, opts *Options) ([]float64, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	cr := csv.NewReader(r)
	if opts.Delimiter != 0 {
		cr.Comma = opts.Delimiter
	}
	cr.TrimLeadingSpace = true

	col := 0
	if opts.HasHeader {
		header, err := cr.Read()
		if err != nil {
			return nil, fmt.Errorf("dataset: read header: %w", err)
		}
		col = -1
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), opts.Column) {
				col = i
				break
			}
		}
		if col == -1 {
			return nil, fmt.Errorf("dataset: column %q not found in header %v", opts.Column, header)
		}
	}

	var values []float64
	row := 0
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: %w", err)
		}
		row++
		if col >= len(record) {
			return nil, fmt.Errorf("dataset: row %d has %d fields, value column is %d", row, len(record), col+1)
		}
		cell := strings.TrimSpace(record[col])
		if cell == "" || cell == "NA" || cell == "NaN" || cell == "null" {
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, fmt.Errorf("dataset: row %d: %w", row, err)
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return nil, errors.New("dataset: no numeric values found")
	}
	return values, nil
}

// Save writes aligned columns to the CSV file at path, header row first.
func Save(path string, header []string, cols [][]float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return SaveWriter(f, header, cols)
}

// SaveWriter writes aligned columns to w, header row first. All columns
// must share one length.
func SaveWriter(w io.Writer, header []string, cols [][]float64) error {
	if len(header) != len(cols) {
		return fmt.Errorf("dataset: %d header names for %d columns", len(header), len(cols))
	}
	if len(cols) == 0 {
		return errors.New("dataset: no columns")
	}
	n := len(cols[0])
	for _, c := range cols[1:] {
		if len(c) != n {
			return fmt.Errorf("dataset: column lengths differ: %d vs %d", n, len(c))
		}
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	record := make([]string, len(cols))
	for i := 0; i < n; i++ {
		for j, c := range cols {
			record[j] = strconv.FormatFloat(c[i], 'f', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
