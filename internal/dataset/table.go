// Package dataset loads and writes the tabular article data the pipeline
// operates on. A Table keeps rows in input order and tolerates ragged or
// incomplete records; schema problems are reported, never fatal.
package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"

	"github.com/statloom/newsstats-cli/internal/utils"
)

// ErrNotFound indicates the input file does not exist. Callers use it to
// distinguish a missing input (exit status 2) from other failures.
var ErrNotFound = errors.New("input file not found")

// ExpectedColumns is the column set the article dataset is supposed to carry.
// Absent columns are a warning, not an error: downstream code treats them as
// entirely null.
var ExpectedColumns = []string{
	"title", "authors", "source", "url", "published", "language", "sentiment", "body",
}

// Table is an ordered tabular dataset: a header row plus data rows in input
// order. Extra columns pass through untouched.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Load reads a comma-separated file with a header row. Short records are
// padded to header width so every row has a cell for every column.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return &Table{}, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	t := &Table{Headers: header}
	ncol := len(header)

	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", len(t.Rows)+1, err)
		}
		if len(rec) < ncol {
			tmp := make([]string, ncol)
			copy(tmp, rec)
			rec = tmp
		}
		row := make([]string, len(rec))
		copy(row, rec)
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.Rows) }

// ColumnIndex returns the position of the named column, or -1 if absent.
func (t *Table) ColumnIndex(name string) int {
	for i, h := range t.Headers {
		if h == name {
			return i
		}
	}
	return -1
}

// Column returns the per-row values of the named column. ok is false when the
// column is absent from the header; callers then treat every cell as null.
func (t *Table) Column(name string) (values []string, ok bool) {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil, false
	}
	values = make([]string, len(t.Rows))
	for i, row := range t.Rows {
		if idx < len(row) {
			values[i] = row[idx]
		}
	}
	return values, true
}

// MissingExpected reports expected columns absent from the header, sorted.
func (t *Table) MissingExpected() []string {
	var missing []string
	for _, name := range ExpectedColumns {
		if t.ColumnIndex(name) < 0 {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	return missing
}

// AppendColumn adds a derived column after the existing ones. The value count
// must match the row count.
func (t *Table) AppendColumn(name string, values []string) error {
	if len(values) != len(t.Rows) {
		return fmt.Errorf("append column %s: %d values for %d rows", name, len(values), len(t.Rows))
	}
	t.Headers = append(t.Headers, name)
	for i := range t.Rows {
		t.Rows[i] = append(t.Rows[i], values[i])
	}
	return nil
}

// SetColumn overwrites an existing column's values, or appends the column if
// absent. Re-running the pipeline over its own output therefore reproduces
// the same schema instead of accumulating duplicates.
func (t *Table) SetColumn(name string, values []string) error {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return t.AppendColumn(name, values)
	}
	if len(values) != len(t.Rows) {
		return fmt.Errorf("set column %s: %d values for %d rows", name, len(values), len(t.Rows))
	}
	for i := range t.Rows {
		t.Rows[i][idx] = values[i]
	}
	return nil
}

// Write writes the table comma-separated, header first, atomically.
func Write(path string, t *Table) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(t.Headers); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, row := range t.Rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return utils.SafeWriteFile(path, buf.Bytes())
}
