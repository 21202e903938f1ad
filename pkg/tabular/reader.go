package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/ecarrenolozano/omnipath-secondary-adapter/pkg/types"
)

// Record is one validated row. Values are positional in schema column
// order; a nil value marks a NULL in a nullable column.
type Record struct {
	Line   int   // 1-based line number in the source, header included.
	Values []any // string, int64, float64, bool, or nil.
}

// Reader streams validated records out of a tab-separated file. The
// header is checked against the schema on construction; each Read
// converts one row at the declared column types.
type Reader struct {
	schema TableSchema
	cr     *csv.Reader
	order  []int // header position -> schema column index
	line   int
}

// NewReader wraps r, reads its header line, and checks it against the
// schema. Returns a joined error when the header does not present
// exactly the declared column set.
func NewReader(r io.Reader, schema TableSchema) (*Reader, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.LazyQuotes = true
	// Width mismatches are reported per line with ErrRowWidth instead of
	// csv's own field-count error.
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	order, err := schema.matchHeader(header)
	if err != nil {
		return nil, err
	}
	return &Reader{schema: schema, cr: cr, order: order, line: 1}, nil
}

// Read returns the next validated record, or io.EOF at end of input.
// A row that fails validation returns a joined error naming every bad
// cell; the reader stays usable for subsequent rows.
func (r *Reader) Read() (*Record, error) {
	row, err := r.cr.Read()
	if err == io.EOF {
		return nil, io.EOF
	}
	r.line++
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", r.line, err)
	}
	if len(row) != len(r.order) {
		return nil, fmt.Errorf("line %d: got %d fields, want %d: %w",
			r.line, len(row), len(r.order), types.ErrRowWidth)
	}

	var findings []error
	values := make([]any, len(r.schema.Columns))
	for pos, raw := range row {
		spec := r.schema.Columns[r.order[pos]]
		v, err := ParseCell(spec, raw)
		if err != nil {
			findings = append(findings, fmt.Errorf("line %d, column %q: %w", r.line, spec.Name, err))
			continue
		}
		values[r.order[pos]] = v
	}
	if err := errors.Join(findings...); err != nil {
		return nil, err
	}
	return &Record{Line: r.line, Values: values}, nil
}

// ParseCell converts one raw cell at the column's declared type. An
// empty cell yields nil when the column is nullable and ErrNotNullable
// otherwise. Booleans accept the pandas export spellings true/false,
// True/False, and 1/0.
func ParseCell(spec ColumnSpec, raw string) (any, error) {
	if raw == "" {
		if spec.Nullable {
			return nil, nil
		}
		return nil, types.ErrNotNullable
	}
	switch spec.Type {
	case types.TypeStr:
		return raw, nil
	case types.TypeInt:
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an int", types.ErrCellType, raw)
		}
		return v, nil
	case types.TypeFloat:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a float", types.ErrCellType, raw)
		}
		return v, nil
	case types.TypeBool:
		switch raw {
		case "true", "True", "1":
			return true, nil
		case "false", "False", "0":
			return false, nil
		default:
			return nil, fmt.Errorf("%w: %q is not a bool", types.ErrCellType, raw)
		}
	default:
		return nil, types.ErrInvalidPropertyType
	}
}

// ReadFile reads and validates every row of the tab-separated file at
// path. Returns the records only when the whole file validates; all
// findings are joined into one error otherwise.
func ReadFile(path string, schema TableSchema) ([]*Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open table: %w", err)
	}
	defer f.Close()

	r, err := NewReader(f, schema)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var records []*Record
	var findings []error
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			findings = append(findings, err)
			continue
		}
		records = append(records, rec)
	}
	if err := errors.Join(findings...); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// ValidateFile validates the file at path without retaining rows.
// Returns the number of valid data rows and a joined error over every
// finding.
func ValidateFile(path string, schema TableSchema) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open table: %w", err)
	}
	defer f.Close()

	r, err := NewReader(f, schema)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}

	var count int64
	var findings []error
	for {
		_, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			findings = append(findings, err)
			continue
		}
		count++
	}
	if err := errors.Join(findings...); err != nil {
		return count, fmt.Errorf("%s: %w", path, err)
	}
	return count, nil
}
