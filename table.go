package csvgen

import (
	"context"
	"github.com/jordanwade90/csvgen/record"
	"math"
	"math/rand/v2"
	"slices"
)

// Table describes the rows of one table in an export file.
// Tables are immutable and may be shared by several ExportFiles.
type Table struct {
	idValue   string
	columns   []Column
	delimiter string
	share     float64
	rowSize   int
}

// NewTable returns a Table whose rows start with idValue followed by one value per column,
// separated by delimiter. share is the fraction of each file's bytes the table occupies.
func NewTable(idValue string, columns []Column, delimiter string, share float64) (*Table, error) {
	if len(columns) == 0 {
		return nil, ErrNoColumns
	}
	if !(share > 0 && share <= 1) {
		return nil, &ShareError{Share: share}
	}

	rowSize := len(idValue) + (len(columns)-1)*len(delimiter)
	for _, c := range columns {
		rowSize += c.Width()
	}
	if rowSize == 0 {
		return nil, ErrEmptyRow
	}

	return &Table{
		idValue:   idValue,
		columns:   slices.Clone(columns),
		delimiter: delimiter,
		share:     share,
		rowSize:   rowSize,
	}, nil
}

func (t *Table) IDValue() string   { return t.idValue }
func (t *Table) Delimiter() string { return t.delimiter }
func (t *Table) Share() float64    { return t.share }
func (t *Table) Columns() []Column { return slices.Clone(t.columns) }

// RowSize returns the nominal width of one row in bytes.
//
// It counts the identifier, the declared width of every column (10 for dates)
// and one delimiter between each pair of columns. It does not count the
// newline or string quotes, and assumes dates are zero-padded, which they are not.
func (t *Table) RowSize() int {
	return t.rowSize
}

// RowCount returns the number of rows the table contributes to a file of fileSize bytes.
func (t *Table) RowCount(fileSize int) int {
	tableSize := int(math.Ceil(float64(fileSize) * t.share))
	return tableSize / t.rowSize
}

// AppendRow appends one generated row, including its newline, to p.
// A nil r uses a fresh unseeded source.
func (t *Table) AppendRow(p []byte, r *rand.Rand) ([]byte, error) {
	if r == nil {
		r = newSource()
	}
	return t.appendRow(p, record.New(t.delimiter), r)
}

// GenerateRow is like AppendRow but returns the row as a string.
func (t *Table) GenerateRow(r *rand.Rand) (string, error) {
	row, err := t.AppendRow(nil, r)
	if err != nil {
		return "", err
	}
	return string(row), nil
}

func (t *Table) appendRow(p []byte, rec *record.Record, r *rand.Rand) ([]byte, error) {
	rec.Reset()
	rec.AppendLiteral(t.idValue)
	for _, c := range t.columns {
		switch c.typ {
		case String:
			rec.AppendString(r, c.size)
		case Long, Double:
			if err := rec.AppendNumber(r, c.size, c.exponent); err != nil {
				return p, err
			}
		case Date:
			rec.AppendDate(r)
		}
	}
	return rec.AppendTo(p), nil
}

// Generate returns RowCount(fileSize) rows of this table.
// Rows are generated in parallel and returned in row order;
// if any row fails, Generate returns that error and no output.
func (t *Table) Generate(ctx context.Context, fileSize int, opts ...Option) ([]byte, error) {
	o := buildOptions(opts)
	buf, err := generate(ctx, []*Table{t}, fileSize, 0, &o)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
