package csvgen

import "strconv"

// ColumnType is the semantic type of a Column.
type ColumnType uint8

const (
	String ColumnType = iota
	Long
	Double
	Date
)

// dateWidth is the nominal width of a Date value (YYYY-MM-DD).
const dateWidth = 10

var columnTypeNames = [...]string{
	String: "STRING",
	Long:   "LONG",
	Double: "DOUBLE",
	Date:   "DATE",
}

func (t ColumnType) String() string {
	if int(t) < len(columnTypeNames) {
		return columnTypeNames[t]
	}
	return "ColumnType(" + strconv.Itoa(int(t)) + ")"
}

// Column describes one column of a Table.
//
// Size is the number of characters for String columns and the number of digits
// for Long and Double columns; Date columns ignore it.
// Exponent is the number of fractional digits of a Double column.
type Column struct {
	typ      ColumnType
	size     uint8
	exponent uint8
}

// NewColumn validates the combination of type and exponent.
// Only Double columns may have an exponent, and they must have one.
// Size is not checked here; out-of-range numeric sizes fail when rows are generated.
func NewColumn(typ ColumnType, size, exponent uint8) (Column, error) {
	if typ != Double && exponent != 0 {
		return Column{}, &IncorrectExponentError{Type: typ}
	}
	if typ == Double && exponent == 0 {
		return Column{}, ErrExponentIsZero
	}
	return Column{typ: typ, size: size, exponent: exponent}, nil
}

func (c Column) Type() ColumnType { return c.typ }
func (c Column) Size() uint8      { return c.size }
func (c Column) Exponent() uint8  { return c.exponent }

// Width returns the nominal rendered width used to budget rows.
func (c Column) Width() int {
	if c.typ == Date {
		return dateWidth
	}
	return int(c.size)
}
