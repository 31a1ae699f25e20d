package csvgen

import (
	"errors"
	"fmt"
	"github.com/jordanwade90/csvgen/value"
)

var (
	// ErrExponentIsZero is returned by NewColumn for a Double column without fractional digits.
	ErrExponentIsZero = errors.New("exponent can not be zero for DOUBLE columns")

	// ErrNoColumns is returned by NewTable when no columns are given.
	ErrNoColumns = errors.New("table must have at least one column")

	// ErrEmptyRow is returned by NewTable when the nominal row width is zero.
	ErrEmptyRow = errors.New("table rows have zero nominal width")
)

// IncorrectExponentError is returned by NewColumn when a non-Double column has an exponent.
type IncorrectExponentError struct {
	Type ColumnType
}

func (e *IncorrectExponentError) Error() string {
	return fmt.Sprintf("exponent can only be set for DOUBLE columns, the type is %s", e.Type)
}

// ShareError is returned by NewTable when a share is outside (0, 1].
type ShareError struct {
	Share float64
}

func (e *ShareError) Error() string {
	return fmt.Sprintf("table share must be in (0, 1], it was %v", e.Share)
}

// SumShareError is returned by NewExportFile when table shares do not sum to 1.
type SumShareError struct {
	Sum float64
}

func (e *SumShareError) Error() string {
	return fmt.Sprintf("sum of table shares must equal 1, it was %v", e.Sum)
}

// FileSizeError is returned by NewExportFile for a negative file size.
type FileSizeError struct {
	Size int
}

func (e *FileSizeError) Error() string {
	return fmt.Sprintf("file size can not be negative, it was %d", e.Size)
}

// Errors returned while generating numbers. Column construction does not check
// numeric widths, so these surface from row generation.
type (
	SizeTooLargeError     = value.SizeTooLargeError
	ExponentTooLargeError = value.ExponentTooLargeError
)
