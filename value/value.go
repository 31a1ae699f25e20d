// Package value generates random textual values for delimited exports.
//
// Every generator draws from the *rand.Rand it is given and keeps no state of its own,
// so callers decide whether values are reproducible by how they seed that source.
// Give each goroutine its own *rand.Rand; they are not safe for concurrent use.
package value

import (
	"fmt"
	"github.com/jordanwade90/csvgen/internal/digits"
	"math/rand/v2"
)

// MaxSize is the widest number Number can generate.
const MaxSize = digits.MaxLength

const (
	alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

	minYear = 1900
	maxYear = 9999
	maxDay  = 28
)

// SizeTooLargeError is returned when a number is requested with a width outside [1, MaxSize].
type SizeTooLargeError struct {
	Size uint8
}

func (e *SizeTooLargeError) Error() string {
	return fmt.Sprintf("size can only be in interval [1, %d], it was %d", MaxSize, e.Size)
}

// ExponentTooLargeError is returned when a number would need more fractional digits than it has digits.
type ExponentTooLargeError struct {
	Size     uint8
	Exponent uint8
}

func (e *ExponentTooLargeError) Error() string {
	return fmt.Sprintf("exponent can not be larger than size, size was %d and exponent was %d", e.Size, e.Exponent)
}

// AppendNumber appends a random number with exactly size digits and no leading zero.
// When exponent is nonzero a decimal point is placed exponent digits from the right,
// so the result is size+1 bytes long.
func AppendNumber(buf []byte, r *rand.Rand, size, exponent uint8) ([]byte, error) {
	if size < 1 || size > MaxSize {
		return buf, &SizeTooLargeError{Size: size}
	}
	if exponent > size {
		return buf, &ExponentTooLargeError{Size: size, Exponent: exponent}
	}

	lo := digits.Pow10(int(size) - 1)
	hi := digits.Pow10(int(size))
	return digits.AppendPoint(buf, lo+r.Uint64N(hi-lo), int(exponent)), nil
}

// Number is like AppendNumber but returns a string.
func Number(r *rand.Rand, size, exponent uint8) (string, error) {
	buf, err := AppendNumber(make([]byte, 0, int(size)+1), r, size, exponent)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// AppendString appends size random alphanumeric characters wrapped in double quotes.
func AppendString(buf []byte, r *rand.Rand, size uint8) []byte {
	buf = append(buf, '"')
	for range size {
		buf = append(buf, alphanumeric[r.IntN(len(alphanumeric))])
	}
	return append(buf, '"')
}

func String(r *rand.Rand, size uint8) string {
	return string(AppendString(make([]byte, 0, int(size)+2), r, size))
}

// AppendDate appends a random date formatted as Y-M-D without zero padding.
// Days stop at 28 so every month is valid.
func AppendDate(buf []byte, r *rand.Rand) []byte {
	buf = digits.Append(buf, minYear+r.IntN(maxYear-minYear+1))
	buf = append(buf, '-')
	buf = digits.Append(buf, 1+r.IntN(12))
	buf = append(buf, '-')
	return digits.Append(buf, 1+r.IntN(maxDay))
}

func Date(r *rand.Rand) string {
	return string(AppendDate(make([]byte, 0, 10), r))
}
