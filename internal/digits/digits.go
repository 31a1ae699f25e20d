// Package digits formats fixed-width decimal integers.
package digits

import (
	"golang.org/x/exp/constraints"
	"strconv"
)

// MaxLength is the widest decimal width whose upper bound 10^MaxLength still fits in a uint64.
const MaxLength = 19

var pow10 = [MaxLength + 1]uint64{
	1,
	10,
	100,
	1_000,
	10_000,
	100_000,
	1_000_000,
	10_000_000,
	100_000_000,
	1_000_000_000,
	10_000_000_000,
	100_000_000_000,
	1_000_000_000_000,
	10_000_000_000_000,
	100_000_000_000_000,
	1_000_000_000_000_000,
	10_000_000_000_000_000,
	100_000_000_000_000_000,
	1_000_000_000_000_000_000,
	10_000_000_000_000_000_000,
}

// Pow10 returns 10^n. It panics unless 0 <= n <= MaxLength.
func Pow10(n int) uint64 {
	return pow10[n]
}

func Append[T constraints.Integer](buf []byte, x T) []byte {
	if x < 0 {
		return strconv.AppendInt(buf, int64(x), 10)
	}
	return strconv.AppendUint(buf, uint64(x), 10)
}

// AppendPoint appends the decimal digits of x with a decimal point inserted
// frac digits from the right. With frac == 0 no point is written.
// If frac is at least the digit count the point leads the digits.
func AppendPoint[T constraints.Unsigned](buf []byte, x T, frac int) []byte {
	start := len(buf)
	buf = strconv.AppendUint(buf, uint64(x), 10)
	if frac <= 0 {
		return buf
	}

	pos := max(len(buf)-frac, start)
	buf = append(buf, 0)
	copy(buf[pos+1:], buf[pos:])
	buf[pos] = '.'
	return buf
}
