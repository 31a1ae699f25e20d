package digits

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPow10(t *testing.T) {
	t.Parallel()

	require.Equal(t, uint64(1), Pow10(0))
	require.Equal(t, uint64(1000), Pow10(3))
	require.Equal(t, uint64(10_000_000_000_000_000_000), Pow10(MaxLength))
	require.Panics(t, func() { Pow10(MaxLength + 1) })
}

func TestAppend(t *testing.T) {
	t.Parallel()

	require.Equal(t, "x-42", string(Append([]byte("x"), -42)))
	require.Equal(t, "7", string(Append(nil, uint16(7))))
}

func TestAppendPoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		x    uint64
		frac int
		want string
	}{
		{1234567890, 0, "1234567890"},
		{1234567890, 2, "12345678.90"},
		{1234567890, 9, "1.234567890"},
		{1234, 4, ".1234"},
		{12, 5, ".12"},
	}
	for _, tt := range tests {
		got := AppendPoint([]byte("|"), tt.x, tt.frac)
		require.Equal(t, "|"+tt.want, string(got), "AppendPoint(%d, %d)", tt.x, tt.frac)
	}
}
