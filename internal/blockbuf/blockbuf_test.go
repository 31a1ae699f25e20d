package blockbuf

import (
	"bytes"
	"errors"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuffer_OrderIndependentOfPutOrder(t *testing.T) {
	t.Parallel()

	b := New(4)
	b.Put(3, []byte("d"))
	b.Put(0, []byte("a"))
	b.Put(2, []byte("cc"))
	b.Put(1, []byte("b"))

	require.Equal(t, 4, b.Slots())
	require.Equal(t, 5, b.Len())
	require.Equal(t, "abccd", string(b.Bytes()))
}

func TestBuffer_EmptySlots(t *testing.T) {
	t.Parallel()

	b := New(3)
	b.Put(1, []byte("x"))
	require.Equal(t, "x", string(b.Bytes()))
	require.Empty(t, New(0).Bytes())
}

func TestBuffer_ConcurrentPut(t *testing.T) {
	t.Parallel()

	const n = 100
	b := New(n)
	var want []byte
	var wg sync.WaitGroup
	for i := n - 1; i >= 0; i-- {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.Put(i, []byte(strconv.Itoa(i)+","))
		}()
	}
	for i := 0; i < n; i++ {
		want = append(want, strconv.Itoa(i)+","...)
	}
	wg.Wait()

	require.Equal(t, string(want), string(b.Bytes()))
}

func TestBuffer_WriteTo(t *testing.T) {
	t.Parallel()

	b := New(4)
	b.Put(2, []byte("cc"))
	b.Put(0, []byte("a"))
	b.Put(3, []byte("d"))

	var out bytes.Buffer
	n, err := b.WriteTo(&out)
	require.NoError(t, err)
	require.Equal(t, int64(4), n)
	require.Equal(t, string(b.Bytes()), out.String())
}

type shortWriter struct{ left int }

func (w *shortWriter) Write(p []byte) (int, error) {
	if len(p) > w.left {
		n := w.left
		w.left = 0
		return n, errors.New("disk full")
	}
	w.left -= len(p)
	return len(p), nil
}

func TestBuffer_WriteTo_Error(t *testing.T) {
	t.Parallel()

	b := New(3)
	b.Put(0, []byte("aaa"))
	b.Put(1, []byte("bbb"))
	b.Put(2, []byte("ccc"))

	n, err := b.WriteTo(&shortWriter{left: 4})
	require.EqualError(t, err, "disk full")
	require.Equal(t, int64(4), n)
}

func TestBuffer_Bytes_SingleBlockNotCopied(t *testing.T) {
	t.Parallel()

	block := []byte("only")
	b := New(1)
	b.Put(0, block)
	require.Same(t, &block[0], &b.Bytes()[0])
}
