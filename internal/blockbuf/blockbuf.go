// Package blockbuf gathers blocks produced out of order by concurrent workers
// and joins them in index order.
package blockbuf

import "io"

// Buffer holds a fixed number of block slots.
// Concurrent Put calls are safe as long as each index is written by one goroutine,
// and reads happen only after all writers are done.
type Buffer struct {
	blocks [][]byte
}

// New returns a Buffer with n empty slots.
func New(n int) *Buffer {
	return &Buffer{blocks: make([][]byte, n)}
}

// Put stores block at index i. Buffer retains block.
func (b *Buffer) Put(i int, block []byte) {
	b.blocks[i] = block
}

// Slots returns the number of slots.
func (b *Buffer) Slots() int {
	return len(b.blocks)
}

// Len returns the total length of the stored blocks.
func (b *Buffer) Len() int {
	n := 0
	for _, block := range b.blocks {
		n += len(block)
	}
	return n
}

// AppendTo appends every block to p in index order. Empty slots contribute nothing.
func (b *Buffer) AppendTo(p []byte) []byte {
	for _, block := range b.blocks {
		p = append(p, block...)
	}
	return p
}

// Bytes returns the joined blocks in a newly allocated slice.
// The blocks stay referenced until b is dropped, so the caller briefly holds
// two copies of the data. Use WriteTo to avoid the copy.
func (b *Buffer) Bytes() []byte {
	if len(b.blocks) == 1 {
		return b.blocks[0]
	}
	return b.AppendTo(make([]byte, 0, b.Len()))
}

// WriteTo writes every block to w in index order, one Write per non-empty block.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for _, block := range b.blocks {
		if len(block) == 0 {
			continue
		}
		m, err := w.Write(block)
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}
