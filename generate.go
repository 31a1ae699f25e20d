package csvgen

import (
	"context"
	"github.com/jordanwade90/csvgen/internal/blockbuf"
	"github.com/jordanwade90/csvgen/record"
	"golang.org/x/sync/errgroup"
	"math/rand/v2"
)

// chunk is one unit of work: a run of consecutive rows of one table.
type chunk struct {
	table *Table
	// tableIndex and index identify the chunk's random source when seeded.
	tableIndex int
	index      int
	rows       int
}

func (c chunk) generate(r *rand.Rand) ([]byte, error) {
	rec := record.New(c.table.delimiter)
	p := make([]byte, 0, c.rows*(c.table.rowSize+1))

	var err error
	for range c.rows {
		if p, err = c.table.appendRow(p, rec, r); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// plan cuts every table's rows into chunks, in table order then row order.
func plan(tables []*Table, fileSize int, o *options) []chunk {
	var chunks []chunk
	for ti, t := range tables {
		rows := t.RowCount(fileSize)
		o.log.Debug("planned table", "id", t.idValue, "rows", rows, "rowSize", t.rowSize, "fileSize", fileSize)

		for ci, first := 0, 0; first < rows; ci, first = ci+1, first+o.chunkRows {
			chunks = append(chunks, chunk{
				table:      t,
				tableIndex: ti,
				index:      ci,
				rows:       min(o.chunkRows, rows-first),
			})
		}
	}
	return chunks
}

// generate runs every chunk on a pool of o.workers goroutines and gathers the
// results in plan order. The first error cancels the remaining chunks.
func generate(ctx context.Context, tables []*Table, fileSize int, stream uint64, o *options) (*blockbuf.Buffer, error) {
	chunks := plan(tables, fileSize, o)
	buf := blockbuf.New(len(chunks))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i, c := range chunks {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			block, err := c.generate(o.source(stream, c.tableIndex, c.index))
			if err != nil {
				return err
			}
			buf.Put(i, block)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return buf, nil
}
