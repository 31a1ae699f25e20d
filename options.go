package csvgen

import (
	"io"
	"log/slog"
	"math/rand/v2"
	"runtime"
)

// DefaultChunkRows is the number of rows generated by one unit of work.
const DefaultChunkRows = 4096

// An Option configures generation.
type Option func(*options)

type options struct {
	workers   int
	chunkRows int
	seed      uint64
	seeded    bool
	log       *slog.Logger
}

// WithWorkers bounds the number of goroutines generating rows.
// The default is runtime.GOMAXPROCS(0). Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithChunkRows sets how many rows one unit of work generates.
// Values below 1 are ignored.
func WithChunkRows(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.chunkRows = n
		}
	}
}

// WithSeed makes generation reproducible.
// Seeded output depends on the chunk size and the stream but not on the number
// of workers. See ExportFile.GenerateStream.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithLogger sets the logger used for debug output about planned tables.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{
		workers:   runtime.GOMAXPROCS(0),
		chunkRows: DefaultChunkRows,
		log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// source returns the random source for one chunk of one table in one stream.
// The stream occupies the high half of the second PCG word, so distinct
// (stream, chunk) pairs below 2^32 never share a source.
func (o *options) source(stream uint64, table, chunk int) *rand.Rand {
	if !o.seeded {
		return newSource()
	}
	return rand.New(rand.NewPCG(o.seed^(uint64(table)*0x9e3779b97f4a7c15), stream<<32|uint64(uint32(chunk))))
}

func newSource() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
