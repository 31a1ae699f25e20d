package csvgen

import (
	"bytes"
	"context"
	"io"
	"math"
	"os"
	"slices"
)

// ShareTolerance is how far the sum of table shares may be from 1.
// Shares are float64, so exact equality fails for many harmless schemas.
const ShareTolerance = 1e-9

// ExportFile describes the contents of one generated file.
// One ExportFile is typically used to generate many files.
type ExportFile struct {
	tables   []*Table
	fileSize int
	opts     options
}

// TablePlan describes what one table contributes to a file.
type TablePlan struct {
	ID      string  `json:"id"`
	Share   float64 `json:"share"`
	RowSize int     `json:"row_size"`
	Rows    int     `json:"rows"`
	// Bytes is Rows*RowSize. Real output differs; see the package documentation.
	Bytes int `json:"nominal_bytes"`
}

// NewExportFile returns an ExportFile of fileSize bytes made of tables, in order.
// The shares of tables must sum to 1 within ShareTolerance.
func NewExportFile(tables []*Table, fileSize int, opts ...Option) (*ExportFile, error) {
	if fileSize < 0 {
		return nil, &FileSizeError{Size: fileSize}
	}

	var sum float64
	for _, t := range tables {
		sum += t.share
	}
	if math.Abs(sum-1) > ShareTolerance {
		return nil, &SumShareError{Sum: sum}
	}

	return &ExportFile{
		tables:   slices.Clone(tables),
		fileSize: fileSize,
		opts:     buildOptions(opts),
	}, nil
}

func (f *ExportFile) Tables() []*Table { return slices.Clone(f.tables) }
func (f *ExportFile) FileSize() int    { return f.fileSize }

// Plan reports the row count and nominal size of each table in one file.
func (f *ExportFile) Plan() []TablePlan {
	plans := make([]TablePlan, len(f.tables))
	for i, t := range f.tables {
		rows := t.RowCount(f.fileSize)
		plans[i] = TablePlan{
			ID:      t.idValue,
			Share:   t.share,
			RowSize: t.rowSize,
			Rows:    rows,
			Bytes:   rows * t.rowSize,
		}
	}
	return plans
}

// Generate returns the full contents of one file: each table's rows in
// declaration order. Every call generates new data unless WithSeed was given.
// It is GenerateStream with stream 0.
//
// The returned slice is joined from per-chunk blocks, so memory use peaks at
// about twice the file size while it is built. WriteFile avoids the join.
func (f *ExportFile) Generate(ctx context.Context) ([]byte, error) {
	return f.GenerateStream(ctx, 0)
}

// GenerateStream is like Generate, but under WithSeed each stream yields a
// different file and the same stream always yields the same file.
// Without WithSeed the stream is ignored.
func (f *ExportFile) GenerateStream(ctx context.Context, stream uint64) ([]byte, error) {
	buf, err := generate(ctx, f.tables, f.fileSize, stream, &f.opts)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile generates one file and writes it to path, truncating any existing file.
// Nothing is created if generation fails. The chunks are written in order
// without first being joined into one buffer.
func (f *ExportFile) WriteFile(ctx context.Context, path string) error {
	buf, err := generate(ctx, f.tables, f.fileSize, 0, &f.opts)
	if err != nil {
		return err
	}
	return writeFile(path, buf)
}

// WriteFile creates or truncates path and writes data with a single write.
func WriteFile(path string, data []byte) error {
	return writeFile(path, bytes.NewReader(data))
}

func writeFile(path string, src io.WriterTo) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := src.WriteTo(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
