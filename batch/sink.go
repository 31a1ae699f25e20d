package batch

import (
	"bytes"
	"context"
	"fmt"
	"github.com/golang/snappy"
	"github.com/jordanwade90/csvgen"
	"os"
	"path/filepath"
)

// Sink stores generated files. Keys are slash-separated relative paths.
// Put may be called concurrently.
type Sink interface {
	Put(ctx context.Context, key string, data []byte) error
}

// DirSink writes files under a local directory, creating parent directories as needed.
type DirSink struct {
	root string
}

// NewDirSink creates root if it does not exist.
func NewDirSink(root string) (*DirSink, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &DirSink{root: root}, nil
}

func (s *DirSink) Root() string { return s.root }

func (s *DirSink) Put(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := filepath.Join(s.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", key, err)
	}
	if err := csvgen.WriteFile(path, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// SnappyExt is appended to keys stored through a SnappySink.
const SnappyExt = ".sz"

// SnappySink compresses data with the snappy framing format before passing it on.
type SnappySink struct {
	Next Sink
}

func (s SnappySink) Put(ctx context.Context, key string, data []byte) error {
	var buf bytes.Buffer
	w := snappy.NewBufferedWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to compress %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to compress %s: %w", key, err)
	}
	return s.Next.Put(ctx, key+SnappyExt, buf.Bytes())
}
