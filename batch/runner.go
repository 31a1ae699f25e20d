// Package batch sweeps an export schema over combinations of total size and
// file count, generating every file in parallel and storing it through a Sink.
package batch

import (
	"context"
	"errors"
	"fmt"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/jordanwade90/csvgen"
	"golang.org/x/sync/errgroup"
	"log/slog"
	"path"
	"runtime"
)

type Config struct {
	Logger *slog.Logger
	Clock  clockwork.Clock
	Sink   Sink
	Tables []*csvgen.Table

	// FileWorkers bounds how many files of one combination are generated at once.
	// Each file also fans out over its own row workers; see csvgen.WithWorkers.
	FileWorkers int
	Options     []csvgen.Option

	// OnFile, if set, is called after each file is stored. It may be called concurrently.
	OnFile func(key string)
}

func (cfg *Config) Validate() error {
	if cfg.Logger == nil {
		return errors.New("logger is required")
	}
	if cfg.Sink == nil {
		return errors.New("sink is required")
	}
	if len(cfg.Tables) == 0 {
		return errors.New("at least one table is required")
	}
	if cfg.FileWorkers < 0 {
		return errors.New("file workers must not be negative")
	}
	if cfg.FileWorkers == 0 {
		cfg.FileWorkers = runtime.GOMAXPROCS(0)
	}
	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}
	return nil
}

// Plan lists the total sizes and file counts to sweep. Every size is combined with every count.
type Plan struct {
	Sizes  []uint64
	Counts []int
}

func (p Plan) Validate() error {
	if len(p.Sizes) == 0 {
		return errors.New("at least one size is required")
	}
	if len(p.Counts) == 0 {
		return errors.New("at least one file count is required")
	}
	for _, c := range p.Counts {
		if c < 1 {
			return fmt.Errorf("file count must be positive, got %d", c)
		}
	}
	return nil
}

// Files returns the total number of files the plan generates.
func (p Plan) Files() int {
	n := 0
	for _, c := range p.Counts {
		n += c
	}
	return n * len(p.Sizes)
}

type Runner struct {
	log *slog.Logger
	cfg Config
}

func NewRunner(cfg Config) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Runner{log: cfg.Logger, cfg: cfg}, nil
}

// FileKey returns the key of file i of a combination.
func FileKey(totalSize uint64, count, fileSize, i int) string {
	return path.Join(combinationDir(totalSize, count), fmt.Sprintf("file_%d_%d_%d.txt", fileSize, count, i))
}

func combinationDir(totalSize uint64, count int) string {
	return fmt.Sprintf("%d_%s", count, SizeLabel(totalSize))
}

// Run generates every combination of the plan in turn and stores a manifest
// under ManifestKey. The first error aborts the run.
func (r *Runner) Run(ctx context.Context, plan Plan) (*Manifest, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	start := r.cfg.Clock.Now()
	m := &Manifest{
		RunID:     uuid.NewString(),
		StartedAt: start.UTC(),
	}
	r.log.Info("starting batch", "run_id", m.RunID, "files", plan.Files())

	for _, size := range plan.Sizes {
		for _, count := range plan.Counts {
			c, err := r.runCombination(ctx, size, count)
			if err != nil {
				return nil, err
			}
			m.Combinations = append(m.Combinations, *c)
		}
	}
	m.ElapsedSeconds = r.cfg.Clock.Since(start).Seconds()

	data, err := m.Marshal()
	if err != nil {
		return nil, fmt.Errorf("failed to encode manifest: %w", err)
	}
	if err := r.cfg.Sink.Put(ctx, ManifestKey, data); err != nil {
		return nil, fmt.Errorf("failed to store manifest: %w", err)
	}

	r.log.Info("finished batch", "run_id", m.RunID, "elapsed", r.cfg.Clock.Since(start))
	return m, nil
}

func (r *Runner) runCombination(ctx context.Context, totalSize uint64, count int) (*Combination, error) {
	fileSize := int(totalSize / uint64(count))
	file, err := csvgen.NewExportFile(r.cfg.Tables, fileSize, r.cfg.Options...)
	if err != nil {
		return nil, err
	}

	start := r.cfg.Clock.Now()
	c := &Combination{
		TotalSize: totalSize,
		Files:     count,
		FileSize:  fileSize,
		Dir:       combinationDir(totalSize, count),
		Keys:      make([]string, count),
		Tables:    file.Plan(),
	}
	r.log.Debug("generating combination", "total", humanize.IBytes(totalSize), "files", count, "file_size", humanize.IBytes(uint64(fileSize)))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.FileWorkers)
	for i := range count {
		key := FileKey(totalSize, count, fileSize, i)
		c.Keys[i] = key
		g.Go(func() error {
			data, err := file.GenerateStream(gctx, uint64(i))
			if err != nil {
				return fmt.Errorf("failed to generate %s: %w", key, err)
			}
			if err := r.cfg.Sink.Put(gctx, key, data); err != nil {
				return err
			}
			if r.cfg.OnFile != nil {
				r.cfg.OnFile(key)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	elapsed := r.cfg.Clock.Since(start)
	c.ElapsedSeconds = elapsed.Seconds()
	r.log.Info("generated combination", "total", humanize.IBytes(totalSize), "files", count, "elapsed", elapsed)
	return c, nil
}
