package batch

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/jordanwade90/csvgen"
	"github.com/stretchr/testify/require"
)

type memSink struct {
	mu    sync.Mutex
	files map[string][]byte
	fail  func(key string) error
}

func newMemSink() *memSink {
	return &memSink{files: make(map[string][]byte)}
}

func (s *memSink) Put(ctx context.Context, key string, data []byte) error {
	if s.fail != nil {
		if err := s.fail(key); err != nil {
			return err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[key] = data
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testTables(t *testing.T) []*csvgen.Table {
	t.Helper()
	str, err := csvgen.NewColumn(csvgen.String, 8, 0)
	require.NoError(t, err)
	date, err := csvgen.NewColumn(csvgen.Date, 0, 0)
	require.NoError(t, err)
	long, err := csvgen.NewColumn(csvgen.Long, 6, 0)
	require.NoError(t, err)

	a, err := csvgen.NewTable("A", []csvgen.Column{str, date}, "|", 0.6)
	require.NoError(t, err)
	b, err := csvgen.NewTable("B", []csvgen.Column{long}, "|", 0.4)
	require.NoError(t, err)
	return []*csvgen.Table{a, b}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	t.Run("requires logger, sink and tables", func(t *testing.T) {
		t.Parallel()

		cfg := Config{}
		require.Error(t, cfg.Validate())
		cfg.Logger = testLogger()
		require.Error(t, cfg.Validate())
		cfg.Sink = newMemSink()
		require.Error(t, cfg.Validate())
		cfg.Tables = testTables(t)
		require.NoError(t, cfg.Validate())
	})

	t.Run("fills defaults", func(t *testing.T) {
		t.Parallel()

		cfg := Config{Logger: testLogger(), Sink: newMemSink(), Tables: testTables(t)}
		require.NoError(t, cfg.Validate())
		require.NotNil(t, cfg.Clock)
		require.Positive(t, cfg.FileWorkers)
	})
}

func TestPlan_Validate(t *testing.T) {
	t.Parallel()

	require.Error(t, Plan{}.Validate())
	require.Error(t, Plan{Sizes: []uint64{100}}.Validate())
	require.Error(t, Plan{Sizes: []uint64{100}, Counts: []int{0}}.Validate())
	require.NoError(t, Plan{Sizes: []uint64{100}, Counts: []int{1, 2}}.Validate())
	require.Equal(t, 6, Plan{Sizes: []uint64{100, 200}, Counts: []int{1, 2}}.Files())
}

func TestRunner_Run(t *testing.T) {
	t.Parallel()

	sink := newMemSink()
	var stored atomic.Int32
	runner, err := NewRunner(Config{
		Logger:      testLogger(),
		Clock:       clockwork.NewFakeClock(),
		Sink:        sink,
		Tables:      testTables(t),
		FileWorkers: 3,
		Options:     []csvgen.Option{csvgen.WithChunkRows(5)},
		OnFile:      func(string) { stored.Add(1) },
	})
	require.NoError(t, err)

	plan := Plan{Sizes: []uint64{10_000, 30_000}, Counts: []int{1, 4}}
	m, err := runner.Run(context.Background(), plan)
	require.NoError(t, err)

	require.Equal(t, int32(plan.Files()), stored.Load())
	require.Len(t, sink.files, plan.Files()+1)
	require.Contains(t, sink.files, ManifestKey)
	require.NotEmpty(t, m.RunID)
	require.Len(t, m.Combinations, 4)

	c := m.Combinations[3]
	require.Equal(t, uint64(30_000), c.TotalSize)
	require.Equal(t, 4, c.Files)
	require.Equal(t, 7_500, c.FileSize)
	require.Equal(t, "4_30000B", c.Dir)
	require.Equal(t, "4_30000B/file_7500_4_3.txt", c.Keys[3])

	for _, key := range c.Keys {
		data, ok := sink.files[key]
		require.True(t, ok, key)

		lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
		rows := 0
		for _, p := range c.Tables {
			rows += p.Rows
		}
		require.Len(t, lines, rows)
		require.True(t, strings.HasPrefix(lines[0], "A|"))
		require.True(t, strings.HasPrefix(lines[len(lines)-1], "B|"))
	}

	stored2, err := ReadManifest(sink.files[ManifestKey])
	require.NoError(t, err)
	require.Equal(t, m.RunID, stored2.RunID)
	require.Equal(t, m.Combinations, stored2.Combinations)
}

func TestRunner_Run_SeededFilesDiffer(t *testing.T) {
	t.Parallel()

	run := func() (*Combination, map[string][]byte) {
		sink := newMemSink()
		runner, err := NewRunner(Config{
			Logger:      testLogger(),
			Clock:       clockwork.NewFakeClock(),
			Sink:        sink,
			Tables:      testTables(t),
			FileWorkers: 3,
			Options:     []csvgen.Option{csvgen.WithSeed(42)},
		})
		require.NoError(t, err)

		m, err := runner.Run(context.Background(), Plan{Sizes: []uint64{30_000}, Counts: []int{3}})
		require.NoError(t, err)
		require.Len(t, m.Combinations, 1)
		return m.Combinations[0], sink.files
	}

	c, first := run()
	require.Len(t, c.Keys, 3)
	for i, a := range c.Keys {
		for _, b := range c.Keys[i+1:] {
			require.NotEqual(t, first[a], first[b], "%s and %s", a, b)
		}
	}

	_, second := run()
	for _, key := range c.Keys {
		require.Equal(t, first[key], second[key], key)
	}
}

func TestRunner_Run_SinkError(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	sink := newMemSink()
	sink.fail = func(key string) error {
		if strings.HasSuffix(key, "_2.txt") {
			return errBoom
		}
		return nil
	}

	runner, err := NewRunner(Config{Logger: testLogger(), Sink: sink, Tables: testTables(t)})
	require.NoError(t, err)

	_, err = runner.Run(context.Background(), Plan{Sizes: []uint64{5_000}, Counts: []int{4}})
	require.ErrorIs(t, err, errBoom)
	require.NotContains(t, sink.files, ManifestKey)
}

func TestRunner_Run_GenerationError(t *testing.T) {
	t.Parallel()

	bad, err := csvgen.NewColumn(csvgen.Long, 0, 0)
	require.NoError(t, err)
	tbl, err := csvgen.NewTable("X", []csvgen.Column{bad}, "|", 1)
	require.NoError(t, err)

	sink := newMemSink()
	runner, err := NewRunner(Config{Logger: testLogger(), Sink: sink, Tables: []*csvgen.Table{tbl}})
	require.NoError(t, err)

	_, err = runner.Run(context.Background(), Plan{Sizes: []uint64{1_000}, Counts: []int{2}})
	var sizeErr *csvgen.SizeTooLargeError
	require.ErrorAs(t, err, &sizeErr)
	require.Empty(t, sink.files)
}

func TestRunner_Run_InvalidShares(t *testing.T) {
	t.Parallel()

	tables := testTables(t)[:1]
	runner, err := NewRunner(Config{Logger: testLogger(), Sink: newMemSink(), Tables: tables})
	require.NoError(t, err)

	_, err = runner.Run(context.Background(), Plan{Sizes: []uint64{1_000}, Counts: []int{1}})
	var sumErr *csvgen.SumShareError
	require.ErrorAs(t, err, &sumErr)
}
