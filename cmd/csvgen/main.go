package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"
	"github.com/schollz/progressbar/v3"
	flag "github.com/spf13/pflag"

	"github.com/jordanwade90/csvgen"
	"github.com/jordanwade90/csvgen/batch"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	verboseFlag := flag.Bool("verbose", false, "enable verbose (debug) logging")

	// Output
	outputFlag := flag.String("output", "export", "Output directory (or set CSVGEN_OUTPUT env var)")
	singleFlag := flag.String("single", "", "Write one file of --file-size bytes to this path instead of running a batch")
	fileSizeFlag := flag.String("file-size", "100MiB", "File size for --single")
	snappyFlag := flag.Bool("snappy", false, "Compress files with snappy framing (adds .sz)")

	// Batch
	sizesFlag := flag.String("sizes", "1GiB,5GiB,10GiB", "Comma-separated total export sizes (or set CSVGEN_SIZES env var)")
	countsFlag := flag.String("counts", "1,100,1000,4000", "Comma-separated file counts per size (or set CSVGEN_COUNTS env var)")
	delimiterFlag := flag.String("delimiter", "|", "Field delimiter")
	progressFlag := flag.Bool("progress", true, "Show a progress bar")

	// Generation
	workersFlag := flag.Int("workers", runtime.GOMAXPROCS(0), "Row generation workers per file")
	fileWorkersFlag := flag.Int("file-workers", 0, "Files generated concurrently (0 = GOMAXPROCS)")
	chunkRowsFlag := flag.Int("chunk-rows", csvgen.DefaultChunkRows, "Rows per unit of work")
	seedFlag := flag.Uint64("seed", 0, "Seed for reproducible output (0 = random)")

	// S3
	s3BucketFlag := flag.String("s3-bucket", "", "Upload to this S3 bucket instead of --output (or set CSVGEN_S3_BUCKET env var)")
	s3PrefixFlag := flag.String("s3-prefix", "", "Key prefix inside the S3 bucket (or set CSVGEN_S3_PREFIX env var)")
	s3RegionFlag := flag.String("s3-region", "", "AWS region of the bucket (or set AWS_REGION env var)")
	s3EndpointFlag := flag.String("s3-endpoint", "", "Custom S3 endpoint, e.g. MinIO (or set CSVGEN_S3_ENDPOINT env var)")
	s3PathStyleFlag := flag.Bool("s3-path-style", false, "Use path-style S3 addressing")

	flag.Parse()

	log := newLogger(os.Stderr, *verboseFlag)

	if v := os.Getenv("CSVGEN_OUTPUT"); v != "" {
		*outputFlag = v
	}
	if v := os.Getenv("CSVGEN_SIZES"); v != "" {
		*sizesFlag = v
	}
	if v := os.Getenv("CSVGEN_COUNTS"); v != "" {
		*countsFlag = v
	}
	if v := os.Getenv("CSVGEN_S3_BUCKET"); v != "" {
		*s3BucketFlag = v
	}
	if v := os.Getenv("CSVGEN_S3_PREFIX"); v != "" {
		*s3PrefixFlag = v
	}
	if v := os.Getenv("CSVGEN_S3_ENDPOINT"); v != "" {
		*s3EndpointFlag = v
	}
	if v := os.Getenv("CSVGEN_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid CSVGEN_SEED: %w", err)
		}
		*seedFlag = seed
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tables, err := demoSchema(*delimiterFlag)
	if err != nil {
		return fmt.Errorf("failed to build schema: %w", err)
	}

	opts := []csvgen.Option{
		csvgen.WithWorkers(*workersFlag),
		csvgen.WithChunkRows(*chunkRowsFlag),
		csvgen.WithLogger(log),
	}
	if *seedFlag != 0 {
		opts = append(opts, csvgen.WithSeed(*seedFlag))
	}

	if *singleFlag != "" {
		fileSize, err := humanize.ParseBytes(*fileSizeFlag)
		if err != nil {
			return fmt.Errorf("invalid --file-size: %w", err)
		}
		file, err := csvgen.NewExportFile(tables, int(fileSize), opts...)
		if err != nil {
			return err
		}
		if err := file.WriteFile(ctx, *singleFlag); err != nil {
			return err
		}
		log.Info("wrote file", "path", *singleFlag, "size", humanize.IBytes(fileSize))
		return nil
	}

	sizes, err := batch.ParseSizes(*sizesFlag)
	if err != nil {
		return err
	}
	counts, err := batch.ParseCounts(*countsFlag)
	if err != nil {
		return err
	}
	plan := batch.Plan{Sizes: sizes, Counts: counts}
	if err := plan.Validate(); err != nil {
		return err
	}

	var sink batch.Sink
	if *s3BucketFlag != "" {
		sink, err = batch.NewS3Sink(ctx, *s3BucketFlag, batch.S3Config{
			Region:       *s3RegionFlag,
			Endpoint:     *s3EndpointFlag,
			UsePathStyle: *s3PathStyleFlag,
			Prefix:       *s3PrefixFlag,
		})
	} else {
		sink, err = batch.NewDirSink(*outputFlag)
	}
	if err != nil {
		return err
	}
	if *snappyFlag {
		sink = batch.SnappySink{Next: sink}
	}

	cfg := batch.Config{
		Logger:      log,
		Sink:        sink,
		Tables:      tables,
		FileWorkers: *fileWorkersFlag,
		Options:     opts,
	}
	if *progressFlag {
		bar := progressbar.Default(int64(plan.Files()), "generating")
		defer bar.Finish()
		cfg.OnFile = func(string) { _ = bar.Add(1) }
	}

	runner, err := batch.NewRunner(cfg)
	if err != nil {
		return err
	}
	m, err := runner.Run(ctx, plan)
	if err != nil {
		return err
	}

	fmt.Printf("Elapsed %.3fs\n", m.ElapsedSeconds)
	return nil
}
