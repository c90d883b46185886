package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/propintel/brochure-extractor/constants"
	"github.com/propintel/brochure-extractor/internal/async"
	"github.com/propintel/brochure-extractor/internal/catalog"
	"github.com/propintel/brochure-extractor/internal/common"
	"github.com/propintel/brochure-extractor/internal/entity"
	"github.com/propintel/brochure-extractor/internal/export"
	"github.com/propintel/brochure-extractor/internal/extract"
	"github.com/propintel/brochure-extractor/internal/ingest"
	"github.com/propintel/brochure-extractor/internal/pipeline"
	"github.com/propintel/brochure-extractor/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	// Parse CLI flags
	var (
		dir        = flag.String("dir", "", "directory of brochure files to process (required)")
		out        = flag.String("out", "", "output directory (defaults to OUTPUT_DIR)")
		profileStr = flag.String("profile", "basic", "extraction profile: basic or diagnostic")
		inmem      = flag.Bool("inmem", false, "use in-memory SQLite record store")
		noTS       = flag.Bool("no-ts", false, "skip TypeScript data module generation")
		workers    = flag.Int("workers", 4, "number of concurrent document workers")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}

	profile, ok := constants.CanonicalizeProfile(*profileStr)
	if !ok && *profileStr != "" {
		printError("Error: unknown profile %q, use basic or diagnostic\n", *profileStr)
		os.Exit(1)
	}

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	// Load configuration
	_ = godotenv.Load()
	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	if *out == "" {
		*out = cfg.Output.Dir
	}

	// Load keyword catalog (embedded defaults unless CATALOG_PATH is set)
	cat := catalog.Default()
	if cfg.Extract.CatalogPath != "" {
		var err error
		cat, err = catalog.Load(cfg.Extract.CatalogPath)
		if err != nil {
			logger.Error("failed to load catalog", "path", cfg.Extract.CatalogPath, "error", err)
			os.Exit(1)
		}
	}

	// Open record store
	db, err := repository.Open(repository.Config{
		Path:        cfg.Store.Path,
		InMemory:    *inmem || cfg.Store.InMemory,
		BusyTimeout: cfg.Store.BusyTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open record store", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	store := repository.NewStore(db, logger)
	if err := store.Init(ctx); err != nil {
		logger.Error("failed to initialize record store", "error", err)
		os.Exit(1)
	}

	// Wire the pipeline
	extractor := extract.NewExtractor(extract.Config{MaxFileSize: cfg.Extract.MaxFileSize}, logger)
	engine := pipeline.NewEngine(profile, cat, logger)
	processor := pipeline.NewProcessor(logger, extractor, engine)

	// List documents
	logger.Info("starting batch", "dir", *dir, "profile", string(profile))
	paths, stats, err := ingest.ListDirectory(*dir, nil, true)
	if err != nil {
		logger.Error("failed to list directory", "dir", *dir, "error", err)
		os.Exit(1)
	}
	logger.Info("listing complete",
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"skipped", stats.Skipped,
		"failed", stats.Failed)

	// Process documents concurrently; extraction failures keep their
	// partial record and the batch continues. Results stay in listing
	// order regardless of scheduling.
	jobs := make([]async.Job, 0, len(paths))
	for _, path := range paths {
		jobs = append(jobs, async.NewJob(path))
	}
	pool := async.NewPool(*workers, processor.ProcessPath, logger)
	results := pool.Run(ctx, jobs)

	var records []entity.ProjectRecord
	processed := 0
	failures := 0
	for _, res := range results {
		if res.Job.Path == "" {
			continue // feed cancelled before this slot was claimed
		}
		if res.Err != nil {
			failures++
		} else {
			processed++
		}
		records = append(records, res.Record)

		if err := store.Upsert(ctx, profile, res.Record); err != nil {
			logger.Error("failed to store record", "id", res.Record.ID, "error", err)
		}
	}

	// Write batch artifacts
	now := time.Now().UTC()
	writer := export.NewWriter(*out, logger)
	if err := writer.WriteJSON(records, now); err != nil {
		logger.Error("failed to write JSON output", "error", err)
		os.Exit(1)
	}
	if cfg.Output.TypeScript && !*noTS {
		if err := writer.WriteTypeScript(records, now); err != nil {
			logger.Error("failed to write TypeScript output", "error", err)
			os.Exit(1)
		}
	}
	if err := writer.WriteWorkbook(records); err != nil {
		logger.Error("failed to write workbook", "error", err)
		os.Exit(1)
	}

	logger.Info("batch complete",
		"documents", len(paths),
		"processed", processed,
		"failures", failures,
		"output_dir", *out)

	fmt.Printf("Batch extraction complete!\n")
	fmt.Printf("- Documents found: %d\n", len(paths))
	fmt.Printf("- Processed: %d\n", processed)
	fmt.Printf("- Failures: %d\n", failures)
	fmt.Printf("- Output: %s\n", *out)
}
