// Package async fans document processing out to a fixed set of
// workers while keeping results in submission order.
package async

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/propintel/brochure-extractor/internal/entity"
)

// Job is the smallest useful unit: one document path to process.
type Job struct {
	Path        string
	SubmittedAt time.Time
	TraceID     string
}

// NewJob stamps a path with a submission time and trace id.
func NewJob(path string) Job {
	return Job{
		Path:        path,
		SubmittedAt: time.Now().UTC(),
		TraceID:     uuid.NewString(),
	}
}

// Result pairs a job with its record. Err is the processing error, if
// any; the record is still usable when Err is set.
type Result struct {
	Job    Job
	Record entity.ProjectRecord
	Err    error
}

// ProcessFunc runs one job to completion.
type ProcessFunc func(ctx context.Context, path string) (entity.ProjectRecord, error)

// Pool runs jobs across a bounded number of goroutines.
type Pool struct {
	workers int
	process ProcessFunc
	logger  *slog.Logger
}

// NewPool creates a Pool. Worker counts below 1 are clamped to 1.
func NewPool(workers int, process ProcessFunc, logger *slog.Logger) *Pool {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Pool{workers: workers, process: process, logger: logger}
}

// Run processes all jobs and returns results indexed like the input,
// so batch output stays deterministic regardless of scheduling. A
// cancelled context stops the feed; jobs already picked up finish.
func (p *Pool) Run(ctx context.Context, jobs []Job) []Result {
	results := make([]Result, len(jobs))
	indexes := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < p.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				job := jobs[i]
				rec, err := p.process(ctx, job.Path)
				if err != nil {
					p.logger.Warn("pool.job.failed", "path", job.Path, "trace_id", job.TraceID, "err", err)
				}
				results[i] = Result{Job: job, Record: rec, Err: err}
			}
		}()
	}

feed:
	for i := range jobs {
		select {
		case indexes <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(indexes)
	wg.Wait()
	return results
}
