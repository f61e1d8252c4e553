// Package worker verifies many s-Java files concurrently over a bounded pool
package worker

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/QTest-hq/sjavac/internal/verifier"
)

// Job is one file to verify
type Job struct {
	Path string // path on disk
	Name string // name used in reports
}

// Pool runs verification jobs with a bounded number of workers
type Pool struct {
	verifier *verifier.Verifier
	workers  int
}

// PoolConfig configures the worker pool
type PoolConfig struct {
	Verifier *verifier.Verifier
	Workers  int // 0 means runtime.NumCPU()
}

// NewPool creates a new worker pool
func NewPool(cfg PoolConfig) (*Pool, error) {
	if cfg.Workers < 0 {
		return nil, fmt.Errorf("workers must be >= 0, got %d", cfg.Workers)
	}

	p := &Pool{
		verifier: cfg.Verifier,
		workers:  cfg.Workers,
	}
	if p.verifier == nil {
		p.verifier = verifier.NewVerifier()
	}
	if p.workers == 0 {
		p.workers = runtime.NumCPU()
	}
	return p, nil
}

// Workers returns the concurrency limit
func (p *Pool) Workers() int {
	return p.workers
}

// Run verifies every job and returns the reports in job order. A file that
// fails verification is a report, not an error; Run only fails when ctx is
// cancelled before all jobs are started.
func (p *Pool) Run(ctx context.Context, jobs []Job) ([]*verifier.Report, error) {
	reports := make([]*verifier.Report, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)

	for i, job := range jobs {
		if err := gctx.Err(); err != nil {
			break
		}
		g.Go(func() error {
			r := p.verifier.VerifyFile(gctx, job.Path)
			if job.Name != "" {
				r.File = job.Name
			}
			reports[i] = r

			log.Debug().
				Str("file", r.File).
				Int("status", int(r.Status)).
				Msg("job done")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("batch cancelled: %w", err)
	}
	return reports, nil
}

// Batch discovers the files under root and verifies them
func (p *Pool) Batch(ctx context.Context, root string, matcher Matcher) (*verifier.Summary, error) {
	start := time.Now()

	jobs, err := Discover(root, matcher)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("root", root).
		Int("files", len(jobs)).
		Int("workers", p.workers).
		Msg("starting batch")

	reports, err := p.Run(ctx, jobs)
	if err != nil {
		return nil, err
	}

	summary := verifier.NewSummary(root, reports, time.Since(start))
	log.Info().
		Int("valid", summary.Valid).
		Int("invalid", summary.Invalid).
		Int("errors", summary.Errors).
		Dur("duration", summary.Duration).
		Msg("batch complete")
	return summary, nil
}
