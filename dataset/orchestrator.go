// SPDX-License-Identifier: MIT
// Package dataset - the orchestrator: jobs → generators → writers.
//
// Determinism:
//   - Case i of a job is generated from fixture.CaseRNG(seed, i), so the files
//     written for a given seed do not depend on the worker count or on
//     scheduling order.
//   - A job without a seed draws one from the seed source and logs it, so
//     any run can be replayed.
//
// Failure policy: the first error cancels the job's remaining cases and is
// returned. Nothing is retried; files already written are left in place.

package dataset

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/fixturegen/config"
	"github.com/katalvlaran/fixturegen/fixture"
)

// Orchestrator runs fixture jobs.
type Orchestrator struct {
	logger  *zap.Logger
	workers int
	seed    func() int64
}

// Option customizes an Orchestrator.
type Option func(*Orchestrator)

// WithLogger sets the logger. Panics if l is nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("dataset: WithLogger(nil)")
	}
	return func(o *Orchestrator) { o.logger = l }
}

// WithWorkers sets the default number of cases generated concurrently;
// 0 means runtime.GOMAXPROCS(0). A job's own workers field wins.
// Panics if n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic("dataset: WithWorkers(n<0)")
	}
	return func(o *Orchestrator) { o.workers = n }
}

// WithSeedSource sets where seeds for unseeded jobs come from.
// Panics if fn is nil.
func WithSeedSource(fn func() int64) Option {
	if fn == nil {
		panic("dataset: WithSeedSource(nil)")
	}
	return func(o *Orchestrator) { o.seed = fn }
}

// New returns an Orchestrator with a no-op logger and clock seeds unless
// overridden.
func New(opts ...Option) *Orchestrator {
	o := &Orchestrator{
		logger: zap.NewNop(),
		seed:   func() int64 { return time.Now().UnixNano() },
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Report summarizes one finished job.
type Report struct {
	Job   string
	Dir   string
	Seed  int64
	Cases int
}

// Run executes jobs in order and stops at the first failing job.
func (o *Orchestrator) Run(ctx context.Context, jobs []config.Job) ([]Report, error) {
	reports := make([]Report, 0, len(jobs))
	for _, job := range jobs {
		r, err := o.RunJob(ctx, job)
		if err != nil {
			return reports, err
		}
		reports = append(reports, r)
	}
	return reports, nil
}

// RunJob validates job, prepares its output directory and writes
// job.NTests fixtures into it.
//
// Errors:
//   - ErrConfiguration, detgen.ErrInvalidRange: before any file is touched.
//   - ErrStorage, detgen.ErrOverflow, ctx errors: while generating.
func (o *Orchestrator) RunJob(ctx context.Context, job config.Job) (Report, error) {
	log := o.logger.With(zap.String("job", job.Label()))

	gen, err := NewGenerator(job, log)
	if err != nil {
		return Report{}, fmt.Errorf("RunJob %s: %w", job.Label(), err)
	}
	w, err := NewDirWriter(job.Dir(), job.Name, job.Clean)
	if err != nil {
		return Report{}, fmt.Errorf("RunJob %s: %w", job.Label(), err)
	}

	seed := o.seedFor(job)
	workers := o.workers
	if job.Workers > 0 {
		workers = job.Workers
	}

	started := time.Now()
	log.Info("generating fixtures",
		zap.String("dir", w.Dir()),
		zap.Int("cases", job.NTests),
		zap.Int64("seed", seed),
		zap.Bool("seeded", job.Seed != nil))

	if err := o.generate(ctx, log, gen, w, job.NTests, seed, workers); err != nil {
		log.Error("job failed", zap.Error(err))
		return Report{}, fmt.Errorf("RunJob %s: %w", job.Label(), err)
	}

	log.Info("fixtures written", zap.Duration("elapsed", time.Since(started)))
	return Report{Job: job.Label(), Dir: w.Dir(), Seed: seed, Cases: job.NTests}, nil
}

func (o *Orchestrator) seedFor(job config.Job) int64 {
	if job.Seed != nil {
		return *job.Seed
	}
	return o.seed()
}

// Generate writes cases 1..n of gen through w using up to workers goroutines
// (0 means the orchestrator default).
func (o *Orchestrator) Generate(ctx context.Context, gen fixture.Generator, w Writer, n int, seed int64, workers int) error {
	if workers == 0 {
		workers = o.workers
	}
	return o.generate(ctx, o.logger, gen, w, n, seed, workers)
}

func (o *Orchestrator) generate(
	ctx context.Context,
	log *zap.Logger,
	gen fixture.Generator,
	w Writer,
	n int,
	seed int64,
	workers int,
) error {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 1; i <= n; i++ {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			tc, err := gen.Generate(fixture.CaseRNG(seed, i))
			if err != nil {
				return fmt.Errorf("case %d: %w", i, err)
			}
			if err := w.Save(gctx, i, tc); err != nil {
				return fmt.Errorf("case %d: %w", i, err)
			}
			log.Debug("case written", zap.Int("case", i))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// A cancelled parent may have stopped the loop before any case failed.
	return ctx.Err()
}
