package master

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"pkg.jsn.cam/wordfreq/internal/worker"
	"pkg.jsn.cam/wordfreq/pkg/executor"
	"pkg.jsn.cam/wordfreq/pkg/storage"
	"pkg.jsn.cam/wordfreq/pkg/wordfreq"
)

// Options configures a Pipeline
type Options struct {
	Counter wordfreq.Counter
	// Backend holds committed segment results. Defaults to an in-memory backend.
	// The pipeline never closes it.
	Backend storage.Backend
	// Workers caps concurrent counters; <= 0 means one per CPU.
	Workers int
	Logger  *zap.Logger
	// Progress builds the display for a run of total segments. Defaults to no display.
	Progress func(total int) worker.ProgressSink
}

// Result is the outcome of one run
type Result struct {
	RunID       string
	Frequencies wordfreq.FrequencyMap
	Segments    int
	Elapsed     time.Duration
}

// Pipeline segments a text, counts the segments concurrently and merges
// the committed results.
type Pipeline struct {
	counter  wordfreq.Counter
	pool     *worker.Pool
	store    *worker.Store
	progress func(total int) worker.ProgressSink
	logger   *zap.Logger
}

// New creates a pipeline
func New(opts Options) *Pipeline {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	backend := opts.Backend
	if backend == nil {
		backend = storage.NewMemoryBackend()
	}

	progress := opts.Progress
	if progress == nil {
		progress = func(int) worker.ProgressSink { return worker.NopSink{} }
	}

	store := worker.NewStore(backend)

	return &Pipeline{
		counter:  opts.Counter,
		pool:     worker.NewPool(opts.Counter, store, opts.Workers, logger),
		store:    store,
		progress: progress,
		logger:   logger.Named("master"),
	}
}

// Run counts the words of text split into n segments. Nothing of a failed or
// interrupted run is merged.
func (p *Pipeline) Run(ctx context.Context, text string, n int) (*Result, error) {
	start := time.Now()

	segments, err := executor.Segment(text, n)
	if err != nil {
		return nil, err
	}

	if len(segments) < n {
		p.logger.Warn("segment count exceeds word count, clamping",
			zap.Int("requested", n),
			zap.Int("segments", len(segments)),
		)
	}

	runID := uuid.New().String()
	logger := p.logger.With(zap.String("run_id", runID))
	logger.Info("starting run",
		zap.String("counter", p.counter.Description()),
		zap.String("input", humanize.Bytes(uint64(len(text)))),
		zap.Int("segments", len(segments)),
		zap.Int("workers", p.pool.Workers()),
	)

	if err := p.store.Begin(runID); err != nil {
		return nil, errors.Wrap(err, "prepare segment store")
	}
	defer func() {
		if err := p.store.Cleanup(runID); err != nil {
			logger.Warn("failed to clean up segment store", zap.Error(err))
		}
	}()

	if err := p.count(ctx, runID, segments); err != nil {
		logger.Error("run aborted", zap.Error(err))
		return nil, err
	}

	freq, err := p.aggregate(runID, len(segments))
	if err != nil {
		return nil, err
	}

	result := &Result{
		RunID:       runID,
		Frequencies: freq,
		Segments:    len(segments),
		Elapsed:     time.Since(start),
	}

	logger.Info("run complete",
		zap.String("words", humanize.Comma(int64(freq.Total()))),
		zap.Int("distinct", len(freq)),
		zap.Duration("elapsed", result.Elapsed),
	)

	return result, nil
}

// count runs the worker pool while a single goroutine drives the progress display.
func (p *Pipeline) count(ctx context.Context, runID string, segments []wordfreq.Segment) error {
	progress := worker.NewProgress(len(segments))
	sink := p.progress(len(segments))

	watchCtx, stopWatch := context.WithCancel(ctx)
	defer stopWatch()

	watched := make(chan struct{})
	go func() {
		defer close(watched)
		progress.Watch(watchCtx, sink)
	}()

	err := p.pool.Run(ctx, runID, segments, progress)
	if err != nil {
		stopWatch()
	}
	<-watched

	return err
}

// aggregate folds every committed segment into the global map.
func (p *Pipeline) aggregate(runID string, expected int) (wordfreq.FrequencyMap, error) {
	global := make(wordfreq.FrequencyMap)
	collected := 0

	err := p.store.ForEach(runID, func(index int, freq wordfreq.FrequencyMap) error {
		global.Add(freq)
		collected++
		return nil
	})
	if err != nil {
		return nil, wordfreq.IOError(err, "read committed segments")
	}

	if collected != expected {
		return nil, errors.Mark(
			errors.Newf("collected %d of %d segments", collected, expected),
			wordfreq.ErrWorkerFailure,
		)
	}

	return global, nil
}
