package worker

import (
	"context"
	"runtime"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"pkg.jsn.cam/wordfreq/pkg/wordfreq"
)

// Pool runs one Counter invocation per segment on a bounded number of goroutines.
type Pool struct {
	counter wordfreq.Counter
	store   *Store
	workers int
	logger  *zap.Logger
}

// NewPool creates a pool. workers <= 0 means one worker per CPU.
func NewPool(counter wordfreq.Counter, store *Store, workers int, logger *zap.Logger) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Pool{
		counter: counter,
		store:   store,
		workers: workers,
		logger:  logger.Named("worker"),
	}
}

// Workers returns the concurrency limit
func (p *Pool) Workers() int {
	return p.workers
}

// Run counts every segment and commits each result to the store, admitting
// segments in index order. The first failing segment aborts the run: the
// remaining workers are cancelled and Run returns that failure once every
// started worker has returned. If ctx itself is cancelled, its error is
// returned instead.
func (p *Pool) Run(ctx context.Context, runID string, segments []wordfreq.Segment, progress *Progress) error {
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(p.workers)

	for _, segment := range segments {
		if groupCtx.Err() != nil {
			break
		}

		group.Go(func() error {
			return p.process(groupCtx, runID, segment, progress)
		})
	}

	err := group.Wait()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	return err
}

func (p *Pool) process(ctx context.Context, runID string, segment wordfreq.Segment, progress *Progress) (err error) {
	logger := p.logger.With(zap.String("run_id", runID), zap.Int("segment", segment.Index))

	defer func() {
		if r := recover(); r != nil {
			logger.Error("counter panicked", zap.Any("panic", r))
			err = errors.Mark(errors.Newf("segment %d: counter panicked: %v", segment.Index, r), wordfreq.ErrWorkerFailure)
		}
	}()

	if err := ctx.Err(); err != nil {
		return err
	}

	logger.Debug("counting segment", zap.Int("words", segment.Words), zap.Int("bytes", len(segment.Text)))

	freq, err := p.counter.Count(ctx, segment)
	if err != nil {
		if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
			return err
		}
		logger.Error("counter failed", zap.Error(err))
		return wordfreq.WorkerError(err, "segment %d", segment.Index)
	}

	if err := p.store.Commit(runID, segment.Index, freq); err != nil {
		logger.Error("commit failed", zap.Error(err))
		return wordfreq.WorkerError(err, "segment %d", segment.Index)
	}

	done := progress.Complete()
	logger.Debug("segment counted",
		zap.Int("distinct", len(freq)),
		zap.Int("tokens", freq.Total()),
		zap.Int("done", done),
		zap.Int("total", progress.Total()),
	)

	return nil
}
