package worker

import (
	"context"
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// ProgressSink displays progress. Update is only ever called from the single
// goroutine running Progress.Watch, with strictly increasing done values.
type ProgressSink interface {
	Update(done, total int)
	Finish()
}

// Progress counts completed segments out of a fixed total.
type Progress struct {
	total   int
	done    atomic.Int64
	changed chan struct{}
}

// NewProgress creates a progress counter for total segments
func NewProgress(total int) *Progress {
	return &Progress{
		total:   total,
		changed: make(chan struct{}, 1),
	}
}

// Complete records one finished segment and returns the new count.
func (p *Progress) Complete() int {
	done := int(p.done.Inc())

	select {
	case p.changed <- struct{}{}:
	default:
		// a wakeup is already pending
	}

	return done
}

func (p *Progress) Done() int {
	return int(p.done.Load())
}

func (p *Progress) Total() int {
	return p.total
}

// Watch forwards progress to sink until every segment has completed or ctx
// is done. Finish is only called when the total was reached.
func (p *Progress) Watch(ctx context.Context, sink ProgressSink) {
	last := 0
	for {
		if done := p.Done(); done > last {
			sink.Update(done, p.total)
			last = done
		}

		if last >= p.total {
			sink.Finish()
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-p.changed:
		}
	}
}

// barSink renders a terminal progress bar
type barSink struct {
	bar *progressbar.ProgressBar
}

// NewBarSink creates a progress bar for total segments written to w.
func NewBarSink(total int, w io.Writer) ProgressSink {
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("Processing segments"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(w)
		}),
	)

	return &barSink{bar: bar}
}

func (s *barSink) Update(done, total int) {
	// Best effort: a broken terminal must not fail the run
	_ = s.bar.Set(done)
}

func (s *barSink) Finish() {
	_ = s.bar.Finish()
}

// logSink reports progress as debug log lines
type logSink struct {
	logger *zap.Logger
}

// NewLogSink reports progress through logger instead of a bar.
func NewLogSink(logger *zap.Logger) ProgressSink {
	return &logSink{logger: logger.Named("progress")}
}

func (s *logSink) Update(done, total int) {
	s.logger.Debug("segments completed", zap.Int("done", done), zap.Int("total", total))
}

func (s *logSink) Finish() {
	s.logger.Debug("all segments completed")
}

// NopSink discards progress
type NopSink struct{}

func (NopSink) Update(done, total int) {}
func (NopSink) Finish()                {}
