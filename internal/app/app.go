// Package app wires the wordfreq command line.
package app

import (
	"io"
	"os"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"pkg.jsn.cam/wordfreq/internal/config"
	"pkg.jsn.cam/wordfreq/internal/master"
	"pkg.jsn.cam/wordfreq/internal/source"
	"pkg.jsn.cam/wordfreq/internal/worker"
	"pkg.jsn.cam/wordfreq/pkg/executors/wordcount"
	"pkg.jsn.cam/wordfreq/pkg/report"
	"pkg.jsn.cam/wordfreq/pkg/storage"
	"pkg.jsn.cam/wordfreq/pkg/wordfreq"
)

// Exit codes
const (
	ExitOK            = 0
	ExitFailure       = 1
	ExitConfiguration = 2
)

// New builds the CLI application.
func New() *cli.App {
	return &cli.App{
		Name:            "wordfreq",
		Usage:           "count word frequencies of a text file in parallel segments",
		ArgsUsage:       "<input-path> <segment-count>",
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "file to write the `token count` lines to",
				Value:   config.DefaultOutput,
			},
			&cli.IntFlag{
				Name:    "workers",
				Aliases: []string{"w"},
				Usage:   "maximum concurrent workers (0 = number of CPUs)",
			},
			&cli.BoolFlag{
				Name:  "no-progress",
				Usage: "disable the progress bar",
			},
			&cli.StringFlag{
				Name:  "store",
				Usage: "segment result store: memory or bbolt",
				Value: storage.KindMemory,
			},
			&cli.StringFlag{
				Name:  "store-path",
				Usage: "database file for the bbolt store",
				Value: config.DefaultStorePath,
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML config file, overridden by flags",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log per-segment intermediate counts",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "only log errors",
			},
		},
		OnUsageError: func(c *cli.Context, err error, isSubcommand bool) error {
			return errors.Mark(err, wordfreq.ErrConfiguration)
		},
		Action: run,
	}
}

// ExitCode maps an error returned by the application to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, wordfreq.ErrConfiguration):
		return ExitConfiguration
	default:
		return ExitFailure
	}
}

func run(c *cli.Context) error {
	if c.NArg() != 2 {
		return wordfreq.ConfigErrorf("usage: %s %s", c.App.Name, c.App.ArgsUsage)
	}

	inputPath := c.Args().Get(0)
	segments, err := strconv.Atoi(c.Args().Get(1))
	if err != nil {
		return wordfreq.ConfigErrorf("segment count %q is not an integer", c.Args().Get(1))
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	showBar, level := progressDisplay(cfg, isTerminal(c.App.ErrWriter))
	logger, err := config.NewLogger(level)
	if err != nil {
		return err
	}
	defer logger.Sync()

	// Reject bad segment counts before touching the input
	if segments <= 0 {
		return wordfreq.ConfigErrorf("segment count must be positive, got %d", segments)
	}

	text, err := source.ReadFile(inputPath)
	if err != nil {
		return err
	}
	logger.Info("read input", zap.String("path", inputPath), zap.String("size", humanize.Bytes(uint64(len(text)))))

	backend, err := storage.Open(cfg.Store.Backend, cfg.Store.Path)
	if err != nil {
		return wordfreq.IOError(err, "open %s store", cfg.Store.Backend)
	}
	defer backend.Close()

	pipeline := master.New(master.Options{
		Counter:  wordcount.Counter{},
		Backend:  backend,
		Workers:  cfg.Workers,
		Logger:   logger,
		Progress: progressSink(showBar, c.App.ErrWriter, logger),
	})

	result, err := pipeline.Run(c.Context, text, segments)
	if err != nil {
		return err
	}

	if err := report.WriteFile(cfg.Output, report.Rank(result.Frequencies)); err != nil {
		return err
	}

	logger.Info("final result saved",
		zap.String("output", cfg.Output),
		zap.Int("distinct", len(result.Frequencies)),
		zap.Duration("elapsed", result.Elapsed),
	)

	return nil
}

// loadConfig merges the optional config file with the flags that were set.
func loadConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Default()
	if c.IsSet("config") {
		loaded, err := config.Load(c.String("config"))
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if c.IsSet("output") {
		cfg.Output = c.String("output")
	}
	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}
	if c.Bool("no-progress") {
		cfg.Progress = false
	}
	if c.IsSet("store") {
		cfg.Store.Backend = c.String("store")
	}
	if c.IsSet("store-path") {
		cfg.Store.Path = c.String("store-path")
	}
	if c.Bool("verbose") {
		cfg.LogLevel = "debug"
	}
	if c.Bool("quiet") {
		cfg.LogLevel = "error"
	}

	return cfg, cfg.Validate()
}

// progressDisplay reports whether a bar is drawn and the log level to run
// with. The bar shares stderr with the logs, so while it is shown only
// warnings and errors are logged. Debug logging keeps its lines and gets no bar.
func progressDisplay(cfg config.Config, terminal bool) (bool, string) {
	if !cfg.Progress || !terminal {
		return false, cfg.LogLevel
	}

	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil || level < zapcore.InfoLevel {
		return false, cfg.LogLevel
	}
	if level < zapcore.WarnLevel {
		return true, zapcore.WarnLevel.String()
	}

	return true, cfg.LogLevel
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func progressSink(showBar bool, w io.Writer, logger *zap.Logger) func(total int) worker.ProgressSink {
	if !showBar {
		return func(int) worker.ProgressSink {
			return worker.NewLogSink(logger)
		}
	}

	return func(total int) worker.ProgressSink {
		return worker.NewBarSink(total, w)
	}
}
