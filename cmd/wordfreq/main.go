package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"pkg.jsn.cam/wordfreq/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.New().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "wordfreq: %v\n", err)
		stop()
		os.Exit(app.ExitCode(err))
	}
}
