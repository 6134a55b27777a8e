package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/fx"
)

// run starts app and blocks until ctx is cancelled or fx requests shutdown.
// Stop hooks share a single stopTimeout budget.
func run(ctx context.Context, app *fx.App, stopTimeout time.Duration) {
	if err := app.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "failed to start careerpath: %v\n", err)
		os.Exit(1)
	}

	select {
	case <-ctx.Done():
	case <-app.Done():
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), stopTimeout)
	defer cancel()

	if err := app.Stop(stopCtx); err != nil {
		fmt.Fprintf(os.Stderr, "failed to stop careerpath: %v\n", err)
		os.Exit(1)
	}
}
