// SPDX-License-Identifier: MIT

// Command tracegraph loads a latency graph from a file and prints the
// results of a query battery, one per line.
//
// Usage:
//
//	tracegraph <graph-file> [-v] [--queries battery.yaml] [--workers N]
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.SetDefault(newLogger(os.Stderr, false))
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		slog.Error("tracegraph failed", "err", err)
		stop()
		os.Exit(1)
	}
}
