// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/umarhussain15/distributed-tracing-graph/core"
	"github.com/umarhussain15/distributed-tracing-graph/query"
)

// options collects the command-line flags.
type options struct {
	verbose     bool
	queriesPath string
	workers     int
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "tracegraph <graph-file>",
		Short: "Answer latency queries over a traced service graph",
		Long: `Reads a graph such as "AB5,BC4,CD8" (edge A→B with latency 5, ...) from
<graph-file> and prints the result of each query in the battery, one per line.
Absent traces print "NO SUCH TRACE".

By default the built-in ten-query battery is run; --queries replaces it
with a YAML battery file.

Examples:
  tracegraph input.txt
  tracegraph input.txt -v
  tracegraph input.txt --queries battery.yaml --workers 8`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// argument errors above print usage; runtime errors below do not
			cmd.SilenceUsage = true
			logger := newLogger(cmd.ErrOrStderr(), opts.verbose)
			// failures returned from here are logged by main through the default logger
			slog.SetDefault(logger)

			return run(cmd.Context(), cmd.OutOrStdout(), logger, args[0], opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "echo the parsed graph and log each query")
	cmd.Flags().StringVarP(&opts.queriesPath, "queries", "q", "", "YAML battery file replacing the built-in queries")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", query.DefaultWorkers, "number of queries run concurrently")

	return cmd
}

// newLogger writes text records to w; verbose lowers the level to Debug.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func run(ctx context.Context, stdout io.Writer, logger *slog.Logger, path string, opts *options) error {
	if opts.workers < 1 {
		return fmt.Errorf("--workers must be positive, got %d", opts.workers)
	}

	if opts.verbose {
		fmt.Fprintf(stdout, "Reading from file: %s\n", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("cannot read file: %w", err)
	}
	defer f.Close()

	g, err := core.Parse(f)
	if err != nil {
		return fmt.Errorf("parse graph %s: %w", path, err)
	}
	logger.Debug("graph loaded", "path", path, "nodes", g.NodeCount(), "edges", g.EdgeCount())

	battery := query.DefaultBattery()
	if opts.queriesPath != "" {
		if battery, err = query.LoadBattery(opts.queriesPath); err != nil {
			return err
		}
		logger.Debug("battery loaded", "path", opts.queriesPath, "queries", len(battery))
	}

	if opts.verbose {
		fmt.Fprintln(stdout, "Input graph:")
		for _, e := range g.Edges() {
			fmt.Fprintln(stdout, e)
		}
		fmt.Fprintln(stdout, "Result of tests:")
	}

	runner := query.NewRunner(query.WithWorkers(opts.workers), query.WithLogger(logger))
	results, err := runner.Run(ctx, g, battery)
	if err != nil {
		return err
	}

	return query.Render(stdout, results)
}
