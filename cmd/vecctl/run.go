package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/joshuapare/policyvec/internal/config"
	"github.com/joshuapare/policyvec/internal/scenario"
)

func init() {
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run a demonstration scenario",
	}
	runCmd.AddCommand(newSingleCmd(), newConcurrentCmd(), newAllocatorsCmd())
	rootCmd.AddCommand(runCmd)
}

func newSingleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "single",
		Short: "Append, index, modify, remove, copy and move on one vector",
		Long: `The single scenario appends 10, 20 and 30, reads and rewrites index 1,
removes the last element, then copies and moves the vector.

Example:
  vecctl run single --allocator pool --lock none --trace text`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSingle(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg)
		},
	}
}

func newConcurrentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "concurrent",
		Short: "Append from many goroutines to one shared vector",
		Long: `The concurrent scenario starts --threads goroutines that each append
--per-thread values to one vector, then verifies nothing was lost, duplicated
or reordered within a goroutine. It requires --lock mutex.

Example:
  vecctl run concurrent --threads 16 --per-thread 1000 -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConcurrent(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg)
		},
	}
}

func newAllocatorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "allocators [allocator...]",
		Short: "Construct a sized vector and grow it with each allocator",
		Long: `The allocators scenario builds a five-element vector with each named
allocator (all of them by default) and appends one value, forcing a growth.

Example:
  vecctl run allocators heap mmap --trace recorder`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAllocators(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, args)
		},
	}
}

func options(c *config.Config, traceOut io.Writer) scenario.Options {
	return scenario.Options{
		Allocator:   c.Allocator,
		Lock:        c.Lock,
		Trace:       c.Trace,
		Threads:     c.Threads,
		PerThread:   c.PerThread,
		TraceOutput: traceOut,
	}
}

func runSingle(w, traceOut io.Writer, c *config.Config) error {
	r, err := scenario.Single(options(c, traceOut))
	if err != nil {
		return fmt.Errorf("single scenario: %w", err)
	}
	return render(w, c.Output, r)
}

func runConcurrent(w, traceOut io.Writer, c *config.Config) error {
	r, err := scenario.Concurrent(options(c, traceOut))
	if err != nil {
		return fmt.Errorf("concurrent scenario: %w", err)
	}
	return render(w, c.Output, r)
}

func runAllocators(w, traceOut io.Writer, c *config.Config, names []string) error {
	if len(names) == 0 {
		names = config.Allocators
	}
	reports, err := scenario.Allocators(options(c, traceOut), names)
	if err != nil {
		return fmt.Errorf("allocators scenario: %w", err)
	}
	return render(w, c.Output, reports...)
}
