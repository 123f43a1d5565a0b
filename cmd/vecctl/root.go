package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/policyvec/internal/config"
	"github.com/joshuapare/policyvec/internal/logger"
)

var (
	// Global flags
	cfgFile string

	// cfg is loaded before any subcommand runs.
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "vecctl",
	Short: "Exercise policy-based vectors",
	Long: `vecctl drives a growable vector through demonstration workloads with the
allocation, locking and tracing strategies named on the command line.

Settings come from, lowest priority first: built-in defaults, a YAML config
file (--config), POLICYVEC_* environment variables, and flags.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}
		if err := logger.Init(loaded.LoggerOptions()); err != nil {
			return fmt.Errorf("failed to initialize logging: %w", err)
		}
		cfg = loaded
		logger.Debug("config loaded", "file", cfgFile, "allocator", cfg.Allocator, "lock", cfg.Lock, "trace", cfg.Trace)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Close()
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "YAML config file")
	pf.String("allocator", "heap", "Allocation strategy: heap, pool, mmap")
	pf.String("lock", "mutex", "Concurrency strategy: none, mutex, assert")
	pf.String("trace", "discard", "Instrumentation strategy: discard, text, slog, recorder")
	pf.Int("threads", 4, "Goroutines in the concurrent scenario")
	pf.Int("per-thread", 5, "Appends per goroutine in the concurrent scenario")
	pf.StringP("output", "o", "table", "Output format: table, json")
	pf.Bool("log-enabled", false, "Enable diagnostic logging")
	pf.String("log-level", "info", "Log level: debug, info, warn, error")
	pf.String("log-format", "text", "Log format: text, json")
	pf.String("log-file", "", "Write logs to this file instead of stderr")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
