// Package main provides the rxprog command line tool.
// rxprog decodes RandomX-style entropy files into VM programs and reports on
// them.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/sarchlab/rxprog/emu"
	"github.com/sarchlab/rxprog/entropy"
	"github.com/sarchlab/rxprog/insts"
	"github.com/sarchlab/rxprog/loader"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	format   string
	parallel int
	verbose  bool
	trace    bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "rxprog",
		Short:         "Decode RandomX entropy into VM programs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			setupLogging(cmd.ErrOrStderr(), opts)
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.format, "format", "f", "auto", "Entropy file format: auto, hex or bin")
	flags.IntVarP(&opts.parallel, "parallel", "p", 1, "Decode with this many workers (0 = GOMAXPROCS)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output")
	flags.BoolVar(&opts.trace, "trace", false, "Log every scratchpad access")

	rootCmd.AddCommand(
		newDisasmCmd(opts),
		newMixCmd(opts),
		newBindCmd(opts),
	)

	return rootCmd
}

func setupLogging(w io.Writer, opts *options) {
	level := slog.LevelInfo
	switch {
	case opts.trace:
		level = emu.LevelTrace
	case opts.verbose:
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

// loadProgram reads an entropy file and decodes it.
func loadProgram(cmd *cobra.Command, opts *options, path string) (*insts.Program, error) {
	format, err := loader.ParseFormat(opts.format)
	if err != nil {
		return nil, err
	}

	values, err := loader.Load(path, format)
	if err != nil {
		return nil, err
	}

	slog.Debug("loaded entropy",
		slog.String("path", path),
		slog.Int("values", len(values)),
	)
	if len(values) <= insts.WarmupValues {
		slog.Warn("no entropy beyond the warm-up values",
			slog.Int("values", len(values)),
			slog.Int("warmup", insts.WarmupValues),
		)
	}

	return decode(cmd, opts, values)
}

func decode(cmd *cobra.Command, opts *options, values []entropy.Value) (*insts.Program, error) {
	if opts.parallel == 1 {
		return insts.NewProgram(values), nil
	}

	prog, err := insts.NewProgramParallel(cmd.Context(), values, opts.parallel)
	if err != nil {
		return nil, fmt.Errorf("failed to decode program: %w", err)
	}

	return prog, nil
}
