package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/joshuapare/heapsim/alloc"
	"github.com/joshuapare/heapsim/internal/logger"
	"github.com/joshuapare/heapsim/internal/shell"
	"github.com/joshuapare/heapsim/report"
)

var (
	// Global flags
	capacity     int
	splitOnReuse bool
	strictFree   bool
	verbose      bool
	jsonOut      bool
	noColor      bool
	emoji        bool
	lang         string
	logDir       string
)

var rootCmd = &cobra.Command{
	Use:   "heapsim",
	Short: "Simulate a first-fit heap allocator over a fixed-size arena",
	Long: `heapsim simulates a user-space memory allocator over a fixed-size byte
arena. It reuses freed blocks first-fit, bump-allocates when nothing fits,
merges adjacent free blocks and reports heap state as text.

Without a subcommand heapsim starts an interactive shell:

  > alloc 64
  > alloc 128
  > free 0
  > status
  > visualize
  > exit`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: initLogging,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShell(cmd.InOrStdin(), cmd.OutOrStdout(), "> ")
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&capacity, "capacity", alloc.DefaultCapacity, "Arena size in bytes")
	rootCmd.PersistentFlags().
		BoolVar(&splitOnReuse, "split-on-reuse", false, "Split reused free blocks down to the requested size")
	rootCmd.PersistentFlags().
		BoolVar(&strictFree, "strict-free", false, "Reject freeing an already free block")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log allocator decisions to stderr")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Print status as JSON")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&emoji, "emoji", false, "Draw blocks with colored squares")
	rootCmd.PersistentFlags().StringVar(&lang, "lang", "en", "Language tag for number formatting")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "Write JSON logs to this directory")
}

func execute() {
	err := rootCmd.Execute()
	if cerr := logger.Close(); cerr != nil {
		fmt.Fprintln(os.Stderr, "closing log:", cerr)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initLogging enables the logger when --verbose or --log-dir is given.
func initLogging(cmd *cobra.Command, args []string) error {
	return logger.Init(logger.Options{
		Enabled: verbose || logDir != "",
		LogDir:  logDir,
		Writer:  cmd.ErrOrStderr(),
		Level:   slog.LevelDebug,
	})
}

// newAllocator builds an allocator from the global flags.
func newAllocator() (*alloc.Allocator, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("--capacity must be positive, got %d", capacity)
	}
	return alloc.New(&alloc.Config{
		Capacity:     capacity,
		SplitOnReuse: splitOnReuse,
		StrictFree:   strictFree,
	})
}

// sessionOptions maps the global output flags onto shell options.
func sessionOptions(prompt string) (shell.Options, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return shell.Options{}, fmt.Errorf("invalid --lang %q: %w", lang, err)
	}

	opts := shell.DefaultOptions()
	opts.Lang = tag
	opts.JSON = jsonOut
	opts.Prompt = prompt
	if !noColor {
		opts.Theme = shell.ColorTheme()
	}
	if emoji {
		opts.Symbols = report.EmojiSymbols
	}
	return opts, nil
}

// runShell runs a command loop reading from in until exit or EOF.
func runShell(in io.Reader, out io.Writer, prompt string) error {
	a, err := newAllocator()
	if err != nil {
		return err
	}
	opts, err := sessionOptions(prompt)
	if err != nil {
		return err
	}

	logger.Info("shell started", "capacity", a.Capacity(),
		"split_on_reuse", splitOnReuse, "strict_free", strictFree)
	return shell.New(a, out, opts).Run(in)
}
