package main

import (
	"strings"

	"github.com/spf13/cobra"
)

// demoScript is the classic walkthrough: two allocations, free the first, then
// reuse it for a smaller request that keeps the full 64-byte block.
var demoScript = []string{
	"alloc 64",
	"alloc 128",
	"status",
	"free 0",
	"status",
	"alloc 32",
	"status",
	"visualize",
}

func init() {
	rootCmd.AddCommand(newDemoCmd())
}

func newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in allocate/free/reuse walkthrough",
		Long: `The demo command allocates 64 and 128 bytes, frees the first block and
allocates 32 bytes, printing the allocator status after each step.

Example:
  heapsim demo
  heapsim demo --split-on-reuse
  heapsim demo --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			script := strings.Join(demoScript, "\n") + "\n"
			return runShell(strings.NewReader(script), cmd.OutOrStdout(), "")
		},
	}
	return cmd
}
