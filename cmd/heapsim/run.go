package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newRunCmd())
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <script>",
		Short: "Execute shell commands from a file",
		Long: `The run command feeds each line of a script file to the shell, exactly as
if typed interactively. Use "-" to read from stdin.

Example:
  heapsim run workload.txt
  echo "alloc 2000" | heapsim run - --capacity 4096`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScript(cmd, args[0])
		},
	}
	return cmd
}

func runScript(cmd *cobra.Command, path string) error {
	var in io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open script: %w", err)
		}
		defer f.Close()
		in = f
	}
	return runShell(in, cmd.OutOrStdout(), "")
}
