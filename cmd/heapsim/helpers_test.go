package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/joshuapare/heapsim/alloc"
)

// resetFlags restores global flag values between command runs.
func resetFlags() {
	capacity = alloc.DefaultCapacity
	splitOnReuse = false
	strictFree = false
	verbose = false
	jsonOut = false
	noColor = false
	emoji = false
	lang = "en"
	logDir = ""
}

// runCommand executes the root command with args and stdin, returning stdout.
func runCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	t.Cleanup(resetFlags)

	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	err := rootCmd.Execute()
	return out.String(), err
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}
