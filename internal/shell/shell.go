// Package shell implements the interactive command loop over an allocator.
//
// Commands are read one per line and mapped onto allocator calls. Bad input is
// reported and the loop continues; only "exit", "quit" or end of input stop it.
package shell

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/language"

	"github.com/joshuapare/heapsim/alloc"
	"github.com/joshuapare/heapsim/internal/logger"
	"github.com/joshuapare/heapsim/report"
)

// Usage is printed for "help" and after unrecognized input.
const Usage = `Commands:
  alloc <size>    allocate size bytes
  free <index>    free allocation #index
  status          usage summary and block list
  visualize       heap map (one symbol per 8 bytes)
  blocks          block list only
  check           verify block table invariants
  help            show this help
  exit            leave`

// Options configures output of a Session.
type Options struct {
	Symbols report.Symbols
	Theme   Theme
	Lang    language.Tag
	JSON    bool   // status as JSON
	Prompt  string // printed before each line read by Run; empty for none
}

// DefaultOptions returns plain ASCII output in English with a "> " prompt.
func DefaultOptions() Options {
	return Options{
		Symbols: report.DefaultSymbols,
		Theme:   PlainTheme(),
		Lang:    language.English,
		Prompt:  "> ",
	}
}

// Session is one command loop bound to one allocator.
type Session struct {
	a    *alloc.Allocator
	out  io.Writer
	opts Options

	// handles holds every successful allocation; "free <i>" indexes into it.
	// Entries are never removed so indices stay stable.
	handles []alloc.Handle
}

// New creates a session writing to out.
func New(a *alloc.Allocator, out io.Writer, opts Options) *Session {
	return &Session{a: a, out: out, opts: opts}
}

// Handles returns the allocation list in issue order.
func (s *Session) Handles() []alloc.Handle {
	return append([]alloc.Handle(nil), s.handles...)
}

// MaxLineLen is the longest command line Exec is given. Longer lines are
// reported and skipped.
const MaxLineLen = 4096

// Run reads commands from in until exit or end of input.
func (s *Session) Run(in io.Reader) error {
	r := bufio.NewReader(in)
	for {
		if s.opts.Prompt != "" {
			fmt.Fprint(s.out, s.opts.Prompt)
		}

		line, err := r.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}

		switch {
		case len(line) > MaxLineLen:
			s.errorf("Line too long (%d bytes, limit %d)", len(line), MaxLineLen)
			fmt.Fprintln(s.out, Usage)
		case s.Exec(line):
			return nil
		}

		if err != nil {
			return nil
		}
	}
}

// Exec runs a single command line and reports whether the session should end.
func (s *Session) Exec(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	logger.Debug("shell: command", "line", line)

	cmd, args := strings.ToLower(fields[0]), fields[1:]
	switch cmd {
	case "alloc":
		s.alloc(args)
	case "free":
		s.free(args)
	case "status":
		s.status()
	case "visualize", "vis":
		s.visualize()
	case "blocks":
		s.blocks()
	case "check":
		s.check()
	case "help":
		fmt.Fprintln(s.out, Usage)
	case "exit", "quit":
		return true
	default:
		s.errorf("Unknown command %q", fields[0])
		fmt.Fprintln(s.out, Usage)
	}
	return false
}

func (s *Session) alloc(args []string) {
	if len(args) != 1 {
		s.errorf("Usage: alloc <size>")
		return
	}
	size, err := strconv.Atoi(args[0])
	if err != nil {
		s.errorf("Invalid size %q", args[0])
		return
	}

	h, err := s.a.Alloc(size)
	switch {
	case errors.Is(err, alloc.ErrOutOfMemory):
		s.errorf("Not enough memory for %d bytes", size)
		return
	case errors.Is(err, alloc.ErrInvalidSize):
		s.errorf("Size must be a positive integer, got %d", size)
		return
	case err != nil:
		s.errorf("%v", err)
		return
	}

	s.handles = append(s.handles, h)
	idx := len(s.handles) - 1

	if blk, ok := s.block(h); ok && blk.Size != size {
		fmt.Fprintf(s.out, "#%d: reused %d-byte block at offset %d for %d bytes\n",
			idx, blk.Size, int(h), size)
		return
	}
	fmt.Fprintf(s.out, "#%d: allocated %d bytes at offset %d\n", idx, size, int(h))
}

func (s *Session) free(args []string) {
	if len(args) != 1 {
		s.errorf("Usage: free <index>")
		return
	}
	idx, err := strconv.Atoi(args[0])
	if err != nil || idx < 0 || idx >= len(s.handles) {
		s.errorf("No allocation #%s", args[0])
		return
	}

	h := s.handles[idx]
	if err := s.a.Free(h); err != nil {
		if errors.Is(err, alloc.ErrInvalidHandle) {
			s.errorf("Cannot free #%d: %v", idx, err)
			return
		}
		s.errorf("%v", err)
		return
	}
	fmt.Fprintf(s.out, "#%d: freed block at offset %d\n", idx, int(h))
}

// statusJSON is the --json shape of "status".
type statusJSON struct {
	report.Usage
	Blocks []alloc.Block `json:"blocks"`
}

func (s *Session) status() {
	blocks := s.a.Blocks()
	u := report.Status(blocks, s.a.Capacity())

	if s.opts.JSON {
		enc := json.NewEncoder(s.out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(statusJSON{Usage: u, Blocks: blocks}); err != nil {
			s.errorf("%v", err)
		}
		return
	}

	fmt.Fprintln(s.out, s.opts.Theme.Title.Render("Allocator status: "+report.Headline(u, s.opts.Lang)))
	s.blocks()
	fmt.Fprintln(s.out, report.Summary(u, s.opts.Lang))
}

func (s *Session) blocks() {
	lines := report.Describe(s.a.Blocks())
	if len(lines) == 0 {
		fmt.Fprintln(s.out, s.opts.Theme.Muted.Render("(no blocks)"))
		return
	}
	for _, l := range lines {
		style, glyph := s.opts.Theme.Used, s.opts.Symbols.Used
		if l.Free {
			style, glyph = s.opts.Theme.Free, s.opts.Symbols.Free
		}
		fmt.Fprintf(s.out, "%s %s\n", style.Render(glyph), l)
	}
}

func (s *Session) visualize() {
	var sb strings.Builder
	for _, seg := range report.Segments(s.a.Blocks()) {
		style, glyph := s.opts.Theme.Used, s.opts.Symbols.Used
		if seg.Free {
			style, glyph = s.opts.Theme.Free, s.opts.Symbols.Free
		}
		sb.WriteString(style.Render(strings.Repeat(glyph, seg.Count)))
	}
	fmt.Fprintf(s.out, "[%s]\n", sb.String())
}

func (s *Session) check() {
	if err := s.a.Check(); err != nil {
		s.errorf("%v", err)
		return
	}
	fmt.Fprintln(s.out, "OK")
}

// block finds the table entry starting at h.
func (s *Session) block(h alloc.Handle) (alloc.Block, bool) {
	for _, b := range s.a.Blocks() {
		if b.Start == int(h) {
			return b, true
		}
	}
	return alloc.Block{}, false
}

func (s *Session) errorf(format string, args ...any) {
	fmt.Fprintln(s.out, s.opts.Theme.Error.Render(fmt.Sprintf(format, args...)))
}
