package report

import (
	"strings"

	"github.com/joshuapare/heapsim/alloc"
)

// BytesPerSymbol is the density of the heap map.
const BytesPerSymbol = 8

// Symbols selects the glyphs used for used and free blocks.
type Symbols struct {
	Used string
	Free string
}

var (
	// DefaultSymbols is plain ASCII.
	DefaultSymbols = Symbols{Used: "#", Free: "."}

	// EmojiSymbols matches the colored squares of the status report.
	EmojiSymbols = Symbols{Used: "🟥", Free: "🟩"}
)

// Segment is a run of identical symbols produced for one block.
type Segment struct {
	Free  bool
	Count int
}

// Segments returns max(1, size/BytesPerSymbol) symbols per block in table order.
// Zero-size records produce nothing. The map is lossy: it does not show gaps or
// the unallocated tail.
func Segments(blocks []alloc.Block) []Segment {
	segs := make([]Segment, 0, len(blocks))
	for _, b := range blocks {
		if b.Size == 0 {
			continue
		}
		segs = append(segs, Segment{Free: b.Free, Count: max(1, b.Size/BytesPerSymbol)})
	}
	return segs
}

// Visualize renders the heap map as a single string.
func Visualize(blocks []alloc.Block, sym Symbols) string {
	var sb strings.Builder
	for _, s := range Segments(blocks) {
		glyph := sym.Used
		if s.Free {
			glyph = sym.Free
		}
		sb.WriteString(strings.Repeat(glyph, s.Count))
	}
	return sb.String()
}
