package report

import (
	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Summary renders u as "Total: 1,024 bytes | Used: 192 bytes | Free: 832 bytes"
// with digit grouping for tag.
func Summary(u Usage, tag language.Tag) string {
	p := message.NewPrinter(tag)
	return p.Sprintf("Total: %d bytes | Used: %d bytes | Free: %d bytes",
		u.TotalCapacity, u.UsedBytes, u.FreeBytes)
}

// Headline renders a short capacity line, e.g. "1.0 KiB arena, 18.8% used, 3 blocks".
func Headline(u Usage, tag language.Tag) string {
	p := message.NewPrinter(tag)
	pct := 0.0
	if u.TotalCapacity > 0 {
		pct = float64(u.UsedBytes) * 100 / float64(u.TotalCapacity)
	}
	return p.Sprintf("%s arena, %.1f%% used, %d blocks",
		humanize.IBytes(uint64(u.TotalCapacity)), pct, u.UsedBlocks+u.FreeBlocks)
}
