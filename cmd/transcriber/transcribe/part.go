package transcribe

import (
	"fmt"
	"strings"
)

// Part is the transcript of a single chunk. It is created once per chunk and
// never mutated afterwards.
type Part struct {
	Index   int
	StartMs int64
	EndMs   int64
	Text    string
}

// Header returns the human-readable range line prefixed to the part in the
// full transcript, e.g. "[Part 1  0:00:00–0:00:40]".
func (p Part) Header() string {
	return fmt.Sprintf("[Part %d  %s–%s]", p.Index, HumanTS(p.StartMs), HumanTS(p.EndMs))
}

// Filename returns the per-part output filename. Timestamps are rendered
// with colons replaced since colons are invalid in filenames on several
// filesystems.
func (p Part) Filename(base string) string {
	return fmt.Sprintf("%s_part%03d_%s_to_%s.txt",
		base, p.Index, sanitizeTS(p.StartMs), sanitizeTS(p.EndMs))
}

// HumanTS converts ts milliseconds in the H:MM:SS format.
func HumanTS(ts int64) string {
	sec := ts / 1000

	h := sec / 3600
	m := (sec % 3600) / 60
	s := sec % 60

	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}

func sanitizeTS(ts int64) string {
	return strings.ReplaceAll(HumanTS(ts), ":", "-")
}
