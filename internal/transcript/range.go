package transcript

import (
	"time"

	"github.com/mosegrant/capkit/internal/style"
)

// ApplyStyleToRange replaces the style of every segment overlapping the
// [start, end) window with its own copy of s. Segments fully outside the
// window are returned unchanged.
func ApplyStyleToRange(segments []Segment, start, end time.Duration, s style.Style) []Segment {
	out := make([]Segment, len(segments))
	copy(out, segments)
	for i := range out {
		if out[i].Start < end && out[i].End > start {
			// value assignment: each segment gets its own clone
			out[i].Style = s
		}
	}
	return out
}
