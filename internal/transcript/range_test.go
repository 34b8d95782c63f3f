package transcript

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mosegrant/capkit/internal/style"
)

func rangeSegments() []Segment {
	mk := func(id string, start, end time.Duration) Segment {
		return Segment{ID: id, Start: start, End: end, Style: style.Default()}
	}
	return []Segment{
		mk("before", 0, 1000*time.Millisecond),
		mk("overlap-start", 500*time.Millisecond, 1500*time.Millisecond),
		mk("inside", 1200*time.Millisecond, 1800*time.Millisecond),
		mk("overlap-end", 1900*time.Millisecond, 2500*time.Millisecond),
		mk("after", 2000*time.Millisecond, 3000*time.Millisecond),
	}
}

func TestApplyStyleToRange(t *testing.T) {
	segs := rangeSegments()
	s := style.Default()
	s.TextColor = "#ff0000"

	out := ApplyStyleToRange(segs, 1000*time.Millisecond, 2000*time.Millisecond, s)

	// segments ending at or before the window start, or starting at or
	// after the window end, are untouched
	assert.Equal(t, segs[0], out[0])
	assert.Equal(t, segs[4], out[4])

	assert.Equal(t, "#ff0000", out[1].Style.TextColor)
	assert.Equal(t, "#ff0000", out[2].Style.TextColor)
	assert.Equal(t, "#ff0000", out[3].Style.TextColor)
}

func TestApplyStyleToRange_StylesDoNotAlias(t *testing.T) {
	segs := rangeSegments()
	s := style.Default()

	out := ApplyStyleToRange(segs, 0, 3000*time.Millisecond, s)

	out[1].Style.TextColor = "#00ff00"

	assert.NotEqual(t, out[1].Style.TextColor, out[2].Style.TextColor)
	assert.Equal(t, style.Default().TextColor, out[2].Style.TextColor)
}

func TestApplyStyleToRange_InputNotMutated(t *testing.T) {
	segs := rangeSegments()
	s := style.Default()
	s.TextColor = "#0000ff"

	ApplyStyleToRange(segs, 0, 3000*time.Millisecond, s)

	assert.Equal(t, style.Default().TextColor, segs[2].Style.TextColor)
}
