package transcript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchSegments() []Segment {
	return []Segment{
		{ID: "a", Text: "the theme of the show"},
		{ID: "b", Text: "nothing here"},
		{ID: "c", Text: "The End"},
	}
}

func TestSearch_WholeWord(t *testing.T) {
	matches := Search(searchSegments(), "the", SearchOptions{WholeWord: true})

	// "theme" and "nothing" must not match; "The End" matches case-insensitively
	require.Len(t, matches, 3)
	assert.Equal(t, "a", matches[0].SegmentID)
	assert.Equal(t, 0, matches[0].MatchStart)
	assert.Equal(t, "a", matches[1].SegmentID)
	assert.Equal(t, 13, matches[1].MatchStart)
	assert.Equal(t, "c", matches[2].SegmentID)
}

func TestSearch_WholeWordSingleSegment(t *testing.T) {
	segs := []Segment{{ID: "a", Text: "the theme"}}

	matches := Search(segs, "the", SearchOptions{CaseSensitive: false, WholeWord: true})

	require.Len(t, matches, 1)
	assert.Equal(t, 0, matches[0].MatchStart)
	assert.Equal(t, 3, matches[0].MatchEnd)
}

func TestSearch_CaseSensitive(t *testing.T) {
	matches := Search(searchSegments(), "The", SearchOptions{CaseSensitive: true})

	require.Len(t, matches, 1)
	assert.Equal(t, "c", matches[0].SegmentID)
}

func TestSearch_SegmentOrder(t *testing.T) {
	matches := Search(searchSegments(), "e", SearchOptions{})

	for i := 1; i < len(matches); i++ {
		prev, cur := matches[i-1], matches[i]
		ordered := prev.SegmentIndex < cur.SegmentIndex ||
			(prev.SegmentIndex == cur.SegmentIndex && prev.MatchStart < cur.MatchStart)
		assert.True(t, ordered, "matches out of order at %d", i)
	}
}

func TestSearch_InvalidPatternFallsBackToLiteral(t *testing.T) {
	segs := []Segment{{ID: "a", Text: "cost is $5 (five"}}

	matches := Search(segs, "(five", SearchOptions{})

	require.Len(t, matches, 1)
	assert.Equal(t, 11, matches[0].MatchStart)
}

func TestSearch_EmptyPattern(t *testing.T) {
	assert.Empty(t, Search(searchSegments(), "", SearchOptions{}))
}

func TestReplaceAll(t *testing.T) {
	segs := searchSegments()

	out := ReplaceAll(segs, "the", "a")

	assert.Equal(t, "a ame of a show", out[0].Text)
	assert.Equal(t, "a End", out[2].Text)
	// untouched segment is byte-for-byte unchanged
	assert.Equal(t, segs[1], out[1])
	// input is not mutated
	assert.Equal(t, "the theme of the show", segs[0].Text)
}

func TestReplaceAll_NoMatches(t *testing.T) {
	segs := searchSegments()

	out := ReplaceAll(segs, "zebra", "horse")

	assert.Equal(t, segs, out)
}
