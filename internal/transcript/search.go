package transcript

import (
	"regexp"
)

// options for transcript search
type SearchOptions struct {
	CaseSensitive bool
	WholeWord     bool
}

// single search hit within a segment's text
type Match struct {
	SegmentID    string
	SegmentIndex int
	MatchStart   int
	MatchEnd     int
	Context      string
}

const contextRadius = 20

// Search returns all matches of pattern across the segments, in segment
// order and left to right within a segment. An invalid pattern is retried
// as an escaped literal rather than surfaced as an error.
func Search(segments []Segment, pattern string, opts SearchOptions) []Match {
	re := compilePattern(pattern, opts)
	if re == nil {
		return nil
	}

	var matches []Match
	for i, seg := range segments {
		for _, loc := range re.FindAllStringIndex(seg.Text, -1) {
			matches = append(matches, Match{
				SegmentID:    seg.ID,
				SegmentIndex: i,
				MatchStart:   loc[0],
				MatchEnd:     loc[1],
				Context:      contextAround(seg.Text, loc[0], loc[1]),
			})
		}
	}
	return matches
}

// ReplaceAll applies a global, case-insensitive substitution of searchTerm
// to every segment's text independently. Segments with no match are
// returned untouched.
func ReplaceAll(segments []Segment, searchTerm, replaceTerm string) []Segment {
	re := compilePattern(searchTerm, SearchOptions{})
	if re == nil {
		return segments
	}

	out := make([]Segment, len(segments))
	copy(out, segments)
	for i := range out {
		if re.MatchString(out[i].Text) {
			out[i].Text = re.ReplaceAllString(out[i].Text, replaceTerm)
		}
	}
	return out
}

func compilePattern(pattern string, opts SearchOptions) *regexp.Regexp {
	if pattern == "" {
		return nil
	}

	build := func(p string) string {
		if opts.WholeWord {
			p = `\b` + p + `\b`
		}
		if !opts.CaseSensitive {
			p = `(?i)` + p
		}
		return p
	}

	re, err := regexp.Compile(build(pattern))
	if err != nil {
		// degrade to a literal match instead of failing the search
		re, err = regexp.Compile(build(regexp.QuoteMeta(pattern)))
		if err != nil {
			return nil
		}
	}
	return re
}

func contextAround(text string, start, end int) string {
	lo := start - contextRadius
	if lo < 0 {
		lo = 0
	}
	hi := end + contextRadius
	if hi > len(text) {
		hi = len(text)
	}
	return text[lo:hi]
}
