package transcript

import (
	"strings"
	"time"
)

// MinWordDuration is the floor applied to a word's duration after its text
// is edited, so freshly edited words stay long enough to be individually
// highlightable.
const MinWordDuration = 500 * time.Millisecond

// UpdateWord replaces the text of the word at index and returns the new word
// list. An empty replacement is equivalent to DeleteWordKeepTiming. If the
// text changed and the word is shorter than MinWordDuration, its end time is
// extended to meet the floor. Out-of-range indices return the input unchanged.
func UpdateWord(words []WordTimestamp, index int, newText string) []WordTimestamp {
	if index < 0 || index >= len(words) {
		return words
	}
	trimmed := strings.TrimSpace(newText)
	if trimmed == "" {
		return DeleteWordKeepTiming(words, index)
	}

	out := cloneWords(words)
	changed := out[index].Word != trimmed
	out[index].Word = trimmed
	if changed {
		if d := out[index].End - out[index].Start; d < MinWordDuration {
			out[index].End = out[index].Start + MinWordDuration
		}
	}
	return out
}

// DeleteWordKeepTiming blanks the word's text but retains its timing slot,
// so later words keep their sync.
func DeleteWordKeepTiming(words []WordTimestamp, index int) []WordTimestamp {
	if index < 0 || index >= len(words) {
		return words
	}
	out := cloneWords(words)
	out[index].Word = ""
	return out
}

// DeleteWordWithAudio removes the entry entirely. Later words keep their
// original absolute times; the resulting gap is left inert.
func DeleteWordWithAudio(words []WordTimestamp, index int) []WordTimestamp {
	if index < 0 || index >= len(words) {
		return words
	}
	out := make([]WordTimestamp, 0, len(words)-1)
	out = append(out, words[:index]...)
	out = append(out, words[index+1:]...)
	return out
}

// MergeWord combines words[index] and words[index+1] into one entry spanning
// both timing slots. Merging at the last index is a no-op.
func MergeWord(words []WordTimestamp, index int) []WordTimestamp {
	if index < 0 || index >= len(words)-1 {
		return words
	}
	merged := WordTimestamp{
		Word:  strings.TrimSpace(words[index].Word + " " + words[index+1].Word),
		Start: words[index].Start,
		End:   words[index+1].End,
	}
	out := make([]WordTimestamp, 0, len(words)-1)
	out = append(out, words[:index]...)
	out = append(out, merged)
	out = append(out, words[index+2:]...)
	return out
}

// WithWords returns a copy of the segment carrying the given word list, with
// its text rederived from the words.
func (s Segment) WithWords(words []WordTimestamp) Segment {
	s.Words = words
	s.Text = JoinWords(words)
	return s
}
