package transcript

import (
	"strings"
	"time"

	"github.com/mosegrant/capkit/internal/style"
)

// start/end time of a single transcribed word within a segment
type WordTimestamp struct {
	Word  string        `json:"word"`
	Start time.Duration `json:"start"`
	End   time.Duration `json:"end"`
}

// contiguous timed caption unit with its own text and style.
// Text is kept equal to the space-joined non-empty words whenever
// word timestamps are present.
type Segment struct {
	ID    string          `json:"id"`
	Start time.Duration   `json:"start"`
	End   time.Duration   `json:"end"`
	Text  string          `json:"text"`
	Words []WordTimestamp `json:"words,omitempty"`
	Style style.Style     `json:"style"`
}

// ordered, non-overlapping caption segments
type Transcript struct {
	Segments []Segment `json:"segments"`
	Language string    `json:"language,omitempty"`
}

// JoinWords derives segment text from its word list, skipping words whose
// text has been blanked by a keep-timing delete.
func JoinWords(words []WordTimestamp) string {
	parts := make([]string, 0, len(words))
	for _, w := range words {
		if t := strings.TrimSpace(w.Word); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}

// cloneWords copies a word list so editor operations never mutate their input.
func cloneWords(words []WordTimestamp) []WordTimestamp {
	out := make([]WordTimestamp, len(words))
	copy(out, words)
	return out
}
