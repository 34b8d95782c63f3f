package transcript

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/mosegrant/capkit/internal/style"
)

// whisper-style transcript JSON with second-valued float timestamps
type rawWord struct {
	Word  string  `json:"word"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

type rawSegment struct {
	ID    string      `json:"id,omitempty"`
	Start float64     `json:"start"`
	End   float64     `json:"end"`
	Text  string      `json:"text"`
	Words []rawWord   `json:"words,omitempty"`
	Style *style.Style `json:"style,omitempty"`
}

type rawTranscript struct {
	Language string       `json:"language,omitempty"`
	Segments []rawSegment `json:"segments"`
}

// Read parses a whisper-style JSON transcript file. Segments without an ID
// get a fresh one; segments without a style get the default; segment text is
// rederived from word timestamps when present.
func Read(path string) (*Transcript, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read transcript: %w", err)
	}

	var raw rawTranscript
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse transcript: %w", err)
	}

	tr := &Transcript{Language: raw.Language}
	for _, rs := range raw.Segments {
		seg := Segment{
			ID:    rs.ID,
			Start: secondsToDuration(rs.Start),
			End:   secondsToDuration(rs.End),
			Text:  rs.Text,
			Style: style.Default(),
		}
		if seg.ID == "" {
			seg.ID = uuid.NewString()
		}
		if rs.Style != nil {
			seg.Style = rs.Style.Normalize()
		}
		for _, rw := range rs.Words {
			seg.Words = append(seg.Words, WordTimestamp{
				Word:  rw.Word,
				Start: secondsToDuration(rw.Start),
				End:   secondsToDuration(rw.End),
			})
		}
		if len(seg.Words) > 0 {
			seg.Text = JoinWords(seg.Words)
		}
		tr.Segments = append(tr.Segments, seg)
	}

	return tr, nil
}

// Write persists a transcript back to whisper-style JSON.
func Write(path string, tr *Transcript) error {
	raw := rawTranscript{Language: tr.Language}
	for _, seg := range tr.Segments {
		st := seg.Style
		rs := rawSegment{
			ID:    seg.ID,
			Start: seg.Start.Seconds(),
			End:   seg.End.Seconds(),
			Text:  seg.Text,
			Style: &st,
		}
		for _, w := range seg.Words {
			rs.Words = append(rs.Words, rawWord{
				Word:  w.Word,
				Start: w.Start.Seconds(),
				End:   w.End.Seconds(),
			})
		}
		raw.Segments = append(raw.Segments, rs)
	}

	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode transcript: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
