package engine

import (
	"strings"
	"time"

	"github.com/mosegrant/capkit/internal/style"
	"github.com/mosegrant/capkit/internal/transcript"
)

const (
	wordSpacing = 12.0
	wordPadding = 8.0

	// size bump for the in-place highlight in emphasize mode
	emphasisScale = 1.05
	// size bump for the newest revealed word in progressive mode
	newestScale = 1.2

	lineHeightFactor = 1.4
	boxHeightFactor  = 1.3
)

// Engine computes positioned glyph runs for a segment at a point in time.
// It is a pure function of its inputs, so the batch exporter can call it
// once per output frame with no preview state.
type Engine struct {
	measurer Measurer
}

func NewEngine(m Measurer) *Engine {
	return &Engine{measurer: m}
}

// Layout produces the glyph runs for one segment at currentTime within a
// frame of the given pixel dimensions.
func (e *Engine) Layout(
	seg transcript.Segment,
	st style.Style,
	currentTime time.Duration,
	frameWidth, frameHeight float64,
) Result {
	st = st.Normalize()

	res := Result{
		AnchorX:  frameWidth * st.Position.X / 100,
		AnchorY:  frameHeight * st.Position.Y / 100,
		Rotation: st.Position.Z,
	}

	words := visibleWords(seg.Words, st.TextTransform)
	if len(words) == 0 {
		return e.layoutPlain(seg, st, res)
	}

	switch st.RenderMode {
	case style.ModeProgressive:
		return e.layoutProgressive(words, st, currentTime, res)
	default:
		return e.layoutHorizontal(words, st, currentTime, res)
	}
}

type layoutWord struct {
	text  string
	start time.Duration
	end   time.Duration
}

// visibleWords applies the text transform once and drops words blanked by a
// keep-timing delete, leaving their timing gap inert.
func visibleWords(words []transcript.WordTimestamp, t style.Transform) []layoutWord {
	out := make([]layoutWord, 0, len(words))
	for _, w := range words {
		text := strings.TrimSpace(w.Word)
		if text == "" {
			continue
		}
		out = append(out, layoutWord{
			text:  style.ApplyTransform(text, t),
			start: w.Start,
			end:   w.End,
		})
	}
	return out
}

// isCurrent reports whether t falls inside the word's timing slot.
// Both bounds are inclusive so boundary frames count as highlighted.
func (w layoutWord) isCurrent(t time.Duration) bool {
	return w.start <= t && t <= w.end
}

// layoutPlain draws the whole segment text as one centered string with no
// highlight logic, used whenever word timestamps are absent.
func (e *Engine) layoutPlain(seg transcript.Segment, st style.Style, res Result) Result {
	text := style.ApplyTransform(strings.TrimSpace(seg.Text), st.TextTransform)
	if text == "" {
		return res
	}
	res.Words = []Word{{
		Text:     text,
		X:        res.AnchorX,
		Y:        res.AnchorY,
		FontSize: st.FontSize * st.Scale,
		Color:    st.TextColor,
	}}
	return res
}

// layoutHorizontal places all words on a single line centered on the anchor,
// highlighting the word whose timing slot contains currentTime.
func (e *Engine) layoutHorizontal(
	words []layoutWord,
	st style.Style,
	currentTime time.Duration,
	res Result,
) Result {
	fontSize := st.FontSize * st.Scale
	spacing := wordSpacing * st.Scale
	padding := wordPadding * st.Scale

	widths := make([]float64, len(words))
	total := 0.0
	for i, w := range words {
		widths[i] = e.measurer.Measure(w.text, st.Font, fontSize)
		total += widths[i] + 2*padding
	}
	total += float64(len(words)-1) * spacing

	cursor := res.AnchorX - total/2
	for i, w := range words {
		current := w.isCurrent(currentTime)
		entry := Word{
			Text:        w.text,
			X:           cursor + padding + widths[i]/2,
			Y:           res.AnchorY,
			FontSize:    fontSize,
			Color:       st.TextColor,
			Highlighted: current,
		}
		if current {
			switch {
			case st.EmphasizeMode:
				entry.FontSize = fontSize * emphasisScale
				entry.Color = st.HighlighterColor
			case st.BackgroundColor != style.Transparent:
				entry.Background = st.HighlighterColor
				entry.Box = Rect{
					X: cursor,
					Y: res.AnchorY - fontSize*boxHeightFactor/2,
					W: widths[i] + 2*padding,
					H: fontSize * boxHeightFactor,
				}
			}
		}
		res.Words = append(res.Words, entry)
		cursor += widths[i] + 2*padding + spacing
	}
	return res
}

// layoutProgressive reveals words top to bottom as currentTime passes each
// word's start. Future words are not drawn at all; the newest revealed word
// is always enlarged and recolored.
func (e *Engine) layoutProgressive(
	words []layoutWord,
	st style.Style,
	currentTime time.Duration,
	res Result,
) Result {
	fontSize := st.FontSize * st.Scale

	visible := make([]layoutWord, 0, len(words))
	for _, w := range words {
		if w.start <= currentTime {
			visible = append(visible, w)
		}
	}
	if len(visible) == 0 {
		return res
	}

	lineHeight := fontSize * lineHeightFactor
	totalHeight := float64(len(visible)) * lineHeight
	startY := res.AnchorY - totalHeight/2 + lineHeight/2

	for i, w := range visible {
		newest := i == len(visible)-1
		size := fontSize
		color := st.TextColor
		switch {
		case newest:
			size = fontSize * newestScale
			color = st.HighlighterColor
		case w.isCurrent(currentTime) && st.EmphasizeMode:
			size = fontSize * emphasisScale
			color = st.HighlighterColor
		}

		width := e.measurer.Measure(w.text, st.Font, size)
		x := res.AnchorX
		switch st.TextAlign {
		case style.AlignLeft:
			x = res.AnchorX + width/2
		case style.AlignRight:
			x = res.AnchorX - width/2
		}

		res.Words = append(res.Words, Word{
			Text:        w.text,
			X:           x,
			Y:           startY + float64(i)*lineHeight,
			FontSize:    size,
			Color:       color,
			Highlighted: newest || w.isCurrent(currentTime),
		})
	}
	return res
}
