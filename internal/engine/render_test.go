package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mosegrant/capkit/internal/style"
)

// recording canvas for asserting draw order and transform usage
type recordingCanvas struct {
	ops []string
}

func (c *recordingCanvas) Measure(text, font string, sizePx float64) float64 {
	return float64(len(text)) * 10
}
func (c *recordingCanvas) Clear(color string)              { c.ops = append(c.ops, "clear") }
func (c *recordingCanvas) FillRect(r Rect, color string)   { c.ops = append(c.ops, "rect:"+color) }
func (c *recordingCanvas) Save()                           { c.ops = append(c.ops, "save") }
func (c *recordingCanvas) Restore()                        { c.ops = append(c.ops, "restore") }
func (c *recordingCanvas) RotateAbout(deg, x, y float64)   { c.ops = append(c.ops, "rotate") }
func (c *recordingCanvas) FillText(text, font string, sizePx, x, y float64, color string) {
	c.ops = append(c.ops, "fill:"+text)
}
func (c *recordingCanvas) StrokeText(text, font string, sizePx, x, y float64, color string, width float64) {
	c.ops = append(c.ops, "stroke:"+text)
}

func resultWithBox() Result {
	return Result{
		AnchorX: 100,
		AnchorY: 100,
		Words: []Word{
			{
				Text:       "WORD",
				X:          100,
				Y:          100,
				FontSize:   30,
				Color:      "#ffffff",
				Background: "#ffd700",
				Box:        Rect{X: 80, Y: 85, W: 40, H: 30},
			},
		},
	}
}

func TestRender_DrawOrder(t *testing.T) {
	c := &recordingCanvas{}
	st := style.Default()

	NewRenderer().Render(c, resultWithBox(), st)

	require.Equal(t, []string{
		"save",
		"rect:#ffd700",
		"stroke:WORD",
		"fill:WORD",
		"restore",
	}, c.ops)
}

func TestRender_SkipsStrokeWhenTransparent(t *testing.T) {
	c := &recordingCanvas{}
	st := style.Default()
	st.StrokeColor = style.Transparent

	NewRenderer().Render(c, resultWithBox(), st)

	assert.NotContains(t, c.ops, "stroke:WORD")
	assert.Contains(t, c.ops, "fill:WORD")
}

func TestRender_SkipsStrokeWhenZeroWidth(t *testing.T) {
	c := &recordingCanvas{}
	st := style.Default()
	st.StrokeWidth = 0

	NewRenderer().Render(c, resultWithBox(), st)

	assert.NotContains(t, c.ops, "stroke:WORD")
}

func TestRender_RotatesAboutAnchorOnce(t *testing.T) {
	c := &recordingCanvas{}
	st := style.Default()
	st.Position.Z = 15

	res := resultWithBox()
	res.Rotation = 15
	res.Words = append(res.Words, Word{Text: "TWO", X: 150, Y: 100, FontSize: 30, Color: "#fff"})

	NewRenderer().Render(c, res, st)

	rotations := 0
	for _, op := range c.ops {
		if op == "rotate" {
			rotations++
		}
	}
	assert.Equal(t, 1, rotations)
	assert.Equal(t, "save", c.ops[0])
	assert.Equal(t, "restore", c.ops[len(c.ops)-1])
}

func TestRender_EmptyResultDrawsNothing(t *testing.T) {
	c := &recordingCanvas{}

	NewRenderer().Render(c, Result{}, style.Default())

	assert.Empty(t, c.ops)
}

func TestPreview_RenderFrameIsPure(t *testing.T) {
	c := &recordingCanvas{}
	seg := previewSegment()
	st := testStyle()
	p := NewPreview(NewCursor(time.Millisecond, nil), NewEngine(c), NewRenderer(), c, seg, st, frameW, frameH)

	p.RenderFrame(600 * time.Millisecond)
	first := append([]string(nil), c.ops...)

	c.ops = nil
	p.RenderFrame(600 * time.Millisecond)

	assert.Equal(t, first, c.ops)
}

func TestPreview_UnmountIsIdempotent(t *testing.T) {
	c := &recordingCanvas{}
	p := NewPreview(NewCursor(time.Millisecond, nil), NewEngine(c), NewRenderer(), c,
		previewSegment(), testStyle(), frameW, frameH)

	p.Mount(nil)
	p.Unmount()
	p.Unmount()
}
