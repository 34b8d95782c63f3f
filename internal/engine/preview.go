package engine

import (
	"time"

	"github.com/mosegrant/capkit/internal/style"
	"github.com/mosegrant/capkit/internal/transcript"
)

// DemoLoopDuration is the local timeline length a preset demo loops over.
const DemoLoopDuration = 3 * time.Second

// Preview binds a cursor, engine and renderer to one segment on one canvas.
// Each preview owns its own cursor and surface, so several preview cards can
// run side by side without shared state.
type Preview struct {
	cursor   *Cursor
	engine   *Engine
	renderer *Renderer
	canvas   Canvas

	segment transcript.Segment
	style   style.Style
	width   float64
	height  float64
}

func NewPreview(
	cursor *Cursor,
	eng *Engine,
	r *Renderer,
	c Canvas,
	seg transcript.Segment,
	st style.Style,
	width, height float64,
) *Preview {
	return &Preview{
		cursor:   cursor,
		engine:   eng,
		renderer: r,
		canvas:   c,
		segment:  seg,
		style:    st,
		width:    width,
		height:   height,
	}
}

// Mount starts the demo loop. Elapsed wall time is mapped into the
// segment's local timeline modulo DemoLoopDuration. onFrame, if set, runs
// after each frame is drawn.
func (p *Preview) Mount(onFrame func(t time.Duration)) {
	p.cursor.Start(func(elapsed time.Duration) {
		t := elapsed % DemoLoopDuration
		p.RenderFrame(t)
		if onFrame != nil {
			onFrame(t)
		}
	})
}

// Unmount tears the preview down. It is synchronous and idempotent; the
// canvas is safe to dispose once it returns.
func (p *Preview) Unmount() {
	p.cursor.Stop()
}

// RenderFrame draws the segment at an arbitrary local time. The same path
// serves the demo loop and deterministic per-frame export.
func (p *Preview) RenderFrame(t time.Duration) {
	p.canvas.Clear(style.Transparent)
	res := p.engine.Layout(p.segment, p.style, t, p.width, p.height)
	p.renderer.Render(p.canvas, res, p.style)
}
