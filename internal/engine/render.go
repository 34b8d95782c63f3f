package engine

import (
	"github.com/mosegrant/capkit/internal/style"
)

// Renderer draws layout results onto a canvas. It mutates only the canvas
// it is handed.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render draws each word of the result: background box first, then stroke,
// then fill on top. Rotation is applied once about the segment anchor, so
// words share the block's orientation rather than rotating independently.
func (r *Renderer) Render(c Canvas, res Result, st style.Style) {
	if len(res.Words) == 0 {
		return
	}
	st = st.Normalize()

	c.Save()
	defer c.Restore()
	if res.Rotation != 0 {
		c.RotateAbout(res.Rotation, res.AnchorX, res.AnchorY)
	}

	stroke := st.StrokeColor != style.Transparent && st.StrokeWidth > 0
	for _, w := range res.Words {
		if w.Background != "" && w.Background != style.Transparent {
			c.FillRect(w.Box, w.Background)
		}
		if stroke {
			c.StrokeText(w.Text, st.Font, w.FontSize, w.X, w.Y, st.StrokeColor, st.StrokeWidth)
		}
		c.FillText(w.Text, st.Font, w.FontSize, w.X, w.Y, w.Color)
	}
}
