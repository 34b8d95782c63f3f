package engine

// Measurer computes the advance width of text for a font family at a pixel
// size. It must be queried with the exact font string used for drawing,
// since widths are not portable across font variants.
type Measurer interface {
	Measure(text, font string, sizePx float64) float64
}

// Canvas is the drawing surface contract the renderer draws onto. Text
// coordinates are the center of the glyph box. Implementations substitute a
// fallback face for unknown font families instead of failing.
type Canvas interface {
	Measurer

	Clear(color string)
	FillRect(r Rect, color string)
	FillText(text, font string, sizePx, x, y float64, color string)
	StrokeText(text, font string, sizePx, x, y float64, color string, width float64)

	Save()
	Restore()
	RotateAbout(degrees, x, y float64)
}

// axis-aligned rectangle in canvas pixels
type Rect struct {
	X, Y, W, H float64
}

// positioned, styled glyph run for one word
type Word struct {
	Text        string
	X, Y        float64 // center of the glyph box
	FontSize    float64
	Color       string
	Background  string // empty when no box is drawn
	Box         Rect   // valid only when Background is set
	Highlighted bool
}

// Result is the layout output for one segment at one instant. It is
// recomputed on every call; highlight state depends on the current time, so
// results are never cached across time steps.
type Result struct {
	Words    []Word
	AnchorX  float64
	AnchorY  float64
	Rotation float64 // degrees, applied about the anchor when rendering
}
