package canvas

import (
	"fmt"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	"github.com/mosegrant/capkit/internal/engine"
	"github.com/mosegrant/capkit/internal/style"
)

// fallbackFont is the family substituted when an unknown family is
// requested; caption layout degrades instead of failing.
const fallbackFont = "sans"

type faceKey struct {
	font string
	size float64
}

// Image is a raster drawing surface implementing engine.Canvas on top of a
// gg context. Font faces are cached per family and pixel size.
type Image struct {
	dc    *gg.Context
	fonts map[string]*sfnt.Font
	faces map[faceKey]font.Face
}

// NewImage creates a canvas of the given pixel dimensions with the built-in
// "sans" and "sans-bold" families registered.
func NewImage(width, height int) (*Image, error) {
	c := &Image{
		dc:    gg.NewContext(width, height),
		fonts: make(map[string]*sfnt.Font),
		faces: make(map[faceKey]font.Face),
	}
	if err := c.RegisterFont("sans", goregular.TTF); err != nil {
		return nil, err
	}
	if err := c.RegisterFont("sans-bold", gobold.TTF); err != nil {
		return nil, err
	}
	return c, nil
}

// RegisterFont adds a font family from raw TTF/OTF data.
func (c *Image) RegisterFont(name string, ttf []byte) error {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("failed to parse font %s: %w", name, err)
	}
	c.fonts[name] = f
	return nil
}

func (c *Image) face(name string, sizePx float64) font.Face {
	key := faceKey{font: name, size: sizePx}
	if f, ok := c.faces[key]; ok {
		return f
	}

	src, ok := c.fonts[name]
	if !ok {
		// unknown family: substitute silently
		src = c.fonts[fallbackFont]
	}
	face, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    sizePx,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		face = c.face(fallbackFont, sizePx)
	}
	c.faces[key] = face
	return face
}

// Measure returns the advance width of text for the given family and size.
func (c *Image) Measure(text, fontName string, sizePx float64) float64 {
	c.dc.SetFontFace(c.face(fontName, sizePx))
	w, _ := c.dc.MeasureString(text)
	return w
}

// Clear fills the whole canvas, or resets it to fully transparent.
func (c *Image) Clear(color string) {
	if color == "" || color == style.Transparent {
		c.dc.SetRGBA(0, 0, 0, 0)
	} else {
		c.dc.SetHexColor(color)
	}
	c.dc.Clear()
}

func (c *Image) FillRect(r engine.Rect, color string) {
	c.dc.SetHexColor(color)
	c.dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	c.dc.Fill()
}

// FillText draws text with (x, y) at the center of the glyph box.
func (c *Image) FillText(text, fontName string, sizePx, x, y float64, color string) {
	c.dc.SetFontFace(c.face(fontName, sizePx))
	c.dc.SetHexColor(color)
	c.dc.DrawStringAnchored(text, x, y, 0.5, 0.5)
}

// StrokeText draws a halo outline by stamping the text at offsets around
// the fill position.
func (c *Image) StrokeText(text, fontName string, sizePx, x, y float64, color string, width float64) {
	if width <= 0 {
		return
	}
	c.dc.SetFontFace(c.face(fontName, sizePx))
	c.dc.SetHexColor(color)
	n := int(width + 0.5)
	for dy := -n; dy <= n; dy++ {
		for dx := -n; dx <= n; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			c.dc.DrawStringAnchored(text, x+float64(dx), y+float64(dy), 0.5, 0.5)
		}
	}
}

func (c *Image) Save() {
	c.dc.Push()
}

func (c *Image) Restore() {
	c.dc.Pop()
}

func (c *Image) RotateAbout(degrees, x, y float64) {
	c.dc.RotateAbout(gg.Radians(degrees), x, y)
}

// SavePNG writes the canvas contents to a PNG file.
func (c *Image) SavePNG(path string) error {
	return c.dc.SavePNG(path)
}
