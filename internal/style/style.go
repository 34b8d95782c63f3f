package style

import "math"

// rendering mode for a caption segment
type Mode string

const (
	ModeHorizontal  Mode = "horizontal"
	ModeProgressive Mode = "progressive"
)

// horizontal anchor for progressive-mode lines
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// anchor point of a caption block within the frame.
// X and Y are percentages of frame width/height, Z is a rotation in degrees.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// visual description of a caption segment.
//
// Style is a value type: assigning one is a structural clone, so a style
// applied to several segments can never alias between them.
type Style struct {
	Font             string    `json:"font"`
	FontSize         float64   `json:"fontSize"`
	TextColor        string    `json:"textColor"`
	HighlighterColor string    `json:"highlighterColor"`
	BackgroundColor  string    `json:"backgroundColor"`
	StrokeColor      string    `json:"strokeColor"`
	StrokeWidth      float64   `json:"strokeWidth"`
	TextTransform    Transform `json:"textTransform"`
	Position         Position  `json:"position"`
	Scale            float64   `json:"scale"`
	EmphasizeMode    bool      `json:"emphasizeMode"`
	RenderMode       Mode      `json:"renderMode"`
	TextAlign        Align     `json:"textAlign"`
	BurnInSubtitles  bool      `json:"burnInSubtitles"`
}

// Transparent is the color value that disables a fill or stroke.
const Transparent = "transparent"

func Default() Style {
	return Style{
		Font:             "sans",
		FontSize:         32,
		TextColor:        "#ffffff",
		HighlighterColor: "#ffd700",
		BackgroundColor:  Transparent,
		StrokeColor:      "#000000",
		StrokeWidth:      2,
		TextTransform:    TransformNone,
		Position:         Position{X: 50, Y: 80, Z: 0},
		Scale:            1,
		RenderMode:       ModeHorizontal,
		TextAlign:        AlignCenter,
	}
}

// Normalize clamps out-of-range values instead of rejecting them, so a
// malformed style still renders something.
func (s Style) Normalize() Style {
	if s.Scale < 0 {
		s.Scale = 0
	}
	if s.FontSize < 0 {
		s.FontSize = 0
	}
	if s.StrokeWidth < 0 {
		s.StrokeWidth = 0
	}
	s.Position.X = clampPercent(s.Position.X)
	s.Position.Y = clampPercent(s.Position.Y)
	s.Position.Z = wrapDegrees(s.Position.Z)
	switch s.RenderMode {
	case ModeHorizontal, ModeProgressive:
	default:
		s.RenderMode = ModeHorizontal
	}
	switch s.TextAlign {
	case AlignLeft, AlignCenter, AlignRight:
	default:
		s.TextAlign = AlignCenter
	}
	return s
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func wrapDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
