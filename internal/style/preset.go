package style

import (
	"fmt"
	"time"
)

// preview-only animation metadata attached to a preset.
// Hints drive the preset demo loop and are stripped before a style is
// applied to a segment, so the export path never sees them.
type AnimationHint struct {
	Type      string
	Duration  time.Duration
	Delay     time.Duration
	Intensity float64
	Direction string
}

// named, reusable style bundle
type Preset struct {
	Name      string
	Style     Style
	Animation *AnimationHint
}

// Apply returns the render-relevant style with the animation hint stripped.
func (p Preset) Apply() Style {
	return p.Style
}

var presets = []Preset{
	{
		Name:  "classic",
		Style: Default(),
	},
	{
		Name: "bold",
		Style: func() Style {
			s := Default()
			s.Font = "sans-bold"
			s.FontSize = 42
			s.TextTransform = TransformUppercase
			s.HighlighterColor = "#9932cc"
			s.BackgroundColor = "#000000"
			return s
		}(),
		Animation: &AnimationHint{
			Type:      "pop",
			Duration:  300 * time.Millisecond,
			Intensity: 1.2,
		},
	},
	{
		Name: "karaoke",
		Style: func() Style {
			s := Default()
			s.RenderMode = ModeProgressive
			s.TextAlign = AlignLeft
			s.Position = Position{X: 20, Y: 50, Z: 0}
			s.HighlighterColor = "#00e5ff"
			return s
		}(),
		Animation: &AnimationHint{
			Type:      "slide",
			Duration:  250 * time.Millisecond,
			Direction: "up",
			Intensity: 1,
		},
	},
	{
		Name: "minimal",
		Style: func() Style {
			s := Default()
			s.FontSize = 24
			s.StrokeColor = Transparent
			s.StrokeWidth = 0
			s.EmphasizeMode = true
			s.TextTransform = TransformLowercase
			return s
		}(),
	},
}

// Presets returns the built-in preset table.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// LookupPreset finds a built-in preset by name.
func LookupPreset(name string) (Preset, error) {
	for _, p := range presets {
		if p.Name == name {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("unknown preset: %s", name)
}
