package style

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// text casing applied to caption words before measurement and drawing
type Transform string

const (
	TransformNone       Transform = "none"
	TransformCapitalize Transform = "capitalize"
	TransformUppercase  Transform = "uppercase"
	TransformLowercase  Transform = "lowercase"
)

var titleCaser = cases.Title(language.Und)

// ApplyTransform applies a casing transform to text. All transforms are
// idempotent, so re-applying one through the layout path cannot compound.
func ApplyTransform(text string, t Transform) string {
	switch t {
	case TransformCapitalize:
		return titleCaser.String(strings.ToLower(text))
	case TransformUppercase:
		return strings.ToUpper(text)
	case TransformLowercase:
		return strings.ToLower(text)
	default:
		return text
	}
}
