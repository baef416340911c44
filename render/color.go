package render

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// NamedColor resolves an SVG 1.1 color name from a prefab. An empty name
// means white.
func NamedColor(name string) (color.Color, error) {
	if name == "" {
		return color.White, nil
	}
	if c, ok := colornames.Map[strings.ToLower(name)]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("unknown color name %q", name)
}
