package pentoface

import (
	"fmt"
	"strconv"
	"strings"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication happens in the renderers.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa" (the leading '#' is optional).
func ParseHexColor(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 && len(s) != 8 {
		return Color{}, fmt.Errorf("pentoface: bad color %q: want 6 or 8 hex digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("pentoface: bad color %q: %w", s, err)
	}
	if len(s) == 6 {
		v = v<<8 | 0xff
	}
	return Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Union returns the smallest rectangle containing both r and other.
// A zero-sized r is treated as empty.
func (r Rect) Union(other Rect) Rect {
	if r.Width == 0 && r.Height == 0 {
		return other
	}
	x0 := min(r.X, other.X)
	y0 := min(r.Y, other.Y)
	x1 := max(r.X+r.Width, other.X+other.Width)
	y1 := max(r.Y+r.Height, other.Y+other.Height)
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// NodeType distinguishes rendering behavior for a Node.
type NodeType uint8

const (
	NodeTypeContainer NodeType = iota // group node with no visual output
	NodeTypeSprite                    // renders a solid unit quad tinted by Color
)
