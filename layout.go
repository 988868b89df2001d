package pentoface

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed layout.json
var defaultLayoutJSON []byte

// Layout describes a face scene: where each digit sits and how large its
// cells are, the separator dots, and how pieces look. It is the JSON form of
// the scene a Face is built over.
type Layout struct {
	Width      float64
	Height     float64
	Background Color
	Digits     []DigitLayout
	Separator  SeparatorLayout
	// PieceGap is the fraction of a cell left empty around each piece cell.
	PieceGap float64
	// PieceColors tints each shape's cells. Shapes without an entry are white.
	PieceColors [NumShapes]Color
}

// DigitLayout places one digit anchor. The anchor's top-left is the glyph's
// top-left cell corner.
type DigitLayout struct {
	Name     string
	X, Y     float64
	CellSize float64
}

// SeparatorLayout describes the hour/minute separator.
type SeparatorLayout struct {
	Name  string
	Color Color
	Dots  []Rect
}

// --- JSON structure types ---

type jsonLayout struct {
	Width      float64       `json:"width"`
	Height     float64       `json:"height"`
	Background string        `json:"background"`
	Digits     []jsonDigit   `json:"digits"`
	Separator  jsonSeparator `json:"separator"`
	Pieces     jsonPieces    `json:"pieces"`
}

type jsonDigit struct {
	Name     string  `json:"name"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	CellSize float64 `json:"cellSize"`
}

type jsonDot struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Size float64 `json:"size"`
}

type jsonSeparator struct {
	Name  string    `json:"name"`
	Color string    `json:"color"`
	Dots  []jsonDot `json:"dots"`
}

type jsonPieces struct {
	Gap    float64           `json:"gap"`
	Colors map[string]string `json:"colors"`
}

// LoadLayout parses layout JSON.
func LoadLayout(data []byte) (*Layout, error) {
	var raw jsonLayout
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("pentoface: failed to parse layout JSON: %w", err)
	}
	if raw.Width <= 0 || raw.Height <= 0 {
		return nil, fmt.Errorf("pentoface: layout size %vx%v must be positive", raw.Width, raw.Height)
	}
	if raw.Pieces.Gap < 0 || raw.Pieces.Gap >= 1 {
		return nil, fmt.Errorf("pentoface: piece gap %v outside [0, 1)", raw.Pieces.Gap)
	}

	l := &Layout{
		Width:    raw.Width,
		Height:   raw.Height,
		PieceGap: raw.Pieces.Gap,
	}
	var err error
	if l.Background, err = parseOptionalColor(raw.Background, Color{0, 0, 0, 1}); err != nil {
		return nil, fmt.Errorf("pentoface: layout background: %w", err)
	}

	for _, d := range raw.Digits {
		if d.CellSize <= 0 {
			return nil, fmt.Errorf("pentoface: digit %q: cell size must be positive", d.Name)
		}
		l.Digits = append(l.Digits, DigitLayout(d))
	}

	l.Separator.Name = raw.Separator.Name
	if l.Separator.Color, err = parseOptionalColor(raw.Separator.Color, ColorWhite); err != nil {
		return nil, fmt.Errorf("pentoface: separator: %w", err)
	}
	for _, dot := range raw.Separator.Dots {
		l.Separator.Dots = append(l.Separator.Dots, Rect{X: dot.X, Y: dot.Y, Width: dot.Size, Height: dot.Size})
	}

	for s := range l.PieceColors {
		l.PieceColors[s] = ColorWhite
	}
	for letter, hex := range raw.Pieces.Colors {
		s, ok := ShapeForLetter(letter)
		if !ok {
			return nil, fmt.Errorf("pentoface: piece color for unknown shape %q", letter)
		}
		if l.PieceColors[s], err = ParseHexColor(hex); err != nil {
			return nil, fmt.Errorf("pentoface: piece color %s: %w", letter, err)
		}
	}
	if b := l.Bounds(); b.X < 0 || b.Y < 0 || b.X+b.Width > l.Width || b.Y+b.Height > l.Height {
		return nil, fmt.Errorf("pentoface: layout content %+v exceeds %vx%v", b, l.Width, l.Height)
	}
	return l, nil
}

// Bounds returns the smallest rectangle holding every digit glyph and
// separator dot.
func (l *Layout) Bounds() Rect {
	var b Rect
	for _, d := range l.Digits {
		b = b.Union(Rect{X: d.X, Y: d.Y, Width: GlyphColumns * d.CellSize, Height: GlyphRows * d.CellSize})
	}
	for _, r := range l.Separator.Dots {
		b = b.Union(r)
	}
	return b
}

func parseOptionalColor(s string, def Color) (Color, error) {
	if s == "" {
		return def, nil
	}
	return ParseHexColor(s)
}

// DefaultLayout returns the built-in layout: hours and minutes across the top
// with the separator between them, seconds smaller underneath.
func DefaultLayout() *Layout {
	l, err := LoadLayout(defaultLayoutJSON)
	if err != nil {
		panic(err)
	}
	return l
}

// Build creates a scene from the layout. Digit anchors, the separator and one
// hidden prototype per shape are direct children of the root. Anchors carry
// their cell size as scale; prototypes are laid out in cell units.
func (l *Layout) Build() *Scene {
	s := NewScene()
	s.Width, s.Height = l.Width, l.Height
	s.ClearColor = l.Background
	root := s.Root()

	for _, d := range l.Digits {
		a := NewContainer(d.Name)
		a.X, a.Y = d.X, d.Y
		a.ScaleX, a.ScaleY = d.CellSize, d.CellSize
		root.AddChild(a)
	}

	if l.Separator.Name != "" {
		sep := NewContainer(l.Separator.Name)
		sep.Alpha = 0
		for i, r := range l.Separator.Dots {
			dot := NewSprite(fmt.Sprintf("%s.dot%d", l.Separator.Name, i), l.Separator.Color)
			dot.X, dot.Y = r.X, r.Y
			dot.ScaleX, dot.ScaleY = r.Width, r.Height
			sep.AddChild(dot)
		}
		root.AddChild(sep)
	}

	for i := range NumShapes {
		root.AddChild(l.buildPrototype(Shape(i)))
	}
	return s
}

// buildPrototype makes the hidden template a shape's pool clones.
func (l *Layout) buildPrototype(shape Shape) *Node {
	proto := NewContainer(shape.PrototypeName())
	proto.Visible = false
	inset := l.PieceGap / 2
	for i, c := range shape.Cells() {
		cell := NewSprite(fmt.Sprintf("%s.cell%d", proto.Name, i), l.PieceColors[shape])
		cell.X = float64(c.X) + inset
		cell.Y = float64(c.Y) + inset
		cell.ScaleX = 1 - l.PieceGap
		cell.ScaleY = 1 - l.PieceGap
		proto.AddChild(cell)
	}
	return proto
}
