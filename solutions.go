package pentoface

import "fmt"

// Placement puts one pentomino into a digit's grid. The shape is mirrored
// horizontally when Flipped, turned clockwise Rotation quarter turns, and its
// bounding box's top-left cell placed at (Col, Row).
type Placement struct {
	Shape    Shape
	Col, Row int
	Rotation int
	Flipped  bool
}

// Cells returns the grid cells the placement covers.
func (p Placement) Cells() []Cell {
	cells := p.Shape.Oriented(p.Rotation, p.Flipped)
	for i := range cells {
		cells[i].X += p.Col
		cells[i].Y += p.Row
	}
	return cells
}

// Tiling is a set of placements that covers a digit glyph exactly.
type Tiling []Placement

// Solutions returns the tilings of digit d. The returned slice MUST NOT be
// mutated. Panics if d is outside 0..9.
func Solutions(d int) []Tiling {
	checkDigit(d)
	return solutionTable[d]
}

func checkDigit(d int) {
	if d < 0 || d > 9 {
		panic(fmt.Sprintf("pentoface: digit %d out of range", d))
	}
}

// CheckTiling reports why t fails to cover digit d's glyph exactly, or nil.
func CheckTiling(d int, t Tiling) error {
	want := make(map[Cell]bool)
	for _, c := range Glyph(d) {
		want[c] = true
	}
	seen := make(map[Cell]bool, len(want))
	for i, pl := range t {
		if int(pl.Shape) >= NumShapes {
			return fmt.Errorf("placement %d: unknown shape %d", i, pl.Shape)
		}
		for _, c := range pl.Cells() {
			if !want[c] {
				return fmt.Errorf("placement %d (%s at %d,%d): cell %v outside glyph", i, pl.Shape, pl.Col, pl.Row, c)
			}
			if seen[c] {
				return fmt.Errorf("placement %d (%s at %d,%d): cell %v overlaps", i, pl.Shape, pl.Col, pl.Row, c)
			}
			seen[c] = true
		}
	}
	if len(seen) != len(want) {
		return fmt.Errorf("%d of %d glyph cells uncovered", len(want)-len(seen), len(want))
	}
	return nil
}

// validateTable panics unless every digit has at least one tiling and every
// tiling covers its glyph exactly.
func validateTable(table [10][]Tiling) [10][]Tiling {
	for d, tilings := range table {
		if len(tilings) == 0 {
			panic(fmt.Sprintf("pentoface: no tilings for digit %d", d))
		}
		for i, t := range tilings {
			if err := CheckTiling(d, t); err != nil {
				panic(fmt.Sprintf("pentoface: digit %d tiling %d: %v", d, i, err))
			}
		}
	}
	return table
}

var solutionTable = validateTable([10][]Tiling{
	{ // 0
		{{ShapeP, 0, 0, 1, false}, {ShapeL, 3, 0, 3, true}, {ShapeN, 0, 1, 3, true}, {ShapeL, 3, 1, 1, true}, {ShapeY, 0, 3, 3, false}, {ShapeP, 3, 5, 0, true}, {ShapeF, 0, 6, 3, true}, {ShapeY, 1, 7, 2, false}},
		{{ShapeF, 0, 0, 3, false}, {ShapeY, 1, 0, 0, true}, {ShapeP, 3, 1, 2, false}, {ShapeP, 0, 2, 2, true}, {ShapeP, 3, 4, 0, true}, {ShapeL, 0, 5, 3, true}, {ShapeV, 1, 6, 0, false}, {ShapeF, 2, 6, 1, false}},
		{{ShapeP, 0, 0, 1, false}, {ShapeI, 3, 0, 1, false}, {ShapeI, 4, 0, 1, false}, {ShapeP, 0, 1, 2, true}, {ShapeI, 0, 4, 1, false}, {ShapeI, 1, 4, 1, false}, {ShapeN, 2, 5, 3, false}, {ShapeL, 3, 5, 1, true}},
		{{ShapeL, 0, 0, 3, true}, {ShapeV, 2, 0, 2, false}, {ShapeI, 1, 1, 1, false}, {ShapeZ, 2, 1, 0, false}, {ShapeN, 0, 4, 1, true}, {ShapeP, 3, 4, 0, false}, {ShapeP, 3, 6, 2, false}, {ShapeU, 0, 7, 0, false}},
		{{ShapeI, 0, 0, 0, false}, {ShapeL, 0, 1, 0, false}, {ShapeY, 3, 1, 1, false}, {ShapeY, 0, 2, 1, false}, {ShapeY, 3, 3, 3, false}, {ShapeI, 0, 4, 1, false}, {ShapeP, 1, 6, 2, true}, {ShapeP, 3, 6, 2, false}},
		{{ShapeL, 0, 0, 2, true}, {ShapeL, 1, 0, 0, true}, {ShapeL, 0, 2, 3, true}, {ShapeP, 3, 2, 0, false}, {ShapeI, 1, 3, 1, false}, {ShapeY, 3, 4, 1, false}, {ShapeV, 0, 6, 0, false}, {ShapeF, 2, 6, 2, true}},
		{{ShapeN, 0, 0, 3, true}, {ShapeL, 1, 0, 0, true}, {ShapeL, 2, 1, 1, false}, {ShapeN, 0, 2, 1, true}, {ShapeL, 3, 2, 1, true}, {ShapeP, 0, 5, 2, true}, {ShapeP, 3, 6, 0, true}, {ShapeY, 0, 7, 2, false}},
		{{ShapeP, 0, 0, 1, false}, {ShapeL, 3, 0, 3, true}, {ShapeY, 0, 1, 3, true}, {ShapeI, 4, 1, 1, false}, {ShapeI, 1, 3, 1, false}, {ShapeL, 2, 4, 1, true}, {ShapeL, 0, 5, 3, false}, {ShapeV, 2, 6, 3, false}},
	},
	{ // 1
		{{ShapeL, 0, 0, 0, false}, {ShapeW, 0, 1, 1, false}, {ShapeP, 2, 1, 2, false}, {ShapeT, 1, 3, 3, false}, {ShapeW, 0, 5, 3, false}, {ShapeN, 3, 5, 1, true}, {ShapeY, 0, 7, 2, false}},
		{{ShapeL, 0, 0, 3, false}, {ShapeU, 1, 0, 2, false}, {ShapeX, 1, 1, 0, false}, {ShapeT, 1, 3, 1, false}, {ShapeP, 1, 5, 0, false}, {ShapeP, 3, 6, 2, true}, {ShapeU, 0, 7, 0, false}},
		{{ShapeF, 0, 0, 3, false}, {ShapeV, 1, 0, 2, false}, {ShapeW, 0, 2, 0, false}, {ShapeN, 2, 2, 3, true}, {ShapeZ, 0, 5, 0, true}, {ShapeW, 2, 6, 2, false}, {ShapeY, 0, 7, 2, false}},
		{{ShapeL, 0, 0, 0, true}, {ShapeV, 0, 1, 1, false}, {ShapeP, 1, 2, 0, false}, {ShapeY, 2, 2, 1, true}, {ShapeT, 0, 5, 2, false}, {ShapeW, 2, 5, 0, false}, {ShapeI, 0, 8, 0, false}},
		{{ShapeU, 0, 0, 2, false}, {ShapeY, 2, 0, 1, true}, {ShapeP, 0, 1, 2, false}, {ShapeY, 2, 3, 3, true}, {ShapeL, 1, 4, 3, false}, {ShapeN, 3, 5, 1, true}, {ShapeL, 0, 7, 2, true}},
		{{ShapeY, 0, 0, 3, false}, {ShapeP, 1, 0, 3, true}, {ShapeI, 3, 1, 1, false}, {ShapeN, 1, 2, 1, false}, {ShapeT, 1, 4, 2, false}, {ShapeL, 0, 7, 2, true}, {ShapeL, 1, 7, 0, true}},
		{{ShapeL, 0, 0, 3, false}, {ShapeP, 1, 0, 1, false}, {ShapeZ, 1, 1, 1, true}, {ShapeN, 2, 3, 3, true}, {ShapeP, 1, 4, 2, true}, {ShapeL, 0, 7, 0, false}, {ShapeL, 1, 7, 2, false}},
		{{ShapeT, 0, 0, 0, false}, {ShapeP, 2, 0, 2, false}, {ShapeV, 0, 1, 0, false}, {ShapeF, 1, 3, 1, true}, {ShapeN, 0, 5, 3, false}, {ShapeN, 3, 5, 1, true}, {ShapeT, 1, 6, 2, false}},
	},
	{ // 2
		{{ShapeP, 0, 0, 1, true}, {ShapeP, 3, 0, 0, true}, {ShapeV, 1, 2, 3, false}, {ShapeV, 2, 3, 3, false}, {ShapeN, 0, 4, 3, true}, {ShapeV, 0, 6, 0, false}, {ShapeP, 2, 7, 1, false}},
		{{ShapeP, 0, 0, 1, true}, {ShapeP, 3, 0, 0, false}, {ShapeY, 3, 2, 1, false}, {ShapeL, 0, 4, 0, true}, {ShapeT, 0, 5, 0, false}, {ShapeV, 0, 6, 0, false}, {ShapeP, 2, 7, 1, false}},
		{{ShapeY, 0, 0, 2, true}, {ShapeV, 2, 0, 2, false}, {ShapeP, 3, 2, 2, true}, {ShapeN, 0, 4, 3, true}, {ShapeN, 1, 4, 0, false}, {ShapeV, 0, 6, 0, false}, {ShapeP, 2, 7, 1, false}},
		{{ShapeY, 0, 0, 2, true}, {ShapeV, 2, 0, 2, false}, {ShapeN, 3, 2, 3, true}, {ShapeU, 0, 4, 1, false}, {ShapeP, 1, 4, 1, true}, {ShapeI, 0, 7, 0, false}, {ShapeI, 0, 8, 0, false}},
		{{ShapeP, 0, 0, 1, true}, {ShapeP, 3, 0, 0, false}, {ShapeL, 3, 2, 1, true}, {ShapeL, 0, 3, 2, false}, {ShapeP, 0, 5, 3, true}, {ShapeP, 0, 7, 3, true}, {ShapeP, 2, 7, 1, true}},
		{{ShapeN, 0, 0, 2, true}, {ShapeF, 2, 0, 1, true}, {ShapeY, 3, 2, 1, false}, {ShapeL, 0, 4, 3, true}, {ShapeP, 1, 4, 1, true}, {ShapeT, 0, 6, 2, false}, {ShapeP, 2, 7, 1, false}},
		{{ShapeP, 0, 0, 1, true}, {ShapeP, 3, 0, 0, true}, {ShapeV, 1, 2, 3, false}, {ShapeV, 2, 3, 3, false}, {ShapeI, 0, 4, 1, false}, {ShapeL, 1, 5, 3, false}, {ShapeP, 2, 7, 1, false}},
		{{ShapeP, 0, 0, 1, true}, {ShapeP, 3, 0, 0, true}, {ShapeN, 3, 2, 3, true}, {ShapeY, 0, 4, 3, true}, {ShapeP, 1, 4, 1, false}, {ShapeF, 0, 6, 2, false}, {ShapeP, 2, 7, 1, true}},
	},
	{ // 3
		{{ShapeP, 0, 0, 3, true}, {ShapeF, 2, 0, 0, false}, {ShapeI, 4, 1, 1, false}, {ShapeL, 3, 3, 3, false}, {ShapeP, 0, 4, 1, false}, {ShapeP, 0, 7, 3, false}, {ShapeP, 2, 7, 1, false}},
		{{ShapeP, 0, 0, 3, true}, {ShapeY, 2, 0, 1, false}, {ShapeI, 4, 0, 1, false}, {ShapeP, 0, 4, 1, false}, {ShapeP, 3, 4, 2, true}, {ShapeL, 0, 7, 2, true}, {ShapeL, 1, 7, 0, true}},
		{{ShapeI, 0, 0, 0, false}, {ShapeL, 0, 1, 0, true}, {ShapeY, 3, 1, 1, true}, {ShapeY, 0, 4, 0, false}, {ShapeU, 2, 5, 3, false}, {ShapeL, 3, 5, 1, true}, {ShapeP, 0, 7, 3, false}},
		{{ShapeL, 0, 0, 2, true}, {ShapeL, 1, 0, 0, true}, {ShapeP, 3, 2, 0, false}, {ShapeP, 0, 4, 1, false}, {ShapeN, 3, 4, 1, false}, {ShapeV, 2, 6, 3, false}, {ShapeP, 0, 7, 3, true}},
		{{ShapeP, 0, 0, 3, false}, {ShapeP, 2, 0, 1, false}, {ShapeL, 3, 2, 1, false}, {ShapeL, 0, 3, 2, false}, {ShapeN, 1, 5, 2, false}, {ShapeI, 0, 7, 0, false}, {ShapeI, 0, 8, 0, false}},
		{{ShapeL, 0, 0, 2, true}, {ShapeL, 1, 0, 0, true}, {ShapeZ, 2, 2, 0, true}, {ShapeI, 4, 3, 1, false}, {ShapeN, 0, 4, 0, false}, {ShapeF, 2, 6, 2, true}, {ShapeP, 0, 7, 3, false}},
		{{ShapeP, 0, 0, 3, false}, {ShapeT, 2, 0, 0, false}, {ShapeI, 4, 1, 1, false}, {ShapeL, 3, 3, 3, false}, {ShapeP, 0, 4, 1, false}, {ShapeP, 0, 7, 3, false}, {ShapeP, 2, 7, 1, false}},
		{{ShapeP, 0, 0, 3, false}, {ShapeT, 2, 0, 0, false}, {ShapeY, 3, 1, 1, true}, {ShapeP, 0, 4, 1, false}, {ShapeP, 3, 4, 2, true}, {ShapeP, 0, 7, 3, true}, {ShapeP, 2, 7, 1, true}},
	},
	{ // 4
		{{ShapeL, 0, 0, 1, false}, {ShapeI, 3, 0, 1, false}, {ShapeI, 4, 0, 1, false}, {ShapeL, 0, 1, 3, false}, {ShapeT, 0, 4, 1, false}, {ShapeZ, 2, 5, 0, true}, {ShapeV, 2, 6, 3, false}},
		{{ShapeL, 0, 0, 3, true}, {ShapeP, 3, 0, 0, true}, {ShapeL, 1, 1, 3, false}, {ShapeP, 3, 2, 2, true}, {ShapeZ, 0, 4, 1, true}, {ShapeP, 3, 5, 0, false}, {ShapeU, 2, 7, 0, false}},
		{{ShapeL, 0, 0, 1, false}, {ShapeL, 3, 0, 3, true}, {ShapeL, 0, 1, 3, false}, {ShapeI, 4, 1, 1, false}, {ShapeN, 0, 4, 0, true}, {ShapeX, 2, 5, 0, false}, {ShapeU, 2, 7, 0, false}},
		{{ShapeP, 0, 0, 0, false}, {ShapeL, 3, 0, 1, false}, {ShapeL, 3, 1, 3, false}, {ShapeN, 0, 2, 1, false}, {ShapeP, 1, 4, 3, false}, {ShapeP, 3, 5, 2, false}, {ShapeV, 2, 6, 0, false}},
		{{ShapeP, 0, 0, 0, true}, {ShapeP, 3, 0, 0, false}, {ShapeY, 0, 2, 3, true}, {ShapeY, 3, 2, 1, false}, {ShapeP, 1, 4, 3, true}, {ShapeP, 3, 5, 2, true}, {ShapeV, 2, 6, 0, false}},
		{{ShapeP, 0, 0, 0, true}, {ShapeP, 3, 0, 0, true}, {ShapeY, 0, 2, 3, true}, {ShapeV, 1, 2, 3, false}, {ShapeI, 4, 3, 1, false}, {ShapeP, 1, 5, 1, false}, {ShapeP, 2, 7, 3, false}},
		{{ShapeP, 0, 0, 0, true}, {ShapeP, 3, 0, 0, false}, {ShapeL, 0, 2, 3, false}, {ShapeY, 3, 2, 1, false}, {ShapeF, 1, 3, 3, false}, {ShapeF, 2, 5, 3, true}, {ShapeP, 2, 7, 1, true}},
		{{ShapeP, 0, 0, 0, true}, {ShapeP, 3, 0, 0, false}, {ShapeY, 0, 2, 3, true}, {ShapeP, 3, 2, 2, false}, {ShapeP, 1, 4, 3, false}, {ShapeZ, 2, 5, 1, false}, {ShapeP, 2, 7, 1, true}},
	},
	{ // 5
		{{ShapeL, 0, 0, 2, true}, {ShapeL, 1, 0, 0, true}, {ShapeL, 0, 2, 3, true}, {ShapeT, 1, 3, 3, false}, {ShapeT, 2, 4, 1, false}, {ShapeX, 2, 6, 0, false}, {ShapeP, 0, 7, 3, false}},
		{{ShapeI, 0, 0, 0, false}, {ShapeI, 0, 1, 0, false}, {ShapeP, 0, 2, 0, false}, {ShapeY, 0, 4, 2, true}, {ShapeV, 2, 4, 2, false}, {ShapeX, 2, 6, 0, false}, {ShapeP, 0, 7, 3, false}},
		{{ShapeI, 0, 0, 0, false}, {ShapeI, 0, 1, 0, false}, {ShapeL, 0, 2, 3, false}, {ShapeN, 1, 2, 1, true}, {ShapeP, 3, 4, 0, false}, {ShapeW, 2, 6, 3, false}, {ShapeP, 0, 7, 3, true}},
		{{ShapeL, 0, 0, 0, false}, {ShapeL, 1, 0, 2, false}, {ShapeP, 0, 2, 0, false}, {ShapeN, 0, 4, 2, true}, {ShapeF, 2, 4, 1, true}, {ShapeF, 2, 6, 1, true}, {ShapeP, 0, 7, 3, false}},
		{{ShapeL, 0, 0, 0, false}, {ShapeL, 1, 0, 2, false}, {ShapeZ, 0, 2, 0, false}, {ShapeV, 0, 3, 0, false}, {ShapeL, 3, 4, 1, false}, {ShapeL, 2, 5, 1, true}, {ShapeP, 0, 7, 3, true}},
		{{ShapeV, 0, 0, 1, false}, {ShapeP, 2, 0, 1, true}, {ShapeL, 1, 1, 3, false}, {ShapeV, 0, 3, 0, false}, {ShapeP, 3, 4, 0, true}, {ShapeF, 2, 6, 2, false}, {ShapeP, 0, 7, 3, true}},
		{{ShapeV, 0, 0, 1, false}, {ShapeP, 2, 0, 1, true}, {ShapeY, 0, 1, 1, true}, {ShapeL, 0, 4, 2, true}, {ShapeV, 2, 4, 2, false}, {ShapeF, 2, 6, 2, false}, {ShapeP, 0, 7, 3, true}},
		{{ShapeI, 0, 0, 1, false}, {ShapeL, 1, 0, 3, true}, {ShapeP, 2, 0, 1, true}, {ShapeP, 0, 4, 1, true}, {ShapeP, 3, 4, 0, false}, {ShapeL, 1, 6, 2, false}, {ShapeL, 0, 7, 2, true}},
	},
	{ // 6
		{{ShapeI, 0, 0, 0, false}, {ShapeI, 0, 1, 0, false}, {ShapeL, 0, 2, 3, true}, {ShapeP, 1, 3, 3, false}, {ShapeU, 3, 3, 3, false}, {ShapeN, 0, 5, 1, false}, {ShapeZ, 1, 6, 1, false}, {ShapeV, 2, 6, 3, false}},
		{{ShapeL, 0, 0, 2, true}, {ShapeL, 1, 0, 0, true}, {ShapeP, 0, 2, 3, false}, {ShapeP, 2, 3, 1, true}, {ShapeP, 0, 4, 0, true}, {ShapeZ, 2, 5, 0, true}, {ShapeP, 0, 6, 2, true}, {ShapeV, 2, 6, 3, false}},
		{{ShapeL, 0, 0, 2, true}, {ShapeL, 1, 0, 0, true}, {ShapeP, 0, 2, 0, false}, {ShapeV, 2, 3, 2, false}, {ShapeW, 0, 4, 1, false}, {ShapeN, 3, 4, 1, true}, {ShapeP, 0, 6, 2, false}, {ShapeP, 2, 7, 3, false}},
		{{ShapeI, 0, 0, 0, false}, {ShapeI, 0, 1, 0, false}, {ShapeL, 0, 2, 3, true}, {ShapeY, 1, 3, 0, false}, {ShapeY, 0, 4, 1, true}, {ShapeL, 2, 4, 1, true}, {ShapeI, 4, 4, 1, false}, {ShapeL, 0, 7, 2, true}},
		{{ShapeV, 0, 0, 1, false}, {ShapeP, 2, 0, 1, true}, {ShapeT, 0, 1, 2, false}, {ShapeP, 3, 3, 0, true}, {ShapeT, 0, 4, 0, false}, {ShapeV, 0, 5, 0, false}, {ShapeP, 3, 5, 2, true}, {ShapeI, 0, 8, 0, false}},
		{{ShapeI, 0, 0, 0, false}, {ShapeI, 0, 1, 0, false}, {ShapeN, 0, 2, 0, false}, {ShapeL, 0, 3, 2, true}, {ShapeN, 3, 3, 3, false}, {ShapeP, 0, 5, 0, false}, {ShapeV, 2, 6, 3, false}, {ShapeN, 0, 7, 2, true}},
		{{ShapeP, 0, 0, 3, false}, {ShapeP, 2, 0, 1, false}, {ShapeP, 0, 2, 0, true}, {ShapeP, 2, 3, 3, true}, {ShapeY, 0, 4, 3, true}, {ShapeP, 3, 4, 2, false}, {ShapeL, 1, 6, 2, true}, {ShapeI, 0, 8, 0, false}},
		{{ShapeL, 0, 0, 0, false}, {ShapeL, 1, 0, 2, false}, {ShapeI, 0, 2, 1, false}, {ShapeY, 1, 2, 3, true}, {ShapeP, 2, 3, 1, true}, {ShapeN, 2, 5, 3, false}, {ShapeL, 3, 5, 1, true}, {ShapeP, 0, 6, 2, false}},
	},
	{ // 7
		{{ShapeL, 0, 0, 2, true}, {ShapeL, 1, 0, 0, true}, {ShapeP, 3, 2, 0, true}, {ShapeL, 2, 4, 1, false}, {ShapeL, 2, 5, 3, false}},
		{{ShapeI, 0, 0, 0, false}, {ShapeL, 0, 1, 0, true}, {ShapeY, 3, 1, 1, true}, {ShapeL, 2, 4, 1, false}, {ShapeL, 2, 5, 3, false}},
		{{ShapeP, 0, 0, 3, true}, {ShapeF, 2, 0, 0, false}, {ShapeY, 3, 1, 1, true}, {ShapeP, 2, 4, 0, false}, {ShapeP, 2, 6, 2, false}},
		{{ShapeL, 0, 0, 0, false}, {ShapeI, 4, 0, 1, false}, {ShapeV, 1, 1, 2, false}, {ShapeL, 2, 4, 1, false}, {ShapeL, 2, 5, 3, false}},
		{{ShapeI, 0, 0, 0, false}, {ShapeL, 0, 1, 0, true}, {ShapeY, 3, 1, 1, true}, {ShapeP, 2, 4, 0, true}, {ShapeP, 2, 6, 2, true}},
		{{ShapeL, 0, 0, 2, true}, {ShapeL, 1, 0, 0, true}, {ShapeP, 3, 2, 0, true}, {ShapeP, 2, 4, 0, true}, {ShapeP, 2, 6, 2, true}},
		{{ShapeL, 0, 0, 0, false}, {ShapeI, 4, 0, 1, false}, {ShapeV, 1, 1, 2, false}, {ShapeI, 2, 4, 1, false}, {ShapeI, 3, 4, 1, false}},
		{{ShapeL, 0, 0, 2, true}, {ShapeL, 1, 0, 0, true}, {ShapeP, 3, 2, 0, true}, {ShapeI, 2, 4, 1, false}, {ShapeI, 3, 4, 1, false}},
	},
	{ // 8
		{{ShapeY, 0, 0, 0, false}, {ShapeP, 3, 0, 2, false}, {ShapeW, 0, 1, 0, false}, {ShapeT, 0, 3, 3, false}, {ShapeP, 3, 3, 0, false}, {ShapeN, 0, 5, 1, false}, {ShapeP, 3, 5, 2, false}, {ShapeL, 1, 7, 2, true}},
		{{ShapeP, 0, 0, 3, true}, {ShapeL, 3, 0, 1, false}, {ShapeY, 2, 1, 1, true}, {ShapeI, 0, 2, 1, false}, {ShapeY, 1, 2, 3, false}, {ShapeY, 3, 4, 1, false}, {ShapeP, 0, 6, 2, false}, {ShapeT, 2, 6, 2, false}},
		{{ShapeY, 0, 0, 3, true}, {ShapeY, 1, 0, 0, true}, {ShapeP, 3, 1, 2, false}, {ShapeP, 1, 2, 2, true}, {ShapeI, 0, 4, 1, false}, {ShapeI, 3, 4, 1, false}, {ShapeI, 4, 4, 1, false}, {ShapeL, 1, 5, 3, false}},
		{{ShapeY, 0, 0, 0, false}, {ShapeI, 4, 0, 1, false}, {ShapeP, 0, 1, 2, true}, {ShapeN, 2, 1, 3, false}, {ShapeP, 0, 4, 0, false}, {ShapeP, 3, 4, 2, true}, {ShapeP, 0, 6, 2, false}, {ShapeP, 2, 7, 1, true}},
		{{ShapeV, 0, 0, 1, false}, {ShapeL, 3, 0, 1, false}, {ShapeN, 1, 1, 1, true}, {ShapeL, 3, 1, 3, false}, {ShapeN, 0, 3, 3, true}, {ShapeY, 0, 5, 3, false}, {ShapeP, 3, 5, 0, true}, {ShapeY, 1, 7, 2, false}},
		{{ShapeY, 0, 0, 0, false}, {ShapeP, 3, 0, 2, false}, {ShapeW, 0, 1, 0, false}, {ShapeF, 0, 3, 3, false}, {ShapeI, 3, 3, 1, false}, {ShapeI, 4, 3, 1, false}, {ShapeP, 0, 5, 2, true}, {ShapeI, 0, 8, 0, false}},
		{{ShapeP, 0, 0, 0, false}, {ShapeT, 2, 0, 0, false}, {ShapeY, 3, 1, 1, true}, {ShapeY, 1, 2, 3, true}, {ShapeL, 0, 3, 3, false}, {ShapeW, 2, 4, 2, false}, {ShapeP, 3, 6, 2, true}, {ShapeP, 0, 7, 3, false}},
		{{ShapeP, 0, 0, 0, false}, {ShapeT, 2, 0, 0, false}, {ShapeI, 4, 1, 1, false}, {ShapeF, 1, 2, 3, false}, {ShapeP, 0, 3, 2, true}, {ShapeN, 3, 4, 1, true}, {ShapeP, 0, 6, 0, false}, {ShapeY, 1, 7, 2, false}},
	},
	{ // 9
		{{ShapeI, 0, 0, 1, false}, {ShapeZ, 1, 0, 1, true}, {ShapeV, 2, 0, 2, false}, {ShapeL, 0, 2, 1, true}, {ShapeP, 2, 3, 2, false}, {ShapeI, 4, 3, 1, false}, {ShapeL, 0, 6, 2, false}, {ShapeI, 0, 8, 0, false}},
		{{ShapeL, 0, 0, 0, false}, {ShapeN, 3, 0, 3, false}, {ShapeN, 0, 1, 2, true}, {ShapeP, 0, 3, 3, false}, {ShapeL, 3, 3, 1, true}, {ShapeL, 0, 4, 2, false}, {ShapeL, 0, 7, 2, true}, {ShapeL, 1, 7, 0, true}},
		{{ShapeP, 0, 0, 3, true}, {ShapeF, 2, 0, 0, false}, {ShapeY, 3, 1, 1, true}, {ShapeP, 0, 2, 0, true}, {ShapeU, 0, 4, 0, false}, {ShapeN, 3, 4, 3, true}, {ShapeL, 0, 6, 2, false}, {ShapeI, 0, 8, 0, false}},
		{{ShapeI, 0, 0, 0, false}, {ShapeP, 0, 1, 0, true}, {ShapeT, 2, 1, 0, false}, {ShapeV, 2, 2, 3, false}, {ShapeP, 0, 3, 2, true}, {ShapeV, 2, 5, 2, false}, {ShapeL, 0, 6, 2, false}, {ShapeI, 0, 8, 0, false}},
		{{ShapeN, 0, 0, 0, false}, {ShapeV, 2, 0, 2, false}, {ShapeI, 0, 1, 1, false}, {ShapeV, 1, 2, 0, false}, {ShapeN, 3, 2, 3, true}, {ShapeV, 1, 5, 2, false}, {ShapeV, 2, 6, 3, false}, {ShapeP, 0, 7, 3, true}},
		{{ShapeF, 0, 0, 0, true}, {ShapeT, 2, 0, 0, false}, {ShapeI, 0, 1, 1, false}, {ShapeI, 4, 1, 1, false}, {ShapeU, 1, 3, 0, false}, {ShapeN, 1, 5, 2, false}, {ShapeP, 0, 7, 3, false}, {ShapeP, 2, 7, 1, false}},
		{{ShapeL, 0, 0, 0, false}, {ShapeY, 3, 0, 1, true}, {ShapeV, 1, 1, 1, false}, {ShapeL, 0, 2, 3, false}, {ShapeN, 3, 3, 3, true}, {ShapeW, 1, 4, 2, false}, {ShapeP, 0, 7, 3, false}, {ShapeP, 2, 7, 1, false}},
		{{ShapeN, 0, 0, 1, true}, {ShapeP, 1, 0, 3, true}, {ShapeY, 3, 0, 1, false}, {ShapeN, 3, 2, 1, true}, {ShapeP, 0, 3, 2, true}, {ShapeW, 2, 4, 0, false}, {ShapeL, 0, 7, 0, false}, {ShapeL, 1, 7, 2, false}},
	},
})
