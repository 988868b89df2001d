package pentoface

import "fmt"

// Shape identifies one of the twelve free pentominoes.
type Shape uint8

const (
	ShapeF Shape = iota
	ShapeI
	ShapeL
	ShapeN
	ShapeP
	ShapeT
	ShapeU
	ShapeV
	ShapeW
	ShapeX
	ShapeY
	ShapeZ

	NumShapes = iota
)

// Cell is a grid coordinate: column X grows right, row Y grows down.
type Cell struct {
	X, Y int
}

// shapeLetters and shapeRows describe each pentomino in its canonical
// orientation; '#' marks a filled cell.
var shapeLetters = [NumShapes]byte{'F', 'I', 'L', 'N', 'P', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z'}

var shapeRows = [NumShapes][]string{
	ShapeF: {".##", "##.", ".#."},
	ShapeI: {"#####"},
	ShapeL: {"####", "#..."},
	ShapeN: {"##..", ".###"},
	ShapeP: {"##", "##", "#."},
	ShapeT: {"###", ".#.", ".#."},
	ShapeU: {"#.#", "###"},
	ShapeV: {"#..", "#..", "###"},
	ShapeW: {"#..", "##.", ".##"},
	ShapeX: {".#.", "###", ".#."},
	ShapeY: {"####", ".#.."},
	ShapeZ: {"##.", ".#.", ".##"},
}

var shapeCells = func() (cells [NumShapes][]Cell) {
	for s := range shapeRows {
		cells[s] = parseCells(shapeRows[s])
	}
	return cells
}()

// parseCells lists the '#' cells of a bitmap in row-major order.
func parseCells(rows []string) []Cell {
	var cells []Cell
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			if row[x] == '#' {
				cells = append(cells, Cell{x, y})
			}
		}
	}
	return cells
}

// Letter returns the conventional pentomino letter.
func (s Shape) Letter() byte {
	return shapeLetters[s]
}

// PrototypeName is the scene element name of the shape's prototype node.
func (s Shape) PrototypeName() string {
	return "Pentomino" + string(shapeLetters[s])
}

// ShapeForLetter returns the shape whose letter is the single-letter string
// letter.
func ShapeForLetter(letter string) (Shape, bool) {
	if len(letter) == 1 {
		for s, l := range shapeLetters {
			if l == letter[0] {
				return Shape(s), true
			}
		}
	}
	return 0, false
}

func (s Shape) String() string {
	if int(s) >= NumShapes {
		return fmt.Sprintf("Shape(%d)", s)
	}
	return string(shapeLetters[s])
}

// Cells returns the canonical cells. The returned slice MUST NOT be mutated.
func (s Shape) Cells() []Cell {
	return shapeCells[s]
}

// Oriented returns the shape's cells mirrored horizontally when flipped, then
// turned clockwise by rotation quarter turns, then shifted so the bounding
// box starts at (0, 0). This is the same order the scene graph applies a
// negative ScaleX and a Rotation of rotation*pi/2.
func (s Shape) Oriented(rotation int, flipped bool) []Cell {
	src := shapeCells[s]
	out := make([]Cell, len(src))
	minX, minY := 0, 0
	for i, c := range src {
		x, y := c.X, c.Y
		if flipped {
			x = -x
		}
		for r := 0; r < rotation&3; r++ {
			x, y = -y, x
		}
		out[i] = Cell{x, y}
		if i == 0 || x < minX {
			minX = x
		}
		if i == 0 || y < minY {
			minY = y
		}
	}
	for i := range out {
		out[i].X -= minX
		out[i].Y -= minY
	}
	return out
}
