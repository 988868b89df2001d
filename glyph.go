package pentoface

// Digit glyphs on a 5x9 grid. Every glyph's cell count is a multiple of
// five and each one is tiled by the entries of the solution table.
const (
	GlyphColumns = 5
	GlyphRows    = 9
)

var glyphRows = [10][GlyphRows]string{
	{"#####", "#####", "##.##", "##.##", "##.##", "##.##", "##.##", "#####", "#####"},
	{"####.", "####.", "####.", "####.", ".###.", ".###.", ".###.", "#####", "#####"},
	{".####", "#####", "...##", "...##", "#####", "#####", "##...", "#####", "#####"},
	{"#####", "#####", "...##", "...##", "#####", ".####", "...##", "#####", "#####"},
	{"##.##", "##.##", "##.##", "##.##", "#####", "#####", "..###", "..###", "..###"},
	{"#####", "#####", "##...", "##...", "#####", "#####", "...##", "#####", "####."},
	{"#####", "#####", "##...", "#####", "#####", "##.##", "##.##", "#####", "#####"},
	{"#####", "#####", "...##", "...##", "..###", "..##.", "..##.", "..##.", "..##."},
	{"#####", "##.##", "##.##", "#####", "#####", "##.##", "##.##", "##.##", "#####"},
	{"#####", "#####", "##.##", "##.##", "#####", "#####", "...##", "#####", "#####"},
}

var glyphCells = func() (cells [10][]Cell) {
	for d := range glyphRows {
		cells[d] = parseCells(glyphRows[d][:])
	}
	return cells
}()

// Glyph returns the filled cells of digit d. The returned slice MUST NOT be
// mutated. Panics if d is outside 0..9.
func Glyph(d int) []Cell {
	checkDigit(d)
	return glyphCells[d]
}
