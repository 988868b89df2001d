package term

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/pentoface"
)

// upperHalf draws the top pixel of a cell in the foreground color and the
// bottom pixel in the background color, giving square-ish pixels.
const upperHalf = '▀'

// raster is a software canvas of straight-alpha colors, two pixels per
// terminal row.
type raster struct {
	w, h int
	pix  []pentoface.Color
}

// resize sets the canvas to cols x rows terminal cells, reusing storage.
func (r *raster) resize(cols, rows int) {
	r.w, r.h = max(cols, 0), max(rows*2, 0)
	n := r.w * r.h
	if cap(r.pix) < n {
		r.pix = make([]pentoface.Color, n)
	}
	r.pix = r.pix[:n]
}

func (r *raster) at(x, y int) pentoface.Color {
	return r.pix[y*r.w+x]
}

func (r *raster) clear(bg pentoface.Color) {
	bg.A = 1
	for i := range r.pix {
		r.pix[i] = bg
	}
}

// fitView maps a w x h design box into the canvas, uniformly scaled and
// centered.
func (r *raster) fitView(w, h float64) pentoface.Affine {
	if w <= 0 || h <= 0 || r.w == 0 || r.h == 0 {
		return pentoface.IdentityAffine
	}
	z := min(float64(r.w)/w, float64(r.h)/h)
	return pentoface.Affine{z, 0, 0, z, (float64(r.w) - z*w) / 2, (float64(r.h) - z*h) / 2}
}

// draw composites cmds (back to front) over the canvas. A pixel is covered
// when its center falls inside the command's quad.
func (r *raster) draw(cmds []pentoface.DrawCommand, view pentoface.Affine) {
	for i := range cmds {
		r.fillQuad(view.Mul(cmds[i].Transform), cmds[i].Color)
	}
}

func (r *raster) fillQuad(m pentoface.Affine, c pentoface.Color) {
	if det := m[0]*m[3] - m[2]*m[1]; math.Abs(det) < 1e-12 || c.A <= 0 {
		return
	}
	inv := m.Invert()

	x0, y0, x1, y1 := quadBounds(m)
	minX := max(int(math.Floor(x0)), 0)
	minY := max(int(math.Floor(y0)), 0)
	maxX := min(int(math.Ceil(x1)), r.w)
	maxY := min(int(math.Ceil(y1)), r.h)

	a := min(c.A, 1)
	for y := minY; y < maxY; y++ {
		for x := minX; x < maxX; x++ {
			u, v := inv.Apply(float64(x)+0.5, float64(y)+0.5)
			if u < 0 || u >= 1 || v < 0 || v >= 1 {
				continue
			}
			d := &r.pix[y*r.w+x]
			d.R = c.R*a + d.R*(1-a)
			d.G = c.G*a + d.G*(1-a)
			d.B = c.B*a + d.B*(1-a)
		}
	}
}

// quadBounds returns the axis-aligned bounds of the unit square under m.
func quadBounds(m pentoface.Affine) (x0, y0, x1, y1 float64) {
	x0, y0 = math.Inf(1), math.Inf(1)
	x1, y1 = math.Inf(-1), math.Inf(-1)
	for _, p := range [4][2]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		x, y := m.Apply(p[0], p[1])
		x0, y0 = min(x0, x), min(y0, y)
		x1, y1 = max(x1, x), max(y1, y)
	}
	return x0, y0, x1, y1
}

// present writes the canvas to screen as half-block cells.
func (r *raster) present(screen tcell.Screen) {
	for y := 0; y+1 < r.h; y += 2 {
		for x := 0; x < r.w; x++ {
			style := tcell.StyleDefault.
				Foreground(tcellColor(r.at(x, y))).
				Background(tcellColor(r.at(x, y+1)))
			screen.SetContent(x, y/2, upperHalf, nil, style)
		}
	}
}

func tcellColor(c pentoface.Color) tcell.Color {
	return tcell.NewRGBColor(channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float64) int32 {
	return int32(min(max(v, 0), 1)*255 + 0.5)
}
