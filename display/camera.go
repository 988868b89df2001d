package display

import "github.com/phanxgames/pentoface"

// camera maps the face's design box onto the screen: uniformly scaled to
// fit, centered, letterboxed on the long axis.
type camera struct {
	// X and Y are the design-space point shown at the viewport center.
	X, Y float64
	// Zoom is the design-to-screen scale.
	Zoom float64
	// Viewport is the screen rectangle the face renders into.
	Viewport pentoface.Rect

	viewMatrix    pentoface.Affine
	invViewMatrix pentoface.Affine
	dirty         bool
}

func newCamera() camera {
	return camera{Zoom: 1, dirty: true}
}

// fit centers a w x h design box in a screenW x screenH screen. A degenerate
// design box keeps the current zoom.
func (c *camera) fit(w, h, screenW, screenH float64) {
	zoom := c.Zoom
	if w > 0 && h > 0 {
		zoom = min(screenW/w, screenH/h)
	}
	vp := pentoface.Rect{Width: screenW, Height: screenH}
	if zoom == c.Zoom && vp == c.Viewport && c.X == w/2 && c.Y == h/2 {
		return
	}
	c.X, c.Y = w/2, h/2
	c.Zoom = zoom
	c.Viewport = vp
	c.dirty = true
}

// view returns the design-to-screen matrix, recomputing it if dirty.
//
//	view = Translate(cx, cy) * Scale(zoom) * Translate(-X, -Y)
func (c *camera) view() pentoface.Affine {
	if !c.dirty {
		return c.viewMatrix
	}
	c.dirty = false

	cx := c.Viewport.X + c.Viewport.Width/2
	cy := c.Viewport.Y + c.Viewport.Height/2
	z := c.Zoom

	c.viewMatrix = pentoface.Affine{z, 0, 0, z, cx - z*c.X, cy - z*c.Y}
	c.invViewMatrix = c.viewMatrix.Invert()
	return c.viewMatrix
}

// screenToDesign converts screen coordinates to design coordinates.
func (c *camera) screenToDesign(sx, sy float64) (float64, float64) {
	c.view()
	return c.invViewMatrix.Apply(sx, sy)
}
