package display

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/pentoface"
)

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white image. Every face
// quad samples it and is tinted through vertex colors.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(rgba(pentoface.ColorWhite))
	}
	return whitePixelImage
}

// batch coalesces every draw command of a frame into one DrawTriangles32
// call. All quads share the white pixel source and the default blend, so
// there is never a reason to break the batch.
type batch struct {
	verts []ebiten.Vertex
	inds  []uint32
}

// submit draws cmds (already back to front) onto target through view.
func (b *batch) submit(target *ebiten.Image, cmds []pentoface.DrawCommand, view pentoface.Affine) {
	b.build(cmds, view)
	if len(b.inds) == 0 {
		return
	}

	var op ebiten.DrawTrianglesOptions
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	target.DrawTriangles32(b.verts, b.inds, ensureWhitePixel(), &op)
}

// build fills the vertex and index buffers, reusing their storage.
func (b *batch) build(cmds []pentoface.DrawCommand, view pentoface.Affine) {
	b.verts = b.verts[:0]
	b.inds = b.inds[:0]
	for i := range cmds {
		b.appendQuad(&cmds[i], view)
	}
}

// unitQuad holds the corners of the unit square: TL, TR, BL, BR.
var unitQuad = [4][2]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}}

// appendQuad appends 4 vertices and 6 indices for one command.
func (b *batch) appendQuad(cmd *pentoface.DrawCommand, view pentoface.Affine) {
	m := view.Mul(cmd.Transform)

	// Premultiplied RGBA.
	ca := float32(cmd.Color.A)
	cr := float32(cmd.Color.R) * ca
	cg := float32(cmd.Color.G) * ca
	cb := float32(cmd.Color.B) * ca

	base := uint32(len(b.verts))
	for _, p := range unitQuad {
		x, y := m.Apply(p[0], p[1])
		b.verts = append(b.verts, ebiten.Vertex{
			DstX:   float32(x),
			DstY:   float32(y),
			SrcX:   0.5,
			SrcY:   0.5,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		})
	}

	// Two triangles: TL-TR-BL, TR-BR-BL
	b.inds = append(b.inds,
		base+0, base+1, base+2,
		base+1, base+3, base+2,
	)
}
