package display

import (
	"math"
	"testing"

	"github.com/phanxgames/pentoface"
)

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// --- camera ---

func TestCameraFitLetterboxesWideScreen(t *testing.T) {
	c := newCamera()
	c.fit(558, 480, 1116, 600)

	assertNear(t, "Zoom", c.Zoom, 1.25)
	// Design origin lands centered horizontally.
	x, y := c.view().Apply(0, 0)
	assertNear(t, "origin.x", x, (1116-558*1.25)/2)
	assertNear(t, "origin.y", y, 0)
	x, y = c.view().Apply(558, 480)
	assertNear(t, "corner.x", x, (1116+558*1.25)/2)
	assertNear(t, "corner.y", y, 600)
}

func TestCameraFitTallScreen(t *testing.T) {
	c := newCamera()
	c.fit(200, 100, 100, 400)

	assertNear(t, "Zoom", c.Zoom, 0.5)
	x, y := c.view().Apply(100, 50)
	assertNear(t, "center.x", x, 50)
	assertNear(t, "center.y", y, 200)
}

func TestCameraFitDegenerateKeepsZoom(t *testing.T) {
	c := newCamera()
	c.fit(0, 0, 640, 480)
	assertNear(t, "Zoom", c.Zoom, 1)
}

func TestCameraViewCached(t *testing.T) {
	c := newCamera()
	c.fit(100, 100, 200, 200)
	c.view()
	if c.dirty {
		t.Fatal("view should clear dirty")
	}
	c.fit(100, 100, 200, 200)
	if c.dirty {
		t.Error("refitting the same size should not dirty the camera")
	}
	c.fit(100, 100, 300, 200)
	if !c.dirty {
		t.Error("resizing should dirty the camera")
	}
}

func TestScreenToDesignRoundtrip(t *testing.T) {
	c := newCamera()
	c.fit(558, 480, 800, 900)
	sx, sy := c.view().Apply(123, 45)
	dx, dy := c.screenToDesign(sx, sy)
	assertNear(t, "x", dx, 123)
	assertNear(t, "y", dy, 45)
}

// --- batch ---

func TestBatchBuildQuad(t *testing.T) {
	var b batch
	cmds := []pentoface.DrawCommand{{
		Transform: pentoface.Affine{10, 0, 0, 20, 5, 7},
		Color:     pentoface.Color{R: 1, G: 0.5, B: 0, A: 0.5},
	}}
	view := pentoface.Affine{2, 0, 0, 2, 1, 1}
	b.build(cmds, view)

	if len(b.verts) != 4 || len(b.inds) != 6 {
		t.Fatalf("verts=%d inds=%d, want 4 and 6", len(b.verts), len(b.inds))
	}
	// TL and BR after cmd then view.
	assertNear(t, "TL.x", float64(b.verts[0].DstX), 11)
	assertNear(t, "TL.y", float64(b.verts[0].DstY), 15)
	assertNear(t, "BR.x", float64(b.verts[3].DstX), 31)
	assertNear(t, "BR.y", float64(b.verts[3].DstY), 55)

	v := b.verts[1]
	if v.ColorR != 0.5 || v.ColorG != 0.25 || v.ColorB != 0 || v.ColorA != 0.5 {
		t.Errorf("color = (%v %v %v %v), want premultiplied (0.5 0.25 0 0.5)",
			v.ColorR, v.ColorG, v.ColorB, v.ColorA)
	}
}

func TestBatchBuildIndicesAndReuse(t *testing.T) {
	var b batch
	cmds := make([]pentoface.DrawCommand, 3)
	for i := range cmds {
		cmds[i] = pentoface.DrawCommand{Transform: pentoface.IdentityAffine, Color: pentoface.ColorWhite}
	}
	b.build(cmds, pentoface.IdentityAffine)
	if len(b.inds) != 18 {
		t.Fatalf("inds = %d, want 18", len(b.inds))
	}
	if b.inds[6] != 4 || b.inds[17] != 10 {
		t.Errorf("second quad starts at %d, last index %d; want 4 and 10", b.inds[6], b.inds[17])
	}

	capBefore := cap(b.verts)
	b.build(cmds[:1], pentoface.IdentityAffine)
	if len(b.verts) != 4 || cap(b.verts) != capBefore {
		t.Errorf("rebuild: len=%d cap=%d, want 4 and %d", len(b.verts), cap(b.verts), capBefore)
	}
}

// --- config / colors ---

func TestRunConfigDefaults(t *testing.T) {
	s := pentoface.NewScene()
	s.Width, s.Height = 558, 480
	cfg := RunConfig{}.withDefaults(s)
	if cfg.Title != "PentoFace" || cfg.Width != 558 || cfg.Height != 480 || cfg.ScreenshotDir != "screenshots" {
		t.Errorf("defaults = %+v", cfg)
	}

	cfg = RunConfig{Title: "x", Width: 100, Height: 50, ScreenshotDir: "out"}.withDefaults(s)
	if cfg.Title != "x" || cfg.Width != 100 || cfg.Height != 50 || cfg.ScreenshotDir != "out" {
		t.Errorf("explicit values overridden: %+v", cfg)
	}
}

func TestUnit8(t *testing.T) {
	for _, tt := range []struct {
		in   float64
		want uint8
	}{
		{0, 0}, {1, 255}, {0.5, 128}, {-1, 0}, {2, 255},
	} {
		if got := unit8(tt.in); got != tt.want {
			t.Errorf("unit8(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

// --- screenshots ---

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"pentoface", "pentoface"},
		{"after-spawn", "after-spawn"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"special!@#$%", "special_____"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUnpremultiply(t *testing.T) {
	pixels := []byte{
		64, 32, 0, 128, // half alpha
		10, 20, 30, 255, // opaque
		0, 0, 0, 0, // transparent
	}
	img := unpremultiply(pixels, 3, 1)
	want := []byte{127, 63, 0, 128, 10, 20, 30, 255, 0, 0, 0, 0}
	for i := range want {
		if img.Pix[i] != want[i] {
			t.Errorf("Pix[%d] = %d, want %d", i, img.Pix[i], want[i])
		}
	}
}

func TestWritePNG(t *testing.T) {
	img := unpremultiply([]byte{255, 0, 0, 255}, 1, 1)
	if err := writePNG(t.TempDir()+"/red.png", img); err != nil {
		t.Fatal(err)
	}
	if err := writePNG(t.TempDir()+"/missing/red.png", img); err == nil {
		t.Error("writing into a missing directory should fail")
	}
}
