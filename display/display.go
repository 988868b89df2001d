// Package display runs a pentoface.Face in an Ebitengine window.
//
// The window scales the face to fit, pauses the face while it has no focus
// (dimming it), and optionally shows an FPS overlay and writes screenshots.
package display

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/pentoface"
)

const screenshotKey = ebiten.KeyF12

// RunConfig configures Run. Zero fields take the defaults noted on each.
type RunConfig struct {
	// Title is the window title. Default: "PentoFace".
	Title string
	// Width and Height are the initial window size in device-independent
	// pixels. Default: the scene's design size.
	Width, Height int
	// ShowFPS draws the FPS/TPS overlay in the top-left corner.
	ShowFPS bool
	// ScreenshotDir is where F12 writes PNGs. Default: "screenshots".
	ScreenshotDir string
	// NoDim disables dimming the face while it is paused.
	NoDim bool
	// IgnoreFocus keeps the face running when the window loses focus.
	IgnoreFocus bool
}

func (c RunConfig) withDefaults(scene *pentoface.Scene) RunConfig {
	if c.Title == "" {
		c.Title = "PentoFace"
	}
	if c.Width <= 0 {
		c.Width = max(int(scene.Width), 1)
	}
	if c.Height <= 0 {
		c.Height = max(int(scene.Height), 1)
	}
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = "screenshots"
	}
	return c
}

// Run opens a resizable window and drives face until the window is closed.
// It blocks and must be called from the main goroutine.
func Run(face *pentoface.Face, cfg RunConfig) error {
	cfg = cfg.withDefaults(face.Scene())

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetRunnableOnUnfocused(true)

	g := newGame(face, cfg)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("display: run: %w", err)
	}
	return nil
}

// game implements ebiten.Game around a face.
type game struct {
	face   *pentoface.Face
	cfg    RunConfig
	batch  batch
	cam    camera
	dimmer *pentoface.Dimmer
	fps    *fpsOverlay

	start   time.Time
	focused bool
	shots   []string
}

func newGame(face *pentoface.Face, cfg RunConfig) *game {
	g := &game{
		face:    face,
		cfg:     cfg,
		cam:     newCamera(),
		dimmer:  pentoface.NewDimmer(face.Scene().Root()),
		start:   time.Now(),
		focused: true,
	}
	if cfg.ShowFPS {
		g.fps = newFPSOverlay()
	}
	return g
}

// Update is called every tick (1/60 s by default).
func (g *game) Update() error {
	dt := 1 / float64(ebiten.TPS())

	if !g.cfg.IgnoreFocus {
		g.setFocused(ebiten.IsFocused())
	}
	if inpututil.IsKeyJustPressed(screenshotKey) {
		g.shots = append(g.shots, "pentoface")
	}

	g.face.Update(time.Since(g.start).Seconds())
	g.dimmer.Update(float32(dt))
	g.fps.update(dt)
	return nil
}

// setFocused pauses the face when focus is lost and resumes it when focus
// comes back, dimming the face in between.
func (g *game) setFocused(focused bool) {
	if focused == g.focused {
		return
	}
	g.focused = focused
	if focused {
		g.face.Resume()
		if !g.cfg.NoDim {
			g.dimmer.Restore()
		}
		return
	}
	g.face.Pause()
	if !g.cfg.NoDim {
		g.dimmer.Dim()
	}
}

// Draw renders the face. Transforms refresh inside Scene.Commands.
func (g *game) Draw(screen *ebiten.Image) {
	scene := g.face.Scene()
	screen.Fill(rgba(scene.ClearColor))

	b := screen.Bounds()
	g.cam.fit(scene.Width, scene.Height, float64(b.Dx()), float64(b.Dy()))
	g.batch.submit(screen, scene.Commands(), g.cam.view())

	g.fps.draw(screen)

	if len(g.shots) > 0 {
		flushScreenshots(screen, g.cfg.ScreenshotDir, g.shots)
		g.shots = g.shots[:0]
	}
}

// Layout uses the window size as the logical screen size.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// rgba converts a straight-alpha pentoface.Color to a color.Color.
func rgba(c pentoface.Color) color.Color {
	return color.NRGBA{
		R: unit8(c.R),
		G: unit8(c.G),
		B: unit8(c.B),
		A: unit8(c.A),
	}
}

func unit8(v float64) uint8 {
	return uint8(min(max(v, 0), 1)*255 + 0.5)
}
