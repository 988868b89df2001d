// Package term runs a pentoface.Face in a terminal through tcell.
//
// The face is rasterized with half-block characters in 24-bit color. Keys:
// q, Esc or Ctrl-C quit; space toggles pause. When the terminal reports
// focus changes the face pauses while unfocused.
package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/pentoface"
)

// Config configures Run. Zero fields take the defaults noted on each.
type Config struct {
	// FPS is the redraw rate. Default: 30.
	FPS int
	// IgnoreFocus keeps the face running when the terminal loses focus.
	IgnoreFocus bool
}

func (c Config) withDefaults() Config {
	if c.FPS <= 0 {
		c.FPS = 30
	}
	return c
}

// Run opens the controlling terminal and drives face until the user quits
// or ctx is done.
func Run(ctx context.Context, face *pentoface.Face, cfg Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("term: new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("term: init screen: %w", err)
	}
	defer screen.Fini()
	return RunScreen(ctx, screen, face, cfg)
}

// RunScreen drives face on an initialised screen. The caller owns screen.
func RunScreen(ctx context.Context, screen tcell.Screen, face *pentoface.Face, cfg Config) error {
	cfg = cfg.withDefaults()
	if !cfg.IgnoreFocus {
		screen.EnableFocus()
		defer screen.DisableFocus()
	}
	screen.HideCursor()

	l := newLoop(screen, face)
	return l.run(ctx, time.Second/time.Duration(cfg.FPS))
}

// loop owns the face and the screen for the duration of a run. Every face
// call happens on the run goroutine.
type loop struct {
	screen tcell.Screen
	face   *pentoface.Face
	canvas raster
	start  time.Time

	// userPaused is set by the pause key; focus changes do not clear it.
	userPaused bool
	unfocused  bool
}

func newLoop(screen tcell.Screen, face *pentoface.Face) *loop {
	return &loop{screen: screen, face: face, start: time.Now()}
}

func (l *loop) run(ctx context.Context, frame time.Duration) error {
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := l.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	l.tick()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !l.handle(ev) {
				return nil
			}
		case <-ticker.C:
			l.tick()
		}
	}
}

// handle applies one terminal event and reports whether to keep running.
func (l *loop) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
			l.userPaused = !l.userPaused
			l.syncPause()
		}
	case *tcell.EventFocus:
		l.unfocused = !ev.Focused
		l.syncPause()
	case *tcell.EventResize:
		l.screen.Sync()
	}
	return true
}

func (l *loop) syncPause() {
	if l.userPaused || l.unfocused {
		l.face.Pause()
	} else {
		l.face.Resume()
	}
}

// tick advances the face and redraws the whole screen.
func (l *loop) tick() {
	l.face.Update(time.Since(l.start).Seconds())
	l.draw()
	l.screen.Show()
}

func (l *loop) draw() {
	scene := l.face.Scene()
	cols, rows := l.screen.Size()
	l.canvas.resize(cols, rows)
	l.canvas.clear(scene.ClearColor)
	l.canvas.draw(scene.Commands(), l.canvas.fitView(scene.Width, scene.Height))
	l.canvas.present(l.screen)
}
