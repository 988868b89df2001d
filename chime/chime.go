// Package chime plays a short tone whenever a digit of a pentoface.Face
// changes. A Chime is a pentoface.EventSink; audio runs on beep's speaker
// goroutine, so Emit never blocks the frame loop.
package chime

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/phanxgames/pentoface"
)

// pentatonic maps a digit to semitones above the base pitch: two octaves
// of a major pentatonic scale.
var pentatonic = [10]int{0, 2, 4, 7, 9, 12, 14, 16, 19, 21}

// Config configures a Chime. Zero fields take the defaults noted on each.
type Config struct {
	// SampleRate of the output device. Default: 44100.
	SampleRate beep.SampleRate
	// Duration of each tone. Default: 120ms.
	Duration time.Duration
	// Volume is the peak amplitude in (0, 1]. Default: 0.2.
	Volume float64
	// BaseFreq is the pitch of digit 0 in Hz. Default: 440.
	BaseFreq float64
	// Sources limits which slots chime. Default: seconds ones only.
	Sources []pentoface.Source
	// SkipBootstrap silences the first spawn after start or resume.
	SkipBootstrap bool
}

func (c Config) withDefaults() Config {
	if c.SampleRate <= 0 {
		c.SampleRate = 44100
	}
	if c.Duration <= 0 {
		c.Duration = 120 * time.Millisecond
	}
	if c.Volume <= 0 || c.Volume > 1 {
		c.Volume = 0.2
	}
	if c.BaseFreq <= 0 {
		c.BaseFreq = 440
	}
	if len(c.Sources) == 0 {
		c.Sources = []pentoface.Source{pentoface.SourceSecondOnes}
	}
	return c
}

// Chime turns digit spawns into tones.
type Chime struct {
	mu          sync.Mutex
	cfg         Config
	sources     [pentoface.NumSources]bool
	mixer       *beep.Mixer
	initialized bool
}

// New creates a chime. It stays silent until Init succeeds.
func New(cfg Config) *Chime {
	cfg = cfg.withDefaults()
	c := &Chime{cfg: cfg, mixer: &beep.Mixer{}}
	for _, s := range cfg.Sources {
		if int(s) < pentoface.NumSources {
			c.sources[s] = true
		}
	}
	return c
}

// Init opens the speaker. Calling it again after success is a no-op.
func (c *Chime) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	sr := c.cfg.SampleRate
	if err := speaker.Init(sr, sr.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("chime: speaker init: %w", err)
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Close stops playback and releases the speaker.
func (c *Chime) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	c.mixer.Clear()
	c.initialized = false
}

// Emit implements pentoface.EventSink.
func (c *Chime) Emit(ev pentoface.Event) {
	if !c.wants(ev) {
		return
	}
	tone, err := c.tone(ev.Digit)
	if err != nil {
		pentoface.Logger().Warn("chime: tone", "digit", ev.Digit, "err", err)
		return
	}

	// The mixer is read by the speaker goroutine.
	speaker.Lock()
	c.mixer.Add(tone)
	speaker.Unlock()
}

func (c *Chime) wants(ev pentoface.Event) bool {
	if ev.Type != pentoface.EventDigitSpawn || int(ev.Slot) >= pentoface.NumSources || !c.sources[ev.Slot] {
		return false
	}
	if ev.Bootstrap && c.cfg.SkipBootstrap {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initialized
}

// Frequency returns the pitch played for digit.
func (c *Chime) Frequency(digit int) float64 {
	step := pentatonic[min(max(digit, 0), 9)]
	return c.cfg.BaseFreq * math.Pow(2, float64(step)/12)
}

// tone returns a finite, decaying sine streamer for digit.
func (c *Chime) tone(digit int) (beep.Streamer, error) {
	sr := c.cfg.SampleRate
	sine, err := generators.SineTone(sr, c.Frequency(digit))
	if err != nil {
		return nil, err
	}
	n := sr.N(c.cfg.Duration)
	return beep.Take(n, &envelope{
		Streamer: sine,
		volume:   c.cfg.Volume,
		attack:   max(sr.N(5*time.Millisecond), 1),
		total:    n,
	}), nil
}

// envelope shapes a streamer with a linear attack and an exponential decay
// that reaches about -40 dB at total samples.
type envelope struct {
	beep.Streamer
	volume float64
	attack int
	total  int
	pos    int
}

func (e *envelope) gain(pos int) float64 {
	if pos < e.attack {
		return e.volume * float64(pos) / float64(e.attack)
	}
	t := float64(pos-e.attack) / float64(max(e.total-e.attack, 1))
	return e.volume * math.Exp(-4.6*t)
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.Streamer.Stream(samples)
	for i := range samples[:n] {
		g := e.gain(e.pos)
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok
}
