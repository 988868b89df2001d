package pentoface

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

// Scene element names a Face requires.
const (
	NameHourTens   = "DigitH10"
	NameHourOnes   = "DigitH1"
	NameMinuteTens = "DigitM10"
	NameMinuteOnes = "DigitM1"
	NameSecondTens = "DigitS10"
	NameSecondOnes = "DigitS1"
	NameSeparator  = "HMSeparator"
)

// anchorNames maps each Source to its anchor element.
var anchorNames = [NumSources]string{
	NameHourTens, NameHourOnes, NameMinuteTens, NameMinuteOnes, NameSecondTens, NameSecondOnes,
}

// AnchorName returns the scene element name of the source's digit anchor.
func (s Source) AnchorName() string {
	return anchorNames[s]
}

// timeAnchor is the slot every sampler measures its skew from.
const timeAnchor = SourceSecondOnes

// ErrMissingElement is wrapped by NewFace when the scene lacks a required
// named element.
var ErrMissingElement = errors.New("pentoface: missing scene element")

// FaceConfig configures a Face. The zero value is usable: every zero field
// takes the documented default.
type FaceConfig struct {
	// Clock supplies wall-clock time. Default: SystemClock.
	Clock Clock
	// Hours selects 12 or 24-hour display. Default: Hour24.
	Hours HourConvention
	// Rand drives tiling and pooled-node choice. Default: a PCG seeded from
	// Seed, or randomly when Seed is also zero.
	Rand *rand.Rand
	// Seed seeds the default Rand.
	Seed uint64
	// SecondsPerUnit is the time skew per unit of diagonal distance from
	// the anchor. Default: DefaultSecondsPerUnit.
	SecondsPerUnit float64
	// Lead is added to every element's virtual time. Default: DefaultLead.
	Lead float64
	// NoLead runs every element without lead, ignoring Lead.
	NoLead bool
	// Speed is the interpolation rate of every animated quantity.
	// Default: DefaultSpeed.
	Speed float64
	// Enlarge scales pieces at spawn relative to their resting size.
	// Default: DefaultEnlarge.
	Enlarge float64
	// Events receives face events. Optional.
	Events EventSink
}

func (c FaceConfig) withDefaults() FaceConfig {
	if c.Clock == nil {
		c.Clock = SystemClock{}
	}
	if c.Rand == nil {
		seed := c.Seed
		if seed == 0 {
			seed = rand.Uint64()
		}
		c.Rand = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
	if c.SecondsPerUnit == 0 {
		c.SecondsPerUnit = DefaultSecondsPerUnit
	}
	switch {
	case c.NoLead:
		c.Lead = 0
	case c.Lead == 0:
		c.Lead = DefaultLead
	}
	if c.Speed <= 0 {
		c.Speed = DefaultSpeed
	}
	if c.Enlarge <= 0 {
		c.Enlarge = DefaultEnlarge
	}
	return c
}

// Indicator is the face-wide separator visibility flag. Pieces raise it as
// they enter; the face clears it on resume.
type Indicator struct {
	on bool
}

// Raise sets the indicator.
func (i *Indicator) Raise() { i.on = true }

// Clear unsets the indicator.
func (i *Indicator) Clear() { i.on = false }

// On reports whether the indicator is set.
func (i *Indicator) On() bool { return i.on }

// env is the state shared by a face's slots and pieces.
type env struct {
	timing    *timing
	pools     *Pools
	rng       *rand.Rand
	speed     float64
	enlarge   float64
	separator Indicator
	sink      EventSink
	stats     tickStats
}

func (e *env) emit(ev Event) {
	if e.sink != nil {
		e.sink.Emit(ev)
	}
}

// Face drives the six digit slots and the hour/minute separator of a scene.
// It is not safe for concurrent use; call Update, Pause and Resume from the
// host's frame loop.
type Face struct {
	scene     *Scene
	clock     Clock
	env       *env
	slots     [NumSources]*DigitSlot
	separator *Node

	paused   bool
	hasPrev  bool
	prevTime float64
	debug    bool
}

// NewFace looks up the digit anchors, the separator and one prototype per
// shape in scene and prepares a face over them. Pool clones are added next
// to their prototypes, so prototypes should share the anchors' parent.
// Returns an error wrapping ErrMissingElement listing every absent element.
func NewFace(scene *Scene, cfg FaceConfig) (*Face, error) {
	cfg = cfg.withDefaults()

	var missing []string
	lookup := func(name string) *Node {
		n := scene.FindNode(name)
		if n == nil {
			missing = append(missing, name)
		}
		return n
	}

	var anchors [NumSources]*Node
	for i := range anchors {
		anchors[i] = lookup(anchorNames[i])
	}
	separator := lookup(NameSeparator)
	var prototypes [NumShapes]*Node
	for s := range prototypes {
		prototypes[s] = lookup(Shape(s).PrototypeName())
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingElement, strings.Join(missing, ", "))
	}

	e := &env{
		timing: &timing{
			anchor:         anchors[timeAnchor],
			secondsPerUnit: cfg.SecondsPerUnit,
			lead:           cfg.Lead,
			hours:          cfg.Hours,
		},
		pools:   NewPools(prototypes, cfg.Rand),
		rng:     cfg.Rand,
		speed:   cfg.Speed,
		enlarge: cfg.Enlarge,
		sink:    cfg.Events,
	}
	f := &Face{
		scene:     scene,
		clock:     cfg.Clock,
		env:       e,
		separator: separator,
	}

	target := f.initialTarget(f.clock.Now(), anchors[SourceHourTens])
	for i := range f.slots {
		f.slots[i] = newDigitSlot(e, anchors[i], Source(i), target)
	}

	logger().Info("face ready", "wait_target", target, "hours", cfg.Hours)
	return f, nil
}

// initialTarget returns the raw seconds digit that follows the one ref
// samples now, so the first fire happens within a second and is staggered
// across the face.
func (f *Face) initialTarget(now time.Time, ref *Node) int {
	s := sampler{timing: f.env.timing, node: ref}
	return (s.sampledSecond(now) + 1) % 10
}

// Update advances the face to the host's monotonic timestamp (seconds). The
// first call after construction or Resume only records the timestamp.
func (f *Face) Update(timestamp float64) {
	if f.paused {
		return
	}
	if !f.hasPrev {
		f.prevTime = timestamp
		f.hasPrev = true
		return
	}
	dt := timestamp - f.prevTime
	f.prevTime = timestamp

	var t0 time.Time
	if f.debug {
		t0 = time.Now()
	}
	f.env.stats = tickStats{}

	target := 0.0
	if f.env.separator.On() {
		target = 1
	}
	f.separator.Alpha = Approach(f.separator.Alpha, target, f.env.speed, dt)
	f.separator.MarkDirty()

	now := f.clock.Now()
	for _, s := range f.slots {
		s.update(now, dt)
	}

	if f.debug {
		f.env.stats.updateTime = time.Since(t0)
		f.debugLog(f.env.stats)
	}
}

// Pause stops Update from doing anything until Resume. Idempotent.
func (f *Face) Pause() {
	if f.paused {
		return
	}
	f.paused = true
	logger().Info("face paused")
}

// Resume restarts a paused face: every live piece is forced out, every slot
// goes back to bootstrap mode keyed to the next raw seconds digit, the
// separator indicator is cleared and the next Update only records its
// timestamp. No-op when not paused.
func (f *Face) Resume() {
	if !f.paused {
		return
	}
	target := f.initialTarget(f.clock.Now(), f.slots[SourceHourTens].node)
	for _, s := range f.slots {
		s.reset(target)
	}
	f.env.separator.Clear()
	f.hasPrev = false
	f.paused = false
	logger().Info("face resumed", "wait_target", target)
}

// Paused reports whether the face is paused.
func (f *Face) Paused() bool {
	return f.paused
}

// Close releases the nodes of every live piece back to the pools. The face
// must not be updated afterwards.
func (f *Face) Close() {
	for _, s := range f.slots {
		s.close()
	}
}

// Scene returns the scene the face animates.
func (f *Face) Scene() *Scene {
	return f.scene
}

// Slot returns the slot showing src.
func (f *Face) Slot(src Source) *DigitSlot {
	return f.slots[src]
}

// Slots returns all six slots, hour tens first.
func (f *Face) Slots() []*DigitSlot {
	return f.slots[:]
}

// Separator returns the separator node.
func (f *Face) Separator() *Node {
	return f.separator
}

// SeparatorShown reports the shared separator indicator.
func (f *Face) SeparatorShown() bool {
	return f.env.separator.On()
}

// Pools returns the face's instance pools.
func (f *Face) Pools() *Pools {
	return f.env.pools
}

// SetEventSink replaces the event sink. Pass nil to stop emitting.
func (f *Face) SetEventSink(sink EventSink) {
	f.env.sink = sink
}
