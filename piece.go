package pentoface

import (
	"math"
	"time"
)

// DefaultEnlarge is how much bigger than its resting size a piece starts
// before it shrinks into place.
const DefaultEnlarge = 2.0

// Phase is a piece animator's lifecycle phase.
type Phase uint8

const (
	PhaseWaitingToEnter Phase = iota
	PhaseEntering
	PhaseWaitingToExit
	PhaseExiting
	PhaseFinished
)

var phaseNames = [...]string{"waiting-to-enter", "entering", "waiting-to-exit", "exiting", "finished"}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "phase(?)"
}

// PieceAnimator drives one pooled piece node through
// enter -> hold -> exit. It owns the node from construction until it
// finishes, at which point the node goes back to its pool.
type PieceAnimator struct {
	sampler
	env       *env
	slot      *DigitSlot
	pool      *Pool
	placement Placement
	digit     int
	phase     Phase
	released  bool
}

// newPieceAnimator acquires a node for pl and places it relative to the
// slot's anchor. The animator's wait-condition starts from waitTarget in the
// given mode.
func newPieceAnimator(e *env, slot *DigitSlot, pl Placement, digit, waitTarget int, bootstrapped bool) *PieceAnimator {
	anchor := slot.node
	sx := anchor.ScaleX
	if pl.Flipped {
		sx = -sx
	}
	originX := anchor.X + float64(pl.Col)*anchor.ScaleX
	originY := anchor.Y + float64(pl.Row)*anchor.ScaleY

	pool := e.pools[pl.Shape]
	n := pool.Acquire(Transform{
		X:        originX,
		Y:        originY,
		ScaleX:   sx,
		ScaleY:   anchor.ScaleY,
		Rotation: float64(pl.Rotation) * math.Pi / 2,
		Alpha:    0,
		Depth:    1,
	})

	// Shift so the top-left corner of the oriented piece lands on the
	// placement origin.
	minX, minY := cellBoundsMin(n.LocalTransform(), pl.Shape.Cells())
	n.X += originX - minX
	n.Y += originY - minY

	n.ScaleX *= e.enlarge
	n.ScaleY *= e.enlarge
	n.MarkDirty()

	return &PieceAnimator{
		sampler: sampler{
			timing:       e.timing,
			node:         n,
			source:       slot.source,
			bootstrapped: bootstrapped,
			waitTarget:   waitTarget,
		},
		env:       e,
		slot:      slot,
		pool:      pool,
		placement: pl,
		digit:     digit,
	}
}

// cellBoundsMin returns the smallest x and y reached by the unit squares of
// cells under m.
func cellBoundsMin(m Affine, cells []Cell) (float64, float64) {
	minX, minY := math.Inf(1), math.Inf(1)
	for _, c := range cells {
		for _, corner := range [4][2]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
			x, y := m.Apply(float64(c.X)+corner[0], float64(c.Y)+corner[1])
			minX = min(minX, x)
			minY = min(minY, y)
		}
	}
	return minX, minY
}

// Phase returns the current lifecycle phase.
func (p *PieceAnimator) Phase() Phase {
	return p.phase
}

// Node returns the animated node. It is only meaningful until the animator
// finishes.
func (p *PieceAnimator) Node() *Node {
	return p.node
}

// Placement returns the placement this piece fills.
func (p *PieceAnimator) Placement() Placement {
	return p.placement
}

// Exit starts the exit animation immediately, skipping the wait-condition.
// No-op once the piece is already exiting or finished.
func (p *PieceAnimator) Exit() {
	if p.phase < PhaseExiting {
		p.phase = PhaseExiting
	}
}

func (p *PieceAnimator) update(now time.Time, dt float64) {
	if p.shouldFire(now) {
		switch p.phase {
		case PhaseWaitingToEnter:
			p.phase = PhaseEntering
			p.env.separator.Raise()
			p.env.emit(Event{Type: EventPieceEnter, Slot: p.slot.source, Digit: p.digit, Shape: p.placement.Shape, Time: now})
		case PhaseEntering, PhaseWaitingToExit:
			p.phase = PhaseExiting
		}
		p.arm(now)
	}

	if p.phase != PhaseEntering && p.phase != PhaseExiting {
		return
	}

	n := p.node
	speed := p.env.speed
	n.ScaleY = Approach(n.ScaleY, p.slot.node.ScaleY, speed, dt)
	if n.ScaleX < 0 {
		n.ScaleX = -n.ScaleY
	} else {
		n.ScaleX = n.ScaleY
	}
	alpha, depth := 1.0, 0.0
	if p.phase == PhaseExiting {
		alpha, depth = 0, -1
	}
	n.Alpha = Approach(n.Alpha, alpha, speed, dt)
	n.Depth = Approach(n.Depth, depth, speed, dt)
	n.MarkDirty()

	switch {
	case p.phase == PhaseEntering && n.Alpha == 1:
		p.phase = PhaseWaitingToExit
	case p.phase == PhaseExiting && n.Alpha == 0:
		p.phase = PhaseFinished
		p.close()
		p.env.emit(Event{Type: EventPieceFinish, Slot: p.slot.source, Digit: p.digit, Shape: p.placement.Shape, Time: now})
	}
}

// close returns the node to its pool. Safe to call more than once; only the
// first call releases.
func (p *PieceAnimator) close() {
	if p.released {
		return
	}
	p.released = true
	p.pool.Release(p.node)
	p.env.stats.released++
}
