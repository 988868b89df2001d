package pentoface

import (
	"slices"
	"time"
)

// DigitSlot owns one digit position of the face. When its wait-condition
// fires it assembles the newly displayed digit from a random tiling and keeps
// the spawned pieces animating until they finish.
type DigitSlot struct {
	sampler
	env    *env
	digit  int
	pieces []*PieceAnimator
}

func newDigitSlot(e *env, anchor *Node, source Source, waitTarget int) *DigitSlot {
	return &DigitSlot{
		sampler: sampler{
			timing:     e.timing,
			node:       anchor,
			source:     source,
			waitTarget: waitTarget,
		},
		env:   e,
		digit: -1,
	}
}

// Source returns which clock digit the slot shows.
func (s *DigitSlot) Source() Source {
	return s.source
}

// Anchor returns the slot's anchor node.
func (s *DigitSlot) Anchor() *Node {
	return s.node
}

// Digit returns the digit most recently spawned, or -1 before the first spawn.
func (s *DigitSlot) Digit() int {
	return s.digit
}

// WaitTarget returns the digit the wait-condition is keyed to.
func (s *DigitSlot) WaitTarget() int {
	return s.waitTarget
}

// Bootstrapped reports whether the slot has fired at least once since
// construction or its last reset.
func (s *DigitSlot) Bootstrapped() bool {
	return s.bootstrapped
}

// Pieces returns the live animators, oldest first. The returned slice MUST
// NOT be mutated.
func (s *DigitSlot) Pieces() []*PieceAnimator {
	return s.pieces
}

func (s *DigitSlot) update(now time.Time, dt float64) {
	if s.shouldFire(now) {
		s.spawn(now)
		s.arm(now)
	}

	for i := len(s.pieces) - 1; i >= 0; i-- {
		p := s.pieces[i]
		p.update(now, dt)
		if p.phase == PhaseFinished {
			s.pieces = slices.Delete(s.pieces, i, i+1)
		}
	}
}

// spawn starts a random tiling of the digit now displayed at the slot. The
// pieces inherit the slot's wait-condition as it was before this fire.
func (s *DigitSlot) spawn(now time.Time) {
	digit := s.displayedDigit(now)
	tilings := Solutions(digit)
	tiling := tilings[s.env.rng.IntN(len(tilings))]
	for _, pl := range tiling {
		s.pieces = append(s.pieces, newPieceAnimator(s.env, s, pl, digit, s.waitTarget, s.bootstrapped))
	}
	s.digit = digit
	s.env.stats.spawned += len(tiling)
	logger().Debug("digit spawned", "slot", s.source.String(), "digit", digit, "pieces", len(tiling), "bootstrap", !s.bootstrapped)
	s.env.emit(Event{Type: EventDigitSpawn, Slot: s.source, Digit: digit, Bootstrap: !s.bootstrapped, Time: now})
}

// reset forces every live piece out and returns the slot to bootstrap mode
// waiting for the raw seconds digit target.
func (s *DigitSlot) reset(target int) {
	for _, p := range s.pieces {
		p.Exit()
	}
	s.rearm(target)
}

// close releases every live piece's node without animating.
func (s *DigitSlot) close() {
	for _, p := range s.pieces {
		p.close()
	}
	clear(s.pieces)
	s.pieces = s.pieces[:0]
}
