package pentoface

import "time"

// Timing defaults: one second of skew per 300 units of diagonal distance from
// the anchor, and half a second of lead so a transition has finished by the
// time the clock reaches it. FaceConfig.NoLead turns the lead off.
const (
	DefaultSecondsPerUnit = 1.0 / 300
	DefaultLead           = 0.5
)

// timing holds the parameters every sampler of a face shares.
type timing struct {
	anchor         *Node
	secondsPerUnit float64
	lead           float64
	hours          HourConvention
}

// sampler is the wait-condition of one spatial element. It evaluates the
// clock at the element's virtual time, skewed by its position relative to the
// anchor, and fires once per change of the sampled digit.
//
// Until the first fire it runs in bootstrap mode, watching the raw seconds
// counter modulo 10 for waitTarget; afterwards it watches the real digit of
// its source and fires whenever it differs from waitTarget.
type sampler struct {
	*timing
	node         *Node
	source       Source
	bootstrapped bool
	waitTarget   int
}

// offset returns the element's time skew in seconds. Scene y grows
// downwards, so elements left of or above the anchor run ahead and the
// change sweeps from the top-left corner towards the anchor.
func (s *sampler) offset() float64 {
	a := s.anchor
	return ((a.X-s.node.X)+(a.Y-s.node.Y))*s.secondsPerUnit + s.lead
}

// virtualTime returns now shifted by the element's skew.
func (s *sampler) virtualTime(now time.Time) time.Time {
	return now.Add(time.Duration(s.offset() * float64(time.Second)))
}

// sampledSecond returns the raw seconds digit at the element's virtual time.
func (s *sampler) sampledSecond(now time.Time) int {
	return s.virtualTime(now).Second() % 10
}

// sampledDigit returns the digit the wait-condition compares against.
func (s *sampler) sampledDigit(now time.Time) int {
	if !s.bootstrapped {
		return s.sampledSecond(now)
	}
	return s.source.Digit(s.virtualTime(now), s.hours)
}

// displayedDigit returns the source's real digit at the element's virtual
// time, regardless of mode.
func (s *sampler) displayedDigit(now time.Time) int {
	return s.source.Digit(s.virtualTime(now), s.hours)
}

// shouldFire evaluates the wait-condition.
func (s *sampler) shouldFire(now time.Time) bool {
	d := s.sampledDigit(now)
	if s.bootstrapped {
		return d != s.waitTarget
	}
	return d == s.waitTarget
}

// arm switches to normal mode and waits for the digit to move on from its
// current value.
func (s *sampler) arm(now time.Time) {
	s.bootstrapped = true
	s.waitTarget = s.sampledDigit(now)
}

// rearm returns to bootstrap mode waiting for the raw seconds digit target.
func (s *sampler) rearm(target int) {
	s.bootstrapped = false
	s.waitTarget = target
}
