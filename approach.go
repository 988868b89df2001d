package pentoface

import "math"

// SnapEpsilon is the distance below which Approach lands exactly on target.
const SnapEpsilon = 0.001

// DefaultSpeed is the shared rate of every interpolated quantity, in 1/s.
const DefaultSpeed = 5.0

// Approach moves current toward target by the fraction dt*speed (clamped to
// [0, 1]) of the remaining distance. It returns target exactly once the
// remaining distance is below SnapEpsilon, so callers may compare the result
// with == to detect arrival.
func Approach(current, target, speed, dt float64) float64 {
	distance := target - current
	if math.Abs(distance) < SnapEpsilon {
		return target
	}
	return current + distance*min(max(dt*speed, 0), 1)
}
