package advanced

import "math"

// Epsilon is the global geometric tolerance. Coordinates closer than this
// are considered equal, and points closer than this to an edge are
// considered to lie on it. It is a variable so that users working at a very
// different scale can adjust it, but it must not be changed while any
// operation is in flight.
var Epsilon = 1e-4

// To compensate for imprecision in floats, equality is tolerance based.
// Exact comparison would make nearly every boundary classification flaky.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Often we want to treat a slice as a circular buffer. This gives the
// modular index given length n, but unlike the raw modulo operator, it only
// gives positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// vecKey is a Vector quantized to the Epsilon grid, for use as a map key.
// Two vectors that are Equal almost always quantize to the same key; see
// snap for how we keep that "almost" from mattering.
type vecKey struct {
	x, y int64
}

func keyOf(v Vector) vecKey {
	return vecKey{
		x: int64(math.Round(v.X / Epsilon)),
		y: int64(math.Round(v.Y / Epsilon)),
	}
}

// snap rounds v onto the Epsilon grid. Injected intersection points are
// snapped before they are used as fragment graph keys, so that the same
// geometric point computed from two different edge pairs always lands on
// the same key.
func snap(v Vector) Vector {
	return Vector{
		X: math.Round(v.X/Epsilon) * Epsilon,
		Y: math.Round(v.Y/Epsilon) * Epsilon,
	}
}
