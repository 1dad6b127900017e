package advanced

import (
	"fmt"
	"math"
)

// Vector is a 2D point or direction. It is a plain value type; every
// operation returns a new Vector and the receiver is never modified, so
// vectors can be copied and shared freely.
type Vector struct {
	X, Y float64
}

var (
	UnitX = Vector{1, 0}
	UnitY = Vector{0, 1}
)

func (v Vector) Add(w Vector) Vector {
	return Vector{v.X + w.X, v.Y + w.Y}
}

func (v Vector) Sub(w Vector) Vector {
	return Vector{v.X - w.X, v.Y - w.Y}
}

// Scale multiplies by a scalar. Together with Dot it replaces the
// overloaded multiplication some geometry libraries use; the two
// operations have nothing in common and deserve separate names.
func (v Vector) Scale(k float64) Vector {
	return Vector{v.X * k, v.Y * k}
}

func (v Vector) Div(k float64) Vector {
	return Vector{v.X / k, v.Y / k}
}

func (v Vector) Dot(w Vector) float64 {
	return v.X*w.X + v.Y*w.Y
}

func (v Vector) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

func (v Vector) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Slope is rise over run, or +Inf for a vertical vector.
func (v Vector) Slope() float64 {
	if v.X == 0 {
		return math.Inf(1)
	}
	return v.Y / v.X
}

// Normalize returns the unit vector with the same direction. The zero
// vector has no direction; normalizing it yields NaNs, which is the
// caller's problem.
func (v Vector) Normalize() Vector {
	return v.Div(v.Length())
}

// Clamp returns a vector with the same direction but never longer than 1.
func (v Vector) Clamp() Vector {
	if v.Length() > 1 {
		return v.Normalize()
	}
	return v
}

// Normal returns the perpendicular of v (rotated 90 degrees).
func (v Vector) Normal() Vector {
	return Vector{-v.Y, v.X}
}

// Equals compares componentwise within Epsilon.
func (v Vector) Equals(w Vector) bool {
	d := v.Sub(w)
	return math.Abs(d.X) < Epsilon && math.Abs(d.Y) < Epsilon
}

func (v Vector) String() string {
	return fmt.Sprintf("(%.3f, %.3f)", v.X, v.Y)
}
