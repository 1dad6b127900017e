package advanced

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVectorArithmetic(t *testing.T) {
	a := Vector{3, 4}
	b := Vector{1, -2}

	assert.Equal(t, Vector{4, 2}, a.Add(b))
	assert.Equal(t, Vector{2, 6}, a.Sub(b))
	assert.Equal(t, Vector{6, 8}, a.Scale(2))
	assert.Equal(t, Vector{1.5, 2}, a.Div(2))
	assert.Equal(t, -5.0, a.Dot(b))
}

func TestVectorLength(t *testing.T) {
	v := Vector{3, 4}
	assert.Equal(t, 5.0, v.Length())
	assert.Equal(t, 25.0, v.LengthSquared())

	unit := v.Normalize()
	assert.InDelta(t, 1.0, unit.Length(), 1e-12)
	assert.InDelta(t, 0.6, unit.X, 1e-12)
	assert.InDelta(t, 0.8, unit.Y, 1e-12)
}

func TestVectorSlope(t *testing.T) {
	assert.Equal(t, 2.0, Vector{1, 2}.Slope())
	assert.Equal(t, -0.5, Vector{2, -1}.Slope())
	assert.True(t, math.IsInf(Vector{0, 3}.Slope(), 1))
}

func TestVectorClamp(t *testing.T) {
	long := Vector{3, 4}.Clamp()
	assert.InDelta(t, 1.0, long.Length(), 1e-12)

	short := Vector{0.3, 0.4}
	assert.Equal(t, short, short.Clamp())
}

func TestVectorNormal(t *testing.T) {
	// Rotating twice by 90 degrees negates the vector
	v := Vector{2, 1}
	assert.Equal(t, Vector{-1, 2}, v.Normal())
	assert.Equal(t, v.Scale(-1), v.Normal().Normal())
	assert.Equal(t, 0.0, v.Dot(v.Normal()))
}

func TestVectorEquals(t *testing.T) {
	v := Vector{1, 1}
	assert.True(t, v.Equals(Vector{1 + Epsilon/2, 1 - Epsilon/2}))
	assert.False(t, v.Equals(Vector{1 + Epsilon*2, 1}))
	assert.False(t, v.Equals(Vector{2, 1}))
}

func TestCircularIndex(t *testing.T) {
	assert.Equal(t, 0, CircularIndex(0, 4))
	assert.Equal(t, 3, CircularIndex(-1, 4))
	assert.Equal(t, 1, CircularIndex(5, 4))
	assert.Equal(t, 2, CircularIndex(-6, 4))
}
