package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func totalArea(polys PolygonList) float64 {
	var sum float64
	for _, p := range polys {
		sum += p.Area()
	}
	return sum
}

func TestBooleanInvalidOperation(t *testing.T) {
	_, err := BooleanOperation(UnitSquareAt(0, 0), UnitSquareAt(5, 5), Operation(42))
	assert.Equal(t, ErrInvalidOperation, err)
}

func TestBooleanIdenticalOperands(t *testing.T) {
	square := UnitSquareAt(0, 0)

	t.Run("union", func(t *testing.T) {
		out, err := BooleanOperation(square, square, OpUnion)
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.InDelta(t, 1.0, out[0].Area(), 1e-6)
		assert.Len(t, out[0].Points, 4)
	})

	t.Run("intersection", func(t *testing.T) {
		out, err := BooleanOperation(square, square, OpIntersection)
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.InDelta(t, 1.0, out[0].Area(), 1e-6)
	})

	t.Run("difference", func(t *testing.T) {
		out, err := BooleanOperation(square, square, OpDifference)
		require.NoError(t, err)
		assert.Empty(t, out)
	})
}

func TestBooleanDisjoint(t *testing.T) {
	a := UnitSquareAt(0, 0)
	b := UnitSquareAt(2, 2)

	t.Run("union keeps both", func(t *testing.T) {
		out, err := BooleanOperation(a, b, OpUnion)
		require.NoError(t, err)
		require.Len(t, out, 2)
		assert.InDelta(t, 2.0, totalArea(out), 1e-6)
	})

	t.Run("intersection is empty", func(t *testing.T) {
		out, err := BooleanOperation(a, b, OpIntersection)
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("difference keeps the minuend", func(t *testing.T) {
		out, err := BooleanOperation(a, b, OpDifference)
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.InDelta(t, 1.0, out[0].Area(), 1e-6)
	})
}

func TestBooleanOverlappingSquares(t *testing.T) {
	// Two unit squares sharing half their area. The union is a plain
	// rectangle once the crossing points on the collinear edges have been
	// simplified away.
	a := UnitSquareAt(0, 0)
	b := UnitSquareAt(0.5, 0)

	t.Run("union", func(t *testing.T) {
		out, err := BooleanOperation(a, b, OpUnion)
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.InDelta(t, 1.5, out[0].Area(), 1e-6)
		assert.Len(t, out[0].Points, 4)
	})

	t.Run("intersection", func(t *testing.T) {
		out, err := BooleanOperation(a, b, OpIntersection)
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.InDelta(t, 0.5, out[0].Area(), 1e-6)
	})

	t.Run("difference", func(t *testing.T) {
		out, err := BooleanOperation(a, b, OpDifference)
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.InDelta(t, 0.5, out[0].Area(), 1e-6)
		// The remainder is the left half of a
		assert.InDelta(t, 0.0, out[0].Left(), 1e-6)
		assert.InDelta(t, 0.5, out[0].Right(), 1e-6)
	})
}

func TestBooleanCornerOverlap(t *testing.T) {
	a := FromTuples([][2]float64{{0, 0}, {2, 0}, {2, 2}, {0, 2}})
	b := FromTuples([][2]float64{{1, 1}, {3, 1}, {3, 3}, {1, 3}})

	t.Run("union", func(t *testing.T) {
		out, err := BooleanOperation(a, b, OpUnion)
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.InDelta(t, 7.0, out[0].Area(), 1e-6)
		assert.Len(t, out[0].Points, 8)
	})

	t.Run("intersection", func(t *testing.T) {
		out, err := BooleanOperation(a, b, OpIntersection)
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.InDelta(t, 1.0, out[0].Area(), 1e-6)
		assert.Len(t, out[0].Points, 4)
	})

	t.Run("difference", func(t *testing.T) {
		out, err := BooleanOperation(a, b, OpDifference)
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.InDelta(t, 3.0, out[0].Area(), 1e-6)
		assert.Len(t, out[0].Points, 6)
	})

	t.Run("reversed difference", func(t *testing.T) {
		out, err := BooleanOperation(b, a, OpDifference)
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.InDelta(t, 3.0, out[0].Area(), 1e-6)
	})
}

func TestBooleanOrientationIndependence(t *testing.T) {
	// Winding of the inputs must not affect the result
	a := FromTuples([][2]float64{{0, 0}, {2, 0}, {2, 2}, {0, 2}})
	b := FromTuples([][2]float64{{1, 1}, {3, 1}, {3, 3}, {1, 3}})

	for _, variant := range []struct {
		name string
		a, b Polygon
	}{
		{"cw cw", a.CloneCW(), b.CloneCW()},
		{"ccw ccw", a.CloneCCW(), b.CloneCCW()},
		{"cw ccw", a.CloneCW(), b.CloneCCW()},
		{"ccw cw", a.CloneCCW(), b.CloneCW()},
	} {
		t.Run(variant.name, func(t *testing.T) {
			union, err := BooleanOperation(variant.a, variant.b, OpUnion)
			require.NoError(t, err)
			assert.InDelta(t, 7.0, totalArea(union), 1e-6)

			difference, err := BooleanOperation(variant.a, variant.b, OpDifference)
			require.NoError(t, err)
			assert.InDelta(t, 3.0, totalArea(difference), 1e-6)
		})
	}
}

func TestBooleanContainedOperand(t *testing.T) {
	outer := FromTuples([][2]float64{{0, 0}, {4, 0}, {4, 4}, {0, 4}})
	inner := FromTuples([][2]float64{{1, 1}, {2, 1}, {2, 2}, {1, 2}})

	t.Run("intersection is the inner square", func(t *testing.T) {
		out, err := BooleanOperation(outer, inner, OpIntersection)
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.InDelta(t, 1.0, out[0].Area(), 1e-6)
	})

	t.Run("outer minus inner yields a hole loop", func(t *testing.T) {
		out, err := BooleanOperation(outer, inner, OpDifference)
		require.NoError(t, err)
		require.Len(t, out, 2)

		// The hole comes back as a second loop wound opposite to the
		// boundary.
		assert.InDelta(t, 17.0, out[0].Area()+out[1].Area(), 1e-6)
		assert.InDelta(t, 16.0, out[0].Area()*out[1].Area(), 1e-6)
		assert.NotEqual(t, out[0].IsClockwise(), out[1].IsClockwise())
	})

	t.Run("inner minus outer is empty", func(t *testing.T) {
		out, err := BooleanOperation(inner, outer, OpDifference)
		require.NoError(t, err)
		assert.Empty(t, out)
	})
}
