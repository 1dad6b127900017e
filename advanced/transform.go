package advanced

import "math"

// Transform is an affine transformation of the plane, stored as a 3x3
// matrix in row-major order. The zero value is not useful; start from
// Identity or one of the constructors and compose with Mul.
type Transform struct {
	data [3][3]float64
}

// Identity returns the identity transformation.
func Identity() Transform {
	return Transform{data: [3][3]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}}
}

// Move returns a translation by dx, dy.
func Move(dx, dy float64) Transform {
	return Transform{data: [3][3]float64{
		{1, 0, dx},
		{0, 1, dy},
		{0, 0, 1},
	}}
}

// Rotate returns a rotation by phi radians around the origin.
func Rotate(phi float64) Transform {
	sin, cos := math.Sincos(phi)
	return Transform{data: [3][3]float64{
		{cos, -sin, 0},
		{sin, cos, 0},
		{0, 0, 1},
	}}
}

// RotateAround returns a rotation by phi radians around the point cx, cy.
func RotateAround(cx, cy, phi float64) Transform {
	return Move(cx, cy).Mul(Rotate(phi)).Mul(Move(-cx, -cy))
}

// ScaleBy returns a scaling by sx, sy around the origin.
func ScaleBy(sx, sy float64) Transform {
	return Transform{data: [3][3]float64{
		{sx, 0, 0},
		{0, sy, 0},
		{0, 0, 1},
	}}
}

// MirrorX returns a reflection across the y axis, negating x.
func MirrorX() Transform {
	return ScaleBy(-1, 1)
}

// MirrorY returns a reflection across the x axis, negating y.
func MirrorY() Transform {
	return ScaleBy(1, -1)
}

// Mul composes two transformations. The receiver is applied last:
// a.Mul(b).Apply(v) equals a.Apply(b.Apply(v)).
func (t Transform) Mul(other Transform) Transform {
	var out Transform
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				out.data[i][j] += t.data[i][k] * other.data[k][j]
			}
		}
	}
	return out
}

// Apply transforms a single point.
func (t Transform) Apply(v Vector) Vector {
	return Vector{
		X: v.X*t.data[0][0] + v.Y*t.data[0][1] + t.data[0][2],
		Y: v.X*t.data[1][0] + v.Y*t.data[1][1] + t.data[1][2],
	}
}

// ApplyToPolygon transforms every vertex of a polygon into a new polygon.
func (t Transform) ApplyToPolygon(poly Polygon) Polygon {
	points := make([]Vector, len(poly.Points))
	for i, v := range poly.Points {
		points[i] = t.Apply(v)
	}
	return Polygon{Points: points}
}
