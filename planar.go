// A 2D computational geometry package for Go.
//
// This package computes boolean operations (union, intersection,
// difference) on simple polygons, grows or shrinks polygons by a uniform
// offset, and decomposes concave polygons with holes into convex pieces.
// The advanced subpackage exposes the underlying machinery, including the
// raw intersection predicates and affine transforms.
package planar

import "github.com/veelum/planar/advanced"

type Vector = advanced.Vector
type Polygon = advanced.Polygon
type Operation = advanced.Operation
type Containment = advanced.Containment
type TipDecorator = advanced.TipDecorator
type Transform = advanced.Transform

const (
	OpUnion        = advanced.OpUnion
	OpIntersection = advanced.OpIntersection
	OpDifference   = advanced.OpDifference
)

// Boolean computes the given boolean operation on two simple polygons.
// Orientation of the inputs is irrelevant. The result may contain zero,
// one, or several polygons; a difference that splits its operand in two is
// perfectly normal.
func Boolean(a, b Polygon, op Operation) (result []Polygon, err error) {
	defer func() {
		if recovered := advanced.HandlePanicRecover(recover()); recovered != nil {
			result = nil
			err = recovered
		}
	}()
	out, err := advanced.BooleanOperation(a, b, op)
	if err != nil {
		return nil, err
	}
	return []Polygon(out), nil
}

// Union returns the polygons covering the area inside a or b.
func Union(a, b Polygon) ([]Polygon, error) {
	return Boolean(a, b, OpUnion)
}

// Intersect returns the polygons covering the area inside both a and b.
func Intersect(a, b Polygon) ([]Polygon, error) {
	return Boolean(a, b, OpIntersection)
}

// Subtract returns the polygons covering the area inside a but not b.
func Subtract(a, b Polygon) ([]Polygon, error) {
	return Boolean(a, b, OpDifference)
}

// Offset grows (amount > 0) or shrinks (amount < 0) the given polygons by
// a uniform distance, with pointy miter corners. Counter-clockwise
// polygons are treated as islands and clockwise ones as holes, in screen
// coordinates with the y axis pointing down.
func Offset(polygons []Polygon, amount float64) (result []Polygon, err error) {
	return OffsetWithTip(polygons, amount, advanced.TipPointy)
}

// OffsetPolygon is Offset for a single polygon.
func OffsetPolygon(polygon Polygon, amount float64) ([]Polygon, error) {
	return Offset([]Polygon{polygon}, amount)
}

// OffsetWithTip is Offset with an explicit corner decorator, such as
// advanced.TipFlat for beveled corners.
func OffsetWithTip(polygons []Polygon, amount float64, tip TipDecorator) (result []Polygon, err error) {
	defer func() {
		if recovered := advanced.HandlePanicRecover(recover()); recovered != nil {
			result = nil
			err = recovered
		}
	}()
	out := advanced.Offset(advanced.PolygonList(polygons), amount, tip, nil)
	return []Polygon(out), nil
}

// ConvexDecompose splits a simple polygon, minus any holes inside it, into
// convex pieces. A self-intersecting polygon yields no pieces.
func ConvexDecompose(polygon Polygon, holes ...Polygon) (result []Polygon, err error) {
	defer func() {
		if recovered := advanced.HandlePanicRecover(recover()); recovered != nil {
			result = nil
			err = recovered
		}
	}()
	out := advanced.ConvexDecompose(polygon, advanced.PolygonList(holes), nil)
	return []Polygon(out), nil
}
