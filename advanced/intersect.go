package advanced

import "math"

// Orientation reports whether the turn a -> b -> c is clockwise, by the
// sign of the doubled signed triangle area. Collinear triples count as
// counter-clockwise: the test is strict, so callers must be aware that
// ties resolve to false.
func Orientation(a, b, c Vector) bool {
	return (b.X-a.X)*(c.Y-a.Y)-(c.X-a.X)*(b.Y-a.Y) > 0
}

// PointInTriangle reports whether p lies inside the triangle a, b, c, by
// checking that p is on the same orientation side of all three edges as
// the triangle itself.
func PointInTriangle(p, a, b, c Vector) bool {
	o := Orientation(a, b, c)
	return Orientation(a, b, p) == o && Orientation(b, c, p) == o && Orientation(a, p, c) == o
}

// DistancePointSegmentSquared is the squared distance from p to the
// segment ab: the perpendicular distance when the projection of p falls
// within the segment, otherwise the distance to the nearer endpoint.
// A degenerate segment (a == b) divides by zero; guarding against that is
// the caller's responsibility.
func DistancePointSegmentSquared(p, a, b Vector) float64 {
	ap := p.Sub(a)
	ab := b.Sub(a)

	r := ap.Dot(ab) / ab.LengthSquared()
	if r <= 0 {
		return ap.LengthSquared()
	}
	if r >= 1 {
		return p.Sub(b).LengthSquared()
	}

	s := (a.Y-p.Y)*(b.X-a.X) - (a.X-p.X)*(b.Y-a.Y)
	return s * s / ab.LengthSquared()
}

// DistancePointLine is the distance from p to the infinite line through
// a and b.
func DistancePointLine(p, a, b Vector) float64 {
	return math.Abs((p.X-a.X)*(b.Y-a.Y)-(p.Y-a.Y)*(b.X-a.X)) /
		math.Sqrt((b.X-a.X)*(b.X-a.X)+(b.Y-a.Y)*(b.Y-a.Y))
}

// intersectLineLineU solves for the parameters (uA, uB) at which the line
// through p1,p2 meets the line through q1,q2. Every other intersection
// variant derives from this by constraining the parameters. Parallel lines
// have no solution, reported as ok == false rather than an error.
func intersectLineLineU(p1, p2, q1, q2 Vector) (uA, uB float64, ok bool) {
	d := (q2.Y-q1.Y)*(p2.X-p1.X) - (q2.X-q1.X)*(p2.Y-p1.Y)
	if d == 0 {
		return 0, 0, false
	}

	n1 := (q2.X-q1.X)*(p1.Y-q1.Y) - (q2.Y-q1.Y)*(p1.X-q1.X)
	n2 := (p2.X-p1.X)*(p1.Y-q1.Y) - (p2.Y-p1.Y)*(p1.X-q1.X)
	return n1 / d, n2 / d, true
}

func pointAt(p1, p2 Vector, u float64) Vector {
	return Vector{p1.X + u*(p2.X-p1.X), p1.Y + u*(p2.Y-p1.Y)}
}

// IntersectLineLine intersects the infinite lines through p1,p2 and q1,q2.
func IntersectLineLine(p1, p2, q1, q2 Vector) (Vector, bool) {
	uA, _, ok := intersectLineLineU(p1, p2, q1, q2)
	if !ok {
		return Vector{}, false
	}
	return pointAt(p1, p2, uA), true
}

// IntersectSegmentLine intersects the segment p1,p2 with the infinite line
// through q1,q2.
func IntersectSegmentLine(p1, p2, q1, q2 Vector) (Vector, bool) {
	uA, _, ok := intersectLineLineU(p1, p2, q1, q2)
	if !ok || uA < 0 || uA > 1 {
		return Vector{}, false
	}
	return pointAt(p1, p2, uA), true
}

// IntersectSegmentRay intersects the segment p1,p2 with the ray starting
// at q1 towards q2.
func IntersectSegmentRay(p1, p2, q1, q2 Vector) (Vector, bool) {
	uA, uB, ok := intersectLineLineU(p1, p2, q1, q2)
	if !ok || uA < 0 || uA > 1 || uB < 0 {
		return Vector{}, false
	}
	return pointAt(p1, p2, uA), true
}

// IntersectSegmentSegment intersects the segments p1,p2 and q1,q2. An
// axis-aligned bounding box check rejects most distant pairs before the
// parameter solve.
func IntersectSegmentSegment(p1, p2, q1, q2 Vector) (Vector, bool) {
	if !segmentBoxesOverlap(p1, p2, q1, q2) {
		return Vector{}, false
	}
	uA, uB, ok := intersectLineLineU(p1, p2, q1, q2)
	if !ok || uA < 0 || uA > 1 || uB < 0 || uB > 1 {
		return Vector{}, false
	}
	return pointAt(p1, p2, uA), true
}

// SegmentsIntersect is the existence form of IntersectSegmentSegment; it
// never constructs the intersection point.
func SegmentsIntersect(p1, p2, q1, q2 Vector) bool {
	if !segmentBoxesOverlap(p1, p2, q1, q2) {
		return false
	}
	uA, uB, ok := intersectLineLineU(p1, p2, q1, q2)
	return ok && uA >= 0 && uA <= 1 && uB >= 0 && uB <= 1
}

func segmentBoxesOverlap(p1, p2, q1, q2 Vector) bool {
	if math.Max(q1.X, q2.X) < math.Min(p1.X, p2.X) {
		return false
	}
	if math.Min(q1.X, q2.X) > math.Max(p1.X, p2.X) {
		return false
	}
	if math.Max(q1.Y, q2.Y) < math.Min(p1.Y, p2.Y) {
		return false
	}
	if math.Min(q1.Y, q2.Y) > math.Max(p1.Y, p2.Y) {
		return false
	}
	return true
}

// IntersectPolygonSegment collects the intersections of every edge of the
// polygon given by pts with the segment p1,p2. Intersections at p2 itself
// are skipped.
func IntersectPolygonSegment(pts []Vector, p1, p2 Vector) []Vector {
	var out []Vector
	for i, a := range pts {
		b := pts[CircularIndex(i+1, len(pts))]
		if a.Equals(p2) || b.Equals(p2) {
			continue
		}
		if x, ok := IntersectSegmentSegment(a, b, p1, p2); ok {
			out = append(out, x)
		}
	}
	return out
}

// IntersectPolygonRay collects the intersections of every edge of the
// polygon given by pts with the ray from p1 towards p2.
func IntersectPolygonRay(pts []Vector, p1, p2 Vector) []Vector {
	var out []Vector
	for i, a := range pts {
		b := pts[CircularIndex(i+1, len(pts))]
		if x, ok := IntersectSegmentRay(a, b, p1, p2); ok {
			out = append(out, x)
		}
	}
	return out
}

// IntersectPolygonPolygon collects every edge-edge intersection between
// the two polygons.
func IntersectPolygonPolygon(pts1, pts2 []Vector) []Vector {
	var out []Vector
	for i, a := range pts1 {
		b := pts1[CircularIndex(i+1, len(pts1))]
		out = append(out, IntersectPolygonSegment(pts2, a, b)...)
	}
	return out
}
