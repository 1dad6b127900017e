package advanced

import "fmt"

// Uniform polygon offsetting, after:
//
// Xiaorui Chen and Sara McMains. Polygon Offsetting by Computing Winding
// Numbers. Proceedings of IDETC/CIE 2005, ASME International Design
// Engineering Technical Conferences.
//
// Every edge is translated along its normal, producing a raw contour that
// usually self-intersects. The raw contour is split into simple loops, and
// each loop is kept or discarded by the winding number of a point in its
// interior, measured against all raw loops of all inputs together.

// TipDecorator produces the geometry bridging the gap that offsetting
// leaves at a vertex whose turn does not match the offset's sign. a,b and
// c,d are the two adjacent offset edges.
type TipDecorator func(a, b, c, d Vector, clockwise bool) []Vector

// TipPointy bridges the gap with the true intersection of the two offset
// edge lines (a miter join). Parallel offset edges have no such point;
// nothing is inserted and the loop closes with a flat join instead.
func TipPointy(a, b, c, d Vector, clockwise bool) []Vector {
	if x, ok := IntersectLineLine(a, b, c, d); ok {
		return []Vector{x}
	}
	return nil
}

// TipFlat inserts nothing, closing the gap with a straight bevel.
func TipFlat(a, b, c, d Vector, clockwise bool) []Vector {
	return nil
}

// Offset grows (amount > 0) or shrinks (amount < 0) the given polygons.
// Counter-clockwise polygons are islands, clockwise polygons holes. A zero
// amount echoes the input. Inputs must be simple; offsetting a
// self-intersecting polygon is not validated and produces meaningless
// output. The debug sink, if non-nil, receives interior-point and
// winding-number annotations and has no effect on the result.
func Offset(polys PolygonList, amount float64, tip TipDecorator, debug DebugFunc) PolygonList {
	if amount == 0 {
		return polys
	}
	if tip == nil {
		tip = TipPointy
	}

	var raw [][]Vector
	for _, poly := range polys {
		raw = append(raw, decomposeContour(offsetContour(poly, amount, tip))...)
	}

	var out PolygonList
	for _, rawLoop := range raw {
		loop := SimplifySequence(append([]Vector(nil), rawLoop...))
		if len(loop) < 3 {
			continue
		}

		p := findPointInPolygon(loop, debug)
		wn := windingNumber(p, raw)
		debug.emit(p, 0xffff00, fmt.Sprintf("%d %d", wn, len(loop)))

		// Shrinking keeps every positively wound remainder; growing
		// keeps only regions covered exactly once, so overlapping
		// coverage is not duplicated.
		if (amount < 0 && wn > 0) || (amount > 0 && wn == 1) {
			out = append(out, FromPoints(loop))
		}
	}
	return out
}

// offsetContour builds the raw offset contour of one polygon: both
// endpoints of every translated edge, the original vertex as a miter point
// where the turn matches the offset sign, and tip decoration where it does
// not (the translated edges no longer meet there).
func offsetContour(poly Polygon, amount float64, tip TipDecorator) []Vector {
	pts := poly.Points
	var r []Vector
	for i := range pts {
		c := pts[i]
		n := pts[(i+1)%len(pts)]
		n2 := pts[(i+2)%len(pts)]
		convex := Orientation(c, n, n2)

		un := n.Sub(c).Normal().Normalize()
		un2 := n2.Sub(n).Normal().Normalize()

		cOff := c.Add(un.Scale(amount))
		nOff := n.Add(un.Scale(amount))
		n2Off := n2.Add(un2.Scale(amount))
		nOff2 := n.Add(un2.Scale(amount))

		r = append(r, cOff, nOff)
		if convex == (amount > 0) {
			r = append(r, n)
		} else {
			r = append(r, tip(cOff, nOff, nOff2, n2Off, true)...)
		}
	}
	return r
}

// decomposeContour splits a possibly self-intersecting contour into simple
// loops: inject every self-intersection point into the sequence in
// traversal order, then repeatedly scan forward until a point recurs and
// peel off the cyclic suffix as one loop.
func decomposeContour(points []Vector) [][]Vector {
	pts := append([]Vector(nil), points...)

	ints := make(map[int][]Vector)
	for i := 0; i < len(points); i++ {
		a, b := points[i], points[(i+1)%len(points)]
		for j := i + 1; j < len(points); j++ {
			c, d := points[j], points[(j+1)%len(points)]
			x, ok := IntersectSegmentSegment(a, b, c, d)
			if !ok {
				continue
			}
			x = snap(x)
			if x.Equals(a) || x.Equals(b) || x.Equals(c) || x.Equals(d) {
				continue
			}
			ints[i] = append(ints[i], x)
			ints[j] = append(ints[j], x)
		}
	}

	for i := 0; i < len(points); i++ {
		edgeInts := ints[i]
		if len(edgeInts) == 0 {
			continue
		}
		v1, v2 := points[i], points[(i+1)%len(points)]
		sortAlongEdge(v1, v2, edgeInts)
		pts = inorderExtend(pts, v2, edgeInts)
	}

	var out [][]Vector
	for len(pts) > 0 {
		var seen []Vector
		var loop []Vector
		for k := 0; k <= len(pts); k++ {
			p := pts[k%len(pts)]
			if at := indexOfPoint(seen, p); at >= 0 {
				loop = seen[at:]
				break
			}
			seen = append(seen, p)
		}
		// The scan revisits pts[0] after a full pass, so a repeat always
		// exists and loop is never empty.
		for _, p := range loop {
			pts = removeFirstPoint(pts, p)
		}
		out = append(out, loop)
	}
	return out
}

// inorderExtend inserts the sorted intersection points directly before the
// first occurrence of the edge's end vertex. Failing to find the end
// vertex means the working list no longer matches the contour it was built
// from, which is unrecoverable.
func inorderExtend(seq []Vector, v2 Vector, ints []Vector) []Vector {
	at := -1
	for i, p := range seq {
		if p.Equals(v2) {
			at = i
			break
		}
	}
	if at < 0 {
		fatalf("offset decomposition lost edge endpoint %v", v2)
	}

	out := make([]Vector, 0, len(seq)+len(ints))
	out = append(out, seq[:at]...)
	out = append(out, ints...)
	out = append(out, seq[at:]...)
	return out
}

func indexOfPoint(pts []Vector, p Vector) int {
	for i, q := range pts {
		if q.Equals(p) {
			return i
		}
	}
	return -1
}

func removeFirstPoint(pts []Vector, p Vector) []Vector {
	if at := indexOfPoint(pts, p); at >= 0 {
		return append(pts[:at], pts[at+1:]...)
	}
	return pts
}

// windingNumber accumulates rightward ray crossings of p against every raw
// loop: +1 for a downward crossing, -1 for an upward one.
func windingNumber(p Vector, raw [][]Vector) int {
	wn := 0
	right := p.Add(UnitX)
	for _, loop := range raw {
		for i, a := range loop {
			b := loop[(i+1)%len(loop)]

			if a.Y < p.Y && b.Y > p.Y {
				if x, ok := IntersectSegmentRay(a, b, p, right); ok && x.X > p.X {
					wn--
				}
			}
			if a.Y > p.Y && b.Y < p.Y {
				if x, ok := IntersectSegmentRay(a, b, p, right); ok && x.X > p.X {
					wn++
				}
			}
		}
	}
	return wn
}

// findPointInPolygon picks a point strictly inside a simple polygon. A
// triangle uses its centroid. Otherwise: find a convex vertex v, collect
// the polygon points inside the triangle around v, and take the midpoint
// of the shortest diagonal from v; with no such point the diagonal is
// unobstructed and the midpoint of the neighbor chord is inside.
func findPointInPolygon(pts []Vector, debug DebugFunc) Vector {
	if len(pts) == 3 {
		return pts[0].Add(pts[1]).Add(pts[2]).Div(3)
	}

	var a, v, b Vector
	for i := range pts {
		a = pts[CircularIndex(i-1, len(pts))]
		v = pts[i]
		b = pts[(i+1)%len(pts)]
		if !Orientation(a, v, b) {
			break
		}
	}

	var qs []Vector
	for _, q := range pts {
		if q.Equals(a) || q.Equals(v) || q.Equals(b) {
			continue
		}
		if PointInTriangle(q, a, v, b) {
			qs = append(qs, q)
		}
	}

	if len(pts) >= 5 {
		debug.emit(v, 0x000000, "V")
		debug.emit(a, 0x000000, "A")
		debug.emit(b, 0x000000, "B")
		for _, q := range qs {
			debug.emit(q, 0x000000, "Q")
		}
	}

	if len(qs) > 0 {
		best := qs[0]
		bestDist := best.Sub(v).LengthSquared()
		for _, q := range qs[1:] {
			if d := q.Sub(v).LengthSquared(); d < bestDist {
				best, bestDist = q, d
			}
		}
		return best.Sub(v).Div(2).Add(v)
	}
	return b.Sub(a).Div(2).Add(a)
}
