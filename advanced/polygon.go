package advanced

import (
	"math"
	"sort"
	"strings"
)

// Containment classifies a point against a polygon.
type Containment int

const (
	Outside Containment = iota
	Inside
	OnBoundary
)

// Polygon is an ordered sequence of vertices. The edge set is implicit:
// edge i connects Points[i] to Points[(i+1) % n], so the loop closes
// itself. Apart from the explicitly documented cases, no operation assumes
// a minimum vertex count.
type Polygon struct {
	Points []Vector
}

// PolygonList is a set of polygons, usually the output of a boolean,
// offset or decomposition operation.
type PolygonList []Polygon

// FromPoints builds a polygon over the given vertex slice. The slice is
// not copied.
func FromPoints(points []Vector) Polygon {
	return Polygon{Points: points}
}

// FromTuples builds a polygon from x,y pairs.
func FromTuples(tuples [][2]float64) Polygon {
	points := make([]Vector, len(tuples))
	for i, t := range tuples {
		points[i] = Vector{t[0], t[1]}
	}
	return Polygon{Points: points}
}

// Regular builds a regular polygon with n vertices around a center. Three
// points make a triangle, four a square, and so on.
func Regular(center Vector, radius float64, n int) Polygon {
	increment := 2 * math.Pi / float64(n)
	points := make([]Vector, n)
	for i := range points {
		phi := float64(i) * increment
		points[i] = Vector{
			X: center.X + radius*math.Cos(phi),
			Y: center.Y + radius*math.Sin(phi),
		}
	}
	return Polygon{Points: points}
}

func (poly *Polygon) AddPoint(p Vector) {
	poly.Points = append(poly.Points, p)
}

func (poly *Polygon) AddPoints(pts ...Vector) {
	poly.Points = append(poly.Points, pts...)
}

// Center is the vertex centroid (mean of the points). This is not the
// center of mass of the enclosed area, but it is inside any convex
// polygon, which is all the algorithms here need.
func (poly Polygon) Center() Vector {
	var sum Vector
	for _, p := range poly.Points {
		sum = sum.Add(p)
	}
	return sum.Div(float64(len(poly.Points)))
}

// SortAround reorders the points by their angle around a center point.
func (poly Polygon) SortAround(center Vector) {
	angle := func(v Vector) float64 {
		phi := math.Acos(v.X / v.Length())
		if v.Y < 0 {
			phi = 2*math.Pi - phi
		}
		return phi
	}
	sort.SliceStable(poly.Points, func(i, j int) bool {
		return angle(poly.Points[i].Sub(center)) < angle(poly.Points[j].Sub(center))
	})
}

// Clone returns a polygon with its own copy of the point slice.
func (poly Polygon) Clone() Polygon {
	points := make([]Vector, len(poly.Points))
	copy(points, poly.Points)
	return Polygon{Points: points}
}

// Flip reverses the orientation of the polygon in place.
func (poly *Polygon) Flip() {
	pts := poly.Points
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}

// CloneCW returns a clockwise copy.
func (poly Polygon) CloneCW() Polygon {
	c := poly.Clone()
	if !c.IsClockwise() {
		c.Flip()
	}
	return c
}

// CloneCCW returns a counter-clockwise copy.
func (poly Polygon) CloneCCW() Polygon {
	c := poly.Clone()
	if c.IsClockwise() {
		c.Flip()
	}
	return c
}

// IsClockwise determines the global orientation from a local test: take
// the vertex with minimal x (the first occurrence wins ties) and evaluate
// the orientation of its neighbor triple. The extreme vertex is guaranteed
// convex, which makes this robust where summing cross products is not.
func (poly Polygon) IsClockwise() bool {
	return clockwisePoints(poly.Points)
}

func clockwisePoints(pts []Vector) bool {
	iMin := 0
	for i, p := range pts {
		if p.X < pts[iMin].X {
			iMin = i
		}
	}

	a := pts[CircularIndex(iMin-1, len(pts))]
	b := pts[iMin]
	c := pts[(iMin+1)%len(pts)]
	return Orientation(a, b, c)
}

// IsConvex reports whether every consecutive vertex triple turns the same
// way. Requires at least 3 points; behavior below that is unspecified.
func (poly Polygon) IsConvex() bool {
	return convexPoints(poly.Points)
}

func convexPoints(pts []Vector) bool {
	if len(pts) < 3 {
		return true
	}

	ori := Orientation(pts[len(pts)-1], pts[0], pts[1])
	for i := 1; i < len(pts); i++ {
		p, c, n := pts[i-1], pts[i], pts[(i+1)%len(pts)]
		if Orientation(p, c, n) != ori {
			return false
		}
	}
	return true
}

// IsSelfIntersecting checks every pair of non-adjacent edges for
// intersection. O(n²), which is fine for the vertex counts polygons here
// actually have.
func (poly Polygon) IsSelfIntersecting() bool {
	pts := poly.Points
	for i := 0; i < len(pts); i++ {
		for j := i + 1; j < len(pts); j++ {
			a, b := pts[i], pts[(i+1)%len(pts)]
			c, d := pts[j], pts[(j+1)%len(pts)]

			if b.Equals(c) || d.Equals(a) {
				continue
			}
			if SegmentsIntersect(a, b, c, d) {
				return true
			}
		}
	}
	return false
}

// ContainsPoint classifies p against the polygon. Points within Epsilon of
// an edge classify as OnBoundary; otherwise a rightward ray is cast from p
// and the crossing parity decides Inside versus Outside. Requires at least
// 3 points.
func (poly Polygon) ContainsPoint(p Vector) Containment {
	return containsPoint(poly.Points, p)
}

func containsPoint(pts []Vector, p Vector) Containment {
	// Boundary short-circuit.
	for i, a := range pts {
		b := pts[(i+1)%len(pts)]
		if a.Equals(b) {
			if p.Equals(a) {
				return OnBoundary
			}
			continue
		}
		if DistancePointSegmentSquared(p, a, b) < Epsilon*Epsilon {
			return OnBoundary
		}
	}

	intersections := uniquePoints(IntersectPolygonRay(pts, p, p.Add(UnitX)))

	// An intersection exactly at a vertex is counted by both adjacent
	// edges. If the vertex is a glancing hit (both neighbors on the same
	// side of the ray) it must not count at all; a true crossing must
	// count once, which deduplication above already ensured.
	kept := intersections[:0]
	for _, ip := range intersections {
		iv := -1
		for i, v := range pts {
			if v.Equals(ip) {
				iv = i
				break
			}
		}
		if iv >= 0 {
			prv := pts[CircularIndex(iv-1, len(pts))]
			nxt := pts[(iv+1)%len(pts)]
			if Orientation(p, ip, nxt) == Orientation(p, ip, prv) {
				continue
			}
		}
		kept = append(kept, ip)
	}

	if len(kept)%2 == 1 {
		return Inside
	}
	return Outside
}

// uniquePoints removes tolerance-duplicates, preserving order.
func uniquePoints(pts []Vector) []Vector {
	var out []Vector
	for _, p := range pts {
		dup := false
		for _, q := range out {
			if p.Equals(q) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, p)
		}
	}
	return out
}

// SimplifySequence removes points that duplicate a neighbor or are
// collinear with their neighbors within tolerance. After a removal the
// same index is revisited; the pass ends when the sequence stops
// shrinking. Sequences shorter than 3 points collapse to nothing.
func SimplifySequence(seq []Vector) []Vector {
	i := 0
	for i < len(seq) {
		p := seq[CircularIndex(i-1, len(seq))]
		c := seq[i]
		n := seq[(i+1)%len(seq)]

		if p.Equals(c) || c.Equals(n) || p.Equals(n) || DistancePointSegmentSquared(c, p, n) < Epsilon {
			seq = append(seq[:i], seq[i+1:]...)
		} else {
			i++
		}
	}
	return seq
}

// Simplify returns a copy of the polygon with its point sequence
// simplified.
func (poly Polygon) Simplify() Polygon {
	c := poly.Clone()
	c.Points = SimplifySequence(c.Points)
	return c
}

// Area is the enclosed area by the shoelace formula, independent of
// orientation. Self-intersecting polygons get the algebraic area, which is
// rarely what anyone wants.
func (poly Polygon) Area() float64 {
	var sum float64
	for i, a := range poly.Points {
		b := poly.Points[(i+1)%len(poly.Points)]
		sum += a.X*b.Y - b.X*a.Y
	}
	return math.Abs(sum) / 2
}

func (poly Polygon) Left() float64 {
	min := math.Inf(1)
	for _, p := range poly.Points {
		min = math.Min(min, p.X)
	}
	return min
}

func (poly Polygon) Right() float64 {
	max := math.Inf(-1)
	for _, p := range poly.Points {
		max = math.Max(max, p.X)
	}
	return max
}

func (poly Polygon) Top() float64 {
	min := math.Inf(1)
	for _, p := range poly.Points {
		min = math.Min(min, p.Y)
	}
	return min
}

func (poly Polygon) Bottom() float64 {
	max := math.Inf(-1)
	for _, p := range poly.Points {
		max = math.Max(max, p.Y)
	}
	return max
}

func (poly Polygon) Width() float64 {
	return poly.Right() - poly.Left()
}

func (poly Polygon) Height() float64 {
	return poly.Bottom() - poly.Top()
}

// Equals compares point sequences pairwise within tolerance. Rotations of
// the same loop do not compare equal.
func (poly Polygon) Equals(other Polygon) bool {
	if len(poly.Points) != len(other.Points) {
		return false
	}
	for i, p := range poly.Points {
		if !p.Equals(other.Points[i]) {
			return false
		}
	}
	return true
}

func (poly Polygon) String() string {
	var b strings.Builder
	b.WriteString("Polygon [")
	for i, p := range poly.Points {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	b.WriteString("]")
	return b.String()
}
