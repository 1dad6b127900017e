package advanced

import (
	"fmt"
	"sort"
)

// Convex decomposition by diagonals, procedure MP3 from:
//
// Jose Fernandez, Boglarka Toth, Lazaro Canovas and Blas Pelegrin. A
// practical algorithm for decomposing polygonal domains into convex
// polygons by diagonals. TOP Volume 16, Number 2, 367-387.
// doi 10.1007/s11750-008-0055-2
//
// The working polygon is kept clockwise. A decomposition step grows a
// candidate vertex run forward to the next notch, shrinks it until it is a
// valid convex piece, grows it backward the same way, and if a piece
// survives cuts it off along the diagonal between its first and last
// vertex. Holes are absorbed into the boundary through a keyhole cut
// before any piece that would cross or contain them is emitted.

type decomposer struct {
	p     []Vector
	holes PolygonList
	out   PolygonList
	debug DebugFunc

	delIndex int
}

// ConvexDecompose splits a simple polygon into convex pieces whose union
// covers the input minus its holes. Holes must lie strictly inside the
// polygon and must not overlap each other. A self-intersecting input
// yields nil; a convex input without holes is returned as its own single
// piece. The debug sink, if non-nil, receives vertex deletion and keyhole
// annotations and has no effect on the result.
func ConvexDecompose(polygon Polygon, holes PolygonList, debug DebugFunc) PolygonList {
	if polygon.IsSelfIntersecting() {
		return nil
	}
	if polygon.IsConvex() && len(holes) == 0 {
		return PolygonList{polygon.Clone()}
	}

	if !polygon.IsClockwise() {
		polygon = polygon.CloneCW()
	}

	d := &decomposer{
		p:     append([]Vector(nil), polygon.Points...),
		holes: append(PolygonList(nil), holes...),
		debug: debug,
	}
	return d.run()
}

func (d *decomposer) run() PolygonList {
	if convexPoints(d.p) && len(d.holes) > 0 {
		d.handleHolesConvex()
	}

	i := 0
	for len(d.p) > 3 && !convexPoints(d.p) {
		if !d.tryDecompose(i) {
			i++
		}
		if convexPoints(d.p) && len(d.holes) > 0 {
			d.handleHolesConvex()
		}
		i %= len(d.p)
	}

	if len(d.p) >= 3 {
		d.out = append(d.out, FromPoints(d.p))
	} else if len(d.p) > 0 {
		fatalf("convex decomposition left %d stray points over: %v", len(d.p), d.p)
	}
	return d.out
}

// isNotch reports whether vertex i is a reflex vertex of the clockwise
// working polygon.
func (d *decomposer) isNotch(i int) bool {
	n := len(d.p)
	return !Orientation(d.p[CircularIndex(i-1, n)], d.p[i], d.p[(i+1)%n])
}

// checkDecomp decides whether the vertex run l is a valid piece: one of
// the diagonal endpoints must be a notch (criterion MP3), the run must be
// convex, and no notch of the remainder may lie strictly inside it. Only
// notches within the run's bounding box are containment-tested.
func (d *decomposer) checkDecomp(l []int) bool {
	lv := make([]Vector, len(l))
	inRun := make(map[int]bool, len(l))
	for i, k := range l {
		lv[i] = d.p[k]
		inRun[k] = true
	}

	if !d.isNotch(l[0]) && !d.isNotch(l[len(l)-1]) {
		return false
	}
	if !convexPoints(lv) {
		return false
	}

	xMin, xMax := lv[0].X, lv[0].X
	yMin, yMax := lv[0].Y, lv[0].Y
	for _, v := range lv[1:] {
		if v.X < xMin {
			xMin = v.X
		}
		if v.X > xMax {
			xMax = v.X
		}
		if v.Y < yMin {
			yMin = v.Y
		}
		if v.Y > yMax {
			yMax = v.Y
		}
	}

	for k := range d.p {
		if inRun[k] {
			continue
		}
		v := d.p[k]
		if v.X < xMin || v.X > xMax || v.Y < yMin || v.Y > yMax {
			continue
		}
		if !d.isNotch(k) {
			continue
		}
		if containsPoint(lv, v) == Inside {
			return false
		}
	}
	return true
}

// tryDecompose attempts to cut off one convex piece whose vertex run
// begins at iStart. It reports false when no valid piece remains after
// shrinking, or when a hole had to be absorbed first; the caller retries.
func (d *decomposer) tryDecompose(iStart int) bool {
	n := len(d.p)

	// next notch going forward
	iExtend := iStart
	for k := 1; k <= n; k++ {
		if i := (iStart + k) % n; d.isNotch(i) {
			iExtend = i
			break
		}
	}

	var l []int
	if iStart < iExtend {
		for i := iStart; i <= iExtend; i++ {
			l = append(l, i)
		}
	} else {
		for i := iStart; i < n; i++ {
			l = append(l, i)
		}
		for i := 0; i <= iExtend; i++ {
			l = append(l, i)
		}
	}

	for len(l) > 2 && !d.checkDecomp(l) {
		l = l[:len(l)-1]
	}

	// next notch going backward
	iExtend2 := iStart
	for k := 0; k < n; k++ {
		if i := CircularIndex(iStart-k, n); d.isNotch(i) {
			iExtend2 = i
			break
		}
	}

	var l2 []int
	if iExtend2 > iStart {
		for i := iExtend2; i < n; i++ {
			l2 = append(l2, i)
		}
		for i := 0; i < iStart; i++ {
			l2 = append(l2, i)
		}
	} else {
		for i := iExtend2; i < iStart; i++ {
			l2 = append(l2, i)
		}
	}
	l = append(l2, l...)

	for len(l) > 2 && !d.checkDecomp(l) {
		l = l[1:]
	}

	if len(l) <= 2 {
		return false
	}

	lv := make([]Vector, len(l))
	for i, k := range l {
		lv[i] = d.p[k]
	}

	// The diagonal l[0],l[-1] closes the piece. A hole crossing or
	// trapped by it gets absorbed into the boundary instead, reshaping
	// p, and the whole attempt starts over.
	if !d.handleHoles(lv, d.p[l[0]], d.p[l[len(l)-1]]) {
		return false
	}

	d.out = append(d.out, FromPoints(lv))

	interior := append([]int(nil), l[1:len(l)-1]...)
	sort.Sort(sort.Reverse(sort.IntSlice(interior)))
	for _, v := range interior {
		d.debug.emit(d.p[v], 0xff00ff, fmt.Sprintf("del %d", d.delIndex))
		d.delIndex++
		d.p = append(d.p[:v], d.p[v+1:]...)
	}
	return true
}

// handleHoles checks the piece lv with diagonal dA,dB against the pending
// holes. If the diagonal crosses a hole edge, dA walks to the crossing
// hole's vertex nearest dB until the diagonal is clear; if the piece
// contains a hole, the hole's vertex nearest dB becomes dA. Either way the
// offending hole is absorbed and false is returned.
func (d *decomposer) handleHoles(lv []Vector, dA, dB Vector) bool {
	holeIdx := -1
	var bestDist float64

	for intersecting := true; intersecting; {
		intersecting = false
		for hi := range d.holes {
			hp := d.holes[hi].Points
			for i := range hp {
				a, b := hp[i], hp[(i+1)%len(hp)]
				x, ok := IntersectSegmentSegment(dA, dB, a, b)
				if !ok || x.Equals(a) || x.Equals(b) {
					continue
				}
				if dist := x.Sub(dB).LengthSquared(); holeIdx < 0 || dist < bestDist {
					bestDist = dist
					if a.Sub(dB).LengthSquared() <= b.Sub(dB).LengthSquared() {
						dA = a
					} else {
						dA = b
					}
					holeIdx = hi
					intersecting = true
				}
			}
		}
	}

	if holeIdx < 0 {
		for hi := range d.holes {
			hp := d.holes[hi].Points
			if containsPoint(lv, hp[0]) == Outside {
				continue
			}
			v := nearestVertex(hp, dB)
			if dist := v.Sub(dB).LengthSquared(); holeIdx < 0 || dist < bestDist {
				bestDist = dist
				dA = v
				holeIdx = hi
			}
		}
	}

	if holeIdx >= 0 {
		d.absorbHole(dB, holeIdx, dA)
		return false
	}
	return true
}

// handleHolesConvex absorbs the hole nearest to p[0] into an already
// convex boundary, so the main loop has notches to work with again.
func (d *decomposer) handleHolesConvex() {
	dB := d.p[0]

	holeIdx := -1
	var dA Vector
	var bestDist float64
	for hi := range d.holes {
		v := nearestVertex(d.holes[hi].Points, dB)
		if dist := v.Sub(dB).LengthSquared(); holeIdx < 0 || dist < bestDist {
			bestDist = dist
			dA = v
			holeIdx = hi
		}
	}
	d.absorbHole(dB, holeIdx, dA)
}

// absorbHole splices the hole into the working polygon along the keyhole
// diagonal dB,dA: the boundary detours from dB around the entire hole,
// counter-clockwise so the spliced result stays clockwise overall, and
// returns to dB.
func (d *decomposer) absorbHole(dB Vector, holeIdx int, dA Vector) {
	hole := d.holes[holeIdx]
	d.holes = append(d.holes[:holeIdx], d.holes[holeIdx+1:]...)
	if hole.IsClockwise() {
		hole = hole.CloneCCW()
	}

	i := indexOfPoint(hole.Points, dA)
	j := indexOfPoint(d.p, dB)
	if i < 0 || j < 0 {
		fatalf("keyhole diagonal %v %v lost during hole absorption", dA, dB)
	}
	d.debug.emit(dA, 0x00ffff, "keyhole")

	ext := make([]Vector, 0, len(hole.Points)+2)
	ext = append(ext, dB)
	ext = append(ext, hole.Points[i:]...)
	ext = append(ext, hole.Points[:i+1]...)

	d.p = append(d.p[:j], append(ext, d.p[j:]...)...)
}

func nearestVertex(pts []Vector, to Vector) Vector {
	best := pts[0]
	bestDist := best.Sub(to).LengthSquared()
	for _, v := range pts[1:] {
		if dist := v.Sub(to).LengthSquared(); dist < bestDist {
			best = v
			bestDist = dist
		}
	}
	return best
}
