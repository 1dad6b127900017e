package advanced

import (
	"fmt"
	"io"
	"sort"

	"github.com/pkg/errors"

	"github.com/veelum/planar/dbg"
)

// Boolean combination of two simple polygons, after:
//
// Avraham Margalit. An Algorithm for Computing the Union, Intersection or
// Difference of Two Polygons. Computers & Graphics Vol. 13, No 2,
// pp 167-183, 1989.
//
// Only island-type polygons are considered, so the paper's control tables
// reduce to small classification rules. Each input is expanded into a
// "vertex ring": its points, classified against the other polygon, with
// every edge intersection injected in traversal order. Fragments whose
// classification matches the operation are collected into a directed graph
// and the output loops are read off as its cycles.

// Operation selects the boolean combination to perform.
type Operation int

const (
	OpUnion Operation = iota
	OpIntersection
	OpDifference
)

func (op Operation) String() string {
	switch op {
	case OpUnion:
		return "union"
	case OpIntersection:
		return "intersection"
	case OpDifference:
		return "difference"
	}
	return fmt.Sprintf("Operation(%d)", int(op))
}

// ErrInvalidOperation is returned for an Operation value that is not one
// of the three defined tags.
var ErrInvalidOperation = errors.New("operation must be OpUnion, OpIntersection or OpDifference")

// ringVertex is one entry of a vertex ring: a point and its classification
// against the other polygon. Injected intersection points are OnBoundary
// by construction.
type ringVertex struct {
	point Vector
	class Containment
}

// BooleanOperation combines polygonA and polygonB. The result may be
// empty (disjoint intersection), a single polygon, or several (disjoint
// union, fragmented difference). Result loops are simplified; loops that
// collapse below three vertices are dropped.
func BooleanOperation(polygonA, polygonB Polygon, op Operation) (PolygonList, error) {
	if op != OpUnion && op != OpIntersection && op != OpDifference {
		return nil, ErrInvalidOperation
	}

	// Union and intersection want both inputs wound the same way,
	// difference wants them opposite. Flipping a clone of B here is what
	// later makes ring B's kept fragments run along the result boundary
	// in a consistent direction.
	matching := polygonA.IsClockwise() == polygonB.IsClockwise()
	if matching != (op != OpDifference) {
		polygonB = polygonB.Clone()
		polygonB.Flip()
	}

	ptsA := polygonA.Points
	ptsB := polygonB.Points

	// All pairwise edge intersections, recorded against both owning
	// edges. Snapping to the Epsilon grid keeps the same geometric point,
	// reached from ring A and ring B, on the same fragment graph key.
	intsA := make(map[int][]Vector)
	intsB := make(map[int][]Vector)
	for i := range ptsA {
		a1, a2 := ptsA[i], ptsA[(i+1)%len(ptsA)]
		for j := range ptsB {
			b1, b2 := ptsB[j], ptsB[(j+1)%len(ptsB)]
			if x, ok := IntersectSegmentSegment(a1, a2, b1, b2); ok {
				x = snap(x)
				intsA[i] = append(intsA[i], x)
				intsB[j] = append(intsB[j], x)
			}
		}
	}

	ringA := buildRing(ptsA, intsA, polygonB)
	ringB := buildRing(ptsB, intsB, polygonA)

	// Which classification keeps a fragment, per ring and operation. Ring
	// A keeps inside-B fragments only for intersection; ring B keeps
	// inside-A fragments for intersection and difference (difference
	// polarity comes from the orientation flip above, so the containment
	// test stays against the original A).
	requiredA := Outside
	if op == OpIntersection {
		requiredA = Inside
	}
	requiredB := Inside
	if op == OpUnion {
		requiredB = Outside
	}

	bc := booleanContext{a: polygonA, b: polygonB, op: op}
	graph := make(fragmentGraph)
	bc.extendFragments(graph, ringA, polygonB, requiredA)
	bc.extendFragments(graph, ringB, polygonA, requiredB)

	var out PolygonList
	for len(graph) > 0 {
		loop := SimplifySequence(graph.extractCycle())
		if len(loop) >= 3 {
			out = append(out, FromPoints(loop))
		}
	}
	return out, nil
}

// buildRing expands a point list into its vertex ring: every point
// classified against the other polygon, with each edge's intersection
// points appended after the edge's start vertex in traversal order.
func buildRing(pts []Vector, ints map[int][]Vector, other Polygon) []ringVertex {
	ring := make([]ringVertex, 0, len(pts))
	for i, p := range pts {
		ring = append(ring, ringVertex{point: p, class: other.ContainsPoint(p)})
		edgeInts := ints[i]
		if len(edgeInts) == 0 {
			continue
		}
		sortAlongEdge(p, pts[(i+1)%len(pts)], edgeInts)
		for _, x := range edgeInts {
			ring = append(ring, ringVertex{point: x, class: OnBoundary})
		}
	}
	return ring
}

// sortAlongEdge orders points on the segment v1,v2 by traversal order from
// v1 to v2. The sort key is whichever coordinate actually varies along the
// edge.
func sortAlongEdge(v1, v2 Vector, pts []Vector) {
	var less func(a, b Vector) bool
	switch {
	case v1.X < v2.X:
		less = func(a, b Vector) bool { return a.X < b.X }
	case v1.X > v2.X:
		less = func(a, b Vector) bool { return a.X > b.X }
	case v1.Y < v2.Y:
		less = func(a, b Vector) bool { return a.Y < b.Y }
	default:
		less = func(a, b Vector) bool { return a.Y > b.Y }
	}
	sort.SliceStable(pts, func(i, j int) bool { return less(pts[i], pts[j]) })
}

type booleanContext struct {
	a, b Polygon
	op   Operation
}

// extendFragments walks the ring's consecutive pairs and adds the kept
// ones to the fragment graph. A fragment is kept when either endpoint
// carries the required classification, or, for a fragment between two
// boundary points, when the midpoint probe says the fragment borders the
// result region.
func (bc booleanContext) extendFragments(graph fragmentGraph, ring []ringVertex, other Polygon, required Containment) {
	for i := range ring {
		v1 := ring[i]
		v2 := ring[(i+1)%len(ring)]

		// Zero-length fragments appear when an intersection coincides
		// with a vertex; they carry no boundary and would only knot the
		// graph.
		if v1.point.Equals(v2.point) {
			continue
		}

		keep := v1.class == required || v2.class == required
		if !keep && v1.class == OnBoundary && v2.class == OnBoundary {
			m := v1.point.Add(v2.point).Div(2)
			switch other.ContainsPoint(m) {
			case required:
				keep = true
			case OnBoundary:
				// The fragment lies on both boundaries. It belongs to
				// the output iff it separates the result region from
				// its complement; otherwise both rings would emit it
				// (union) or neither side is in the result
				// (difference of identical regions).
				keep = bc.keepSharedFragment(v1.point, v2.point, m)
			}
		}
		if keep {
			graph.add(v1.point, v2.point)
		}
	}
}

func (bc booleanContext) keepSharedFragment(a, b, m Vector) bool {
	probe := b.Sub(a).Normal().Normalize().Scale(Epsilon * 8)
	return bc.inResult(m.Add(probe)) != bc.inResult(m.Sub(probe))
}

func (bc booleanContext) inResult(p Vector) bool {
	inA := bc.a.ContainsPoint(p) == Inside
	inB := bc.b.ContainsPoint(p) == Inside
	switch bc.op {
	case OpUnion:
		return inA || inB
	case OpIntersection:
		return inA && inB
	default:
		return inA && !inB
	}
}

// fragmentGraph maps each vertex (by its Epsilon-quantized key) to the
// vertices it directed-connects to. It is built and fully consumed within
// one boolean operation.
type fragmentGraph map[vecKey]*fragmentNode

type fragmentNode struct {
	at   Vector
	next []Vector
}

// add inserts a directed fragment, ignoring exact duplicates. Duplicates
// arise when both rings keep the same shared-boundary fragment.
func (g fragmentGraph) add(from, to Vector) {
	k := keyOf(from)
	node := g[k]
	if node == nil {
		node = &fragmentNode{at: from}
		g[k] = node
	}
	tk := keyOf(to)
	for _, v := range node.next {
		if keyOf(v) == tk {
			return
		}
	}
	node.next = append(node.next, to)
}

// extractCycle walks successor edges from some remaining vertex until a
// vertex repeats, trims the walk to the cyclic suffix, removes the
// consumed directed edges (tail edges stay for later cycles) and returns
// the loop.
func (g fragmentGraph) extractCycle() []Vector {
	start := g.anyNode()

	sequence := []Vector{start.at}
	seen := map[vecKey]int{keyOf(start.at): 0}
	current := start.next[0]
	for {
		if at, ok := seen[keyOf(current)]; ok {
			sequence = sequence[at:]
			break
		}
		seen[keyOf(current)] = len(sequence)
		sequence = append(sequence, current)

		node := g[keyOf(current)]
		if node == nil || len(node.next) == 0 {
			fatalf("fragment graph has no successor for %v", current)
		}
		current = node.next[0]
	}

	for i, c := range sequence {
		g.removeEdge(c, sequence[(i+1)%len(sequence)])
	}
	return sequence
}

// anyNode picks the node with the smallest key so that extraction order,
// and therefore output order, is deterministic.
func (g fragmentGraph) anyNode() *fragmentNode {
	var bestKey vecKey
	var best *fragmentNode
	for k, n := range g {
		if best == nil || k.x < bestKey.x || (k.x == bestKey.x && k.y < bestKey.y) {
			bestKey, best = k, n
		}
	}
	return best
}

func (g fragmentGraph) removeEdge(from, to Vector) {
	k := keyOf(from)
	node := g[k]
	if node == nil {
		fatalf("fragment %v -> %v vanished during cycle removal", from, to)
	}
	tk := keyOf(to)
	for i, v := range node.next {
		if keyOf(v) == tk {
			node.next = append(node.next[:i], node.next[i+1:]...)
			if len(node.next) == 0 {
				delete(g, k)
			}
			return
		}
	}
	fatalf("fragment %v -> %v missing during cycle removal", from, to)
}

// dump writes the remaining fragments, one per line, with a stable
// readable name per node. Debugging aid only.
func (g fragmentGraph) dump(w io.Writer) {
	for _, node := range g {
		for _, v := range node.next {
			fmt.Fprintf(w, "%s: %v -> %v\n", dbg.Name(node), node.at, v)
		}
	}
}
