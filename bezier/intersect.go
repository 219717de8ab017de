package bezier

import (
	"math"
	"sort"

	"github.com/npillmayer/strokegeom"
)

// IntersectionEpsilon is the extent (in domain units) below which a subdivided
// curve counts as converged onto an intersection point.
const IntersectionEpsilon = 1e-6

// MaxIntersections caps the number of intersections reported per pair of
// curves. Pairs of strokes practically cross only a handful of times; the
// crossings with the lowest receiver parameters are kept.
const MaxIntersections = 4

// maxSubdivisions bounds the work for overlapping curves, which would
// otherwise keep converging onto touching (and thus rejected) points.
const maxSubdivisions = 1 << 15

// clusterGap is the parameter distance below which converged pieces of both
// curves are taken to belong to the same crossing.
const clusterGap = 1e-4

// Intersection is a crossing of two curves.
type Intersection struct {
	T      float64         // parameter on the receiver curve
	OtherT float64         // parameter on the argument curve
	IsLeft bool            // the argument curve crosses from right to left, seen along the receiver
	Point  strokegeom.Pair // location of the crossing
}

// subdividable is a curve that can be bisected for recursive intersection.
type subdividable[C any] interface {
	BoundingBox() AABB
	MidSplit() (C, C)
	Position(t float64) strokegeom.Pair
	Derivative(t float64) strokegeom.Pair
}

// leaf is a pair of parameter intervals, on the receiver and on the argument
// curve, whose pieces have both shrunk below IntersectionEpsilon and still
// overlap.
type leaf struct {
	lo, hi           float64
	otherLo, otherHi float64
}

func (l leaf) near(m leaf) bool {
	return l.lo-clusterGap <= m.hi && m.lo-clusterGap <= l.hi &&
		l.otherLo-clusterGap <= m.otherHi && m.otherLo-clusterGap <= l.otherHi
}

func (l leaf) union(m leaf) leaf {
	return leaf{
		lo: math.Min(l.lo, m.lo), hi: math.Max(l.hi, m.hi),
		otherLo: math.Min(l.otherLo, m.otherLo), otherHi: math.Max(l.otherHi, m.otherHi),
	}
}

// cluster collects the leaves converging onto one crossing. Neighbouring
// branches of the subdivision reach a crossing several times, the more so the
// shallower the crossing angle.
type cluster struct {
	span   leaf
	leaves []leaf
}

// intersector collects crossings of two root curves by recursive subdivision.
//
// Every call bisects the curve in the "other" role while the "self" curve is
// held fixed; the halves then become "self" for the next level. The roles thus
// alternate on every call, which always splits the curve with the longer
// parameter range. flipped tracks whether the roles are currently swapped
// against the root curves.
type intersector[C subdividable[C]] struct {
	self, other C
	clusters    []cluster
	steps       int
}

func converged(box AABB) bool {
	return box.Width() < IntersectionEpsilon && box.Height() < IntersectionEpsilon
}

func (x *intersector[C]) subdivide(a, b C, minA, maxA, minB, maxB float64, flipped bool) {
	if x.steps >= maxSubdivisions {
		return
	}
	x.steps++
	boxA, boxB := a.BoundingBox(), b.BoundingBox()
	if !boxA.Intersects(boxB) {
		return
	}
	if converged(boxB) {
		if converged(boxA) {
			x.collect(minA, maxA, minB, maxB, flipped)
			return
		}
		x.subdivide(b, a, minB, maxB, minA, maxA, !flipped)
		return
	}
	b0, b1 := b.MidSplit()
	midB := (minB + maxB) / 2
	x.subdivide(b0, a, minB, midB, minA, maxA, !flipped)
	x.subdivide(b1, a, midB, maxB, minA, maxA, !flipped)
}

// collect files a leaf into its cluster, merging clusters the leaf connects.
func (x *intersector[C]) collect(minA, maxA, minB, maxB float64, flipped bool) {
	l := leaf{lo: minA, hi: maxA, otherLo: minB, otherHi: maxB}
	if flipped {
		l = leaf{lo: minB, hi: maxB, otherLo: minA, otherHi: maxA}
	}
	c := cluster{span: l, leaves: []leaf{l}}
	rest := x.clusters[:0]
	for _, other := range x.clusters {
		if other.span.near(c.span) {
			c.span = c.span.union(other.span)
			c.leaves = append(c.leaves, other.leaves...)
			continue
		}
		rest = append(rest, other)
	}
	x.clusters = append(rest, c)
}

// crossing picks the leaf of a cluster where the curves come closest. A
// cluster where the curves run parallel is a touching point, not a crossing.
func (x *intersector[C]) crossing(c cluster) (Intersection, bool) {
	var is Intersection
	best := math.Inf(1)
	for _, l := range c.leaves {
		t, u := (l.lo+l.hi)/2, (l.otherLo+l.otherHi)/2
		p, q := x.self.Position(t), x.other.Position(u)
		if d := p.Dist2(q); d < best {
			best = d
			is = Intersection{T: t, OtherT: u, Point: p.Mid(q)}
		}
	}
	cross := x.self.Derivative(is.T).Cross(x.other.Derivative(is.OtherT))
	if cross == 0 {
		return is, false
	}
	is.IsLeft = cross > 0
	return is, true
}

func intersections[C subdividable[C]](self, other C) []Intersection {
	x := &intersector[C]{self: self, other: other}
	x.subdivide(self, other, 0, 1, 0, 1, false)
	var results []Intersection
	for _, c := range x.clusters {
		if is, ok := x.crossing(c); ok {
			results = append(results, is)
		}
	}
	sort.Slice(results, func(i, j int) bool { return results[i].T < results[j].T })
	if len(results) > MaxIntersections {
		results = results[:MaxIntersections]
	}
	tracer().Debugf("found %d intersection(s) in %d steps", len(results), x.steps)
	return results
}

func intersects[C subdividable[C]](a, b C) bool {
	boxA, boxB := a.BoundingBox(), b.BoundingBox()
	if !boxA.Intersects(boxB) {
		return false
	}
	if converged(boxB) {
		if converged(boxA) {
			return true
		}
		return intersects(b, a)
	}
	b0, b1 := b.MidSplit()
	return intersects(b0, a) || intersects(b1, a)
}

// Intersections finds up to MaxIntersections crossings with another curve.
func (b Bezier2) Intersections(other Bezier2) []Intersection {
	return intersections(b, other)
}

// Intersects is true if the curves meet.
func (b Bezier2) Intersects(other Bezier2) bool {
	return intersects(b, other)
}

// Intersections finds up to MaxIntersections crossings with another curve.
func (b Bezier3) Intersections(other Bezier3) []Intersection {
	return intersections(b, other)
}

// Intersects is true if the curves meet.
func (b Bezier3) Intersects(other Bezier3) bool {
	return intersects(b, other)
}
