package bezier

import (
	"github.com/npillmayer/strokegeom"
	"github.com/npillmayer/strokegeom/polyn"
)

// Nearest finds the parameter t of the curve point closest to p, together with
// the squared distance.
//
// With a = CP−P0, b = P0−2CP+P1 and m = P0−p, the curve is B(t) = P0 + 2ta + t²b
// and the distance is stationary where (B(t)−p)·B'(t) = 0, a cubic in t:
//
//	(b·b)t³ + 3(a·b)t² + (2a·a + m·b)t + m·a = 0
//
// Roots inside [0,1] compete with both endpoints.
func (b Bezier2) Nearest(p strokegeom.Pair) (float64, float64) {
	if b.IsLinear() {
		return nearestOnSegment(b.P0, b.P1, p)
	}
	a := b.CP - b.P0
	bb := b.P0 - b.CP.Scaled(2) + b.P1
	m := b.P0 - p
	roots, n := polyn.SolveCubic(m.Dot(a), 2*a.Dot(a)+m.Dot(bb), 3*a.Dot(bb), bb.Dot(bb))
	bestT, bestD := 0.0, b.P0.Dist2(p)
	if d := b.P1.Dist2(p); d < bestD {
		bestT, bestD = 1, d
	}
	for i := 0; i < n; i++ {
		t := roots[i]
		if t < 0 || t > 1 {
			continue
		}
		if d := b.Position(t).Dist2(p); d < bestD {
			bestT, bestD = t, d
		}
	}
	return bestT, bestD
}

// For a uniformly parametrized segment the curve parameter equals the
// projection parameter.
func nearestOnSegment(p0, p1, p strokegeom.Pair) (float64, float64) {
	d := p1 - p0
	l2 := d.Dot(d)
	if l2 == 0 {
		return 0, p0.Dist2(p)
	}
	t := strokegeom.Clip((p-p0).Dot(d)/l2, 0, 1)
	return t, p0.Lerp(p1, t).Dist2(p)
}
