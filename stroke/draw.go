package stroke

import (
	"github.com/npillmayer/strokegeom"
)

// Draw fills the ribbon of the stroke into s. The ribbon is size wide at full
// pressure.
//
// Strokes of up to two control points are drawn as a trapezoid. Longer strokes
// are drawn as an outline following the pressure points on both sides, joined
// by quadratic segments in the same way the stroke's own curve is built.
func (l *Line) Draw(size float64, s strokegeom.Surface) {
	if size <= 0 {
		return
	}
	left, right := l.pressurePoints(size)
	n := len(l.controls)
	if n <= 2 {
		if n == 1 || left[0] == right[0] && left[n-1] == right[n-1] {
			return // no extent
		}
		s.MoveTo(left[0])
		s.LineTo(left[n-1])
		s.LineTo(right[n-1])
		s.LineTo(right[0])
		s.ClosePath()
		s.Fill()
		return
	}
	point := func(pts []strokegeom.Pair) func(knot) strokegeom.Pair {
		return func(k knot) strokegeom.Pair {
			return pts[k.a].Lerp(pts[k.b], k.w)
		}
	}
	lp, rp := point(left), point(right)
	count := l.BezierCount()
	s.MoveTo(left[0])
	for i := 0; i < count; i++ {
		_, kc, k1 := segmentKnots(n, i, l.weight)
		s.QuadTo(lp(kc), lp(k1))
	}
	s.LineTo(right[n-1])
	for i := count - 1; i >= 0; i-- {
		k0, kc, _ := segmentKnots(n, i, l.weight)
		s.QuadTo(rp(kc), rp(k0))
	}
	s.ClosePath()
	s.Fill()
}
