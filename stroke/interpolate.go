package stroke

import (
	"github.com/npillmayer/strokegeom/anim"
)

// Line satisfies anim.Interpolatable[*Line]. Strokes with different numbers of
// control points are resampled to the largest count first; then points,
// pressures and weights are blended control by control.
var _ anim.Interpolatable[*Line] = (*Line)(nil)

func blend(lines []*Line, f func(cs []Control) Control) *Line {
	n := 0
	for _, l := range lines {
		n = max(n, l.Count())
	}
	matched := make([]*Line, len(lines))
	for i, l := range lines {
		matched[i] = l
		if l.Count() != n {
			tracer().Debugf("resample stroke of %d controls to %d for interpolation", l.Count(), n)
			matched[i] = l.Resampled(n)
		}
	}
	cs := make([]Control, n)
	in := make([]Control, len(lines))
	for i := range cs {
		for j, l := range matched {
			in[j] = l.controls[i]
		}
		cs[i] = f(in)
	}
	return New(cs...)
}

func scalar(c Control) anim.Scalar { return anim.Scalar(c.Pressure) }
func weight(c Control) anim.Scalar { return anim.Scalar(c.Weight) }

// Linear is part of interface anim.Interpolatable.
func (l *Line) Linear(l2 *Line, t float64) *Line {
	return blend([]*Line{l, l2}, func(cs []Control) Control {
		return Control{
			Point:    cs[0].Point.Linear(cs[1].Point, t),
			Pressure: anim.Lerp(cs[0].Pressure, cs[1].Pressure, t),
			Weight:   anim.Lerp(cs[0].Weight, cs[1].Weight, t),
		}
	})
}

// FirstSpline is part of interface anim.Interpolatable.
func (l *Line) FirstSpline(l2, l3 *Line, ms anim.MonosplineX) *Line {
	return blend([]*Line{l, l2, l3}, func(cs []Control) Control {
		return Control{
			Point:    cs[0].Point.FirstSpline(cs[1].Point, cs[2].Point, ms),
			Pressure: float64(scalar(cs[0]).FirstSpline(scalar(cs[1]), scalar(cs[2]), ms)),
			Weight:   float64(weight(cs[0]).FirstSpline(weight(cs[1]), weight(cs[2]), ms)),
		}
	})
}

// Spline is part of interface anim.Interpolatable.
func (l *Line) Spline(l0, l2, l3 *Line, ms anim.MonosplineX) *Line {
	return blend([]*Line{l0, l, l2, l3}, func(cs []Control) Control {
		return Control{
			Point:    cs[1].Point.Spline(cs[0].Point, cs[2].Point, cs[3].Point, ms),
			Pressure: float64(scalar(cs[1]).Spline(scalar(cs[0]), scalar(cs[2]), scalar(cs[3]), ms)),
			Weight:   float64(weight(cs[1]).Spline(weight(cs[0]), weight(cs[2]), weight(cs[3]), ms)),
		}
	})
}

// LastSpline is part of interface anim.Interpolatable.
func (l *Line) LastSpline(l0, l2 *Line, ms anim.MonosplineX) *Line {
	return blend([]*Line{l0, l, l2}, func(cs []Control) Control {
		return Control{
			Point:    cs[1].Point.LastSpline(cs[0].Point, cs[2].Point, ms),
			Pressure: float64(scalar(cs[1]).LastSpline(scalar(cs[0]), scalar(cs[2]), ms)),
			Weight:   float64(weight(cs[1]).LastSpline(weight(cs[0]), weight(cs[2]), ms)),
		}
	})
}
