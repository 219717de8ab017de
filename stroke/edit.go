package stroke

import (
	"fmt"
	"math"

	"github.com/npillmayer/strokegeom"
)

// All editing operations return new strokes. Index arguments outside the
// stroke panic.

func (l *Line) with(cs []Control) *Line {
	for i := range cs {
		if !(cs[i].Weight > 0 && cs[i].Weight < 1) {
			cs[i].Weight = DefaultWeight
		}
	}
	return newLine(cs)
}

// WithAppend adds a control point at the end.
func (l *Line) WithAppend(c Control) *Line {
	cs := append(l.Controls(), c)
	return l.with(cs)
}

// WithInsert inserts a control point before index i. i may equal Count.
func (l *Line) WithInsert(i int, c Control) *Line {
	l.checkIndex(i, len(l.controls)+1)
	cs := make([]Control, 0, len(l.controls)+1)
	cs = append(cs, l.controls[:i]...)
	cs = append(cs, c)
	cs = append(cs, l.controls[i:]...)
	return l.with(cs)
}

// WithRemove removes control point i. Removing the only control point of a
// stroke panics.
func (l *Line) WithRemove(i int) *Line {
	l.checkIndex(i, len(l.controls))
	if len(l.controls) == 1 {
		panic("cannot remove the last control point of a stroke")
	}
	cs := make([]Control, 0, len(l.controls)-1)
	cs = append(cs, l.controls[:i]...)
	cs = append(cs, l.controls[i+1:]...)
	return newLine(cs)
}

// WithReplace replaces control point i.
func (l *Line) WithReplace(i int, c Control) *Line {
	l.checkIndex(i, len(l.controls))
	cs := l.Controls()
	cs[i] = c
	return l.with(cs)
}

// Reversed runs the stroke backwards. Weights are mirrored, so the curve
// stays the same.
func (l *Line) Reversed() *Line {
	n := len(l.controls)
	cs := make([]Control, n)
	for i, c := range l.controls {
		cs[n-1-i] = c
	}
	for j := 0; j < n-1; j++ {
		cs[j].Weight = 1 - l.controls[n-2-j].Weight
	}
	cs[n-1].Weight = l.controls[0].Weight
	return newLine(cs)
}

// Transformed applies an affine transform to all control points.
func (l *Line) Transformed(m strokegeom.AT) *Line {
	cs := l.Controls()
	for i := range cs {
		cs[i].Point = m.Transform(cs[i].Point)
	}
	return newLine(cs)
}

// cumulative returns the normalized arc length of the control polygon at each
// control point. A polygon of zero length is parametrized by index.
func (l *Line) cumulative() []float64 {
	n := len(l.controls)
	s := make([]float64, n)
	for i := 1; i < n; i++ {
		s[i] = s[i-1] + l.controls[i-1].Point.Dist(l.controls[i].Point)
	}
	total := s[n-1]
	for i := range s {
		switch {
		case total > 0:
			s[i] /= total
		case n > 1:
			s[i] = float64(i) / float64(n-1)
		}
	}
	return s
}

// Warped drags one end of the stroke by dp. The translation tapers along the
// stroke: full at the dragged end (the first point if isFirst), zero at the
// other end.
func (l *Line) Warped(dp strokegeom.Pair, isFirst bool) *Line {
	s := l.cumulative()
	cs := l.Controls()
	for i := range cs {
		f := s[i]
		if isFirst {
			f = 1 - f
		}
		if len(cs) == 1 {
			f = 1
		}
		cs[i].Point += dp.Scaled(f)
	}
	return newLine(cs)
}

// WarpedAround moves control points by dp with a radial falloff around
// editPoint: full translation within minDistance, none beyond maxDistance,
// and a linear ramp in between.
func (l *Line) WarpedAround(dp, editPoint strokegeom.Pair, minDistance, maxDistance float64) *Line {
	cs := l.Controls()
	for i := range cs {
		d := cs[i].Point.Dist(editPoint)
		var f float64
		switch {
		case d <= minDistance:
			f = 1
		case d >= maxDistance:
			f = 0
		default:
			f = (maxDistance - d) / (maxDistance - minDistance)
		}
		cs[i].Point += dp.Scaled(f)
	}
	return newLine(cs)
}

// AutoPressure tapers the pressure towards both ends of the stroke along a
// parabola over the normalized length of the control polygon: pressure is
// minPressure at the ends and 1 in the middle.
func (l *Line) AutoPressure(minPressure float64) *Line {
	s := l.cumulative()
	cs := l.Controls()
	for i := range cs {
		x := s[i] - 0.5
		cs[i].Pressure = 4*(minPressure-1)*x*x + 1
	}
	return newLine(cs)
}

// Splited extracts the part of the stroke between (startIndex, startT) and
// (endIndex, endT), given as segment index and segment parameter. The result
// follows the original curve exactly: interior control points are kept, and
// the control points next to the cut points are re-derived together with
// their weights. Pressures at the cut points are blended linearly.
//
// If the end lies before the start, the extracted part is reversed.
func (l *Line) Splited(startIndex int, startT float64, endIndex int, endT float64) *Line {
	count := l.BezierCount()
	l.checkIndex(startIndex, count)
	l.checkIndex(endIndex, count)
	if endIndex < startIndex || (endIndex == startIndex && endT < startT) {
		return l.Splited(endIndex, endT, startIndex, startT).Reversed()
	}
	n := len(l.controls)
	a, b := startIndex, endIndex
	ta, tb := strokegeom.Clip(startT, 0, 1), strokegeom.Clip(endT, 0, 1)
	start := C(l.Position(a, ta), l.Pressure(a, ta))
	end := C(l.Position(b, tb), l.Pressure(b, tb))
	if n < 3 {
		if n == 1 {
			return newLine([]Control{start})
		}
		return newLine([]Control{start, end})
	}
	if a == b {
		sub := l.Bezier(a).Clip(ta, tb)
		mid := C(sub.CP, l.Pressure(a, (ta+tb)/2))
		start.Point, end.Point = sub.P0, sub.P1
		return newLine([]Control{start, mid, end})
	}
	// a < b, so segment a ends at the junction after control a+1 and segment b
	// starts at the junction before control b+1. The clipped control points lie
	// on the control polygon: the first on leg (a+1 → a+2) at parameter u, the
	// last on leg (b → b+1) at parameter v.
	wa := l.controls[a+1].Weight
	u := ta * wa
	wb := l.controls[b].Weight
	v := wb + (1-wb)*tb
	first := l.controls[a+1]
	first.Point = l.controls[a+1].Point.Lerp(l.controls[a+2].Point, u)
	last := l.controls[b+1]
	last.Point = l.controls[b].Point.Lerp(l.controls[b+1].Point, v)
	last.Weight = DefaultWeight
	cs := make([]Control, 0, b-a+3)
	cs = append(cs, start, first)
	if b == a+1 {
		// first and last share the leg (a+1 → a+2)
		cs[1].Weight = junctionWeight(wa-u, v-u)
	} else {
		cs[1].Weight = junctionWeight(wa-u, 1-u)
		cs = append(cs, l.controls[a+2:b]...)
		cb := l.controls[b]
		cb.Weight = junctionWeight(wb, v)
		cs = append(cs, cb)
	}
	cs = append(cs, last, end)
	return newLine(cs)
}

// junctionWeight is the weight which places a junction at distance num along
// a leg of length den.
func junctionWeight(num, den float64) float64 {
	if den <= strokegeom.Epsilon {
		return DefaultWeight
	}
	w := num / den
	if !(w > 0 && w < 1) {
		return DefaultWeight
	}
	return w
}

// SplitControl inserts a new control point at the curve position of segment
// bezierIndex at t. The control is placed before the segment's control point
// for t < 0.5 and after it otherwise.
func (l *Line) SplitControl(bezierIndex int, t float64) *Line {
	c := C(l.Position(bezierIndex, t), l.Pressure(bezierIndex, t))
	at := bezierIndex + 1
	if len(l.controls) < 3 {
		at = 1 // between the endpoints of a straight stroke
	} else if t >= 0.5 {
		at = bezierIndex + 2
	}
	tracer().Debugf("split control of segment %d at t=%.3f, insert at %d", bezierIndex, t, at)
	return l.WithInsert(at, c)
}

// Resampled places count control points at equal distances along the control
// polygon, interpolating pressures. It is used to match strokes of different
// control counts for interpolation.
func (l *Line) Resampled(count int) *Line {
	if count < 1 {
		panic(fmt.Sprintf("cannot resample stroke to %d control points", count))
	}
	if count == len(l.controls) {
		return l
	}
	s := l.cumulative()
	cs := make([]Control, count)
	j := 0
	for i := range cs {
		f := 0.0
		if count > 1 {
			f = float64(i) / float64(count-1)
		}
		for j < len(s)-2 && s[j+1] < f {
			j++
		}
		if len(s) == 1 {
			cs[i] = C(l.controls[0].Point, l.controls[0].Pressure)
			continue
		}
		seg := s[j+1] - s[j]
		r := 0.0
		if seg > 0 {
			r = math.Max(0, math.Min(1, (f-s[j])/seg))
		}
		c0, c1 := l.controls[j], l.controls[j+1]
		cs[i] = C(c0.Point.Lerp(c1.Point, r), c0.Pressure+(c1.Pressure-c0.Pressure)*r)
	}
	return newLine(cs)
}
