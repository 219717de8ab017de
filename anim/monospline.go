package anim

import "math"

// MonosplineX holds the knot spacings of a spline segment x1 → x2 and the
// powers of the local offset x − x1. It depends on times only and is shared by
// all channels interpolated at the same time.
//
// Knots are x0 < x1 < x2 < x3; x0 is absent for the first segment of a spline,
// x3 is absent for the last one.
type MonosplineX struct {
	H0, H1, H2          float64 // knot spacings x1−x0, x2−x1, x3−x2
	invH0, invH1, invH2 float64
	invH0H1, invH1H2    float64
	xx1, xx2, xx3       float64 // (x−x1), (x−x1)², (x−x1)³
}

func recip(h float64) float64 {
	if h == 0 {
		return 0
	}
	return 1 / h
}

func newMonosplineX(h0, h1, h2, xx float64) MonosplineX {
	return MonosplineX{
		H0: h0, H1: h1, H2: h2,
		invH0:   recip(h0),
		invH1:   recip(h1),
		invH2:   recip(h2),
		invH0H1: recip(h0 + h1),
		invH1H2: recip(h1 + h2),
		xx1:     xx,
		xx2:     xx * xx,
		xx3:     xx * xx * xx,
	}
}

// NewMonosplineX prepares an interior segment with both neighbours present.
func NewMonosplineX(x0, x1, x2, x3, x float64) MonosplineX {
	return newMonosplineX(x1-x0, x2-x1, x3-x2, x-x1)
}

// FirstMonosplineX prepares the first segment of a spline (no left neighbour).
func FirstMonosplineX(x1, x2, x3, x float64) MonosplineX {
	return newMonosplineX(0, x2-x1, x3-x2, x-x1)
}

// LastMonosplineX prepares the last segment of a spline (no right neighbour).
func LastMonosplineX(x0, x1, x2, x float64) MonosplineX {
	return newMonosplineX(x1-x0, x2-x1, 0, x-x1)
}

// T is the linear segment parameter (x−x1)/(x2−x1).
func (ms MonosplineX) T() float64 {
	return ms.xx1 * ms.invH1
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// Steffen slope at a knot between secants sl (width hl) and sr (width hr).
func knotSlope(sl, sr, hl, hr, invHlHr float64) float64 {
	p := (sl*hr + sr*hl) * invHlHr
	return (sign(sl) + sign(sr)) * min(math.Abs(sl), math.Abs(sr), 0.5*math.Abs(p))
}

// FirstMonospline interpolates f1 → f2 with f3 as right neighbour.
func FirstMonospline(f1, f2, f3 float64, ms MonosplineX) float64 {
	s1 := (f2 - f1) * ms.invH1
	s2 := (f3 - f2) * ms.invH2
	y1 := s1
	y2 := knotSlope(s1, s2, ms.H1, ms.H2, ms.invH1H2)
	return hermite(f1, s1, y1, y2, ms)
}

// Monospline interpolates f1 → f2 with neighbours f0 and f3.
func Monospline(f0, f1, f2, f3 float64, ms MonosplineX) float64 {
	s0 := (f1 - f0) * ms.invH0
	s1 := (f2 - f1) * ms.invH1
	s2 := (f3 - f2) * ms.invH2
	y1 := knotSlope(s0, s1, ms.H0, ms.H1, ms.invH0H1)
	y2 := knotSlope(s1, s2, ms.H1, ms.H2, ms.invH1H2)
	return hermite(f1, s1, y1, y2, ms)
}

// LastMonospline interpolates f1 → f2 with f0 as left neighbour.
func LastMonospline(f0, f1, f2 float64, ms MonosplineX) float64 {
	s0 := (f1 - f0) * ms.invH0
	s1 := (f2 - f1) * ms.invH1
	y1 := knotSlope(s0, s1, ms.H0, ms.H1, ms.invH0H1)
	y2 := s1
	return hermite(f1, s1, y1, y2, ms)
}

func hermite(f1, s1, y1, y2 float64, ms MonosplineX) float64 {
	if ms.H1 == 0 {
		return f1
	}
	a := (y1 + y2 - 2*s1) * ms.invH1 * ms.invH1
	b := (3*s1 - 2*y1 - y2) * ms.invH1
	return a*ms.xx3 + b*ms.xx2 + y1*ms.xx1 + f1
}

// Lerp interpolates linearly from f0 (t=0) to f1 (t=1).
func Lerp(f0, f1, t float64) float64 {
	return f0 + (f1-f0)*t
}

// LoopDelta is the shortest signed difference b − a on a circle of the given
// period.
func LoopDelta(a, b, period float64) float64 {
	d := math.Mod(b-a, period)
	if d > period/2 {
		d -= period
	} else if d < -period/2 {
		d += period
	}
	return d
}

// Wrap reduces x into [0, period).
func Wrap(x, period float64) float64 {
	x = math.Mod(x, period)
	if x < 0 {
		x += period
	}
	return x
}

// LoopLerp interpolates on a circle of the given period along the shortest arc.
// The result lies in [0, period).
func LoopLerp(f0, f1, t, period float64) float64 {
	return Wrap(f0+LoopDelta(f0, f1, period)*t, period)
}
