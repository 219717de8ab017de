package strokegeom

import "github.com/npillmayer/strokegeom/anim"

// Pair satisfies anim.Interpolatable[Pair]; x and y are blended independently.
var _ anim.Interpolatable[Pair] = Origin

// Linear is part of interface anim.Interpolatable.
func (p Pair) Linear(p2 Pair, t float64) Pair {
	return p.Lerp(p2, t)
}

// FirstSpline is part of interface anim.Interpolatable.
func (p Pair) FirstSpline(p2, p3 Pair, ms anim.MonosplineX) Pair {
	return P(
		anim.FirstMonospline(p.X(), p2.X(), p3.X(), ms),
		anim.FirstMonospline(p.Y(), p2.Y(), p3.Y(), ms),
	)
}

// Spline is part of interface anim.Interpolatable.
func (p Pair) Spline(p0, p2, p3 Pair, ms anim.MonosplineX) Pair {
	return P(
		anim.Monospline(p0.X(), p.X(), p2.X(), p3.X(), ms),
		anim.Monospline(p0.Y(), p.Y(), p2.Y(), p3.Y(), ms),
	)
}

// LastSpline is part of interface anim.Interpolatable.
func (p Pair) LastSpline(p0, p2 Pair, ms anim.MonosplineX) Pair {
	return P(
		anim.LastMonospline(p0.X(), p.X(), p2.X(), ms),
		anim.LastMonospline(p0.Y(), p.Y(), p2.Y(), ms),
	)
}
