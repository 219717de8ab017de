package strokegeom

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Pair is a 2D point or vector. It is a complex number underneath, which makes
// addition, subtraction and rotation by complex multiplication free.
type Pair complex128

// Origin represents the frequently used constant (0,0).
var Origin = P(0, 0)

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// C2P returns a Pair from a complex number.
func C2P(c complex128) Pair {
	if cmplx.IsNaN(c) || cmplx.IsInf(c) {
		tracer().Errorf("created pair for complex.NaN")
		return Origin
	}
	return Pair(c)
}

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// C returns a Pair as a complex number.
func (p Pair) C() complex128 {
	return complex128(p)
}

// F is a quick notation for getting float values from a pair.
func (p Pair) F() (float64, float64) {
	return real(p), imag(p)
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p)
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p)
}

// IsNaN is true if any of the coordinates is NaN.
func (p Pair) IsNaN() bool {
	return math.IsNaN(real(p)) || math.IsNaN(imag(p))
}

// Zap rounds x-part and y-part to Epsilon.
func (p Pair) Zap() Pair {
	return P(Zap(p.X()), Zap(p.Y()))
}

// IsOrigin is a predicate: is this pair origin?
func (p Pair) IsOrigin() bool {
	return p.Equal(Origin)
}

// Equal compares two pairs, up to Epsilon.
func (p Pair) Equal(p2 Pair) bool {
	return Is0(p.X()-p2.X()) && Is0(p.Y()-p2.Y())
}

// Scaled returns a new pair scaled by factor a.
func (p Pair) Scaled(a float64) Pair {
	return P(p.X()*a, p.Y()*a)
}

// Shifted returns a new pair translated by v.
func (p Pair) Shifted(v Pair) Pair {
	return p + v
}

// Rotated returns a new pair rotated around origin by theta (counterclockwise).
func (p Pair) Rotated(theta float64) Pair {
	return Rotation(theta).Transform(p)
}

// Dot is the scalar product p·q.
func (p Pair) Dot(q Pair) float64 {
	return p.X()*q.X() + p.Y()*q.Y()
}

// Cross is the z-component of the 3D cross product p×q. It is positive if q is
// counter-clockwise from p.
func (p Pair) Cross(q Pair) float64 {
	return p.X()*q.Y() - p.Y()*q.X()
}

// Abs is the length of p as a vector.
func (p Pair) Abs() float64 {
	return math.Hypot(p.X(), p.Y())
}

// Dist2 is the squared distance between p and q.
func (p Pair) Dist2(q Pair) float64 {
	dx, dy := q.X()-p.X(), q.Y()-p.Y()
	return dx*dx + dy*dy
}

// Dist is the distance between p and q.
func (p Pair) Dist(q Pair) float64 {
	return math.Hypot(q.X()-p.X(), q.Y()-p.Y())
}

// Mid is the midpoint between p and q.
func (p Pair) Mid(q Pair) Pair {
	return P((p.X()+q.X())/2, (p.Y()+q.Y())/2)
}

// Lerp interpolates linearly from p (t=0) to q (t=1).
func (p Pair) Lerp(q Pair, t float64) Pair {
	return P(p.X()+(q.X()-p.X())*t, p.Y()+(q.Y()-p.Y())*t)
}

// Normal returns p rotated by 90° counter-clockwise and scaled to unit length.
// The origin has no normal and yields the origin.
func (p Pair) Normal() Pair {
	l := p.Abs()
	if l == 0 {
		return Origin
	}
	return P(-p.Y()/l, p.X()/l)
}

// Angle is the direction of p in radians, in (-π, π].
func (p Pair) Angle() float64 {
	return math.Atan2(p.Y(), p.X())
}

// DistanceToSegment returns the squared distance between p and the line
// segment a–b.
func (p Pair) DistanceToSegment(a, b Pair) float64 {
	ab := b - a
	l2 := ab.Dot(ab)
	if l2 == 0 {
		return p.Dist2(a)
	}
	t := Clip((p-a).Dot(ab)/l2, 0, 1)
	return p.Dist2(a.Lerp(b, t))
}
