package bezier

import (
	"fmt"
	"math"

	"github.com/npillmayer/strokegeom"
	"github.com/npillmayer/strokegeom/polyn"
)

// Bezier3 is a cubic Bézier curve from P0 to P1 with control points CP0 and CP1.
type Bezier3 struct {
	P0, CP0, CP1, P1 strokegeom.Pair
}

// Linear3 returns a straight cubic from p0 to p1 with control points at the
// thirds, i.e. a uniformly parametrized segment.
func Linear3(p0, p1 strokegeom.Pair) Bezier3 {
	return Bezier3{P0: p0, CP0: p0.Lerp(p1, 1.0/3), CP1: p0.Lerp(p1, 2.0/3), P1: p1}
}

// Elevate converts a quadratic curve into the identical cubic.
func Elevate(b Bezier2) Bezier3 {
	return Bezier3{
		P0:  b.P0,
		CP0: b.P0.Lerp(b.CP, 2.0/3),
		CP1: b.P1.Lerp(b.CP, 2.0/3),
		P1:  b.P1,
	}
}

func (b Bezier3) String() string {
	return fmt.Sprintf("%v .. controls %v and %v .. %v", b.P0, b.CP0, b.CP1, b.P1)
}

// IsLinear is true if both control points sit on the chord at its thirds.
func (b Bezier3) IsLinear() bool {
	return b.CP0.Equal(b.P0.Lerp(b.P1, 1.0/3)) && b.CP1.Equal(b.P0.Lerp(b.P1, 2.0/3))
}

// Position evaluates the curve at t.
func (b Bezier3) Position(t float64) strokegeom.Pair {
	r := 1 - t
	return b.P0.Scaled(r*r*r) + b.CP0.Scaled(3*r*r*t) + b.CP1.Scaled(3*r*t*t) + b.P1.Scaled(t*t*t)
}

// Derivative is the (unnormalized) tangent vector at t.
func (b Bezier3) Derivative(t float64) strokegeom.Pair {
	r := 1 - t
	return (b.CP0 - b.P0).Scaled(3*r*r) + (b.CP1 - b.CP0).Scaled(6*r*t) + (b.P1 - b.CP1).Scaled(3*t*t)
}

// TangentAngle is the direction of the tangent at t, in radians.
func (b Bezier3) TangentAngle(t float64) float64 {
	d := b.Derivative(t)
	if d == 0 {
		d = b.P1 - b.P0
	}
	if d == 0 {
		return 0
	}
	return d.Angle()
}

// BoundingBox is the box of the control points.
func (b Bezier3) BoundingBox() AABB {
	return AABBOf(b.P0, b.CP0, b.CP1, b.P1)
}

// Bounds is the tight bounding box of the curve.
func (b Bezier3) Bounds() AABB {
	box := AABBOf(b.P0, b.P1)
	for _, t := range cubicExtrema(b.P0.X(), b.CP0.X(), b.CP1.X(), b.P1.X()) {
		box = box.Extend(b.Position(t))
	}
	for _, t := range cubicExtrema(b.P0.Y(), b.CP0.Y(), b.CP1.Y(), b.P1.Y()) {
		box = box.Extend(b.Position(t))
	}
	return box
}

// Parameters t ∈ (0,1) where the 1D cubic has zero derivative.
func cubicExtrema(p0, c0, c1, p1 float64) []float64 {
	// B'(t)/3 = (c0−p0)(1−t)² + 2(c1−c0)(1−t)t + (p1−c1)t²
	a, b, c := c0-p0, c1-c0, p1-c1
	d := polyn.New(a, 2*(b-a), a-2*b+c)
	var ts []float64
	for _, t := range d.Roots() {
		if t > 0 && t < 1 {
			ts = append(ts, t)
		}
	}
	return ts
}

// Length approximates the arc length by a polyline of flatness uniform samples.
func (b Bezier3) Length(flatness int) float64 {
	return polylineLength(b.Position, flatness)
}

// T finds the parameter where the arc length from P0 reaches length.
func (b Bezier3) T(length float64, flatness int) float64 {
	return polylineT(b.Position, length, flatness)
}

// Split divides the curve at t (De Casteljau).
func (b Bezier3) Split(t float64) (Bezier3, Bezier3) {
	a := b.P0.Lerp(b.CP0, t)
	m := b.CP0.Lerp(b.CP1, t)
	c := b.CP1.Lerp(b.P1, t)
	ab := a.Lerp(m, t)
	bc := m.Lerp(c, t)
	p := ab.Lerp(bc, t)
	return Bezier3{P0: b.P0, CP0: a, CP1: ab, P1: p}, Bezier3{P0: p, CP0: bc, CP1: c, P1: b.P1}
}

// MidSplit divides the curve at t = 0.5.
func (b Bezier3) MidSplit() (Bezier3, Bezier3) {
	return b.Split(0.5)
}

// Clip extracts the sub-curve between t0 and t1.
func (b Bezier3) Clip(t0, t1 float64) Bezier3 {
	if t0 > t1 {
		return b.Clip(t1, t0).Reversed()
	}
	if t1 <= 0 {
		p := b.Position(t1)
		return Bezier3{P0: p, CP0: p, CP1: p, P1: p}
	}
	left, _ := b.Split(t1)
	_, sub := left.Split(t0 / t1)
	return sub
}

// Reversed runs the curve from P1 to P0.
func (b Bezier3) Reversed() Bezier3 {
	return Bezier3{P0: b.P1, CP0: b.CP1, CP1: b.CP0, P1: b.P0}
}

// Transformed applies an affine transform to the control points.
func (b Bezier3) Transformed(m strokegeom.AT) Bezier3 {
	return Bezier3{
		P0: m.Transform(b.P0), CP0: m.Transform(b.CP0),
		CP1: m.Transform(b.CP1), P1: m.Transform(b.P1),
	}
}

// Nearest finds the parameter of the curve point closest to p and the squared
// distance. The distance function of a cubic is of degree 5, so candidates
// from uniform sampling are refined by Newton iteration.
func (b Bezier3) Nearest(p strokegeom.Pair) (float64, float64) {
	const samples = 16
	bestT, bestD := 0.0, b.P0.Dist2(p)
	for i := 1; i <= samples; i++ {
		t := float64(i) / samples
		if d := b.Position(t).Dist2(p); d < bestD {
			bestT, bestD = t, d
		}
	}
	t := bestT
	for i := 0; i < 8; i++ {
		q := b.Position(t) - p
		d1 := b.Derivative(t)
		d2 := b.secondDerivative(t)
		den := d1.Dot(d1) + q.Dot(d2)
		if den == 0 {
			break
		}
		t = math.Max(0, math.Min(1, t-q.Dot(d1)/den))
	}
	if d := b.Position(t).Dist2(p); d < bestD {
		bestT, bestD = t, d
	}
	return bestT, bestD
}

func (b Bezier3) secondDerivative(t float64) strokegeom.Pair {
	return (b.CP1 - b.CP0.Scaled(2) + b.P0).Scaled(6*(1-t)) + (b.P1 - b.CP1.Scaled(2) + b.CP0).Scaled(6*t)
}
