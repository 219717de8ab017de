package bezier

import (
	"fmt"
	"math"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/strokegeom"
)

// tracer writes to trace with key 'geom'
func tracer() tracing.Trace {
	return tracing.Select("geom")
}

// DefaultFlatness is the number of uniform samples used to approximate arc lengths.
const DefaultFlatness = 128

// Bezier2 is a quadratic Bézier curve from P0 to P1 with control point CP.
// It is a value type; all operations return new curves.
type Bezier2 struct {
	P0, CP, P1 strokegeom.Pair
}

// Linear returns a straight quadratic curve from p0 to p1, with the control
// point at the midpoint.
func Linear(p0, p1 strokegeom.Pair) Bezier2 {
	return Bezier2{P0: p0, CP: p0.Mid(p1), P1: p1}
}

func (b Bezier2) String() string {
	return fmt.Sprintf("%v .. controls %v .. %v", b.P0, b.CP, b.P1)
}

// IsLinear is true if the control point sits at the midpoint of the endpoints,
// i.e. the curve is a uniformly parametrized straight segment.
func (b Bezier2) IsLinear() bool {
	return b.CP.Equal(b.P0.Mid(b.P1))
}

// IsPoint is true for curves of zero extent.
func (b Bezier2) IsPoint() bool {
	return b.P0 == b.CP && b.CP == b.P1
}

// Position evaluates the curve at t.
func (b Bezier2) Position(t float64) strokegeom.Pair {
	r := 1 - t
	return b.P0.Scaled(r*r) + b.CP.Scaled(2*r*t) + b.P1.Scaled(t*t)
}

// Derivative is the (unnormalized) tangent vector at t.
func (b Bezier2) Derivative(t float64) strokegeom.Pair {
	return (b.CP - b.P0).Scaled(2*(1-t)) + (b.P1 - b.CP).Scaled(2*t)
}

// TangentAngle is the direction of the tangent at t, in radians. Where the
// derivative vanishes, the chord direction is used; a point curve has angle 0.
func (b Bezier2) TangentAngle(t float64) float64 {
	d := b.Derivative(t)
	if d == 0 {
		d = b.P1 - b.P0
	}
	if d == 0 {
		return 0
	}
	return d.Angle()
}

// BoundingBox is the box of the control points. It contains the curve, but is
// not tight in general.
func (b Bezier2) BoundingBox() AABB {
	return AABBOf(b.P0, b.CP, b.P1)
}

// Bounds is the tight bounding box of the curve, found from the zero of the
// derivative on each axis.
func (b Bezier2) Bounds() AABB {
	box := AABBOf(b.P0, b.P1)
	if t, ok := quadExtremum(b.P0.X(), b.CP.X(), b.P1.X()); ok {
		box = box.Extend(b.Position(t))
	}
	if t, ok := quadExtremum(b.P0.Y(), b.CP.Y(), b.P1.Y()); ok {
		box = box.Extend(b.Position(t))
	}
	return box
}

// Parameter t ∈ (0,1) where the 1D quadratic p0 → c → p1 has zero derivative.
func quadExtremum(p0, c, p1 float64) (float64, bool) {
	d := p0 - 2*c + p1
	if d == 0 {
		return 0, false
	}
	t := (p0 - c) / d
	return t, t > 0 && t < 1
}

// Length approximates the arc length by a polyline of flatness uniform
// samples. Non-positive flatness selects DefaultFlatness.
func (b Bezier2) Length(flatness int) float64 {
	return polylineLength(b.Position, flatness)
}

// T finds the parameter where the arc length from P0 reaches length, using
// the same sampling as Length. The result is clipped to [0,1].
func (b Bezier2) T(length float64, flatness int) float64 {
	return polylineT(b.Position, length, flatness)
}

// Split divides the curve at t (De Casteljau).
func (b Bezier2) Split(t float64) (Bezier2, Bezier2) {
	a := b.P0.Lerp(b.CP, t)
	c := b.CP.Lerp(b.P1, t)
	m := a.Lerp(c, t)
	return Bezier2{P0: b.P0, CP: a, P1: m}, Bezier2{P0: m, CP: c, P1: b.P1}
}

// MidSplit divides the curve at t = 0.5.
func (b Bezier2) MidSplit() (Bezier2, Bezier2) {
	return b.Split(0.5)
}

// Clip extracts the sub-curve between t0 and t1. For t0 > t1 the sub-curve is
// reversed.
func (b Bezier2) Clip(t0, t1 float64) Bezier2 {
	if t0 > t1 {
		return b.Clip(t1, t0).Reversed()
	}
	if t1 <= 0 {
		p := b.Position(t1)
		return Bezier2{P0: p, CP: p, P1: p}
	}
	left, _ := b.Split(t1)
	_, sub := left.Split(t0 / t1)
	return sub
}

// Reversed runs the curve from P1 to P0.
func (b Bezier2) Reversed() Bezier2 {
	return Bezier2{P0: b.P1, CP: b.CP, P1: b.P0}
}

// Transformed applies an affine transform to the control points.
func (b Bezier2) Transformed(m strokegeom.AT) Bezier2 {
	return Bezier2{P0: m.Transform(b.P0), CP: m.Transform(b.CP), P1: m.Transform(b.P1)}
}

// MaxDistance2 returns the squared distance from p to the farthest point of the
// curve. If the endpoints are at least as far from p as the control point,
// the convex hull property makes the farther endpoint the maximum; otherwise
// the curve is bisected.
func (b Bezier2) MaxDistance2(p strokegeom.Pair) float64 {
	d := math.Max(b.P0.Dist2(p), b.P1.Dist2(p))
	dcp := b.CP.Dist2(p)
	if d >= dcp {
		return d
	}
	if dcp-d < 1e-7 {
		return dcp
	}
	b0, b1 := b.MidSplit()
	return math.Max(b0.MaxDistance2(p), b1.MaxDistance2(p))
}

// --- Arc length sampling ---------------------------------------------------

func polylineLength(pos func(float64) strokegeom.Pair, flatness int) float64 {
	if flatness <= 0 {
		flatness = DefaultFlatness
	}
	var l float64
	prev := pos(0)
	for i := 1; i <= flatness; i++ {
		p := pos(float64(i) / float64(flatness))
		l += prev.Dist(p)
		prev = p
	}
	return l
}

func polylineT(pos func(float64) strokegeom.Pair, length float64, flatness int) float64 {
	if flatness <= 0 {
		flatness = DefaultFlatness
	}
	if length <= 0 {
		return 0
	}
	var l float64
	step := 1 / float64(flatness)
	prev := pos(0)
	for i := 1; i <= flatness; i++ {
		p := pos(float64(i) * step)
		d := prev.Dist(p)
		if l+d >= length {
			if d == 0 {
				return float64(i-1) * step
			}
			return (float64(i-1) + (length-l)/d) * step
		}
		l += d
		prev = p
	}
	return 1
}
