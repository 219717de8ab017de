/*
Package stroke implements hand-drawn strokes as chains of quadratic splines.

A stroke (type Line) is an immutable sequence of control points, each tagged
with a pen pressure and a blending weight. The curve of a stroke follows the
classic construction of a quadratic spline through a control polygon:

	1 control      a single point
	2 controls     a straight segment
	3 controls     one quadratic Bézier segment
	n ≥ 4          n−2 segments joined at the midpoints of consecutive controls

The first segment of a chain starts at the first control point, the last one
ends at the last control point, and interior segments run between the
midpoints of two consecutive control pairs, using the shared control point as
their Bézier control. "Midpoint" is the weighted blend towards the next
control, with the weight of the left control (0.5 by default).

Every editing operation returns a new Line; the receiver is never modified.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package stroke

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/strokegeom"
	"github.com/npillmayer/strokegeom/bezier"
)

// tracer writes to trace with key 'graphics'
func tracer() tracing.Trace {
	return tracing.Select("graphics")
}

// ErrEmptyStroke is returned when a stroke is built from zero samples.
var ErrEmptyStroke = errors.New("stroke without control points")

// ErrInvalidPressure is returned for negative or NaN pen pressures.
var ErrInvalidPressure = errors.New("invalid pen pressure")

// DefaultWeight is the blending weight of control points which do not specify
// one. It places the junctions of the spline at the midpoints of the control
// polygon.
const DefaultWeight = 0.5

// Control is a control point of a stroke.
type Control struct {
	Point    strokegeom.Pair
	Pressure float64
	Weight   float64
}

// C is a quick notation for a control with default weight.
func C(p strokegeom.Pair, pressure float64) Control {
	return Control{Point: p, Pressure: pressure, Weight: DefaultWeight}
}

func (c Control) String() string {
	return fmt.Sprintf("%v@%g", c.Point, c.Pressure)
}

// Sample is a raw pointer sample.
type Sample struct {
	Point    strokegeom.Pair
	Pressure float64
}

// Line is a stroke. Bounds and pressure offsets are derived on construction.
type Line struct {
	controls []Control
	bounds   bezier.AABB
	offsets  []strokegeom.Pair // unit-width pressure offsets, one per control
}

// New creates a stroke from control points. Weights outside (0,1) are replaced
// by DefaultWeight. New panics on an empty control list.
func New(controls ...Control) *Line {
	if len(controls) == 0 {
		panic("cannot create stroke without control points")
	}
	cs := make([]Control, len(controls))
	copy(cs, controls)
	for i := range cs {
		if !(cs[i].Weight > 0 && cs[i].Weight < 1) {
			cs[i].Weight = DefaultWeight
		}
	}
	return newLine(cs)
}

// newLine takes ownership of cs, which must be normalized already.
func newLine(cs []Control) *Line {
	l := &Line{controls: cs}
	l.bounds = bezier.EmptyAABB()
	for _, b := range l.Beziers() {
		l.bounds = l.bounds.Union(b.Bounds())
	}
	l.offsets = pressureOffsets(cs)
	return l
}

// FromSamples creates a stroke with one control point per pointer sample.
func FromSamples(samples []Sample) (*Line, error) {
	if len(samples) == 0 {
		return nil, ErrEmptyStroke
	}
	cs := make([]Control, len(samples))
	for i, s := range samples {
		if s.Pressure < 0 || math.IsNaN(s.Pressure) {
			return nil, fmt.Errorf("%w: sample %d has pressure %g", ErrInvalidPressure, i, s.Pressure)
		}
		cs[i] = C(s.Point, s.Pressure)
	}
	return newLine(cs), nil
}

// MustFromSamples is like FromSamples, but panics on error.
func MustFromSamples(samples []Sample) *Line {
	l, err := FromSamples(samples)
	if err != nil {
		panic(err)
	}
	return l
}

// FromPoints creates a stroke of full pressure through the given points.
func FromPoints(pts ...strokegeom.Pair) *Line {
	cs := make([]Control, len(pts))
	for i, p := range pts {
		cs[i] = C(p, 1)
	}
	return New(cs...)
}

// pressureOffsets computes the perpendicular offset of each control, scaled
// by its pressure, for a ribbon of width 1.
func pressureOffsets(cs []Control) []strokegeom.Pair {
	n := len(cs)
	off := make([]strokegeom.Pair, n)
	if n < 2 {
		return off
	}
	for i := range cs {
		var d strokegeom.Pair
		switch i {
		case 0:
			d = cs[1].Point - cs[0].Point
		case n - 1:
			d = cs[n-1].Point - cs[n-2].Point
		default:
			d = cs[i+1].Point - cs[i-1].Point
		}
		off[i] = d.Normal().Scaled(cs[i].Pressure / 2)
	}
	return off
}

// --- Queries ---------------------------------------------------------------

// Count is the number of control points.
func (l *Line) Count() int {
	return len(l.controls)
}

// Controls returns a copy of the control points.
func (l *Line) Controls() []Control {
	cs := make([]Control, len(l.controls))
	copy(cs, l.controls)
	return cs
}

// Control returns control point i.
func (l *Line) Control(i int) Control {
	l.checkIndex(i, len(l.controls))
	return l.controls[i]
}

// FirstPoint is the location of the first control point.
func (l *Line) FirstPoint() strokegeom.Pair {
	return l.controls[0].Point
}

// LastPoint is the location of the last control point.
func (l *Line) LastPoint() strokegeom.Pair {
	return l.controls[len(l.controls)-1].Point
}

// Bounds is the tight bounding box of the stroke's curve.
func (l *Line) Bounds() bezier.AABB {
	return l.bounds
}

// PressurePoints returns both borders of a ribbon of width 1 around the
// control polygon: each control point shifted by ± half its pressure along the
// normal of the polygon.
func (l *Line) PressurePoints() (left, right []strokegeom.Pair) {
	return l.pressurePoints(1)
}

func (l *Line) pressurePoints(size float64) (left, right []strokegeom.Pair) {
	left = make([]strokegeom.Pair, len(l.controls))
	right = make([]strokegeom.Pair, len(l.controls))
	for i, c := range l.controls {
		o := l.offsets[i].Scaled(size)
		left[i], right[i] = c.Point+o, c.Point-o
	}
	return
}

// BezierCount is the number of spline segments.
func (l *Line) BezierCount() int {
	if n := len(l.controls); n >= 3 {
		return n - 2
	}
	return 1
}

// knot is a point on the control polygon: control a, blended towards control
// b by w.
type knot struct {
	a, b int
	w    float64
}

// segmentKnots returns the start, control and end knots of spline segment i
// of a chain of n controls.
func segmentKnots(n, i int, weight func(int) float64) (k0, kc, k1 knot) {
	switch {
	case n == 1:
		return knot{}, knot{}, knot{}
	case n == 2:
		return knot{0, 1, 0}, knot{0, 1, 0.5}, knot{0, 1, 1}
	case n == 3:
		return knot{0, 0, 0}, knot{1, 1, 0}, knot{2, 2, 0}
	}
	k0 = knot{0, 0, 0}
	if i > 0 {
		k0 = knot{i, i + 1, weight(i)}
	}
	kc = knot{i + 1, i + 1, 0}
	k1 = knot{n - 1, n - 1, 0}
	if i < n-3 {
		k1 = knot{i + 1, i + 2, weight(i + 1)}
	}
	return
}

func (l *Line) weight(i int) float64 {
	return l.controls[i].Weight
}

func (l *Line) knotPoint(k knot) strokegeom.Pair {
	return l.controls[k.a].Point.Lerp(l.controls[k.b].Point, k.w)
}

func (l *Line) knotPressure(k knot) float64 {
	p0, p1 := l.controls[k.a].Pressure, l.controls[k.b].Pressure
	return p0 + (p1-p0)*k.w
}

// Bezier returns spline segment i.
func (l *Line) Bezier(i int) bezier.Bezier2 {
	l.checkIndex(i, l.BezierCount())
	k0, kc, k1 := segmentKnots(len(l.controls), i, l.weight)
	return bezier.Bezier2{P0: l.knotPoint(k0), CP: l.knotPoint(kc), P1: l.knotPoint(k1)}
}

// Beziers iterates over the spline segments with their index.
func (l *Line) Beziers() iter.Seq2[int, bezier.Bezier2] {
	return func(yield func(int, bezier.Bezier2) bool) {
		for i := 0; i < l.BezierCount(); i++ {
			if !yield(i, l.Bezier(i)) {
				return
			}
		}
	}
}

// Position evaluates spline segment i at t.
func (l *Line) Position(i int, t float64) strokegeom.Pair {
	return l.Bezier(i).Position(t)
}

// Pressure interpolates the pen pressure on spline segment i at t. Pressure
// varies linearly from the start of the segment to its control and on to its
// end.
func (l *Line) Pressure(i int, t float64) float64 {
	l.checkIndex(i, l.BezierCount())
	k0, kc, k1 := segmentKnots(len(l.controls), i, l.weight)
	p0, pc, p1 := l.knotPressure(k0), l.knotPressure(kc), l.knotPressure(k1)
	if t < 0.5 {
		return p0 + (pc-p0)*2*t
	}
	return pc + (p1-pc)*(2*t-1)
}

// Length is the arc length of the stroke, with flatness samples per segment.
func (l *Line) Length(flatness int) float64 {
	var length float64
	for _, b := range l.Beziers() {
		length += b.Length(flatness)
	}
	return length
}

// PointsLength is the length of the control polygon.
func (l *Line) PointsLength() float64 {
	var length float64
	for i := 1; i < len(l.controls); i++ {
		length += l.controls[i-1].Point.Dist(l.controls[i].Point)
	}
	return length
}

// Nearest finds the segment and parameter of the curve point closest to p,
// together with the squared distance.
func (l *Line) Nearest(p strokegeom.Pair) (index int, t float64, dist2 float64) {
	dist2 = math.Inf(1)
	for i, b := range l.Beziers() {
		if bt, d := b.Nearest(p); d < dist2 {
			index, t, dist2 = i, bt, d
		}
	}
	return
}

// Intersects is true if the curves of two strokes meet.
func (l *Line) Intersects(other *Line) bool {
	if !l.bounds.Intersects(other.bounds) {
		return false
	}
	for _, b := range l.Beziers() {
		if !b.BoundingBox().Intersects(other.bounds) {
			continue
		}
		for _, ob := range other.Beziers() {
			if b.Intersects(ob) {
				return true
			}
		}
	}
	return false
}

func (l *Line) String() string {
	var b strings.Builder
	b.WriteString("stroke[")
	for i, c := range l.controls {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(c.String())
	}
	b.WriteString("]")
	return b.String()
}

func (l *Line) checkIndex(i, n int) {
	if i < 0 || i >= n {
		panic(fmt.Sprintf("index %d out of range 0..%d", i, n-1))
	}
}
