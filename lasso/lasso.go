/*
Package lasso implements hit testing against a closed loop of strokes.

A lasso is drawn as one or more strokes. Consecutive strokes (and the last and
first one) are connected by straight closing edges wherever they do not meet.
Lassos are short-lived: one is created per selection gesture, queried and
dropped.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package lasso

import (
	"sort"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/strokegeom"
	"github.com/npillmayer/strokegeom/bezier"
	"github.com/npillmayer/strokegeom/polygon"
	"github.com/npillmayer/strokegeom/stroke"
)

// tracer writes to trace with key 'graphics'
func tracer() tracing.Trace {
	return tracing.Select("graphics")
}

const outlineSteps = 16

// Lasso is a closed loop.
type Lasso struct {
	edges   []bezier.Bezier2 // all segments of the loop, including closing edges
	bounds  bezier.AABB
	outline *polygon.Polygon
	ccw     bool
}

// New creates a lasso from strokes, read in order.
func New(lines []*stroke.Line) *Lasso {
	l := &Lasso{bounds: bezier.EmptyAABB(), outline: polygon.NullPolygon()}
	for i, line := range lines {
		prev := lines[(i-1+len(lines))%len(lines)]
		if !prev.LastPoint().Equal(line.FirstPoint()) {
			l.edges = append(l.edges, bezier.Linear(prev.LastPoint(), line.FirstPoint()))
		}
		for _, b := range line.Beziers() {
			l.edges = append(l.edges, b)
		}
	}
	for _, e := range l.edges {
		l.bounds = l.bounds.Union(e.Bounds())
		l.outline.AppendQuad(e, outlineSteps)
	}
	l.outline.Cycle()
	l.ccw = l.outline.SignedArea() > 0
	return l
}

// Bounds is the bounding box of the loop.
func (l *Lasso) Bounds() bezier.AABB {
	return l.bounds
}

// Contains tests p against the loop with the even-odd rule.
func (l *Lasso) Contains(p strokegeom.Pair) bool {
	if !l.bounds.Contains(p) {
		return false
	}
	return l.outline.Contains(p)
}

// Intersects is true if the stroke crosses the loop or lies inside of it.
func (l *Lasso) Intersects(line *stroke.Line) bool {
	if !l.bounds.Intersects(line.Bounds()) {
		return false
	}
	for _, b := range line.Beziers() {
		for _, e := range l.edges {
			if b.Intersects(e) {
				return true
			}
		}
	}
	for _, c := range line.Controls() {
		if l.Contains(c.Point) {
			return true
		}
	}
	return false
}

// Splitting is the result of cutting a stroke at a lasso.
type Splitting struct {
	Outside []*stroke.Line // parts outside the loop
	Inside  []*stroke.Line // parts inside the loop
}

type crossing struct {
	index int // segment of the stroke
	t     float64
	enter bool
}

// jointGap is the distance along the stroke, in segment parameters, below
// which two crossings in the same direction are one.
const jointGap = 1e-4

// along is the position on the stroke, counted in segments.
func (c crossing) along() float64 {
	return float64(c.index) + c.t
}

// crossings collects the intersections of a stroke with the loop, sorted
// along the stroke.
func (l *Lasso) crossings(line *stroke.Line) []crossing {
	var cs []crossing
	for i, b := range line.Beziers() {
		if !b.BoundingBox().Intersects(l.bounds) {
			continue
		}
		for _, e := range l.edges {
			for _, is := range b.Intersections(e) {
				// the loop crosses from right to left when we leave a
				// counter-clockwise loop
				cs = append(cs, crossing{index: i, t: is.T, enter: is.IsLeft != l.ccw})
			}
		}
	}
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].index != cs[j].index {
			return cs[i].index < cs[j].index
		}
		return cs[i].t < cs[j].t
	})
	// a crossing through a joint of two loop segments (or of two stroke
	// segments) is found twice
	out := cs[:0]
	for _, c := range cs {
		if n := len(out); n > 0 && out[n-1].enter == c.enter && c.along()-out[n-1].along() < jointGap {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Split cuts a stroke at the crossings with the loop. Split returns nil if
// the stroke does not reach into the bounding box of the loop. A stroke
// without crossings is returned unchanged, as the only part inside or outside.
func (l *Lasso) Split(line *stroke.Line) *Splitting {
	if !l.bounds.Intersects(line.Bounds()) {
		return nil
	}
	depth := 0
	if l.Contains(line.FirstPoint()) {
		depth = 1
	}
	result := &Splitting{}
	emit := func(part *stroke.Line) {
		if depth > 0 {
			result.Inside = append(result.Inside, part)
		} else {
			result.Outside = append(result.Outside, part)
		}
	}
	cs := l.crossings(line)
	tracer().Debugf("lasso split: %d crossing(s)", len(cs))
	index, t := 0, 0.0
	for _, c := range cs {
		if c.index != index || c.t-t > strokegeom.Epsilon {
			emit(line.Splited(index, t, c.index, c.t))
		}
		if c.enter {
			depth++
		} else if depth > 0 {
			depth--
		}
		index, t = c.index, c.t
	}
	last := line.BezierCount() - 1
	if len(cs) == 0 {
		emit(line)
	} else if index != last || 1-t > strokegeom.Epsilon {
		emit(line.Splited(index, t, last, 1))
	}
	return result
}
