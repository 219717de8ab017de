/*
Package geometry implements closed paths assembled from strokes.

A Geometry is an ordered list of strokes, each read head to tail, which
together form (approximately) a closed cycle. Hand-drawn strokes arrive as an
unordered bag; New reconstructs the cycle:

	1. greedy chaining: starting with the first stroke, repeatedly append the
	   stroke with an endpoint nearest to the current tail
	2. local refinement by 2-opt moves, bounded to 10000/n² passes
	3. orientation: strokes traversed tail first are reversed
	4. end pressures are tapered for the joined strokes
	5. snapping: near-coincident junctions are pulled together

Geometries never re-run reconstruction on their own. Editing helpers build new
geometries from already ordered strokes (FromOrderedLines).

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package geometry

import (
	"math"

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

// outlineSteps is the number of line pieces per Bézier segment when
// flattening the outline.
const outlineSteps = 16

// Geometry is a closed path of strokes. Bounds and outline are derived on
// construction.
type Geometry struct {
	lines   []*stroke.Line
	bounds  bezier.AABB
	outline *polygon.Polygon
	width   float64 // ribbon width for Draw
}

// New reconstructs a closed path from an unordered list of strokes, using the
// default configuration. scale is the display scale; larger scales shrink the
// snapping distance.
func New(lines []*stroke.Line, scale float64) *Geometry {
	return NewWithConfig(lines, scale, strokegeom.Defaults())
}

// NewWithConfig reconstructs a closed path from an unordered list of strokes.
// An empty list yields an empty geometry.
func NewWithConfig(lines []*stroke.Line, scale float64, cfg strokegeom.Config) *Geometry {
	if len(lines) == 0 {
		g := FromOrderedLines(nil)
		g.width = cfg.StrokeWidth
		return g
	}
	ordered := Chain(lines)
	if len(ordered) > 1 {
		for i, l := range ordered {
			ordered[i] = l.AutoPressure(cfg.AutoPressure)
		}
	}
	ordered = Snap(ordered, scale, cfg)
	g := FromOrderedLines(ordered)
	g.width = cfg.StrokeWidth
	tracer().Infof("reconstructed path of %d strokes, junction gap %.4g", len(ordered), JunctionGap(ordered))
	return g
}

// FromOrderedLines creates a geometry from strokes which are already ordered
// and oriented.
func FromOrderedLines(lines []*stroke.Line) *Geometry {
	g := &Geometry{
		lines:   append([]*stroke.Line(nil), lines...),
		bounds:  bezier.EmptyAABB(),
		outline: polygon.NullPolygon(),
		width:   strokegeom.Defaults().StrokeWidth,
	}
	for _, l := range g.lines {
		g.bounds = g.bounds.Union(l.Bounds())
		for _, b := range l.Beziers() {
			g.outline.AppendQuad(b, outlineSteps)
		}
	}
	g.outline.Cycle()
	return g
}

// derived creates a geometry of edited strokes, keeping the settings of g.
func (g *Geometry) derived(lines []*stroke.Line) *Geometry {
	d := FromOrderedLines(lines)
	d.width = g.width
	return d
}

// Lines returns the ordered strokes.
func (g *Geometry) Lines() []*stroke.Line {
	return append([]*stroke.Line(nil), g.lines...)
}

// N is the number of strokes.
func (g *Geometry) N() int {
	return len(g.lines)
}

// Line returns stroke i.
func (g *Geometry) Line(i int) *stroke.Line {
	return g.lines[i]
}

// IsEmpty is true for geometries without strokes.
func (g *Geometry) IsEmpty() bool {
	return len(g.lines) == 0
}

// Bounds is the tight bounding box of all strokes.
func (g *Geometry) Bounds() bezier.AABB {
	return g.bounds
}

// Outline is the flattened closed path.
func (g *Geometry) Outline() *polygon.Polygon {
	return g.outline
}

// Contains tests p against the closed path (even-odd rule).
func (g *Geometry) Contains(p strokegeom.Pair) bool {
	if g.IsEmpty() || !g.bounds.Contains(p) {
		return false
	}
	return g.outline.Contains(p)
}

// Hit locates a point on a stroke of a geometry.
type Hit struct {
	Line   int     // stroke index
	Bezier int     // segment index within the stroke
	T      float64 // segment parameter
	Dist2  float64 // squared distance to the queried point
}

// NearestBezier finds the stroke segment closest to p. It returns false for
// empty geometries.
func (g *Geometry) NearestBezier(p strokegeom.Pair) (Hit, bool) {
	hit := Hit{Dist2: math.Inf(1)}
	for i, l := range g.lines {
		bi, t, d := l.Nearest(p)
		if d < hit.Dist2 {
			hit = Hit{Line: i, Bezier: bi, T: t, Dist2: d}
		}
	}
	return hit, !g.IsEmpty()
}

// NearestPathEdge returns the index i of the stroke whose incoming junction,
// the straight edge from the end of stroke i−1 to the start of stroke i, is
// closest to p. It returns −1 for empty geometries.
func (g *Geometry) NearestPathEdge(p strokegeom.Pair) int {
	best, bestD := -1, math.Inf(1)
	n := len(g.lines)
	for i, l := range g.lines {
		prev := g.lines[(i-1+n)%n]
		if d := p.DistanceToSegment(prev.LastPoint(), l.FirstPoint()); d < bestD {
			best, bestD = i, d
		}
	}
	return best
}

// AddPath adds the closed path to a surface: the strokes' curves, connected by
// straight junction edges.
func (g *Geometry) AddPath(s strokegeom.Surface) {
	if g.IsEmpty() {
		return
	}
	s.MoveTo(g.lines[0].FirstPoint())
	for i, l := range g.lines {
		if i > 0 {
			s.LineTo(l.FirstPoint())
		}
		for _, b := range l.Beziers() {
			s.QuadTo(b.CP, b.P1)
		}
	}
	s.ClosePath()
}

// FillPath fills the closed path.
func (g *Geometry) FillPath(s strokegeom.Surface) {
	g.AddPath(s)
	s.Fill()
}

// Clip restricts subsequent drawing on s to the closed path.
func (g *Geometry) Clip(s strokegeom.Surface) {
	g.AddPath(s)
	s.Clip()
}

// StrokeWidth is the ribbon width Draw uses by default, taken from the
// configuration the geometry was built with.
func (g *Geometry) StrokeWidth() float64 {
	return g.width
}

// Draw draws the ribbons of all strokes. A non-positive size selects
// StrokeWidth.
func (g *Geometry) Draw(size float64, s strokegeom.Surface) {
	if size <= 0 {
		size = g.width
	}
	for _, l := range g.lines {
		l.Draw(size, s)
	}
}
