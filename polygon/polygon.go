/*
Package polygon implements flattened outlines: polylines which are either open
or closed (cycles). Closed polygons answer containment and overlap queries for
path outlines and lasso regions.

Polygons are constructed with a builder pattern:

	pg := NullPolygon().Knot(P(0,0)).Knot(P(1,3)).Knot(P(3,0)).Cycle()

Curved outlines are flattened into polygons by appending quadratic Bézier
segments, sampled uniformly in t.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"bytes"
	"fmt"
	"math"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/strokegeom"
	"github.com/npillmayer/strokegeom/bezier"
)

// L traces to key 'geom'.
func L() tracing.Trace {
	return tracing.Select("geom")
}

// Polygon is a sequence of knots, optionally closed.
type Polygon struct {
	contour polyclip.Contour
	cycle   bool
}

// NullPolygon creates an empty polygon.
func NullPolygon() *Polygon {
	return &Polygon{}
}

// Knot appends a point. Consecutive duplicates are dropped.
func (pg *Polygon) Knot(p strokegeom.Pair) *Polygon {
	pt := polyclip.Point{X: p.X(), Y: p.Y()}
	if n := len(pg.contour); n > 0 && pg.contour[n-1].Equals(pt) {
		return pg
	}
	pg.contour.Add(pt)
	return pg
}

// Cycle closes the polygon. The last knot connects back to the first one.
func (pg *Polygon) Cycle() *Polygon {
	if n := len(pg.contour); n > 1 && pg.contour[n-1].Equals(pg.contour[0]) {
		pg.contour = pg.contour[:n-1]
	}
	pg.cycle = true
	return pg
}

// End finishes an open polygon.
func (pg *Polygon) End() *Polygon {
	pg.cycle = false
	return pg
}

// Box creates a closed rectangle from two opposite corners. Knots run
// counter-clockwise, starting at the lower left corner.
func Box(p, q strokegeom.Pair) *Polygon {
	minx, maxx := math.Min(p.X(), q.X()), math.Max(p.X(), q.X())
	miny, maxy := math.Min(p.Y(), q.Y()), math.Max(p.Y(), q.Y())
	return NullPolygon().
		Knot(strokegeom.P(minx, miny)).
		Knot(strokegeom.P(maxx, miny)).
		Knot(strokegeom.P(maxx, maxy)).
		Knot(strokegeom.P(minx, maxy)).
		Cycle()
}

// N is the number of knots.
func (pg *Polygon) N() int {
	if pg == nil {
		return 0
	}
	return len(pg.contour)
}

// Pt returns knot i. For cycles, i is taken modulo N.
func (pg *Polygon) Pt(i int) strokegeom.Pair {
	n := pg.N()
	if n == 0 {
		panic("polygon has no knots")
	}
	if pg.cycle {
		i = ((i % n) + n) % n
	} else if i < 0 || i >= n {
		panic(fmt.Sprintf("knot index %d out of range 0..%d", i, n-1))
	}
	return strokegeom.P(pg.contour[i].X, pg.contour[i].Y)
}

// IsCycle is true for closed polygons.
func (pg *Polygon) IsCycle() bool {
	return pg != nil && pg.cycle
}

// IsEmpty is true for polygons without knots.
func (pg *Polygon) IsEmpty() bool {
	return pg.N() == 0
}

// Contour returns the knots as a polyclip contour. The contour is shared, not
// copied.
func (pg *Polygon) Contour() polyclip.Contour {
	if pg == nil {
		return nil
	}
	return pg.contour
}

// Contains tests p against a closed polygon with the even-odd rule. Open
// polygons contain nothing.
func (pg *Polygon) Contains(p strokegeom.Pair) bool {
	if !pg.IsCycle() || pg.N() < 3 {
		return false
	}
	if !pg.BoundingBox().Contains(p) {
		return false
	}
	return pg.contour.Contains(polyclip.Point{X: p.X(), Y: p.Y()})
}

// BoundingBox is the box of all knots.
func (pg *Polygon) BoundingBox() bezier.AABB {
	if pg.N() == 0 {
		return bezier.EmptyAABB()
	}
	r := pg.contour.BoundingBox()
	return bezier.NewAABB(r.Min.X, r.Max.X, r.Min.Y, r.Max.Y)
}

// Overlaps is true if the bounding boxes of two polygons overlap.
func (pg *Polygon) Overlaps(other *Polygon) bool {
	if pg.N() == 0 || other.N() == 0 {
		return false
	}
	return pg.contour.BoundingBox().Overlaps(other.contour.BoundingBox())
}

// SignedArea is the area enclosed by the polygon, positive for
// counter-clockwise knot order (shoelace formula).
func (pg *Polygon) SignedArea() float64 {
	n := pg.N()
	if n < 3 {
		return 0
	}
	var a float64
	for i := 0; i < n; i++ {
		p, q := pg.contour[i], pg.contour[(i+1)%n]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}

// AppendQuad flattens a quadratic segment into steps line pieces and appends
// them. The start point of the segment is appended only if it differs from
// the current last knot.
func (pg *Polygon) AppendQuad(b bezier.Bezier2, steps int) *Polygon {
	if steps <= 0 {
		steps = 1
	}
	if b.IsLinear() || b.IsPoint() {
		return pg.Knot(b.P0).Knot(b.P1)
	}
	pg.Knot(b.P0)
	for i := 1; i <= steps; i++ {
		pg.Knot(b.Position(float64(i) / float64(steps)))
	}
	return pg
}

// AsString returns a polygon in MetaPost-like notation.
func AsString(pg *Polygon) string {
	var buf bytes.Buffer
	for i := 0; i < pg.N(); i++ {
		if i > 0 {
			buf.WriteString(" -- ")
		}
		buf.WriteString(pg.Pt(i).String())
	}
	if pg.IsCycle() {
		buf.WriteString(" -- cycle")
	}
	return buf.String()
}
