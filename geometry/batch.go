package geometry

import (
	"fmt"

	"github.com/npillmayer/strokegeom/stroke"
)

// The batch helpers apply one edit to a group of geometries at matching
// indices, e.g. to every keyframe of an animated shape. They return new
// geometries; stroke order is kept and no reconstruction takes place.

func (g *Geometry) checkLine(i int) {
	if i < 0 || i >= len(g.lines) {
		panic(fmt.Sprintf("stroke index %d out of range 0..%d", i, len(g.lines)-1))
	}
}

func editLine(gs []*Geometry, index int, edit func(*stroke.Line) *stroke.Line) []*Geometry {
	out := make([]*Geometry, len(gs))
	for k, g := range gs {
		g.checkLine(index)
		lines := g.Lines()
		lines[index] = edit(lines[index])
		out[k] = g.derived(lines)
	}
	return out
}

// InsertLine inserts line before stroke index in every geometry. index may
// equal the number of strokes.
func InsertLine(gs []*Geometry, index int, line *stroke.Line) []*Geometry {
	out := make([]*Geometry, len(gs))
	for k, g := range gs {
		if index < 0 || index > len(g.lines) {
			panic(fmt.Sprintf("insert position %d out of range 0..%d", index, len(g.lines)))
		}
		lines := make([]*stroke.Line, 0, len(g.lines)+1)
		lines = append(lines, g.lines[:index]...)
		lines = append(lines, line)
		lines = append(lines, g.lines[index:]...)
		out[k] = g.derived(lines)
	}
	return out
}

// RemoveLine removes stroke index from every geometry.
func RemoveLine(gs []*Geometry, index int) []*Geometry {
	out := make([]*Geometry, len(gs))
	for k, g := range gs {
		g.checkLine(index)
		lines := make([]*stroke.Line, 0, len(g.lines)-1)
		lines = append(lines, g.lines[:index]...)
		lines = append(lines, g.lines[index+1:]...)
		out[k] = g.derived(lines)
	}
	return out
}

// SplitControl inserts a control point into segment bezierIndex of stroke
// lineIndex, at parameter t, in every geometry.
func SplitControl(gs []*Geometry, lineIndex, bezierIndex int, t float64) []*Geometry {
	return editLine(gs, lineIndex, func(l *stroke.Line) *stroke.Line {
		return l.SplitControl(bezierIndex, t)
	})
}

// RemoveControl removes control point controlIndex of stroke lineIndex in
// every geometry.
func RemoveControl(gs []*Geometry, lineIndex, controlIndex int) []*Geometry {
	return editLine(gs, lineIndex, func(l *stroke.Line) *stroke.Line {
		return l.WithRemove(controlIndex)
	})
}

// ReplaceControl rewrites control point controlIndex of stroke lineIndex in
// every geometry. The replacement is derived from the geometry's own control.
func ReplaceControl(gs []*Geometry, lineIndex, controlIndex int, replace func(stroke.Control) stroke.Control) []*Geometry {
	return editLine(gs, lineIndex, func(l *stroke.Line) *stroke.Line {
		return l.WithReplace(controlIndex, replace(l.Control(controlIndex)))
	})
}
