package geometry

import (
	"github.com/npillmayer/strokegeom/anim"
	"github.com/npillmayer/strokegeom/stroke"
	"gopkg.in/yaml.v3"
)

// Geometry satisfies anim.Interpolatable[*Geometry]. Geometries are blended
// stroke by stroke. If the geometries differ in their number of strokes there
// is no correspondence between them, and the earlier value is held.
var _ anim.Interpolatable[*Geometry] = (*Geometry)(nil)

func blend(gs []*Geometry, hold *Geometry, f func(ls []*stroke.Line) *stroke.Line) *Geometry {
	n := hold.N()
	for _, g := range gs {
		if g.N() != n {
			tracer().Errorf("cannot interpolate geometries of %d and %d strokes", n, g.N())
			return hold
		}
	}
	lines := make([]*stroke.Line, n)
	ls := make([]*stroke.Line, len(gs))
	for i := range lines {
		for k, g := range gs {
			ls[k] = g.lines[i]
		}
		lines[i] = f(ls)
	}
	return hold.derived(lines)
}

// Linear is part of interface anim.Interpolatable.
func (g *Geometry) Linear(g2 *Geometry, t float64) *Geometry {
	return blend([]*Geometry{g, g2}, g, func(ls []*stroke.Line) *stroke.Line {
		return ls[0].Linear(ls[1], t)
	})
}

// FirstSpline is part of interface anim.Interpolatable.
func (g *Geometry) FirstSpline(g2, g3 *Geometry, ms anim.MonosplineX) *Geometry {
	return blend([]*Geometry{g, g2, g3}, g, func(ls []*stroke.Line) *stroke.Line {
		return ls[0].FirstSpline(ls[1], ls[2], ms)
	})
}

// Spline is part of interface anim.Interpolatable.
func (g *Geometry) Spline(g0, g2, g3 *Geometry, ms anim.MonosplineX) *Geometry {
	return blend([]*Geometry{g0, g, g2, g3}, g, func(ls []*stroke.Line) *stroke.Line {
		return ls[1].Spline(ls[0], ls[2], ls[3], ms)
	})
}

// LastSpline is part of interface anim.Interpolatable.
func (g *Geometry) LastSpline(g0, g2 *Geometry, ms anim.MonosplineX) *Geometry {
	return blend([]*Geometry{g0, g, g2}, g, func(ls []*stroke.Line) *stroke.Line {
		return ls[1].LastSpline(ls[0], ls[2], ms)
	})
}

// MarshalYAML is part of interface yaml.Marshaler. A geometry is persisted as
// its ordered list of strokes.
func (g *Geometry) MarshalYAML() (interface{}, error) {
	if g.lines == nil {
		return []*stroke.Line{}, nil
	}
	return g.lines, nil
}

// UnmarshalYAML is part of interface yaml.Unmarshaler. Strokes are taken in
// order, without reconstruction.
func (g *Geometry) UnmarshalYAML(value *yaml.Node) error {
	var lines []*stroke.Line
	if err := value.Decode(&lines); err != nil {
		return err
	}
	*g = *FromOrderedLines(lines)
	return nil
}
