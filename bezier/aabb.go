package bezier

import (
	"fmt"
	"math"

	"github.com/npillmayer/strokegeom"
)

// AABB is an axis-aligned bounding box. A box with MinX > MaxX is empty.
type AABB struct {
	MinX, MaxX, MinY, MaxY float64
}

// EmptyAABB is the neutral element of Union.
func EmptyAABB() AABB {
	return AABB{
		MinX: math.Inf(1), MaxX: math.Inf(-1),
		MinY: math.Inf(1), MaxY: math.Inf(-1),
	}
}

// NewAABB creates a box from its extents.
func NewAABB(minX, maxX, minY, maxY float64) AABB {
	return AABB{MinX: minX, MaxX: maxX, MinY: minY, MaxY: maxY}
}

// AABBFromRect creates a box from two opposite corners of a rectangle.
func AABBFromRect(p, q strokegeom.Pair) AABB {
	return AABBOf(p, q)
}

// AABBOf returns the smallest box containing all points.
func AABBOf(pts ...strokegeom.Pair) AABB {
	box := EmptyAABB()
	for _, p := range pts {
		box = box.Extend(p)
	}
	return box
}

// IsEmpty is true for boxes without any points.
func (a AABB) IsEmpty() bool {
	return a.MinX > a.MaxX || a.MinY > a.MaxY
}

// Width is the horizontal extent.
func (a AABB) Width() float64 {
	if a.IsEmpty() {
		return 0
	}
	return a.MaxX - a.MinX
}

// Height is the vertical extent.
func (a AABB) Height() float64 {
	if a.IsEmpty() {
		return 0
	}
	return a.MaxY - a.MinY
}

// Midpoint is the center of the box.
func (a AABB) Midpoint() strokegeom.Pair {
	return strokegeom.P((a.MinX+a.MaxX)/2, (a.MinY+a.MaxY)/2)
}

// Extend returns a box containing a and p.
func (a AABB) Extend(p strokegeom.Pair) AABB {
	return AABB{
		MinX: math.Min(a.MinX, p.X()), MaxX: math.Max(a.MaxX, p.X()),
		MinY: math.Min(a.MinY, p.Y()), MaxY: math.Max(a.MaxY, p.Y()),
	}
}

// Union returns a box containing a and b.
func (a AABB) Union(b AABB) AABB {
	return AABB{
		MinX: math.Min(a.MinX, b.MinX), MaxX: math.Max(a.MaxX, b.MaxX),
		MinY: math.Min(a.MinY, b.MinY), MaxY: math.Max(a.MaxY, b.MaxY),
	}
}

// Inset grows (d < 0) or shrinks (d > 0) a box on every side.
func (a AABB) Inset(d float64) AABB {
	return AABB{MinX: a.MinX + d, MaxX: a.MaxX - d, MinY: a.MinY + d, MaxY: a.MaxY - d}
}

// Intersects is true if the boxes share at least one point. Touching boxes
// intersect.
func (a AABB) Intersects(b AABB) bool {
	return a.MinX <= b.MaxX && a.MaxX >= b.MinX && a.MinY <= b.MaxY && a.MaxY >= b.MinY
}

// Contains is true if p lies inside or on the border of the box.
func (a AABB) Contains(p strokegeom.Pair) bool {
	return p.X() >= a.MinX && p.X() <= a.MaxX && p.Y() >= a.MinY && p.Y() <= a.MaxY
}

func (a AABB) String() string {
	return fmt.Sprintf("[%g..%g]x[%g..%g]", a.MinX, a.MaxX, a.MinY, a.MaxY)
}
