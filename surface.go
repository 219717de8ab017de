package strokegeom

// Surface is a 2D drawing context. Paths are built with MoveTo/LineTo/QuadTo/ClosePath
// and consumed by either Fill or Clip, both of which start a new path.
//
// The engine emits geometry only; colors, blending and the backing store are
// the implementation's business (see package raster for one).
type Surface interface {
	MoveTo(p Pair)
	LineTo(p Pair)
	QuadTo(control, p Pair)
	ClosePath()
	Fill()
	Clip()
}
