package anim

import (
	"fmt"
	"math"
)

// Interpolation selects the blend rule for the segment ending at a keyframe.
type Interpolation int8

// Interpolation kinds.
const (
	Spline Interpolation = iota
	Bound
	Linear
	Step
)

func (i Interpolation) String() string {
	switch i {
	case Spline:
		return "spline"
	case Bound:
		return "bound"
	case Linear:
		return "linear"
	case Step:
		return "step"
	}
	return fmt.Sprintf("interpolation(%d)", int8(i))
}

func (i Interpolation) isSpline() bool {
	return i == Spline || i == Bound
}

// Loop marks keyframes delimiting a looped section of a track.
type Loop int8

// Loop markers.
const (
	NoLoop Loop = iota
	LoopBegin
	LoopEnd
)

// Label distinguishes main keyframes from sub keyframes (a UI concern, carried
// along unchanged).
type Label int8

// Keyframe labels.
const (
	Main Label = iota
	Sub
)

// Keyframe is one authored point in time of an animation track.
type Keyframe struct {
	Time          float64
	Easing        Easing
	Interpolation Interpolation
	Loop          Loop
	Label         Label
}

func (k Keyframe) String() string {
	return fmt.Sprintf("key(%g,%s)", k.Time, k.Interpolation)
}

// Easing is a timing curve: a cubic Bézier from (0,0) to (1,1) with control
// points (X0,Y0) and (X1,Y1). The zero value is the identity.
type Easing struct {
	X0, Y0, X1, Y1 float64
}

// IsLinear is true for timing curves which do not alter time.
func (e Easing) IsLinear() bool {
	return e.X0 == e.Y0 && e.X1 == e.Y1
}

// Convert maps a linear segment parameter t ∈ [0,1] to eased time.
func (e Easing) Convert(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	if e.IsLinear() {
		return t
	}
	// x(s) is monotone for control x-coordinates in [0,1]; bisect for s
	lo, hi := 0.0, 1.0
	s := t
	for i := 0; i < 64; i++ {
		x := cubic1D(e.X0, e.X1, s)
		if math.Abs(x-t) < 1e-12 {
			break
		}
		if x < t {
			lo = s
		} else {
			hi = s
		}
		s = (lo + hi) / 2
	}
	return cubic1D(e.Y0, e.Y1, s)
}

// 1D cubic Bézier 0 → c0 → c1 → 1.
func cubic1D(c0, c1, s float64) float64 {
	r := 1 - s
	return 3*r*r*s*c0 + 3*r*s*s*c1 + s*s*s
}
