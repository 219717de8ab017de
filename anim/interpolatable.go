package anim

// Interpolatable is implemented by every animatable channel type.
//
// For Linear the receiver is the value at the earlier keyframe. For the spline
// variants the receiver is f1, the value at the start of the interpolated segment
// f1 → f2; f0 and f3 are the values at the neighbouring keyframes.
type Interpolatable[T any] interface {
	Linear(f2 T, t float64) T
	FirstSpline(f2, f3 T, ms MonosplineX) T
	Spline(f0, f2, f3 T, ms MonosplineX) T
	LastSpline(f0, f2 T, ms MonosplineX) T
}

// Scalar is a plain animated number (opacity, line width, a pressure, …).
type Scalar float64

// Linear is part of interface Interpolatable.
func (f1 Scalar) Linear(f2 Scalar, t float64) Scalar {
	return Scalar(Lerp(float64(f1), float64(f2), t))
}

// FirstSpline is part of interface Interpolatable.
func (f1 Scalar) FirstSpline(f2, f3 Scalar, ms MonosplineX) Scalar {
	return Scalar(FirstMonospline(float64(f1), float64(f2), float64(f3), ms))
}

// Spline is part of interface Interpolatable.
func (f1 Scalar) Spline(f0, f2, f3 Scalar, ms MonosplineX) Scalar {
	return Scalar(Monospline(float64(f0), float64(f1), float64(f2), float64(f3), ms))
}

// LastSpline is part of interface Interpolatable.
func (f1 Scalar) LastSpline(f0, f2 Scalar, ms MonosplineX) Scalar {
	return Scalar(LastMonospline(float64(f0), float64(f1), float64(f2), ms))
}

// Hue is an angular channel in [0,1) (one full turn). Hues, like rotations,
// interpolate along the shortest signed delta.
type Hue float64

const huePeriod = 1.0

// unwrap moves h next to ref, so that h − ref is the shortest signed delta.
func (h Hue) unwrap(ref float64) float64 {
	return ref + LoopDelta(ref, float64(h), huePeriod)
}

// Linear is part of interface Interpolatable.
func (f1 Hue) Linear(f2 Hue, t float64) Hue {
	return Hue(LoopLerp(float64(f1), float64(f2), t, huePeriod))
}

// FirstSpline is part of interface Interpolatable.
func (f1 Hue) FirstSpline(f2, f3 Hue, ms MonosplineX) Hue {
	x1 := float64(f1)
	x2 := f2.unwrap(x1)
	x3 := f3.unwrap(x2)
	return Hue(Wrap(FirstMonospline(x1, x2, x3, ms), huePeriod))
}

// Spline is part of interface Interpolatable.
func (f1 Hue) Spline(f0, f2, f3 Hue, ms MonosplineX) Hue {
	x1 := float64(f1)
	x0 := f0.unwrap(x1)
	x2 := f2.unwrap(x1)
	x3 := f3.unwrap(x2)
	return Hue(Wrap(Monospline(x0, x1, x2, x3, ms), huePeriod))
}

// LastSpline is part of interface Interpolatable.
func (f1 Hue) LastSpline(f0, f2 Hue, ms MonosplineX) Hue {
	x1 := float64(f1)
	x0 := f0.unwrap(x1)
	x2 := f2.unwrap(x1)
	return Hue(Wrap(LastMonospline(x0, x1, x2, ms), huePeriod))
}
