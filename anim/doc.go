// Package anim implements keyframe selection and monotone spline interpolation
// for animated values.
/*

Animated channels (points, pressures, scalar parameters, hues, whole strokes
and geometries) are authored at keyframes. Between two keyframes a value is
blended by one of four rules, chosen by the interpolation kind of the later
keyframe:

	Linear   straight interpolation
	Step     hold the earlier value
	Spline   monotone cubic Hermite spline through up to 4 keyframes
	Bound    like Spline, but neighbours across a non-spline keyframe are ignored

The spline is a monotonicity preserving cubic ("monospline"): the slope at
an interior knot is derived from the two adjacent secant slopes such that the
interpolant never overshoots monotone data. The formulas follow

   M. Steffen: A simple method for monotonic interpolation in one dimension.
   Astronomy and Astrophysics 239, 443-450 (1990).

A MonosplineX is computed once per queried time and then shared by every
channel interpolated at that time, so all channels of a frame blend
consistently. Clients build a Track with a builder, similar to other paths
in this module:

	tr := NullTrack().Key(0).Key(1).Kind(Linear).Key(2.5).Key(4).Kind(Step)
	seg := tr.Segment(1.7)
	v, err := Interpolate(tr, []Scalar{0, 2, 3, 8}, 1.7)

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package anim

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'anim'
func tracer() tracing.Trace {
	return tracing.Select("anim")
}

var (
	// ErrTooFewKeyframes indicates a track without keyframes.
	ErrTooFewKeyframes = errors.New("track has no keyframes")
	// ErrUnsortedKeyframes indicates keyframe times which are not strictly increasing.
	ErrUnsortedKeyframes = errors.New("keyframe times must be strictly increasing")
	// ErrValueCount indicates a mismatch between keyframe count and value count.
	ErrValueCount = errors.New("value count does not match keyframe count")
)
