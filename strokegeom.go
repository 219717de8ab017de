/*
Package strokegeom implements the geometry core of a vector animation tool:
points, affine transformations and the numeric helpers shared by the
quadratic Bézier stroke engine in its sub-packages.

Sub-packages:

	bezier    quadratic/cubic Bézier curves, bounding boxes, intersection, nearest point
	polyn     univariate polynomials and a cubic root solver
	polygon   flattened closed outlines (containment, bounds)
	stroke    pressure-tagged strokes built as chains of quadratic splines
	geometry  closed paths reconstructed from an unordered bag of strokes
	lasso     closed-loop hit testing and stroke splitting
	anim      keyframes and monotone spline interpolation
	raster    a rasterising drawing surface

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package strokegeom

import (
	"math"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'geom'
func tracer() tracing.Trace {
	return tracing.Select("geom")
}

// === Numeric Helpers =======================================================

// Deg2Rad is a constant for converting from DEG to RAD or vice versa
var Deg2Rad float64 = 0.01745329251

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Is1 is a predicate: is n = 1.0 ?
func Is1(n float64) bool {
	return math.Abs(1-n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// Round to ε.
func Round(n float64) float64 {
	return math.Round(n/Epsilon) * Epsilon
}

// Clip restricts n to the interval [lo, hi].
func Clip(n, lo, hi float64) float64 {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
