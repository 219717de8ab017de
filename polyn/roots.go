package polyn

import (
	"math"
	"sort"
)

// SolveQuadratic finds the real roots of c0 + c1 x + c2 x² = 0.
// It returns the roots in ascending order and their count.
//
// If c2 vanishes the equation is solved as a linear one. In the degenerate
// case where all coefficients are zero a single root 0 is returned.
func SolveQuadratic(c0, c1, c2 float64) ([2]float64, int) {
	if c2 == 0 || math.IsInf(c0/c2, 0) || math.IsInf(c1/c2, 0) {
		if c1 == 0 {
			if c0 == 0 {
				return [2]float64{0}, 1
			}
			return [2]float64{}, 0
		}
		return [2]float64{-c0 / c1}, 1
	}
	disc := c1*c1 - 4*c2*c0
	if disc < 0 {
		return [2]float64{}, 0
	}
	if disc == 0 {
		return [2]float64{-c1 / (2 * c2)}, 1
	}
	// avoid cancellation: q = -(c1 + sign(c1)·√disc)/2
	q := -0.5 * (c1 + math.Copysign(math.Sqrt(disc), c1))
	r1, r2 := q/c2, c0/q
	if q == 0 {
		r2 = -r1
	}
	if r1 > r2 {
		r1, r2 = r2, r1
	}
	return [2]float64{r1, r2}, 2
}

// SolveCubic finds the real roots of c0 + c1 x + c2 x² + c3 x³ = 0.
// It returns the roots in ascending order and their count.
//
// The cubic is reduced to its depressed form y³ + py + q = 0 with x = y − c2/(3c3).
// The sign of the discriminant D = (q/2)² + (p/3)³ selects the branch:
// for D > 0 there is one real root (Cardano's formula), for D = 0 a double
// root, for D < 0 three distinct real roots found trigonometrically. Roots are
// polished by Newton steps on the original cubic.
//
// A vanishing cubic coefficient falls back to SolveQuadratic.
func SolveCubic(c0, c1, c2, c3 float64) ([3]float64, int) {
	scale := math.Abs(c0) + math.Abs(c1) + math.Abs(c2)
	if c3 == 0 || math.Abs(c3) <= 1e-12*scale {
		r, n := SolveQuadratic(c0, c1, c2)
		return [3]float64{r[0], r[1]}, n
	}
	a, b, c := c2/c3, c1/c3, c0/c3
	shift := a / 3
	p := b - a*a/3
	q := 2*a*a*a/27 - a*b/3 + c
	disc := q*q/4 + p*p*p/27
	var roots [3]float64
	var n int
	switch {
	case disc > 0:
		sq := math.Sqrt(disc)
		roots[0] = math.Cbrt(-q/2+sq) + math.Cbrt(-q/2-sq) - shift
		n = 1
	case disc == 0:
		if p == 0 {
			roots[0] = -shift
			n = 1
		} else {
			roots[0] = 3*q/p - shift
			roots[1] = -3*q/(2*p) - shift
			n = 2
		}
	default: // p < 0 here
		r := 2 * math.Sqrt(-p/3)
		arg := 3 * q / (2 * p) * math.Sqrt(-3/p)
		phi := math.Acos(math.Max(-1, math.Min(1, arg))) / 3
		for k := 0; k < 3; k++ {
			roots[k] = r*math.Cos(phi-2*math.Pi*float64(k)/3) - shift
		}
		n = 3
	}
	poly := Polynomial{c0, c1, c2, c3}
	deriv := poly.Derivative()
	for i := 0; i < n; i++ {
		roots[i] = polish(poly, deriv, roots[i])
	}
	sort.Float64s(roots[:n])
	return roots, n
}

// polish improves a root estimate by a few Newton steps, keeping the estimate
// if a step makes things worse.
func polish(p, dp Polynomial, x float64) float64 {
	fx := p.Eval(x)
	for i := 0; i < 3 && fx != 0; i++ {
		d := dp.Eval(x)
		if d == 0 {
			break
		}
		nx := x - fx/d
		nfx := p.Eval(nx)
		if math.Abs(nfx) >= math.Abs(fx) {
			break
		}
		x, fx = nx, nfx
	}
	return x
}

// RootsIn returns the roots of p within [lo, hi], in ascending order.
func (p Polynomial) RootsIn(lo, hi float64) []float64 {
	var in []float64
	for _, r := range p.Roots() {
		if r >= lo && r <= hi {
			in = append(in, r)
		}
	}
	return in
}
