// Package polyn is for arithmetic with univariate polynomials and for finding
// their real roots.
/*
BSD 3-Clause License

Copyright (c) 2017–21, Norbert Pillmayer.

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
   list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
   this list of conditions and the following disclaimer in the documentation
   and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
   contributors may be used to endorse or promote products derived from
   this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package polyn

import (
	"bytes"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/strokegeom"
)

// T traces to the geometry tracer.
func T() tracing.Trace {
	return tracing.Select("geom")
}

// Polynomial is a type for univariate polynomials
//
//	c₀ + c₁x + c₂x² + … + cₙxⁿ
//
// We store the coefficients only, index i holding the coefficient of xⁱ.
type Polynomial []float64

// New creates a polynomial from its coefficients, constant term first.
//
//	polyn.New(8, 5, 2)   ⇒   P(x) = 8 + 5x + 2x²
func New(c ...float64) Polynomial {
	p := make(Polynomial, len(c))
	copy(p, c)
	return p
}

// Degree is the index of the highest non-zero coefficient. The zero
// polynomial has degree -1.
func (p Polynomial) Degree() int {
	for i := len(p) - 1; i >= 0; i-- {
		if !strokegeom.Is0(p[i]) {
			return i
		}
	}
	return -1
}

// Eval evaluates p at x (Horner scheme).
func (p Polynomial) Eval(x float64) float64 {
	var y float64
	for i := len(p) - 1; i >= 0; i-- {
		y = y*x + p[i]
	}
	return y
}

// Derivative returns p'.
func (p Polynomial) Derivative() Polynomial {
	if len(p) <= 1 {
		return Polynomial{0}
	}
	d := make(Polynomial, len(p)-1)
	for i := 1; i < len(p); i++ {
		d[i-1] = float64(i) * p[i]
	}
	return d
}

// Roots returns the real roots of p for degrees up to 3, in ascending order.
// Polynomials of higher degree are not supported and return nil.
func (p Polynomial) Roots() []float64 {
	var c [4]float64
	copy(c[:], p)
	switch p.Degree() {
	case 0, -1:
		return nil
	case 1:
		return []float64{-c[0] / c[1]}
	case 2:
		r, n := SolveQuadratic(c[0], c[1], c[2])
		return r[:n]
	case 3:
		r, n := SolveCubic(c[0], c[1], c[2], c[3])
		return r[:n]
	}
	T().Errorf("polynomial root finding not supported for degree %d", p.Degree())
	return nil
}

// String returns a polynomial as a (debugging) string, as in "8 + 5x + 2x^2".
func (p Polynomial) String() string {
	var s bytes.Buffer
	s.WriteString(fmt.Sprintf("%g", p.Eval(0)))
	for i := 1; i < len(p); i++ {
		c := p[i]
		if strokegeom.Is0(c) {
			continue
		}
		if c < 0 {
			s.WriteString(" - ")
			c = -c
		} else {
			s.WriteString(" + ")
		}
		if c != 1 {
			s.WriteString(fmt.Sprintf("%g", c))
		}
		if i == 1 {
			s.WriteString("x")
		} else {
			s.WriteString(fmt.Sprintf("x^%d", i))
		}
	}
	return s.String()
}
