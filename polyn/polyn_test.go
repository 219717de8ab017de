package polyn

import (
	"math"
	"math/rand"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestPolynEval(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := New(8, 5, 2)
	assert.InDelta(t, 8.0, p.Eval(0), 1e-12)
	assert.InDelta(t, 15.0, p.Eval(1), 1e-12)
	assert.Equal(t, 2, p.Degree())
	assert.Equal(t, "8 + 5x + 2x^2", p.String())
	d := p.Derivative()
	assert.InDelta(t, 5.0, d.Eval(0), 1e-12)
	assert.InDelta(t, 9.0, d.Eval(1), 1e-12)
	assert.Equal(t, -1, New(0, 0).Degree())
	assert.Equal(t, "1 - x^3", New(1, 0, 0, -1).String())
}

func TestSolveQuadratic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	r, n := SolveQuadratic(-6, 1, 1) // (x+3)(x-2)
	assert.Equal(t, 2, n)
	assert.InDelta(t, -3.0, r[0], 1e-12)
	assert.InDelta(t, 2.0, r[1], 1e-12)
	_, n = SolveQuadratic(1, 0, 1)
	assert.Equal(t, 0, n)
	r, n = SolveQuadratic(4, 2, 0)
	assert.Equal(t, 1, n)
	assert.InDelta(t, -2.0, r[0], 1e-12)
	r, n = SolveQuadratic(1, -2, 1)
	assert.Equal(t, 1, n)
	assert.InDelta(t, 1.0, r[0], 1e-12)
}

func TestSolveCubicThreeRoots(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// (x-1)(x-2)(x-3) = x³ - 6x² + 11x - 6, discriminant < 0
	r, n := SolveCubic(-6, 11, -6, 1)
	assert.Equal(t, 3, n)
	assert.InDelta(t, 1.0, r[0], 1e-9)
	assert.InDelta(t, 2.0, r[1], 1e-9)
	assert.InDelta(t, 3.0, r[2], 1e-9)
}

func TestSolveCubicOneRoot(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// x³ + x + 2 = (x+1)(x² - x + 2), discriminant > 0
	r, n := SolveCubic(2, 1, 0, 1)
	assert.Equal(t, 1, n)
	assert.InDelta(t, -1.0, r[0], 1e-9)
	// x³ - 8
	r, n = SolveCubic(-8, 0, 0, 1)
	assert.Equal(t, 1, n)
	assert.InDelta(t, 2.0, r[0], 1e-9)
}

func TestSolveCubicDegenerate(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	r, n := SolveCubic(-6, 1, 1, 0)
	assert.Equal(t, 2, n)
	assert.InDelta(t, -3.0, r[0], 1e-12)
	r, n = SolveCubic(0, 0, 0, 2) // triple root 0
	assert.GreaterOrEqual(t, n, 1)
	assert.InDelta(t, 0.0, r[0], 1e-9)
}

func TestSolveCubicRandomRoots(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		a, b, c := rnd.Float64()*10-5, rnd.Float64()*10-5, rnd.Float64()*10-5
		k := 0.5 + rnd.Float64()*3
		p := New(-a*b*c*k, (a*b+a*c+b*c)*k, -(a+b+c)*k, k)
		roots, n := SolveCubic(p[0], p[1], p[2], p[3])
		for j := 0; j < n; j++ {
			assert.InDelta(t, 0.0, p.Eval(roots[j]), 1e-6, "root %g of %s", roots[j], p)
		}
		for _, want := range []float64{a, b, c} {
			found := false
			for j := 0; j < n; j++ {
				if math.Abs(roots[j]-want) < 1e-3 {
					found = true
				}
			}
			// near-double roots may merge into one
			if !found && math.Min(math.Abs(a-b), math.Min(math.Abs(b-c), math.Abs(a-c))) > 0.05 {
				t.Errorf("root %g of %s not found in %v", want, p, roots[:n])
			}
		}
	}
}

func TestRootsIn(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := New(-6, 11, -6, 1)
	in := p.RootsIn(0, 2.5)
	assert.Len(t, in, 2)
	assert.Nil(t, New(3).Roots())
	assert.InDelta(t, -1.5, New(3, 2).Roots()[0], 1e-12)
}
