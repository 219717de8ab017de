package bezier

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/strokegeom"
	"github.com/stretchr/testify/assert"
)

var arch = Bezier2{P0: strokegeom.P(0, 0), CP: strokegeom.P(5, 10), P1: strokegeom.P(10, 0)}

func assertPair(t *testing.T, want, got strokegeom.Pair, delta float64) {
	t.Helper()
	assert.InDelta(t, want.X(), got.X(), delta, "x of %v vs %v", want, got)
	assert.InDelta(t, want.Y(), got.Y(), delta, "y of %v vs %v", want, got)
}

func randomPair(rnd *rand.Rand) strokegeom.Pair {
	return strokegeom.P(rnd.Float64()*200-100, rnd.Float64()*200-100)
}

func TestAABB(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	box := EmptyAABB()
	assert.True(t, box.IsEmpty())
	assert.Equal(t, 0.0, box.Width())
	box = AABBFromRect(strokegeom.P(4, 3), strokegeom.P(0, 0))
	assert.Equal(t, NewAABB(0, 4, 0, 3), box)
	assert.True(t, box.Contains(strokegeom.P(4, 3)))
	assert.False(t, box.Contains(strokegeom.P(4.1, 3)))
	assert.True(t, box.Intersects(NewAABB(4, 5, 3, 4)), "touching boxes intersect")
	assert.False(t, box.Intersects(NewAABB(4.5, 5, 0, 1)))
	u := box.Union(NewAABB(-1, 1, 5, 6))
	assert.Equal(t, NewAABB(-1, 4, 0, 6), u)
	assertPair(t, strokegeom.P(2, 1.5), box.Midpoint(), 1e-12)
	assert.Equal(t, NewAABB(-1, 5, -1, 4), box.Inset(-1))
}

func TestDeCasteljauConsistency(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		b := Bezier2{P0: randomPair(rnd), CP: randomPair(rnd), P1: randomPair(rnd)}
		s := 0.05 + rnd.Float64()*0.9
		left, right := b.Split(s)
		assertPair(t, b.Position(s), left.P1, 1e-9)
		assertPair(t, b.Position(s), right.P0, 1e-9)
		for _, u := range []float64{0, 0.25, 0.5, 0.75, 1} {
			assertPair(t, b.Position(u*s), left.Position(u), 1e-9)
			assertPair(t, b.Position(s+u*(1-s)), right.Position(u), 1e-9)
		}
	}
}

func TestClip(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := arch.Clip(0.2, 0.7)
	assertPair(t, arch.Position(0.2), c.P0, 1e-9)
	assertPair(t, arch.Position(0.7), c.P1, 1e-9)
	assertPair(t, arch.Position(0.45), c.Position(0.5), 1e-9)
	r := arch.Clip(0.7, 0.2)
	assertPair(t, arch.Position(0.7), r.P0, 1e-9)
	assertPair(t, arch.Position(0.2), r.P1, 1e-9)
	assert.True(t, arch.Clip(0, 0).IsPoint())
	full := arch.Clip(0, 1)
	assertPair(t, arch.CP, full.CP, 1e-12)
}

func TestBounds(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.InDelta(t, 10.0, arch.BoundingBox().MaxY, 1e-12)
	tight := arch.Bounds()
	assert.InDelta(t, 5.0, tight.MaxY, 1e-12)
	assert.InDelta(t, 0.0, tight.MinX, 1e-12)
	assert.InDelta(t, 10.0, tight.MaxX, 1e-12)
	c := Elevate(arch)
	assert.InDelta(t, 5.0, c.Bounds().MaxY, 1e-9)
}

func TestLinearLength(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	l := Linear(strokegeom.P(0, 0), strokegeom.P(10, 0))
	assert.True(t, l.IsLinear())
	assert.InDelta(t, 10.0, l.Length(DefaultFlatness), 1e-9)
	assert.InDelta(t, 0.5, l.T(5, DefaultFlatness), 1e-9)
	assert.Equal(t, 0.0, l.T(-1, 0))
	assert.Equal(t, 1.0, l.T(11, 0))
	assert.InDelta(t, 0.0, l.TangentAngle(0.3), 1e-12)
}

func TestArcLengthMonotone(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	total := arch.Length(DefaultFlatness)
	assert.Greater(t, total, math.Sqrt(50)*2, "longer than the chords to the apex")
	prev := -1.0
	for l := 0.0; l <= total; l += total / 20 {
		s := arch.T(l, DefaultFlatness)
		assert.GreaterOrEqual(t, s, prev)
		prev = s
		assert.InDelta(t, l, arch.Clip(0, s).Length(DefaultFlatness), total/100)
	}
}

func TestNearest(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s, d := arch.Nearest(arch.Position(0.3))
	assert.InDelta(t, 0.3, s, 1e-6)
	assert.InDelta(t, 0.0, d, 1e-9)
	s, d = arch.Nearest(strokegeom.P(5, 10))
	assert.InDelta(t, 0.5, s, 1e-9)
	assert.InDelta(t, 25.0, d, 1e-9)
	s, d = arch.Nearest(strokegeom.P(-3, -4))
	assert.Equal(t, 0.0, s)
	assert.InDelta(t, 25.0, d, 1e-9)
	l := Linear(strokegeom.P(0, 0), strokegeom.P(10, 0))
	s, d = l.Nearest(strokegeom.P(3, 4))
	assert.InDelta(t, 0.3, s, 1e-12)
	assert.InDelta(t, 16.0, d, 1e-12)
	c := Elevate(arch)
	s, d = c.Nearest(strokegeom.P(5, 10))
	assert.InDelta(t, 0.5, s, 1e-6)
	assert.InDelta(t, 25.0, d, 1e-6)
}

func TestNearestMatchesSampling(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	rnd := rand.New(rand.NewSource(3))
	for i := 0; i < 30; i++ {
		b := Bezier2{P0: randomPair(rnd), CP: randomPair(rnd), P1: randomPair(rnd)}
		p := randomPair(rnd)
		_, d := b.Nearest(p)
		best := math.Inf(1)
		for k := 0; k <= 1000; k++ {
			best = math.Min(best, b.Position(float64(k)/1000).Dist2(p))
		}
		assert.LessOrEqual(t, d, best+1e-6)
	}
}

func TestMaxDistance2(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.InDelta(t, 225.0, arch.MaxDistance2(strokegeom.P(5, -10)), 1e-3)
	assert.InDelta(t, 100.0, arch.MaxDistance2(strokegeom.P(0, 0)), 1e-9)
}

func TestSingleCrossing(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := Linear(strokegeom.P(0, 0), strokegeom.P(10, 0))
	b := Linear(strokegeom.P(3, -1), strokegeom.P(3, 2))
	is := a.Intersections(b)
	if assert.Len(t, is, 1) {
		assert.InDelta(t, 0.3, is[0].T, 1e-5)
		assert.InDelta(t, 1.0/3, is[0].OtherT, 1e-5)
		assert.True(t, is[0].IsLeft, "b runs upwards, crossing a from right to left")
		assertPair(t, strokegeom.P(3, 0), is[0].Point, 1e-5)
	}
	rev := b.Intersections(a)
	if assert.Len(t, rev, 1) {
		assert.InDelta(t, 1.0/3, rev[0].T, 1e-5)
		assert.False(t, rev[0].IsLeft)
	}
	assert.True(t, a.Intersects(b))
	assert.False(t, a.Intersects(Linear(strokegeom.P(0, 1), strokegeom.P(10, 1))))
	assert.Empty(t, a.Intersections(Linear(strokegeom.P(20, -1), strokegeom.P(20, 1))))
}

func TestDoubleCrossing(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	line := Linear(strokegeom.P(0, 2), strokegeom.P(10, 2))
	is := arch.Intersections(line)
	if assert.Len(t, is, 2) {
		sort.Slice(is, func(i, j int) bool { return is[i].T < is[j].T })
		r := math.Sqrt(0.6)
		assert.InDelta(t, (1-r)/2, is[0].T, 1e-5)
		assert.InDelta(t, (1+r)/2, is[1].T, 1e-5)
		assert.NotEqual(t, is[0].IsLeft, is[1].IsLeft)
	}
	c := Elevate(arch)
	assert.Len(t, c.Intersections(Elevate(line)), 2)
}

func TestIntersectionSymmetry(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	rnd := rand.New(rand.NewSource(99))
	for i := 0; i < 500; i++ {
		a := Bezier2{P0: randomPair(rnd), CP: randomPair(rnd), P1: randomPair(rnd)}
		b := Bezier2{P0: randomPair(rnd), CP: randomPair(rnd), P1: randomPair(rnd)}
		ab, ba := a.Intersections(b), b.Intersections(a)
		if !assert.Equal(t, len(ab), len(ba), "pair %d: %v / %v", i, a, b) {
			continue
		}
		assert.Equal(t, a.Intersects(b), b.Intersects(a), "pair %d", i)
		assert.Equal(t, len(ab) > 0, a.Intersects(b), "pair %d", i)
		sort.Slice(ba, func(m, n int) bool { return ba[m].OtherT < ba[n].OtherT })
		for k := range ab {
			assert.InDelta(t, ab[k].T, ba[k].OtherT, 1e-5, "pair %d", i)
			assert.NotEqual(t, ab[k].IsLeft, ba[k].IsLeft, "pair %d", i)
		}
	}
}

func TestCrossingReportedOnce(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := Bezier2{P0: strokegeom.P(60.3, 94.4), CP: strokegeom.P(-50.2, -38.6), P1: strokegeom.P(29.2, 2.6)}
	b := Bezier2{P0: strokegeom.P(66.3, -5.5), CP: strokegeom.P(32.4, 70.4), P1: strokegeom.P(5.0, 22.6)}
	ab := a.Intersections(b)
	if assert.Len(t, ab, 1) {
		assert.InDelta(t, 0.270507, ab[0].T, 1e-5)
		assert.InDelta(t, 0.831581, ab[0].OtherT, 1e-5)
		assertPair(t, a.Position(ab[0].T), ab[0].Point, 1e-5)
		assertPair(t, b.Position(ab[0].OtherT), ab[0].Point, 1e-5)
	}
	ba := b.Intersections(a)
	if assert.Len(t, ba, 1) {
		assert.InDelta(t, 0.270507, ba[0].OtherT, 1e-5)
	}
}

func TestOverlapTerminates(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	l := Linear(strokegeom.P(0, 0), strokegeom.P(10, 0))
	assert.Empty(t, l.Intersections(l), "collinear curves touch but never cross")
	assert.True(t, l.Intersects(l))
}

func TestTransformed(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	m := strokegeom.Translation(strokegeom.P(1, 2))
	b := arch.Transformed(m)
	assertPair(t, arch.Position(0.4)+strokegeom.P(1, 2), b.Position(0.4), 1e-12)
	c := Elevate(arch).Transformed(m)
	assertPair(t, b.Position(0.4), c.Position(0.4), 1e-9)
	assertPair(t, arch.Position(0.4), arch.Reversed().Position(0.6), 1e-12)
}
