package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/strokegeom"
	"github.com/npillmayer/strokegeom/raster"
	"github.com/npillmayer/strokegeom/stroke"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func seg(x0, y0, x1, y1 float64) *stroke.Line {
	return stroke.FromPoints(strokegeom.P(x0, y0), strokegeom.P(x1, y1))
}

func square(size float64) []*stroke.Line {
	return []*stroke.Line{
		seg(0, 0, size, 0),
		seg(size, 0, size, size),
		seg(size, size, 0, size),
		seg(0, size, 0, 0),
	}
}

func TestUnitSquareScenario(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	sq := square(1)
	a, b, c, d := sq[0], sq[1], sq[2], sq[3]
	g := New([]*stroke.Line{c, a, d.Reversed(), b.Reversed()}, 1)
	require.Equal(t, 4, g.N())
	assert.InDelta(t, 0.0, JunctionGap(g.Lines()), 1e-12)
	start := -1
	for i, l := range g.Lines() {
		if l.FirstPoint().Equal(strokegeom.P(0, 0)) {
			start = i
		}
	}
	require.GreaterOrEqual(t, start, 0)
	var firsts []strokegeom.Pair
	for i := 0; i < 4; i++ {
		firsts = append(firsts, g.Line((start+i)%4).FirstPoint())
	}
	forward := []strokegeom.Pair{strokegeom.P(0, 0), strokegeom.P(1, 0), strokegeom.P(1, 1), strokegeom.P(0, 1)}
	backward := []strokegeom.Pair{strokegeom.P(0, 0), strokegeom.P(0, 1), strokegeom.P(1, 1), strokegeom.P(1, 0)}
	assert.True(t, equalPairs(firsts, forward) || equalPairs(firsts, backward), "cycle %v", firsts)
}

func equalPairs(a, b []strokegeom.Pair) bool {
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return len(a) == len(b)
}

func shuffled(rnd *rand.Rand, lines []*stroke.Line) []*stroke.Line {
	out := append([]*stroke.Line(nil), lines...)
	rnd.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	for i := range out {
		if rnd.Intn(2) == 0 {
			out[i] = out[i].Reversed()
		}
	}
	return out
}

// edges collects the strokes as undirected edges between their endpoints.
func edges(lines []*stroke.Line) map[[2]strokegeom.Pair]bool {
	m := make(map[[2]strokegeom.Pair]bool)
	for _, l := range lines {
		p, q := l.FirstPoint(), l.LastPoint()
		if p.X() > q.X() || (p.X() == q.X() && p.Y() > q.Y()) {
			p, q = q, p
		}
		m[[2]strokegeom.Pair{p, q}] = true
	}
	return m
}

func TestReconstructionInvariance(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	var polygon []*stroke.Line
	const n = 9
	for i := 0; i < n; i++ {
		a0 := 2 * math.Pi * float64(i) / n
		a1 := 2 * math.Pi * float64(i+1) / n
		p0 := strokegeom.P(math.Round(100*math.Cos(a0)), math.Round(100*math.Sin(a0)))
		p1 := strokegeom.P(math.Round(100*math.Cos(a1)), math.Round(100*math.Sin(a1)))
		polygon = append(polygon, stroke.FromPoints(p0, p0.Mid(p1), p1))
	}
	want := edges(polygon)
	rnd := rand.New(rand.NewSource(42))
	for k := 0; k < 20; k++ {
		lines := Chain(shuffled(rnd, polygon))
		require.Len(t, lines, n)
		assert.InDelta(t, 0.0, JunctionGap(lines), 1e-9)
		assert.Equal(t, want, edges(lines))
	}
}

func TestRefinementNeverWorsens(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	rnd := rand.New(rand.NewSource(17))
	improvedOnce := false
	for k := 0; k < 30; k++ {
		var lines []*stroke.Line
		for i := 0; i < 8; i++ {
			p := strokegeom.P(rnd.Float64()*100, rnd.Float64()*100)
			q := strokegeom.P(rnd.Float64()*100, rnd.Float64()*100)
			lines = append(lines, stroke.FromPoints(p, q))
		}
		greedyGap := JunctionGap(orient(greedy(lines)))
		gap := JunctionGap(Chain(lines))
		assert.LessOrEqual(t, gap, greedyGap+1e-9)
		if gap < greedyGap-1e-6 {
			improvedOnce = true
		}
	}
	assert.True(t, improvedOnce, "2-opt should improve some random tours")
}

func TestRefineFlipsSingleStroke(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	sq := square(10)
	chain := []link{{line: sq[0]}, {line: sq[1], reversed: true}, {line: sq[2]}, {line: sq[3]}}
	assert.InDelta(t, 20, JunctionGap(orient(chain)), 1e-9)
	refine(chain)
	assert.False(t, chain[1].reversed)
	assert.InDelta(t, 0, JunctionGap(orient(chain)), 1e-9)
}

func TestSnap(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cfg := strokegeom.Defaults()
	a := stroke.FromPoints(strokegeom.P(0, 0), strokegeom.P(5, 0), strokegeom.P(10, 0))
	b := stroke.FromPoints(strokegeom.P(10, 0.5), strokegeom.P(10, 5), strokegeom.P(10, 10))
	out := Snap([]*stroke.Line{a, b}, 1, cfg)
	assert.Same(t, a, out[0], "closing junction is too wide")
	assert.True(t, out[1].FirstPoint().Equal(strokegeom.P(10, 0)))
	assert.True(t, out[1].Control(1).Point.Equal(strokegeom.P(10, 4.75)))
	assert.True(t, out[1].LastPoint().Equal(strokegeom.P(10, 10)))
	out = Snap([]*stroke.Line{a, b}, 100, cfg)
	assert.Same(t, b, out[1], "large scale shrinks the snap distance")
	// short strokes get a tighter threshold
	short := stroke.FromPoints(strokegeom.P(10, 1), strokegeom.P(10, 2))
	out = Snap([]*stroke.Line{a, short}, 1, cfg)
	assert.Same(t, short, out[1])
	short = stroke.FromPoints(strokegeom.P(10, 0.5), strokegeom.P(10, 1.5))
	out = Snap([]*stroke.Line{a, short}, 1, cfg)
	assert.True(t, out[1].FirstPoint().Equal(strokegeom.P(10, 0)))
	// a stroke doubling back is measured along its curve (about 2.3), not
	// along its control points (4.5)
	back := stroke.FromPoints(strokegeom.P(10, 1.7), strokegeom.P(10, 4.2), strokegeom.P(10, 2.2))
	assert.InDelta(t, 2.278, back.Length(cfg.Flatness), 1e-2)
	out = Snap([]*stroke.Line{a, back}, 1, cfg)
	assert.Same(t, back, out[1])
}

func TestSnapDecay(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	var pts []strokegeom.Pair
	for i := 0; i < 8; i++ {
		pts = append(pts, strokegeom.P(float64(i)*10, 1))
	}
	l := stroke.FromPoints(pts...)
	prev := stroke.FromPoints(strokegeom.P(-20, 0), strokegeom.P(0, 0))
	out := Snap([]*stroke.Line{prev, l}, 1, strokegeom.Defaults())
	want := []float64{0, 0.5, 0.75, 0.875, 1, 1, 1, 1}
	for i, y := range want {
		assert.InDelta(t, y, out[1].Control(i).Point.Y(), 1e-12, "control %d", i)
	}
}

func TestSingleAndEmpty(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	g := New(nil, 1)
	assert.True(t, g.IsEmpty())
	assert.True(t, g.Bounds().IsEmpty())
	_, ok := g.NearestBezier(strokegeom.P(0, 0))
	assert.False(t, ok)
	assert.Equal(t, -1, g.NearestPathEdge(strokegeom.P(0, 0)))
	assert.False(t, g.Contains(strokegeom.P(0, 0)))
	loop := stroke.FromPoints(strokegeom.P(0, 0), strokegeom.P(10, 0), strokegeom.P(10, 10),
		strokegeom.P(0, 10), strokegeom.P(0, 0.5))
	g = New([]*stroke.Line{loop}, 1)
	require.Equal(t, 1, g.N())
	assert.True(t, g.Line(0).FirstPoint().Equal(g.Line(0).LastPoint()))
	assert.Equal(t, 1.0, g.Line(0).Control(2).Pressure, "single strokes keep their pressure")
}

func TestQueries(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	g := FromOrderedLines(square(10))
	assert.True(t, g.Contains(strokegeom.P(5, 5)))
	assert.False(t, g.Contains(strokegeom.P(15, 5)))
	assert.InDelta(t, 10.0, g.Bounds().Width(), 1e-12)
	assert.InDelta(t, 100.0, math.Abs(g.Outline().SignedArea()), 1e-9)
	hit, ok := g.NearestBezier(strokegeom.P(5, -1))
	require.True(t, ok)
	assert.Equal(t, 0, hit.Line)
	assert.InDelta(t, 0.5, hit.T, 1e-9)
	assert.InDelta(t, 1.0, hit.Dist2, 1e-9)
	hit, _ = g.NearestBezier(strokegeom.P(11, 4))
	assert.Equal(t, 1, hit.Line)
	assert.Equal(t, 1, g.NearestPathEdge(strokegeom.P(9, -1)))
	assert.Equal(t, 0, g.NearestPathEdge(strokegeom.P(-1, 1)))
}

type recorder struct {
	moves, lines, quads, closes, fills, clips int
}

func (r *recorder) MoveTo(strokegeom.Pair) { r.moves++ }
func (r *recorder) LineTo(strokegeom.Pair) { r.lines++ }
func (r *recorder) QuadTo(_, _ strokegeom.Pair) { r.quads++ }
func (r *recorder) ClosePath() { r.closes++ }
func (r *recorder) Fill() { r.fills++ }
func (r *recorder) Clip() { r.clips++ }

func TestRendering(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	g := FromOrderedLines(square(10))
	r := &recorder{}
	g.FillPath(r)
	assert.Equal(t, 1, r.moves)
	assert.Equal(t, 3, r.lines)
	assert.Equal(t, 4, r.quads)
	assert.Equal(t, 1, r.closes)
	assert.Equal(t, 1, r.fills)
	g.Clip(r)
	assert.Equal(t, 1, r.clips)
	c := raster.NewCanvas(20, 20)
	c.SetTransform(strokegeom.Translation(strokegeom.P(5, 5)))
	g.FillPath(c)
	assert.Equal(t, uint8(0xff), c.Coverage(10, 10))
	assert.Equal(t, uint8(0), c.Coverage(2, 2))
	c = raster.NewCanvas(20, 20)
	g.Draw(2, c)
	assert.Equal(t, uint8(0xff), c.Coverage(5, 0), "ribbon along the bottom edge")
	assert.Equal(t, uint8(0), c.Coverage(5, 2))
	assert.Equal(t, uint8(0), c.Coverage(5, 5))
}

func TestConfiguredStrokeWidth(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cfg := strokegeom.Defaults()
	cfg.StrokeWidth = 6
	cfg.AutoPressure = 1
	g := NewWithConfig(square(10), 1, cfg)
	assert.Equal(t, 6.0, g.StrokeWidth())
	assert.Equal(t, strokegeom.Defaults().StrokeWidth, FromOrderedLines(square(10)).StrokeWidth())
	edited := RemoveLine([]*Geometry{g}, 0)
	assert.Equal(t, 6.0, edited[0].StrokeWidth(), "edits keep the width")
	c := raster.NewCanvas(20, 20)
	g.Draw(0, c)
	assert.Equal(t, uint8(0xff), c.Coverage(5, 2), "ribbon of half width 3")
	assert.Equal(t, uint8(0), c.Coverage(5, 5))
}

func TestBatch(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gs := []*Geometry{FromOrderedLines(square(1)), FromOrderedLines(square(2))}
	out := InsertLine(gs, 4, seg(0, 0, 0, 0))
	assert.Equal(t, 5, out[0].N())
	assert.Equal(t, 5, out[1].N())
	assert.Equal(t, 4, gs[0].N(), "inputs are not modified")
	out = RemoveLine(gs, 0)
	assert.Equal(t, 3, out[1].N())
	assert.True(t, out[1].Line(0).FirstPoint().Equal(strokegeom.P(2, 0)))
	out = SplitControl(gs, 0, 0, 0.5)
	assert.Equal(t, 3, out[0].Line(0).Count())
	assert.True(t, out[1].Line(0).Control(1).Point.Equal(strokegeom.P(1, 0)))
	out = RemoveControl(out, 0, 1)
	assert.Equal(t, 2, out[0].Line(0).Count())
	out = ReplaceControl(gs, 1, 0, func(c stroke.Control) stroke.Control {
		c.Pressure = 0.5
		return c
	})
	assert.Equal(t, 0.5, out[0].Line(1).Control(0).Pressure)
	assert.Equal(t, 0.5, out[1].Line(1).Control(0).Pressure)
	assert.Panics(t, func() { RemoveLine(gs, 4) })
}

func TestInterpolation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	g1, g2 := FromOrderedLines(square(2)), FromOrderedLines(square(4))
	m := g1.Linear(g2, 0.5)
	require.Equal(t, 4, m.N())
	assert.True(t, m.Line(1).FirstPoint().Equal(strokegeom.P(3, 0)))
	g3 := FromOrderedLines(square(4)[:3])
	assert.Same(t, g1, g1.Linear(g3, 0.5), "mismatched geometries hold")
}

func TestYAML(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	g := FromOrderedLines(square(3))
	out, err := yaml.Marshal(g)
	require.NoError(t, err)
	var back Geometry
	require.NoError(t, yaml.Unmarshal(out, &back))
	require.Equal(t, 4, back.N())
	for i := 0; i < 4; i++ {
		assert.Equal(t, g.Line(i).Controls(), back.Line(i).Controls())
	}
	assert.True(t, back.Contains(strokegeom.P(1, 1)))
}
