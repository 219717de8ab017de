package geometry

import (
	"math"

	"github.com/npillmayer/strokegeom"
	"github.com/npillmayer/strokegeom/stroke"
)

// link is a stroke of the chain together with its traversal direction.
type link struct {
	line     *stroke.Line
	reversed bool
}

func (k link) start() strokegeom.Pair {
	if k.reversed {
		return k.line.LastPoint()
	}
	return k.line.FirstPoint()
}

func (k link) end() strokegeom.Pair {
	if k.reversed {
		return k.line.FirstPoint()
	}
	return k.line.LastPoint()
}

// greedy chains strokes by repeatedly appending the stroke with the endpoint
// nearest to the current tail, starting with the first stroke.
func greedy(lines []*stroke.Line) []link {
	if len(lines) == 0 {
		return nil
	}
	rest := make([]*stroke.Line, len(lines)-1)
	copy(rest, lines[1:])
	chain := make([]link, 1, len(lines))
	chain[0] = link{line: lines[0]}
	for len(rest) > 0 {
		tail := chain[len(chain)-1].end()
		best, bestD, rev := 0, math.Inf(1), false
		for i, l := range rest {
			if d := tail.Dist2(l.FirstPoint()); d < bestD {
				best, bestD, rev = i, d, false
			}
			if d := tail.Dist2(l.LastPoint()); d < bestD {
				best, bestD, rev = i, d, true
			}
		}
		tracer().Debugf("greedy: append stroke with gap %.4g, reversed=%v", math.Sqrt(bestD), rev)
		chain = append(chain, link{line: rest[best], reversed: rev})
		rest = append(rest[:best], rest[best+1:]...)
	}
	return chain
}

// refine improves a closed chain by 2-opt moves: reversing the sub-chain
// between positions i and j (flipping the direction of each stroke in it)
// replaces the junctions end(i−1)→start(i) and end(j)→start(j+1) by
// end(i−1)→end(j) and start(i)→start(j+1). A move is taken if it strictly
// shortens the sum of both junctions. With i = j the move flips a single
// stroke.
//
// The number of passes is bounded by 10000/n², which caps the total work at
// about 10000 junction comparisons.
func refine(chain []link) {
	n := len(chain)
	if n < 3 {
		return
	}
	passes := 10000 / (n * n)
	for pass := 0; pass < passes; pass++ {
		improved := false
		for i := 0; i < n; i++ {
			for j := i; j < n; j++ {
				if i == 0 && j == n-1 {
					continue // reversing the whole cycle changes nothing
				}
				prev, next := chain[(i-1+n)%n], chain[(j+1)%n]
				before := prev.end().Dist(chain[i].start()) + chain[j].end().Dist(next.start())
				after := prev.end().Dist(chain[j].end()) + chain[i].start().Dist(next.start())
				if after < before-strokegeom.Epsilon {
					reverseLinks(chain[i : j+1])
					improved = true
				}
			}
		}
		tracer().Debugf("2-opt pass %d of %d, improved=%v", pass+1, passes, improved)
		if !improved {
			break
		}
	}
}

func reverseLinks(links []link) {
	for i, j := 0, len(links)-1; i < j; i, j = i+1, j-1 {
		links[i], links[j] = links[j], links[i]
	}
	for i := range links {
		links[i].reversed = !links[i].reversed
	}
}

// orient applies the traversal directions.
func orient(chain []link) []*stroke.Line {
	lines := make([]*stroke.Line, len(chain))
	for i, k := range chain {
		lines[i] = k.line
		if k.reversed {
			lines[i] = k.line.Reversed()
		}
	}
	return lines
}

// Chain orders and orients strokes into a single cycle: greedy nearest
// neighbour chaining followed by a bounded 2-opt refinement. Each stroke of the
// result is read head to tail.
func Chain(lines []*stroke.Line) []*stroke.Line {
	if len(lines) < 2 {
		return append([]*stroke.Line(nil), lines...)
	}
	chain := greedy(lines)
	refine(chain)
	return orient(chain)
}

// JunctionGap sums the distances between the last point of each stroke and the
// first point of its successor, including the closing junction.
func JunctionGap(lines []*stroke.Line) float64 {
	var gap float64
	for i, l := range lines {
		prev := lines[(i-1+len(lines))%len(lines)]
		gap += prev.LastPoint().Dist(l.FirstPoint())
	}
	return gap
}

// Snap pulls the first point of each stroke onto the last point of its
// predecessor if both are close. The threshold for the squared gap is
//
//	Distance² / scale · clip(Length / VertexLineLength, LengthRatioFloor, 1)
//
// so short strokes snap only over shorter gaps. Stroke lengths are measured
// along the curve, sampled with cfg.Flatness. The correction moves the first
// control point fully and decays by Weight for each following control point,
// until the ratio drops to MinRatio. The last control point of a stroke is
// never moved.
func Snap(lines []*stroke.Line, scale float64, config strokegeom.Config) []*stroke.Line {
	if scale <= 0 {
		scale = 1
	}
	cfg := config.Snap
	n := len(lines)
	out := make([]*stroke.Line, n)
	copy(out, lines)
	vd := cfg.Distance * cfg.Distance / scale
	for i, l := range lines {
		prev := lines[(i-1+n)%n]
		dp := prev.LastPoint() - l.FirstPoint()
		if dp == 0 {
			continue
		}
		ratio := strokegeom.Clip(l.Length(config.Flatness)/cfg.VertexLineLength, cfg.LengthRatioFloor, 1)
		if d2 := dp.Dot(dp); d2 >= vd*ratio {
			tracer().Debugf("snap: stroke %d keeps gap %.4g", i, math.Sqrt(d2))
			continue
		}
		cs := l.Controls()
		dd := 1.0
		for j := 0; j < len(cs)-1 && dd > cfg.MinRatio; j++ {
			cs[j].Point += dp.Scaled(dd)
			dd *= cfg.Weight
		}
		tracer().Debugf("snap: stroke %d closes gap %v", i, dp)
		out[i] = stroke.New(cs...)
	}
	return out
}
