package strokegeom

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/strokegeom/anim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumericBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := 0.000000008
	if !Is0(a) {
		t.Errorf("Expected a to be zero, is not")
	}
	assert.Equal(t, 0.1, Clip(0.01, 0.1, 1))
	assert.Equal(t, 1.0, Clip(7, 0.1, 1))
}

func TestPairBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := P(3, 2)
	q := P(-3, -2)
	r := p + q
	if !r.IsOrigin() {
		t.Errorf("Expected p + q to be (0,0), is %v", r)
	}
	assert.Equal(t, "(3,2)", p.String())
	assert.InDelta(t, 13.0, p.Dot(p), 1e-12)
	assert.InDelta(t, 1.0, P(1, 0).Cross(P(0, 1)), 1e-12)
	assert.InDelta(t, 25.0, P(0, 0).Dist2(P(3, 4)), 1e-12)
	assert.True(t, P(1, 1).Equal(P(0, 0).Mid(P(2, 2))))
	assert.True(t, P(0, 1).Equal(P(5, 0).Normal()))
	assert.True(t, P(1.5, 0).Equal(P(1, 0).Lerp(P(3, 0), 0.25)))
	assert.InDelta(t, 1.0, P(0, 1).DistanceToSegment(P(-1, 0), P(1, 0)), 1e-12)
	assert.InDelta(t, 2.0, P(2, 1).DistanceToSegment(P(-1, 0), P(1, 0)), 1e-12)
}

func TestTranslation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if !P(1, 1).Shifted(P(-1, -1)).IsOrigin() {
		t.Errorf("Expected (1,1) shifted (-1,-1) to be origin, is not")
	}
	if !P(1, 0).Rotated(180 * Deg2Rad).Shifted(P(1, 0)).IsOrigin() {
		t.Errorf("Expected result to be origin, is not")
	}
}

func TestCombine(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	m := Scaling(2, 2).Combine(Translation(P(1, 0)))
	assert.True(t, P(3, 0).Equal(m.Transform(P(1, 0))), "scale first, then translate")
	assert.True(t, Identity().IsIdentity())
	assert.False(t, m.IsIdentity())
	assert.True(t, P(0, 1).Equal(Rotation(math.Pi/2).Transform(P(1, 0))))
}

func TestConfigLoad(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cfg, err := LoadConfig(strings.NewReader("flatness: 64\nsnap:\n  distance: 5\n"))
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.Flatness)
	assert.Equal(t, 5.0, cfg.Snap.Distance)
	assert.Equal(t, 0.0625, cfg.Snap.MinRatio, "unset keys keep defaults")
	cfg, err = LoadConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
	_, err = LoadConfig(strings.NewReader("snap:\n  weight: 1.5\n"))
	assert.True(t, errors.Is(err, ErrInvalidConfig))
	_, err = LoadConfig(strings.NewReader("flatness: [1"))
	assert.True(t, errors.Is(err, ErrInvalidConfig))
	assert.Panics(t, func() { MustLoadConfig(strings.NewReader("flatness: 0")) })
}

func TestPairInterpolation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tr := anim.NullTrack().Key(0).Key(1).Key(2)
	pts := []Pair{P(0, 0), P(1, 2), P(2, 4)}
	p := anim.MustInterpolate(tr, pts, 0.5)
	assert.InDelta(t, 0.5, p.X(), 1e-9)
	assert.InDelta(t, 1.0, p.Y(), 1e-9)
	p = anim.MustInterpolate(tr, pts, 1.5)
	assert.InDelta(t, 1.5, p.X(), 1e-9)
	assert.InDelta(t, 3.0, p.Y(), 1e-9)
}
