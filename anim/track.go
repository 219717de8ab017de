package anim

import (
	"fmt"
	"math"
	"strings"
)

// Track is an ordered sequence of keyframes. To construct a track, start with
// NullTrack() and extend it:
//
//	tr := NullTrack().Key(0).Key(1).Kind(Linear).Key(2).LoopEnd()
//
// Kind, Ease, LoopBegin, LoopEnd and Sub modify the most recently added keyframe.
type Track struct {
	keys []Keyframe
}

// NullTrack creates an empty track, to be extended by subsequent builder calls.
func NullTrack() *Track {
	return &Track{}
}

// Key appends a spline keyframe at the given time.
// Part of builder functionality.
func (tr *Track) Key(time float64) *Track {
	tr.keys = append(tr.keys, Keyframe{Time: time})
	return tr
}

// Keyframe appends a fully specified keyframe.
// Part of builder functionality.
func (tr *Track) Keyframe(k Keyframe) *Track {
	tr.keys = append(tr.keys, k)
	return tr
}

func (tr *Track) lastKey() *Keyframe {
	if len(tr.keys) == 0 {
		panic("cannot modify keyframe of empty track")
	}
	return &tr.keys[len(tr.keys)-1]
}

// Kind sets the interpolation kind of the last keyframe.
// Part of builder functionality.
func (tr *Track) Kind(i Interpolation) *Track {
	tr.lastKey().Interpolation = i
	return tr
}

// Ease sets the easing of the last keyframe.
// Part of builder functionality.
func (tr *Track) Ease(e Easing) *Track {
	tr.lastKey().Easing = e
	return tr
}

// LoopBegin marks the last keyframe as start of a looped section.
// Part of builder functionality.
func (tr *Track) LoopBegin() *Track {
	tr.lastKey().Loop = LoopBegin
	return tr
}

// LoopEnd marks the last keyframe as end of a looped section.
// Part of builder functionality.
func (tr *Track) LoopEnd() *Track {
	tr.lastKey().Loop = LoopEnd
	return tr
}

// Sub labels the last keyframe as a sub keyframe.
// Part of builder functionality.
func (tr *Track) Sub() *Track {
	tr.lastKey().Label = Sub
	return tr
}

// N returns the number of keyframes.
func (tr *Track) N() int {
	return len(tr.keys)
}

// K returns keyframe i.
func (tr *Track) K(i int) Keyframe {
	return tr.keys[i]
}

// Validate checks that the track has keyframes with strictly increasing times.
func (tr *Track) Validate() error {
	if tr == nil || len(tr.keys) == 0 {
		return ErrTooFewKeyframes
	}
	for i := 1; i < len(tr.keys); i++ {
		if !(tr.keys[i].Time > tr.keys[i-1].Time) {
			return fmt.Errorf("%w: key %d at %g follows %g", ErrUnsortedKeyframes,
				i, tr.keys[i].Time, tr.keys[i-1].Time)
		}
	}
	return nil
}

func (tr *Track) String() string {
	var b strings.Builder
	for i, k := range tr.keys {
		if i > 0 {
			b.WriteString(" .. ")
		}
		b.WriteString(k.String())
		switch k.Loop {
		case LoopBegin:
			b.WriteString("[")
		case LoopEnd:
			b.WriteString("]")
		}
	}
	return b.String()
}

// Segment describes how to blend values at a queried time.
type Segment struct {
	Rule       Interpolation // Spline, Linear or Step; Bound is resolved to Spline
	I0, I1     int           // keyframes enclosing the queried time
	Prev, Next int           // spline neighbours of I0 and I1, -1 if absent
	T          float64       // eased segment parameter in [0,1]
	MS         MonosplineX   // valid for Rule == Spline
}

// LocalTime maps time into the track's looped sections. Past a LoopEnd
// keyframe, time replays the section since the preceding LoopBegin keyframe
// until the next keyframe is reached.
func (tr *Track) LocalTime(time float64) float64 {
	begin := -1
	for i, k := range tr.keys {
		switch k.Loop {
		case LoopBegin:
			begin = i
		case LoopEnd:
			if begin < 0 || time <= k.Time {
				continue
			}
			if i+1 < len(tr.keys) && time >= tr.keys[i+1].Time {
				begin = -1
				continue
			}
			t0 := tr.keys[begin].Time
			d := k.Time - t0
			if d <= 0 {
				return time
			}
			return t0 + math.Mod(time-k.Time, d)
		}
	}
	return time
}

// Segment selects the keyframes and blend rule for a queried time.
// The blend rule is taken from the later keyframe, the easing from the earlier one.
// Outside the keyframe range the nearest keyframe value is held.
//
// Segment panics for tracks without keyframes.
func (tr *Track) Segment(time float64) Segment {
	n := len(tr.keys)
	if n == 0 {
		panic("cannot select segment of empty track")
	}
	time = tr.LocalTime(time)
	hold := func(i int) Segment {
		return Segment{Rule: Step, I0: i, I1: i, Prev: -1, Next: -1}
	}
	if time <= tr.keys[0].Time {
		return hold(0)
	}
	i0 := n - 1
	for i := 1; i < n; i++ {
		if time < tr.keys[i].Time {
			i0 = i - 1
			break
		}
	}
	if i0 == n-1 {
		return hold(n - 1)
	}
	i1 := i0 + 1
	k0, k1 := tr.keys[i0], tr.keys[i1]
	seg := Segment{Rule: k1.Interpolation, I0: i0, I1: i1, Prev: -1, Next: -1}
	lin := (time - k0.Time) / (k1.Time - k0.Time)
	seg.T = k0.Easing.Convert(lin)
	switch k1.Interpolation {
	case Step:
		seg.T = 0
		return seg
	case Linear:
		return seg
	}
	if i0 > 0 && (k1.Interpolation == Spline || k0.Interpolation.isSpline()) {
		seg.Prev = i0 - 1
	}
	if i1+1 < n && (k1.Interpolation == Spline || tr.keys[i1+1].Interpolation.isSpline()) {
		seg.Next = i1 + 1
	}
	seg.Rule = Spline
	x := k0.Time + seg.T*(k1.Time-k0.Time)
	switch {
	case seg.Prev >= 0 && seg.Next >= 0:
		seg.MS = NewMonosplineX(tr.keys[seg.Prev].Time, k0.Time, k1.Time, tr.keys[seg.Next].Time, x)
	case seg.Next >= 0:
		seg.MS = FirstMonosplineX(k0.Time, k1.Time, tr.keys[seg.Next].Time, x)
	case seg.Prev >= 0:
		seg.MS = LastMonosplineX(tr.keys[seg.Prev].Time, k0.Time, k1.Time, x)
	default:
		seg.Rule = Linear // a two-knot spline is a straight blend
	}
	tracer().Debugf("t=%g → segment %d–%d (%s), prev=%d, next=%d, u=%.4f",
		time, i0, i1, seg.Rule, seg.Prev, seg.Next, seg.T)
	return seg
}

// Interpolate blends values (one per keyframe) at the given time.
func Interpolate[T Interpolatable[T]](tr *Track, values []T, time float64) (T, error) {
	var zero T
	if err := tr.Validate(); err != nil {
		return zero, err
	}
	if len(values) != tr.N() {
		return zero, fmt.Errorf("%w: %d keyframes, %d values", ErrValueCount, tr.N(), len(values))
	}
	return Blend(tr.Segment(time), values), nil
}

// MustInterpolate is a compatibility helper which panics on invalid input.
func MustInterpolate[T Interpolatable[T]](tr *Track, values []T, time float64) T {
	v, err := Interpolate(tr, values, time)
	if err != nil {
		panic(err)
	}
	return v
}

// Blend applies a segment to a channel's keyframe values. A single segment
// is usually computed once per frame and blended into every channel.
func Blend[T Interpolatable[T]](seg Segment, values []T) T {
	f1 := values[seg.I0]
	switch seg.Rule {
	case Step:
		return f1
	case Linear:
		return f1.Linear(values[seg.I1], seg.T)
	}
	f2 := values[seg.I1]
	switch {
	case seg.Prev >= 0 && seg.Next >= 0:
		return f1.Spline(values[seg.Prev], f2, values[seg.Next], seg.MS)
	case seg.Next >= 0:
		return f1.FirstSpline(f2, values[seg.Next], seg.MS)
	case seg.Prev >= 0:
		return f1.LastSpline(values[seg.Prev], f2, seg.MS)
	}
	return f1.Linear(f2, seg.T)
}
