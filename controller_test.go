// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package axis_test

import (
	"testing"
	"time"

	axis "github.com/kofi-q/axis-go"
	"github.com/stretchr/testify/require"
)

// recorder collects controller notifications.
type recorder struct {
	changes  []axis.Change
	finished []string
}

func (r *recorder) RangeChanged(c axis.Change) {
	r.changes = append(r.changes, c)
}

func (r *recorder) AnimationFinished(name string) {
	r.finished = append(r.finished, name)
}

func (r *recorder) causes() []axis.Cause {
	var causes []axis.Cause
	for _, c := range r.changes {
		causes = append(causes, c.Cause)
	}
	return causes
}

// fakeClock is a frame clock driven by the test.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) advance(d time.Duration) time.Time {
	c.now = c.now.Add(d)
	return c.now
}

func newController(t *testing.T, params axis.ControllerParams) (*axis.Controller, *recorder, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	if params.Name == "" {
		params.Name = "x"
	}
	params.Clock = clock.Now
	c, err := axis.NewController(params)
	require.NoError(t, err)
	rec := &recorder{}
	c.Subscribe(rec)
	return c, rec, clock
}

func anchorPixel(t *testing.T, r axis.Range, skips *axis.DiscontinuitySet, base, anchor float64) float64 {
	t.Helper()
	var opts []axis.MapperOption
	if base > 0 {
		opts = append(opts, axis.Logarithmic(base))
	}
	m, err := axis.NewMapper(r, skips, 500, opts...)
	require.NoError(t, err)
	return m.DomainToPixel(anchor)
}

func TestZoomRoundTrip(t *testing.T) {
	skips, err := axis.NewDiscontinuitySet(axis.Skip{Start: 40, End: 60})
	require.NoError(t, err)

	tests := []struct {
		name   string
		rng    axis.Range
		skips  *axis.DiscontinuitySet
		base   float64
		anchor float64
	}{
		{name: "linear", rng: axis.MustRange(0, 100), anchor: 30},
		{name: "skips", rng: axis.MustRange(0, 100), skips: skips, anchor: 80},
		{name: "anchor before skip", rng: axis.MustRange(0, 100), skips: skips, anchor: 10},
		{name: "logarithmic", rng: axis.MustRange(1, 1000), base: 10, anchor: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _, _ := newController(t, axis.ControllerParams{
				Range:   tt.rng,
				Skips:   tt.skips,
				LogBase: tt.base,
			})
			before := anchorPixel(t, c.Range(), tt.skips, tt.base, tt.anchor)

			require.NoError(t, c.ApplyZoomDelta(2, tt.anchor))
			require.Less(t, c.Range().Span(), tt.rng.Span())
			require.InDelta(t, before, anchorPixel(t, c.Range(), tt.skips, tt.base, tt.anchor), 1e-6)

			require.NoError(t, c.ApplyZoomDelta(0.5, tt.anchor))
			require.True(t, c.Range().ApproxEqual(tt.rng, 1e-9*tt.rng.End), "got %v", c.Range())
		})
	}
}

func TestZoomLinear(t *testing.T) {
	c, rec, _ := newController(t, axis.ControllerParams{Range: axis.MustRange(0, 100)})

	require.NoError(t, c.ApplyZoomDelta(2, 30))
	require.Equal(t, axis.MustRange(15, 65), c.Range())
	require.Len(t, rec.changes, 1)
	require.Equal(t, axis.Change{
		Axis:  "x",
		Old:   axis.MustRange(0, 100),
		New:   axis.MustRange(15, 65),
		Cause: axis.CauseExplicit,
	}, rec.changes[0])
}

func TestZoomAcrossSkip(t *testing.T) {
	skips, err := axis.NewDiscontinuitySet(axis.Skip{Start: 4, End: 6})
	require.NoError(t, err)
	c, _, _ := newController(t, axis.ControllerParams{Range: axis.MustRange(0, 10), Skips: skips})

	require.NoError(t, c.ApplyZoomDelta(2, 8))
	require.True(t, c.Range().ApproxEqual(axis.MustRange(3, 9), 1e-12), "got %v", c.Range())
}

func TestZoomRejectsInvalidFactor(t *testing.T) {
	c, rec, _ := newController(t, axis.ControllerParams{Range: axis.MustRange(0, 100)})

	var rangeErr *axis.InvalidRangeError
	require.ErrorAs(t, c.ApplyZoomDelta(0, 50), &rangeErr)
	require.ErrorAs(t, c.ApplyZoomDelta(-2, 50), &rangeErr)
	require.Equal(t, axis.MustRange(0, 100), c.Range())
	require.Empty(t, rec.changes)
}

func TestPan(t *testing.T) {
	bounds := axis.MustRange(0, 100)
	c, rec, _ := newController(t, axis.ControllerParams{
		Range:  axis.MustRange(0, 20),
		Limits: axis.Limits{HardBounds: &bounds},
	})

	require.NoError(t, c.ApplyPanDelta(15))
	require.Equal(t, axis.MustRange(15, 35), c.Range())

	require.NoError(t, c.ApplyPanDelta(1000))
	require.Equal(t, axis.MustRange(80, 100), c.Range())
	require.Len(t, rec.changes, 2)
}

func TestSetRangeValidatesAndClamps(t *testing.T) {
	c, rec, _ := newController(t, axis.ControllerParams{
		Range:  axis.MustRange(0, 10),
		Limits: axis.Limits{MaxSpan: 50},
	})

	var rangeErr *axis.InvalidRangeError
	require.ErrorAs(t, c.SetRange(axis.Range{Start: 5, End: 1}, false), &rangeErr)
	require.Equal(t, axis.MustRange(0, 10), c.Range())
	require.Empty(t, rec.changes)

	require.NoError(t, c.SetRange(axis.MustRange(0, 100), false))
	require.Equal(t, axis.MustRange(25, 75), c.Range())

	// Setting the current range again is not a change.
	require.NoError(t, c.SetRange(axis.MustRange(25, 75), false))
	require.Len(t, rec.changes, 1)
}

func TestZeroWidthRange(t *testing.T) {
	var rangeErr *axis.InvalidRangeError

	c, rec, _ := newController(t, axis.ControllerParams{Range: axis.MustRange(0, 10)})
	require.ErrorAs(t, c.SetRange(axis.MustRange(5, 5), false), &rangeErr)
	require.Equal(t, axis.MustRange(0, 10), c.Range())
	require.Empty(t, rec.changes)

	c, _, _ = newController(t, axis.ControllerParams{
		Range:  axis.MustRange(0, 10),
		Limits: axis.Limits{MinSpan: 2},
	})
	require.NoError(t, c.SetRange(axis.MustRange(5, 5), false))
	require.Equal(t, axis.MustRange(4, 6), c.Range())

	c, _, _ = newController(t, axis.ControllerParams{
		Range:  axis.MustRange(0, 10),
		Limits: axis.Limits{AllowZeroWidth: true},
	})
	require.NoError(t, c.SetRange(axis.MustRange(5, 5), false))
	require.Equal(t, axis.MustRange(5, 5), c.Range())

	// Dropping AllowZeroWidth would strand the current range.
	require.ErrorAs(t, c.SetLimits(axis.Limits{}), &rangeErr)
	require.True(t, c.Limits().AllowZeroWidth)
	require.NoError(t, c.SetLimits(axis.Limits{MinSpan: 1}))
	require.Equal(t, axis.MustRange(4.5, 5.5), c.Range())

	_, err := axis.NewController(axis.ControllerParams{Range: axis.MustRange(3, 3)})
	require.ErrorAs(t, err, &rangeErr)
}

func TestNewControllerRejectsInvalidInput(t *testing.T) {
	var rangeErr *axis.InvalidRangeError

	_, err := axis.NewController(axis.ControllerParams{Range: axis.Range{Start: 1, End: 0}})
	require.ErrorAs(t, err, &rangeErr)

	_, err = axis.NewController(axis.ControllerParams{Range: axis.MustRange(0, 10), LogBase: 10})
	require.ErrorAs(t, err, &rangeErr)

	_, err = axis.NewController(axis.ControllerParams{
		Range:  axis.MustRange(0, 10),
		Limits: axis.Limits{MinSpan: 5, MaxSpan: 1},
	})
	require.ErrorAs(t, err, &rangeErr)
}

func TestAnimatedSetRange(t *testing.T) {
	c, rec, clock := newController(t, axis.ControllerParams{
		Name:     "price",
		Range:    axis.MustRange(0, 100),
		Duration: 100 * time.Millisecond,
		Curve:    axis.Linear,
	})

	require.NoError(t, c.SetRange(axis.MustRange(100, 200), true))
	require.Equal(t, axis.StateAnimating, c.State())
	require.Equal(t, axis.MustRange(0, 100), c.Range())
	require.Equal(t, axis.MustRange(100, 200), c.Target())
	require.Empty(t, rec.changes)

	require.True(t, c.Advance(clock.advance(50*time.Millisecond)))
	require.Equal(t, axis.MustRange(50, 150), c.Range())

	require.False(t, c.Advance(clock.advance(50*time.Millisecond)))
	require.Equal(t, axis.MustRange(100, 200), c.Range())
	require.Equal(t, axis.StateIdle, c.State())
	require.Equal(t, []string{"price"}, rec.finished)
	require.Len(t, rec.changes, 2)

	require.False(t, c.Advance(clock.advance(time.Second)))
	require.Len(t, rec.changes, 2)
}

func TestNewChangeCancelsAnimation(t *testing.T) {
	c, rec, clock := newController(t, axis.ControllerParams{
		Range:    axis.MustRange(0, 100),
		Duration: 100 * time.Millisecond,
		Curve:    axis.Linear,
	})

	require.NoError(t, c.SetRange(axis.MustRange(100, 200), true))
	c.Advance(clock.advance(50 * time.Millisecond))
	require.Equal(t, axis.MustRange(50, 150), c.Range())

	// A new animation starts from the interpolated range.
	require.NoError(t, c.SetRange(axis.MustRange(250, 350), true))
	require.Equal(t, axis.StateAnimating, c.State())
	c.Advance(clock.advance(50 * time.Millisecond))
	require.Equal(t, axis.MustRange(150, 250), c.Range())

	// An immediate change stops it.
	require.NoError(t, c.ApplyPanDelta(-150))
	require.Equal(t, axis.MustRange(0, 100), c.Range())
	require.Equal(t, axis.StateIdle, c.State())
	require.False(t, c.Advance(clock.advance(time.Second)))
	require.Equal(t, axis.MustRange(0, 100), c.Range())
	require.Empty(t, rec.finished, "cancelled animations do not finish")
}

func TestCancelKeepsInterpolatedRange(t *testing.T) {
	c, rec, clock := newController(t, axis.ControllerParams{
		Range:    axis.MustRange(0, 100),
		Duration: 100 * time.Millisecond,
		Curve:    axis.Linear,
	})

	require.NoError(t, c.SetRange(axis.MustRange(100, 200), true))
	c.Advance(clock.advance(25 * time.Millisecond))
	c.Cancel()
	require.Equal(t, axis.StateIdle, c.State())
	require.Equal(t, axis.MustRange(25, 125), c.Range())
	require.Empty(t, rec.finished)
}

func TestImmediateWhenDurationNegative(t *testing.T) {
	c, rec, _ := newController(t, axis.ControllerParams{
		Range:    axis.MustRange(0, 100),
		Duration: -1,
	})
	require.NoError(t, c.SetRange(axis.MustRange(10, 20), true))
	require.Equal(t, axis.StateIdle, c.State())
	require.Equal(t, axis.MustRange(10, 20), c.Range())
	require.Len(t, rec.changes, 1)
}

func TestElasticGestureBouncesBack(t *testing.T) {
	bounds := axis.MustRange(0, 100)
	c, rec, clock := newController(t, axis.ControllerParams{
		Range:          axis.MustRange(0, 50),
		Limits:         axis.Limits{HardBounds: &bounds},
		Elastic:        0.5,
		BounceDuration: 200 * time.Millisecond,
		Curve:          axis.Linear,
	})

	require.NoError(t, c.GesturePan(-20, false))
	require.Equal(t, axis.MustRange(-20, 30), c.Range())

	require.NoError(t, c.GesturePan(-2, true))
	require.Equal(t, axis.MustRange(-22, 28), c.Range())

	c.EndGesture()
	require.Equal(t, axis.StateBouncing, c.State())
	require.Equal(t, axis.MustRange(0, 50), c.Target())

	require.True(t, c.Advance(clock.advance(100*time.Millisecond)))
	require.Equal(t, axis.MustRange(-11, 39), c.Range())
	require.False(t, c.Advance(clock.advance(100*time.Millisecond)))
	require.Equal(t, axis.MustRange(0, 50), c.Range())
	require.Equal(t, axis.StateIdle, c.State())

	require.Equal(t, []axis.Cause{
		axis.CauseGesture,
		axis.CauseMomentum,
		axis.CauseBounceBack,
		axis.CauseBounceBack,
	}, rec.causes())
	require.Equal(t, []string{"x"}, rec.finished)
}

func TestElasticOvershootIsBounded(t *testing.T) {
	bounds := axis.MustRange(0, 100)
	c, _, _ := newController(t, axis.ControllerParams{
		Range:   axis.MustRange(0, 50),
		Limits:  axis.Limits{HardBounds: &bounds},
		Elastic: 0.5,
	})

	require.NoError(t, c.GesturePan(-40, false))
	require.Equal(t, axis.MustRange(-25, 25), c.Range())
}

func TestRigidGestureClamps(t *testing.T) {
	bounds := axis.MustRange(0, 100)
	c, rec, _ := newController(t, axis.ControllerParams{
		Range:  axis.MustRange(0, 50),
		Limits: axis.Limits{HardBounds: &bounds},
	})

	require.NoError(t, c.GesturePan(-20, false))
	require.Equal(t, axis.MustRange(0, 50), c.Range())
	require.Empty(t, rec.changes)

	c.EndGesture()
	require.Equal(t, axis.StateIdle, c.State())

	require.NoError(t, c.GestureZoom(2, 0, false))
	require.Equal(t, axis.MustRange(0, 25), c.Range())
	require.Equal(t, axis.CauseGesture, rec.changes[0].Cause)
}

func TestSubscriptionCauseFilter(t *testing.T) {
	bounds := axis.MustRange(0, 100)
	c, all, clock := newController(t, axis.ControllerParams{
		Range:          axis.MustRange(0, 50),
		Limits:         axis.Limits{HardBounds: &bounds},
		Elastic:        1,
		BounceDuration: -1,
	})

	bounces := &recorder{}
	c.Subscribe(bounces, axis.CauseBounceBack)
	dropped := &recorder{}
	sub := c.Subscribe(dropped)
	c.Unsubscribe(sub)

	require.NoError(t, c.GesturePan(-10, false))
	c.EndGesture()
	require.False(t, c.Advance(clock.advance(time.Millisecond)))

	require.Len(t, all.changes, 2)
	require.Equal(t, []axis.Cause{axis.CauseBounceBack}, bounces.causes())
	require.Equal(t, axis.MustRange(0, 50), bounces.changes[0].New)
	require.Empty(t, dropped.changes)
}

func TestSetLimits(t *testing.T) {
	c, rec, _ := newController(t, axis.ControllerParams{Range: axis.MustRange(0, 100)})

	var rangeErr *axis.InvalidRangeError
	require.ErrorAs(t, c.SetLimits(axis.Limits{MinSpan: -1}), &rangeErr)
	require.Equal(t, axis.Limits{}, c.Limits())

	require.NoError(t, c.SetLimits(axis.Limits{MaxSpan: 10}))
	require.Equal(t, axis.MustRange(45, 55), c.Range())
	require.Len(t, rec.changes, 1)
}

func TestObserverFuncs(t *testing.T) {
	c, _, _ := newController(t, axis.ControllerParams{Range: axis.MustRange(0, 100), Duration: -1})

	var got []axis.Range
	c.Subscribe(axis.ObserverFuncs{
		OnRangeChanged: func(ch axis.Change) { got = append(got, ch.New) },
	})
	require.NoError(t, c.SetRange(axis.MustRange(1, 2), true))
	require.Equal(t, []axis.Range{axis.MustRange(1, 2)}, got)

	// A nil callback is skipped.
	axis.ObserverFuncs{}.AnimationFinished("x")
}

func TestCauseAndStateNames(t *testing.T) {
	require.Equal(t, "bounce-back", axis.CauseBounceBack.String())
	require.Equal(t, "momentum", axis.CauseMomentum.String())
	require.Equal(t, "bouncing", axis.StateBouncing.String())
	require.Equal(t, "idle", axis.StateIdle.String())
}
