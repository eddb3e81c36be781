// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package axis

import (
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultDuration is the length of range animations when none is configured.
const DefaultDuration = 300 * time.Millisecond

// State is the animation state of a Controller.
type State uint8

const (
	// StateIdle means the range only changes when asked to.
	StateIdle State = iota
	// StateAnimating means an animated SetRange is in flight.
	StateAnimating
	// StateBouncing means an out-of-limits range is returning to the nearest
	// valid range.
	StateBouncing
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAnimating:
		return "animating"
	case StateBouncing:
		return "bouncing"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// ControllerParams configures a Controller.
type ControllerParams struct {
	// Name identifies the axis in notifications and logs.
	Name string

	// Range is the initial range. It is clamped to Limits.
	Range Range

	// Limits constrain every committed range.
	Limits Limits

	// Skips are the axis skips. Zooming keeps its anchor fixed in pixel
	// space, which depends on them. The set is shared, not copied.
	Skips *DiscontinuitySet

	// LogBase is the logarithm base of a logarithmic axis, 0 for linear.
	LogBase float64

	// Duration of animated range changes. Zero selects DefaultDuration; a
	// negative duration makes every change immediate.
	Duration time.Duration

	// BounceDuration is the length of bounce-back animations. Zero uses
	// Duration.
	BounceDuration time.Duration

	// Curve shapes animations. Nil selects EaseInOut.
	Curve Curve

	// Elastic is how far, as a fraction of the current span, gestures may
	// push the range beyond its limits before EndGesture bounces it back.
	Elastic float64

	// Clock stamps the start of animations. Nil selects time.Now. It must
	// share a time base with the times passed to Advance.
	Clock func() time.Time
}

type animation struct {
	from, to Range
	start    time.Time
	duration time.Duration
	curve    Curve
	cause    Cause
}

// Controller owns the visible range of one axis. It clamps requested ranges,
// applies zoom and pan deltas, runs range animations on an external frame
// clock and notifies observers of every committed change.
//
// A Controller is single-threaded: every method must be called from the
// goroutine that owns the axis, and observers are called synchronously on
// it. Hosts that mutate an axis from elsewhere must marshal the call onto
// that goroutine themselves.
type Controller struct {
	name    string
	rng     Range
	limits  Limits
	skips   *DiscontinuitySet
	base    float64
	elastic float64

	duration time.Duration
	bounce   time.Duration
	curve    Curve
	clock    func() time.Time

	state State
	anim  animation
	obs   observers
}

// NewController returns a controller in the idle state. It fails if the
// initial range or the limits are invalid.
func NewController(params ControllerParams) (*Controller, error) {
	c := &Controller{
		name:     params.Name,
		skips:    params.Skips,
		base:     params.LogBase,
		elastic:  math.Max(params.Elastic, 0),
		duration: params.Duration,
		bounce:   params.BounceDuration,
		curve:    params.Curve,
		clock:    params.Clock,
	}
	if c.duration == 0 {
		c.duration = DefaultDuration
	}
	if c.bounce == 0 {
		c.bounce = c.duration
	}
	if c.curve == nil {
		c.curve = EaseInOut
	}
	if c.clock == nil {
		c.clock = time.Now
	}

	if err := params.Limits.Validate(); err != nil {
		return nil, fmt.Errorf("axis %q: %w", c.name, err)
	}
	c.limits = params.Limits
	if err := c.check(params.Range); err != nil {
		return nil, fmt.Errorf("axis %q: %w", c.name, err)
	}
	c.rng = Clamp(params.Range, c.limits)
	return c, nil
}

// Name returns the axis name used in notifications.
func (c *Controller) Name() string {
	return c.name
}

// Range returns the current range. While animating this is the most recent
// interpolated value.
func (c *Controller) Range() Range {
	return c.rng
}

// Target returns the range the controller is heading to: the animation
// target while animating, the current range otherwise.
func (c *Controller) Target() Range {
	if c.state == StateIdle {
		return c.rng
	}
	return c.anim.to
}

// State returns the animation state.
func (c *Controller) State() State {
	return c.state
}

// Limits returns the configured limits.
func (c *Controller) Limits() Limits {
	return c.limits
}

// SetLimits replaces the limits and re-clamps the current range
// immediately. Invalid limits, or limits that would leave a forbidden
// zero-width range, are rejected and the old ones kept.
func (c *Controller) SetLimits(l Limits) error {
	if err := l.Validate(); err != nil {
		c.reject(c.rng, err)
		return err
	}
	if r := Clamp(c.rng, l); l.RejectsZeroWidth(r) {
		err := &InvalidRangeError{r.Start, r.End, "zero-width range not allowed"}
		c.reject(r, err)
		return err
	}
	c.limits = l
	c.cancel()
	c.commit(Clamp(c.rng, l), CauseExplicit)
	return nil
}

// Subscribe registers obs. When causes are given, obs only hears about
// changes and animations with one of those causes.
func (c *Controller) Subscribe(obs Observer, causes ...Cause) Subscription {
	return c.obs.add(obs, causes...)
}

// Unsubscribe removes the observer registered under sub.
func (c *Controller) Unsubscribe(sub Subscription) {
	c.obs.remove(sub)
}

// SetRange clamps candidate to the limits and applies it, immediately or as
// an animation from the current range. Any animation in flight is cancelled
// first. An invalid candidate fails with an *InvalidRangeError and leaves
// the range unchanged.
func (c *Controller) SetRange(candidate Range, animated bool) error {
	return c.setRange(candidate, animated, CauseExplicit)
}

func (c *Controller) setRange(candidate Range, animated bool, cause Cause) error {
	if err := c.check(candidate); err != nil {
		c.reject(candidate, err)
		return err
	}
	c.cancel()

	target := Clamp(candidate, c.limits)
	if !animated || c.duration < 0 {
		c.commit(target, cause)
		return nil
	}
	c.animate(target, c.duration, StateAnimating, cause)
	return nil
}

// ApplyZoomDelta scales the span by 1/factor, keeping anchor at the same
// pixel position. Factors above 1 zoom in. The zoom is computed in the
// axis's pixel-proportional space, so skips and logarithmic scaling do not
// move the anchor.
func (c *Controller) ApplyZoomDelta(factor, anchor float64) error {
	r, err := c.ZoomedRange(factor, anchor)
	if err != nil {
		c.reject(c.rng, err)
		return err
	}
	return c.setRange(r, false, CauseExplicit)
}

// ApplyPanDelta shifts both bounds by delta.
func (c *Controller) ApplyPanDelta(delta float64) error {
	return c.setRange(c.rng.Shift(delta), false, CauseExplicit)
}

// GesturePan applies a pan from the gesture layer. momentum marks movement
// that continues after the touch ended. With an elastic controller the
// range may overshoot its limits until EndGesture.
func (c *Controller) GesturePan(delta float64, momentum bool) error {
	return c.gesture(c.rng.Shift(delta), momentum)
}

// GestureZoom applies a pinch from the gesture layer. See GesturePan.
func (c *Controller) GestureZoom(factor, anchor float64, momentum bool) error {
	r, err := c.ZoomedRange(factor, anchor)
	if err != nil {
		c.reject(c.rng, err)
		return err
	}
	return c.gesture(r, momentum)
}

func (c *Controller) gesture(candidate Range, momentum bool) error {
	cause := CauseGesture
	if momentum {
		cause = CauseMomentum
	}
	if err := c.check(candidate); err != nil {
		c.reject(candidate, err)
		return err
	}
	c.cancel()
	c.commit(Clamp(candidate, c.elasticLimits()), cause)
	return nil
}

// EndGesture reports that the gesture layer has stopped driving the range.
// A range left outside the limits bounces back to the nearest valid range.
func (c *Controller) EndGesture() {
	if c.state != StateIdle {
		return
	}
	target := Clamp(c.rng, c.limits)
	if target == c.rng {
		return
	}
	if c.bounce < 0 {
		c.commit(target, CauseBounceBack)
		return
	}
	c.animate(target, c.bounce, StateBouncing, CauseBounceBack)
}

// Cancel stops the animation in flight, leaving the range at its current
// interpolated value. No finish notification is sent.
func (c *Controller) Cancel() {
	c.cancel()
}

// Advance moves the animation in flight to time now and reports whether
// it is still running. Hosts call it from their frame clock. When the
// animation reaches its target observers receive AnimationFinished.
func (c *Controller) Advance(now time.Time) bool {
	if c.state == StateIdle {
		return false
	}
	a := c.anim
	elapsed := now.Sub(a.start)
	if a.duration <= 0 || elapsed >= a.duration {
		c.state = StateIdle
		c.commit(a.to, a.cause)
		c.obs.animationFinished(c.name, a.cause)
		return false
	}
	t := float64(elapsed) / float64(a.duration)
	c.commit(a.from.Lerp(a.to, a.curve.Value(t)), a.cause)
	return true
}

func (c *Controller) animate(target Range, d time.Duration, s State, cause Cause) {
	if target == c.rng {
		return
	}
	c.anim = animation{
		from:     c.rng,
		to:       target,
		start:    c.clock(),
		duration: d,
		curve:    c.curve,
		cause:    cause,
	}
	c.state = s
}

func (c *Controller) cancel() {
	if c.state == StateIdle {
		return
	}
	logger.WithFields(logrus.Fields{
		"axis":   c.name,
		"state":  c.state.String(),
		"target": c.anim.to.String(),
		"at":     c.rng.String(),
	}).Debug("range animation cancelled")
	c.state = StateIdle
	c.anim = animation{}
}

func (c *Controller) commit(r Range, cause Cause) {
	if r == c.rng {
		return
	}
	old := c.rng
	c.rng = r
	c.obs.rangeChanged(Change{Axis: c.name, Old: old, New: r, Cause: cause})
}

func (c *Controller) reject(r Range, err error) {
	logger.WithFields(logrus.Fields{
		"axis":  c.name,
		"start": r.Start,
		"end":   r.End,
	}).WithError(err).Debug("range change rejected")
}

// check validates a candidate range against the axis scale and the
// zero-width policy of the limits.
func (c *Controller) check(r Range) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if c.limits.RejectsZeroWidth(r) {
		return &InvalidRangeError{r.Start, r.End, "zero-width range not allowed"}
	}
	if c.base > 0 && r.Start <= 0 {
		return &InvalidRangeError{r.Start, r.End, "logarithmic range must be positive"}
	}
	return nil
}

// ZoomedRange returns the unclamped range ApplyZoomDelta would request,
// without applying it.
func (c *Controller) ZoomedRange(factor, anchor float64) (Range, error) {
	if factor <= 0 || !finite(factor) {
		return Range{}, &InvalidRangeError{c.rng.Start, c.rng.End, fmt.Sprintf("invalid zoom factor %g", factor)}
	}
	if !finite(anchor) {
		return Range{}, &InvalidRangeError{c.rng.Start, c.rng.End, "zoom anchor must be finite"}
	}
	base := c.base
	if base > 0 && base <= 1 {
		base = 10
	}
	tf := newTransform(c.rng, c.skips, base)
	m := scaleAbout(1/factor, tf.forward(anchor))
	return Range{
		tf.inverse(m.apply(tf.forward(c.rng.Start))),
		tf.inverse(m.apply(tf.forward(c.rng.End))),
	}, nil
}

// elasticLimits widens the limits by the elastic fraction of the current
// span.
func (c *Controller) elasticLimits() Limits {
	l := c.limits
	if c.elastic == 0 {
		return l
	}
	slack := c.rng.Span() * c.elastic
	l.MinSpan = math.Max(l.MinSpan*(1-c.elastic), 0)
	if l.MaxSpan > 0 {
		l.MaxSpan *= 1 + c.elastic
	}
	if l.HardBounds != nil {
		b := Range{l.HardBounds.Start - slack, l.HardBounds.End + slack}
		l.HardBounds = &b
	}
	return l
}
