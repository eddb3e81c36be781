// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package axis

import (
	"fmt"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
)

// Cause tells observers why a range changed.
type Cause uint8

const (
	// CauseExplicit is a range set by the host, animated or not.
	CauseExplicit Cause = iota
	// CauseGesture is a pan or zoom driven by a live gesture.
	CauseGesture
	// CauseMomentum is a pan or zoom continuing after a gesture ended.
	CauseMomentum
	// CauseBounceBack is the animation returning an out-of-limits range to
	// the nearest valid one.
	CauseBounceBack
)

func (c Cause) String() string {
	switch c {
	case CauseExplicit:
		return "explicit"
	case CauseGesture:
		return "gesture"
	case CauseMomentum:
		return "momentum"
	case CauseBounceBack:
		return "bounce-back"
	}
	return fmt.Sprintf("Cause(%d)", uint8(c))
}

// Change describes a committed range change.
type Change struct {
	Axis     string
	Old, New Range
	Cause    Cause
}

// Observer receives range notifications from a Controller. Calls happen on
// the goroutine that drives the controller.
type Observer interface {
	// RangeChanged is called after every committed range change, including
	// each frame of an animation.
	RangeChanged(c Change)

	// AnimationFinished is called once an animation reaches its target.
	// Cancelled animations do not finish.
	AnimationFinished(axis string)
}

// ObserverFuncs adapts a pair of functions to the Observer interface. Nil
// functions are skipped.
type ObserverFuncs struct {
	OnRangeChanged      func(c Change)
	OnAnimationFinished func(axis string)
}

// RangeChanged implements Observer.
func (o ObserverFuncs) RangeChanged(c Change) {
	if o.OnRangeChanged != nil {
		o.OnRangeChanged(c)
	}
}

// AnimationFinished implements Observer.
func (o ObserverFuncs) AnimationFinished(axis string) {
	if o.OnAnimationFinished != nil {
		o.OnAnimationFinished(axis)
	}
}

// Subscription identifies a registered observer.
type Subscription struct {
	id int
}

type subscriber struct {
	id     int
	obs    Observer
	causes mapset.Set[Cause] // nil receives every cause
}

func (s *subscriber) wants(c Cause) bool {
	return s.causes == nil || s.causes.Contains(c)
}

// observers is the notification fan-out of a Controller.
type observers struct {
	next int
	subs []subscriber
}

func (o *observers) add(obs Observer, causes ...Cause) Subscription {
	o.next++
	s := subscriber{id: o.next, obs: obs}
	if len(causes) > 0 {
		s.causes = mapset.NewThreadUnsafeSet(causes...)
	}
	o.subs = append(o.subs, s)
	return Subscription{id: s.id}
}

func (o *observers) remove(sub Subscription) {
	o.subs = slices.DeleteFunc(o.subs, func(s subscriber) bool {
		return s.id == sub.id
	})
}

func (o *observers) rangeChanged(c Change) {
	for _, s := range slices.Clone(o.subs) {
		if s.wants(c.Cause) {
			s.obs.RangeChanged(c)
		}
	}
}

func (o *observers) animationFinished(axis string, cause Cause) {
	for _, s := range slices.Clone(o.subs) {
		if s.wants(cause) {
			s.obs.AnimationFinished(axis)
		}
	}
}
