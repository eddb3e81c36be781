// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package axis

import (
	"fmt"
	"math"
)

// Curve maps the elapsed fraction of an animation, in [0, 1], to the
// fraction of the distance travelled. Every curve returns 0 at 0 and 1 at 1.
type Curve interface {
	Value(t float64) float64
}

// CurveFunc adapts a function to the Curve interface.
type CurveFunc func(t float64) float64

// Value implements Curve.
func (f CurveFunc) Value(t float64) float64 {
	return f(t)
}

var (
	// Linear progresses at a constant speed.
	Linear Curve = CurveFunc(func(t float64) float64 { return clamp01(t) })

	// EaseIn starts slowly, then accelerates past the midpoint.
	EaseIn Curve = CurveFunc(func(t float64) float64 {
		t = clamp01(t)
		return t * t * t
	})

	// EaseOut starts steadily, then decelerates into the end.
	EaseOut Curve = CurveFunc(func(t float64) float64 {
		t = 1 - clamp01(t)
		return 1 - t*t*t
	})

	// EaseInOut accelerates through the first half and decelerates through
	// the second.
	EaseInOut Curve = CurveFunc(func(t float64) float64 {
		t = clamp01(t)
		return (1 - math.Cos(math.Pi*t)) / 2
	})
)

// ParseCurve returns the curve named s: "linear", "ease-in", "ease-out" or
// "ease-in-out". An empty name selects EaseInOut.
func ParseCurve(s string) (Curve, error) {
	switch s {
	case "linear":
		return Linear, nil
	case "ease-in":
		return EaseIn, nil
	case "ease-out":
		return EaseOut, nil
	case "", "ease-in-out":
		return EaseInOut, nil
	}
	return nil, fmt.Errorf("unknown animation curve %q", s)
}

func clamp01(t float64) float64 {
	switch {
	case t <= 0 || math.IsNaN(t):
		return 0
	case t >= 1:
		return 1
	}
	return t
}
