// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package axis

import (
	"fmt"
	"math"
)

// Range is the visible interval of an axis domain. Numbers are stored as is,
// instants as Unix seconds and categories as their index.
//
// A Range is a value: operations return a new Range and never modify the
// receiver, so two ranges can be compared with ==.
type Range struct {
	Start, End float64
}

// NewRange returns the range [start, end]. It fails with an
// *InvalidRangeError if start > end or if either bound is not finite.
func NewRange(start, end float64) (Range, error) {
	r := Range{start, end}
	if err := r.Validate(); err != nil {
		return Range{}, err
	}
	return r, nil
}

// MustRange is like NewRange but panics on an invalid range.
func MustRange(start, end float64) Range {
	r, err := NewRange(start, end)
	if err != nil {
		panic(err)
	}
	return r
}

// Validate reports whether r satisfies the range invariants.
func (r Range) Validate() error {
	switch {
	case !finite(r.Start) || !finite(r.End):
		return &InvalidRangeError{r.Start, r.End, "bounds must be finite"}
	case r.Start > r.End:
		return &InvalidRangeError{r.Start, r.End, "start is after end"}
	}
	return nil
}

// Span returns End - Start.
func (r Range) Span() float64 {
	return r.End - r.Start
}

// Center returns the midpoint of r.
func (r Range) Center() float64 {
	return r.Start + r.Span()/2
}

// IsEmpty reports whether r has zero width.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// Contains reports whether v lies within the closed interval r.
func (r Range) Contains(v float64) bool {
	return v >= r.Start && v <= r.End
}

// Intersects reports whether r and o share at least one point.
func (r Range) Intersects(o Range) bool {
	return r.Start <= o.End && o.Start <= r.End
}

// Intersection returns the overlap of r and o. ok is false when they do not
// intersect.
func (r Range) Intersection(o Range) (i Range, ok bool) {
	if !r.Intersects(o) {
		return Range{}, false
	}
	return Range{math.Max(r.Start, o.Start), math.Min(r.End, o.End)}, true
}

// Union returns the smallest range covering both r and o.
func (r Range) Union(o Range) Range {
	return Range{math.Min(r.Start, o.Start), math.Max(r.End, o.End)}
}

// Shift moves both bounds of r by delta.
func (r Range) Shift(delta float64) Range {
	return Range{r.Start + delta, r.End + delta}
}

// Lerp interpolates between r and o. t = 0 returns r, t = 1 returns o.
func (r Range) Lerp(o Range, t float64) Range {
	return Range{
		r.Start + (o.Start-r.Start)*t,
		r.End + (o.End-r.End)*t,
	}
}

// ApproxEqual reports whether both bounds of r and o differ by at most tol.
func (r Range) ApproxEqual(o Range, tol float64) bool {
	return math.Abs(r.Start-o.Start) <= tol && math.Abs(r.End-o.End) <= tol
}

func (r Range) String() string {
	return fmt.Sprintf("[%g, %g]", r.Start, r.End)
}

// Limits constrain the ranges accepted by Clamp.
type Limits struct {
	// MinSpan is the smallest span allowed. Zero disables the constraint.
	MinSpan float64

	// MaxSpan is the largest span allowed. Zero disables the constraint.
	MaxSpan float64

	// HardBounds, when set, is the interval every range must stay inside.
	HardBounds *Range

	// AllowZeroWidth lets Clamp return ranges where Start == End. Without
	// it a zero-width range is widened to MinSpan, or rejected by
	// RejectsZeroWidth when MinSpan is 0.
	AllowZeroWidth bool
}

// Validate reports whether l is self-consistent.
func (l Limits) Validate() error {
	switch {
	case l.MinSpan < 0 || l.MaxSpan < 0:
		return &InvalidRangeError{l.MinSpan, l.MaxSpan, "span limits must not be negative"}
	case l.MaxSpan > 0 && l.MinSpan > l.MaxSpan:
		return &InvalidRangeError{l.MinSpan, l.MaxSpan, "minimum span exceeds maximum span"}
	}
	if l.HardBounds != nil {
		return l.HardBounds.Validate()
	}
	return nil
}

// RejectsZeroWidth reports whether l forbids r because r is zero-width and
// no MinSpan is available to widen it.
func (l Limits) RejectsZeroWidth(r Range) bool {
	return r.IsEmpty() && !l.AllowZeroWidth && l.MinSpan == 0
}

// Clamp constrains candidate to limits. Span constraints are applied
// symmetrically about the candidate's center, then the result is translated
// to fit inside the hard bounds. When the bounds are narrower than the
// resulting span, the bounds themselves are returned.
func Clamp(candidate Range, limits Limits) Range {
	r := candidate
	center := r.Center()

	if r.IsEmpty() && !limits.AllowZeroWidth && limits.MinSpan > 0 {
		r = Range{center - limits.MinSpan/2, center + limits.MinSpan/2}
	}
	if limits.MaxSpan > 0 && r.Span() > limits.MaxSpan {
		r = Range{center - limits.MaxSpan/2, center + limits.MaxSpan/2}
	}
	if limits.MinSpan > 0 && r.Span() < limits.MinSpan {
		r = Range{center - limits.MinSpan/2, center + limits.MinSpan/2}
	}

	if b := limits.HardBounds; b != nil {
		switch {
		case r.Span() >= b.Span():
			r = *b
		case r.Start < b.Start:
			r = r.Shift(b.Start - r.Start)
		case r.End > b.End:
			r = r.Shift(b.End - r.End)
		}
	}
	return r
}

// Exceeds reports whether candidate violates limits, i.e. whether Clamp
// would change it.
func (l Limits) Exceeds(candidate Range) bool {
	return Clamp(candidate, l) != candidate
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
