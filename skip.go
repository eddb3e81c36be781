// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package axis

import (
	"fmt"
	"math"
	"slices"
)

// Skip is an interval removed from pixel space on a discontinuous axis.
type Skip struct {
	Start, End float64
}

// Span returns End - Start.
func (s Skip) Span() float64 {
	return s.End - s.Start
}

// Range returns s as a Range.
func (s Skip) Range() Range {
	return Range{s.Start, s.End}
}

// overlaps reports whether s and o share interior points. Skips that only
// touch at an end point do not overlap.
func (s Skip) overlaps(o Skip) bool {
	return s.Start < o.End && o.Start < s.End
}

// inside reports whether v lies strictly inside s. The boundaries of a skip
// are still mapped to pixels.
func (s Skip) inside(v float64) bool {
	return v > s.Start && v < s.End
}

func (s Skip) String() string {
	return fmt.Sprintf("(%g, %g)", s.Start, s.End)
}

// DiscontinuitySet is an ordered set of non-overlapping skips. The zero value
// is an empty set ready to use, and a nil *DiscontinuitySet behaves as an
// empty set for every read operation.
//
// A DiscontinuitySet is not safe for concurrent use; mutate it from the
// goroutine that owns the axis.
type DiscontinuitySet struct {
	skips []Skip
}

// NewDiscontinuitySet returns a set holding skips. It fails with the first
// error AddSkip would report.
func NewDiscontinuitySet(skips ...Skip) (*DiscontinuitySet, error) {
	d := &DiscontinuitySet{skips: make([]Skip, 0, len(skips))}
	for _, s := range skips {
		if err := d.AddSkip(s); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// AddSkip inserts skip, keeping the set sorted by start. It fails with an
// *InvalidRangeError if skip is empty or not finite, and with an
// *OverlappingSkipError if skip overlaps an existing entry. Overlapping skips
// are rejected rather than merged so callers can always remove exactly what
// they added. A rejected skip leaves the set unchanged.
func (d *DiscontinuitySet) AddSkip(skip Skip) error {
	if !finite(skip.Start) || !finite(skip.End) {
		return &InvalidRangeError{skip.Start, skip.End, "skip bounds must be finite"}
	}
	if skip.Start >= skip.End {
		return &InvalidRangeError{skip.Start, skip.End, "skip must have positive width"}
	}

	i, _ := slices.BinarySearchFunc(d.skips, skip.Start, func(s Skip, v float64) int {
		switch {
		case s.Start < v:
			return -1
		case s.Start > v:
			return 1
		}
		return 0
	})
	if i > 0 && d.skips[i-1].overlaps(skip) {
		return &OverlappingSkipError{Skip: skip, Existing: d.skips[i-1]}
	}
	if i < len(d.skips) && d.skips[i].overlaps(skip) {
		return &OverlappingSkipError{Skip: skip, Existing: d.skips[i]}
	}

	d.skips = slices.Insert(d.skips, i, skip)
	return nil
}

// RemoveSkip removes the skip equal to skip. It does nothing if no such skip
// is present.
func (d *DiscontinuitySet) RemoveSkip(skip Skip) {
	if d == nil {
		return
	}
	if i := slices.Index(d.skips, skip); i >= 0 {
		d.skips = slices.Delete(d.skips, i, i+1)
	}
}

// Skips returns a copy of the skips in ascending order.
func (d *DiscontinuitySet) Skips() []Skip {
	if d == nil {
		return nil
	}
	return slices.Clone(d.skips)
}

// Len returns the number of skips in the set.
func (d *DiscontinuitySet) Len() int {
	if d == nil {
		return 0
	}
	return len(d.skips)
}

// Clone returns an independent copy of d.
func (d *DiscontinuitySet) Clone() *DiscontinuitySet {
	return &DiscontinuitySet{skips: d.Skips()}
}

// Find returns the skip that strictly contains v.
func (d *DiscontinuitySet) Find(v float64) (Skip, bool) {
	if d == nil {
		return Skip{}, false
	}
	for _, s := range d.skips {
		if s.Start >= v {
			break
		}
		if s.inside(v) {
			return s, true
		}
	}
	return Skip{}, false
}

// TotalSkippedSpan returns the total length of the skips that fall inside
// visible.
func (d *DiscontinuitySet) TotalSkippedSpan(visible Range) float64 {
	if d == nil {
		return 0
	}
	var total float64
	for _, s := range d.skips {
		if s.Start >= visible.End {
			break
		}
		if s.End <= visible.Start {
			continue
		}
		total += math.Min(s.End, visible.End) - math.Max(s.Start, visible.Start)
	}
	return total
}

// ToCompressedOffset returns v minus the skipped span that lies strictly
// before v inside visible. This is the position v would have if every skip
// were collapsed to zero width.
func (d *DiscontinuitySet) ToCompressedOffset(v float64, visible Range) float64 {
	if v <= visible.Start {
		return v
	}
	end := math.Min(v, visible.End)
	return v - d.TotalSkippedSpan(Range{visible.Start, end})
}

// compress returns v minus every skipped span before v. Values inside a
// skip compress to the skip's start. Unlike ToCompressedOffset it does not
// depend on a visible range, which makes it usable for extrapolation.
func (d *DiscontinuitySet) compress(v float64) float64 {
	if d == nil {
		return v
	}
	var skipped float64
	for _, s := range d.skips {
		if s.Start >= v {
			break
		}
		if v < s.End {
			return s.Start - skipped
		}
		skipped += s.Span()
	}
	return v - skipped
}

// expand is the inverse of compress. A compressed value that coincides
// with a collapsed skip maps to the skip's start.
func (d *DiscontinuitySet) expand(c float64) float64 {
	if d == nil {
		return c
	}
	var skipped float64
	for _, s := range d.skips {
		if c <= s.Start-skipped {
			break
		}
		skipped += s.Span()
	}
	return c + skipped
}
