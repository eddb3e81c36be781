// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package axis

import (
	"math"
)

// affine is a one-dimensional transformation x' = A*x + B. It plays the
// role a 2D transformation matrix plays for drawings: scales, translations
// and mirrors compose into a single affine.
type affine struct {
	A, B float64
}

var identity = affine{1, 0}

func (m affine) apply(x float64) float64 {
	return m.A*x + m.B
}

// invert applies the inverse of m. A must not be zero.
func (m affine) invert(x float64) float64 {
	return (x - m.B) / m.A
}

// then returns the transformation that applies m followed by n.
func (m affine) then(n affine) affine {
	return affine{n.A * m.A, n.A*m.B + n.B}
}

func translate(d float64) affine {
	return affine{1, d}
}

// scaleAbout scales by s keeping origin stationary.
func scaleAbout(s, origin float64) affine {
	return affine{s, origin * (1 - s)}
}

// mirror reflects about the point c.
func mirror(c float64) affine {
	return scaleAbout(-1, c)
}

// fit maps [from0, from1] onto [to0, to1]. from0 and from1 must differ.
func fit(from0, from1, to0, to1 float64) affine {
	s := (to1 - to0) / (from1 - from0)
	return translate(-from0).then(affine{s, to0})
}

// transform is the monotone, pixel-independent part of an axis mapping:
// compress skips, then take logarithms on a logarithmic axis. Values are
// anchored so that the range start keeps its own coordinate, which makes the
// compressed value of any v in the range equal to
// DiscontinuitySet.ToCompressedOffset(v, range).
type transform struct {
	skips  *DiscontinuitySet
	origin float64 // compressed range start
	start  float64
	base   float64 // logarithm base, 0 for linear
}

func newTransform(r Range, skips *DiscontinuitySet, base float64) transform {
	return transform{
		skips:  skips,
		origin: skips.compress(r.Start),
		start:  r.Start,
		base:   base,
	}
}

func (t transform) logarithmic() bool {
	return t.base > 0
}

// forward returns the transformed coordinate of v.
func (t transform) forward(v float64) float64 {
	c := t.start + t.skips.compress(v) - t.origin
	if !t.logarithmic() {
		return c
	}
	if c <= 0 {
		c = t.start
	}
	return logBase(c, t.base)
}

// inverse returns the domain value whose transformed coordinate is x.
func (t transform) inverse(x float64) float64 {
	c := x
	if t.logarithmic() {
		c = math.Pow(t.base, x)
	}
	return t.skips.expand(c - t.start + t.origin)
}

func logBase(v, base float64) float64 {
	if base == math.E {
		return math.Log(v)
	}
	if base == 10 {
		return math.Log10(v)
	}
	return math.Log(v) / math.Log(base)
}
