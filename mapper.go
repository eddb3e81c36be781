// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package axis

// Mapper converts between domain values and pixel offsets along an axis. It
// honors skips, logarithmic scaling and reversed position. A Mapper is
// immutable; build a new one whenever the range, pixel length or skips
// change.
type Mapper struct {
	rng      Range
	length   float64
	reversed bool
	base     float64

	tf       transform
	t0, t1   float64
	toPixels affine
}

// MapperOption configures a Mapper.
type MapperOption func(*Mapper)

// Logarithmic makes the mapper logarithmic with the given base. A base that
// is not greater than 1 selects base 10.
func Logarithmic(base float64) MapperOption {
	return func(m *Mapper) {
		if base <= 1 {
			base = 10
		}
		m.base = base
	}
}

// Reversed places the range end at pixel 0 and the range start at the far
// end of the axis.
func Reversed(reversed bool) MapperOption {
	return func(m *Mapper) {
		m.reversed = reversed
	}
}

// NewMapper returns a mapper for r drawn over pixelLength pixels. The skips
// are copied, so later changes to the set do not affect the mapper.
//
// It fails with an *InvalidRangeError if r is malformed, or if the mapper is
// logarithmic and r does not lie entirely above zero. A non-positive pixel
// length is accepted; see Degenerate.
func NewMapper(
	r Range,
	skips *DiscontinuitySet,
	pixelLength float64,
	opts ...MapperOption,
) (*Mapper, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	m := &Mapper{rng: r, length: pixelLength}
	for _, opt := range opts {
		opt(m)
	}
	if m.base > 0 && r.Start <= 0 {
		return nil, &InvalidRangeError{r.Start, r.End, "logarithmic range must be positive"}
	}

	if skips.Len() > 0 {
		skips = skips.Clone()
	} else {
		skips = nil
	}
	m.tf = newTransform(r, skips, m.base)
	m.t0 = m.tf.forward(r.Start)
	m.t1 = m.tf.forward(r.End)

	if m.mappable() {
		m.toPixels = fit(m.t0, m.t1, 0, m.length)
		if m.reversed {
			m.toPixels = m.toPixels.then(mirror(m.length / 2))
		}
	}
	return m, nil
}

// Range returns the range the mapper was built for.
func (m *Mapper) Range() Range {
	return m.rng
}

// PixelLength returns the drawable length of the axis.
func (m *Mapper) PixelLength() float64 {
	return m.length
}

// IsReversed reports whether the axis is drawn end to start.
func (m *Mapper) IsReversed() bool {
	return m.reversed
}

// LogBase returns the logarithm base, or 0 for a linear mapper.
func (m *Mapper) LogBase() float64 {
	return m.base
}

// Skips returns the skips the mapper compresses.
func (m *Mapper) Skips() []Skip {
	return m.tf.skips.Skips()
}

// Degenerate returns a *DegenerateAxisError if the pixel length is not
// positive while the range is non-empty. No mapping is possible in that
// state: DomainToPixel returns 0 and PixelToDomain returns the range start.
func (m *Mapper) Degenerate() error {
	if m.length <= 0 && !m.rng.IsEmpty() {
		return &DegenerateAxisError{PixelLength: m.length}
	}
	return nil
}

func (m *Mapper) mappable() bool {
	return m.length > 0 && m.t1 != m.t0
}

// DomainToPixel returns the pixel offset of v. Values inside a skip take the
// position of the skip's start. Values outside the range extrapolate.
func (m *Mapper) DomainToPixel(v float64) float64 {
	if !m.mappable() {
		return 0
	}
	return m.toPixels.apply(m.tf.forward(v))
}

// PixelToDomain is the inverse of DomainToPixel. A pixel offset that falls on
// a collapsed skip maps to the skip's start.
func (m *Mapper) PixelToDomain(p float64) float64 {
	if !m.mappable() {
		return m.rng.Start
	}
	return m.tf.inverse(m.toPixels.invert(p))
}

// TickPixels returns the pixel offset of each tick in ticks.
func (m *Mapper) TickPixels(ticks []Tick) []float64 {
	pixels := make([]float64, len(ticks))
	for i, t := range ticks {
		pixels[i] = m.DomainToPixel(t.Value)
	}
	return pixels
}

// PixelsPerUnit returns the number of pixels one domain unit occupies on a
// linear axis without skips.
func (m *Mapper) PixelsPerUnit() float64 {
	if !m.mappable() {
		return 0
	}
	return m.length / (m.t1 - m.t0)
}
