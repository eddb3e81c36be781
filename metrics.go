// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package axis

import (
	"fmt"
	"math"
	"os"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// DefaultLabelPadding is the gap, in pixels, kept between adjacent labels.
const DefaultLabelPadding = 8

// Metrics measures tick labels. An axis uses it to derive the minimum pixel
// spacing between major ticks when none is configured.
type Metrics struct {
	// Face measures label text. Nil selects basicfont.Face7x13.
	Face font.Face

	// Padding is added to the widest label. Zero selects
	// DefaultLabelPadding; negative disables padding.
	Padding float64

	// Vertical stacks labels along the axis, so label height rather than
	// width sets the spacing.
	Vertical bool

	// Longest, when set, returns the longest label the host expects on the
	// axis. A non-empty result is measured instead of the generated labels.
	Longest func() string
}

// DefaultFontSize is the label size, in points, used by LoadFace when none
// is given.
const DefaultFontSize = 12

// LoadFace reads a TrueType or OpenType font file and returns a face of the
// given size in points at 72 DPI, so that one point is one pixel.
func LoadFace(path string, size float64) (font.Face, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read font file: %w", err)
	}
	return ParseFace(b, size)
}

// ParseFace is LoadFace for font data already in memory.
func ParseFace(b []byte, size float64) (font.Face, error) {
	f, err := opentype.Parse(b)
	if err != nil {
		return nil, fmt.Errorf("unable to parse font file: %w", err)
	}
	if size <= 0 {
		size = DefaultFontSize
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("unable to create font face: %w", err)
	}
	return face, nil
}

func (m Metrics) face() font.Face {
	if m.Face == nil {
		return basicfont.Face7x13
	}
	return m.Face
}

func (m Metrics) padding() float64 {
	switch {
	case m.Padding == 0:
		return DefaultLabelPadding
	case m.Padding < 0:
		return 0
	}
	return m.Padding
}

// Extent returns the size of label along the axis in pixels. Labels may
// span several lines.
func (m Metrics) Extent(label string) float64 {
	if label == "" {
		return 0
	}
	face := m.face()
	lines := strings.Split(label, "\n")
	if m.Vertical {
		return float64(face.Metrics().Height.Ceil() * len(lines))
	}

	widest := 0
	for _, line := range lines {
		widest = max(widest, font.MeasureString(face, line).Ceil())
	}
	return float64(widest)
}

// MinSpacing returns the spacing that keeps the labels of ticks from
// touching: the largest extent among enabled major ticks, or of the Longest
// hint, plus padding. It returns 0 when there is no label to measure.
func (m Metrics) MinSpacing(ticks []Tick) float64 {
	if m.Longest != nil {
		if label := m.Longest(); label != "" {
			return m.Extent(label) + m.padding()
		}
	}
	widest := 0.0
	for _, t := range ticks {
		if t.Major && t.Enabled {
			widest = math.Max(widest, m.Extent(t.Label))
		}
	}
	if widest == 0 {
		return 0
	}
	return widest + m.padding()
}
