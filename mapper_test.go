// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package axis_test

import (
	"testing"

	axis "github.com/kofi-q/axis-go"
	"github.com/stretchr/testify/require"
)

const pixelDelta = 1e-9

func TestMapperLinear(t *testing.T) {
	m, err := axis.NewMapper(axis.MustRange(0, 100), nil, 500)
	require.NoError(t, err)
	require.NoError(t, m.Degenerate())

	require.InDelta(t, 0, m.DomainToPixel(0), pixelDelta)
	require.InDelta(t, 250, m.DomainToPixel(50), pixelDelta)
	require.InDelta(t, 500, m.DomainToPixel(100), pixelDelta)
	require.InDelta(t, 550, m.DomainToPixel(110), pixelDelta)
	require.InDelta(t, 50, m.PixelToDomain(250), pixelDelta)
	require.InDelta(t, 5, m.PixelsPerUnit(), pixelDelta)
}

func TestMapperSkipCollapses(t *testing.T) {
	skips, err := axis.NewDiscontinuitySet(axis.Skip{Start: 4, End: 6})
	require.NoError(t, err)
	m, err := axis.NewMapper(axis.MustRange(0, 10), skips, 600)
	require.NoError(t, err)

	at4 := m.DomainToPixel(4)
	require.InDelta(t, 300, at4, pixelDelta)
	for _, v := range []float64{4.5, 5, 5.999} {
		require.InDelta(t, at4, m.DomainToPixel(v), pixelDelta, "value %g", v)
	}
	require.InDelta(t, 6.0/8*600, m.DomainToPixel(8), pixelDelta)
	require.InDelta(t, 600, m.DomainToPixel(10), pixelDelta)

	// The collapsed boundary maps back to the skip start.
	require.InDelta(t, 4, m.PixelToDomain(300), pixelDelta)
	require.InDelta(t, 8, m.PixelToDomain(450), pixelDelta)

	// The mapper keeps its own copy of the skips.
	require.NoError(t, skips.AddSkip(axis.Skip{Start: 1, End: 2}))
	require.Equal(t, []axis.Skip{{4, 6}}, m.Skips())
}

func TestMapperRoundTrip(t *testing.T) {
	skips, err := axis.NewDiscontinuitySet(
		axis.Skip{Start: 10, End: 20},
		axis.Skip{Start: 55, End: 60},
	)
	require.NoError(t, err)

	for _, opts := range [][]axis.MapperOption{
		nil,
		{axis.Reversed(true)},
	} {
		m, err := axis.NewMapper(axis.MustRange(-5, 95), skips, 731, opts...)
		require.NoError(t, err)
		// Skip ends share their start's pixel, so only starts round trip.
		for _, v := range []float64{-5, 0, 9.5, 10, 20.5, 33.3, 55, 60.25, 71, 95} {
			require.InDelta(t, v, m.PixelToDomain(m.DomainToPixel(v)), 1e-9, "value %g", v)
		}
	}
}

func TestMapperReversed(t *testing.T) {
	m, err := axis.NewMapper(axis.MustRange(0, 100), nil, 500, axis.Reversed(true))
	require.NoError(t, err)
	require.True(t, m.IsReversed())
	require.InDelta(t, 500, m.DomainToPixel(0), pixelDelta)
	require.InDelta(t, 0, m.DomainToPixel(100), pixelDelta)
	require.InDelta(t, 400, m.DomainToPixel(20), pixelDelta)
	require.InDelta(t, 20, m.PixelToDomain(400), pixelDelta)
}

func TestMapperLogarithmic(t *testing.T) {
	m, err := axis.NewMapper(axis.MustRange(1, 1000), nil, 300, axis.Logarithmic(10))
	require.NoError(t, err)
	require.Equal(t, 10.0, m.LogBase())

	require.InDelta(t, 0, m.DomainToPixel(1), pixelDelta)
	require.InDelta(t, 100, m.DomainToPixel(10), pixelDelta)
	require.InDelta(t, 200, m.DomainToPixel(100), pixelDelta)
	require.InDelta(t, 300, m.DomainToPixel(1000), pixelDelta)
	require.InDelta(t, 100, m.PixelToDomain(200), 1e-9)

	_, err = axis.NewMapper(axis.MustRange(0, 1000), nil, 300, axis.Logarithmic(10))
	var rangeErr *axis.InvalidRangeError
	require.ErrorAs(t, err, &rangeErr)

	m, err = axis.NewMapper(axis.MustRange(1, 8), nil, 300, axis.Logarithmic(0))
	require.NoError(t, err)
	require.Equal(t, 10.0, m.LogBase(), "invalid bases fall back to 10")
}

func TestMapperDegenerate(t *testing.T) {
	m, err := axis.NewMapper(axis.MustRange(3, 9), nil, 0)
	require.NoError(t, err)

	var degenerate *axis.DegenerateAxisError
	require.ErrorAs(t, m.Degenerate(), &degenerate)
	require.Zero(t, degenerate.PixelLength)
	require.Zero(t, m.DomainToPixel(5))
	require.Equal(t, 3.0, m.PixelToDomain(120))

	// An empty range has nothing to draw, which is not an error.
	m, err = axis.NewMapper(axis.MustRange(4, 4), nil, 0)
	require.NoError(t, err)
	require.NoError(t, m.Degenerate())
	require.Zero(t, m.DomainToPixel(4))

	_, err = axis.NewMapper(axis.Range{Start: 2, End: 1}, nil, 100)
	var rangeErr *axis.InvalidRangeError
	require.ErrorAs(t, err, &rangeErr)
}

func TestMapperTickPixels(t *testing.T) {
	m, err := axis.NewMapper(axis.MustRange(0, 10), nil, 100)
	require.NoError(t, err)
	px := m.TickPixels([]axis.Tick{{Value: 0}, {Value: 2.5}, {Value: 10}})
	require.InDeltaSlice(t, []float64{0, 25, 100}, px, pixelDelta)
}
