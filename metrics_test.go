// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package axis_test

import (
	"os"
	"path/filepath"
	"testing"

	axis "github.com/kofi-q/axis-go"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

func TestMetricsExtent(t *testing.T) {
	var m axis.Metrics
	require.Equal(t, 21.0, m.Extent("100"))
	require.Equal(t, 35.0, m.Extent("Jan 1\n2024"))
	require.Zero(t, m.Extent(""))

	m = axis.Metrics{Face: basicfont.Face7x13, Vertical: true}
	require.Equal(t, 13.0, m.Extent("100"))
	require.Equal(t, 26.0, m.Extent("Jan 1\n2024"))
}

func TestMetricsMinSpacing(t *testing.T) {
	ticks := []axis.Tick{
		{Value: 0, Major: true, Enabled: true, Label: "0"},
		{Value: 5, Enabled: true},
		{Value: 10, Major: true, Enabled: true, Label: "100"},
		{Value: 20, Major: true, Label: "100000"},
	}

	require.Equal(t, 29.0, axis.Metrics{}.MinSpacing(ticks))
	require.Equal(t, 21.0, axis.Metrics{Padding: -1}.MinSpacing(ticks))
	require.Equal(t, 23.0, axis.Metrics{Padding: 2}.MinSpacing(ticks))
	require.Zero(t, axis.Metrics{}.MinSpacing(ticks[1:2]))
	require.Zero(t, axis.Metrics{}.MinSpacing(nil))

	hinted := axis.Metrics{Longest: func() string { return "100000" }}
	require.Equal(t, 50.0, hinted.MinSpacing(ticks))
	require.Equal(t, 50.0, hinted.MinSpacing(nil))
	empty := axis.Metrics{Longest: func() string { return "" }}
	require.Equal(t, 29.0, empty.MinSpacing(ticks))
}

func TestLoadFace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Go-Regular.ttf")
	require.NoError(t, os.WriteFile(path, goregular.TTF, 0o644))

	small, err := axis.LoadFace(path, 10)
	require.NoError(t, err)
	large, err := axis.LoadFace(path, 20)
	require.NoError(t, err)

	narrow := axis.Metrics{Face: small}.Extent("12345")
	wide := axis.Metrics{Face: large}.Extent("12345")
	require.Positive(t, narrow)
	require.Greater(t, wide, narrow)
	require.Greater(t, axis.Metrics{Face: large}.Extent("1000"), axis.Metrics{Face: large}.Extent("1"))

	def, err := axis.ParseFace(goregular.TTF, 0)
	require.NoError(t, err)
	twelve, err := axis.ParseFace(goregular.TTF, axis.DefaultFontSize)
	require.NoError(t, err)
	require.Equal(t, axis.Metrics{Face: twelve}.Extent("12345"), axis.Metrics{Face: def}.Extent("12345"))

	_, err = axis.LoadFace(filepath.Join(t.TempDir(), "missing.ttf"), 10)
	require.ErrorIs(t, err, os.ErrNotExist)
	_, err = axis.ParseFace([]byte("not a font"), 10)
	require.ErrorContains(t, err, "unable to parse font file")
}
