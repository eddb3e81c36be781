// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package axis

import "fmt"

// InvalidRangeError reports a malformed range: start after end, or a bound
// that is NaN or infinite. The operation that produced it is rejected and any
// previously held range is kept.
type InvalidRangeError struct {
	Start, End float64
	Reason     string
}

func (e *InvalidRangeError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("invalid range [%g, %g]", e.Start, e.End)
	}
	return fmt.Sprintf("invalid range [%g, %g]: %s", e.Start, e.End, e.Reason)
}

// OverlappingSkipError reports a skip that could not be added because it
// overlaps one that is already in the set.
type OverlappingSkipError struct {
	Skip     Skip
	Existing Skip
}

func (e *OverlappingSkipError) Error() string {
	return fmt.Sprintf("skip %s overlaps existing skip %s", e.Skip, e.Existing)
}

// DegenerateAxisError reports that a mapper has no drawable length while a
// non-empty range is set. Mapping results are stable sentinels until the
// pixel length is corrected.
type DegenerateAxisError struct {
	PixelLength float64
}

func (e *DegenerateAxisError) Error() string {
	return fmt.Sprintf("degenerate axis: pixel length %g", e.PixelLength)
}
