// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bench

import "time"

// Clock gives readings of a monotonic clock as an offset from an
// arbitrary, fixed origin.  Only differences of readings are meaningful.
type Clock interface {
	Now() time.Duration
}

// RawClock reads CLOCK_MONOTONIC_RAW where the platform has it, which is
// neither stepped nor slewed by time adjustments.  Elsewhere it falls back
// to the monotonic reading carried by time.Time.
type RawClock struct{}

var origin = time.Now()

func monoSince() time.Duration {
	return time.Since(origin)
}
