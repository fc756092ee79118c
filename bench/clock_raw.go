// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

//go:build linux || darwin

package bench

import (
	"time"

	"golang.org/x/sys/unix"
)

func (RawClock) Now() time.Duration {
	var ts unix.Timespec
	if e := unix.ClockGettime(unix.CLOCK_MONOTONIC_RAW, &ts); e != nil {
		return monoSince()
	}
	return time.Duration(ts.Nano())
}
