// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

//go:build !linux && !darwin

package bench

import "time"

func (RawClock) Now() time.Duration {
	return monoSince()
}
