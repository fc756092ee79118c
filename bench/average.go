// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bench

import (
	"context"
	"fmt"
	"time"
)

// Means holds the mean trial time in seconds of each variant at one sweep
// point.
type Means struct {
	Thread  float64
	Pthread float64
}

// Of gives the mean for variant v.
func (m Means) Of(v Variant) float64 {
	if v == Pthread {
		return m.Pthread
	}
	return m.Thread
}

// PointAverager measures both variants of a test with fixed arguments.
type PointAverager interface {
	Average(ctx context.Context, name, args string, trials int) (Means, error)
}

// Averager runs the binaries of a test found in Dir.
type Averager struct {
	Runner *Runner
	Dir    string
}

// Average runs the thread then the pthread binary of test name with args,
// trials times, and returns the mean duration of each.  The two variants
// never run at the same time.  Any trial error aborts the point.
func (a *Averager) Average(ctx context.Context, name, args string, trials int) (Means, error) {
	var m Means
	if trials <= 0 {
		return m, fmt.Errorf("%d trials: %w", trials, ErrInvalidTrials)
	}
	var sums [2]time.Duration
	for i := 0; i < trials; i++ {
		for _, v := range Variants {
			t, e := a.Runner.Run(ctx, v, v.Binary(a.Dir, name), args)
			if e != nil {
				return m, e
			}
			sums[v] += t.Dur
		}
	}
	m.Thread = sums[Plain].Seconds() / float64(trials)
	m.Pthread = sums[Pthread].Seconds() / float64(trials)
	return m, nil
}
