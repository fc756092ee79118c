// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bench

import "context"

// Observer is notified of every completed trial and sweep point.  Calls
// happen on the measuring goroutine, outside the timed region; they should
// return quickly.
type Observer interface {
	TrialDone(ctx context.Context, t *Trial)
	PointDone(ctx context.Context, p *Point)
}

type nopObserver struct{}

func (nopObserver) TrialDone(context.Context, *Trial) {}
func (nopObserver) PointDone(context.Context, *Point) {}

func observerOr(o Observer) Observer {
	if o == nil {
		return nopObserver{}
	}
	return o
}
