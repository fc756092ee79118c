// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bench

import (
	"context"
	"sync"
	"time"
)

type fakeClock struct {
	now time.Duration
}

func (c *fakeClock) Now() time.Duration {
	return c.now
}

type call struct {
	Path string
	Args []string
}

// fakeProc advances clock by durs[path] (or dflt) on every run.
type fakeProc struct {
	mu     sync.Mutex
	clock  *fakeClock
	durs   map[string]time.Duration
	dflt   time.Duration
	errs   map[string]error
	status int
	calls  []call
}

func newFakeProc(clock *fakeClock, dflt time.Duration) *fakeProc {
	return &fakeProc{
		clock: clock,
		dflt:  dflt,
		durs:  make(map[string]time.Duration),
		errs:  make(map[string]error)}
}

func (p *fakeProc) RunToCompletion(ctx context.Context, path string, args []string) (Exit, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, call{Path: path, Args: append([]string(nil), args...)})
	d, ok := p.durs[path]
	if !ok {
		d = p.dflt
	}
	p.clock.now += d
	if e := p.errs[path]; e != nil {
		return Exit{Status: -1}, e
	}
	return Exit{Status: p.status}, nil
}

type recorder struct {
	trials []*Trial
	points []*Point
}

func (r *recorder) TrialDone(_ context.Context, t *Trial) {
	r.trials = append(r.trials, t)
}

func (r *recorder) PointDone(_ context.Context, p *Point) {
	r.points = append(r.points, p)
}
