// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bench

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAverageInterleavesVariants(t *testing.T) {
	r, proc := newTestRunner(time.Millisecond)
	a := &Averager{Runner: r, Dir: "d"}

	_, err := a.Average(context.Background(), "02-switch", " 1 10", 3)
	require.NoError(t, err)

	plain := filepath.Join("d", "02-switch")
	pthread := filepath.Join("d", "02-switch-pthread")
	require.Len(t, proc.calls, 6)
	for i, c := range proc.calls {
		want := plain
		if i%2 == 1 {
			want = pthread
		}
		assert.Equal(t, want, c.Path, "call %d", i)
		assert.Equal(t, []string{"1", "10"}, c.Args)
	}
}

func TestAverageIsMeanOfAllTrials(t *testing.T) {
	r, proc := newTestRunner(0)
	proc.durs[filepath.Join("d", "01-main")] = 500 * time.Millisecond
	proc.durs[filepath.Join("d", "01-main-pthread")] = 200 * time.Millisecond
	a := &Averager{Runner: r, Dir: "d"}

	m, err := a.Average(context.Background(), "01-main", " 0 10", 10)
	require.NoError(t, err)
	assert.Equal(t, 0.5, m.Thread)
	assert.InDelta(t, 0.2, m.Pthread, 1e-12)
	assert.Equal(t, m.Thread, m.Of(Plain))
	assert.Equal(t, m.Pthread, m.Of(Pthread))
}

// varyingProc makes trial i of any binary take i+1 milliseconds, so an
// average of only the last trial would be detected.
type varyingProc struct {
	clock *fakeClock
	n     map[string]int
}

func (p *varyingProc) RunToCompletion(_ context.Context, path string, _ []string) (Exit, error) {
	p.n[path]++
	p.clock.now += time.Duration(p.n[path]) * time.Millisecond
	return Exit{}, nil
}

func TestAverageSumsRatherThanKeepingLast(t *testing.T) {
	clock := &fakeClock{}
	r := NewRunner(&varyingProc{clock: clock, n: map[string]int{}}, nil)
	r.Clock = clock
	a := &Averager{Runner: r, Dir: "d"}

	m, err := a.Average(context.Background(), "11-join", " 0 10", 4)
	require.NoError(t, err)
	// (1+2+3+4)ms / 4
	assert.InDelta(t, 0.0025, m.Thread, 1e-12)
	assert.InDelta(t, 0.0025, m.Pthread, 1e-12)
}

func TestAverageInvalidTrials(t *testing.T) {
	r, proc := newTestRunner(time.Millisecond)
	a := &Averager{Runner: r, Dir: "d"}
	for _, n := range []int{0, -3} {
		_, err := a.Average(context.Background(), "01-main", " 0 10", n)
		assert.ErrorIs(t, err, ErrInvalidTrials)
	}
	assert.Empty(t, proc.calls)
}

func TestAverageStopsAtFirstError(t *testing.T) {
	r, proc := newTestRunner(time.Millisecond)
	p := filepath.Join("d", "01-main-pthread")
	proc.errs[p] = &LaunchError{Path: p, Err: os.ErrPermission}
	a := &Averager{Runner: r, Dir: "d"}

	_, err := a.Average(context.Background(), "01-main", " 0 10", 5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBinaryNotFound))
	assert.Len(t, proc.calls, 2)
}
