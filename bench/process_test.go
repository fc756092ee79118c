// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bench

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func script(t *testing.T, dir, name, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts")
	}
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte("#!/bin/sh\n"+body+"\n"), 0755))
	return p
}

func TestExecProcessExitStatusIsNotAnError(t *testing.T) {
	p := script(t, t.TempDir(), "t", `echo "$1-$2"; exit 3`)
	var out bytes.Buffer
	proc := &ExecProcess{Stdout: &out}

	ex, err := proc.RunToCompletion(context.Background(), p, []string{"4", "10"})
	require.NoError(t, err)
	assert.Equal(t, 3, ex.Status)
	assert.Equal(t, "4-10\n", out.String())
}

func TestExecProcessMissingBinary(t *testing.T) {
	p := filepath.Join(t.TempDir(), "01-main")
	proc := &ExecProcess{}

	_, err := proc.RunToCompletion(context.Background(), p, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBinaryNotFound))
	var le *LaunchError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, p, le.Path)
}

func TestExecProcessTimeout(t *testing.T) {
	p := script(t, t.TempDir(), "sleepy", "exec sleep 5")
	proc := &ExecProcess{Timeout: 50 * time.Millisecond}

	start := time.Now()
	_, err := proc.RunToCompletion(context.Background(), p, nil)
	assert.ErrorIs(t, err, ErrTrialTimeout)
	assert.Less(t, time.Since(start), 4*time.Second)
}

func TestExecProcessCancelled(t *testing.T) {
	p := script(t, t.TempDir(), "sleepy", "exec sleep 5")
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := (&ExecProcess{}).RunToCompletion(ctx, p, nil)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.NotErrorIs(t, err, ErrTrialTimeout)
}

func TestExecProcessCancelledBeforeStart(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, p := range []string{script(t, dir, "ok", "exit 0"), filepath.Join(dir, "missing")} {
		_, err := (&ExecProcess{}).RunToCompletion(ctx, p, nil)
		assert.ErrorIs(t, err, context.Canceled, p)
		assert.NotErrorIs(t, err, ErrBinaryNotFound, p)
	}

	r := NewRunner(&ExecProcess{}, nil)
	r.Launch = LaunchAbsorb
	trial, err := r.Run(ctx, Plain, filepath.Join(dir, "ok"), " 0 10")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, trial)
}

func TestRunnerWithExecProcess(t *testing.T) {
	p := script(t, t.TempDir(), "nap", "sleep 0.05")
	r := NewRunner(&ExecProcess{}, nil)

	trial, err := r.Run(context.Background(), Plain, p, " 0 10")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, trial.Dur, 40*time.Millisecond)
	assert.Equal(t, 0, trial.Exit.Status)
}

func TestRawClockIsMonotonic(t *testing.T) {
	var c RawClock
	prev := c.Now()
	for i := 0; i < 1000; i++ {
		now := c.Now()
		require.GreaterOrEqual(t, now, prev)
		prev = now
	}
	a := c.Now()
	time.Sleep(10 * time.Millisecond)
	assert.GreaterOrEqual(t, c.Now()-a, 9*time.Millisecond)
}
