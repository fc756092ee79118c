// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bench

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"time"
)

// Exit describes how a process terminated.
type Exit struct {
	Status int // exit status, -1 if killed by a signal.
	UDur   time.Duration
	SDur   time.Duration
}

// Process runs an external program to completion.
//
// RunToCompletion returns an error only if the program could not be
// launched (a *LaunchError), if it was stopped because ctx was done, or if
// it was killed for exceeding a timeout (ErrTrialTimeout).  A non-zero exit
// status is not an error.
type Process interface {
	RunToCompletion(ctx context.Context, path string, args []string) (Exit, error)
}

// ExecProcess runs programs directly with os/exec, without a shell.
type ExecProcess struct {
	Stdout  io.Writer     // nil discards the output.
	Stderr  io.Writer     // nil discards the output.
	Timeout time.Duration // 0 means no timeout.
}

func (p *ExecProcess) RunToCompletion(ctx context.Context, path string, args []string) (Exit, error) {
	ex := Exit{Status: -1}
	runCtx := ctx
	if p.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}
	cmd := exec.CommandContext(runCtx, path, args...)
	cmd.Stdout = p.Stdout
	cmd.Stderr = p.Stderr
	if e := cmd.Start(); e != nil {
		if ctx.Err() != nil {
			return ex, ctx.Err()
		}
		return ex, &LaunchError{Path: path, Err: e}
	}
	e := cmd.Wait()
	if st := cmd.ProcessState; st != nil {
		ex.Status = st.ExitCode()
		ex.UDur = st.UserTime()
		ex.SDur = st.SystemTime()
	}
	if ctx.Err() != nil {
		return ex, ctx.Err()
	}
	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		return ex, fmt.Errorf("%s after %s: %w", path, p.Timeout, ErrTrialTimeout)
	}
	var exitErr *exec.ExitError
	if e != nil && !errors.As(e, &exitErr) {
		return ex, fmt.Errorf("waiting for %s: %w", path, e)
	}
	return ex, nil
}
