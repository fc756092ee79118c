// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bench

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/irifrance/thrbench/logging"
)

var tracer = otel.Tracer("github.com/irifrance/thrbench/bench")

// LaunchPolicy says what a Runner does with a binary which cannot be
// launched.
type LaunchPolicy int

const (
	// LaunchFail returns the *LaunchError.
	LaunchFail LaunchPolicy = iota
	// LaunchAbsorb logs the failure and reports however long the failed
	// launch took as the duration of the trial.
	LaunchAbsorb
)

func (p LaunchPolicy) String() string {
	if p == LaunchAbsorb {
		return "absorb"
	}
	return "fail"
}

// ParseLaunchPolicy parses "fail" or "absorb".
func ParseLaunchPolicy(s string) (LaunchPolicy, error) {
	switch s {
	case "fail", "":
		return LaunchFail, nil
	case "absorb":
		return LaunchAbsorb, nil
	}
	return LaunchFail, fmt.Errorf("unknown launch failure policy %q", s)
}

// Type Trial records one timed execution of one variant binary.
type Trial struct {
	Variant Variant
	Path    string
	Args    string
	Dur     time.Duration
	Exit    Exit
	Err     error // launch error absorbed under LaunchAbsorb, else nil.
}

// Seconds gives t.Dur in seconds.
func (t *Trial) Seconds() float64 {
	return t.Dur.Seconds()
}

// Runner times single executions of binaries.
type Runner struct {
	Proc     Process
	Clock    Clock
	Launch   LaunchPolicy
	Log      *logging.Logger
	Observer Observer
}

// NewRunner creates a Runner using proc, the raw monotonic clock and the
// LaunchFail policy.
func NewRunner(proc Process, log *logging.Logger) *Runner {
	return &Runner{
		Proc:  proc,
		Clock: RawClock{},
		Log:   log}
}

// Run executes the binary at path with the whitespace separated arguments
// in args once, blocking until it terminates, and returns its elapsed time.
// The exit status is recorded but not interpreted.
func (r *Runner) Run(ctx context.Context, v Variant, path, args string) (*Trial, error) {
	ctx, span := tracer.Start(ctx, "trial", trace.WithAttributes(
		attribute.String("variant", v.String()),
		attribute.String("path", path),
		attribute.String("args", args)))
	defer span.End()

	argv := strings.Fields(args)
	t1 := r.Clock.Now()
	ex, e := r.Proc.RunToCompletion(ctx, path, argv)
	t2 := r.Clock.Now()

	trial := &Trial{Variant: v, Path: path, Args: args, Dur: t2 - t1, Exit: ex}
	if trial.Dur < 0 {
		trial.Dur = 0
	}
	if e != nil {
		var le *LaunchError
		if !errors.As(e, &le) {
			span.RecordError(e)
			span.SetStatus(codes.Error, e.Error())
			return nil, e
		}
		le.Variant = v
		if r.Launch != LaunchAbsorb {
			span.RecordError(e)
			span.SetStatus(codes.Error, "launch failed")
			return nil, e
		}
		trial.Err = e
		r.log().Warn("launch failed, keeping duration", "variant", v, "path", path, "error", e)
	}
	span.SetAttributes(
		attribute.Float64("seconds", trial.Seconds()),
		attribute.Int("exit_status", ex.Status))
	r.log().Debug("trial", "variant", v, "path", path, "args", args,
		"seconds", trial.Seconds(), "exit_status", ex.Status)
	observerOr(r.Observer).TrialDone(ctx, trial)
	return trial, nil
}

var nopLog = logging.Nop()

func (r *Runner) log() *logging.Logger {
	if r.Log == nil {
		return nopLog
	}
	return r.Log
}
