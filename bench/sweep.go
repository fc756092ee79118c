// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bench

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/irifrance/thrbench/logging"
)

// SecondArg is the constant second command line argument of every binary.
const SecondArg = 10

// ArgString gives the argument string for sweep value x, " <x> 10".
func ArgString(x int) string {
	return fmt.Sprintf(" %d %d", x, SecondArg)
}

// Point describes a completed sweep point.
type Point struct {
	X      int
	Args   string
	Trials int
	Means  Means
	Dur    time.Duration // wall time spent on the point, for progress only.
}

// Series holds the means of one variant, Means[x] for sweep value x.
type Series struct {
	Variant Variant
	Means   []float64
}

// Type Result is the outcome of a sweep.  Thread and Pthread always have
// the same length.
type Result struct {
	Test    string
	Trials  int
	Thread  Series
	Pthread Series
}

// Len gives the number of sweep points in r.
func (r *Result) Len() int {
	return len(r.Thread.Means)
}

// Series gives the series of variant v.
func (r *Result) Series(v Variant) *Series {
	if v == Pthread {
		return &r.Pthread
	}
	return &r.Thread
}

// Driver sweeps tests of a Catalog.
type Driver struct {
	Catalog  *Catalog
	Averager PointAverager
	Log      *logging.Logger
	Observer Observer

	// Preflight, if non-nil, is called with the resolved test name before
	// the first point; an error aborts the run.
	Preflight func(name string) error
}

// Run resolves index in d.Catalog and sweeps the test.  An index out of
// range fails before anything is executed.
func (d *Driver) Run(ctx context.Context, index, bound, trials int) (*Result, error) {
	name, e := d.Catalog.Resolve(index)
	if e != nil {
		return nil, e
	}
	if d.Preflight != nil {
		if e := d.Preflight(name); e != nil {
			return nil, e
		}
	}
	return d.Sweep(ctx, name, bound, trials)
}

// Sweep averages test name at each sweep value 0, 1, ..., bound-1 in
// ascending order.  On error no partial result is returned.
func (d *Driver) Sweep(ctx context.Context, name string, bound, trials int) (*Result, error) {
	if bound < 0 {
		return nil, fmt.Errorf("bound %d: %w", bound, ErrInvalidBound)
	}
	if trials <= 0 {
		return nil, fmt.Errorf("%d trials: %w", trials, ErrInvalidTrials)
	}
	ctx, span := tracer.Start(ctx, "sweep", trace.WithAttributes(
		attribute.String("test", name),
		attribute.Int("bound", bound),
		attribute.Int("trials", trials)))
	defer span.End()

	res := &Result{
		Test:    name,
		Trials:  trials,
		Thread:  Series{Variant: Plain, Means: make([]float64, 0, bound)},
		Pthread: Series{Variant: Pthread, Means: make([]float64, 0, bound)}}
	log := d.log().With("test", name)
	obs := observerOr(d.Observer)
	for x := 0; x < bound; x++ {
		if e := ctx.Err(); e != nil {
			span.SetStatus(codes.Error, e.Error())
			return nil, e
		}
		p, e := d.point(ctx, name, x, trials)
		if e != nil {
			span.RecordError(e)
			span.SetStatus(codes.Error, e.Error())
			return nil, fmt.Errorf("%s at sweep value %d: %w", name, x, e)
		}
		res.Thread.Means = append(res.Thread.Means, p.Means.Thread)
		res.Pthread.Means = append(res.Pthread.Means, p.Means.Pthread)
		log.Info("point done", "x", x, "of", bound, "thread", p.Means.Thread,
			"pthread", p.Means.Pthread, "elapsed", p.Dur)
		obs.PointDone(ctx, p)
	}
	return res, nil
}

func (d *Driver) point(ctx context.Context, name string, x, trials int) (*Point, error) {
	args := ArgString(x)
	ctx, span := tracer.Start(ctx, "point", trace.WithAttributes(
		attribute.Int("x", x),
		attribute.String("args", args)))
	defer span.End()
	start := time.Now()
	m, e := d.Averager.Average(ctx, name, args, trials)
	if e != nil {
		return nil, e
	}
	span.SetAttributes(
		attribute.Float64("thread", m.Thread),
		attribute.Float64("pthread", m.Pthread))
	return &Point{X: x, Args: args, Trials: trials, Means: m, Dur: time.Since(start)}, nil
}

func (d *Driver) log() *logging.Logger {
	if d.Log == nil {
		return nopLog
	}
	return d.Log
}
