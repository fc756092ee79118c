// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package plot

import (
	"context"
	"errors"
	"fmt"

	"github.com/irifrance/thrbench/bench"
)

// ErrPresentation wraps failures to render or display a chart.
var ErrPresentation = errors.New("cannot present chart")

const (
	ColorThread  = "#1F5FD0"
	ColorPthread = "#D0302A"
)

// Line is one named sequence of y values over x = 0, 1, ...
type Line struct {
	Name   string
	Color  string // "#rrggbb"
	Values []float64
}

// Type Chart is what a Presenter shows.
type Chart struct {
	Title  string
	XLabel string
	YLabel string
	Lines  []Line
}

// FromResult makes a chart with one line per variant.
func FromResult(r *bench.Result) *Chart {
	return &Chart{
		Title:  fmt.Sprintf("Performance of %s, average of %d trials", r.Test, r.Trials),
		XLabel: "sweep index",
		YLabel: "time in seconds",
		Lines: []Line{
			{Name: bench.Plain.String(), Color: ColorThread, Values: r.Thread.Means},
			{Name: bench.Pthread.String(), Color: ColorPthread, Values: r.Pthread.Means}}}
}

// Len gives the length of the longest line of c.
func (c *Chart) Len() int {
	n := 0
	for _, ln := range c.Lines {
		if len(ln.Values) > n {
			n = len(ln.Values)
		}
	}
	return n
}

// Max gives the largest value in c, 0 if there is none.
func (c *Chart) Max() float64 {
	m := 0.0
	for _, ln := range c.Lines {
		for _, v := range ln.Values {
			if v > m {
				m = v
			}
		}
	}
	return m
}

// Presenter shows a chart.  Present returns once the chart has been written
// or, for interactive presenters, once the viewer is dismissed.
type Presenter interface {
	Present(ctx context.Context, c *Chart) error
}

func presentErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrPresentation, fmt.Sprintf(format, args...))
}
