// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/irifrance/thrbench/bench"
)

// Metrics records trials and sweep points.  It implements bench.Observer.
type Metrics struct {
	TrialsTotal    metric.Int64Counter
	TrialDuration  metric.Float64Histogram
	LaunchFailures metric.Int64Counter
	PointsTotal    metric.Int64Counter
	PointMean      metric.Float64Gauge
}

// NewMetrics registers the thrbench instruments with meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}
	var err error

	m.TrialsTotal, err = meter.Int64Counter(
		"thrbench_trials_total",
		metric.WithDescription("Completed trials"),
		metric.WithUnit("{trial}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create trials_total: %w", err)
	}

	m.TrialDuration, err = meter.Float64Histogram(
		"thrbench_trial_duration_seconds",
		metric.WithDescription("Wall time of single trials"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10, 60),
	)
	if err != nil {
		return nil, fmt.Errorf("create trial_duration: %w", err)
	}

	m.LaunchFailures, err = meter.Int64Counter(
		"thrbench_launch_failures_total",
		metric.WithDescription("Trials whose binary could not be launched"),
		metric.WithUnit("{trial}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create launch_failures_total: %w", err)
	}

	m.PointsTotal, err = meter.Int64Counter(
		"thrbench_points_total",
		metric.WithDescription("Completed sweep points"),
		metric.WithUnit("{point}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create points_total: %w", err)
	}

	m.PointMean, err = meter.Float64Gauge(
		"thrbench_point_mean_seconds",
		metric.WithDescription("Mean trial time of the latest sweep point"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("create point_mean: %w", err)
	}
	return m, nil
}

func (m *Metrics) TrialDone(ctx context.Context, t *bench.Trial) {
	attrs := metric.WithAttributes(attribute.String("variant", t.Variant.String()))
	m.TrialsTotal.Add(ctx, 1, attrs)
	m.TrialDuration.Record(ctx, t.Seconds(), attrs)
	if t.Err != nil {
		m.LaunchFailures.Add(ctx, 1, attrs)
	}
}

func (m *Metrics) PointDone(ctx context.Context, p *bench.Point) {
	m.PointsTotal.Add(ctx, 1)
	for _, v := range bench.Variants {
		m.PointMean.Record(ctx, p.Means.Of(v), metric.WithAttributes(attribute.String("variant", v.String())))
	}
}
