// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/irifrance/thrbench/bench"
	"github.com/irifrance/thrbench/config"
	"github.com/irifrance/thrbench/logging"
	"github.com/irifrance/thrbench/plot"
	"github.com/irifrance/thrbench/telemetry"
)

// run performs the sweep described by sw and presents the result.
func (a *app) run(ctx context.Context, sw config.Sweep) error {
	if sw.Dir != "" {
		dir, err := filepath.Abs(sw.Dir)
		if err != nil {
			return err
		}
		sw.Dir = dir
	}
	if err := sw.Validate(); err != nil {
		return err
	}
	cfg := &a.cfg
	presenter, err := plot.Select(plot.Options{
		Mode:   cfg.Chart.Mode,
		Output: cfg.Chart.Output,
		Width:  cfg.Chart.Width,
		Height: cfg.Chart.Height,
		Stdout: a.stdout,
		Stdin:  a.stdin})
	if err != nil {
		return err
	}
	if png, ok := presenter.(*plot.PNG); ok {
		if err := png.CheckLen(sw.Bound); err != nil {
			return err
		}
	}

	sess := bench.NewSession()
	log := a.log.With("run_id", sess.ID)
	a.log.Info("session", sess.LogArgs()...)

	tel, err := telemetry.Init(ctx, telemetry.Config{
		Traces:       cfg.Telemetry.Traces,
		OTLPEndpoint: cfg.Telemetry.OTLPEndpoint,
		OTLPInsecure: true,
		MetricsAddr:  cfg.Telemetry.MetricsAddr}, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := tel.Shutdown(context.Background()); err != nil {
			log.Warn("telemetry shutdown", "error", err)
		}
	}()
	if addr := tel.MetricsAddr(); addr != "" {
		log.Info("serving metrics", "addr", addr)
	}

	proc := &bench.ExecProcess{Timeout: cfg.Timeout}
	if cfg.BinaryOutput == "inherit" {
		proc.Stdout = a.stdout
		proc.Stderr = a.stderr
	}
	runner := bench.NewRunner(proc, log)
	runner.Launch = cfg.LaunchPolicy()
	runner.Observer = tel.Metrics

	drv := &bench.Driver{
		Catalog:   bench.NewCatalog(cfg.Catalog...),
		Averager:  &bench.Averager{Runner: runner, Dir: sw.Dir},
		Log:       log,
		Observer:  tel.Metrics,
		Preflight: preflight(sw.Dir, runner.Launch, log)}
	res, err := drv.Run(ctx, sw.Index, sw.Bound, cfg.Trials)
	if err != nil {
		return err
	}
	if cfg.Chart.Table {
		fmt.Fprintln(a.stdout, plot.Table(res))
	}
	return presenter.Present(ctx, plot.FromResult(res))
}

// preflight gives a Driver.Preflight checking that both binaries of a test
// exist in dir.  Under bench.LaunchAbsorb missing binaries are only logged.
func preflight(dir string, policy bench.LaunchPolicy, log *logging.Logger) func(string) error {
	return func(name string) error {
		bins, err := bench.Locate(dir, name)
		if err != nil {
			if policy == bench.LaunchAbsorb {
				log.Warn("measuring test with missing binaries", "test", name, "error", err)
				return nil
			}
			return err
		}
		if !log.Enabled(logging.LevelDebug) {
			return nil
		}
		sums, err := bins.Digests()
		if err != nil {
			return err
		}
		for _, v := range bench.Variants {
			log.Debug("binary", "variant", v.String(), "path", bins.Path(v), "sha256", sums[v])
		}
		return nil
	}
}
