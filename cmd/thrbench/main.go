// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/irifrance/thrbench/config"
	"github.com/irifrance/thrbench/logging"
)

// app carries the streams and settings shared by all commands.
type app struct {
	stdin  *os.File
	stdout *os.File
	stderr io.Writer

	configPath string
	flags      flagVals

	cfg config.Config
	log *logging.Logger
}

type flagVals struct {
	trials        int
	timeout       time.Duration
	launchFailure string
	binaryOutput  string
	chart         string
	out           string
	width         int
	height        int
	table         bool
	logLevel      string
	logFormat     string
	traces        string
	otlpEndpoint  string
	metricsAddr   string
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "thrbench [flags] <test-index> <sweep-bound> <binary-dir>",
		Short: "compare thread and pthread builds of a test over a sweep",
		Long: `thrbench runs binary <name> and <name>-pthread in binary-dir with
arguments "<x> 10" for x in 0 ... sweep-bound-1, averages the elapsed
time of each over a number of trials and charts the two series.`,
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("test index %q: %w", args[0], err)
			}
			bound, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("sweep bound %q: %w", args[1], err)
			}
			return a.run(cmd.Context(), config.Sweep{Index: idx, Bound: bound, Dir: args[2]})
		},
	}
	def := config.Default()
	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.IntVarP(&a.flags.trials, "trials", "n", def.Trials, "trials per variant and sweep point")
	pf.DurationVar(&a.flags.timeout, "timeout", def.Timeout, "max per trial duration, 0 for none")
	pf.StringVar(&a.flags.launchFailure, "launch-failure", def.LaunchFailure, "fail or absorb")
	pf.StringVar(&a.flags.binaryOutput, "binary-output", def.BinaryOutput, "inherit or discard binary output")
	pf.StringVar(&a.flags.chart, "chart", def.Chart.Mode, "auto, interactive, text or png")
	pf.StringVarP(&a.flags.out, "out", "o", "", "png chart path")
	pf.IntVar(&a.flags.width, "width", 0, "chart width, 0 to pick")
	pf.IntVar(&a.flags.height, "height", 0, "chart height, 0 to pick")
	pf.BoolVar(&a.flags.table, "table", false, "print a summary table")
	pf.StringVar(&a.flags.logLevel, "log-level", def.Log.Level, "debug, info, warn or error")
	pf.StringVar(&a.flags.logFormat, "log-format", def.Log.Format, "text or json")
	pf.StringVar(&a.flags.traces, "traces", def.Telemetry.Traces, "none, stdout or otlp")
	pf.StringVar(&a.flags.otlpEndpoint, "otlp-endpoint", def.Telemetry.OTLPEndpoint, "OTLP/gRPC trace endpoint")
	pf.StringVar(&a.flags.metricsAddr, "metrics-addr", "", "serve prometheus metrics on this address")

	root.AddCommand(newListCmd(a), newPickCmd(a))
	return root
}

// setup loads the configuration file, applies the flags given on the
// command line over it, validates the result and creates the logger.
func (a *app) setup(fs *pflag.FlagSet) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	f := &a.flags
	set := func(name string, apply func()) {
		if fs.Changed(name) {
			apply()
		}
	}
	set("trials", func() { cfg.Trials = f.trials })
	set("timeout", func() { cfg.Timeout = f.timeout })
	set("launch-failure", func() { cfg.LaunchFailure = f.launchFailure })
	set("binary-output", func() { cfg.BinaryOutput = f.binaryOutput })
	set("chart", func() { cfg.Chart.Mode = f.chart })
	set("out", func() { cfg.Chart.Output = f.out })
	set("width", func() { cfg.Chart.Width = f.width })
	set("height", func() { cfg.Chart.Height = f.height })
	set("table", func() { cfg.Chart.Table = f.table })
	set("log-level", func() { cfg.Log.Level = f.logLevel })
	set("log-format", func() { cfg.Log.Format = f.logFormat })
	set("traces", func() { cfg.Telemetry.Traces = f.traces })
	set("otlp-endpoint", func() { cfg.Telemetry.OTLPEndpoint = f.otlpEndpoint })
	set("metrics-addr", func() { cfg.Telemetry.MetricsAddr = f.metricsAddr })
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	lvl, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	a.log = logging.New(logging.Config{
		Level:   lvl,
		JSON:    cfg.Log.Format == "json",
		Output:  a.stderr,
		Service: "thrbench"})
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	a := &app{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}
	err := newRootCmd(a).ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "thrbench: %s\n", err)
		os.Exit(1)
	}
}
