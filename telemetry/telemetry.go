// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package telemetry wires OpenTelemetry tracing and metrics for thrbench.
//
// Spans are emitted by package bench through the global tracer provider
// (sweep > point > trial); Init installs an exporting provider when traces
// are enabled.  Metrics are recorded by Metrics, a bench.Observer, and
// exposed in the Prometheus format, optionally on an HTTP endpoint while a
// sweep runs.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/irifrance/thrbench/logging"
)

// ErrUnknownExporter is returned for an unsupported trace exporter name.
var ErrUnknownExporter = errors.New("unknown exporter")

type Config struct {
	ServiceName  string
	Traces       string    // "none", "stdout" or "otlp".
	TraceWriter  io.Writer // stdout exporter destination, nil for stderr.
	OTLPEndpoint string
	OTLPInsecure bool
	MetricsAddr  string // serve /metrics here if not empty.
}

// Telemetry owns the providers and the metrics endpoint of a run.
type Telemetry struct {
	Metrics  *Metrics
	Registry *prometheus.Registry

	tp  *sdktrace.TracerProvider
	mp  *sdkmetric.MeterProvider
	srv *http.Server
	ln  net.Listener
	log *logging.Logger
}

// Init sets up tracing and metrics according to cfg.
func Init(ctx context.Context, cfg Config, log *logging.Logger) (*Telemetry, error) {
	if log == nil {
		log = logging.Nop()
	}
	name := cfg.ServiceName
	if name == "" {
		name = "thrbench"
	}
	res := resource.NewWithAttributes("", attribute.String("service.name", name))
	t := &Telemetry{Registry: prometheus.NewRegistry(), log: log}

	switch cfg.Traces {
	case "", "none":
	case "stdout", "otlp":
		tp, err := newTracerProvider(ctx, cfg, res)
		if err != nil {
			return nil, fmt.Errorf("init tracer: %w", err)
		}
		t.tp = tp
		otel.SetTracerProvider(tp)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownExporter, cfg.Traces)
	}

	exp, err := promexporter.New(promexporter.WithRegisterer(t.Registry))
	if err != nil {
		t.Shutdown(ctx)
		return nil, fmt.Errorf("create prometheus exporter: %w", err)
	}
	t.mp = sdkmetric.NewMeterProvider(sdkmetric.WithResource(res), sdkmetric.WithReader(exp))
	t.Metrics, err = NewMetrics(t.mp.Meter("github.com/irifrance/thrbench"))
	if err != nil {
		t.Shutdown(ctx)
		return nil, err
	}

	if cfg.MetricsAddr != "" {
		if err := t.serve(cfg.MetricsAddr); err != nil {
			t.Shutdown(ctx)
			return nil, err
		}
	}
	return t, nil
}

func newTracerProvider(ctx context.Context, cfg Config, res *resource.Resource) (*sdktrace.TracerProvider, error) {
	var exporter sdktrace.SpanExporter
	var err error
	switch cfg.Traces {
	case "stdout":
		w := cfg.TraceWriter
		if w == nil {
			w = os.Stderr
		}
		exporter, err = stdouttrace.New(stdouttrace.WithWriter(w), stdouttrace.WithPrettyPrint())
	case "otlp":
		opts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(cfg.OTLPEndpoint)}
		if cfg.OTLPInsecure {
			opts = append(opts, otlptracegrpc.WithInsecure())
		}
		exporter, err = otlptracegrpc.New(ctx, opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("create exporter: %w", err)
	}
	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	), nil
}

// Handler serves the metrics in the Prometheus text format.
func (t *Telemetry) Handler() http.Handler {
	return promhttp.HandlerFor(t.Registry, promhttp.HandlerOpts{})
}

func (t *Telemetry) serve(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("metrics endpoint: %w", err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", t.Handler())
	t.ln = ln
	t.srv = &http.Server{Handler: mux}
	go func() {
		if err := t.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			t.log.Error("metrics endpoint stopped", "error", err)
		}
	}()
	t.log.Info("serving metrics", "addr", ln.Addr().String())
	return nil
}

// MetricsAddr gives the address of the metrics endpoint, "" if none.
func (t *Telemetry) MetricsAddr() string {
	if t.ln == nil {
		return ""
	}
	return t.ln.Addr().String()
}

// Shutdown flushes spans and stops the metrics endpoint.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	var errs []error
	if t.srv != nil {
		errs = append(errs, t.srv.Shutdown(ctx))
	}
	if t.tp != nil {
		errs = append(errs, t.tp.Shutdown(ctx))
	}
	if t.mp != nil {
		errs = append(errs, t.mp.Shutdown(ctx))
	}
	return errors.Join(errs...)
}
