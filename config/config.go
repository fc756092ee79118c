// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package config holds the settings of a thrbench run.
//
// Settings come from Default, are overlaid by an optional YAML file (Load)
// and then by command line flags.  Validate checks the merged result.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/irifrance/thrbench/bench"
)

// Config is the complete configuration except for the sweep itself.
type Config struct {
	Trials        int           `yaml:"trials" validate:"gte=1"`
	Timeout       time.Duration `yaml:"timeout" validate:"gte=0"`
	LaunchFailure string        `yaml:"launch_failure" validate:"oneof=fail absorb"`
	BinaryOutput  string        `yaml:"binary_output" validate:"oneof=inherit discard"`
	Catalog       []string      `yaml:"catalog" validate:"min=1,dive,required"`
	Chart         Chart         `yaml:"chart"`
	Log           Log           `yaml:"log"`
	Telemetry     Telemetry     `yaml:"telemetry"`
}

type Chart struct {
	Mode   string `yaml:"mode" validate:"oneof=auto interactive text png"`
	Output string `yaml:"output" validate:"required_if=Mode png"`
	Width  int    `yaml:"width" validate:"gte=0"`
	Height int    `yaml:"height" validate:"gte=0"`
	Table  bool   `yaml:"table"`
}

type Log struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

type Telemetry struct {
	Traces       string `yaml:"traces" validate:"oneof=none stdout otlp"`
	OTLPEndpoint string `yaml:"otlp_endpoint" validate:"required_if=Traces otlp"`
	MetricsAddr  string `yaml:"metrics_addr" validate:"omitempty,hostname_port"`
}

// Default gives the configuration used when nothing else is specified.
func Default() Config {
	return Config{
		Trials:        10,
		LaunchFailure: "fail",
		BinaryOutput:  "inherit",
		Catalog:       append([]string(nil), bench.LegacyTests...),
		Chart:         Chart{Mode: "auto"},
		Log:           Log{Level: "info", Format: "text"},
		Telemetry:     Telemetry{Traces: "none", OTLPEndpoint: "localhost:4317"},
	}
}

// Load reads the YAML file at path over Default.  An empty path gives
// Default.  The result is not validated.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks c and reports every invalid field.
func (c *Config) Validate() error {
	return check(c)
}

// LaunchPolicy gives the bench.LaunchPolicy for c.LaunchFailure.
func (c *Config) LaunchPolicy() bench.LaunchPolicy {
	p, _ := bench.ParseLaunchPolicy(c.LaunchFailure)
	return p
}

// Sweep is the part of the configuration given on the command line: which
// test, how many sweep points and where the binaries are.
type Sweep struct {
	Index int
	Bound int    `validate:"gte=0"`
	Dir   string `validate:"required,dir"`
}

// Validate checks that s has a non-negative Bound and names an existing
// directory.  Index is left to bench.Catalog.Resolve so that every bad
// index is reported as bench.ErrIndexOutOfRange.
func (s *Sweep) Validate() error {
	return check(s)
}

func check(v any) error {
	err := validate.Struct(v)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q (value %v)", fe.Namespace(), fe.ActualTag(), fe.Value()))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}
