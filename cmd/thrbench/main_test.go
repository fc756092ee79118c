// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irifrance/thrbench/bench"
	"github.com/irifrance/thrbench/plot"
)

// binDir is a directory of test binaries which append their name and
// arguments to a shared log.
type binDir struct {
	dir string
	log string
}

func newBinDir(t *testing.T, bins ...string) *binDir {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts")
	}
	b := &binDir{dir: t.TempDir()}
	b.log = filepath.Join(t.TempDir(), "calls")
	for _, name := range bins {
		body := fmt.Sprintf("#!/bin/sh\necho \"$(basename \"$0\") $*\" >> '%s'\n", b.log)
		require.NoError(t, os.WriteFile(filepath.Join(b.dir, name), []byte(body), 0755))
	}
	return b
}

// calls gives the logged invocations, nil if there were none.
func (b *binDir) calls(t *testing.T) []string {
	t.Helper()
	data, err := os.ReadFile(b.log)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	require.NoError(t, err)
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

type result struct {
	out  string
	logs string
	err  error
}

func execute(t *testing.T, args ...string) result {
	t.Helper()
	stdout, err := os.CreateTemp(t.TempDir(), "stdout")
	require.NoError(t, err)
	defer stdout.Close()
	var logs bytes.Buffer
	a := &app{stdout: stdout, stderr: &logs}

	root := newRootCmd(a)
	var cmdOut bytes.Buffer
	root.SetOut(&cmdOut)
	root.SetErr(&cmdOut)
	root.SetArgs(args)
	runErr := root.ExecuteContext(context.Background())

	data, err := os.ReadFile(stdout.Name())
	require.NoError(t, err)
	return result{out: string(data) + cmdOut.String(), logs: logs.String(), err: runErr}
}

func TestRunTextChart(t *testing.T) {
	b := newBinDir(t, "01-main", "01-main-pthread")

	res := execute(t, "--chart", "text", "--width", "40", "--height", "8",
		"-n", "2", "--table", "--binary-output", "discard", "0", "3", b.dir)
	require.NoError(t, res.err)

	assert.Contains(t, res.out, "Performance of 01-main, average of 2 trials")
	assert.Contains(t, res.out, "Test 01-main, 2 trials per point")
	assert.Contains(t, res.out, "★ - thread")
	assert.Contains(t, res.logs, "run_id=")

	calls := b.calls(t)
	require.Len(t, calls, 3*2*2)
	for x := 0; x < 3; x++ {
		for k := 0; k < 2; k++ {
			i := 4*x + 2*k
			assert.Equal(t, fmt.Sprintf("01-main %d 10", x), calls[i])
			assert.Equal(t, fmt.Sprintf("01-main-pthread %d 10", x), calls[i+1])
		}
	}
}

func TestRunPNGChart(t *testing.T) {
	b := newBinDir(t, "02-switch", "02-switch-pthread")
	out := filepath.Join(t.TempDir(), "chart.png")

	res := execute(t, "-o", out, "-n", "1", "--binary-output", "discard", "1", "2", b.dir)
	require.NoError(t, res.err)
	st, err := os.Stat(out)
	require.NoError(t, err)
	assert.Positive(t, st.Size())
}

func TestRunPNGTooFewPoints(t *testing.T) {
	b := newBinDir(t, "01-main", "01-main-pthread")
	out := filepath.Join(t.TempDir(), "chart.png")

	res := execute(t, "-o", out, "-n", "1", "0", "1", b.dir)
	assert.ErrorIs(t, res.err, plot.ErrPresentation)
	assert.Nil(t, b.calls(t))
	assert.NoFileExists(t, out)
}

func TestRunInCurrentDir(t *testing.T) {
	b := newBinDir(t, "01-main", "01-main-pthread")
	t.Chdir(b.dir)

	res := execute(t, "--chart", "text", "-n", "1", "--binary-output", "discard", "0", "2", ".")
	require.NoError(t, res.err)
	assert.Equal(t, []string{
		"01-main 0 10", "01-main-pthread 0 10",
		"01-main 1 10", "01-main-pthread 1 10"}, b.calls(t))
}

func TestRunIndexOutOfRange(t *testing.T) {
	b := newBinDir(t, "01-main", "01-main-pthread")

	res := execute(t, "--chart", "text", "11", "3", b.dir)
	assert.ErrorIs(t, res.err, bench.ErrIndexOutOfRange)
	assert.Nil(t, b.calls(t))

	res = execute(t, "--chart", "text", "--", "-1", "3", b.dir)
	assert.ErrorIs(t, res.err, bench.ErrIndexOutOfRange)
	assert.Nil(t, b.calls(t))
}

func TestRunMissingBinary(t *testing.T) {
	b := newBinDir(t, "01-main")

	res := execute(t, "--chart", "text", "-n", "2", "0", "2", b.dir)
	assert.ErrorIs(t, res.err, bench.ErrBinaryNotFound)
	assert.Nil(t, b.calls(t))
}

func TestRunMissingBinaryAbsorbed(t *testing.T) {
	b := newBinDir(t, "01-main")

	res := execute(t, "--chart", "text", "--launch-failure", "absorb",
		"--binary-output", "discard", "-n", "2", "0", "2", b.dir)
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "Performance of 01-main")
	assert.Contains(t, res.logs, "missing binaries")
	assert.Equal(t, []string{
		"01-main 0 10", "01-main 0 10",
		"01-main 1 10", "01-main 1 10"}, b.calls(t))
}

func TestConfigFileUnderFlags(t *testing.T) {
	b := newBinDir(t, "a-test", "a-test-pthread")
	cfgPath := filepath.Join(t.TempDir(), "thrbench.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
trials: 1
binary_output: discard
catalog: [a-test]
chart:
  mode: text
`), 0644))

	res := execute(t, "--config", cfgPath, "0", "2", b.dir)
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "Performance of a-test, average of 1 trials")
	assert.Len(t, b.calls(t), 2*1*2)

	res = execute(t, "--config", cfgPath, "-n", "3", "0", "1", b.dir)
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "average of 3 trials")
}

func TestInvalidInvocations(t *testing.T) {
	b := newBinDir(t, "01-main", "01-main-pthread")

	for _, args := range [][]string{
		{"--trials", "0", "0", "2", b.dir},
		{"--chart", "svg", "0", "2", b.dir},
		{"--chart", "png", "0", "2", b.dir},
		{"x", "2", b.dir},
		{"0", "y", b.dir},
		{"0", "2", filepath.Join(b.dir, "nope")},
		{"0", "2"},
	} {
		res := execute(t, args...)
		assert.Error(t, res.err, "%v", args)
	}
	assert.Nil(t, b.calls(t))
}

func TestList(t *testing.T) {
	b := newBinDir(t, "01-main", "01-main-pthread", "02-switch")

	res := execute(t, "list", b.dir)
	require.NoError(t, res.err)
	lines := strings.Split(strings.TrimSpace(res.out), "\n")
	require.Len(t, lines, len(bench.LegacyTests))
	assert.Contains(t, lines[0], "01-main")
	assert.Contains(t, lines[0], "ok")
	assert.Contains(t, lines[1], "02-switch")
	assert.Contains(t, lines[1], "missing")

	res = execute(t, "list", "-p", "3*")
	require.NoError(t, res.err)
	lines = strings.Split(strings.TrimSpace(res.out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "31-switch-many")
	assert.NotContains(t, res.out, "ok")
}

func TestPickNeedsTerminal(t *testing.T) {
	b := newBinDir(t, "01-main", "01-main-pthread")

	res := execute(t, "pick", "2", b.dir)
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "terminal")
	assert.Nil(t, b.calls(t))
}

func TestPickOptions(t *testing.T) {
	opts := pickOptions([]bench.Entry{
		{Index: 0, Name: "01-main", Available: true},
		{Index: 3, Name: "12-join-main"}})
	require.Len(t, opts, 2)
	assert.Equal(t, " 0 01-main", opts[0].Key)
	assert.Equal(t, 0, opts[0].Value)
	assert.Equal(t, " 3 12-join-main (missing)", opts[1].Key)
	assert.Equal(t, 3, opts[1].Value)
}
