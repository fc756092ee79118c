// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/irifrance/thrbench/bench"
	"github.com/irifrance/thrbench/config"
	"github.com/irifrance/thrbench/plot"
)

func newPickCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "pick <sweep-bound> <binary-dir>",
		Short: "choose the test interactively, then run it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			bound, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("sweep bound %q: %w", args[0], err)
			}
			sw := config.Sweep{Bound: bound, Dir: args[1]}
			if err := sw.Validate(); err != nil {
				return err
			}
			if !plot.IsTerminal(a.stdin) || !plot.IsTerminal(a.stdout) {
				return fmt.Errorf("pick needs a terminal, give the test index to thrbench instead")
			}
			ents, err := bench.List(bench.NewCatalog(a.cfg.Catalog...), sw.Dir, "")
			if err != nil {
				return err
			}
			sel := huh.NewSelect[int]().
				Title("Test").
				Options(pickOptions(ents)...).
				Value(&sw.Index)
			err = huh.NewForm(huh.NewGroup(sel)).
				WithInput(a.stdin).
				WithOutput(a.stdout).
				RunWithContext(cmd.Context())
			if err != nil {
				return err
			}
			return a.run(cmd.Context(), sw)
		},
	}
}

// pickOptions gives one option per entry, keyed by catalog index.
func pickOptions(ents []bench.Entry) []huh.Option[int] {
	opts := make([]huh.Option[int], len(ents))
	for i, e := range ents {
		label := fmt.Sprintf("%2d %s", e.Index, e.Name)
		if !e.Available {
			label += " (missing)"
		}
		opts[i] = huh.NewOption(label, e.Index)
	}
	return opts
}
