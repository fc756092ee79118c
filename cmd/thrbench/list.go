// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/irifrance/thrbench/bench"
)

var (
	styleIndex   = lipgloss.NewStyle().Width(4).Align(lipgloss.Right).Foreground(lipgloss.Color("#20B9B4"))
	styleName    = lipgloss.NewStyle().Bold(true)
	styleOK      = lipgloss.NewStyle().Foreground(lipgloss.Color("#2CD7C7"))
	styleMissing = lipgloss.NewStyle().Foreground(lipgloss.Color("#E74C3C"))
)

func newListCmd(a *app) *cobra.Command {
	var pattern string
	cmd := &cobra.Command{
		Use:   "list [binary-dir]",
		Short: "list the catalog",
		Long: `list lists the catalog with indices, and whether both binaries
exist when binary-dir is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := ""
			if len(args) == 1 {
				dir = args[0]
			}
			ents, err := bench.List(bench.NewCatalog(a.cfg.Catalog...), dir, pattern)
			if err != nil {
				return err
			}
			writeEntries(cmd.OutOrStdout(), ents, dir != "")
			return nil
		},
	}
	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "only list tests matching this pattern")
	return cmd
}

func writeEntries(w io.Writer, ents []bench.Entry, avail bool) {
	for _, e := range ents {
		line := styleIndex.Render(fmt.Sprintf("%d", e.Index)) + "  " + styleName.Render(e.Name)
		if avail {
			if e.Available {
				line += "  " + styleOK.Render("ok")
			} else {
				line += "  " + styleMissing.Render("missing")
			}
		}
		fmt.Fprintln(w, line)
	}
}
