// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package plot

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

const (
	ModeAuto        = "auto"
	ModeInteractive = "interactive"
	ModeText        = "text"
	ModePNG         = "png"
)

// Options configure Select.
type Options struct {
	Mode   string
	Output string // png path.
	Width  int    // text columns or png pixels, 0 to pick.
	Height int    // text rows or png pixels, 0 to pick.
	Stdout *os.File
	Stdin  *os.File
}

// IsTerminal tells whether f is a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Select gives the Presenter for opts.  In ModeAuto, a png is written if
// an Output is given, the Viewer is used if stdout is a terminal and a text
// plot is written to stdout otherwise.
func Select(opts Options) (Presenter, error) {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	mode := opts.Mode
	if mode == "" || mode == ModeAuto {
		switch {
		case opts.Output != "":
			mode = ModePNG
		case IsTerminal(opts.Stdout):
			mode = ModeInteractive
		default:
			mode = ModeText
		}
	}
	switch mode {
	case ModeInteractive:
		if !IsTerminal(opts.Stdout) {
			return nil, presentErr("interactive chart needs a terminal on stdout")
		}
		return newViewer(opts.Stdin, opts.Stdout), nil
	case ModeText:
		cols, rows := textSize(opts)
		return &Text{W: opts.Stdout, Cols: cols, Rows: rows}, nil
	case ModePNG:
		if opts.Output == "" {
			return nil, presentErr("png chart needs an output path")
		}
		return &PNG{Path: opts.Output, Width: opts.Width, Height: opts.Height}, nil
	}
	return nil, fmt.Errorf("unknown chart mode %q", opts.Mode)
}

// newViewer leaves In and Out nil for nil files, so that the viewer falls
// back to the process streams.
func newViewer(in, out *os.File) *Viewer {
	v := &Viewer{}
	if in != nil {
		v.In = in
	}
	if out != nil {
		v.Out = out
	}
	return v
}

func textSize(opts Options) (cols, rows int) {
	cols, rows = 72, 20
	if IsTerminal(opts.Stdout) {
		if w, h, e := term.GetSize(int(opts.Stdout.Fd())); e == nil {
			cols, rows = max(w-16, 10), max(h-10, 4)
		}
	}
	if opts.Width > 0 {
		cols = opts.Width
	}
	if opts.Height > 0 {
		rows = opts.Height
	}
	return cols, rows
}
