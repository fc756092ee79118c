// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package plot

import (
	"context"
	"fmt"
	"io"
	"math"
	"strings"
)

var ticks = []rune("★☆¤♠Ϟ")

const (
	clash  = '◇' // two lines in one cell.
	empty  = -1
	shared = -2
)

func tick(i int) string {
	return string(ticks[i%len(ticks)])
}

// Utf8 produces a text image of c with a plot area of cols columns and rows
// rows, suitable for a utf8 monospaced font terminal.  Values are linearly
// interpolated between sweep points so that each line is continuous.
//
// paint, if non-nil, decorates the tick of line i.
func Utf8(c *Chart, cols, rows int, paint func(i int, s string) string) string {
	if cols < 2 {
		cols = 2
	}
	if rows < 2 {
		rows = 2
	}
	if paint == nil {
		paint = func(_ int, s string) string { return s }
	}
	owner := make([][]int, rows)
	for i := range owner {
		owner[i] = make([]int, cols)
		for j := range owner[i] {
			owner[i][j] = empty
		}
	}
	n := c.Len()
	maxY := c.Max()
	scale := maxY
	if scale <= 0 {
		scale = 1
	}
	lastCol := cols - 1
	if n <= 1 {
		lastCol = 0
	}
	for li, ln := range c.Lines {
		m := len(ln.Values)
		if m == 0 {
			continue
		}
		for x := 0; x <= lastCol; x++ {
			f := 0.0
			if n > 1 {
				f = float64(x) * float64(n-1) / float64(cols-1)
			}
			if f > float64(m-1) {
				break
			}
			lo := int(f)
			hi := lo + 1
			if hi > m-1 {
				hi = m - 1
			}
			v := ln.Values[lo] + (ln.Values[hi]-ln.Values[lo])*(f-float64(lo))
			y := int(math.Round(v / scale * float64(rows-1)))
			y = max(0, min(rows-1, y))
			cell := &owner[rows-1-y][x]
			switch *cell {
			case empty:
				*cell = li
			case li, shared:
			default:
				*cell = shared
			}
		}
	}

	top := fmt.Sprintf("%.4gs", maxY)
	w := max(len(top), 2)
	var sb strings.Builder
	if c.Title != "" {
		fmt.Fprintf(&sb, "%s\n", c.Title)
	}
	if c.YLabel != "" {
		fmt.Fprintf(&sb, "%*s %s\n", w, "", c.YLabel)
	}
	for r := 0; r < rows; r++ {
		lbl := ""
		if r == 0 {
			lbl = top
		} else if r == rows-1 {
			lbl = "0s"
		}
		fmt.Fprintf(&sb, "%*s|", w, lbl)
		for x := 0; x < cols; x++ {
			switch o := owner[r][x]; o {
			case empty:
				sb.WriteByte(' ')
			case shared:
				sb.WriteRune(clash)
			default:
				sb.WriteString(paint(o, tick(o)))
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "%*s+%s\n", w, "", strings.Repeat("-", cols))
	if n > 0 {
		xr := "0"
		if n > 1 {
			last := fmt.Sprint(n - 1)
			xr += strings.Repeat(" ", max(1, cols-1-len(last))) + last
		}
		fmt.Fprintf(&sb, "%*s %s\n", w, "", xr)
	}
	if c.XLabel != "" {
		pad := max(0, (cols-len(c.XLabel))/2)
		fmt.Fprintf(&sb, "%*s %s%s\n", w, "", strings.Repeat(" ", pad), c.XLabel)
	}
	for i, ln := range c.Lines {
		fmt.Fprintf(&sb, "%*s   %s - %s\n", w, "", paint(i, tick(i)), ln.Name)
	}
	return sb.String()
}

// Text writes charts as utf8 plots.
type Text struct {
	W    io.Writer
	Cols int
	Rows int
}

func (t *Text) Present(_ context.Context, c *Chart) error {
	if _, e := io.WriteString(t.W, Utf8(c, t.Cols, t.Rows, nil)); e != nil {
		return presentErr("writing text chart: %s", e)
	}
	return nil
}
