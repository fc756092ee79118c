// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package plot

import (
	"fmt"
	"strings"

	"github.com/irifrance/thrbench/bench"
)

// Table produces a summary of both series of r, one row per sweep value.
// The ratio column is pthread over thread.
func Table(r *bench.Result) string {
	hdr := `
Test %s, %d trials per point
-------------------------------------------------------
| x      | thread (s)     | pthread (s)    | ratio    |
-------------------------------------------------------`
	row := `| %-6d | %-14.6f | %-14.6f | %-8s |`
	parts := make([]string, 0, r.Len()+2)
	parts = append(parts, fmt.Sprintf(hdr, r.Test, r.Trials))
	for x := 0; x < r.Len(); x++ {
		th, pt := r.Thread.Means[x], r.Pthread.Means[x]
		ratio := "-"
		if th > 0 {
			ratio = fmt.Sprintf("%.2f", pt/th)
		}
		parts = append(parts, fmt.Sprintf(row, x, th, pt, ratio))
	}
	parts = append(parts, strings.Repeat("-", 55))
	return strings.Join(parts, "\n")
}
