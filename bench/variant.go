// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bench

import (
	"path/filepath"
	"strings"
)

// Variant identifies one of the two builds of a test.
type Variant int

const (
	Plain Variant = iota
	Pthread
)

// Variants lists the variants in the order in which they are measured.
var Variants = [2]Variant{Plain, Pthread}

func (v Variant) String() string {
	switch v {
	case Plain:
		return "thread"
	case Pthread:
		return "pthread"
	default:
		return "unknown"
	}
}

// Suffix is appended to the test name to form the binary name.
func (v Variant) Suffix() string {
	if v == Pthread {
		return "-pthread"
	}
	return ""
}

// Binary gives the path of the binary for test name in dir.  The result
// always contains a separator, so that it is never looked up in $PATH.
func (v Variant) Binary(dir, name string) string {
	p := filepath.Join(dir, name+v.Suffix())
	if !strings.ContainsRune(p, filepath.Separator) {
		p = "." + string(filepath.Separator) + p
	}
	return p
}
