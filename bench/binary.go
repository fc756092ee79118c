// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bench

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"os"
	"path/filepath"
)

var errNotExecutable = errors.New("not an executable file")

// Binaries holds the paths of both variants of a test.
type Binaries struct {
	Test  string
	Paths [2]string // indexed by Variant
}

// Locate checks that dir holds an executable binary for both variants of
// test name.  The error, if any, is a *LaunchError for the first variant
// which is missing.
func Locate(dir, name string) (*Binaries, error) {
	b := &Binaries{Test: name}
	for _, v := range Variants {
		p := v.Binary(dir, name)
		st, e := os.Stat(p)
		if e != nil {
			return nil, &LaunchError{Variant: v, Path: p, Err: e}
		}
		if st.IsDir() || st.Mode().Perm()&0111 == 0 {
			return nil, &LaunchError{Variant: v, Path: p, Err: errNotExecutable}
		}
		b.Paths[v] = p
	}
	return b, nil
}

// Path gives the binary of variant v.
func (b *Binaries) Path(v Variant) string {
	return b.Paths[v]
}

// Digests gives the hex encoded sha256 of each binary, indexed by Variant.
func (b *Binaries) Digests() ([2]string, error) {
	var res [2]string
	for _, v := range Variants {
		d, e := fileSha(b.Paths[v])
		if e != nil {
			return res, e
		}
		res[v] = d
	}
	return res, nil
}

func fileSha(p string) (string, error) {
	f, e := os.Open(p)
	if e != nil {
		return "", e
	}
	defer f.Close()
	sha := sha256.New()
	if _, e := io.Copy(sha, f); e != nil {
		return "", e
	}
	return hex.EncodeToString(sha.Sum(nil)), nil
}

// Entry describes a catalog test for listing.
type Entry struct {
	Index     int
	Name      string
	Available bool // both binaries present in the listed directory.
}

// List lists the tests of c whose name matches pattern (filepath.Match
// syntax, "" matches all).  If dir is not empty, Available tells whether
// Locate succeeds for the test.
func List(c *Catalog, dir, pattern string) ([]Entry, error) {
	var res []Entry
	for i, name := range c.names {
		if pattern != "" {
			m, e := filepath.Match(pattern, name)
			if e != nil {
				return nil, e
			}
			if !m {
				continue
			}
		}
		ent := Entry{Index: i, Name: name}
		if dir != "" {
			_, e := Locate(dir, name)
			ent.Available = e == nil
		}
		res = append(res, ent)
	}
	return res, nil
}
