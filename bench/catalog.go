// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bench

// LegacyTests lists the tests of the thread library battery in the order in
// which they have always been numbered on the command line.
var LegacyTests = []string{
	"01-main",
	"02-switch",
	"11-join",
	"12-join-main",
	"21-create-many",
	"22-create-many-recursive",
	"23-create-many-once",
	"31-switch-many",
	"32-switch-many-join",
	"33-switch-many-cascade",
	"51-fibonacci",
}

// Type Catalog is an immutable, ordered list of test names.
type Catalog struct {
	names []string
}

// NewCatalog creates a Catalog holding a copy of names.
func NewCatalog(names ...string) *Catalog {
	c := &Catalog{names: make([]string, len(names))}
	copy(c.names, names)
	return c
}

// DefaultCatalog returns a Catalog of LegacyTests.
func DefaultCatalog() *Catalog {
	return NewCatalog(LegacyTests...)
}

func (c *Catalog) Len() int {
	return len(c.names)
}

// Resolve returns the name at position i.  If i is not in [0, c.Len()),
// the returned error is an *IndexError matching ErrIndexOutOfRange.
func (c *Catalog) Resolve(i int) (string, error) {
	if i < 0 || i >= len(c.names) {
		return "", &IndexError{Index: i, Len: len(c.names)}
	}
	return c.names[i], nil
}

// Names returns a copy of the names in c.
func (c *Catalog) Names() []string {
	res := make([]string, len(c.names))
	copy(res, c.names)
	return res
}
