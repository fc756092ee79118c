// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package bench compares two builds of the same threading test program.
//
// Each test in a Catalog is built twice into one directory: once against the
// user level thread library (the "thread" variant, binary <name>) and once
// against pthreads (the "pthread" variant, binary <name>-pthread).  Package
// bench addresses the needs of comparing them by:
//
// 1. resolving a test by its index in the Catalog.
//
// 2. timing single executions (trials) of a binary with a raw monotonic
// clock, through a Process which can be replaced in tests.
//
// 3. averaging a fixed number of trials per variant, always running the
// thread variant immediately before the pthread variant.
//
// 4. sweeping the first command line argument of the binaries from 0 up to
// a bound and collecting one Series of mean times per variant.
//
// Everything runs sequentially; concurrent trials would perturb the
// measurements.
package bench
