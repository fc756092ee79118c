// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bench

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is returned when a test index is not in the Catalog.
	ErrIndexOutOfRange = errors.New("test index out of range")

	// ErrBinaryNotFound is returned when a variant binary is missing,
	// not executable, or otherwise cannot be launched.
	ErrBinaryNotFound = errors.New("binary not found")

	// ErrTrialTimeout is returned when a trial outlives the configured
	// per trial timeout.
	ErrTrialTimeout = errors.New("trial timed out")

	ErrInvalidTrials = errors.New("number of trials must be positive")
	ErrInvalidBound  = errors.New("sweep bound must not be negative")
)

// IndexError describes an index outside [0, Len).
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("test index %d not in [0, %d)", e.Index, e.Len)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

// LaunchError describes a variant binary which could not be started.
//
// errors.Is(err, ErrBinaryNotFound) holds for every LaunchError; the
// underlying cause is available through errors.As or Unwrap.
type LaunchError struct {
	Variant Variant
	Path    string
	Err     error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("%s binary %s: %s", e.Variant, e.Path, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

func (e *LaunchError) Is(target error) bool {
	return target == ErrBinaryNotFound
}
