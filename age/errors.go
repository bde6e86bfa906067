// SPDX-License-Identifier: MIT
// Package age: sentinel errors. Callers branch with errors.Is; context is
// attached with %w at the call site, never baked into the sentinel text.

package age

import "errors"

var (
	// ErrUnknownGroup is returned when a label is not one of the fixed bands.
	ErrUnknownGroup = errors.New("age: unknown age group")

	// ErrNoNextGroup is returned by Next for the open-ended top band.
	ErrNoNextGroup = errors.New("age: open-ended group has no successor")

	// ErrNoPreviousGroup is returned by Previous for the 0-4 band.
	ErrNoPreviousGroup = errors.New("age: first group has no predecessor")
)
