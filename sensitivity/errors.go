// SPDX-License-Identifier: MIT
// Package sensitivity: sentinel errors.
//
// Error policy:
//   • Only sentinel variables are exposed; match with errors.Is.
//   • Context is attached with %w; sentinels never carry parameters.
//   • Option constructors (WithX) panic on meaningless values; analysis
//     functions return errors.

package sensitivity

import (
	"errors"
	"fmt"
)

var (
	// ErrShortHistory indicates the history holds no two snapshots exactly one
	// step apart, so survival ratios cannot be observed.
	ErrShortHistory = errors.New("sensitivity: history too short")

	// ErrUnsortedHistory indicates history years are not strictly ascending.
	ErrUnsortedHistory = errors.New("sensitivity: history not in ascending year order")

	// ErrEmptyProblem indicates a Problem without parameters.
	ErrEmptyProblem = errors.New("sensitivity: problem has no parameters")

	// ErrInvalidBounds indicates non-finite, inverted or out-of-domain bounds.
	ErrInvalidBounds = errors.New("sensitivity: invalid parameter bounds")

	// ErrUnknownParameter indicates a parameter name not present in the Problem.
	ErrUnknownParameter = errors.New("sensitivity: unknown parameter")

	// ErrSampleShape indicates a sample matrix or output vector whose shape
	// does not match the Saltelli layout of the Problem.
	ErrSampleShape = errors.New("sensitivity: sample shape mismatch")
)

const (
	opDeriveRanges = "DeriveRanges"
	opSample       = "Sample"
	opEvaluate     = "Evaluate"
	opAnalyze      = "Analyze"
	opEnvelope     = "Envelope"
	opRun          = "Analyzer.Run"
	opNarrow       = "Narrow"
)

func sensitivityErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
