// SPDX-License-Identifier: MIT
// Package projection: sentinel error set.
//
// Error policy:
//   - Only package-level sentinels are exposed; match them with errors.Is.
//   - Context (sex, year, band) is attached with %w at the detection site.
//   - A zero denominator while deriving a rate is NOT an error: the ratio
//     clamps to 0.0 (see SurvivalRate).
//   - Algorithms never panic on data; option constructors panic on
//     nonsensical values (programmer error).

package projection

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingCohort indicates that a snapshot lacks a required age band.
	// Input shape is a precondition; the computation stops at the first gap.
	ErrMissingCohort = errors.New("projection: missing cohort data")

	// ErrInvalidCount indicates a negative, NaN or infinite cohort count.
	ErrInvalidCount = errors.New("projection: invalid cohort count")

	// ErrSexMismatch indicates a snapshot was supplied in a slot reserved for
	// the other sex (e.g. a Male snapshot as FemaleEnd).
	ErrSexMismatch = errors.New("projection: snapshot sex mismatch")

	// ErrMisalignedYear indicates the target year is not on the five-year
	// grid anchored at the most recent historical snapshot.
	ErrMisalignedYear = errors.New("projection: year not aligned to step")

	// ErrHorizon indicates the target year is earlier than one full step
	// after the most recent historical snapshot.
	ErrHorizon = errors.New("projection: end year before first step")
)

// Operation tags for error wrapping.
const (
	opDeriveSurvival = "DeriveSurvivalRates"
	opDeriveBirth    = "DeriveBirthRates"
	opNewModel       = "NewModel"
	opPredict        = "Predict"
)

// projectionErrorf wraps err with the operation name.
func projectionErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
