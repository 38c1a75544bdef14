// SPDX-License-Identifier: MIT

package life

import "errors"

var (
	// ErrNoTable is returned when a life annuity is requested from an
	// Annuities calculator constructed without WithTable.
	ErrNoTable = errors.New("life: mortality table required for life annuities")

	// ErrInvalidPeriods is returned for a withdrawal plan with periods ≤ 0.
	ErrInvalidPeriods = errors.New("life: number of periods must be positive")

	// ErrEmptyReserves is returned by Distribution when no reserves are given.
	ErrEmptyReserves = errors.New("life: reserves must be non-empty")
)
