// SPDX-License-Identifier: MIT

package finance

import "errors"

var (
	// ErrInvalidRate indicates a rate ≤ -1, NaN or ±Inf.
	ErrInvalidRate = errors.New("finance: rate must be finite and greater than -1")

	// ErrInvalidFrequency indicates a compounding or coupon frequency < 1.
	ErrInvalidFrequency = errors.New("finance: frequency must be at least 1")

	// ErrLengthMismatch indicates parallel slices of different length.
	ErrLengthMismatch = errors.New("finance: length mismatch")

	// ErrTooFewPoints indicates a yield curve with fewer than two points.
	ErrTooFewPoints = errors.New("finance: yield curve needs at least two points")

	// ErrNonPositiveMaturity indicates a maturity ≤ 0.
	ErrNonPositiveMaturity = errors.New("finance: maturities must be positive")

	// ErrDuplicateMaturity indicates the same maturity given twice.
	ErrDuplicateMaturity = errors.New("finance: duplicate maturity")

	// ErrBadInterval indicates a forward period whose start is not before its end.
	ErrBadInterval = errors.New("finance: start must be before end")
)
