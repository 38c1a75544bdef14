// SPDX-License-Identifier: MIT

package mortality

import "errors"

// Every message is prefixed with "mortality: ". Constructors wrap these
// sentinels with fmt.Errorf("%w: ...") to add the offending index or value;
// callers match with errors.Is.
var (
	// ErrLengthMismatch is returned when ages and qx differ in length.
	ErrLengthMismatch = errors.New("mortality: ages and qx must have the same length")

	// ErrQxOutOfRange is returned when a qx value lies outside [0,1] (NaN included).
	ErrQxOutOfRange = errors.New("mortality: all qx values must be between 0 and 1")

	// ErrEmptyTable is returned when a table would hold no rows.
	ErrEmptyTable = errors.New("mortality: table has no ages")

	// ErrAgesNotIncreasing is returned for out-of-order or duplicate ages.
	ErrAgesNotIncreasing = errors.New("mortality: ages must be strictly increasing")

	// ErrAgeNotFound is returned by LifeExpectancy for an untabulated age.
	ErrAgeNotFound = errors.New("mortality: age not found in mortality table")

	// ErrMissingColumn is returned by FromRows when a row lacks the age or qx column.
	ErrMissingColumn = errors.New("mortality: missing column")

	// ErrBadCell is returned by FromRows when a cell cannot be converted to a number.
	ErrBadCell = errors.New("mortality: cell is not numeric")

	// ErrNilTable is returned by NewSurvival when no table is supplied.
	ErrNilTable = errors.New("mortality: table is nil")

	// ErrInvalidRate is returned for an interest rate that is ≤ -1, NaN or ±Inf.
	ErrInvalidRate = errors.New("mortality: interest rate must be finite and greater than -1")
)
