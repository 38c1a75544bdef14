// SPDX-License-Identifier: MIT

// Package mortality models discrete life tables and the actuarial
// present-value primitives built on top of them.
//
// What is here?
//
//	Table     — per-age one-year mortality rates qx plus the derived
//	            px, lx and dx columns, computed once at construction.
//	Survival  — a Table bound to an annual interest rate i, exposing
//	            nPx / nQx / tPx, annuities-due and immediate, and
//	            end-of-year-of-death assurances.
//
// Both types are immutable once built. A single *Table or *Survival may be
// shared by any number of goroutines without locking.
//
// Two error policies:
//
//   - Hard errors are returned by constructors (NewTable, FromRows,
//     NewSurvival) and by Table.LifeExpectancy for an untabulated age.
//     They are sentinel values matched with errors.Is.
//   - Everything else degrades softly. Lookups of ages outside the table
//     yield NaN, and survival queries over invalid periods or untabulated
//     endpoints yield 0.0 (or NaN where a horizon cannot be defined).
//     Pricing code sums over these values, so they are returned rather
//     than raised. Use Table.Lookup when presence must be told apart from
//     a genuine zero.
//
// Extrapolation past the last tabulated age holds the final one-year
// survival probability constant. Fractional years inside the table use a
// linear (UDD-style) correction; beyond the table they use a constant
// force of mortality μ = −ln(1 − q_ω).
//
// Usage:
//
//	tbl, err := mortality.NewTable(ages, qx, mortality.WithName("ZA85-90"))
//	if err != nil {
//		return err
//	}
//	sf, err := mortality.NewSurvival(tbl, 0.05)
//	if err != nil {
//		return err
//	}
//	a := sf.AnnuityDue(30, 10)     // ä_{30:10}
//	A := sf.WholeLifeAssurance(30) // A_30
package mortality
