// SPDX-License-Identifier: MIT

// Package life prices life-contingent products on top of mortality.Survival.
//
// Three calculators, each a thin composition over the survival primitives:
//
//	Assurance — whole life, term, endowment, pure endowment, deferred and
//	            contingent assurances, premiums and simple policy values.
//	Annuities — annuities-certain (level, increasing, decreasing,
//	            withdrawal plans) and life annuities (whole, temporary,
//	            deferred, guaranteed, contingent).
//	Reserves  — prospective and retrospective reserves, gross-up,
//	            Zillmer adjustment and portfolio reserve statistics.
//
// The soft-sentinel contract of package mortality carries through: a
// query on an untabulated age yields 0 or NaN rather than an error.
// Errors are returned only for construction problems and for life
// annuities requested from an Annuities value built without a table.
package life
