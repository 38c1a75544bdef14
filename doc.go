// SPDX-License-Identifier: MIT

// Package actuneo is a toolkit for discrete life tables and the
// life-contingent values built on top of them.
//
// What is actuneo?
//
//	A small, pure-Go set of packages for actuarial arithmetic:
//		• mortality/ — Table (qx, px, lx, dx, e_x) and Survival (nPx, tPx,
//		               life annuities, assurances, net single premiums)
//		• life/      — assurance products, annuities-certain and life
//		               annuities, premiums and policy reserves
//		• finance/   — interest conversions, level annuities, loans,
//		               yield curves, duration and convexity
//		• tableio/   — load tables from CSV, YAML, TOML or SQLite
//		• cmd/actuneo — command line front end over all of the above
//
// Values are immutable once built and safe for concurrent readers.
// Constructors validate and return sentinel errors; computations on
// untabulated ages degrade to NaN or 0 instead of failing.
//
// Quick example:
//
//	tbl, _ := tableio.Load("tables/sample.csv", mortality.DefaultColumns)
//	sf, _ := mortality.NewSurvival(tbl, 0.04)
//	a := sf.WholeLifeAnnuityDue(65)
//
// Rates are annual effective unless a package says otherwise.
//
//	go install github.com/katalvlaran/actuneo/cmd/actuneo@latest
package actuneo
