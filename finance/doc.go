// SPDX-License-Identifier: MIT

// Package finance provides the interest-theory building blocks used
// alongside life-contingent pricing:
//
//   - Interest: accumulation and discounting at a fixed effective rate,
//     annuities-certain and level-payment loans;
//   - YieldCurve: a term structure of spot rates with linear
//     interpolation, forward rates and discount factors;
//   - duration and convexity of cash-flow streams, bonds and portfolios,
//     including key-rate durations against a YieldCurve.
//
// Rates are decimal fractions (0.05 is 5%) and times are in years.
package finance
