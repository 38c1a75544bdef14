// SPDX-License-Identifier: MIT

package finance

import (
	"fmt"
	"math"
)

// Timing says when annuity payments fall within each period.
type Timing int

const (
	// Immediate pays at the end of each period.
	Immediate Timing = iota
	// Due pays at the start of each period.
	Due
)

// String implements fmt.Stringer.
func (t Timing) String() string {
	if t == Due {
		return "due"
	}

	return "immediate"
}

// Interest is an annual effective rate with a nominal compounding
// frequency. The zero value is a 0% rate compounded once a year.
type Interest struct {
	i float64
	m int
}

// NewInterest validates rate and frequency.
//
// Errors: ErrInvalidRate, ErrInvalidFrequency.
func NewInterest(rate float64, frequency int) (Interest, error) {
	if err := checkRate(rate); err != nil {
		return Interest{}, err
	}
	if frequency < 1 {
		return Interest{}, fmt.Errorf("%w: %d", ErrInvalidFrequency, frequency)
	}

	return Interest{i: rate, m: frequency}, nil
}

func checkRate(rate float64) error {
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate <= -1 {
		return fmt.Errorf("%w: %g", ErrInvalidRate, rate)
	}

	return nil
}

// At returns a copy of in at a different rate, keeping the frequency.
// The rate is not validated; callers that need validation use NewInterest.
func (in Interest) At(rate float64) Interest {
	in.i = rate

	return in
}

// Rate returns the annual effective rate.
func (in Interest) Rate() float64 { return in.i }

// Frequency returns the compounding frequency per year.
func (in Interest) Frequency() int {
	if in.m < 1 {
		return 1
	}

	return in.m
}

// PeriodicRate is rate / frequency.
func (in Interest) PeriodicRate() float64 { return in.i / float64(in.Frequency()) }

// Discount is v = 1/(1+i).
func (in Interest) Discount() float64 { return 1 / (1 + in.i) }

// FutureValue accumulates pv over periods (fractional periods allowed).
func (in Interest) FutureValue(pv, periods float64) float64 {
	return pv * math.Pow(1+in.i, periods)
}

// PresentValue discounts fv over periods.
func (in Interest) PresentValue(fv, periods float64) float64 {
	return fv * math.Pow(1+in.i, -periods)
}

// AnnuityPresentValue is payment·a_n (Immediate) or payment·ä_n (Due).
// At a zero rate it is payment·n for either timing.
func (in Interest) AnnuityPresentValue(payment float64, periods int, timing Timing) float64 {
	n := float64(periods)
	if in.i == 0 {
		return payment * n
	}
	pv := payment * (1 - math.Pow(1+in.i, -n)) / in.i
	if timing == Due {
		pv *= 1 + in.i
	}

	return pv
}

// AnnuityFutureValue is payment·s_n (Immediate) or payment·s̈_n (Due).
func (in Interest) AnnuityFutureValue(payment float64, periods int, timing Timing) float64 {
	n := float64(periods)
	if in.i == 0 {
		return payment * n
	}
	fv := payment * (math.Pow(1+in.i, n) - 1) / in.i
	if timing == Due {
		fv *= 1 + in.i
	}

	return fv
}

// LoanPayment is the level end-of-period payment amortizing principal
// over periods. NaN when periods ≤ 0.
func (in Interest) LoanPayment(principal float64, periods int) float64 {
	if periods <= 0 {
		return math.NaN()
	}
	n := float64(periods)
	if in.i == 0 {
		return principal / n
	}
	g := math.Pow(1+in.i, n)

	return principal * in.i * g / (g - 1)
}

// LoanBalance is the outstanding balance after made payments: the present
// value of the payments still due. 0 once the loan is repaid.
func (in Interest) LoanBalance(principal float64, periods, made int) float64 {
	remaining := periods - made
	if remaining <= 0 {
		return 0
	}

	return in.AnnuityPresentValue(in.LoanPayment(principal, periods), remaining, Immediate)
}

// EffectiveAnnualRate converts a nominal rate compounded m times a year.
func EffectiveAnnualRate(nominal float64, m int) float64 {
	fm := float64(m)

	return math.Pow(1+nominal/fm, fm) - 1
}

// NominalRate converts an effective annual rate to its nominal equivalent
// compounded m times a year.
func NominalRate(effective float64, m int) float64 {
	fm := float64(m)

	return fm * (math.Pow(1+effective, 1/fm) - 1)
}

// RealRate is the Fisher real rate (1+nominal)/(1+inflation) − 1.
func RealRate(nominal, inflation float64) float64 {
	return (1+nominal)/(1+inflation) - 1
}

// InflationAdjusted deflates value by inflation over periods.
func InflationAdjusted(value, inflation, periods float64) float64 {
	return value / math.Pow(1+inflation, periods)
}
