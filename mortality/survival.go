// SPDX-License-Identifier: MIT

package mortality

import (
	"fmt"
	"math"
)

// DefaultRate is the conventional 5% valuation rate.
const DefaultRate = 0.05

// Survival binds a Table to an annual effective interest rate i and
// evaluates survival probabilities and actuarial present values.
//
// All methods are pure functions of their arguments; a *Survival may be
// shared across goroutines. None of them return errors: invalid periods
// and untabulated ages degrade to 0.0 or NaN as documented per method.
type Survival struct {
	table *Table
	i     float64 // annual interest rate
	v     float64 // one-period discount factor 1/(1+i)
}

// NewSurvival returns survival functions over t at interest rate i.
//
// Errors: ErrNilTable, ErrInvalidRate.
func NewSurvival(t *Table, i float64) (*Survival, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	if math.IsNaN(i) || math.IsInf(i, 0) || i <= -1 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidRate, i)
	}

	return &Survival{table: t, i: i, v: 1 / (1 + i)}, nil
}

// Table returns the bound mortality table.
func (s *Survival) Table() *Table { return s.table }

// Rate returns the annual interest rate i.
func (s *Survival) Rate() float64 { return s.i }

// Discount returns v = 1/(1+i).
func (s *Survival) Discount() float64 { return s.v }

// Npx is the probability that (x) survives n whole years.
//
//   - n < 0 → 0; n == 0 → 1.
//   - x+n past the last age ω: survival from x to ω, then p_ω held constant
//     for the x+n-ω years beyond the table. 0 if x is not tabulated.
//   - otherwise Π px over ages x .. x+n-1; 0 if x or x+n is not tabulated.
func (s *Survival) Npx(x, n int) float64 {
	if n < 0 {
		return 0
	}
	if n == 0 {
		return 1
	}

	t := s.table
	last := len(t.ages) - 1
	omega := t.ages[last]

	start, ok := t.indexOf(x)
	if x+n > omega {
		if !ok {
			return 0
		}
		beyond := x + n - omega
		return t.survivalBetween(start, last) * math.Pow(t.px[last], float64(beyond))
	}

	end, okEnd := t.indexOf(x + n)
	if !ok || !okEnd {
		return 0
	}

	return t.survivalBetween(start, end)
}

// Nqx is the probability that (x) dies within n years, 1 - Npx(x, n).
func (s *Survival) Nqx(x, n int) float64 {
	return 1 - s.Npx(x, n)
}

// Tpx is the probability that (x) survives t years, t possibly fractional.
//
// With n = ⌊t⌋ and f = t - n:
//
//	inside the table:   nPx · (1 - f·q_{x+n})
//	at/after the edge:  nPx · exp(-μ·f), μ = -ln(1 - q_ω)
//
// t == 0 → 1, t < 0 → 0, NaN → NaN.
func (s *Survival) Tpx(x int, t float64) float64 {
	switch {
	case math.IsNaN(t):
		return math.NaN()
	case t == 0:
		return 1
	case t < 0:
		return 0
	}

	n := int(t)
	frac := t - float64(n)
	base := s.Npx(x, n)
	if frac == 0 {
		return base
	}

	omega := s.table.MaxAge()
	if x+n >= omega {
		mu := -math.Log(1 - s.table.qx[len(s.table.qx)-1])
		return base * math.Exp(-mu*frac)
	}

	return base * (1 - frac*s.table.Qx(x+n))
}

// horizon is the number of tabulated ages from x to the end of the table,
// x included. ok is false when x is not tabulated.
func (s *Survival) horizon(x int) (int, bool) {
	i, ok := s.table.indexOf(x)
	if !ok {
		return 0, false
	}

	return len(s.table.ages) - i, true
}

// annuityDue sums v^t · tPx over t = 0..T-1.
func (s *Survival) annuityDue(x, T int) float64 {
	var (
		sum = 0.0
		vt  = 1.0
	)
	for t := 0; t < T; t++ {
		sum += vt * s.Tpx(x, float64(t))
		vt *= s.v
	}

	return sum
}

// AnnuityDue is ä_{x:n}, the value of 1 paid at the start of each of n
// years while (x) survives. n ≤ 0 → 0.
func (s *Survival) AnnuityDue(x, n int) float64 {
	return s.annuityDue(x, n)
}

// WholeLifeAnnuityDue is ä_x, running to the end of the table.
// NaN when x is not tabulated.
func (s *Survival) WholeLifeAnnuityDue(x int) float64 {
	T, ok := s.horizon(x)
	if !ok {
		return math.NaN()
	}

	return s.annuityDue(x, T)
}

// AnnuityImmediate is a_{x:n} = ä_{x:n} - 1: the time-0 payment removed.
func (s *Survival) AnnuityImmediate(x, n int) float64 {
	return s.AnnuityDue(x, n) - 1
}

// WholeLifeAnnuityImmediate is a_x = ä_x - 1.
func (s *Survival) WholeLifeAnnuityImmediate(x int) float64 {
	return s.WholeLifeAnnuityDue(x) - 1
}

// assurance sums v^t · min(q_t, 1) over t = 1..T, where q_t is the
// probability of death in year t approximated from multi-year survival:
// q_1 = 1 - 1Px, q_t = 1 - tPx / (t-1)Px.
func (s *Survival) assurance(x, T int) float64 {
	var (
		sum = 0.0
		vt  = s.v
		q   float64
	)
	for t := 1; t <= T; t++ {
		if t == 1 {
			q = 1 - s.Npx(x, 1)
		} else {
			q = 1 - s.Npx(x, t)/s.Npx(x, t-1)
		}
		sum += vt * math.Min(q, 1)
		vt *= s.v
	}

	return sum
}

// Assurance is A¹_{x:n}, the value of 1 paid at the end of the year of
// death if (x) dies within n years. n ≤ 0 → 0.
func (s *Survival) Assurance(x, n int) float64 {
	return s.assurance(x, n)
}

// WholeLifeAssurance is A_x over every year remaining in the table.
// NaN when x is not tabulated.
func (s *Survival) WholeLifeAssurance(x int) float64 {
	T, ok := s.horizon(x)
	if !ok {
		return math.NaN()
	}

	return s.assurance(x, T-1)
}

// NetSinglePremium is an alias of Assurance.
func (s *Survival) NetSinglePremium(x, n int) float64 {
	return s.Assurance(x, n)
}

// WholeLifeNetSinglePremium is an alias of WholeLifeAssurance.
func (s *Survival) WholeLifeNetSinglePremium(x int) float64 {
	return s.WholeLifeAssurance(x)
}
