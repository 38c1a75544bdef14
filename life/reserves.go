// SPDX-License-Identifier: MIT

package life

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/actuneo/mortality"
)

const (
	// DefaultSumAssured is the conventional benefit used by the CLI.
	DefaultSumAssured = 1000.0

	// DefaultAmortizationPeriod spreads Zillmer expenses over ten years.
	DefaultAmortizationPeriod = 10

	// DefaultContingencyFactor is the usual 5% contingency loading.
	DefaultContingencyFactor = 0.05
)

// Reserves computes policy reserves for level annual premiums P and sum
// assured S. All monetary results are per policy.
type Reserves struct {
	sf           *mortality.Survival
	expenseRate  float64
	profitMargin float64
}

// NewReserves binds t at interest rate i.
//
// Errors: mortality.ErrNilTable, mortality.ErrInvalidRate.
func NewReserves(t *mortality.Table, i float64, opts ...Option) (*Reserves, error) {
	sf, err := mortality.NewSurvival(t, i)
	if err != nil {
		return nil, err
	}
	cfg := newConfig(opts)

	return &Reserves{sf: sf, expenseRate: cfg.expenseRate, profitMargin: cfg.profitMargin}, nil
}

// prospective is (A·S − P·a)/a floored at zero, or A·S − P when a == 0.
func prospective(assurance, annuity, premium float64) float64 {
	if annuity == 0 {
		return assurance - premium
	}

	return math.Max(0, (assurance-premium*annuity)/annuity)
}

// ProspectiveWholeLife is the whole-life reserve at duration d for a life
// insured at age x.
func (r *Reserves) ProspectiveWholeLife(x, d int, premium, sum float64) float64 {
	age := x + d

	return prospective(r.sf.WholeLifeAssurance(age)*sum, r.sf.WholeLifeAnnuityImmediate(age), premium)
}

// ProspectiveTerm is the n-year term reserve at duration d; 0 once expired.
func (r *Reserves) ProspectiveTerm(x, n, d int, premium, sum float64) float64 {
	rem := n - d
	if rem <= 0 {
		return 0
	}
	age := x + d

	return prospective(r.sf.Assurance(age, rem)*sum, r.sf.AnnuityImmediate(age, rem), premium)
}

// ProspectiveEndowment is the n-year endowment reserve at duration d; 0 once matured.
func (r *Reserves) ProspectiveEndowment(x, n, d int, premium, sum float64) float64 {
	rem := n - d
	if rem <= 0 {
		return 0
	}
	age := x + d
	endowment := r.sf.Npx(age, rem) * math.Pow(r.sf.Discount(), float64(rem))
	benefit := (r.sf.Assurance(age, rem) + endowment) * sum

	return prospective(benefit, r.sf.AnnuityImmediate(age, rem), premium)
}

// Retrospective accumulates premiums less death claims over d years and
// divides by the probability of surviving to x+d:
//
//	Σ P·kPx·(1+i)^(d−k) − Σ S·(kPx − k+1Px)·(1+i)^(d−k−1)
//	─────────────────────────────────────────────────────
//	                       dPx
//
// Floored at zero; 0 when nobody survives to x+d.
func (r *Reserves) Retrospective(x, d int, premium, sum float64) float64 {
	survivors := r.sf.Npx(x, d)
	if d <= 0 || survivors == 0 {
		return 0
	}
	var (
		acc = 1 + r.sf.Rate()
		net float64
	)
	for k := 0; k < d; k++ {
		alive := r.sf.Npx(x, k)
		died := alive - r.sf.Npx(x, k+1)
		net += premium * alive * math.Pow(acc, float64(d-k))
		net -= sum * died * math.Pow(acc, float64(d-k-1))
	}

	return math.Max(0, net/survivors)
}

// NetLevelPremium is A·S − P·a at attained age x+d, floored at zero.
func (r *Reserves) NetLevelPremium(x, d int, premium, sum float64) float64 {
	age := x + d
	v := r.sf.WholeLifeAssurance(age)*sum - premium*r.sf.WholeLifeAnnuityImmediate(age)

	return math.Max(0, v)
}

// Gross adds the configured expense rate and profit margin to a net reserve.
func (r *Reserves) Gross(net float64) float64 {
	return r.GrossWithExpense(net, net*r.expenseRate)
}

// GrossWithExpense adds an explicit expense reserve and the profit margin.
func (r *Reserves) GrossWithExpense(net, expense float64) float64 {
	return net + expense + net*r.profitMargin
}

// Release is the reserve released between two valuations.
func (r *Reserves) Release(initial, final float64) float64 {
	return initial - final
}

// Zillmerized deducts unamortized initial expenses from a net reserve.
// Expenses amortize linearly over amortization years; the result is
// floored at zero and equals net once d ≥ amortization.
func (r *Reserves) Zillmerized(net, initialExpenses float64, d, amortization int) float64 {
	if d >= amortization || amortization <= 0 {
		return net
	}
	unamortized := initialExpenses * float64(amortization-d) / float64(amortization)

	return math.Max(0, net-unamortized)
}

// Contingency is base·risk.
func (r *Reserves) Contingency(base, risk float64) float64 {
	return base * risk
}

// Distribution summarises a portfolio of reserves.
type Distribution struct {
	Mean   float64
	Median float64
	Min    float64
	Max    float64
	Total  float64
	Ratio  float64 // Total / portfolio value; 0 when the value is not positive
	P25    float64
	P75    float64
	P90    float64
	P95    float64
}

// Distribution computes summary statistics of reserves. Percentiles use
// linear interpolation between closest ranks.
//
// Errors: ErrEmptyReserves.
func (r *Reserves) Distribution(reserves []float64, portfolio float64) (Distribution, error) {
	if len(reserves) == 0 {
		return Distribution{}, ErrEmptyReserves
	}
	sorted := slices.Clone(reserves)
	slices.Sort(sorted)

	var total float64
	for _, v := range sorted {
		total += v
	}
	d := Distribution{
		Mean:   total / float64(len(sorted)),
		Median: percentile(sorted, 50),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Total:  total,
		P25:    percentile(sorted, 25),
		P75:    percentile(sorted, 75),
		P90:    percentile(sorted, 90),
		P95:    percentile(sorted, 95),
	}
	if portfolio > 0 {
		d.Ratio = total / portfolio
	}

	return d, nil
}

// String renders the headline figures.
func (d Distribution) String() string {
	return fmt.Sprintf("Distribution(mean=%.2f, median=%.2f, total=%.2f, p95=%.2f)",
		d.Mean, d.Median, d.Total, d.P95)
}

// percentile interpolates linearly on a sorted, non-empty slice.
func percentile(sorted []float64, p float64) float64 {
	pos := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	frac := pos - float64(lo)

	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}
