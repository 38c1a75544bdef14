// SPDX-License-Identifier: MIT

package life

import (
	"math"

	"github.com/katalvlaran/actuneo/mortality"
)

// config is shared by every calculator; each reads only the fields it uses.
type config struct {
	table          *mortality.Table
	expenseLoading float64
	expenseRate    float64
	profitMargin   float64
}

// Option customizes a calculator at construction time.
// Option constructors panic on NaN or ±Inf; calculators never panic.
type Option func(*config)

func mustFinite(name string, f float64) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		panic("life: " + name + " must be finite")
	}
}

// WithTable attaches a mortality table to an Annuities calculator,
// enabling the life-contingent methods.
func WithTable(t *mortality.Table) Option {
	return func(c *config) {
		c.table = t
	}
}

// WithExpenseLoading sets the proportional loading applied by
// Assurance.GrossPremium.
func WithExpenseLoading(loading float64) Option {
	mustFinite("WithExpenseLoading", loading)
	return func(c *config) {
		c.expenseLoading = loading
	}
}

// WithExpenseRate sets the expense reserve rate used by Reserves.Gross.
func WithExpenseRate(rate float64) Option {
	mustFinite("WithExpenseRate", rate)
	return func(c *config) {
		c.expenseRate = rate
	}
}

// WithProfitMargin sets the profit margin added by Reserves.Gross.
func WithProfitMargin(margin float64) Option {
	mustFinite("WithProfitMargin", margin)
	return func(c *config) {
		c.profitMargin = margin
	}
}

func newConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
