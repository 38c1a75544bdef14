// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/actuneo/finance"
	"github.com/katalvlaran/actuneo/life"
)

// policy holds the flags shared by the pricing commands.
type policy struct {
	age      int
	term     int
	deferred int
	sum      float64
	kind     string
}

func (p *policy) bind(cmd *cobra.Command, kinds string) {
	f := cmd.Flags()
	f.IntVar(&p.age, "age", 0, "issue age")
	f.IntVar(&p.term, "term", 0, "term in years; 0 means whole life")
	f.StringVar(&p.kind, "kind", "whole", kinds)
	_ = cmd.MarkFlagRequired("age")
}

func unknownKind(kind string) error {
	return fmt.Errorf("unknown --kind %q", kind)
}

func newAnnuityCmd(a *app) *cobra.Command {
	var (
		p       policy
		payment float64
		timing  string
	)
	cmd := &cobra.Command{
		Use:   "annuity",
		Short: "Present value of a life annuity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := a.table()
			if err != nil {
				return err
			}
			if p.kind != "whole" && p.kind != "guaranteed" {
				return unknownKind(p.kind)
			}
			an, err := life.NewAnnuities(a.cfg.Rate, life.WithTable(t))
			if err != nil {
				return err
			}

			var pv float64
			switch {
			case p.kind == "guaranteed":
				pv, err = an.Guaranteed(p.age, p.term, payment)
			case p.deferred > 0:
				pv, err = an.DeferredLife(p.age, p.deferred, payment)
			case p.term > 0 && timing == "due":
				pv, err = an.TemporaryDue(p.age, p.term, payment)
			case p.term > 0:
				pv, err = an.TemporaryImmediate(p.age, p.term, payment)
			case timing == "due":
				pv, err = an.LifeDue(p.age, payment)
			default:
				pv, err = an.LifeImmediate(p.age, payment)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "annuity = %.6f\n", pv)

			return nil
		},
	}
	p.bind(cmd, "whole or guaranteed (guaranteed uses --term as the certain period)")
	cmd.Flags().IntVar(&p.deferred, "deferred", 0, "deferral period in years")
	cmd.Flags().Float64Var(&payment, "payment", 1, "annual payment")
	cmd.Flags().StringVar(&timing, "timing", "immediate", "immediate or due")

	return cmd
}

func newAssuranceCmd(a *app) *cobra.Command {
	var p policy
	cmd := &cobra.Command{
		Use:   "assurance",
		Short: "Net single premium of an assurance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := a.table()
			if err != nil {
				return err
			}
			as, err := life.NewAssurance(t, a.cfg.Rate)
			if err != nil {
				return err
			}

			var v float64
			switch p.kind {
			case "whole":
				v = as.WholeLife(p.age)
			case "term":
				v = as.Term(p.age, p.term)
			case "endowment":
				v = as.Endowment(p.age, p.term)
			case "pure-endowment":
				v = as.PureEndowment(p.age, p.term)
			case "deferred":
				v = as.Deferred(p.age, p.deferred, p.term)
			default:
				return unknownKind(p.kind)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s assurance = %.6f\n", p.kind, v*p.sum)

			return nil
		},
	}
	p.bind(cmd, "whole, term, endowment, pure-endowment or deferred")
	cmd.Flags().IntVar(&p.deferred, "deferred", 0, "deferral period in years")
	cmd.Flags().Float64Var(&p.sum, "sum", life.DefaultSumAssured, "sum assured")

	return cmd
}

func newPriceCmd(a *app) *cobra.Command {
	var (
		p                         policy
		loading, margin, expenses float64
	)
	cmd := &cobra.Command{
		Use:   "price",
		Short: "Level annual premium for a whole-life or term assurance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := a.table()
			if err != nil {
				return err
			}
			as, err := life.NewAssurance(t, a.cfg.Rate, life.WithExpenseLoading(loading))
			if err != nil {
				return err
			}
			sf := as.Survival()

			nsp := as.WholeLife(p.age) * p.sum
			factor := sf.WholeLifeAnnuityDue(p.age)
			if p.term > 0 {
				nsp = as.Term(p.age, p.term) * p.sum
				factor = sf.AnnuityDue(p.age, p.term)
			}
			annual := as.AnnualPremium(nsp, factor, margin)
			a.log.Debug("priced", "age", p.age, "term", p.term, "nsp", nsp, "annuity_due", factor)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "net single premium = %.2f\n", nsp)
			fmt.Fprintf(out, "annual premium     = %.2f\n", annual)
			fmt.Fprintf(out, "gross premium      = %.2f\n", as.GrossPremium(annual, expenses))

			return nil
		},
	}
	f := cmd.Flags()
	f.IntVar(&p.age, "age", 0, "issue age")
	f.IntVar(&p.term, "term", 0, "term in years; 0 means whole life")
	f.Float64Var(&p.sum, "sum", life.DefaultSumAssured, "sum assured")
	f.Float64Var(&loading, "loading", 0, "proportional expense loading")
	f.Float64Var(&margin, "margin", 0, "gross profit margin")
	f.Float64Var(&expenses, "expenses", 0, "initial expenses")
	_ = cmd.MarkFlagRequired("age")

	return cmd
}

func newReserveCmd(a *app) *cobra.Command {
	var (
		p                   policy
		duration            int
		premium             float64
		method              string
		expenseRate, profit float64
	)
	cmd := &cobra.Command{
		Use:   "reserve",
		Short: "Net and gross policy reserve at a duration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := a.table()
			if err != nil {
				return err
			}
			r, err := life.NewReserves(t, a.cfg.Rate,
				life.WithExpenseRate(expenseRate), life.WithProfitMargin(profit))
			if err != nil {
				return err
			}

			var net float64
			switch {
			case method == "retrospective":
				net = r.Retrospective(p.age, duration, premium, p.sum)
			case method != "prospective":
				return fmt.Errorf("unknown --method %q", method)
			case p.kind == "whole":
				net = r.ProspectiveWholeLife(p.age, duration, premium, p.sum)
			case p.kind == "term":
				net = r.ProspectiveTerm(p.age, p.term, duration, premium, p.sum)
			case p.kind == "endowment":
				net = r.ProspectiveEndowment(p.age, p.term, duration, premium, p.sum)
			default:
				return unknownKind(p.kind)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "net reserve   = %.2f\n", net)
			fmt.Fprintf(out, "gross reserve = %.2f\n", r.Gross(net))

			return nil
		},
	}
	p.bind(cmd, "whole, term or endowment")
	f := cmd.Flags()
	f.IntVar(&duration, "duration", 0, "years since issue")
	f.Float64Var(&premium, "premium", 0, "annual premium")
	f.Float64Var(&p.sum, "sum", life.DefaultSumAssured, "sum assured")
	f.StringVar(&method, "method", "prospective", "prospective or retrospective (whole life)")
	f.Float64Var(&expenseRate, "expense-rate", 0, "expense reserve rate")
	f.Float64Var(&profit, "profit-margin", 0, "profit margin")

	return cmd
}

func newBondCmd(a *app) *cobra.Command {
	var (
		face, coupon, maturity float64
		freq                   int
	)
	cmd := &cobra.Command{
		Use:   "bond",
		Short: "Duration and convexity of a level-coupon bond at the valuation rate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			y := a.cfg.Rate
			mac, err := finance.BondDuration(face, coupon, maturity, y, freq)
			if err != nil {
				return err
			}
			cx, err := finance.BondConvexity(face, coupon, maturity, y, freq)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "macaulay duration = %.4f\n", mac)
			fmt.Fprintf(out, "modified duration = %.4f\n", mac/(1+y))
			fmt.Fprintf(out, "convexity         = %.4f\n", cx)

			return nil
		},
	}
	f := cmd.Flags()
	f.Float64Var(&face, "face", 100, "face value")
	f.Float64Var(&coupon, "coupon", 0.05, "annual coupon rate")
	f.Float64Var(&maturity, "maturity", 10, "years to maturity")
	f.IntVar(&freq, "freq", 2, "coupons per year")

	return cmd
}
