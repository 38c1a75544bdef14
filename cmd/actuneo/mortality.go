// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
)

func newExpectancyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "expectancy AGE...",
		Short: "Curtate-plus-half life expectancy at each age",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.table()
			if err != nil {
				return err
			}
			for _, arg := range args {
				age, err := cast.ToIntE(arg)
				if err != nil {
					return fmt.Errorf("age %q: %w", arg, err)
				}
				e, err := t.LifeExpectancy(age)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "e(%d) = %.4f\n", age, e)
			}

			return nil
		},
	}
}

func newSurvivalCmd(a *app) *cobra.Command {
	var fraction float64
	cmd := &cobra.Command{
		Use:   "survival AGE YEARS",
		Short: "Probability of surviving and of dying within YEARS",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := cast.ToIntE(args[0])
			if err != nil {
				return fmt.Errorf("age %q: %w", args[0], err)
			}
			n, err := cast.ToIntE(args[1])
			if err != nil {
				return fmt.Errorf("years %q: %w", args[1], err)
			}
			sf, err := a.survival()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "p(%d, %d) = %.6f\n", x, n, sf.Npx(x, n))
			fmt.Fprintf(out, "q(%d, %d) = %.6f\n", x, n, sf.Nqx(x, n))
			if cmd.Flags().Changed("fraction") {
				t := float64(n) + fraction
				fmt.Fprintf(out, "p(%d, %g) = %.6f\n", x, t, sf.Tpx(x, t))
			}

			return nil
		},
	}
	cmd.Flags().Float64Var(&fraction, "fraction", 0, "extra fraction of a year for a fractional-age probability")

	return cmd
}
