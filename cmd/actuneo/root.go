// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/actuneo/internal/config"
	"github.com/katalvlaran/actuneo/internal/logging"
	"github.com/katalvlaran/actuneo/mortality"
	"github.com/katalvlaran/actuneo/tableio"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

var errNoTable = errors.New("no mortality table: set --table or ACTUNEO_TABLE")

// app carries state shared by every subcommand of one invocation.
type app struct {
	cfgFile string
	cfg     *config.Config
	log     *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "actuneo",
		Short: "Actuarial mortality and life-contingency calculator",
		Long: `actuneo loads a mortality table (CSV, YAML, TOML or SQLite) and evaluates
survival probabilities, life expectancy, annuities, assurances,
premiums and reserves at a fixed valuation rate.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (YAML or TOML)")
	pf.String("table", "", "mortality table file (.csv, .yaml, .yml, .toml, .db, .sqlite)")
	pf.Float64("rate", mortality.DefaultRate, "annual valuation rate")
	pf.String("age-column", mortality.DefaultColumns.Age, "age column of CSV and SQLite tables")
	pf.String("qx-column", mortality.DefaultColumns.Qx, "qx column of CSV and SQLite tables")
	pf.String("log-level", "info", "debug, info, warn or error")
	pf.String("log-format", "text", "text or json")

	root.AddCommand(
		newExpectancyCmd(a),
		newSurvivalCmd(a),
		newAnnuityCmd(a),
		newAssuranceCmd(a),
		newPriceCmd(a),
		newReserveCmd(a),
		newBondCmd(a),
		newVersionCmd(),
	)

	return root
}

// setup loads configuration and installs the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	logger, err := logging.Setup(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, logger
	a.log.Debug("configuration loaded", "table", cfg.Table, "rate", cfg.Rate)

	return nil
}

// table loads the configured mortality table.
func (a *app) table() (*mortality.Table, error) {
	if a.cfg.Table == "" {
		return nil, errNoTable
	}
	t, err := tableio.Load(a.cfg.Table, a.cfg.Columns())
	if err != nil {
		return nil, err
	}
	a.log.Debug("table loaded", "name", t.Name(), "ages", t.Len(),
		"min_age", t.MinAge(), "max_age", t.MaxAge())

	return t, nil
}

// survival loads the table and binds it at the configured rate.
func (a *app) survival() (*mortality.Survival, error) {
	t, err := a.table()
	if err != nil {
		return nil, err
	}

	return mortality.NewSurvival(t, a.cfg.Rate)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		// version needs neither config nor logger
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "actuneo", version)
		},
	}
}
