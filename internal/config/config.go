// SPDX-License-Identifier: MIT

package config

import (
	"github.com/katalvlaran/actuneo/mortality"
)

// EnvPrefix prefixes every environment variable, e.g. ACTUNEO_RATE.
const EnvPrefix = "ACTUNEO"

// Config is the merged command-line configuration.
type Config struct {
	// Table is the mortality table file (.csv, .yaml, .yml or .toml).
	Table string `mapstructure:"table"`

	// Rate is the annual valuation rate.
	Rate float64 `mapstructure:"rate" validate:"gt=-1"`

	// Columns name the age and qx fields of CSV tables.
	AgeColumn string `mapstructure:"age_column" validate:"required"`
	QxColumn  string `mapstructure:"qx_column" validate:"required"`

	LogLevel  string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	LogFormat string `mapstructure:"log_format" validate:"required,oneof=json text"`
}

// Columns returns the configured CSV column names.
func (c *Config) Columns() mortality.Columns {
	return mortality.Columns{Age: c.AgeColumn, Qx: c.QxColumn}
}

// defaults are applied before any other source.
var defaults = map[string]any{
	"table":      "",
	"rate":       mortality.DefaultRate,
	"age_column": mortality.DefaultColumns.Age,
	"qx_column":  mortality.DefaultColumns.Qx,
	"log_level":  "info",
	"log_format": "text",
}
