// SPDX-License-Identifier: MIT

// Package config loads the actuneo command-line configuration.
//
// Sources, highest precedence first: command-line flags, ACTUNEO_*
// environment variables, an optional YAML or TOML config file, defaults.
// The merged Config is validated before it is returned.
package config
