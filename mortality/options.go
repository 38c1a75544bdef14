// SPDX-License-Identifier: MIT

package mortality

// DefaultTableName is used when no WithName option is given to NewTable.
const DefaultTableName = "Unnamed Table"

// tableConfig collects the optional attributes of a Table.
type tableConfig struct {
	name     string
	metadata map[string]string
}

// TableOption customizes a Table at construction time.
type TableOption func(*tableConfig)

// WithName sets the human-readable table name.
func WithName(name string) TableOption {
	return func(c *tableConfig) {
		c.name = name
	}
}

// WithMetadata attaches descriptive metadata (source, basis, year, ...).
// The map is copied; later changes by the caller are not observed.
func WithMetadata(md map[string]string) TableOption {
	return func(c *tableConfig) {
		if c.metadata == nil {
			c.metadata = make(map[string]string, len(md))
		}
		for k, v := range md {
			c.metadata[k] = v
		}
	}
}

// newTableConfig applies opts over the defaults.
func newTableConfig(defaultName string, opts []TableOption) tableConfig {
	cfg := tableConfig{name: defaultName}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.metadata == nil {
		cfg.metadata = map[string]string{}
	}

	return cfg
}
