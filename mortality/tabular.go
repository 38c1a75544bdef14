// SPDX-License-Identifier: MIT

package mortality

import (
	"fmt"

	"github.com/spf13/cast"
)

// DefaultTabularName is the table name used by FromRows when none is given.
const DefaultTabularName = "Tabular Table"

// Columns names the age and qx columns of a tabular source.
type Columns struct {
	Age string
	Qx  string
}

// DefaultColumns is the conventional "age"/"qx" column pair.
var DefaultColumns = Columns{Age: "age", Qx: "qx"}

// withDefaults fills empty column names from DefaultColumns.
func (c Columns) withDefaults() Columns {
	if c.Age == "" {
		c.Age = DefaultColumns.Age
	}
	if c.Qx == "" {
		c.Qx = DefaultColumns.Qx
	}

	return c
}

// FromRows builds a Table from generic rows keyed by column name, as
// produced by CSV readers or decoded YAML/TOML documents. Cells may be any
// value cast can convert (ints, floats, numeric strings, json.Number, ...).
// Extra columns are ignored. Rows must already be in ascending age order.
//
// Errors: ErrMissingColumn, ErrBadCell, plus everything NewTable returns.
// Complexity: O(n).
func FromRows(rows []map[string]any, cols Columns, opts ...TableOption) (*Table, error) {
	cols = cols.withDefaults()

	ages := make([]int, len(rows))
	qx := make([]float64, len(rows))
	for i, row := range rows {
		rawAge, ok := row[cols.Age]
		if !ok {
			return nil, fmt.Errorf("%w: row %d has no %q", ErrMissingColumn, i, cols.Age)
		}
		rawQx, ok := row[cols.Qx]
		if !ok {
			return nil, fmt.Errorf("%w: row %d has no %q", ErrMissingColumn, i, cols.Qx)
		}

		age, err := cast.ToIntE(rawAge)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d %s=%v: %v", ErrBadCell, i, cols.Age, rawAge, err)
		}
		q, err := cast.ToFloat64E(rawQx)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d %s=%v: %v", ErrBadCell, i, cols.Qx, rawQx, err)
		}
		ages[i], qx[i] = age, q
	}

	// caller options run after the default name so WithName still wins
	all := append([]TableOption{WithName(DefaultTabularName)}, opts...)

	return NewTable(ages, qx, all...)
}
