// SPDX-License-Identifier: MIT

package tableio

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/katalvlaran/actuneo/mortality"
)

// DefaultSQLTable is the table LoadSQLite reads.
const DefaultSQLTable = "mortality"

// ReadSQL runs query on db and builds a table from the result set, one row
// per age. Result columns are matched by name against cols.
//
// Errors: query and scan errors, plus any mortality construction error.
func ReadSQL(ctx context.Context, db *sql.DB, query string, cols mortality.Columns, opts ...mortality.TableOption) (*mortality.Table, error) {
	rs, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rs.Close()

	names, err := rs.Columns()
	if err != nil {
		return nil, fmt.Errorf("columns: %w", err)
	}

	var rows []map[string]any
	for rs.Next() {
		vals := make([]any, len(names))
		ptrs := make([]any, len(names))
		for k := range vals {
			ptrs[k] = &vals[k]
		}
		if err := rs.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		row := make(map[string]any, len(names))
		for k, name := range names {
			if b, ok := vals[k].([]byte); ok {
				vals[k] = string(b)
			}
			row[name] = vals[k]
		}
		rows = append(rows, row)
	}
	if err := rs.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return mortality.FromRows(rows, cols, opts...)
}

// LoadSQLite reads the cols.Age and cols.Qx columns of DefaultSQLTable
// from the SQLite database at path, ordered by age. The file must exist.
func LoadSQLite(ctx context.Context, path string, cols mortality.Columns, opts ...mortality.TableOption) (*mortality.Table, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	defer db.Close()

	if cols.Age == "" {
		cols.Age = mortality.DefaultColumns.Age
	}
	if cols.Qx == "" {
		cols.Qx = mortality.DefaultColumns.Qx
	}
	query := fmt.Sprintf("SELECT %s, %s FROM %s ORDER BY %[1]s",
		quoteIdent(cols.Age), quoteIdent(cols.Qx), quoteIdent(DefaultSQLTable))

	return ReadSQL(ctx, db, query, cols, opts...)
}

func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
