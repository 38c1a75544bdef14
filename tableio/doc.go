// SPDX-License-Identifier: MIT

// Package tableio reads mortality tables from CSV, YAML and TOML files and
// from SQL databases (SQLite files directly, any database/sql driver via
// ReadSQL).
//
// CSV files carry a header row naming the columns; YAML and TOML files
// hold a Document with a name, optional metadata, optional column names
// and a list of rows; SQL sources yield one result row per age. Every
// reader hands its rows to mortality.FromRows, so cell conversion and
// table validation are the same for all formats.
//
// A YAML document:
//
//	name: SA 85-90
//	metadata: {source: ASSA}
//	rows:
//	  - {age: 20, qx: 0.00103}
//	  - {age: 21, qx: 0.00107}
package tableio
