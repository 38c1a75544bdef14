// SPDX-License-Identifier: MIT

package tableio

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/actuneo/mortality"
)

// Load is LoadContext with a background context.
func Load(path string, cols mortality.Columns, opts ...mortality.TableOption) (*mortality.Table, error) {
	return LoadContext(context.Background(), path, cols, opts...)
}

// LoadContext reads the table at path, choosing the reader by extension:
// .csv, .yaml/.yml, .toml, or .db/.sqlite/.sqlite3 for a SQLite database
// holding a DefaultSQLTable table. The table is named after the file (up
// to the first dot) unless the document or opts name it. cols names the
// fields of CSV and SQLite sources; documents carry their own.
//
// Errors: ErrUnsupportedFormat, file-system errors, and reader errors.
func LoadContext(ctx context.Context, path string, cols mortality.Columns, opts ...mortality.TableOption) (*mortality.Table, error) {
	ext := strings.ToLower(filepath.Ext(path))

	var (
		t   *mortality.Table
		err error
	)
	switch ext {
	case ".csv", ".yaml", ".yml", ".toml":
		t, err = loadFile(path, ext, cols, opts)
	case ".db", ".sqlite", ".sqlite3":
		named := append([]mortality.TableOption{mortality.WithName(stem(path))}, opts...)
		t, err = LoadSQLite(ctx, path, cols, named...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("tableio: %s: %w", path, err)
	}

	return t, nil
}

func loadFile(path, ext string, cols mortality.Columns, opts []mortality.TableOption) (*mortality.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if ext == ".csv" {
		named := append([]mortality.TableOption{mortality.WithName(stem(path))}, opts...)

		return ReadCSV(f, cols, named...)
	}

	return loadDocument(f, ext, path, opts)
}

func loadDocument(r io.Reader, ext, path string, opts []mortality.TableOption) (*mortality.Table, error) {
	decode := DecodeYAML
	if ext == ".toml" {
		decode = DecodeTOML
	}
	d, err := decode(r)
	if err != nil {
		return nil, err
	}
	if d.Name == "" {
		d.Name = stem(path)
	}

	return d.Table(opts...)
}

// stem is the base name up to its first dot.
func stem(path string) string {
	base := filepath.Base(path)
	if i := strings.IndexByte(base, '.'); i > 0 {
		return base[:i]
	}

	return base
}
