// SPDX-License-Identifier: MIT

package tableio

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/actuneo/mortality"
)

// ColumnNames overrides the default age and qx field names of a Document.
type ColumnNames struct {
	Age string `yaml:"age" toml:"age"`
	Qx  string `yaml:"qx" toml:"qx"`
}

// Document is the YAML/TOML representation of a mortality table.
type Document struct {
	Name     string            `yaml:"name" toml:"name"`
	Metadata map[string]string `yaml:"metadata" toml:"metadata"`
	Columns  ColumnNames       `yaml:"columns" toml:"columns"`
	Rows     []map[string]any  `yaml:"rows" toml:"rows" validate:"required,min=1"`
}

var validate = validator.New()

// Table validates d and builds its table. Options are applied after the
// document's own name and metadata, so they take precedence.
func (d *Document) Table(opts ...mortality.TableOption) (*mortality.Table, error) {
	if err := validate.Struct(d); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	var docOpts []mortality.TableOption
	if d.Name != "" {
		docOpts = append(docOpts, mortality.WithName(d.Name))
	}
	if len(d.Metadata) > 0 {
		docOpts = append(docOpts, mortality.WithMetadata(d.Metadata))
	}
	cols := mortality.Columns{Age: d.Columns.Age, Qx: d.Columns.Qx}

	return mortality.FromRows(d.Rows, cols, append(docOpts, opts...)...)
}

// ReadYAML decodes a YAML Document from r and builds its table.
//
// Errors: ErrInvalidDocument, plus any mortality construction error.
func ReadYAML(r io.Reader, opts ...mortality.TableOption) (*mortality.Table, error) {
	d, err := DecodeYAML(r)
	if err != nil {
		return nil, err
	}

	return d.Table(opts...)
}

// ReadTOML decodes a TOML Document from r and builds its table.
//
// Errors: ErrInvalidDocument, plus any mortality construction error.
func ReadTOML(r io.Reader, opts ...mortality.TableOption) (*mortality.Table, error) {
	d, err := DecodeTOML(r)
	if err != nil {
		return nil, err
	}

	return d.Table(opts...)
}

// DecodeYAML decodes a Document without building the table.
func DecodeYAML(r io.Reader) (*Document, error) {
	var d Document
	if err := yaml.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("%w: yaml: %v", ErrInvalidDocument, err)
	}

	return &d, nil
}

// DecodeTOML decodes a Document without building the table.
func DecodeTOML(r io.Reader) (*Document, error) {
	var d Document
	if _, err := toml.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("%w: toml: %v", ErrInvalidDocument, err)
	}

	return &d, nil
}
