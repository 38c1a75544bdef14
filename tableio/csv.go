// SPDX-License-Identifier: MIT

package tableio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/actuneo/mortality"
)

// ReadCSV reads a header row followed by data rows. Cells stay strings
// until mortality.FromRows converts the age and qx columns; other columns
// are ignored.
//
// Errors: ErrInvalidDocument for malformed CSV, plus any mortality
// construction error.
func ReadCSV(r io.Reader, cols mortality.Columns, opts ...mortality.TableOption) (*mortality.Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return mortality.FromRows(nil, cols, opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: csv header: %v", ErrInvalidDocument, err)
	}
	for k := range header {
		header[k] = strings.TrimSpace(header[k])
	}

	var rows []map[string]any
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: csv: %v", ErrInvalidDocument, err)
		}
		row := make(map[string]any, len(header))
		for k, name := range header {
			row[name] = strings.TrimSpace(rec[k])
		}
		rows = append(rows, row)
	}

	return mortality.FromRows(rows, cols, opts...)
}
