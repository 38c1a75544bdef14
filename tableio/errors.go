// SPDX-License-Identifier: MIT

package tableio

import "errors"

var (
	// ErrUnsupportedFormat is returned by Load for an unknown file extension.
	ErrUnsupportedFormat = errors.New("tableio: unsupported format")

	// ErrInvalidDocument wraps decode and validation failures of a table file.
	ErrInvalidDocument = errors.New("tableio: invalid document")
)
