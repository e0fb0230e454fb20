// SPDX-License-Identifier: EPL-2.0

package bank

import "errors"

var (
	// ErrMissingName reports a manifest entry without a sound name.
	ErrMissingName = errors.New("manifest entry has no name")
	// ErrMissingFile reports a manifest entry without a file path.
	ErrMissingFile = errors.New("manifest entry has no file")
	// ErrNoDecoder reports a file whose format has no registered decoder.
	ErrNoDecoder = errors.New("no decoder registered for format")
)
