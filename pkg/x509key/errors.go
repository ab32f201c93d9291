// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-x509key.
//
// go-x509key is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

package x509key

import "errors"

var (
	// ErrEncode is returned when a key cannot be encoded, typically because
	// its type does not implement types.Exporter. This indicates a caller or
	// type-design error, not bad data.
	ErrEncode = errors.New("x509key: key does not support encoding")

	// ErrDecode is the umbrella error for every decode failure at the public
	// boundary: structural violations, label mismatches, empty key material,
	// unknown OIDs, unsupported algorithms, and import failures all surface
	// as ErrDecode. The originating cause is preserved in the error message
	// for diagnostics but is not matchable with errors.Is or errors.As.
	ErrDecode = errors.New("x509key: public key decoding failed")

	// ErrInternal indicates an invariant violation in this library or its
	// collaborators rather than bad input: a factory-constructed key missing
	// the Importer capability, a fingerprinted key missing the Exporter
	// capability, or a digest of unexpected length.
	ErrInternal = errors.New("x509key: internal error")
)
