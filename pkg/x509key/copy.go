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

import (
	"github.com/jeremyhahn/go-x509key/pkg/metrics"
	"github.com/jeremyhahn/go-x509key/pkg/types"
)

// CopyKey returns a new, independently owned public key instance whose
// encoded form is byte-identical to the source's, and whose KeyID therefore
// matches. It round-trips through the DER codec rather than cloning fields,
// so copy semantics can never drift from encode/decode semantics.
func CopyKey(key types.PublicKey) (copied types.PublicKey, err error) {
	defer func() { metrics.RecordOperation(metrics.OpCopy, err) }()

	der, err := EncodeDER(key)
	if err != nil {
		return nil, err
	}
	return LoadKeyBytes(der)
}
