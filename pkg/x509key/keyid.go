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
	"crypto/sha1"
	"encoding/binary"
	"fmt"

	"github.com/jeremyhahn/go-x509key/pkg/metrics"
	"github.com/jeremyhahn/go-x509key/pkg/types"
)

// keyIDSize is the truncated digest length in bytes.
const keyIDSize = 8

// KeyID computes a deterministic 64-bit fingerprint of a public key: SHA-1
// over the canonical algorithm name, the algorithm identifier parameters,
// and the key bits, truncated to 8 bytes and interpreted big-endian.
//
// The triple (name, parameters, key bits) fully determines the result; two
// keys with identical exported forms produce identical fingerprints
// regardless of object identity. Keys are treated as immutable, so the value
// may be cached by callers.
//
// Every public key type in the system is expected to support export, so a
// missing Exporter capability is reported as ErrInternal.
func KeyID(key types.PublicKey) (id uint64, err error) {
	defer func() { metrics.RecordOperation(metrics.OpKeyID, err) }()

	exporter, ok := key.(types.Exporter)
	if !ok {
		return 0, fmt.Errorf("%w: %s key does not support encoding", ErrInternal, key.AlgorithmName())
	}

	alg, keyBits, err := exporter.ExportKey()
	if err != nil {
		return 0, fmt.Errorf("%w: %s key export: %v", ErrInternal, key.AlgorithmName(), err)
	}

	h := sha1.New()
	h.Write([]byte(key.AlgorithmName()))
	h.Write(alg.Parameters)
	h.Write(keyBits)

	sum := h.Sum(nil)
	if len(sum) < keyIDSize {
		return 0, fmt.Errorf("%w: digest returned %d bytes, need %d", ErrInternal, len(sum), keyIDSize)
	}

	return binary.BigEndian.Uint64(sum[:keyIDSize]), nil
}
