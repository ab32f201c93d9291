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

package keys

import (
	"crypto/ecdh"
	"fmt"

	"github.com/jeremyhahn/go-x509key/pkg/types"
)

// X25519PublicKey wraps an X25519 key agreement public key. Key bits are the
// raw 32-byte u-coordinate; parameters are absent per RFC 8410.
type X25519PublicKey struct {
	pub *ecdh.PublicKey
}

// NewX25519PublicKey wraps an existing X25519 public key.
func NewX25519PublicKey(pub *ecdh.PublicKey) *X25519PublicKey {
	return &X25519PublicKey{pub: pub}
}

// AlgorithmName returns the canonical algorithm name.
func (k *X25519PublicKey) AlgorithmName() string {
	return types.AlgorithmX25519.String()
}

// Capabilities declares key agreement.
func (k *X25519PublicKey) Capabilities() types.Capability {
	return types.CapExport | types.CapImport | types.CapKeyAgreement
}

// PublicKey returns the wrapped key, or nil if the key is not populated.
func (k *X25519PublicKey) PublicKey() *ecdh.PublicKey {
	return k.pub
}

// ExportKey returns the algorithm identifier and the raw key bytes.
func (k *X25519PublicKey) ExportKey() (types.AlgorithmIdentifier, []byte, error) {
	if k.pub == nil {
		return types.AlgorithmIdentifier{}, nil, ErrNotPopulated
	}

	alg, err := registeredOID(types.AlgorithmX25519)
	if err != nil {
		return types.AlgorithmIdentifier{}, nil, err
	}
	return alg, k.pub.Bytes(), nil
}

// ImportKey validates and stores the raw key bytes.
func (k *X25519PublicKey) ImportKey(alg types.AlgorithmIdentifier, keyBits []byte) error {
	if err := requireAbsentParameters(alg); err != nil {
		return err
	}

	pub, err := ecdh.X25519().NewPublicKey(keyBits)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidKeyBits, err)
	}

	k.pub = pub
	return nil
}
