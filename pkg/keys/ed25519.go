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
	"crypto/ed25519"
	"fmt"

	"github.com/jeremyhahn/go-x509key/pkg/types"
)

// Ed25519PublicKey wraps an Ed25519 public key. Key bits are the raw
// 32-byte key; parameters are absent per RFC 8410.
type Ed25519PublicKey struct {
	pub ed25519.PublicKey
}

// NewEd25519PublicKey wraps an existing Ed25519 public key.
func NewEd25519PublicKey(pub ed25519.PublicKey) *Ed25519PublicKey {
	return &Ed25519PublicKey{pub: pub}
}

// AlgorithmName returns the canonical algorithm name.
func (k *Ed25519PublicKey) AlgorithmName() string {
	return types.AlgorithmEd25519.String()
}

// Capabilities declares verification without message recovery.
func (k *Ed25519PublicKey) Capabilities() types.Capability {
	return types.CapExport | types.CapImport | types.CapVerify
}

// PublicKey returns the wrapped key, or nil if the key is not populated.
func (k *Ed25519PublicKey) PublicKey() ed25519.PublicKey {
	return k.pub
}

// ExportKey returns the algorithm identifier and the raw key bytes.
func (k *Ed25519PublicKey) ExportKey() (types.AlgorithmIdentifier, []byte, error) {
	if k.pub == nil {
		return types.AlgorithmIdentifier{}, nil, ErrNotPopulated
	}

	alg, err := registeredOID(types.AlgorithmEd25519)
	if err != nil {
		return types.AlgorithmIdentifier{}, nil, err
	}
	return alg, []byte(k.pub), nil
}

// ImportKey validates and stores the raw key bytes.
func (k *Ed25519PublicKey) ImportKey(alg types.AlgorithmIdentifier, keyBits []byte) error {
	if err := requireAbsentParameters(alg); err != nil {
		return err
	}
	if len(keyBits) != ed25519.PublicKeySize {
		return fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidKeyBits, ed25519.PublicKeySize, len(keyBits))
	}

	k.pub = ed25519.PublicKey(append([]byte(nil), keyBits...))
	return nil
}
