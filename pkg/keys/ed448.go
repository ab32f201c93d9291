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
	"fmt"

	"github.com/cloudflare/circl/sign/ed448"

	"github.com/jeremyhahn/go-x509key/pkg/types"
)

// Ed448PublicKey wraps an Ed448 public key. Key bits are the raw 57-byte
// key; parameters are absent per RFC 8410.
type Ed448PublicKey struct {
	pub ed448.PublicKey
}

// NewEd448PublicKey wraps an existing Ed448 public key.
func NewEd448PublicKey(pub ed448.PublicKey) *Ed448PublicKey {
	return &Ed448PublicKey{pub: pub}
}

// AlgorithmName returns the canonical algorithm name.
func (k *Ed448PublicKey) AlgorithmName() string {
	return types.AlgorithmEd448.String()
}

// Capabilities declares verification without message recovery.
func (k *Ed448PublicKey) Capabilities() types.Capability {
	return types.CapExport | types.CapImport | types.CapVerify
}

// PublicKey returns the wrapped key, or nil if the key is not populated.
func (k *Ed448PublicKey) PublicKey() ed448.PublicKey {
	return k.pub
}

// ExportKey returns the algorithm identifier and the raw key bytes.
func (k *Ed448PublicKey) ExportKey() (types.AlgorithmIdentifier, []byte, error) {
	if k.pub == nil {
		return types.AlgorithmIdentifier{}, nil, ErrNotPopulated
	}

	alg, err := registeredOID(types.AlgorithmEd448)
	if err != nil {
		return types.AlgorithmIdentifier{}, nil, err
	}
	return alg, []byte(k.pub), nil
}

// ImportKey validates and stores the raw key bytes.
func (k *Ed448PublicKey) ImportKey(alg types.AlgorithmIdentifier, keyBits []byte) error {
	if err := requireAbsentParameters(alg); err != nil {
		return err
	}
	if len(keyBits) != ed448.PublicKeySize {
		return fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidKeyBits, ed448.PublicKeySize, len(keyBits))
	}

	k.pub = ed448.PublicKey(append([]byte(nil), keyBits...))
	return nil
}
