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

	"github.com/cloudflare/circl/kem"
	"github.com/cloudflare/circl/kem/mlkem/mlkem768"

	"github.com/jeremyhahn/go-x509key/pkg/types"
)

// MLKEM768PublicKey wraps an ML-KEM-768 (FIPS 203) encapsulation key. Key
// bits are the FIPS 203 encoded key; parameters are absent.
type MLKEM768PublicKey struct {
	pub kem.PublicKey
}

// NewMLKEM768PublicKey wraps an existing ML-KEM-768 public key.
func NewMLKEM768PublicKey(pub kem.PublicKey) *MLKEM768PublicKey {
	return &MLKEM768PublicKey{pub: pub}
}

// AlgorithmName returns the canonical algorithm name.
func (k *MLKEM768PublicKey) AlgorithmName() string {
	return types.AlgorithmMLKEM768.String()
}

// Capabilities declares key encapsulation, which maps to the key
// encipherment constraint.
func (k *MLKEM768PublicKey) Capabilities() types.Capability {
	return types.CapExport | types.CapImport | types.CapEncrypt
}

// PublicKey returns the wrapped key, or nil if the key is not populated.
func (k *MLKEM768PublicKey) PublicKey() kem.PublicKey {
	return k.pub
}

// ExportKey returns the algorithm identifier and the FIPS 203 key encoding.
func (k *MLKEM768PublicKey) ExportKey() (types.AlgorithmIdentifier, []byte, error) {
	if k.pub == nil {
		return types.AlgorithmIdentifier{}, nil, ErrNotPopulated
	}

	alg, err := registeredOID(types.AlgorithmMLKEM768)
	if err != nil {
		return types.AlgorithmIdentifier{}, nil, err
	}

	keyBits, err := k.pub.MarshalBinary()
	if err != nil {
		return types.AlgorithmIdentifier{}, nil, err
	}
	return alg, keyBits, nil
}

// ImportKey parses the FIPS 203 key encoding.
func (k *MLKEM768PublicKey) ImportKey(alg types.AlgorithmIdentifier, keyBits []byte) error {
	if err := requireAbsentParameters(alg); err != nil {
		return err
	}

	pub, err := mlkem768.Scheme().UnmarshalBinaryPublicKey(keyBits)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidKeyBits, err)
	}

	k.pub = pub
	return nil
}
