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

	"github.com/cloudflare/circl/sign/mldsa/mldsa65"

	"github.com/jeremyhahn/go-x509key/pkg/types"
)

// MLDSA65PublicKey wraps an ML-DSA-65 (FIPS 204) public key. Key bits are
// the FIPS 204 encoded key; parameters are absent.
type MLDSA65PublicKey struct {
	pub *mldsa65.PublicKey
}

// NewMLDSA65PublicKey wraps an existing ML-DSA-65 public key.
func NewMLDSA65PublicKey(pub *mldsa65.PublicKey) *MLDSA65PublicKey {
	return &MLDSA65PublicKey{pub: pub}
}

// AlgorithmName returns the canonical algorithm name.
func (k *MLDSA65PublicKey) AlgorithmName() string {
	return types.AlgorithmMLDSA65.String()
}

// Capabilities declares verification without message recovery.
func (k *MLDSA65PublicKey) Capabilities() types.Capability {
	return types.CapExport | types.CapImport | types.CapVerify
}

// PublicKey returns the wrapped key, or nil if the key is not populated.
func (k *MLDSA65PublicKey) PublicKey() *mldsa65.PublicKey {
	return k.pub
}

// ExportKey returns the algorithm identifier and the FIPS 204 key encoding.
func (k *MLDSA65PublicKey) ExportKey() (types.AlgorithmIdentifier, []byte, error) {
	if k.pub == nil {
		return types.AlgorithmIdentifier{}, nil, ErrNotPopulated
	}

	alg, err := registeredOID(types.AlgorithmMLDSA65)
	if err != nil {
		return types.AlgorithmIdentifier{}, nil, err
	}

	keyBits, err := k.pub.MarshalBinary()
	if err != nil {
		return types.AlgorithmIdentifier{}, nil, err
	}
	return alg, keyBits, nil
}

// ImportKey parses the FIPS 204 key encoding.
func (k *MLDSA65PublicKey) ImportKey(alg types.AlgorithmIdentifier, keyBits []byte) error {
	if err := requireAbsentParameters(alg); err != nil {
		return err
	}

	var pub mldsa65.PublicKey
	if err := pub.UnmarshalBinary(keyBits); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidKeyBits, err)
	}

	k.pub = &pub
	return nil
}
