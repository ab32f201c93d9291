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
	"crypto/rsa"
	"crypto/x509"
	"fmt"

	"github.com/jeremyhahn/go-x509key/pkg/types"
)

// RSAPublicKey wraps an RSA public key. Key bits are the PKCS#1
// RSAPublicKey structure; the algorithm identifier carries NULL parameters
// per RFC 3279.
type RSAPublicKey struct {
	pub *rsa.PublicKey
}

// NewRSAPublicKey wraps an existing RSA public key.
func NewRSAPublicKey(pub *rsa.PublicKey) *RSAPublicKey {
	return &RSAPublicKey{pub: pub}
}

// AlgorithmName returns the canonical algorithm name.
func (k *RSAPublicKey) AlgorithmName() string {
	return types.AlgorithmRSA.String()
}

// Capabilities declares encryption and verification with message recovery.
func (k *RSAPublicKey) Capabilities() types.Capability {
	return types.CapExport | types.CapImport | types.CapEncrypt | types.CapVerifyRecovery
}

// PublicKey returns the wrapped key, or nil if the key is not populated.
func (k *RSAPublicKey) PublicKey() *rsa.PublicKey {
	return k.pub
}

// ExportKey returns the algorithm identifier and PKCS#1 key bits.
func (k *RSAPublicKey) ExportKey() (types.AlgorithmIdentifier, []byte, error) {
	if k.pub == nil {
		return types.AlgorithmIdentifier{}, nil, ErrNotPopulated
	}

	alg, err := registeredOID(types.AlgorithmRSA)
	if err != nil {
		return types.AlgorithmIdentifier{}, nil, err
	}
	alg.Parameters = asn1Null

	return alg, x509.MarshalPKCS1PublicKey(k.pub), nil
}

// ImportKey parses PKCS#1 key bits into the receiver.
func (k *RSAPublicKey) ImportKey(alg types.AlgorithmIdentifier, keyBits []byte) error {
	if err := requireNullOrAbsentParameters(alg); err != nil {
		return err
	}

	pub, err := x509.ParsePKCS1PublicKey(keyBits)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidKeyBits, err)
	}

	k.pub = pub
	return nil
}
