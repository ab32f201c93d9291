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
	"crypto/ecdsa"
	"crypto/elliptic"
	"encoding/asn1"
	"fmt"

	"github.com/jeremyhahn/go-x509key/pkg/types"
)

// Named curve OIDs from RFC 5480.
var (
	oidCurveP224 = asn1.ObjectIdentifier{1, 3, 132, 0, 33}
	oidCurveP256 = asn1.ObjectIdentifier{1, 2, 840, 10045, 3, 1, 7}
	oidCurveP384 = asn1.ObjectIdentifier{1, 3, 132, 0, 34}
	oidCurveP521 = asn1.ObjectIdentifier{1, 3, 132, 0, 35}
)

// ECDSAPublicKey wraps an ECDSA public key on a NIST curve. The algorithm
// identifier parameters carry the named curve OID; key bits are the
// uncompressed EC point.
type ECDSAPublicKey struct {
	pub *ecdsa.PublicKey
}

// NewECDSAPublicKey wraps an existing ECDSA public key.
func NewECDSAPublicKey(pub *ecdsa.PublicKey) *ECDSAPublicKey {
	return &ECDSAPublicKey{pub: pub}
}

// AlgorithmName returns the canonical algorithm name.
func (k *ECDSAPublicKey) AlgorithmName() string {
	return types.AlgorithmECDSA.String()
}

// Capabilities declares verification without message recovery.
func (k *ECDSAPublicKey) Capabilities() types.Capability {
	return types.CapExport | types.CapImport | types.CapVerify
}

// PublicKey returns the wrapped key, or nil if the key is not populated.
func (k *ECDSAPublicKey) PublicKey() *ecdsa.PublicKey {
	return k.pub
}

// ExportKey returns the algorithm identifier with the named curve parameter
// and the uncompressed point as key bits.
func (k *ECDSAPublicKey) ExportKey() (types.AlgorithmIdentifier, []byte, error) {
	if k.pub == nil {
		return types.AlgorithmIdentifier{}, nil, ErrNotPopulated
	}

	curveOID, err := oidForCurve(k.pub.Curve)
	if err != nil {
		return types.AlgorithmIdentifier{}, nil, err
	}

	alg, err := registeredOID(types.AlgorithmECDSA)
	if err != nil {
		return types.AlgorithmIdentifier{}, nil, err
	}
	if alg.Parameters, err = asn1.Marshal(curveOID); err != nil {
		return types.AlgorithmIdentifier{}, nil, err
	}

	return alg, elliptic.Marshal(k.pub.Curve, k.pub.X, k.pub.Y), nil
}

// ImportKey parses the named curve parameter and the uncompressed point.
func (k *ECDSAPublicKey) ImportKey(alg types.AlgorithmIdentifier, keyBits []byte) error {
	var curveOID asn1.ObjectIdentifier
	rest, err := asn1.Unmarshal(alg.Parameters, &curveOID)
	if err != nil || len(rest) != 0 {
		return fmt.Errorf("%w: expected named curve OID", ErrInvalidParameters)
	}

	curve, err := curveForOID(curveOID)
	if err != nil {
		return err
	}

	x, y := elliptic.Unmarshal(curve, keyBits)
	if x == nil {
		return fmt.Errorf("%w: malformed EC point", ErrInvalidKeyBits)
	}

	k.pub = &ecdsa.PublicKey{Curve: curve, X: x, Y: y}
	return nil
}

func oidForCurve(curve elliptic.Curve) (asn1.ObjectIdentifier, error) {
	switch curve {
	case elliptic.P224():
		return oidCurveP224, nil
	case elliptic.P256():
		return oidCurveP256, nil
	case elliptic.P384():
		return oidCurveP384, nil
	case elliptic.P521():
		return oidCurveP521, nil
	default:
		return nil, fmt.Errorf("keys: unsupported curve %s", curve.Params().Name)
	}
}

func curveForOID(oid asn1.ObjectIdentifier) (elliptic.Curve, error) {
	switch {
	case oid.Equal(oidCurveP224):
		return elliptic.P224(), nil
	case oid.Equal(oidCurveP256):
		return elliptic.P256(), nil
	case oid.Equal(oidCurveP384):
		return elliptic.P384(), nil
	case oid.Equal(oidCurveP521):
		return elliptic.P521(), nil
	default:
		return nil, fmt.Errorf("%w: unsupported curve OID %s", ErrInvalidParameters, oid)
	}
}
