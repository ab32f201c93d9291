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
	"bytes"
	"errors"
	"fmt"

	"github.com/jeremyhahn/go-x509key/pkg/oids"
	"github.com/jeremyhahn/go-x509key/pkg/types"
)

var (
	// ErrNotPopulated is returned when exporting a key that holds no material.
	ErrNotPopulated = errors.New("keys: key not populated")

	// ErrInvalidKeyBits is returned when imported key bits cannot be parsed
	// for the algorithm.
	ErrInvalidKeyBits = errors.New("keys: invalid key bits")

	// ErrInvalidParameters is returned when the algorithm identifier carries
	// parameters the algorithm does not allow or cannot parse.
	ErrInvalidParameters = errors.New("keys: invalid algorithm parameters")
)

// asn1Null is the DER encoding of NULL, required as the parameter element of
// some algorithm identifiers (RFC 3279 for RSA).
var asn1Null = []byte{0x05, 0x00}

// registeredOID returns the OID the registry holds for a canonical name.
// Every implementation in this package has a seeded registry entry.
func registeredOID(name types.AlgorithmName) (types.AlgorithmIdentifier, error) {
	oid, ok := oids.LookupName(name)
	if !ok {
		return types.AlgorithmIdentifier{}, fmt.Errorf("keys: no OID registered for %s", name)
	}
	return types.AlgorithmIdentifier{OID: oid}, nil
}

// requireAbsentParameters rejects a non-empty parameter element. RFC 8410
// algorithms (Ed25519, Ed448, X25519) and the FIPS 203/204 algorithms forbid
// parameters entirely.
func requireAbsentParameters(alg types.AlgorithmIdentifier) error {
	if len(alg.Parameters) != 0 {
		return fmt.Errorf("%w: parameters must be absent", ErrInvalidParameters)
	}
	return nil
}

// requireNullOrAbsentParameters accepts an absent or explicit NULL parameter
// element and rejects anything else.
func requireNullOrAbsentParameters(alg types.AlgorithmIdentifier) error {
	if len(alg.Parameters) == 0 || bytes.Equal(alg.Parameters, asn1Null) {
		return nil
	}
	return fmt.Errorf("%w: expected NULL parameters", ErrInvalidParameters)
}
