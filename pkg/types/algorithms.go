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

package types

import "strings"

// =============================================================================
// Canonical Algorithm Names
// =============================================================================
// Canonical names identify key algorithms throughout the codebase. The name
// is used verbatim for OID registry lookups, factory construction, and key
// fingerprinting, so the exact spelling is part of the wire-stable contract.

// AlgorithmName represents a canonical public key algorithm identifier.
type AlgorithmName string

const (
	// AlgorithmRSA represents the RSA public key algorithm.
	AlgorithmRSA AlgorithmName = "RSA"

	// AlgorithmECDSA represents the ECDSA public key algorithm.
	AlgorithmECDSA AlgorithmName = "ECDSA"

	// AlgorithmEd25519 represents the Ed25519 signature algorithm.
	AlgorithmEd25519 AlgorithmName = "Ed25519"

	// AlgorithmEd448 represents the Ed448 signature algorithm.
	AlgorithmEd448 AlgorithmName = "Ed448"

	// AlgorithmX25519 represents the X25519 key agreement algorithm.
	AlgorithmX25519 AlgorithmName = "X25519"

	// AlgorithmMLDSA44 represents ML-DSA-44 (FIPS 204).
	AlgorithmMLDSA44 AlgorithmName = "ML-DSA-44"

	// AlgorithmMLDSA65 represents ML-DSA-65 (FIPS 204).
	AlgorithmMLDSA65 AlgorithmName = "ML-DSA-65"

	// AlgorithmMLDSA87 represents ML-DSA-87 (FIPS 204).
	AlgorithmMLDSA87 AlgorithmName = "ML-DSA-87"

	// AlgorithmMLKEM512 represents ML-KEM-512 (FIPS 203).
	AlgorithmMLKEM512 AlgorithmName = "ML-KEM-512"

	// AlgorithmMLKEM768 represents ML-KEM-768 (FIPS 203).
	AlgorithmMLKEM768 AlgorithmName = "ML-KEM-768"

	// AlgorithmMLKEM1024 represents ML-KEM-1024 (FIPS 203).
	AlgorithmMLKEM1024 AlgorithmName = "ML-KEM-1024"
)

// String returns the string representation.
func (a AlgorithmName) String() string {
	return string(a)
}

// Equals performs case-insensitive comparison for protocol compatibility.
func (a AlgorithmName) Equals(s string) bool {
	return strings.EqualFold(string(a), s)
}
