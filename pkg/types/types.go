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

// Package types defines the value types and capability contracts shared by the
// go-x509key codec, registry, factory, and concrete key implementations.
package types

import (
	"encoding/asn1"
	"strings"
)

// =============================================================================
// Capabilities
// =============================================================================

// Capability is a bitmask declaring what a public key implementation is able
// to do. Every concrete key type declares its full capability set up front;
// consumers query the declared set rather than probing the dynamic type.
//
// CapExport and CapImport describe structural encode/decode support and are
// backed by the Exporter and Importer interfaces. The remaining bits are
// markers consumed by constraint derivation only.
type Capability uint32

const (
	// CapExport indicates the key can produce its SubjectPublicKeyInfo
	// algorithm identifier and key bits.
	CapExport Capability = 1 << iota

	// CapImport indicates the key can be populated from decoded
	// SubjectPublicKeyInfo material.
	CapImport

	// CapEncrypt indicates the key supports public-key encryption or key
	// encapsulation.
	CapEncrypt

	// CapKeyAgreement indicates the key supports key agreement.
	CapKeyAgreement

	// CapVerify indicates the key supports signature verification without
	// message recovery.
	CapVerify

	// CapVerifyRecovery indicates the key supports signature verification
	// with message recovery.
	CapVerifyRecovery
)

// Has reports whether every capability in want is present in the set.
func (c Capability) Has(want Capability) bool {
	return c&want == want
}

// String returns a human-readable representation of the capability set.
func (c Capability) String() string {
	names := []struct {
		cap  Capability
		name string
	}{
		{CapExport, "export"},
		{CapImport, "import"},
		{CapEncrypt, "encrypt"},
		{CapKeyAgreement, "key-agreement"},
		{CapVerify, "verify"},
		{CapVerifyRecovery, "verify-recovery"},
	}

	var set []string
	for _, n := range names {
		if c.Has(n.cap) {
			set = append(set, n.name)
		}
	}
	if len(set) == 0 {
		return "none"
	}
	return strings.Join(set, "|")
}

// =============================================================================
// SubjectPublicKeyInfo value types
// =============================================================================

// AlgorithmIdentifier pairs an algorithm OID with the raw DER encoding of its
// parameter element. Parameters is nil when the algorithm carries no
// parameters. Values are immutable once constructed.
type AlgorithmIdentifier struct {
	OID        asn1.ObjectIdentifier
	Parameters []byte
}

// =============================================================================
// Public key contracts
// =============================================================================

// PublicKey is the minimal contract every public key handled by this library
// satisfies. The algorithm name is the canonical registry name and feeds
// directly into key fingerprinting, so implementations must return a stable
// value.
type PublicKey interface {
	// AlgorithmName returns the canonical algorithm name (e.g. "RSA").
	AlgorithmName() string

	// Capabilities returns the declared capability set for this key type.
	Capabilities() Capability
}

// Exporter is implemented by keys that can emit their SubjectPublicKeyInfo
// components: the algorithm identifier and the algorithm-specific key bits
// carried in the BIT STRING element.
type Exporter interface {
	ExportKey() (AlgorithmIdentifier, []byte, error)
}

// Importer is implemented by keys that can be populated from decoded
// SubjectPublicKeyInfo components. ImportKey parses the algorithm-specific
// key bits and must reject material it cannot fully understand.
//
// ImportKey assumes exclusive access to the receiver; freshly constructed
// keys are populated before they are published to any other owner.
type Importer interface {
	ImportKey(alg AlgorithmIdentifier, keyBits []byte) error
}
