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

package x509key

import (
	"bytes"
	"crypto/x509/pkix"
	"encoding/asn1"
	"errors"
	"fmt"

	"github.com/jeremyhahn/go-x509key/pkg/types"
)

// PEMTypePublicKey is the PEM block label for SubjectPublicKeyInfo. Decoding
// rejects any other label.
const PEMTypePublicKey = "PUBLIC KEY"

// subjectPublicKeyInfo is the wire structure: SEQUENCE of an
// AlgorithmIdentifier and a BIT STRING carrying the key material.
type subjectPublicKeyInfo struct {
	Algorithm pkix.AlgorithmIdentifier
	PublicKey asn1.BitString
}

// asn1SequenceTag is the identifier octet of a constructed SEQUENCE, the
// first byte of every BER/DER SubjectPublicKeyInfo.
const asn1SequenceTag = 0x30

// pemPreamble marks the start of a PEM header line.
var pemPreamble = []byte("-----BEGIN ")

// pemSearchLimit bounds the preamble search. A binary structure can carry
// the preamble bytes inside its key material; an unbounded scan would
// misroute such input to the PEM branch.
const pemSearchLimit = 4096

// looksLikeBER reports whether data plausibly begins a binary BER/DER
// structure. The predicate is pure; it never consumes input.
func looksLikeBER(data []byte) bool {
	return len(data) > 0 && data[0] == asn1SequenceTag
}

// looksLikePEM reports whether data contains a PEM preamble within the
// leading bytes, allowing for whitespace before the header line.
func looksLikePEM(data []byte) bool {
	if len(data) > pemSearchLimit {
		data = data[:pemSearchLimit]
	}
	return bytes.Contains(data, pemPreamble)
}

// marshalSPKI builds the DER SubjectPublicKeyInfo from an algorithm
// identifier and key bits. Key bits are byte-aligned; the BIT STRING carries
// zero unused bits.
func marshalSPKI(alg types.AlgorithmIdentifier, keyBits []byte) ([]byte, error) {
	spki := subjectPublicKeyInfo{
		Algorithm: pkix.AlgorithmIdentifier{
			Algorithm: alg.OID,
		},
		PublicKey: asn1.BitString{
			Bytes:     keyBits,
			BitLength: len(keyBits) * 8,
		},
	}
	if len(alg.Parameters) > 0 {
		spki.Algorithm.Parameters = asn1.RawValue{FullBytes: alg.Parameters}
	}

	der, err := asn1.Marshal(spki)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal SubjectPublicKeyInfo: %w", err)
	}
	return der, nil
}

// unmarshalSPKI parses a DER SubjectPublicKeyInfo, rejecting trailing data
// and non-byte-aligned key material.
func unmarshalSPKI(der []byte) (types.AlgorithmIdentifier, []byte, error) {
	var spki subjectPublicKeyInfo

	rest, err := asn1.Unmarshal(der, &spki)
	if err != nil {
		return types.AlgorithmIdentifier{}, nil, fmt.Errorf("malformed SubjectPublicKeyInfo: %w", err)
	}
	if len(rest) != 0 {
		return types.AlgorithmIdentifier{}, nil, fmt.Errorf("%d trailing bytes after SubjectPublicKeyInfo", len(rest))
	}
	if spki.PublicKey.BitLength != len(spki.PublicKey.Bytes)*8 {
		return types.AlgorithmIdentifier{}, nil, errors.New("subjectPublicKey is not byte-aligned")
	}

	alg := types.AlgorithmIdentifier{
		OID:        spki.Algorithm.Algorithm,
		Parameters: spki.Algorithm.Parameters.FullBytes,
	}
	return alg, spki.PublicKey.Bytes, nil
}
