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

package oids

import (
	"encoding/asn1"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeremyhahn/go-x509key/pkg/types"
)

func TestDefaultTable(t *testing.T) {
	tests := []struct {
		oid  asn1.ObjectIdentifier
		name types.AlgorithmName
	}{
		{asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 1}, types.AlgorithmRSA},
		{asn1.ObjectIdentifier{1, 2, 840, 10045, 2, 1}, types.AlgorithmECDSA},
		{asn1.ObjectIdentifier{1, 3, 101, 110}, types.AlgorithmX25519},
		{asn1.ObjectIdentifier{1, 3, 101, 112}, types.AlgorithmEd25519},
		{asn1.ObjectIdentifier{1, 3, 101, 113}, types.AlgorithmEd448},
		{asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 3, 18}, types.AlgorithmMLDSA65},
		{asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 4, 2}, types.AlgorithmMLKEM768},
	}

	for _, tt := range tests {
		t.Run(tt.name.String(), func(t *testing.T) {
			name, ok := Lookup(tt.oid)
			require.True(t, ok)
			assert.Equal(t, tt.name, name)

			oid, ok := LookupName(tt.name)
			require.True(t, ok)
			assert.True(t, oid.Equal(tt.oid))
		})
	}
}

func TestLookupUnknown(t *testing.T) {
	_, ok := Lookup(asn1.ObjectIdentifier{1, 2, 3, 4})
	assert.False(t, ok)

	_, ok = LookupName(types.AlgorithmName("DSA"))
	assert.False(t, ok)
}

func TestRegisterExtension(t *testing.T) {
	oid := asn1.ObjectIdentifier{1, 3, 6, 1, 4, 1, 99999, 1}
	name := types.AlgorithmName("Test-Extension")

	Register(oid, name)

	got, ok := Lookup(oid)
	require.True(t, ok)
	assert.Equal(t, name, got)

	gotOID, ok := LookupName(name)
	require.True(t, ok)
	assert.True(t, gotOID.Equal(oid))
}

// Re-pointing a name keeps the old OID decodable.
func TestRegisterRepoint(t *testing.T) {
	oldOID := asn1.ObjectIdentifier{1, 3, 6, 1, 4, 1, 99999, 2}
	newOID := asn1.ObjectIdentifier{1, 3, 6, 1, 4, 1, 99999, 3}
	name := types.AlgorithmName("Test-Repoint")

	Register(oldOID, name)
	Register(newOID, name)

	gotOID, ok := LookupName(name)
	require.True(t, ok)
	assert.True(t, gotOID.Equal(newOID))

	got, ok := Lookup(oldOID)
	require.True(t, ok)
	assert.Equal(t, name, got)
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	require.NotEmpty(t, names)

	assert.True(t, sort.SliceIsSorted(names, func(i, j int) bool {
		return names[i] < names[j]
	}))
	assert.Contains(t, names, types.AlgorithmRSA)
	assert.Contains(t, names, types.AlgorithmMLKEM768)
}
