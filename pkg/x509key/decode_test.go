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
	"encoding/asn1"
	"encoding/pem"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeremyhahn/go-x509key/pkg/keyfactory"
	"github.com/jeremyhahn/go-x509key/pkg/oids"
	"github.com/jeremyhahn/go-x509key/pkg/types"
)

func TestLoadKeyEmptyBitsRejected(t *testing.T) {
	oid, ok := oids.LookupName(types.AlgorithmEd25519)
	require.True(t, ok)

	der, err := marshalSPKI(types.AlgorithmIdentifier{OID: oid}, nil)
	require.NoError(t, err)

	_, err = LoadKeyBytes(der)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecode)
}

func TestLoadKeyUnknownOIDRejected(t *testing.T) {
	alg := types.AlgorithmIdentifier{OID: asn1.ObjectIdentifier{1, 2, 3, 4}}
	der, err := marshalSPKI(alg, []byte{0x01, 0x02, 0x03})
	require.NoError(t, err)

	_, err = LoadKeyBytes(der)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecode)
}

func TestLoadKeyUnsupportedAlgorithmRejected(t *testing.T) {
	// Registered in the OID table but deliberately absent from the factory.
	name := types.AlgorithmName("No-Impl")
	oid := asn1.ObjectIdentifier{1, 2, 3, 4, 5, 6}
	oids.Register(oid, name)

	der, err := marshalSPKI(types.AlgorithmIdentifier{OID: oid}, []byte{0x01})
	require.NoError(t, err)

	_, err = LoadKeyBytes(der)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecode)
}

func TestLoadKeyTrailingDataRejected(t *testing.T) {
	key := generateTestKeys(t)["Ed25519"]
	der, err := EncodeDER(key)
	require.NoError(t, err)

	_, err = LoadKeyBytes(append(der, 0x00))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecode)
}

func TestLoadKeyPEMLabelEnforced(t *testing.T) {
	key := generateTestKeys(t)["Ed25519"]
	der, err := EncodeDER(key)
	require.NoError(t, err)

	wrongLabel := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})

	_, err = LoadKeyBytes(wrongLabel)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecode)
}

func TestLoadKeyGarbageRejected(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"text", []byte("not a key at all")},
		{"truncated sequence", []byte{0x30, 0x82, 0xff, 0xff, 0x01}},
		{"pem preamble only", []byte("-----BEGIN PUBLIC KEY-----")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadKeyBytes(tt.data)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrDecode)
		})
	}
}

func TestLoadKeyMalformedImportRejected(t *testing.T) {
	// Well-formed SPKI, registered OID, but key bits the implementation
	// cannot parse.
	oid, ok := oids.LookupName(types.AlgorithmEd25519)
	require.True(t, ok)

	der, err := marshalSPKI(types.AlgorithmIdentifier{OID: oid}, []byte{0x01, 0x02})
	require.NoError(t, err)

	_, err = LoadKeyBytes(der)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecode)
}

// A registered constructor yielding a key without import support is a
// library invariant violation: it surfaces as ErrInternal and crosses the
// decode boundary unmasked.
func TestLoadKeyNonImportingImplementation(t *testing.T) {
	name := types.AlgorithmName("No-Import")
	oid := asn1.ObjectIdentifier{1, 2, 3, 4, 5, 7}
	oids.Register(oid, name)
	keyfactory.Register(name, func() types.PublicKey { return stubKey{} })

	der, err := marshalSPKI(types.AlgorithmIdentifier{OID: oid}, []byte{0x01})
	require.NoError(t, err)

	_, err = LoadKeyBytes(der)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
	assert.NotErrorIs(t, err, ErrDecode)
}

func TestLoadKeyFile(t *testing.T) {
	key := generateTestKeys(t)["ECDSA"]
	pemBytes, err := EncodePEM(key)
	require.NoError(t, err)

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/keys/server.pub", pemBytes, 0o644))

	loaded, err := LoadKeyFile(fs, "/keys/server.pub")
	require.NoError(t, err)
	assert.Equal(t, "ECDSA", loaded.AlgorithmName())

	_, err = LoadKeyFile(fs, "/keys/missing.pub")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecode)
}

func TestFormatSniffing(t *testing.T) {
	assert.True(t, looksLikeBER([]byte{0x30, 0x03}))
	assert.False(t, looksLikeBER([]byte("-----BEGIN PUBLIC KEY-----")))
	assert.False(t, looksLikeBER(nil))

	assert.True(t, looksLikePEM([]byte("-----BEGIN PUBLIC KEY-----\n")))
	assert.True(t, looksLikePEM([]byte("\n\n-----BEGIN PUBLIC KEY-----\n")))
	assert.False(t, looksLikePEM([]byte{0x30, 0x03, 0x01}))

	// The preamble search is bounded: marker bytes buried deep inside a
	// binary structure must not reroute it to the PEM branch.
	ending := append(bytes.Repeat([]byte{0x00}, pemSearchLimit-len(pemPreamble)), pemPreamble...)
	assert.True(t, looksLikePEM(ending))

	buried := append(bytes.Repeat([]byte{0x00}, pemSearchLimit), pemPreamble...)
	assert.False(t, looksLikePEM(buried))
}
