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
	"crypto/sha1"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeremyhahn/go-x509key/pkg/types"
)

// stubKey declares capabilities but implements no codec interfaces.
type stubKey struct {
	caps types.Capability
}

func (s stubKey) AlgorithmName() string          { return "stub" }
func (s stubKey) Capabilities() types.Capability { return s.caps }

func TestKeyIDDeterministic(t *testing.T) {
	for name, key := range generateTestKeys(t) {
		t.Run(name, func(t *testing.T) {
			id1, err := KeyID(key)
			require.NoError(t, err)
			id2, err := KeyID(key)
			require.NoError(t, err)
			assert.Equal(t, id1, id2)
			assert.NotZero(t, id1)
		})
	}
}

func TestKeyIDDistinctAcrossKeys(t *testing.T) {
	all := generateTestKeys(t)

	seen := make(map[uint64]string, len(all))
	for name, key := range all {
		id, err := KeyID(key)
		require.NoError(t, err)
		prev, dup := seen[id]
		require.False(t, dup, "fingerprint collision between %s and %s", name, prev)
		seen[id] = name
	}
}

// The fingerprint is the big-endian truncated SHA-1 of the exported triple.
func TestKeyIDConstruction(t *testing.T) {
	key := generateTestKeys(t)["Ed25519"]

	exporter, ok := key.(types.Exporter)
	require.True(t, ok)
	alg, keyBits, err := exporter.ExportKey()
	require.NoError(t, err)

	h := sha1.New()
	h.Write([]byte(key.AlgorithmName()))
	h.Write(alg.Parameters)
	h.Write(keyBits)
	want := binary.BigEndian.Uint64(h.Sum(nil)[:8])

	got, err := KeyID(key)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestKeyIDMissingExporter(t *testing.T) {
	_, err := KeyID(stubKey{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestEncodeMissingExporter(t *testing.T) {
	_, err := EncodeDER(stubKey{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEncode)
}
