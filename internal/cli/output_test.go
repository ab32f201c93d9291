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

package cli

import (
	"bytes"
	"crypto/x509"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintKeyInfoText(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter("text", &buf)

	err := printer.PrintKeyInfo(KeyInfo{
		Algorithm:    "Ed25519",
		KeyID:        "0123456789abcdef",
		Capabilities: "export|import|verify",
		Constraints:  []string{"digital-signature", "non-repudiation"},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Algorithm:    Ed25519")
	assert.Contains(t, out, "Key ID:       0123456789abcdef")
	assert.Contains(t, out, "- digital-signature")
	assert.Contains(t, out, "- non-repudiation")
}

func TestPrintKeyInfoJSON(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter("json", &buf)

	err := printer.PrintKeyInfo(KeyInfo{
		Algorithm: "RSA",
		KeyID:     "deadbeefdeadbeef",
	})
	require.NoError(t, err)

	var info KeyInfo
	require.NoError(t, json.Unmarshal(buf.Bytes(), &info))
	assert.Equal(t, "RSA", info.Algorithm)
	assert.Equal(t, "deadbeefdeadbeef", info.KeyID)
}

func TestPrintKeyInfoUnknownFormat(t *testing.T) {
	printer := NewPrinter("yaml", &bytes.Buffer{})
	err := printer.PrintKeyInfo(KeyInfo{})
	assert.Error(t, err)
}

func TestKeyUsageNames(t *testing.T) {
	assert.Nil(t, keyUsageNames(0))

	names := keyUsageNames(x509.KeyUsageDigitalSignature | x509.KeyUsageContentCommitment)
	assert.Equal(t, []string{"digital-signature", "non-repudiation"}, names)

	names = keyUsageNames(x509.KeyUsageKeyEncipherment)
	assert.Equal(t, []string{"key-encipherment"}, names)

	names = keyUsageNames(x509.KeyUsageKeyAgreement)
	assert.Equal(t, []string{"key-agreement"}, names)
}
