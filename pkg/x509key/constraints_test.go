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
	"crypto/x509"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jeremyhahn/go-x509key/pkg/types"
)

func TestFindConstraints(t *testing.T) {
	signing := x509.KeyUsageDigitalSignature | x509.KeyUsageContentCommitment

	tests := []struct {
		name   string
		caps   types.Capability
		limits x509.KeyUsage
		want   x509.KeyUsage
	}{
		{
			name: "verify only, no ceiling",
			caps: types.CapVerify,
			want: signing,
		},
		{
			name: "verify with recovery, no ceiling",
			caps: types.CapVerifyRecovery,
			want: signing,
		},
		{
			name:   "verify limited to digital signature",
			caps:   types.CapVerify,
			limits: x509.KeyUsageDigitalSignature,
			want:   x509.KeyUsageDigitalSignature,
		},
		{
			name:   "verify limited to key agreement yields nothing",
			caps:   types.CapVerify,
			limits: x509.KeyUsageKeyAgreement,
			want:   0,
		},
		{
			name: "encrypting key",
			caps: types.CapEncrypt,
			want: x509.KeyUsageKeyEncipherment,
		},
		{
			name: "key agreement key",
			caps: types.CapKeyAgreement,
			want: x509.KeyUsageKeyAgreement,
		},
		{
			name: "encrypt and verify with recovery",
			caps: types.CapEncrypt | types.CapVerifyRecovery,
			want: x509.KeyUsageKeyEncipherment | signing,
		},
		{
			name: "no constraint capabilities",
			caps: types.CapExport | types.CapImport,
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindConstraints(stubKey{caps: tt.caps}, tt.limits)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindConstraintsConcreteKeys(t *testing.T) {
	all := generateTestKeys(t)
	signing := x509.KeyUsageDigitalSignature | x509.KeyUsageContentCommitment

	want := map[string]x509.KeyUsage{
		"RSA":        x509.KeyUsageKeyEncipherment | signing,
		"ECDSA":      signing,
		"Ed25519":    signing,
		"Ed448":      signing,
		"X25519":     x509.KeyUsageKeyAgreement,
		"ML-DSA-65":  signing,
		"ML-KEM-768": x509.KeyUsageKeyEncipherment,
	}

	for name, key := range all {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, want[name], FindConstraints(key, 0))
		})
	}
}
