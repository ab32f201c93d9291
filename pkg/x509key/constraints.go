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

	"github.com/jeremyhahn/go-x509key/pkg/types"
)

// FindConstraints derives the X.509 key-usage bitmask a key's declared
// capabilities permit:
//
//   - CapEncrypt grants KeyEncipherment.
//   - CapKeyAgreement grants KeyAgreement.
//   - CapVerify or CapVerifyRecovery grants DigitalSignature and
//     ContentCommitment (non-repudiation).
//
// A non-zero limits mask is a ceiling: the derived mask is intersected with
// it. A zero limits mask means no ceiling. The function is pure.
func FindConstraints(key types.PublicKey, limits x509.KeyUsage) x509.KeyUsage {
	caps := key.Capabilities()

	var usage x509.KeyUsage
	if caps.Has(types.CapEncrypt) {
		usage |= x509.KeyUsageKeyEncipherment
	}
	if caps.Has(types.CapKeyAgreement) {
		usage |= x509.KeyUsageKeyAgreement
	}
	if caps.Has(types.CapVerify) || caps.Has(types.CapVerifyRecovery) {
		usage |= x509.KeyUsageDigitalSignature | x509.KeyUsageContentCommitment
	}

	if limits != 0 {
		usage &= limits
	}
	return usage
}
