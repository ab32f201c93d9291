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

// Package keys provides the default public key implementations for the
// go-x509key codec: RSA, ECDSA, Ed25519, X25519 from the standard library,
// and Ed448, ML-DSA-65, ML-KEM-768 via cloudflare/circl.
//
// Each type declares its capability set and implements the structural
// Exporter/Importer contracts. The key types hold parsed key material only;
// signing, verification, and encryption operations are out of scope.
//
// Importing this package installs every implementation in the key factory:
//
//	import _ "github.com/jeremyhahn/go-x509key/pkg/keys"
package keys
