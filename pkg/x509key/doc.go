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

// Package x509key implements the X.509 SubjectPublicKeyInfo codec: it encodes
// public keys to DER or PEM, decodes attacker-controlled DER or PEM input back
// into concrete key instances, computes stable 64-bit key fingerprints, and
// derives the certificate key-usage constraints a key's capabilities permit.
//
// The codec is structural only. It binds the generic ASN.1 layer to concrete
// key implementations through the pkg/oids registry and the pkg/keyfactory
// factory; the algorithm-specific interpretation of key material lives in the
// key implementations themselves (see pkg/keys for the default set).
//
// Decoding auto-detects the wire format. Input that begins a binary BER/DER
// SEQUENCE and carries no PEM preamble is parsed as raw DER; anything else
// must be a PEM block with the exact label "PUBLIC KEY".
//
// All operations are synchronous and share no mutable state; independent
// calls may run concurrently. A decoded key is owned exclusively by the
// caller of the decode entry point.
package x509key
