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

// Package oids maintains the bidirectional mapping between public key
// algorithm OIDs and their canonical names. The registry defines the set of
// algorithms the decoder recognizes; an OID absent from the registry is an
// unknown algorithm regardless of what the factory could construct.
//
// The default table is seeded at package load. Applications extending the
// system with additional algorithms register them with Register, typically
// from an init function alongside their factory registration.
package oids

import (
	"encoding/asn1"
	"sort"
	"sync"

	"github.com/jeremyhahn/go-x509key/pkg/types"
)

// registry holds the OID table. Reads vastly outnumber writes; writes only
// occur during extension registration at startup.
type registry struct {
	mu     sync.RWMutex
	byOID  map[string]types.AlgorithmName
	byName map[types.AlgorithmName]asn1.ObjectIdentifier
}

var defaultRegistry = newRegistry()

func newRegistry() *registry {
	r := &registry{
		byOID:  make(map[string]types.AlgorithmName),
		byName: make(map[types.AlgorithmName]asn1.ObjectIdentifier),
	}

	for _, entry := range []struct {
		oid  asn1.ObjectIdentifier
		name types.AlgorithmName
	}{
		{asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 1}, types.AlgorithmRSA},
		{asn1.ObjectIdentifier{1, 2, 840, 10045, 2, 1}, types.AlgorithmECDSA},
		{asn1.ObjectIdentifier{1, 3, 101, 110}, types.AlgorithmX25519},
		{asn1.ObjectIdentifier{1, 3, 101, 112}, types.AlgorithmEd25519},
		{asn1.ObjectIdentifier{1, 3, 101, 113}, types.AlgorithmEd448},
		{asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 3, 17}, types.AlgorithmMLDSA44},
		{asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 3, 18}, types.AlgorithmMLDSA65},
		{asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 3, 19}, types.AlgorithmMLDSA87},
		{asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 4, 1}, types.AlgorithmMLKEM512},
		{asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 4, 2}, types.AlgorithmMLKEM768},
		{asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 4, 3}, types.AlgorithmMLKEM1024},
	} {
		r.byOID[entry.oid.String()] = entry.name
		r.byName[entry.name] = entry.oid
	}

	return r
}

// Register adds or replaces a mapping between an OID and a canonical name.
// Registering the same name with a new OID re-points the name; the previous
// OID mapping is left in place so existing encodings remain decodable.
func Register(oid asn1.ObjectIdentifier, name types.AlgorithmName) {
	defaultRegistry.mu.Lock()
	defer defaultRegistry.mu.Unlock()

	defaultRegistry.byOID[oid.String()] = name
	defaultRegistry.byName[name] = oid
}

// Lookup returns the canonical algorithm name for an OID. The boolean result
// is false when the OID is not registered.
func Lookup(oid asn1.ObjectIdentifier) (types.AlgorithmName, bool) {
	defaultRegistry.mu.RLock()
	defer defaultRegistry.mu.RUnlock()

	name, ok := defaultRegistry.byOID[oid.String()]
	return name, ok
}

// LookupName returns the registered OID for a canonical algorithm name. The
// boolean result is false when the name is not registered.
func LookupName(name types.AlgorithmName) (asn1.ObjectIdentifier, bool) {
	defaultRegistry.mu.RLock()
	defer defaultRegistry.mu.RUnlock()

	oid, ok := defaultRegistry.byName[name]
	return oid, ok
}

// Names returns the registered canonical algorithm names in sorted order.
func Names() []types.AlgorithmName {
	defaultRegistry.mu.RLock()
	defer defaultRegistry.mu.RUnlock()

	names := make([]types.AlgorithmName, 0, len(defaultRegistry.byName))
	for name := range defaultRegistry.byName {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}
