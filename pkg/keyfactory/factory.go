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

// Package keyfactory maps canonical algorithm names to constructors for
// concrete public key implementations. Concrete key packages register their
// constructors from init functions, mirroring the database/sql driver
// pattern; importing pkg/keys for side effects installs the default set.
package keyfactory

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/jeremyhahn/go-x509key/pkg/types"
)

// ErrUnsupportedAlgorithm is returned when no constructor is registered for
// a canonical algorithm name. The OID registry may still know the name; the
// two tables are maintained independently.
var ErrUnsupportedAlgorithm = errors.New("keyfactory: unsupported algorithm")

// Constructor creates a new, unpopulated public key instance. Each call must
// return a distinct instance; the decoder populates it and hands ownership to
// its caller.
type Constructor func() types.PublicKey

var (
	mu           sync.RWMutex
	constructors = make(map[types.AlgorithmName]Constructor)
)

// Register installs a constructor for a canonical algorithm name, replacing
// any previous registration. Register panics on a nil constructor; that is a
// programming error, not a runtime condition.
func Register(name types.AlgorithmName, fn Constructor) {
	if fn == nil {
		panic("keyfactory: Register called with nil constructor")
	}

	mu.Lock()
	defer mu.Unlock()
	constructors[name] = fn
}

// New returns a fresh, unpopulated key instance for the given canonical
// algorithm name. Ownership of the returned instance belongs exclusively to
// the caller.
func New(name types.AlgorithmName) (types.PublicKey, error) {
	mu.RLock()
	fn, ok := constructors[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, name)
	}
	return fn(), nil
}

// Supported returns the registered canonical algorithm names in sorted order.
func Supported() []types.AlgorithmName {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]types.AlgorithmName, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}
