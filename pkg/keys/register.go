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

package keys

import (
	"github.com/jeremyhahn/go-x509key/pkg/keyfactory"
	"github.com/jeremyhahn/go-x509key/pkg/types"
)

func init() {
	keyfactory.Register(types.AlgorithmRSA, func() types.PublicKey { return &RSAPublicKey{} })
	keyfactory.Register(types.AlgorithmECDSA, func() types.PublicKey { return &ECDSAPublicKey{} })
	keyfactory.Register(types.AlgorithmEd25519, func() types.PublicKey { return &Ed25519PublicKey{} })
	keyfactory.Register(types.AlgorithmEd448, func() types.PublicKey { return &Ed448PublicKey{} })
	keyfactory.Register(types.AlgorithmX25519, func() types.PublicKey { return &X25519PublicKey{} })
	keyfactory.Register(types.AlgorithmMLDSA65, func() types.PublicKey { return &MLDSA65PublicKey{} })
	keyfactory.Register(types.AlgorithmMLKEM768, func() types.PublicKey { return &MLKEM768PublicKey{} })
}
