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
	"encoding/pem"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"

	"github.com/jeremyhahn/go-x509key/pkg/keyfactory"
	"github.com/jeremyhahn/go-x509key/pkg/metrics"
	"github.com/jeremyhahn/go-x509key/pkg/oids"
	"github.com/jeremyhahn/go-x509key/pkg/types"
)

// LoadKey reads a public key from r, auto-detecting DER or PEM framing, and
// returns a freshly constructed, fully populated key instance. Ownership of
// the returned key transfers exclusively to the caller.
//
// Every failure caused by the input surfaces as ErrDecode with a generic
// message; the originating cause is preserved in the error text. Invariant
// violations inside the library surface as ErrInternal and propagate
// unmodified.
func LoadKey(r io.Reader) (types.PublicKey, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		metrics.RecordOperation(metrics.OpDecode, err)
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return LoadKeyBytes(data)
}

// LoadKeyFile reads a public key from a file on the given filesystem.
func LoadKeyFile(fs afero.Fs, path string) (types.PublicKey, error) {
	f, err := fs.Open(path)
	if err != nil {
		metrics.RecordOperation(metrics.OpDecode, err)
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	defer func() { _ = f.Close() }()

	return LoadKey(f)
}

// LoadKeyBytes decodes a public key from an in-memory buffer.
func LoadKeyBytes(data []byte) (key types.PublicKey, err error) {
	defer func() { metrics.RecordOperation(metrics.OpDecode, err) }()

	key, err = loadKey(data)
	if err != nil {
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return key, nil
}

// loadKey runs the decode pipeline: format detection, structural decode,
// algorithm resolution, instantiation, and import. It returns step-specific
// errors; the public entry points normalize them.
func loadKey(data []byte) (types.PublicKey, error) {
	der := data
	if looksLikeBER(data) && !looksLikePEM(data) {
		metrics.RecordDecodeFormat(metrics.FormatDER)
	} else {
		block, _ := pem.Decode(data)
		if block == nil {
			return nil, errors.New("no PEM block found")
		}
		if block.Type != PEMTypePublicKey {
			return nil, fmt.Errorf("unexpected PEM label %q", block.Type)
		}
		der = block.Bytes
		metrics.RecordDecodeFormat(metrics.FormatPEM)
	}

	alg, keyBits, err := unmarshalSPKI(der)
	if err != nil {
		return nil, err
	}
	if len(keyBits) == 0 {
		return nil, errors.New("empty subjectPublicKey")
	}

	name, ok := oids.Lookup(alg.OID)
	if !ok {
		return nil, fmt.Errorf("unknown algorithm OID %s", alg.OID)
	}

	key, err := keyfactory.New(name)
	if err != nil {
		// The registry knows the OID but no implementation is installed.
		return nil, fmt.Errorf("no key implementation for %s (%s): %w", name, alg.OID, err)
	}

	importer, ok := key.(types.Importer)
	if !ok {
		// Registry and factory disagree about this algorithm; the input
		// cannot trigger this.
		return nil, fmt.Errorf("%w: %s key does not support import", ErrInternal, name)
	}

	if err := importer.ImportKey(alg, keyBits); err != nil {
		return nil, fmt.Errorf("%s key import: %w", name, err)
	}
	return key, nil
}
