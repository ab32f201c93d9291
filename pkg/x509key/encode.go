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
	"bytes"
	"encoding/pem"
	"fmt"
	"io"

	"github.com/jeremyhahn/go-x509key/pkg/metrics"
	"github.com/jeremyhahn/go-x509key/pkg/types"
)

// Encoding selects the output representation of an encoded public key.
type Encoding int

const (
	// DER emits the raw binary SubjectPublicKeyInfo structure.
	DER Encoding = iota

	// PEM wraps the DER structure in base64 text armor with the
	// "PUBLIC KEY" label.
	PEM
)

// String returns the encoding name.
func (e Encoding) String() string {
	switch e {
	case DER:
		return "DER"
	case PEM:
		return "PEM"
	default:
		return "unknown"
	}
}

// Encode writes the SubjectPublicKeyInfo encoding of key to w in the
// requested representation. The key must implement types.Exporter; a key
// type without export support fails with ErrEncode.
//
// Encoding is deterministic given the exporter's output and has no side
// effects beyond writing to w.
func Encode(key types.PublicKey, w io.Writer, encoding Encoding) (err error) {
	defer func() { metrics.RecordOperation(metrics.OpEncode, err) }()

	exporter, ok := key.(types.Exporter)
	if !ok {
		return fmt.Errorf("%w: %s", ErrEncode, key.AlgorithmName())
	}

	alg, keyBits, err := exporter.ExportKey()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}

	der, err := marshalSPKI(alg, keyBits)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}

	if encoding == PEM {
		return pem.Encode(w, &pem.Block{Type: PEMTypePublicKey, Bytes: der})
	}
	_, err = w.Write(der)
	return err
}

// EncodeDER returns the raw DER SubjectPublicKeyInfo encoding of key.
func EncodeDER(key types.PublicKey) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(key, &buf, DER); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodePEM returns the PEM encoding of key as a single buffer.
func EncodePEM(key types.PublicKey) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(key, &buf, PEM); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
