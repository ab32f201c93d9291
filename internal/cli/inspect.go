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
	"crypto/x509"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/jeremyhahn/go-x509key/pkg/x509key"
)

// inspectCmd loads a public key and prints its summary
var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Inspect an X.509 public key",
	Long: `Load a public key from a DER or PEM file and print its algorithm,
fingerprint, declared capabilities, and allowable key-usage constraints.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := args[0]
		printer := NewPrinter(outputFormat, os.Stdout)

		logger.Debugf("loading public key from %s", path)

		key, err := x509key.LoadKeyFile(afero.NewOsFs(), path)
		if err != nil {
			handleError(err)
			return
		}

		id, err := x509key.KeyID(key)
		if err != nil {
			handleError(err)
			return
		}

		constraints := x509key.FindConstraints(key, 0)
		info := KeyInfo{
			Algorithm:    key.AlgorithmName(),
			KeyID:        fmt.Sprintf("%016x", id),
			Capabilities: key.Capabilities().String(),
			Constraints:  keyUsageNames(constraints),
		}
		if err := printer.PrintKeyInfo(info); err != nil {
			handleError(err)
		}
	},
}

// keyUsageNames expands a key-usage bitmask into readable flag names.
func keyUsageNames(usage x509.KeyUsage) []string {
	flags := []struct {
		usage x509.KeyUsage
		name  string
	}{
		{x509.KeyUsageDigitalSignature, "digital-signature"},
		{x509.KeyUsageContentCommitment, "non-repudiation"},
		{x509.KeyUsageKeyEncipherment, "key-encipherment"},
		{x509.KeyUsageDataEncipherment, "data-encipherment"},
		{x509.KeyUsageKeyAgreement, "key-agreement"},
	}

	var names []string
	for _, f := range flags {
		if usage&f.usage != 0 {
			names = append(names, f.name)
		}
	}
	return names
}
