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
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/jeremyhahn/go-x509key/pkg/x509key"
)

// fingerprintCmd prints the 64-bit key fingerprint
var fingerprintCmd = &cobra.Command{
	Use:   "fingerprint <file>",
	Short: "Print the 64-bit fingerprint of a public key",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		key, err := x509key.LoadKeyFile(afero.NewOsFs(), args[0])
		if err != nil {
			handleError(err)
			return
		}

		id, err := x509key.KeyID(key)
		if err != nil {
			handleError(err)
			return
		}

		if outputFormat == string(OutputFormatJSON) {
			printer := NewPrinter(outputFormat, os.Stdout)
			_ = printer.printJSON(map[string]interface{}{
				"algorithm": key.AlgorithmName(),
				"key_id":    fmt.Sprintf("%016x", id),
			})
			return
		}
		fmt.Printf("%016x\n", id)
	},
}
