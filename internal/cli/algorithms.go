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
	"os"

	"github.com/spf13/cobra"

	"github.com/jeremyhahn/go-x509key/pkg/keyfactory"
	"github.com/jeremyhahn/go-x509key/pkg/oids"
)

// algorithmsCmd lists registered OIDs and installed key implementations
var algorithmsCmd = &cobra.Command{
	Use:   "algorithms",
	Short: "List registered algorithms",
	Long: `List the algorithm names known to the OID registry and the subset
with an installed key implementation. A registered name without an
implementation decodes to an unsupported-algorithm error.`,
	Run: func(cmd *cobra.Command, args []string) {
		printer := NewPrinter(outputFormat, os.Stdout)

		var registered []string
		for _, name := range oids.Names() {
			registered = append(registered, name.String())
		}
		var supported []string
		for _, name := range keyfactory.Supported() {
			supported = append(supported, name.String())
		}

		if err := printer.PrintAlgorithmList(registered, supported); err != nil {
			handleError(err)
		}
	},
}
