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
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/jeremyhahn/go-x509key/pkg/x509key"
)

var convertFormat string

// convertCmd re-encodes a public key in the requested wire format
var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Convert a public key between DER and PEM",
	Long: `Load a public key from a DER or PEM file and write it to stdout in
the requested wire format. Consider redirecting DER output to a file.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		key, err := x509key.LoadKeyFile(afero.NewOsFs(), args[0])
		if err != nil {
			handleError(err)
			return
		}

		var encoding x509key.Encoding
		switch strings.ToLower(convertFormat) {
		case "der":
			encoding = x509key.DER
		case "pem":
			encoding = x509key.PEM
		default:
			handleError(fmt.Errorf("unknown format %q (use der or pem)", convertFormat))
			return
		}

		logger.Debugf("re-encoding %s key as %s", key.AlgorithmName(), encoding)

		if err := x509key.Encode(key, os.Stdout, encoding); err != nil {
			handleError(err)
		}
	},
}

func init() {
	convertCmd.Flags().StringVarP(&convertFormat, "format", "f", "pem",
		"target format (der, pem)")
}
