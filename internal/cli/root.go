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

	"github.com/jeremyhahn/go-x509key/pkg/logging"

	// Install the default public key implementations.
	_ "github.com/jeremyhahn/go-x509key/pkg/keys"
)

var (
	outputFormat string
	verbose      bool

	logger = logging.DefaultLogger()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "x509key",
	Short: "go-x509key CLI - X.509 public key inspection tool",
	Long: `go-x509key CLI loads X.509 SubjectPublicKeyInfo structures from DER
or PEM input, reports their algorithm, capabilities, fingerprint, and
allowable key-usage constraints, and converts between the two wire
representations.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text",
		"output format (text, json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"verbose output")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(fingerprintCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(algorithmsCmd)
}

// handleError prints an error and exits with code 1
func handleError(err error) {
	printer := NewPrinter(outputFormat, os.Stderr)
	_ = printer.PrintError(err) // Error printing to stderr is best-effort
	os.Exit(1)
}
