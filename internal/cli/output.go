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
	"encoding/json"
	"fmt"
	"io"
)

// OutputFormat defines the output format type
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
)

// Printer handles formatted output
type Printer struct {
	format OutputFormat
	writer io.Writer
}

// NewPrinter creates a new Printer
func NewPrinter(format string, writer io.Writer) *Printer {
	return &Printer{
		format: OutputFormat(format),
		writer: writer,
	}
}

// KeyInfo is the printable summary of a loaded public key.
type KeyInfo struct {
	Algorithm    string   `json:"algorithm"`
	KeyID        string   `json:"key_id"`
	Capabilities string   `json:"capabilities"`
	Constraints  []string `json:"constraints"`
}

// PrintKeyInfo prints the summary of a loaded public key.
func (p *Printer) PrintKeyInfo(info KeyInfo) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(info)
	case OutputFormatText:
		fmt.Fprintf(p.writer, "Algorithm:    %s\n", info.Algorithm)
		fmt.Fprintf(p.writer, "Key ID:       %s\n", info.KeyID)
		fmt.Fprintf(p.writer, "Capabilities: %s\n", info.Capabilities)
		fmt.Fprintln(p.writer, "Constraints:")
		if len(info.Constraints) == 0 {
			fmt.Fprintln(p.writer, "  (none)")
		}
		for _, c := range info.Constraints {
			fmt.Fprintf(p.writer, "  - %s\n", c)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", p.format)
	}
}

// PrintAlgorithmList prints registered and supported algorithm names.
func (p *Printer) PrintAlgorithmList(registered, supported []string) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(map[string]interface{}{
			"registered": registered,
			"supported":  supported,
		})
	case OutputFormatText:
		fmt.Fprintln(p.writer, "Registered algorithm OIDs:")
		for _, name := range registered {
			fmt.Fprintf(p.writer, "  - %s\n", name)
		}
		fmt.Fprintln(p.writer, "Installed key implementations:")
		for _, name := range supported {
			fmt.Fprintf(p.writer, "  - %s\n", name)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", p.format)
	}
}

// PrintError prints an error
func (p *Printer) PrintError(err error) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(map[string]interface{}{
			"error": err.Error(),
		})
	default:
		fmt.Fprintf(p.writer, "Error: %s\n", err.Error())
		return nil
	}
}

// printJSON marshals and prints indented JSON
func (p *Printer) printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(p.writer, string(data))
	return nil
}
