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

// Package metrics provides Prometheus instrumentation for go-x509key codec
// operations. Counters are registered with the default registry via promauto;
// applications embedding the library expose them through their own metrics
// endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	// Namespace is the Prometheus namespace for all go-x509key metrics
	Namespace = "x509key"

	// Label names
	LabelOperation = "operation"
	LabelStatus    = "status"
	LabelFormat    = "format"

	// Status values
	StatusSuccess = "success"
	StatusError   = "error"

	// Operation names
	OpEncode = "encode"
	OpDecode = "decode"
	OpCopy   = "copy"
	OpKeyID  = "key_id"

	// Input format values
	FormatDER = "der"
	FormatPEM = "pem"
)

var (
	// OperationsTotal tracks the total number of codec operations by type
	// and status. Use RecordOperation to increment this counter.
	OperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "operations_total",
			Help:      "Total number of codec operations by type and status",
		},
		[]string{LabelOperation, LabelStatus},
	)

	// DecodeFormatTotal tracks decoded inputs by detected wire format.
	DecodeFormatTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "decode_format_total",
			Help:      "Total number of decoded inputs by detected wire format",
		},
		[]string{LabelFormat},
	)
)

// RecordOperation increments the operation counter with the status derived
// from err.
func RecordOperation(operation string, err error) {
	status := StatusSuccess
	if err != nil {
		status = StatusError
	}
	OperationsTotal.WithLabelValues(operation, status).Inc()
}

// RecordDecodeFormat increments the decode format counter.
func RecordDecodeFormat(format string) {
	DecodeFormatTotal.WithLabelValues(format).Inc()
}
