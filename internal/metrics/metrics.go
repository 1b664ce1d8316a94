// Package metrics defines the Prometheus instrumentation for both the
// dashboard and the scan service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "safedroid"

var (
	scanDurationBuckets = []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30}

	// Dashboard metrics
	ScanRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "scan_requests_total",
		Help:      "Count of scan workflow runs by outcome.",
	}, []string{"status"})

	ScanDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "scan_duration_seconds",
		Help:      "Time taken for a scan service request to complete.",
		Buckets:   scanDurationBuckets,
	})

	InventoryFetchFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "inventory_fetch_failures_total",
		Help:      "Count of failed startup inventory fetches.",
	}, []string{"call"})

	// Scan service metrics
	ScandScanRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "scand_scan_requests_total",
		Help:      "Count of scan service assessments by outcome.",
	}, []string{"status"})
)
