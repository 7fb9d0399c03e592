// Copyright (c) Topohedral. All rights reserved.
// Licensed under the MIT License.

// Package metrics exposes Prometheus instrumentation for the tracing
// facility: how many records each target emitted or had suppressed by the
// runtime filter, and whether the filter configuration failed to parse.
package metrics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/topohedral/topolog/level"
)

var (
	recordsEmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "topolog_records_emitted_total",
			Help: "Log records that passed the runtime filter and were written",
		},
		[]string{"target", "level"},
	)

	recordsSuppressed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "topolog_records_suppressed_total",
			Help: "Log records suppressed by the runtime filter",
		},
		[]string{"target", "level"},
	)

	configParseFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "topolog_config_parse_failures_total",
			Help: "Times the filter configuration was rejected and the empty table applied",
		},
	)
)

// RecordEmitted counts a record that passed the filter.
func RecordEmitted(target string, lvl level.Level) {
	recordsEmitted.With(prometheus.Labels{
		"target": target,
		"level":  lvl.String(),
	}).Inc()
}

// RecordSuppressed counts a record the filter rejected.
func RecordSuppressed(target string, lvl level.Level) {
	recordsSuppressed.With(prometheus.Labels{
		"target": target,
		"level":  lvl.String(),
	}).Inc()
}

// RecordParseFailure counts a rejected filter configuration.
func RecordParseFailure() {
	configParseFailures.Inc()
}

// ServeMetrics starts a Prometheus metrics HTTP server on the given port.
// It blocks, so callers typically run it in a goroutine.
func ServeMetrics(port int) error {
	return CreateMetricsServer(port).ListenAndServe()
}

// CreateMetricsServer creates a configured HTTP server exposing /metrics.
func CreateMetricsServer(port int) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
