/*
 * Software Name : bindy
 * SPDX-License-Identifier: Apache-2.0
 */

// Package config gathers the manager's flag/environment configuration,
// with BINDY_* environment variables supplying defaults that flags can
// override.
package config

import (
	"flag"
	"os"
	"strconv"
	"time"
)

// Manager holds the manager-wide configuration assembled from flags and
// environment variables (§6 "Environment variables").
type Manager struct {
	MetricsBindAddress   string
	ProbeBindAddress     string
	EnableLeaderElection bool
	LeaderElectionID     string
	SecureMetrics        bool
	EnableHTTP2          bool

	// Namespace restricts the manager's watches/caches to a single
	// namespace when non-empty; empty means cluster-wide.
	Namespace string

	// RecordRetryBaseInterval is parsed from --record-retry-base-interval /
	// BINDY_RECORD_RETRY_BASE_INTERVAL. No controller reads it: record
	// requeues use the fixed intervals in internal/controller.
	RecordRetryBaseInterval time.Duration

	// ReconcileWorkers is parsed from --reconcile-workers /
	// BINDY_RECONCILE_WORKERS. No controller reads it: each controller runs
	// with controller-runtime's default MaxConcurrentReconciles.
	ReconcileWorkers int
}

// envOr returns the environment variable's value, or def if unset/empty.
func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDurationOr(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

// BindFlags registers the manager's flags, seeding their defaults from
// BINDY_* environment variables, then returns the Manager struct the
// flags populate. Call flag.Parse() after BindFlags returns.
func BindFlags(fs *flag.FlagSet) *Manager {
	m := &Manager{}

	fs.StringVar(&m.MetricsBindAddress, "metrics-bind-address", envOr("BINDY_METRICS_BIND_ADDRESS", ":8080"),
		"The address the metric endpoint binds to.")
	fs.StringVar(&m.ProbeBindAddress, "health-probe-bind-address", envOr("BINDY_HEALTH_PROBE_BIND_ADDRESS", ":8081"),
		"The address the probe endpoint binds to.")
	fs.BoolVar(&m.EnableLeaderElection, "leader-elect", os.Getenv("BINDY_LEADER_ELECT") == "true",
		"Enable leader election for controller manager.")
	fs.StringVar(&m.LeaderElectionID, "leader-election-id", envOr("BINDY_LEADER_ELECTION_ID", "bindy-leader.firestoned.io"),
		"The resource name used for leader election.")
	fs.BoolVar(&m.SecureMetrics, "metrics-secure", os.Getenv("BINDY_METRICS_SECURE") == "true",
		"If set the metrics endpoint is served securely.")
	fs.BoolVar(&m.EnableHTTP2, "enable-http2", os.Getenv("BINDY_ENABLE_HTTP2") == "true",
		"If set, HTTP/2 will be enabled for the metrics and webhook servers.")
	fs.StringVar(&m.Namespace, "namespace", envOr("BINDY_NAMESPACE", ""),
		"Restrict watches/caches to a single namespace; empty means cluster-wide.")
	fs.DurationVar(&m.RecordRetryBaseInterval, "record-retry-base-interval", envDurationOr("BINDY_RECORD_RETRY_BASE_INTERVAL", 5*time.Second),
		"Record retry base interval (parsed; not applied by any controller).")
	fs.IntVar(&m.ReconcileWorkers, "reconcile-workers", envIntOr("BINDY_RECONCILE_WORKERS", 4),
		"Reconcile worker count (parsed; not applied by any controller).")

	return m
}
