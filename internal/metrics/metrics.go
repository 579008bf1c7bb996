/*
 * Software Name : bindy
 * SPDX-License-Identifier: Apache-2.0
 */

// Package metrics defines the Prometheus collectors required by §6's
// operational surface: reconcile total/duration, requeues, resource
// active/created/updated/deleted counts, errors, leader-election
// transitions, and generation-observation lag.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"sigs.k8s.io/controller-runtime/pkg/metrics"
)

var (
	// ReconcilesTotal counts reconcile outcomes by resource kind and
	// outcome in {success, error, requeue}.
	ReconcilesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bindy_reconciles_total",
			Help: "Total reconciliations, by resource kind and outcome.",
		},
		[]string{"kind", "outcome"},
	)

	// ReconcileDuration is the reconcile-call latency histogram by kind.
	ReconcileDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bindy_reconcile_duration_seconds",
			Help:    "Reconcile call duration in seconds, by resource kind.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"kind"},
	)

	// RequeuesTotal counts explicit requeues by reason.
	RequeuesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bindy_requeues_total",
			Help: "Total requeues, by reason.",
		},
		[]string{"reason"},
	)

	// ResourcesActive is a gauge of currently-observed resources by kind.
	ResourcesActive = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "bindy_resources_active",
			Help: "Currently observed resources, by kind.",
		},
		[]string{"kind"},
	)

	// ResourcesCreatedTotal, ResourcesUpdatedTotal, ResourcesDeletedTotal
	// count lifecycle transitions on the sidecar side by kind (a
	// successful ensure_*/upsert_record/delete_* call).
	ResourcesCreatedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bindy_resources_created_total",
			Help: "Total resources created on primaries, by kind.",
		},
		[]string{"kind"},
	)
	ResourcesUpdatedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bindy_resources_updated_total",
			Help: "Total resources updated on primaries, by kind.",
		},
		[]string{"kind"},
	)
	ResourcesDeletedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bindy_resources_deleted_total",
			Help: "Total resources deleted on primaries, by kind.",
		},
		[]string{"kind"},
	)

	// ErrorsTotal counts classified errors by resource kind and error
	// class (§7's four bands).
	ErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bindy_errors_total",
			Help: "Total classified errors, by resource kind and error class.",
		},
		[]string{"kind", "class"},
	)

	// LeaderTransitionsTotal counts leader-election transitions.
	LeaderTransitionsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "bindy_leader_election_transitions_total",
			Help: "Total leader-election transitions observed by this process.",
		},
	)

	// GenerationLag is the histogram of (observedGeneration vs generation)
	// lag at the time a resource's status is published.
	GenerationLag = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bindy_generation_observation_lag",
			Help:    "Generation minus observedGeneration at status publish time, by kind.",
			Buckets: []float64{0, 1, 2, 3, 5, 8, 13},
		},
		[]string{"kind"},
	)
)

func init() {
	metrics.Registry.MustRegister(
		ReconcilesTotal,
		ReconcileDuration,
		RequeuesTotal,
		ResourcesActive,
		ResourcesCreatedTotal,
		ResourcesUpdatedTotal,
		ResourcesDeletedTotal,
		ErrorsTotal,
		LeaderTransitionsTotal,
		GenerationLag,
	)
}

// Outcome labels for ReconcilesTotal, matching §6's "by outcome" dimension.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
	OutcomeRequeue = "requeue"
)
