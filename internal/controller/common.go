/*
 * Software Name : bindy
 * SPDX-License-Identifier: Apache-2.0
 */

package controller

import (
	"time"

	"k8s.io/apimachinery/pkg/api/meta"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	ctrl "sigs.k8s.io/controller-runtime"

	bindyv1beta1 "github.com/firestoned/bindy/api/v1beta1"
	"github.com/firestoned/bindy/internal/metrics"
)

// reconcileTimeout bounds a single Reconcile call's external work (§5
// "Cancellation and timeouts"); every external call takes the request's
// ctx so the deadline propagates cleanly.
const reconcileTimeout = 60 * time.Second

// shortRequeue is used for transient, expected-to-resolve-soon conditions:
// a cluster or its endpoints not yet ready.
const shortRequeue = 5 * time.Second

// resyncReady and resyncNotReady are the periodic drift-catching intervals
// for a resource whose own watches can't see everything relevant (external
// IP churn, sidecar-side drift) — §5's "5 min Ready / 30s not-Ready" resync
// cadence, returned on the success paths of the zone and instance
// reconcilers. The record and cluster reconcilers schedule no periodic
// resync.
const (
	resyncReady    = 5 * time.Minute
	resyncNotReady = 30 * time.Second
)

// setReadyCondition sets the canonical Ready condition on conditions,
// using meta.SetStatusCondition against the richer reason set §7 needs.
func setReadyCondition(conditions *[]metav1.Condition, status metav1.ConditionStatus, reason, message string, generation int64) {
	meta.SetStatusCondition(conditions, metav1.Condition{
		Type:               bindyv1beta1.ConditionReady,
		Status:             status,
		LastTransitionTime: metav1.NewTime(time.Now().UTC()),
		Reason:             reason,
		Message:            message,
		ObservedGeneration: generation,
	})
}

// recordReconcileMetric records the reconcile outcome/duration for kind at
// the end of every reconcile path.
func recordReconcileMetric(kind string, outcome string, start time.Time) {
	metrics.ReconcilesTotal.WithLabelValues(kind, outcome).Inc()
	metrics.ReconcileDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
}

func recordGenerationLag(kind string, generation, observed int64) {
	lag := generation - observed
	if lag < 0 {
		lag = 0
	}
	metrics.GenerationLag.WithLabelValues(kind).Observe(float64(lag))
}

// classifyAndCountError increments ErrorsTotal for kind and the class string
// the caller passes. Every caller derives it with classOf, which reports
// mgmtclient's permanent/transient classification and counts any other error
// as transient.
func classifyAndCountError(kind string, class string) {
	metrics.ErrorsTotal.WithLabelValues(kind, class).Inc()
}

// reconcileOutcome derives the metrics outcome label from a Reconcile
// call's return values.
func reconcileOutcome(err error, res ctrl.Result) string {
	switch {
	case err != nil:
		return metrics.OutcomeError
	case res.Requeue || res.RequeueAfter > 0:
		return metrics.OutcomeRequeue
	default:
		return metrics.OutcomeSuccess
	}
}
