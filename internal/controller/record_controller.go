/*
 * Software Name : bindy
 * SPDX-License-Identifier: Apache-2.0
 */

package controller

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/types"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"
	"sigs.k8s.io/controller-runtime/pkg/log"

	bindyv1beta1 "github.com/firestoned/bindy/api/v1beta1"
	"github.com/firestoned/bindy/internal/endpoints"
	"github.com/firestoned/bindy/internal/fingerprint"
	"github.com/firestoned/bindy/internal/mgmtclient"
)

// notSelectedRequeue matches §4.6 step 1's "requeue long" for a record that
// isn't currently selected into any zone.
const notSelectedRequeue = 2 * time.Minute

// RecordReconciler is the generic per-kind record reconciler (§4.6),
// parameterised over the concrete Record type so one reconcile helper
// serves all eight record kinds.
type RecordReconciler[T bindyv1beta1.Record] struct {
	client.Client
	Scheme *runtime.Scheme
	Mgmt   *mgmtclient.Client
	// New returns a fresh, empty instance of the concrete record type.
	New func() T
	// Kind is the concrete kind name, e.g. "ARecord".
	Kind string
}

//+kubebuilder:rbac:groups=bindy.firestoned.io,resources=arecords;aaaarecords;cnamerecords;mxrecords;txtrecords;nsrecords;srvrecords;caarecords,verbs=get;list;watch;create;update;patch;delete
//+kubebuilder:rbac:groups=bindy.firestoned.io,resources=arecords/status;aaaarecords/status;cnamerecords/status;mxrecords/status;txtrecords/status;nsrecords/status;srvrecords/status;caarecords/status,verbs=get;update;patch

func (r *RecordReconciler[T]) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	ctx, cancel := context.WithTimeout(ctx, reconcileTimeout)
	defer cancel()

	start := time.Now()
	logger := log.FromContext(ctx)
	logger.Info("Reconcile record", "kind", r.Kind, "name", req.Name)

	rec := r.New()
	if err := r.Get(ctx, req.NamespacedName, rec); err != nil {
		return ctrl.Result{}, client.IgnoreNotFound(err)
	}

	res, err := r.reconcileRecord(ctx, rec)
	recordReconcileMetric(r.Kind, reconcileOutcome(err, res), start)
	return res, err
}

func (r *RecordReconciler[T]) reconcileRecord(ctx context.Context, rec T) (ctrl.Result, error) {
	logger := log.FromContext(ctx)

	if !rec.GetObjectMeta().DeletionTimestamp.IsZero() {
		return r.reconcileDeletion(ctx, rec)
	}

	if !controllerutil.ContainsFinalizer(rec, bindyv1beta1.RecordFinalizer) {
		controllerutil.AddFinalizer(rec, bindyv1beta1.RecordFinalizer)
		if err := r.Update(ctx, rec); err != nil {
			return ctrl.Result{}, err
		}
	}

	status := rec.GetRecordStatus()

	// Step 1: locate owner.
	if status.Zone == "" {
		original := rec.Copy()
		s := rec.GetRecordStatus()
		setReadyCondition(&s.Conditions, metav1.ConditionFalse, bindyv1beta1.ReasonNotSelected, "record is not selected by any zone", rec.GetObjectMeta().Generation)
		rec.SetRecordStatus(*s)
		if err := r.Status().Patch(ctx, rec, client.MergeFrom(original)); err != nil {
			return ctrl.Result{}, err
		}
		return ctrl.Result{RequeueAfter: notSelectedRequeue}, nil
	}

	// Step 2: short-circuit on unchanged fingerprint.
	fp, err := fingerprint.Of(rec.FingerprintPayload())
	if err != nil {
		return ctrl.Result{}, fmt.Errorf("controller: fingerprint %s/%s: %w", rec.GetObjectMeta().Namespace, rec.GetObjectMeta().Name, err)
	}
	if fp == status.Fingerprint {
		return ctrl.Result{}, nil
	}

	// Step 3: resolve primaries for the owner zone's cluster.
	zone := &bindyv1beta1.DNSZone{}
	if err := r.Get(ctx, types.NamespacedName{Namespace: rec.GetObjectMeta().Namespace, Name: status.Zone}, zone); err != nil {
		if apierrors.IsNotFound(err) {
			return ctrl.Result{RequeueAfter: shortRequeue}, nil
		}
		return ctrl.Result{}, err
	}
	cluster := &bindyv1beta1.Bind9Cluster{}
	if err := r.Get(ctx, types.NamespacedName{Namespace: zone.Namespace, Name: zone.Spec.ClusterRef.Name}, cluster); err != nil {
		if apierrors.IsNotFound(err) {
			return ctrl.Result{RequeueAfter: shortRequeue}, nil
		}
		return ctrl.Result{}, err
	}
	set, err := endpoints.New(r.Client).Resolve(ctx, zone.Namespace, cluster)
	if err != nil {
		if _, ok := err.(*endpoints.NoPrimariesError); ok {
			if _, perr := r.publishFailure(ctx, rec, bindyv1beta1.ReasonEndpointsUnavailable, err.Error()); perr != nil {
				return ctrl.Result{}, perr
			}
			return ctrl.Result{RequeueAfter: shortRequeue}, nil
		}
		return ctrl.Result{}, err
	}

	payload, err := recordPayload(rec)
	if err != nil {
		return ctrl.Result{}, err
	}

	// Step 4: fan-out to every primary.
	for _, primary := range set.Primaries {
		if err := r.Mgmt.UpsertRecord(ctx, primary, zone.Spec.ZoneName, payload); err != nil {
			logger.Error(err, "upsert record failed", "primary", primary)
			classifyAndCountError(r.Kind, classOf(err))
			return r.publishFailure(ctx, rec, bindyv1beta1.ReasonSynchronizationFailed, err.Error())
		}
	}

	// Step 5: notify once after the last primary succeeds.
	if len(set.Primaries) > 0 {
		if err := r.Mgmt.NotifySecondaries(ctx, set.Primaries[len(set.Primaries)-1], zone.Spec.ZoneName); err != nil {
			logger.Error(err, "notify secondaries failed (non-fatal)")
		}
	}

	// Step 6: publish status.
	original := rec.Copy()
	s := rec.GetRecordStatus()
	s.Fingerprint = fp
	s.LastUpdated = &metav1.Time{Time: time.Now().UTC()}
	setReadyCondition(&s.Conditions, metav1.ConditionTrue, bindyv1beta1.ReasonSynced, "record applied to all primaries", rec.GetObjectMeta().Generation)
	rec.SetRecordStatus(*s)
	if err := r.Status().Patch(ctx, rec, client.MergeFrom(original.(T))); err != nil {
		return ctrl.Result{}, err
	}
	return ctrl.Result{}, nil
}

func (r *RecordReconciler[T]) publishFailure(ctx context.Context, rec T, reason, message string) (ctrl.Result, error) {
	original := rec.Copy()
	s := rec.GetRecordStatus()
	setReadyCondition(&s.Conditions, metav1.ConditionFalse, reason, message, rec.GetObjectMeta().Generation)
	rec.SetRecordStatus(*s)
	if err := r.Status().Patch(ctx, rec, client.MergeFrom(original.(T))); err != nil {
		return ctrl.Result{}, err
	}
	return ctrl.Result{}, nil
}

// reconcileDeletion fans out delete_record to every primary before releasing
// the finalizer (§4.6 step 7).
func (r *RecordReconciler[T]) reconcileDeletion(ctx context.Context, rec T) (ctrl.Result, error) {
	logger := log.FromContext(ctx)
	if !controllerutil.ContainsFinalizer(rec, bindyv1beta1.RecordFinalizer) {
		return ctrl.Result{}, nil
	}

	status := rec.GetRecordStatus()
	if status.Zone != "" {
		zone := &bindyv1beta1.DNSZone{}
		err := r.Get(ctx, types.NamespacedName{Namespace: rec.GetObjectMeta().Namespace, Name: status.Zone}, zone)
		switch {
		case apierrors.IsNotFound(err):
			// Zone already gone; nothing to clean up on primaries.
		case err != nil:
			return ctrl.Result{}, err
		default:
			cluster := &bindyv1beta1.Bind9Cluster{}
			if err := r.Get(ctx, types.NamespacedName{Namespace: zone.Namespace, Name: zone.Spec.ClusterRef.Name}, cluster); err != nil && !apierrors.IsNotFound(err) {
				return ctrl.Result{}, err
			} else if err == nil {
				set, err := endpoints.New(r.Client).Resolve(ctx, zone.Namespace, cluster)
				if err == nil {
					key, kerr := recordKey(rec)
					if kerr == nil {
						for _, primary := range set.Primaries {
							if err := r.Mgmt.DeleteRecord(ctx, primary, zone.Spec.ZoneName, key); err != nil {
								logger.Error(err, "delete record failed", "primary", primary)
								return ctrl.Result{}, err
							}
						}
					}
				}
			}
		}
	}

	controllerutil.RemoveFinalizer(rec, bindyv1beta1.RecordFinalizer)
	if err := r.Update(ctx, rec); err != nil {
		return ctrl.Result{}, err
	}
	return ctrl.Result{}, nil
}

// SetupWithManager sets up the controller with the Manager.
func (r *RecordReconciler[T]) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(r.New()).
		Complete(r)
}

func classOf(err error) string {
	if mgmtclient.IsNotFound(err) || mgmtclient.IsAlreadyExists(err) {
		return mgmtclient.ClassPermanent.String()
	}
	var se *mgmtclient.StatusError
	if errors.As(err, &se) {
		return mgmtclient.ClassifyError(&http.Response{StatusCode: se.StatusCode}, nil).String()
	}
	return mgmtclient.ClassTransient.String()
}
