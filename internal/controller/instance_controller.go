/*
 * Software Name : bindy
 * SPDX-License-Identifier: Apache-2.0
 */

package controller

import (
	"context"
	"time"

	appsv1 "k8s.io/api/apps/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/types"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/log"

	bindyv1beta1 "github.com/firestoned/bindy/api/v1beta1"
	"github.com/firestoned/bindy/internal/rndc"
	"github.com/firestoned/bindy/internal/workload"
)

// InstanceReconciler reconciles a Bind9Instance object (§4.7, §4.8). It
// delegates concrete workload synthesis to internal/workload and drives
// the RNDC credential lifecycle, triggering a rolling restart on rotation.
type InstanceReconciler struct {
	client.Client
	Scheme   *runtime.Scheme
	Workload *workload.Renderer
}

//+kubebuilder:rbac:groups=bindy.firestoned.io,resources=bind9instances,verbs=get;list;watch;create;update;patch;delete
//+kubebuilder:rbac:groups=bindy.firestoned.io,resources=bind9instances/status,verbs=get;update;patch
//+kubebuilder:rbac:groups="",resources=secrets,verbs=get;list;watch;create;update;patch
//+kubebuilder:rbac:groups="",resources=services,verbs=get;list;watch;create;update;patch
//+kubebuilder:rbac:groups=apps,resources=deployments,verbs=get;list;watch;create;update;patch

func (r *InstanceReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	ctx, cancel := context.WithTimeout(ctx, reconcileTimeout)
	defer cancel()

	start := time.Now()
	logger := log.FromContext(ctx)
	logger.Info("Reconcile Bind9Instance", "Bind9Instance.Name", req.Name)

	inst := &bindyv1beta1.Bind9Instance{}
	if err := r.Get(ctx, req.NamespacedName, inst); err != nil {
		return ctrl.Result{}, client.IgnoreNotFound(err)
	}

	res, err := r.reconcileInstance(ctx, inst)
	recordReconcileMetric("Bind9Instance", reconcileOutcome(err, res), start)
	return res, err
}

func (r *InstanceReconciler) reconcileInstance(ctx context.Context, inst *bindyv1beta1.Bind9Instance) (ctrl.Result, error) {
	logger := log.FromContext(ctx)

	cluster := &bindyv1beta1.Bind9Cluster{}
	if err := r.Get(ctx, types.NamespacedName{Namespace: inst.Namespace, Name: inst.Spec.ClusterRef.Name}, cluster); err != nil {
		if apierrors.IsNotFound(err) {
			return r.publishInstanceFailure(ctx, inst, bindyv1beta1.ReasonClusterNotFound, "owning cluster not found")
		}
		return ctrl.Result{}, err
	}

	cfg := effectiveWorkloadConfig(inst, cluster)
	ready, readyReplicas, err := r.Workload.Reconcile(ctx, inst, cfg)
	if err != nil {
		classifyAndCountError("Bind9Instance", classOf(err))
		return r.publishInstanceFailure(ctx, inst, bindyv1beta1.ReasonSynchronizationFailed, err.Error())
	}

	rotated, rotation, err := r.reconcileCredential(ctx, inst, cluster)
	if err != nil {
		classifyAndCountError("Bind9Instance", classOf(err))
		return r.publishInstanceFailure(ctx, inst, bindyv1beta1.ReasonSynchronizationFailed, err.Error())
	}
	if rotated {
		if err := r.Workload.Restart(ctx, inst, rotation.CreatedAt.Format(time.RFC3339)); err != nil {
			return ctrl.Result{}, err
		}
		logger.Info("rolled instance pods for RNDC key rotation", "instance", inst.Name)
	}

	original := inst.DeepCopy()
	inst.Status.Ready = ready
	inst.Status.ReadyReplicas = readyReplicas
	inst.Status.Rotation = rotation
	inst.Status.ObservedGeneration = inst.Generation
	if ready {
		setReadyCondition(&inst.Status.Conditions, metav1.ConditionTrue, bindyv1beta1.ReasonSynced, "workload ready", inst.Generation)
	} else {
		setReadyCondition(&inst.Status.Conditions, metav1.ConditionFalse, bindyv1beta1.ReasonZoneNotReady, "workload not yet ready", inst.Generation)
	}
	if err := r.Status().Patch(ctx, inst, client.MergeFrom(original)); err != nil {
		return ctrl.Result{}, err
	}

	recordGenerationLag("Bind9Instance", inst.Generation, inst.Status.ObservedGeneration)
	if !ready {
		return ctrl.Result{RequeueAfter: resyncNotReady}, nil
	}
	return ctrl.Result{RequeueAfter: resyncReady}, nil
}

// reconcileCredential resolves the effective RNDC policy for inst and, if
// operator-managed, ensures the secret exists/rotates it (§4.8). rotation is
// nil when the instance uses a referenced (user-managed) secret.
func (r *InstanceReconciler) reconcileCredential(ctx context.Context, inst *bindyv1beta1.Bind9Instance, cluster *bindyv1beta1.Bind9Cluster) (rotated bool, rotation *bindyv1beta1.RndcRotationStatus, err error) {
	var rolePolicy *bindyv1beta1.RndcKeyPolicy
	switch inst.Spec.Role {
	case bindyv1beta1.RolePrimary:
		rolePolicy = cluster.Spec.Primary.RndcKeyPolicy
	case bindyv1beta1.RoleSecondary:
		rolePolicy = cluster.Spec.Secondary.RndcKeyPolicy
	}
	policy := bindyv1beta1.MergeRndcKeyPolicy(inst.Spec.RndcKeyPolicy, rolePolicy, cluster.Spec.RndcKeyPolicy)
	if !policy.IsManaged() {
		return false, nil, nil
	}

	now := time.Now().UTC()
	_, didRotate, err := rndc.EnsureManaged(ctx, r.Client, inst.Namespace, inst.Name, *policy.Managed, now)
	if err != nil {
		return false, nil, err
	}

	prev := inst.Status.Rotation
	if !didRotate && prev != nil {
		return false, prev, nil
	}
	count := int32(0)
	if prev != nil {
		count = prev.RotationCount + 1
	}
	rotateAt := now.Add(policy.Managed.RotateAfter.Duration)
	return didRotate, &bindyv1beta1.RndcRotationStatus{
		CreatedAt:     &metav1.Time{Time: now},
		RotateAt:      &metav1.Time{Time: rotateAt},
		RotationCount: count,
	}, nil
}

func effectiveWorkloadConfig(inst *bindyv1beta1.Bind9Instance, cluster *bindyv1beta1.Bind9Cluster) bindyv1beta1.WorkloadConfig {
	if inst.Spec.WorkloadOverride != nil {
		return *inst.Spec.WorkloadOverride
	}
	switch inst.Spec.Role {
	case bindyv1beta1.RolePrimary:
		return cluster.Spec.Primary.Workload
	case bindyv1beta1.RoleSecondary:
		return cluster.Spec.Secondary.Workload
	default:
		return bindyv1beta1.WorkloadConfig{}
	}
}

func (r *InstanceReconciler) publishInstanceFailure(ctx context.Context, inst *bindyv1beta1.Bind9Instance, reason, message string) (ctrl.Result, error) {
	original := inst.DeepCopy()
	setReadyCondition(&inst.Status.Conditions, metav1.ConditionFalse, reason, message, inst.Generation)
	if err := r.Status().Patch(ctx, inst, client.MergeFrom(original)); err != nil {
		return ctrl.Result{}, err
	}
	return ctrl.Result{RequeueAfter: shortRequeue}, nil
}

// SetupWithManager sets up the controller with the Manager.
func (r *InstanceReconciler) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(&bindyv1beta1.Bind9Instance{}).
		Owns(&appsv1.Deployment{}).
		Complete(r)
}
