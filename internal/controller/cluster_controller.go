/*
 * Software Name : bindy
 * SPDX-License-Identifier: Apache-2.0
 */

package controller

import (
	"context"
	"fmt"
	"time"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"
	"sigs.k8s.io/controller-runtime/pkg/log"

	bindyv1beta1 "github.com/firestoned/bindy/api/v1beta1"
)

// ClusterReconciler reconciles a Bind9Cluster object (§4.7): it synthesises
// the desired set of Bind9Instance children (one per role slot) and rolls
// up their readiness.
type ClusterReconciler struct {
	client.Client
	Scheme *runtime.Scheme
}

//+kubebuilder:rbac:groups=bindy.firestoned.io,resources=bind9clusters,verbs=get;list;watch;create;update;patch;delete
//+kubebuilder:rbac:groups=bindy.firestoned.io,resources=bind9clusters/status,verbs=get;update;patch
//+kubebuilder:rbac:groups=bindy.firestoned.io,resources=bind9instances,verbs=get;list;watch;create;update;patch;delete

func (r *ClusterReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	ctx, cancel := context.WithTimeout(ctx, reconcileTimeout)
	defer cancel()

	start := time.Now()
	logger := log.FromContext(ctx)
	logger.Info("Reconcile Bind9Cluster", "Bind9Cluster.Name", req.Name)

	cluster := &bindyv1beta1.Bind9Cluster{}
	if err := r.Get(ctx, req.NamespacedName, cluster); err != nil {
		return ctrl.Result{}, client.IgnoreNotFound(err)
	}

	res, err := r.reconcileCluster(ctx, cluster)
	recordReconcileMetric("Bind9Cluster", reconcileOutcome(err, res), start)
	return res, err
}

func (r *ClusterReconciler) reconcileCluster(ctx context.Context, cluster *bindyv1beta1.Bind9Cluster) (ctrl.Result, error) {
	desired := desiredInstanceNames(cluster)

	for name, role := range desired {
		if err := r.ensureInstance(ctx, cluster, name, role); err != nil {
			return ctrl.Result{}, err
		}
	}

	if err := r.pruneStaleInstances(ctx, cluster, desired); err != nil {
		return ctrl.Result{}, err
	}

	var children bindyv1beta1.Bind9InstanceList
	if err := r.List(ctx, &children, client.InNamespace(cluster.Namespace), client.MatchingLabels{ownerLabel: cluster.Name}); err != nil {
		return ctrl.Result{}, err
	}
	var readyPrimaries, readySecondaries int32
	for _, inst := range children.Items {
		if !inst.Status.Ready {
			continue
		}
		switch inst.Spec.Role {
		case bindyv1beta1.RolePrimary:
			readyPrimaries++
		case bindyv1beta1.RoleSecondary:
			readySecondaries++
		}
	}

	original := cluster.DeepCopy()
	cluster.Status.ReadyPrimaries = readyPrimaries
	cluster.Status.ReadySecondaries = readySecondaries
	cluster.Status.ObservedGeneration = cluster.Generation
	allReady := readyPrimaries == cluster.Spec.Primary.Replicas && readySecondaries == cluster.Spec.Secondary.Replicas
	if allReady {
		setReadyCondition(&cluster.Status.Conditions, metav1.ConditionTrue, bindyv1beta1.ReasonSynced, "all instances ready", cluster.Generation)
	} else {
		setReadyCondition(&cluster.Status.Conditions, metav1.ConditionFalse, bindyv1beta1.ReasonPartialFailure, "waiting for instances to become ready", cluster.Generation)
	}
	if err := r.Status().Patch(ctx, cluster, client.MergeFrom(original)); err != nil {
		return ctrl.Result{}, err
	}

	recordGenerationLag("Bind9Cluster", cluster.Generation, cluster.Status.ObservedGeneration)
	if !allReady {
		return ctrl.Result{RequeueAfter: shortRequeue}, nil
	}
	return ctrl.Result{}, nil
}

// ownerLabel ties a Bind9Instance back to its owning cluster for listing,
// in addition to the owner reference itself.
const ownerLabel = "bindy.firestoned.io/cluster"

func desiredInstanceNames(cluster *bindyv1beta1.Bind9Cluster) map[string]bindyv1beta1.InstanceRole {
	out := make(map[string]bindyv1beta1.InstanceRole)
	for i := int32(0); i < cluster.Spec.Primary.Replicas; i++ {
		out[fmt.Sprintf("%s-primary-%d", cluster.Name, i)] = bindyv1beta1.RolePrimary
	}
	for i := int32(0); i < cluster.Spec.Secondary.Replicas; i++ {
		out[fmt.Sprintf("%s-secondary-%d", cluster.Name, i)] = bindyv1beta1.RoleSecondary
	}
	return out
}

func (r *ClusterReconciler) ensureInstance(ctx context.Context, cluster *bindyv1beta1.Bind9Cluster, name string, role bindyv1beta1.InstanceRole) error {
	inst := &bindyv1beta1.Bind9Instance{ObjectMeta: metav1.ObjectMeta{Name: name, Namespace: cluster.Namespace}}
	_, err := controllerutil.CreateOrUpdate(ctx, r.Client, inst, func() error {
		if err := controllerutil.SetControllerReference(cluster, inst, r.Scheme); err != nil {
			return err
		}
		if inst.Labels == nil {
			inst.Labels = map[string]string{}
		}
		inst.Labels[ownerLabel] = cluster.Name
		inst.Spec.ClusterRef = bindyv1beta1.ClusterReference{Name: cluster.Name}
		inst.Spec.Role = role
		switch role {
		case bindyv1beta1.RolePrimary:
			inst.Spec.Replicas = 1
		case bindyv1beta1.RoleSecondary:
			inst.Spec.Replicas = 1
		}
		return nil
	})
	return err
}

func (r *ClusterReconciler) pruneStaleInstances(ctx context.Context, cluster *bindyv1beta1.Bind9Cluster, desired map[string]bindyv1beta1.InstanceRole) error {
	var children bindyv1beta1.Bind9InstanceList
	if err := r.List(ctx, &children, client.InNamespace(cluster.Namespace), client.MatchingLabels{ownerLabel: cluster.Name}); err != nil {
		return err
	}
	for i := range children.Items {
		inst := &children.Items[i]
		if _, ok := desired[inst.Name]; !ok {
			if err := r.Delete(ctx, inst); err != nil && !apierrors.IsNotFound(err) {
				return err
			}
		}
	}
	return nil
}

// SetupWithManager sets up the controller with the Manager.
func (r *ClusterReconciler) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(&bindyv1beta1.Bind9Cluster{}).
		Owns(&bindyv1beta1.Bind9Instance{}).
		Complete(r)
}
