/*
 * Software Name : bindy
 * SPDX-License-Identifier: Apache-2.0
 */

// Package workload synthesises the concrete Deployment/Service objects that
// run one Bind9Instance's BIND9+sidecar pods (§4.7, §6). The instance
// reconciler treats this as a black box: it only needs the synthesised
// workload's rolled-up readiness, and a way to force a rolling restart when
// an RNDC credential rotates (§4.8).
package workload

import (
	"context"
	"fmt"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/apimachinery/pkg/util/intstr"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"

	bindyv1beta1 "github.com/firestoned/bindy/api/v1beta1"
)

// restartedAtAnnotation forces a pod template change on rotation, the same
// mechanism "kubectl rollout restart" uses with its own annotation key.
const restartedAtAnnotation = "bindy.firestoned.io/restarted-at"

// httpPortName must match the name internal/endpoints reads off the
// rendered Endpoints object.
const httpPortName = "http"
const httpPort = 8080
const dnsPortName = "dns"
const dnsPort = 53

// Renderer owns the Deployment+Service pair backing one Bind9Instance.
type Renderer struct {
	Client client.Client
	Scheme *runtime.Scheme
}

// New constructs a Renderer.
func New(cl client.Client, scheme *runtime.Scheme) *Renderer {
	return &Renderer{Client: cl, Scheme: scheme}
}

// Reconcile creates or updates the Deployment and Service for inst and
// returns the rolled-up readiness observed on the Deployment's status.
func (w *Renderer) Reconcile(ctx context.Context, inst *bindyv1beta1.Bind9Instance, cfg bindyv1beta1.WorkloadConfig) (ready bool, readyReplicas int32, err error) {
	if err := w.reconcileService(ctx, inst); err != nil {
		return false, 0, err
	}
	return w.reconcileDeployment(ctx, inst, cfg)
}

func (w *Renderer) reconcileService(ctx context.Context, inst *bindyv1beta1.Bind9Instance) error {
	svc := &corev1.Service{ObjectMeta: metav1.ObjectMeta{Name: inst.Name, Namespace: inst.Namespace}}
	_, err := controllerutil.CreateOrUpdate(ctx, w.Client, svc, func() error {
		if err := controllerutil.SetControllerReference(inst, svc, w.Scheme); err != nil {
			return err
		}
		svc.Spec.Selector = selectorLabels(inst)
		svc.Spec.Ports = []corev1.ServicePort{
			{Name: httpPortName, Port: httpPort, TargetPort: intstr.FromInt32(httpPort)},
			{Name: dnsPortName, Port: dnsPort, Protocol: corev1.ProtocolUDP, TargetPort: intstr.FromInt32(dnsPort)},
		}
		svc.Spec.ClusterIP = corev1.ClusterIPNone
		return nil
	})
	if err != nil {
		return fmt.Errorf("workload: reconcile service %s/%s: %w", inst.Namespace, inst.Name, err)
	}
	return nil
}

func (w *Renderer) reconcileDeployment(ctx context.Context, inst *bindyv1beta1.Bind9Instance, cfg bindyv1beta1.WorkloadConfig) (bool, int32, error) {
	dep := &appsv1.Deployment{ObjectMeta: metav1.ObjectMeta{Name: inst.Name, Namespace: inst.Namespace}}
	_, err := controllerutil.CreateOrUpdate(ctx, w.Client, dep, func() error {
		if err := controllerutil.SetControllerReference(inst, dep, w.Scheme); err != nil {
			return err
		}
		labels := selectorLabels(inst)
		dep.Spec.Replicas = &inst.Spec.Replicas
		dep.Spec.Selector = &metav1.LabelSelector{MatchLabels: labels}
		dep.Spec.Template.ObjectMeta.Labels = labels
		if dep.Spec.Template.ObjectMeta.Annotations == nil {
			dep.Spec.Template.ObjectMeta.Annotations = map[string]string{}
		}
		dep.Spec.Template.Spec.Containers = []corev1.Container{
			{
				Name:      "bind9",
				Image:     cfg.Image,
				Resources: cfg.Resources,
				Ports: []corev1.ContainerPort{
					{Name: httpPortName, ContainerPort: httpPort},
					{Name: dnsPortName, ContainerPort: dnsPort, Protocol: corev1.ProtocolUDP},
				},
			},
		}
		return nil
	})
	if err != nil {
		return false, 0, fmt.Errorf("workload: reconcile deployment %s/%s: %w", inst.Namespace, inst.Name, err)
	}

	if err := w.Client.Get(ctx, types.NamespacedName{Namespace: inst.Namespace, Name: inst.Name}, dep); err != nil {
		return false, 0, fmt.Errorf("workload: read deployment status %s/%s: %w", inst.Namespace, inst.Name, err)
	}
	ready := dep.Status.ReadyReplicas == inst.Spec.Replicas && inst.Spec.Replicas > 0
	return ready, dep.Status.ReadyReplicas, nil
}

// Restart bumps the pod template's restartedAt annotation, forcing a
// rolling restart so newly-rotated RNDC credentials are read (§4.8).
func (w *Renderer) Restart(ctx context.Context, inst *bindyv1beta1.Bind9Instance, at string) error {
	dep := &appsv1.Deployment{}
	if err := w.Client.Get(ctx, types.NamespacedName{Namespace: inst.Namespace, Name: inst.Name}, dep); err != nil {
		return fmt.Errorf("workload: get deployment for restart %s/%s: %w", inst.Namespace, inst.Name, err)
	}
	original := dep.DeepCopy()
	if dep.Spec.Template.ObjectMeta.Annotations == nil {
		dep.Spec.Template.ObjectMeta.Annotations = map[string]string{}
	}
	dep.Spec.Template.ObjectMeta.Annotations[restartedAtAnnotation] = at
	if err := w.Client.Patch(ctx, dep, client.MergeFrom(original)); err != nil {
		return fmt.Errorf("workload: patch restart annotation %s/%s: %w", inst.Namespace, inst.Name, err)
	}
	return nil
}

func selectorLabels(inst *bindyv1beta1.Bind9Instance) map[string]string {
	return map[string]string{
		"bindy.firestoned.io/instance": inst.Name,
		"bindy.firestoned.io/role":     string(inst.Spec.Role),
	}
}
