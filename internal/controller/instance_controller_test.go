/*
 * Software Name : bindy
 * SPDX-License-Identifier: Apache-2.0
 */

package controller

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"

	bindyv1beta1 "github.com/firestoned/bindy/api/v1beta1"
	"github.com/firestoned/bindy/internal/rndc"
)

var _ = Describe("Bind9Instance controller", func() {
	const namespace = "example2"

	It("renders a Deployment/Service pair and rolls up readiness", func() {
		cluster := &bindyv1beta1.Bind9Cluster{
			ObjectMeta: metav1.ObjectMeta{Name: "cluster-b", Namespace: namespace},
			Spec: bindyv1beta1.Bind9ClusterSpec{
				Primary: bindyv1beta1.RoleSpec{
					Replicas: 1,
					Workload: bindyv1beta1.WorkloadConfig{Image: "bind9:9.18"},
					RndcKeyPolicy: &bindyv1beta1.RndcKeyPolicy{
						Managed: &bindyv1beta1.ManagedRndcKeyPolicy{
							Algorithm:   "hmac-sha256",
							RotateAfter: metav1.Duration{Duration: 720 * time.Hour},
						},
					},
				},
			},
		}
		Expect(k8sClient.Create(ctx, cluster)).To(Succeed())

		var inst bindyv1beta1.Bind9Instance
		instName := cluster.Name + "-primary-0"
		Eventually(func() error {
			return k8sClient.Get(ctx, types.NamespacedName{Namespace: namespace, Name: instName}, &inst)
		}).Should(Succeed())

		var dep appsv1.Deployment
		Eventually(func() error {
			return k8sClient.Get(ctx, types.NamespacedName{Namespace: namespace, Name: instName}, &dep)
		}).Should(Succeed())
		Expect(dep.Spec.Template.Spec.Containers[0].Image).To(Equal("bind9:9.18"))

		var svc corev1.Service
		Expect(k8sClient.Get(ctx, types.NamespacedName{Namespace: namespace, Name: instName}, &svc)).To(Succeed())
		Expect(svc.Spec.ClusterIP).To(Equal(corev1.ClusterIPNone))

		By("faking the Deployment becoming ready, as envtest runs no Deployment controller")
		dep.Status.ReadyReplicas = 1
		Expect(k8sClient.Status().Update(ctx, &dep)).To(Succeed())

		Eventually(func() bool {
			_ = k8sClient.Get(ctx, types.NamespacedName{Namespace: namespace, Name: instName}, &inst)
			return inst.Status.Ready
		}).Should(BeTrue())

		By("provisioning a managed RNDC credential secret")
		var secret corev1.Secret
		Eventually(func() error {
			return k8sClient.Get(ctx, types.NamespacedName{Namespace: namespace, Name: rndc.ManagedSecretName(instName)}, &secret)
		}).Should(Succeed())
	})
})
