/*
 * Software Name : bindy
 * SPDX-License-Identifier: Apache-2.0
 */

package controller

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"

	bindyv1beta1 "github.com/firestoned/bindy/api/v1beta1"
)

var _ = Describe("Bind9Cluster controller", func() {
	const namespace = "example1"

	It("synthesises one Bind9Instance per role slot and prunes stale ones", func() {
		cluster := &bindyv1beta1.Bind9Cluster{
			ObjectMeta: metav1.ObjectMeta{Name: "cluster-a", Namespace: namespace},
			Spec: bindyv1beta1.Bind9ClusterSpec{
				Primary:   bindyv1beta1.RoleSpec{Replicas: 2},
				Secondary: bindyv1beta1.RoleSpec{Replicas: 1},
			},
		}
		Expect(k8sClient.Create(ctx, cluster)).To(Succeed())

		var children bindyv1beta1.Bind9InstanceList
		Eventually(func() int {
			_ = k8sClient.List(ctx, &children, client.InNamespace(namespace), client.MatchingLabels{ownerLabel: cluster.Name})
			return len(children.Items)
		}).Should(Equal(3))

		By("shrinking the secondary role slot")
		Expect(k8sClient.Get(ctx, types.NamespacedName{Namespace: namespace, Name: cluster.Name}, cluster)).To(Succeed())
		cluster.Spec.Secondary.Replicas = 0
		Expect(k8sClient.Update(ctx, cluster)).To(Succeed())

		Eventually(func() int {
			_ = k8sClient.List(ctx, &children, client.InNamespace(namespace), client.MatchingLabels{ownerLabel: cluster.Name})
			return len(children.Items)
		}).Should(Equal(2))
	})
})
