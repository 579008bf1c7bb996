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
	"sigs.k8s.io/controller-runtime/pkg/client"

	bindyv1beta1 "github.com/firestoned/bindy/api/v1beta1"
)

var _ = Describe("DNSZone controller", func() {
	const namespace = "example3"

	It("rejects two zones claiming the same zoneName", func() {
		cluster := &bindyv1beta1.Bind9Cluster{
			ObjectMeta: metav1.ObjectMeta{Name: "cluster-c", Namespace: namespace},
			Spec: bindyv1beta1.Bind9ClusterSpec{
				Primary: bindyv1beta1.RoleSpec{Replicas: 1},
				RndcKeyPolicy: &bindyv1beta1.RndcKeyPolicy{
					Managed: &bindyv1beta1.ManagedRndcKeyPolicy{
						Algorithm:   "hmac-sha256",
						RotateAfter: metav1.Duration{Duration: 720 * time.Hour},
					},
				},
			},
		}
		Expect(k8sClient.Create(ctx, cluster)).To(Succeed())
		markInstancesReady(namespace, cluster.Name)

		zoneSpec := bindyv1beta1.DNSZoneSpec{
			ZoneName:   "dup.example.com",
			ClusterRef: bindyv1beta1.ClusterReference{Name: cluster.Name},
			SOA:        bindyv1beta1.SOAParams{PrimaryNS: "ns1.dup.example.com.", AdminMailbox: "hostmaster.dup.example.com."},
			Nameservers: []bindyv1beta1.NameserverEntry{{Host: "ns1.dup.example.com."}},
		}
		first := &bindyv1beta1.DNSZone{ObjectMeta: metav1.ObjectMeta{Name: "zone-first", Namespace: namespace}, Spec: zoneSpec}
		Expect(k8sClient.Create(ctx, first)).To(Succeed())

		Eventually(func() string {
			var z bindyv1beta1.DNSZone
			_ = k8sClient.Get(ctx, types.NamespacedName{Namespace: namespace, Name: first.Name}, &z)
			return conditionReason(z.Status.Conditions)
		}).Should(Equal(bindyv1beta1.ReasonSynced))

		second := &bindyv1beta1.DNSZone{ObjectMeta: metav1.ObjectMeta{Name: "zone-second", Namespace: namespace}, Spec: zoneSpec}
		Expect(k8sClient.Create(ctx, second)).To(Succeed())

		Eventually(func() string {
			var z bindyv1beta1.DNSZone
			_ = k8sClient.Get(ctx, types.NamespacedName{Namespace: namespace, Name: second.Name}, &z)
			return conditionReason(z.Status.Conditions)
		}).Should(Equal(bindyv1beta1.ReasonDuplicateZone))
	})
})

// markInstancesReady fakes every Bind9Instance belonging to cluster as
// workload-ready and gives it a reachable Endpoints object, standing in for
// the Deployment/Endpoints controllers envtest does not run.
func markInstancesReady(namespace, clusterName string) {
	Eventually(func() int {
		var instances bindyv1beta1.Bind9InstanceList
		_ = k8sClient.List(ctx, &instances, client.InNamespace(namespace), client.MatchingLabels{ownerLabel: clusterName})
		for i := range instances.Items {
			inst := &instances.Items[i]

			var dep appsv1.Deployment
			if err := k8sClient.Get(ctx, types.NamespacedName{Namespace: namespace, Name: inst.Name}, &dep); err != nil {
				continue
			}
			dep.Status.ReadyReplicas = 1
			_ = k8sClient.Status().Update(ctx, &dep)

			ep := &corev1.Endpoints{
				ObjectMeta: metav1.ObjectMeta{Name: inst.Name, Namespace: namespace},
				Subsets: []corev1.EndpointSubset{{
					Addresses: []corev1.EndpointAddress{{IP: "10.0.0.1"}},
					Ports:     []corev1.EndpointPort{{Name: "http", Port: 8080}},
				}},
			}
			_ = k8sClient.Create(ctx, ep)
		}
		return len(instances.Items)
	}).ShouldNot(BeZero())

	Eventually(func() bool {
		var instances bindyv1beta1.Bind9InstanceList
		_ = k8sClient.List(ctx, &instances, client.InNamespace(namespace), client.MatchingLabels{ownerLabel: clusterName})
		for i := range instances.Items {
			if !instances.Items[i].Status.Ready {
				return false
			}
		}
		return len(instances.Items) > 0
	}).Should(BeTrue())
}

func conditionReason(conditions []metav1.Condition) string {
	for _, c := range conditions {
		if c.Type == bindyv1beta1.ConditionReady {
			return c.Reason
		}
	}
	return ""
}
