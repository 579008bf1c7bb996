/*
 * Software Name : bindy
 * SPDX-License-Identifier: Apache-2.0
 */

package e2e

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

var _ = Describe("bindy golden path", Ordered, func() {
	var cluster *bindyv1beta1.Bind9Cluster

	It("stands up a cluster's primary instance with a managed RNDC credential", func() {
		cluster = &bindyv1beta1.Bind9Cluster{
			ObjectMeta: metav1.ObjectMeta{Name: "e2e-cluster", Namespace: namespace},
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

		instName := cluster.Name + "-primary-0"
		var inst bindyv1beta1.Bind9Instance
		Eventually(func() error {
			return k8sClient.Get(ctx, types.NamespacedName{Namespace: namespace, Name: instName}, &inst)
		}).Should(Succeed())

		By("faking the Deployment controller, which envtest does not run")
		markDeploymentReady(instName)

		Eventually(func() bool {
			_ = k8sClient.Get(ctx, types.NamespacedName{Namespace: namespace, Name: instName}, &inst)
			return inst.Status.Ready
		}).Should(BeTrue())

		var secret corev1.Secret
		Eventually(func() error {
			return k8sClient.Get(ctx, types.NamespacedName{Namespace: namespace, Name: rndc.ManagedSecretName(instName)}, &secret)
		}).Should(Succeed())
	})

	It("publishes a zone once the cluster's primary is reachable, then fans an A record out to it", func() {
		instName := cluster.Name + "-primary-0"
		provisionInstanceEndpoint(instName)

		zone := &bindyv1beta1.DNSZone{
			ObjectMeta: metav1.ObjectMeta{Name: "e2e-zone", Namespace: namespace},
			Spec: bindyv1beta1.DNSZoneSpec{
				ZoneName:    "e2e.example.com",
				ClusterRef:  bindyv1beta1.ClusterReference{Name: cluster.Name},
				SOA:         bindyv1beta1.SOAParams{PrimaryNS: "ns1.e2e.example.com.", AdminMailbox: "hostmaster.e2e.example.com."},
				Nameservers: []bindyv1beta1.NameserverEntry{{Host: "ns1.e2e.example.com."}},
				RecordsFrom: []metav1.LabelSelector{{MatchLabels: map[string]string{"bindy.firestoned.io/zone": "e2e.example.com"}}},
			},
		}
		Expect(k8sClient.Create(ctx, zone)).To(Succeed())

		Eventually(func() string {
			var z bindyv1beta1.DNSZone
			_ = k8sClient.Get(ctx, types.NamespacedName{Namespace: namespace, Name: zone.Name}, &z)
			return readyReason(z.Status.Conditions)
		}).Should(Equal(bindyv1beta1.ReasonSynced))

		rec := &bindyv1beta1.ARecord{
			ObjectMeta: metav1.ObjectMeta{
				Name:      "www",
				Namespace: namespace,
				Labels:    map[string]string{"bindy.firestoned.io/zone": "e2e.example.com"},
			},
			Spec: bindyv1beta1.ARecordSpec{RecordMeta: bindyv1beta1.RecordMeta{Name: "www", TTL: 300}, Address: "203.0.113.10"},
		}
		Expect(k8sClient.Create(ctx, rec)).To(Succeed())

		Eventually(func() string {
			var r bindyv1beta1.ARecord
			_ = k8sClient.Get(ctx, types.NamespacedName{Namespace: namespace, Name: rec.Name}, &r)
			return r.Status.Zone
		}).Should(Equal(zone.Name))

		Eventually(func() string {
			var r bindyv1beta1.ARecord
			_ = k8sClient.Get(ctx, types.NamespacedName{Namespace: namespace, Name: rec.Name}, &r)
			return readyReason(r.Status.Conditions)
		}).Should(Equal(bindyv1beta1.ReasonSynced))
	})
})

func markDeploymentReady(instName string) {
	var dep appsv1.Deployment
	Eventually(func() error {
		return k8sClient.Get(ctx, types.NamespacedName{Namespace: namespace, Name: instName}, &dep)
	}).Should(Succeed())
	dep.Status.ReadyReplicas = 1
	Expect(k8sClient.Status().Update(ctx, &dep)).To(Succeed())
}

// provisionInstanceEndpoint creates the Endpoints object internal/endpoints
// reads to resolve a ready instance's address, standing in for kube-proxy's
// Endpoints controller which envtest does not run.
func provisionInstanceEndpoint(instName string) {
	ep := &corev1.Endpoints{
		ObjectMeta: metav1.ObjectMeta{Name: instName, Namespace: namespace},
		Subsets: []corev1.EndpointSubset{{
			Addresses: []corev1.EndpointAddress{{IP: "10.0.0.1"}},
			Ports:     []corev1.EndpointPort{{Name: "http", Port: 8080}},
		}},
	}
	Expect(k8sClient.Create(ctx, ep)).To(Succeed())
}

func readyReason(conditions []metav1.Condition) string {
	for _, c := range conditions {
		if c.Type == bindyv1beta1.ConditionReady {
			return c.Reason
		}
	}
	return ""
}
