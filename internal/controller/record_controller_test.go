/*
 * Software Name : bindy
 * SPDX-License-Identifier: Apache-2.0
 */

package controller

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"sync"
	"sync/atomic"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	k8sruntime "k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/types"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	ctrl "sigs.k8s.io/controller-runtime"
	fakeclient "sigs.k8s.io/controller-runtime/pkg/client/fake"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"

	bindyv1beta1 "github.com/firestoned/bindy/api/v1beta1"
	"github.com/firestoned/bindy/internal/fingerprint"
	"github.com/firestoned/bindy/internal/mgmtclient"
)

// countingTransport stands in for the BIND9 sidecar without a live HTTP
// server, recording how many requests it answered and optionally failing
// every one of them, so record fan-out behavior can be asserted on in
// isolation from envtest's shared, always-succeeding fake_mgmt_test.go
// transport.
type countingTransport struct {
	mu    sync.Mutex
	calls int32
	fail  bool
}

func (c *countingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	atomic.AddInt32(&c.calls, 1)
	c.mu.Lock()
	fail := c.fail
	c.mu.Unlock()
	status := http.StatusOK
	if fail {
		status = http.StatusInternalServerError
	}
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewReader([]byte("{}"))),
		Header:     make(http.Header),
		Request:    req,
	}, nil
}

func (c *countingTransport) Calls() int32 { return atomic.LoadInt32(&c.calls) }

// newRecordTestFixture builds an isolated (fake-client-backed) cluster,
// primary instance, zone and referenced-secret RNDC credential so
// RecordReconciler.reconcileRecord/reconcileDeletion can be exercised
// directly, independent of the envtest suite's own running reconcilers.
func newRecordTestFixture(transport *countingTransport) (*RecordReconciler[*bindyv1beta1.ARecord], *bindyv1beta1.DNSZone, *bindyv1beta1.ARecord) {
	const namespace = "recontest"

	scheme := k8sruntime.NewScheme()
	Expect(clientgoscheme.AddToScheme(scheme)).To(Succeed())
	Expect(bindyv1beta1.AddToScheme(scheme)).To(Succeed())

	secret := &corev1.Secret{
		ObjectMeta: metav1.ObjectMeta{Name: "rndc-creds", Namespace: namespace},
		Data: map[string][]byte{
			"keyName":   []byte("rndc-key"),
			"algorithm": []byte("hmac-sha256"),
			"secret":    []byte("c2VjcmV0"),
		},
	}
	cluster := &bindyv1beta1.Bind9Cluster{
		ObjectMeta: metav1.ObjectMeta{Name: "cluster", Namespace: namespace},
		Spec: bindyv1beta1.Bind9ClusterSpec{
			Primary: bindyv1beta1.RoleSpec{
				Replicas:      1,
				RndcKeyPolicy: &bindyv1beta1.RndcKeyPolicy{SecretRef: &bindyv1beta1.SecretFieldRef{Name: secret.Name}},
			},
		},
	}
	instance := &bindyv1beta1.Bind9Instance{
		ObjectMeta: metav1.ObjectMeta{Name: "cluster-primary-0", Namespace: namespace},
		Spec:       bindyv1beta1.Bind9InstanceSpec{ClusterRef: bindyv1beta1.ClusterReference{Name: cluster.Name}, Role: bindyv1beta1.RolePrimary, Replicas: 1},
		Status:     bindyv1beta1.Bind9InstanceStatus{Ready: true},
	}
	endpoints := &corev1.Endpoints{
		ObjectMeta: metav1.ObjectMeta{Name: instance.Name, Namespace: namespace},
		Subsets: []corev1.EndpointSubset{{
			Addresses: []corev1.EndpointAddress{{IP: "10.0.0.5"}},
			Ports:     []corev1.EndpointPort{{Name: "http", Port: 8080}},
		}},
	}
	zone := &bindyv1beta1.DNSZone{
		ObjectMeta: metav1.ObjectMeta{Name: "zone", Namespace: namespace},
		Spec: bindyv1beta1.DNSZoneSpec{
			ZoneName:    "example.com",
			ClusterRef:  bindyv1beta1.ClusterReference{Name: cluster.Name},
			SOA:         bindyv1beta1.SOAParams{PrimaryNS: "ns1.example.com.", AdminMailbox: "hostmaster.example.com."},
			Nameservers: []bindyv1beta1.NameserverEntry{{Host: "ns1.example.com."}},
		},
	}
	rec := &bindyv1beta1.ARecord{
		ObjectMeta: metav1.ObjectMeta{Name: "www", Namespace: namespace, Finalizers: []string{bindyv1beta1.RecordFinalizer}},
		Spec:       bindyv1beta1.ARecordSpec{RecordMeta: bindyv1beta1.RecordMeta{Name: "www", TTL: 300}, Address: "192.0.2.1"},
		Status:     bindyv1beta1.RecordStatus{Zone: zone.Name},
	}

	cl := fakeclient.NewClientBuilder().
		WithScheme(scheme).
		WithObjects(secret, cluster, instance, endpoints, zone, rec).
		WithStatusSubresource(&bindyv1beta1.ARecord{}).
		Build()

	mgmt := mgmtclient.New(mgmtclient.WithHTTPClient(&http.Client{Transport: transport}), mgmtclient.WithScheme("http"))
	r := &RecordReconciler[*bindyv1beta1.ARecord]{
		Client: cl, Scheme: scheme, Mgmt: mgmt, Kind: "ARecord",
		New: func() *bindyv1beta1.ARecord { return &bindyv1beta1.ARecord{} },
	}
	return r, zone, rec
}

var _ = Describe("record reconciler (isolated)", func() {
	It("short-circuits on an unchanged fingerprint without calling the sidecar", func() {
		transport := &countingTransport{}
		r, _, rec := newRecordTestFixture(transport)
		ctx := context.Background()

		fp, err := fingerprint.Of(rec.FingerprintPayload())
		Expect(err).NotTo(HaveOccurred())
		rec.Status.Fingerprint = fp

		res, err := r.reconcileRecord(ctx, rec)
		Expect(err).NotTo(HaveOccurred())
		Expect(res).To(Equal(ctrl.Result{}))
		Expect(transport.Calls()).To(BeZero())
	})

	It("publishes SynchronizationFailed when a primary rejects the upsert", func() {
		transport := &countingTransport{fail: true}
		r, _, rec := newRecordTestFixture(transport)
		ctx := context.Background()

		res, err := r.reconcileRecord(ctx, rec)
		Expect(err).NotTo(HaveOccurred())
		Expect(res).To(Equal(ctrl.Result{}))
		Expect(transport.Calls()).To(BeNumerically(">", 0))
		Expect(conditionReason(rec.Status.Conditions)).To(Equal(bindyv1beta1.ReasonSynchronizationFailed))
	})

	It("fans out delete_record to every primary before releasing the finalizer", func() {
		transport := &countingTransport{}
		r, _, rec := newRecordTestFixture(transport)
		ctx := context.Background()

		Expect(r.Delete(ctx, rec)).To(Succeed())
		var fetched bindyv1beta1.ARecord
		Expect(r.Get(ctx, types.NamespacedName{Namespace: rec.Namespace, Name: rec.Name}, &fetched)).To(Succeed())
		Expect(fetched.DeletionTimestamp).NotTo(BeNil())

		res, err := r.reconcileDeletion(ctx, &fetched)
		Expect(err).NotTo(HaveOccurred())
		Expect(res).To(Equal(ctrl.Result{}))
		Expect(transport.Calls()).To(Equal(int32(1)))
		Expect(controllerutil.ContainsFinalizer(&fetched, bindyv1beta1.RecordFinalizer)).To(BeFalse())
	})
})
