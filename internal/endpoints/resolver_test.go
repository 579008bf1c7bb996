/*
 * Software Name : bindy
 * SPDX-License-Identifier: Apache-2.0
 */

package endpoints

import (
	"context"
	"testing"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"

	bindyv1beta1 "github.com/firestoned/bindy/api/v1beta1"
)

func newTestScheme(t *testing.T) *runtime.Scheme {
	t.Helper()
	scheme := runtime.NewScheme()
	if err := corev1.AddToScheme(scheme); err != nil {
		t.Fatalf("add corev1 to scheme: %v", err)
	}
	if err := bindyv1beta1.AddToScheme(scheme); err != nil {
		t.Fatalf("add bindyv1beta1 to scheme: %v", err)
	}
	return scheme
}

func TestResolveNoPrimariesReturnsTypedError(t *testing.T) {
	scheme := newTestScheme(t)
	cl := fake.NewClientBuilder().WithScheme(scheme).Build()

	cluster := &bindyv1beta1.Bind9Cluster{
		ObjectMeta: metav1.ObjectMeta{Name: "prod-dns", Namespace: "default"},
	}

	r := New(cl)
	_, err := r.Resolve(context.Background(), "default", cluster)
	if err == nil {
		t.Fatal("Resolve() error = nil, want NoPrimariesError")
	}
	if _, ok := err.(*NoPrimariesError); !ok {
		t.Errorf("Resolve() error type = %T, want *NoPrimariesError", err)
	}
}

func TestResolveReturnsReadyPrimaryEndpoints(t *testing.T) {
	scheme := newTestScheme(t)

	secret := &corev1.Secret{
		ObjectMeta: metav1.ObjectMeta{Name: "rndc-secret", Namespace: "default"},
		Data: map[string][]byte{
			"keyName":   []byte("primary-key"),
			"algorithm": []byte("hmac-sha256"),
			"secret":    []byte("c2VjcmV0"),
		},
	}
	instance := &bindyv1beta1.Bind9Instance{
		ObjectMeta: metav1.ObjectMeta{Name: "prod-dns-primary-0", Namespace: "default"},
		Spec: bindyv1beta1.Bind9InstanceSpec{
			ClusterRef: bindyv1beta1.ClusterReference{Name: "prod-dns"},
			Role:       bindyv1beta1.RolePrimary,
			RndcKeyPolicy: &bindyv1beta1.RndcKeyPolicy{
				SecretRef: &bindyv1beta1.SecretFieldRef{Name: "rndc-secret"},
			},
		},
		Status: bindyv1beta1.Bind9InstanceStatus{Ready: true},
	}
	ep := &corev1.Endpoints{
		ObjectMeta: metav1.ObjectMeta{Name: "prod-dns-primary-0", Namespace: "default"},
		Subsets: []corev1.EndpointSubset{{
			Addresses: []corev1.EndpointAddress{{IP: "10.0.0.5"}},
			Ports:     []corev1.EndpointPort{{Name: "http", Port: 8080}},
		}},
	}

	cl := fake.NewClientBuilder().WithScheme(scheme).WithObjects(secret, instance, ep).Build()

	cluster := &bindyv1beta1.Bind9Cluster{
		ObjectMeta: metav1.ObjectMeta{Name: "prod-dns", Namespace: "default"},
	}

	r := New(cl)
	set, err := r.Resolve(context.Background(), "default", cluster)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(set.Primaries) != 1 {
		t.Fatalf("Primaries = %v, want 1 entry", set.Primaries)
	}
	if set.Primaries[0].IP != "10.0.0.5" || set.Primaries[0].Port != 8080 {
		t.Errorf("Primaries[0] = %+v, want IP 10.0.0.5 port 8080", set.Primaries[0])
	}
	cred, ok := set.Credentials["prod-dns-primary-0"]
	if !ok {
		t.Fatal("Credentials missing entry for prod-dns-primary-0")
	}
	if cred.KeyName != "primary-key" {
		t.Errorf("Credential.KeyName = %q, want %q", cred.KeyName, "primary-key")
	}
}
