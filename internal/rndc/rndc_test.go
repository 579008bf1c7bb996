/*
 * Software Name : bindy
 * SPDX-License-Identifier: Apache-2.0
 */

package rndc

import (
	"context"
	"testing"
	"time"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"

	bindyv1beta1 "github.com/firestoned/bindy/api/v1beta1"
)

func TestResolveReferencedSecret(t *testing.T) {
	secret := &corev1.Secret{
		ObjectMeta: metav1.ObjectMeta{Name: "my-rndc", Namespace: "ns"},
		Data: map[string][]byte{
			"keyName":   []byte("rndc-key"),
			"algorithm": []byte("hmac-sha256"),
			"secret":    []byte("c2VjcmV0"),
		},
	}
	cl := fake.NewClientBuilder().WithObjects(secret).Build()

	policy := bindyv1beta1.RndcKeyPolicy{SecretRef: &bindyv1beta1.SecretFieldRef{Name: "my-rndc"}}
	cred, err := Resolve(context.Background(), cl, "ns", policy)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cred.KeyName != "rndc-key" || cred.Algorithm != "hmac-sha256" || cred.Secret != "c2VjcmV0" {
		t.Fatalf("unexpected credential: %+v", cred)
	}
}

func TestResolveReferencedSecretMissingField(t *testing.T) {
	secret := &corev1.Secret{
		ObjectMeta: metav1.ObjectMeta{Name: "my-rndc", Namespace: "ns"},
		Data:       map[string][]byte{"keyName": []byte("rndc-key")},
	}
	cl := fake.NewClientBuilder().WithObjects(secret).Build()

	policy := bindyv1beta1.RndcKeyPolicy{SecretRef: &bindyv1beta1.SecretFieldRef{Name: "my-rndc"}}
	if _, err := Resolve(context.Background(), cl, "ns", policy); err == nil {
		t.Fatal("expected error for secret missing algorithm/secret fields")
	}
}

func TestEnsureManagedCreatesThenReusesSecret(t *testing.T) {
	cl := fake.NewClientBuilder().Build()

	policy := bindyv1beta1.ManagedRndcKeyPolicy{
		Algorithm:   "hmac-sha256",
		RotateAfter: metav1.Duration{Duration: 24 * time.Hour},
	}
	now := time.Now()

	cred1, rotated1, err := EnsureManaged(context.Background(), cl, "ns", "inst-a", policy, now)
	if err != nil {
		t.Fatalf("EnsureManaged (create): %v", err)
	}
	if !rotated1 {
		t.Fatal("expected rotated=true on first creation")
	}
	if cred1.KeyName == "" || cred1.Secret == "" {
		t.Fatalf("expected generated credential, got %+v", cred1)
	}

	var secret corev1.Secret
	if err := cl.Get(context.Background(), types.NamespacedName{Namespace: "ns", Name: ManagedSecretName("inst-a")}, &secret); err != nil {
		t.Fatalf("expected managed secret to exist: %v", err)
	}

	cred2, rotated2, err := EnsureManaged(context.Background(), cl, "ns", "inst-a", policy, now.Add(time.Hour))
	if err != nil {
		t.Fatalf("EnsureManaged (reuse): %v", err)
	}
	if rotated2 {
		t.Fatal("expected rotated=false before RotateAfter elapses")
	}
	if cred2.Secret != cred1.Secret {
		t.Fatal("expected the same secret material before rotation is due")
	}
}

func TestEnsureManagedRotatesPastDeadline(t *testing.T) {
	cl := fake.NewClientBuilder().Build()
	policy := bindyv1beta1.ManagedRndcKeyPolicy{
		Algorithm:   "hmac-sha256",
		RotateAfter: metav1.Duration{Duration: time.Hour},
	}
	now := time.Now()

	cred1, _, err := EnsureManaged(context.Background(), cl, "ns", "inst-b", policy, now)
	if err != nil {
		t.Fatalf("EnsureManaged (create): %v", err)
	}

	cred2, rotated, err := EnsureManaged(context.Background(), cl, "ns", "inst-b", policy, now.Add(2*time.Hour))
	if err != nil {
		t.Fatalf("EnsureManaged (rotate): %v", err)
	}
	if !rotated {
		t.Fatal("expected rotation once RotateAfter has elapsed")
	}
	if cred2.Secret == cred1.Secret {
		t.Fatal("expected new secret material after rotation")
	}
}

func TestManagedSecretName(t *testing.T) {
	if got := ManagedSecretName("bind-primary-0"); got != "bindy-managed-bind-primary-0-rndc" {
		t.Fatalf("unexpected managed secret name: %s", got)
	}
}
