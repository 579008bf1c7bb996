/*
 * Software Name : bindy
 * SPDX-License-Identifier: Apache-2.0
 */

// Package rndc implements the RNDC/TSIG credential lifecycle described in
// §4.8: resolving which secret backs an instance's management credential,
// and generating/rotating operator-managed ones.
package rndc

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"

	bindyv1beta1 "github.com/firestoned/bindy/api/v1beta1"
)

// Credential is the resolved RNDC key material used to authenticate
// management calls against one instance.
type Credential struct {
	KeyName   string
	Algorithm bindyv1beta1.RndcAlgorithm
	Secret    string
}

const (
	annotationCreatedAt     = "bindy.firestoned.io/rndc-created-at"
	annotationRotateAt      = "bindy.firestoned.io/rndc-rotate-at"
	annotationRotationCount = "bindy.firestoned.io/rndc-rotation-count"

	defaultKeyField       = "keyName"
	defaultAlgorithmField = "algorithm"
	defaultSecretField    = "secret"

	managedKeyNamePrefix = "bindy-managed"
)

// Resolve reads the credential for policy out of the cluster, dispatching on
// whether the policy is referenced (user-managed secret) or operator-managed
// (§4.8). namespace is the instance's namespace.
func Resolve(ctx context.Context, cl client.Client, namespace string, policy bindyv1beta1.RndcKeyPolicy) (Credential, error) {
	switch {
	case policy.SecretRef != nil:
		return resolveReferenced(ctx, cl, namespace, *policy.SecretRef)
	case policy.Managed != nil:
		return resolveManaged(ctx, cl, namespace, *policy.Managed)
	default:
		return Credential{}, fmt.Errorf("rndc: no key policy configured")
	}
}

func resolveReferenced(ctx context.Context, cl client.Client, namespace string, ref bindyv1beta1.SecretFieldRef) (Credential, error) {
	var secret corev1.Secret
	if err := cl.Get(ctx, types.NamespacedName{Namespace: namespace, Name: ref.Name}, &secret); err != nil {
		return Credential{}, fmt.Errorf("rndc: get referenced secret %s/%s: %w", namespace, ref.Name, err)
	}
	return credentialFromSecretData(secret.Data, ref)
}

func credentialFromSecretData(data map[string][]byte, ref bindyv1beta1.SecretFieldRef) (Credential, error) {
	keyField := orDefault(ref.KeyNameField, defaultKeyField)
	algField := orDefault(ref.AlgorithmField, defaultAlgorithmField)
	secretField := orDefault(ref.SecretField, defaultSecretField)

	keyName, ok := data[keyField]
	if !ok {
		return Credential{}, fmt.Errorf("rndc: secret missing key %q", keyField)
	}
	algo, ok := data[algField]
	if !ok {
		return Credential{}, fmt.Errorf("rndc: secret missing key %q", algField)
	}
	secretBytes, ok := data[secretField]
	if !ok {
		return Credential{}, fmt.Errorf("rndc: secret missing key %q", secretField)
	}
	return Credential{
		KeyName:   string(keyName),
		Algorithm: bindyv1beta1.RndcAlgorithm(algo),
		Secret:    string(secretBytes),
	}, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// ManagedSecretName derives the deterministic name of the operator-managed
// secret for an instance ("bindy-managed-<instance>-rndc"), so each
// instance's generated key lives in its own secret.
func ManagedSecretName(instanceName string) string {
	return fmt.Sprintf("%s-%s-rndc", managedKeyNamePrefix, instanceName)
}

func resolveManaged(ctx context.Context, cl client.Client, namespace string, policy bindyv1beta1.ManagedRndcKeyPolicy) (Credential, error) {
	// Resolve is read-only; callers that need to create/rotate the secret
	// use EnsureManaged below from the instance reconciler, where the
	// instance name (hence the deterministic secret name) is known.
	return Credential{}, fmt.Errorf("rndc: managed policy resolution requires an instance name; use EnsureManaged")
}

// EnsureManaged creates the operator-managed secret for instanceName if
// absent, or rotates it if now is at or past its rotate-at annotation,
// returning the (possibly just-rotated) credential and whether this call
// generated new key material (true both on creation and on rotation).
func EnsureManaged(ctx context.Context, cl client.Client, namespace, instanceName string, policy bindyv1beta1.ManagedRndcKeyPolicy, now time.Time) (cred Credential, rotated bool, err error) {
	name := ManagedSecretName(instanceName)
	var secret corev1.Secret
	getErr := cl.Get(ctx, types.NamespacedName{Namespace: namespace, Name: name}, &secret)
	switch {
	case apierrors.IsNotFound(getErr):
		cred, secret, err = newManagedSecret(namespace, name, instanceName, policy, now)
		if err != nil {
			return Credential{}, false, err
		}
		if err := cl.Create(ctx, &secret); err != nil {
			return Credential{}, false, fmt.Errorf("rndc: create managed secret: %w", err)
		}
		return cred, true, nil
	case getErr != nil:
		return Credential{}, false, fmt.Errorf("rndc: get managed secret: %w", getErr)
	}

	rotateAt, parseErr := time.Parse(time.RFC3339, secret.Annotations[annotationRotateAt])
	if parseErr != nil || !now.Before(rotateAt) {
		original := secret.DeepCopy()
		cred, refreshed, err := rotateManagedSecret(&secret, instanceName, policy, now)
		if err != nil {
			return Credential{}, false, err
		}
		if err := cl.Patch(ctx, &secret, client.MergeFrom(original)); err != nil {
			return Credential{}, false, fmt.Errorf("rndc: patch rotated secret: %w", err)
		}
		return cred, refreshed, nil
	}

	cred, err = credentialFromSecretData(secret.Data, bindyv1beta1.SecretFieldRef{})
	return cred, false, err
}

func newManagedSecret(namespace, name, instanceName string, policy bindyv1beta1.ManagedRndcKeyPolicy, now time.Time) (Credential, corev1.Secret, error) {
	secretValue, err := generateSecret()
	if err != nil {
		return Credential{}, corev1.Secret{}, err
	}
	keyName := fmt.Sprintf("%s-key", instanceName)
	rotateAt := now.Add(policy.RotateAfter.Duration)

	secret := corev1.Secret{
		ObjectMeta: metav1.ObjectMeta{
			Name:      name,
			Namespace: namespace,
			Annotations: map[string]string{
				annotationCreatedAt:     now.Format(time.RFC3339),
				annotationRotateAt:      rotateAt.Format(time.RFC3339),
				annotationRotationCount: "0",
			},
		},
		StringData: map[string]string{
			defaultKeyField:       keyName,
			defaultAlgorithmField: string(policy.Algorithm),
			defaultSecretField:    secretValue,
		},
		Type: corev1.SecretTypeOpaque,
	}
	return Credential{KeyName: keyName, Algorithm: policy.Algorithm, Secret: secretValue}, secret, nil
}

func rotateManagedSecret(secret *corev1.Secret, instanceName string, policy bindyv1beta1.ManagedRndcKeyPolicy, now time.Time) (Credential, bool, error) {
	secretValue, err := generateSecret()
	if err != nil {
		return Credential{}, false, err
	}
	keyName := fmt.Sprintf("%s-key", instanceName)
	rotateAt := now.Add(policy.RotateAfter.Duration)

	count := 0
	fmt.Sscanf(secret.Annotations[annotationRotationCount], "%d", &count)

	if secret.Annotations == nil {
		secret.Annotations = map[string]string{}
	}
	secret.Annotations[annotationCreatedAt] = now.Format(time.RFC3339)
	secret.Annotations[annotationRotateAt] = rotateAt.Format(time.RFC3339)
	secret.Annotations[annotationRotationCount] = fmt.Sprintf("%d", count+1)
	secret.StringData = map[string]string{
		defaultKeyField:       keyName,
		defaultAlgorithmField: string(policy.Algorithm),
		defaultSecretField:    secretValue,
	}
	return Credential{KeyName: keyName, Algorithm: policy.Algorithm, Secret: secretValue}, true, nil
}

func generateSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("rndc: generate secret material: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf), nil
}
