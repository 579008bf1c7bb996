/*
 * Software Name : bindy
 * SPDX-License-Identifier: Apache-2.0
 */

// Package endpoints resolves a Bind9Cluster reference into the set of ready
// primary/secondary pod endpoints and their RNDC credentials (§4.2), as a
// small client-like wrapper with focused helper functions over the
// Kubernetes API.
package endpoints

import (
	"context"
	"fmt"
	"sync"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"

	bindyv1beta1 "github.com/firestoned/bindy/api/v1beta1"
	"github.com/firestoned/bindy/internal/mgmtclient"
	"github.com/firestoned/bindy/internal/rndc"
)

// NoPrimariesError is returned when a cluster currently has zero ready
// primary endpoints. The zone and record reconcilers requeue after a short
// interval on it; both also set Ready=False with reason EndpointsUnavailable.
type NoPrimariesError struct {
	Cluster string
}

func (e *NoPrimariesError) Error() string {
	return fmt.Sprintf("endpoints: cluster %q has no ready primary endpoints", e.Cluster)
}

// Set is the resolved endpoint/credential view of one Bind9Cluster for the
// duration of a single reconciliation.
type Set struct {
	Primaries   []mgmtclient.Endpoint
	Secondaries []mgmtclient.Endpoint
	// Credentials maps an instance name to its resolved RNDC credential.
	Credentials map[string]rndc.Credential
}

// httpPortName is the named container port the sidecar's REST API listens
// on, read from the instance's Endpoints object rather than hardcoded (§4.2).
const httpPortName = "http"

// Resolver resolves endpoint sets, caching RNDC credential reads for the
// lifetime of the Resolver instance. Construct a fresh Resolver per
// reconciliation (it is not safe, nor intended, to be reused across ticks —
// §5 "secrets read for RNDC credentials are cached for the duration of a
// single reconciliation only").
type Resolver struct {
	client client.Client

	mu    sync.Mutex
	cache map[string]rndc.Credential // instance name -> credential
}

// New constructs a Resolver scoped to a single reconciliation.
func New(cl client.Client) *Resolver {
	return &Resolver{client: cl, cache: make(map[string]rndc.Credential)}
}

// Resolve produces the primary/secondary endpoint sets for cluster, reading
// each role's Bind9Instance objects, their rendered Endpoints, and their
// resolved RNDC credentials.
func (r *Resolver) Resolve(ctx context.Context, namespace string, cluster *bindyv1beta1.Bind9Cluster) (Set, error) {
	var instances bindyv1beta1.Bind9InstanceList
	if err := r.client.List(ctx, &instances, client.InNamespace(namespace)); err != nil {
		return Set{}, fmt.Errorf("endpoints: list instances: %w", err)
	}

	set := Set{Credentials: make(map[string]rndc.Credential)}
	for i := range instances.Items {
		inst := &instances.Items[i]
		if inst.Spec.ClusterRef.Name != cluster.Name {
			continue
		}
		if !inst.Status.Ready {
			continue
		}

		eps, err := r.podEndpoints(ctx, namespace, inst.Name)
		if err != nil {
			return Set{}, err
		}

		cred, err := r.credentialFor(ctx, namespace, inst, cluster)
		if err != nil {
			return Set{}, fmt.Errorf("endpoints: resolve credential for %s: %w", inst.Name, err)
		}
		set.Credentials[inst.Name] = cred

		switch inst.Spec.Role {
		case bindyv1beta1.RolePrimary:
			set.Primaries = append(set.Primaries, eps...)
		case bindyv1beta1.RoleSecondary:
			set.Secondaries = append(set.Secondaries, eps...)
		}
	}

	if len(set.Primaries) == 0 {
		return Set{}, &NoPrimariesError{Cluster: cluster.Name}
	}
	return set, nil
}

// podEndpoints reads the named "http" port and ready pod IPs from the
// Endpoints object backing instanceName's Service. Ports are never
// hardcoded (§4.2).
func (r *Resolver) podEndpoints(ctx context.Context, namespace, instanceName string) ([]mgmtclient.Endpoint, error) {
	var ep corev1.Endpoints
	if err := r.client.Get(ctx, types.NamespacedName{Namespace: namespace, Name: instanceName}, &ep); err != nil {
		return nil, fmt.Errorf("endpoints: get Endpoints %s/%s: %w", namespace, instanceName, err)
	}

	var out []mgmtclient.Endpoint
	for _, subset := range ep.Subsets {
		var port int32
		for _, p := range subset.Ports {
			if p.Name == httpPortName {
				port = p.Port
				break
			}
		}
		if port == 0 {
			continue
		}
		for _, addr := range subset.Addresses {
			out = append(out, mgmtclient.Endpoint{IP: addr.IP, Port: port})
		}
	}
	return out, nil
}

// credentialFor resolves the effective RNDC policy for inst (instance
// overrides role overrides cluster — §4.8) and reads the credential, caching
// it for the life of this Resolver. For a managed policy it reads the
// operator-managed secret as the instance reconciler last wrote it; it never
// creates or rotates that secret.
func (r *Resolver) credentialFor(ctx context.Context, namespace string, inst *bindyv1beta1.Bind9Instance, cluster *bindyv1beta1.Bind9Cluster) (rndc.Credential, error) {
	r.mu.Lock()
	if cred, ok := r.cache[inst.Name]; ok {
		r.mu.Unlock()
		return cred, nil
	}
	r.mu.Unlock()

	var rolePolicy *bindyv1beta1.RndcKeyPolicy
	switch inst.Spec.Role {
	case bindyv1beta1.RolePrimary:
		rolePolicy = cluster.Spec.Primary.RndcKeyPolicy
	case bindyv1beta1.RoleSecondary:
		rolePolicy = cluster.Spec.Secondary.RndcKeyPolicy
	}
	policy := bindyv1beta1.MergeRndcKeyPolicy(inst.Spec.RndcKeyPolicy, rolePolicy, cluster.Spec.RndcKeyPolicy)

	var (
		cred rndc.Credential
		err  error
	)
	if policy.IsManaged() {
		managed := bindyv1beta1.RndcKeyPolicy{SecretRef: &bindyv1beta1.SecretFieldRef{Name: rndc.ManagedSecretName(inst.Name)}}
		cred, err = rndc.Resolve(ctx, r.client, namespace, managed)
	} else {
		cred, err = rndc.Resolve(ctx, r.client, namespace, policy)
	}
	if err != nil {
		return rndc.Credential{}, err
	}

	r.mu.Lock()
	r.cache[inst.Name] = cred
	r.mu.Unlock()
	return cred, nil
}
