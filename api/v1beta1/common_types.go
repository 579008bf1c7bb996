/*
 * Software Name : bindy
 * SPDX-License-Identifier: Apache-2.0
 */

package v1beta1

import (
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// RndcAlgorithm is the HMAC algorithm used for an RNDC/TSIG credential.
// +kubebuilder:validation:Enum:=hmac-sha256;hmac-sha384;hmac-sha512
type RndcAlgorithm string

const (
	RndcAlgorithmHMACSHA256 RndcAlgorithm = "hmac-sha256"
	RndcAlgorithmHMACSHA384 RndcAlgorithm = "hmac-sha384"
	RndcAlgorithmHMACSHA512 RndcAlgorithm = "hmac-sha512"
)

// SecretFieldRef points at the keys of a Secret holding an RNDC credential.
type SecretFieldRef struct {
	// Name of the Secret.
	Name string `json:"name"`
	// KeyNameField is the Secret data key holding the RNDC key name. Defaults to "keyName".
	// +optional
	KeyNameField string `json:"keyNameField,omitempty"`
	// AlgorithmField is the Secret data key holding the HMAC algorithm. Defaults to "algorithm".
	// +optional
	AlgorithmField string `json:"algorithmField,omitempty"`
	// SecretField is the Secret data key holding the shared secret material. Defaults to "secret".
	// +optional
	SecretField string `json:"secretField,omitempty"`
}

// ManagedRndcKeyPolicy configures operator-generated RNDC credentials.
type ManagedRndcKeyPolicy struct {
	// Algorithm of the generated HMAC secret.
	// +kubebuilder:default:="hmac-sha256"
	Algorithm RndcAlgorithm `json:"algorithm,omitempty"`
	// RotateAfter is the age at which a generated secret is rotated.
	// +kubebuilder:default:="720h"
	RotateAfter metav1.Duration `json:"rotateAfter,omitempty"`
}

// RndcKeyPolicy selects how an instance's RNDC credential is sourced. Exactly
// one of SecretRef or Managed should be set; SecretRef takes precedence if
// both are (the operator never mutates a referenced secret).
type RndcKeyPolicy struct {
	// SecretRef points at an existing, user-managed credential secret.
	// +optional
	SecretRef *SecretFieldRef `json:"secretRef,omitempty"`
	// Managed requests operator-generated and rotated credentials.
	// +optional
	Managed *ManagedRndcKeyPolicy `json:"managed,omitempty"`
}

// IsManaged reports whether the policy asks the operator to generate and
// rotate the credential rather than read an existing secret.
func (p RndcKeyPolicy) IsManaged() bool {
	return p.SecretRef == nil && p.Managed != nil
}

// MergeRndcKeyPolicy resolves precedence between an instance-level override, a role-level
// default and a cluster-level default, per §4.8: instance overrides role
// overrides cluster.
func MergeRndcKeyPolicy(instance, role, cluster *RndcKeyPolicy) RndcKeyPolicy {
	for _, p := range []*RndcKeyPolicy{instance, role, cluster} {
		if p != nil && (p.SecretRef != nil || p.Managed != nil) {
			return *p
		}
	}
	return RndcKeyPolicy{}
}

// WorkloadConfig describes the per-role BIND9+sidecar workload. The concrete
// Deployment and Service objects are rendered from this config by
// internal/workload.
type WorkloadConfig struct {
	// Image is the BIND9+sidecar container image reference.
	// +optional
	Image string `json:"image,omitempty"`
	// Resources requested/limited for the workload's containers.
	// +optional
	Resources corev1.ResourceRequirements `json:"resources,omitempty"`
}

// RoleSpec is the per-role (primary or secondary) configuration carried on a
// Bind9Cluster.
type RoleSpec struct {
	// Replicas is the desired instance count for this role.
	// +kubebuilder:validation:Minimum=0
	Replicas int32 `json:"replicas"`
	// Workload is the desired workload configuration for instances of this role.
	// +optional
	Workload WorkloadConfig `json:"workload,omitempty"`
	// RndcKeyPolicy is the role-level default RNDC credential policy.
	// +optional
	RndcKeyPolicy *RndcKeyPolicy `json:"rndcKeyPolicy,omitempty"`
}

// SOAParams carries the authoritative SOA fields for a zone.
type SOAParams struct {
	// PrimaryNS is the SOA MNAME (primary nameserver hostname).
	PrimaryNS string `json:"primaryNs"`
	// AdminMailbox is the SOA RNAME (administrator mailbox, e.g. "hostmaster.example.com.").
	AdminMailbox string `json:"adminMailbox"`
	// Serial is the SOA serial sent to primaries. The operator sends it as
	// given and does not compare it with serials written by earlier
	// reconciliations, so lowering it lowers the serial sent.
	// +optional
	Serial uint32 `json:"serial,omitempty"`
	// +kubebuilder:default:=3600
	Refresh uint32 `json:"refresh,omitempty"`
	// +kubebuilder:default:=600
	Retry uint32 `json:"retry,omitempty"`
	// +kubebuilder:default:=1209600
	Expire uint32 `json:"expire,omitempty"`
	// +kubebuilder:default:=3600
	NegativeTTL uint32 `json:"negativeTtl,omitempty"`
}

// NameserverEntry is a zone's advertised NS, with optional glue addresses for
// in-zone nameservers.
type NameserverEntry struct {
	// Host is the nameserver's fully-qualified hostname.
	Host string `json:"host"`
	// AddressesV4 are optional in-zone glue A addresses.
	// +optional
	AddressesV4 []string `json:"addressesV4,omitempty"`
	// AddressesV6 are optional in-zone glue AAAA addresses.
	// +optional
	AddressesV6 []string `json:"addressesV6,omitempty"`
}

// ClusterReference points a Zone/Instance at its owning Bind9Cluster.
type ClusterReference struct {
	// Name of the Bind9Cluster.
	Name string `json:"name"`
}

// SyncState is the per-primary state of a single zone/record application.
// +kubebuilder:validation:Enum:=Claimed;Configured;Failed
type SyncState string

const (
	SyncStateClaimed    SyncState = "Claimed"
	SyncStateConfigured SyncState = "Configured"
	SyncStateFailed     SyncState = "Failed"
)

// PrimarySyncEntry records the outcome of applying a zone to one primary instance.
type PrimarySyncEntry struct {
	// Instance identifies the Bind9Instance this entry describes.
	Instance string `json:"instance"`
	// State of the last attempted sync against this instance.
	State SyncState `json:"state"`
	// Message optionally explains a Failed state.
	// +optional
	Message string `json:"message,omitempty"`
	// LastTransitionTime of the last state change.
	// +optional
	LastTransitionTime *metav1.Time `json:"lastTransitionTime,omitempty"`
}

// RecordReference identifies a selected member record by kind and name.
type RecordReference struct {
	// Kind of the record resource, e.g. "ARecord", "CNAMERecord".
	Kind string `json:"kind"`
	// Name of the record object.
	Name string `json:"name"`
}

const (
	// ConditionReady is the canonical top-level condition type for every
	// resource kind in this API group.
	ConditionReady = "Ready"

	ReasonDuplicateZone       = "DuplicateZone"
	ReasonClusterNotFound     = "ClusterNotFound"
	ReasonEndpointsUnavailable = "EndpointsUnavailable"
	ReasonSelectorConflict    = "SelectorConflict"
	ReasonNotSelected         = "NotSelected"
	ReasonPartialFailure      = "PartialFailure"
	ReasonSynchronizationFailed = "SynchronizationFailed"
	ReasonSynced              = "Synced"
	ReasonZoneNotReady        = "ZoneNotReady"
)
