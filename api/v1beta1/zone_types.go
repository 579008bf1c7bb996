/*
 * Software Name : bindy
 * SPDX-License-Identifier: Apache-2.0
 */

package v1beta1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// DNSZoneSpec defines the desired state of an authoritative zone.
type DNSZoneSpec struct {
	// ZoneName is the fully-qualified zone name (e.g. "example.com"). Must
	// be unique across the entire cluster (invariant 1).
	// +kubebuilder:validation:XValidation:rule="self == oldSelf",message="zoneName is immutable"
	ZoneName string `json:"zoneName"`
	// ClusterRef is the Bind9Cluster whose primaries serve this zone.
	ClusterRef ClusterReference `json:"clusterRef"`
	// SOA parameters for the zone.
	SOA SOAParams `json:"soa"`
	// DefaultTTL applied to records that don't specify their own.
	// +kubebuilder:default:=3600
	DefaultTTL uint32 `json:"defaultTtl,omitempty"`
	// Nameservers advertised for this zone.
	// +kubebuilder:validation:MinItems=1
	Nameservers []NameserverEntry `json:"nameservers"`
	// RecordsFrom is a list of label selectors; a record is a member of
	// this zone iff it lives in the zone's namespace and its labels satisfy
	// at least one selector here (§3.1, §4.1).
	// +optional
	RecordsFrom []metav1.LabelSelector `json:"recordsFrom,omitempty"`
}

// DNSZoneStatus is the observed state of a DNSZone.
type DNSZoneStatus struct {
	// ObservedGeneration is the generation last successfully reconciled;
	// never advanced past a failed reconciliation (invariant 7).
	// +optional
	ObservedGeneration int64 `json:"observedGeneration,omitempty"`
	// Instances is the per-primary sync outcome of the last fan-out.
	// +optional
	Instances []PrimarySyncEntry `json:"instances,omitempty"`
	// SecondaryIPs is the last-observed set of secondary pod IPs, mirrored
	// into each primary's also-notify/allow-transfer configuration.
	// +optional
	SecondaryIPs []string `json:"secondaryIps,omitempty"`
	// Records lists the currently-ready member records selected into this zone.
	// +optional
	Records []RecordReference `json:"records,omitempty"`
	// Conditions, notably Ready.
	// +optional
	Conditions []metav1.Condition `json:"conditions,omitempty"`
}

//+kubebuilder:object:root=true
//+kubebuilder:subresource:status
//+kubebuilder:resource:scope=Namespaced

// +kubebuilder:printcolumn:name="Zone",type="string",JSONPath=".spec.zoneName"
// +kubebuilder:printcolumn:name="Cluster",type="string",JSONPath=".spec.clusterRef.name"
// +kubebuilder:printcolumn:name="Ready",type="string",JSONPath=".status.conditions[?(@.type=='Ready')].status"
// DNSZone is the Schema for the dnszones API.
type DNSZone struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   DNSZoneSpec   `json:"spec,omitempty"`
	Status DNSZoneStatus `json:"status,omitempty"`
}

//+kubebuilder:object:root=true

// DNSZoneList contains a list of DNSZone.
type DNSZoneList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []DNSZone `json:"items"`
}

func init() {
	SchemeBuilder.Register(&DNSZone{}, &DNSZoneList{})
}

// IsReady reports the Ready condition's status.
func (z *DNSZone) IsReady() bool {
	for _, c := range z.Status.Conditions {
		if c.Type == ConditionReady {
			return c.Status == metav1.ConditionTrue
		}
	}
	return false
}

const ZoneFinalizer = "bindy.firestoned.io/dnszone"
