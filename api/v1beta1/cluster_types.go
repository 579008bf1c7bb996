/*
 * Software Name : bindy
 * SPDX-License-Identifier: Apache-2.0
 */

package v1beta1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// Bind9ClusterSpec defines the desired primary/secondary topology of a
// logical BIND9 cluster.
type Bind9ClusterSpec struct {
	// Primary is the desired configuration of primary instances.
	Primary RoleSpec `json:"primary"`
	// Secondary is the desired configuration of secondary instances. A
	// cluster with no secondaries (Replicas: 0, or omitted) is a valid
	// single-primary deployment.
	// +optional
	Secondary RoleSpec `json:"secondary,omitempty"`
	// RndcKeyPolicy is the cluster-level default RNDC credential policy,
	// overridden by role-level and then instance-level policies (§4.8).
	// +optional
	RndcKeyPolicy *RndcKeyPolicy `json:"rndcKeyPolicy,omitempty"`
}

// Bind9ClusterStatus is the observed state of a Bind9Cluster.
type Bind9ClusterStatus struct {
	// ReadyPrimaries is the count of Ready primary instances.
	// +optional
	ReadyPrimaries int32 `json:"readyPrimaries,omitempty"`
	// ReadySecondaries is the count of Ready secondary instances.
	// +optional
	ReadySecondaries int32 `json:"readySecondaries,omitempty"`
	// ObservedGeneration is the generation last successfully reconciled.
	// +optional
	ObservedGeneration int64 `json:"observedGeneration,omitempty"`
	// Conditions, notably Ready.
	// +optional
	Conditions []metav1.Condition `json:"conditions,omitempty"`
}

//+kubebuilder:object:root=true
//+kubebuilder:subresource:status
//+kubebuilder:resource:scope=Namespaced

// +kubebuilder:printcolumn:name="Primaries",type="integer",JSONPath=".status.readyPrimaries"
// +kubebuilder:printcolumn:name="Secondaries",type="integer",JSONPath=".status.readySecondaries"
// Bind9Cluster is the Schema for the bind9clusters API.
type Bind9Cluster struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   Bind9ClusterSpec   `json:"spec,omitempty"`
	Status Bind9ClusterStatus `json:"status,omitempty"`
}

//+kubebuilder:object:root=true

// Bind9ClusterList contains a list of Bind9Cluster.
type Bind9ClusterList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Bind9Cluster `json:"items"`
}

func init() {
	SchemeBuilder.Register(&Bind9Cluster{}, &Bind9ClusterList{})
}
