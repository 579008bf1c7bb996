/*
 * Software Name : bindy
 * SPDX-License-Identifier: Apache-2.0
 */

package v1beta1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// InstanceRole is the immutable role of a Bind9Instance (invariant 2).
// +kubebuilder:validation:Enum:=Primary;Secondary
type InstanceRole string

const (
	RolePrimary   InstanceRole = "Primary"
	RoleSecondary InstanceRole = "Secondary"
)

// Bind9InstanceSpec defines the desired state of a single BIND9 deployable unit.
type Bind9InstanceSpec struct {
	// ClusterRef is the owning Bind9Cluster.
	ClusterRef ClusterReference `json:"clusterRef"`
	// Role of this instance. Immutable after creation.
	// +kubebuilder:validation:XValidation:rule="self == oldSelf",message="role is immutable"
	Role InstanceRole `json:"role"`
	// Replicas is the desired pod count for this instance.
	// +kubebuilder:validation:Minimum=0
	Replicas int32 `json:"replicas"`
	// WorkloadOverride optionally overrides the cluster role's workload config.
	// +optional
	WorkloadOverride *WorkloadConfig `json:"workloadOverride,omitempty"`
	// RndcKeyPolicy optionally overrides the role/cluster RNDC credential policy.
	// +optional
	RndcKeyPolicy *RndcKeyPolicy `json:"rndcKeyPolicy,omitempty"`
}

// RndcRotationStatus tracks an operator-managed RNDC credential's lifecycle.
type RndcRotationStatus struct {
	// CreatedAt is when the current secret was generated.
	// +optional
	CreatedAt *metav1.Time `json:"createdAt,omitempty"`
	// RotateAt is when the current secret becomes eligible for rotation.
	// +optional
	RotateAt *metav1.Time `json:"rotateAt,omitempty"`
	// RotationCount counts how many times this instance's key has rotated.
	// +optional
	RotationCount int32 `json:"rotationCount,omitempty"`
}

// Bind9InstanceStatus is the observed state of a Bind9Instance.
type Bind9InstanceStatus struct {
	// Ready is true once the rendered workload reports all replicas ready.
	// +optional
	Ready bool `json:"ready,omitempty"`
	// ReadyReplicas rolled up from the rendered workload.
	// +optional
	ReadyReplicas int32 `json:"readyReplicas,omitempty"`
	// ObservedGeneration is the generation last successfully reconciled.
	// +optional
	ObservedGeneration int64 `json:"observedGeneration,omitempty"`
	// Rotation describes the operator-managed RNDC credential's lifecycle,
	// nil when the instance uses a referenced (user-managed) secret.
	// +optional
	Rotation *RndcRotationStatus `json:"rotation,omitempty"`
	// Conditions, notably Ready.
	// +optional
	Conditions []metav1.Condition `json:"conditions,omitempty"`
}

//+kubebuilder:object:root=true
//+kubebuilder:subresource:status
//+kubebuilder:resource:scope=Namespaced

// +kubebuilder:printcolumn:name="Role",type="string",JSONPath=".spec.role"
// +kubebuilder:printcolumn:name="Ready",type="boolean",JSONPath=".status.ready"
// +kubebuilder:printcolumn:name="Cluster",type="string",JSONPath=".spec.clusterRef.name"
// Bind9Instance is the Schema for the bind9instances API.
type Bind9Instance struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   Bind9InstanceSpec   `json:"spec,omitempty"`
	Status Bind9InstanceStatus `json:"status,omitempty"`
}

//+kubebuilder:object:root=true

// Bind9InstanceList contains a list of Bind9Instance.
type Bind9InstanceList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Bind9Instance `json:"items"`
}

func init() {
	SchemeBuilder.Register(&Bind9Instance{}, &Bind9InstanceList{})
}
