/*
 * Software Name : bindy
 * SPDX-License-Identifier: Apache-2.0
 */

// Package v1beta1 contains the API schema for the bindy.firestoned.io v1beta1 group.
// +kubebuilder:object:generate=true
// +groupName=bindy.firestoned.io
package v1beta1

import (
	"k8s.io/apimachinery/pkg/runtime/schema"
	"sigs.k8s.io/controller-runtime/pkg/scheme"
)

var (
	// GroupVersion is the group version used to register these objects.
	GroupVersion = schema.GroupVersion{Group: "bindy.firestoned.io", Version: "v1beta1"}

	// SchemeBuilder is used to add go types to the GroupVersionKind scheme.
	SchemeBuilder = &scheme.Builder{GroupVersion: GroupVersion}

	// AddToScheme adds the types in this group-version to the given scheme.
	AddToScheme = SchemeBuilder.AddToScheme
)
