/*
 * Software Name : bindy
 * SPDX-License-Identifier: Apache-2.0
 */

package v1beta1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// RecordMeta carries the fields common to every record kind: its label
// within the zone (or "@" for apex) and TTL.
type RecordMeta struct {
	// Name is the record's label within the zone, or "@" for the apex.
	Name string `json:"name"`
	// TTL of the record, in seconds.
	TTL uint32 `json:"ttl"`
}

// RecordStatus is the status shape shared by every record kind.
type RecordStatus struct {
	// Zone is the name of the DNSZone this record is currently selected
	// into, written only by the zone reconciler (§9 "Membership vs
	// ownership"). Empty when not currently selected.
	// +optional
	Zone string `json:"zone,omitempty"`
	// Fingerprint is the stable digest of the spec fields that influence
	// the on-wire record (§4.3).
	// +optional
	Fingerprint string `json:"fingerprint,omitempty"`
	// LastUpdated is the last time the fingerprint was recomputed and applied.
	// +optional
	LastUpdated *metav1.Time `json:"lastUpdated,omitempty"`
	// Conditions, notably Ready.
	// +optional
	Conditions []metav1.Condition `json:"conditions,omitempty"`
}

// ---- A ----

type ARecordSpec struct {
	RecordMeta `json:",inline"`
	// Address is the IPv4 address.
	// +kubebuilder:validation:Pattern=`^(\d{1,3}\.){3}\d{1,3}$`
	Address string `json:"address"`
}

//+kubebuilder:object:root=true
//+kubebuilder:subresource:status
//+kubebuilder:resource:scope=Namespaced
// +kubebuilder:printcolumn:name="Zone",type="string",JSONPath=".status.zone"
// +kubebuilder:printcolumn:name="Address",type="string",JSONPath=".spec.address"
type ARecord struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`
	Spec              ARecordSpec  `json:"spec,omitempty"`
	Status            RecordStatus `json:"status,omitempty"`
}

//+kubebuilder:object:root=true
type ARecordList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []ARecord `json:"items"`
}

// ---- AAAA ----

type AAAARecordSpec struct {
	RecordMeta `json:",inline"`
	// Address is the IPv6 address.
	Address string `json:"address"`
}

//+kubebuilder:object:root=true
//+kubebuilder:subresource:status
//+kubebuilder:resource:scope=Namespaced
// +kubebuilder:printcolumn:name="Zone",type="string",JSONPath=".status.zone"
// +kubebuilder:printcolumn:name="Address",type="string",JSONPath=".spec.address"
type AAAARecord struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`
	Spec              AAAARecordSpec `json:"spec,omitempty"`
	Status            RecordStatus   `json:"status,omitempty"`
}

//+kubebuilder:object:root=true
type AAAARecordList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []AAAARecord `json:"items"`
}

// ---- CNAME ----

type CNAMERecordSpec struct {
	RecordMeta `json:",inline"`
	// Target is the canonical name this alias points to.
	Target string `json:"target"`
}

//+kubebuilder:object:root=true
//+kubebuilder:subresource:status
//+kubebuilder:resource:scope=Namespaced
// +kubebuilder:printcolumn:name="Zone",type="string",JSONPath=".status.zone"
// +kubebuilder:printcolumn:name="Target",type="string",JSONPath=".spec.target"
type CNAMERecord struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`
	Spec              CNAMERecordSpec `json:"spec,omitempty"`
	Status            RecordStatus    `json:"status,omitempty"`
}

//+kubebuilder:object:root=true
type CNAMERecordList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []CNAMERecord `json:"items"`
}

// ---- MX ----

type MXRecordSpec struct {
	RecordMeta `json:",inline"`
	// Priority (preference) of the mail exchange.
	Priority uint16 `json:"priority"`
	// Exchange is the mail server hostname.
	Exchange string `json:"exchange"`
}

//+kubebuilder:object:root=true
//+kubebuilder:subresource:status
//+kubebuilder:resource:scope=Namespaced
// +kubebuilder:printcolumn:name="Zone",type="string",JSONPath=".status.zone"
// +kubebuilder:printcolumn:name="Exchange",type="string",JSONPath=".spec.exchange"
type MXRecord struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`
	Spec              MXRecordSpec `json:"spec,omitempty"`
	Status            RecordStatus `json:"status,omitempty"`
}

//+kubebuilder:object:root=true
type MXRecordList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []MXRecord `json:"items"`
}

// ---- TXT ----

type TXTRecordSpec struct {
	RecordMeta `json:",inline"`
	// Values is the list of text strings comprising the RRset.
	// +kubebuilder:validation:MinItems=1
	Values []string `json:"values"`
}

//+kubebuilder:object:root=true
//+kubebuilder:subresource:status
//+kubebuilder:resource:scope=Namespaced
// +kubebuilder:printcolumn:name="Zone",type="string",JSONPath=".status.zone"
type TXTRecord struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`
	Spec              TXTRecordSpec `json:"spec,omitempty"`
	Status            RecordStatus  `json:"status,omitempty"`
}

//+kubebuilder:object:root=true
type TXTRecordList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []TXTRecord `json:"items"`
}

// ---- NS ----

type NSRecordSpec struct {
	RecordMeta `json:",inline"`
	// Target is the delegated nameserver hostname.
	Target string `json:"target"`
}

//+kubebuilder:object:root=true
//+kubebuilder:subresource:status
//+kubebuilder:resource:scope=Namespaced
// +kubebuilder:printcolumn:name="Zone",type="string",JSONPath=".status.zone"
// +kubebuilder:printcolumn:name="Target",type="string",JSONPath=".spec.target"
type NSRecord struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`
	Spec              NSRecordSpec `json:"spec,omitempty"`
	Status            RecordStatus `json:"status,omitempty"`
}

//+kubebuilder:object:root=true
type NSRecordList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []NSRecord `json:"items"`
}

// ---- SRV ----

type SRVRecordSpec struct {
	RecordMeta `json:",inline"`
	Priority   uint16 `json:"priority"`
	Weight     uint16 `json:"weight"`
	Port       uint16 `json:"port"`
	Target     string `json:"target"`
}

//+kubebuilder:object:root=true
//+kubebuilder:subresource:status
//+kubebuilder:resource:scope=Namespaced
// +kubebuilder:printcolumn:name="Zone",type="string",JSONPath=".status.zone"
// +kubebuilder:printcolumn:name="Target",type="string",JSONPath=".spec.target"
type SRVRecord struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`
	Spec              SRVRecordSpec `json:"spec,omitempty"`
	Status            RecordStatus  `json:"status,omitempty"`
}

//+kubebuilder:object:root=true
type SRVRecordList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []SRVRecord `json:"items"`
}

// ---- CAA ----

type CAARecordSpec struct {
	RecordMeta `json:",inline"`
	Flag       uint8  `json:"flag"`
	Tag        string `json:"tag"`
	Value      string `json:"value"`
}

//+kubebuilder:object:root=true
//+kubebuilder:subresource:status
//+kubebuilder:resource:scope=Namespaced
// +kubebuilder:printcolumn:name="Zone",type="string",JSONPath=".status.zone"
// +kubebuilder:printcolumn:name="Tag",type="string",JSONPath=".spec.tag"
type CAARecord struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`
	Spec              CAARecordSpec `json:"spec,omitempty"`
	Status            RecordStatus  `json:"status,omitempty"`
}

//+kubebuilder:object:root=true
type CAARecordList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []CAARecord `json:"items"`
}

// RecordFinalizer fans out delete_record to every primary before a record
// object disappears (§4.6 step 7).
const RecordFinalizer = "bindy.firestoned.io/record"

func init() {
	SchemeBuilder.Register(&ARecord{}, &ARecordList{})
	SchemeBuilder.Register(&AAAARecord{}, &AAAARecordList{})
	SchemeBuilder.Register(&CNAMERecord{}, &CNAMERecordList{})
	SchemeBuilder.Register(&MXRecord{}, &MXRecordList{})
	SchemeBuilder.Register(&TXTRecord{}, &TXTRecordList{})
	SchemeBuilder.Register(&NSRecord{}, &NSRecordList{})
	SchemeBuilder.Register(&SRVRecord{}, &SRVRecordList{})
	SchemeBuilder.Register(&CAARecord{}, &CAARecordList{})
}
