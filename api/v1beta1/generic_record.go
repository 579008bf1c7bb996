/*
 * Software Name : bindy
 * SPDX-License-Identifier: Apache-2.0
 */

//nolint:dupl
package v1beta1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
)

// +kubebuilder:object:root=false
// +kubebuilder:object:generate:false

// Record is the common interface satisfied by all eight record kinds, so
// the generic reconcile helper in internal/controller can operate on any of
// them uniformly.
type Record interface {
	runtime.Object
	metav1.Object

	GetObjectMeta() *metav1.ObjectMeta
	GetRecordMeta() RecordMeta
	GetRecordStatus() *RecordStatus
	SetRecordStatus(RecordStatus)
	// RecordKind returns the concrete kind name, e.g. "ARecord".
	RecordKind() string
	// FingerprintPayload returns the kind-specific payload fields (name,
	// ttl and content) that feed the content fingerprint (§4.3). It
	// deliberately excludes owner/metadata fields.
	FingerprintPayload() any
	Copy() Record
}

var (
	_ Record = &ARecord{}
	_ Record = &AAAARecord{}
	_ Record = &CNAMERecord{}
	_ Record = &MXRecord{}
	_ Record = &TXTRecord{}
	_ Record = &NSRecord{}
	_ Record = &SRVRecord{}
	_ Record = &CAARecord{}
)

func (r *ARecord) GetObjectMeta() *metav1.ObjectMeta   { return &r.ObjectMeta }
func (r *ARecord) GetRecordMeta() RecordMeta           { return r.Spec.RecordMeta }
func (r *ARecord) GetRecordStatus() *RecordStatus      { return &r.Status }
func (r *ARecord) SetRecordStatus(s RecordStatus)      { r.Status = s }
func (r *ARecord) RecordKind() string                  { return "ARecord" }
func (r *ARecord) FingerprintPayload() any {
	return struct {
		Name    string
		TTL     uint32
		Address string
	}{r.Spec.Name, r.Spec.TTL, r.Spec.Address}
}
func (r *ARecord) Copy() Record { return r.DeepCopy() }

func (r *AAAARecord) GetObjectMeta() *metav1.ObjectMeta { return &r.ObjectMeta }
func (r *AAAARecord) GetRecordMeta() RecordMeta         { return r.Spec.RecordMeta }
func (r *AAAARecord) GetRecordStatus() *RecordStatus    { return &r.Status }
func (r *AAAARecord) SetRecordStatus(s RecordStatus)    { r.Status = s }
func (r *AAAARecord) RecordKind() string                { return "AAAARecord" }
func (r *AAAARecord) FingerprintPayload() any {
	return struct {
		Name    string
		TTL     uint32
		Address string
	}{r.Spec.Name, r.Spec.TTL, r.Spec.Address}
}
func (r *AAAARecord) Copy() Record { return r.DeepCopy() }

func (r *CNAMERecord) GetObjectMeta() *metav1.ObjectMeta { return &r.ObjectMeta }
func (r *CNAMERecord) GetRecordMeta() RecordMeta         { return r.Spec.RecordMeta }
func (r *CNAMERecord) GetRecordStatus() *RecordStatus    { return &r.Status }
func (r *CNAMERecord) SetRecordStatus(s RecordStatus)    { r.Status = s }
func (r *CNAMERecord) RecordKind() string                { return "CNAMERecord" }
func (r *CNAMERecord) FingerprintPayload() any {
	return struct {
		Name   string
		TTL    uint32
		Target string
	}{r.Spec.Name, r.Spec.TTL, r.Spec.Target}
}
func (r *CNAMERecord) Copy() Record { return r.DeepCopy() }

func (r *MXRecord) GetObjectMeta() *metav1.ObjectMeta { return &r.ObjectMeta }
func (r *MXRecord) GetRecordMeta() RecordMeta         { return r.Spec.RecordMeta }
func (r *MXRecord) GetRecordStatus() *RecordStatus    { return &r.Status }
func (r *MXRecord) SetRecordStatus(s RecordStatus)    { r.Status = s }
func (r *MXRecord) RecordKind() string                { return "MXRecord" }
func (r *MXRecord) FingerprintPayload() any {
	return struct {
		Name     string
		TTL      uint32
		Priority uint16
		Exchange string
	}{r.Spec.Name, r.Spec.TTL, r.Spec.Priority, r.Spec.Exchange}
}
func (r *MXRecord) Copy() Record { return r.DeepCopy() }

func (r *TXTRecord) GetObjectMeta() *metav1.ObjectMeta { return &r.ObjectMeta }
func (r *TXTRecord) GetRecordMeta() RecordMeta         { return r.Spec.RecordMeta }
func (r *TXTRecord) GetRecordStatus() *RecordStatus    { return &r.Status }
func (r *TXTRecord) SetRecordStatus(s RecordStatus)    { r.Status = s }
func (r *TXTRecord) RecordKind() string                { return "TXTRecord" }
func (r *TXTRecord) FingerprintPayload() any {
	return struct {
		Name   string
		TTL    uint32
		Values []string
	}{r.Spec.Name, r.Spec.TTL, r.Spec.Values}
}
func (r *TXTRecord) Copy() Record { return r.DeepCopy() }

func (r *NSRecord) GetObjectMeta() *metav1.ObjectMeta { return &r.ObjectMeta }
func (r *NSRecord) GetRecordMeta() RecordMeta         { return r.Spec.RecordMeta }
func (r *NSRecord) GetRecordStatus() *RecordStatus    { return &r.Status }
func (r *NSRecord) SetRecordStatus(s RecordStatus)    { r.Status = s }
func (r *NSRecord) RecordKind() string                { return "NSRecord" }
func (r *NSRecord) FingerprintPayload() any {
	return struct {
		Name   string
		TTL    uint32
		Target string
	}{r.Spec.Name, r.Spec.TTL, r.Spec.Target}
}
func (r *NSRecord) Copy() Record { return r.DeepCopy() }

func (r *SRVRecord) GetObjectMeta() *metav1.ObjectMeta { return &r.ObjectMeta }
func (r *SRVRecord) GetRecordMeta() RecordMeta         { return r.Spec.RecordMeta }
func (r *SRVRecord) GetRecordStatus() *RecordStatus    { return &r.Status }
func (r *SRVRecord) SetRecordStatus(s RecordStatus)    { r.Status = s }
func (r *SRVRecord) RecordKind() string                { return "SRVRecord" }
func (r *SRVRecord) FingerprintPayload() any {
	return struct {
		Name     string
		TTL      uint32
		Priority uint16
		Weight   uint16
		Port     uint16
		Target   string
	}{r.Spec.Name, r.Spec.TTL, r.Spec.Priority, r.Spec.Weight, r.Spec.Port, r.Spec.Target}
}
func (r *SRVRecord) Copy() Record { return r.DeepCopy() }

func (r *CAARecord) GetObjectMeta() *metav1.ObjectMeta { return &r.ObjectMeta }
func (r *CAARecord) GetRecordMeta() RecordMeta         { return r.Spec.RecordMeta }
func (r *CAARecord) GetRecordStatus() *RecordStatus    { return &r.Status }
func (r *CAARecord) SetRecordStatus(s RecordStatus)    { r.Status = s }
func (r *CAARecord) RecordKind() string                { return "CAARecord" }
func (r *CAARecord) FingerprintPayload() any {
	return struct {
		Name  string
		TTL   uint32
		Flag  uint8
		Tag   string
		Value string
	}{r.Spec.Name, r.Spec.TTL, r.Spec.Flag, r.Spec.Tag, r.Spec.Value}
}
func (r *CAARecord) Copy() Record { return r.DeepCopy() }
