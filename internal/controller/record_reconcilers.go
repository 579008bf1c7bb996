/*
 * Software Name : bindy
 * SPDX-License-Identifier: Apache-2.0
 */

package controller

import (
	"k8s.io/apimachinery/pkg/runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"

	bindyv1beta1 "github.com/firestoned/bindy/api/v1beta1"
	"github.com/firestoned/bindy/internal/mgmtclient"
)

// NewARecordReconciler, and its seven siblings below, instantiate the
// generic RecordReconciler for one concrete record kind (§4.6) — thin
// constructors wrapping the shared reconcile logic in record_controller.go.

func NewARecordReconciler(cl client.Client, scheme *runtime.Scheme, mgmt *mgmtclient.Client) *RecordReconciler[*bindyv1beta1.ARecord] {
	return &RecordReconciler[*bindyv1beta1.ARecord]{
		Client: cl, Scheme: scheme, Mgmt: mgmt, Kind: "ARecord",
		New: func() *bindyv1beta1.ARecord { return &bindyv1beta1.ARecord{} },
	}
}

func NewAAAARecordReconciler(cl client.Client, scheme *runtime.Scheme, mgmt *mgmtclient.Client) *RecordReconciler[*bindyv1beta1.AAAARecord] {
	return &RecordReconciler[*bindyv1beta1.AAAARecord]{
		Client: cl, Scheme: scheme, Mgmt: mgmt, Kind: "AAAARecord",
		New: func() *bindyv1beta1.AAAARecord { return &bindyv1beta1.AAAARecord{} },
	}
}

func NewCNAMERecordReconciler(cl client.Client, scheme *runtime.Scheme, mgmt *mgmtclient.Client) *RecordReconciler[*bindyv1beta1.CNAMERecord] {
	return &RecordReconciler[*bindyv1beta1.CNAMERecord]{
		Client: cl, Scheme: scheme, Mgmt: mgmt, Kind: "CNAMERecord",
		New: func() *bindyv1beta1.CNAMERecord { return &bindyv1beta1.CNAMERecord{} },
	}
}

func NewMXRecordReconciler(cl client.Client, scheme *runtime.Scheme, mgmt *mgmtclient.Client) *RecordReconciler[*bindyv1beta1.MXRecord] {
	return &RecordReconciler[*bindyv1beta1.MXRecord]{
		Client: cl, Scheme: scheme, Mgmt: mgmt, Kind: "MXRecord",
		New: func() *bindyv1beta1.MXRecord { return &bindyv1beta1.MXRecord{} },
	}
}

func NewTXTRecordReconciler(cl client.Client, scheme *runtime.Scheme, mgmt *mgmtclient.Client) *RecordReconciler[*bindyv1beta1.TXTRecord] {
	return &RecordReconciler[*bindyv1beta1.TXTRecord]{
		Client: cl, Scheme: scheme, Mgmt: mgmt, Kind: "TXTRecord",
		New: func() *bindyv1beta1.TXTRecord { return &bindyv1beta1.TXTRecord{} },
	}
}

func NewNSRecordReconciler(cl client.Client, scheme *runtime.Scheme, mgmt *mgmtclient.Client) *RecordReconciler[*bindyv1beta1.NSRecord] {
	return &RecordReconciler[*bindyv1beta1.NSRecord]{
		Client: cl, Scheme: scheme, Mgmt: mgmt, Kind: "NSRecord",
		New: func() *bindyv1beta1.NSRecord { return &bindyv1beta1.NSRecord{} },
	}
}

func NewSRVRecordReconciler(cl client.Client, scheme *runtime.Scheme, mgmt *mgmtclient.Client) *RecordReconciler[*bindyv1beta1.SRVRecord] {
	return &RecordReconciler[*bindyv1beta1.SRVRecord]{
		Client: cl, Scheme: scheme, Mgmt: mgmt, Kind: "SRVRecord",
		New: func() *bindyv1beta1.SRVRecord { return &bindyv1beta1.SRVRecord{} },
	}
}

func NewCAARecordReconciler(cl client.Client, scheme *runtime.Scheme, mgmt *mgmtclient.Client) *RecordReconciler[*bindyv1beta1.CAARecord] {
	return &RecordReconciler[*bindyv1beta1.CAARecord]{
		Client: cl, Scheme: scheme, Mgmt: mgmt, Kind: "CAARecord",
		New: func() *bindyv1beta1.CAARecord { return &bindyv1beta1.CAARecord{} },
	}
}
