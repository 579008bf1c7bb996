/*
 * Software Name : bindy
 * SPDX-License-Identifier: Apache-2.0
 */

package controller

import (
	"context"

	"sigs.k8s.io/controller-runtime/pkg/client"

	bindyv1beta1 "github.com/firestoned/bindy/api/v1beta1"
)

// listAllRecords lists every record object of every kind in namespace, for
// the zone reconciler's membership enumeration (§4.1, §4.5 step 5).
func listAllRecords(ctx context.Context, cl client.Client, namespace string) ([]bindyv1beta1.Record, error) {
	var out []bindyv1beta1.Record

	var aList bindyv1beta1.ARecordList
	if err := cl.List(ctx, &aList, client.InNamespace(namespace)); err != nil {
		return nil, err
	}
	for i := range aList.Items {
		out = append(out, &aList.Items[i])
	}

	var aaaaList bindyv1beta1.AAAARecordList
	if err := cl.List(ctx, &aaaaList, client.InNamespace(namespace)); err != nil {
		return nil, err
	}
	for i := range aaaaList.Items {
		out = append(out, &aaaaList.Items[i])
	}

	var cnameList bindyv1beta1.CNAMERecordList
	if err := cl.List(ctx, &cnameList, client.InNamespace(namespace)); err != nil {
		return nil, err
	}
	for i := range cnameList.Items {
		out = append(out, &cnameList.Items[i])
	}

	var mxList bindyv1beta1.MXRecordList
	if err := cl.List(ctx, &mxList, client.InNamespace(namespace)); err != nil {
		return nil, err
	}
	for i := range mxList.Items {
		out = append(out, &mxList.Items[i])
	}

	var txtList bindyv1beta1.TXTRecordList
	if err := cl.List(ctx, &txtList, client.InNamespace(namespace)); err != nil {
		return nil, err
	}
	for i := range txtList.Items {
		out = append(out, &txtList.Items[i])
	}

	var nsList bindyv1beta1.NSRecordList
	if err := cl.List(ctx, &nsList, client.InNamespace(namespace)); err != nil {
		return nil, err
	}
	for i := range nsList.Items {
		out = append(out, &nsList.Items[i])
	}

	var srvList bindyv1beta1.SRVRecordList
	if err := cl.List(ctx, &srvList, client.InNamespace(namespace)); err != nil {
		return nil, err
	}
	for i := range srvList.Items {
		out = append(out, &srvList.Items[i])
	}

	var caaList bindyv1beta1.CAARecordList
	if err := cl.List(ctx, &caaList, client.InNamespace(namespace)); err != nil {
		return nil, err
	}
	for i := range caaList.Items {
		out = append(out, &caaList.Items[i])
	}

	return out, nil
}
