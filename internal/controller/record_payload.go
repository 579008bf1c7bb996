/*
 * Software Name : bindy
 * SPDX-License-Identifier: Apache-2.0
 */

package controller

import (
	"fmt"

	bindyv1beta1 "github.com/firestoned/bindy/api/v1beta1"
	"github.com/firestoned/bindy/internal/mgmtclient"
)

// dnsType maps a Record's concrete kind to its wire DNS type. Each kind
// carries its own fixed type rather than a free-form field.
func dnsType(rec bindyv1beta1.Record) (string, error) {
	switch rec.(type) {
	case *bindyv1beta1.ARecord:
		return "A", nil
	case *bindyv1beta1.AAAARecord:
		return "AAAA", nil
	case *bindyv1beta1.CNAMERecord:
		return "CNAME", nil
	case *bindyv1beta1.MXRecord:
		return "MX", nil
	case *bindyv1beta1.TXTRecord:
		return "TXT", nil
	case *bindyv1beta1.NSRecord:
		return "NS", nil
	case *bindyv1beta1.SRVRecord:
		return "SRV", nil
	case *bindyv1beta1.CAARecord:
		return "CAA", nil
	default:
		return "", fmt.Errorf("controller: unknown record kind %T", rec)
	}
}

// recordValues renders the kind-specific content fields as the flat string
// slice the sidecar's wire protocol expects (§6).
func recordValues(rec bindyv1beta1.Record) ([]string, error) {
	switch r := rec.(type) {
	case *bindyv1beta1.ARecord:
		return []string{r.Spec.Address}, nil
	case *bindyv1beta1.AAAARecord:
		return []string{r.Spec.Address}, nil
	case *bindyv1beta1.CNAMERecord:
		return []string{r.Spec.Target}, nil
	case *bindyv1beta1.MXRecord:
		return []string{fmt.Sprintf("%d %s", r.Spec.Priority, r.Spec.Exchange)}, nil
	case *bindyv1beta1.TXTRecord:
		return append([]string{}, r.Spec.Values...), nil
	case *bindyv1beta1.NSRecord:
		return []string{r.Spec.Target}, nil
	case *bindyv1beta1.SRVRecord:
		return []string{fmt.Sprintf("%d %d %d %s", r.Spec.Priority, r.Spec.Weight, r.Spec.Port, r.Spec.Target)}, nil
	case *bindyv1beta1.CAARecord:
		return []string{fmt.Sprintf("%d %s %q", r.Spec.Flag, r.Spec.Tag, r.Spec.Value)}, nil
	default:
		return nil, fmt.Errorf("controller: unknown record kind %T", rec)
	}
}

// recordPayload builds the on-wire upsert_record payload for rec (§4.4/§6).
func recordPayload(rec bindyv1beta1.Record) (mgmtclient.RecordPayload, error) {
	typ, err := dnsType(rec)
	if err != nil {
		return mgmtclient.RecordPayload{}, err
	}
	values, err := recordValues(rec)
	if err != nil {
		return mgmtclient.RecordPayload{}, err
	}
	meta := rec.GetRecordMeta()
	return mgmtclient.RecordPayload{
		Name:   meta.Name,
		Type:   typ,
		TTL:    meta.TTL,
		Values: values,
	}, nil
}

// recordKey builds the delete_record key for rec (§4.4/§6).
func recordKey(rec bindyv1beta1.Record) (mgmtclient.RecordKey, error) {
	typ, err := dnsType(rec)
	if err != nil {
		return mgmtclient.RecordKey{}, err
	}
	return mgmtclient.RecordKey{Name: rec.GetRecordMeta().Name, Type: typ}, nil
}
