/*
 * Software Name : bindy
 * SPDX-License-Identifier: Apache-2.0
 */

package controller

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/types"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"
	"sigs.k8s.io/controller-runtime/pkg/handler"
	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/reconcile"

	bindyv1beta1 "github.com/firestoned/bindy/api/v1beta1"
	"github.com/firestoned/bindy/internal/endpoints"
	"github.com/firestoned/bindy/internal/mgmtclient"
	"github.com/firestoned/bindy/internal/rndc"
	"github.com/firestoned/bindy/internal/selector"
)

// zoneNameIndexField backs the duplicate-zone-name guard (§4.5 step 1).
const zoneNameIndexField = "spec.zoneName"

// ZoneReconciler reconciles a DNSZone object (§4.5).
type ZoneReconciler struct {
	client.Client
	Scheme *runtime.Scheme
	Mgmt   *mgmtclient.Client
}

//+kubebuilder:rbac:groups=bindy.firestoned.io,resources=dnszones,verbs=get;list;watch;create;update;patch;delete
//+kubebuilder:rbac:groups=bindy.firestoned.io,resources=dnszones/status,verbs=get;update;patch
//+kubebuilder:rbac:groups=bindy.firestoned.io,resources=dnszones/finalizers,verbs=update

func (r *ZoneReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	ctx, cancel := context.WithTimeout(ctx, reconcileTimeout)
	defer cancel()

	start := time.Now()
	logger := log.FromContext(ctx)
	logger.Info("Reconcile DNSZone", "DNSZone.Name", req.Name)

	zone := &bindyv1beta1.DNSZone{}
	if err := r.Get(ctx, req.NamespacedName, zone); err != nil {
		return ctrl.Result{}, client.IgnoreNotFound(err)
	}

	res, err := r.reconcileZone(ctx, zone)
	recordReconcileMetric("DNSZone", reconcileOutcome(err, res), start)
	return res, err
}

func (r *ZoneReconciler) reconcileZone(ctx context.Context, zone *bindyv1beta1.DNSZone) (ctrl.Result, error) {
	logger := log.FromContext(ctx)

	if !zone.DeletionTimestamp.IsZero() {
		return r.reconcileDeletion(ctx, zone)
	}

	if !controllerutil.ContainsFinalizer(zone, bindyv1beta1.ZoneFinalizer) {
		controllerutil.AddFinalizer(zone, bindyv1beta1.ZoneFinalizer)
		if err := r.Update(ctx, zone); err != nil {
			return ctrl.Result{}, err
		}
	}

	// Step 1: guard against duplicate zone names.
	var siblings bindyv1beta1.DNSZoneList
	if err := r.List(ctx, &siblings, client.MatchingFields{zoneNameIndexField: zone.Spec.ZoneName}); err != nil {
		return ctrl.Result{}, err
	}
	for _, sibling := range siblings.Items {
		if sibling.Name == zone.Name && sibling.Namespace == zone.Namespace {
			continue
		}
		// The older claim keeps the name; equal creation times go to the
		// lower namespace/name.
		if sibling.CreationTimestamp.Before(&zone.CreationTimestamp) ||
			(sibling.CreationTimestamp.Equal(&zone.CreationTimestamp) && sibling.Namespace+"/"+sibling.Name < zone.Namespace+"/"+zone.Name) {
			return r.publishZoneFailure(ctx, zone, bindyv1beta1.ReasonDuplicateZone, fmt.Sprintf("zone name %q already claimed by %s/%s", zone.Spec.ZoneName, sibling.Namespace, sibling.Name))
		}
	}

	// Step 2: resolve cluster.
	cluster := &bindyv1beta1.Bind9Cluster{}
	if err := r.Get(ctx, types.NamespacedName{Namespace: zone.Namespace, Name: zone.Spec.ClusterRef.Name}, cluster); err != nil {
		if apierrors.IsNotFound(err) {
			if _, perr := r.publishZoneFailure(ctx, zone, bindyv1beta1.ReasonClusterNotFound, fmt.Sprintf("cluster %q not found", zone.Spec.ClusterRef.Name)); perr != nil {
				return ctrl.Result{}, perr
			}
			return ctrl.Result{RequeueAfter: shortRequeue}, nil
		}
		return ctrl.Result{}, err
	}

	// Step 3: resolve endpoints.
	set, err := endpoints.New(r.Client).Resolve(ctx, zone.Namespace, cluster)
	if err != nil {
		if _, ok := err.(*endpoints.NoPrimariesError); ok {
			if _, perr := r.publishZoneFailure(ctx, zone, bindyv1beta1.ReasonEndpointsUnavailable, err.Error()); perr != nil {
				return ctrl.Result{}, perr
			}
			return ctrl.Result{RequeueAfter: shortRequeue}, nil
		}
		return ctrl.Result{}, err
	}

	// Step 4: secondary drift is folded into the config sent below; the
	// previously observed set only matters for status.secondaryIps (step 9).
	secondaryIPs := make([]string, 0, len(set.Secondaries))
	for _, ep := range set.Secondaries {
		secondaryIPs = append(secondaryIPs, ep.IP)
	}

	// Step 5: enumerate members via the selector index.
	members, conflicts, err := r.enumerateMembers(ctx, zone)
	if err != nil {
		return ctrl.Result{}, err
	}

	// Step 6: fan out zone config to every primary.
	nsList := make([]string, 0, len(zone.Spec.Nameservers))
	for _, ns := range zone.Spec.Nameservers {
		nsList = append(nsList, ns.Host)
	}
	soa := mgmtclient.SOA{
		PrimaryNS:    zone.Spec.SOA.PrimaryNS,
		AdminMailbox: zone.Spec.SOA.AdminMailbox,
		Serial:       zone.Spec.SOA.Serial,
		Refresh:      zone.Spec.SOA.Refresh,
		Retry:        zone.Spec.SOA.Retry,
		Expire:       zone.Spec.SOA.Expire,
		NegativeTTL:  zone.Spec.SOA.NegativeTTL,
	}
	updateKeyName := anyKeyName(set.Credentials)

	instanceEntries := make([]bindyv1beta1.PrimarySyncEntry, 0, len(set.Primaries))
	configuredCount := 0
	for _, primary := range set.Primaries {
		state := bindyv1beta1.SyncStateConfigured
		message := ""
		if err := r.Mgmt.EnsurePrimaryZone(ctx, primary, zone.Spec.ZoneName, soa, zone.Spec.DefaultTTL, nsList, nil, secondaryIPs, secondaryIPs, updateKeyName); err != nil {
			logger.Error(err, "ensure_primary_zone failed", "primary", primary)
			classifyAndCountError("DNSZone", classOf(err))
			state = bindyv1beta1.SyncStateFailed
			message = err.Error()
		} else {
			configuredCount++
		}
		instanceEntries = append(instanceEntries, bindyv1beta1.PrimarySyncEntry{
			Instance:           fmt.Sprintf("%s:%d", primary.IP, primary.Port),
			State:              state,
			Message:            message,
			LastTransitionTime: &metav1.Time{Time: time.Now().UTC()},
		})
	}

	// Step 7: assign ownership on member records so their own reconcilers
	// pick up the fan-out (§4.6); clear ownership on records no longer
	// selected.
	if err := r.assignMembership(ctx, zone, members); err != nil {
		return ctrl.Result{}, err
	}

	// Step 8: notify secondaries once at least one primary is configured.
	if configuredCount > 0 && len(set.Primaries) > 0 {
		if err := r.Mgmt.NotifySecondaries(ctx, set.Primaries[0], zone.Spec.ZoneName); err != nil {
			logger.Error(err, "notify secondaries failed (non-fatal)")
		}
	}

	// Step 9: publish status.
	readyRecords := make([]bindyv1beta1.RecordReference, 0, len(members))
	for _, m := range members {
		if isReady(m) {
			readyRecords = append(readyRecords, bindyv1beta1.RecordReference{Kind: m.RecordKind(), Name: m.GetObjectMeta().Name})
		}
	}

	allConfigured := len(set.Primaries) > 0 && configuredCount == len(set.Primaries)
	original := zone.DeepCopy()
	zone.Status.Instances = instanceEntries
	zone.Status.SecondaryIPs = secondaryIPs
	zone.Status.Records = readyRecords
	zone.Status.ObservedGeneration = zone.Generation
	switch {
	case len(conflicts) > 0:
		setReadyCondition(&zone.Status.Conditions, metav1.ConditionFalse, bindyv1beta1.ReasonSelectorConflict, fmt.Sprintf("selectors also matched records already owned by another zone: %s", strings.Join(conflicts, ", ")), zone.Generation)
	case allConfigured:
		setReadyCondition(&zone.Status.Conditions, metav1.ConditionTrue, bindyv1beta1.ReasonSynced, "all primaries configured", zone.Generation)
	default:
		setReadyCondition(&zone.Status.Conditions, metav1.ConditionFalse, bindyv1beta1.ReasonPartialFailure, "one or more primaries failed to configure", zone.Generation)
	}
	if err := r.Status().Patch(ctx, zone, client.MergeFrom(original)); err != nil {
		if apierrors.IsConflict(err) {
			logger.Info("Object has been modified, forcing a new reconciliation")
			return ctrl.Result{Requeue: true}, nil
		}
		return ctrl.Result{}, err
	}

	recordGenerationLag("DNSZone", zone.Generation, zone.Status.ObservedGeneration)
	if allConfigured && len(conflicts) == 0 {
		return ctrl.Result{RequeueAfter: resyncReady}, nil
	}
	return ctrl.Result{RequeueAfter: resyncNotReady}, nil
}

// reconcileDeletion implements §4.5 step 10.
func (r *ZoneReconciler) reconcileDeletion(ctx context.Context, zone *bindyv1beta1.DNSZone) (ctrl.Result, error) {
	logger := log.FromContext(ctx)
	if !controllerutil.ContainsFinalizer(zone, bindyv1beta1.ZoneFinalizer) {
		return ctrl.Result{}, nil
	}

	cluster := &bindyv1beta1.Bind9Cluster{}
	err := r.Get(ctx, types.NamespacedName{Namespace: zone.Namespace, Name: zone.Spec.ClusterRef.Name}, cluster)
	switch {
	case apierrors.IsNotFound(err):
		// Cluster already gone; nothing to delete on primaries.
	case err != nil:
		return ctrl.Result{}, err
	default:
		set, rerr := endpoints.New(r.Client).Resolve(ctx, zone.Namespace, cluster)
		if rerr == nil {
			for _, primary := range set.Primaries {
				if err := r.Mgmt.DeleteZone(ctx, primary, zone.Spec.ZoneName); err != nil {
					logger.Error(err, "delete_zone failed", "primary", primary)
					return ctrl.Result{}, err
				}
			}
		}
	}

	controllerutil.RemoveFinalizer(zone, bindyv1beta1.ZoneFinalizer)
	if err := r.Update(ctx, zone); err != nil {
		return ctrl.Result{}, err
	}
	return ctrl.Result{}, nil
}

func (r *ZoneReconciler) publishZoneFailure(ctx context.Context, zone *bindyv1beta1.DNSZone, reason, message string) (ctrl.Result, error) {
	original := zone.DeepCopy()
	setReadyCondition(&zone.Status.Conditions, metav1.ConditionFalse, reason, message, zone.Generation)
	if err := r.Status().Patch(ctx, zone, client.MergeFrom(original)); err != nil {
		return ctrl.Result{}, err
	}
	return ctrl.Result{}, nil
}

// enumerateMembers builds the selector index across every DNSZone in the
// namespace and returns the records this zone currently owns, plus the
// refs of any records zone's own selectors matched but lost the tie-break
// on to another zone (§3.2 invariant 4, §4.1, §4.5 step 5).
func (r *ZoneReconciler) enumerateMembers(ctx context.Context, zone *bindyv1beta1.DNSZone) (owned []bindyv1beta1.Record, conflicts []string, err error) {
	var zones bindyv1beta1.DNSZoneList
	if err := r.List(ctx, &zones, client.InNamespace(zone.Namespace)); err != nil {
		return nil, nil, err
	}
	idx := selector.NewIndex()
	for _, z := range zones.Items {
		idx.PutZone(selector.ZoneEntry{Namespace: z.Namespace, Name: z.Name, RecordsFrom: z.Spec.RecordsFrom})
	}

	all, err := listAllRecords(ctx, r.Client, zone.Namespace)
	if err != nil {
		return nil, nil, err
	}

	for _, rec := range all {
		entry := selector.RecordEntry{
			Namespace: rec.GetObjectMeta().Namespace,
			Name:      rec.GetObjectMeta().Name,
			Kind:      rec.RecordKind(),
			Labels:    rec.GetObjectMeta().Labels,
		}
		owner, ok, oerr := idx.OwnerZone(entry, selector.DefaultTieBreaker[selector.ZoneEntry])
		if oerr != nil {
			return nil, nil, oerr
		}
		if ok && owner == zone.Name {
			owned = append(owned, rec)
			continue
		}

		matchedHere, merr := selector.Matches(zone.Spec.RecordsFrom, entry.Labels)
		if merr != nil {
			return nil, nil, merr
		}
		if matchedHere {
			conflicts = append(conflicts, recordRef(rec))
		}
	}
	sort.Strings(conflicts)
	return owned, conflicts, nil
}

// assignMembership writes status.zone on every currently-owned member
// record, and clears status.zone on previously-owned records that are no
// longer selected, so each record's own reconciler (§4.6) notices the
// ownership change via a watch event.
func (r *ZoneReconciler) assignMembership(ctx context.Context, zone *bindyv1beta1.DNSZone, members []bindyv1beta1.Record) error {
	owned := make(map[string]bool, len(members))
	for _, m := range members {
		owned[recordRef(m)] = true
		if m.GetRecordStatus().Zone != zone.Name {
			if err := r.patchRecordZone(ctx, m, zone.Name); err != nil {
				return err
			}
		}
	}

	all, err := listAllRecords(ctx, r.Client, zone.Namespace)
	if err != nil {
		return err
	}
	for _, rec := range all {
		if owned[recordRef(rec)] {
			continue
		}
		if rec.GetRecordStatus().Zone == zone.Name {
			if err := r.patchRecordZone(ctx, rec, ""); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *ZoneReconciler) patchRecordZone(ctx context.Context, rec bindyv1beta1.Record, zoneName string) error {
	original := rec.Copy()
	s := rec.GetRecordStatus()
	s.Zone = zoneName
	rec.SetRecordStatus(*s)
	return r.Status().Patch(ctx, rec, client.MergeFrom(original))
}

func recordRef(rec bindyv1beta1.Record) string {
	return rec.RecordKind() + "/" + rec.GetObjectMeta().Name
}

func isReady(rec bindyv1beta1.Record) bool {
	for _, c := range rec.GetRecordStatus().Conditions {
		if c.Type == bindyv1beta1.ConditionReady {
			return c.Status == metav1.ConditionTrue
		}
	}
	return false
}

// anyKeyName picks one resolved credential's key name deterministically
// (lexicographically-first instance name), since every primary in a cluster
// shares the same update-policy key in practice.
func anyKeyName(creds map[string]rndc.Credential) string {
	names := make([]string, 0, len(creds))
	for name := range creds {
		names = append(names, name)
	}
	sort.Strings(names)
	if len(names) == 0 {
		return ""
	}
	return creds[names[0]].KeyName
}

// enqueueZonesInNamespace maps a record or Bind9Instance event to every
// DNSZone in the same namespace, so a zone's reconciler re-runs whenever a
// record it might select, or an instance it depends on, changes (§4.5).
func (r *ZoneReconciler) enqueueZonesInNamespace(ctx context.Context, obj client.Object) []reconcile.Request {
	var zones bindyv1beta1.DNSZoneList
	if err := r.List(ctx, &zones, client.InNamespace(obj.GetNamespace())); err != nil {
		log.FromContext(ctx).Error(err, "list DNSZones for watch mapping")
		return nil
	}
	reqs := make([]reconcile.Request, 0, len(zones.Items))
	for _, z := range zones.Items {
		reqs = append(reqs, reconcile.Request{NamespacedName: types.NamespacedName{Namespace: z.Namespace, Name: z.Name}})
	}
	return reqs
}

// SetupWithManager sets up the controller with the Manager.
func (r *ZoneReconciler) SetupWithManager(mgr ctrl.Manager) error {
	if err := mgr.GetFieldIndexer().IndexField(context.Background(), &bindyv1beta1.DNSZone{}, zoneNameIndexField, func(obj client.Object) []string {
		zone := obj.(*bindyv1beta1.DNSZone)
		return []string{zone.Spec.ZoneName}
	}); err != nil {
		return err
	}
	mapFn := handler.EnqueueRequestsFromMapFunc(r.enqueueZonesInNamespace)
	return ctrl.NewControllerManagedBy(mgr).
		For(&bindyv1beta1.DNSZone{}).
		Watches(&bindyv1beta1.ARecord{}, mapFn).
		Watches(&bindyv1beta1.AAAARecord{}, mapFn).
		Watches(&bindyv1beta1.CNAMERecord{}, mapFn).
		Watches(&bindyv1beta1.MXRecord{}, mapFn).
		Watches(&bindyv1beta1.TXTRecord{}, mapFn).
		Watches(&bindyv1beta1.NSRecord{}, mapFn).
		Watches(&bindyv1beta1.SRVRecord{}, mapFn).
		Watches(&bindyv1beta1.CAARecord{}, mapFn).
		Watches(&bindyv1beta1.Bind9Instance{}, mapFn).
		Complete(r)
}
