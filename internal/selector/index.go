/*
 * Software Name : bindy
 * SPDX-License-Identifier: Apache-2.0
 */

package selector

import (
	"sync"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// ZoneEntry is the minimal shape the index needs from a DNSZone.
type ZoneEntry struct {
	Namespace   string
	Name        string
	RecordsFrom []metav1.LabelSelector
}

func (z ZoneEntry) GetNamespace() string { return z.Namespace }
func (z ZoneEntry) GetName() string      { return z.Name }

// RecordEntry is the minimal shape the index needs from a record object.
type RecordEntry struct {
	Namespace string
	Name      string
	Kind      string
	Labels    map[string]string
}

// Index holds zone selectors per namespace for zone-for-record and
// records-for-zone derivation (§4.1). Zones are added and removed with
// PutZone/DeleteZone; the zone reconciler builds a fresh Index from a full
// DNSZone list on every reconciliation. Record membership is always
// recomputed against the current label set rather than cached, since records
// change far more often than zone selectors and the match itself is cheap.
type Index struct {
	mu    sync.RWMutex
	zones map[string]map[string]ZoneEntry // namespace -> name -> entry
}

// NewIndex returns an empty Index.
func NewIndex() *Index {
	return &Index{zones: make(map[string]map[string]ZoneEntry)}
}

// PutZone inserts or replaces a zone's selector set.
func (idx *Index) PutZone(z ZoneEntry) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	ns, ok := idx.zones[z.Namespace]
	if !ok {
		ns = make(map[string]ZoneEntry)
		idx.zones[z.Namespace] = ns
	}
	ns[z.Name] = z
}

// DeleteZone removes a zone from the index.
func (idx *Index) DeleteZone(namespace, name string) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	if ns, ok := idx.zones[namespace]; ok {
		delete(ns, name)
		if len(ns) == 0 {
			delete(idx.zones, namespace)
		}
	}
}

// ZonesIn returns every indexed zone in a namespace, for a records-for-zone walk.
func (idx *Index) ZonesIn(namespace string) []ZoneEntry {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	ns := idx.zones[namespace]
	out := make([]ZoneEntry, 0, len(ns))
	for _, z := range ns {
		out = append(out, z)
	}
	return out
}

// OwnerZone implements the record->zones direction of §4.1: among the zones
// indexed in rec's namespace, returns the single zone name selecting rec,
// applying breaker to break ties. ok is false if no indexed zone selects it.
func (idx *Index) OwnerZone(rec RecordEntry, breaker TieBreaker[ZoneEntry]) (name string, ok bool, err error) {
	var candidates []ZoneEntry
	for _, z := range idx.ZonesIn(rec.Namespace) {
		matched, merr := Matches(z.RecordsFrom, rec.Labels)
		if merr != nil {
			return "", false, merr
		}
		if matched {
			candidates = append(candidates, z)
		}
	}
	if len(candidates) == 0 {
		return "", false, nil
	}
	return Owner(candidates, breaker).Name, true, nil
}

// MembersOf implements the zone->records direction of §4.1: given a zone's
// selectors and the candidate records in its namespace, returns every record
// that matches at least one selector.
func MembersOf(sels []metav1.LabelSelector, records []RecordEntry) ([]RecordEntry, error) {
	var out []RecordEntry
	for _, r := range records {
		matched, err := Matches(sels, r.Labels)
		if err != nil {
			return nil, err
		}
		if matched {
			out = append(out, r)
		}
	}
	return out, nil
}
