/*
 * Software Name : bindy
 * SPDX-License-Identifier: Apache-2.0
 */

// Package selector evaluates the label-selector membership rules that tie
// DNSZones to the records they manage (§4.1). It deliberately does not
// hand-roll selector matching: metav1.LabelSelectorAsSelector plus
// labels.Selector.Matches is exactly what every controller in the pack uses.
package selector

import (
	"sort"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/labels"
)

// Matches reports whether lbls satisfies at least one of the selectors. An
// empty selector slice matches nothing, never everything, so a zone with no
// recordsFrom entries selects no records rather than capturing the whole
// namespace.
func Matches(sels []metav1.LabelSelector, lbls map[string]string) (bool, error) {
	if len(sels) == 0 {
		return false, nil
	}
	set := labels.Set(lbls)
	for _, s := range sels {
		sel, err := metav1.LabelSelectorAsSelector(&s)
		if err != nil {
			return false, err
		}
		if sel.Matches(set) {
			return true, nil
		}
	}
	return false, nil
}

// Named is the minimal shape a tie-break candidate needs.
type Named interface {
	GetNamespace() string
	GetName() string
}

// TieBreaker orders two candidate owning zones in the same namespace that
// both select the same record; it must return true iff a sorts before b.
// The default is (namespace, name) lexicographic order (§3.2.4, §9 Open
// Question: "implementors should keep the rule pluggable").
type TieBreaker[T Named] func(a, b T) bool

// DefaultTieBreaker orders by namespace then name.
func DefaultTieBreaker[T Named](a, b T) bool {
	if a.GetNamespace() != b.GetNamespace() {
		return a.GetNamespace() < b.GetNamespace()
	}
	return a.GetName() < b.GetName()
}

// Owner picks the single winning candidate among a non-empty slice of
// zones that all select the same record, using breaker to order ties.
func Owner[T Named](candidates []T, breaker TieBreaker[T]) T {
	sorted := make([]T, len(candidates))
	copy(sorted, candidates)
	if breaker == nil {
		breaker = DefaultTieBreaker[T]
	}
	sort.Slice(sorted, func(i, j int) bool { return breaker(sorted[i], sorted[j]) })
	return sorted[0]
}
