/*
 * Software Name : bindy
 * SPDX-License-Identifier: Apache-2.0
 */

package fingerprint

import "testing"

type payload struct {
	Name    string
	TTL     uint32
	Address string
}

func TestOfIsStableAcrossFieldOrder(t *testing.T) {
	a := payload{Name: "www", TTL: 3600, Address: "192.0.2.1"}
	b := payload{Address: "192.0.2.1", Name: "www", TTL: 3600}

	fa, err := Of(a)
	if err != nil {
		t.Fatalf("Of(a) error = %v", err)
	}
	fb, err := Of(b)
	if err != nil {
		t.Fatalf("Of(b) error = %v", err)
	}
	if fa != fb {
		t.Errorf("Of() not stable across field assignment order: %q != %q", fa, fb)
	}
}

func TestOfChangesWithContent(t *testing.T) {
	a := payload{Name: "www", TTL: 3600, Address: "192.0.2.1"}
	b := payload{Name: "www", TTL: 3600, Address: "192.0.2.2"}

	fa, _ := Of(a)
	fb, _ := Of(b)
	if fa == fb {
		t.Errorf("Of() produced identical digests for different content")
	}
}

func TestOfDeterministicAcrossCalls(t *testing.T) {
	p := payload{Name: "www", TTL: 3600, Address: "192.0.2.1"}
	f1, _ := Of(p)
	f2, _ := Of(p)
	if f1 != f2 {
		t.Errorf("Of() not deterministic: %q != %q", f1, f2)
	}
	if len(f1) != 64 {
		t.Errorf("Of() digest length = %d, want 64 (hex sha256)", len(f1))
	}
}
