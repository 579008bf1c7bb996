/*
 * Software Name : bindy
 * SPDX-License-Identifier: Apache-2.0
 */

// Package fingerprint computes the stable content digest records use to
// short-circuit reconciliation (§4.3): a single comparable value that
// survives a status round-trip, instead of a field-by-field comparison.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Of returns a stable hex digest of payload's canonical JSON encoding.
// json.Marshal writes struct fields in declaration order and sorts map keys,
// so a given payload type (as returned by v1beta1.Record.FingerprintPayload)
// always encodes the same content the same way, whatever order a composite
// literal assigns its fields in.
func Of(payload any) (string, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("fingerprint: marshal payload: %w", err)
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}
