/*
 * Software Name : bindy
 * SPDX-License-Identifier: Apache-2.0
 */

package mgmtclient

import (
	"context"
	"fmt"
)

// EnsurePrimaryZone is POST /api/v1/zones with zoneType=primary (§6). A 409
// AlreadyExists response from the sidecar is treated as success, per §4.4's
// idempotence rule for ensure_* calls.
func (c *Client) EnsurePrimaryZone(ctx context.Context, ep Endpoint, zoneName string, soa SOA, ttl uint32, nsList, nsIPs, alsoNotify, allowTransfer []string, updateKeyName string) error {
	req := EnsureZoneRequest{
		ZoneName: zoneName,
		ZoneType: ZoneTypePrimary,
		ZoneConfig: ZoneConfig{
			TTL:           ttl,
			SOA:           soa,
			NameServers:   nsList,
			NameServerIPs: nsIPs,
			AlsoNotify:    alsoNotify,
			AllowTransfer: allowTransfer,
		},
		UpdateKeyName: updateKeyName,
	}
	return withRetry(ctx, func() error {
		err := c.doJSON(ctx, "POST", ep, "/api/v1/zones", req, nil)
		if err != nil && IsAlreadyExists(err) {
			return nil
		}
		return err
	})
}

// EnsureSecondaryZone is POST /api/v1/zones with zoneType=secondary (§6).
func (c *Client) EnsureSecondaryZone(ctx context.Context, ep Endpoint, zoneName string, primariesIPs []string) error {
	req := EnsureZoneRequest{
		ZoneName:     zoneName,
		ZoneType:     ZoneTypeSecondary,
		PrimariesIPs: primariesIPs,
	}
	return withRetry(ctx, func() error {
		err := c.doJSON(ctx, "POST", ep, "/api/v1/zones", req, nil)
		if err != nil && IsAlreadyExists(err) {
			return nil
		}
		return err
	})
}

// DeleteZone is DELETE /api/v1/zones/{name} (§6). A 404 NotFound response is
// treated as success, per §4.4's idempotence rule for delete_* calls.
func (c *Client) DeleteZone(ctx context.Context, ep Endpoint, zoneName string) error {
	return withRetry(ctx, func() error {
		err := c.doJSON(ctx, "DELETE", ep, "/api/v1/zones/"+zoneName, nil, nil)
		if err != nil && IsNotFound(err) {
			return nil
		}
		return err
	})
}

// ReloadZone is POST /api/v1/zones/{name}/reload (§6).
func (c *Client) ReloadZone(ctx context.Context, ep Endpoint, zoneName string) error {
	return withRetry(ctx, func() error {
		err := c.doJSON(ctx, "POST", ep, "/api/v1/zones/"+zoneName+"/reload", nil, nil)
		if err != nil && IsNotFound(err) {
			return nil
		}
		return err
	})
}

// NotifySecondaries is POST /api/v1/zones/{name}/notify (§6). NOTIFY is
// explicit: the sidecar never sends it on its own initiative.
func (c *Client) NotifySecondaries(ctx context.Context, ep Endpoint, zoneName string) error {
	return withRetry(ctx, func() error {
		return c.doJSON(ctx, "POST", ep, "/api/v1/zones/"+zoneName+"/notify", nil, nil)
	})
}

// UpsertRecord is POST /api/v1/zones/{name}/records (§6). The sidecar
// implements this as an unconditional RFC-2136 update without prerequisites,
// so the same call succeeds whether the record is being created for the
// first time or re-applied unchanged.
func (c *Client) UpsertRecord(ctx context.Context, ep Endpoint, zoneName string, rec RecordPayload) error {
	return withRetry(ctx, func() error {
		return c.doJSON(ctx, "POST", ep, "/api/v1/zones/"+zoneName+"/records", rec, nil)
	})
}

// DeleteRecord is DELETE /api/v1/zones/{name}/records/{key} (§6). A 404
// NotFound response is treated as success.
func (c *Client) DeleteRecord(ctx context.Context, ep Endpoint, zoneName string, key RecordKey) error {
	path := fmt.Sprintf("/api/v1/zones/%s/records/%s", zoneName, key.Name)
	return withRetry(ctx, func() error {
		err := c.doJSON(ctx, "DELETE", ep, path, nil, nil)
		if err != nil && IsNotFound(err) {
			return nil
		}
		return err
	})
}

type zoneStatusResponse struct {
	Present bool `json:"present"`
}

// ZoneStatus is GET /api/v1/zones/{name}/status (§6), a presence probe.
func (c *Client) ZoneStatus(ctx context.Context, ep Endpoint, zoneName string) (ZonePresence, error) {
	var out zoneStatusResponse
	err := withRetry(ctx, func() error {
		getErr := c.doJSON(ctx, "GET", ep, "/api/v1/zones/"+zoneName+"/status", nil, &out)
		if getErr != nil && IsNotFound(getErr) {
			return nil
		}
		return getErr
	})
	if err != nil {
		return ZoneAbsent, err
	}
	if out.Present {
		return ZonePresent, nil
	}
	return ZoneAbsent, nil
}

// ServerStatus is GET /api/v1/server/status (§6), a reachability probe of a
// sidecar. No reconciler or health check in this repository calls it.
func (c *Client) ServerStatus(ctx context.Context, ep Endpoint) error {
	return withRetry(ctx, func() error {
		return c.doJSON(ctx, "GET", ep, "/api/v1/server/status", nil, nil)
	})
}
