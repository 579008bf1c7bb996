/*
 * Software Name : bindy
 * SPDX-License-Identifier: Apache-2.0
 */

package mgmtclient

// Endpoint identifies one sidecar to talk to: a pod IP and the named "http"
// container port read from its Endpoints object (§4.2 — ports are never
// hardcoded).
type Endpoint struct {
	IP   string
	Port int32
}

// ZoneType mirrors the sidecar's zoneType enum (§6).
type ZoneType string

const (
	ZoneTypePrimary   ZoneType = "primary"
	ZoneTypeSecondary ZoneType = "secondary"
)

// SOA carries the authoritative SOA fields sent in a primary zone's config.
type SOA struct {
	PrimaryNS    string `json:"primaryNs"`
	AdminMailbox string `json:"adminMailbox"`
	Serial       uint32 `json:"serial"`
	Refresh      uint32 `json:"refresh"`
	Retry        uint32 `json:"retry"`
	Expire       uint32 `json:"expire"`
	NegativeTTL  uint32 `json:"negativeTtl"`
}

// ZoneConfig is the request body shape of POST /api/v1/zones (§6).
type ZoneConfig struct {
	TTL            uint32   `json:"ttl"`
	SOA            SOA      `json:"soa"`
	NameServers    []string `json:"nameServers"`
	NameServerIPs  []string `json:"nameServerIps,omitempty"`
	AlsoNotify     []string `json:"alsoNotify,omitempty"`
	AllowTransfer  []string `json:"allowTransfer,omitempty"`
}

// EnsureZoneRequest is the full POST /api/v1/zones body.
type EnsureZoneRequest struct {
	ZoneName      string     `json:"zoneName"`
	ZoneType      ZoneType   `json:"zoneType"`
	ZoneConfig    ZoneConfig `json:"zoneConfig"`
	UpdateKeyName string     `json:"updateKeyName,omitempty"`
	PrimariesIPs  []string   `json:"primariesIps,omitempty"`
}

// RecordPayload is the on-wire shape of a single record (§4.4's "record"
// parameter to upsert_record), kind-agnostic: Values carries whatever
// content strings the kind needs (a single address, a single target, a set
// of TXT strings, etc).
type RecordPayload struct {
	Name   string   `json:"name"`
	Type   string   `json:"type"`
	TTL    uint32   `json:"ttl"`
	Values []string `json:"values"`
}

// RecordKey identifies a record for deletion (§4.4's record_key parameter).
type RecordKey struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// ZonePresence is the outcome of zone_status (§4.4).
type ZonePresence int

const (
	ZoneAbsent ZonePresence = iota
	ZonePresent
)
