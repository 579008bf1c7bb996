/*
 * Software Name : bindy
 * SPDX-License-Identifier: Apache-2.0
 */

// Package mgmtclient is the HTTP client the reconcilers use to talk to the
// per-pod BIND9 sidecar (§4.4, §6). The sidecar's REST surface is bespoke,
// so this client owns its own minimal JSON request/response handling
// behind a small functional-options constructor.
package mgmtclient

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/google/uuid"
)

// Client talks to one sidecar instance at a time; callers construct the
// request with the target Endpoint's address. A single Client is shared
// across every primary/secondary called within a reconciliation.
type Client struct {
	httpClient *http.Client
	token      func() string
	scheme     string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default http.Client (tests substitute one
// pointed at an httptest.Server).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithScheme overrides the default "https" scheme (tests use "http" against
// httptest.NewServer).
func WithScheme(scheme string) Option {
	return func(c *Client) { c.scheme = scheme }
}

// WithStaticToken sets a fixed bearer token rather than reading the pod's
// service-account token file on every call.
func WithStaticToken(token string) Option {
	return func(c *Client) { c.token = func() string { return token } }
}

// defaultServiceAccountTokenPath is where kubelet projects the pod's
// service-account token (§6: "the management client presents the pod's
// service-account token").
const defaultServiceAccountTokenPath = "/var/run/secrets/kubernetes.io/serviceaccount/token"

// New constructs a Client. By default it reads the pod's projected
// service-account token from disk on every request (the token is rotated by
// the kubelet, so it must not be cached long-term) and verifies TLS against
// the platform's trust store.
func New(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{MinVersion: tls.VersionTLS12},
			},
		},
		token:  readServiceAccountToken,
		scheme: "https",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func readServiceAccountToken() string {
	b, err := os.ReadFile(defaultServiceAccountTokenPath)
	if err != nil {
		return ""
	}
	return string(b)
}

// retryPolicy implements §4.4: initial 50ms, multiplier 2, cap 10s, total
// deadline 120s, full jitter (RandomizationFactor 1 draws each wait uniformly
// from zero to twice the current interval).
func retryPolicy() *backoff.ExponentialBackOff {
	return &backoff.ExponentialBackOff{
		InitialInterval:     50 * time.Millisecond,
		Multiplier:          2,
		MaxInterval:         10 * time.Second,
		RandomizationFactor: 1,
	}
}

func (c *Client) url(ep Endpoint, path string) string {
	return fmt.Sprintf("%s://%s:%d%s", c.scheme, ep.IP, ep.Port, path)
}

// doJSON performs a single HTTP round trip with the given method/path/body
// and decodes a 2xx JSON response into out (if non-nil). It returns a
// *StatusError for any non-2xx response so callers can classify it and apply
// the ensure_*/delete_* idempotence rules in §4.4.
func (c *Client) doJSON(ctx context.Context, method string, ep Endpoint, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("mgmtclient: encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(ep, path), body)
	if err != nil {
		return fmt.Errorf("mgmtclient: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if tok := c.token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("mgmtclient: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("mgmtclient: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("mgmtclient: decode response: %w", err)
		}
	}
	return nil
}

// withRetry wraps op with the §4.4 retry policy: transient errors (per
// ClassifyError) are retried with exponential backoff and full jitter up to
// a 120s total deadline; permanent errors stop the retry immediately via
// backoff.Permanent, matching the four-band classification's transient vs
// user-error split.
func withRetry(ctx context.Context, op func() error) error {
	wrapped := func() (struct{}, error) {
		err := op()
		if err == nil {
			return struct{}{}, nil
		}

		var class ErrorClass
		if se, ok := err.(*StatusError); ok {
			class = ClassifyError(&http.Response{StatusCode: se.StatusCode}, nil)
		} else {
			class = ClassifyError(nil, err)
		}
		if class == ClassPermanent {
			return struct{}{}, backoff.Permanent(err)
		}
		return struct{}{}, err
	}
	_, err := backoff.Retry(ctx, wrapped,
		backoff.WithBackOff(retryPolicy()),
		backoff.WithMaxElapsedTime(120*time.Second),
	)
	return err
}
