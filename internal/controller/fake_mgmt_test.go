/*
 * Software Name : bindy
 * SPDX-License-Identifier: Apache-2.0
 */

package controller

import (
	"bytes"
	"io"
	"net/http"
)

// fakeManagementTransport answers every request with 200 and an empty JSON
// body, standing in for the real BIND9 sidecar so envtest-driven reconciler
// tests exercise the full reconcile loop without a live management server.
type fakeManagementTransport struct{}

func (fakeManagementTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(bytes.NewReader([]byte("{}"))),
		Header:     make(http.Header),
		Request:    req,
	}, nil
}

func newFakeManagementHTTPClient() *http.Client {
	return &http.Client{Transport: fakeManagementTransport{}}
}
