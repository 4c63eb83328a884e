// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// RequestIDHeader carries the correlation ID of every outgoing request.
const RequestIDHeader = "X-Request-ID"

// IDGenerator produces correlation IDs for outgoing requests.
type IDGenerator interface {
	Generate() string
}

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8000", 15*time.Second, utils.NewUUIDGenerator())
//	resp, err := client.R().Get("/portfolio")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient bound to baseURL with the given
// per-request timeout. Retries are disabled.
//
// When ids is non-nil every request gets an X-Request-ID header: the ID
// stored in the request context (see WithRequestID) when present, otherwise
// a freshly generated one. A header set explicitly on the request wins.
func NewHTTPClient(baseURL string, timeout time.Duration, ids IDGenerator) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(0)

	if ids != nil {
		client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			if req.Header.Get(RequestIDHeader) != "" {
				return nil
			}
			id, ok := GetRequestIDFromContext(req.Context())
			if !ok {
				id = ids.Generate()
			}
			req.SetHeader(RequestIDHeader, id)
			return nil
		})
	}

	return &HTTPClient{Client: client}
}
