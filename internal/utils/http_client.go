// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"github.com/go-resty/resty/v2"
)

// RequestIDHeader is set on every outgoing request.
const RequestIDHeader = "X-Request-ID"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Every request sent through it carries an [RequestIDHeader]: the id stored
// in the request context by [WithRequestID], or a fresh UUIDv7.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent client with its own connection pool.
func NewHTTPClient() *HTTPClient {
	ids := NewUUIDGenerator()

	client := resty.New().
		SetHeader("Accept", "application/json").
		OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
			if r.Header.Get(RequestIDHeader) != "" {
				return nil
			}
			id, ok := GetRequestIDFromContext(r.Context())
			if !ok {
				id = ids.Generate()
			}
			r.SetHeader(RequestIDHeader, id)
			return nil
		})

	return &HTTPClient{Client: client}
}
