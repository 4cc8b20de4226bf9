// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
)

type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// RequestIDCtxKey carries a caller-chosen X-Request-ID through a context.
var RequestIDCtxKey = contextKey("requestID")

// WithRequestID returns a copy of ctx whose outgoing API requests carry id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDCtxKey, id)
}

// GetRequestIDFromContext returns the request id stored by [WithRequestID].
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(RequestIDCtxKey).(string)
	return id, ok && id != ""
}
