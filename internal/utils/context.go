// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities used across the
// client: a configured HTTP client, request correlation IDs and type-safe
// context keys.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// RequestIDCtxKey is the key used to store the correlation ID of an outgoing
// request (or a batch of requests) in the context.
var RequestIDCtxKey = contextKey("requestID")

// WithRequestID returns a copy of ctx carrying id. Blank ids are ignored.
//
// Example usage:
//
//	ctx = utils.WithRequestID(ctx, gen.Generate())
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, RequestIDCtxKey, id)
}

// GetRequestIDFromContext retrieves the correlation ID from the context.
//
// Returns the ID and an ok flag:
//   - ok == true  — value is found and is a non-empty string
//   - ok == false — value is missing or has an unexpected type
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(RequestIDCtxKey).(string)
	return id, ok && id != ""
}
