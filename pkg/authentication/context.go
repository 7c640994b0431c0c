// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import "context"

// Define a private custom type to avoid collisions
type contextKey struct{}

var actorContextKey = contextKey{}

// WithActorID returns a new context with the given actor ID derived from the parent context.
func WithActorID(ctx context.Context, actorID string) context.Context {
	return context.WithValue(ctx, actorContextKey, actorID)
}

// GetActorID retrieves the authenticated actor ID from the context.
// Returns an empty string and false if the actor ID is not present.
func GetActorID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(actorContextKey).(string)
	return id, ok
}
