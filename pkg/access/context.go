// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"

	"github.com/canonical/company-service/internal/types"
)

// Context carries the resolved relationship between the calling actor
// and the target company for the remainder of one request. It is
// bound per request and never crosses request boundaries.
type Context struct {
	Company    *types.Company
	IsOwner    bool
	Membership *types.Membership
}

type contextKey struct{}

var accessContextKey = contextKey{}

// WithContext returns a child context carrying the resolved access context.
func WithContext(ctx context.Context, ac *Context) context.Context {
	return context.WithValue(ctx, accessContextKey, ac)
}

// FromContext retrieves the access context bound by BindContext or the
// CompanyContext middleware.
func FromContext(ctx context.Context) (*Context, bool) {
	ac, ok := ctx.Value(accessContextKey).(*Context)
	return ac, ok
}
