// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"github.com/canonical/company-service/internal/types"
)

// Capability is a requested action level. It is computed per request
// from the operation being performed, never persisted.
type Capability string

const (
	CapabilityView   Capability = "VIEW"
	CapabilityEdit   Capability = "EDIT"
	CapabilityManage Capability = "MANAGE"
)

const (
	ReasonNotMember            = "not a member"
	ReasonInsufficientPosition = "insufficient position"
)

// Decision is the resolver output. A deny always carries a reason,
// since callers surface it to the actor.
type Decision struct {
	Allow      bool
	Reason     string
	IsOwner    bool
	Membership *types.Membership
}

// capabilityMatrix maps position x capability to allow. Unlisted
// combinations deny, so unknown capabilities fail closed.
var capabilityMatrix = map[types.Position]map[Capability]bool{
	types.PositionManager: {
		CapabilityView:   true,
		CapabilityEdit:   true,
		CapabilityManage: true,
	},
	types.PositionSupervisor: {
		CapabilityView:   true,
		CapabilityEdit:   true,
		CapabilityManage: true,
	},
	types.PositionExpert: {
		CapabilityView: true,
		CapabilityEdit: true,
	},
	types.PositionOperator: {
		CapabilityView: true,
	},
	types.PositionWorker: {
		CapabilityView: true,
	},
	types.PositionOther: {
		CapabilityView: true,
	},
}

// decide applies the capability policy to an already resolved
// ownership flag and membership. The membership may be nil.
func decide(isOwner bool, membership *types.Membership, capability Capability) *Decision {
	if isOwner {
		return &Decision{Allow: true, IsOwner: true, Membership: membership}
	}

	if membership == nil || !membership.Effective() {
		return &Decision{Allow: false, Reason: ReasonNotMember, Membership: membership}
	}

	if capabilityMatrix[membership.Position][capability] {
		return &Decision{Allow: true, Membership: membership}
	}

	return &Decision{Allow: false, Reason: ReasonInsufficientPosition, Membership: membership}
}

// decideBasic is the coarse variant used by administrative call
// sites: owner or manager tier only.
func decideBasic(isOwner bool, membership *types.Membership) *Decision {
	if isOwner {
		return &Decision{Allow: true, IsOwner: true, Membership: membership}
	}

	if membership == nil || !membership.Effective() {
		return &Decision{Allow: false, Reason: ReasonNotMember, Membership: membership}
	}

	switch membership.Position {
	case types.PositionManager, types.PositionSupervisor:
		return &Decision{Allow: true, Membership: membership}
	}

	return &Decision{Allow: false, Reason: ReasonInsufficientPosition, Membership: membership}
}
