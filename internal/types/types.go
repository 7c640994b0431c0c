// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// Position is the role a member holds inside a company.
type Position string

const (
	PositionManager    Position = "MANAGER"
	PositionSupervisor Position = "SUPERVISOR"
	PositionExpert     Position = "EXPERT"
	PositionOperator   Position = "OPERATOR"
	PositionWorker     Position = "WORKER"
	PositionOther      Position = "OTHER"
)

// Positions lists every recognized position value.
var Positions = []Position{
	PositionManager,
	PositionSupervisor,
	PositionExpert,
	PositionOperator,
	PositionWorker,
	PositionOther,
}

func (p Position) Valid() bool {
	for _, known := range Positions {
		if p == known {
			return true
		}
	}
	return false
}

// MemberStatus is the secondary membership state, on top of the is_active flag.
type MemberStatus string

const (
	MemberStatusActive    MemberStatus = "ACTIVE"
	MemberStatusInactive  MemberStatus = "INACTIVE"
	MemberStatusSuspended MemberStatus = "SUSPENDED"
)

func (s MemberStatus) Valid() bool {
	switch s {
	case MemberStatusActive, MemberStatusInactive, MemberStatusSuspended:
		return true
	}
	return false
}

// InvitationStatus is the invitation lifecycle state.
// CANCELLED is a deliberate owner withdrawal; EXPIRED is a time-based lapse.
type InvitationStatus string

const (
	InvitationPending   InvitationStatus = "PENDING"
	InvitationAccepted  InvitationStatus = "ACCEPTED"
	InvitationRejected  InvitationStatus = "REJECTED"
	InvitationExpired   InvitationStatus = "EXPIRED"
	InvitationCancelled InvitationStatus = "CANCELLED"
)

// Terminal reports whether no further transition out of the status is possible.
func (s InvitationStatus) Terminal() bool {
	return s != InvitationPending
}

type NotificationType string

const (
	NotificationInvitation NotificationType = "INVITATION"
	NotificationSystem     NotificationType = "SYSTEM"
	NotificationWarning    NotificationType = "WARNING"
)

// Actor is an authenticated identity, backed by the identity store.
type Actor struct {
	ID           string    `db:"id"`
	MobileNumber string    `db:"mobile_number"`
	Name         string    `db:"name"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	IsActive     bool      `db:"is_active"`
	CreatedAt    time.Time `db:"created_at"`
}

// DisplayName resolves a printable name, preferring the explicit name,
// then first/last, then the mobile handle.
func (a *Actor) DisplayName() string {
	if a.Name != "" {
		return a.Name
	}
	if a.FirstName != "" || a.LastName != "" {
		if a.FirstName == "" {
			return a.LastName
		}
		if a.LastName == "" {
			return a.FirstName
		}
		return a.FirstName + " " + a.LastName
	}
	return a.MobileNumber
}

// Company is the tenant boundary. Exactly one owner; ownership grants
// every capability unconditionally.
type Company struct {
	ID            string    `db:"id"`
	OwnerID       string    `db:"owner_id"`
	Name          string    `db:"name"`
	ActivityField string    `db:"activity_field"`
	IsActive      bool      `db:"is_active"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

type Department struct {
	ID            string    `db:"id"`
	CompanyID     string    `db:"company_id"`
	Name          string    `db:"name"`
	EmployeeCount int       `db:"employee_count"`
	Description   string    `db:"description"`
	IsActive      bool      `db:"is_active"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

// Membership binds an actor to a company. At most one row per
// (company, actor) pair, enforced by a unique constraint.
type Membership struct {
	ID           string       `db:"id"`
	CompanyID    string       `db:"company_id"`
	ActorID      string       `db:"actor_id"`
	DepartmentID *string      `db:"department_id"`
	Position     Position     `db:"position"`
	Status       MemberStatus `db:"status"`
	JoinDate     time.Time    `db:"join_date"`
	LeaveDate    *time.Time   `db:"leave_date"`
	IsActive     bool         `db:"is_active"`
	CreatedAt    time.Time    `db:"created_at"`
	UpdatedAt    time.Time    `db:"updated_at"`
}

// Effective reports whether the membership currently grants access.
// Both the boolean flag and the status must agree; SUSPENDED and
// INACTIVE members are denied even while is_active is still true.
func (m *Membership) Effective() bool {
	return m.IsActive && m.Status == MemberStatusActive
}

// Invitation is an offer of membership, addressed either to an existing
// actor or to a bare mobile handle.
type Invitation struct {
	ID             string           `db:"id"`
	CompanyID      string           `db:"company_id"`
	InvitedActorID *string          `db:"invited_actor_id"`
	InvitedMobile  string           `db:"invited_mobile"`
	InviterID      *string          `db:"inviter_id"`
	DepartmentID   *string          `db:"department_id"`
	Position       Position         `db:"position"`
	Status         InvitationStatus `db:"status"`
	Message        string           `db:"message"`
	Token          string           `db:"token"`
	CreatedAt      time.Time        `db:"created_at"`
	ExpiresAt      time.Time        `db:"expires_at"`
	RespondedAt    *time.Time       `db:"responded_at"`
}

// IsExpired is computed on read; storage keeps status PENDING until a
// write path observes the lapse. Only pending invitations can expire.
func (i *Invitation) IsExpired(now time.Time) bool {
	if i.ExpiresAt.IsZero() {
		return false
	}
	if i.Status != InvitationPending {
		return false
	}
	return now.After(i.ExpiresAt)
}

// IsActive reports whether the invitation can still be responded to.
func (i *Invitation) IsActive(now time.Time) bool {
	return i.Status == InvitationPending && !i.IsExpired(now)
}

type Notification struct {
	ID                string           `db:"id"`
	ActorID           string           `db:"actor_id"`
	Title             string           `db:"title"`
	Message           string           `db:"message"`
	Type              NotificationType `db:"notification_type"`
	IsRead            bool             `db:"is_read"`
	RelatedObjectID   *string          `db:"related_object_id"`
	RelatedObjectType string           `db:"related_object_type"`
	CreatedAt         time.Time        `db:"created_at"`
}

// InvitationStats aggregates invitation counts per status for a company.
type InvitationStats struct {
	Total     int
	Pending   int
	Accepted  int
	Rejected  int
	Expired   int
	Cancelled int
}
