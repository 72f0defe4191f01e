package models

import (
	"time"
)

// Role is the exclusive position a user holds on the platform.
type Role string

const (
	RoleReader     Role = "reader"
	RoleEditor     Role = "editor"
	RoleJournalist Role = "journalist"
)

// ValidRoles defines allowed user roles
var ValidRoles = map[Role]bool{
	RoleReader:     true,
	RoleEditor:     true,
	RoleJournalist: true,
}

// User represents a user in the system
type User struct {
	ID        string    `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"`
	Email     string    `json:"email" db:"email"`
	Role      Role      `json:"role" db:"role"`
	Active    bool      `json:"active" db:"active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// SubscriptionKind distinguishes the two subscription sets a reader holds.
type SubscriptionKind string

const (
	SubscriptionPublisher  SubscriptionKind = "publisher"
	SubscriptionJournalist SubscriptionKind = "journalist"
)

// ValidSubscriptionKinds defines allowed subscription kinds
var ValidSubscriptionKinds = map[SubscriptionKind]bool{
	SubscriptionPublisher:  true,
	SubscriptionJournalist: true,
}

// Subscription links a reader to a publisher or journalist they follow.
// Unique per (user, target, kind).
type Subscription struct {
	UserID    string           `json:"user_id" db:"user_id"`
	TargetID  string           `json:"target_id" db:"target_id"`
	Kind      SubscriptionKind `json:"kind" db:"kind"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
}
