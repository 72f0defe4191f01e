// Package auth holds the principal type and the capability predicates
// gating every mutation endpoint. Predicates are pure functions over
// (principal, capability) with no global state, so tests inject
// principals directly.
package auth

import (
	"github.com/newsroom-platform-api/internal/models"
)

// Principal is the authenticated identity attached to a request by the
// identity middleware. A nil principal always denies.
type Principal struct {
	ID       string
	Username string
	Role     models.Role
}

// Capability names an action class a role may or may not perform.
type Capability string

const (
	// CapAuthorContent covers creating articles and newsletters.
	CapAuthorContent Capability = "author-content"
	// CapReviewContent covers approve/reject decisions.
	CapReviewContent Capability = "review-content"
	// CapSubscribe covers holding publisher/journalist subscription sets.
	CapSubscribe Capability = "subscribe"
)

var roleCapabilities = map[models.Role]map[Capability]bool{
	models.RoleJournalist: {
		CapAuthorContent: true,
	},
	models.RoleEditor: {
		CapReviewContent: true,
	},
	models.RoleReader: {
		CapSubscribe: true,
	},
}

// Can reports whether the principal holds the capability.
func Can(p *Principal, c Capability) bool {
	if p == nil {
		return false
	}
	return roleCapabilities[p.Role][c]
}

// CanMutateContent implements the update/delete rule for content items:
// editors always, journalists only on their own content, everyone else denied.
func CanMutateContent(p *Principal, authorID string) bool {
	if p == nil {
		return false
	}
	switch p.Role {
	case models.RoleEditor:
		return true
	case models.RoleJournalist:
		return p.ID == authorID
	default:
		return false
	}
}

// IsJournalist reports whether the principal holds the journalist role.
func IsJournalist(p *Principal) bool {
	return p != nil && p.Role == models.RoleJournalist
}

// IsEditor reports whether the principal holds the editor role.
func IsEditor(p *Principal) bool {
	return p != nil && p.Role == models.RoleEditor
}

// IsReader reports whether the principal holds the reader role.
func IsReader(p *Principal) bool {
	return p != nil && p.Role == models.RoleReader
}
