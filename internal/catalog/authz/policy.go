// Package authz evaluates the role-based authorization rules. Decisions are
// pure functions of the actor, the action, and (for owned resources) the
// resource's author; there is no stored policy state.
package authz

import (
	"github.com/critiqhq/critiq/internal/catalog/domain"
	"github.com/critiqhq/critiq/pkg/idx"
)

// Action classifies what a request wants to do to a resource.
type Action int

const (
	ActionList Action = iota
	ActionRetrieve
	ActionCreate
	ActionUpdate
	ActionDelete
)

// IsSafe reports whether the action is read-only.
func (a Action) IsSafe() bool {
	return a == ActionList || a == ActionRetrieve
}

// Actor is the caller identity a decision is made against. The zero value
// is an anonymous caller.
type Actor struct {
	ID            idx.ID
	Role          domain.Role
	Superuser     bool
	Authenticated bool
}

// ActorFor builds an authenticated Actor from a resolved user record.
func ActorFor(u domain.User) Actor {
	return Actor{
		ID:            u.ID,
		Role:          u.Role,
		Superuser:     u.Superuser,
		Authenticated: true,
	}
}

// isAdmin treats superuser as admin uniformly across all rule families.
func (a Actor) isAdmin() bool {
	return a.Authenticated && (a.Role.IsAdmin() || a.Superuser)
}

// AdminOnly allows only admins (or superusers), for any action. Governs the
// user-management resource.
func AdminOnly(actor Actor, _ Action) bool {
	return actor.isAdmin()
}

// AdminOrReadOnly allows safe actions unconditionally and gates mutations
// behind admin. Governs categories, genres and titles.
func AdminOrReadOnly(actor Actor, action Action) bool {
	if action.IsSafe() {
		return true
	}
	return actor.isAdmin()
}

// AuthorOrReadOnly allows safe actions unconditionally; creation requires
// only authentication (authorship is assigned, not chosen); updating or
// deleting an existing instance requires the author, staff, or a superuser.
// Governs reviews and comments.
func AuthorOrReadOnly(actor Actor, action Action, authorID idx.ID) bool {
	if action.IsSafe() {
		return true
	}
	if !actor.Authenticated {
		return false
	}
	if action == ActionCreate {
		return true
	}
	return actor.ID == authorID || actor.Role.IsStaffOrAbove() || actor.Superuser
}
