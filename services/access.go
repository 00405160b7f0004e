package services

import "github.com/yamdb-api/models"

// Actor is the caller of a service operation; nil means anonymous
type Actor struct {
	ID       uint
	Username string
	Role     models.Role
}

// Authenticated reports whether the actor is a known user
func (a *Actor) Authenticated() bool {
	return a != nil && a.ID != 0
}

// IsAdmin reports admin-tier actors
func (a *Actor) IsAdmin() bool {
	return a.Authenticated() && a.Role.IsAdmin()
}

// CanModify allows the author or a moderator-tier actor
func (a *Actor) CanModify(authorID uint) bool {
	if !a.Authenticated() {
		return false
	}
	return a.ID == authorID || a.Role.IsModerator()
}

// RequireAuthenticated fails for anonymous callers
func RequireAuthenticated(a *Actor) error {
	if !a.Authenticated() {
		return ErrUnauthorized
	}
	return nil
}

// RequireAdmin gates admin-tier writes
func RequireAdmin(a *Actor) error {
	if !a.Authenticated() {
		return ErrUnauthorized
	}
	if !a.Role.IsAdmin() {
		return ErrForbidden
	}
	return nil
}

// RequireAuthorOrModerator gates review and comment mutations
func RequireAuthorOrModerator(a *Actor, authorID uint) error {
	if !a.Authenticated() {
		return ErrUnauthorized
	}
	if !a.CanModify(authorID) {
		return ErrForbidden
	}
	return nil
}
