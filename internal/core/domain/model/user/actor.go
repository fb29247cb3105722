package user

import "logistics/internal/core/domain/model/kernel"

// Actor is the authenticated caller of an operation.
type Actor struct {
	UserID kernel.UUID
	Email  string
	Role   Role
}

// NewActor returns the actor acting as u.
func NewActor(u *User) Actor {
	return Actor{UserID: u.ID(), Email: u.Email(), Role: u.Role()}
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// CanAccessOrderOf reports whether the actor may read an order owned by ownerID.
func (a Actor) CanAccessOrderOf(ownerID kernel.UUID) bool {
	return a.IsAdmin() || a.UserID.IsEqual(ownerID)
}
