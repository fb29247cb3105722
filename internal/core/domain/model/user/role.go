package user

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Role is the closed set of user roles. The string value is the wire form.
type Role string

const (
	// RoleAdmin operates the fleet: zones, vehicles and manual transitions.
	RoleAdmin Role = "SUPER_ADMIN"
	// RoleShipper is an MSME user submitting its own orders.
	RoleShipper Role = "MSME"
)

// ParseRole validates a wire value.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if err := r.Validate(); err != nil {
		return "", err
	}
	return r, nil
}

func (r Role) Validate() error {
	switch r {
	case RoleAdmin, RoleShipper:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", string(r)))
	}
}

func (r Role) String() string {
	return string(r)
}
