package kernel

import (
	"fmt"

	"renthub/internal/pkg/errs"
)

// Role is the closed set of party roles recognized by the core.
// Permission checks go through predicates on Actor rather than comparing
// role strings at call sites.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleTenant is a party renting units.
	RoleTenant

	// RoleLandlord is a party owning and letting units.
	RoleLandlord

	// RoleAdmin is an operator with administrative privilege.
	RoleAdmin
)

func getValidRoleStrings() map[Role]string {
	return map[Role]string{
		RoleTenant:   "TENANT",
		RoleLandlord: "LANDLORD",
		RoleAdmin:    "ADMIN",
	}
}

// RoleFromString maps an external role code onto the closed set.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// Validate checks that the role belongs to the closed set.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the external role code, or "UNKNOWN" for invalid values.
func (r Role) String() string {
	if str, ok := getValidRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}

// Actor is the resolved acting party of a core operation: a user identifier
// plus its role. Actors are supplied by the caller; the core never parses
// credentials itself.
type Actor struct {
	userID UUID
	role   Role
}

// NewActor creates an Actor after validating both the user ID and the role.
func NewActor(userID UUID, role Role) (Actor, error) {
	if err := userID.Validate(); err != nil {
		return Actor{}, err
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}
	return Actor{userID: userID, role: role}, nil
}

// UserID returns the acting user's identifier.
func (a Actor) UserID() UUID {
	return a.userID
}

// Role returns the acting user's role.
func (a Actor) Role() Role {
	return a.role
}

// IsAdmin reports whether the actor holds administrative privilege.
func (a Actor) IsAdmin() bool {
	return a.role == RoleAdmin
}

// Is reports whether the actor is the party identified by userID.
func (a Actor) Is(userID UUID) bool {
	return a.userID.IsEqual(userID)
}

// Validate ensures the actor was created via NewActor.
func (a Actor) Validate() error {
	if err := a.userID.Validate(); err != nil {
		return err
	}
	return a.role.Validate()
}
