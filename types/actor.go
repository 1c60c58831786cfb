package types

import "salon-booking/constants"

// Actor identifies the authenticated caller of a request.
type Actor struct {
	UserID uint
	Role   string
}

// IsStaff reports whether the actor is scoped to their own performed services.
func (a Actor) IsStaff() bool {
	return a.Role == constants.RoleStaff
}
