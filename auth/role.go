package auth

import "strings"

// Role is the closed set of access tiers. A request resolves its role exactly
// once, in the auth middleware, from the role claim carried by the JWT.
type Role string

const (
	RoleCustomer     Role = "customer"
	RoleDeliveryCrew Role = "delivery_crew"
	RoleManager      Role = "manager"
)

// ParseRole maps a stored role string to a Role. Unknown or empty strings
// resolve to Customer, the lowest tier.
func ParseRole(s string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleManager:
		return RoleManager
	case RoleDeliveryCrew:
		return RoleDeliveryCrew
	default:
		return RoleCustomer
	}
}

func (r Role) String() string {
	return string(r)
}
