package auth

// Action enumerates everything the policy table rules on. Write scopes are
// enumerated per role rather than inherited: Manager being allowed to update a
// whole order does not flow from the crew's status-only permission, and the
// Customer's right to place orders is not shared upward.
type Action int

const (
	ActionBrowseMenu Action = iota
	ActionWriteMenu
	ActionPlaceOrder
	ActionViewOrder
	ActionUpdateOrder
	ActionUpdateOrderStatus
	ActionDeleteOrder
	ActionManageGroups
)

// Decide is the authorization table: (role, action, ownership) -> allow.
// It is a pure function; list scoping (which orders a role may see) lives in
// the order query service, not here.
func Decide(role Role, action Action, isOwner bool) bool {
	switch action {
	case ActionBrowseMenu:
		return true
	case ActionWriteMenu, ActionDeleteOrder, ActionUpdateOrder, ActionManageGroups:
		return role == RoleManager
	case ActionPlaceOrder:
		return role == RoleCustomer
	case ActionUpdateOrderStatus:
		return role == RoleManager || role == RoleDeliveryCrew
	case ActionViewOrder:
		if role == RoleManager || role == RoleDeliveryCrew {
			return true
		}
		return isOwner
	}
	return false
}
