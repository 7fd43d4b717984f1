package services

import "errors"

// Sentinel errors for the cart/order domain. Controllers map these onto HTTP
// statuses; the messages are what the client sees in the response envelope.
var (
	ErrMenuItemNotFound     = errors.New("menu item not found")
	ErrOrderNotFound        = errors.New("order not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrEmptyCart            = errors.New("cart is empty")
	ErrForbidden            = errors.New("you do not have permission to perform this action")
	ErrInvalidQuantity      = errors.New("quantity must be an integer greater than or equal to 1")
	ErrInvalidFieldSet      = errors.New("delivery crew may update only the status field")
	ErrUnknownField         = errors.New("unrecognized order field")
	ErrNotDeliveryCrew      = errors.New("assigned user is not delivery crew")
	ErrInvalidDate          = errors.New("date must be formatted as YYYY-MM-DD")
	ErrInvalidPageParameter = errors.New("page and perpage must be integers")
)
