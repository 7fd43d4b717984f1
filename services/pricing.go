package services

import "github.com/shopspring/decimal"

// ComputeLine derives the frozen prices for one cart line. The unit price is a
// copy of the menu item price, not a reference: once a line exists, menu price
// changes never reach it. Decimal arithmetic keeps currency exact.
func ComputeLine(menuItemPrice decimal.Decimal, quantity int) (unitPrice, linePrice decimal.Decimal, err error) {
	if quantity < 1 {
		return decimal.Decimal{}, decimal.Decimal{}, ErrInvalidQuantity
	}
	unitPrice = menuItemPrice
	linePrice = unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	return unitPrice, linePrice, nil
}
