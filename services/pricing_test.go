package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeLineSnapshotsUnitPrice(t *testing.T) {
	price := decimal.RequireFromString("8.00")

	unit, line, err := ComputeLine(price, 2)
	assert.NoError(t, err)
	assert.True(t, unit.Equal(price), "unit price must equal the menu price")
	assert.True(t, line.Equal(decimal.RequireFromString("16.00")))
}

func TestComputeLineQuantityOne(t *testing.T) {
	price := decimal.RequireFromString("3.00")

	unit, line, err := ComputeLine(price, 1)
	assert.NoError(t, err)
	assert.True(t, unit.Equal(price))
	assert.True(t, line.Equal(price))
}

func TestComputeLineExactDecimal(t *testing.T) {
	// 0.10 * 3 must be exactly 0.30, no float drift.
	price := decimal.RequireFromString("0.10")

	_, line, err := ComputeLine(price, 3)
	assert.NoError(t, err)
	assert.Equal(t, "0.3", line.String())
}

func TestComputeLineRejectsInvalidQuantity(t *testing.T) {
	price := decimal.RequireFromString("5.00")

	for _, qty := range []int{0, -1, -100} {
		_, _, err := ComputeLine(price, qty)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	}
}
