package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/littlelemon/restaurant-api/auth"
	"github.com/littlelemon/restaurant-api/models"
)

func seedOrders(t *testing.T, name string) (*OrderQuery, []models.Order) {
	db := setupOrderTestDB(t, name)

	crewID := uint(7)
	seeded := []models.Order{
		{UserID: 1, Status: false, Total: decimal.RequireFromString("19.00"), Date: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
		{UserID: 1, Status: true, Total: decimal.RequireFromString("5.00"), Date: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC), DeliveryCrewID: &crewID},
		{UserID: 2, Status: false, Total: decimal.RequireFromString("42.00"), Date: time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC), DeliveryCrewID: &crewID},
	}
	for i := range seeded {
		if err := db.Create(&seeded[i]).Error; err != nil {
			t.Fatalf("seed order: %v", err)
		}
	}
	return NewOrderQuery(db), seeded
}

func TestListOrdersScopedByRole(t *testing.T) {
	q, _ := seedOrders(t, "query_scope")

	all, err := q.List(auth.RoleManager, 99, ListParams{})
	assert.NoError(t, err)
	assert.Len(t, all, 3)

	assigned, err := q.List(auth.RoleDeliveryCrew, 7, ListParams{})
	assert.NoError(t, err)
	assert.Len(t, assigned, 2)
	for _, o := range assigned {
		assert.Equal(t, uint(7), *o.DeliveryCrewID)
	}

	own, err := q.List(auth.RoleCustomer, 1, ListParams{})
	assert.NoError(t, err)
	assert.Len(t, own, 2)
	for _, o := range own {
		assert.Equal(t, uint(1), o.UserID)
	}
}

func TestListOrdersStatusFilterPermissive(t *testing.T) {
	q, _ := seedOrders(t, "query_status")

	delivered, err := q.List(auth.RoleManager, 99, ListParams{Status: "TRUE"})
	assert.NoError(t, err)
	assert.Len(t, delivered, 1)
	assert.True(t, delivered[0].Status)

	delivered, err = q.List(auth.RoleManager, 99, ListParams{Status: "1"})
	assert.NoError(t, err)
	assert.Len(t, delivered, 1)

	// Anything that is not "true"/"1" filters for pending; never an error.
	pending, err := q.List(auth.RoleManager, 99, ListParams{Status: "banana"})
	assert.NoError(t, err)
	assert.Len(t, pending, 2)
	for _, o := range pending {
		assert.False(t, o.Status)
	}
}

func TestListOrdersOrdering(t *testing.T) {
	q, _ := seedOrders(t, "query_order")

	// Default is descending by date.
	orders, err := q.List(auth.RoleManager, 99, ListParams{})
	assert.NoError(t, err)
	assert.Equal(t, "2026-01-03", orders[0].Date.Format("2006-01-02"))
	assert.Equal(t, "2026-01-01", orders[2].Date.Format("2006-01-02"))

	byTotal, err := q.List(auth.RoleManager, 99, ListParams{Ordering: "total"})
	assert.NoError(t, err)
	assert.True(t, byTotal[0].Total.Equal(decimal.RequireFromString("5.00")))

	byTotalDesc, err := q.List(auth.RoleManager, 99, ListParams{Ordering: "-total"})
	assert.NoError(t, err)
	assert.True(t, byTotalDesc[0].Total.Equal(decimal.RequireFromString("42.00")))

	// Unknown ordering fields fall back to the default.
	fallback, err := q.List(auth.RoleManager, 99, ListParams{Ordering: "password"})
	assert.NoError(t, err)
	assert.Equal(t, "2026-01-03", fallback[0].Date.Format("2006-01-02"))
}

func TestListOrdersPaging(t *testing.T) {
	q, _ := seedOrders(t, "query_page")

	first, err := q.List(auth.RoleManager, 99, ListParams{Page: "1", PerPage: "2"})
	assert.NoError(t, err)
	assert.Len(t, first, 2)

	second, err := q.List(auth.RoleManager, 99, ListParams{Page: "2", PerPage: "2"})
	assert.NoError(t, err)
	assert.Len(t, second, 1)

	// A page past the end is an empty list, not an error.
	empty, err := q.List(auth.RoleManager, 99, ListParams{Page: "999", PerPage: "10"})
	assert.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestListOrdersRejectsBadPaging(t *testing.T) {
	q, _ := seedOrders(t, "query_badpage")

	_, err := q.List(auth.RoleManager, 99, ListParams{Page: "abc"})
	assert.ErrorIs(t, err, ErrInvalidPageParameter)

	_, err = q.List(auth.RoleManager, 99, ListParams{PerPage: "ten"})
	assert.ErrorIs(t, err, ErrInvalidPageParameter)
}

func TestParseStatusToken(t *testing.T) {
	assert.True(t, ParseStatusToken("true"))
	assert.True(t, ParseStatusToken("True"))
	assert.True(t, ParseStatusToken("TRUE"))
	assert.True(t, ParseStatusToken("1"))
	assert.False(t, ParseStatusToken("false"))
	assert.False(t, ParseStatusToken("0"))
	assert.False(t, ParseStatusToken("yes"))
	assert.False(t, ParseStatusToken("delivered"))
}
