package services

import (
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/littlelemon/restaurant-api/auth"
	"github.com/littlelemon/restaurant-api/models"
)

const (
	defaultPage     = 1
	defaultPerPage  = 10
	defaultOrdering = "date desc"
)

// OrderQuery lists orders scoped by role, with optional status filter,
// client-chosen ordering and page windowing.
type OrderQuery struct {
	DB *gorm.DB
}

func NewOrderQuery(db *gorm.DB) *OrderQuery {
	return &OrderQuery{DB: db}
}

// ListParams carries the raw query string values; parsing and defaulting
// happen here so the policy is testable away from gin.
type ListParams struct {
	Status   string
	Ordering string
	Page     string
	PerPage  string
}

// ParseStatusToken is deliberately permissive: "true" and "1" (any case) mean
// delivered, every other value means pending. An unrecognized token is not a
// validation error.
func ParseStatusToken(s string) bool {
	return strings.EqualFold(s, "true") || s == "1"
}

var orderingColumns = map[string]string{
	"id":     "id",
	"date":   "date",
	"total":  "total",
	"status": "status",
}

// orderingClause whitelists the sortable columns. A leading '-' flips to
// descending; anything outside the whitelist falls back to the default.
func orderingClause(ordering string) string {
	field := strings.TrimSpace(ordering)
	if field == "" {
		return defaultOrdering
	}
	desc := strings.HasPrefix(field, "-")
	field = strings.TrimPrefix(field, "-")

	column, ok := orderingColumns[field]
	if !ok {
		return defaultOrdering
	}
	if desc {
		return column + " desc"
	}
	return column + " asc"
}

// List returns one page of orders visible to the actor. Managers see all
// orders, delivery crew the orders assigned to them, customers their own.
// A page past the end of the result set is an empty list, not an error.
func (q *OrderQuery) List(role auth.Role, actorID uint, params ListParams) ([]models.Order, error) {
	page := defaultPage
	if params.Page != "" {
		n, err := strconv.Atoi(params.Page)
		if err != nil {
			return nil, ErrInvalidPageParameter
		}
		page = n
	}
	perPage := defaultPerPage
	if params.PerPage != "" {
		n, err := strconv.Atoi(params.PerPage)
		if err != nil {
			return nil, ErrInvalidPageParameter
		}
		perPage = n
	}
	if page < 1 {
		page = defaultPage
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}

	query := q.DB.Preload("OrderItems")
	switch role {
	case auth.RoleManager:
		// unrestricted
	case auth.RoleDeliveryCrew:
		query = query.Where("delivery_crew_id = ?", actorID)
	default:
		query = query.Where("user_id = ?", actorID)
	}

	if params.Status != "" {
		query = query.Where("status = ?", ParseStatusToken(params.Status))
	}

	var orders []models.Order
	err := query.Order(orderingClause(params.Ordering)).
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}
