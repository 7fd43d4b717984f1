package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/littlelemon/restaurant-api/auth"
	"github.com/littlelemon/restaurant-api/services"
	"github.com/littlelemon/restaurant-api/utils"
)

type OrderController struct {
	Orders *services.OrderService
	Query  *services.OrderQuery
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{
		Orders: services.NewOrderService(db),
		Query:  services.NewOrderQuery(db),
	}
}

// ListOrders -> GET /orders with status/ordering/page/perpage, scoped by role.
func (oc *OrderController) ListOrders(c *gin.Context) {
	userID, role := currentUser(c)

	orders, err := oc.Query.List(role, userID, services.ListParams{
		Status:   c.Query("status"),
		Ordering: c.Query("ordering"),
		Page:     c.Query("page"),
		PerPage:  c.Query("perpage"),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// CreateOrder -> POST /orders places the caller's cart. Customer only.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	userID, role := currentUser(c)
	if !auth.Decide(role, auth.ActionPlaceOrder, false) {
		respondServiceError(c, services.ErrForbidden)
		return
	}

	order, err := oc.Orders.Place(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.InfoLogger.Printf("Order #%d placed by user %d, total %s", order.ID, userID, order.Total)
	utils.RespondJSON(c, http.StatusCreated, "Order created", order)
}

// GetOrderByID -> managers and crew may view any order, customers only their own.
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	userID, role := currentUser(c)

	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondServiceError(c, services.ErrOrderNotFound)
		return
	}

	order, err := oc.Orders.Get(uint(orderID))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if !auth.Decide(role, auth.ActionViewOrder, order.UserID == userID) {
		respondServiceError(c, services.ErrForbidden)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// UpdateOrder handles PUT and PATCH. The raw key set is what gets authorized:
// delivery crew must send exactly {status}, managers any recognized subset.
func (oc *OrderController) UpdateOrder(c *gin.Context) {
	_, role := currentUser(c)

	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondServiceError(c, services.ErrOrderNotFound)
		return
	}

	var fields map[string]json.RawMessage
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Orders.Update(role, uint(orderID), fields)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.InfoLogger.Printf("Order #%d updated by %s", order.ID, role)
	utils.RespondJSON(c, http.StatusOK, "Order updated", order)
}

// DeleteOrder -> Manager only.
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	_, role := currentUser(c)

	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondServiceError(c, services.ErrOrderNotFound)
		return
	}

	if err := oc.Orders.Delete(role, uint(orderID)); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order deleted", gin.H{"order_id": orderID})
}
