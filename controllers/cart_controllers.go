package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/littlelemon/restaurant-api/services"
	"github.com/littlelemon/restaurant-api/utils"
)

type CartController struct {
	Carts *services.CartService
}

func NewCartController(db *gorm.DB) *CartController {
	return &CartController{Carts: services.NewCartService(db)}
}

// GetCart -> the caller's cart lines
func (cc *CartController) GetCart(c *gin.Context) {
	userID, _ := currentUser(c)

	lines, err := cc.Carts.List(userID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Cart items", lines)
}

// AddToCart -> POST {menuitem, quantity}; prices are computed server-side.
func (cc *CartController) AddToCart(c *gin.Context) {
	userID, _ := currentUser(c)

	var body struct {
		MenuItem uint `json:"menuitem" binding:"required"`
		Quantity int  `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	line, err := cc.Carts.Add(userID, body.MenuItem, body.Quantity)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Item added to cart", line)
}

// ClearCart -> DELETE wipes the caller's cart
func (cc *CartController) ClearCart(c *gin.Context) {
	userID, _ := currentUser(c)

	if err := cc.Carts.Clear(userID); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Cart cleared", nil)
}
