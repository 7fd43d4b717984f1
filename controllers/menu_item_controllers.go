package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/littlelemon/restaurant-api/auth"
	"github.com/littlelemon/restaurant-api/models"
	"github.com/littlelemon/restaurant-api/services"
	"github.com/littlelemon/restaurant-api/utils"
)

type MenuItemController struct {
	DB *gorm.DB
}

func NewMenuItemController(db *gorm.DB) *MenuItemController {
	return &MenuItemController{DB: db}
}

type menuItemRequest struct {
	Title      string           `json:"title" binding:"required"`
	Price      *decimal.Decimal `json:"price" binding:"required"`
	Featured   bool             `json:"featured"`
	CategoryID uint             `json:"category_id" binding:"required"`
}

// GetAllMenuItems lists the menu with optional category/featured filters,
// price or title ordering, and the same page windowing the order list uses.
func (mc *MenuItemController) GetAllMenuItems(c *gin.Context) {
	query := mc.DB.Preload("Category")

	if slug := c.Query("category"); slug != "" {
		query = query.Joins("JOIN categories ON categories.id = menu_items.category_id").
			Where("categories.slug = ?", slug)
	}
	if featured := c.Query("featured"); featured != "" {
		query = query.Where("featured = ?", services.ParseStatusToken(featured))
	}

	switch ordering := c.Query("ordering"); strings.TrimPrefix(ordering, "-") {
	case "price", "title":
		column := strings.TrimPrefix(ordering, "-")
		if strings.HasPrefix(ordering, "-") {
			column += " desc"
		}
		query = query.Order(column)
	default:
		query = query.Order("id asc")
	}

	page, perPage := 1, 10
	if raw := c.Query("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			respondServiceError(c, services.ErrInvalidPageParameter)
			return
		}
		page = n
	}
	if raw := c.Query("perpage"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			respondServiceError(c, services.ErrInvalidPageParameter)
			return
		}
		perPage = n
	}
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}

	var items []models.MenuItem
	if err := query.Offset((page - 1) * perPage).Limit(perPage).Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of menu items", items)
}

// GetMenuItemByID
func (mc *MenuItemController) GetMenuItemByID(c *gin.Context) {
	var item models.MenuItem
	if err := mc.DB.Preload("Category").First(&item, c.Param("id")).Error; err != nil {
		respondServiceError(c, services.ErrMenuItemNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu item detail", item)
}

// CreateMenuItem - Manager only
func (mc *MenuItemController) CreateMenuItem(c *gin.Context) {
	if _, role := currentUser(c); !auth.Decide(role, auth.ActionWriteMenu, false) {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	var req menuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Price.IsNegative() {
		utils.RespondError(c, http.StatusBadRequest, errors.New("price must not be negative"))
		return
	}

	var category models.Category
	if err := mc.DB.First(&category, req.CategoryID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("category not found"))
		return
	}

	item := models.MenuItem{
		Title:      req.Title,
		Price:      *req.Price,
		Featured:   req.Featured,
		CategoryID: req.CategoryID,
	}
	if err := mc.DB.Create(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Menu item created", item)
}

// UpdateMenuItem handles PUT and PATCH - Manager only
func (mc *MenuItemController) UpdateMenuItem(c *gin.Context) {
	if _, role := currentUser(c); !auth.Decide(role, auth.ActionWriteMenu, false) {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	var item models.MenuItem
	if err := mc.DB.First(&item, c.Param("id")).Error; err != nil {
		respondServiceError(c, services.ErrMenuItemNotFound)
		return
	}

	var req struct {
		Title      *string          `json:"title"`
		Price      *decimal.Decimal `json:"price"`
		Featured   *bool            `json:"featured"`
		CategoryID *uint            `json:"category_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			utils.RespondError(c, http.StatusBadRequest, errors.New("price must not be negative"))
			return
		}
		item.Price = *req.Price
	}
	if req.Featured != nil {
		item.Featured = *req.Featured
	}
	if req.CategoryID != nil {
		var category models.Category
		if err := mc.DB.First(&category, *req.CategoryID).Error; err != nil {
			utils.RespondError(c, http.StatusNotFound, errors.New("category not found"))
			return
		}
		item.CategoryID = *req.CategoryID
	}

	if err := mc.DB.Save(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu item updated", item)
}

// DeleteMenuItem - Manager only
func (mc *MenuItemController) DeleteMenuItem(c *gin.Context) {
	if _, role := currentUser(c); !auth.Decide(role, auth.ActionWriteMenu, false) {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	var item models.MenuItem
	if err := mc.DB.First(&item, c.Param("id")).Error; err != nil {
		respondServiceError(c, services.ErrMenuItemNotFound)
		return
	}
	if err := mc.DB.Delete(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu item deleted", gin.H{"id": item.ID})
}
