package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/littlelemon/restaurant-api/models"
)

type CartService struct {
	DB *gorm.DB
}

func NewCartService(db *gorm.DB) *CartService {
	return &CartService{DB: db}
}

// Add appends a new line to the user's cart with prices snapshotted from the
// current menu item price. Adding the same menu item twice yields two distinct
// lines; quantities are deliberately not merged.
func (s *CartService) Add(userID, menuItemID uint, quantity int) (*models.CartItem, error) {
	var item models.MenuItem
	if err := s.DB.First(&item, menuItemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}

	unitPrice, linePrice, err := ComputeLine(item.Price, quantity)
	if err != nil {
		return nil, err
	}

	line := models.CartItem{
		UserID:     userID,
		MenuItemID: item.ID,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		Price:      linePrice,
	}
	if err := s.DB.Create(&line).Error; err != nil {
		return nil, err
	}
	line.MenuItem = item
	return &line, nil
}

// List returns the user's cart lines in insertion order.
func (s *CartService) List(userID uint) ([]models.CartItem, error) {
	var lines []models.CartItem
	err := s.DB.Preload("MenuItem").
		Where("user_id = ?", userID).
		Order("id asc").
		Find(&lines).Error
	return lines, err
}

// Clear removes every line in the user's cart. Clearing an empty cart is a
// no-op success.
func (s *CartService) Clear(userID uint) error {
	return s.DB.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}
