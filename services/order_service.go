package services

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/littlelemon/restaurant-api/auth"
	"github.com/littlelemon/restaurant-api/models"
)

type OrderService struct {
	DB *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{DB: db}
}

// Place materializes the customer's cart into an order. The order row, its
// items, the total, and the cart wipe commit as one transaction; a failure at
// any step rolls the whole placement back.
func (s *OrderService) Place(customerID uint) (*models.Order, error) {
	var order models.Order

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var lines []models.CartItem
		if err := tx.Where("user_id = ?", customerID).Order("id asc").Find(&lines).Error; err != nil {
			return err
		}
		if len(lines) == 0 {
			return ErrEmptyCart
		}

		order = models.Order{
			UserID: customerID,
			Status: false,
			Total:  decimal.Zero,
			Date:   time.Now(),
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		total := decimal.Zero
		for _, line := range lines {
			item := models.OrderItem{
				OrderID:    order.ID,
				MenuItemID: line.MenuItemID,
				Quantity:   line.Quantity,
				UnitPrice:  line.UnitPrice,
				Price:      line.Price,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
			total = total.Add(line.Price)
			order.OrderItems = append(order.OrderItems, item)
		}

		order.Total = total
		if err := tx.Save(&order).Error; err != nil {
			return err
		}

		return tx.Where("user_id = ?", customerID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Get loads one order with its items.
func (s *OrderService) Get(orderID uint) (*models.Order, error) {
	var order models.Order
	if err := s.DB.Preload("OrderItems").First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

// Update applies a partial update whose permitted field set depends on the
// actor's role. Managers may touch any recognized field; delivery crew must
// submit exactly {status}; customers are rejected outright.
func (s *OrderService) Update(role auth.Role, orderID uint, fields map[string]json.RawMessage) (*models.Order, error) {
	if role == auth.RoleCustomer {
		return nil, ErrForbidden
	}

	order, err := s.Get(orderID)
	if err != nil {
		return nil, err
	}

	if role == auth.RoleDeliveryCrew {
		if len(fields) != 1 {
			return nil, ErrInvalidFieldSet
		}
		raw, ok := fields["status"]
		if !ok {
			return nil, ErrInvalidFieldSet
		}
		var status bool
		if err := json.Unmarshal(raw, &status); err != nil {
			return nil, ErrInvalidFieldSet
		}
		order.Status = status
		if err := s.DB.Save(order).Error; err != nil {
			return nil, err
		}
		return order, nil
	}

	// Manager path: any subset of the recognized fields.
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		for key, raw := range fields {
			switch key {
			case "status":
				var status bool
				if err := json.Unmarshal(raw, &status); err != nil {
					return ErrUnknownField
				}
				order.Status = status
			case "delivery_crew":
				if err := s.assignCrew(tx, order, raw); err != nil {
					return err
				}
			case "total":
				var total decimal.Decimal
				if err := json.Unmarshal(raw, &total); err != nil {
					return ErrUnknownField
				}
				order.Total = total
			case "date":
				var dateStr string
				if err := json.Unmarshal(raw, &dateStr); err != nil {
					return ErrInvalidDate
				}
				date, err := time.Parse("2006-01-02", dateStr)
				if err != nil {
					return ErrInvalidDate
				}
				order.Date = date
			default:
				return ErrUnknownField
			}
		}
		return tx.Save(order).Error
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) assignCrew(tx *gorm.DB, order *models.Order, raw json.RawMessage) error {
	var crewID *uint
	if err := json.Unmarshal(raw, &crewID); err != nil {
		return ErrUserNotFound
	}
	if crewID == nil {
		order.DeliveryCrewID = nil
		return nil
	}

	var crew models.User
	if err := tx.First(&crew, *crewID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if auth.ParseRole(crew.Role) != auth.RoleDeliveryCrew {
		return ErrNotDeliveryCrew
	}
	order.DeliveryCrewID = crewID
	return nil
}

// Delete removes an order and, through the cascade, its items. Manager only.
func (s *OrderService) Delete(role auth.Role, orderID uint) error {
	if role != auth.RoleManager {
		return ErrForbidden
	}

	order, err := s.Get(orderID)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Order{}, order.ID).Error
	})
}
