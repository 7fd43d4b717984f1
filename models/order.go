package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is an immutable snapshot of a cart at placement time. Total is summed
// from the item line prices exactly once, at creation; item mutation after the
// fact does not recompute it. Status is binary: false while pending or out for
// delivery, true once delivered.
type Order struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	UserID         uint            `gorm:"not null;index" json:"user_id"`
	User           User            `gorm:"foreignKey:UserID;references:ID" json:"-"`
	DeliveryCrewID *uint           `gorm:"index" json:"delivery_crew_id,omitempty"`
	DeliveryCrew   *User           `gorm:"foreignKey:DeliveryCrewID;references:ID" json:"delivery_crew,omitempty"`
	Status         bool            `gorm:"not null;default:false" json:"status"`
	Total          decimal.Decimal `gorm:"type:decimal(10,2); not null;default:0.00" json:"total"`
	Date           time.Time       `gorm:"not null" json:"date"`
	OrderItems     []OrderItem     `gorm:"foreignKey:OrderID" json:"order_items"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
