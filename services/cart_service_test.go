package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/littlelemon/restaurant-api/models"
)

func setupCartTestDB(t *testing.T, name string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Category{}, &models.MenuItem{}, &models.CartItem{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedMenuItem(t *testing.T, db *gorm.DB, title, price string) models.MenuItem {
	category := models.Category{Slug: "mains-" + title, Title: "Mains"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	item := models.MenuItem{
		Title:      title,
		Price:      decimal.RequireFromString(price),
		CategoryID: category.ID,
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("seed menu item: %v", err)
	}
	return item
}

func TestCartAddSnapshotsPrice(t *testing.T) {
	db := setupCartTestDB(t, "cart_add")
	svc := NewCartService(db)
	burger := seedMenuItem(t, db, "Burger", "8.00")

	line, err := svc.Add(1, burger.ID, 2)
	assert.NoError(t, err)
	assert.True(t, line.UnitPrice.Equal(decimal.RequireFromString("8.00")))
	assert.True(t, line.Price.Equal(decimal.RequireFromString("16.00")))

	// Later menu price changes must not touch the existing line.
	db.Model(&models.MenuItem{}).Where("id = ?", burger.ID).
		Update("price", decimal.RequireFromString("99.00"))

	lines, err := svc.List(1)
	assert.NoError(t, err)
	assert.Len(t, lines, 1)
	assert.True(t, lines[0].UnitPrice.Equal(decimal.RequireFromString("8.00")))
	assert.True(t, lines[0].Price.Equal(decimal.RequireFromString("16.00")))
}

func TestCartAddUnknownMenuItem(t *testing.T) {
	db := setupCartTestDB(t, "cart_missing")
	svc := NewCartService(db)

	_, err := svc.Add(1, 12345, 1)
	assert.ErrorIs(t, err, ErrMenuItemNotFound)
}

func TestCartAddRejectsBadQuantity(t *testing.T) {
	db := setupCartTestDB(t, "cart_badqty")
	svc := NewCartService(db)
	item := seedMenuItem(t, db, "Fries", "3.00")

	_, err := svc.Add(1, item.ID, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	lines, _ := svc.List(1)
	assert.Empty(t, lines)
}

func TestCartDuplicateLinesNotMerged(t *testing.T) {
	db := setupCartTestDB(t, "cart_dup")
	svc := NewCartService(db)
	item := seedMenuItem(t, db, "Pizza", "12.00")

	_, err := svc.Add(1, item.ID, 1)
	assert.NoError(t, err)
	_, err = svc.Add(1, item.ID, 2)
	assert.NoError(t, err)

	lines, err := svc.List(1)
	assert.NoError(t, err)
	assert.Len(t, lines, 2, "same menu item twice stays two lines")
	assert.Equal(t, 1, lines[0].Quantity)
	assert.Equal(t, 2, lines[1].Quantity)
}

func TestCartListScopedToUser(t *testing.T) {
	db := setupCartTestDB(t, "cart_scope")
	svc := NewCartService(db)
	item := seedMenuItem(t, db, "Salad", "6.50")

	_, err := svc.Add(1, item.ID, 1)
	assert.NoError(t, err)
	_, err = svc.Add(2, item.ID, 3)
	assert.NoError(t, err)

	lines, err := svc.List(1)
	assert.NoError(t, err)
	assert.Len(t, lines, 1)
	assert.Equal(t, uint(1), lines[0].UserID)
}

func TestCartClearIdempotent(t *testing.T) {
	db := setupCartTestDB(t, "cart_clear")
	svc := NewCartService(db)
	item := seedMenuItem(t, db, "Soup", "4.00")

	_, err := svc.Add(1, item.ID, 1)
	assert.NoError(t, err)

	assert.NoError(t, svc.Clear(1))
	lines, _ := svc.List(1)
	assert.Empty(t, lines)

	// Clearing an already empty cart still succeeds.
	assert.NoError(t, svc.Clear(1))
}
