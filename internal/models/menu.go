package models

import (
	"time"

	"github.com/google/uuid"
)

type Ingredient struct {
	ID           uuid.UUID `db:"id"`
	RestaurantID uuid.UUID `db:"restaurant_id"`
	Name         string    `db:"name"`
	Unit         string    `db:"unit"`
	UnitPrice    float64   `db:"unit_price"`
	Supplier     string    `db:"supplier"`
	CreatedAt    time.Time `db:"created_at"`
}

type MenuItem struct {
	ID           uuid.UUID `db:"id"`
	RestaurantID uuid.UUID `db:"restaurant_id"`
	Name         string    `db:"name"`
	Category     string    `db:"category"`
	SellingPrice float64   `db:"selling_price"`
	IsActive     bool      `db:"is_active"`
	CreatedAt    time.Time `db:"created_at"`
}

// MenuItemIngredient is one recipe line. UnitPrice is joined from ingredients
// when recipes are read back.
type MenuItemIngredient struct {
	ID           uuid.UUID `db:"id"`
	MenuItemID   uuid.UUID `db:"menu_item_id"`
	IngredientID uuid.UUID `db:"ingredient_id"`
	Quantity     float64   `db:"quantity"`
	UnitPrice    float64   `db:"unit_price"`
}
