package models

import (
	"time"

	"github.com/google/uuid"
)

type SupplierPriceReport struct {
	ID               uuid.UUID `db:"id"`
	RestaurantID     uuid.UUID `db:"restaurant_id"`
	FranchiseGroupID uuid.UUID `db:"franchise_group_id"`
	IngredientName   string    `db:"ingredient_name"`
	SupplierName     string    `db:"supplier_name"`
	UnitPrice        float64   `db:"unit_price"`
	Unit             string    `db:"unit"`
	Month            int       `db:"month"`
	Year             int       `db:"year"`
	ReportedAt       time.Time `db:"reported_at"`
}

// ApprovedSupplier is a supplier endorsed by a franchise group.
type ApprovedSupplier struct {
	ID               uuid.UUID `db:"id"`
	FranchiseGroupID uuid.UUID `db:"franchise_group_id"`
	Name             string    `db:"name"`
	Category         string    `db:"category"`
	ContactInfo      string    `db:"contact_info"`
	IngredientName   string    `db:"ingredient_name"`
	ContractedPrice  *float64  `db:"contracted_price"`
	Unit             string    `db:"unit"`
	IsRequired       bool      `db:"is_required"`
	Notes            string    `db:"notes"`
	CreatedAt        time.Time `db:"created_at"`
}
