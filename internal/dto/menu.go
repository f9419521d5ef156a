package dto

import "restaurant-intel/internal/analytics"

type CreateIngredientRequest struct {
	Name      string  `json:"name" validate:"required,max=255"`
	Unit      string  `json:"unit" validate:"required,max=20"`
	UnitPrice float64 `json:"unitPrice" validate:"gt=0"`
	Supplier  string  `json:"supplier" validate:"max=255"`
}

type IngredientResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Unit      string  `json:"unit"`
	UnitPrice float64 `json:"unitPrice"`
	Supplier  string  `json:"supplier"`
}

type RecipeLineRequest struct {
	IngredientID string  `json:"ingredientId" validate:"required,uuid"`
	Quantity     float64 `json:"quantity" validate:"gt=0"`
}

// CreateMenuItemRequest adds a dish. IsActive defaults to true when omitted.
type CreateMenuItemRequest struct {
	Name         string              `json:"name" validate:"required,max=255"`
	Category     string              `json:"category" validate:"max=100"`
	SellingPrice float64             `json:"sellingPrice" validate:"gt=0"`
	IsActive     *bool               `json:"isActive"`
	Recipe       []RecipeLineRequest `json:"recipe" validate:"dive"`
}

type MenuItemStatusRequest struct {
	IsActive *bool `json:"isActive" validate:"required"`
}

type UnitSalesRequest struct {
	MenuItemID string  `json:"menuItemId" validate:"required,uuid"`
	Units      float64 `json:"units" validate:"gte=0"`
}

// MenuEngineeringRequest carries unit sales for the popularity axis. Without
// sales every dish is treated as equally popular.
type MenuEngineeringRequest struct {
	Sales []UnitSalesRequest `json:"sales" validate:"dive"`
}

type MenuEngineeringResponse struct {
	Items            []analytics.ClassifiedItem                        `json:"items"`
	Categories       map[analytics.Category][]analytics.ClassifiedItem `json:"categories"`
	Counts           map[analytics.Category]int                        `json:"counts"`
	PopularitySource string                                            `json:"popularitySource"`
}
