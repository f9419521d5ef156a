package dto

import "restaurant-intel/internal/analytics"

// CreatePriceReportRequest records a price paid. FranchiseGroupID, when set,
// must match the reporting restaurant's own group.
type CreatePriceReportRequest struct {
	IngredientName   string  `json:"ingredientName" validate:"required,max=255"`
	SupplierName     string  `json:"supplierName" validate:"required,max=255"`
	UnitPrice        float64 `json:"unitPrice" validate:"gt=0"`
	Unit             string  `json:"unit" validate:"required,max=20"`
	Month            int     `json:"month" validate:"required,min=1,max=12"`
	Year             int     `json:"year" validate:"required,gte=2000,lte=2100"`
	FranchiseGroupID string  `json:"franchiseGroupId" validate:"omitempty,uuid"`
}

type CreateApprovedSupplierRequest struct {
	Name            string   `json:"name" validate:"required,max=255"`
	Category        string   `json:"category" validate:"required,max=100"`
	ContactInfo     string   `json:"contactInfo" validate:"max=255"`
	IngredientName  string   `json:"ingredientName" validate:"max=255"`
	ContractedPrice *float64 `json:"contractedPrice" validate:"omitempty,gt=0"`
	Unit            string   `json:"unit" validate:"max=20"`
	IsRequired      bool     `json:"isRequired"`
	Notes           string   `json:"notes" validate:"max=2000"`
}

// SupplierIntelligenceResponse pairs the price comparison with the group's
// approved suppliers and the restaurant's latest report per ingredient.
type SupplierIntelligenceResponse struct {
	Intelligence      []analytics.IntelligenceRow  `json:"intelligence"`
	ApprovedSuppliers []analytics.ApprovedSupplier `json:"approvedSuppliers"`
	MyReports         []analytics.PriceReport      `json:"myReports"`
}
