package dto

import "restaurant-intel/internal/analytics"

// FiguresInput holds the trading figures common to monthly and weekly entries.
type FiguresInput struct {
	Revenue        float64 `json:"revenue" validate:"gte=0"`
	FoodCost       float64 `json:"foodCost" validate:"gte=0"`
	LabourCost     float64 `json:"labourCost" validate:"gte=0"`
	EnergyCost     float64 `json:"energyCost" validate:"gte=0"`
	RentCost       float64 `json:"rentCost" validate:"gte=0"`
	MarketingCost  float64 `json:"marketingCost" validate:"gte=0"`
	SuppliesCost   float64 `json:"suppliesCost" validate:"gte=0"`
	TechnologyCost float64 `json:"technologyCost" validate:"gte=0"`
	WasteCost      float64 `json:"wasteCost" validate:"gte=0"`

	DeliveryRevenue float64 `json:"deliveryRevenue" validate:"gte=0"`
	DineInRevenue   float64 `json:"dineInRevenue" validate:"gte=0"`
	TakeawayRevenue float64 `json:"takeawayRevenue" validate:"gte=0"`

	TotalCovers        int     `json:"totalCovers" validate:"gte=0"`
	AvgTicketSize      float64 `json:"avgTicketSize" validate:"gte=0"`
	RepeatCustomerRate float64 `json:"repeatCustomerRate" validate:"gte=0,lte=100"`
}

type CreateMonthlyDataRequest struct {
	Month string `json:"month" validate:"required,month"`
	Year  int    `json:"year" validate:"required,gte=2000,lte=2100"`
	FiguresInput
}

type CreateWeeklyDataRequest struct {
	WeekNumber int `json:"weekNumber" validate:"required,min=1,max=53"`
	Year       int `json:"year" validate:"required,gte=2000,lte=2100"`
	FiguresInput
}

// PeriodResponse is a stored record with its figures flattened alongside.
type PeriodResponse struct {
	ID           string `json:"id"`
	RestaurantID string `json:"restaurantId"`
	analytics.Period
	CreatedAt string `json:"createdAt"`
}

type BreakevenResponse struct {
	Period analytics.Period          `json:"period"`
	Result analytics.BreakevenResult `json:"breakeven"`
}

type RecommendationsResponse struct {
	Period               analytics.Period           `json:"period"`
	Recommendations      []analytics.Recommendation `json:"recommendations"`
	TotalEstimatedSaving float64                    `json:"totalEstimatedSaving"`
	Benchmarks           analytics.Benchmarks       `json:"benchmarks"`
}
