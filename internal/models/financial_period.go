package models

import (
	"time"

	"github.com/google/uuid"
)

// Figures are the revenue, cost and trading fields shared by monthly and weekly records.
type Figures struct {
	Revenue        float64 `db:"revenue"`
	FoodCost       float64 `db:"food_cost"`
	LabourCost     float64 `db:"labour_cost"`
	EnergyCost     float64 `db:"energy_cost"`
	RentCost       float64 `db:"rent_cost"`
	MarketingCost  float64 `db:"marketing_cost"`
	SuppliesCost   float64 `db:"supplies_cost"`
	TechnologyCost float64 `db:"technology_cost"`
	WasteCost      float64 `db:"waste_cost"`

	DeliveryRevenue float64 `db:"delivery_revenue"`
	DineInRevenue   float64 `db:"dine_in_revenue"`
	TakeawayRevenue float64 `db:"takeaway_revenue"`

	TotalCovers        int     `db:"total_covers"`
	AvgTicketSize      float64 `db:"avg_ticket_size"`
	RepeatCustomerRate float64 `db:"repeat_customer_rate"`
}

type MonthlyData struct {
	ID           uuid.UUID `db:"id"`
	RestaurantID uuid.UUID `db:"restaurant_id"`
	Month        string    `db:"month"`
	Year         int       `db:"year"`
	Figures
	CreatedAt time.Time `db:"created_at"`
}

type WeeklyData struct {
	ID           uuid.UUID `db:"id"`
	RestaurantID uuid.UUID `db:"restaurant_id"`
	WeekNumber   int       `db:"week_number"`
	Year         int       `db:"year"`
	Figures
	CreatedAt time.Time `db:"created_at"`
}
