package models

import (
	"time"

	"github.com/google/uuid"
)

type WasteLog struct {
	ID           uuid.UUID `db:"id"`
	RestaurantID uuid.UUID `db:"restaurant_id"`
	ItemName     string    `db:"item_name"`
	Quantity     float64   `db:"quantity"`
	Unit         string    `db:"unit"`
	CostPerUnit  float64   `db:"cost_per_unit"`
	TotalCost    float64   `db:"total_cost"`
	Reason       string    `db:"reason"`
	Date         time.Time `db:"date"`
	CreatedAt    time.Time `db:"created_at"`
}
