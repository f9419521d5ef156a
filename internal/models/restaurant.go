package models

import (
	"time"

	"github.com/google/uuid"
)

// Restaurant is one trading location. Locations sharing a FranchiseGroupID
// form a network for price benchmarking.
type Restaurant struct {
	ID               uuid.UUID  `db:"id"`
	OwnerID          uuid.UUID  `db:"owner_id"`
	Name             string     `db:"name"`
	CuisineType      string     `db:"cuisine_type"`
	Location         string     `db:"location"`
	FranchiseGroupID *uuid.UUID `db:"franchise_group_id"`
	CreatedAt        time.Time  `db:"created_at"`
}
