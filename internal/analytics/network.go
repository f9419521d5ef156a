package analytics

import "github.com/google/uuid"

// LocationPeriods is one franchise location and its monthly records.
type LocationPeriods struct {
	RestaurantID uuid.UUID `json:"restaurantId"`
	Name         string    `json:"name"`
	Periods      []Period  `json:"-"`
}

type LocationSummary struct {
	RestaurantID uuid.UUID         `json:"restaurantId"`
	Name         string            `json:"name"`
	Summary      *AggregatedPeriod `json:"summary"`
	PeriodCount  int               `json:"periodCount"`
}

type NetworkSummary struct {
	Network           *AggregatedPeriod  `json:"networkSummary"`
	Locations         []LocationSummary  `json:"locations"`
	PriceIntelligence []VarianceRow      `json:"priceIntelligence"`
	ApprovedSuppliers []ApprovedSupplier `json:"approvedSuppliers"`
	TotalLocations    int                `json:"totalLocations"`
}

// SummarizeNetwork aggregates every location on its own and the whole network
// together, and attaches the cross-network price spread and the group's
// approved suppliers.
func SummarizeNetwork(locations []LocationPeriods, reports []PriceReport, approved []ApprovedSupplier) NetworkSummary {
	out := NetworkSummary{
		Locations:         make([]LocationSummary, 0, len(locations)),
		ApprovedSuppliers: approved,
		TotalLocations:    len(locations),
	}
	if out.ApprovedSuppliers == nil {
		out.ApprovedSuppliers = []ApprovedSupplier{}
	}
	var all []Period
	for _, loc := range locations {
		out.Locations = append(out.Locations, LocationSummary{
			RestaurantID: loc.RestaurantID,
			Name:         loc.Name,
			Summary:      Aggregate(loc.Periods, AllRule{}),
			PeriodCount:  len(loc.Periods),
		})
		all = append(all, loc.Periods...)
	}
	out.Network = Aggregate(all, AllRule{})
	out.PriceIntelligence = ComputePriceVariance(reports)
	return out
}
