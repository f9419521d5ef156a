package analytics

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func report(restaurant uuid.UUID, ingredient, supplier string, price float64, at time.Time) PriceReport {
	return PriceReport{
		ID:             uuid.New(),
		RestaurantID:   restaurant,
		IngredientName: ingredient,
		SupplierName:   supplier,
		UnitPrice:      price,
		Unit:           "kg",
		ReportedAt:     at,
	}
}

func TestComputeSupplierIntelligenceChicken(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	mine := []PriceReport{report(a, "Chicken Breast", "Brakes", 4.50, now)}
	all := append([]PriceReport{report(b, "Chicken Breast", "Bidfood", 5.20, now)}, mine...)

	rows := ComputeSupplierIntelligence(a, mine, all)

	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	row := rows[0]
	if row.NetworkAvg == nil || !approx(*row.NetworkAvg, 5.20) {
		t.Errorf("NetworkAvg = %v, want 5.20", row.NetworkAvg)
	}
	if row.DifferencePercent == nil || *row.DifferencePercent > -13.4 || *row.DifferencePercent < -13.5 {
		t.Errorf("DifferencePercent = %v, want about -13.46", row.DifferencePercent)
	}
	if row.MySupplier != "Brakes" || row.NetworkDataPoints != 1 {
		t.Errorf("row = %+v", row)
	}
}

func TestComputeSupplierIntelligenceSelfExclusion(t *testing.T) {
	me, other := uuid.New(), uuid.New()
	t0 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	mine := []PriceReport{report(me, "Butter", "Booker", 6.00, t0)}
	network := []PriceReport{
		report(other, "Butter", "Bidfood", 7.00, t0),
		report(other, "Butter", "Bidfood", 8.00, t0.Add(time.Hour)),
	}
	before := ComputeSupplierIntelligence(me, mine, append(network, mine...))

	newer := report(me, "Butter", "Makro", 9.99, t0.Add(48*time.Hour))
	mine = append(mine, newer)
	after := ComputeSupplierIntelligence(me, mine, append(network, mine...))

	if *before[0].NetworkAvg != 7.5 || *after[0].NetworkAvg != 7.5 {
		t.Errorf("network avg changed: before %v after %v, want 7.5", *before[0].NetworkAvg, *after[0].NetworkAvg)
	}
	if after[0].MyPrice != 9.99 || after[0].MySupplier != "Makro" {
		t.Errorf("latest own report not used: %+v", after[0])
	}
	if after[0].NetworkDataPoints != 2 {
		t.Errorf("NetworkDataPoints = %d, want 2", after[0].NetworkDataPoints)
	}
}

func TestComputeSupplierIntelligenceOrdering(t *testing.T) {
	me, other := uuid.New(), uuid.New()
	now := time.Now()
	mine := []PriceReport{
		report(me, "Flour", "A", 1.00, now),
		report(me, "Saffron", "A", 12.00, now),
		report(me, "Beef", "A", 11.00, now),
	}
	network := []PriceReport{
		report(other, "Flour", "B", 1.00, now),
		report(other, "Beef", "B", 10.00, now),
	}

	rows := ComputeSupplierIntelligence(me, mine, append(network, mine...))

	order := []string{"Beef", "Flour", "Saffron"}
	for i, want := range order {
		if rows[i].Ingredient != want {
			t.Errorf("rows[%d] = %s, want %s", i, rows[i].Ingredient, want)
		}
	}
	if rows[2].NetworkAvg != nil || rows[2].DifferencePercent != nil {
		t.Errorf("Saffron has no network data but got %+v", rows[2])
	}
}

func TestComputePriceVariance(t *testing.T) {
	r1, r2, r3 := uuid.New(), uuid.New(), uuid.New()
	now := time.Now()
	all := []PriceReport{
		report(r1, "Chicken Breast", "A", 4.50, now),
		report(r2, "Chicken Breast", "B", 5.20, now),
		report(r3, "Chicken Breast", "C", 6.10, now),
		report(r1, "Onions", "A", 0.80, now),
		report(r2, "Onions", "B", 0.90, now),
	}

	rows := ComputePriceVariance(all)

	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	chicken := rows[0]
	if chicken.Ingredient != "Chicken Breast" || chicken.DataPoints != 3 {
		t.Fatalf("rows[0] = %+v", chicken)
	}
	if chicken.Min != 4.50 || chicken.Max != 6.10 || !approx(chicken.Variance, 1.60) {
		t.Errorf("min/max/variance = %v/%v/%v", chicken.Min, chicken.Max, chicken.Variance)
	}
	if !approx(chicken.Avg, 5.266666666666667) {
		t.Errorf("Avg = %v", chicken.Avg)
	}

	if got := ComputePriceVariance(nil); got == nil || len(got) != 0 {
		t.Errorf("ComputePriceVariance(nil) = %v, want empty slice", got)
	}
}

func TestSummarizeNetwork(t *testing.T) {
	locs := []LocationPeriods{
		{RestaurantID: uuid.New(), Name: "Leeds", Periods: []Period{monthly("January", 2024, 30000, 9000), monthly("February", 2024, 20000, 6000)}},
		{RestaurantID: uuid.New(), Name: "York", Periods: []Period{monthly("January", 2024, 10000, 4000)}},
		{RestaurantID: uuid.New(), Name: "New opening"},
	}

	approved := []ApprovedSupplier{{ID: uuid.New(), Name: "Brakes", Category: "protein", IsRequired: true}}
	sum := SummarizeNetwork(locs, nil, approved)

	if sum.TotalLocations != 3 || len(sum.Locations) != 3 {
		t.Fatalf("locations = %d/%d, want 3", sum.TotalLocations, len(sum.Locations))
	}
	if sum.Network == nil || sum.Network.Revenue != 60000 || sum.Network.Periods != 3 {
		t.Errorf("network = %+v", sum.Network)
	}
	if !approx(sum.Network.FoodCostPercent, 19000.0/60000*100) {
		t.Errorf("network food%% = %v", sum.Network.FoodCostPercent)
	}
	if sum.Locations[0].Summary.Revenue != 50000 || sum.Locations[0].PeriodCount != 2 {
		t.Errorf("Leeds = %+v", sum.Locations[0])
	}
	if sum.Locations[2].Summary != nil {
		t.Errorf("location without periods should have nil summary")
	}
	if sum.PriceIntelligence == nil {
		t.Error("price intelligence should be an empty slice, not nil")
	}
	if len(sum.ApprovedSuppliers) != 1 || sum.ApprovedSuppliers[0].Name != "Brakes" {
		t.Errorf("approved suppliers = %+v", sum.ApprovedSuppliers)
	}
	if empty := SummarizeNetwork(nil, nil, nil); empty.ApprovedSuppliers == nil || empty.Network != nil {
		t.Errorf("empty network = %+v", empty)
	}
}
