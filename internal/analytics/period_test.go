package analytics

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestMonthIndex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantOK  bool
		quarter int
		half    int
	}{
		{name: "January", input: "January", want: 0, wantOK: true, quarter: 1, half: 1},
		{name: "lower case", input: "march", want: 2, wantOK: true, quarter: 1, half: 1},
		{name: "June", input: "June", want: 5, wantOK: true, quarter: 2, half: 1},
		{name: "July padded", input: " July ", want: 6, wantOK: true, quarter: 3, half: 2},
		{name: "December", input: "DECEMBER", want: 11, wantOK: true, quarter: 4, half: 2},
		{name: "unknown", input: "Smarch", want: -1, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MonthIndex(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Fatalf("MonthIndex(%q) = %d, %v; want %d, %v", tt.input, got, ok, tt.want, tt.wantOK)
			}
			if !ok {
				return
			}
			if q := QuarterOf(got); q != tt.quarter {
				t.Errorf("QuarterOf(%d) = %d, want %d", got, q, tt.quarter)
			}
			if h := HalfOf(got); h != tt.half {
				t.Errorf("HalfOf(%d) = %d, want %d", got, h, tt.half)
			}
			if name := MonthName(got); mustMonthIndex(name) != got {
				t.Errorf("MonthName(%d) = %q does not round-trip", got, name)
			}
		})
	}
}

func mustMonthIndex(name string) int {
	i, _ := MonthIndex(name)
	return i
}

func TestAggregateAdditivity(t *testing.T) {
	p1 := Period{
		Month: "January", Year: 2024,
		Revenue: 40000, FoodCost: 12000, LabourCost: 11000, EnergyCost: 2000, RentCost: 3000,
		MarketingCost: 500, SuppliesCost: 400, TechnologyCost: 300, WasteCost: 800,
		DeliveryRevenue: 8000, DineInRevenue: 28000, TakeawayRevenue: 4000,
		TotalCovers: 1600, AvgTicketSize: 25, RepeatCustomerRate: 30,
	}
	p2 := Period{
		Month: "February", Year: 2024,
		Revenue: 10000, FoodCost: 5000, LabourCost: 2000, EnergyCost: 500, RentCost: 3000,
		MarketingCost: 100, SuppliesCost: 100, TechnologyCost: 300, WasteCost: 200,
		DeliveryRevenue: 1000, DineInRevenue: 8000, TakeawayRevenue: 1000,
		TotalCovers: 400, AvgTicketSize: 25, RepeatCustomerRate: 40,
	}
	outside := Period{Month: "April", Year: 2024, Revenue: 99999, FoodCost: 1}

	agg := Aggregate([]Period{p1, outside, p2}, QuarterRule{Quarter: 1, Year: 2024})
	if agg == nil {
		t.Fatal("expected an aggregate for Q1 2024")
	}
	if agg.Periods != 2 {
		t.Errorf("Periods = %d, want 2", agg.Periods)
	}

	sums := []struct {
		field string
		got   float64
		want  float64
	}{
		{"revenue", agg.Revenue, p1.Revenue + p2.Revenue},
		{"foodCost", agg.FoodCost, p1.FoodCost + p2.FoodCost},
		{"labourCost", agg.LabourCost, p1.LabourCost + p2.LabourCost},
		{"energyCost", agg.EnergyCost, p1.EnergyCost + p2.EnergyCost},
		{"rentCost", agg.RentCost, p1.RentCost + p2.RentCost},
		{"marketingCost", agg.MarketingCost, p1.MarketingCost + p2.MarketingCost},
		{"suppliesCost", agg.SuppliesCost, p1.SuppliesCost + p2.SuppliesCost},
		{"technologyCost", agg.TechnologyCost, p1.TechnologyCost + p2.TechnologyCost},
		{"wasteCost", agg.WasteCost, p1.WasteCost + p2.WasteCost},
		{"deliveryRevenue", agg.DeliveryRevenue, p1.DeliveryRevenue + p2.DeliveryRevenue},
		{"dineInRevenue", agg.DineInRevenue, p1.DineInRevenue + p2.DineInRevenue},
		{"takeawayRevenue", agg.TakeawayRevenue, p1.TakeawayRevenue + p2.TakeawayRevenue},
		{"totalCovers", float64(agg.TotalCovers), float64(p1.TotalCovers + p2.TotalCovers)},
		{"totalCosts", agg.TotalCosts, p1.TotalCosts() + p2.TotalCosts()},
	}
	for _, s := range sums {
		if !approx(s.got, s.want) {
			t.Errorf("%s = %v, want %v", s.field, s.got, s.want)
		}
	}

	// Ratios come from the summed fields, not the mean of per-period ratios.
	wantFood := (p1.FoodCost + p2.FoodCost) / (p1.Revenue + p2.Revenue) * 100
	if !approx(agg.FoodCostPercent, wantFood) {
		t.Errorf("FoodCostPercent = %v, want %v", agg.FoodCostPercent, wantFood)
	}
	meanOfRatios := (p1.FoodCost/p1.Revenue*100 + p2.FoodCost/p2.Revenue*100) / 2
	if approx(agg.FoodCostPercent, meanOfRatios) {
		t.Error("FoodCostPercent must not be the mean of per-period ratios")
	}
	wantGP := (agg.Revenue - agg.TotalCosts) / agg.Revenue * 100
	if !approx(agg.GPPercent, wantGP) {
		t.Errorf("GPPercent = %v, want %v", agg.GPPercent, wantGP)
	}
	if !approx(agg.RepeatCustomerRate, 35) {
		t.Errorf("RepeatCustomerRate = %v, want 35", agg.RepeatCustomerRate)
	}
}

func TestAggregateEmptyAndZeroRevenue(t *testing.T) {
	if got := Aggregate(nil, AllRule{}); got != nil {
		t.Errorf("Aggregate(nil) = %+v, want nil", got)
	}
	if got := Aggregate([]Period{{Month: "May", Year: 2024}}, QuarterRule{Quarter: 1, Year: 2024}); got != nil {
		t.Errorf("Aggregate with no match = %+v, want nil", got)
	}

	agg := Aggregate([]Period{{Month: "May", Year: 2024, FoodCost: 100}}, AllRule{})
	if agg == nil {
		t.Fatal("expected aggregate")
	}
	if agg.FoodCostPercent != 0 || agg.LabourCostPercent != 0 || agg.GPPercent != 0 {
		t.Errorf("ratios with zero revenue = %v/%v/%v, want zeros", agg.FoodCostPercent, agg.LabourCostPercent, agg.GPPercent)
	}
}

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		want     *float64
	}{
		{name: "growth", current: 120, previous: 100, want: ptr(20)},
		{name: "decline", current: 50, previous: 100, want: ptr(-50)},
		{name: "previous zero", current: 100, previous: 0, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PercentChange(tt.current, tt.previous)
			switch {
			case tt.want == nil && got != nil:
				t.Errorf("PercentChange = %v, want nil", *got)
			case tt.want != nil && (got == nil || !approx(*got, *tt.want)):
				t.Errorf("PercentChange = %v, want %v", got, *tt.want)
			}
		})
	}
}

func ptr(v float64) *float64 { return &v }
