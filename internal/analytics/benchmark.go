package analytics

// Range is a low/target/high band for a single KPI.
type Range struct {
	Low    float64 `json:"low"`
	Target float64 `json:"target"`
	High   float64 `json:"high"`
	Label  string  `json:"label"`
}

type CostSplit struct {
	// FixedLabourShare is the part of labour treated as fixed; the rest is variable.
	FixedLabourShare float64 `json:"fixedLabourShare"`
}

type WagePolicy struct {
	CurrentRate          float64 `json:"currentRate"`
	ProjectedRate        float64 `json:"projectedRate"`
	MonthlyHours         float64 `json:"monthlyHours"`
	MaterialityThreshold float64 `json:"materialityThreshold"`
	HighImpactThreshold  float64 `json:"highImpactThreshold"`
}

type DeliveryPolicy struct {
	HighShare         float64 `json:"highShare"`
	LowShare          float64 `json:"lowShare"`
	GrowthTargetShare float64 `json:"growthTargetShare"`
	CommissionRate    float64 `json:"commissionRate"`
}

type ScenarioPolicy struct {
	AvgSpendUplift    float64 `json:"avgSpendUplift"`
	FoodCostReduction float64 `json:"foodCostReduction"`
	EnergyRise        float64 `json:"energyRise"`
	ProfitTarget      float64 `json:"profitTarget"`
}

// Benchmarks is the immutable policy table shared by the breakeven calculator,
// the menu classifier and the recommendation engine. Pass it by value.
type Benchmarks struct {
	FoodCost       Range `json:"foodCost"`
	Labour         Range `json:"labour"`
	Energy         Range `json:"energy"`
	Rent           Range `json:"rent"`
	Waste          Range `json:"waste"`
	GrossProfit    Range `json:"grossProfit"`
	RepeatCustomer Range `json:"repeatCustomer"`
	AvgTicket      Range `json:"avgTicket"`

	CostSplit CostSplit      `json:"costSplit"`
	Wage      WagePolicy     `json:"wage"`
	Delivery  DeliveryPolicy `json:"delivery"`
	Scenarios ScenarioPolicy `json:"scenarios"`

	WorkingDaysPerMonth float64 `json:"workingDaysPerMonth"`
	WeeksPerMonth       float64 `json:"weeksPerMonth"`

	SafetyHealthy float64 `json:"safetyHealthy"`
	SafetyTight   float64 `json:"safetyTight"`

	// HighMarginGP is the GP% at or above which a dish counts as high margin.
	HighMarginGP float64 `json:"highMarginGp"`
	// PopularityFactor is applied to the 1/N fair share when deciding whether a dish is popular.
	PopularityFactor float64 `json:"popularityFactor"`
	// UpsellRetention is the share of extra ticket revenue kept as profit.
	UpsellRetention float64 `json:"upsellRetention"`
	// MenuGapRecovery is the share of the GP gap a menu re-engineering recovers.
	MenuGapRecovery float64 `json:"menuGapRecovery"`
}

// UKBenchmarks returns the default UK casual-dining table.
func UKBenchmarks() Benchmarks {
	return Benchmarks{
		FoodCost:       Range{Low: 25, Target: 30, High: 35, Label: "Food Cost %"},
		Labour:         Range{Low: 24, Target: 28, High: 32, Label: "Labour %"},
		Energy:         Range{Low: 4, Target: 6, High: 8, Label: "Energy %"},
		Rent:           Range{Low: 5, Target: 8, High: 12, Label: "Rent & Rates %"},
		Waste:          Range{Low: 1, Target: 2.5, High: 4, Label: "Food Waste %"},
		GrossProfit:    Range{Low: 55, Target: 65, High: 75, Label: "Gross Profit %"},
		RepeatCustomer: Range{Low: 25, Target: 35, High: 50, Label: "Repeat Customer Rate"},
		AvgTicket:      Range{Low: 18, Target: 28, High: 45, Label: "Avg Ticket Size (£)"},

		CostSplit: CostSplit{FixedLabourShare: 0.6},
		Wage: WagePolicy{
			CurrentRate:          12.21,
			ProjectedRate:        13.00,
			MonthlyHours:         160,
			MaterialityThreshold: 200,
			HighImpactThreshold:  1000,
		},
		Delivery: DeliveryPolicy{
			HighShare:         0.30,
			LowShare:          0.15,
			GrowthTargetShare: 0.20,
			CommissionRate:    0.28,
		},
		Scenarios: ScenarioPolicy{
			AvgSpendUplift:    2,
			FoodCostReduction: 0.03,
			EnergyRise:        0.15,
			ProfitTarget:      1000,
		},

		WorkingDaysPerMonth: 26,
		WeeksPerMonth:       4.3,

		SafetyHealthy: 15,
		SafetyTight:   5,

		HighMarginGP:     65,
		PopularityFactor: 0.70,
		UpsellRetention:  0.6,
		MenuGapRecovery:  0.5,
	}
}

// EstimatedHeadcount derives full-time equivalents from a monthly labour bill.
func (b Benchmarks) EstimatedHeadcount(labourCost float64) float64 {
	denom := b.Wage.CurrentRate * b.Wage.MonthlyHours
	if denom <= 0 {
		return 0
	}
	return roundHalfUp(labourCost / denom)
}

// WageImpact is the projected extra monthly wage bill at the projected rate.
func (b Benchmarks) WageImpact(labourCost float64) float64 {
	return b.EstimatedHeadcount(labourCost) * (b.Wage.ProjectedRate - b.Wage.CurrentRate) * b.Wage.MonthlyHours
}
