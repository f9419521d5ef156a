package analytics

import (
	"fmt"
	"sort"
)

type Impact string

const (
	ImpactHigh   Impact = "high"
	ImpactMedium Impact = "medium"
	ImpactLow    Impact = "low"
)

var impactRank = map[Impact]int{ImpactHigh: 0, ImpactMedium: 1, ImpactLow: 2}

type Recommendation struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Impact      Impact `json:"impact"`
	// EstimatedSaving is the monthly saving or opportunity in whole pounds.
	EstimatedSaving float64 `json:"estimatedSaving"`
	// ProjectedCost is a forward-looking monthly cost; only the wage rule sets it.
	ProjectedCost float64  `json:"projectedCost,omitempty"`
	Actions       []string `json:"actions"`
	Context       string   `json:"context,omitempty"`
}

// Ratios are the period KPIs the rules compare against benchmarks.
// Valid is false when revenue is zero and revenue ratios are meaningless.
type Ratios struct {
	Valid         bool
	FoodPct       float64
	LabourPct     float64
	EnergyPct     float64
	WastePct      float64
	RentPct       float64
	GPPct         float64
	DeliveryShare float64
}

func RatiosOf(p Period) Ratios {
	if p.Revenue <= 0 {
		return Ratios{}
	}
	pct := func(v float64) float64 { return v * 100 / p.Revenue }
	return Ratios{
		Valid:         true,
		FoodPct:       pct(p.FoodCost),
		LabourPct:     pct(p.LabourCost),
		EnergyPct:     pct(p.EnergyCost),
		WastePct:      pct(p.WasteCost),
		RentPct:       pct(p.RentCost),
		GPPct:         pct(p.Revenue - p.FoodCost),
		DeliveryShare: p.DeliveryRevenue / p.Revenue,
	}
}

// Rule evaluates one KPI. Rules never look at each other's output.
type Rule interface {
	Evaluate(p Period, r Ratios, b Benchmarks) (Recommendation, bool)
}

type RuleFunc func(p Period, r Ratios, b Benchmarks) (Recommendation, bool)

func (f RuleFunc) Evaluate(p Period, r Ratios, b Benchmarks) (Recommendation, bool) {
	return f(p, r, b)
}

type Engine struct {
	bench Benchmarks
	rules []Rule
}

// NewEngine returns an engine with the default rule set in evaluation order.
func NewEngine(b Benchmarks) *Engine {
	return NewEngineWithRules(b, DefaultRules()...)
}

func NewEngineWithRules(b Benchmarks, rules ...Rule) *Engine {
	return &Engine{bench: b, rules: rules}
}

func (e *Engine) Benchmarks() Benchmarks { return e.bench }

func DefaultRules() []Rule {
	return []Rule{
		RuleFunc(foodCostRule),
		RuleFunc(labourRule),
		RuleFunc(wagePolicyRule),
		RuleFunc(energyRule),
		RuleFunc(wasteRule),
		RuleFunc(rentRule),
		RuleFunc(deliveryRule),
		RuleFunc(avgTicketRule),
		RuleFunc(retentionRule),
		RuleFunc(menuGPRule),
	}
}

// Generate evaluates every rule against the period and returns the fired
// recommendations ordered high, medium, low. Ties keep rule order.
func (e *Engine) Generate(p Period) []Recommendation {
	ratios := RatiosOf(p)
	recs := make([]Recommendation, 0, len(e.rules))
	for _, rule := range e.rules {
		if rec, ok := rule.Evaluate(p, ratios, e.bench); ok {
			recs = append(recs, rec)
		}
	}
	sort.SliceStable(recs, func(i, j int) bool {
		return impactRank[recs[i].Impact] < impactRank[recs[j].Impact]
	})
	return recs
}

// breaches reports whether a ratio has reached a "high" threshold, allowing
// for float noise in percentages derived from whole-pound inputs.
func breaches(v, threshold float64) bool {
	return v >= threshold-1e-9
}

// savingAtTarget is what a cost would drop by if it sat exactly on target% of revenue.
func savingAtTarget(cost, revenue, targetPct float64) float64 {
	return RoundPounds(cost - revenue*targetPct/100)
}

func foodCostRule(p Period, r Ratios, b Benchmarks) (Recommendation, bool) {
	if !r.Valid || r.FoodPct <= b.FoodCost.Target {
		return Recommendation{}, false
	}
	saving := savingAtTarget(p.FoodCost, p.Revenue, b.FoodCost.Target)
	if breaches(r.FoodPct, b.FoodCost.High) {
		return Recommendation{
			ID:       "food-cost-high",
			Title:    fmt.Sprintf("Food cost at %.1f%%, UK target is %.0f%%", r.FoodPct, b.FoodCost.Target),
			Category: "food-cost",
			Impact:   ImpactHigh,
			Description: fmt.Sprintf(
				"Your food cost is %.1fpp above the UK benchmark. A 1%% reduction in food cost is worth %s extra profit per month.",
				r.FoodPct-b.FoodCost.Target, FormatGBP(p.Revenue*0.01)),
			EstimatedSaving: saving,
			Actions: []string{
				"Identify your 10 highest-cost ingredients and request alternative quotes from 2 suppliers",
				"Review portion sizes with kitchen scales, especially proteins",
				"Design new dishes around ingredients already on your menu",
				"Use daily prep sheets so nothing is over-prepared and wasted",
			},
			Context: "Top performing UK restaurants hold food cost at 28-30% by dual-sourcing proteins and switching to seasonal menus quarterly.",
		}, true
	}
	return Recommendation{
		ID:              "food-cost-medium",
		Title:           fmt.Sprintf("Food cost at %.1f%%, room to tighten", r.FoodPct),
		Category:        "food-cost",
		Impact:          ImpactMedium,
		Description:     fmt.Sprintf("Just above the %.0f%% target. Small adjustments can close this gap.", b.FoodCost.Target),
		EstimatedSaving: saving,
		Actions: []string{
			"Run a 2-week waste audit and record every discarded ingredient and its cost",
			"Check whether any menu items are underpriced for their ingredient cost",
		},
		Context: "Food cost creep often goes unnoticed. Review costs monthly, not annually.",
	}, true
}

func labourRule(p Period, r Ratios, b Benchmarks) (Recommendation, bool) {
	if !r.Valid || !breaches(r.LabourPct, b.Labour.High) {
		return Recommendation{}, false
	}
	return Recommendation{
		ID:       "labour-high",
		Title:    fmt.Sprintf("Labour at %.1f%%, UK benchmark is %.0f%%", r.LabourPct, b.Labour.Target),
		Category: "labour",
		Impact:   ImpactHigh,
		Description: fmt.Sprintf(
			"At %.1f%% you are %.1fpp above target. With the National Living Wage at £%.2f/hr and rising, tackling this now protects you from future shocks.",
			r.LabourPct, r.LabourPct-b.Labour.Target, b.Wage.CurrentRate),
		EstimatedSaving: savingAtTarget(p.LabourCost, p.Revenue, b.Labour.Target),
		Actions: []string{
			"Map your busiest hours by day and check for overstaffing in quiet periods",
			"Cross-train staff so fewer people can cover more roles",
			"Consider closing on loss-making trading days",
			"Review agency staff usage; agency hours typically cost 20-30% more",
		},
		Context: "Hospitality employs the highest share of minimum wage workers in the UK economy.",
	}, true
}

func wagePolicyRule(p Period, _ Ratios, b Benchmarks) (Recommendation, bool) {
	impact := b.WageImpact(p.LabourCost)
	if impact <= b.Wage.MaterialityThreshold {
		return Recommendation{}, false
	}
	level := ImpactMedium
	if impact > b.Wage.HighImpactThreshold {
		level = ImpactHigh
	}
	covers := float64(p.TotalCovers)
	if covers <= 0 {
		covers = 1
	}
	return Recommendation{
		ID:       "wage-policy",
		Title:    fmt.Sprintf("National Living Wage: +%s/month at £%.2f/hr", FormatGBP(impact), b.Wage.ProjectedRate),
		Category: "nlw",
		Impact:   level,
		Description: fmt.Sprintf(
			"Based on your current labour spend, the rise from £%.2f to £%.2f/hr will cost approximately %s more per month (%s/year).",
			b.Wage.CurrentRate, b.Wage.ProjectedRate, FormatGBP(impact), FormatGBP(impact*12)),
		EstimatedSaving: 0,
		ProjectedCost:   RoundPounds(impact),
		Actions: []string{
			fmt.Sprintf("Raise average spend by £%.2f per cover to absorb the full increase", impact/covers),
			"Identify which roles are paid at the wage floor to quantify exact exposure",
			"Consider raising prices by 3-5% ahead of the change to build a buffer",
			"Explore table ordering to reduce covers per server",
		},
		Context: "The wage floor is reviewed annually by the Low Pay Commission.",
	}, true
}

func energyRule(p Period, r Ratios, b Benchmarks) (Recommendation, bool) {
	if !r.Valid || !breaches(r.EnergyPct, b.Energy.High) {
		return Recommendation{}, false
	}
	return Recommendation{
		ID:              "energy-high",
		Title:           fmt.Sprintf("Energy at %.1f%%, above the %.0f%% benchmark", r.EnergyPct, b.Energy.High),
		Category:        "energy",
		Impact:          ImpactMedium,
		Description:     fmt.Sprintf("At %.1f%% of revenue you have meaningful savings available by renegotiating supply and cutting standby load.", r.EnergyPct),
		EstimatedSaving: savingAtTarget(p.EnergyCost, p.Revenue, b.Energy.Target),
		Actions: []string{
			"Get at least 2 energy broker quotes",
			"Install a smart energy monitor to find peak consumption",
			"Schedule equipment shutdowns; ovens on standby waste hundreds a year",
			"Switch to LED lighting throughout",
		},
		Context: "All UK restaurants are on market energy rates; switching supplier saves 10-20% for many operators.",
	}, true
}

func wasteRule(p Period, r Ratios, b Benchmarks) (Recommendation, bool) {
	if !r.Valid || !breaches(r.WastePct, b.Waste.High) {
		return Recommendation{}, false
	}
	return Recommendation{
		ID:              "waste-high",
		Title:           fmt.Sprintf("Food waste at %.1f%%, UK average is 2-3%%", r.WastePct),
		Category:        "waste",
		Impact:          ImpactMedium,
		Description:     fmt.Sprintf("Excess waste costs you %s per month. You have already paid for these ingredients.", FormatGBP(p.WasteCost)),
		EstimatedSaving: savingAtTarget(p.WasteCost, p.Revenue, b.Waste.Target),
		Actions: []string{
			"Introduce a daily special built from yesterday's over-prep",
			"Train kitchen staff on FIFO storage",
			"Track waste by station: prep, service or plate returns",
			"Reduce menu size by 15-20%",
		},
		Context: "Restaurants that formally track waste reduce it by an average of 27% within 6 months.",
	}, true
}

func rentRule(p Period, r Ratios, b Benchmarks) (Recommendation, bool) {
	if !r.Valid || !breaches(r.RentPct, b.Rent.High) {
		return Recommendation{}, false
	}
	return Recommendation{
		ID:              "rent-high",
		Title:           fmt.Sprintf("Rent at %.1f%% of revenue, above the %.0f%% target", r.RentPct, b.Rent.Target),
		Category:        "supplier",
		Impact:          ImpactMedium,
		Description:     "Rent is largely fixed, but landlords are often willing to renegotiate with good tenants.",
		EstimatedSaving: savingAtTarget(p.RentCost, p.Revenue, b.Rent.Target),
		Actions: []string{
			"Check your lease break clause and approach the landlord 6 months ahead",
			"Benchmark your rent against comparable properties",
			"Negotiate a turnover rent clause",
			"Check eligibility for business rates relief",
		},
		Context: "Rateable values can be appealed with the Valuation Office Agency for free.",
	}, true
}

// deliveryRule covers both directions; the trigger ranges do not overlap.
func deliveryRule(p Period, r Ratios, b Benchmarks) (Recommendation, bool) {
	if !r.Valid {
		return Recommendation{}, false
	}
	d := b.Delivery
	switch {
	case r.DeliveryShare > d.HighShare:
		excess := p.DeliveryRevenue - p.Revenue*d.HighShare
		return Recommendation{
			ID:       "delivery-cost",
			Title:    fmt.Sprintf("Delivery revenue is %.0f%% of total, check true net profit", r.DeliveryShare*100),
			Category: "delivery",
			Impact:   ImpactMedium,
			Description: fmt.Sprintf(
				"Platforms charge 25-35%% commission, so delivery GP can be far below dine-in. At %.0f%% commission the delivery revenue above a %.0f%% mix costs %s a month in fees.",
				d.CommissionRate*100, d.HighShare*100, FormatGBP(excess*d.CommissionRate)),
			EstimatedSaving: RoundPounds(excess * d.CommissionRate),
			Actions: []string{
				"Calculate true net profit per delivery order after fees, packaging and labour",
				"Remove the lowest-margin items from delivery menus",
				"Negotiate commission; high-volume operators have leverage",
				"Build a direct ordering channel",
			},
			Context: "Operators with strong volume regularly achieve sub-25% commission rates.",
		}, true
	case r.DeliveryShare < d.LowShare && p.DineInRevenue > 0:
		gap := p.Revenue*d.GrowthTargetShare - p.DeliveryRevenue
		return Recommendation{
			ID:              "delivery-grow",
			Title:           "Delivery channel under-utilised, significant upside available",
			Category:        "delivery",
			Impact:          ImpactHigh,
			Description:     fmt.Sprintf("Delivery is %.0f%% of revenue. Well-run UK restaurants often achieve a 20-35%% delivery mix using existing kitchen capacity.", r.DeliveryShare*100),
			EstimatedSaving: RoundPounds(gap),
			Actions: []string{
				"Register on at least one delivery platform after comparing postcode coverage",
				"Create a delivery menu of 8-12 items that travel well",
				"Set a minimum order value so delivery is profitable after fees",
			},
			Context: "Even dine-in-focused restaurants can add several thousand pounds a month in delivery.",
		}, true
	}
	return Recommendation{}, false
}

func avgTicketRule(p Period, _ Ratios, b Benchmarks) (Recommendation, bool) {
	if p.AvgTicketSize >= b.AvgTicket.Target {
		return Recommendation{}, false
	}
	gap := b.AvgTicket.Target - p.AvgTicketSize
	extra := float64(p.TotalCovers) * gap
	return Recommendation{
		ID:              "avg-ticket",
		Title:           fmt.Sprintf("Average spend £%.2f, UK casual dining target is £%.0f", p.AvgTicketSize, b.AvgTicket.Target),
		Category:        "revenue",
		Impact:          ImpactMedium,
		Description:     fmt.Sprintf("Closing the £%.2f gap per cover would add %s revenue per month with no extra customers.", gap, FormatGBP(extra)),
		EstimatedSaving: RoundPounds(extra * b.UpsellRetention),
		Actions: []string{
			"Train front of house on one specific upsell per shift",
			"Add a premium drink; drinks carry 70-80% GP",
			"Create a weekly specials board of high-margin dishes",
		},
		Context: "Front of house is your sales team.",
	}, true
}

func retentionRule(p Period, _ Ratios, b Benchmarks) (Recommendation, bool) {
	if p.RepeatCustomerRate >= b.RepeatCustomer.Target {
		return Recommendation{}, false
	}
	return Recommendation{
		ID:              "retention",
		Title:           fmt.Sprintf("Repeat customer rate at %.0f%%, target is %.0f%%", p.RepeatCustomerRate, b.RepeatCustomer.Target),
		Category:        "marketing",
		Impact:          ImpactMedium,
		Description:     "Acquiring a new customer costs 5-7x more than retaining one.",
		EstimatedSaving: RoundPounds(p.Revenue * (b.RepeatCustomer.Target - p.RepeatCustomerRate) / 100),
		Actions: []string{
			"Start a stamp card or digital loyalty scheme",
			"Collect emails on booking and send a monthly update",
			"Reply to every review within 24 hours",
		},
		Context: "Restaurants with a structured loyalty programme see 2.4x higher return frequency.",
	}, true
}

func menuGPRule(p Period, r Ratios, b Benchmarks) (Recommendation, bool) {
	if !r.Valid || r.GPPct >= b.GrossProfit.Target {
		return Recommendation{}, false
	}
	level := ImpactMedium
	if r.GPPct < b.GrossProfit.Low {
		level = ImpactHigh
	}
	return Recommendation{
		ID:              "menu-engineering",
		Title:           fmt.Sprintf("Gross profit at %.1f%%, target is %.0f%%", r.GPPct, b.GrossProfit.Target),
		Category:        "menu",
		Impact:          level,
		Description:     "GP below target usually means food costs are too high, prices too low, or the menu mix leans on low-margin dishes.",
		EstimatedSaving: RoundPounds(p.Revenue * (b.GrossProfit.Target - r.GPPct) / 100 * b.MenuGapRecovery),
		Actions: []string{
			"Open the menu engineering matrix to find Plough Horses and Dogs",
			"Reprice or remove Dogs first",
			"Make sure sides and desserts carry 70%+ GP",
		},
		Context: "Operators who apply menu engineering typically improve GP by 3-8 points within two menu cycles.",
	}, true
}
