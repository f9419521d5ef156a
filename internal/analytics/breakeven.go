package analytics

import (
	"fmt"
	"math"
)

type SafetyStatus string

const (
	SafetyHealthy SafetyStatus = "Healthy"
	SafetyTight   SafetyStatus = "Tight"
	SafetyDanger  SafetyStatus = "Danger Zone"
)

type Scenario struct {
	Name                   string `json:"name"`
	Favourable             bool   `json:"favourable"`
	Reachable              bool   `json:"reachable"`
	BreakevenMonthlyCovers int    `json:"breakevenMonthlyCovers"`
	BreakevenDailyCovers   int    `json:"breakevenDailyCovers"`
	// Change is the signed difference in monthly covers against the baseline.
	Change int `json:"change"`
}

type WageImpact struct {
	EstimatedHeadcount float64 `json:"estimatedHeadcount"`
	MonthlyImpact      float64 `json:"monthlyImpact"`
	AnnualImpact       float64 `json:"annualImpact"`
	ExtraDailyCovers   int     `json:"extraDailyCovers"`
}

type BreakevenResult struct {
	FixedCosts    float64 `json:"fixedCosts"`
	VariableCosts float64 `json:"variableCosts"`
	OtherCosts    float64 `json:"otherCosts"`
	TotalCosts    float64 `json:"totalCosts"`

	AvgTicket                  float64 `json:"avgTicket"`
	VariableCostPerCover       float64 `json:"variableCostPerCover"`
	ContributionMarginPerCover float64 `json:"contributionMarginPerCover"`

	BreakevenMonthlyCovers int     `json:"breakevenMonthlyCovers"`
	BreakevenDailyCovers   int     `json:"breakevenDailyCovers"`
	BreakevenWeeklyCovers  int     `json:"breakevenWeeklyCovers"`
	BreakevenRevenue       float64 `json:"breakevenRevenue"`
	CurrentDailyCovers     float64 `json:"currentDailyCovers"`
	CurrentVsBreakeven     float64 `json:"currentVsBreakeven"`
	CoversForProfitTarget  int     `json:"coversForProfitTarget"`

	SafetyMarginPercent float64      `json:"safetyMarginPercent"`
	SafetyStatus        SafetyStatus `json:"safetyStatus"`

	// Reachable is false when the contribution margin per cover is not positive.
	Reachable bool `json:"reachable"`
	// Degenerate is set when covers were missing and a placeholder of 1 was used.
	Degenerate bool   `json:"degenerate"`
	Message    string `json:"message,omitempty"`

	Wage      WageImpact `json:"wage"`
	Scenarios []Scenario `json:"scenarios"`
}

// maxCovers caps cover counts. A quotient at or above it comes from a margin
// too small to trade out of and is treated as unreachable.
const maxCovers = math.MaxInt32

// breakevenCovers is ceil(fixed / margin); ok is false when margin is not
// positive or the quotient does not fit under maxCovers.
func breakevenCovers(fixed, margin float64) (int, bool) {
	if margin <= 0 {
		return 0, false
	}
	q := math.Ceil(fixed / margin)
	if math.IsNaN(q) || q >= maxCovers {
		return 0, false
	}
	return int(q), true
}

func ceilDiv(v, by float64) int {
	if by <= 0 {
		return 0
	}
	q := math.Ceil(v / by)
	if math.IsNaN(q) || q >= maxCovers {
		return maxCovers
	}
	return int(q)
}

// ComputeBreakeven derives the cover and revenue targets needed to cover costs
// for one period.
func ComputeBreakeven(p Period, b Benchmarks) BreakevenResult {
	var res BreakevenResult

	covers := float64(p.TotalCovers)
	if covers <= 0 {
		covers = 1
		res.Degenerate = true
	}
	avgTicket := p.AvgTicketSize
	if avgTicket == 0 {
		avgTicket = p.Revenue / covers
	}
	res.AvgTicket = avgTicket

	fixedLabour := b.CostSplit.FixedLabourShare
	res.FixedCosts = p.RentCost + p.TechnologyCost + p.MarketingCost + p.LabourCost*fixedLabour
	res.VariableCosts = p.FoodCost + p.WasteCost + p.SuppliesCost + p.LabourCost*(1-fixedLabour)
	res.OtherCosts = p.EnergyCost
	res.TotalCosts = res.FixedCosts + res.VariableCosts + res.OtherCosts

	res.VariableCostPerCover = res.VariableCosts / covers
	res.ContributionMarginPerCover = avgTicket - res.VariableCostPerCover
	res.CurrentDailyCovers = safeDiv(float64(p.TotalCovers), b.WorkingDaysPerMonth)

	fixed := res.FixedCosts + res.OtherCosts
	monthly, ok := breakevenCovers(fixed, res.ContributionMarginPerCover)
	res.Reachable = ok
	res.BreakevenMonthlyCovers = monthly
	res.BreakevenDailyCovers = ceilDiv(float64(monthly), b.WorkingDaysPerMonth)
	res.BreakevenWeeklyCovers = ceilDiv(float64(monthly), b.WeeksPerMonth)
	res.BreakevenRevenue = float64(monthly) * avgTicket
	res.CurrentVsBreakeven = p.Revenue - res.BreakevenRevenue

	switch {
	case !ok:
		reason := "average spend does not cover variable cost per cover"
		if res.ContributionMarginPerCover > 0 {
			reason = "too small to recover fixed costs"
		}
		res.Message = fmt.Sprintf("contribution margin per cover is %s: %s, breakeven is unreachable",
			FormatGBP(res.ContributionMarginPerCover), reason)
		res.CurrentVsBreakeven = p.Revenue - res.TotalCosts
		res.SafetyStatus = SafetyDanger
	default:
		res.CoversForProfitTarget = ceilDiv(b.Scenarios.ProfitTarget, res.ContributionMarginPerCover)
		if p.Revenue > 0 {
			res.SafetyMarginPercent = res.CurrentVsBreakeven / p.Revenue * 100
		}
		res.SafetyStatus = ClassifySafetyMargin(res.SafetyMarginPercent, b)
	}
	if res.Degenerate && res.Message == "" {
		res.Message = "no covers recorded for this period; per-cover figures use a placeholder of 1 cover"
	}

	impact := b.WageImpact(p.LabourCost)
	res.Wage = WageImpact{
		EstimatedHeadcount: b.EstimatedHeadcount(p.LabourCost),
		MonthlyImpact:      impact,
		AnnualImpact:       impact * 12,
	}
	if ok {
		res.Wage.ExtraDailyCovers = ceilDiv(impact/res.ContributionMarginPerCover, b.WorkingDaysPerMonth)
	}

	revenuePerCover := p.Revenue / covers
	res.Scenarios = []Scenario{
		scenario(fmt.Sprintf("Raise average spend by %s", FormatGBP(b.Scenarios.AvgSpendUplift)), true,
			fixed, res.ContributionMarginPerCover+b.Scenarios.AvgSpendUplift, monthly, ok, b),
		scenario(fmt.Sprintf("Reduce food cost by %.0f%%", b.Scenarios.FoodCostReduction*100), true,
			fixed, res.ContributionMarginPerCover+revenuePerCover*b.Scenarios.FoodCostReduction, monthly, ok, b),
		scenario(fmt.Sprintf("Wage rate rises to £%.2f/hr", b.Wage.ProjectedRate), false,
			fixed+impact, res.ContributionMarginPerCover, monthly, ok, b),
		scenario(fmt.Sprintf("Energy bills rise %.0f%%", b.Scenarios.EnergyRise*100), false,
			fixed+p.EnergyCost*b.Scenarios.EnergyRise, res.ContributionMarginPerCover, monthly, ok, b),
	}
	return res
}

func scenario(name string, favourable bool, fixed, margin float64, baseline int, baselineOK bool, b Benchmarks) Scenario {
	covers, ok := breakevenCovers(fixed, margin)
	s := Scenario{
		Name:                   name,
		Favourable:             favourable,
		Reachable:              ok,
		BreakevenMonthlyCovers: covers,
		BreakevenDailyCovers:   ceilDiv(float64(covers), b.WorkingDaysPerMonth),
	}
	if ok && baselineOK {
		s.Change = covers - baseline
	}
	return s
}

// ClassifySafetyMargin buckets a safety margin percentage.
func ClassifySafetyMargin(pct float64, b Benchmarks) SafetyStatus {
	switch {
	case pct >= b.SafetyHealthy:
		return SafetyHealthy
	case pct >= b.SafetyTight:
		return SafetyTight
	default:
		return SafetyDanger
	}
}
