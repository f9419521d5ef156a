package analytics

import (
	"math"
	"strings"
)

// Period is one monthly or weekly financial record. Monthly records carry
// Month, weekly records carry WeekNumber.
type Period struct {
	Month      string `json:"month,omitempty"`
	WeekNumber int    `json:"weekNumber,omitempty"`
	Year       int    `json:"year"`

	Revenue        float64 `json:"revenue"`
	FoodCost       float64 `json:"foodCost"`
	LabourCost     float64 `json:"labourCost"`
	EnergyCost     float64 `json:"energyCost"`
	RentCost       float64 `json:"rentCost"`
	MarketingCost  float64 `json:"marketingCost"`
	SuppliesCost   float64 `json:"suppliesCost"`
	TechnologyCost float64 `json:"technologyCost"`
	WasteCost      float64 `json:"wasteCost"`

	DeliveryRevenue float64 `json:"deliveryRevenue"`
	DineInRevenue   float64 `json:"dineInRevenue"`
	TakeawayRevenue float64 `json:"takeawayRevenue"`

	TotalCovers        int     `json:"totalCovers"`
	AvgTicketSize      float64 `json:"avgTicketSize"`
	RepeatCustomerRate float64 `json:"repeatCustomerRate"`
}

// TotalCosts sums the eight cost components.
func (p Period) TotalCosts() float64 {
	return p.FoodCost + p.LabourCost + p.EnergyCost + p.RentCost +
		p.MarketingCost + p.SuppliesCost + p.TechnologyCost + p.WasteCost
}

// AggregatedPeriod is the derived sum of one or more periods. It is never persisted.
type AggregatedPeriod struct {
	Revenue        float64 `json:"revenue"`
	FoodCost       float64 `json:"foodCost"`
	LabourCost     float64 `json:"labourCost"`
	EnergyCost     float64 `json:"energyCost"`
	RentCost       float64 `json:"rentCost"`
	MarketingCost  float64 `json:"marketingCost"`
	SuppliesCost   float64 `json:"suppliesCost"`
	TechnologyCost float64 `json:"technologyCost"`
	WasteCost      float64 `json:"wasteCost"`

	DeliveryRevenue float64 `json:"deliveryRevenue"`
	DineInRevenue   float64 `json:"dineInRevenue"`
	TakeawayRevenue float64 `json:"takeawayRevenue"`
	TotalCovers     int     `json:"totalCovers"`

	AvgTicketSize      float64 `json:"avgTicketSize"`
	RepeatCustomerRate float64 `json:"repeatCustomerRate"`

	TotalCosts        float64 `json:"totalCosts"`
	FoodCostPercent   float64 `json:"foodCostPercent"`
	LabourCostPercent float64 `json:"labourCostPercent"`
	GPPercent         float64 `json:"gpPercent"`
	Periods           int     `json:"periods"`
}

var monthNames = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// MonthIndex maps an English month name to 0-11.
func MonthIndex(name string) (int, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, m := range monthNames {
		if m == n {
			return i, true
		}
	}
	return -1, false
}

// MonthName is the inverse of MonthIndex, capitalised as stored.
func MonthName(idx int) string {
	if idx < 0 || idx > 11 {
		return ""
	}
	m := monthNames[idx]
	return strings.ToUpper(m[:1]) + m[1:]
}

func QuarterOf(monthIdx int) int {
	return int(math.Ceil(float64(monthIdx+1) / 3))
}

func HalfOf(monthIdx int) int {
	if monthIdx < 6 {
		return 1
	}
	return 2
}

// BucketRule selects the periods that belong to one bucket.
type BucketRule interface {
	Match(p Period) bool
}

type QuarterRule struct {
	Quarter int
	Year    int
}

func (r QuarterRule) Match(p Period) bool {
	idx, ok := MonthIndex(p.Month)
	return ok && p.Year == r.Year && QuarterOf(idx) == r.Quarter
}

type HalfRule struct {
	Half int
	Year int
}

func (r HalfRule) Match(p Period) bool {
	idx, ok := MonthIndex(p.Month)
	return ok && p.Year == r.Year && HalfOf(idx) == r.Half
}

type WeekRule struct {
	Week int
	Year int
}

func (r WeekRule) Match(p Period) bool {
	return p.WeekNumber == r.Week && p.Year == r.Year
}

// AllRule matches every period.
type AllRule struct{}

func (AllRule) Match(Period) bool { return true }

// Aggregate sums the periods matching rule. It returns nil when nothing
// matches so callers can tell "no data" apart from zero ratios.
func Aggregate(periods []Period, rule BucketRule) *AggregatedPeriod {
	var (
		agg       AggregatedPeriod
		ticketSum float64
		repeatSum float64
	)
	for _, p := range periods {
		if !rule.Match(p) {
			continue
		}
		agg.Revenue += p.Revenue
		agg.FoodCost += p.FoodCost
		agg.LabourCost += p.LabourCost
		agg.EnergyCost += p.EnergyCost
		agg.RentCost += p.RentCost
		agg.MarketingCost += p.MarketingCost
		agg.SuppliesCost += p.SuppliesCost
		agg.TechnologyCost += p.TechnologyCost
		agg.WasteCost += p.WasteCost
		agg.DeliveryRevenue += p.DeliveryRevenue
		agg.DineInRevenue += p.DineInRevenue
		agg.TakeawayRevenue += p.TakeawayRevenue
		agg.TotalCovers += p.TotalCovers
		ticketSum += p.AvgTicketSize
		repeatSum += p.RepeatCustomerRate
		agg.Periods++
	}
	if agg.Periods == 0 {
		return nil
	}

	n := float64(agg.Periods)
	agg.AvgTicketSize = ticketSum / n
	agg.RepeatCustomerRate = repeatSum / n
	agg.TotalCosts = agg.FoodCost + agg.LabourCost + agg.EnergyCost + agg.RentCost +
		agg.MarketingCost + agg.SuppliesCost + agg.TechnologyCost + agg.WasteCost
	if agg.Revenue != 0 {
		agg.FoodCostPercent = agg.FoodCost / agg.Revenue * 100
		agg.LabourCostPercent = agg.LabourCost / agg.Revenue * 100
		agg.GPPercent = (agg.Revenue - agg.TotalCosts) / agg.Revenue * 100
	}
	return &agg
}

// PercentChange returns nil when previous is zero; the change is undefined then.
func PercentChange(current, previous float64) *float64 {
	if previous == 0 {
		return nil
	}
	v := (current - previous) / previous * 100
	return &v
}
