package analytics

import (
	"math"
	"testing"
)

func breakevenPeriod() Period {
	return Period{
		Month: "March", Year: 2024,
		Revenue:     10000,
		RentCost:    3000,
		LabourCost:  5000,
		FoodCost:    1000,
		TotalCovers: 400,
		// 25 per cover
		AvgTicketSize: 25,
	}
}

func TestComputeBreakevenWorkedExample(t *testing.T) {
	res := ComputeBreakeven(breakevenPeriod(), UKBenchmarks())

	if !approx(res.FixedCosts+res.OtherCosts, 6000) {
		t.Errorf("fixed+other = %v, want 6000", res.FixedCosts+res.OtherCosts)
	}
	if !approx(res.VariableCosts, 3000) {
		t.Errorf("VariableCosts = %v, want 3000", res.VariableCosts)
	}
	if !approx(res.VariableCostPerCover, 7.5) {
		t.Errorf("VariableCostPerCover = %v, want 7.5", res.VariableCostPerCover)
	}
	if !approx(res.ContributionMarginPerCover, 17.5) {
		t.Errorf("ContributionMarginPerCover = %v, want 17.5", res.ContributionMarginPerCover)
	}
	if res.BreakevenMonthlyCovers != 343 {
		t.Errorf("BreakevenMonthlyCovers = %d, want 343", res.BreakevenMonthlyCovers)
	}
	if res.BreakevenDailyCovers != 14 {
		t.Errorf("BreakevenDailyCovers = %d, want 14", res.BreakevenDailyCovers)
	}
	if !approx(res.BreakevenRevenue, 8575) {
		t.Errorf("BreakevenRevenue = %v, want 8575", res.BreakevenRevenue)
	}
	if !approx(res.SafetyMarginPercent, 14.25) {
		t.Errorf("SafetyMarginPercent = %v, want 14.25", res.SafetyMarginPercent)
	}
	if res.SafetyStatus != SafetyTight {
		t.Errorf("SafetyStatus = %q, want %q", res.SafetyStatus, SafetyTight)
	}
	if !res.Reachable || res.Degenerate {
		t.Errorf("Reachable=%v Degenerate=%v, want true/false", res.Reachable, res.Degenerate)
	}
	if res.CoversForProfitTarget != 58 {
		t.Errorf("CoversForProfitTarget = %d, want 58", res.CoversForProfitTarget)
	}
}

func TestComputeBreakevenScenarios(t *testing.T) {
	res := ComputeBreakeven(breakevenPeriod(), UKBenchmarks())
	if len(res.Scenarios) != 4 {
		t.Fatalf("got %d scenarios, want 4", len(res.Scenarios))
	}
	for _, s := range res.Scenarios {
		if !s.Reachable {
			t.Errorf("scenario %q unreachable", s.Name)
			continue
		}
		if s.Favourable && s.Change > 0 {
			t.Errorf("favourable scenario %q raised covers by %d", s.Name, s.Change)
		}
		if !s.Favourable && s.Change < 0 {
			t.Errorf("adverse scenario %q lowered covers by %d", s.Name, s.Change)
		}
	}
	// +£2 spend: ceil(6000 / 19.5) = 308
	if got := res.Scenarios[0].BreakevenMonthlyCovers; got != 308 {
		t.Errorf("spend uplift covers = %d, want 308", got)
	}
	if got := res.Scenarios[0].Change; got != 308-343 {
		t.Errorf("spend uplift change = %d, want %d", got, 308-343)
	}
}

func TestBreakevenMonotonicInTicket(t *testing.T) {
	b := UKBenchmarks()
	prev := -1
	for _, ticket := range []float64{40, 35, 30, 25, 20, 15, 10, 8} {
		p := breakevenPeriod()
		p.AvgTicketSize = ticket
		res := ComputeBreakeven(p, b)
		if !res.Reachable {
			t.Fatalf("ticket %v should still be reachable", ticket)
		}
		if res.BreakevenMonthlyCovers < 0 {
			t.Fatalf("ticket %v gave negative covers %d", ticket, res.BreakevenMonthlyCovers)
		}
		if prev >= 0 && res.BreakevenMonthlyCovers <= prev {
			t.Errorf("ticket %v: covers %d did not increase from %d", ticket, res.BreakevenMonthlyCovers, prev)
		}
		prev = res.BreakevenMonthlyCovers
	}
}

func TestComputeBreakevenUnreachable(t *testing.T) {
	p := breakevenPeriod()
	p.AvgTicketSize = 7.5

	res := ComputeBreakeven(p, UKBenchmarks())

	if res.Reachable {
		t.Fatal("margin of zero must be unreachable")
	}
	if res.BreakevenMonthlyCovers != 0 {
		t.Errorf("BreakevenMonthlyCovers = %d, want 0", res.BreakevenMonthlyCovers)
	}
	if res.Message == "" {
		t.Error("expected a message explaining the unreachable breakeven")
	}
	if res.SafetyStatus != SafetyDanger {
		t.Errorf("SafetyStatus = %q, want %q", res.SafetyStatus, SafetyDanger)
	}
	if !approx(res.CurrentVsBreakeven, p.Revenue-res.TotalCosts) {
		t.Errorf("CurrentVsBreakeven = %v, want revenue minus total costs", res.CurrentVsBreakeven)
	}
	for _, s := range res.Scenarios {
		if s.Change != 0 {
			t.Errorf("scenario %q change = %d against an unreachable baseline", s.Name, s.Change)
		}
	}
}

func TestComputeBreakevenVanishingMargin(t *testing.T) {
	// 0.30000000000000004 - 3/10 leaves a margin of about 5.5e-17 per cover.
	p := Period{Month: "March", Year: 2024, Revenue: 3, FoodCost: 3, RentCost: 1000, TotalCovers: 10, AvgTicketSize: 0.30000000000000004}

	res := ComputeBreakeven(p, UKBenchmarks())

	if res.ContributionMarginPerCover <= 0 {
		t.Fatalf("margin = %v, want a tiny positive value", res.ContributionMarginPerCover)
	}
	if res.Reachable {
		t.Fatal("a vanishing margin must be unreachable")
	}
	if res.BreakevenMonthlyCovers != 0 || res.BreakevenDailyCovers != 0 || res.BreakevenWeeklyCovers != 0 {
		t.Errorf("covers = %d/%d/%d, want zeros", res.BreakevenMonthlyCovers, res.BreakevenDailyCovers, res.BreakevenWeeklyCovers)
	}
	if res.BreakevenRevenue != 0 || res.SafetyStatus != SafetyDanger || res.Message == "" {
		t.Errorf("revenue/status/message = %v/%q/%q", res.BreakevenRevenue, res.SafetyStatus, res.Message)
	}
	for _, s := range res.Scenarios {
		if s.BreakevenMonthlyCovers < 0 || s.BreakevenDailyCovers < 0 || s.Change != 0 {
			t.Errorf("scenario %q = %+v", s.Name, s)
		}
	}
}

func TestBreakevenCoversCap(t *testing.T) {
	tests := []struct {
		name   string
		fixed  float64
		margin float64
		want   int
		ok     bool
	}{
		{name: "regular", fixed: 3400, margin: 10, want: 340, ok: true},
		{name: "zero margin", fixed: 3400, margin: 0, want: 0, ok: false},
		{name: "overflowing quotient", fixed: 1000, margin: 1e-17, want: 0, ok: false},
		{name: "infinite quotient", fixed: math.Inf(1), margin: 1, want: 0, ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := breakevenCovers(tt.fixed, tt.margin)
			if got != tt.want || ok != tt.ok {
				t.Errorf("breakevenCovers(%v, %v) = %d, %v, want %d, %v", tt.fixed, tt.margin, got, ok, tt.want, tt.ok)
			}
		})
	}
	if got := ceilDiv(1e300, 1); got != maxCovers {
		t.Errorf("ceilDiv overflow = %d, want %d", got, maxCovers)
	}
}

func TestComputeBreakevenZeroCovers(t *testing.T) {
	p := breakevenPeriod()
	p.TotalCovers = 0
	p.AvgTicketSize = 0

	res := ComputeBreakeven(p, UKBenchmarks())

	if !res.Degenerate {
		t.Error("zero covers must be flagged degenerate")
	}
	if !approx(res.AvgTicket, p.Revenue) {
		t.Errorf("AvgTicket = %v, want revenue over one placeholder cover", res.AvgTicket)
	}
	if res.Message == "" {
		t.Error("expected a placeholder message")
	}
}

func TestClassifySafetyMargin(t *testing.T) {
	b := UKBenchmarks()
	tests := []struct {
		pct  float64
		want SafetyStatus
	}{
		{pct: 30, want: SafetyHealthy},
		{pct: 15, want: SafetyHealthy},
		{pct: 14.9, want: SafetyTight},
		{pct: 5, want: SafetyTight},
		{pct: 4.9, want: SafetyDanger},
		{pct: -20, want: SafetyDanger},
	}
	for _, tt := range tests {
		if got := ClassifySafetyMargin(tt.pct, b); got != tt.want {
			t.Errorf("ClassifySafetyMargin(%v) = %q, want %q", tt.pct, got, tt.want)
		}
	}
}

func TestWageImpact(t *testing.T) {
	b := UKBenchmarks()
	// 10000 / (12.21 * 160) = 5.12 -> 5 heads
	if got := b.EstimatedHeadcount(10000); got != 5 {
		t.Errorf("EstimatedHeadcount = %v, want 5", got)
	}
	want := 5 * (13.00 - 12.21) * 160
	if got := b.WageImpact(10000); !approx(got, want) {
		t.Errorf("WageImpact = %v, want %v", got, want)
	}
}
