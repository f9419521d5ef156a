package analytics

import (
	"fmt"
	"testing"
	"time"
)

func wasteLog(item, reason string, cost float64, day time.Time) WasteLog {
	return WasteLog{ItemName: item, Reason: reason, TotalCost: cost, Quantity: 1, CostPerUnit: cost, Unit: "kg", Date: day}
}

func TestAnalyzeWaste(t *testing.T) {
	jan := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC)
	logs := []WasteLog{
		wasteLog("Salmon", "expired", 40, feb),
		wasteLog("Bread", "over-prep", 10, jan),
		wasteLog("Salmon", "spoiled", 30, jan),
		wasteLog("Lettuce", "expired", 20, feb),
	}
	periods := []Period{
		{Month: "January", Year: 2024, FoodCost: 1000},
		{Month: "February", Year: 2024, FoodCost: 1000},
	}

	got := AnalyzeWaste(logs, periods)

	if got.TotalWasteCost != 100 || got.TotalPurchases != 2000 || !approx(got.WastePercentage, 5) {
		t.Errorf("totals = %v/%v/%v", got.TotalWasteCost, got.TotalPurchases, got.WastePercentage)
	}
	if got.TotalLogs != 4 {
		t.Errorf("TotalLogs = %d, want 4", got.TotalLogs)
	}

	if got.ByReason[0].Key != "expired" || got.ByReason[0].Cost != 60 || got.ByReason[0].Count != 2 {
		t.Errorf("ByReason[0] = %+v, want expired 60 x2", got.ByReason[0])
	}
	if len(got.ByMonth) != 2 || got.ByMonth[0].Key != "2024-01" || got.ByMonth[1].Cost != 60 {
		t.Errorf("ByMonth = %+v", got.ByMonth)
	}
	if got.TopWastedItems[0].Key != "Salmon" || got.TopWastedItems[0].Cost != 70 {
		t.Errorf("TopWastedItems[0] = %+v, want Salmon 70", got.TopWastedItems[0])
	}
}

func TestAnalyzeWasteEdges(t *testing.T) {
	empty := AnalyzeWaste(nil, nil)
	if empty.WastePercentage != 0 || empty.ByReason == nil || empty.TopWastedItems == nil {
		t.Errorf("empty analytics = %+v", empty)
	}

	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	var logs []WasteLog
	for i := 0; i < 15; i++ {
		logs = append(logs, wasteLog(fmt.Sprintf("item-%02d", i), "expired", float64(i+1), day))
	}
	got := AnalyzeWaste(logs, nil)
	if len(got.TopWastedItems) != 10 {
		t.Fatalf("TopWastedItems has %d entries, want 10", len(got.TopWastedItems))
	}
	if got.TopWastedItems[0].Key != "item-14" {
		t.Errorf("top item = %s, want item-14", got.TopWastedItems[0].Key)
	}
	if got.WastePercentage != 0 {
		t.Errorf("WastePercentage without purchases = %v, want 0", got.WastePercentage)
	}
}
